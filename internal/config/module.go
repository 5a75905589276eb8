package config

import (
	"github.com/go-core-fx/fiberfx"
	"github.com/yong/moviehub/internal/server/rest"
	"github.com/yong/moviehub/pkg/badgerfx"
	"github.com/yong/moviehub/pkg/openapifx"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"config",
		fx.Provide(New),
		fx.Provide(func(cfg Config) fiberfx.Config {
			return fiberfx.Config{
				Address:     cfg.HTTP.Address,
				ProxyHeader: cfg.HTTP.ProxyHeader,
				Proxies:     cfg.HTTP.Proxies,
			}
		}),
		fx.Provide(func(cfg Config) openapifx.Config {
			return openapifx.Config{
				Enabled:    cfg.HTTP.OpenAPI.Enabled,
				PublicHost: cfg.HTTP.OpenAPI.PublicHost,
				PublicPath: cfg.HTTP.OpenAPI.PublicPath,
			}
		}),
		fx.Provide(func(cfg Config) badgerfx.Config {
			return badgerfx.Config{
				Dir:      cfg.Storage.DataDir,
				InMemory: cfg.Storage.InMemory,
			}
		}),
		fx.Provide(func(cfg Config) rest.Config {
			return rest.Config{
				AppName:         cfg.App.Name,
				DefaultPageSize: cfg.Pagination.DefaultSize,
				MaxPageSize:     cfg.Pagination.MaxSize,
			}
		}),
	)
}
