package internal

import (
	"context"

	"github.com/capcom6/go-infra-fx/validator"
	"github.com/go-core-fx/fiberfx"
	"github.com/go-core-fx/healthfx"
	"github.com/go-core-fx/logger"
	"github.com/yong/moviehub/internal/config"
	"github.com/yong/moviehub/internal/metrics"
	"github.com/yong/moviehub/internal/movies"
	"github.com/yong/moviehub/internal/news"
	"github.com/yong/moviehub/internal/server"
	"github.com/yong/moviehub/internal/twitters"
	"github.com/yong/moviehub/pkg/badgerfx"
	"github.com/yong/moviehub/pkg/openapifx"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Run() {
	fx.New(
		// CORE MODULES
		logger.Module(),
		logger.WithFxDefaultLogger(),
		badgerfx.Module(),
		healthfx.Module(),
		fiberfx.Module(),
		openapifx.Module(),
		validator.Module,
		//
		// APP MODULES
		config.Module(),
		server.Module(),
		metrics.Module(),
		//
		// BUSINESS MODULES
		fx.Provide(func() healthfx.Version { return healthfx.Version{Version: "1.0.0", ReleaseID: 1} }),
		movies.Module(),
		news.Module(),
		twitters.Module(),
		//
		// LIFECYCLE MANAGEMENT
		fx.Invoke(func(lc fx.Lifecycle, logger *zap.Logger) {
			lc.Append(fx.Hook{
				OnStart: func(_ context.Context) error {
					logger.Info("🚀 MovieHub application starting up")
					return nil
				},
				OnStop: func(_ context.Context) error {
					logger.Info("🛑 MovieHub application shutting down gracefully")
					return nil
				},
			})
		}),
	).Run()
}
