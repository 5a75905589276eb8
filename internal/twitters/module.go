package twitters

import (
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"twitters",
		logger.WithNamedLogger("twitters"),
		fx.Provide(NewRepository, fx.Private),
		fx.Provide(NewService),
	)
}
