package movies

import (
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"movies",
		logger.WithNamedLogger("movies"),
		fx.Provide(NewRepository, fx.Private),
		fx.Provide(NewService),
	)
}
