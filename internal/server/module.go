package server

import (
	"github.com/go-core-fx/fiberfx"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-core-fx/fiberfx/health"
	"github.com/go-core-fx/fiberfx/validation"
	"github.com/go-core-fx/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/yong/moviehub/internal/server/docs"
	"github.com/yong/moviehub/internal/server/handlers/movies"
	"github.com/yong/moviehub/internal/server/handlers/news"
	"github.com/yong/moviehub/internal/server/handlers/twitters"
	"github.com/yong/moviehub/pkg/openapifx"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Module() fx.Option {
	return fx.Module(
		"server",
		logger.WithNamedLogger("server"),

		fx.Provide(func(log *zap.Logger) fiberfx.Options {
			opts := fiberfx.Options{}
			opts.WithErrorHandler(fiberfx.NewJSONErrorHandler(log))
			opts.WithMetrics()
			return opts
		}),
		fx.Supply(docs.SwaggerInfo),

		fx.Provide(
			fx.Annotate(health.NewHandler, fx.ResultTags(`name:"health-handler"`)), fx.Private,
			fx.Annotate(movies.NewHandler, fx.ResultTags(`group:"handlers"`)), fx.Private,
			fx.Annotate(news.NewHandler, fx.ResultTags(`group:"handlers"`)), fx.Private,
			fx.Annotate(twitters.NewHandler, fx.ResultTags(`group:"handlers"`)), fx.Private,
		),

		fx.Invoke(
			fx.Annotate(
				func(handlers []handler.Handler, healthHandler handler.Handler, openapiHandler *openapifx.Handler, app *fiber.App) {
					healthHandler.Register(app)

					api := app.Group("/api")
					openapiHandler.Register(api.Group("/docs"))

					api.Use(validation.Middleware)

					for _, h := range handlers {
						h.Register(api)
					}
				},
				fx.ParamTags(`group:"handlers"`, `name:"health-handler"`),
			),
		),
	)
}
