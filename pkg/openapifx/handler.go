package openapifx

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/swaggo/swag"
	"go.uber.org/zap"
)

// Handler serves the Swagger UI and the generated document.
type Handler struct {
	config Config
	spec   *swag.Spec

	logger *zap.Logger
}

func New(config Config, spec *swag.Spec, logger *zap.Logger) *Handler {
	return &Handler{
		config: config,
		spec:   spec,

		logger: logger,
	}
}

// Register mounts the UI under r. Nothing is mounted when disabled.
func (h *Handler) Register(r fiber.Router) {
	if !h.config.Enabled {
		h.logger.Debug("openapi disabled")
		return
	}

	if h.config.PublicHost != "" {
		h.spec.Host = h.config.PublicHost
	}
	if h.config.PublicPath != "" {
		h.spec.BasePath = h.config.PublicPath
	}

	h.logger.Info("serving openapi", zap.String("host", h.spec.Host), zap.String("base_path", h.spec.BasePath))

	r.Get("*", swagger.HandlerDefault)
}
