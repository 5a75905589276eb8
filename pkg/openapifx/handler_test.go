package openapifx_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
	"github.com/yong/moviehub/pkg/openapifx"
	"go.uber.org/zap/zaptest"
)

const testTemplate = `{"swagger":"2.0","info":{"title":"{{.Title}}"},"host":"{{.Host}}","basePath":"{{.BasePath}}","paths":{}}`

//nolint:gochecknoglobals //registered once per test binary
var spec = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:3000",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Test API",
	Description:      "",
	InfoInstanceName: swag.Name,
	SwaggerTemplate:  testTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(spec.InstanceName(), spec)
}

func TestHandler(t *testing.T) {
	app := fiber.New()
	openapifx.New(
		openapifx.Config{Enabled: true, PublicHost: "movies.example.com", PublicPath: "/public/api"},
		spec,
		zaptest.NewLogger(t),
	).Register(app.Group("/api/docs"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"host":"movies.example.com"`)
	assert.Contains(t, string(body), `"basePath":"/public/api"`)
}

func TestHandlerDisabled(t *testing.T) {
	app := fiber.New()
	openapifx.New(openapifx.Config{}, spec, zaptest.NewLogger(t)).Register(app.Group("/api/docs"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
