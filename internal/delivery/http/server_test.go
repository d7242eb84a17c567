package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"webshop/config"
	httpmiddleware "webshop/internal/delivery/http/middleware"
	"webshop/internal/delivery/http/router"
	"webshop/internal/delivery/http/router/handler"
	"webshop/internal/infra/auth"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testServerConfig() *config.Config {
	cfg := &config.Config{}
	cfg.HTTP.Port = 8080
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.HTTP.Timeouts.ReadTimeout = 10 * time.Second
	cfg.HTTP.Timeouts.ReadHeaderTimeout = 5 * time.Second
	cfg.HTTP.Timeouts.WriteTimeout = 10 * time.Second
	cfg.HTTP.Timeouts.IdleTimeout = 30 * time.Second
	cfg.SecretKey.Access = "server-test-secret"
	cfg.SecretKey.AccessTTL = time.Minute

	return cfg
}

func newTestServer(t *testing.T) *httpServer {
	t.Helper()

	cfg := testServerConfig()
	logger := slog.New(slog.DiscardHandler)

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	routerParams := router.RouterParams{
		CategoryHandler: handler.NewCategoryHandler(handler.CategoryHandlerParams{Logger: logger}),
		ProductHandler:  handler.NewProductHandler(handler.ProductHandlerParams{Logger: logger}),
		OrderHandler:    handler.NewOrderHandler(handler.OrderHandlerParams{Logger: logger}),
		FeedbackHandler: handler.NewFeedbackHandler(handler.FeedbackHandlerParams{Logger: logger}),
		ProfileHandler:  handler.NewProfileHandler(handler.ProfileHandlerParams{Logger: logger}),
		AuthMiddleware:  httpmiddleware.NewAuthMiddleware(tokenSvc),
	}

	srv, err := NewServer(HTTPParams{
		Lifecycle:       fxtest.NewLifecycle(t),
		Config:          cfg,
		Logger:          logger,
		ErrorMiddleware: httpmiddleware.NewErrorMiddleware(logger),
		RouterParams:    routerParams,
	})
	require.NoError(t, err)

	return srv.(*httpServer)
}

func decodeServerEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return envelope
}

func TestNewServer_HealthEndpointOpen(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeServerEnvelope(t, rec)
	assert.Nil(t, envelope["error"])
}

func TestNewServer_UnknownRouteRendersEnvelope(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/no-such-route", nil)
	rec := httptest.NewRecorder()
	srv.server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	envelope := decodeServerEnvelope(t, rec)
	errInfo, ok := envelope["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "HTTP_ERROR", errInfo["code"])
}

func TestNewServer_UnhandledErrorHidesDetails(t *testing.T) {
	srv := newTestServer(t)
	srv.server.GET("/boom", func(echo.Context) error {
		return errors.New("kaput")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	srv.server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	envelope := decodeServerEnvelope(t, rec)
	errInfo, ok := envelope["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "TECHNICAL_ERROR", errInfo["code"])
	assert.NotContains(t, rec.Body.String(), "kaput")
}

func TestNewServer_ProtectedRoutesRequireToken(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/Category/GetPage", nil)
	rec := httptest.NewRecorder()
	srv.server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)

	envelope := decodeServerEnvelope(t, rec)
	errInfo, ok := envelope["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "UNAUTHENTICATED", errInfo["code"])
}
