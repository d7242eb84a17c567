package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"webshop/config"
	"webshop/internal/delivery/http/response"
	"webshop/internal/domain/entity"
	"webshop/internal/infra/auth"
	"webshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T) (*AuthMiddleware, func(uuid.UUID, entity.Role) string) {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "auth_middleware_test_secret_key"
	cfg.SecretKey.AccessTTL = time.Minute

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	sign := func(userID uuid.UUID, role entity.Role) string {
		token, err := tokenSvc.GenerateAccessToken(userID, role)
		require.NoError(t, err)

		return token
	}

	return NewAuthMiddleware(tokenSvc), sign
}

func invokeAuth(t *testing.T, m *AuthMiddleware, authorization string) (*httptest.ResponseRecorder, *usecase.Requester, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/Category/GetPage", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var requester *usecase.Requester
	nextCalled := false
	next := func(c echo.Context) error {
		nextCalled = true
		requester = RequesterFrom(c)

		return c.NoContent(http.StatusOK)
	}

	require.NoError(t, m.Authenticate(next)(c))

	return rec, requester, nextCalled
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Envelope {
	t.Helper()

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return envelope
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	m, _ := newTestTokenService(t)

	rec, _, nextCalled := invokeAuth(t, m, "")
	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.Nil(t, envelope.Response)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "UNAUTHENTICATED", envelope.Error.Code)
	assert.Equal(t, http.StatusForbidden, envelope.Error.HTTPStatus)
}

func TestAuthenticate_NotBearer(t *testing.T) {
	m, _ := newTestTokenService(t)

	rec, _, nextCalled := invokeAuth(t, m, "Basic dXNlcjpwYXNz")
	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthenticate_GarbageToken(t *testing.T) {
	m, _ := newTestTokenService(t)

	rec, _, nextCalled := invokeAuth(t, m, "Bearer not.a.token")
	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthenticate_ValidToken(t *testing.T) {
	m, sign := newTestTokenService(t)

	userID := uuid.New()
	rec, requester, nextCalled := invokeAuth(t, m, "Bearer "+sign(userID, entity.RoleAdmin))
	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, requester)
	assert.Equal(t, userID, requester.ID)
	assert.Equal(t, entity.RoleAdmin, requester.Role)
}

func TestRequesterFrom_Unset(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Nil(t, RequesterFrom(c))
}
