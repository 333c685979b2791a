package http_test

import (
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stock-control/internal/application/dto"
	"github.com/tu-usuario/stock-control/internal/domain/entity"
	httpiface "github.com/tu-usuario/stock-control/internal/interfaces/http"
	"github.com/tu-usuario/stock-control/pkg/jwt"
)

const testSecret = "secreto-de-test"

// buildTestApp monta una ruta protegida con auth + RBAC y una solo con auth,
// igual que el router real.
func buildTestApp() *fiber.App {
	app := fiber.New()
	requireAuth := httpiface.AuthMiddleware(testSecret)

	app.Get("/admin-only", requireAuth, httpiface.RequireRole(entity.RoleAdmin), func(c *fiber.Ctx) error {
		return c.JSON(dto.MessageResponse{Message: "Accedió a una ruta de administrador"})
	})
	app.Get("/whoami", requireAuth, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":  httpiface.GetUserID(c),
			"username": httpiface.GetUsername(c),
			"role":     httpiface.GetRole(c),
		})
	})
	return app
}

func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	token, err := jwt.Generate(testSecret, "user-123", "maria", role, "stock-control-test", 60)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, app *fiber.App, path, authHeader string) (*nethttp.Response, dto.ErrorResponse) {
	t.Helper()
	req := httptest.NewRequest(nethttp.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)

	var body dto.ErrorResponse
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = json.Unmarshal(raw, &body)
	return resp, body
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinHeader(t *testing.T) {
	app := buildTestApp()
	resp, body := doRequest(t, app, "/whoami", "")

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", body.Code)
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := buildTestApp()
	resp, body := doRequest(t, app, "/whoami", "Token abc123")

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", body.Code)
}

func TestAuthMiddleware_TokenInvalido(t *testing.T) {
	app := buildTestApp()
	resp, body := doRequest(t, app, "/whoami", "Bearer no-es-un-jwt")

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", body.Code)
}

func TestAuthMiddleware_FirmaIncorrecta(t *testing.T) {
	app := buildTestApp()
	token, err := jwt.Generate("otro-secreto", "user-123", "maria", entity.RoleUser, "x", 60)
	require.NoError(t, err)

	resp, body := doRequest(t, app, "/whoami", "Bearer "+token)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", body.Code)
}

// Token vencido → mismo 401 pero con código TOKEN_EXPIRED (solo diagnóstico).
func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	app := buildTestApp()
	token, err := jwt.Generate(testSecret, "user-123", "maria", entity.RoleUser, "x", -5)
	require.NoError(t, err)

	resp, body := doRequest(t, app, "/whoami", "Bearer "+token)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "TOKEN_EXPIRED", body.Code)
}

// Los claims verificados quedan disponibles para los handlers vía Locals.
func TestAuthMiddleware_ExponeClaims(t *testing.T) {
	app := buildTestApp()
	req := httptest.NewRequest(nethttp.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+tokenForRole(t, entity.RoleAdmin))

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "user-123", body["user_id"])
	assert.Equal(t, "maria", body["username"])
	assert.Equal(t, entity.RoleAdmin, body["role"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_AdminAccede(t *testing.T) {
	app := buildTestApp()
	resp, _ := doRequest(t, app, "/admin-only", "Bearer "+tokenForRole(t, entity.RoleAdmin))

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRole_UserRechazado(t *testing.T) {
	app := buildTestApp()
	resp, body := doRequest(t, app, "/admin-only", "Bearer "+tokenForRole(t, entity.RoleUser))

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", body.Code)
}

// Un token válido pero sin rol (emitido por otra versión, por ejemplo) es 401
// MISSING_ROLE, no 403.
func TestRequireRole_TokenSinRol(t *testing.T) {
	app := buildTestApp()

	claims := jwt.Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   "user-123",
			IssuedAt:  gojwt.NewNumericDate(time.Now()),
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID:   "user-123",
		Username: "maria",
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	resp, body := doRequest(t, app, "/admin-only", "Bearer "+token)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_ROLE", body.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests pkg/jwt
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateParse(t *testing.T) {
	token, err := jwt.Generate(testSecret, "user-123", "maria", entity.RoleAdmin, "stock-control", 60)
	require.NoError(t, err)

	claims, err := jwt.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "maria", claims.Username)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
	assert.Equal(t, "stock-control", claims.Issuer)
}

func TestJWT_ParseExpirado(t *testing.T) {
	token, err := jwt.Generate(testSecret, "user-123", "maria", entity.RoleUser, "x", -1)
	require.NoError(t, err)

	_, err = jwt.Parse(testSecret, token)
	require.ErrorIs(t, err, jwt.ErrExpired)
}

func TestJWT_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "user-123", "maria", entity.RoleUser, "x", 60)
	require.Error(t, err)

	_, err = jwt.Parse("", "lo-que-sea")
	require.Error(t, err)
}
