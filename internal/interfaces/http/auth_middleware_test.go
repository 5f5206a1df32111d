package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/Taller-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Taller-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret  = "test-secret-key-for-unit-tests"
	testUserID     = int64(42)
	testIssuer     = "taller-api-test"
	testExpMin     = 60
	testCookieName = "auth_token"
)

// buildTestApp construye una app Fiber mínima con el AuthMiddleware y un
// handler que devuelve el user_id de los locals.
func buildTestApp(cookieName string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret, cookieName),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"user_id": apphttp.GetUserID(c)})
		},
	)
	return app
}

func validToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return tok
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_BearerValido(t *testing.T) {
	app := buildTestApp(testCookieName)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+validToken(t))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]int64
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"], "el user_id debe salir del token")
}

func TestAuthMiddleware_CookieValida(t *testing.T) {
	app := buildTestApp(testCookieName)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: validToken(t)})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"la cookie de sesión debe autenticar igual que el header")
}

func TestAuthMiddleware_CookieConNombreConfigurado(t *testing.T) {
	// El middleware debe leer la cookie con el nombre configurado, el mismo
	// que usa el login al emitirla.
	app := buildTestApp("sesion_taller")

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "sesion_taller", Value: validToken(t)})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Con el nombre por defecto la cookie configurada no cuenta.
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: validToken(t)})
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_SinToken_Retorna401(t *testing.T) {
	app := buildTestApp(testCookieName)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FormatoBearerInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(testCookieName)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token "+validToken(t))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenMalformado_Retorna401(t *testing.T) {
	app := buildTestApp(testCookieName)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer token.invalido.aqui")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenExpirado_Retorna401(t *testing.T) {
	app := buildTestApp(testCookieName)

	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testIssuer, -1)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"token expirado debe retornar 401")
}

// ──────────────────────────────────────────────────────────────────────────────
// pkg/jwt — integridad de generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testIssuer, testExpMin)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestJWT_SecretVacio_RetornaError(t *testing.T) {
	_, err := pkgjwt.Generate("", testUserID, testIssuer, testExpMin)
	assert.Error(t, err)
}
