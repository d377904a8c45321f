package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/mall-office/internal/domain/access"
	apphttp "github.com/tu-usuario/mall-office/internal/interfaces/http"
	pkgjwt "github.com/tu-usuario/mall-office/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "mall-office-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - RequireOperation para aplicar el gate de la entidad/operación
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(entity access.Entity, op access.Operation) *fiber.App {
	app := fiber.New(fiber.Config{
		// Silenciar errores internos en los tests
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireOperation(entity, op),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenForRole genera un JWT con el rol indicado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireOperation
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: admin ejecuta una mutación → debe pasar (HTTP 200).
func TestRequireOperation_AdminPuedeMutar(t *testing.T) {
	app := buildTestApp(access.EntityMall, access.OpUpdate)
	resp := doRequest(t, app, tokenForRole(t, access.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin debe poder ejecutar mutaciones")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"], "la respuesta debe incluir ok:true")
	assert.Equal(t, access.RoleAdmin, body["role"], "el role debe ser admin")
}

// Caso 2: arrendatario intenta una mutación → HTTP 403 Forbidden.
func TestRequireOperation_ClienteBloqueadoEnMutacion(t *testing.T) {
	app := buildTestApp(access.EntityMall, access.OpUpdate)
	resp := doRequest(t, app, tokenForRole(t, access.RoleClient))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"un arrendatario no debe poder mutar entidades")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"la respuesta de error debe incluir el código FORBIDDEN")
}

// Caso 3: arrendatario puede crear pagos → HTTP 200.
func TestRequireOperation_ClientePuedeCrearPagos(t *testing.T) {
	app := buildTestApp(access.EntityPayment, access.OpCreate)
	resp := doRequest(t, app, tokenForRole(t, access.RoleClient))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"un arrendatario debe poder crear pagos (el chequeo de propiedad es del use case)")
}

// Caso 4: cualquier sesión puede consultar → HTTP 200 incluso sin rol conocido.
func TestRequireOperation_SesionSinRolPuedeConsultar(t *testing.T) {
	app := buildTestApp(access.EntityStore, access.OpQuery)
	resp := doRequest(t, app, tokenForRole(t, "visitante"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"consultar solo requiere sesión; el filtro de fila esconde los datos")
}

// Caso 5: rol desconocido bloqueado en mutaciones → HTTP 403.
func TestRequireOperation_RolDesconocidoBloqueadoEnMutacion(t *testing.T) {
	app := buildTestApp(access.EntityPayment, access.OpDelete)
	resp := doRequest(t, app, tokenForRole(t, "visitante"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Caso 6: sin header Authorization → HTTP 401 MISSING_TOKEN.
func TestRequireOperation_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp(access.EntityMall, access.OpQuery)
	resp := doRequest(t, app, "") // sin header
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 7: token inválido / malformado → HTTP 401 INVALID_TOKEN.
func TestRequireOperation_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(access.EntityMall, access.OpQuery)
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — extracción de claims del token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtractaClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"role":    apphttp.GetRole(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenForRole(t, access.RoleAdmin))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, access.RoleAdmin, body["role"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse con role
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse_ConRole(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, access.RoleClient, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, role, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, access.RoleClient, role)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, access.RoleAdmin, testIssuer, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, access.RoleAdmin, testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}
