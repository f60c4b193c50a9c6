package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Documentos-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/Documentos-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testCompanyID = "00000000-0000-0000-0000-000000000002"
	testIssuer    = "documentos-api-test"
	testExpMin    = 60
)

// tokenForRole genera un JWT con el rol indicado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testCompanyID, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func sendWithAuth(t *testing.T, method, path, authHeader, body string, repo *memoryRepo) *http.Response {
	t.Helper()
	app := buildDocumentsApp(repo, "tax_added")
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Permisos por rol sobre /api/documents
// ──────────────────────────────────────────────────────────────────────────────

func TestRoles_AccesoPorRuta(t *testing.T) {
	cases := []struct {
		name   string
		role   string
		method string
		path   string
		body   string
		want   int
	}{
		{"consulta calcula preview", pkgjwt.RoleConsulta, http.MethodPost, "/api/documents/preview", `{"lines":[{"quantity":1,"unit_price":10,"tax_rate":21}]}`, http.StatusOK},
		{"consulta lee documento", pkgjwt.RoleConsulta, http.MethodGet, "/api/documents/propio", "", http.StatusOK},
		{"consulta descarga pdf", pkgjwt.RoleConsulta, http.MethodGet, "/api/documents/propio/pdf", "", http.StatusOK},
		{"consulta no confirma", pkgjwt.RoleConsulta, http.MethodPost, "/api/documents", createBody, http.StatusForbidden},
		{"vendedor confirma", pkgjwt.RoleVendedor, http.MethodPost, "/api/documents", createBody, http.StatusCreated},
		{"admin confirma", pkgjwt.RoleAdmin, http.MethodPost, "/api/documents", createBody, http.StatusCreated},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newMemoryRepo()
			repo.docs["propio"] = &entity.Document{
				ID: "propio", CompanyID: testCompanyID, Kind: entity.DocumentKindInvoice, Number: "A-0001",
			}

			resp := sendWithAuth(t, tc.method, tc.path, tokenForRole(t, tc.role), tc.body, repo)
			defer resp.Body.Close()

			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}
}

func TestRoles_ConsultaBloqueadaNoPersiste(t *testing.T) {
	repo := newMemoryRepo()

	resp := sendWithAuth(t, http.MethodPost, "/api/documents", tokenForRole(t, pkgjwt.RoleConsulta), createBody, repo)
	defer resp.Body.Close()

	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "FORBIDDEN")
	assert.Empty(t, repo.docs)
}

func TestRoles_TokenSinRolEnCreate_Retorna401(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testCompanyID, "", testIssuer, testExpMin)
	require.NoError(t, err)
	repo := newMemoryRepo()

	resp := sendWithAuth(t, http.MethodPost, "/api/documents", "Bearer "+tok, createBody, repo)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "MISSING_ROLE")
	assert.Empty(t, repo.docs)
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware sobre las rutas reales
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_RechazaCabecerasInvalidas(t *testing.T) {
	expired, err := pkgjwt.Generate(testJWTSecret, testUserID, testCompanyID, pkgjwt.RoleAdmin, testIssuer, -1)
	require.NoError(t, err)
	foreign, err := pkgjwt.Generate("otro-secret-completamente-distinto", testUserID, testCompanyID, pkgjwt.RoleAdmin, testIssuer, testExpMin)
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
	}{
		{"sin cabecera", ""},
		{"sin Bearer", "Token abc"},
		{"token malformado", "Bearer token.invalido.aqui"},
		{"token expirado", "Bearer " + expired},
		{"otro secreto", "Bearer " + foreign},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := sendWithAuth(t, http.MethodPost, "/api/documents/preview", tc.header, `{"lines":[]}`, newMemoryRepo())
			defer resp.Body.Close()

			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

// La empresa del documento sale del token, no del cuerpo.
func TestAuthMiddleware_EmpresaDelToken(t *testing.T) {
	repo := newMemoryRepo()

	resp := sendWithAuth(t, http.MethodPost, "/api/documents", tokenForRole(t, pkgjwt.RoleVendedor), createBody, repo)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeJSON(t, resp)
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)

	require.Contains(t, repo.docs, id)
	assert.Equal(t, testCompanyID, repo.docs[id].CompanyID)

	repo.docs[id].CompanyID = "otra-empresa"
	resp = sendWithAuth(t, http.MethodGet, "/api/documents/"+id, tokenForRole(t, pkgjwt.RoleConsulta), "", repo)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
