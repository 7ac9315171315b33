package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Estoque-api/internal/application/auth"
	"github.com/jhoicas/Estoque-api/internal/application/inventory"
	"github.com/jhoicas/Estoque-api/internal/application/report"
	"github.com/jhoicas/Estoque-api/internal/application/usecase"
	apphttp "github.com/jhoicas/Estoque-api/internal/interfaces/http"
	"github.com/jhoicas/Estoque-api/pkg/logger"
)

// newRouterApp monta o router com casos de uso que falham na validação antes de tocar no banco.
func newRouterApp(t *testing.T, authUC *auth.AuthUseCase) *fiber.App {
	t.Helper()
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		StockUC:     inventory.NewStockUseCase(nil, nil, nil, nil),
		ReportUC:    report.NewUseCase(nil, nil, nil),
		AnalyticsUC: usecase.NewAnalyticsUseCase(nil),
		AuthUC:      authUC,
		JWTSecret:   testJWTSecret,
		Log:         logger.Nop(),
	})
	return app
}

func openAuth() *auth.AuthUseCase {
	return auth.NewAuthUseCase(auth.OperatorConfig{Username: testOperator}, auth.JWTConfig{Secret: testJWTSecret})
}

func send(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestRouter_StockValidationErrors(t *testing.T) {
	app := newRouterApp(t, openAuth())

	cases := []struct {
		name, path, body, code string
	}{
		{"entrada quantidade zero", "/api/stock/entries", `{"product_id":"p1","quantity":0}`, "INVALID_QUANTITY"},
		{"saída quantidade negativa", "/api/stock/exits", `{"product_id":"p1","quantity":-2}`, "INVALID_QUANTITY"},
		{"prejuízo quantidade zero", "/api/stock/losses", `{"product_id":"p1","quantity":0}`, "INVALID_QUANTITY"},
		{"corpo malformado", "/api/stock/exits", `{"quantity":`, "INVALID_BODY"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := send(t, app, http.MethodPost, tc.path, tc.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, tc.code, decodeError(t, resp).Code)
		})
	}
}

func TestRouter_ListMovements_InvalidDate(t *testing.T) {
	app := newRouterApp(t, openAuth())
	resp := send(t, app, http.MethodGet, "/api/stock/movements?from=19-10-2026", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_PARAMS", decodeError(t, resp).Code)
}

func TestRouter_ReportAndAnalyticsInvalidInput(t *testing.T) {
	app := newRouterApp(t, openAuth())

	resp := send(t, app, http.MethodGet, "/api/reports/sales?format=csv", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_INPUT", decodeError(t, resp).Code)

	resp = send(t, app, http.MethodGet, "/api/analytics/sales?start=2026-10-20&end=2026-10-01", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	e := decodeError(t, resp)
	assert.Equal(t, "INVALID_INPUT", e.Code)
	assert.Contains(t, e.Error, "start posterior a end")
}

func TestRouter_LossReasons(t *testing.T) {
	app := newRouterApp(t, openAuth())
	resp := send(t, app, http.MethodGet, "/api/stock/losses/reasons", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_AuthEnabled(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("segredo"), bcrypt.MinCost)
	require.NoError(t, err)
	authUC := auth.NewAuthUseCase(
		auth.OperatorConfig{Username: testOperator, PasswordHash: string(hash)},
		auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer},
	)
	app := newRouterApp(t, authUC)

	resp := send(t, app, http.MethodPost, "/api/stock/entries", `{"product_id":"p1","quantity":0}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "rotas protegidas exigem token")

	resp = send(t, app, http.MethodPost, "/api/auth/login", `{"username":"loja","password":"errada"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", decodeError(t, resp).Code)

	resp = send(t, app, http.MethodPost, "/api/auth/login", `{"username":"","password":""}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = send(t, app, http.MethodPost, "/api/auth/login", `{"username":"loja","password":"segredo"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req := httptest.NewRequest(http.MethodPost, "/api/stock/entries", strings.NewReader(`{"product_id":"p1","quantity":0}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearer(t, testJWTSecret, testExpMin))
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "com token a validação do caso de uso responde")
}
