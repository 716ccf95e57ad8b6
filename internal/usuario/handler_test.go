// internal/usuario/handler_test.go
package usuario_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/financaslar/api-financas/internal/testutil"
	"github.com/financaslar/api-financas/internal/usuario"
)

func TestCriarELogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")
	db := testutil.BancoDeTeste(t)
	h := usuario.NewHandler(db)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/usuarios",
		strings.NewReader(`{"nome":"Maria","email":"maria@exemplo.com","senha":"s3nh4"}`))
	h.Criar(w, r)
	require.Equal(t, http.StatusCreated, w.Code)

	// A senha nunca volta na resposta.
	assert.NotContains(t, w.Body.String(), "s3nh4")

	w = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"email":"maria@exemplo.com","senha":"s3nh4"}`))
	h.Login(w, r)
	require.Equal(t, http.StatusOK, w.Code)

	var resposta map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resposta))
	assert.NotEmpty(t, resposta["token"])
}

func TestLoginSenhaErrada(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")
	db := testutil.BancoDeTeste(t)
	h := usuario.NewHandler(db)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/usuarios",
		strings.NewReader(`{"nome":"Maria","email":"maria@exemplo.com","senha":"s3nh4"}`))
	h.Criar(w, r)
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"email":"maria@exemplo.com","senha":"errada"}`))
	h.Login(w, r)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginUsuarioInexistente(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")
	db := testutil.BancoDeTeste(t)
	h := usuario.NewHandler(db)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"email":"ninguem@exemplo.com","senha":"x"}`))
	h.Login(w, r)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
