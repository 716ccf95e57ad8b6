package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGerarEValidarToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	token, err := GerarToken(42)
	require.NoError(t, err)

	claims, err := ValidarToken(token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.UsuarioID)
}

func TestValidarTokenRejeitaLixo(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	_, err := ValidarToken("nao-e-um-jwt")
	assert.Error(t, err)
}

func TestGerarTokenSemSegredo(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GerarToken(1)
	assert.ErrorIs(t, err, ErrSegredoAusente)
}

func TestMiddlewareAutenticacao(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	var capturado uint
	proximo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturado = r.Context().Value(UsuarioIDKey).(uint)
	})
	handler := MiddlewareAutenticacao(proximo)

	// Sem token.
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Token inválido.
	w = httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer lixo")
	handler.ServeHTTP(w, r)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Token válido injeta o usuário no contexto.
	token, err := GerarToken(7)
	require.NoError(t, err)
	w = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 7, capturado)
}
