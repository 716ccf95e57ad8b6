package auth

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

// UsuarioIDKey dá acesso ao ID do usuário autenticado no contexto da request.
const UsuarioIDKey ctxKey = "usuarioID"

// MiddlewareAutenticacao exige um Bearer token válido e injeta o usuário no
// contexto. Requests OPTIONS passam direto para o CORS responder.
func MiddlewareAutenticacao(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		h := r.Header.Get("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			http.Error(w, "Token ausente", http.StatusUnauthorized)
			return
		}
		raw := strings.TrimPrefix(h, "Bearer ")
		claims, err := ValidarToken(raw)
		if err != nil {
			http.Error(w, "Token inválido", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), UsuarioIDKey, claims.UsuarioID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
