// internal/conta/handler.go
package conta

import (
	"encoding/json"
	"net/http"

	"github.com/financaslar/api-financas/internal/auth"
)

// Handler gerencia rotas de contas e cartões.
type Handler struct {
	Repo *Repository
}

// NewHandler cria um novo Handler.
func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

type criarContaRequest struct {
	Nome string `json:"nome"`
	Tipo string `json:"tipo"`
}

// Criar cadastra uma nova conta ou cartão.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	usuarioID := r.Context().Value(auth.UsuarioIDKey).(uint)

	var req criarContaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if req.Nome == "" {
		http.Error(w, "nome é obrigatório", http.StatusBadRequest)
		return
	}
	if req.Tipo == "" {
		req.Tipo = TipoConta
	}
	if req.Tipo != TipoConta && req.Tipo != TipoCartao {
		http.Error(w, "tipo deve ser 'conta' ou 'cartao'", http.StatusBadRequest)
		return
	}

	c := Conta{UsuarioID: usuarioID, Nome: req.Nome, Tipo: req.Tipo}
	if err := h.Repo.Criar(&c); err != nil {
		http.Error(w, "erro ao salvar conta", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// Listar retorna as contas do usuário autenticado.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	usuarioID := r.Context().Value(auth.UsuarioIDKey).(uint)

	contas, err := h.Repo.ListByUsuario(usuarioID)
	if err != nil {
		http.Error(w, "erro ao listar contas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(contas)
}
