// internal/categoria/handler.go
package categoria

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/financaslar/api-financas/internal/auth"
	"github.com/gorilla/mux"
)

// Handler gerencia rotas de categorias.
type Handler struct {
	Repo *Repository
}

// NewHandler cria um novo Handler.
func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

type criarCategoriaRequest struct {
	Nome string `json:"nome"`
	Cor  string `json:"cor"`
}

// Criar cadastra uma nova categoria para o usuário autenticado.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	usuarioID := r.Context().Value(auth.UsuarioIDKey).(uint)

	var req criarCategoriaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if req.Nome == "" {
		http.Error(w, "nome é obrigatório", http.StatusBadRequest)
		return
	}

	c := Categoria{UsuarioID: usuarioID, Nome: req.Nome, Cor: req.Cor}
	if err := h.Repo.Criar(&c); err != nil {
		http.Error(w, "erro ao salvar categoria", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// Listar retorna as categorias do usuário autenticado.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	usuarioID := r.Context().Value(auth.UsuarioIDKey).(uint)

	categorias, err := h.Repo.ListByUsuario(usuarioID)
	if err != nil {
		http.Error(w, "erro ao listar categorias", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(categorias)
}

// Deletar remove uma categoria do usuário autenticado.
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	usuarioID := r.Context().Value(auth.UsuarioIDKey).(uint)

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Deletar(usuarioID, uint(id)); err != nil {
		http.Error(w, "categoria não encontrada", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
