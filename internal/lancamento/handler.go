// internal/lancamento/handler.go
package lancamento

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/financaslar/api-financas/internal/auth"
)

// Handler gerencia rotas de lançamentos avulsos. Lançamentos gerados por
// pagamento ou adiantamento de financiamento são criados pelos respectivos
// serviços e apenas listados aqui.
type Handler struct {
	Repo *Repository
}

// NewHandler cria um novo Handler.
func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

type criarLancamentoRequest struct {
	Descricao   string  `json:"descricao"`
	Valor       float64 `json:"valor"`
	Data        string  `json:"data"`
	CategoriaID uint    `json:"categoriaId"`
	ContaID     *uint   `json:"contaId,omitempty"`
	CartaoID    *uint   `json:"cartaoId,omitempty"`
}

// Criar registra um lançamento manual no razão do usuário.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	usuarioID := r.Context().Value(auth.UsuarioIDKey).(uint)

	var req criarLancamentoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if req.Descricao == "" || req.Valor == 0 || req.CategoriaID == 0 {
		http.Error(w, "descrição, valor e categoria são obrigatórios", http.StatusBadRequest)
		return
	}

	data := time.Now()
	if req.Data != "" {
		var err error
		if data, err = time.Parse("2006-01-02", req.Data); err != nil {
			http.Error(w, "data inválida", http.StatusBadRequest)
			return
		}
	}

	l := Lancamento{
		UsuarioID:   usuarioID,
		Descricao:   req.Descricao,
		Valor:       req.Valor,
		Data:        data,
		CategoriaID: req.CategoriaID,
		ContaID:     req.ContaID,
		CartaoID:    req.CartaoID,
	}
	if err := h.Repo.Criar(&l); err != nil {
		http.Error(w, "erro ao salvar lançamento", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(l)
}

// Listar retorna os lançamentos do usuário, paginados via ?page= e ?size=.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	usuarioID := r.Context().Value(auth.UsuarioIDKey).(uint)

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	size, _ := strconv.Atoi(r.URL.Query().Get("size"))

	lancamentos, err := h.Repo.ListByUsuario(usuarioID, page, size)
	if err != nil {
		http.Error(w, "erro ao listar lançamentos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(lancamentos)
}
