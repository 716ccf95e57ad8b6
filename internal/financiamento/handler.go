// internal/financiamento/handler.go
package financiamento

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/financaslar/api-financas/internal/amortizacao"
	"github.com/financaslar/api-financas/internal/auth"
	"github.com/financaslar/api-financas/internal/historico"
	"github.com/financaslar/api-financas/internal/parcela"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler gerencia as rotas de financiamento.
type Handler struct {
	Service *Service
}

// NewHandler cria um novo Handler.
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Service: NewService(db)}
}

func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// respondErro traduz os erros do domínio para status HTTP: validação em 400
// com a mensagem literal, ausência em 404, conflito em 409, resto em 500.
func respondErro(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, amortizacao.ErrParametroInvalido):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNaoEncontrado), errors.Is(err, ErrParcelaNaoEncontrada),
		errors.Is(err, gorm.ErrRecordNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrParcelaJaPaga), errors.Is(err, ErrFinanciamentoQuitado):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "erro interno", http.StatusInternalServerError)
	}
}

func usuarioDe(r *http.Request) uint {
	return r.Context().Value(auth.UsuarioIDKey).(uint)
}

// Simular devolve o cronograma de um financiamento hipotético, sem persistir.
func (h *Handler) Simular(w http.ResponseWriter, r *http.Request) {
	var dto SimularDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	resultado, err := h.Service.Simular(dto)
	if err != nil {
		respondErro(w, err)
		return
	}
	respondJSON(w, http.StatusOK, resultado)
}

// Comparar roda a simulação em vários sistemas e recomenda o mais barato.
func (h *Handler) Comparar(w http.ResponseWriter, r *http.Request) {
	var dto SimularDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	comparacao, err := h.Service.Comparar(dto)
	if err != nil {
		respondErro(w, err)
		return
	}
	respondJSON(w, http.StatusOK, comparacao)
}

// Criar persiste o financiamento e materializa as parcelas simuladas.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var dto CriarDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	f, err := h.Service.Criar(usuarioDe(r), dto)
	if err != nil {
		respondErro(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, f)
}

// Listar retorna os financiamentos do usuário autenticado.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	financiamentos, err := h.Service.Repo.ListByUsuario(usuarioDe(r))
	if err != nil {
		respondErro(w, err)
		return
	}
	respondJSON(w, http.StatusOK, financiamentos)
}

// BuscarPorID retorna um financiamento com as parcelas carregadas.
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	f, err := h.Service.Repo.FindByIDComParcelas(usuarioDe(r), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = ErrNaoEncontrado
		}
		respondErro(w, err)
		return
	}
	respondJSON(w, http.StatusOK, f)
}

type parcelaListada struct {
	parcela.Parcela
	StatusEfetivo parcela.Status `json:"statusEfetivo"`
}

// ListarParcelas lista as parcelas de um financiamento com filtro opcional de
// status e paginação. O status "vencida" é derivado na leitura.
func (h *Handler) ListarParcelas(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if _, err := h.Service.Repo.FindByID(usuarioDe(r), uint(id)); err != nil {
		respondErro(w, ErrNaoEncontrado)
		return
	}

	q := r.URL.Query()
	status := parcela.Status(q.Get("status"))
	if status != "" && !status.Valido() {
		http.Error(w, "status de parcela inválido", http.StatusBadRequest)
		return
	}
	page, _ := strconv.Atoi(q.Get("page"))
	size, _ := strconv.Atoi(q.Get("size"))

	parcelas, err := parcela.NewRepository(h.Service.DB).ListByFinanciamento(uint(id), status, page, size)
	if err != nil {
		respondErro(w, err)
		return
	}

	hoje := time.Now()
	listadas := make([]parcelaListada, 0, len(parcelas))
	for _, p := range parcelas {
		listadas = append(listadas, parcelaListada{Parcela: p, StatusEfetivo: p.StatusEfetivo(hoje)})
	}
	respondJSON(w, http.StatusOK, listadas)
}

// PagarParcela registra o pagamento de uma parcela e devolve a parcela
// atualizada junto com o lançamento gerado no razão.
func (h *Handler) PagarParcela(w http.ResponseWriter, r *http.Request) {
	var dto PagamentoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	p, l, err := h.Service.RegistrarPagamento(usuarioDe(r), dto)
	if err != nil {
		respondErro(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"parcela":      p,
		"lancamentoId": l.ID,
	})
}

// SimularQuitacao orça a quitação antecipada na data informada (hoje, se
// omitida). Não altera estado.
func (h *Handler) SimularQuitacao(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	data := time.Now()
	if s := r.URL.Query().Get("data"); s != "" {
		data, err = parseData(s)
		if err != nil {
			http.Error(w, "data inválida", http.StatusBadRequest)
			return
		}
	}

	quote, err := h.Service.SimularQuitacao(usuarioDe(r), uint(id), data)
	if err != nil {
		respondErro(w, err)
		return
	}
	respondJSON(w, http.StatusOK, quote)
}

// Excluir remove o financiamento em cascata, preservando o razão.
func (h *Handler) Excluir(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Service.Excluir(usuarioDe(r), uint(id)); err != nil {
		respondErro(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListarHistorico lista o histórico do financiamento, mais recente primeiro.
func (h *Handler) ListarHistorico(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if _, err := h.Service.Repo.FindByID(usuarioDe(r), uint(id)); err != nil {
		respondErro(w, ErrNaoEncontrado)
		return
	}

	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	size, _ := strconv.Atoi(q.Get("size"))

	registros, err := historico.NewRepository(h.Service.DB).ListByFinanciamento(uint(id), page, size)
	if err != nil {
		respondErro(w, err)
		return
	}
	respondJSON(w, http.StatusOK, registros)
}
