// internal/adiantamento/handler.go
package adiantamento

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/financaslar/api-financas/internal/amortizacao"
	"github.com/financaslar/api-financas/internal/auth"
	"github.com/financaslar/api-financas/internal/financiamento"
	"gorm.io/gorm"
)

// Handler gerencia a rota de adiantamento de parcelas.
type Handler struct {
	Service *Service
}

// NewHandler cria um novo Handler.
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Service: NewService(db)}
}

// Aplicar aplica um adiantamento sobre um financiamento do usuário.
func (h *Handler) Aplicar(w http.ResponseWriter, r *http.Request) {
	usuarioID := r.Context().Value(auth.UsuarioIDKey).(uint)

	var dto AplicarDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	resultado, err := h.Service.Aplicar(usuarioID, dto)
	if err != nil {
		switch {
		case errors.Is(err, amortizacao.ErrParametroInvalido),
			errors.Is(err, ErrEstrategiaInvalida),
			errors.Is(err, ErrContextoInsuficiente):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, financiamento.ErrNaoEncontrado), errors.Is(err, gorm.ErrRecordNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, ErrValorExcedeSaldo), errors.Is(err, financiamento.ErrFinanciamentoQuitado):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, "erro interno", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resultado)
}
