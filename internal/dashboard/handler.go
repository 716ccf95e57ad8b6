// internal/dashboard/handler.go
package dashboard

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/financaslar/api-financas/internal/auth"
	"github.com/financaslar/api-financas/internal/cache"
	"gorm.io/gorm"
)

// TTLResumo limita quanto tempo um resumo fica servido do cache.
const TTLResumo = 5 * time.Minute

// Handler gerencia a rota do painel de financiamentos.
type Handler struct {
	Repo  *Repository
	Cache cache.Cache
}

// NewHandler cria um novo Handler; o cache é opcional (nil desliga).
func NewHandler(db *gorm.DB, c cache.Cache) *Handler {
	return &Handler{Repo: NewRepository(db), Cache: c}
}

// Resumo devolve a posição consolidada do usuário; serve do cache quando há
// entrada fresca.
func (h *Handler) Resumo(w http.ResponseWriter, r *http.Request) {
	usuarioID := r.Context().Value(auth.UsuarioIDKey).(uint)

	proximas, _ := strconv.Atoi(r.URL.Query().Get("proximas"))
	chave := fmt.Sprintf("dashboard:financiamentos:%d:%d", usuarioID, proximas)

	w.Header().Set("Content-Type", "application/json")
	if h.Cache != nil {
		if cacheado, ok := h.Cache.Get(r.Context(), chave); ok {
			w.Write([]byte(cacheado))
			return
		}
	}

	resumo, err := h.Repo.Resumo(usuarioID, time.Now(), proximas)
	if err != nil {
		http.Error(w, "erro ao montar resumo", http.StatusInternalServerError)
		return
	}

	body, err := json.Marshal(resumo)
	if err != nil {
		http.Error(w, "erro ao montar resumo", http.StatusInternalServerError)
		return
	}
	if h.Cache != nil {
		// Cache é oportunista: falha aqui não derruba a resposta.
		_ = h.Cache.Set(r.Context(), chave, string(body), TTLResumo)
	}
	w.Write(body)
}
