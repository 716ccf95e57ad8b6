// internal/historico/repository.go
package historico

import "gorm.io/gorm"

// Repository dá acesso somente-inserção ao histórico: registros nunca são
// atualizados nem removidos individualmente.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// WithDB retorna uma cópia do repo usando um *gorm.DB específico (ex.: tx).
func (r *Repository) WithDB(db *gorm.DB) *Repository {
	if db == nil {
		db = r.DB
	}
	return &Repository{DB: db}
}

// Criar grava um novo registro de histórico.
func (r *Repository) Criar(h *HistoricoFinanciamento) error {
	return r.DB.Create(h).Error
}

// ListByFinanciamento lista o histórico do financiamento, mais recente
// primeiro, com paginação (page a partir de 1; size<=0 desliga).
func (r *Repository) ListByFinanciamento(financiamentoID uint, page, size int) ([]HistoricoFinanciamento, error) {
	q := r.DB.
		Where("financiamento_id = ?", financiamentoID).
		Order("created_at DESC, id DESC")
	if size > 0 {
		if page < 1 {
			page = 1
		}
		q = q.Offset((page - 1) * size).Limit(size)
	}
	var registros []HistoricoFinanciamento
	err := q.Find(&registros).Error
	return registros, err
}
