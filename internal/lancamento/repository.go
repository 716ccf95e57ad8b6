// internal/lancamento/repository.go
package lancamento

import "gorm.io/gorm"

// Repository encapsula o acesso a dados de Lançamentos.
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

// Criar grava um novo lançamento.
func (r *Repository) Criar(l *Lancamento) error {
	return r.DB.Create(l).Error
}

// FindByID busca um lançamento pelo ID.
func (r *Repository) FindByID(id uint) (*Lancamento, error) {
	var l Lancamento
	if err := r.DB.First(&l, id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

// ListByUsuario lista os lançamentos do usuário, mais recentes primeiro.
func (r *Repository) ListByUsuario(usuarioID uint, page, size int) ([]Lancamento, error) {
	q := r.DB.
		Where("usuario_id = ?", usuarioID).
		Order("data DESC, id DESC")
	if size > 0 {
		if page < 1 {
			page = 1
		}
		q = q.Offset((page - 1) * size).Limit(size)
	}
	var lancamentos []Lancamento
	err := q.Find(&lancamentos).Error
	return lancamentos, err
}

// DesvincularFinanciamento anula a referência reversa dos lançamentos de um
// financiamento. Usado na exclusão: o financiamento some, o razão permanece.
func (r *Repository) DesvincularFinanciamento(financiamentoID uint) error {
	return r.DB.Model(&Lancamento{}).
		Where("financiamento_id = ?", financiamentoID).
		Updates(map[string]interface{}{
			"financiamento_id": nil,
			"parcela_id":       nil,
		}).Error
}
