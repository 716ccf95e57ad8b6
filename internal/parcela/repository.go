// internal/parcela/repository.go
package parcela

import (
	"errors"

	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados de Parcelas.
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

// CreateInBatch cria múltiplas parcelas de uma vez (ignora se vazio).
func (r *Repository) CreateInBatch(parcelas []*Parcela) error {
	if len(parcelas) == 0 {
		return nil
	}
	return r.DB.Create(parcelas).Error
}

// FindByID busca uma única parcela pelo seu ID.
func (r *Repository) FindByID(id uint) (*Parcela, error) {
	var p Parcela
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ListByFinanciamento busca as parcelas de um financiamento, com filtro
// opcional de status e paginação (page a partir de 1; size<=0 desliga).
func (r *Repository) ListByFinanciamento(financiamentoID uint, status Status, page, size int) ([]Parcela, error) {
	q := r.DB.
		Where("financiamento_id = ?", financiamentoID).
		Order("numero ASC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if size > 0 {
		if page < 1 {
			page = 1
		}
		q = q.Offset((page - 1) * size).Limit(size)
	}
	var parcelas []Parcela
	err := q.Find(&parcelas).Error
	return parcelas, err
}

// ListPendentes busca as parcelas ainda não liquidadas, em ordem de número.
func (r *Repository) ListPendentes(financiamentoID uint) ([]Parcela, error) {
	var parcelas []Parcela
	err := r.DB.
		Where("financiamento_id = ? AND status = ?", financiamentoID, StatusPendente).
		Order("numero ASC").
		Find(&parcelas).Error
	return parcelas, err
}

// Update atualiza todos os campos de uma parcela existente (Save exige PK).
func (r *Repository) Update(p *Parcela) error {
	return r.DB.Save(p).Error
}

// UpdateInBatch salva várias parcelas; usado pelas estratégias de adiantamento.
func (r *Repository) UpdateInBatch(parcelas []Parcela) error {
	for i := range parcelas {
		if err := r.DB.Save(&parcelas[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// DeleteByIDs remove um conjunto de parcelas (ignora se vazio).
func (r *Repository) DeleteByIDs(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.DB.Delete(&Parcela{}, ids).Error
}

// CountLiquidadas conta parcelas pagas ou antecipadas de um financiamento.
func (r *Repository) CountLiquidadas(financiamentoID uint) (int64, error) {
	var total int64
	err := r.DB.Model(&Parcela{}).
		Where("financiamento_id = ? AND status IN ?", financiamentoID,
			[]Status{StatusPaga, StatusAntecipada}).
		Count(&total).Error
	return total, err
}

// PrimeiraPendente devolve a próxima parcela pendente, ou nil se não houver.
func (r *Repository) PrimeiraPendente(financiamentoID uint) (*Parcela, error) {
	var p Parcela
	err := r.DB.
		Where("financiamento_id = ? AND status = ?", financiamentoID, StatusPendente).
		Order("numero ASC").
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
