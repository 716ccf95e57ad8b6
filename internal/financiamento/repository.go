// internal/financiamento/repository.go
package financiamento

import "gorm.io/gorm"

// Repository encapsula o acesso a dados de Financiamentos.
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

// Criar grava um novo financiamento.
func (r *Repository) Criar(f *Financiamento) error {
	return r.DB.Create(f).Error
}

// FindByID busca um financiamento do usuário pelo ID, sem associações.
func (r *Repository) FindByID(usuarioID, id uint) (*Financiamento, error) {
	var f Financiamento
	err := r.DB.
		Where("usuario_id = ?", usuarioID).
		First(&f, id).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// FindByIDComParcelas busca o financiamento com as parcelas pré-carregadas.
func (r *Repository) FindByIDComParcelas(usuarioID, id uint) (*Financiamento, error) {
	var f Financiamento
	err := r.DB.
		Preload("Parcelas", func(db *gorm.DB) *gorm.DB {
			return db.Order("parcelas.numero ASC")
		}).
		Where("usuario_id = ?", usuarioID).
		First(&f, id).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// ListByUsuario lista os financiamentos do usuário, mais recentes primeiro.
func (r *Repository) ListByUsuario(usuarioID uint) ([]Financiamento, error) {
	var financiamentos []Financiamento
	err := r.DB.
		Where("usuario_id = ?", usuarioID).
		Order("created_at DESC").
		Find(&financiamentos).Error
	return financiamentos, err
}

// Update atualiza todos os campos de um financiamento existente.
func (r *Repository) Update(f *Financiamento) error {
	return r.DB.Save(f).Error
}

// Deletar remove o financiamento; as parcelas e o histórico caem em cascata.
func (r *Repository) Deletar(id uint) error {
	res := r.DB.Delete(&Financiamento{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
