// internal/conta/repository.go
package conta

import "gorm.io/gorm"

// Repository encapsula o acesso a dados de Contas.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Criar grava uma nova conta ou cartão.
func (r *Repository) Criar(c *Conta) error {
	return r.DB.Create(c).Error
}

// FindByID busca uma conta do usuário pelo ID.
func (r *Repository) FindByID(usuarioID, id uint) (*Conta, error) {
	var c Conta
	err := r.DB.
		Where("usuario_id = ?", usuarioID).
		First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListByUsuario lista as contas do usuário.
func (r *Repository) ListByUsuario(usuarioID uint) ([]Conta, error) {
	var contas []Conta
	err := r.DB.
		Where("usuario_id = ?", usuarioID).
		Order("nome ASC").
		Find(&contas).Error
	return contas, err
}
