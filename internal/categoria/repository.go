// internal/categoria/repository.go
package categoria

import "gorm.io/gorm"

// Repository encapsula o acesso a dados de Categorias.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Criar grava uma nova categoria.
func (r *Repository) Criar(c *Categoria) error {
	return r.DB.Create(c).Error
}

// FindByID busca uma categoria do usuário pelo ID.
func (r *Repository) FindByID(usuarioID, id uint) (*Categoria, error) {
	var c Categoria
	err := r.DB.
		Where("usuario_id = ?", usuarioID).
		First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListByUsuario lista as categorias do usuário em ordem alfabética.
func (r *Repository) ListByUsuario(usuarioID uint) ([]Categoria, error) {
	var categorias []Categoria
	err := r.DB.
		Where("usuario_id = ?", usuarioID).
		Order("nome ASC").
		Find(&categorias).Error
	return categorias, err
}

// Deletar remove a categoria; retorna gorm.ErrRecordNotFound se nada mudou.
func (r *Repository) Deletar(usuarioID, id uint) error {
	res := r.DB.Where("usuario_id = ?", usuarioID).Delete(&Categoria{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
