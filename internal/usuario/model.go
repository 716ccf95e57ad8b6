// internal/usuario/model.go
package usuario

import (
	"time"

	"gorm.io/gorm"
)

// Usuario é o dono dos dados: financiamentos, categorias, contas e
// lançamentos são sempre consultados com escopo de usuário.
type Usuario struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nome      string    `gorm:"size:100;not null" json:"nome"`
	Email     string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Senha     string    `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Usuario{})
}
