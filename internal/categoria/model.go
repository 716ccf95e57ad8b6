// internal/categoria/model.go
package categoria

import (
	"time"

	"gorm.io/gorm"
)

// Categoria classifica lançamentos e financiamentos do usuário.
type Categoria struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UsuarioID uint      `gorm:"not null;index" json:"usuarioId"`
	Nome      string    `gorm:"size:100;not null" json:"nome"`
	Cor       string    `gorm:"size:20" json:"cor"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Categoria{})
}
