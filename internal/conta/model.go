// internal/conta/model.go
package conta

import (
	"time"

	"gorm.io/gorm"
)

// Tipos de conta aceitos.
const (
	TipoConta  = "conta"
	TipoCartao = "cartao"
)

// Conta representa uma conta bancária ou cartão do usuário. Consumida pelo
// módulo de financiamentos apenas para vincular lançamentos.
type Conta struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UsuarioID uint      `gorm:"not null;index" json:"usuarioId"`
	Nome      string    `gorm:"size:100;not null" json:"nome"`
	Tipo      string    `gorm:"size:20;not null;default:'conta'" json:"tipo"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Conta{})
}
