// internal/lancamento/model.go
package lancamento

import (
	"time"

	"gorm.io/gorm"
)

// Lancamento é um registro contábil: a consequência monetária de uma operação
// (pagamento de parcela, adiantamento, despesa avulsa). Pertence ao livro
// razão do usuário; financiamentos apenas referenciam lançamentos que geraram.
type Lancamento struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UsuarioID uint      `gorm:"not null;index" json:"usuarioId"`
	Descricao string    `gorm:"size:255;not null" json:"descricao"`
	Valor     float64   `gorm:"not null;default:0" json:"valor"`
	Data      time.Time `gorm:"not null;index" json:"data"`

	CategoriaID uint  `gorm:"not null;index" json:"categoriaId"`
	ContaID     *uint `gorm:"index" json:"contaId,omitempty"`
	CartaoID    *uint `gorm:"index" json:"cartaoId,omitempty"`

	// Referência reversa ao financiamento que originou o lançamento. Anulada
	// quando o financiamento é excluído; o lançamento em si permanece.
	FinanciamentoID *uint `gorm:"index" json:"financiamentoId,omitempty"`
	ParcelaID       *uint `gorm:"index" json:"parcelaId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Lancamento{})
}
