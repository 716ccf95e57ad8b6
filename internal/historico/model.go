// internal/historico/model.go
package historico

import (
	"time"

	"gorm.io/gorm"
)

// Tipos de operação registrados no histórico de um financiamento.
const (
	OperacaoCriacao      = "criacao"
	OperacaoPagamento    = "pagamento"
	OperacaoAdiantamento = "adiantamento"
	OperacaoQuitacao     = "quitacao"
)

// HistoricoFinanciamento é um registro imutável de uma operação que alterou o
// financiamento. Escrito uma única vez por operação; nunca atualizado.
type HistoricoFinanciamento struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	FinanciamentoID uint      `gorm:"not null;index" json:"financiamentoId"`
	TipoOperacao    string    `gorm:"size:50;not null" json:"tipoOperacao"`
	Estrategia      string    `gorm:"size:50" json:"estrategia,omitempty"`
	SaldoAnterior   float64   `gorm:"not null;default:0" json:"saldoAnterior"`
	SaldoPosterior  float64   `gorm:"not null;default:0" json:"saldoPosterior"`
	ParcelasPagas   int       `gorm:"not null;default:0" json:"parcelasPagas"`
	ValorParcela    float64   `gorm:"not null;default:0" json:"valorParcela"`
	ValorOperacao   float64   `gorm:"not null;default:0" json:"valorOperacao"`
	EconomiaJuros   float64   `gorm:"not null;default:0" json:"economiaJuros"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&HistoricoFinanciamento{})
}
