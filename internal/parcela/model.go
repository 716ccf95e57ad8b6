// internal/parcela/model.go
package parcela

import (
	"time"

	"gorm.io/gorm"
)

// Status é o estado de uma parcela. Fechado em variantes conhecidas;
// validado na borda, nunca gravado como texto livre.
type Status string

const (
	StatusPendente   Status = "pendente"
	StatusPaga       Status = "paga"
	StatusVencida    Status = "vencida" // derivado em leitura, nunca persistido
	StatusAntecipada Status = "antecipada"
)

// Valido informa se o status é uma das variantes conhecidas.
func (s Status) Valido() bool {
	switch s {
	case StatusPendente, StatusPaga, StatusVencida, StatusAntecipada:
		return true
	}
	return false
}

// Liquidada informa se a parcela já foi quitada de alguma forma.
func (s Status) Liquidada() bool {
	return s == StatusPaga || s == StatusAntecipada
}

// Parcela representa uma única parcela de um financiamento, com a abertura
// simulada no momento da criação e os campos realizados após o pagamento.
type Parcela struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	FinanciamentoID uint      `gorm:"not null;index" json:"financiamentoId"`
	Numero          int       `gorm:"not null;index" json:"numero"`
	DataVencimento  time.Time `gorm:"not null" json:"dataVencimento"`

	// Abertura simulada
	SaldoInicial float64 `gorm:"not null;default:0" json:"saldoInicial"`
	Juros        float64 `gorm:"not null;default:0" json:"juros"`
	Amortizacao  float64 `gorm:"not null;default:0" json:"amortizacao"`
	Seguro       float64 `gorm:"not null;default:0" json:"seguro"`
	ValorTotal   float64 `gorm:"not null;default:0" json:"valorTotal"`
	SaldoFinal   float64 `gorm:"not null;default:0" json:"saldoFinal"`

	Status Status `gorm:"size:20;not null;default:'pendente';index" json:"status"`

	// Campos realizados no pagamento
	DataPagamento       *time.Time `json:"dataPagamento,omitempty"`
	ValorPago           float64    `gorm:"not null;default:0" json:"valorPago"`
	Multa               float64    `gorm:"not null;default:0" json:"multa"`
	DescontoAntecipacao float64    `gorm:"not null;default:0" json:"descontoAntecipacao"`
	DiasAtraso          int        `gorm:"not null;default:0" json:"diasAtraso"`
	LancamentoID        *uint      `gorm:"index" json:"lancamentoId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StatusEfetivo devolve o status considerando atraso: uma parcela pendente com
// vencimento anterior à data de referência é reportada como vencida, sem que
// essa transição seja gravada.
func (p *Parcela) StatusEfetivo(referencia time.Time) Status {
	if p.Status == StatusPendente && p.DataVencimento.Before(referencia) {
		return StatusVencida
	}
	return p.Status
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Parcela{})
}
