// internal/financiamento/model.go
package financiamento

import (
	"time"

	"github.com/financaslar/api-financas/internal/amortizacao"
	"github.com/financaslar/api-financas/internal/historico"
	"github.com/financaslar/api-financas/internal/parcela"
	"gorm.io/gorm"
)

// Status é o estado de um financiamento. Fechado em variantes conhecidas.
type Status string

const (
	StatusSimulacao Status = "simulacao"
	StatusAtivo     Status = "ativo"
	StatusEmAtraso  Status = "em_atraso"
	StatusQuitado   Status = "quitado"
	StatusSuspenso  Status = "suspenso"
)

// Valido informa se o status é uma das variantes conhecidas.
func (s Status) Valido() bool {
	switch s {
	case StatusSimulacao, StatusAtivo, StatusEmAtraso, StatusQuitado, StatusSuspenso:
		return true
	}
	return false
}

// AceitaOperacao informa se o financiamento ainda aceita pagamentos e
// adiantamentos.
func (s Status) AceitaOperacao() bool {
	return s == StatusAtivo || s == StatusEmAtraso
}

// Financiamento representa um empréstimo parcelado do usuário. É dono
// exclusivo das suas parcelas e do seu histórico (exclusão em cascata).
type Financiamento struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	UsuarioID uint `gorm:"not null;index" json:"usuarioId"`

	Descricao string `gorm:"size:255;not null" json:"descricao"`

	// Termos do principal
	ValorTotal      float64 `gorm:"not null;default:0" json:"valorTotal"`
	Entrada         float64 `gorm:"not null;default:0" json:"entrada"`
	ValorFinanciado float64 `gorm:"not null;default:0" json:"valorFinanciado"`
	TaxaAnual       float64 `gorm:"not null;default:0" json:"taxaAnual"`
	TaxaMensal      float64 `gorm:"not null;default:0" json:"taxaMensal"`

	SeguroMensal        float64 `gorm:"not null;default:0" json:"seguroMensal"`
	TarifaAdministracao float64 `gorm:"not null;default:0" json:"tarifaAdministracao"`

	Prazo   int                 `gorm:"not null" json:"prazo"`
	Sistema amortizacao.Sistema `gorm:"size:20;not null" json:"sistema"`

	DataContratacao     time.Time `gorm:"not null" json:"dataContratacao"`
	DataPrimeiraParcela time.Time `gorm:"not null" json:"dataPrimeiraParcela"`

	Status Status `gorm:"size:20;not null;default:'ativo';index" json:"status"`

	// Agregados correntes, sempre recalculados a partir das parcelas dentro
	// da mesma transação que as altera.
	SaldoDevedor  float64 `gorm:"not null;default:0" json:"saldoDevedor"`
	ParcelasPagas int     `gorm:"not null;default:0" json:"parcelasPagas"`
	ValorParcela  float64 `gorm:"not null;default:0" json:"valorParcelaAtual"`

	CategoriaID uint  `gorm:"not null;index" json:"categoriaId"`
	ContaID     *uint `gorm:"index" json:"contaId,omitempty"`

	Parcelas  []parcela.Parcela                  `gorm:"foreignKey:FinanciamentoID;constraint:OnDelete:CASCADE" json:"parcelas,omitempty"`
	Historico []historico.HistoricoFinanciamento `gorm:"foreignKey:FinanciamentoID;constraint:OnDelete:CASCADE" json:"historico,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Financiamento{})
}
