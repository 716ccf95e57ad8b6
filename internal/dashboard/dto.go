// internal/dashboard/dto.go
package dashboard

import "time"

// ProximaParcela é uma parcela a vencer listada no painel.
type ProximaParcela struct {
	ParcelaID       uint      `json:"parcelaId"`
	FinanciamentoID uint      `json:"financiamentoId"`
	Descricao       string    `json:"descricao"`
	Numero          int       `json:"numero"`
	DataVencimento  time.Time `json:"dataVencimento"`
	ValorTotal      float64   `json:"valorTotal"`
}

// ResumoFinanciamentos agrega a posição de financiamentos do usuário.
type ResumoFinanciamentos struct {
	TotalFinanciado  float64          `json:"totalFinanciado"`
	TotalPago        float64          `json:"totalPago"`
	SaldoDevedor     float64          `json:"saldoDevedor"`
	Ativos           int64            `json:"ativos"`
	Quitados         int64            `json:"quitados"`
	TotalMesCorrente float64          `json:"totalMesCorrente"`
	TaxaMediaAnual   float64          `json:"taxaMediaAnual"`
	ProximasParcelas []ProximaParcela `json:"proximasParcelas"`
}
