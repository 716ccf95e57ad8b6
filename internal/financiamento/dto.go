// internal/financiamento/dto.go
package financiamento

import (
	"github.com/financaslar/api-financas/internal/amortizacao"
)

// SimularDTO é o payload das rotas de simulação e comparação.
type SimularDTO struct {
	ValorFinanciado     float64  `json:"valorFinanciado"`
	TaxaAnual           float64  `json:"taxaAnual"`
	Prazo               int      `json:"prazo"`
	Sistema             string   `json:"sistema"`
	Sistemas            []string `json:"sistemas,omitempty"` // só para comparação
	DataPrimeiraParcela string   `json:"dataPrimeiraParcela"`
	SeguroMensal        float64  `json:"seguroMensal,omitempty"`
	TarifaAdministracao float64  `json:"tarifaAdministracao,omitempty"`
	RendaMensal         float64  `json:"rendaMensal,omitempty"`
}

// ResultadoSimulacao devolve o cronograma e o resumo de uma simulação.
// Transiente: ou é descartado ou vira 1:1 as parcelas de um financiamento.
type ResultadoSimulacao struct {
	Parcelas []amortizacao.ParcelaSimulada `json:"parcelas"`
	Resumo   amortizacao.Resumo            `json:"resumo"`
}

// CriarDTO é o payload de criação de financiamento.
type CriarDTO struct {
	Descricao           string  `json:"descricao"`
	ValorTotal          float64 `json:"valorTotal"`
	Entrada             float64 `json:"entrada"`
	TaxaAnual           float64 `json:"taxaAnual"`
	Prazo               int     `json:"prazo"`
	Sistema             string  `json:"sistema"`
	DataContratacao     string  `json:"dataContratacao"`
	DataPrimeiraParcela string  `json:"dataPrimeiraParcela"`
	SeguroMensal        float64 `json:"seguroMensal,omitempty"`
	TarifaAdministracao float64 `json:"tarifaAdministracao,omitempty"`
	CategoriaID         uint    `json:"categoriaId"`
	ContaID             *uint   `json:"contaId,omitempty"`
}

// PagamentoDTO é o payload do registro de pagamento de parcela.
type PagamentoDTO struct {
	ParcelaID     uint    `json:"parcelaId"`
	ValorPago     float64 `json:"valorPago"`
	DataPagamento string  `json:"dataPagamento"`
	CategoriaID   uint    `json:"categoriaId"`
	ContaID       *uint   `json:"contaId,omitempty"`
	CartaoID      *uint   `json:"cartaoId,omitempty"`
	Observacao    string  `json:"observacao,omitempty"`
}

// QuitacaoQuote é o orçamento de quitação antecipada. Somente leitura: a
// efetivação exige uma chamada de pagamento separada.
type QuitacaoQuote struct {
	FinanciamentoID   uint    `json:"financiamentoId"`
	Data              string  `json:"data"`
	SaldoDevedor      float64 `json:"saldoDevedor"`
	ParcelasRestantes int     `json:"parcelasRestantes"`
	JurosFuturos      float64 `json:"jurosFuturos"`
	Desconto          float64 `json:"desconto"`
	ValorQuitacao     float64 `json:"valorQuitacao"`
	Economia          float64 `json:"economia"`
}
