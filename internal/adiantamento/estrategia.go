// internal/adiantamento/estrategia.go
package adiantamento

import (
	"errors"
	"time"

	"github.com/financaslar/api-financas/internal/financiamento"
	"github.com/financaslar/api-financas/internal/parcela"
)

var (
	// ErrEstrategiaInvalida indica nome de estratégia fora das registradas.
	ErrEstrategiaInvalida = errors.New("estratégia de adiantamento desconhecida")
	// ErrContextoInsuficiente indica parcela alvo ausente ou já liquidada.
	ErrContextoInsuficiente = errors.New("parcela alvo ausente ou já liquidada")
	// ErrValorExcedeSaldo indica adiantamento maior que o saldo devedor.
	ErrValorExcedeSaldo = errors.New("valor excede o saldo devedor")
)

// Contexto reúne o estado corrente sobre o qual uma estratégia decide. As
// parcelas pendentes chegam ordenadas por número.
type Contexto struct {
	Financiamento *financiamento.Financiamento
	Pendentes     []parcela.Parcela
	Valor         float64
	ParcelaAlvo   int
	Data          time.Time
}

// Mudancas é o plano de alteração produzido por uma estratégia. A estratégia
// só transforma dados em memória; a persistência fica com o serviço, dentro
// da transação da operação.
type Mudancas struct {
	Atualizadas   []parcela.Parcela
	RemovidasIDs  []uint
	EconomiaJuros float64
}

// Estrategia recalcula ou remodela as parcelas pendentes diante de um
// adiantamento. Cada implementação é pura e testável isoladamente; novas
// estratégias entram pelo registro, sem tocar no despacho.
type Estrategia interface {
	Nome() string
	Aplicar(ctx Contexto) (*Mudancas, error)
}

func novaTabelaDeEstrategias() map[string]Estrategia {
	tabela := map[string]Estrategia{}
	for _, e := range []Estrategia{
		AmortizacaoExtraordinaria{},
		ReducaoPrazo{},
		AntecipacaoParcelas{},
		ParcelaEspecifica{},
	} {
		tabela[e.Nome()] = e
	}
	return tabela
}

func somaJuros(parcelas []parcela.Parcela) float64 {
	total := 0.0
	for _, p := range parcelas {
		total += p.Juros
	}
	return total
}

// quantasParcelasCabem devolve quantas parcelas inteiras do valor original
// cabem no adiantamento, limitado às pendentes.
func quantasParcelasCabem(ctx Contexto) int {
	valorParcela := ctx.Financiamento.ValorParcela
	if valorParcela <= 0 {
		return 0
	}
	n := int(ctx.Valor / valorParcela)
	if n > len(ctx.Pendentes) {
		n = len(ctx.Pendentes)
	}
	return n
}
