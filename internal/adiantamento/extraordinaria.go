// internal/adiantamento/extraordinaria.go
package adiantamento

import (
	"github.com/financaslar/api-financas/internal/amortizacao"
)

// AmortizacaoExtraordinaria abate o valor do saldo devedor e recalcula todas
// as parcelas pendentes pela fórmula do sistema vigente, mantendo a
// quantidade de períodos restantes. Parcelas cujo saldo recalculado não seria
// positivo são descartadas.
type AmortizacaoExtraordinaria struct{}

// Nome identifica a estratégia no despacho e no histórico.
func (AmortizacaoExtraordinaria) Nome() string { return "amortizacao_extraordinaria" }

// Aplicar recalcula o cronograma remanescente sobre o saldo reduzido.
func (AmortizacaoExtraordinaria) Aplicar(ctx Contexto) (*Mudancas, error) {
	f := ctx.Financiamento
	jurosAntes := somaJuros(ctx.Pendentes)

	novoSaldo := amortizacao.Arredondar(f.SaldoDevedor - ctx.Valor)
	if novoSaldo <= 0 || len(ctx.Pendentes) == 0 {
		// Saldo zerado: nada resta a pagar.
		m := &Mudancas{EconomiaJuros: amortizacao.Arredondar(jurosAntes)}
		for _, p := range ctx.Pendentes {
			m.RemovidasIDs = append(m.RemovidasIDs, p.ID)
		}
		return m, nil
	}

	simuladas, err := amortizacao.CalcularCronograma(amortizacao.Parametros{
		ValorFinanciado:     novoSaldo,
		TaxaAnual:           f.TaxaAnual,
		Prazo:               len(ctx.Pendentes),
		DataPrimeiraParcela: ctx.Pendentes[0].DataVencimento,
		Sistema:             f.Sistema,
		SeguroMensal:        f.SeguroMensal,
	})
	if err != nil {
		return nil, err
	}

	m := &Mudancas{}
	jurosDepois := 0.0
	for i, p := range ctx.Pendentes {
		if i >= len(simuladas) {
			// Sistemas de parcela única (BULLET) podem encolher o cronograma.
			m.RemovidasIDs = append(m.RemovidasIDs, p.ID)
			continue
		}
		sim := simuladas[i]
		if sim.SaldoInicial <= 0 {
			m.RemovidasIDs = append(m.RemovidasIDs, p.ID)
			continue
		}
		// Número e vencimento originais são preservados; só a decomposição
		// financeira muda.
		p.SaldoInicial = sim.SaldoInicial
		p.Juros = sim.Juros
		p.Amortizacao = sim.Amortizacao
		p.Seguro = sim.Seguro
		p.ValorTotal = sim.ValorTotal
		p.SaldoFinal = sim.SaldoFinal
		jurosDepois += sim.Juros
		m.Atualizadas = append(m.Atualizadas, p)
	}
	m.EconomiaJuros = amortizacao.Arredondar(jurosAntes - jurosDepois)
	return m, nil
}
