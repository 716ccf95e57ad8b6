// internal/adiantamento/estrategia_test.go
package adiantamento

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/financaslar/api-financas/internal/amortizacao"
	"github.com/financaslar/api-financas/internal/financiamento"
	"github.com/financaslar/api-financas/internal/parcela"
)

// contexto típico: financiamento PRICE de 10 parcelas pendentes, geradas pelo
// próprio motor para que a decomposição seja coerente.
func contextoPrice(t *testing.T, valorAdiantado float64) Contexto {
	t.Helper()

	taxa := 0.12682503013196977 // 1% ao mês
	simuladas, err := amortizacao.CalcularCronograma(amortizacao.Parametros{
		ValorFinanciado:     10000,
		TaxaAnual:           taxa,
		Prazo:               10,
		DataPrimeiraParcela: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Sistema:             amortizacao.SistemaPrice,
	})
	require.NoError(t, err)

	pendentes := make([]parcela.Parcela, 0, len(simuladas))
	for _, sim := range simuladas {
		pendentes = append(pendentes, parcela.Parcela{
			ID:              uint(sim.Numero),
			FinanciamentoID: 1,
			Numero:          sim.Numero,
			DataVencimento:  sim.DataVencimento,
			SaldoInicial:    sim.SaldoInicial,
			Juros:           sim.Juros,
			Amortizacao:     sim.Amortizacao,
			Seguro:          sim.Seguro,
			ValorTotal:      sim.ValorTotal,
			SaldoFinal:      sim.SaldoFinal,
			Status:          parcela.StatusPendente,
		})
	}

	return Contexto{
		Financiamento: &financiamento.Financiamento{
			ID:           1,
			TaxaAnual:    taxa,
			Prazo:        10,
			Sistema:      amortizacao.SistemaPrice,
			SaldoDevedor: 10000,
			ValorParcela: simuladas[0].ValorTotal,
		},
		Pendentes: pendentes,
		Valor:     valorAdiantado,
		Data:      time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestAmortizacaoExtraordinariaRecalculaParcelas(t *testing.T) {
	ctx := contextoPrice(t, 2000)
	antes := ctx.Pendentes[0].ValorTotal

	m, err := AmortizacaoExtraordinaria{}.Aplicar(ctx)
	require.NoError(t, err)

	// Mesma quantidade de períodos, parcelas menores.
	require.Len(t, m.Atualizadas, 10)
	assert.Empty(t, m.RemovidasIDs)
	for i, p := range m.Atualizadas {
		assert.Equal(t, ctx.Pendentes[i].Numero, p.Numero)
		assert.Equal(t, ctx.Pendentes[i].DataVencimento, p.DataVencimento)
		assert.Less(t, p.ValorTotal, antes)
	}
	assert.InDelta(t, 8000, m.Atualizadas[0].SaldoInicial, 0.01)
	assert.Greater(t, m.EconomiaJuros, 0.0)
}

func TestAmortizacaoExtraordinariaQuitaTudo(t *testing.T) {
	ctx := contextoPrice(t, 10000)

	m, err := AmortizacaoExtraordinaria{}.Aplicar(ctx)
	require.NoError(t, err)

	assert.Empty(t, m.Atualizadas)
	assert.Len(t, m.RemovidasIDs, 10)
	assert.InDelta(t, somaJuros(ctx.Pendentes), m.EconomiaJuros, 0.01)
}

func TestReducaoPrazoRemoveDoFim(t *testing.T) {
	ctx := contextoPrice(t, ctxValorParaParcelas(t, 3))

	m, err := ReducaoPrazo{}.Aplicar(ctx)
	require.NoError(t, err)

	assert.Empty(t, m.Atualizadas)
	require.Len(t, m.RemovidasIDs, 3)
	// São sempre as últimas.
	assert.Equal(t, ctx.Pendentes[7].ID, m.RemovidasIDs[0])
	assert.Equal(t, ctx.Pendentes[9].ID, m.RemovidasIDs[2])
	assert.InDelta(t, somaJuros(ctx.Pendentes[7:]), m.EconomiaJuros, 0.01)
}

// valor que compra exatamente n parcelas no contexto PRICE padrão.
func ctxValorParaParcelas(t *testing.T, n int) float64 {
	t.Helper()
	ctx := contextoPrice(t, 0)
	return ctx.Financiamento.ValorParcela * float64(n)
}

func TestAntecipacaoParcelasLiquidaEReprograma(t *testing.T) {
	ctx := contextoPrice(t, ctxValorParaParcelas(t, 2))

	m, err := AntecipacaoParcelas{}.Aplicar(ctx)
	require.NoError(t, err)
	require.Len(t, m.Atualizadas, 10)
	assert.Empty(t, m.RemovidasIDs)

	// As duas primeiras são liquidadas sem multa nem desconto.
	for _, p := range m.Atualizadas[:2] {
		assert.Equal(t, parcela.StatusAntecipada, p.Status)
		require.NotNil(t, p.DataPagamento)
		assert.Equal(t, ctx.Data, *p.DataPagamento)
		assert.InDelta(t, p.ValorTotal, p.ValorPago, 0.001)
		assert.Zero(t, p.Multa)
	}

	// As demais herdam a cadência a partir do vencimento da primeira pendente.
	base := ctx.Pendentes[0].DataVencimento
	for i, p := range m.Atualizadas[2:] {
		assert.Equal(t, base.AddDate(0, i, 0), p.DataVencimento)
		assert.Equal(t, parcela.StatusPendente, p.Status)
	}
}

func TestParcelaEspecificaQuita(t *testing.T) {
	ctx := contextoPrice(t, 5000)
	ctx.ParcelaAlvo = 7

	m, err := ParcelaEspecifica{}.Aplicar(ctx)
	require.NoError(t, err)
	require.Len(t, m.Atualizadas, 1)

	p := m.Atualizadas[0]
	assert.Equal(t, 7, p.Numero)
	assert.Equal(t, parcela.StatusPaga, p.Status)
	assert.InDelta(t, p.ValorTotal, p.ValorPago, 0.001)
}

func TestParcelaEspecificaAbateParcialmente(t *testing.T) {
	ctx := contextoPrice(t, 100)
	ctx.ParcelaAlvo = 7
	original := ctx.Pendentes[6].ValorTotal

	m, err := ParcelaEspecifica{}.Aplicar(ctx)
	require.NoError(t, err)
	require.Len(t, m.Atualizadas, 1)

	p := m.Atualizadas[0]
	assert.Equal(t, parcela.StatusPendente, p.Status)
	assert.InDelta(t, original-100, p.ValorTotal, 0.001)
}

func TestParcelaEspecificaExigeAlvoPendente(t *testing.T) {
	ctx := contextoPrice(t, 100)

	_, err := ParcelaEspecifica{}.Aplicar(ctx)
	assert.ErrorIs(t, err, ErrContextoInsuficiente)

	ctx.ParcelaAlvo = 99
	_, err = ParcelaEspecifica{}.Aplicar(ctx)
	assert.ErrorIs(t, err, ErrContextoInsuficiente)
}

func TestTabelaDeEstrategiasRegistraTodas(t *testing.T) {
	tabela := novaTabelaDeEstrategias()
	for _, nome := range []string{
		"amortizacao_extraordinaria",
		"reducao_prazo",
		"antecipacao_parcelas",
		"parcela_especifica",
	} {
		assert.Contains(t, tabela, nome)
	}
	assert.Len(t, tabela, 4)
}
