// internal/adiantamento/reducao_prazo.go
package adiantamento

import (
	"github.com/financaslar/api-financas/internal/amortizacao"
)

// ReducaoPrazo remove do fim do cronograma tantas parcelas quantas o
// adiantamento compra pelo valor original da parcela. As parcelas que ficam
// mantêm seus valores; o prazo encurta.
type ReducaoPrazo struct{}

// Nome identifica a estratégia no despacho e no histórico.
func (ReducaoPrazo) Nome() string { return "reducao_prazo" }

// Aplicar descarta as últimas n parcelas pendentes.
func (ReducaoPrazo) Aplicar(ctx Contexto) (*Mudancas, error) {
	n := quantasParcelasCabem(ctx)

	m := &Mudancas{}
	removidas := ctx.Pendentes[len(ctx.Pendentes)-n:]
	for _, p := range removidas {
		m.RemovidasIDs = append(m.RemovidasIDs, p.ID)
	}
	m.EconomiaJuros = amortizacao.Arredondar(somaJuros(removidas))
	return m, nil
}
