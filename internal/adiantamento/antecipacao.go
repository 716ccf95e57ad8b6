// internal/adiantamento/antecipacao.go
package adiantamento

import (
	"github.com/financaslar/api-financas/internal/parcela"
)

// AntecipacaoParcelas liquida imediatamente, sem multa nem desconto, as
// primeiras parcelas pendentes que o adiantamento compra, e puxa os
// vencimentos das demais para que a cadência reinicie no vencimento da
// primeira parcela que estava em aberto. O número total de parcelas não muda;
// a data de término do financiamento anda para trás.
type AntecipacaoParcelas struct{}

// Nome identifica a estratégia no despacho e no histórico.
func (AntecipacaoParcelas) Nome() string { return "antecipacao_parcelas" }

// Aplicar marca as n primeiras pendentes como antecipadas e reprograma o resto.
func (AntecipacaoParcelas) Aplicar(ctx Contexto) (*Mudancas, error) {
	n := quantasParcelasCabem(ctx)
	m := &Mudancas{}
	if len(ctx.Pendentes) == 0 || n == 0 {
		return m, nil
	}

	base := ctx.Pendentes[0].DataVencimento
	data := ctx.Data

	for i := 0; i < n; i++ {
		p := ctx.Pendentes[i]
		p.Status = parcela.StatusAntecipada
		p.DataPagamento = &data
		p.ValorPago = p.ValorTotal
		m.Atualizadas = append(m.Atualizadas, p)
	}
	for i, p := range ctx.Pendentes[n:] {
		p.DataVencimento = base.AddDate(0, i, 0)
		m.Atualizadas = append(m.Atualizadas, p)
	}
	return m, nil
}
