// internal/adiantamento/parcela_especifica.go
package adiantamento

import (
	"github.com/financaslar/api-financas/internal/amortizacao"
	"github.com/financaslar/api-financas/internal/parcela"
)

// ParcelaEspecifica aplica o adiantamento contra uma única parcela indicada
// pelo número: quita a parcela se o valor cobrir o total dela, senão apenas
// reduz o valor e a mantém pendente.
type ParcelaEspecifica struct{}

// Nome identifica a estratégia no despacho e no histórico.
func (ParcelaEspecifica) Nome() string { return "parcela_especifica" }

// Aplicar abate o valor sobre a parcela alvo.
func (ParcelaEspecifica) Aplicar(ctx Contexto) (*Mudancas, error) {
	if ctx.ParcelaAlvo <= 0 {
		return nil, ErrContextoInsuficiente
	}

	var alvo *parcela.Parcela
	for i := range ctx.Pendentes {
		if ctx.Pendentes[i].Numero == ctx.ParcelaAlvo {
			alvo = &ctx.Pendentes[i]
			break
		}
	}
	if alvo == nil {
		// Inexistente ou já liquidada: não está entre as pendentes.
		return nil, ErrContextoInsuficiente
	}

	p := *alvo
	if ctx.Valor >= p.ValorTotal {
		data := ctx.Data
		p.Status = parcela.StatusPaga
		p.DataPagamento = &data
		p.ValorPago = p.ValorTotal
	} else {
		p.ValorTotal = amortizacao.Arredondar(p.ValorTotal - ctx.Valor)
	}
	return &Mudancas{Atualizadas: []parcela.Parcela{p}}, nil
}
