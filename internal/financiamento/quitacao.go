// internal/financiamento/quitacao.go
package financiamento

import (
	"errors"
	"time"

	"github.com/financaslar/api-financas/internal/amortizacao"
	"github.com/financaslar/api-financas/internal/parcela"
	"gorm.io/gorm"
)

// SimularQuitacao orça a quitação antecipada de todas as parcelas pendentes
// com vencimento a partir da data informada: aplica 5% de desconto sobre os
// juros futuros e reporta a economia frente a pagar as parcelas nos prazos
// originais. Não altera nada; a efetivação exige uma chamada de pagamento.
func (s *Service) SimularQuitacao(usuarioID, financiamentoID uint, data time.Time) (*QuitacaoQuote, error) {
	f, err := s.Repo.FindByID(usuarioID, financiamentoID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNaoEncontrado
	}
	if err != nil {
		return nil, err
	}
	if f.Status == StatusQuitado {
		return nil, ErrFinanciamentoQuitado
	}

	pendentes, err := parcela.NewRepository(s.DB).ListPendentes(financiamentoID)
	if err != nil {
		return nil, err
	}

	var jurosFuturos, totalRestante float64
	restantes := 0
	for _, p := range pendentes {
		if p.DataVencimento.Before(data) {
			continue
		}
		jurosFuturos += p.Juros
		totalRestante += p.ValorTotal
		restantes++
	}
	jurosFuturos = amortizacao.Arredondar(jurosFuturos)
	totalRestante = amortizacao.Arredondar(totalRestante)

	desconto := amortizacao.Arredondar(jurosFuturos * DescontoJurosQuitacao)
	valorQuitacao := amortizacao.Arredondar(f.SaldoDevedor - desconto)

	return &QuitacaoQuote{
		FinanciamentoID:   f.ID,
		Data:              data.Format("2006-01-02"),
		SaldoDevedor:      f.SaldoDevedor,
		ParcelasRestantes: restantes,
		JurosFuturos:      jurosFuturos,
		Desconto:          desconto,
		ValorQuitacao:     valorQuitacao,
		Economia:          amortizacao.Arredondar(totalRestante - valorQuitacao),
	}, nil
}
