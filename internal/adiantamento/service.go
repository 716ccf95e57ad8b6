// internal/adiantamento/service.go
package adiantamento

import (
	"errors"
	"fmt"
	"time"

	"github.com/financaslar/api-financas/internal/amortizacao"
	"github.com/financaslar/api-financas/internal/financiamento"
	"github.com/financaslar/api-financas/internal/historico"
	"github.com/financaslar/api-financas/internal/lancamento"
	"github.com/financaslar/api-financas/internal/notificacao"
	"github.com/financaslar/api-financas/internal/parcela"
	"gorm.io/gorm"
)

// AplicarDTO é o payload da aplicação de adiantamento.
type AplicarDTO struct {
	FinanciamentoID uint    `json:"financiamentoId"`
	Valor           float64 `json:"valor"`
	Estrategia      string  `json:"estrategia"`
	ParcelaAlvo     int     `json:"parcelaAlvo,omitempty"`
	CategoriaID     uint    `json:"categoriaId"`
	ContaID         *uint   `json:"contaId,omitempty"`
	Data            string  `json:"data"`
}

// Resultado descreve o efeito de um adiantamento aplicado.
type Resultado struct {
	FinanciamentoID   uint                 `json:"financiamentoId"`
	Estrategia        string               `json:"estrategia"`
	ValorAplicado     float64              `json:"valorAplicado"`
	SaldoAnterior     float64              `json:"saldoAnterior"`
	SaldoAtual        float64              `json:"saldoAtual"`
	Status            financiamento.Status `json:"status"`
	ParcelasRestantes int                  `json:"parcelasRestantes"`
	ParcelasPagas     int                  `json:"parcelasPagas"`
	EconomiaJuros     float64              `json:"economiaJuros"`
	LancamentoID      uint                 `json:"lancamentoId"`
}

// Service aplica adiantamentos de principal fora do cronograma, delegando o
// replanejamento das parcelas à estratégia escolhida.
type Service struct {
	DB          *gorm.DB
	estrategias map[string]Estrategia
}

// NewService instancia o serviço com as quatro estratégias registradas.
func NewService(db *gorm.DB) *Service {
	return &Service{DB: db, estrategias: novaTabelaDeEstrategias()}
}

// Aplicar valida as precondições, executa a estratégia e persiste tudo em uma
// única transação: parcelas alteradas/removidas, lançamento no razão, registro
// imutável de histórico e os agregados do financiamento.
func (s *Service) Aplicar(usuarioID uint, dto AplicarDTO) (*Resultado, error) {
	if dto.Valor <= 0 {
		return nil, fmt.Errorf("%w: valor do adiantamento deve ser positivo", amortizacao.ErrParametroInvalido)
	}
	if dto.CategoriaID == 0 {
		return nil, fmt.Errorf("%w: categoria é obrigatória", amortizacao.ErrParametroInvalido)
	}
	estrategia, ok := s.estrategias[dto.Estrategia]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrEstrategiaInvalida, dto.Estrategia)
	}

	data := time.Now()
	if dto.Data != "" {
		var err error
		if data, err = time.Parse("2006-01-02", dto.Data); err != nil {
			if data, err = time.Parse(time.RFC3339, dto.Data); err != nil {
				return nil, fmt.Errorf("%w: data de aplicação inválida", amortizacao.ErrParametroInvalido)
			}
		}
	}

	var (
		resultado  *Resultado
		descricaoF string
	)
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		f, err := financiamento.NewRepository(tx).FindByID(usuarioID, dto.FinanciamentoID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return financiamento.ErrNaoEncontrado
		}
		if err != nil {
			return err
		}

		descricaoF = f.Descricao
		if !f.Status.AceitaOperacao() {
			return financiamento.ErrFinanciamentoQuitado
		}
		if dto.Valor > f.SaldoDevedor {
			return ErrValorExcedeSaldo
		}

		parcelas := parcela.NewRepository(tx)
		pendentes, err := parcelas.ListPendentes(f.ID)
		if err != nil {
			return err
		}

		mudancas, err := estrategia.Aplicar(Contexto{
			Financiamento: f,
			Pendentes:     pendentes,
			Valor:         dto.Valor,
			ParcelaAlvo:   dto.ParcelaAlvo,
			Data:          data,
		})
		if err != nil {
			return err
		}

		if err := parcelas.UpdateInBatch(mudancas.Atualizadas); err != nil {
			return err
		}
		if err := parcelas.DeleteByIDs(mudancas.RemovidasIDs); err != nil {
			return err
		}

		l := &lancamento.Lancamento{
			UsuarioID:       usuarioID,
			Descricao:       fmt.Sprintf("Adiantamento (%s) — %s", estrategia.Nome(), f.Descricao),
			Valor:           dto.Valor,
			Data:            data,
			CategoriaID:     dto.CategoriaID,
			ContaID:         dto.ContaID,
			FinanciamentoID: &f.ID,
		}
		if err := lancamento.NewRepository(tx).Criar(l); err != nil {
			return err
		}

		saldoAnterior := f.SaldoDevedor
		f.SaldoDevedor = amortizacao.Arredondar(f.SaldoDevedor - dto.Valor)
		if f.SaldoDevedor < 0 {
			f.SaldoDevedor = 0
		}
		if err := financiamento.RecalcularAgregados(tx, f); err != nil {
			return err
		}

		if err := historico.NewRepository(tx).Criar(&historico.HistoricoFinanciamento{
			FinanciamentoID: f.ID,
			TipoOperacao:    historico.OperacaoAdiantamento,
			Estrategia:      estrategia.Nome(),
			SaldoAnterior:   saldoAnterior,
			SaldoPosterior:  f.SaldoDevedor,
			ParcelasPagas:   f.ParcelasPagas,
			ValorParcela:    f.ValorParcela,
			ValorOperacao:   dto.Valor,
			EconomiaJuros:   mudancas.EconomiaJuros,
		}); err != nil {
			return err
		}

		restantes, err := contarPendentes(tx, f.ID)
		if err != nil {
			return err
		}
		resultado = &Resultado{
			FinanciamentoID:   f.ID,
			Estrategia:        estrategia.Nome(),
			ValorAplicado:     dto.Valor,
			SaldoAnterior:     saldoAnterior,
			SaldoAtual:        f.SaldoDevedor,
			Status:            f.Status,
			ParcelasRestantes: restantes,
			ParcelasPagas:     f.ParcelasPagas,
			EconomiaJuros:     mudancas.EconomiaJuros,
			LancamentoID:      l.ID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if resultado.Status == financiamento.StatusQuitado {
		go notificacao.EnviarWebhookQuitacao(resultado.FinanciamentoID, descricaoF)
	}
	return resultado, nil
}

func contarPendentes(tx *gorm.DB, financiamentoID uint) (int, error) {
	var total int64
	err := tx.Model(&parcela.Parcela{}).
		Where("financiamento_id = ? AND status = ?", financiamentoID, parcela.StatusPendente).
		Count(&total).Error
	return int(total), err
}
