// internal/financiamento/service.go
package financiamento

import (
	"errors"
	"fmt"
	"time"

	"github.com/financaslar/api-financas/internal/amortizacao"
	"github.com/financaslar/api-financas/internal/historico"
	"github.com/financaslar/api-financas/internal/lancamento"
	"github.com/financaslar/api-financas/internal/notificacao"
	"github.com/financaslar/api-financas/internal/parcela"
	"gorm.io/gorm"
)

// Taxas de ajuste do pagamento. Hoje fixas para todos os financiamentos;
// TODO: avaliar configuração por financiamento quando houver demanda.
const (
	// TaxaMultaDiaria incide sobre o valor simulado da parcela por dia de atraso.
	TaxaMultaDiaria = 0.0033
	// TaxaDescontoAntecipacao é o abatimento fixo para pagamento antes do vencimento.
	TaxaDescontoAntecipacao = 0.005
	// DescontoJurosQuitacao é o abatimento sobre juros futuros na quitação antecipada.
	DescontoJurosQuitacao = 0.05
)

var (
	ErrNaoEncontrado        = errors.New("financiamento não encontrado")
	ErrParcelaNaoEncontrada = errors.New("parcela não encontrada")
	ErrParcelaJaPaga        = errors.New("parcela já paga")
	ErrFinanciamentoQuitado = errors.New("financiamento já quitado")
)

// Service implementa o ciclo de vida do financiamento: criação com
// materialização de parcelas, registro de pagamentos e quitação.
type Service struct {
	DB   *gorm.DB
	Repo *Repository
}

// NewService instancia o serviço sobre a conexão dada.
func NewService(db *gorm.DB) *Service {
	return &Service{DB: db, Repo: NewRepository(db)}
}

func parseData(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func parametrosDe(dto SimularDTO) (amortizacao.Parametros, error) {
	sistema, err := amortizacao.ParseSistema(dto.Sistema)
	if err != nil {
		return amortizacao.Parametros{}, err
	}
	data, err := parseData(dto.DataPrimeiraParcela)
	if err != nil {
		return amortizacao.Parametros{}, fmt.Errorf("%w: data da primeira parcela inválida", amortizacao.ErrParametroInvalido)
	}
	return amortizacao.Parametros{
		ValorFinanciado:     dto.ValorFinanciado,
		TaxaAnual:           dto.TaxaAnual,
		Prazo:               dto.Prazo,
		DataPrimeiraParcela: data,
		Sistema:             sistema,
		SeguroMensal:        dto.SeguroMensal,
		TarifaAdministracao: dto.TarifaAdministracao,
	}, nil
}

// Simular roda o motor de amortização sem persistir nada.
func (s *Service) Simular(dto SimularDTO) (*ResultadoSimulacao, error) {
	params, err := parametrosDe(dto)
	if err != nil {
		return nil, err
	}
	parcelas, err := amortizacao.CalcularCronograma(params)
	if err != nil {
		return nil, err
	}
	return &ResultadoSimulacao{
		Parcelas: parcelas,
		Resumo:   amortizacao.Resumir(params.Sistema, parcelas, dto.RendaMensal),
	}, nil
}

// Comparar roda a simulação para vários sistemas e recomenda o mais barato.
func (s *Service) Comparar(dto SimularDTO) (*amortizacao.Comparacao, error) {
	data, err := parseData(dto.DataPrimeiraParcela)
	if err != nil {
		return nil, fmt.Errorf("%w: data da primeira parcela inválida", amortizacao.ErrParametroInvalido)
	}
	var sistemas []amortizacao.Sistema
	for _, nome := range dto.Sistemas {
		sistema, err := amortizacao.ParseSistema(nome)
		if err != nil {
			return nil, err
		}
		sistemas = append(sistemas, sistema)
	}
	return amortizacao.CompararSistemas(dto.ValorFinanciado, dto.TaxaAnual, dto.Prazo, data, sistemas)
}

// Criar valida os termos, persiste o financiamento ativo e materializa uma
// parcela pendente por período da simulação, tudo em uma única transação.
func (s *Service) Criar(usuarioID uint, dto CriarDTO) (*Financiamento, error) {
	valorFinanciado := amortizacao.Arredondar(dto.ValorTotal - dto.Entrada)
	if dto.CategoriaID == 0 {
		return nil, fmt.Errorf("%w: categoria é obrigatória", amortizacao.ErrParametroInvalido)
	}

	params, err := parametrosDe(SimularDTO{
		ValorFinanciado:     valorFinanciado,
		TaxaAnual:           dto.TaxaAnual,
		Prazo:               dto.Prazo,
		Sistema:             dto.Sistema,
		DataPrimeiraParcela: dto.DataPrimeiraParcela,
		SeguroMensal:        dto.SeguroMensal,
		TarifaAdministracao: dto.TarifaAdministracao,
	})
	if err != nil {
		return nil, err
	}
	simuladas, err := amortizacao.CalcularCronograma(params)
	if err != nil {
		return nil, err
	}

	dataContratacao, err := parseData(dto.DataContratacao)
	if err != nil {
		dataContratacao = time.Now()
	}

	principal := amortizacao.Arredondar(valorFinanciado + dto.TarifaAdministracao)
	f := Financiamento{
		UsuarioID:           usuarioID,
		Descricao:           dto.Descricao,
		ValorTotal:          dto.ValorTotal,
		Entrada:             dto.Entrada,
		ValorFinanciado:     valorFinanciado,
		TaxaAnual:           dto.TaxaAnual,
		TaxaMensal:          amortizacao.TaxaMensal(dto.TaxaAnual),
		SeguroMensal:        dto.SeguroMensal,
		TarifaAdministracao: dto.TarifaAdministracao,
		Prazo:               dto.Prazo,
		Sistema:             params.Sistema,
		DataContratacao:     dataContratacao,
		DataPrimeiraParcela: params.DataPrimeiraParcela,
		Status:              StatusAtivo,
		SaldoDevedor:        principal,
		ValorParcela:        simuladas[0].ValorTotal,
		CategoriaID:         dto.CategoriaID,
		ContaID:             dto.ContaID,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := NewRepository(tx).Criar(&f); err != nil {
			return err
		}

		parcelas := make([]*parcela.Parcela, 0, len(simuladas))
		for _, sim := range simuladas {
			parcelas = append(parcelas, &parcela.Parcela{
				FinanciamentoID: f.ID,
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
		if err := parcela.NewRepository(tx).CreateInBatch(parcelas); err != nil {
			return err
		}

		return historico.NewRepository(tx).Criar(&historico.HistoricoFinanciamento{
			FinanciamentoID: f.ID,
			TipoOperacao:    historico.OperacaoCriacao,
			SaldoAnterior:   principal,
			SaldoPosterior:  principal,
			ValorParcela:    f.ValorParcela,
			ValorOperacao:   principal,
		})
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.FindByIDComParcelas(usuarioID, f.ID)
}

// diasDeAtraso devolve dias inteiros entre vencimento e pagamento, ignorando
// horário; negativo quando pago antes do vencimento.
func diasDeAtraso(vencimento, pagamento time.Time) int {
	v := time.Date(vencimento.Year(), vencimento.Month(), vencimento.Day(), 0, 0, 0, 0, time.UTC)
	p := time.Date(pagamento.Year(), pagamento.Month(), pagamento.Day(), 0, 0, 0, 0, time.UTC)
	return int(p.Sub(v).Hours() / 24)
}

// RegistrarPagamento quita uma parcela: aplica multa por atraso ou desconto
// por antecipação, gera o lançamento no razão, atualiza a parcela com os
// campos realizados e reequilibra os agregados do financiamento — tudo na
// mesma transação.
func (s *Service) RegistrarPagamento(usuarioID uint, dto PagamentoDTO) (*parcela.Parcela, *lancamento.Lancamento, error) {
	if dto.CategoriaID == 0 {
		return nil, nil, fmt.Errorf("%w: categoria é obrigatória", amortizacao.ErrParametroInvalido)
	}
	dataPagamento, err := parseData(dto.DataPagamento)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: data de pagamento inválida", amortizacao.ErrParametroInvalido)
	}

	var (
		p *parcela.Parcela
		l *lancamento.Lancamento
		f *Financiamento
	)
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		parcelas := parcela.NewRepository(tx)

		p, err = parcelas.FindByID(dto.ParcelaID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrParcelaNaoEncontrada
		}
		if err != nil {
			return err
		}

		f, err = NewRepository(tx).FindByID(usuarioID, p.FinanciamentoID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNaoEncontrado
		}
		if err != nil {
			return err
		}

		if p.Status.Liquidada() {
			return ErrParcelaJaPaga
		}
		if f.Status == StatusQuitado {
			return ErrFinanciamentoQuitado
		}

		valorPago := dto.ValorPago
		if valorPago <= 0 {
			valorPago = p.ValorTotal
		}

		var multa, desconto float64
		dias := diasDeAtraso(p.DataVencimento, dataPagamento)
		switch {
		case dias > 0:
			multa = amortizacao.Arredondar(p.ValorTotal * TaxaMultaDiaria * float64(dias))
		case dias < 0:
			desconto = amortizacao.Arredondar(p.ValorTotal * TaxaDescontoAntecipacao)
			dias = 0
		}
		cobrado := amortizacao.Arredondar(valorPago + multa - desconto)

		descricao := fmt.Sprintf("Pagamento parcela %d/%d — %s", p.Numero, f.Prazo, f.Descricao)
		if dto.Observacao != "" {
			descricao = fmt.Sprintf("%s (%s)", descricao, dto.Observacao)
		}
		l = &lancamento.Lancamento{
			UsuarioID:       usuarioID,
			Descricao:       descricao,
			Valor:           cobrado,
			Data:            dataPagamento,
			CategoriaID:     dto.CategoriaID,
			ContaID:         dto.ContaID,
			CartaoID:        dto.CartaoID,
			FinanciamentoID: &f.ID,
			ParcelaID:       &p.ID,
		}
		if err := lancamento.NewRepository(tx).Criar(l); err != nil {
			return err
		}

		p.Status = parcela.StatusPaga
		p.DataPagamento = &dataPagamento
		p.ValorPago = cobrado
		p.Multa = multa
		p.DescontoAntecipacao = desconto
		p.DiasAtraso = dias
		p.LancamentoID = &l.ID
		if err := parcelas.Update(p); err != nil {
			return err
		}

		saldoAnterior := f.SaldoDevedor
		f.SaldoDevedor = amortizacao.Arredondar(f.SaldoDevedor - p.Amortizacao)
		if f.SaldoDevedor < 0 {
			f.SaldoDevedor = 0
		}
		if err := RecalcularAgregados(tx, f); err != nil {
			return err
		}

		return historico.NewRepository(tx).Criar(&historico.HistoricoFinanciamento{
			FinanciamentoID: f.ID,
			TipoOperacao:    historico.OperacaoPagamento,
			SaldoAnterior:   saldoAnterior,
			SaldoPosterior:  f.SaldoDevedor,
			ParcelasPagas:   f.ParcelasPagas,
			ValorParcela:    f.ValorParcela,
			ValorOperacao:   cobrado,
			EconomiaJuros:   desconto,
		})
	})
	if err != nil {
		return nil, nil, err
	}
	if f.Status == StatusQuitado {
		go notificacao.EnviarWebhookQuitacao(f.ID, f.Descricao)
	}
	return p, l, nil
}

// RecalcularAgregados rederiva os contadores do financiamento a partir da
// coleção de parcelas, dentro da transação corrente, e persiste o resultado.
// Nunca confia em valores cacheados de chamadas anteriores.
func RecalcularAgregados(tx *gorm.DB, f *Financiamento) error {
	parcelas := parcela.NewRepository(tx)

	liquidadas, err := parcelas.CountLiquidadas(f.ID)
	if err != nil {
		return err
	}
	f.ParcelasPagas = int(liquidadas)

	proxima, err := parcelas.PrimeiraPendente(f.ID)
	if err != nil {
		return err
	}
	if proxima != nil {
		f.ValorParcela = proxima.ValorTotal
	} else {
		f.ValorParcela = 0
	}

	if proxima == nil || f.SaldoDevedor <= 0 {
		f.Status = StatusQuitado
		f.SaldoDevedor = 0
	}
	return NewRepository(tx).Update(f)
}

// Excluir remove o financiamento com parcelas e histórico em cascata,
// preservando os lançamentos do razão (só a referência reversa é anulada).
func (s *Service) Excluir(usuarioID, id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := NewRepository(tx).FindByID(usuarioID, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNaoEncontrado
			}
			return err
		}
		if err := lancamento.NewRepository(tx).DesvincularFinanciamento(id); err != nil {
			return err
		}
		if err := tx.Where("financiamento_id = ?", id).Delete(&parcela.Parcela{}).Error; err != nil {
			return err
		}
		if err := tx.Where("financiamento_id = ?", id).Delete(&historico.HistoricoFinanciamento{}).Error; err != nil {
			return err
		}
		return NewRepository(tx).Deletar(id)
	})
}
