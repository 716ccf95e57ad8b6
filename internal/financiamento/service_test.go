// internal/financiamento/service_test.go
package financiamento_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/financaslar/api-financas/internal/amortizacao"
	"github.com/financaslar/api-financas/internal/categoria"
	"github.com/financaslar/api-financas/internal/financiamento"
	"github.com/financaslar/api-financas/internal/historico"
	"github.com/financaslar/api-financas/internal/lancamento"
	"github.com/financaslar/api-financas/internal/parcela"
	"github.com/financaslar/api-financas/internal/testutil"
	"github.com/financaslar/api-financas/internal/usuario"
)

// taxa anual equivalente a 1% ao mês.
var taxaAnual1PorCentoMes = math.Pow(1.01, 12) - 1

func novoUsuarioComCategoria(t *testing.T, db *gorm.DB) (uint, uint) {
	t.Helper()
	u := usuario.Usuario{Nome: "Teste", Email: t.Name() + "@exemplo.com", Senha: "hash"}
	require.NoError(t, db.Create(&u).Error)
	c := categoria.Categoria{UsuarioID: u.ID, Nome: "Moradia"}
	require.NoError(t, db.Create(&c).Error)
	return u.ID, c.ID
}

// financiamento PRICE a juro zero: todas as parcelas valem exatamente
// valor/prazo, o que deixa multas e descontos previsíveis nos testes.
func criarFinanciamentoSemJuros(t *testing.T, s *financiamento.Service, usuarioID, categoriaID uint, valor float64, prazo int) *financiamento.Financiamento {
	t.Helper()
	f, err := s.Criar(usuarioID, financiamento.CriarDTO{
		Descricao:           "Financiamento de teste",
		ValorTotal:          valor,
		TaxaAnual:           0,
		Prazo:               prazo,
		Sistema:             "PRICE",
		DataContratacao:     "2024-01-02",
		DataPrimeiraParcela: "2024-01-10",
		CategoriaID:         categoriaID,
	})
	require.NoError(t, err)
	return f
}

func TestCriarMaterializaParcelas(t *testing.T) {
	db := testutil.BancoDeTeste(t)
	usuarioID, categoriaID := novoUsuarioComCategoria(t, db)
	s := financiamento.NewService(db)

	f, err := s.Criar(usuarioID, financiamento.CriarDTO{
		Descricao:           "Apartamento",
		ValorTotal:          130000,
		Entrada:             10000,
		TaxaAnual:           taxaAnual1PorCentoMes,
		Prazo:               12,
		Sistema:             "sac",
		DataContratacao:     "2024-01-02",
		DataPrimeiraParcela: "2024-02-10",
		CategoriaID:         categoriaID,
	})
	require.NoError(t, err)

	assert.Equal(t, financiamento.StatusAtivo, f.Status)
	assert.Equal(t, amortizacao.SistemaSAC, f.Sistema)
	assert.InDelta(t, 120000, f.ValorFinanciado, 0.001)
	assert.InDelta(t, 120000, f.SaldoDevedor, 0.001)
	assert.Equal(t, 0, f.ParcelasPagas)

	require.Len(t, f.Parcelas, 12)
	for i, p := range f.Parcelas {
		assert.Equal(t, i+1, p.Numero)
		assert.Equal(t, parcela.StatusPendente, p.Status)
	}
	assert.InDelta(t, f.Parcelas[0].ValorTotal, f.ValorParcela, 0.001)

	var registros []historico.HistoricoFinanciamento
	require.NoError(t, db.Where("financiamento_id = ?", f.ID).Find(&registros).Error)
	require.Len(t, registros, 1)
	assert.Equal(t, historico.OperacaoCriacao, registros[0].TipoOperacao)
	assert.InDelta(t, 120000, registros[0].ValorOperacao, 0.001)
}

func TestCriarExigeCategoria(t *testing.T) {
	db := testutil.BancoDeTeste(t)
	usuarioID, _ := novoUsuarioComCategoria(t, db)
	s := financiamento.NewService(db)

	_, err := s.Criar(usuarioID, financiamento.CriarDTO{
		Descricao:           "Sem categoria",
		ValorTotal:          1000,
		Prazo:               2,
		Sistema:             "PRICE",
		DataPrimeiraParcela: "2024-01-10",
	})
	assert.ErrorIs(t, err, amortizacao.ErrParametroInvalido)
}

func TestRegistrarPagamentoComAtraso(t *testing.T) {
	db := testutil.BancoDeTeste(t)
	usuarioID, categoriaID := novoUsuarioComCategoria(t, db)
	s := financiamento.NewService(db)

	// 12 parcelas de 1000,00 vencendo a partir de 2024-01-10.
	f := criarFinanciamentoSemJuros(t, s, usuarioID, categoriaID, 12000, 12)
	primeira := f.Parcelas[0]
	require.InDelta(t, 1000, primeira.ValorTotal, 0.001)

	p, l, err := s.RegistrarPagamento(usuarioID, financiamento.PagamentoDTO{
		ParcelaID:     primeira.ID,
		DataPagamento: "2024-01-20",
		CategoriaID:   categoriaID,
	})
	require.NoError(t, err)

	// 10 dias de atraso: multa = 1000 × 0,0033 × 10.
	assert.Equal(t, 10, p.DiasAtraso)
	assert.InDelta(t, 33.00, p.Multa, 0.001)
	assert.InDelta(t, 1033.00, p.ValorPago, 0.001)
	assert.Equal(t, parcela.StatusPaga, p.Status)
	require.NotNil(t, p.LancamentoID)

	assert.InDelta(t, 1033.00, l.Valor, 0.001)
	assert.Equal(t, &f.ID, l.FinanciamentoID)
	assert.Contains(t, l.Descricao, "Pagamento parcela 1/12")

	atual, err := s.Repo.FindByID(usuarioID, f.ID)
	require.NoError(t, err)
	assert.InDelta(t, 11000, atual.SaldoDevedor, 0.001)
	assert.Equal(t, 1, atual.ParcelasPagas)

	var registros []historico.HistoricoFinanciamento
	require.NoError(t, db.Where("financiamento_id = ? AND tipo_operacao = ?", f.ID, historico.OperacaoPagamento).Find(&registros).Error)
	require.Len(t, registros, 1)
	assert.InDelta(t, 12000, registros[0].SaldoAnterior, 0.001)
	assert.InDelta(t, 11000, registros[0].SaldoPosterior, 0.001)
}

func TestRegistrarPagamentoAntecipadoTemDesconto(t *testing.T) {
	db := testutil.BancoDeTeste(t)
	usuarioID, categoriaID := novoUsuarioComCategoria(t, db)
	s := financiamento.NewService(db)

	f := criarFinanciamentoSemJuros(t, s, usuarioID, categoriaID, 12000, 12)

	p, _, err := s.RegistrarPagamento(usuarioID, financiamento.PagamentoDTO{
		ParcelaID:     f.Parcelas[0].ID,
		DataPagamento: "2024-01-05",
		CategoriaID:   categoriaID,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, p.DiasAtraso)
	assert.InDelta(t, 5.00, p.DescontoAntecipacao, 0.001)
	assert.InDelta(t, 995.00, p.ValorPago, 0.001)
}

func TestRegistrarPagamentoRejeitaParcelaJaPaga(t *testing.T) {
	db := testutil.BancoDeTeste(t)
	usuarioID, categoriaID := novoUsuarioComCategoria(t, db)
	s := financiamento.NewService(db)

	f := criarFinanciamentoSemJuros(t, s, usuarioID, categoriaID, 2000, 2)
	dto := financiamento.PagamentoDTO{
		ParcelaID:     f.Parcelas[0].ID,
		DataPagamento: "2024-01-10",
		CategoriaID:   categoriaID,
	}

	_, _, err := s.RegistrarPagamento(usuarioID, dto)
	require.NoError(t, err)

	_, _, err = s.RegistrarPagamento(usuarioID, dto)
	assert.ErrorIs(t, err, financiamento.ErrParcelaJaPaga)
}

func TestRegistrarPagamentoEscopoDeUsuario(t *testing.T) {
	db := testutil.BancoDeTeste(t)
	usuarioID, categoriaID := novoUsuarioComCategoria(t, db)
	s := financiamento.NewService(db)

	f := criarFinanciamentoSemJuros(t, s, usuarioID, categoriaID, 2000, 2)

	outro := usuario.Usuario{Nome: "Outro", Email: "outro@exemplo.com", Senha: "hash"}
	require.NoError(t, db.Create(&outro).Error)

	_, _, err := s.RegistrarPagamento(outro.ID, financiamento.PagamentoDTO{
		ParcelaID:     f.Parcelas[0].ID,
		DataPagamento: "2024-01-10",
		CategoriaID:   categoriaID,
	})
	assert.ErrorIs(t, err, financiamento.ErrNaoEncontrado)
}

func TestUltimoPagamentoQuitaFinanciamento(t *testing.T) {
	db := testutil.BancoDeTeste(t)
	usuarioID, categoriaID := novoUsuarioComCategoria(t, db)
	s := financiamento.NewService(db)

	f := criarFinanciamentoSemJuros(t, s, usuarioID, categoriaID, 2000, 2)

	for _, p := range f.Parcelas {
		_, _, err := s.RegistrarPagamento(usuarioID, financiamento.PagamentoDTO{
			ParcelaID:     p.ID,
			DataPagamento: p.DataVencimento.Format("2006-01-02"),
			CategoriaID:   categoriaID,
		})
		require.NoError(t, err)
	}

	atual, err := s.Repo.FindByID(usuarioID, f.ID)
	require.NoError(t, err)
	assert.Equal(t, financiamento.StatusQuitado, atual.Status)
	assert.Zero(t, atual.SaldoDevedor)
	assert.Zero(t, atual.ValorParcela)
	assert.Equal(t, 2, atual.ParcelasPagas)

	_, _, err = s.RegistrarPagamento(usuarioID, financiamento.PagamentoDTO{
		ParcelaID:     f.Parcelas[0].ID,
		DataPagamento: "2024-03-10",
		CategoriaID:   categoriaID,
	})
	assert.Error(t, err)
}

func TestSimularQuitacao(t *testing.T) {
	db := testutil.BancoDeTeste(t)
	usuarioID, categoriaID := novoUsuarioComCategoria(t, db)
	s := financiamento.NewService(db)

	f, err := s.Criar(usuarioID, financiamento.CriarDTO{
		Descricao:           "Carro",
		ValorTotal:          12000,
		TaxaAnual:           taxaAnual1PorCentoMes,
		Prazo:               12,
		Sistema:             "SAC",
		DataContratacao:     "2024-01-02",
		DataPrimeiraParcela: "2024-02-10",
		CategoriaID:         categoriaID,
	})
	require.NoError(t, err)

	quote, err := s.SimularQuitacao(usuarioID, f.ID, f.DataPrimeiraParcela)
	require.NoError(t, err)

	var jurosFuturos, totalRestante float64
	for _, p := range f.Parcelas {
		jurosFuturos += p.Juros
		totalRestante += p.ValorTotal
	}
	jurosFuturos = amortizacao.Arredondar(jurosFuturos)
	totalRestante = amortizacao.Arredondar(totalRestante)

	assert.Equal(t, 12, quote.ParcelasRestantes)
	assert.InDelta(t, jurosFuturos, quote.JurosFuturos, 0.001)
	assert.InDelta(t, amortizacao.Arredondar(jurosFuturos*financiamento.DescontoJurosQuitacao), quote.Desconto, 0.001)
	assert.InDelta(t, quote.SaldoDevedor-quote.Desconto, quote.ValorQuitacao, 0.01)
	assert.InDelta(t, totalRestante-quote.ValorQuitacao, quote.Economia, 0.01)
	assert.Greater(t, quote.Economia, 0.0)

	// Parcelas já liquidadas e vencidas antes da data ficam fora do orçamento.
	_, _, err = s.RegistrarPagamento(usuarioID, financiamento.PagamentoDTO{
		ParcelaID:     f.Parcelas[0].ID,
		DataPagamento: "2024-02-10",
		CategoriaID:   categoriaID,
	})
	require.NoError(t, err)

	depois, err := s.SimularQuitacao(usuarioID, f.ID, f.DataPrimeiraParcela)
	require.NoError(t, err)
	assert.Equal(t, 11, depois.ParcelasRestantes)
	assert.Less(t, depois.JurosFuturos, quote.JurosFuturos)
}

func TestExcluirPreservaLancamentos(t *testing.T) {
	db := testutil.BancoDeTeste(t)
	usuarioID, categoriaID := novoUsuarioComCategoria(t, db)
	s := financiamento.NewService(db)

	f := criarFinanciamentoSemJuros(t, s, usuarioID, categoriaID, 2000, 2)
	_, l, err := s.RegistrarPagamento(usuarioID, financiamento.PagamentoDTO{
		ParcelaID:     f.Parcelas[0].ID,
		DataPagamento: "2024-01-10",
		CategoriaID:   categoriaID,
	})
	require.NoError(t, err)

	require.NoError(t, s.Excluir(usuarioID, f.ID))

	_, err = s.Repo.FindByID(usuarioID, f.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var parcelas int64
	require.NoError(t, db.Model(&parcela.Parcela{}).Where("financiamento_id = ?", f.ID).Count(&parcelas).Error)
	assert.Zero(t, parcelas)

	var registros int64
	require.NoError(t, db.Model(&historico.HistoricoFinanciamento{}).Where("financiamento_id = ?", f.ID).Count(&registros).Error)
	assert.Zero(t, registros)

	// O razão sobrevive, apenas sem a referência reversa.
	var sobrevivente lancamento.Lancamento
	require.NoError(t, db.First(&sobrevivente, l.ID).Error)
	assert.Nil(t, sobrevivente.FinanciamentoID)
	assert.Nil(t, sobrevivente.ParcelaID)
}

func TestExcluirNaoEncontrado(t *testing.T) {
	db := testutil.BancoDeTeste(t)
	usuarioID, _ := novoUsuarioComCategoria(t, db)
	s := financiamento.NewService(db)

	err := s.Excluir(usuarioID, 9999)
	assert.ErrorIs(t, err, financiamento.ErrNaoEncontrado)
}
