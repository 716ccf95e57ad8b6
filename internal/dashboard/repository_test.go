// internal/dashboard/repository_test.go
package dashboard_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/financaslar/api-financas/internal/categoria"
	"github.com/financaslar/api-financas/internal/dashboard"
	"github.com/financaslar/api-financas/internal/financiamento"
	"github.com/financaslar/api-financas/internal/testutil"
	"github.com/financaslar/api-financas/internal/usuario"
)

func criarCenario(t *testing.T, db *gorm.DB) (uint, *financiamento.Financiamento) {
	t.Helper()

	u := usuario.Usuario{Nome: "Teste", Email: t.Name() + "@exemplo.com", Senha: "hash"}
	require.NoError(t, db.Create(&u).Error)
	c := categoria.Categoria{UsuarioID: u.ID, Nome: "Financiamentos"}
	require.NoError(t, db.Create(&c).Error)

	f, err := financiamento.NewService(db).Criar(u.ID, financiamento.CriarDTO{
		Descricao:           "Apartamento",
		ValorTotal:          12000,
		TaxaAnual:           math.Pow(1.01, 12) - 1,
		Prazo:               12,
		Sistema:             "SAC",
		DataContratacao:     "2024-01-02",
		DataPrimeiraParcela: "2024-02-10",
		CategoriaID:         c.ID,
	})
	require.NoError(t, err)
	return u.ID, f
}

func TestResumoConsolidaPosicao(t *testing.T) {
	db := testutil.BancoDeTeste(t)
	usuarioID, f := criarCenario(t, db)

	referencia := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	resumo, err := dashboard.NewRepository(db).Resumo(usuarioID, referencia, 3)
	require.NoError(t, err)

	assert.InDelta(t, 12000, resumo.TotalFinanciado, 0.001)
	assert.InDelta(t, 12000, resumo.SaldoDevedor, 0.001)
	assert.Zero(t, resumo.TotalPago)
	assert.EqualValues(t, 1, resumo.Ativos)
	assert.EqualValues(t, 0, resumo.Quitados)
	assert.InDelta(t, f.TaxaAnual, resumo.TaxaMediaAnual, 0.0001)

	// Só a parcela de fevereiro vence no mês de referência.
	assert.InDelta(t, f.Parcelas[0].ValorTotal, resumo.TotalMesCorrente, 0.001)

	require.Len(t, resumo.ProximasParcelas, 3)
	assert.Equal(t, f.Parcelas[0].ID, resumo.ProximasParcelas[0].ParcelaID)
	assert.Equal(t, "Apartamento", resumo.ProximasParcelas[0].Descricao)
	assert.True(t, resumo.ProximasParcelas[0].DataVencimento.Before(resumo.ProximasParcelas[1].DataVencimento))
}

func TestResumoReagePagamento(t *testing.T) {
	db := testutil.BancoDeTeste(t)
	usuarioID, f := criarCenario(t, db)

	_, _, err := financiamento.NewService(db).RegistrarPagamento(usuarioID, financiamento.PagamentoDTO{
		ParcelaID:     f.Parcelas[0].ID,
		DataPagamento: "2024-02-10",
		CategoriaID:   f.CategoriaID,
	})
	require.NoError(t, err)

	referencia := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	resumo, err := dashboard.NewRepository(db).Resumo(usuarioID, referencia, 1)
	require.NoError(t, err)

	assert.Greater(t, resumo.TotalPago, 0.0)
	assert.Less(t, resumo.SaldoDevedor, 12000.0)
	// A parcela paga sai do total do mês e da fila de próximas.
	assert.Zero(t, resumo.TotalMesCorrente)
	require.Len(t, resumo.ProximasParcelas, 1)
	assert.Equal(t, 2, resumo.ProximasParcelas[0].Numero)
}

func TestResumoIsolaUsuarios(t *testing.T) {
	db := testutil.BancoDeTeste(t)
	criarCenario(t, db)

	outro := usuario.Usuario{Nome: "Outro", Email: "outro@exemplo.com", Senha: "hash"}
	require.NoError(t, db.Create(&outro).Error)

	resumo, err := dashboard.NewRepository(db).Resumo(outro.ID, time.Now(), 5)
	require.NoError(t, err)

	assert.Zero(t, resumo.TotalFinanciado)
	assert.EqualValues(t, 0, resumo.Ativos)
	assert.Empty(t, resumo.ProximasParcelas)
}
