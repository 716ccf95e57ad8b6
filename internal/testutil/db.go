// internal/testutil/db.go
package testutil

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/financaslar/api-financas/internal/categoria"
	"github.com/financaslar/api-financas/internal/conta"
	"github.com/financaslar/api-financas/internal/financiamento"
	"github.com/financaslar/api-financas/internal/historico"
	"github.com/financaslar/api-financas/internal/lancamento"
	"github.com/financaslar/api-financas/internal/parcela"
	"github.com/financaslar/api-financas/internal/usuario"
)

// BancoDeTeste abre um SQLite em memória com todo o esquema migrado. Cada
// teste recebe um banco próprio, nomeado pelo teste, para evitar interferência
// entre execuções paralelas.
func BancoDeTeste(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	for _, migrate := range []func(*gorm.DB) error{
		usuario.Migrate,
		categoria.Migrate,
		conta.Migrate,
		financiamento.Migrate,
		parcela.Migrate,
		historico.Migrate,
		lancamento.Migrate,
	} {
		require.NoError(t, migrate(db))
	}
	return db
}
