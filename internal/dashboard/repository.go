// internal/dashboard/repository.go
package dashboard

import (
	"time"

	"github.com/financaslar/api-financas/internal/amortizacao"
	"github.com/financaslar/api-financas/internal/financiamento"
	"github.com/financaslar/api-financas/internal/parcela"
	"gorm.io/gorm"
)

// Repository materializa os agregados do painel direto do banco. Somente
// leitura; nenhuma query aqui altera estado.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Resumo monta a posição consolidada de financiamentos do usuário na data de
// referência, listando até maxProximas parcelas a vencer.
func (r *Repository) Resumo(usuarioID uint, referencia time.Time, maxProximas int) (*ResumoFinanciamentos, error) {
	resumo := &ResumoFinanciamentos{}

	type totais struct {
		Financiado float64
		Saldo      float64
	}
	var t totais
	err := r.DB.Model(&financiamento.Financiamento{}).
		Where("usuario_id = ?", usuarioID).
		Select("COALESCE(SUM(valor_financiado + tarifa_administracao), 0) AS financiado, COALESCE(SUM(saldo_devedor), 0) AS saldo").
		Scan(&t).Error
	if err != nil {
		return nil, err
	}
	resumo.TotalFinanciado = amortizacao.Arredondar(t.Financiado)
	resumo.SaldoDevedor = amortizacao.Arredondar(t.Saldo)
	resumo.TotalPago = amortizacao.Arredondar(t.Financiado - t.Saldo)

	if err := r.DB.Model(&financiamento.Financiamento{}).
		Where("usuario_id = ? AND status IN ?", usuarioID,
			[]financiamento.Status{financiamento.StatusAtivo, financiamento.StatusEmAtraso}).
		Count(&resumo.Ativos).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&financiamento.Financiamento{}).
		Where("usuario_id = ? AND status = ?", usuarioID, financiamento.StatusQuitado).
		Count(&resumo.Quitados).Error; err != nil {
		return nil, err
	}

	// Total a vencer no mês corrente (parcelas ainda pendentes)
	inicioMes := time.Date(referencia.Year(), referencia.Month(), 1, 0, 0, 0, 0, referencia.Location())
	fimMes := inicioMes.AddDate(0, 1, 0)
	var totalMes float64
	err = r.DB.Model(&parcela.Parcela{}).
		Joins("JOIN financiamentos ON financiamentos.id = parcelas.financiamento_id").
		Where("financiamentos.usuario_id = ?", usuarioID).
		Where("parcelas.status = ?", parcela.StatusPendente).
		Where("parcelas.data_vencimento >= ? AND parcelas.data_vencimento < ?", inicioMes, fimMes).
		Select("COALESCE(SUM(parcelas.valor_total), 0)").
		Scan(&totalMes).Error
	if err != nil {
		return nil, err
	}
	resumo.TotalMesCorrente = amortizacao.Arredondar(totalMes)

	var taxaMedia float64
	err = r.DB.Model(&financiamento.Financiamento{}).
		Where("usuario_id = ? AND status IN ?", usuarioID,
			[]financiamento.Status{financiamento.StatusAtivo, financiamento.StatusEmAtraso}).
		Select("COALESCE(AVG(taxa_anual), 0)").
		Scan(&taxaMedia).Error
	if err != nil {
		return nil, err
	}
	resumo.TaxaMediaAnual = taxaMedia

	if maxProximas <= 0 {
		maxProximas = 5
	}
	err = r.DB.Model(&parcela.Parcela{}).
		Joins("JOIN financiamentos ON financiamentos.id = parcelas.financiamento_id").
		Where("financiamentos.usuario_id = ?", usuarioID).
		Where("parcelas.status = ?", parcela.StatusPendente).
		Where("parcelas.data_vencimento >= ?", referencia).
		Order("parcelas.data_vencimento ASC").
		Limit(maxProximas).
		Select("parcelas.id AS parcela_id, parcelas.financiamento_id, financiamentos.descricao, parcelas.numero, parcelas.data_vencimento, parcelas.valor_total").
		Scan(&resumo.ProximasParcelas).Error
	if err != nil {
		return nil, err
	}

	return resumo, nil
}
