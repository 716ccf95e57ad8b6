// internal/amortizacao/engine.go
package amortizacao

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrParametroInvalido indica entrada rejeitada antes de qualquer cálculo.
var ErrParametroInvalido = errors.New("parâmetro inválido")

// Parametros descreve uma simulação de cronograma.
type Parametros struct {
	ValorFinanciado     float64
	TaxaAnual           float64 // nominal ao ano, ex.: 0.12 = 12%
	Prazo               int     // em meses
	DataPrimeiraParcela time.Time
	Sistema             Sistema
	SeguroMensal        float64
	TarifaAdministracao float64 // incorporada ao principal antes do cálculo
}

// ParcelaSimulada é uma linha do cronograma de amortização.
type ParcelaSimulada struct {
	Numero         int       `json:"numero"`
	DataVencimento time.Time `json:"dataVencimento"`
	SaldoInicial   float64   `json:"saldoInicial"`
	Juros          float64   `json:"juros"`
	Amortizacao    float64   `json:"amortizacao"`
	Seguro         float64   `json:"seguro"`
	ValorTotal     float64   `json:"valorTotal"`
	SaldoFinal     float64   `json:"saldoFinal"`
}

// Resumo condensa um cronograma para comparação e exibição.
type Resumo struct {
	Sistema              Sistema `json:"sistema"`
	Prazo                int     `json:"prazo"`
	TotalPago            float64 `json:"totalPago"`
	TotalJuros           float64 `json:"totalJuros"`
	TotalSeguro          float64 `json:"totalSeguro"`
	MenorParcela         float64 `json:"menorParcela"`
	MaiorParcela         float64 `json:"maiorParcela"`
	ComprometimentoRenda float64 `json:"comprometimentoRenda,omitempty"`
}

func validar(p Parametros) error {
	if p.ValorFinanciado <= 0 {
		return fmt.Errorf("%w: valor financiado deve ser positivo", ErrParametroInvalido)
	}
	if p.Prazo <= 0 {
		return fmt.Errorf("%w: prazo deve ser positivo", ErrParametroInvalido)
	}
	if p.TaxaAnual < 0 {
		return fmt.Errorf("%w: taxa anual não pode ser negativa", ErrParametroInvalido)
	}
	if !p.Sistema.Valido() {
		return fmt.Errorf("%w: sistema de amortização desconhecido %q", ErrParametroInvalido, string(p.Sistema))
	}
	return nil
}

// CalcularCronograma gera o cronograma completo de parcelas para os parâmetros
// informados. A tarifa de administração é somada ao principal; o seguro entra
// como adicional fixo por período, fora da incidência de juros. O resíduo de
// arredondamento é sempre absorvido pela amortização da última parcela, de
// modo que a soma das amortizações feche exatamente no principal.
func CalcularCronograma(p Parametros) ([]ParcelaSimulada, error) {
	if err := validar(p); err != nil {
		return nil, err
	}

	principal := Arredondar(p.ValorFinanciado + p.TarifaAdministracao)
	r := TaxaMensal(p.TaxaAnual)

	switch p.Sistema {
	case SistemaPrice:
		return cronogramaPrice(p, principal, r), nil
	case SistemaSAC:
		return cronogramaSAC(p, principal, r), nil
	case SistemaSACRE:
		return cronogramaSACRE(p, principal, r), nil
	case SistemaAmericano:
		return cronogramaAmericano(p, principal, r), nil
	case SistemaBullet:
		return cronogramaBullet(p, principal, r), nil
	}
	return nil, fmt.Errorf("%w: sistema de amortização desconhecido %q", ErrParametroInvalido, string(p.Sistema))
}

// ValorParcelaPrice devolve a prestação fixa da Tabela Price.
func ValorParcelaPrice(principal, taxaMensal float64, prazo int) float64 {
	if taxaMensal == 0 {
		return Arredondar(principal / float64(prazo))
	}
	fator := math.Pow(1+taxaMensal, float64(prazo))
	return Arredondar(principal * taxaMensal * fator / (fator - 1))
}

func vencimento(p Parametros, k int) time.Time {
	return p.DataPrimeiraParcela.AddDate(0, k-1, 0)
}

func cronogramaPrice(p Parametros, principal, r float64) []ParcelaSimulada {
	pmt := ValorParcelaPrice(principal, r, p.Prazo)
	parcelas := make([]ParcelaSimulada, 0, p.Prazo)

	saldo := principal
	amortizado := 0.0
	for k := 1; k <= p.Prazo; k++ {
		juros := Arredondar(saldo * r)
		amort := Arredondar(pmt - juros)
		saldoFinal := Arredondar(saldo - amort)
		if k == p.Prazo {
			// Última parcela zera o saldo e absorve o resíduo de centavos.
			amort = Arredondar(principal - amortizado)
			saldoFinal = 0
		}
		parcelas = append(parcelas, ParcelaSimulada{
			Numero:         k,
			DataVencimento: vencimento(p, k),
			SaldoInicial:   saldo,
			Juros:          juros,
			Amortizacao:    amort,
			Seguro:         p.SeguroMensal,
			ValorTotal:     Arredondar(amort + juros + p.SeguroMensal),
			SaldoFinal:     saldoFinal,
		})
		saldo = saldoFinal
		amortizado = Arredondar(amortizado + amort)
	}
	return parcelas
}

func cronogramaSAC(p Parametros, principal, r float64) []ParcelaSimulada {
	amortBase := Arredondar(principal / float64(p.Prazo))
	parcelas := make([]ParcelaSimulada, 0, p.Prazo)

	saldo := principal
	amortizado := 0.0
	for k := 1; k <= p.Prazo; k++ {
		juros := Arredondar(saldo * r)
		amort := amortBase
		saldoFinal := Arredondar(saldo - amort)
		if k == p.Prazo {
			amort = Arredondar(principal - amortizado)
			saldoFinal = 0
		}
		parcelas = append(parcelas, ParcelaSimulada{
			Numero:         k,
			DataVencimento: vencimento(p, k),
			SaldoInicial:   saldo,
			Juros:          juros,
			Amortizacao:    amort,
			Seguro:         p.SeguroMensal,
			ValorTotal:     Arredondar(amort + juros + p.SeguroMensal),
			SaldoFinal:     saldoFinal,
		})
		saldo = saldoFinal
		amortizado = Arredondar(amortizado + amort)
	}
	return parcelas
}

// pesoPrice devolve o peso da componente PRICE no SACRE conforme o terço do
// prazo em que a parcela cai: 70/30 no primeiro, 50/50 no segundo, 30/70 no
// último.
func pesoPrice(k, prazo int) float64 {
	switch {
	case k*3 <= prazo:
		return 0.70
	case k*3 <= 2*prazo:
		return 0.50
	default:
		return 0.30
	}
}

func cronogramaSACRE(p Parametros, principal, r float64) []ParcelaSimulada {
	pmt := ValorParcelaPrice(principal, r, p.Prazo)
	amortSAC := principal / float64(p.Prazo)
	parcelas := make([]ParcelaSimulada, 0, p.Prazo)

	// O saldo do período seguinte deriva da amortização ponderada; os valores
	// PRICE/SAC de cada período são calculados sobre esse mesmo saldo.
	saldo := principal
	amortizado := 0.0
	for k := 1; k <= p.Prazo; k++ {
		juros := Arredondar(saldo * r)
		amortPrice := pmt - saldo*r
		peso := pesoPrice(k, p.Prazo)
		amort := Arredondar(peso*amortPrice + (1-peso)*amortSAC)
		saldoFinal := Arredondar(saldo - amort)
		if k == p.Prazo {
			amort = Arredondar(principal - amortizado)
			saldoFinal = 0
		}
		parcelas = append(parcelas, ParcelaSimulada{
			Numero:         k,
			DataVencimento: vencimento(p, k),
			SaldoInicial:   saldo,
			Juros:          juros,
			Amortizacao:    amort,
			Seguro:         p.SeguroMensal,
			ValorTotal:     Arredondar(amort + juros + p.SeguroMensal),
			SaldoFinal:     saldoFinal,
		})
		saldo = saldoFinal
		amortizado = Arredondar(amortizado + amort)
	}
	return parcelas
}

func cronogramaAmericano(p Parametros, principal, r float64) []ParcelaSimulada {
	parcelas := make([]ParcelaSimulada, 0, p.Prazo)
	juros := Arredondar(principal * r)

	for k := 1; k <= p.Prazo; k++ {
		amort := 0.0
		saldoFinal := principal
		if k == p.Prazo {
			amort = principal
			saldoFinal = 0
		}
		parcelas = append(parcelas, ParcelaSimulada{
			Numero:         k,
			DataVencimento: vencimento(p, k),
			SaldoInicial:   principal,
			Juros:          juros,
			Amortizacao:    amort,
			Seguro:         p.SeguroMensal,
			ValorTotal:     Arredondar(amort + juros + p.SeguroMensal),
			SaldoFinal:     saldoFinal,
		})
	}
	return parcelas
}

func cronogramaBullet(p Parametros, principal, r float64) []ParcelaSimulada {
	// Juros simples sobre o prazo inteiro, pagos junto com o principal na
	// única parcela. O seguro do período inteiro também é cobrado nela.
	juros := Arredondar(principal * r * float64(p.Prazo))
	seguro := Arredondar(p.SeguroMensal * float64(p.Prazo))

	return []ParcelaSimulada{{
		Numero:         1,
		DataVencimento: vencimento(p, p.Prazo),
		SaldoInicial:   principal,
		Juros:          juros,
		Amortizacao:    principal,
		Seguro:         seguro,
		ValorTotal:     Arredondar(principal + juros + seguro),
		SaldoFinal:     0,
	}}
}

// Resumir extrai os agregados de um cronograma. Se rendaMensal for positiva,
// calcula o comprometimento de renda pela maior parcela.
func Resumir(sistema Sistema, parcelas []ParcelaSimulada, rendaMensal float64) Resumo {
	res := Resumo{Sistema: sistema, Prazo: len(parcelas)}
	if len(parcelas) == 0 {
		return res
	}

	res.MenorParcela = parcelas[0].ValorTotal
	for _, pc := range parcelas {
		res.TotalPago = Arredondar(res.TotalPago + pc.ValorTotal)
		res.TotalJuros = Arredondar(res.TotalJuros + pc.Juros)
		res.TotalSeguro = Arredondar(res.TotalSeguro + pc.Seguro)
		if pc.ValorTotal < res.MenorParcela {
			res.MenorParcela = pc.ValorTotal
		}
		if pc.ValorTotal > res.MaiorParcela {
			res.MaiorParcela = pc.ValorTotal
		}
	}
	if rendaMensal > 0 {
		res.ComprometimentoRenda = Arredondar(res.MaiorParcela / rendaMensal * 100)
	}
	return res
}
