// internal/amortizacao/sistema.go
package amortizacao

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Sistema identifica o sistema de amortização do financiamento.
type Sistema string

const (
	// SistemaPrice mantém parcelas fixas (Tabela Price).
	SistemaPrice Sistema = "PRICE"
	// SistemaSAC amortiza valor constante; parcelas decrescentes.
	SistemaSAC Sistema = "SAC"
	// SistemaSACRE mistura PRICE e SAC por terços do prazo.
	SistemaSACRE Sistema = "SACRE"
	// SistemaAmericano paga só juros; principal integral na última parcela.
	SistemaAmericano Sistema = "AMERICANO"
	// SistemaBullet concentra tudo em uma única parcela com juros simples.
	SistemaBullet Sistema = "BULLET"
)

// Sistemas lista todos os sistemas suportados, na ordem de apresentação.
var Sistemas = []Sistema{SistemaPrice, SistemaSAC, SistemaSACRE, SistemaAmericano, SistemaBullet}

// Valido informa se o sistema é um dos suportados.
func (s Sistema) Valido() bool {
	switch s {
	case SistemaPrice, SistemaSAC, SistemaSACRE, SistemaAmericano, SistemaBullet:
		return true
	}
	return false
}

// ParseSistema normaliza e valida o nome de um sistema vindo da API.
func ParseSistema(nome string) (Sistema, error) {
	s := Sistema(strings.ToUpper(strings.TrimSpace(nome)))
	if !s.Valido() {
		return "", fmt.Errorf("%w: sistema de amortização desconhecido %q", ErrParametroInvalido, nome)
	}
	return s, nil
}

// TaxaMensal converte taxa nominal anual em taxa efetiva mensal:
// (1+anual)^(1/12) − 1.
func TaxaMensal(taxaAnual float64) float64 {
	return math.Pow(1+taxaAnual, 1.0/12.0) - 1
}

// Arredondar fixa um valor monetário em 2 casas decimais.
func Arredondar(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
