// internal/amortizacao/comparador.go
package amortizacao

import (
	"fmt"
	"time"
)

// AlternativaComparada é o resumo de um sistema dentro de uma comparação,
// acrescido do delta de juros em relação à referência (PRICE).
type AlternativaComparada struct {
	Resumo
	// DeltaJurosVsPrice é TotalJuros do sistema menos TotalJuros do PRICE;
	// negativo significa que o sistema paga menos juros que o PRICE.
	DeltaJurosVsPrice float64 `json:"deltaJurosVsPrice"`
}

// Comparacao é o resultado de CompararSistemas.
type Comparacao struct {
	Alternativas []AlternativaComparada `json:"alternativas"`
	Recomendado  Sistema                `json:"recomendado"`
}

// CompararSistemas roda o cronograma uma vez por sistema informado e recomenda
// o de menor total pago. O PRICE é sempre calculado como referência para o
// delta de juros, mesmo que não esteja na lista. Função pura, sem efeitos.
func CompararSistemas(valorFinanciado, taxaAnual float64, prazo int, dataPrimeiraParcela time.Time, sistemas []Sistema) (*Comparacao, error) {
	if len(sistemas) == 0 {
		sistemas = Sistemas
	}

	base := Parametros{
		ValorFinanciado:     valorFinanciado,
		TaxaAnual:           taxaAnual,
		Prazo:               prazo,
		DataPrimeiraParcela: dataPrimeiraParcela,
		Sistema:             SistemaPrice,
	}
	cronogramaPrice, err := CalcularCronograma(base)
	if err != nil {
		return nil, err
	}
	referencia := Resumir(SistemaPrice, cronogramaPrice, 0)

	comp := &Comparacao{Alternativas: make([]AlternativaComparada, 0, len(sistemas))}
	menorTotal := 0.0
	for i, sistema := range sistemas {
		if !sistema.Valido() {
			return nil, fmt.Errorf("%w: sistema de amortização desconhecido %q", ErrParametroInvalido, string(sistema))
		}
		params := base
		params.Sistema = sistema

		cronograma, err := CalcularCronograma(params)
		if err != nil {
			return nil, err
		}
		resumo := Resumir(sistema, cronograma, 0)
		comp.Alternativas = append(comp.Alternativas, AlternativaComparada{
			Resumo:            resumo,
			DeltaJurosVsPrice: Arredondar(resumo.TotalJuros - referencia.TotalJuros),
		})

		if i == 0 || resumo.TotalPago < menorTotal {
			menorTotal = resumo.TotalPago
			comp.Recomendado = sistema
		}
	}
	return comp, nil
}
