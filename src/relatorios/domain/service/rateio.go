package service

import "github.com/shopspring/decimal"

// RatearAjuste distribui um ajuste compartilhado (o troco de uma venda)
// proporcionalmente entre os valores informados, devolvendo os valores já
// líquidos. Cada valor recebe ajuste * (valor / total) e nunca fica negativo.
//
// A função é pura e independente do domínio: serve para qualquer "resto"
// que precise ser abatido de um subconjunto de registros irmãos.
func RatearAjuste(ajuste decimal.Decimal, valores []decimal.Decimal) []decimal.Decimal {
	liquidos := make([]decimal.Decimal, len(valores))

	total := decimal.Zero
	for _, v := range valores {
		total = total.Add(v)
	}

	// Sem ajuste (ou sem base para ratear) os valores passam inalterados.
	if ajuste.LessThanOrEqual(decimal.Zero) || total.LessThanOrEqual(decimal.Zero) {
		copy(liquidos, valores)
		return liquidos
	}

	for i, v := range valores {
		parte := ajuste.Mul(v).Div(total)
		liquido := v.Sub(parte)
		if liquido.LessThan(decimal.Zero) {
			liquido = decimal.Zero
		}
		liquidos[i] = liquido
	}
	return liquidos
}
