package utils

import "math"

// RoundWithTwoDecimalPlace arredonda para duas casas decimais
func RoundWithTwoDecimalPlace(f float64) float64 {
	return math.Round(f*100) / 100
}

// Percent calcula part/total como percentual arredondado em duas casas.
// Total zero devolve 0 em vez de dividir por zero.
func Percent(part, total float64) float64 {
	if total == 0 {
		return 0
	}

	return RoundWithTwoDecimalPlace(part / total * 100)
}
