package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// PercentChange calcula a variação percentual entre dois valores. Quando o
// valor anterior é zero, retorna 0 se o atual também for zero e 100 caso
// contrário. O denominador usa o valor absoluto para que uma melhora sobre
// uma base negativa apareça como variação positiva.
func PercentChange(current, previous float64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}

	return RoundWithTwoDecimalPlace(((current - previous) / math.Abs(previous)) * 100)
}
