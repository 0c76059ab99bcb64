// Package rates converts among nominal annual, effective per-period,
// effective annual and continuously compounded interest rates.
//
// Symbols follow the usual textbook notation:
//
//	i   effective rate per compounding period
//	r   nominal annual rate
//	ia  effective annual rate
//	m   compounding periods per year
package rates

import (
	"math"
)

// NominalAnnual returns r = i × m
func NominalAnnual(i float64, m int) float64 {
	return i * float64(m)
}

// EffectivePerPeriod returns i = r / m
func EffectivePerPeriod(r float64, m int) float64 {
	return r / float64(m)
}

// EffectiveAnnual returns ia = (1+i)^m − 1
func EffectiveAnnual(i float64, m int) float64 {
	return math.Pow(1+i, float64(m)) - 1
}

// EffectivePerPeriodFromAnnual returns i = (1+ia)^(1/m) − 1
func EffectivePerPeriodFromAnnual(ia float64, m int) float64 {
	return math.Pow(1+ia, 1/float64(m)) - 1
}

// EffectiveContinuous returns i = e^r − 1
func EffectiveContinuous(r float64) float64 {
	return math.Exp(r) - 1
}

// NominalContinuous returns r = ln(1+i)
func NominalContinuous(i float64) float64 {
	return math.Log(1 + i)
}
