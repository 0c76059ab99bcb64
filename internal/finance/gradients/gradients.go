// Package gradients works with arithmetic-gradient cash-flow series, where
// each period's amount differs from the previous one by a constant G.
//
// Two families of calculation live here. Factor conversions move between a
// gradient and its present, annual or future equivalent at rate i. Endpoint
// calculations relate the first amount, the last amount and the gradient of
// a series without any interest rate.
package gradients

import (
	"math"
	"strings"

	"github.com/GriffinCanCode/econcalc/internal/finance/calc"
)

// Kind selects a gradient calculation
type Kind string

const (
	PG Kind = "P/G"
	AG Kind = "A/G"
	FG Kind = "F/G"
	GP Kind = "G/P"
	GA Kind = "G/A"
	GF Kind = "G/F"

	// Endpoint calculations
	KindGradient Kind = "G"
	KindFinal    Kind = "CFn"
)

// FactorKinds are the conversions that need a rate
var FactorKinds = []Kind{PG, AG, FG, GP, GA, GF}

// parseable holds every selector ParseKind accepts besides CFn
var parseable = []Kind{PG, AG, FG, GP, GA, GF, KindGradient}

// ParseKind normalises a selector such as "p/g" or "cfn"
func ParseKind(s string) (Kind, error) {
	k := strings.ToUpper(strings.TrimSpace(s))
	if k == strings.ToUpper(string(KindFinal)) {
		return KindFinal, nil
	}
	for _, known := range parseable {
		if Kind(k) == known {
			return known, nil
		}
	}
	return "", calc.UnknownKind("gradients.ParseKind", s, kindNames()...)
}

// IsFactor reports whether k is a rate-based conversion
func (k Kind) IsFactor() bool {
	for _, f := range FactorKinds {
		if k == f {
			return true
		}
	}
	return false
}

// PresentWorth returns the P/G factor (1/i)·[((1+i)^n−1)/(i(1+i)^n) − n/(1+i)^n]
func PresentWorth(i float64, n int) float64 {
	g := math.Pow(1+i, float64(n))
	return (1 / i) * ((g-1)/(i*g) - float64(n)/g)
}

// AnnualWorth returns the A/G factor 1/i − n/((1+i)^n−1)
func AnnualWorth(i float64, n int) float64 {
	return 1/i - float64(n)/(math.Pow(1+i, float64(n))-1)
}

// FutureWorth returns the F/G factor ((1+i)^n−1)/i − n. Reference tables
// print this value divided by i.
func FutureWorth(i float64, n int) float64 {
	return (math.Pow(1+i, float64(n))-1)/i - float64(n)
}

// Factor converts g with the selected factor at rate i over n periods.
// X/G kinds multiply g by the factor, G/X kinds divide by it.
func Factor(kind Kind, g, i float64, n int) (float64, error) {
	const op = "gradients.Factor"
	if err := calc.Finite(op, "gradient", g); err != nil {
		return 0, err
	}
	if err := calc.FactorRate(op, "rate", i); err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, calc.Invalid(op, "periods must be positive, got %d", n)
	}
	if !kind.IsFactor() {
		return 0, calc.UnknownKind(op, string(kind), factorNames()...)
	}
	if i == 0 {
		return 0, calc.Undefined(op, "%s is undefined for a zero rate", kind)
	}

	var v float64
	switch kind {
	case PG:
		v = g * PresentWorth(i, n)
	case AG:
		v = g * AnnualWorth(i, n)
	case FG:
		v = g * FutureWorth(i, n)
	case GP:
		v = g / PresentWorth(i, n)
	case GA:
		v = g / AnnualWorth(i, n)
	case GF:
		v = g / FutureWorth(i, n)
	}
	return calc.Result(op, v)
}

// GradientFromEndpoints returns the constant step (final − base)/(n − 1)
func GradientFromEndpoints(base, final float64, n int) (float64, error) {
	const op = "gradients.GradientFromEndpoints"
	if err := calc.Finite(op, "baseAmount", base); err != nil {
		return 0, err
	}
	if err := calc.Finite(op, "finalAmount", final); err != nil {
		return 0, err
	}
	if n <= 1 {
		return 0, calc.Invalid(op, "periods must be greater than 1, got %d", n)
	}
	return calc.Result(op, (final-base)/float64(n-1))
}

// FinalFromGradient returns the last amount base + (n − 1)·gradient
func FinalFromGradient(base, gradient float64, n int) (float64, error) {
	const op = "gradients.FinalFromGradient"
	if err := calc.Finite(op, "baseAmount", base); err != nil {
		return 0, err
	}
	if err := calc.Finite(op, "gradient", gradient); err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, calc.Invalid(op, "periods must be positive, got %d", n)
	}
	return calc.Result(op, base+float64(n-1)*gradient)
}

func factorNames() []string {
	names := make([]string, len(FactorKinds))
	for k, f := range FactorKinds {
		names[k] = string(f)
	}
	return names
}

func kindNames() []string {
	return append(factorNames(), string(KindGradient), string(KindFinal))
}
