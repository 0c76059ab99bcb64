// Package factors computes the discrete compound-interest factors used to
// move single amounts and uniform series along a cash-flow timeline.
//
// Notation X/Y reads "find X given Y": F/P is the future worth of one unit
// of present value after n periods at rate i.
package factors

import (
	"math"
	"strings"

	"github.com/GriffinCanCode/econcalc/internal/finance/calc"
)

// Kind selects a factor
type Kind string

const (
	PF Kind = "P/F"
	FP Kind = "F/P"
	AF Kind = "A/F"
	FA Kind = "F/A"
	PA Kind = "P/A"
	AP Kind = "A/P"

	// Arithmetic gradient factors
	PG Kind = "P/G"
	AG Kind = "A/G"
)

// BaseKinds are the single-payment and uniform-series factors
var BaseKinds = []Kind{PF, FP, AF, FA, PA, AP}

// GradientKinds are the arithmetic-gradient factors
var GradientKinds = []Kind{PG, AG}

// allKinds is every selector ParseKind accepts
var allKinds = []Kind{PF, FP, AF, FA, PA, AP, PG, AG}

// ParseKind normalises a selector such as "f/p" to its Kind
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range allKinds {
		if k == known {
			return k, nil
		}
	}
	return "", calc.UnknownKind("factors.ParseKind", s, kindNames()...)
}

// BaseFactor returns the single-payment or uniform-series factor for i and n
func BaseFactor(kind Kind, i float64, n int) (float64, error) {
	const op = "factors.BaseFactor"
	if err := checkInputs(op, i, n); err != nil {
		return 0, err
	}

	g := math.Pow(1+i, float64(n))
	switch kind {
	case PF:
		return calc.Result(op, math.Pow(1+i, -float64(n)))
	case FP:
		return calc.Result(op, g)
	}

	// the series factors divide by i or by (1+i)^n − 1, both zero when i is
	if i == 0 {
		return 0, calc.Undefined(op, "%s is undefined for a zero rate", kind)
	}
	switch kind {
	case AF:
		return calc.Result(op, i/(g-1))
	case FA:
		return calc.Result(op, (g-1)/i)
	case PA:
		return calc.Result(op, (g-1)/(i*g))
	case AP:
		return calc.Result(op, (i*g)/(g-1))
	}
	return 0, calc.UnknownKind(op, string(kind), kindNames()...)
}

// GradientFactor returns the arithmetic-gradient factor for i and n
func GradientFactor(kind Kind, i float64, n int) (float64, error) {
	const op = "factors.GradientFactor"
	if err := checkInputs(op, i, n); err != nil {
		return 0, err
	}
	if kind != PG && kind != AG {
		return 0, calc.UnknownKind(op, string(kind), string(PG), string(AG))
	}
	if i == 0 {
		return 0, calc.Undefined(op, "%s is undefined for a zero rate", kind)
	}

	g := math.Pow(1+i, float64(n))
	nf := float64(n)
	if kind == PG {
		return calc.Result(op, (1/i)*((g-1)/(i*g)-nf/g))
	}
	return calc.Result(op, 1/i-nf/(g-1))
}

// Factor dispatches to BaseFactor or GradientFactor
func Factor(kind Kind, i float64, n int) (float64, error) {
	if kind == PG || kind == AG {
		return GradientFactor(kind, i, n)
	}
	return BaseFactor(kind, i, n)
}

func checkInputs(op string, i float64, n int) error {
	if err := calc.FactorRate(op, "rate", i); err != nil {
		return err
	}
	if n <= 0 {
		return calc.Invalid(op, "periods must be positive, got %d", n)
	}
	return nil
}

func kindNames() []string {
	names := make([]string, len(allKinds))
	for k, kind := range allKinds {
		names[k] = string(kind)
	}
	return names
}
