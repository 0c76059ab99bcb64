// Package tvm converts among present value, future value, interest rate and
// period count through the compound-interest relation F = P(1+i)^n.
package tvm

import (
	"math"

	"github.com/GriffinCanCode/econcalc/internal/finance/calc"
)

// FutureValue returns pv × (1+i)^n
func FutureValue(pv, i, n float64) (float64, error) {
	const op = "tvm.FutureValue"
	if err := checkInputs(op, pv, i, n); err != nil {
		return 0, err
	}
	return calc.Result(op, pv*math.Pow(1+i, n))
}

// PresentValue returns fv / (1+i)^n
func PresentValue(fv, i, n float64) (float64, error) {
	const op = "tvm.PresentValue"
	if err := checkInputs(op, fv, i, n); err != nil {
		return 0, err
	}
	return calc.Result(op, fv/math.Pow(1+i, n))
}

// Rate returns (fv/pv)^(1/n) − 1
func Rate(fv, pv, n float64) (float64, error) {
	const op = "tvm.Rate"
	if err := calc.Finite(op, "futureValue", fv); err != nil {
		return 0, err
	}
	if err := calc.Finite(op, "presentValue", pv); err != nil {
		return 0, err
	}
	if err := calc.Periods(op, "periods", n); err != nil {
		return 0, err
	}
	if pv == 0 {
		return 0, calc.Undefined(op, "presentValue must not be zero")
	}
	return calc.Result(op, math.Pow(fv/pv, 1/n)-1)
}

// Periods returns ln(fv/pv) / ln(1+i)
func Periods(fv, pv, i float64) (float64, error) {
	const op = "tvm.Periods"
	if err := calc.Finite(op, "futureValue", fv); err != nil {
		return 0, err
	}
	if err := calc.Finite(op, "presentValue", pv); err != nil {
		return 0, err
	}
	if err := calc.Rate(op, "rate", i); err != nil {
		return 0, err
	}
	if pv == 0 {
		return 0, calc.Undefined(op, "presentValue must not be zero")
	}
	if fv/pv <= 0 {
		return 0, calc.Undefined(op, "futureValue and presentValue must share a sign")
	}
	if i == 0 {
		return 0, calc.Undefined(op, "rate must not be zero")
	}
	return calc.Result(op, math.Log(fv/pv)/math.Log(1+i))
}

func checkInputs(op string, amount, i, n float64) error {
	if err := calc.Finite(op, "amount", amount); err != nil {
		return err
	}
	if err := calc.Rate(op, "rate", i); err != nil {
		return err
	}
	return calc.Periods(op, "periods", n)
}
