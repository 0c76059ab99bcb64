package calc

import "math"

// Finite rejects NaN and infinite inputs
func Finite(op, name string, x float64) error {
	if math.IsNaN(x) {
		return Invalid(op, "%s is not a number", name)
	}
	if math.IsInf(x, 0) {
		return Invalid(op, "%s is infinite", name)
	}
	return nil
}

// Rate validates an interest rate. 1+i must stay positive.
func Rate(op, name string, i float64) error {
	if err := Finite(op, name, i); err != nil {
		return err
	}
	if i <= -1 {
		return Invalid(op, "%s must be greater than -1, got %g", name, i)
	}
	return nil
}

// FactorRate validates the rate of a factor or gradient formula, which is
// only defined for i >= 0
func FactorRate(op, name string, i float64) error {
	if err := Finite(op, name, i); err != nil {
		return err
	}
	if i < 0 {
		return Invalid(op, "%s must not be negative, got %g", name, i)
	}
	return nil
}

// Periods validates a positive period count
func Periods(op, name string, n float64) error {
	if err := Finite(op, name, n); err != nil {
		return err
	}
	if n <= 0 {
		return Invalid(op, "%s must be positive, got %g", name, n)
	}
	return nil
}

// Count validates a positive whole number and converts it
func Count(op, name string, n float64) (int, error) {
	if err := Periods(op, name, n); err != nil {
		return 0, err
	}
	if n != math.Trunc(n) {
		return 0, Invalid(op, "%s must be a whole number, got %g", name, n)
	}
	if n > math.MaxInt32 {
		return 0, Invalid(op, "%s is too large", name)
	}
	return int(n), nil
}

// Result turns a non-finite outcome into a DomainError
func Result(op string, x float64) (float64, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, Undefined(op, "result is undefined for the given inputs")
	}
	return x, nil
}
