package factors

import (
	"github.com/GriffinCanCode/econcalc/internal/finance/calc"
)

// Places is the display precision of rate, factor and result
const Places = 5

// Request applies a factor to an amount. Kind is a raw selector string.
type Request struct {
	Kind    string
	Amount  calc.Optional
	Rate    calc.Optional
	Periods calc.Optional
}

// Result is a resolved factor application
type Result struct {
	Kind        Kind        `json:"kind"`
	InputAmount float64     `json:"inputAmount"`
	Rate        calc.Output `json:"rate"`
	Periods     int         `json:"periods"`
	Factor      calc.Output `json:"factor"`
	Value       calc.Output `json:"result"`
}

// Fields flattens the result for transport
func (r *Result) Fields() map[string]interface{} {
	return map[string]interface{}{
		"kind":        string(r.Kind),
		"inputAmount": r.InputAmount,
		"rate":        r.Rate.String(),
		"periods":     r.Periods,
		"factor":      r.Factor.String(),
		"result":      r.Value.String(),
	}
}

// Resolve computes amount × factor(kind, rate, periods).
// Presence is checked explicitly, so a zero amount is valid.
func Resolve(req Request) (*Result, error) {
	const op = "factors.Resolve"

	names := []string{"amount", "rate", "periods"}
	missing := calc.Absent(names, req.Amount, req.Rate, req.Periods)
	if req.Kind == "" {
		missing = append([]string{"kind"}, missing...)
	}
	if len(missing) > 0 {
		return nil, calc.Missing(op, missing...)
	}

	kind, err := ParseKind(req.Kind)
	if err != nil {
		return nil, err
	}
	if err := calc.Finite(op, "amount", req.Amount.Value); err != nil {
		return nil, err
	}
	n, err := calc.Count(op, "periods", req.Periods.Value)
	if err != nil {
		return nil, err
	}

	f, err := Factor(kind, req.Rate.Value, n)
	if err != nil {
		return nil, err
	}
	v, err := calc.Result(op, req.Amount.Value*f)
	if err != nil {
		return nil, err
	}

	return &Result{
		Kind:        kind,
		InputAmount: req.Amount.Value,
		Rate:        calc.Figure(req.Rate.Value, Places),
		Periods:     n,
		Factor:      calc.Figure(f, Places),
		Value:       calc.Figure(v, Places),
	}, nil
}
