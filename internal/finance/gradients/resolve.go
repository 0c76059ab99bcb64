package gradients

import (
	"github.com/GriffinCanCode/econcalc/internal/finance/calc"
)

// Places is the display precision of every derived amount
const Places = 5

// Mode is the calculation family a request resolved to
type Mode string

const (
	ModeFactor   Mode = "factor"
	ModeGradient Mode = "gradient"
	ModeFinal    Mode = "final_amount"
)

// Field names used in requests and results
const (
	FieldGradient       = "gradient"
	FieldRate           = "rate"
	FieldPeriods        = "periods"
	FieldBaseAmount     = "baseAmount"
	FieldFinalAmount    = "finalAmount"
	FieldGradientAmount = "gradientAmount"
	FieldResult         = "result"
)

// Request covers both calculation families. Gradient is the amount a
// factor converts; GradientAmount is the known step of an endpoint series.
type Request struct {
	Kind           string
	Gradient       calc.Optional
	Rate           calc.Optional
	Periods        calc.Optional
	BaseAmount     calc.Optional
	FinalAmount    calc.Optional
	GradientAmount calc.Optional
}

// Result holds echoed inputs and derived amounts
type Result struct {
	Kind    Kind
	Mode    Mode
	Inputs  map[string]float64
	Outputs map[string]calc.Output
}

// Fields flattens the result for transport
func (r *Result) Fields() map[string]interface{} {
	rec := calc.Record(r.Inputs, r.Outputs)
	rec["kind"] = string(r.Kind)
	rec["mode"] = string(r.Mode)
	return rec
}

// Resolve selects the calculation family and runs it. A present gradient
// selects factor mode; otherwise the kind decides between the endpoint
// calculations.
func Resolve(req Request) (*Result, error) {
	const op = "gradients.Resolve"

	if req.Kind == "" {
		return nil, calc.Missing(op, "kind")
	}
	kind, err := ParseKind(req.Kind)
	if err != nil {
		return nil, err
	}

	switch {
	case req.Gradient.Set || kind.IsFactor():
		return resolveFactor(op, kind, req)
	case kind == KindGradient:
		return resolveGradient(op, req)
	case kind == KindFinal:
		return resolveFinal(op, req)
	}
	return nil, calc.UnknownKind(op, req.Kind, kindNames()...)
}

func resolveFactor(op string, kind Kind, req Request) (*Result, error) {
	if !kind.IsFactor() {
		return nil, calc.UnknownKind(op, string(kind), factorNames()...)
	}
	names := []string{FieldGradient, FieldRate, FieldPeriods}
	values := []calc.Optional{req.Gradient, req.Rate, req.Periods}
	if missing := calc.Absent(names, values...); len(missing) > 0 {
		return nil, calc.Missing(op, missing...)
	}
	n, err := calc.Count(op, FieldPeriods, req.Periods.Value)
	if err != nil {
		return nil, err
	}
	v, err := Factor(kind, req.Gradient.Value, req.Rate.Value, n)
	if err != nil {
		return nil, err
	}
	return &Result{
		Kind:    kind,
		Mode:    ModeFactor,
		Inputs:  echo(names, values),
		Outputs: map[string]calc.Output{FieldResult: calc.Figure(v, Places)},
	}, nil
}

func resolveGradient(op string, req Request) (*Result, error) {
	names := []string{FieldBaseAmount, FieldFinalAmount, FieldPeriods}
	values := []calc.Optional{req.BaseAmount, req.FinalAmount, req.Periods}
	if missing := calc.Absent(names, values...); len(missing) > 0 {
		return nil, calc.Missing(op, missing...)
	}
	n, err := calc.Count(op, FieldPeriods, req.Periods.Value)
	if err != nil {
		return nil, err
	}
	g, err := GradientFromEndpoints(req.BaseAmount.Value, req.FinalAmount.Value, n)
	if err != nil {
		return nil, err
	}
	return &Result{
		Kind:    KindGradient,
		Mode:    ModeGradient,
		Inputs:  echo(names, values),
		Outputs: map[string]calc.Output{FieldGradientAmount: calc.Figure(g, Places)},
	}, nil
}

// resolveFinal needs the step; when only the endpoints are known the step is
// derived from them first and the last amount recomputed from it.
func resolveFinal(op string, req Request) (*Result, error) {
	if !req.BaseAmount.Set || !req.Periods.Set || (!req.GradientAmount.Set && !req.FinalAmount.Set) {
		missing := calc.Absent([]string{FieldBaseAmount, FieldPeriods}, req.BaseAmount, req.Periods)
		if !req.GradientAmount.Set && !req.FinalAmount.Set {
			missing = append(missing, FieldGradientAmount)
		}
		return nil, calc.Missing(op, missing...)
	}
	n, err := calc.Count(op, FieldPeriods, req.Periods.Value)
	if err != nil {
		return nil, err
	}

	names := []string{FieldBaseAmount, FieldPeriods}
	values := []calc.Optional{req.BaseAmount, req.Periods}
	outputs := make(map[string]calc.Output, 2)

	step := req.GradientAmount.Value
	if req.GradientAmount.Set {
		names = append(names, FieldGradientAmount)
		values = append(values, req.GradientAmount)
	} else {
		if step, err = GradientFromEndpoints(req.BaseAmount.Value, req.FinalAmount.Value, n); err != nil {
			return nil, err
		}
		outputs[FieldGradientAmount] = calc.Figure(step, Places)
	}

	final, err := FinalFromGradient(req.BaseAmount.Value, step, n)
	if err != nil {
		return nil, err
	}
	outputs[FieldFinalAmount] = calc.Figure(final, Places)

	return &Result{
		Kind:    KindFinal,
		Mode:    ModeFinal,
		Inputs:  echo(names, values),
		Outputs: outputs,
	}, nil
}

func echo(names []string, values []calc.Optional) map[string]float64 {
	in := make(map[string]float64, len(names))
	for k, name := range names {
		in[name] = values[k].Value
	}
	return in
}
