package tvm

import (
	"github.com/GriffinCanCode/econcalc/internal/finance/calc"
)

// Mode names the quantity to derive
type Mode string

const (
	ModeRate         Mode = "rate"
	ModePeriods      Mode = "periods"
	ModeFutureValue  Mode = "future_value"
	ModePresentValue Mode = "present_value"
)

// Display precision per derived quantity
const (
	RatePlaces    = 4
	PeriodsPlaces = 2
	AmountPlaces  = 2
)

// Field names used in requests and results
const (
	FieldFutureValue  = "futureValue"
	FieldPresentValue = "presentValue"
	FieldRate         = "rate"
	FieldPeriods      = "periods"
)

// Modes lists the supported modes in inference priority order
var Modes = []Mode{ModeRate, ModePeriods, ModeFutureValue, ModePresentValue}

// Request carries the known quantities. Mode is optional; when empty it is
// inferred from which fields are present.
type Request struct {
	Mode         Mode
	FutureValue  calc.Optional
	PresentValue calc.Optional
	Rate         calc.Optional
	Periods      calc.Optional
}

// Result holds the echoed inputs and the derived quantity
type Result struct {
	Mode    Mode
	Inputs  map[string]float64
	Field   string
	Derived calc.Output
}

// Fields flattens the result for transport
func (r *Result) Fields() map[string]interface{} {
	rec := calc.Record(r.Inputs, map[string]calc.Output{r.Field: r.Derived})
	rec["mode"] = string(r.Mode)
	return rec
}

// Resolve derives the missing quantity
func Resolve(req Request) (*Result, error) {
	const op = "tvm.Resolve"

	mode := req.Mode
	if mode == "" {
		inferred, err := req.infer()
		if err != nil {
			return nil, err
		}
		mode = inferred
	}

	names, values, err := requirements(op, mode, req)
	if err != nil {
		return nil, err
	}
	if missing := calc.Absent(names, values...); len(missing) > 0 {
		return nil, calc.Missing(op, missing...)
	}

	fv, pv, i, n := req.FutureValue.Value, req.PresentValue.Value, req.Rate.Value, req.Periods.Value
	res := &Result{Mode: mode, Inputs: make(map[string]float64, 3)}
	for k, name := range names {
		res.Inputs[name] = values[k].Value
	}

	var v float64
	switch mode {
	case ModeRate:
		v, err = Rate(fv, pv, n)
		res.Field, res.Derived = FieldRate, calc.Figure(v, RatePlaces)
	case ModePeriods:
		v, err = Periods(fv, pv, i)
		res.Field, res.Derived = FieldPeriods, calc.Figure(v, PeriodsPlaces)
	case ModeFutureValue:
		v, err = FutureValue(pv, i, n)
		res.Field, res.Derived = FieldFutureValue, calc.Figure(v, AmountPlaces)
	case ModePresentValue:
		v, err = PresentValue(fv, i, n)
		res.Field, res.Derived = FieldPresentValue, calc.Figure(v, AmountPlaces)
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

// infer picks the mode from field presence, first match wins
func (r Request) infer() (Mode, error) {
	fv, pv, i, n := r.FutureValue.Set, r.PresentValue.Set, r.Rate.Set, r.Periods.Set
	switch {
	case fv && pv && n:
		return ModeRate, nil
	case fv && pv && i:
		return ModePeriods, nil
	case pv && i && n:
		return ModeFutureValue, nil
	case fv && i && n:
		return ModePresentValue, nil
	}
	return "", calc.Missing("tvm.Resolve", "three of futureValue, presentValue, rate, periods")
}

func requirements(op string, mode Mode, r Request) ([]string, []calc.Optional, error) {
	switch mode {
	case ModeRate:
		return []string{FieldFutureValue, FieldPresentValue, FieldPeriods},
			[]calc.Optional{r.FutureValue, r.PresentValue, r.Periods}, nil
	case ModePeriods:
		return []string{FieldFutureValue, FieldPresentValue, FieldRate},
			[]calc.Optional{r.FutureValue, r.PresentValue, r.Rate}, nil
	case ModeFutureValue:
		return []string{FieldPresentValue, FieldRate, FieldPeriods},
			[]calc.Optional{r.PresentValue, r.Rate, r.Periods}, nil
	case ModePresentValue:
		return []string{FieldFutureValue, FieldRate, FieldPeriods},
			[]calc.Optional{r.FutureValue, r.Rate, r.Periods}, nil
	}
	return nil, nil, calc.UnknownKind(op, string(mode), modeNames()...)
}

func modeNames() []string {
	names := make([]string, len(Modes))
	for k, m := range Modes {
		names[k] = string(m)
	}
	return names
}
