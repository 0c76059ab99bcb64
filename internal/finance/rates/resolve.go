package rates

import (
	"github.com/GriffinCanCode/econcalc/internal/finance/calc"
)

// Mode names the known quantities of a conversion
type Mode string

const (
	ModeFromEffectivePeriod     Mode = "from_effective_period"
	ModeFromNominal             Mode = "from_nominal"
	ModeFromEffectiveAnnual     Mode = "from_effective_annual"
	ModeContinuousFromEffective Mode = "continuous_from_effective"
	ModeContinuousFromNominal   Mode = "continuous_from_nominal"
)

// Places is the display precision of every derived rate
const Places = 5

// Field names used in requests and results
const (
	FieldEffectivePerPeriod = "effectivePerPeriod"
	FieldNominalAnnual      = "nominalAnnual"
	FieldEffectiveAnnual    = "effectiveAnnual"
	FieldPeriodsPerYear     = "periodsPerYear"
)

// Modes lists the supported modes in inference priority order
var Modes = []Mode{
	ModeFromEffectivePeriod,
	ModeFromNominal,
	ModeFromEffectiveAnnual,
	ModeContinuousFromEffective,
	ModeContinuousFromNominal,
}

// Request carries the known rates. Mode is optional; when empty the first
// matching presence pattern in Modes order is used.
type Request struct {
	Mode               Mode
	EffectivePerPeriod calc.Optional
	NominalAnnual      calc.Optional
	EffectiveAnnual    calc.Optional
	PeriodsPerYear     calc.Optional
}

// Result holds echoed inputs and derived rates
type Result struct {
	Mode    Mode
	Inputs  map[string]float64
	Outputs map[string]calc.Output
}

// Fields flattens the result for transport
func (r *Result) Fields() map[string]interface{} {
	rec := calc.Record(r.Inputs, r.Outputs)
	rec["mode"] = string(r.Mode)
	return rec
}

// Resolve converts the known rates into the others
func Resolve(req Request) (*Result, error) {
	const op = "rates.Resolve"

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

	res := &Result{Mode: mode, Inputs: make(map[string]float64, 2), Outputs: make(map[string]calc.Output, 2)}
	for k, name := range names {
		res.Inputs[name] = values[k].Value
	}

	var m int
	if req.PeriodsPerYear.Set && mode != ModeContinuousFromEffective && mode != ModeContinuousFromNominal {
		if m, err = calc.Count(op, FieldPeriodsPerYear, req.PeriodsPerYear.Value); err != nil {
			return nil, err
		}
	}

	out := func(field string, v float64) error {
		v, err := calc.Result(op, v)
		if err != nil {
			return err
		}
		res.Outputs[field] = calc.Figure(v, Places)
		return nil
	}

	switch mode {
	case ModeFromEffectivePeriod:
		i := req.EffectivePerPeriod.Value
		if err := calc.Rate(op, FieldEffectivePerPeriod, i); err != nil {
			return nil, err
		}
		if err := out(FieldNominalAnnual, NominalAnnual(i, m)); err != nil {
			return nil, err
		}
		err = out(FieldEffectiveAnnual, EffectiveAnnual(i, m))
	case ModeFromNominal:
		r := req.NominalAnnual.Value
		if err := calc.Finite(op, FieldNominalAnnual, r); err != nil {
			return nil, err
		}
		i := EffectivePerPeriod(r, m)
		if err := calc.Rate(op, FieldEffectivePerPeriod, i); err != nil {
			return nil, err
		}
		if err := out(FieldEffectivePerPeriod, i); err != nil {
			return nil, err
		}
		err = out(FieldEffectiveAnnual, EffectiveAnnual(i, m))
	case ModeFromEffectiveAnnual:
		ia := req.EffectiveAnnual.Value
		if err := calc.Rate(op, FieldEffectiveAnnual, ia); err != nil {
			return nil, err
		}
		i := EffectivePerPeriodFromAnnual(ia, m)
		if err := out(FieldEffectivePerPeriod, i); err != nil {
			return nil, err
		}
		err = out(FieldNominalAnnual, NominalAnnual(i, m))
	case ModeContinuousFromEffective:
		i := req.EffectivePerPeriod.Value
		if err := calc.Rate(op, FieldEffectivePerPeriod, i); err != nil {
			return nil, err
		}
		err = out(FieldNominalAnnual, NominalContinuous(i))
	case ModeContinuousFromNominal:
		r := req.NominalAnnual.Value
		if err := calc.Finite(op, FieldNominalAnnual, r); err != nil {
			return nil, err
		}
		err = out(FieldEffectivePerPeriod, EffectiveContinuous(r))
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r Request) infer() (Mode, error) {
	i, nom, ia, m := r.EffectivePerPeriod.Set, r.NominalAnnual.Set, r.EffectiveAnnual.Set, r.PeriodsPerYear.Set
	switch {
	case i && m:
		return ModeFromEffectivePeriod, nil
	case nom && m:
		return ModeFromNominal, nil
	case ia && m:
		return ModeFromEffectiveAnnual, nil
	case i:
		return ModeContinuousFromEffective, nil
	case nom:
		return ModeContinuousFromNominal, nil
	}
	return "", calc.Missing("rates.Resolve", FieldEffectivePerPeriod+" or "+FieldNominalAnnual+
		" (with "+FieldPeriodsPerYear+" for discrete compounding)")
}

func requirements(op string, mode Mode, r Request) ([]string, []calc.Optional, error) {
	switch mode {
	case ModeFromEffectivePeriod:
		return []string{FieldEffectivePerPeriod, FieldPeriodsPerYear},
			[]calc.Optional{r.EffectivePerPeriod, r.PeriodsPerYear}, nil
	case ModeFromNominal:
		return []string{FieldNominalAnnual, FieldPeriodsPerYear},
			[]calc.Optional{r.NominalAnnual, r.PeriodsPerYear}, nil
	case ModeFromEffectiveAnnual:
		return []string{FieldEffectiveAnnual, FieldPeriodsPerYear},
			[]calc.Optional{r.EffectiveAnnual, r.PeriodsPerYear}, nil
	case ModeContinuousFromEffective:
		return []string{FieldEffectivePerPeriod}, []calc.Optional{r.EffectivePerPeriod}, nil
	case ModeContinuousFromNominal:
		return []string{FieldNominalAnnual}, []calc.Optional{r.NominalAnnual}, nil
	}
	names := make([]string, len(Modes))
	for k, m := range Modes {
		names[k] = string(m)
	}
	return nil, nil, calc.UnknownKind(op, string(mode), names...)
}
