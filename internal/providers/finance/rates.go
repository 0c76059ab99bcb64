package finance

import (
	"context"

	"github.com/GriffinCanCode/econcalc/internal/finance/calc"
	"github.com/GriffinCanCode/econcalc/internal/finance/rates"
	"github.com/GriffinCanCode/econcalc/internal/shared/types"
)

var (
	rateEffective = param(rates.FieldEffectivePerPeriod, "number", "Effective rate per compounding period", false, "i")
	rateNominal   = param(rates.FieldNominalAnnual, "number", "Nominal annual rate", false, "r")
	rateAnnual    = param(rates.FieldEffectiveAnnual, "number", "Effective annual rate", false, "ia")
	ratePerYear   = param(rates.FieldPeriodsPerYear, "number", "Compounding periods per year", false, "m")
	rateMode      = param("mode", "string", "Known quantities: from_effective_period, from_nominal, from_effective_annual, continuous_from_effective or continuous_from_nominal", false)
)

// rateTool is a single-output view over one conversion mode
type rateTool struct {
	mode   rates.Mode
	output string
}

var rateTools = map[string]rateTool{
	"rates.nominal_annual":       {rates.ModeFromEffectivePeriod, rates.FieldNominalAnnual},
	"rates.effective_annual":     {rates.ModeFromEffectivePeriod, rates.FieldEffectiveAnnual},
	"rates.effective_period":     {rates.ModeFromNominal, rates.FieldEffectivePerPeriod},
	"rates.period_from_annual":   {rates.ModeFromEffectiveAnnual, rates.FieldEffectivePerPeriod},
	"rates.effective_continuous": {rates.ModeContinuousFromNominal, rates.FieldEffectivePerPeriod},
	"rates.nominal_continuous":   {rates.ModeContinuousFromEffective, rates.FieldNominalAnnual},
}

// Rates converts between nominal, effective and continuous rates
type Rates struct{}

// NewRates creates the rates provider
func NewRates() *Rates {
	return &Rates{}
}

// Definition returns service metadata
func (r *Rates) Definition() types.Service {
	return types.Service{
		ID:          "rates",
		Name:        "Rate Converter",
		Description: "Interest rate conversions between nominal, effective and continuous compounding",
		Category:    types.CategoryRates,
		Capabilities: []string{
			"nominal_rate",
			"effective_rate",
			"continuous_compounding",
		},
		Tools: []types.Tool{
			{
				ID:          "rates.resolve",
				Name:        "Resolve",
				Description: "Derive the remaining rates from the known ones",
				Parameters:  []types.Parameter{rateEffective, rateNominal, rateAnnual, ratePerYear, rateMode},
				Returns:     "object",
			},
			{
				ID:          "rates.nominal_annual",
				Name:        "Nominal Annual Rate",
				Description: "r = i·m",
				Parameters:  required(rateEffective, ratePerYear),
				Returns:     "object",
			},
			{
				ID:          "rates.effective_annual",
				Name:        "Effective Annual Rate",
				Description: "ia = (1+i)^m - 1",
				Parameters:  required(rateEffective, ratePerYear),
				Returns:     "object",
			},
			{
				ID:          "rates.effective_period",
				Name:        "Effective Rate per Period",
				Description: "i = r/m",
				Parameters:  required(rateNominal, ratePerYear),
				Returns:     "object",
			},
			{
				ID:          "rates.period_from_annual",
				Name:        "Period Rate from Annual",
				Description: "i = (1+ia)^(1/m) - 1",
				Parameters:  required(rateAnnual, ratePerYear),
				Returns:     "object",
			},
			{
				ID:          "rates.effective_continuous",
				Name:        "Effective Continuous Rate",
				Description: "i = e^r - 1",
				Parameters:  required(rateNominal),
				Returns:     "object",
			},
			{
				ID:          "rates.nominal_continuous",
				Name:        "Nominal Continuous Rate",
				Description: "r = ln(1+i)",
				Parameters:  required(rateEffective),
				Returns:     "object",
			},
		},
	}
}

// Execute routes to the rate conversion
func (r *Rates) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	var tool rateTool
	switch toolID {
	case "rates.resolve":
		s, err := GetString(params, rateMode)
		if err != nil {
			return Failure(err)
		}
		tool.mode = rates.Mode(s)
	default:
		fixed, ok := rateTools[toolID]
		if !ok {
			return unknownTool(toolID)
		}
		tool = fixed
	}

	in, err := numbers(params, rateEffective, rateNominal, rateAnnual, ratePerYear)
	if err != nil {
		return Failure(err)
	}

	res, err := rates.Resolve(rates.Request{
		Mode:               tool.mode,
		EffectivePerPeriod: in[0],
		NominalAnnual:      in[1],
		EffectiveAnnual:    in[2],
		PeriodsPerYear:     in[3],
	})
	if err != nil {
		return Failure(err)
	}

	if tool.output != "" {
		res.Outputs = map[string]calc.Output{tool.output: res.Outputs[tool.output]}
	}
	return Success(res.Fields())
}
