package finance

import (
	"context"

	"github.com/GriffinCanCode/econcalc/internal/finance/calc"
	"github.com/GriffinCanCode/econcalc/internal/finance/factors"
	"github.com/GriffinCanCode/econcalc/internal/shared/types"
)

var (
	factorKind    = param("kind", "string", "Factor notation: P/F, F/P, A/F, F/A, P/A, A/P, P/G or A/G", true, "tipo")
	factorAmount  = param("amount", "number", "Amount the factor is applied to", true, "valor")
	factorRate    = param("rate", "number", "Interest rate per period as a decimal", true, "i")
	factorPeriods = param("periods", "number", "Whole number of periods", true, "n")
)

// Factors applies standard interest factors
type Factors struct{}

// NewFactors creates the factors provider
func NewFactors() *Factors {
	return &Factors{}
}

// Definition returns service metadata
func (f *Factors) Definition() types.Service {
	return types.Service{
		ID:          "factors",
		Name:        "Factor Resolver",
		Description: "Standard interest factors for single payments, uniform series and gradients applied to an amount",
		Category:    types.CategoryFactors,
		Capabilities: []string{
			"single_payment",
			"uniform_series",
			"capital_recovery",
			"sinking_fund",
		},
		Tools: []types.Tool{
			{
				ID:          "factors.resolve",
				Name:        "Apply Factor",
				Description: "result = amount × factor(kind, i, n)",
				Parameters:  []types.Parameter{factorKind, factorAmount, factorRate, factorPeriods},
				Returns:     "object",
			},
			{
				ID:          "factors.factor",
				Name:        "Factor Value",
				Description: "Value of factor(kind, i, n)",
				Parameters:  []types.Parameter{factorKind, factorRate, factorPeriods},
				Returns:     "object",
			},
		},
	}
}

// Execute routes to the factor calculation
func (f *Factors) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	if toolID != "factors.resolve" && toolID != "factors.factor" {
		return unknownTool(toolID)
	}

	kind, err := GetString(params, factorKind)
	if err != nil {
		return Failure(err)
	}
	in, err := numbers(params, factorAmount, factorRate, factorPeriods)
	if err != nil {
		return Failure(err)
	}

	req := factors.Request{Kind: kind, Amount: in[0], Rate: in[1], Periods: in[2]}
	if toolID == "factors.factor" {
		req.Amount = calc.Some(1)
	}

	res, err := factors.Resolve(req)
	if err != nil {
		return Failure(err)
	}

	data := res.Fields()
	if toolID == "factors.factor" {
		delete(data, "inputAmount")
		delete(data, "result")
	}
	return Success(data)
}
