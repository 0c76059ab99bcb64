package finance

import (
	"context"

	"github.com/GriffinCanCode/econcalc/internal/finance/calc"
	"github.com/GriffinCanCode/econcalc/internal/finance/gradients"
	"github.com/GriffinCanCode/econcalc/internal/shared/types"
)

var (
	gradientKind     = param("kind", "string", "P/G, A/G, F/G, G/P, G/A, G/F, G or CFn", true, "tipo")
	gradientValue    = param(gradients.FieldGradient, "number", "Amount the gradient factor converts", false, "g")
	gradientRate     = param(gradients.FieldRate, "number", "Interest rate per period as a decimal", false, "i")
	gradientPeriods  = param(gradients.FieldPeriods, "number", "Whole number of periods", false, "n")
	gradientBase     = param(gradients.FieldBaseAmount, "number", "First amount of the series", false, "cantidadBase")
	gradientFinal    = param(gradients.FieldFinalAmount, "number", "Last amount of the series", false, "ultimaCantidad")
	gradientStep     = param(gradients.FieldGradientAmount, "number", "Constant step between amounts", false, "gradiente")
	gradientFixedFor = map[string]gradients.Kind{
		"gradients.from_endpoints": gradients.KindGradient,
		"gradients.final_amount":   gradients.KindFinal,
	}
)

// Gradients works with arithmetic gradient series
type Gradients struct{}

// NewGradients creates the gradients provider
func NewGradients() *Gradients {
	return &Gradients{}
}

// Definition returns service metadata
func (g *Gradients) Definition() types.Service {
	return types.Service{
		ID:          "gradients",
		Name:        "Gradient Resolver",
		Description: "Arithmetic gradient series factors and series endpoints",
		Category:    types.CategoryGradients,
		Capabilities: []string{
			"gradient_factor",
			"gradient_series",
			"final_amount",
		},
		Tools: []types.Tool{
			{
				ID:          "gradients.resolve",
				Name:        "Resolve",
				Description: "Factor conversion or endpoint calculation selected by kind",
				Parameters: []types.Parameter{
					gradientKind, gradientValue, gradientRate, gradientPeriods,
					gradientBase, gradientFinal, gradientStep,
				},
				Returns: "object",
			},
			{
				ID:          "gradients.factor",
				Name:        "Gradient Factor",
				Description: "Convert between a gradient and its present, annual or future equivalent",
				Parameters:  append([]types.Parameter{gradientKind}, required(gradientValue, gradientRate, gradientPeriods)...),
				Returns:     "object",
			},
			{
				ID:          "gradients.from_endpoints",
				Name:        "Gradient from Endpoints",
				Description: "G = (last - first)/(n - 1)",
				Parameters:  required(gradientBase, gradientFinal, gradientPeriods),
				Returns:     "object",
			},
			{
				ID:          "gradients.final_amount",
				Name:        "Final Amount",
				Description: "last = first + (n - 1)·G",
				Parameters:  append(required(gradientBase, gradientPeriods), gradientStep, gradientFinal),
				Returns:     "object",
			},
		},
	}
}

// Execute routes to the gradient calculation
func (g *Gradients) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	kind, err := GetString(params, gradientKind)
	if err != nil {
		return Failure(err)
	}

	switch toolID {
	case "gradients.resolve":
	case "gradients.factor":
		if kind != "" {
			parsed, err := gradients.ParseKind(kind)
			if err != nil {
				return Failure(err)
			}
			if !parsed.IsFactor() {
				return Failure(calc.UnknownKind("gradients.factor", kind, factorKindNames()...))
			}
		}
	default:
		fixed, ok := gradientFixedFor[toolID]
		if !ok {
			return unknownTool(toolID)
		}
		kind = string(fixed)
	}

	in, err := numbers(params, gradientValue, gradientRate, gradientPeriods, gradientBase, gradientFinal, gradientStep)
	if err != nil {
		return Failure(err)
	}

	res, err := gradients.Resolve(gradients.Request{
		Kind:           kind,
		Gradient:       in[0],
		Rate:           in[1],
		Periods:        in[2],
		BaseAmount:     in[3],
		FinalAmount:    in[4],
		GradientAmount: in[5],
	})
	if err != nil {
		return Failure(err)
	}
	return Success(res.Fields())
}

func factorKindNames() []string {
	names := make([]string, len(gradients.FactorKinds))
	for k, kind := range gradients.FactorKinds {
		names[k] = string(kind)
	}
	return names
}
