package finance

import (
	"context"

	"github.com/GriffinCanCode/econcalc/internal/finance/tvm"
	"github.com/GriffinCanCode/econcalc/internal/shared/types"
)

var (
	valueFuture  = param(tvm.FieldFutureValue, "number", "Future value F", false, "VF")
	valuePresent = param(tvm.FieldPresentValue, "number", "Present value P", false, "VP")
	valueRate    = param(tvm.FieldRate, "number", "Interest rate per period as a decimal", false, "i")
	valuePeriods = param(tvm.FieldPeriods, "number", "Number of periods", false, "n")
	valueMode    = param("mode", "string", "Quantity to derive: rate, periods, future_value or present_value", false)
)

// valueTools maps single-purpose tools to their fixed mode
var valueTools = map[string]tvm.Mode{
	"values.future_value":  tvm.ModeFutureValue,
	"values.present_value": tvm.ModePresentValue,
	"values.rate":          tvm.ModeRate,
	"values.periods":       tvm.ModePeriods,
}

// Values converts among present value, future value, rate and periods
type Values struct{}

// NewValues creates the values provider
func NewValues() *Values {
	return &Values{}
}

// Definition returns service metadata
func (v *Values) Definition() types.Service {
	return types.Service{
		ID:          "values",
		Name:        "Value Converter",
		Description: "Compound interest conversions between present value, future value, interest rate and number of periods",
		Category:    types.CategoryValues,
		Capabilities: []string{
			"future_value",
			"present_value",
			"interest_rate",
			"number_of_periods",
		},
		Tools: []types.Tool{
			{
				ID:          "values.resolve",
				Name:        "Resolve",
				Description: "Derive the missing quantity from any three of F, P, i and n",
				Parameters:  []types.Parameter{valueFuture, valuePresent, valueRate, valuePeriods, valueMode},
				Returns:     "object",
			},
			{
				ID:          "values.future_value",
				Name:        "Future Value",
				Description: "F = P(1+i)^n",
				Parameters:  required(valuePresent, valueRate, valuePeriods),
				Returns:     "object",
			},
			{
				ID:          "values.present_value",
				Name:        "Present Value",
				Description: "P = F/(1+i)^n",
				Parameters:  required(valueFuture, valueRate, valuePeriods),
				Returns:     "object",
			},
			{
				ID:          "values.rate",
				Name:        "Interest Rate",
				Description: "i = (F/P)^(1/n) - 1",
				Parameters:  required(valueFuture, valuePresent, valuePeriods),
				Returns:     "object",
			},
			{
				ID:          "values.periods",
				Name:        "Number of Periods",
				Description: "n = ln(F/P)/ln(1+i)",
				Parameters:  required(valueFuture, valuePresent, valueRate),
				Returns:     "object",
			},
		},
		DataModels: []types.DataModel{
			{
				Name: "ValueResult",
				Fields: map[string]string{
					"mode":         "string",
					"futureValue":  "number|string",
					"presentValue": "number|string",
					"rate":         "number|string",
					"periods":      "number|string",
				},
			},
		},
	}
}

// Execute routes to the value conversion
func (v *Values) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	var mode tvm.Mode
	switch toolID {
	case "values.resolve":
		s, err := GetString(params, valueMode)
		if err != nil {
			return Failure(err)
		}
		mode = tvm.Mode(s)
	default:
		fixed, ok := valueTools[toolID]
		if !ok {
			return unknownTool(toolID)
		}
		mode = fixed
	}

	in, err := numbers(params, valueFuture, valuePresent, valueRate, valuePeriods)
	if err != nil {
		return Failure(err)
	}

	res, err := tvm.Resolve(tvm.Request{
		Mode:         mode,
		FutureValue:  in[0],
		PresentValue: in[1],
		Rate:         in[2],
		Periods:      in[3],
	})
	if err != nil {
		return Failure(err)
	}
	return Success(res.Fields())
}

// required marks copies of the parameters as required
func required(ps ...types.Parameter) []types.Parameter {
	out := make([]types.Parameter, len(ps))
	for k, p := range ps {
		p.Required = true
		out[k] = p
	}
	return out
}
