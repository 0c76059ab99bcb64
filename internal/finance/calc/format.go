package calc

import (
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"
)

// exactDigits is enough fractional digits to spell out any float64 exactly
const exactDigits = 1074

// Fixed renders x with exactly places decimals, rounding the exact binary
// value half away from zero. 1.005 is stored as 1.00499999999999989... and
// renders as "1.00". x must be finite.
func Fixed(x float64, places int32) string {
	return exact(x).StringFixed(places)
}

func exact(x float64) decimal.Decimal {
	d, err := decimal.NewFromString(strconv.FormatFloat(x, 'f', exactDigits, 64))
	if err != nil {
		return decimal.NewFromFloat(x)
	}
	return d
}

// Output is a derived figure and its display precision
type Output struct {
	Value  float64
	Places int32
}

// Figure builds an Output
func Figure(v float64, places int32) Output {
	return Output{Value: v, Places: places}
}

func (o Output) String() string {
	return Fixed(o.Value, o.Places)
}

// MarshalJSON renders the figure as a fixed-decimal string
func (o Output) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// Record flattens echoed inputs and derived outputs into one map.
// Inputs stay numbers, outputs become fixed-decimal strings.
func Record(inputs map[string]float64, outputs map[string]Output) map[string]interface{} {
	rec := make(map[string]interface{}, len(inputs)+len(outputs))
	for k, v := range inputs {
		rec[k] = v
	}
	for k, v := range outputs {
		rec[k] = v.String()
	}
	return rec
}
