package finance

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/GriffinCanCode/econcalc/internal/finance/calc"
	"github.com/GriffinCanCode/econcalc/internal/shared/types"
)

// param declares an input with its legacy aliases
func param(name, typ, desc string, required bool, aliases ...string) types.Parameter {
	return types.Parameter{Name: name, Type: typ, Description: desc, Required: required, Aliases: aliases}
}

// lookup returns the first non-empty value under the name or an alias
func lookup(params map[string]interface{}, p types.Parameter) (interface{}, bool) {
	for _, key := range append([]string{p.Name}, p.Aliases...) {
		v, ok := params[key]
		if !ok || v == nil {
			continue
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
			continue
		}
		return v, true
	}
	return nil, false
}

// GetNumber extracts an optional number. Absent and empty values are None;
// anything present that is not a number is a ValidationError.
func GetNumber(params map[string]interface{}, p types.Parameter) (calc.Optional, error) {
	raw, ok := lookup(params, p)
	if !ok {
		return calc.None(), nil
	}

	var v float64
	switch n := raw.(type) {
	case float64:
		v = n
	case float32:
		v = float64(n)
	case int:
		v = float64(n)
	case int32:
		v = float64(n)
	case int64:
		v = float64(n)
	case uint64:
		v = float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return calc.None(), notNumber(p.Name, raw)
		}
		v = f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return calc.None(), notNumber(p.Name, raw)
		}
		v = f
	default:
		return calc.None(), notNumber(p.Name, raw)
	}

	if err := calc.Finite("finance.params", p.Name, v); err != nil {
		return calc.None(), err
	}
	return calc.Some(v), nil
}

// GetString extracts an optional string
func GetString(params map[string]interface{}, p types.Parameter) (string, error) {
	raw, ok := lookup(params, p)
	if !ok {
		return "", nil
	}
	s, isStr := raw.(string)
	if !isStr {
		return "", calc.Invalid("finance.params", "parameter %s must be a string, got %T", p.Name, raw)
	}
	return strings.TrimSpace(s), nil
}

// numbers extracts several parameters, stopping at the first bad value
func numbers(params map[string]interface{}, ps ...types.Parameter) ([]calc.Optional, error) {
	out := make([]calc.Optional, len(ps))
	for k, p := range ps {
		v, err := GetNumber(params, p)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}

func notNumber(name string, raw interface{}) error {
	return calc.Invalid("finance.params", "parameter %s is not a number: %s", name, fmt.Sprint(raw))
}

// Success creates a successful result
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure turns a calculation error into a failed result
func Failure(err error) (*types.Result, error) {
	msg := err.Error()
	code := string(calc.KindOf(err))
	if code == "" {
		code = "InternalError"
	}
	return &types.Result{Success: false, Error: &msg, Code: code}, nil
}

func unknownTool(toolID string) (*types.Result, error) {
	msg := fmt.Sprintf("unknown tool: %s", toolID)
	return &types.Result{Success: false, Error: &msg, Code: string(calc.KindInvalidKind)}, fmt.Errorf("%s", msg)
}
