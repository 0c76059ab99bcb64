// Package finance exposes the calculation modules as registry providers.
//
// Four services are provided:
//   - values: present value, future value, rate and period conversions
//   - rates: nominal, effective and continuous rate conversions
//   - factors: standard interest factors applied to an amount
//   - gradients: arithmetic gradient factors and series endpoints
//
// Parameters arrive as a loosely typed map (JSON body, query string or
// scenario file). Each parameter has an English name and optional legacy
// aliases; numbers may be JSON numbers or numeric strings, and an empty
// string counts as absent.
//
// Calculation failures are reported as a failed types.Result whose Code is
// the error kind. Execute only returns a Go error for an unknown tool.
package finance
