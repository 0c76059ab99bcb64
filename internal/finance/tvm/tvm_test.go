package tvm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/GriffinCanCode/econcalc/internal/finance/calc"
)

func TestFormulas(t *testing.T) {
	t.Run("future value", func(t *testing.T) {
		fv, err := FutureValue(1000, 0.05, 10)
		require.NoError(t, err)
		assert.InDelta(t, 1628.89, fv, 0.01)
	})

	t.Run("present value", func(t *testing.T) {
		pv, err := PresentValue(1628.89, 0.05, 10)
		require.NoError(t, err)
		assert.InDelta(t, 1000, pv, 0.01)
	})

	t.Run("rate", func(t *testing.T) {
		i, err := Rate(2000, 1000, 12)
		require.NoError(t, err)
		assert.InDelta(t, 0.05946, i, 1e-5)
	})

	t.Run("periods", func(t *testing.T) {
		n, err := Periods(2000, 1000, 0.06)
		require.NoError(t, err)
		assert.InDelta(t, 11.8957, n, 1e-4)
	})
}

func TestRoundTrips(t *testing.T) {
	for _, pv := range []float64{1, 250, 10000} {
		for _, i := range []float64{0.005, 0.05, 0.2} {
			for _, n := range []float64{1, 7, 30} {
				fv, err := FutureValue(pv, i, n)
				require.NoError(t, err)

				back, err := PresentValue(fv, i, n)
				require.NoError(t, err)
				assert.True(t, scalar.EqualWithinAbsOrRel(pv, back, 1e-9, 1e-12), "pv %g back %g", pv, back)

				rate, err := Rate(fv, pv, n)
				require.NoError(t, err)
				assert.True(t, scalar.EqualWithinAbsOrRel(i, rate, 1e-12, 1e-9), "i %g rate %g", i, rate)

				periods, err := Periods(fv, pv, i)
				require.NoError(t, err)
				assert.True(t, scalar.EqualWithinAbsOrRel(n, periods, 1e-9, 1e-9), "n %g periods %g", n, periods)
			}
		}
	}
}

func TestFormulaDomain(t *testing.T) {
	_, err := Periods(1100, 1000, 0)
	assert.ErrorIs(t, err, calc.ErrDomain)

	_, err = Periods(1100, 0, 0.05)
	assert.ErrorIs(t, err, calc.ErrDomain)

	_, err = Periods(-1100, 1000, 0.05)
	assert.ErrorIs(t, err, calc.ErrDomain)

	_, err = FutureValue(1000, -1.5, 2)
	assert.ErrorIs(t, err, calc.ErrValidation)
}

func TestNonPositivePeriods(t *testing.T) {
	for _, n := range []float64{0, -10} {
		_, err := FutureValue(1000, 0.05, n)
		assert.ErrorIs(t, err, calc.ErrValidation, "future value n=%g", n)

		_, err = PresentValue(1000, 0.05, n)
		assert.ErrorIs(t, err, calc.ErrValidation, "present value n=%g", n)

		_, err = Rate(1100, 1000, n)
		assert.ErrorIs(t, err, calc.ErrValidation, "rate n=%g", n)
	}

	_, err := Resolve(Request{PresentValue: calc.Some(1000), Rate: calc.Some(0.05), Periods: calc.Some(0)})
	assert.ErrorIs(t, err, calc.ErrValidation)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name  string
		req   Request
		mode  Mode
		field string
		want  string
	}{
		{
			name:  "future value from present value",
			req:   Request{PresentValue: calc.Some(1000), Rate: calc.Some(0.05), Periods: calc.Some(10)},
			mode:  ModeFutureValue,
			field: FieldFutureValue,
			want:  "1628.89",
		},
		{
			name:  "present value from future value",
			req:   Request{FutureValue: calc.Some(1628.89), Rate: calc.Some(0.05), Periods: calc.Some(10)},
			mode:  ModePresentValue,
			field: FieldPresentValue,
			want:  "1000.00",
		},
		{
			name:  "rate from both values",
			req:   Request{FutureValue: calc.Some(1628.89), PresentValue: calc.Some(1000), Periods: calc.Some(10)},
			mode:  ModeRate,
			field: FieldRate,
			want:  "0.0500",
		},
		{
			name:  "periods from both values",
			req:   Request{FutureValue: calc.Some(1628.89), PresentValue: calc.Some(1000), Rate: calc.Some(0.05)},
			mode:  ModePeriods,
			field: FieldPeriods,
			want:  "10.00",
		},
		{
			name: "all four present picks rate first",
			req: Request{
				FutureValue: calc.Some(1628.89), PresentValue: calc.Some(1000),
				Rate: calc.Some(0.07), Periods: calc.Some(10),
			},
			mode:  ModeRate,
			field: FieldRate,
			want:  "0.0500",
		},
		{
			name: "explicit mode overrides inference",
			req: Request{
				Mode:        ModeFutureValue,
				FutureValue: calc.Some(1), PresentValue: calc.Some(1000),
				Rate: calc.Some(0.05), Periods: calc.Some(10),
			},
			mode:  ModeFutureValue,
			field: FieldFutureValue,
			want:  "1628.89",
		},
		{
			name:  "zero present value is a value",
			req:   Request{PresentValue: calc.Some(0), Rate: calc.Some(0.05), Periods: calc.Some(10)},
			mode:  ModeFutureValue,
			field: FieldFutureValue,
			want:  "0.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Resolve(tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.mode, res.Mode)
			assert.Equal(t, tt.field, res.Field)
			assert.Equal(t, tt.want, res.Derived.String())

			fields := res.Fields()
			assert.Equal(t, tt.want, fields[tt.field])
			assert.Equal(t, string(tt.mode), fields["mode"])
			assert.Len(t, res.Inputs, 3)
		})
	}
}

func TestResolveErrors(t *testing.T) {
	t.Run("two values", func(t *testing.T) {
		_, err := Resolve(Request{FutureValue: calc.Some(1), PresentValue: calc.Some(1)})
		assert.ErrorIs(t, err, calc.ErrMissingParameters)
	})

	t.Run("explicit mode missing input", func(t *testing.T) {
		_, err := Resolve(Request{Mode: ModePresentValue, FutureValue: calc.Some(1), Rate: calc.Some(0.1)})
		require.ErrorIs(t, err, calc.ErrMissingParameters)
		assert.Contains(t, err.Error(), FieldPeriods)
	})

	t.Run("unknown mode", func(t *testing.T) {
		_, err := Resolve(Request{Mode: "interest", FutureValue: calc.Some(1)})
		assert.ErrorIs(t, err, calc.ErrInvalidKind)
	})

	t.Run("zero rate for periods", func(t *testing.T) {
		_, err := Resolve(Request{FutureValue: calc.Some(2), PresentValue: calc.Some(1), Rate: calc.Some(0)})
		assert.ErrorIs(t, err, calc.ErrDomain)
	})
}
