package factors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/GriffinCanCode/econcalc/internal/finance/calc"
)

var (
	rates   = []float64{0.001, 0.01, 0.05, 0.1, 0.25}
	periods = []int{1, 2, 5, 10, 40}
)

func factor(t *testing.T, kind Kind, i float64, n int) float64 {
	t.Helper()
	f, err := Factor(kind, i, n)
	require.NoError(t, err, "%s i=%g n=%d", kind, i, n)
	return f
}

func TestReferenceValues(t *testing.T) {
	// 10% and 5 periods, as printed in standard interest tables
	tests := []struct {
		kind Kind
		want float64
	}{
		{PF, 0.62092},
		{FP, 1.61051},
		{AF, 0.16380},
		{FA, 6.10510},
		{PA, 3.79079},
		{AP, 0.26380},
		{PG, 6.86180},
		{AG, 1.81013},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.InDelta(t, tt.want, factor(t, tt.kind, 0.1, 5), 5e-6)
		})
	}
}

func TestInversePairs(t *testing.T) {
	pairs := [][2]Kind{{PF, FP}, {AF, FA}, {AP, PA}}
	for _, i := range rates {
		for _, n := range periods {
			for _, p := range pairs {
				product := factor(t, p[0], i, n) * factor(t, p[1], i, n)
				assert.True(t, scalar.EqualWithinAbsOrRel(1, product, 1e-12, 1e-9),
					"%s×%s i=%g n=%d = %g", p[0], p[1], i, n, product)
			}
		}
	}
}

func TestFactorRelations(t *testing.T) {
	for _, i := range rates {
		for _, n := range periods {
			// A/P = A/F + i
			assert.InDelta(t, factor(t, AF, i, n)+i, factor(t, AP, i, n), 1e-12)
			// P/G × A/P = A/G
			assert.True(t, scalar.EqualWithinAbsOrRel(
				factor(t, AG, i, n), factor(t, PG, i, n)*factor(t, AP, i, n), 1e-9, 1e-9), "i=%g n=%d", i, n)
		}
	}
}

func TestZeroRate(t *testing.T) {
	for _, kind := range []Kind{AF, FA, PA, AP, PG, AG} {
		t.Run(string(kind), func(t *testing.T) {
			_, err := Factor(kind, 0, 10)
			assert.ErrorIs(t, err, calc.ErrDomain)
		})
	}

	assert.Equal(t, 1.0, factor(t, PF, 0, 10))
	assert.Equal(t, 1.0, factor(t, FP, 0, 10))
}

func TestFactorValidation(t *testing.T) {
	_, err := BaseFactor(FP, 0.05, 0)
	assert.ErrorIs(t, err, calc.ErrValidation)

	_, err = BaseFactor(FP, -1, 5)
	assert.ErrorIs(t, err, calc.ErrValidation)

	for _, kind := range allKinds {
		_, err = Factor(kind, -0.05, 10)
		assert.ErrorIs(t, err, calc.ErrValidation, string(kind))
	}

	_, err = BaseFactor("X/Y", 0.05, 5)
	assert.ErrorIs(t, err, calc.ErrInvalidKind)

	_, err = GradientFactor(FP, 0.05, 5)
	assert.ErrorIs(t, err, calc.ErrInvalidKind)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind(" f/p ")
	require.NoError(t, err)
	assert.Equal(t, FP, k)

	k, err = ParseKind("a/g")
	require.NoError(t, err)
	assert.Equal(t, AG, k)

	_, err = ParseKind("F/G")
	assert.ErrorIs(t, err, calc.ErrInvalidKind)

	assert.Len(t, BaseKinds, 6)
	assert.Len(t, kindNames(), len(BaseKinds)+len(GradientKinds))
}

func TestResolve(t *testing.T) {
	t.Run("future worth of 1000", func(t *testing.T) {
		res, err := Resolve(Request{Kind: "F/P", Amount: calc.Some(1000), Rate: calc.Some(0.05), Periods: calc.Some(10)})
		require.NoError(t, err)

		assert.Equal(t, FP, res.Kind)
		assert.Equal(t, "1.62889", res.Factor.String())
		assert.Equal(t, "1628.89463", res.Value.String())
		assert.InDelta(t, 1628.89, res.Value.Value, 0.01)

		fields := res.Fields()
		assert.Equal(t, "F/P", fields["kind"])
		assert.Equal(t, 1000.0, fields["inputAmount"])
		assert.Equal(t, "0.05000", fields["rate"])
		assert.Equal(t, 10, fields["periods"])
		assert.Equal(t, "1.62889", fields["factor"])
		assert.Equal(t, "1628.89463", fields["result"])
	})

	t.Run("F/P with unit amount inverts P/F", func(t *testing.T) {
		for _, i := range rates {
			for _, n := range periods {
				res, err := Resolve(Request{Kind: "F/P", Amount: calc.Some(1), Rate: calc.Some(i), Periods: calc.Some(float64(n))})
				require.NoError(t, err)
				pf, err := BaseFactor(PF, i, n)
				require.NoError(t, err)
				assert.InDelta(t, 1, res.Value.Value*pf, 1e-9)
			}
		}
	})

	t.Run("zero amount", func(t *testing.T) {
		res, err := Resolve(Request{Kind: "A/P", Amount: calc.Some(0), Rate: calc.Some(0.08), Periods: calc.Some(5)})
		require.NoError(t, err)
		assert.Equal(t, "0.00000", res.Value.String())
	})

	t.Run("gradient kind", func(t *testing.T) {
		res, err := Resolve(Request{Kind: "P/G", Amount: calc.Some(100), Rate: calc.Some(0.1), Periods: calc.Some(5)})
		require.NoError(t, err)
		assert.Equal(t, "6.86180", res.Factor.String())
		assert.InDelta(t, 686.18015, res.Value.Value, 1e-4)
	})
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want error
	}{
		{"no kind", Request{Amount: calc.Some(1), Rate: calc.Some(0.1), Periods: calc.Some(2)}, calc.ErrMissingParameters},
		{"no amount", Request{Kind: "F/P", Rate: calc.Some(0.1), Periods: calc.Some(2)}, calc.ErrMissingParameters},
		{"no rate", Request{Kind: "F/P", Amount: calc.Some(1), Periods: calc.Some(2)}, calc.ErrMissingParameters},
		{"unknown kind", Request{Kind: "Q/Z", Amount: calc.Some(1), Rate: calc.Some(0.1), Periods: calc.Some(2)}, calc.ErrInvalidKind},
		{"fractional periods", Request{Kind: "F/P", Amount: calc.Some(1), Rate: calc.Some(0.1), Periods: calc.Some(2.5)}, calc.ErrValidation},
		{"negative rate", Request{Kind: "P/A", Amount: calc.Some(100), Rate: calc.Some(-0.5), Periods: calc.Some(3)}, calc.ErrValidation},
		{"zero rate annuity", Request{Kind: "A/F", Amount: calc.Some(1), Rate: calc.Some(0), Periods: calc.Some(2)}, calc.ErrDomain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
