package rates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/GriffinCanCode/econcalc/internal/finance/calc"
)

func TestConversions(t *testing.T) {
	assert.InDelta(t, 0.12, NominalAnnual(0.01, 12), 1e-12)
	assert.InDelta(t, 0.01, EffectivePerPeriod(0.12, 12), 1e-12)
	assert.InDelta(t, 0.126825, EffectiveAnnual(0.01, 12), 1e-6)
	assert.InDelta(t, 0.01, EffectivePerPeriodFromAnnual(0.12682503, 12), 1e-9)
	assert.InDelta(t, 0.105171, EffectiveContinuous(0.1), 1e-6)
	assert.InDelta(t, 0.095310, NominalContinuous(0.1), 1e-6)
}

func TestConversionPathsAgree(t *testing.T) {
	for _, r := range []float64{0.01, 0.08, 0.12, 0.3} {
		for _, m := range []int{1, 2, 4, 12, 52, 365} {
			direct := EffectiveAnnual(r/float64(m), m)
			viaPeriod := EffectiveAnnual(EffectivePerPeriod(r, m), m)
			assert.True(t, scalar.EqualWithinAbsOrRel(direct, viaPeriod, 1e-14, 1e-12), "r=%g m=%d", r, m)

			back := EffectivePerPeriodFromAnnual(direct, m)
			assert.True(t, scalar.EqualWithinAbsOrRel(r/float64(m), back, 1e-14, 1e-9), "r=%g m=%d", r, m)
		}
	}

	for _, i := range []float64{0.001, 0.05, 0.5} {
		assert.InDelta(t, i, EffectiveContinuous(NominalContinuous(i)), 1e-12)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		mode Mode
		want map[string]string
	}{
		{
			name: "effective period and m",
			req:  Request{EffectivePerPeriod: calc.Some(0.01), PeriodsPerYear: calc.Some(12)},
			mode: ModeFromEffectivePeriod,
			want: map[string]string{FieldNominalAnnual: "0.12000", FieldEffectiveAnnual: "0.12683"},
		},
		{
			name: "nominal and m",
			req:  Request{NominalAnnual: calc.Some(0.12), PeriodsPerYear: calc.Some(12)},
			mode: ModeFromNominal,
			want: map[string]string{FieldEffectivePerPeriod: "0.01000", FieldEffectiveAnnual: "0.12683"},
		},
		{
			name: "effective annual and m",
			req:  Request{EffectiveAnnual: calc.Some(0.12682503), PeriodsPerYear: calc.Some(12)},
			mode: ModeFromEffectiveAnnual,
			want: map[string]string{FieldEffectivePerPeriod: "0.01000", FieldNominalAnnual: "0.12000"},
		},
		{
			name: "effective alone is continuous",
			req:  Request{EffectivePerPeriod: calc.Some(0.1)},
			mode: ModeContinuousFromEffective,
			want: map[string]string{FieldNominalAnnual: "0.09531"},
		},
		{
			name: "nominal alone is continuous",
			req:  Request{NominalAnnual: calc.Some(0.1)},
			mode: ModeContinuousFromNominal,
			want: map[string]string{FieldEffectivePerPeriod: "0.10517"},
		},
		{
			name: "effective period wins over nominal",
			req: Request{
				EffectivePerPeriod: calc.Some(0.01),
				NominalAnnual:      calc.Some(0.5),
				PeriodsPerYear:     calc.Some(12),
			},
			mode: ModeFromEffectivePeriod,
			want: map[string]string{FieldNominalAnnual: "0.12000", FieldEffectiveAnnual: "0.12683"},
		},
		{
			name: "explicit continuous mode ignores m",
			req: Request{
				Mode:               ModeContinuousFromEffective,
				EffectivePerPeriod: calc.Some(0.1),
				PeriodsPerYear:     calc.Some(12),
			},
			mode: ModeContinuousFromEffective,
			want: map[string]string{FieldNominalAnnual: "0.09531"},
		},
		{
			name: "zero rate",
			req:  Request{EffectivePerPeriod: calc.Some(0), PeriodsPerYear: calc.Some(4)},
			mode: ModeFromEffectivePeriod,
			want: map[string]string{FieldNominalAnnual: "0.00000", FieldEffectiveAnnual: "0.00000"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Resolve(tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.mode, res.Mode)
			require.Len(t, res.Outputs, len(tt.want))
			for field, want := range tt.want {
				assert.Equal(t, want, res.Outputs[field].String(), field)
			}
			assert.Equal(t, string(tt.mode), res.Fields()["mode"])
		})
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want error
	}{
		{"nothing", Request{}, calc.ErrMissingParameters},
		{"m alone", Request{PeriodsPerYear: calc.Some(12)}, calc.ErrMissingParameters},
		{"explicit mode without m", Request{Mode: ModeFromNominal, NominalAnnual: calc.Some(0.1)}, calc.ErrMissingParameters},
		{"fractional m", Request{EffectivePerPeriod: calc.Some(0.01), PeriodsPerYear: calc.Some(2.5)}, calc.ErrValidation},
		{"zero m", Request{NominalAnnual: calc.Some(0.1), PeriodsPerYear: calc.Some(0)}, calc.ErrValidation},
		{"rate at -100%", Request{EffectivePerPeriod: calc.Some(-1)}, calc.ErrValidation},
		{"unknown mode", Request{Mode: "simple", NominalAnnual: calc.Some(0.1)}, calc.ErrInvalidKind},
		{"overflow", Request{NominalAnnual: calc.Some(1000)}, calc.ErrDomain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
