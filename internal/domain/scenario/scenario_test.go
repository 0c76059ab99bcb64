package scenario_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/GriffinCanCode/econcalc/internal/domain/scenario"
	"github.com/GriffinCanCode/econcalc/internal/domain/service"
	"github.com/GriffinCanCode/econcalc/internal/providers/finance"
	"github.com/GriffinCanCode/econcalc/internal/shared/types"
	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlScenario = `
name: savings
calculations:
  - name: grow
    tool: values.future_value
    params:
      presentValue: 1000
      rate: 0.05
      periods: 10
  - name: broken
    tool: values.periods
    params: {VF: 100, VP: 100, i: 0}
  - name: monthly
    tool: rates.resolve
    params: {i: "0.01", m: "12"}
`

const tomlScenario = `
name = "savings"

[[calculations]]
name = "grow"
tool = "values.future_value"
params = { presentValue = 1000, rate = 0.05, periods = 10 }

[[calculations]]
tool = "values.present_value"
params = { futureValue = 1628.89, rate = 0.05 }
`

const jsonScenario = `{
  "name": "savings",
  "calculations": [
    {"name": "grow", "tool": "values.future_value", "params": {"presentValue": 1000, "rate": 0.05, "periods": 10}},
    {"name": "nowhere", "tool": "bonds.price", "params": {}}
  ]
}`

func newRunner(t *testing.T) *scenario.Runner {
	t.Helper()
	registry := service.NewRegistry()
	require.NoError(t, finance.RegisterAll(registry))
	return scenario.NewRunner(registry, nil)
}

func TestFormatFor(t *testing.T) {
	tests := map[string]scenario.Format{
		"a.yaml":     scenario.FormatYAML,
		"b.YML":      scenario.FormatYAML,
		"c.toml":     scenario.FormatTOML,
		"dir/d.json": scenario.FormatJSON,
	}
	for path, want := range tests {
		got, err := scenario.FormatFor(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := scenario.FormatFor("scenario.csv")
	assert.Error(t, err)
}

func TestParseYAML(t *testing.T) {
	file, err := scenario.Parse([]byte(yamlScenario), scenario.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "savings", file.Name)
	require.Len(t, file.Calculations, 3)
	assert.Equal(t, "values.future_value", file.Calculations[0].Tool)
	assert.Len(t, file.Calculations[0].Params, 3)
}

func TestParseTOMLNamesUnnamedEntries(t *testing.T) {
	file, err := scenario.Parse([]byte(tomlScenario), scenario.FormatTOML)
	require.NoError(t, err)
	require.Len(t, file.Calculations, 2)
	assert.Equal(t, "values.present_value#2", file.Calculations[1].Name)
}

func TestParseErrors(t *testing.T) {
	_, err := scenario.Parse([]byte(`{"name": "x", "calculations": []}`), scenario.FormatJSON)
	assert.Error(t, err)

	_, err = scenario.Parse([]byte(`{"calculations": [{"name": "x"}]}`), scenario.FormatJSON)
	assert.ErrorContains(t, err, "tool is required")

	_, err = scenario.Parse([]byte(`calculations: [`), scenario.FormatYAML)
	assert.Error(t, err)

	_, err = scenario.Parse([]byte(`{}`), scenario.Format("xml"))
	assert.Error(t, err)
}

func TestLoadDefaultsNameToFileStem(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "retirement.json")
	content := `{"calculations": [{"tool": "values.future_value", "params": {"VP": 1, "i": 0, "n": 1}}]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	file, err := scenario.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "retirement", file.Name)

	_, err = scenario.Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestRunContinuesPastFailures(t *testing.T) {
	file, err := scenario.Parse([]byte(yamlScenario), scenario.FormatYAML)
	require.NoError(t, err)

	report, err := newRunner(t).Run(context.Background(), file)
	require.NoError(t, err)

	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, "savings", report.Scenario)
	require.Len(t, report.Results, 3)

	grow := report.Results[0]
	assert.True(t, grow.Success)
	assert.Equal(t, "1628.89", grow.Data["futureValue"])

	broken := report.Results[1]
	assert.False(t, broken.Success)
	assert.Equal(t, "DomainError", broken.Code)
	assert.NotEmpty(t, broken.Error)

	monthly := report.Results[2]
	assert.True(t, monthly.Success)
	assert.Equal(t, "0.12000", monthly.Data["nominalAnnual"])

	assert.Equal(t, scenario.Summary{Total: 3, Succeeded: 2, Failed: 1}, report.Summary)
}

func TestRunTOMLMissingParameters(t *testing.T) {
	file, err := scenario.Parse([]byte(tomlScenario), scenario.FormatTOML)
	require.NoError(t, err)

	report, err := newRunner(t).Run(context.Background(), file)
	require.NoError(t, err)
	require.Len(t, report.Results, 2)
	assert.Equal(t, "1628.89", report.Results[0].Data["futureValue"])
	assert.Equal(t, "MissingParameters", report.Results[1].Code)
}

func TestRunUnknownTool(t *testing.T) {
	file, err := scenario.Parse([]byte(jsonScenario), scenario.FormatJSON)
	require.NoError(t, err)

	report, err := newRunner(t).Run(context.Background(), file)
	require.NoError(t, err)
	require.Len(t, report.Results, 2)
	assert.True(t, report.Results[0].Success)
	assert.False(t, report.Results[1].Success)
	assert.Contains(t, report.Results[1].Error, "bonds")
}

type countingExecutor struct {
	calls  int
	cancel context.CancelFunc
}

func (e *countingExecutor) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	e.calls++
	if e.calls == 1 {
		e.cancel()
	}
	return &types.Result{Success: true, Data: map[string]interface{}{"source": appCtx.Source}}, nil
}

func TestRunStopsWhenCancelled(t *testing.T) {
	file, err := scenario.Parse([]byte(yamlScenario), scenario.FormatYAML)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	exec := &countingExecutor{cancel: cancel}

	report, err := scenario.NewRunner(exec, nil).Run(ctx, file)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, exec.calls)
	require.Len(t, report.Results, 1)
	assert.Equal(t, scenario.Source, report.Results[0].Data["source"])
	assert.Equal(t, 1, report.Summary.Total)
}

func TestReportJSON(t *testing.T) {
	report := &scenario.Report{
		RunID:    "run",
		Scenario: "s",
		Results:  []scenario.Outcome{{Name: "a", Tool: "values.rate", Success: true, Data: map[string]interface{}{"rate": "0.0500"}}},
		Summary:  scenario.Summary{Total: 1, Succeeded: 1},
	}
	data, err := report.JSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"run_id\": \"run\"")

	var decoded map[string]interface{}
	require.NoError(t, sonic.Unmarshal(data, &decoded))
	assert.Equal(t, "s", decoded["scenario"])
}
