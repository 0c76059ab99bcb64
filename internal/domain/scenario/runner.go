package scenario

import (
	"context"

	"github.com/GriffinCanCode/econcalc/internal/infrastructure/logging"
	"github.com/GriffinCanCode/econcalc/internal/shared/types"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Source tags the execution context of batch calls
const Source = "scenario"

// Executor runs a single tool
type Executor interface {
	Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error)
}

// Runner executes scenario files
type Runner struct {
	executor Executor
	logger   *logging.Logger
}

// NewRunner creates a runner over an executor
func NewRunner(executor Executor, logger *logging.Logger) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{executor: executor, logger: logger}
}

// Run executes every calculation in order. A cancelled context stops the run
// before the next entry and the partial report is returned with the error.
func (r *Runner) Run(ctx context.Context, file *File) (*Report, error) {
	runID := uuid.New().String()
	report := &Report{
		RunID:    runID,
		Scenario: file.Name,
		Results:  make([]Outcome, 0, len(file.Calculations)),
	}
	log := r.logger.With(zap.String("run_id", runID), zap.String("scenario", file.Name))
	log.Info("Scenario started", zap.Int("calculations", len(file.Calculations)))

	for _, entry := range file.Calculations {
		if err := ctx.Err(); err != nil {
			log.Warn("Scenario cancelled", zap.Int("completed", len(report.Results)))
			report.summarize()
			return report, err
		}
		report.Results = append(report.Results, r.runOne(ctx, runID, entry))
	}

	report.summarize()
	log.Info("Scenario finished",
		zap.Int("succeeded", report.Summary.Succeeded),
		zap.Int("failed", report.Summary.Failed))
	return report, nil
}

func (r *Runner) runOne(ctx context.Context, runID string, calc Calculation) Outcome {
	outcome := Outcome{Name: calc.Name, Tool: calc.Tool}
	appCtx := &types.Context{RequestID: &runID, Source: Source}

	result, err := r.executor.Execute(ctx, calc.Tool, calc.Params, appCtx)
	if err != nil {
		outcome.Error = err.Error()
		outcome.Code = codeOf(result)
		r.logger.Debug("Calculation rejected", zap.String("name", calc.Name), zap.Error(err))
		return outcome
	}

	outcome.Success = result.Success
	outcome.Data = result.Data
	outcome.Code = result.Code
	if result.Error != nil {
		outcome.Error = *result.Error
	}
	return outcome
}

func codeOf(result *types.Result) string {
	if result == nil {
		return ""
	}
	return result.Code
}
