// Package logging provides structured logging using uber/zap.
//
// Two modes:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// Example Usage:
//
//	logger, err := logging.New(logging.ForSettings(cfg.Logging.Level, cfg.Logging.Development))
//	logger.Info("Server starting", zap.String("port", "8000"))
//	logger.Debug("Calculation failed", zap.String("tool", "values.resolve"), zap.Error(err))
package logging
