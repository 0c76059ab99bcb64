// Package service provides the registry that routes calculation tools to
// their providers.
//
// Components:
//   - Registry: Central service catalog
//   - Provider: Interface for service implementations
//
// Features:
//   - Thread-safe service registration
//   - Category-based filtering
//   - Intent-based discovery with scoring
//   - Tool execution with context passing and call metrics
//
// Discovery Algorithm:
//   - Keyword matching in ID, name and description
//   - Capability matching
//   - Category bonus
//   - Score-based ranking, ties broken by ID
//
// Example Usage:
//
//	registry := service.NewRegistry().WithMetrics(metrics)
//	registry.Register(finance.NewValues())
//	services := registry.Discover("future value of a deposit", 3)
//	result, err := registry.Execute(ctx, "values.resolve", params, appCtx)
package service
