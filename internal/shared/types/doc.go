// Package types provides shared data structures for the calculation service.
//
// Core Types:
//   - Service: Service provider definition
//   - Tool: Service tool specification
//   - Context: Execution context for a call
//   - Result: Standard operation result
//
// Request Types:
//   - ExecuteRequest: Service tool execution
//
// Example Usage:
//
//	res, err := registry.Execute(ctx, "values.resolve", map[string]interface{}{
//	    "presentValue": 1000.0,
//	    "rate":         0.05,
//	    "periods":      10.0,
//	}, &types.Context{})
package types
