// Package http provides the gin handlers of the calculation API.
//
// Calculation endpoints read query parameters and run a registry tool:
//
//	GET /api/values     values.resolve     (legacy /api/valores)
//	GET /api/rates      rates.resolve      (legacy /api/tasas)
//	GET /api/factors    factors.resolve    (legacy /api/factores)
//	GET /api/gradients  gradients.resolve  (legacy /api/gradientes)
//
// Failed calculations map to a status by error kind: MissingParameters,
// InvalidKind and ValidationError are 400, DomainError is 422. The body is
// {"error": message, "kind": kind}.
package http
