// Package calc holds the pieces shared by every calculation module.
//
// It defines:
//   - Error kinds: MissingParameters, InvalidKind, ValidationError, DomainError
//   - Optional: a present/absent float so that zero is a real input
//   - Input validation for rates, period counts and finite numbers
//   - Output: a derived figure rendered with fixed decimals
//
// Formatting goes through shopspring/decimal. A rendered figure rounds the
// exact binary value of the float half away from zero, so a float stored just
// below a half-way point rounds down.
package calc
