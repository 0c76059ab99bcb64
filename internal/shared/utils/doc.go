// Package utils holds request validation shared by the API and the registry.
package utils
