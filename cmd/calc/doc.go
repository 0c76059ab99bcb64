// Package main runs a scenario file of calculations and prints the report.
//
// Usage:
//
//	./calc scenarios/loan.yaml
//	./calc -out report.json -v scenarios/loan.toml
//
// The exit status is 1 when the scenario cannot be loaded and 2 when any
// calculation in it failed.
package main
