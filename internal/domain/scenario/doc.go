/*
Package scenario runs batches of named calculations.

A scenario file lists independent calculations, each naming a tool and its
parameters. Files are YAML, TOML or JSON, chosen by extension:

	name: loan comparison
	calculations:
	  - name: future value
	    tool: values.future_value
	    params: {presentValue: 1000, rate: 0.05, periods: 10}

The runner executes every entry through a service executor and gathers the
outcomes into a Report. A failed entry is recorded and the run continues.
*/
package scenario
