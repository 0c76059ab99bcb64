/*
Package tracing provides lightweight request tracing.

Each HTTP request gets a span. Trace and span identifiers are prefixed ULIDs
propagated through the X-Trace-ID and X-Span-ID headers, and finished spans
are written to the structured logger by a buffered collector.

# Usage

	tracer := tracing.New("econcalc", logger.Logger)
	defer tracer.Close()

	router.Use(tracing.HTTPMiddleware(tracer))

	span, ctx := tracer.StartSpan(ctx, "scenario.run")
	defer func() {
		span.Finish()
		tracer.Submit(span)
	}()
*/
package tracing
