/*
Package tracing provides lightweight request tracing.

Every HTTP request gets a span. An incoming X-Trace-ID header continues an
existing trace; otherwise a new ULID-based trace ID is generated. Trace and
span IDs are echoed on the response and forwarded on outbound webhook calls,
so an enquiry can be followed from the browser to the receiving system.

Finished spans are buffered (1000) and written asynchronously through zap.
Successful spans log at debug, failed ones at warn.

	tracer := tracing.New("retreat-catalog", logger.Logger)
	defer tracer.Close()
	router.Use(tracing.HTTPMiddleware(tracer))

	span, ctx := tracer.StartSpan(ctx, "contact.forward")
	defer func() {
		span.Finish()
		tracer.Submit(span)
	}()
*/
package tracing
