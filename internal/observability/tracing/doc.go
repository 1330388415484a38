// Package tracing provides OpenTelemetry tracing integration.
//
// Spans are created for every HTTP request by Middleware and for each stage
// of OG image generation by the use case layer. InitProvider installs an SDK
// tracer provider so trace IDs are generated and propagated. Spans are
// exported over OTLP/HTTP when a collector endpoint is configured.
//
// Example usage:
//
//	import "blog-og/internal/observability/tracing"
//
//	func main() {
//	    shutdown, err := tracing.InitProvider(ctx, tracing.ProviderConfig{
//	        ServiceName:  "blog-og",
//	        Version:      version,
//	        SampleRatio:  1.0,
//	        OTLPEndpoint: "http://localhost:4318",
//	    })
//	    if err != nil { ... }
//	    defer shutdown(context.Background())
//	}
//
//	func render(ctx context.Context) {
//	    ctx, span := tracing.StartSpan(ctx, "og.render")
//	    defer span.End()
//	}
package tracing
