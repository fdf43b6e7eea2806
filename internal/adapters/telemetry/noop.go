package telemetry

import (
	"context"
	"io"

	"go.trai.ch/osw/internal/core/ports"
)

// Discard is the tracer for runs without an OpenTelemetry pipeline, such as
// tests and embedded use of the runner. Spans keep nothing. Measure output
// written to a step span is copied to Out when it is set.
type Discard struct {
	Out io.Writer
}

// Start returns ctx unchanged.
func (d Discard) Start(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	return ctx, discardSpan{out: d.Out}
}

func (Discard) EmitPlan(context.Context, []string) {}

type discardSpan struct {
	out io.Writer
}

func (discardSpan) End()                     {}
func (discardSpan) RecordError(error)        {}
func (discardSpan) SetAttribute(string, any) {}

func (s discardSpan) Write(p []byte) (int, error) {
	if s.out == nil {
		return len(p), nil
	}
	return s.out.Write(p)
}
