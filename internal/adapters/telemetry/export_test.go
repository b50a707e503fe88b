package telemetry

import "go.opentelemetry.io/otel/trace"

// NewSpanForTest wraps a raw OTel span for white-box testing.
func NewSpanForTest(s trace.Span) *OTelSpan {
	return &OTelSpan{span: s}
}
