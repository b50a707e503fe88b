package telemetry

import (
	"context"
	"errors"

	"github.com/gracelang/mason/internal/core/ports"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// CommandAttr is the span attribute carrying the rendered command line.
// Only spans with this attribute are phases the renderer announces;
// umbrella spans stay trace-only.
const CommandAttr = ports.CommandAttribute

// Bridge implements sdktrace.SpanProcessor to bridge OTel spans to a Renderer.
type Bridge struct {
	renderer ports.Renderer
}

// NewBridge returns a new Bridge.
func NewBridge(renderer ports.Renderer) *Bridge {
	return &Bridge{
		renderer: renderer,
	}
}

var _ sdktrace.SpanProcessor = (*Bridge)(nil)

// OnStart is called when a span starts. Spans without a command
// attribute are not phase spans and are not announced.
func (b *Bridge) OnStart(_ context.Context, s sdktrace.ReadWriteSpan) {
	if b.renderer == nil {
		return
	}

	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}

	command, ok := commandAttribute(s.Attributes())
	if !ok {
		return
	}

	b.renderer.OnPhaseStart(
		sc.SpanID().String(),
		s.Name(),
		command,
		s.StartTime(),
	)
}

// OnEnd is called when a span ends. Completions are forwarded for every
// span; the renderer ignores IDs it never saw start.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.renderer == nil {
		return
	}

	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}

	var err error
	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "phase failed"
		}
		err = errors.New(desc)
	}

	b.renderer.OnPhaseComplete(
		sc.SpanID().String(),
		s.EndTime(),
		err,
	)
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}

func commandAttribute(attrs []attribute.KeyValue) (string, bool) {
	for _, kv := range attrs {
		if string(kv.Key) == CommandAttr {
			return kv.Value.AsString(), true
		}
	}
	return "", false
}
