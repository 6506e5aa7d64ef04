package telemetry

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/sourcerer/internal/core/ports"
)

var _ sdktrace.SpanProcessor = (*Bridge)(nil)

// Bridge is a span processor that reports span lifecycles to a progress
// renderer. A nil renderer turns it into a no-op.
type Bridge struct {
	renderer ports.Renderer
}

// NewBridge returns a Bridge feeding renderer.
func NewBridge(renderer ports.Renderer) *Bridge {
	return &Bridge{renderer: renderer}
}

// OnStart announces the span. The parent is taken from the span itself so
// remote or detached parents are reported too.
func (b *Bridge) OnStart(_ context.Context, s sdktrace.ReadWriteSpan) {
	sc := s.SpanContext()
	if b.renderer == nil || !sc.IsValid() {
		return
	}

	var parentID string
	if p := s.Parent(); p.IsValid() {
		parentID = p.SpanID().String()
	}
	b.renderer.OnTaskStart(sc.SpanID().String(), parentID, s.Name(), s.StartTime())
}

// OnEnd reports the span as completed or failed.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	sc := s.SpanContext()
	if b.renderer == nil || !sc.IsValid() {
		return
	}
	b.renderer.OnTaskComplete(sc.SpanID().String(), s.EndTime(), spanFailure(s))
}

// spanFailure derives the failure of a span. Project spans carry an explicit
// success attribute; other spans fail when their status is Error.
func spanFailure(s sdktrace.ReadOnlySpan) error {
	success, hasOutcome := true, false
	exitCode := int64(-1)
	for _, kv := range s.Attributes() {
		switch {
		case kv.Key == "success" && kv.Value.Type() == attribute.BOOL:
			success, hasOutcome = kv.Value.AsBool(), true
		case kv.Key == "exit_code" && kv.Value.Type() == attribute.INT64:
			exitCode = kv.Value.AsInt64()
		}
	}

	failed := s.Status().Code == codes.Error
	if hasOutcome {
		failed = !success
	}
	if !failed {
		return nil
	}

	if desc := s.Status().Description; desc != "" {
		return errors.New(desc)
	}
	if exitCode >= 0 {
		return fmt.Errorf("build tool exited with status %d", exitCode)
	}
	return errors.New("compile failed")
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}
