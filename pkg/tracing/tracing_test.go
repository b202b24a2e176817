package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDisabledReturnsNoopProvider(t *testing.T) {
	p, err := New(context.Background(), Config{Enabled: false, ServiceName: "parking"})
	require.NoError(t, err)

	_, span := p.Tracer().Start(context.Background(), "noop")
	span.End()

	assert.False(t, span.SpanContext().IsValid())
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestNewEnabledBuildsSDKProvider(t *testing.T) {
	p, err := New(context.Background(), Config{
		Enabled:     true,
		ServiceName: "parking",
		Endpoint:    "http://127.0.0.1:4318",
		Insecure:    true,
	})
	require.NoError(t, err)

	_, span := p.Tracer().Start(context.Background(), "reserve")
	assert.True(t, span.SpanContext().IsValid())
	span.End()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = p.Shutdown(ctx)
}
