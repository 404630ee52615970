package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"

	"github.com/resume-analyzer/resume-analyzer/internal/config"
)

func TestCircuitBreakerDisabledReturnsNext(t *testing.T) {
	next := &stubLLM{reply: "ok"}
	wrapped := NewCircuitBreakerLLMService(next, config.CircuitBreakerConfig{Enabled: false})
	assert.Same(t, next, wrapped)
}

func TestCircuitBreakerOpensAfterFailures(t *testing.T) {
	next := &stubLLM{err: errors.New("503 overloaded")}
	wrapped := NewCircuitBreakerLLMService(next, config.CircuitBreakerConfig{
		Enabled:          true,
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          time.Minute,
		MinRequests:      2,
		FailureThreshold: 0.5,
	})
	assert.Equal(t, "stub", wrapped.Name())

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		_, err := wrapped.GenerateText(ctx, "prompt")
		assert.EqualError(t, err, "503 overloaded")
	}

	_, err := wrapped.GenerateText(ctx, "prompt")
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 2, next.calls())
}

func TestCircuitBreakerPassesReplies(t *testing.T) {
	next := &stubLLM{reply: sampleReply}
	wrapped := NewCircuitBreakerLLMService(next, config.CircuitBreakerConfig{
		Enabled:          true,
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          time.Minute,
		MinRequests:      1,
		FailureThreshold: 0.5,
	})

	reply, err := wrapped.GenerateText(context.Background(), "prompt")
	assert.NoError(t, err)
	assert.Equal(t, sampleReply, reply)
}
