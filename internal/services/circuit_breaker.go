package services

import (
	"context"
	"fmt"
	"log"

	"github.com/sony/gobreaker/v2"

	"github.com/resume-analyzer/resume-analyzer/internal/config"
)

// breakerLLMService guards an LLMService so a failing provider is skipped
// quickly and requests go straight to the fallback result.
type breakerLLMService struct {
	next LLMService
	cb   *gobreaker.CircuitBreaker[string]
}

// NewCircuitBreakerLLMService wraps next with a circuit breaker. It returns
// next unchanged when the breaker is disabled.
func NewCircuitBreakerLLMService(next LLMService, cfg config.CircuitBreakerConfig) LLMService {
	if !cfg.Enabled {
		return next
	}

	settings := gobreaker.Settings{
		Name:        fmt.Sprintf("LLM-%s", next.Name()),
		MaxRequests: uint32(cfg.MaxRequests),
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= uint32(cfg.MinRequests) &&
				failureRatio >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Printf("🔌 Circuit breaker %s changed from %s to %s\n", name, from, to)
		},
	}

	return &breakerLLMService{
		next: next,
		cb:   gobreaker.NewCircuitBreaker[string](settings),
	}
}

func (b *breakerLLMService) Name() string {
	return b.next.Name()
}

// GenerateText implements LLMService.
func (b *breakerLLMService) GenerateText(ctx context.Context, prompt string) (string, error) {
	return b.cb.Execute(func() (string, error) {
		return b.next.GenerateText(ctx, prompt)
	})
}
