package services

import (
	"context"
	"sync"
)

type stubLLM struct {
	mu      sync.Mutex
	reply   string
	err     error
	panics  bool
	prompts []string
}

func (s *stubLLM) Name() string {
	return "stub"
}

func (s *stubLLM) GenerateText(ctx context.Context, prompt string) (string, error) {
	s.mu.Lock()
	s.prompts = append(s.prompts, prompt)
	s.mu.Unlock()

	if s.panics {
		panic("provider exploded")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.reply, s.err
}

func (s *stubLLM) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.prompts)
}

// blockingLLM waits for the context to end.
type blockingLLM struct{}

func (blockingLLM) Name() string {
	return "blocking"
}

func (blockingLLM) GenerateText(ctx context.Context, prompt string) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

// gatedLLM signals when a call starts and replies once release is closed.
type gatedLLM struct {
	started chan struct{}
	release chan struct{}
	reply   string
}

func (g *gatedLLM) Name() string {
	return "gated"
}

func (g *gatedLLM) GenerateText(ctx context.Context, prompt string) (string, error) {
	close(g.started)
	<-g.release
	return g.reply, nil
}
