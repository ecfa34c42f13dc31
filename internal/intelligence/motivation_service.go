package intelligence

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/tempo/internal/domain"
	"github.com/alexanderramin/tempo/internal/llm"
)

// MotivationService generates advisory text for sessions. Implementations
// never fail: on any error the deterministic fallback text is returned, so
// absence of a model degrades presentation, not correctness.
type MotivationService interface {
	// MotivationalTip returns a short pre-session tip for the given
	// configuration. Callers should not invoke it when intention is empty.
	MotivationalTip(ctx context.Context, category domain.Category, durationMinutes int, intention string) string

	// CelebrationMessage returns a short completion message for a category.
	CelebrationMessage(ctx context.Context, category domain.Category) string
}

type motivationService struct {
	client llm.LLMClient
}

// NewMotivationService creates a MotivationService backed by an LLM client.
func NewMotivationService(client llm.LLMClient) MotivationService {
	return &motivationService{client: client}
}

func (s *motivationService) MotivationalTip(ctx context.Context, category domain.Category, durationMinutes int, intention string) string {
	prompt := fmt.Sprintf("Category: %s\nSession length: %d minutes\nIntention: %s",
		category, durationMinutes, intention)

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskMotivation,
		SystemPrompt: motivationSystemPrompt,
		UserPrompt:   prompt,
	})
	if err != nil {
		return DefaultTip(category)
	}

	tip := sanitizeLine(resp.Text)
	if tip == "" {
		return DefaultTip(category)
	}
	return tip
}

func (s *motivationService) CelebrationMessage(ctx context.Context, category domain.Category) string {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskCelebration,
		SystemPrompt: celebrationSystemPrompt,
		UserPrompt:   fmt.Sprintf("Category: %s", category),
	})
	if err != nil {
		return DefaultCelebration(category)
	}

	msg := sanitizeLine(resp.Text)
	if msg == "" {
		return DefaultCelebration(category)
	}
	return msg
}

// staticMotivationService serves the fallback text directly. Used when the
// LLM subsystem is disabled.
type staticMotivationService struct{}

// NewStaticMotivationService creates a MotivationService that always returns
// the deterministic defaults.
func NewStaticMotivationService() MotivationService {
	return staticMotivationService{}
}

func (staticMotivationService) MotivationalTip(_ context.Context, category domain.Category, _ int, _ string) string {
	return DefaultTip(category)
}

func (staticMotivationService) CelebrationMessage(_ context.Context, category domain.Category) string {
	return DefaultCelebration(category)
}

// sanitizeLine reduces a model response to a single clean line: first
// non-empty line, surrounding quotes stripped.
func sanitizeLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.Trim(line, `"'`)
		line = strings.TrimSpace(line)
		if line != "" {
			return line
		}
	}
	return ""
}
