package googlegenai

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/RichardKnop/legalserver"
)

// Generate makes a single non-streaming completion call. There is no retry;
// any provider error surfaces to the orchestrator.
func (a *Adapter) Generate(ctx context.Context, prompt legalserver.Prompt) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr(a.temperature),
		SystemInstruction: genai.NewContentFromText(prompt.System, genai.RoleUser),
		ThinkingConfig: &genai.ThinkingConfig{
			ThinkingBudget: nil, // Disables thinking
		},
	}

	a.logger.Debug("generating answer", zap.Int("prompt length", len(prompt.User)))

	resp, err := a.client.Models.GenerateContent(
		ctx,
		a.generativeModel,
		genai.Text(prompt.User),
		config,
	)
	if err != nil {
		return "", fmt.Errorf("calling generative model: %w", err)
	}
	if len(resp.Candidates) != 1 {
		return "", fmt.Errorf("got %v candidates, expected 1", len(resp.Candidates))
	}

	return resp.Text(), nil
}
