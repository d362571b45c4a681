package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/hqdang/Polliwog/config"
	"github.com/hqdang/Polliwog/internal/model"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// SystemPromptGenerator produces the contextual prompt text stamped onto a
// batch of answers after a bulk submission or regeneration.
type SystemPromptGenerator interface {
	Generate(ctx context.Context, answers []model.Answer) (string, error)
}

// NewSystemPromptGenerator picks the Gemini-backed generator when an API key
// is configured, otherwise the deterministic static template.
func NewSystemPromptGenerator(cfg *config.Config) (SystemPromptGenerator, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Using static system prompt generator.")
		return NewStaticPromptGenerator(), nil
	}
	return newGeminiPromptGenerator(cfg)
}

type staticPromptGenerator struct{}

func NewStaticPromptGenerator() SystemPromptGenerator {
	return staticPromptGenerator{}
}

func (staticPromptGenerator) Generate(_ context.Context, answers []model.Answer) (string, error) {
	var b strings.Builder
	b.WriteString("You are an assistant helping the user refine their project questionnaire.\n")
	fmt.Fprintf(&b, "The user currently has %d answered question(s).\n", len(answers))
	b.WriteString("Use the recorded answers as context for any follow-up generation.")
	return b.String(), nil
}

type geminiPromptGenerator struct {
	client *genai.GenerativeModel
}

func newGeminiPromptGenerator(cfg *config.Config) (SystemPromptGenerator, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	return &geminiPromptGenerator{client: client.GenerativeModel("gemini-1.5-flash")}, nil
}

func (g *geminiPromptGenerator) Generate(ctx context.Context, answers []model.Answer) (string, error) {
	var b strings.Builder
	b.WriteString("Summarize the following questionnaire answers into a single system prompt ")
	b.WriteString("that a downstream assistant can use as project context. ")
	b.WriteString("Reply with the prompt text only.\n\n")
	for i, a := range answers {
		if a.AnswerText != nil {
			fmt.Fprintf(&b, "Answer %d (question %d): %s\n", i+1, a.QuestionID, *a.AnswerText)
		} else if len(a.SelectedOptionIDs) > 0 {
			fmt.Fprintf(&b, "Answer %d (question %d): selected options %v\n", i+1, a.QuestionID, []int64(a.SelectedOptionIDs))
		}
	}

	resp, err := g.client.GenerateContent(ctx, genai.Text(b.String()))
	if err != nil {
		log.Error().Err(err).Msg("Gemini API error during system prompt generation")
		return "", fmt.Errorf("gemini API error: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no content")
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			out.WriteString(string(txt))
		}
	}
	if out.Len() == 0 {
		return "", fmt.Errorf("gemini returned no text content")
	}
	return strings.TrimSpace(out.String()), nil
}
