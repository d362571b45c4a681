package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hqdang/Polliwog/config"
	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"
)

// ChatService proxies chat completions to OpenAI, streaming response chunks
// back through the onChunk callback as they arrive.
type ChatService interface {
	StreamCompletion(ctx context.Context, req ChatRequest, onChunk func(content string) error) error
}

// ChatRequest carries the fields the proxy forwards; the dto package owns the
// HTTP binding shape and controllers convert into this.
type ChatRequest struct {
	Model            string
	Messages         []openai.ChatCompletionMessage
	Temperature      *float32
	TopP             *float32
	MaxTokens        *int
	PresencePenalty  *float32
	FrequencyPenalty *float32
	User             string
}

type chatService struct {
	client       *openai.Client
	defaultModel string
}

func NewChatService(cfg *config.Config) ChatService {
	return &chatService{
		client:       openai.NewClient(cfg.OpenAI.ApiKey),
		defaultModel: cfg.OpenAI.DefaultModel,
	}
}

func (s *chatService) StreamCompletion(ctx context.Context, req ChatRequest, onChunk func(content string) error) error {
	outbound := openai.ChatCompletionRequest{
		Model:    req.Model,
		Messages: req.Messages,
		Stream:   true,
		User:     req.User,
	}
	if outbound.Model == "" {
		outbound.Model = s.defaultModel
	}
	if req.Temperature != nil {
		outbound.Temperature = *req.Temperature
	}
	if req.TopP != nil {
		outbound.TopP = *req.TopP
	}
	if req.MaxTokens != nil {
		outbound.MaxTokens = *req.MaxTokens
	}
	if req.PresencePenalty != nil {
		outbound.PresencePenalty = *req.PresencePenalty
	}
	if req.FrequencyPenalty != nil {
		outbound.FrequencyPenalty = *req.FrequencyPenalty
	}

	stream, err := s.client.CreateChatCompletionStream(ctx, outbound)
	if err != nil {
		log.Error().Err(err).Str("model", outbound.Model).Msg("OpenAI stream setup failed")
		return fmt.Errorf("failed to open completion stream: %w", err)
	}
	defer stream.Close()

	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("stream receive failed: %w", err)
		}
		if len(resp.Choices) == 0 {
			continue
		}
		content := strings.ReplaceAll(resp.Choices[0].Delta.Content, "\n\n", "\n")
		if content == "" {
			continue
		}
		if err := onChunk(content); err != nil {
			return err
		}
	}
}
