package dto

// ChatMessage mirrors the OpenAI chat message shape.
type ChatMessage struct {
	Role    string `json:"role" binding:"required,oneof=system user assistant"`
	Content string `json:"content" binding:"required"`
}

// ChatCompletionRequest is the passthrough body for the streaming chat proxy.
// Optional tuning parameters are forwarded verbatim when present.
type ChatCompletionRequest struct {
	Model            string        `json:"model"`
	Messages         []ChatMessage `json:"messages" binding:"required,min=1,dive"`
	Temperature      *float32      `json:"temperature"`
	TopP             *float32      `json:"top_p"`
	MaxTokens        *int          `json:"max_tokens"`
	PresencePenalty  *float32      `json:"presence_penalty"`
	FrequencyPenalty *float32      `json:"frequency_penalty"`
	User             string        `json:"user"`
}
