package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hqdang/Polliwog/internal/dto"
	"github.com/hqdang/Polliwog/internal/service"
	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"
)

type ChatController struct {
	chatService service.ChatService
}

func NewChatController(chatService service.ChatService) *ChatController {
	return &ChatController{chatService: chatService}
}

// StreamCompletion godoc
// @Summary Proxy a chat completion to OpenAI
// @Description Forwards the conversation to OpenAI and streams the response back as plain text chunks.
// @Tags Chat
// @Accept json
// @Produce plain
// @Param request body dto.ChatCompletionRequest true "Chat messages and optional tuning parameters"
// @Success 200 {string} string "Streamed completion text"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Upstream API error"
// @Router /chat/completions [post]
func (ctrl *ChatController) StreamCompletion(c *gin.Context) {
	var req dto.ChatCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}
	outbound := service.ChatRequest{
		Model:            req.Model,
		Messages:         messages,
		Temperature:      req.Temperature,
		TopP:             req.TopP,
		MaxTokens:        req.MaxTokens,
		PresencePenalty:  req.PresencePenalty,
		FrequencyPenalty: req.FrequencyPenalty,
		User:             req.User,
	}

	// The status line is held back until the upstream stream delivers, so a
	// failure to open the stream can still be reported as an error response.
	flusher, _ := c.Writer.(http.Flusher)
	streaming := false
	err := ctrl.chatService.StreamCompletion(c.Request.Context(), outbound, func(content string) error {
		if !streaming {
			c.Writer.Header().Set("Content-Type", "text/plain; charset=utf-8")
			c.Writer.Header().Set("Cache-Control", "no-cache")
			c.Writer.Header().Set("Connection", "keep-alive")
			c.Writer.WriteHeader(http.StatusOK)
			streaming = true
		}
		if _, err := c.Writer.WriteString(content); err != nil {
			return err
		}
		if flusher != nil {
			flusher.Flush()
		}
		return nil
	})
	if err != nil {
		if streaming {
			// Headers are already sent; the most we can do is log and close.
			log.Error().Err(err).Msg("chat completion stream aborted")
			return
		}
		log.Error().Err(err).Msg("chat completion stream failed to open")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to stream completion"})
		return
	}
	if !streaming {
		c.Status(http.StatusOK)
	}
}
