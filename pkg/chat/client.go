package chat

import (
	"context"
	"errors"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/avaldes/excel-agent/pkg/logger"
)

// ErrNoValidResponse is the single error surfaced for any completion
// failure. Transport errors, non-2xx statuses, malformed bodies, and empty
// choice lists are deliberately not distinguished; the underlying cause is
// only visible in debug logs.
var ErrNoValidResponse = errors.New("no se pudo obtener una respuesta válida de Deepseek")

// ClientOptions configures a completion Client.
type ClientOptions struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int
	Logger      logger.Logger
	Verbose     bool
}

// Client sends a conversation to the completion endpoint and returns the
// top assistant reply.
type Client struct {
	api         openai.Client
	model       string
	temperature float64
	maxTokens   int
	logger      logger.Logger
	verbose     bool
}

// NewClient builds a client for the configured endpoint.
func NewClient(opts ClientOptions) *Client {
	// The SDK retries transient failures by default; this agent reports a
	// failure once and returns to the prompt instead.
	reqOpts := []option.RequestOption{option.WithMaxRetries(0)}
	if opts.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(opts.BaseURL))
	}
	if opts.APIKey != "" {
		reqOpts = append(reqOpts, option.WithAPIKey(opts.APIKey))
	}
	log := opts.Logger
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Client{
		api:         openai.NewClient(reqOpts...),
		model:       opts.Model,
		temperature: opts.Temperature,
		maxTokens:   opts.MaxTokens,
		logger:      log,
		verbose:     opts.Verbose,
	}
}

// Complete sends the full message history and returns the content of the
// first choice. Any failure yields ErrNoValidResponse.
func (c *Client) Complete(ctx context.Context, messages []Message) (string, error) {
	completion, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.model),
		Messages:    toOpenAIMessages(messages),
		Temperature: openai.Float(c.temperature),
		MaxTokens:   openai.Int(int64(c.maxTokens)),
	})
	if err != nil {
		logger.Debug(c.verbose, c.logger, "chat completion failed", map[string]any{
			"error": err.Error(),
		})
		return "", ErrNoValidResponse
	}
	if len(completion.Choices) == 0 {
		logger.Debug(c.verbose, c.logger, "chat completion returned no choices", nil)
		return "", ErrNoValidResponse
	}
	return completion.Choices[0].Message.Content, nil
}

func toOpenAIMessages(messages []Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			out = append(out, openai.SystemMessage(m.Content))
		case RoleAssistant:
			out = append(out, openai.AssistantMessage(m.Content))
		default:
			out = append(out, openai.UserMessage(m.Content))
		}
	}
	return out
}
