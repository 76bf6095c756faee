// Package agent owns the conversation state and dispatches chat and
// workbook operations.
package agent

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/avaldes/excel-agent/pkg/chat"
	"github.com/avaldes/excel-agent/pkg/config"
	"github.com/avaldes/excel-agent/pkg/excel"
	"github.com/avaldes/excel-agent/pkg/logger"
)

// Completer produces one assistant reply for a conversation.
type Completer interface {
	Complete(ctx context.Context, messages []chat.Message) (string, error)
}

// Agent holds the runtime state for one interactive session.
type Agent struct {
	config    config.Config
	client    Completer
	history   *chat.History
	sessionID string

	ctx     context.Context
	logger  logger.Logger
	verbose bool
}

// New initializes an Agent with the provided context and config.
func New(ctx context.Context, cfg config.Config, opts ...Option) (*Agent, error) {
	cfg = config.Normalize(cfg)
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	deps := agentDeps{logger: logger.NopLogger{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&deps)
		}
	}

	client := deps.client
	if client == nil {
		client = chat.NewClient(chat.ClientOptions{
			APIKey:      cfg.APIKey,
			BaseURL:     cfg.BaseURL,
			Model:       cfg.Model,
			Temperature: cfg.Temperature,
			MaxTokens:   cfg.MaxTokens,
			Logger:      deps.logger,
			Verbose:     cfg.Verbose,
		})
	}

	sessionID := uuid.NewString()
	logger.Debug(cfg.Verbose, deps.logger, "agent init", map[string]any{
		"session_id": sessionID,
		"model":      cfg.Model,
		"base_url":   cfg.BaseURL,
		"max_tokens": cfg.MaxTokens,
	})

	return &Agent{
		config:    cfg,
		client:    client,
		history:   chat.NewHistory(cfg.Persona),
		sessionID: sessionID,
		ctx:       ctx,
		logger:    deps.logger,
		verbose:   cfg.Verbose,
	}, nil
}

// SessionID returns the identifier attached to this session's logs.
func (a *Agent) SessionID() string {
	return a.sessionID
}

// History returns a copy of the conversation log.
func (a *Agent) History() []chat.Message {
	return a.history.Messages()
}

// Chat appends input as a user message and requests a completion over the
// full history. On success the reply is appended as an assistant message;
// on failure the user message stays in the log, so later requests still
// carry it.
func (a *Agent) Chat(input string) (string, error) {
	a.history.Append(chat.RoleUser, input)
	a.debug("chat request", map[string]any{"messages": a.history.Len()})

	reply, err := a.client.Complete(a.ctx, a.history.Messages())
	if err != nil {
		return "", err
	}

	a.history.Append(chat.RoleAssistant, reply)
	return reply, nil
}

// ReadWorkbook reads the workbook at path and appends its digest to the
// conversation as a system message. On failure the history is untouched.
func (a *Agent) ReadWorkbook(path string) error {
	sheets, err := excel.Read(path)
	if err != nil {
		return err
	}

	digest := excel.Summarize(sheets)
	a.history.Append(chat.RoleSystem, fmt.Sprintf("Datos del archivo Excel '%s': %s", path, digest))
	a.debug("workbook summarized", map[string]any{"path": path, "sheets": len(sheets)})
	return nil
}

// CreateWorkbook creates an empty workbook at path.
func (a *Agent) CreateWorkbook(path string) error {
	return excel.Create(path)
}

// WriteWorkbook creates a workbook at path from the inline data blob.
func (a *Agent) WriteWorkbook(path, data string) error {
	return excel.Write(path, data)
}

func (a *Agent) debug(msg string, obj map[string]any) {
	if obj == nil {
		obj = map[string]any{}
	}
	obj["session_id"] = a.sessionID
	logger.Debug(a.verbose, a.logger, msg, obj)
}
