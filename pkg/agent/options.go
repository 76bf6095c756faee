package agent

import "github.com/avaldes/excel-agent/pkg/logger"

// Option configures optional runtime dependencies for Agent.
type Option func(*agentDeps)

type agentDeps struct {
	logger logger.Logger
	client Completer
}

// WithLogger injects a logger dependency.
func WithLogger(l logger.Logger) Option {
	return func(d *agentDeps) {
		d.logger = l
	}
}

// WithCompleter injects a completion client, replacing the default
// DeepSeek-backed one. Used by tests.
func WithCompleter(c Completer) Option {
	return func(d *agentDeps) {
		d.client = c
	}
}
