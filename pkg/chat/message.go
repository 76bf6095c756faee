// Package chat models the conversation sent to the completion endpoint.
package chat

// Role is the role for a chat message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one immutable entry of the conversation log.
type Message struct {
	Role    Role
	Content string
}

// History is the ordered, append-only conversation log. It always starts
// with one system persona message and grows monotonically; nothing is
// truncated or reordered, so long sessions grow without bound.
type History struct {
	messages []Message
}

// NewHistory returns a history seeded with the system persona.
func NewHistory(persona string) *History {
	return &History{messages: []Message{{Role: RoleSystem, Content: persona}}}
}

// Append adds one message at the end of the log.
func (h *History) Append(role Role, content string) {
	h.messages = append(h.messages, Message{Role: role, Content: content})
}

// Messages returns a copy of the log in order.
func (h *History) Messages() []Message {
	out := make([]Message, len(h.messages))
	copy(out, h.messages)
	return out
}

// Len returns the number of messages in the log.
func (h *History) Len() int {
	return len(h.messages)
}
