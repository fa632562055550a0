package domain

import "time"

type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

type ChatMessage struct {
	ID        string    `json:"id"`
	Role      ChatRole  `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type ChatSession struct {
	SessionID string        `json:"sessionId"`
	Messages  []ChatMessage `json:"messages"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// LastMessages returns up to n trailing messages for prompt context.
func (s *ChatSession) LastMessages(n int) []ChatMessage {
	if s == nil || n <= 0 || len(s.Messages) == 0 {
		return nil
	}
	if len(s.Messages) <= n {
		return s.Messages
	}
	return s.Messages[len(s.Messages)-n:]
}

// ChatReply is the outcome of one chat turn, whichever strategy produced it.
type ChatReply struct {
	Response     string  `json:"response"`
	SessionID    string  `json:"sessionId"`
	MessageID    string  `json:"messageId"`
	Provider     string  `json:"provider"`
	Model        string  `json:"model"`
	UsedFallback bool    `json:"usedFallback"`
	Category     string  `json:"category,omitempty"`
	Confidence   float64 `json:"confidence,omitempty"`
}
