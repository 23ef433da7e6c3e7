package chat

import "time"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one side of a stored conversation turn.
type ChatMessage struct {
	ID        int64     `json:"id" db:"id"`
	AccountID int64     `json:"-" db:"account_id"`
	Role      string    `json:"role" db:"role"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ChatRequest accepts "message" or the older "content" field.
type ChatRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
}

// Text returns whichever field the client populated.
func (r ChatRequest) Text() string {
	if r.Message != "" {
		return r.Message
	}
	return r.Content
}

type ChatResponse struct {
	Reply string `json:"reply"`
}
