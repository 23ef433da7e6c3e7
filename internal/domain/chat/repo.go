package chat

import "context"

// MaxHistoryLimit caps how many messages a history read may return.
const MaxHistoryLimit = 50

type ChatMessageRepository interface {
	// CreateTurn stores one user message and the assistant's reply as a
	// pair: both rows or neither, sharing one timestamp.
	CreateTurn(ctx context.Context, accountID int64, userMessage, reply string) error
	ListByUser(ctx context.Context, accountID int64, limit int) ([]*ChatMessage, error)
}
