package triage

import "context"

// MaxHistoryLimit caps how many checks a history read may return.
const MaxHistoryLimit = 50

type SymptomCheckRepository interface {
	Create(ctx context.Context, check *SymptomCheck) error
	ListByUser(ctx context.Context, accountID int64, limit int) ([]*SymptomCheck, error)
}
