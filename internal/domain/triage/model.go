package triage

import "time"

// Risk tiers, lowest to highest.
const (
	RiskLow    = "Low"
	RiskMedium = "Medium"
	RiskHigh   = "High"
)

// CheckInput is one symptom check request. Age and Temperature are pointers
// so that absent and zero are distinct: a present zero still runs through
// the rules (age 0 counts as young age), nil skips them.
type CheckInput struct {
	Age          *int     `json:"age"`
	Temperature  *float64 `json:"temperature"` // Fahrenheit
	SymptomsText string   `json:"symptoms_text"`
}

// CheckResult is the scorer output.
type CheckResult struct {
	RiskLevel     string   `json:"risk_level"`
	RiskScore     int      `json:"risk_score"`
	Advice        string   `json:"advice"`
	DetectedFlags []string `json:"detected_flags"`
}

// SymptomCheck is a persisted check: the input together with the result.
type SymptomCheck struct {
	ID           int64     `json:"id" db:"id"`
	AccountID    int64     `json:"-" db:"account_id"`
	Age          *int      `json:"age" db:"age"`
	Temperature  *float64  `json:"temperature" db:"temperature"`
	SymptomsText string    `json:"symptoms_text" db:"symptoms_text"`
	RiskLevel    string    `json:"risk_level" db:"risk_level"`
	RiskScore    int       `json:"risk_score" db:"risk_score"`
	Advice       string    `json:"advice" db:"advice"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
