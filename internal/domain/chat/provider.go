package chat

import (
	"context"
	"strings"
)

// Provider generates one assistant reply. Implementations return an error
// or an empty string when they cannot answer; the service then moves on to
// the next provider in its chain.
type Provider interface {
	Name() string
	Generate(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

// SystemPrompt frames every model call. The assistant gives general health
// information only and always defers diagnosis to professionals.
const SystemPrompt = "You are a cautious health information assistant. " +
	"You ONLY provide general health and safety information, not medical diagnoses. " +
	"You are NOT a doctor. " +
	"Always encourage the user to consult a healthcare professional for diagnosis " +
	"or serious concerns. Keep answers clear and concise (3-6 sentences)."

// EmergencyReply is returned verbatim when the message looks like an
// emergency. No model is consulted in that case.
const EmergencyReply = "This could be an emergency. Stop using this app and contact emergency services " +
	"or go to the nearest hospital immediately. I am not a doctor and cannot handle emergencies."

var emergencyKeywords = []string{
	"cant breathe", "can't breathe", "difficulty breathing",
	"chest pain", "blue lips", "unconscious", "seizure",
	"stroke", "heart attack",
}

func isEmergency(text string) bool {
	text = strings.ToLower(text)
	for _, k := range emergencyKeywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
