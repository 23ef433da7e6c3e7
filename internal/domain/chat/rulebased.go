package chat

import (
	"context"
	"strings"
)

// RuleBasedProvider is the terminal fallback: canned topic replies keyed
// on keywords in the message. It never fails, so a chain ending in it
// always produces a reply.
type RuleBasedProvider struct{}

func NewRuleBasedProvider() *RuleBasedProvider { return &RuleBasedProvider{} }

func (p *RuleBasedProvider) Name() string { return "rules" }

func (p *RuleBasedProvider) Generate(_ context.Context, _ string, userMessage string) (string, error) {
	text := strings.ToLower(userMessage)

	switch {
	case strings.Contains(text, "fever") || strings.Contains(text, "temperature"):
		return "A fever is often a sign your body is fighting an infection. " +
			"Rest, drink plenty of fluids, and consider fever medicine if recommended by a doctor. " +
			"If the fever is very high, lasts more than a couple of days, or you feel very unwell, " +
			"contact a healthcare provider.", nil
	case strings.Contains(text, "cough") || strings.Contains(text, "sore throat"):
		return "Cough and sore throat are common with colds, flu, and COVID-like illnesses. " +
			"Rest your voice, drink warm fluids, and monitor your breathing. " +
			"If you have chest pain, trouble breathing, or symptoms that are getting worse, " +
			"see a doctor or urgent care.", nil
	case strings.Contains(text, "anxiety") || strings.Contains(text, "anxious") || strings.Contains(text, "stress"):
		return "Feeling anxious or stressed is common. Try slow deep breaths, short walks, and talking " +
			"to someone you trust. If the anxiety feels overwhelming or constant, consider reaching out " +
			"to a mental health professional.", nil
	case strings.Contains(text, "covid"):
		return "If you suspect COVID-19, test if possible, follow local public health guidance, and monitor " +
			"your symptoms. Seek medical care if you have trouble breathing, chest pain, confusion, or " +
			"belong to a higher-risk group.", nil
	}

	return "Hello! I'm happy to help with general health and safety questions. " +
		"I can't diagnose conditions or replace a doctor, so please contact a healthcare professional " +
		"for personal medical advice. What would you like to ask about?", nil
}
