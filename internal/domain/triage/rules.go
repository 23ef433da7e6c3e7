package triage

// Keyword is a phrase matched by substring against the lowercased
// symptom description.
type Keyword struct {
	Phrase string
	Weight int
}

// RuleSet is the scorer's configuration: keyword lists, vital-sign
// thresholds and tier cutoffs. It is plain data so alternative rule sets
// can be scored without touching the algorithm.
type RuleSet struct {
	HighRisk   []Keyword
	MediumRisk []Keyword

	HighFeverTemp  float64 // inclusive, Fahrenheit
	HighFeverScore int
	MildFeverTemp  float64 // inclusive
	MildFeverScore int

	OlderAge int // inclusive lower bound
	YoungAge int // inclusive upper bound
	AgeScore int

	HighThreshold   int
	MediumThreshold int
}

const (
	flagHighFever = "High fever"
	flagMildFever = "Mild fever"
	flagOlderAge  = "Older age (65+)"
	flagYoungAge  = "Young age (≤5)"
	flagNoFinding = "No specific high/medium risk symptoms detected from description."
)

const (
	adviceHigh = "Your symptoms may indicate a higher-risk situation. " +
		"Consider seeking immediate medical attention or contacting your doctor. " +
		"If you have severe chest pain, trouble breathing, or confusion, call emergency services."
	adviceMedium = "Your symptoms suggest a moderate level of concern. " +
		"Monitor your condition, rest, stay hydrated, and contact a healthcare provider " +
		"if symptoms worsen or persist."
	adviceLow = "Your symptoms currently appear mild. Rest, drink fluids, and watch for changes. " +
		"If you feel worse, contact a medical professional."
)

// DefaultRuleSet returns the production rules.
func DefaultRuleSet() RuleSet {
	return RuleSet{
		HighRisk: []Keyword{
			{Phrase: "chest pain", Weight: 25},
			{Phrase: "difficulty breathing", Weight: 25},
			{Phrase: "shortness of breath", Weight: 25},
			{Phrase: "blue lips", Weight: 25},
			{Phrase: "high fever", Weight: 25},
			{Phrase: "confusion", Weight: 25},
		},
		MediumRisk: []Keyword{
			{Phrase: "fever", Weight: 10},
			{Phrase: "cough", Weight: 10},
			{Phrase: "sore throat", Weight: 10},
			{Phrase: "body pain", Weight: 10},
			{Phrase: "fatigue", Weight: 10},
			{Phrase: "headache", Weight: 10},
			{Phrase: "loss of smell", Weight: 10},
			{Phrase: "loss of taste", Weight: 10},
		},
		HighFeverTemp:   102.0,
		HighFeverScore:  30,
		MildFeverTemp:   100.4,
		MildFeverScore:  15,
		OlderAge:        65,
		YoungAge:        5,
		AgeScore:        15,
		HighThreshold:   60,
		MediumThreshold: 30,
	}
}
