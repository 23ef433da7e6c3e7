package triage

import "strings"

// Score evaluates one symptom check against a rule set. It is pure and
// deterministic: the same input always yields the same result, and the
// score is clamped to [0, 100].
func Score(rules RuleSet, in CheckInput) CheckResult {
	text := strings.ToLower(in.SymptomsText)
	var flags []string

	tempScore := 0
	if in.Temperature != nil {
		switch {
		case *in.Temperature >= rules.HighFeverTemp:
			flags = append(flags, flagHighFever)
			tempScore = rules.HighFeverScore
		case *in.Temperature >= rules.MildFeverTemp:
			flags = append(flags, flagMildFever)
			tempScore = rules.MildFeverScore
		}
	}

	ageScore := 0
	if in.Age != nil {
		switch {
		case *in.Age >= rules.OlderAge:
			flags = append(flags, flagOlderAge)
			ageScore = rules.AgeScore
		case *in.Age <= rules.YoungAge:
			flags = append(flags, flagYoungAge)
			ageScore = rules.AgeScore
		}
	}

	keywordScore := 0
	highHit := false
	for _, k := range rules.HighRisk {
		if strings.Contains(text, k.Phrase) {
			flags = append(flags, "High-risk symptom: "+k.Phrase)
			keywordScore += k.Weight
			highHit = true
		}
	}
	for _, k := range rules.MediumRisk {
		if strings.Contains(text, k.Phrase) {
			flags = append(flags, "Medium-risk symptom: "+k.Phrase)
			keywordScore += k.Weight
		}
	}

	score := tempScore + ageScore + keywordScore
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	var level, advice string
	switch {
	case score >= rules.HighThreshold || highHit:
		level, advice = RiskHigh, adviceHigh
	case score >= rules.MediumThreshold:
		level, advice = RiskMedium, adviceMedium
	default:
		level, advice = RiskLow, adviceLow
	}

	if len(flags) == 0 {
		flags = append(flags, flagNoFinding)
	}

	return CheckResult{
		RiskLevel:     level,
		RiskScore:     score,
		Advice:        advice,
		DetectedFlags: flags,
	}
}
