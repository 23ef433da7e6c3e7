package triage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type Service struct {
	rules RuleSet
	repo  SymptomCheckRepository
	log   zerolog.Logger
}

func NewService(repo SymptomCheckRepository, log zerolog.Logger) *Service {
	return &Service{
		rules: DefaultRuleSet(),
		repo:  repo,
		log:   log,
	}
}

// Check scores the input and, when the caller is authenticated, appends the
// check to their history. Persistence is best-effort: a failed append is
// logged and the scored result is still returned.
func (s *Service) Check(ctx context.Context, accountID int64, hasUser bool, in CheckInput) (CheckResult, error) {
	if strings.TrimSpace(in.SymptomsText) == "" {
		return CheckResult{}, fmt.Errorf("symptoms_text is required")
	}

	result := Score(s.rules, in)

	if hasUser {
		check := &SymptomCheck{
			AccountID:    accountID,
			Age:          in.Age,
			Temperature:  in.Temperature,
			SymptomsText: in.SymptomsText,
			RiskLevel:    result.RiskLevel,
			RiskScore:    result.RiskScore,
			Advice:       result.Advice,
			CreatedAt:    time.Now().UTC(),
		}
		if err := s.repo.Create(ctx, check); err != nil {
			s.log.Warn().Err(err).Int64("account_id", accountID).
				Msg("failed to save symptom check")
		}
	}

	return result, nil
}

// History returns the caller's most recent checks, newest first.
func (s *Service) History(ctx context.Context, accountID int64, limit int) ([]*SymptomCheck, error) {
	if limit <= 0 || limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	items, err := s.repo.ListByUser(ctx, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("list symptom history: %w", err)
	}
	if items == nil {
		items = []*SymptomCheck{}
	}
	return items, nil
}
