package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

type Service struct {
	providers []Provider
	repo      ChatMessageRepository
	log       zerolog.Logger
}

// NewService builds the assistant. Providers are consulted in order; the
// chain should end with a provider that cannot fail.
func NewService(providers []Provider, repo ChatMessageRepository, log zerolog.Logger) *Service {
	return &Service{providers: providers, repo: repo, log: log}
}

// Reply produces the assistant's answer and, when the caller is
// authenticated, appends the turn to their history. Persistence is
// best-effort and never blocks the reply.
func (s *Service) Reply(ctx context.Context, accountID int64, hasUser bool, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", fmt.Errorf("message is required")
	}

	reply, err := s.generate(ctx, message)
	if err != nil {
		return "", err
	}

	if hasUser {
		if err := s.repo.CreateTurn(ctx, accountID, message, reply); err != nil {
			s.log.Warn().Err(err).Int64("account_id", accountID).
				Msg("failed to save chat turn")
		}
	}

	return reply, nil
}

func (s *Service) generate(ctx context.Context, message string) (string, error) {
	if isEmergency(message) {
		return EmergencyReply, nil
	}

	for _, p := range s.providers {
		reply, err := p.Generate(ctx, SystemPrompt, message)
		if err != nil {
			s.log.Warn().Err(err).Str("provider", p.Name()).Msg("chat provider failed")
			continue
		}
		if strings.TrimSpace(reply) == "" {
			continue
		}
		s.log.Debug().Str("provider", p.Name()).Msg("chat provider responded")
		return reply, nil
	}

	return "", fmt.Errorf("no chat provider produced a reply")
}

// History returns the caller's most recent messages, newest first.
func (s *Service) History(ctx context.Context, accountID int64, limit int) ([]*ChatMessage, error) {
	if limit <= 0 || limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	items, err := s.repo.ListByUser(ctx, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("list chat history: %w", err)
	}
	if items == nil {
		items = []*ChatMessage{}
	}
	return items, nil
}
