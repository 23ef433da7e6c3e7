package account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/safelink/safelink/internal/platform/auth"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type Service struct {
	repo   Repository
	issuer *auth.Issuer
}

func NewService(repo Repository, issuer *auth.Issuer) *Service {
	return &Service{repo: repo, issuer: issuer}
}

// Signup registers a new account and returns it with a fresh token.
func (s *Service) Signup(ctx context.Context, email, password string) (*Account, string, error) {
	email = normalizeEmail(email)
	if err := validateEmail(email); err != nil {
		return nil, "", err
	}
	if password == "" {
		return nil, "", fmt.Errorf("password is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	a := &Account{Email: email, PasswordHash: string(hash)}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, "", err
	}

	token, err := s.issuer.Issue(a.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return a, token, nil
}

// Login verifies credentials and returns the account with a fresh token.
// Unknown emails and wrong passwords are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (*Account, string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", ErrInvalidCredentials
	}

	a, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(a.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return a, token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return fmt.Errorf("invalid email address")
	}
	return nil
}
