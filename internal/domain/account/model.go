package account

import "time"

// Account is a registered user.
type Account struct {
	ID           int64     `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by both signup and login. The token authenticates
// subsequent requests; the legacy X-User-Id header keeps working as well.
type AuthResponse struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Token  string `json:"token,omitempty"`
}
