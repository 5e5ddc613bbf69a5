package domain

import "time"

// Credentials are the account details used to sign in.
type Credentials struct {
	Email    string
	Password string
}

// Complete reports whether both fields are set.
func (c Credentials) Complete() bool {
	return c.Email != "" && c.Password != ""
}

// Session is an authenticated upstream session.
type Session struct {
	BaseURL   string
	Token     string
	ExpiresAt time.Time
}
