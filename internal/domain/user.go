package domain

import "time"

type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	UniversityID   string    `json:"university_id"`
	Interests      []string  `json:"interests"`
	IsActive       bool      `json:"is_active"`
	TelegramChatID *int64    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}

type SignupInput struct {
	Email        string
	Password     string
	UniversityID string
}

// AuthResult is a signed token plus the user it identifies.
type AuthResult struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
