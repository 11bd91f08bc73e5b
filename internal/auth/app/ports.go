package app

import "context"

// Session is what a successful login yields.
type Session struct {
	Token    string
	UserID   string
	Username string
	FullName string
}

type LoginInput struct {
	Identifier string
	Password   string
}

// API is the remote auth surface.
type API interface {
	Login(ctx context.Context, in LoginInput) (Session, error)
	Logout(ctx context.Context) error
}

// TokenStore persists the bearer token between runs.
type TokenStore interface {
	Save(token string) error
	Load() (string, error)
	Clear() error
}
