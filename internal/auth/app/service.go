package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

var ErrCredentialsRequired = errors.New("identifier and password are required")

// TokenSink receives the fresh token so in-flight clients pick it up
// without a restart.
type TokenSink interface {
	SetToken(token string)
}

type Service struct {
	api    API
	tokens TokenStore
	sink   TokenSink
	log    *slog.Logger
}

func NewService(api API, tokens TokenStore, sink TokenSink, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{api: api, tokens: tokens, sink: sink, log: log}
}

// Login authenticates and persists the session token.
func (s *Service) Login(ctx context.Context, identifier, password string) (Session, error) {
	if identifier == "" || password == "" {
		return Session{}, ErrCredentialsRequired
	}

	sess, err := s.api.Login(ctx, LoginInput{Identifier: identifier, Password: password})
	if err != nil {
		return Session{}, fmt.Errorf("login: %w", err)
	}
	if err := s.tokens.Save(sess.Token); err != nil {
		return Session{}, fmt.Errorf("persist session token: %w", err)
	}
	if s.sink != nil {
		s.sink.SetToken(sess.Token)
	}

	s.log.Info("logged in", slog.String("user_id", sess.UserID))
	return sess, nil
}

// Logout ends the remote session and drops the local token. It always
// succeeds from the caller's point of view: a failed remote logout or a
// failed cleanup still leaves the user logged out locally, so both are
// logged and swallowed.
func (s *Service) Logout(ctx context.Context) {
	if err := s.api.Logout(ctx); err != nil {
		s.log.Warn("remote logout failed", slog.Any("err", err))
	}
	if err := s.tokens.Clear(); err != nil {
		s.log.Warn("token cleanup failed", slog.Any("err", err))
	}
	if s.sink != nil {
		s.sink.SetToken("")
	}
	s.log.Info("logged out")
}
