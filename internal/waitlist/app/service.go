package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/JemilaBekele/mobileforsales-sub000/internal/store"
)

var ErrItemNotFound = errors.New("waitlist item not found")

// Service owns the local waitlist collection.
type Service struct {
	api   API
	store *store.Store
	log   *slog.Logger
}

func NewService(api API, st *store.Store, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{api: api, store: st, log: log}
}

// Refresh replaces the waitlist wholesale.
func (s *Service) Refresh(ctx context.Context) error {
	if err := s.store.Begin("waitlist.fetch", store.AggWaitlist); err != nil {
		return err
	}
	err := s.Reload(ctx)
	s.store.End(err, store.AggWaitlist)
	return err
}

// Reload is the unguarded fetch-and-replace, also the rollback path.
func (s *Service) Reload(ctx context.Context) error {
	res, err := s.api.Fetch(ctx)
	if err != nil {
		return err
	}
	s.store.ReplaceWaitlist(res.Items)
	return nil
}

// Remove deletes one waitlist entry, optimistically: the entry is spliced out
// first, and a failed remote call re-fetches the whole collection.
func (s *Service) Remove(ctx context.Context, itemID string) error {
	if _, ok := s.store.WaitlistCustomer(itemID); !ok {
		return ErrItemNotFound
	}

	if err := s.store.Begin("waitlist.remove", store.AggWaitlist); err != nil {
		return err
	}

	// predict
	s.store.DropWaitlistItem(itemID)

	// commit
	if err := s.api.Remove(ctx, itemID); err != nil {
		s.log.Warn("waitlist remove failed, re-fetching", slog.Any("err", err))
		if ferr := s.Reload(ctx); ferr != nil {
			s.log.Error("waitlist rollback re-fetch failed", slog.Any("err", ferr))
		}
		s.store.End(err, store.AggWaitlist)
		return err
	}

	s.store.End(nil, store.AggWaitlist)
	return nil
}

// ClearForCart removes every entry parked from one cart. Remote first; the
// local drop only happens once the server agreed.
func (s *Service) ClearForCart(ctx context.Context, cartID string) error {
	if err := s.store.Begin("waitlist.clear_cart", store.AggWaitlist); err != nil {
		return err
	}

	err := s.api.ClearForCart(ctx, cartID)
	if err == nil {
		s.store.DropWaitlistByCart(cartID)
	}
	s.store.End(err, store.AggWaitlist)
	return err
}
