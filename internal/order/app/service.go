package app

import (
	"context"
	"log/slog"

	"github.com/JemilaBekele/mobileforsales-sub000/internal/order/domain"
	"github.com/JemilaBekele/mobileforsales-sub000/internal/store"
)

// Service owns the local order list. Conversions live in the convert
// pipelines; this service only fetches.
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

// Refresh replaces the order list wholesale with a filtered fetch.
func (s *Service) Refresh(ctx context.Context, filter domain.Filter) error {
	if err := s.store.Begin("orders.fetch", store.AggOrders); err != nil {
		return err
	}
	err := s.Reload(ctx, filter)
	s.store.End(err, store.AggOrders)
	return err
}

// Reload is the unguarded fetch, for pipelines that hold the guard.
func (s *Service) Reload(ctx context.Context, filter domain.Filter) error {
	res, err := s.api.Fetch(ctx, filter)
	if err != nil {
		return err
	}
	s.store.ReplaceOrders(res.Orders, res.Count)
	s.log.Debug("orders replaced", slog.Int("loaded", len(res.Orders)), slog.Int("count", res.Count))
	return nil
}
