package app

import (
	"context"
	"log/slog"

	"github.com/JemilaBekele/mobileforsales-sub000/internal/cart/domain"
	"github.com/JemilaBekele/mobileforsales-sub000/internal/store"
)

// mutateItem runs one optimistic edit of a cart line.
//
// Predict: install the predicted line, shifting the aggregates by its delta.
// Commit: send the intended new state to the backend.
// Resolve: replace the prediction with the server-confirmed line, or roll the
// whole cart back via a full re-fetch when the commit failed.
func (s *Service) mutateItem(ctx context.Context, action string, predicted domain.Item, in UpdateItemInput) (domain.Item, error) {
	if err := s.store.Begin(action, store.AggCart); err != nil {
		return domain.Item{}, err
	}

	// predict
	if ok := s.store.ReplaceCartItem(predicted); !ok {
		s.store.End(ErrItemNotFound, store.AggCart)
		return domain.Item{}, ErrItemNotFound
	}

	// commit
	confirmed, err := s.api.UpdateItem(ctx, in)
	if err != nil {
		s.rollback(ctx, action, err)
		s.store.End(err, store.AggCart)
		return domain.Item{}, err
	}

	// resolve: the server stays authoritative for computed fields
	s.store.ReplaceCartItem(confirmed)
	s.store.End(nil, store.AggCart)
	return confirmed, nil
}

// rollback discards the in-flight prediction by re-fetching the whole cart.
// Predictions are never inverted algebraically.
func (s *Service) rollback(ctx context.Context, action string, cause error) {
	s.log.Warn("cart mutation failed, re-fetching cart",
		slog.String("action", action),
		slog.Any("err", cause),
	)
	if err := s.Reload(ctx); err != nil {
		s.log.Error("cart rollback re-fetch failed", slog.Any("err", err))
	}
}
