package app

import (
	"context"

	"github.com/jcmexdev/ecommerce-orders/internal/order-service/domain"
	"github.com/jcmexdev/ecommerce-orders/internal/pkg/identity"
	"github.com/jcmexdev/ecommerce-orders/internal/pkg/interceptors"
)

const opCreate = "create"

// idempotencyKey scopes the caller supplied key to the caller, so two
// subjects choosing the same key never see each other's orders.
func (s *Service) idempotencyKey(ctx context.Context, who identity.Identity) string {
	key := interceptors.IdempotencyKey(ctx)
	if s.cache == nil || key == "" {
		return ""
	}
	return s.cache.GenerateKey(opCreate, who.SubjectID+":"+key)
}

// replay returns the order recorded for the caller's idempotency key. Cache
// failures are logged and treated as a miss.
func (s *Service) replay(ctx context.Context, who identity.Identity) *domain.Order {
	key := s.idempotencyKey(ctx, who)
	if key == "" {
		return nil
	}

	id, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.WarnContext(ctx, "idempotency lookup failed", "key", key, "error", err)
		return nil
	}
	if id == "" {
		return nil
	}

	order, err := s.repo.Get(ctx, id, who.SubjectID)
	if err != nil {
		s.logger.WarnContext(ctx, "idempotent order not loadable", "order_id", id, "error", err)
		return nil
	}
	s.logger.InfoContext(ctx, "idempotent replay", "order_id", id, "subject_id", who.SubjectID)
	return order
}

func (s *Service) remember(ctx context.Context, who identity.Identity, orderID string) {
	key := s.idempotencyKey(ctx, who)
	if key == "" {
		return
	}
	if err := s.cache.Set(ctx, key, orderID, s.idempotencyTTL); err != nil {
		s.logger.WarnContext(ctx, "idempotency store failed", "key", key, "error", err)
	}
}
