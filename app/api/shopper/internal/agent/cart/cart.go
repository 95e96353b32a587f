package cart

import (
	"context"
	"errors"
	"fmt"

	"SellerAgent/app/common/consts/biz"
	"SellerAgent/app/dal/catalog"
)

var ErrNoBackend = errors.New("cart backend not configured")

// Backend stores cart lines for a session.
type Backend interface {
	AddCartItem(ctx context.Context, sessionID string, productID catalog.ID, quantity int) error
}

type SessionProvider interface {
	GetOrCreateSession(ctx context.Context) string
}

type Service struct {
	sessions SessionProvider
	backend  Backend
}

func NewService(sessions SessionProvider, backend Backend) *Service {
	return &Service{sessions: sessions, backend: backend}
}

// AddToCart ensures a session exists and hands the line to the backend.
// Quantities below one are raised to one.
func (s *Service) AddToCart(ctx context.Context, product catalog.Product, quantity int) error {
	sessionID := s.sessions.GetOrCreateSession(ctx)
	if s.backend == nil {
		return ErrNoBackend
	}
	if quantity < 1 {
		quantity = biz.DefaultCartQuantity
	}
	if err := s.backend.AddCartItem(ctx, sessionID, product.ID, quantity); err != nil {
		return fmt.Errorf("add %s to cart: %w", product.ID, err)
	}
	return nil
}
