package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aromaluxe/storefront/internal/domain"
	apperrors "github.com/aromaluxe/storefront/pkg/errors"
	"github.com/aromaluxe/storefront/pkg/validator"
)

// CheckoutEventPublisher publishes checkout domain events. Satisfied by
// event.Producer.
type CheckoutEventPublisher interface {
	PublishCheckoutCompleted(ctx context.Context, sessionID string, conf *domain.OrderConfirmation) error
}

// CartReader is the subset of CartService used by checkout.
type CartReader interface {
	GetCart(ctx context.Context, sessionID string) (*domain.Cart, error)
	ClearCart(ctx context.Context, sessionID string) error
}

// CheckoutService simulates order placement. No payment provider is involved;
// a validated form and a non-empty cart always produce a confirmed order.
type CheckoutService struct {
	carts    CartReader
	producer CheckoutEventPublisher
	logger   *slog.Logger
	pricing  domain.Pricing
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(carts CartReader, producer CheckoutEventPublisher, logger *slog.Logger, pricing domain.Pricing) *CheckoutService {
	return &CheckoutService{
		carts:    carts,
		producer: producer,
		logger:   logger,
		pricing:  pricing,
	}
}

// PlaceOrder validates the checkout form, computes totals from the session's
// cart, clears the cart, and returns the order confirmation. An empty cart is
// rejected.
func (s *CheckoutService) PlaceOrder(ctx context.Context, sessionID string, form domain.CheckoutForm) (*domain.OrderConfirmation, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}

	if err := validator.Validate(form); err != nil {
		return nil, err
	}

	cart, err := s.carts.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(cart.Lines) == 0 {
		return nil, apperrors.InvalidInput("cart is empty")
	}

	conf := &domain.OrderConfirmation{
		OrderNumber: newOrderNumber(),
		Email:       form.Email,
		Lines:       append([]domain.CartLine(nil), cart.Lines...),
		Totals:      s.pricing.ComputeTotals(cart.TotalAmount()),
		Currency:    cart.Currency,
		PlacedAt:    time.Now().UTC(),
	}

	if err := s.carts.ClearCart(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("clear cart after checkout: %w", err)
	}

	if err := s.producer.PublishCheckoutCompleted(ctx, sessionID, conf); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish checkout.completed event",
			slog.String("session_id", sessionID),
			slog.String("order_number", conf.OrderNumber),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "order placed",
		slog.String("session_id", sessionID),
		slog.String("order_number", conf.OrderNumber),
		slog.Int64("total", conf.Totals.Total),
	)

	return conf, nil
}

// newOrderNumber builds a short human-readable order number from a UUID,
// e.g. "AL-1B9D6BCD".
func newOrderNumber() string {
	id := uuid.New().String()
	return "AL-" + strings.ToUpper(id[:8])
}
