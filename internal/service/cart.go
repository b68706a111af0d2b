package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aromaluxe/storefront/internal/domain"
	"github.com/aromaluxe/storefront/internal/repository"
	apperrors "github.com/aromaluxe/storefront/pkg/errors"
)

// Cart operation upper-bound limits to prevent abuse.
const (
	// MaxQuantityPerLine is the maximum quantity allowed for a single cart line.
	MaxQuantityPerLine = 100
	// MaxLinesPerCart is the maximum number of distinct lines allowed in a cart.
	MaxLinesPerCart = 50
)

// CartEventPublisher publishes cart domain events. Satisfied by event.Producer.
type CartEventPublisher interface {
	PublishCartUpdated(ctx context.Context, cart *domain.Cart) error
	PublishCartCleared(ctx context.Context, sessionID string) error
}

// ProductLookup resolves products from the catalog. Satisfied by CatalogService.
type ProductLookup interface {
	Product(ctx context.Context, id string) (domain.Product, error)
}

// AddItemInput holds the parameters for adding a product to the cart.
type AddItemInput struct {
	ProductID string `json:"product_id" validate:"required"`
	Size      string `json:"size" validate:"required,oneof=30ml 50ml 100ml"`
	// Quantity zero defaults to 1; negative values are rejected.
	Quantity int `json:"quantity" validate:"gte=0"`
}

// CartService implements the business logic for cart operations. Prices on
// cart lines are resolved from the catalog at add time, never taken from the
// client.
type CartService struct {
	repo     repository.CartRepository
	catalog  ProductLookup
	producer CartEventPublisher
	logger   *slog.Logger
	currency string
}

// NewCartService creates a new cart service.
func NewCartService(repo repository.CartRepository, catalog ProductLookup, producer CartEventPublisher, logger *slog.Logger, currency string) *CartService {
	return &CartService{
		repo:     repo,
		catalog:  catalog,
		producer: producer,
		logger:   logger,
		currency: currency,
	}
}

// GetCart retrieves the cart for a session. If no cart exists, returns an
// empty cart without persisting it.
func (s *CartService) GetCart(ctx context.Context, sessionID string) (*domain.Cart, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}

	cart, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return s.newEmptyCart(sessionID), nil
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}

	return cart, nil
}

// AddItem adds a product at a size to the session's cart. If the same
// product+size line exists, quantities merge. A zero quantity defaults to 1.
func (s *CartService) AddItem(ctx context.Context, sessionID string, input AddItemInput) (*domain.Cart, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}
	if input.ProductID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}
	if input.Quantity < 0 {
		return nil, apperrors.InvalidInput("quantity must not be negative")
	}
	quantity := input.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity > MaxQuantityPerLine {
		return nil, apperrors.InvalidInput(fmt.Sprintf("quantity must not exceed %d", MaxQuantityPerLine))
	}

	size, err := domain.ParseSize(input.Size)
	if err != nil {
		return nil, apperrors.InvalidInput(err.Error())
	}

	product, err := s.catalog.Product(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}

	cart, err := s.getOrCreateCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	lineID := domain.LineID(product.ID, size)
	if idx := cart.FindLineIndex(lineID); idx >= 0 {
		newQty := cart.Lines[idx].Quantity + quantity
		if newQty > MaxQuantityPerLine {
			return nil, apperrors.InvalidInput(fmt.Sprintf("combined quantity must not exceed %d", MaxQuantityPerLine))
		}
		cart.Lines[idx].Quantity = newQty
	} else {
		if len(cart.Lines) >= MaxLinesPerCart {
			return nil, apperrors.InvalidInput(fmt.Sprintf("cart must not contain more than %d lines", MaxLinesPerCart))
		}
		cart.Lines = append(cart.Lines, domain.NewCartLine(product, size, quantity))
	}

	cart.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}

	s.publishUpdated(ctx, cart)

	s.logger.InfoContext(ctx, "line added to cart",
		slog.String("session_id", sessionID),
		slog.String("product_id", product.ID),
		slog.String("size", string(size)),
		slog.Int("quantity", quantity),
	)

	return cart, nil
}

// UpdateLineQuantity sets the quantity of a cart line. A quantity of zero or
// less removes the line. Updating a line that does not exist leaves the cart
// unchanged.
func (s *CartService) UpdateLineQuantity(ctx context.Context, sessionID, lineID string, quantity int) (*domain.Cart, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}
	if lineID == "" {
		return nil, apperrors.InvalidInput("line id is required")
	}
	if quantity > MaxQuantityPerLine {
		return nil, apperrors.InvalidInput(fmt.Sprintf("quantity must not exceed %d", MaxQuantityPerLine))
	}

	cart, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	idx := cart.FindLineIndex(lineID)
	if idx < 0 {
		// Unknown line IDs are tolerated so repeated removals and stale
		// clients cannot fail.
		return cart, nil
	}

	if quantity <= 0 {
		cart.Lines = append(cart.Lines[:idx], cart.Lines[idx+1:]...)
	} else {
		cart.Lines[idx].Quantity = quantity
	}

	cart.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}

	s.publishUpdated(ctx, cart)

	s.logger.InfoContext(ctx, "cart line quantity updated",
		slog.String("session_id", sessionID),
		slog.String("line_id", lineID),
		slog.Int("quantity", quantity),
	)

	return cart, nil
}

// RemoveLine removes a cart line. Removing a line that does not exist leaves
// the cart unchanged.
func (s *CartService) RemoveLine(ctx context.Context, sessionID, lineID string) (*domain.Cart, error) {
	return s.UpdateLineQuantity(ctx, sessionID, lineID, 0)
}

// ClearCart removes every line from the session's cart.
func (s *CartService) ClearCart(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return apperrors.InvalidInput("session id is required")
	}

	if err := s.repo.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}

	if err := s.producer.PublishCartCleared(ctx, sessionID); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish cart.cleared event",
			slog.String("session_id", sessionID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "cart cleared",
		slog.String("session_id", sessionID),
	)

	return nil
}

// publishUpdated emits cart.updated; a broker outage must not fail the request.
func (s *CartService) publishUpdated(ctx context.Context, cart *domain.Cart) {
	if err := s.producer.PublishCartUpdated(ctx, cart); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish cart.updated event",
			slog.String("session_id", cart.SessionID),
			slog.String("error", err.Error()),
		)
	}
}

func (s *CartService) newEmptyCart(sessionID string) *domain.Cart {
	now := time.Now().UTC()
	return &domain.Cart{
		SessionID: sessionID,
		Lines:     []domain.CartLine{},
		Currency:  s.currency,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *CartService) getOrCreateCart(ctx context.Context, sessionID string) (*domain.Cart, error) {
	cart, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return s.newEmptyCart(sessionID), nil
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}
	return cart, nil
}
