package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aromaluxe/storefront/internal/domain"
	pkgkafka "github.com/aromaluxe/storefront/pkg/kafka"
	"github.com/aromaluxe/storefront/pkg/logger"
)

// Kafka topic constants for storefront domain events.
const (
	TopicCartUpdated       = "storefront.cart.updated"
	TopicCartCleared       = "storefront.cart.cleared"
	TopicCheckoutCompleted = "storefront.checkout.completed"
)

// Aggregate type constants.
const (
	AggregateTypeCart  = "cart"
	AggregateTypeOrder = "order"
)

// Source identifier for events originating from the storefront.
const SourceStorefront = "storefront"

// CartUpdatedData is the payload for a cart.updated event.
type CartUpdatedData struct {
	SessionID   string         `json:"session_id"`
	Lines       []CartLineData `json:"lines"`
	ItemCount   int            `json:"item_count"`
	TotalAmount int64          `json:"total_amount"`
	Currency    string         `json:"currency"`
}

// CartLineData is the line payload within cart events.
type CartLineData struct {
	LineID    string `json:"line_id"`
	ProductID string `json:"product_id"`
	Title     string `json:"title"`
	Size      string `json:"size"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

// CartClearedData is the payload for a cart.cleared event.
type CartClearedData struct {
	SessionID string `json:"session_id"`
}

// CheckoutCompletedData is the payload for a checkout.completed event.
type CheckoutCompletedData struct {
	OrderNumber string         `json:"order_number"`
	SessionID   string         `json:"session_id"`
	Email       string         `json:"email"`
	Lines       []CartLineData `json:"lines"`
	Subtotal    int64          `json:"subtotal"`
	Shipping    int64          `json:"shipping"`
	Tax         int64          `json:"tax"`
	Total       int64          `json:"total"`
	Currency    string         `json:"currency"`
}

// Producer publishes storefront domain events to Kafka.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates a new event producer for the storefront.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	return &Producer{
		kafka:  kafka,
		logger: logger,
	}
}

func cartLines(lines []domain.CartLine) []CartLineData {
	out := make([]CartLineData, len(lines))
	for i, line := range lines {
		out[i] = CartLineData{
			LineID:    line.ID,
			ProductID: line.ProductID,
			Title:     line.Title,
			Size:      string(line.Size),
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
		}
	}
	return out
}

// PublishCartUpdated publishes a cart.updated event.
func (p *Producer) PublishCartUpdated(ctx context.Context, cart *domain.Cart) error {
	data := CartUpdatedData{
		SessionID:   cart.SessionID,
		Lines:       cartLines(cart.Lines),
		ItemCount:   cart.ItemCount(),
		TotalAmount: cart.TotalAmount(),
		Currency:    cart.Currency,
	}

	event, err := pkgkafka.NewEvent(TopicCartUpdated, cart.SessionID, AggregateTypeCart, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("create cart.updated event: %w", err)
	}
	event.WithCorrelationID(logger.CorrelationIDFromContext(ctx))

	if err := p.kafka.Publish(ctx, TopicCartUpdated, event); err != nil {
		return fmt.Errorf("publish cart.updated event: %w", err)
	}
	return nil
}

// PublishCartCleared publishes a cart.cleared event.
func (p *Producer) PublishCartCleared(ctx context.Context, sessionID string) error {
	data := CartClearedData{SessionID: sessionID}

	event, err := pkgkafka.NewEvent(TopicCartCleared, sessionID, AggregateTypeCart, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("create cart.cleared event: %w", err)
	}
	event.WithCorrelationID(logger.CorrelationIDFromContext(ctx))

	if err := p.kafka.Publish(ctx, TopicCartCleared, event); err != nil {
		return fmt.Errorf("publish cart.cleared event: %w", err)
	}
	return nil
}

// PublishCheckoutCompleted publishes a checkout.completed event.
func (p *Producer) PublishCheckoutCompleted(ctx context.Context, sessionID string, conf *domain.OrderConfirmation) error {
	data := CheckoutCompletedData{
		OrderNumber: conf.OrderNumber,
		SessionID:   sessionID,
		Email:       conf.Email,
		Lines:       cartLines(conf.Lines),
		Subtotal:    conf.Totals.Subtotal,
		Shipping:    conf.Totals.Shipping,
		Tax:         conf.Totals.Tax,
		Total:       conf.Totals.Total,
		Currency:    conf.Currency,
	}

	event, err := pkgkafka.NewEvent(TopicCheckoutCompleted, conf.OrderNumber, AggregateTypeOrder, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("create checkout.completed event: %w", err)
	}
	event.WithCorrelationID(logger.CorrelationIDFromContext(ctx))

	if err := p.kafka.Publish(ctx, TopicCheckoutCompleted, event); err != nil {
		return fmt.Errorf("publish checkout.completed event: %w", err)
	}
	return nil
}
