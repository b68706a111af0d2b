package http

import (
	"github.com/aromaluxe/storefront/internal/domain"
	"github.com/aromaluxe/storefront/pkg/money"
)

// productResponse is a catalog product with display prices for every size.
type productResponse struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Description  string            `json:"description,omitempty"`
	Mood         string            `json:"mood"`
	ScentProfile string            `json:"scent_profile"`
	BasePrice    int64             `json:"base_price"`
	Prices       []sizePrice       `json:"prices"`
	ImageURL     string            `json:"image_url,omitempty"`
}

// sizePrice is one bottle size with its derived price.
type sizePrice struct {
	Size         string `json:"size"`
	Price        int64  `json:"price"`
	PriceDisplay string `json:"price_display"`
}

// cartLineResponse is a cart line with display prices.
type cartLineResponse struct {
	ID               string `json:"id"`
	ProductID        string `json:"product_id"`
	Title            string `json:"title"`
	Size             string `json:"size"`
	UnitPrice        int64  `json:"unit_price"`
	UnitPriceDisplay string `json:"unit_price_display"`
	Quantity         int    `json:"quantity"`
	LineTotal        int64  `json:"line_total"`
	LineTotalDisplay string `json:"line_total_display"`
	ImageURL         string `json:"image_url,omitempty"`
}

// cartResponse is the cart envelope with aggregate totals.
type cartResponse struct {
	SessionID    string             `json:"session_id"`
	Lines        []cartLineResponse `json:"lines"`
	ItemCount    int                `json:"item_count"`
	Total        int64              `json:"total"`
	TotalDisplay string             `json:"total_display"`
	Currency     string             `json:"currency"`
}

// orderResponse is the checkout confirmation with display totals.
type orderResponse struct {
	OrderNumber     string             `json:"order_number"`
	Email           string             `json:"email"`
	Lines           []cartLineResponse `json:"lines"`
	Subtotal        int64              `json:"subtotal"`
	SubtotalDisplay string             `json:"subtotal_display"`
	Shipping        int64              `json:"shipping"`
	ShippingDisplay string             `json:"shipping_display"`
	Tax             int64              `json:"tax"`
	TaxDisplay      string             `json:"tax_display"`
	Total           int64              `json:"total"`
	TotalDisplay    string             `json:"total_display"`
	Currency        string             `json:"currency"`
	PlacedAt        string             `json:"placed_at"`
	Message         string             `json:"message"`
}

func toProductResponse(p domain.Product, fmt *money.Formatter) productResponse {
	prices := make([]sizePrice, 0, len(domain.Sizes()))
	for _, size := range domain.Sizes() {
		price := size.PriceFor(p.Price)
		prices = append(prices, sizePrice{
			Size:         string(size),
			Price:        price,
			PriceDisplay: fmt.Format(price),
		})
	}

	return productResponse{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Mood:         string(p.Mood),
		ScentProfile: string(p.ScentProfile),
		BasePrice:    p.Price,
		Prices:       prices,
		ImageURL:     p.ImageURL,
	}
}

func toProductResponses(products []domain.Product, fmt *money.Formatter) []productResponse {
	out := make([]productResponse, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p, fmt)
	}
	return out
}

func toCartResponse(cart *domain.Cart, fmt *money.Formatter) cartResponse {
	lines := make([]cartLineResponse, len(cart.Lines))
	for i, line := range cart.Lines {
		lineTotal := line.UnitPrice * int64(line.Quantity)
		lines[i] = cartLineResponse{
			ID:               line.ID,
			ProductID:        line.ProductID,
			Title:            line.Title,
			Size:             string(line.Size),
			UnitPrice:        line.UnitPrice,
			UnitPriceDisplay: fmt.Format(line.UnitPrice),
			Quantity:         line.Quantity,
			LineTotal:        lineTotal,
			LineTotalDisplay: fmt.Format(lineTotal),
			ImageURL:         line.ImageURL,
		}
	}

	total := cart.TotalAmount()
	return cartResponse{
		SessionID:    cart.SessionID,
		Lines:        lines,
		ItemCount:    cart.ItemCount(),
		Total:        total,
		TotalDisplay: fmt.Format(total),
		Currency:     cart.Currency,
	}
}

func toOrderResponse(conf *domain.OrderConfirmation, fmt *money.Formatter) orderResponse {
	lines := make([]cartLineResponse, len(conf.Lines))
	for i, line := range conf.Lines {
		lineTotal := line.UnitPrice * int64(line.Quantity)
		lines[i] = cartLineResponse{
			ID:               line.ID,
			ProductID:        line.ProductID,
			Title:            line.Title,
			Size:             string(line.Size),
			UnitPrice:        line.UnitPrice,
			UnitPriceDisplay: fmt.Format(line.UnitPrice),
			Quantity:         line.Quantity,
			LineTotal:        lineTotal,
			LineTotalDisplay: fmt.Format(lineTotal),
			ImageURL:         line.ImageURL,
		}
	}

	return orderResponse{
		OrderNumber:     conf.OrderNumber,
		Email:           conf.Email,
		Lines:           lines,
		Subtotal:        conf.Totals.Subtotal,
		SubtotalDisplay: fmt.Format(conf.Totals.Subtotal),
		Shipping:        conf.Totals.Shipping,
		ShippingDisplay: fmt.Format(conf.Totals.Shipping),
		Tax:             conf.Totals.Tax,
		TaxDisplay:      fmt.Format(conf.Totals.Tax),
		Total:           conf.Totals.Total,
		TotalDisplay:    fmt.Format(conf.Totals.Total),
		Currency:        conf.Currency,
		PlacedAt:        conf.PlacedAt.Format("2006-01-02T15:04:05Z07:00"),
		Message:         "Thank you for your order, " + conf.Email + ". A confirmation has been sent.",
	}
}
