package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aromaluxe/storefront/internal/domain"
	"github.com/aromaluxe/storefront/internal/service"
	apperrors "github.com/aromaluxe/storefront/pkg/errors"
	"github.com/aromaluxe/storefront/pkg/httputil"
	"github.com/aromaluxe/storefront/pkg/money"
	"github.com/aromaluxe/storefront/pkg/validator"
)

// CheckoutHandler serves the checkout endpoint.
type CheckoutHandler struct {
	service *service.CheckoutService
	fmt     *money.Formatter
	logger  *slog.Logger
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(svc *service.CheckoutService, fmt *money.Formatter, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{service: svc, fmt: fmt, logger: logger}
}

// PlaceOrder handles POST /api/v1/checkout. Payment is not captured; the
// order is confirmed as soon as the form validates against a non-empty cart.
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionIDFromContext(r.Context())
	if !ok {
		httputil.WriteError(w, r, apperrors.Unauthorized("session required"), h.logger)
		return
	}

	var form domain.CheckoutForm
	if err := validator.DecodeAndValidate(r, &form); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	conf, err := h.service.PlaceOrder(r.Context(), sid, form)
	if err != nil {
		var valErr *validator.ValidationError
		if errors.As(err, &valErr) {
			httputil.WriteValidationError(w, err)
			return
		}
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: toOrderResponse(conf, h.fmt)})
}
