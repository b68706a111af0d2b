package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aromaluxe/storefront/internal/service"
	apperrors "github.com/aromaluxe/storefront/pkg/errors"
	"github.com/aromaluxe/storefront/pkg/httputil"
	"github.com/aromaluxe/storefront/pkg/money"
	"github.com/aromaluxe/storefront/pkg/validator"
)

// CartHandler serves the session cart endpoints.
type CartHandler struct {
	service *service.CartService
	fmt     *money.Formatter
	logger  *slog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(svc *service.CartService, fmt *money.Formatter, logger *slog.Logger) *CartHandler {
	return &CartHandler{service: svc, fmt: fmt, logger: logger}
}

// updateLineRequest is the body for updating a cart line's quantity.
type updateLineRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

// GetCart handles GET /api/v1/cart.
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionIDFromContext(r.Context())
	if !ok {
		httputil.WriteError(w, r, apperrors.Unauthorized("session required"), h.logger)
		return
	}

	cart, err := h.service.GetCart(r.Context(), sid)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: toCartResponse(cart, h.fmt)})
}

// AddItem handles POST /api/v1/cart/items.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionIDFromContext(r.Context())
	if !ok {
		httputil.WriteError(w, r, apperrors.Unauthorized("session required"), h.logger)
		return
	}

	var input service.AddItemInput
	if err := validator.DecodeAndValidate(r, &input); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	cart, err := h.service.AddItem(r.Context(), sid, input)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: toCartResponse(cart, h.fmt)})
}

// UpdateLine handles PUT /api/v1/cart/items/{lineID}.
func (h *CartHandler) UpdateLine(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionIDFromContext(r.Context())
	if !ok {
		httputil.WriteError(w, r, apperrors.Unauthorized("session required"), h.logger)
		return
	}
	lineID := chi.URLParam(r, "lineID")

	var req updateLineRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	cart, err := h.service.UpdateLineQuantity(r.Context(), sid, lineID, req.Quantity)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: toCartResponse(cart, h.fmt)})
}

// RemoveLine handles DELETE /api/v1/cart/items/{lineID}.
func (h *CartHandler) RemoveLine(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionIDFromContext(r.Context())
	if !ok {
		httputil.WriteError(w, r, apperrors.Unauthorized("session required"), h.logger)
		return
	}
	lineID := chi.URLParam(r, "lineID")

	cart, err := h.service.RemoveLine(r.Context(), sid, lineID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: toCartResponse(cart, h.fmt)})
}

// ClearCart handles DELETE /api/v1/cart.
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionIDFromContext(r.Context())
	if !ok {
		httputil.WriteError(w, r, apperrors.Unauthorized("session required"), h.logger)
		return
	}

	if err := h.service.ClearCart(r.Context(), sid); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
