package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/aromaluxe/storefront/internal/domain"
	"github.com/aromaluxe/storefront/internal/service"
	apperrors "github.com/aromaluxe/storefront/pkg/errors"
	"github.com/aromaluxe/storefront/pkg/httputil"
	"github.com/aromaluxe/storefront/pkg/money"
)

// WishlistHandler serves the session wishlist endpoints.
type WishlistHandler struct {
	service *service.WishlistService
	fmt     *money.Formatter
	logger  *slog.Logger
}

// NewWishlistHandler creates a new wishlist handler.
func NewWishlistHandler(svc *service.WishlistService, fmt *money.Formatter, logger *slog.Logger) *WishlistHandler {
	return &WishlistHandler{service: svc, fmt: fmt, logger: logger}
}

// wishlistResponse is the wishlist with its entries resolved to products.
// Saved products that have since been unpublished keep their entry but
// are absent from products.
type wishlistResponse struct {
	SessionID string            `json:"session_id"`
	Entries   []wishlistEntry   `json:"entries"`
	Products  []productResponse `json:"products"`
}

type wishlistEntry struct {
	ProductID string `json:"product_id"`
	AddedAt   string `json:"added_at"`
}

func toWishlistResponse(w *domain.Wishlist, products []domain.Product, fmt *money.Formatter) wishlistResponse {
	entries := make([]wishlistEntry, len(w.Entries))
	for i, e := range w.Entries {
		entries[i] = wishlistEntry{
			ProductID: e.ProductID,
			AddedAt:   e.AddedAt.Format(time.RFC3339),
		}
	}
	return wishlistResponse{
		SessionID: w.SessionID,
		Entries:   entries,
		Products:  toProductResponses(products, fmt),
	}
}

// GetWishlist handles GET /api/v1/wishlist.
func (h *WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionIDFromContext(r.Context())
	if !ok {
		httputil.WriteError(w, r, apperrors.Unauthorized("session required"), h.logger)
		return
	}

	wl, err := h.service.GetWishlist(r.Context(), sid)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	products, err := h.service.GetProducts(r.Context(), sid)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: toWishlistResponse(wl, products, h.fmt)})
}

// AddProduct handles PUT /api/v1/wishlist/{productID}. Adding a product
// that is already saved is a no-op and still returns 200.
func (h *WishlistHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionIDFromContext(r.Context())
	if !ok {
		httputil.WriteError(w, r, apperrors.Unauthorized("session required"), h.logger)
		return
	}
	productID := chi.URLParam(r, "productID")

	wl, err := h.service.AddProduct(r.Context(), sid, productID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	products, err := h.service.GetProducts(r.Context(), sid)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: toWishlistResponse(wl, products, h.fmt)})
}

// RemoveProduct handles DELETE /api/v1/wishlist/{productID}.
func (h *WishlistHandler) RemoveProduct(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionIDFromContext(r.Context())
	if !ok {
		httputil.WriteError(w, r, apperrors.Unauthorized("session required"), h.logger)
		return
	}
	productID := chi.URLParam(r, "productID")

	wl, err := h.service.RemoveProduct(r.Context(), sid, productID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	products, err := h.service.GetProducts(r.Context(), sid)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: toWishlistResponse(wl, products, h.fmt)})
}

// WishlistProducts handles GET /api/v1/wishlist/products, returning only
// the resolved products without the entry metadata.
func (h *WishlistHandler) WishlistProducts(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionIDFromContext(r.Context())
	if !ok {
		httputil.WriteError(w, r, apperrors.Unauthorized("session required"), h.logger)
		return
	}

	products, err := h.service.GetProducts(r.Context(), sid)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: toProductResponses(products, h.fmt)})
}
