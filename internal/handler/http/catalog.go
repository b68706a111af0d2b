package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/aromaluxe/storefront/internal/domain"
	"github.com/aromaluxe/storefront/internal/service"
	apperrors "github.com/aromaluxe/storefront/pkg/errors"
	"github.com/aromaluxe/storefront/pkg/httputil"
	"github.com/aromaluxe/storefront/pkg/money"
)

// CatalogHandler serves the read-only product catalog endpoints.
type CatalogHandler struct {
	service *service.CatalogService
	fmt     *money.Formatter
	logger  *slog.Logger
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(svc *service.CatalogService, fmt *money.Formatter, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{service: svc, fmt: fmt, logger: logger}
}

// settingsResponse is the site-wide settings document.
type settingsResponse struct {
	SiteTitle       string           `json:"site_title"`
	MetaDescription string           `json:"meta_description,omitempty"`
	Navigation      []domain.NavLink `json:"navigation,omitempty"`
}

// ListProducts handles GET /api/v1/products.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products := h.service.Products(r.Context())
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: toProductResponses(products, h.fmt)})
}

// GetProduct handles GET /api/v1/products/{productID}.
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	p, err := h.service.Product(r.Context(), productID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: toProductResponse(p, h.fmt)})
}

// SearchProducts handles GET /api/v1/products/search. All criteria are
// optional query parameters and are ANDed together.
func (h *CatalogHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	criteria, err := parseFilterCriteria(r)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	products := h.service.Search(r.Context(), criteria)
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: toProductResponses(products, h.fmt)})
}

// GetSettings handles GET /api/v1/settings.
func (h *CatalogHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	s := h.service.Settings(r.Context())
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: settingsResponse{
		SiteTitle:       s.SiteTitle,
		MetaDescription: s.MetaDescription,
		Navigation:      s.Navigation,
	}})
}

// RefreshCatalog handles POST /api/v1/catalog/refresh, forcing a re-fetch
// from the content API.
func (h *CatalogHandler) RefreshCatalog(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Refresh(r.Context()); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: map[string]string{"status": "refreshed"}})
}

func parseFilterCriteria(r *http.Request) (domain.FilterCriteria, error) {
	q := r.URL.Query()

	criteria := domain.FilterCriteria{
		Query: q.Get("q"),
	}

	if mood := q.Get("mood"); mood != "" {
		m := domain.Mood(mood)
		if !m.Valid() {
			return domain.FilterCriteria{}, apperrors.InvalidInput("unknown mood: " + mood)
		}
		criteria.Mood = m
	}
	if scent := q.Get("scent_profile"); scent != "" {
		sp := domain.ScentProfile(scent)
		if !sp.Valid() {
			return domain.FilterCriteria{}, apperrors.InvalidInput("unknown scent profile: " + scent)
		}
		criteria.ScentProfile = sp
	}

	var err error
	if criteria.MinPrice, err = parsePriceParam(q.Get("min_price")); err != nil {
		return domain.FilterCriteria{}, apperrors.InvalidInput("min_price must be a non-negative integer")
	}
	if criteria.MaxPrice, err = parsePriceParam(q.Get("max_price")); err != nil {
		return domain.FilterCriteria{}, apperrors.InvalidInput("max_price must be a non-negative integer")
	}

	return criteria, nil
}

// parsePriceParam parses a minor-unit price query parameter. Empty means unset.
func parsePriceParam(raw string) (int64, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return 0, apperrors.ErrInvalidInput
	}
	return v, nil
}
