package prismic

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aromaluxe/storefront/internal/domain"
	"github.com/aromaluxe/storefront/pkg/httpclient"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func fragranceDoc(uid, title, mood, scent string, price float64) map[string]any {
	return map[string]any{
		"id":   "doc-" + uid,
		"uid":  uid,
		"type": "fragrance",
		"data": map[string]any{
			"title":         []map[string]any{{"type": "heading1", "text": title}},
			"description":   []map[string]any{{"type": "paragraph", "text": "A " + title + " story."}},
			"mood":          mood,
			"scent_profile": scent,
			"price":         price,
			"bottle_image":  map[string]any{"url": "https://images.example.com/" + uid + ".jpg"},
		},
	}
}

// newAPIServer builds a fake content API serving the given fragrance pages
// and a settings singleton.
func newAPIServer(t *testing.T, pages [][]map[string]any, siteTitle string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v2":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"refs": []map[string]any{
					{"id": "staging", "ref": "stale-ref", "isMasterRef": false},
					{"id": "master", "ref": "master-ref-123", "isMasterRef": true},
				},
			})

		case "/api/v2/documents/search":
			assert.Equal(t, "master-ref-123", r.URL.Query().Get("ref"))

			query := r.URL.Query().Get("q")
			if query == `[[at(document.type,"settings")]]` {
				_ = json.NewEncoder(w).Encode(map[string]any{
					"page": 1, "total_pages": 1, "next_page": "",
					"results": []map[string]any{{
						"id": "settings-1", "uid": "settings", "type": "settings",
						"data": map[string]any{
							"site_title":       []map[string]any{{"type": "heading1", "text": siteTitle}},
							"meta_description": []map[string]any{{"type": "paragraph", "text": "Fine fragrances."}},
							"navigation": []map[string]any{
								{
									"label": []map[string]any{{"type": "paragraph", "text": "Shop"}},
									"link":  map[string]any{"url": "https://aromaluxe.example.com/shop"},
								},
							},
						},
					}},
				})
				return
			}

			page := 1
			if p := r.URL.Query().Get("page"); p != "" {
				if parsed, err := strconv.Atoi(p); err == nil {
					page = parsed
				}
			}
			if page > len(pages) {
				page = len(pages)
			}

			nextPage := ""
			if page < len(pages) {
				nextPage = "next"
			}
			_ = json.NewEncoder(w).Encode(map[string]any{
				"page":        page,
				"total_pages": len(pages),
				"next_page":   nextPage,
				"results":     pages[page-1],
			})

		default:
			http.NotFound(w, r)
		}
	}))
}

func newTestClient(baseURL string) *Client {
	hc := httpclient.New(httpclient.Config{
		Timeout:         5 * time.Second,
		MaxRetries:      0,
		MaxConnsPerHost: 10,
	})
	return New(Config{BaseURL: baseURL}, hc, discardLogger())
}

func TestProducts_SinglePage(t *testing.T) {
	server := newAPIServer(t, [][]map[string]any{{
		fragranceDoc("rose-noir", "Rose Noir", "mysterious", "floral", 120),
		fragranceDoc("oak-ember", "Oak & Ember", "bold", "woody", 95),
	}}, "AromaLuxe")
	defer server.Close()

	products, err := newTestClient(server.URL).Products(context.Background())
	require.NoError(t, err)

	require.Len(t, products, 2)
	assert.Equal(t, domain.Product{
		ID:           "rose-noir",
		Title:        "Rose Noir",
		Description:  "A Rose Noir story.",
		Mood:         domain.MoodMysterious,
		ScentProfile: domain.ScentFloral,
		Price:        12000,
		ImageURL:     "https://images.example.com/rose-noir.jpg",
	}, products[0])
}

func TestProducts_FollowsPagination(t *testing.T) {
	server := newAPIServer(t, [][]map[string]any{
		{fragranceDoc("a", "Alpha", "fresh", "citrus", 50)},
		{fragranceDoc("b", "Beta", "elegant", "floral", 60)},
	}, "AromaLuxe")
	defer server.Close()

	products, err := newTestClient(server.URL).Products(context.Background())
	require.NoError(t, err)

	require.Len(t, products, 2)
	assert.Equal(t, "a", products[0].ID)
	assert.Equal(t, "b", products[1].ID)
}

func TestProducts_SkipsMalformedDocuments(t *testing.T) {
	bad := fragranceDoc("broken", "Broken", "melancholic", "floral", 10)
	server := newAPIServer(t, [][]map[string]any{{
		bad,
		fragranceDoc("good", "Good", "fresh", "citrus", 70),
	}}, "AromaLuxe")
	defer server.Close()

	products, err := newTestClient(server.URL).Products(context.Background())
	require.NoError(t, err)

	require.Len(t, products, 1)
	assert.Equal(t, "good", products[0].ID)
}

func TestProducts_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"type": "api_security_error", "message": "repository is private",
		})
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Products(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "repository is private")
}

func TestSettings(t *testing.T) {
	server := newAPIServer(t, [][]map[string]any{{}}, "AromaLuxe Parfums")
	defer server.Close()

	settings, err := newTestClient(server.URL).Settings(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "AromaLuxe Parfums", settings.SiteTitle)
	assert.Equal(t, "Fine fragrances.", settings.MetaDescription)
	require.Len(t, settings.Navigation, 1)
	assert.Equal(t, "Shop", settings.Navigation[0].Label)
	assert.Equal(t, "https://aromaluxe.example.com/shop", settings.Navigation[0].URL)
}

func TestMasterRef_Missing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"refs": []map[string]any{}})
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Products(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no master ref")
}

func TestAsText(t *testing.T) {
	assert.Equal(t, "", asText(nil))
	assert.Equal(t, "one", asText([]textSpan{{Text: "one"}}))
	assert.Equal(t, "one\ntwo", asText([]textSpan{{Text: "one"}, {Text: "two"}}))
}

func TestToProduct_PriceConversion(t *testing.T) {
	doc := document{
		ID:  "d1",
		UID: "amber-dusk",
		Data: documentData{
			Title:        []textSpan{{Text: "Amber Dusk"}},
			Mood:         "elegant",
			ScentProfile: "oriental",
			Price:        89.5,
		},
	}

	p, err := toProduct(doc)
	require.NoError(t, err)
	assert.Equal(t, int64(8950), p.Price)
}
