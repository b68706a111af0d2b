package prismic

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"

	"github.com/aromaluxe/storefront/internal/domain"
	apperrors "github.com/aromaluxe/storefront/pkg/errors"
	"github.com/aromaluxe/storefront/pkg/httpclient"
)

const (
	fragranceType = "fragrance"
	settingsType  = "settings"

	// maxPageSize is the largest page size the content API accepts.
	maxPageSize = 100
)

// httpDoer is the subset of the HTTP client used by this package. Both
// httpclient.Client and httpclient.CircuitBreakerClient satisfy it.
type httpDoer interface {
	Get(ctx context.Context, url string) (*http.Response, error)
}

// Client reads published documents from a Prismic-compatible content API.
// Every read resolves the current master ref first so the storefront always
// sees the latest published release.
type Client struct {
	baseURL     string
	accessToken string
	http        httpDoer
	logger      *slog.Logger
}

// Config holds the content API connection settings.
type Config struct {
	// BaseURL is the repository endpoint, e.g. "https://aromaluxe.cdn.prismic.io".
	BaseURL string
	// AccessToken is optional; required only for private repositories.
	AccessToken string
}

// New creates a content API client on top of the given HTTP client.
func New(cfg Config, doer httpDoer, logger *slog.Logger) *Client {
	return &Client{
		baseURL:     cfg.BaseURL,
		accessToken: cfg.AccessToken,
		http:        doer,
		logger:      logger,
	}
}

// Products fetches every published fragrance document in catalog order,
// following pagination until the last page.
func (c *Client) Products(ctx context.Context) ([]domain.Product, error) {
	masterRef, err := c.masterRef(ctx)
	if err != nil {
		return nil, err
	}

	var products []domain.Product
	for page := 1; ; page++ {
		resp, err := c.search(ctx, masterRef, fragranceType, page)
		if err != nil {
			return nil, err
		}

		for _, doc := range resp.Results {
			p, err := toProduct(doc)
			if err != nil {
				// A malformed document should not take the whole
				// catalog down; skip and keep going.
				c.logger.WarnContext(ctx, "skipping malformed fragrance document",
					slog.String("document_id", doc.ID),
					slog.String("error", err.Error()),
				)
				continue
			}
			products = append(products, p)
		}

		if resp.NextPage == "" || page >= resp.TotalPages {
			break
		}
	}

	return products, nil
}

// Settings fetches the site settings singleton.
func (c *Client) Settings(ctx context.Context) (domain.Settings, error) {
	masterRef, err := c.masterRef(ctx)
	if err != nil {
		return domain.Settings{}, err
	}

	resp, err := c.search(ctx, masterRef, settingsType, 1)
	if err != nil {
		return domain.Settings{}, err
	}
	if len(resp.Results) == 0 {
		return domain.Settings{}, apperrors.NotFound("settings", settingsType)
	}

	data := resp.Results[0].Data
	settings := domain.Settings{
		SiteTitle:       asText(data.SiteTitle),
		MetaDescription: asText(data.MetaDescription),
	}
	for _, item := range data.Navigation {
		settings.Navigation = append(settings.Navigation, domain.NavLink{
			Label: asText(item.Label),
			URL:   item.Link.URL,
		})
	}
	return settings, nil
}

// masterRef resolves the current master ref from the repository entrypoint.
func (c *Client) masterRef(ctx context.Context) (string, error) {
	u := c.baseURL + "/api/v2"
	if c.accessToken != "" {
		u += "?access_token=" + url.QueryEscape(c.accessToken)
	}

	resp, err := c.http.Get(ctx, u)
	if err != nil {
		return "", fmt.Errorf("fetch api info: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", httpclient.ParseResponseError(resp, "content-api")
	}
	defer func() { _ = resp.Body.Close() }()

	var info apiInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return "", fmt.Errorf("decode api info: %w", err)
	}

	for _, r := range info.Refs {
		if r.IsMasterRef {
			return r.Ref, nil
		}
	}
	return "", fmt.Errorf("content-api: no master ref in repository info")
}

// search queries one page of documents of the given type.
func (c *Client) search(ctx context.Context, masterRef, docType string, page int) (*searchResponse, error) {
	q := url.Values{}
	q.Set("ref", masterRef)
	q.Set("q", fmt.Sprintf(`[[at(document.type,"%s")]]`, docType))
	q.Set("pageSize", fmt.Sprintf("%d", maxPageSize))
	q.Set("page", fmt.Sprintf("%d", page))
	if c.accessToken != "" {
		q.Set("access_token", c.accessToken)
	}

	u := c.baseURL + "/api/v2/documents/search?" + q.Encode()

	resp, err := c.http.Get(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("search %s documents: %w", docType, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, httpclient.ParseResponseError(resp, "content-api")
	}
	defer func() { _ = resp.Body.Close() }()

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("decode %s search response: %w", docType, err)
	}
	return &sr, nil
}

// toProduct maps a fragrance document to the domain model. The CMS authors
// prices in whole currency units; the storefront keeps minor units.
func toProduct(doc document) (domain.Product, error) {
	id := doc.UID
	if id == "" {
		return domain.Product{}, fmt.Errorf("document %s has no uid", doc.ID)
	}

	title := asText(doc.Data.Title)
	if title == "" {
		return domain.Product{}, fmt.Errorf("document %s has no title", doc.ID)
	}

	mood := domain.Mood(doc.Data.Mood)
	if !mood.Valid() {
		return domain.Product{}, fmt.Errorf("document %s has unknown mood %q", doc.ID, doc.Data.Mood)
	}

	scent := domain.ScentProfile(doc.Data.ScentProfile)
	if !scent.Valid() {
		return domain.Product{}, fmt.Errorf("document %s has unknown scent profile %q", doc.ID, doc.Data.ScentProfile)
	}

	if doc.Data.Price < 0 {
		return domain.Product{}, fmt.Errorf("document %s has negative price", doc.ID)
	}

	return domain.Product{
		ID:           id,
		Title:        title,
		Description:  asText(doc.Data.Description),
		Mood:         mood,
		ScentProfile: scent,
		Price:        int64(math.Round(doc.Data.Price * 100)),
		ImageURL:     doc.Data.BottleImage.URL,
	}, nil
}
