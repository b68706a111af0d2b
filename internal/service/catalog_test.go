package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/aromaluxe/storefront/internal/domain"
	apperrors "github.com/aromaluxe/storefront/pkg/errors"
)

func catalogProducts() []domain.Product {
	return []domain.Product{
		{ID: "rose-noir", Title: "Rose Noir", Mood: domain.MoodMysterious, ScentProfile: domain.ScentFloral, Price: 12000},
		{ID: "oak-ember", Title: "Oak & Ember", Mood: domain.MoodBold, ScentProfile: domain.ScentWoody, Price: 9500},
	}
}

func TestCatalogService_Refresh(t *testing.T) {
	provider := &mockProvider{}
	provider.On("Products", mock.Anything).Return(catalogProducts(), nil)
	provider.On("Settings", mock.Anything).Return(domain.Settings{SiteTitle: "AromaLuxe"}, nil)

	svc := NewCatalogService(provider, discardLogger())
	require.NoError(t, svc.Refresh(context.Background()))

	assert.Len(t, svc.Products(context.Background()), 2)
	assert.Equal(t, "AromaLuxe", svc.Settings(context.Background()).SiteTitle)
	assert.NoError(t, svc.Ready(context.Background()))
}

func TestCatalogService_RefreshFailureKeepsOldCatalog(t *testing.T) {
	provider := &mockProvider{}
	provider.On("Products", mock.Anything).Return(catalogProducts(), nil).Once()
	provider.On("Settings", mock.Anything).Return(domain.Settings{SiteTitle: "AromaLuxe"}, nil).Once()

	svc := NewCatalogService(provider, discardLogger())
	require.NoError(t, svc.Refresh(context.Background()))

	provider.On("Products", mock.Anything).Return(nil, errors.New("upstream down")).Once()

	err := svc.Refresh(context.Background())
	require.Error(t, err)

	// Previous catalog still served.
	assert.Len(t, svc.Products(context.Background()), 2)
}

func TestCatalogService_Product(t *testing.T) {
	provider := &mockProvider{}
	provider.On("Products", mock.Anything).Return(catalogProducts(), nil)
	provider.On("Settings", mock.Anything).Return(domain.Settings{}, nil)

	svc := NewCatalogService(provider, discardLogger())
	require.NoError(t, svc.Refresh(context.Background()))

	p, err := svc.Product(context.Background(), "oak-ember")
	require.NoError(t, err)
	assert.Equal(t, "Oak & Ember", p.Title)

	_, err = svc.Product(context.Background(), "ghost")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestCatalogService_Search(t *testing.T) {
	provider := &mockProvider{}
	provider.On("Products", mock.Anything).Return(catalogProducts(), nil)
	provider.On("Settings", mock.Anything).Return(domain.Settings{}, nil)

	svc := NewCatalogService(provider, discardLogger())
	require.NoError(t, svc.Refresh(context.Background()))

	got := svc.Search(context.Background(), domain.FilterCriteria{Query: "oak"})
	require.Len(t, got, 1)
	assert.Equal(t, "oak-ember", got[0].ID)

	// Empty criteria returns the full catalog.
	assert.Len(t, svc.Search(context.Background(), domain.FilterCriteria{}), 2)
}

func TestCatalogService_ReadyBeforeLoad(t *testing.T) {
	svc := NewCatalogService(&mockProvider{}, discardLogger())
	assert.Error(t, svc.Ready(context.Background()))
}
