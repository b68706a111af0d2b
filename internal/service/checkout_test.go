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
	"github.com/aromaluxe/storefront/pkg/validator"
)

func validForm() domain.CheckoutForm {
	return domain.CheckoutForm{
		Email:      "ada@example.com",
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Address:    "12 Analytical Row",
		City:       "London",
		PostalCode: "EC1A",
		Country:    "GB",
		NameOnCard: "Ada Lovelace",
		CardNumber: "4242424242424242",
		ExpiryDate: "12/27",
		CVV:        "123",
	}
}

func filledCart() *domain.Cart {
	return &domain.Cart{
		SessionID: "sess-1",
		Lines: []domain.CartLine{
			{ID: "rose-noir-50ml", ProductID: "rose-noir", Title: "Rose Noir (50ml)", Size: domain.Size50ml, UnitPrice: 12000, Quantity: 1},
		},
		Currency: "USD",
	}
}

func newTestCheckoutService() (*CheckoutService, *mockCartReader, *mockCheckoutPublisher) {
	carts := &mockCartReader{}
	pub := &mockCheckoutPublisher{}
	svc := NewCheckoutService(carts, pub, discardLogger(), domain.Pricing{
		ShippingFlat: 1500,
		TaxRate:      0.08,
	})
	return svc, carts, pub
}

func TestPlaceOrder(t *testing.T) {
	svc, carts, pub := newTestCheckoutService()
	carts.On("GetCart", mock.Anything, "sess-1").Return(filledCart(), nil)
	carts.On("ClearCart", mock.Anything, "sess-1").Return(nil)
	pub.On("PublishCheckoutCompleted", mock.Anything, "sess-1", mock.Anything).Return(nil)

	conf, err := svc.PlaceOrder(context.Background(), "sess-1", validForm())
	require.NoError(t, err)

	assert.NotEmpty(t, conf.OrderNumber)
	assert.Contains(t, conf.OrderNumber, "AL-")
	assert.Equal(t, "ada@example.com", conf.Email)
	assert.Equal(t, int64(12000), conf.Totals.Subtotal)
	assert.Equal(t, int64(1500), conf.Totals.Shipping)
	assert.Equal(t, int64(960), conf.Totals.Tax)
	assert.Equal(t, int64(14460), conf.Totals.Total)
	assert.Equal(t, "USD", conf.Currency)
	require.Len(t, conf.Lines, 1)

	carts.AssertExpectations(t)
	pub.AssertExpectations(t)
}

func TestPlaceOrder_EmptyCartRejected(t *testing.T) {
	svc, carts, _ := newTestCheckoutService()
	carts.On("GetCart", mock.Anything, "sess-1").Return(&domain.Cart{SessionID: "sess-1", Currency: "USD"}, nil)

	_, err := svc.PlaceOrder(context.Background(), "sess-1", validForm())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
	carts.AssertNotCalled(t, "ClearCart", mock.Anything, mock.Anything)
}

func TestPlaceOrder_InvalidFormRejected(t *testing.T) {
	svc, carts, _ := newTestCheckoutService()

	form := validForm()
	form.Email = "not-an-email"
	form.CVV = ""

	_, err := svc.PlaceOrder(context.Background(), "sess-1", form)
	require.Error(t, err)

	var valErr *validator.ValidationError
	assert.ErrorAs(t, err, &valErr)
	carts.AssertNotCalled(t, "GetCart", mock.Anything, mock.Anything)
}

func TestPlaceOrder_ClearsCart(t *testing.T) {
	svc, carts, pub := newTestCheckoutService()
	carts.On("GetCart", mock.Anything, "sess-1").Return(filledCart(), nil)
	carts.On("ClearCart", mock.Anything, "sess-1").Return(nil)
	pub.On("PublishCheckoutCompleted", mock.Anything, "sess-1", mock.Anything).Return(nil)

	_, err := svc.PlaceOrder(context.Background(), "sess-1", validForm())
	require.NoError(t, err)

	carts.AssertCalled(t, "ClearCart", mock.Anything, "sess-1")
}

func TestPlaceOrder_EventFailureDoesNotFailOrder(t *testing.T) {
	svc, carts, pub := newTestCheckoutService()
	carts.On("GetCart", mock.Anything, "sess-1").Return(filledCart(), nil)
	carts.On("ClearCart", mock.Anything, "sess-1").Return(nil)
	pub.On("PublishCheckoutCompleted", mock.Anything, "sess-1", mock.Anything).Return(errors.New("broker down"))

	conf, err := svc.PlaceOrder(context.Background(), "sess-1", validForm())
	require.NoError(t, err)
	assert.NotEmpty(t, conf.OrderNumber)
}

func TestPlaceOrder_OrderNumbersAreUnique(t *testing.T) {
	svc, carts, pub := newTestCheckoutService()
	carts.On("GetCart", mock.Anything, "sess-1").Return(filledCart(), nil)
	carts.On("ClearCart", mock.Anything, "sess-1").Return(nil)
	pub.On("PublishCheckoutCompleted", mock.Anything, "sess-1", mock.Anything).Return(nil)

	first, err := svc.PlaceOrder(context.Background(), "sess-1", validForm())
	require.NoError(t, err)
	second, err := svc.PlaceOrder(context.Background(), "sess-1", validForm())
	require.NoError(t, err)

	assert.NotEqual(t, first.OrderNumber, second.OrderNumber)
}
