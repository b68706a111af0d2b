package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_USD(t *testing.T) {
	f, err := NewFormatter("USD", "en-US")
	require.NoError(t, err)

	assert.Equal(t, "$60.00", f.Format(6000))
	assert.Equal(t, "$0.00", f.Format(0))
	assert.Equal(t, "$0.99", f.Format(99))
}

func TestFormat_GroupsThousands(t *testing.T) {
	f, err := NewFormatter("USD", "en-US")
	require.NoError(t, err)

	assert.Equal(t, "$1,234.56", f.Format(123456))
}

func TestFormat_NegativeTreatedAsZero(t *testing.T) {
	f, err := NewFormatter("USD", "en-US")
	require.NoError(t, err)

	assert.Equal(t, "$0.00", f.Format(-500))
}

func TestFormat_UnlistedCurrencyFallsBackToCode(t *testing.T) {
	f, err := NewFormatter("JPY", "en-US")
	require.NoError(t, err)

	assert.Equal(t, "JPY 12.00", f.Format(1200))
}

func TestNewFormatter_InvalidCurrency(t *testing.T) {
	_, err := NewFormatter("NOPE", "en-US")
	assert.Error(t, err)
}

func TestNewFormatter_InvalidLocale(t *testing.T) {
	_, err := NewFormatter("USD", "!!")
	assert.Error(t, err)
}

func TestCurrency(t *testing.T) {
	f, err := NewFormatter("USD", "en-US")
	require.NoError(t, err)

	assert.Equal(t, "USD", f.Currency())
}
