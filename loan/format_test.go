package loan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCurrencyWholePounds(t *testing.T) {
	assert.Equal(t, "£1,000", FormatCurrency(1000))
	assert.Equal(t, "£25,000", FormatCurrency(25000))
	assert.Equal(t, "£1,000,000", FormatCurrency(1000000))
	assert.Equal(t, "£0", FormatCurrency(0))
}

func TestFormatCurrencyPence(t *testing.T) {
	assert.Equal(t, "£618.37", FormatCurrency(618.37))
}

func TestCurrencyRoundTrip(t *testing.T) {
	values := []float64{1000, 1500, 9999, 25000, 123456, 500000, 1000000}
	for _, v := range values {
		parsed, err := ParseCurrency(FormatCurrency(v))
		require.NoError(t, err)
		assert.Equal(t, v, parsed, "value %v did not round-trip", v)
	}
}

func TestParseCurrencyTolerantInput(t *testing.T) {
	parsed, err := ParseCurrency("  £25,000 ")
	require.NoError(t, err)
	assert.Equal(t, 25000.0, parsed)

	parsed, err = ParseCurrency("618.37")
	require.NoError(t, err)
	assert.Equal(t, 618.37, parsed)
}

func TestParseCurrencyRejectsGarbage(t *testing.T) {
	_, err := ParseCurrency("")
	assert.Error(t, err)
	_, err = ParseCurrency("£")
	assert.Error(t, err)
	_, err = ParseCurrency("twenty grand")
	assert.Error(t, err)
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "8.9%", FormatPercentage(8.9))
	assert.Equal(t, "12.0%", FormatPercentage(12))
}
