package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gearshare-backend/internal/domain"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr error
	}{
		{"Whole units", "200", 20000, nil},
		{"Two decimals", "199.50", 19950, nil},
		{"One decimal pads", "199.5", 19950, nil},
		{"Cents only", "0.99", 99, nil},
		{"Whitespace trimmed", " 42 ", 4200, nil},
		{"Empty", "", 0, ErrPriceRequired},
		{"Blank", "   ", 0, ErrPriceRequired},
		{"Three decimals", "12.345", 0, ErrPricePrecision},
		{"Not a number", "abc", 0, ErrPriceInvalid},
		{"Garbage fraction", "12.x9", 0, ErrPriceInvalid},
		{"Negative", "-5", 0, ErrPriceNotPositive},
		{"Negative zero units", "-0.50", 0, ErrPriceNotPositive},
		{"Signed fraction", "1.-5", 0, ErrPriceInvalid},
		{"Leading plus", "+5", 0, ErrPriceInvalid},
		{"Zero", "0", 0, ErrPriceNotPositive},
		{"Zero with decimals", "0.00", 0, ErrPriceNotPositive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePrice(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "200", FormatCents(20000))
	assert.Equal(t, "199.50", FormatCents(19950))
	assert.Equal(t, "0.99", FormatCents(99))
}

func TestExtensionCost(t *testing.T) {
	rental := &domain.Rental{PriceCents: 20000, PlanDays: 7}
	assert.Equal(t, int64(140000), ExtensionCost(rental))
}

func TestTotalCost(t *testing.T) {
	t.Run("No extensions", func(t *testing.T) {
		rental := &domain.Rental{PriceCents: 20000, PlanDays: 7, TotalExtensions: 0}
		assert.Equal(t, int64(140000), TotalCost(rental))
	})

	t.Run("Two extensions", func(t *testing.T) {
		rental := &domain.Rental{PriceCents: 20000, PlanDays: 7, TotalExtensions: 2}
		assert.Equal(t, int64(420000), TotalCost(rental))
	})
}
