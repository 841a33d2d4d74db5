package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gearshare-backend/internal/domain"
)

var (
	ErrPriceRequired    = errors.New("price is required")
	ErrPriceInvalid     = errors.New("invalid price")
	ErrPriceNotPositive = errors.New("price must be positive")
	ErrPricePrecision   = errors.New("price has more than two decimal places")
)

// ParsePrice converts a decimal price string ("200", "199.50") into
// integer cents. Prices arrive from clients as strings; everything past
// this boundary works in cents.
func ParsePrice(priceStr string) (int64, error) {
	s := strings.TrimSpace(priceStr)
	if s == "" {
		return 0, ErrPriceRequired
	}
	// Signs are rejected outright: a price can only be positive, and
	// ParseInt would otherwise accept "-0.50" or "1.-5".
	if strings.HasPrefix(s, "-") {
		return 0, ErrPriceNotPositive
	}
	if strings.ContainsAny(s, "+-") {
		return 0, ErrPriceInvalid
	}

	whole := s
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
		if len(frac) > 2 {
			return 0, ErrPricePrecision
		}
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, ErrPriceInvalid
	}
	if units < 0 {
		return 0, ErrPriceNotPositive
	}

	cents := units * 100
	if frac != "" {
		// Pad "5" to "50" so 199.5 reads as 199.50.
		for len(frac) < 2 {
			frac += "0"
		}
		f, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, ErrPriceInvalid
		}
		cents += f
	}

	if cents <= 0 {
		return 0, ErrPriceNotPositive
	}
	return cents, nil
}

// FormatCents renders integer cents back as a decimal string.
func FormatCents(cents int64) string {
	if cents%100 == 0 {
		return strconv.FormatInt(cents/100, 10)
	}
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

// ExtensionCost is the cost of one plan period of a rental: the per-day
// price snapshot times the plan's duration in days.
func ExtensionCost(rental *domain.Rental) int64 {
	return rental.PriceCents * int64(rental.PlanDays)
}

// TotalCost is the cost of the initial period plus all extensions taken
// so far.
func TotalCost(rental *domain.Rental) int64 {
	return ExtensionCost(rental) * int64(rental.TotalExtensions+1)
}
