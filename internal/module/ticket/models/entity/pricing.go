package entity

import (
	"fmt"
	"strconv"
	"ticketing-service/internal/pkg/errors"
)

// Pricing is the derived money state of a ticket. CustomPrice is nil when
// standard pricing applies.
type Pricing struct {
	EffectivePrice int64
	CustomPrice    *int64
	Balance        int64
}

// ComputePricing derives the effective price and outstanding balance.
// A positive discount wins over an explicit custom price; the discounted
// price is clamped at zero, as is the balance. This is the single pricing
// call site shared by create and update.
func ComputePricing(standardPrice, amountPaid int64, customPrice, discountAmount *int64) (Pricing, error) {
	if amountPaid < 0 {
		return Pricing{}, errors.BadRequest("amount paid cannot be negative")
	}
	if customPrice != nil && *customPrice < 0 {
		return Pricing{}, errors.BadRequest("custom price cannot be negative")
	}
	if discountAmount != nil && *discountAmount < 0 {
		return Pricing{}, errors.BadRequest("discount amount cannot be negative")
	}

	effective := standardPrice
	var custom *int64
	if discountAmount != nil && *discountAmount > 0 {
		discounted := standardPrice - *discountAmount
		if discounted < 0 {
			discounted = 0
		}
		effective = discounted
		custom = &discounted
	} else if customPrice != nil {
		effective = *customPrice
		custom = customPrice
	}

	balance := effective - amountPaid
	if balance < 0 {
		balance = 0
	}

	return Pricing{
		EffectivePrice: effective,
		CustomPrice:    custom,
		Balance:        balance,
	}, nil
}

// TypeLabel renders the human-readable ticket type shown on exports and the
// guest page, e.g. "Standard UGX 80,000" or "Discounted UGX 60,000".
func (p Pricing) TypeLabel(currency string) string {
	if p.CustomPrice != nil {
		return fmt.Sprintf("Discounted %s %s", currency, FormatAmount(p.EffectivePrice))
	}
	return fmt.Sprintf("Standard %s %s", currency, FormatAmount(p.EffectivePrice))
}

// FormatAmount groups digits in thousands: 80000 -> "80,000".
func FormatAmount(v int64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	s := strconv.FormatInt(v, 10)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return sign + s
}
