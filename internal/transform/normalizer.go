package transform

import (
	"github.com/awardscan/award-scraper/internal/domain"
)

// Normalize maps one raw record onto the canonical output shape. Missing
// pricing fields are derived from their raw display strings, a numeric
// duration is re-rendered as "Xh Ym" text, and leg entries are copied through
// in order. Fields that already carry a value are never overridden, which
// makes Normalize idempotent: Normalize(Normalize(r)) == Normalize(r).
func Normalize(rec domain.FlightRecord) domain.FlightRecord {
	out := rec
	out.Pricing = normalizePricing(rec.Pricing)
	out.Duration = normalizeDuration(rec.Duration)

	legs := make([]domain.Leg, len(rec.Legs))
	copy(legs, rec.Legs)
	out.Legs = legs

	return out
}

// normalizePricing fills points and cash fields from their raw strings when
// the parsed values are absent.
func normalizePricing(p domain.Pricing) domain.Pricing {
	out := p

	if out.PointsAmount == nil && out.PointsPriceRaw != nil && *out.PointsPriceRaw != "" {
		amount, label := ParsePoints(*out.PointsPriceRaw)
		out.PointsAmount = amount
		if out.PointsProgramCurrency == nil {
			out.PointsProgramCurrency = label
		}
	}

	if out.CashCopayAmount == nil && out.CashCopayRaw != nil && *out.CashCopayRaw != "" {
		amount, currency := ParseCash(*out.CashCopayRaw)
		out.CashCopayAmount = &amount
		if out.CashCopayCurrency == nil {
			out.CashCopayCurrency = &currency
		}
	}

	return out
}

// normalizeDuration converts a raw minute count into formatted text. Text
// values pass through unchanged and null stays null.
func normalizeDuration(d domain.Duration) domain.Duration {
	if d.Text == nil && d.Minutes != nil {
		return domain.DurationFromText(domain.FormatMinutes(int(*d.Minutes)))
	}
	return d
}
