// Package pricing normalizes heterogeneous payment representations and
// tracks the best price per item across the whole vendor population.
package pricing

import (
	"github.com/spf13/cast"

	"github.com/CptGummiball/mc-dealer-yml2json-fork/internal/domain"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/internal/domain/service/identity"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/pkg/errcodes"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/pkg/mapx"
)

// CurrencyItem is the sentinel payment item for flat money prices.
const CurrencyItem = "money"

// NormalizeSellPrice turns a raw sell price into (payment item, amount).
// A bare number means money; otherwise a typed block with an optional
// amount (default 1) is expected.
func NormalizeSellPrice(raw any) (string, float64, error) {
	if raw == nil {
		return "", 0, domain.NewError(errcodes.MalformedRecord, "offer has no price")
	}

	if isNumber(raw) {
		return CurrencyItem, cast.ToFloat64(raw), nil
	}

	block, ok := raw.(*mapx.Map)
	if !ok {
		return "", 0, domain.NewError(errcodes.UnknownPaymentShape, "sell price is neither a number nor a block")
	}

	paymentItem, ok := block.String("type")
	if !ok {
		return "", 0, domain.NewError(errcodes.UnknownPaymentShape, "typed sell price has no type")
	}

	amount := 1.0
	if explicit, ok := block.Float("amount"); ok {
		amount = explicit
	}

	return identity.CanonicalType(paymentItem), amount, nil
}

// NormalizeBuyPrice turns a raw buy price into (payment item, amount).
// A bare number means money; otherwise both type and amount are read from
// the sibling typed price block, and a missing amount is a hard error —
// unlike the sell side there is no default.
func NormalizeBuyPrice(rawBuy any, priceBlock any) (string, float64, error) {
	if rawBuy == nil {
		return "", 0, domain.NewError(errcodes.MalformedRecord, "demand has no buy price")
	}

	if isNumber(rawBuy) {
		return CurrencyItem, cast.ToFloat64(rawBuy), nil
	}

	block, ok := priceBlock.(*mapx.Map)
	if !ok {
		return "", 0, domain.NewError(errcodes.UnknownPaymentShape, "buy price has no typed price block")
	}

	paymentItem, ok := block.String("type")
	if !ok {
		return "", 0, domain.NewError(errcodes.UnknownPaymentShape, "typed buy price has no type")
	}

	amount, ok := block.Float("amount")
	if !ok {
		return "", 0, domain.NewError(errcodes.MalformedRecord, "typed buy price has no amount")
	}

	return identity.CanonicalType(paymentItem), amount, nil
}

// Discounted is the comparison price: the unit price scaled by the
// discount percentage. Never stored back into a listing.
func Discounted(unitPrice, discountPercent float64) float64 {
	return unitPrice * (1 - discountPercent/100)
}

// isNumber reports whether the raw document value is numeric. Strings are
// deliberately not coerced.
func isNumber(value any) bool {
	switch value.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	default:
		return false
	}
}
