package pricing

import (
	"github.com/CptGummiball/mc-dealer-yml2json-fork/internal/domain/entity"
)

// BestPriceTracker holds the lowest discounted unit sell price and the
// highest unit buy price seen so far, per canonical item. It is written
// monotonically while vendors are assembled and read-only during the
// stamping pass. Only money-denominated listings are tracked.
type BestPriceTracker struct {
	bestOffers  map[string]float64
	bestDemands map[string]float64
}

func NewBestPriceTracker() *BestPriceTracker {
	return &BestPriceTracker{
		bestOffers:  make(map[string]float64),
		bestDemands: make(map[string]float64),
	}
}

// RecordOfferCandidate feeds one sell listing into the registry. Admin
// shops have infinite stock so their offers always qualify; player offers
// qualify only while stocked.
func (t *BestPriceTracker) RecordOfferCandidate(
	item string,
	comparisonPrice float64,
	kind entity.VendorKind,
	paymentItem string,
	stock int,
) {
	if paymentItem != CurrencyItem {
		return
	}
	if kind != entity.KindAdmin && stock <= 0 {
		return
	}

	if best, ok := t.bestOffers[item]; !ok || comparisonPrice < best {
		t.bestOffers[item] = comparisonPrice
	}
}

// RecordDemandCandidate feeds one buy listing into the registry.
func (t *BestPriceTracker) RecordDemandCandidate(item string, unitPrice float64, paymentItem string) {
	if paymentItem != CurrencyItem {
		return
	}

	if best, ok := t.bestDemands[item]; !ok || unitPrice > best {
		t.bestDemands[item] = unitPrice
	}
}

func (t *BestPriceTracker) BestOffer(item string) (float64, bool) {
	best, ok := t.bestOffers[item]
	return best, ok
}

func (t *BestPriceTracker) BestDemand(item string) (float64, bool) {
	best, ok := t.bestDemands[item]
	return best, ok
}

// StampBestOffer reports whether the offer currently leads its item. An
// unstocked player offer never leads, whatever its price.
func (t *BestPriceTracker) StampBestOffer(kind entity.VendorKind, offer *entity.Offer) bool {
	if kind != entity.KindAdmin && offer.Stock <= 0 {
		return false
	}

	best, ok := t.bestOffers[offer.Item]

	return ok && offer.ComparisonPrice() == best
}

// StampBestDemand reports whether the demand currently leads its item.
func (t *BestPriceTracker) StampBestDemand(demand *entity.Demand) bool {
	best, ok := t.bestDemands[demand.Item]

	return ok && demand.UnitPrice == best
}
