package assembler

import (
	"github.com/CptGummiball/mc-dealer-yml2json-fork/internal/domain"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/internal/domain/entity"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/internal/domain/service/identity"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/internal/domain/service/pricing"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/pkg/errcodes"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/pkg/mapx"
)

// StockAggregator sums a vendor's storage into per-identity quantities and
// reconciles them back into the vendor's listings.
type StockAggregator struct {
	resolver *identity.Resolver
}

func NewStockAggregator(resolver *identity.Resolver) *StockAggregator {
	return &StockAggregator{resolver: resolver}
}

// Aggregate keys storage entries like offers are keyed (rule chain plus
// display-name override) and sums quantities, one per unspecified amount.
func (a *StockAggregator) Aggregate(storage []any) (map[string]int, error) {
	stocks := make(map[string]int, len(storage))

	for _, raw := range storage {
		entry, ok := raw.(*mapx.Map)
		if !ok {
			return nil, domain.NewError(errcodes.MalformedRecord, "storage entry is not a mapping")
		}

		descriptor, err := identity.ParseDescriptor(entry)
		if err != nil {
			return nil, err
		}

		id, err := a.resolver.Resolve(descriptor)
		if err != nil {
			return nil, err
		}
		key := id.Key

		override, matched, err := identity.OverrideFromDisplayName(descriptor.Meta)
		if err != nil {
			return nil, err
		}
		if matched {
			key = override.Key
		}

		amount := 1
		if explicit, ok := entry.Int("amount"); ok {
			amount = explicit
		}

		stocks[key] += amount
	}

	return stocks, nil
}

// Reconcile writes quantities into matching offers (feeding the tracker,
// since a stocked player offer becomes a best-price candidate) and lowers
// matching player demand buy limits, floored at zero. Admin buy limits are
// never touched.
func (a *StockAggregator) Reconcile(vendor *entity.Vendor, stocks map[string]int, tracker *pricing.BestPriceTracker) {
	for key, quantity := range stocks {
		if offer, ok := vendor.Offers[key]; ok {
			offer.Stock = quantity
			tracker.RecordOfferCandidate(offer.Item, offer.ComparisonPrice(), vendor.Kind, offer.ExchangeItem, quantity)
		}

		if demand, ok := vendor.Demands[key]; ok && vendor.Kind == entity.KindPlayer {
			demand.BuyLimit = max(0, demand.BuyLimit-quantity)
		}
	}
}
