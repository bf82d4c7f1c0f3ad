// Package assembler orchestrates the per-vendor normalization and the
// global best-price pass. The computation is a deterministic two-pass
// batch: pass one builds every vendor and feeds the price tracker, pass
// two stamps each listing against the now-complete registry.
package assembler

import (
	"context"
	"fmt"

	"github.com/CptGummiball/mc-dealer-yml2json-fork/internal/domain"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/internal/domain/entity"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/internal/domain/service/identity"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/internal/domain/service/pricing"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/pkg/errcodes"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/pkg/logx"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/pkg/lox"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/pkg/mapx"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/pkg/mctext"
)

const (
	modeSell = "SELL"
	modeBuy  = "BUY"

	adminOwnerName = "ADMIN"
)

// VendorRecord is one raw shop document plus its source identity.
type VendorRecord struct {
	UUID string
	Data *mapx.Map
}

type Assembler struct {
	offers  *OfferNormalizer
	demands DemandNormalizer
	stock   *StockAggregator
	tracker *pricing.BestPriceTracker
}

func New(payloads PayloadDecoder) *Assembler {
	resolver := identity.NewResolver()

	return &Assembler{
		offers:  NewOfferNormalizer(resolver, payloads),
		stock:   NewStockAggregator(resolver),
		tracker: pricing.NewBestPriceTracker(),
	}
}

// Tracker exposes the registry; read-only once AssembleAll returned.
func (a *Assembler) Tracker() *pricing.BestPriceTracker {
	return a.tracker
}

// AssembleAll builds every vendor, then stamps best-price flags. Any
// malformed record aborts the whole run.
func (a *Assembler) AssembleAll(ctx context.Context, records []VendorRecord) ([]*entity.Vendor, error) {
	vendors, err := lox.MapErr(records, func(record VendorRecord) (*entity.Vendor, error) {
		vendor, err := a.assembleVendor(ctx, record)
		if err != nil {
			return nil, fmt.Errorf("shop %s: %w", record.UUID, err)
		}
		return vendor, nil
	})
	if err != nil {
		return nil, err
	}

	a.stampBestPrices(vendors)

	return vendors, nil
}

func (a *Assembler) assembleVendor(ctx context.Context, record VendorRecord) (*entity.Vendor, error) {
	data := record.Data

	kind, ok := data.String("type")
	if !ok {
		return nil, domain.NewError(errcodes.MalformedRecord, "shop record has no type")
	}

	vendor := &entity.Vendor{
		UUID:    record.UUID,
		Kind:    entity.VendorKind(kind),
		Offers:  make(map[string]*entity.Offer),
		Demands: make(map[string]*entity.Demand),
	}

	if vendor.IsAdmin() {
		vendor.OwnerName = adminOwnerName
	}
	if ownerUUID, ok := data.String("ownerUUID"); ok {
		vendor.OwnerUUID = ownerUUID
	}
	if ownerName, ok := data.String("ownerName"); ok {
		vendor.OwnerName = ownerName
	}

	if err := fillNPC(vendor, data); err != nil {
		return nil, err
	}

	if listings, ok := data.Child("items_for_sale"); ok {
		if err := a.fillListings(vendor, listings); err != nil {
			return nil, err
		}
	}

	if storage, ok := data.Slice("storage"); ok {
		stocks, err := a.stock.Aggregate(storage)
		if err != nil {
			return nil, err
		}
		a.stock.Reconcile(vendor, stocks, a.tracker)
	}

	logger(ctx).Debug("assembled shop",
		logx.FieldShopUUID, vendor.UUID,
		"offers", len(vendor.Offers),
		"demands", len(vendor.Demands),
	)

	return vendor, nil
}

func fillNPC(vendor *entity.Vendor, data *mapx.Map) error {
	npc, ok := data.Child("entity")
	if !ok {
		return domain.NewError(errcodes.MalformedRecord, "shop record has no entity block")
	}

	name, ok := npc.String("name")
	if !ok {
		return domain.NewError(errcodes.MalformedRecord, "shop entity has no name")
	}
	vendor.Name = mctext.CleanDisplayName(name)

	profession, ok := npc.String("profession")
	if !ok {
		return domain.NewError(errcodes.MalformedRecord, "shop entity has no profession")
	}
	vendor.Profession = profession

	location, ok := npc.Child("location")
	if !ok {
		return domain.NewError(errcodes.MalformedRecord, "shop entity has no location")
	}

	world, ok := location.String("world")
	if !ok {
		return domain.NewError(errcodes.MalformedRecord, "shop location has no world")
	}

	x, okX := location.Float("x")
	y, okY := location.Float("y")
	z, okZ := location.Float("z")
	if !okX || !okY || !okZ {
		return domain.NewError(errcodes.MalformedRecord, "shop location has no coordinates")
	}

	vendor.Location = entity.Location{World: world, X: x, Y: y, Z: z}

	return nil
}

// fillListings walks items_for_sale in document order. Later listings of
// the same index key overwrite earlier ones, matching the source format.
func (a *Assembler) fillListings(vendor *entity.Vendor, listings *mapx.Map) error {
	for _, listingID := range listings.Keys() {
		raw, ok := listings.Child(listingID)
		if !ok {
			return domain.NewErrorf(errcodes.MalformedRecord, "listing %s is not a mapping", listingID)
		}

		mode, _ := raw.String("mode")

		switch mode {
		case modeSell:
			key, offer, err := a.offers.Build(raw)
			if err != nil {
				return fmt.Errorf("listing %s: %w", listingID, err)
			}
			vendor.Offers[key] = offer
			a.tracker.RecordOfferCandidate(offer.Item, offer.ComparisonPrice(), vendor.Kind, offer.ExchangeItem, offer.Stock)

		case modeBuy:
			key, demand, err := a.demands.Build(raw)
			if err != nil {
				return fmt.Errorf("listing %s: %w", listingID, err)
			}
			vendor.Demands[key] = demand
			a.tracker.RecordDemandCandidate(demand.Item, demand.UnitPrice, demand.ExchangeItem)

		default:
			// other modes carry no listing data
		}
	}

	return nil
}

// stampBestPrices is pass two. Re-running it over the same vendors yields
// identical flags: the registry is not written here.
func (a *Assembler) stampBestPrices(vendors []*entity.Vendor) {
	for _, vendor := range vendors {
		for _, offer := range vendor.Offers {
			flag := a.tracker.StampBestOffer(vendor.Kind, offer)
			offer.IsBestPrice = &flag
		}

		for _, demand := range vendor.Demands {
			// The flag lands on whichever entry shares the canonical item
			// string. That is the entry itself unless two raw type codes
			// differ only in namespace prefix; then one entry is stamped
			// twice and the other keeps a null flag.
			target, ok := vendor.Demands[demand.Item]
			if !ok {
				continue
			}
			flag := a.tracker.StampBestDemand(target)
			target.IsBestPrice = &flag
		}
	}
}
