package assembler

import (
	"github.com/CptGummiball/mc-dealer-yml2json-fork/internal/domain"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/internal/domain/entity"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/internal/domain/service/identity"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/internal/domain/service/pricing"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/pkg/errcodes"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/pkg/mapx"
)

// DemandNormalizer builds one normalized buy listing from a raw record.
//
// Demands group by the raw type code: no potion/book disambiguation and no
// display-name override. Two demands that the offer side would keep apart
// collapse into one entry when their raw types match.
type DemandNormalizer struct{}

// Build returns the vendor-local index key (the raw type code) and the
// demand.
func (DemandNormalizer) Build(raw *mapx.Map) (string, *entity.Demand, error) {
	itemBlock, ok := raw.Child("item")
	if !ok {
		return "", nil, domain.NewError(errcodes.MalformedRecord, "demand has no item block")
	}

	rawType, ok := itemBlock.String("type")
	if !ok {
		return "", nil, domain.NewError(errcodes.MalformedRecord, "demand item has no type")
	}

	amount, ok := raw.Int("amount")
	if !ok || amount == 0 {
		return "", nil, domain.NewError(errcodes.MalformedRecord, "demand has no usable amount")
	}

	rawBuyPrice, _ := raw.Get("buy_price")
	priceBlock, _ := raw.Get("price")

	paymentItem, price, err := pricing.NormalizeBuyPrice(rawBuyPrice, priceBlock)
	if err != nil {
		return "", nil, err
	}

	buyLimit, ok := raw.Int("buy_limit")
	if !ok {
		return "", nil, domain.NewError(errcodes.MalformedRecord, "demand has no buy limit")
	}

	demand := &entity.Demand{
		Item:         identity.CanonicalType(rawType),
		Amount:       amount,
		ExchangeItem: paymentItem,
		Price:        price,
		UnitPrice:    price / float64(amount),
		BuyLimit:     buyLimit,
	}

	return rawType, demand, nil
}
