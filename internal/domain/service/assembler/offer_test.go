package assembler_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/CptGummiball/mc-dealer-yml2json-fork/internal/domain"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/internal/domain/entity"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/internal/domain/service/assembler"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/internal/domain/service/identity"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/pkg/errcodes"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/pkg/mapx"
)

func newOfferNormalizer(payloads assembler.PayloadDecoder) *assembler.OfferNormalizer {
	return assembler.NewOfferNormalizer(identity.NewResolver(), payloads)
}

func TestBuildOfferBasics(t *testing.T) {
	rq := require.New(t)

	n := newOfferNormalizer(fakePayloads{})

	key, offer, err := n.Build(sellListing("minecraft:DIAMOND", 4, 10))
	rq.NoError(err)

	rq.Equal("minecraft:DIAMOND", key)
	rq.Equal("DIAMOND", offer.Item)
	rq.Equal(4, offer.Amount)
	rq.Equal("money", offer.ExchangeItem)
	rq.InDelta(10, offer.Price, 0)
	rq.InDelta(2.5, offer.UnitPrice, 0)
	rq.InDelta(0, offer.Discount, 0)
	rq.Equal(0, offer.Stock)
	rq.Nil(offer.IsBestPrice)
	rq.Nil(offer.OwnName)
}

func TestBuildOfferDiscount(t *testing.T) {
	rq := require.New(t)

	n := newOfferNormalizer(fakePayloads{})

	listing := sellListing("DIAMOND", 1, 10)
	listing.Set("discount", m("amount", 25))

	_, offer, err := n.Build(listing)
	rq.NoError(err)

	rq.InDelta(25, offer.Discount, 0)
	rq.InDelta(10, offer.UnitPrice, 0, "discount never folds into the unit price")
	rq.InDelta(7.5, offer.ComparisonPrice(), 1e-9)
}

func TestBuildOfferTypedPrice(t *testing.T) {
	rq := require.New(t)

	n := newOfferNormalizer(fakePayloads{})

	_, offer, err := n.Build(sellListing("DIRT", 2, m("type", "minecraft:emerald", "amount", 4)))
	rq.NoError(err)

	rq.Equal("emerald", offer.ExchangeItem)
	rq.InDelta(4, offer.Price, 0)
	rq.InDelta(2, offer.UnitPrice, 0)
}

func TestBuildOfferDisplayNameOverride(t *testing.T) {
	rq := require.New(t)

	n := newOfferNormalizer(fakePayloads{})

	listing := sellListing("minecraft:DIAMOND_SWORD", 1, 100)
	item, _ := listing.Child("item")
	item.Set("meta", m("display-name", `{"extra":[{"text":"Dragon Slayer"}]}`))

	key, offer, err := n.Build(listing)
	rq.NoError(err)

	rq.Equal("Dragon Slayer", key)
	rq.Equal("Dragon Slayer", offer.OwnName)
	rq.Equal("DIAMOND_SWORD", offer.Item, "canonical type ignores the override")
}

func TestBuildOfferEnchantments(t *testing.T) {
	rq := require.New(t)

	n := newOfferNormalizer(fakePayloads{})

	listing := sellListing("DIAMOND_SWORD", 1, 100)
	item, _ := listing.Child("item")
	item.Set("meta", m("enchants", m("sharpness", 5, "unbreaking", 3)))

	_, offer, err := n.Build(listing)
	rq.NoError(err)

	rq.Equal([]entity.Enchantment{
		{Name: "sharpness", Level: 5},
		{Name: "unbreaking", Level: 3},
	}, offer.Enchantments)
}

func TestBuildOfferMissingAmount(t *testing.T) {
	rq := require.New(t)

	n := newOfferNormalizer(fakePayloads{})

	listing := m("mode", "SELL", "item", m("type", "DIRT"), "price", 1)

	_, _, err := n.Build(listing)
	rq.Error(err)

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.MalformedRecord, code)
}

func drawerTree(drawer map[string]any) map[string]any {
	return map[string]any{
		"BlockEntityTag": map[string]any{
			"Items": []any{
				map[string]any{
					"tag": map[string]any{"simpledrawer": drawer},
				},
			},
		},
	}
}

func drawerListing() *mapx.Map {
	listing := sellListing("OAK_PLANKS", 1, 5)
	item, _ := listing.Child("item")
	item.Set("meta", m(
		"ItemFlags", []any{"HIDE_ARMOR_TRIM"},
		"internal", "aGVsbG8=",
	))
	return listing
}

func TestBuildOfferDrawerPayload(t *testing.T) {
	rq := require.New(t)

	source := map[string]any{
		"maxCount":    int32(64),
		"version":     "2.0",
		"globalCount": int32(12),
		"wood_type":   "simpledrawer:oak",
		"itemCount":   int32(12),
	}

	n := newOfferNormalizer(fakePayloads{tree: drawerTree(source)})

	_, offer, err := n.Build(drawerListing())
	rq.NoError(err)

	rq.Equal(map[string]any{
		"wood_type": "oak",
		"itemCount": int32(12),
	}, offer.Drawer)

	// the decoded tree is shared through the memoizing decoder and must
	// keep its bookkeeping fields
	rq.Contains(source, "maxCount")
	rq.Equal("simpledrawer:oak", source["wood_type"])
}

func TestBuildOfferDrawerPathAbsent(t *testing.T) {
	rq := require.New(t)

	n := newOfferNormalizer(fakePayloads{tree: map[string]any{"unrelated": int32(1)}})

	_, offer, err := n.Build(drawerListing())
	rq.NoError(err)
	rq.Nil(offer.Drawer)
}

func TestBuildOfferWithoutTrimFlagSkipsDecode(t *testing.T) {
	rq := require.New(t)

	// decoder errors on any call; without the flag it must stay untouched
	n := newOfferNormalizer(fakePayloads{})

	listing := sellListing("OAK_PLANKS", 1, 5)
	item, _ := listing.Child("item")
	item.Set("meta", m("internal", "aGVsbG8="))

	_, offer, err := n.Build(listing)
	rq.NoError(err)
	rq.Nil(offer.Drawer)
}
