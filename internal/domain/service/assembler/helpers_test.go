package assembler_test

import (
	"errors"

	"github.com/CptGummiball/mc-dealer-yml2json-fork/pkg/mapx"
)

// m builds a mapx.Map from alternating key/value pairs, keeping order.
func m(pairs ...any) *mapx.Map {
	built := mapx.New()
	for i := 0; i < len(pairs); i += 2 {
		built.Set(pairs[i].(string), pairs[i+1])
	}
	return built
}

func sellListing(itemType string, amount int, price any) *mapx.Map {
	return m(
		"mode", "SELL",
		"item", m("type", itemType),
		"amount", amount,
		"price", price,
	)
}

func buyListing(itemType string, amount int, buyPrice any, buyLimit int) *mapx.Map {
	return m(
		"mode", "BUY",
		"item", m("type", itemType),
		"amount", amount,
		"buy_price", buyPrice,
		"buy_limit", buyLimit,
	)
}

func vendorData(kind string, listings *mapx.Map, storage []any) *mapx.Map {
	data := m(
		"type", kind,
		"entity", m(
			"name", "§6Shop [NPC]",
			"profession", "farmer",
			"location", m("world", "world", "x", 10, "y", 64, "z", -3),
		),
	)

	if listings != nil {
		data.Set("items_for_sale", listings)
	}
	if storage != nil {
		data.Set("storage", storage)
	}

	return data
}

type fakePayloads struct {
	tree map[string]any
	err  error
}

func (f fakePayloads) Decode(string) (map[string]any, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.tree == nil {
		return nil, errors.New("unexpected decode call")
	}
	return f.tree, nil
}
