package assembler

import (
	"maps"
	"strings"

	"github.com/samber/lo"

	"github.com/CptGummiball/mc-dealer-yml2json-fork/internal/domain"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/internal/domain/entity"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/internal/domain/service/identity"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/internal/domain/service/pricing"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/pkg/errcodes"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/pkg/mapx"
)

const (
	hideTrimFlag    = "HIDE_ARMOR_TRIM"
	drawerNamespace = "simpledrawer"
)

// PayloadDecoder decodes the opaque base64 NBT payload embedded in drawer
// items into a generic tree.
type PayloadDecoder interface {
	Decode(encoded string) (map[string]any, error)
}

// OfferNormalizer builds one normalized sell listing from a raw record.
type OfferNormalizer struct {
	resolver *identity.Resolver
	payloads PayloadDecoder
}

func NewOfferNormalizer(resolver *identity.Resolver, payloads PayloadDecoder) *OfferNormalizer {
	return &OfferNormalizer{resolver: resolver, payloads: payloads}
}

// Build returns the vendor-local index key and the offer.
func (n *OfferNormalizer) Build(raw *mapx.Map) (string, *entity.Offer, error) {
	itemBlock, ok := raw.Child("item")
	if !ok {
		return "", nil, domain.NewError(errcodes.MalformedRecord, "offer has no item block")
	}

	descriptor, err := identity.ParseDescriptor(itemBlock)
	if err != nil {
		return "", nil, err
	}

	id, err := n.resolver.Resolve(descriptor)
	if err != nil {
		return "", nil, err
	}

	offer := &entity.Offer{Item: id.Item}
	key := id.Key

	override, matched, err := identity.OverrideFromDisplayName(descriptor.Meta)
	if err != nil {
		return "", nil, err
	}
	if matched {
		key = override.Key
		offer.OwnName = override.OwnName
	}

	amount, ok := raw.Int("amount")
	if !ok || amount == 0 {
		return "", nil, domain.NewError(errcodes.MalformedRecord, "offer has no usable amount")
	}

	rawPrice, _ := raw.Get("price")
	paymentItem, price, err := pricing.NormalizeSellPrice(rawPrice)
	if err != nil {
		return "", nil, err
	}

	offer.Amount = amount
	offer.ExchangeItem = paymentItem
	offer.Price = price
	offer.UnitPrice = price / float64(amount)

	if discountBlock, ok := raw.Child("discount"); ok {
		if percent, ok := discountBlock.Float("amount"); ok {
			offer.Discount = percent
		}
	}

	offer.Enchantments = enchantmentsFromMeta(descriptor.Meta)

	drawer, err := n.drawerFromMeta(descriptor.Meta)
	if err != nil {
		return "", nil, err
	}
	offer.Drawer = drawer

	return key, offer, nil
}

func enchantmentsFromMeta(meta *mapx.Map) []entity.Enchantment {
	enchants, ok := meta.Child("enchants")
	if !ok || enchants.Len() == 0 {
		return nil
	}

	out := make([]entity.Enchantment, 0, enchants.Len())
	for _, name := range enchants.Keys() {
		level, _ := enchants.Int(name)
		out = append(out, entity.Enchantment{Name: name, Level: level})
	}

	return out
}

// drawerFromMeta extracts the nested drawer contents. Only items flagged
// HIDE_ARMOR_TRIM carry the payload; a missing nested path is not an
// error, the field is simply omitted.
func (n *OfferNormalizer) drawerFromMeta(meta *mapx.Map) (map[string]any, error) {
	flags, ok := meta.Slice("ItemFlags")
	if !ok {
		return nil, nil
	}

	flagged := lo.SomeBy(flags, func(flag any) bool {
		name, _ := flag.(string)
		return name == hideTrimFlag
	})
	if !flagged {
		return nil, nil
	}

	encoded, ok := meta.String("internal")
	if !ok {
		return nil, nil
	}

	tree, err := n.payloads.Decode(encoded)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.MalformedRecord, "auxiliary payload does not decode")
	}

	drawer, ok := drawerContents(tree)
	if !ok {
		return nil, nil
	}

	return drawer, nil
}

func drawerContents(tree map[string]any) (map[string]any, bool) {
	blockEntity, ok := tree["BlockEntityTag"].(map[string]any)
	if !ok {
		return nil, false
	}

	items := asSlice(blockEntity["Items"])
	if len(items) == 0 {
		return nil, false
	}

	first, ok := items[0].(map[string]any)
	if !ok {
		return nil, false
	}

	tag, ok := first["tag"].(map[string]any)
	if !ok {
		return nil, false
	}

	raw, ok := tag[drawerNamespace].(map[string]any)
	if !ok {
		return nil, false
	}

	// the decoder memoizes trees, so clean up a copy
	drawer := maps.Clone(raw)
	delete(drawer, "maxCount")
	delete(drawer, "version")
	delete(drawer, "globalCount")

	if woodType, ok := drawer["wood_type"].(string); ok {
		drawer["wood_type"] = strings.TrimPrefix(woodType, drawerNamespace+":")
	}

	return drawer, true
}

func asSlice(value any) []any {
	switch typed := value.(type) {
	case []any:
		return typed
	case []map[string]any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = item
		}
		return out
	default:
		return nil
	}
}
