// Package identity resolves raw item descriptors into stable identity
// keys. Identical item types can still be distinct tradeable goods
// (potions, enchanted books, renamed items), so resolution runs an ordered
// rule chain and the first matching rule wins.
package identity

import (
	"strings"

	"github.com/CptGummiball/mc-dealer-yml2json-fork/internal/domain"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/pkg/errcodes"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/pkg/mapx"
)

const (
	potionType        = "POTION"
	enchantedBookType = "ENCHANTED_BOOK"
	namespacePrefix   = "minecraft:"
)

// Descriptor is the parsed view over a raw item mapping.
type Descriptor struct {
	Type string
	Meta *mapx.Map // nil when the item carries no metadata
}

func ParseDescriptor(raw *mapx.Map) (Descriptor, error) {
	itemType, ok := raw.String("type")
	if !ok {
		return Descriptor{}, domain.NewError(errcodes.MalformedRecord, "item descriptor has no type")
	}

	meta, _ := raw.Child("meta")

	return Descriptor{Type: itemType, Meta: meta}, nil
}

// Identity groups listings of the same conceptual good. Key keeps the raw
// namespace prefix, Item is the canonical type with the prefix trimmed.
type Identity struct {
	Key  string
	Item string
}

type rule func(d Descriptor) (Identity, bool, error)

type Resolver struct {
	rules []rule
}

func NewResolver() *Resolver {
	return &Resolver{
		rules: []rule{
			potionSubType,
			potionDisplayName,
			enchantedBook,
		},
	}
}

// Resolve runs the rule chain and falls back to the raw type code.
func (r *Resolver) Resolve(d Descriptor) (Identity, error) {
	for _, apply := range r.rules {
		id, ok, err := apply(d)
		if err != nil {
			return Identity{}, err
		}
		if ok {
			id.Item = CanonicalType(id.Item)
			return id, nil
		}
	}

	return Identity{Key: d.Type, Item: CanonicalType(d.Type)}, nil
}

func potionSubType(d Descriptor) (Identity, bool, error) {
	if d.Type != potionType || !d.Meta.Has("potion-type") {
		return Identity{}, false, nil
	}

	subType, ok := d.Meta.String("potion-type")
	if !ok {
		return Identity{}, false, domain.NewError(errcodes.MalformedRecord, "potion sub-type is not a scalar")
	}

	return Identity{Key: subType, Item: subType}, true, nil
}

func potionDisplayName(d Descriptor) (Identity, bool, error) {
	if d.Type != potionType {
		return Identity{}, false, nil
	}

	name, ok := d.Meta.String("display-name")
	if !ok {
		return Identity{}, false, domain.NewError(errcodes.MalformedRecord,
			"potion without sub-type has no display name")
	}

	return Identity{Key: name, Item: d.Type}, true, nil
}

func enchantedBook(d Descriptor) (Identity, bool, error) {
	if d.Type != enchantedBookType {
		return Identity{}, false, nil
	}

	stored, ok := d.Meta.Child("stored-enchants")
	if !ok || stored.Len() == 0 {
		return Identity{}, false, domain.NewError(errcodes.MalformedRecord,
			"enchanted book has no stored enchantments")
	}

	// When several enchantments are stored only the first one (in source
	// document order) names the book. Known ambiguity inherited from the
	// shop plugin format.
	name := enchantedBookType + "_" + stored.Keys()[0]

	return Identity{Key: name, Item: name}, true, nil
}

// CanonicalType trims a leading namespace prefix once.
func CanonicalType(rawType string) string {
	return strings.TrimPrefix(rawType, namespacePrefix)
}
