package source

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/CptGummiball/mc-dealer-yml2json-fork/internal/domain"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/pkg/errcodes"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/pkg/mapx"
)

// ParseDocument decodes one shop file into an order-preserving mapping.
// Going through yaml.Node keeps document key order, which the identity
// rules depend on (first stored enchantment, listing processing order).
func ParseDocument(data []byte) (*mapx.Map, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, domain.WrapError(err, errcodes.MalformedRecord, "yaml parse failed")
	}

	decoded, err := decodeNode(&root)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.MalformedRecord, "yaml decode failed")
	}

	doc, ok := decoded.(*mapx.Map)
	if !ok {
		return nil, domain.NewError(errcodes.MalformedRecord, "document root is not a mapping")
	}

	return doc, nil
}

func decodeNode(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return decodeNode(node.Content[0])

	case yaml.MappingNode:
		doc := mapx.New()
		for i := 0; i+1 < len(node.Content); i += 2 {
			var key string
			if err := node.Content[i].Decode(&key); err != nil {
				return nil, fmt.Errorf("mapping key at line %d: %w", node.Content[i].Line, err)
			}

			value, err := decodeNode(node.Content[i+1])
			if err != nil {
				return nil, err
			}

			doc.Set(key, value)
		}
		return doc, nil

	case yaml.SequenceNode:
		items := make([]any, 0, len(node.Content))
		for _, itemNode := range node.Content {
			item, err := decodeNode(itemNode)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return items, nil

	case yaml.AliasNode:
		return decodeNode(node.Alias)

	case yaml.ScalarNode:
		var value any
		if err := node.Decode(&value); err != nil {
			return nil, fmt.Errorf("scalar at line %d: %w", node.Line, err)
		}
		return value, nil

	default:
		return nil, fmt.Errorf("unsupported yaml node kind %d at line %d", node.Kind, node.Line)
	}
}
