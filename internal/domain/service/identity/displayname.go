package identity

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cast"

	"github.com/CptGummiball/mc-dealer-yml2json-fork/internal/domain"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/pkg/errcodes"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/pkg/mapx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals

// Override is the identity produced from a rich-text display name. It
// supersedes the rule-chain identity for sell listings and stock entries,
// never for demands.
type Override struct {
	Key     string
	OwnName any
}

// OverrideFromDisplayName parses the serialized rich-text display name
// carried in item metadata. Priority: plain text of the first extra
// element, then the first extra element as-is, then the translate key.
func OverrideFromDisplayName(meta *mapx.Map) (Override, bool, error) {
	raw, ok := meta.String("display-name")
	if !ok {
		return Override{}, false, nil
	}

	var doc map[string]any
	if err := json.UnmarshalFromString(raw, &doc); err != nil {
		return Override{}, false, domain.WrapError(err, errcodes.MalformedRecord,
			"display name is not a rich-text document")
	}

	if extra, ok := doc["extra"].([]any); ok && len(extra) > 0 {
		if component, ok := extra[0].(map[string]any); ok {
			if text, ok := component["text"]; ok {
				return Override{Key: cast.ToString(text), OwnName: text}, true, nil
			}
		}

		return Override{Key: structuralKey(extra[0]), OwnName: extra[0]}, true, nil
	}

	if translate, ok := doc["translate"]; ok {
		return Override{Key: cast.ToString(translate), OwnName: translate}, true, nil
	}

	return Override{}, false, nil
}

// structuralKey turns a non-text rich-text component into a stable string
// key: strings verbatim, everything else via its compact JSON encoding.
func structuralKey(value any) string {
	if s, ok := value.(string); ok {
		return s
	}

	encoded, err := json.MarshalToString(value)
	if err != nil {
		return fmt.Sprint(value)
	}

	return encoded
}
