package source_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/CptGummiball/mc-dealer-yml2json-fork/internal/domain"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/internal/infrastructure/source"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/pkg/errcodes"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/pkg/mapx"
)

func TestParseDocumentKeepsKeyOrder(t *testing.T) {
	rq := require.New(t)

	doc, err := source.ParseDocument([]byte(`
shopItems:
  "3": {mode: SELL}
  "1": {mode: BUY}
  "2": {mode: SELL}
`))
	rq.NoError(err)

	items, ok := doc.Child("shopItems")
	rq.True(ok)
	rq.Equal([]string{"3", "1", "2"}, items.Keys())
}

func TestParseDocumentScalars(t *testing.T) {
	rq := require.New(t)

	doc, err := source.ParseDocument([]byte(`
name: "§6Shop"
price: 2.5
amount: 64
empty:
enabled: true
stock:
  - type: DIAMOND
`))
	rq.NoError(err)

	name, ok := doc.String("name")
	rq.True(ok)
	rq.Equal("§6Shop", name)

	price, ok := doc.Float("price")
	rq.True(ok)
	rq.InDelta(2.5, price, 0)

	amount, ok := doc.Int("amount")
	rq.True(ok)
	rq.Equal(64, amount)

	empty, ok := doc.Get("empty")
	rq.True(ok)
	rq.Nil(empty)

	enabled, ok := doc.Get("enabled")
	rq.True(ok)
	rq.Equal(true, enabled)

	stock, ok := doc.Slice("stock")
	rq.True(ok)
	rq.Len(stock, 1)

	entry, ok := stock[0].(*mapx.Map)
	rq.True(ok)

	itemType, ok := entry.String("type")
	rq.True(ok)
	rq.Equal("DIAMOND", itemType)
}

func TestParseDocumentRejectsNonMappingRoot(t *testing.T) {
	rq := require.New(t)

	for _, input := range []string{"- a\n- b\n", "just a scalar\n"} {
		_, err := source.ParseDocument([]byte(input))
		rq.Error(err)

		code, ok := domain.GetCode(err)
		rq.True(ok)
		rq.Equal(errcodes.MalformedRecord, code)
	}
}

func TestParseDocumentRejectsBrokenYAML(t *testing.T) {
	rq := require.New(t)

	_, err := source.ParseDocument([]byte("key: [unclosed\n"))
	rq.Error(err)

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.MalformedRecord, code)
}
