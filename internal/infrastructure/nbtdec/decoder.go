// Package nbtdec decodes the base64 NBT blobs that item metadata carries.
package nbtdec

import (
	"bytes"
	"compress/gzip"
	"encoding/base64"
	"io"
	"time"

	"github.com/Tnze/go-mc/nbt"
	"github.com/patrickmn/go-cache"

	"github.com/CptGummiball/mc-dealer-yml2json-fork/internal/domain"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/pkg/errcodes"
)

const memoTTL = 15 * time.Minute

// Decoder memoizes decoded payloads by their base64 text. The same blob
// shows up on every listing of a given container item, so repeat decodes
// dominate a run.
type Decoder struct {
	memo *cache.Cache
}

func NewDecoder() *Decoder {
	return &Decoder{memo: cache.New(memoTTL, memoTTL)}
}

func (d *Decoder) Decode(encoded string) (map[string]any, error) {
	if cached, ok := d.memo.Get(encoded); ok {
		return cached.(map[string]any), nil
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.MalformedRecord, "item payload is not base64")
	}

	if isGzip(raw) {
		raw, err = gunzip(raw)
		if err != nil {
			return nil, domain.WrapError(err, errcodes.MalformedRecord, "item payload gzip decode failed")
		}
	}

	var root map[string]any
	if err := nbt.Unmarshal(raw, &root); err != nil {
		return nil, domain.WrapError(err, errcodes.MalformedRecord, "item payload nbt decode failed")
	}

	d.memo.SetDefault(encoded, root)

	return root, nil
}

func isGzip(raw []byte) bool {
	return len(raw) > 1 && raw[0] == 0x1f && raw[1] == 0x8b
}

func gunzip(raw []byte) ([]byte, error) {
	reader, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	return io.ReadAll(reader)
}
