package export

import (
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"

	"github.com/CptGummiball/mc-dealer-yml2json-fork/internal/domain"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/internal/domain/entity"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/pkg/errcodes"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals

type Writer struct {
	path   string
	pretty bool
}

func NewWriter(path string, pretty bool) *Writer {
	return &Writer{path: path, pretty: pretty}
}

func (w *Writer) Write(catalog *entity.Catalog) error {
	var (
		data []byte
		err  error
	)
	if w.pretty {
		data, err = json.MarshalIndent(catalog, "", "  ")
	} else {
		data, err = json.Marshal(catalog)
	}
	if err != nil {
		return domain.WrapError(err, errcodes.ExportFailed, "cannot marshal catalog")
	}

	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return domain.WrapError(err, errcodes.ExportFailed, "cannot create output directory")
		}
	}

	if err := os.WriteFile(w.path, data, 0o644); err != nil {
		return domain.WrapError(err, errcodes.ExportFailed, "cannot write output file")
	}

	return nil
}
