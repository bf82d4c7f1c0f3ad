// Package source enumerates and parses the per-shop YAML files.
package source

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/CptGummiball/mc-dealer-yml2json-fork/internal/domain"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/internal/domain/service/assembler"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/pkg/contextx"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/pkg/errcodes"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals

const shopFileExt = ".yml"

// uuidLength filters junk out of the hidden-shop list.
const uuidLength = 36

type Loader struct {
	dataDir     string
	hiddenFile  string
	maxParallel int
}

func NewLoader(dataDir, hiddenFile string, maxParallel int) *Loader {
	if maxParallel < 1 {
		maxParallel = 1
	}

	return &Loader{
		dataDir:     dataDir,
		hiddenFile:  hiddenFile,
		maxParallel: maxParallel,
	}
}

// Snapshot is the fully materialized input of one export run.
type Snapshot struct {
	Records       []assembler.VendorRecord
	LatestModTime time.Time // zero when no shop file was found
}

// Load reads every shop file, skipping excluded UUIDs. Files are parsed
// in parallel but the result is sorted by UUID, so a run is deterministic
// regardless of readdir or goroutine order.
func (l *Loader) Load(ctx context.Context) (*Snapshot, error) {
	hidden := l.loadHiddenShops(ctx)

	entries, err := os.ReadDir(l.dataDir)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.SourceUnavailable, "cannot read data directory")
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), shopFileExt) {
			continue
		}
		uuid := strings.TrimSuffix(entry.Name(), shopFileExt)
		if lo.Contains(hidden, uuid) {
			continue
		}
		names = append(names, entry.Name())
	}

	records := make([]assembler.VendorRecord, len(names))
	modTimes := make([]time.Time, len(names))

	group, _ := errgroup.WithContext(ctx)
	group.SetLimit(l.maxParallel)

	for i, name := range names {
		i, name := i, name
		group.Go(func() error {
			record, modTime, err := l.loadFile(name)
			if err != nil {
				return err
			}

			records[i] = record
			modTimes[i] = modTime

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	slices.SortFunc(records, func(a, b assembler.VendorRecord) int {
		return strings.Compare(a.UUID, b.UUID)
	})

	var latest time.Time
	for _, modTime := range modTimes {
		if modTime.After(latest) {
			latest = modTime
		}
	}

	return &Snapshot{Records: records, LatestModTime: latest}, nil
}

func (l *Loader) loadFile(name string) (assembler.VendorRecord, time.Time, error) {
	uuid := strings.TrimSuffix(name, shopFileExt)
	path := filepath.Join(l.dataDir, name)

	info, err := os.Stat(path)
	if err != nil {
		return assembler.VendorRecord{}, time.Time{}, domain.WrapError(err, errcodes.SourceUnavailable, "cannot stat shop file")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return assembler.VendorRecord{}, time.Time{}, domain.WrapError(err, errcodes.SourceUnavailable, "cannot read shop file")
	}

	doc, err := ParseDocument(data)
	if err != nil {
		return assembler.VendorRecord{}, time.Time{}, fmt.Errorf("shop %s: %w", uuid, err)
	}

	return assembler.VendorRecord{UUID: uuid, Data: doc}, info.ModTime(), nil
}

// loadHiddenShops reads the exclusion list. A missing or unparseable file
// means no exclusions; junk entries are dropped silently.
func (l *Loader) loadHiddenShops(ctx context.Context) []string {
	data, err := os.ReadFile(l.hiddenFile)
	if err != nil {
		return nil
	}

	var raw []any
	if err := json.Unmarshal(data, &raw); err != nil {
		logger(ctx).Warn("hidden shop list unreadable", logx.Error(err))
		return nil
	}

	return lo.FilterMap(raw, func(item any, _ int) (string, bool) {
		uuid, ok := item.(string)
		return uuid, ok && len(uuid) == uuidLength
	})
}

func logger(ctx context.Context) *slog.Logger {
	if log, err := contextx.LoggerFromContext(ctx); err == nil {
		return log
	}

	return slog.Default()
}
