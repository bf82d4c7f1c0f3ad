package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/rs/xid"

	"github.com/CptGummiball/mc-dealer-yml2json-fork/internal/config"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/internal/domain/entity"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/internal/domain/service/assembler"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/internal/infrastructure/export"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/internal/infrastructure/nbtdec"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/internal/infrastructure/source"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/pkg/contextx"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/pkg/logx"
)

const appName = "mc-dealer-yml2json"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", logx.Error(err))
		os.Exit(1)
	}

	traceID := contextx.TraceID(xid.New().String())

	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: cfg.Log.Level,
	})).With(
		slog.String(logx.FieldAppName, appName),
		logx.Stringer(logx.FieldTraceID, traceID),
	)
	slog.SetDefault(log)

	ctx = contextx.WithTraceID(ctx, traceID)
	ctx = contextx.WithLogger(ctx, log)

	if err := run(ctx, log, cfg); err != nil {
		log.Error("export failed", logx.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger, cfg config.Config) error {
	started := time.Now()

	loader := source.NewLoader(cfg.Source.DataDir, cfg.Source.HiddenShopsFile, cfg.Source.MaxParallelReads)

	snapshot, err := loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("load shops: %w", err)
	}
	log.Info("shop files loaded",
		slog.String(logx.FieldSourceDir, cfg.Source.DataDir),
		slog.Int(logx.FieldShopCount, len(snapshot.Records)),
	)

	vendors, err := assembler.New(nbtdec.NewDecoder()).AssembleAll(ctx, snapshot.Records)
	if err != nil {
		return fmt.Errorf("assemble shops: %w", err)
	}

	catalog := &entity.Catalog{
		Meta:  export.BuildMeta(snapshot.LatestModTime),
		Shops: vendors,
	}

	if err := export.NewWriter(cfg.Export.OutputFile, cfg.Export.Pretty).Write(catalog); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	log.Info("export finished",
		slog.String(logx.FieldOutputFile, cfg.Export.OutputFile),
		slog.Int64(logx.FieldDurationMs, time.Since(started).Milliseconds()),
	)

	return nil
}
