package assembler

import (
	"context"
	"log/slog"

	"github.com/CptGummiball/mc-dealer-yml2json-fork/pkg/contextx"
)

func logger(ctx context.Context) *slog.Logger {
	if log, err := contextx.LoggerFromContext(ctx); err == nil {
		return log
	}

	return slog.Default()
}
