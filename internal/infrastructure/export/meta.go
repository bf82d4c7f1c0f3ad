// Package export renders the catalog to its JSON artifact.
package export

import (
	"time"

	"github.com/samber/lo"

	"github.com/CptGummiball/mc-dealer-yml2json-fork/internal/domain/entity"
)

const modDateLayout = "2006-01-02 15:04:05"

// BuildMeta stamps the newest source-file modification time into the
// catalog header. A zero time means no source file existed and both
// fields stay null.
func BuildMeta(latest time.Time) entity.Meta {
	if latest.IsZero() {
		return entity.Meta{}
	}

	return entity.Meta{
		LatestFileModDate:          lo.ToPtr(latest.Unix()),
		LatestFileModDateFormatted: lo.ToPtr(latest.Format(modDateLayout)),
	}
}
