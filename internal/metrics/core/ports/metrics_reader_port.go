package ports

import (
	"context"

	"github.com/FelitoAguila/dash-list-me/internal/metrics/core/domain"
	"github.com/FelitoAguila/dash-list-me/internal/metrics/core/window"
)

// MetricsReaderPort is the aggregation capability the core needs from
// the event store: a filtered, grouped, projected, sorted read of the
// lists collection. Adapters push both aggregations down into the
// store (Mongo pipeline or SQL); the core never sees raw events.
type MetricsReaderPort interface {
	// QueryDaily returns one row per calendar day inside the window,
	// sorted ascending. Empty window -> empty slice, never nil.
	QueryDaily(ctx context.Context, w window.Window) ([]domain.DailyRow, error)

	// QueryNewUsers returns first-day metrics for users whose
	// first-ever event falls inside the window, grouped by cohort
	// day, sorted ascending. First-seen is a global minimum over the
	// whole collection, not the window.
	QueryNewUsers(ctx context.Context, w window.Window) ([]domain.CohortRow, error)
}
