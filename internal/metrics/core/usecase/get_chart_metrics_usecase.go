package usecase

import (
	"context"
	"errors"

	"github.com/FelitoAguila/dash-list-me/internal/cache"
	"github.com/FelitoAguila/dash-list-me/internal/metrics/core/domain"
	"github.com/FelitoAguila/dash-list-me/internal/metrics/core/ports"
	"github.com/FelitoAguila/dash-list-me/internal/metrics/core/window"
)

var ErrInvalidView = errors.New("invalid view, expected daily or monthly")

const (
	ViewDaily   = "daily"
	ViewMonthly = "monthly"
)

type GetChartMetricsInput struct {
	StartDate string // "YYYY-MM-DD"
	EndDate   string // "YYYY-MM-DD"
	View      string // "daily" / "monthly"
}

// ChartMetrics carries both row-sets every dashboard tab needs for one
// (view, window) selection. Fetching them together means one cache
// entry serves all chart callbacks fired by a single filter change.
type ChartMetrics struct {
	Daily    []domain.DailyRow
	NewUsers []domain.CohortRow
}

type GetChartMetricsUseCase struct {
	reader     ports.MetricsReaderPort
	normalizer *window.Normalizer
	store      *cache.Store
}

func NewGetChartMetricsUseCase(reader ports.MetricsReaderPort, n *window.Normalizer, store *cache.Store) *GetChartMetricsUseCase {
	return &GetChartMetricsUseCase{reader: reader, normalizer: n, store: store}
}

// Execute validates the input, normalizes the window and returns the
// daily and new-user row-sets, rolled to months when View is monthly.
// Results are memoized per (view, start, end).
func (uc *GetChartMetricsUseCase) Execute(ctx context.Context, in GetChartMetricsInput) (ChartMetrics, error) {
	if in.View != ViewDaily && in.View != ViewMonthly {
		return ChartMetrics{}, ErrInvalidView
	}

	w, err := uc.normalizer.Normalize(in.StartDate, in.EndDate)
	if err != nil {
		return ChartMetrics{}, err
	}

	key := cache.Key([]string{"charts", in.View, in.StartDate, in.EndDate}, nil)

	return cache.GetOrCompute(uc.store, key, func() (ChartMetrics, error) {
		daily, err := uc.reader.QueryDaily(ctx, w)
		if err != nil {
			return ChartMetrics{}, err
		}
		newUsers, err := uc.reader.QueryNewUsers(ctx, w)
		if err != nil {
			return ChartMetrics{}, err
		}

		if in.View == ViewMonthly {
			daily = domain.RollToMonthly(daily)
			newUsers = domain.RollToMonthly(newUsers)
		}

		return ChartMetrics{Daily: daily, NewUsers: newUsers}, nil
	})
}
