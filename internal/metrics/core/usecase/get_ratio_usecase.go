package usecase

import (
	"context"
	"sort"

	"github.com/FelitoAguila/dash-list-me/internal/cache"
	"github.com/FelitoAguila/dash-list-me/internal/metrics/core/domain"
	"github.com/FelitoAguila/dash-list-me/internal/metrics/core/ports"
	"github.com/FelitoAguila/dash-list-me/internal/metrics/core/window"
)

type GetRatioInput struct {
	StartDate string
	EndDate   string
	Countries []string // empty = no filtering
}

// GetRatioUseCase derives the monthly DAU/MAU ratio from daily rows.
//
// MAU here is the sum of the daily distinct-user counts, not a true
// distinct count over the month, so a user active on several days is
// counted once per day. That inflates the denominator and understates
// the ratio; it matches the dashboard this replaces and stays until a
// distinct-count read is added to the port.
type GetRatioUseCase struct {
	reader     ports.MetricsReaderPort
	normalizer *window.Normalizer
	store      *cache.Store
	country    string // label tagged onto every row; single-country data today
}

func NewGetRatioUseCase(reader ports.MetricsReaderPort, n *window.Normalizer, store *cache.Store, country string) *GetRatioUseCase {
	return &GetRatioUseCase{reader: reader, normalizer: n, store: store, country: country}
}

// Execute returns one row per (month, country) in the window, sorted
// ascending by month. Months whose summed user count is zero are
// excluded rather than emitting a divide-by-zero sentinel. An empty
// result is not an error; the HTTP layer reports it as no-data.
func (uc *GetRatioUseCase) Execute(ctx context.Context, in GetRatioInput) ([]domain.RatioRow, error) {
	w, err := uc.normalizer.Normalize(in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}

	key := cache.Key([]string{"ratio", in.StartDate, in.EndDate}, in.Countries)

	return cache.GetOrCompute(uc.store, key, func() ([]domain.RatioRow, error) {
		daily, err := uc.reader.QueryDaily(ctx, w)
		if err != nil {
			return nil, err
		}
		return uc.computeRatio(daily, in.Countries), nil
	})
}

func (uc *GetRatioUseCase) computeRatio(daily []domain.DailyRow, countries []string) []domain.RatioRow {
	if len(countries) > 0 && !containsCountry(countries, uc.country) {
		return []domain.RatioRow{}
	}

	type acc struct {
		users int64
		days  int64
	}
	months := make(map[string]*acc)
	for _, r := range daily {
		m := r.Date
		if len(m) > 7 {
			m = m[:7]
		}
		a, ok := months[m]
		if !ok {
			a = &acc{}
			months[m] = a
		}
		a.users += r.TotalUsers
		a.days++
	}

	rows := make([]domain.RatioRow, 0, len(months))
	for m, a := range months {
		if a.users == 0 {
			continue
		}
		avg := float64(a.users) / float64(a.days)
		rows = append(rows, domain.RatioRow{
			YearMonth:         m,
			Country:           uc.country,
			AvgDailyUsers:     avg,
			MonthlyTotalUsers: a.users,
			Ratio:             avg / float64(a.users),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].YearMonth < rows[j].YearMonth })
	return rows
}

func containsCountry(countries []string, c string) bool {
	for _, v := range countries {
		if v == c {
			return true
		}
	}
	return false
}
