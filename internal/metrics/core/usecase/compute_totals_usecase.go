package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/FelitoAguila/dash-list-me/internal/metrics/core/domain"
	"github.com/FelitoAguila/dash-list-me/internal/metrics/core/ports"
	"github.com/FelitoAguila/dash-list-me/internal/metrics/core/window"
)

// totalsStartDate is the fixed lower bound of the all-time snapshot.
const totalsStartDate = "2023-01-01"

// ComputeTotalsUseCase builds the fixed header counters over
// [2023-01-01, now]. It is meant to run exactly once, from main,
// before the server starts accepting requests; the snapshot is then
// immutable for the process lifetime.
type ComputeTotalsUseCase struct {
	reader     ports.MetricsReaderPort
	normalizer *window.Normalizer
	now        func() time.Time
}

func NewComputeTotalsUseCase(reader ports.MetricsReaderPort, n *window.Normalizer) *ComputeTotalsUseCase {
	return &ComputeTotalsUseCase{reader: reader, normalizer: n, now: time.Now}
}

func (uc *ComputeTotalsUseCase) Execute(ctx context.Context) (domain.TotalMetrics, error) {
	endDate := uc.now().Format("2006-01-02")

	w, err := uc.normalizer.Normalize(totalsStartDate, endDate)
	if err != nil {
		return domain.TotalMetrics{}, err
	}

	daily, err := uc.reader.QueryDaily(ctx, w)
	if err != nil {
		return domain.TotalMetrics{}, err
	}
	newUsers, err := uc.reader.QueryNewUsers(ctx, w)
	if err != nil {
		return domain.TotalMetrics{}, err
	}

	var attempted, created, failed int64
	for _, r := range daily {
		attempted += r.TotalLists
		created += r.CreatedLists
		failed += r.FailedLists
	}

	var users, successful, failedUsers int64
	for _, r := range newUsers {
		users += r.TotalUsers
		successful += r.SuccessfulUsers
		failedUsers += r.FailedUsers
	}

	return domain.TotalMetrics{
		TotalListsAttempted:  FormatCount(attempted),
		TotalListsCreated:    FormatCount(created),
		TotalFailedLists:     FormatCount(failed),
		TotalUsers:           FormatCount(users),
		TotalSuccessfulUsers: FormatCount(successful),
		TotalFailedUsers:     FormatCount(failedUsers),
	}, nil
}

// FormatCount renders a counter for display: compact above 10M
// ("12.3M", "1.2B"), full with dot thousands separators below
// ("1.234.567").
func FormatCount(n int64) string {
	switch {
	case n >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", float64(n)/1_000_000_000)
	case n >= 10_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	default:
		return groupThousands(n)
	}
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}

	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, c)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}
