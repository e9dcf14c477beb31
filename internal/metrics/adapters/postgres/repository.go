package postgres

import (
	"context"
	"time"

	"github.com/FelitoAguila/dash-list-me/internal/metrics/core/domain"
	"github.com/FelitoAguila/dash-list-me/internal/metrics/core/ports"
	"github.com/FelitoAguila/dash-list-me/internal/metrics/core/window"
)

// MetricsRepository implements the metrics reader port against a
// Postgres mirror of the lists collection (created_at stored as epoch
// seconds, same as the document store).
type MetricsRepository struct {
	db DB
}

func NewMetricsRepository(db DB) *MetricsRepository {
	return &MetricsRepository{db: db}
}

var _ ports.MetricsReaderPort = (*MetricsRepository)(nil)

const dailyMetricsSQL = `
SELECT
    to_char(to_timestamp(created_at) AT TIME ZONE $3, 'YYYY-MM-DD') AS date,
    COUNT(*)::bigint AS total_lists,
    (COUNT(*) FILTER (WHERE status = 'error'))::bigint AS failed_lists,
    COUNT(DISTINCT user_id)::bigint AS total_users,
    (COUNT(DISTINCT user_id) FILTER (WHERE status = 'error'))::bigint AS failed_users,
    (COUNT(DISTINCT user_id) FILTER (WHERE status <> 'error'))::bigint AS successful_users
FROM lists
WHERE created_at >= $1 AND created_at <= $2
GROUP BY 1
ORDER BY 1`

func (r *MetricsRepository) QueryDaily(ctx context.Context, w window.Window) ([]domain.DailyRow, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	start, end := windowBounds(w)

	rows, err := r.db.QueryContext(ctx, dailyMetricsSQL, start, end, w.Loc.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.DailyRow, 0)
	for rows.Next() {
		var row domain.DailyRow
		if err := rows.Scan(
			&row.Date,
			&row.TotalLists,
			&row.FailedLists,
			&row.TotalUsers,
			&row.FailedUsers,
			&row.SuccessfulUsers,
		); err != nil {
			return nil, err
		}
		row.CreatedLists = row.TotalLists - row.FailedLists
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

const newUserMetricsSQL = `
WITH first_seen AS (
    SELECT user_id, MIN(created_at) AS first_seen
    FROM lists
    GROUP BY user_id
),
new_users AS (
    SELECT user_id,
           to_char(to_timestamp(first_seen) AT TIME ZONE $3, 'YYYY-MM-DD') AS cohort_day
    FROM first_seen
    WHERE first_seen >= $1 AND first_seen <= $2
),
first_day AS (
    SELECT n.user_id,
           n.cohort_day,
           COUNT(*)::bigint AS total_lists,
           (COUNT(*) FILTER (WHERE l.status = 'error'))::bigint AS failed_lists
    FROM new_users n
    JOIN lists l
      ON l.user_id = n.user_id
     AND to_char(to_timestamp(l.created_at) AT TIME ZONE $3, 'YYYY-MM-DD') = n.cohort_day
    GROUP BY n.user_id, n.cohort_day
)
SELECT cohort_day AS date,
       COUNT(*)::bigint AS total_users,
       SUM(total_lists)::bigint AS total_lists,
       SUM(failed_lists)::bigint AS failed_lists,
       (COUNT(*) FILTER (WHERE failed_lists > 0))::bigint AS failed_users,
       (COUNT(*) FILTER (WHERE failed_lists = 0))::bigint AS successful_users
FROM first_day
GROUP BY cohort_day
ORDER BY cohort_day`

func (r *MetricsRepository) QueryNewUsers(ctx context.Context, w window.Window) ([]domain.CohortRow, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	start, end := windowBounds(w)

	rows, err := r.db.QueryContext(ctx, newUserMetricsSQL, start, end, w.Loc.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.CohortRow, 0)
	for rows.Next() {
		var row domain.CohortRow
		if err := rows.Scan(
			&row.Date,
			&row.TotalUsers,
			&row.TotalLists,
			&row.FailedLists,
			&row.FailedUsers,
			&row.SuccessfulUsers,
		); err != nil {
			return nil, err
		}
		row.CreatedLists = row.TotalLists - row.FailedLists
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// windowBounds mirrors the document adapter: created_at is raw epoch
// seconds, so the end bound is pushed one day out to keep the final
// calendar day inclusive.
func windowBounds(w window.Window) (float64, float64) {
	start := float64(w.Start.UnixMicro()) / 1e6
	end := float64(w.End.Add(24*time.Hour).UnixMicro()) / 1e6
	return start, end
}
