package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/FelitoAguila/dash-list-me/internal/metrics/core/domain"
	"github.com/FelitoAguila/dash-list-me/internal/metrics/core/ports"
	"github.com/FelitoAguila/dash-list-me/internal/metrics/core/window"
)

// MetricsRepository implements the metrics reader port against the
// lists collection. Both reads are single aggregation pipelines;
// created_at is stored as raw epoch seconds, so day bucketing multiplies
// into milliseconds and formats in the window's timezone.
type MetricsRepository struct {
	coll Collection
}

func NewMetricsRepository(coll Collection) *MetricsRepository {
	return &MetricsRepository{coll: coll}
}

var _ ports.MetricsReaderPort = (*MetricsRepository)(nil)

func (r *MetricsRepository) QueryDaily(ctx context.Context, w window.Window) ([]domain.DailyRow, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	start, end := windowBounds(w)
	tz := w.Loc.String()

	pipeline := []bson.M{
		{"$match": bson.M{
			"created_at": bson.M{"$gte": start, "$lte": end},
		}},
		{"$group": bson.M{
			"_id":         dayOf("$created_at", tz),
			"total_lists": bson.M{"$sum": 1},
			"failed_lists": bson.M{"$sum": bson.M{
				"$cond": []any{bson.M{"$eq": []any{"$status", "error"}}, 1, 0},
			}},
			// Distinct users per status partition. The conditional
			// $addToSet collects nil for non-matching events; the nils
			// are filtered out at projection time.
			"all_users": bson.M{"$addToSet": "$user_id"},
			"failed_users_set": bson.M{"$addToSet": bson.M{
				"$cond": []any{bson.M{"$eq": []any{"$status", "error"}}, "$user_id", nil},
			}},
			"successful_users_set": bson.M{"$addToSet": bson.M{
				"$cond": []any{bson.M{"$ne": []any{"$status", "error"}}, "$user_id", nil},
			}},
		}},
		{"$project": bson.M{
			"date":         "$_id",
			"total_lists":  1,
			"failed_lists": 1,
			"created_lists": bson.M{
				"$subtract": []any{"$total_lists", "$failed_lists"},
			},
			"total_users":      bson.M{"$size": "$all_users"},
			"failed_users":     sizeWithoutNil("$failed_users_set"),
			"successful_users": sizeWithoutNil("$successful_users_set"),
			"_id":              0,
		}},
		{"$sort": bson.M{"date": 1}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	rows := make([]domain.DailyRow, 0)
	for cur.Next(ctx) {
		var doc struct {
			Date            string `bson:"date"`
			TotalLists      int64  `bson:"total_lists"`
			FailedLists     int64  `bson:"failed_lists"`
			CreatedLists    int64  `bson:"created_lists"`
			TotalUsers      int64  `bson:"total_users"`
			FailedUsers     int64  `bson:"failed_users"`
			SuccessfulUsers int64  `bson:"successful_users"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		rows = append(rows, domain.DailyRow{
			Date:            doc.Date,
			TotalLists:      doc.TotalLists,
			FailedLists:     doc.FailedLists,
			CreatedLists:    doc.CreatedLists,
			TotalUsers:      doc.TotalUsers,
			FailedUsers:     doc.FailedUsers,
			SuccessfulUsers: doc.SuccessfulUsers,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *MetricsRepository) QueryNewUsers(ctx context.Context, w window.Window) ([]domain.CohortRow, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	start, end := windowBounds(w)
	tz := w.Loc.String()

	pipeline := []bson.M{
		// First-ever event per user over the whole collection. The
		// window cannot be applied before this stage: "new user" is a
		// property of lifetime history, not of the queried range.
		{"$group": bson.M{
			"_id":        "$user_id",
			"first_seen": bson.M{"$min": "$created_at"},
		}},
		{"$project": bson.M{
			"user_id":         "$_id",
			"first_seen":      1,
			"first_seen_date": dayOf("$first_seen", tz),
			"_id":             0,
		}},
		{"$match": bson.M{
			"first_seen": bson.M{"$gte": start, "$lte": end},
		}},
		// Re-fetch each kept user's events on their first calendar day.
		{"$lookup": bson.M{
			"from": r.coll.Name(),
			"let":  bson.M{"user_id": "$user_id", "first_seen": "$first_seen"},
			"pipeline": []bson.M{
				{"$match": bson.M{"$expr": bson.M{"$and": []any{
					bson.M{"$eq": []any{"$user_id", "$$user_id"}},
					bson.M{"$eq": []any{
						dayOf("$created_at", tz),
						dayOf("$$first_seen", tz),
					}},
				}}}},
			},
			"as": "first_day_lists",
		}},
		{"$project": bson.M{
			"first_seen_date": 1,
			"has_failed": bson.M{"$anyElementTrue": bson.M{"$map": bson.M{
				"input": "$first_day_lists",
				"as":    "l",
				"in":    bson.M{"$eq": []any{"$$l.status", "error"}},
			}}},
			"lists": "$first_day_lists",
		}},
		{"$group": bson.M{
			"_id":         "$first_seen_date",
			"total_users": bson.M{"$sum": 1},
			"total_lists": bson.M{"$sum": bson.M{"$size": "$lists"}},
			"failed_lists": bson.M{"$sum": bson.M{"$size": bson.M{"$filter": bson.M{
				"input": "$lists",
				"cond":  bson.M{"$eq": []any{"$$this.status", "error"}},
			}}}},
			"failed_users":     bson.M{"$sum": bson.M{"$cond": []any{"$has_failed", 1, 0}}},
			"successful_users": bson.M{"$sum": bson.M{"$cond": []any{"$has_failed", 0, 1}}},
		}},
		{"$project": bson.M{
			"date":         "$_id",
			"total_users":  1,
			"total_lists":  1,
			"failed_lists": 1,
			"created_lists": bson.M{
				"$subtract": []any{"$total_lists", "$failed_lists"},
			},
			"failed_users":     1,
			"successful_users": 1,
			"_id":              0,
		}},
		{"$sort": bson.M{"date": 1}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	rows := make([]domain.CohortRow, 0)
	for cur.Next(ctx) {
		var doc struct {
			Date            string `bson:"date"`
			TotalUsers      int64  `bson:"total_users"`
			TotalLists      int64  `bson:"total_lists"`
			FailedLists     int64  `bson:"failed_lists"`
			CreatedLists    int64  `bson:"created_lists"`
			FailedUsers     int64  `bson:"failed_users"`
			SuccessfulUsers int64  `bson:"successful_users"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		rows = append(rows, domain.CohortRow{
			Date:            doc.Date,
			TotalUsers:      doc.TotalUsers,
			TotalLists:      doc.TotalLists,
			FailedLists:     doc.FailedLists,
			CreatedLists:    doc.CreatedLists,
			FailedUsers:     doc.FailedUsers,
			SuccessfulUsers: doc.SuccessfulUsers,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}

	return rows, nil
}

// windowBounds converts the window to the epoch-seconds bounds used in
// $match. created_at is a raw number, so the end bound is extended by
// one day to keep the final calendar day inclusive regardless of the
// sub-day precision of w.End.
func windowBounds(w window.Window) (float64, float64) {
	start := float64(w.Start.UnixMicro()) / 1e6
	end := float64(w.End.Add(24*time.Hour).UnixMicro()) / 1e6
	return start, end
}

// dayOf formats an epoch-seconds field as a local "YYYY-MM-DD" string.
func dayOf(field string, tz string) bson.M {
	return bson.M{"$dateToString": bson.M{
		"format":   "%Y-%m-%d",
		"date":     bson.M{"$toDate": bson.M{"$multiply": []any{field, 1000}}},
		"timezone": tz,
	}}
}

func sizeWithoutNil(field string) bson.M {
	return bson.M{"$size": bson.M{"$filter": bson.M{
		"input": field,
		"cond":  bson.M{"$ne": []any{"$$this", nil}},
	}}}
}
