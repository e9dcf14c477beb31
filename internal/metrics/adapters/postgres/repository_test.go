package postgres

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/FelitoAguila/dash-list-me/internal/metrics/core/window"
)

// fakeRowScanner implements RowScanner for tests.
type fakeRowScanner struct {
	rows [][]any
	i    int
	err  error
}

func (f *fakeRowScanner) Next() bool {
	return f.i < len(f.rows)
}

func (f *fakeRowScanner) Scan(dest ...any) error {
	if f.i >= len(f.rows) {
		return errors.New("no more rows")
	}
	row := f.rows[f.i]
	if len(dest) != len(row) {
		return errors.New("dest length mismatch")
	}
	for i := range dest {
		switch d := dest[i].(type) {
		case *int64:
			v, ok := row[i].(int64)
			if !ok {
				return errors.New("type assertion to int64 failed")
			}
			*d = v
		case *string:
			v, ok := row[i].(string)
			if !ok {
				return errors.New("type assertion to string failed")
			}
			*d = v
		default:
			return errors.New("unsupported dest type")
		}
	}
	f.i++
	return nil
}

func (f *fakeRowScanner) Err() error { return f.err }

func (f *fakeRowScanner) Close() error { return nil }

// fakeDB implements DB.
type fakeDB struct {
	QueryFn   func(ctx context.Context, query string, args ...any) (RowScanner, error)
	lastQuery string
	lastArgs  []any
	called    bool
}

func (f *fakeDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	f.called = true
	f.lastQuery = query
	f.lastArgs = args
	if f.QueryFn != nil {
		return f.QueryFn(ctx, query, args...)
	}
	return &fakeRowScanner{}, nil
}

func testWindow(t *testing.T) window.Window {
	t.Helper()
	loc, err := time.LoadLocation("America/Argentina/Buenos_Aires")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	n := window.NewNormalizer(loc, time.Date(2025, 5, 22, 17, 30, 0, 0, loc))
	w, err := n.Normalize("2025-06-01", "2025-06-02")
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	return w
}

func TestQueryDaily_MapsRowsAndDerivesCreated(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			if !strings.Contains(query, "FROM lists") {
				t.Fatalf("unexpected query: %s", query)
			}
			return &fakeRowScanner{rows: [][]any{
				{"2025-06-01", int64(2), int64(1), int64(1), int64(1), int64(1)},
				{"2025-06-02", int64(1), int64(0), int64(1), int64(0), int64(1)},
			}}, nil
		},
	}

	repo := NewMetricsRepository(db)

	rows, err := repo.QueryDaily(context.Background(), testWindow(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].CreatedLists != 1 || rows[1].CreatedLists != 1 {
		t.Fatalf("created_lists not derived from total-failed: %+v", rows)
	}
	if rows[0].Date > rows[1].Date {
		t.Fatalf("rows not sorted: %+v", rows)
	}
}

func TestQueryDaily_ArgsCarryExtendedWindowAndTimezone(t *testing.T) {
	db := &fakeDB{}
	repo := NewMetricsRepository(db)

	w := testWindow(t)
	if _, err := repo.QueryDaily(context.Background(), w); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(db.lastArgs) != 3 {
		t.Fatalf("expected 3 args, got %d", len(db.lastArgs))
	}

	wantStart := float64(w.Start.UnixMicro()) / 1e6
	wantEnd := float64(w.End.Add(24*time.Hour).UnixMicro()) / 1e6

	if db.lastArgs[0].(float64) != wantStart {
		t.Fatalf("expected start %f, got %v", wantStart, db.lastArgs[0])
	}
	if db.lastArgs[1].(float64) != wantEnd {
		t.Fatalf("expected end extended by one day (%f), got %v", wantEnd, db.lastArgs[1])
	}
	if db.lastArgs[2].(string) != "America/Argentina/Buenos_Aires" {
		t.Fatalf("expected display timezone arg, got %v", db.lastArgs[2])
	}
}

func TestQueryDaily_EmptyResultKeepsShape(t *testing.T) {
	db := &fakeDB{}
	repo := NewMetricsRepository(db)

	rows, err := repo.QueryDaily(context.Background(), testWindow(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows == nil || len(rows) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", rows)
	}
}

func TestQueryDaily_RejectsNakedWindow(t *testing.T) {
	db := &fakeDB{}
	repo := NewMetricsRepository(db)

	_, err := repo.QueryDaily(context.Background(), window.Window{})
	if !errors.Is(err, window.ErrMissingTimezone) {
		t.Fatalf("expected ErrMissingTimezone, got %v", err)
	}
	if db.called {
		t.Fatalf("store must not be queried with a naked window")
	}
}

func TestQueryNewUsers_MapsRows(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			if !strings.Contains(query, "first_seen") {
				t.Fatalf("expected first-seen CTE in query: %s", query)
			}
			return &fakeRowScanner{rows: [][]any{
				{"2025-06-01", int64(3), int64(5), int64(2), int64(1), int64(2)},
			}}, nil
		},
	}

	repo := NewMetricsRepository(db)

	rows, err := repo.QueryNewUsers(context.Background(), testWindow(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	r := rows[0]
	if r.FailedUsers+r.SuccessfulUsers != r.TotalUsers {
		t.Fatalf("cohort invariant broken: %+v", r)
	}
	if r.CreatedLists != r.TotalLists-r.FailedLists {
		t.Fatalf("created invariant broken: %+v", r)
	}
}

func TestQueryNewUsers_QueryErrorPropagates(t *testing.T) {
	boom := errors.New("connection refused")
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return nil, boom
		},
	}
	repo := NewMetricsRepository(db)

	if _, err := repo.QueryNewUsers(context.Background(), testWindow(t)); !errors.Is(err, boom) {
		t.Fatalf("expected query error, got %v", err)
	}
}

func TestQueryDaily_RowsErrPropagates(t *testing.T) {
	boom := errors.New("read tcp: connection reset")
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return &fakeRowScanner{err: boom}, nil
		},
	}
	repo := NewMetricsRepository(db)

	if _, err := repo.QueryDaily(context.Background(), testWindow(t)); !errors.Is(err, boom) {
		t.Fatalf("expected rows error, got %v", err)
	}
}
