package domain

import (
	"reflect"
	"testing"
)

func TestRollToMonthly_DailyRows(t *testing.T) {
	rows := []DailyRow{
		{Date: "2025-06-01", TotalLists: 10, FailedLists: 2, CreatedLists: 8, TotalUsers: 5, FailedUsers: 1, SuccessfulUsers: 5},
		{Date: "2025-06-15", TotalLists: 20, FailedLists: 5, CreatedLists: 15, TotalUsers: 8, FailedUsers: 3, SuccessfulUsers: 6},
		{Date: "2025-07-01", TotalLists: 7, FailedLists: 0, CreatedLists: 7, TotalUsers: 4, FailedUsers: 0, SuccessfulUsers: 4},
	}

	got := RollToMonthly(rows)

	want := []DailyRow{
		{Date: "2025-06", TotalLists: 30, FailedLists: 7, CreatedLists: 23, TotalUsers: 13, FailedUsers: 4, SuccessfulUsers: 11},
		{Date: "2025-07", TotalLists: 7, FailedLists: 0, CreatedLists: 7, TotalUsers: 4, FailedUsers: 0, SuccessfulUsers: 4},
	}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected monthly rows:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestRollToMonthly_SumsMatchDailyTotals(t *testing.T) {
	rows := []DailyRow{
		{Date: "2025-01-01", TotalLists: 3, TotalUsers: 2},
		{Date: "2025-01-10", TotalLists: 4, TotalUsers: 1},
		{Date: "2025-01-31", TotalLists: 5, TotalUsers: 3},
	}

	got := RollToMonthly(rows)
	if len(got) != 1 {
		t.Fatalf("expected 1 month, got %d", len(got))
	}

	var wantLists, wantUsers int64
	for _, r := range rows {
		wantLists += r.TotalLists
		wantUsers += r.TotalUsers
	}
	if got[0].TotalLists != wantLists || got[0].TotalUsers != wantUsers {
		t.Fatalf("monthly sums do not match daily sums: %+v", got[0])
	}
}

func TestRollToMonthly_Idempotent(t *testing.T) {
	monthly := RollToMonthly([]DailyRow{
		{Date: "2025-06-01", TotalLists: 10},
		{Date: "2025-06-02", TotalLists: 20},
	})

	again := RollToMonthly(monthly)
	if !reflect.DeepEqual(again, monthly) {
		t.Fatalf("second roll-up changed the rows:\nfirst  %+v\nsecond %+v", monthly, again)
	}
}

func TestRollToMonthly_CohortRows(t *testing.T) {
	rows := []CohortRow{
		{Date: "2025-06-03", TotalUsers: 4, TotalLists: 6, FailedLists: 1, CreatedLists: 5, FailedUsers: 1, SuccessfulUsers: 3},
		{Date: "2025-06-04", TotalUsers: 2, TotalLists: 2, FailedLists: 0, CreatedLists: 2, FailedUsers: 0, SuccessfulUsers: 2},
	}

	got := RollToMonthly(rows)
	if len(got) != 1 {
		t.Fatalf("expected 1 month, got %d", len(got))
	}

	m := got[0]
	if m.Date != "2025-06" {
		t.Fatalf("expected month label 2025-06, got %s", m.Date)
	}
	if m.FailedUsers+m.SuccessfulUsers != m.TotalUsers {
		t.Fatalf("cohort invariant broken after roll-up: %+v", m)
	}
}

func TestRollToMonthly_Empty(t *testing.T) {
	got := RollToMonthly([]DailyRow{})
	if got == nil {
		t.Fatalf("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected 0 rows, got %d", len(got))
	}
}
