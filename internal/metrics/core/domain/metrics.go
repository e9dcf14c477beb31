package domain

// DailyRow holds list activity for one calendar day in the display
// timezone. FailedUsers and SuccessfulUsers are independent distinct
// sets: a user with both a failed and a successful attempt on the same
// day counts in both.
type DailyRow struct {
	Date            string // "YYYY-MM-DD"
	TotalLists      int64
	FailedLists     int64
	CreatedLists    int64 // TotalLists - FailedLists
	TotalUsers      int64
	FailedUsers     int64
	SuccessfulUsers int64
}

// CohortRow holds first-day activity for the users whose first-ever
// list attempt fell on Date. Classification is a single per-user
// boolean (any failure on the first day -> failed), so
// FailedUsers + SuccessfulUsers == TotalUsers always.
type CohortRow struct {
	Date            string // cohort day, "YYYY-MM-DD"
	TotalUsers      int64
	TotalLists      int64
	FailedLists     int64
	CreatedLists    int64
	FailedUsers     int64
	SuccessfulUsers int64
}

// RatioRow is one month of the DAU/MAU stickiness metric for one
// country. MonthlyTotalUsers is the sum of the daily distinct-user
// counts, not a true distinct count over the month; users active on
// several days are counted once per day, which inflates the
// denominator. Kept on purpose to match the source data.
type RatioRow struct {
	YearMonth         string // "YYYY-MM"
	Country           string
	AvgDailyUsers     float64
	MonthlyTotalUsers int64
	Ratio             float64
}

// TotalMetrics is the fixed all-time snapshot shown in the dashboard
// header, display-formatted. Computed once at startup and never
// refreshed.
type TotalMetrics struct {
	TotalListsAttempted  string
	TotalListsCreated    string
	TotalFailedLists     string
	TotalUsers           string
	TotalSuccessfulUsers string
	TotalFailedUsers     string
}
