package fiber

type DailyRowResponse struct {
	Date            string `json:"date"`
	TotalLists      int64  `json:"total_lists"`
	FailedLists     int64  `json:"failed_lists"`
	CreatedLists    int64  `json:"created_lists"`
	TotalUsers      int64  `json:"total_users"`
	FailedUsers     int64  `json:"failed_users"`
	SuccessfulUsers int64  `json:"successful_users"`
}

type CohortRowResponse struct {
	Date            string `json:"date"`
	TotalUsers      int64  `json:"total_users"`
	TotalLists      int64  `json:"total_lists"`
	FailedLists     int64  `json:"failed_lists"`
	CreatedLists    int64  `json:"created_lists"`
	FailedUsers     int64  `json:"failed_users"`
	SuccessfulUsers int64  `json:"successful_users"`
}

type ChartMetricsResponse struct {
	View      string              `json:"view"`
	StartDate string              `json:"start_date"`
	EndDate   string              `json:"end_date"`
	Daily     []DailyRowResponse  `json:"daily"`
	NewUsers  []CohortRowResponse `json:"new_users"`
}

type RatioRowResponse struct {
	YearMonth         string  `json:"year_month"`
	Country           string  `json:"country"`
	AvgDailyUsers     float64 `json:"avg_daily_users"`
	MonthlyTotalUsers int64   `json:"monthly_total_users"`
	Ratio             float64 `json:"ratio"`
}

type RatioResponse struct {
	Rows []RatioRowResponse `json:"rows"`
	// NoData distinguishes "nothing matched the window/filter" from an
	// error; the chart renders a placeholder instead of axes.
	NoData bool `json:"no_data"`
}

type TotalsResponse struct {
	TotalListsAttempted  string `json:"total_lists_attempted"`
	TotalListsCreated    string `json:"total_lists_created"`
	TotalFailedLists     string `json:"total_failed_lists"`
	TotalUsers           string `json:"total_users"`
	TotalSuccessfulUsers string `json:"total_successful_users"`
	TotalFailedUsers     string `json:"total_failed_users"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message" example:"invalid date format, expected YYYY-MM-DD"`
}
