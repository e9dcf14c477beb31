package fiber

import (
	"context"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/FelitoAguila/dash-list-me/internal/metrics/core/domain"
	"github.com/FelitoAguila/dash-list-me/internal/metrics/core/usecase"
	"github.com/FelitoAguila/dash-list-me/internal/metrics/core/window"
)

type GetChartMetricsUseCase interface {
	Execute(ctx context.Context, in usecase.GetChartMetricsInput) (usecase.ChartMetrics, error)
}

type GetRatioUseCase interface {
	Execute(ctx context.Context, in usecase.GetRatioInput) ([]domain.RatioRow, error)
}

// MetricsHandler serves the dashboard's row-set endpoints. The totals
// snapshot is fixed at construction: it is computed once at startup
// and never refreshed.
type MetricsHandler struct {
	charts GetChartMetricsUseCase
	ratio  GetRatioUseCase
	totals domain.TotalMetrics
}

func NewMetricsHandler(charts GetChartMetricsUseCase, ratio GetRatioUseCase, totals domain.TotalMetrics) *MetricsHandler {
	return &MetricsHandler{charts: charts, ratio: ratio, totals: totals}
}

// GetChartMetrics godoc
// @Summary Daily and new-user metrics for the chart grid
// @Description Returns daily list metrics and new-user cohort metrics for the window, rolled to months when view=monthly
// @Tags Metrics
// @Produce json
// @Param start_date query string true "Window start (YYYY-MM-DD)"
// @Param end_date query string true "Window end (YYYY-MM-DD)"
// @Param view query string false "View: daily | monthly" default(daily)
// @Success 200 {object} ChartMetricsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /metrics/charts [get]
func (h *MetricsHandler) GetChartMetrics(c *fiber.Ctx) error {
	startDate, endDate, ok := dateParams(c)
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "start_date and end_date are required",
		})
	}

	view := c.Query("view", usecase.ViewDaily)

	out, err := h.charts.Execute(c.Context(), usecase.GetChartMetricsInput{
		StartDate: startDate,
		EndDate:   endDate,
		View:      view,
	})
	if err != nil {
		return metricsError(c, err)
	}

	resp := ChartMetricsResponse{
		View:      view,
		StartDate: startDate,
		EndDate:   endDate,
		Daily:     make([]DailyRowResponse, 0, len(out.Daily)),
		NewUsers:  make([]CohortRowResponse, 0, len(out.NewUsers)),
	}
	for _, r := range out.Daily {
		resp.Daily = append(resp.Daily, DailyRowResponse{
			Date:            r.Date,
			TotalLists:      r.TotalLists,
			FailedLists:     r.FailedLists,
			CreatedLists:    r.CreatedLists,
			TotalUsers:      r.TotalUsers,
			FailedUsers:     r.FailedUsers,
			SuccessfulUsers: r.SuccessfulUsers,
		})
	}
	for _, r := range out.NewUsers {
		resp.NewUsers = append(resp.NewUsers, CohortRowResponse{
			Date:            r.Date,
			TotalUsers:      r.TotalUsers,
			TotalLists:      r.TotalLists,
			FailedLists:     r.FailedLists,
			CreatedLists:    r.CreatedLists,
			FailedUsers:     r.FailedUsers,
			SuccessfulUsers: r.SuccessfulUsers,
		})
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// GetRatio godoc
// @Summary Monthly DAU/MAU ratio
// @Description Returns the monthly active-to-total user ratio, optionally filtered by country
// @Tags Metrics
// @Produce json
// @Param start_date query string true "Window start (YYYY-MM-DD)"
// @Param end_date query string true "Window end (YYYY-MM-DD)"
// @Param country query []string false "Country filter, repeatable"
// @Success 200 {object} RatioResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /metrics/ratio [get]
func (h *MetricsHandler) GetRatio(c *fiber.Ctx) error {
	startDate, endDate, ok := dateParams(c)
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "start_date and end_date are required",
		})
	}

	var countries []string
	for _, v := range c.Request().URI().QueryArgs().PeekMulti("country") {
		if len(v) > 0 {
			countries = append(countries, string(v))
		}
	}

	rows, err := h.ratio.Execute(c.Context(), usecase.GetRatioInput{
		StartDate: startDate,
		EndDate:   endDate,
		Countries: countries,
	})
	if err != nil {
		return metricsError(c, err)
	}

	resp := RatioResponse{
		Rows:   make([]RatioRowResponse, 0, len(rows)),
		NoData: len(rows) == 0,
	}
	for _, r := range rows {
		resp.Rows = append(resp.Rows, RatioRowResponse{
			YearMonth:         r.YearMonth,
			Country:           r.Country,
			AvgDailyUsers:     r.AvgDailyUsers,
			MonthlyTotalUsers: r.MonthlyTotalUsers,
			Ratio:             r.Ratio,
		})
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// GetTotals godoc
// @Summary All-time header counters
// @Description Returns the fixed totals snapshot computed at startup
// @Tags Metrics
// @Produce json
// @Success 200 {object} TotalsResponse
// @Router /metrics/totals [get]
func (h *MetricsHandler) GetTotals(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(TotalsResponse{
		TotalListsAttempted:  h.totals.TotalListsAttempted,
		TotalListsCreated:    h.totals.TotalListsCreated,
		TotalFailedLists:     h.totals.TotalFailedLists,
		TotalUsers:           h.totals.TotalUsers,
		TotalSuccessfulUsers: h.totals.TotalSuccessfulUsers,
		TotalFailedUsers:     h.totals.TotalFailedUsers,
	})
}

// Healthz godoc
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func (h *MetricsHandler) Healthz(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(fiber.Map{"status": "ok"})
}

// dateParams extracts start_date and end_date, truncating datetime
// strings from the date pickers to their date part.
func dateParams(c *fiber.Ctx) (string, string, bool) {
	startDate := truncateDate(c.Query("start_date", ""))
	endDate := truncateDate(c.Query("end_date", ""))
	if startDate == "" || endDate == "" {
		return "", "", false
	}
	return startDate, endDate, true
}

func truncateDate(s string) string {
	if len(s) > 10 {
		return s[:10]
	}
	return s
}

func metricsError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, window.ErrInvalidDateFormat),
		errors.Is(err, usecase.ErrInvalidView):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
