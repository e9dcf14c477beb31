package domain

import "sort"

// MonthlyRollable is implemented by row types that can be folded into
// monthly buckets. Each type sums its own count columns in addCounts,
// so the roll-up never has to know which columns a row carries.
type MonthlyRollable[T any] interface {
	day() string
	withDay(string) T
	addCounts(T) T
}

// RollToMonthly groups rows by the "YYYY-MM" prefix of their date and
// sums every count column. Rows already carrying a "YYYY-MM" label map
// onto themselves, so rolling up a monthly row-set is a no-op beyond
// label normalization. The result is sorted ascending by month.
func RollToMonthly[T MonthlyRollable[T]](rows []T) []T {
	buckets := make(map[string]T)
	for _, r := range rows {
		m := monthLabel(r.day())
		if acc, ok := buckets[m]; ok {
			buckets[m] = acc.addCounts(r)
		} else {
			buckets[m] = r.withDay(m)
		}
	}

	out := make([]T, 0, len(buckets))
	for _, r := range buckets {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].day() < out[j].day() })
	return out
}

func monthLabel(date string) string {
	if len(date) > 7 {
		return date[:7]
	}
	return date
}

func (r DailyRow) day() string { return r.Date }

func (r DailyRow) withDay(d string) DailyRow {
	r.Date = d
	return r
}

func (r DailyRow) addCounts(o DailyRow) DailyRow {
	r.TotalLists += o.TotalLists
	r.FailedLists += o.FailedLists
	r.CreatedLists += o.CreatedLists
	r.TotalUsers += o.TotalUsers
	r.FailedUsers += o.FailedUsers
	r.SuccessfulUsers += o.SuccessfulUsers
	return r
}

func (r CohortRow) day() string { return r.Date }

func (r CohortRow) withDay(d string) CohortRow {
	r.Date = d
	return r
}

func (r CohortRow) addCounts(o CohortRow) CohortRow {
	r.TotalUsers += o.TotalUsers
	r.TotalLists += o.TotalLists
	r.FailedLists += o.FailedLists
	r.CreatedLists += o.CreatedLists
	r.FailedUsers += o.FailedUsers
	r.SuccessfulUsers += o.SuccessfulUsers
	return r
}
