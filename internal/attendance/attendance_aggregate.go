package attendance

import (
	"sort"

	"github.com/luckycunningwolf/HRMS/internal/shared/istime"
)

// Summarize rolls a flat record list up into per-employee counts in a single
// pass, tracking the newest created_at per employee. Percentages are computed
// afterwards; an employee with no records never reaches this function, so the
// zero-total guard only matters for callers that seed empty summaries.
func Summarize(records []Attendance) []Summary {
	index := make(map[string]int)
	summaries := make([]Summary, 0)
	lastUpdated := make([]int64, 0)

	for _, rec := range records {
		key := rec.EmployeeID.String()
		i, ok := index[key]
		if !ok {
			i = len(summaries)
			index[key] = i

			name := "Unknown"
			if rec.Employee != nil && rec.Employee.Name != "" {
				name = rec.Employee.Name
			}
			summaries = append(summaries, Summary{
				EmployeeID:   key,
				EmployeeName: name,
			})
			lastUpdated = append(lastUpdated, 0)
		}

		switch rec.Status {
		case StatusPresent:
			summaries[i].Present++
		case StatusAbsent:
			summaries[i].Absent++
		case StatusLeave:
			summaries[i].Leave++
		}

		if ts := rec.CreatedAt.UnixNano(); ts > lastUpdated[i] {
			lastUpdated[i] = ts
			summaries[i].LastUpdated = istime.FormatDateTime(rec.CreatedAt)
		}
	}

	for i := range summaries {
		s := &summaries[i]
		s.Total = s.Present + s.Absent + s.Leave
		s.Rate = Rate(s.Present, s.Total)
	}

	return summaries
}

// Rate is the attendance percentage: Present over all records, 0 for an
// empty group rather than a division error.
func Rate(present, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(present) / float64(total) * 100
}

// TopByRate returns the n best summaries by rate, descending. The sort is
// stable so ties keep their insertion order.
func TopByRate(summaries []Summary, n int) []Summary {
	ranked := make([]Summary, len(summaries))
	copy(ranked, summaries)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Rate > ranked[j].Rate
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}
