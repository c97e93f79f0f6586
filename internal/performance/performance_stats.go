package performance

import "math"

// Rating bands mirror how reviews are grouped on the dashboard:
// excellent >= 4.5, good >= 3.5, average >= 2.5, poor below that.
func band(rating float64) string {
	switch {
	case rating >= 4.5:
		return "excellent"
	case rating >= 3.5:
		return "good"
	case rating >= 2.5:
		return "average"
	default:
		return "poor"
	}
}

func Summarize(items []Review) PerformanceStats {
	stats := PerformanceStats{TotalReviews: len(items)}
	if len(items) == 0 {
		return stats
	}

	var ratingSum, goalsSum float64
	seen := map[string]struct{}{}
	for i := range items {
		ratingSum += items[i].OverallRating
		goalsSum += float64(items[i].GoalsAchievement)
		seen[items[i].EmployeeID.String()] = struct{}{}

		switch band(items[i].OverallRating) {
		case "excellent":
			stats.Distribution.Excellent++
		case "good":
			stats.Distribution.Good++
		case "average":
			stats.Distribution.Average++
		default:
			stats.Distribution.Poor++
		}
	}

	stats.AverageRating = round2(ratingSum / float64(len(items)))
	stats.AverageGoals = round2(goalsSum / float64(len(items)))
	stats.ReviewedEmployees = len(seen)
	return stats
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
