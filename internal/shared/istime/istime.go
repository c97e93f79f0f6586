// Package istime holds the fixed display timezone for the whole system:
// Indian Standard Time. Storage stays UTC; only rendering goes through here.
package istime

import (
	"fmt"
	"time"
)

var location *time.Location

func init() {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		// IST has no DST, a fixed offset is equivalent.
		loc = time.FixedZone("IST", 5*3600+30*60)
	}
	location = loc
}

func Location() *time.Location {
	return location
}

func Now() time.Time {
	return time.Now().In(location)
}

// Today returns the current IST date as YYYY-MM-DD.
func Today() string {
	return Now().Format("2006-01-02")
}

// FormatDate renders DD-MM-YYYY, the directory display format.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(location).Format("02-01-2006")
}

// FormatReadable renders "15 Dec 2024".
func FormatReadable(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(location).Format("2 Jan 2006")
}

// FormatDateTime renders the full timestamp with 12-hour clock.
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(location).Format("02-01-2006 03:04:05 PM")
}

// TimeAgo renders a relative label for recent timestamps and falls back to
// the date beyond a week.
func TimeAgo(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	diff := now.Sub(t)
	if diff < 0 {
		// Clock skew between the DB and app host can put t ahead of now.
		diff = 0
	}
	minutes := int(diff.Minutes())
	hours := int(diff.Hours())
	days := hours / 24

	switch {
	case minutes < 60:
		return fmt.Sprintf("%dm ago", minutes)
	case hours < 24:
		return fmt.Sprintf("%dh ago", hours)
	case days < 7:
		return fmt.Sprintf("%dd ago", days)
	default:
		return FormatDate(t)
	}
}

// Tenure computes whole years and months since joining, e.g. "2y 4m" or "7m".
func Tenure(joining, now time.Time) string {
	if joining.IsZero() {
		return "0m"
	}

	years := now.Year() - joining.Year()
	months := int(now.Month()) - int(joining.Month())
	if months < 0 {
		years--
		months += 12
	}

	if years > 0 {
		return fmt.Sprintf("%dy %dm", years, months)
	}
	return fmt.Sprintf("%dm", months)
}

// MonthWindow returns the [first day, first day of next month) range for a
// YYYY-MM month in IST.
func MonthWindow(month string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation("2006-01", month, location)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, start.AddDate(0, 1, 0), nil
}
