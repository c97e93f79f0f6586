package istime_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/luckycunningwolf/HRMS/internal/shared/istime"
)

func TestFormatDate(t *testing.T) {
	ist := istime.Location()

	assert.Equal(t, "15-12-2024", istime.FormatDate(time.Date(2024, 12, 15, 10, 0, 0, 0, ist)))
	assert.Equal(t, "", istime.FormatDate(time.Time{}))
}

func TestFormatDateConvertsToIST(t *testing.T) {
	// 20:00 UTC is 01:30 the next day in IST.
	utc := time.Date(2024, 12, 15, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, "16-12-2024", istime.FormatDate(utc))
}

func TestTimeAgo(t *testing.T) {
	ist := istime.Location()
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, ist)

	assert.Equal(t, "5m ago", istime.TimeAgo(now.Add(-5*time.Minute), now))
	assert.Equal(t, "3h ago", istime.TimeAgo(now.Add(-3*time.Hour), now))
	assert.Equal(t, "2d ago", istime.TimeAgo(now.Add(-49*time.Hour), now))
	assert.Equal(t, "05-03-2025", istime.TimeAgo(now.AddDate(0, 0, -10), now))
	assert.Equal(t, "", istime.TimeAgo(time.Time{}, now))

	// Timestamps slightly ahead of now read as "just now", not "-1m ago".
	assert.Equal(t, "0m ago", istime.TimeAgo(now.Add(90*time.Second), now))
}

func TestTenure(t *testing.T) {
	now := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "2y 1m", istime.Tenure(time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, "7m", istime.Tenure(time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, "1y 11m", istime.Tenure(time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, "0m", istime.Tenure(time.Time{}, now))
}

func TestMonthWindow(t *testing.T) {
	start, end, err := istime.MonthWindow("2025-01")

	assert.NoError(t, err)
	assert.Equal(t, 2025, start.Year())
	assert.Equal(t, time.January, start.Month())
	assert.Equal(t, 1, start.Day())
	assert.Equal(t, time.February, end.Month())
	assert.Equal(t, "2025-01-31", end.AddDate(0, 0, -1).Format("2006-01-02"))
}

func TestMonthWindowRejectsGarbage(t *testing.T) {
	_, _, err := istime.MonthWindow("january")
	assert.Error(t, err)
}
