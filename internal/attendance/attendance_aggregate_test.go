package attendance_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/luckycunningwolf/HRMS/internal/attendance"
)

func TestRate(t *testing.T) {
	assert.Equal(t, 0.0, attendance.Rate(0, 0))
	assert.Equal(t, 100.0, attendance.Rate(5, 5))
	assert.Equal(t, 50.0, attendance.Rate(1, 2))
	assert.InDelta(t, 66.67, attendance.Rate(2, 3), 0.01)
}

func TestSummarizeGroupsByEmployee(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	records := []attendance.Attendance{
		{EmployeeID: alice, Status: attendance.StatusPresent, CreatedAt: day, Employee: &attendance.EmployeeRef{ID: alice, Name: "Alice"}},
		{EmployeeID: alice, Status: attendance.StatusPresent, CreatedAt: day.AddDate(0, 0, 1), Employee: &attendance.EmployeeRef{ID: alice, Name: "Alice"}},
		{EmployeeID: alice, Status: attendance.StatusAbsent, CreatedAt: day.AddDate(0, 0, 2), Employee: &attendance.EmployeeRef{ID: alice, Name: "Alice"}},
		{EmployeeID: bob, Status: attendance.StatusLeave, CreatedAt: day},
	}

	summaries := attendance.Summarize(records)

	assert.Len(t, summaries, 2)

	assert.Equal(t, "Alice", summaries[0].EmployeeName)
	assert.Equal(t, 2, summaries[0].Present)
	assert.Equal(t, 1, summaries[0].Absent)
	assert.Equal(t, 0, summaries[0].Leave)
	assert.Equal(t, 3, summaries[0].Total)
	assert.InDelta(t, 66.67, summaries[0].Rate, 0.01)

	// Missing join rows fall back to a placeholder name.
	assert.Equal(t, "Unknown", summaries[1].EmployeeName)
	assert.Equal(t, 1, summaries[1].Leave)
	assert.Equal(t, 1, summaries[1].Total)
	assert.Equal(t, 0.0, summaries[1].Rate)
}

func TestSummarizeTracksNewestRecord(t *testing.T) {
	id := uuid.New()
	older := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 3, 5, 9, 0, 0, 0, time.UTC)

	summaries := attendance.Summarize([]attendance.Attendance{
		{EmployeeID: id, Status: attendance.StatusPresent, CreatedAt: newer},
		{EmployeeID: id, Status: attendance.StatusPresent, CreatedAt: older},
	})

	assert.Len(t, summaries, 1)
	assert.Contains(t, summaries[0].LastUpdated, "05-03-2025")
}

func TestSummarizeEmpty(t *testing.T) {
	summaries := attendance.Summarize(nil)
	assert.NotNil(t, summaries)
	assert.Len(t, summaries, 0)
}

func TestTopByRate(t *testing.T) {
	in := []attendance.Summary{
		{EmployeeName: "Low", Rate: 40},
		{EmployeeName: "High", Rate: 95},
		{EmployeeName: "Mid", Rate: 70},
	}

	top := attendance.TopByRate(in, 2)

	assert.Len(t, top, 2)
	assert.Equal(t, "High", top[0].EmployeeName)
	assert.Equal(t, "Mid", top[1].EmployeeName)
	// Input order is untouched.
	assert.Equal(t, "Low", in[0].EmployeeName)
}

func TestTopByRateClampsN(t *testing.T) {
	top := attendance.TopByRate([]attendance.Summary{{Rate: 10}}, 5)
	assert.Len(t, top, 1)
}
