package report_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/luckycunningwolf/HRMS/internal/attendance"
	"github.com/luckycunningwolf/HRMS/internal/leave"
	"github.com/luckycunningwolf/HRMS/internal/report"
)

type fakeAttendanceService struct {
	historyFn           func(ctx context.Context, month string) ([]attendance.AttendanceResponse, error)
	historyByEmployeeFn func(ctx context.Context, employeeID, month string) ([]attendance.AttendanceResponse, error)
	monthlySummariesFn  func(ctx context.Context, month string) ([]attendance.Summary, error)
}

func (f *fakeAttendanceService) BulkMark(ctx context.Context, req attendance.BulkMarkRequest) (attendance.BulkMarkResult, error) {
	return attendance.BulkMarkResult{}, nil
}

func (f *fakeAttendanceService) Log(ctx context.Context, req attendance.LogRequest) (attendance.AttendanceResponse, error) {
	return attendance.AttendanceResponse{}, nil
}

func (f *fakeAttendanceService) History(ctx context.Context, month string) ([]attendance.AttendanceResponse, error) {
	if f.historyFn != nil {
		return f.historyFn(ctx, month)
	}
	return nil, nil
}

func (f *fakeAttendanceService) HistoryByEmployee(ctx context.Context, employeeID, month string) ([]attendance.AttendanceResponse, error) {
	if f.historyByEmployeeFn != nil {
		return f.historyByEmployeeFn(ctx, employeeID, month)
	}
	return nil, nil
}

func (f *fakeAttendanceService) MonthlySummaries(ctx context.Context, month string) ([]attendance.Summary, error) {
	if f.monthlySummariesFn != nil {
		return f.monthlySummariesFn(ctx, month)
	}
	return nil, nil
}

type fakeLeaveService struct {
	getAllFn func(ctx context.Context, f leave.ListFilter) ([]leave.LeaveResponse, error)
}

func (f *fakeLeaveService) Create(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	return leave.LeaveResponse{}, nil
}

func (f *fakeLeaveService) GetAll(ctx context.Context, filter leave.ListFilter) ([]leave.LeaveResponse, error) {
	if f.getAllFn != nil {
		return f.getAllFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakeLeaveService) GetByID(ctx context.Context, id string) (leave.LeaveResponse, error) {
	return leave.LeaveResponse{}, nil
}

func (f *fakeLeaveService) GetByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveResponse, error) {
	return nil, nil
}

func (f *fakeLeaveService) Approve(ctx context.Context, id string, decidedBy string) (leave.LeaveResponse, error) {
	return leave.LeaveResponse{}, nil
}

func (f *fakeLeaveService) Reject(ctx context.Context, id string, decidedBy string, reason string) (leave.LeaveResponse, error) {
	return leave.LeaveResponse{}, nil
}

func (f *fakeLeaveService) Stats(ctx context.Context) (leave.LeaveStats, error) {
	return leave.LeaveStats{}, nil
}

func TestAttendanceCSVQuotesAwkwardNames(t *testing.T) {
	att := &fakeAttendanceService{
		historyFn: func(ctx context.Context, month string) ([]attendance.AttendanceResponse, error) {
			return []attendance.AttendanceResponse{
				{EmployeeID: "e1", EmployeeName: `Rao, Asha "AR"`, Date: "2025-03-01", Status: "Present", Remarks: "on site"},
				{EmployeeID: "e2", EmployeeName: "Ravi", Date: "2025-03-01", Status: "Absent"},
			}, nil
		},
	}
	svc := report.NewService(att, &fakeLeaveService{})

	export, err := svc.AttendanceCSV(context.Background(), "2025-03")

	assert.NoError(t, err)
	assert.Equal(t, "attendance-2025-03.csv", export.Filename)
	assert.Equal(t, "text/csv", export.ContentType)

	rows, err := csv.NewReader(bytes.NewReader(export.Data)).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, rows, 3)
	assert.Equal(t, []string{"employee_id", "employee_name", "date", "status", "remarks"}, rows[0])
	assert.Equal(t, `Rao, Asha "AR"`, rows[1][1])
	assert.Equal(t, "Absent", rows[2][3])
}

func TestLeaveCSV(t *testing.T) {
	leaves := &fakeLeaveService{
		getAllFn: func(ctx context.Context, f leave.ListFilter) ([]leave.LeaveResponse, error) {
			return []leave.LeaveResponse{
				{EmployeeID: "e1", EmployeeName: "Asha", LeaveType: "sick", StartDate: "2025-03-10", EndDate: "2025-03-12", TotalDays: 3, Status: "approved", Reason: "flu"},
			}, nil
		},
	}
	svc := report.NewService(&fakeAttendanceService{}, leaves)

	export, err := svc.LeaveCSV(context.Background(), leave.ListFilter{})

	assert.NoError(t, err)
	assert.Equal(t, "leave-requests.csv", export.Filename)

	rows, readErr := csv.NewReader(bytes.NewReader(export.Data)).ReadAll()
	assert.NoError(t, readErr)
	assert.Len(t, rows, 2)
	assert.Equal(t, "3", rows[1][5])
	assert.Equal(t, "approved", rows[1][6])
}

func TestAttendanceSummaryPDF(t *testing.T) {
	att := &fakeAttendanceService{
		monthlySummariesFn: func(ctx context.Context, month string) ([]attendance.Summary, error) {
			return []attendance.Summary{
				{EmployeeName: "Asha", Present: 20, Absent: 1, Leave: 2, Total: 23, Rate: 86.96},
			}, nil
		},
	}
	svc := report.NewService(att, &fakeLeaveService{})

	export, err := svc.AttendanceSummaryPDF(context.Background(), "2025-03")

	assert.NoError(t, err)
	assert.Equal(t, "attendance-summary-2025-03.pdf", export.Filename)
	assert.Equal(t, "application/pdf", export.ContentType)
	assert.True(t, bytes.HasPrefix(export.Data, []byte("%PDF-")))
	assert.Contains(t, string(export.Data), "Attendance Summary")
}

func TestEmployeeAttendancePDF(t *testing.T) {
	att := &fakeAttendanceService{
		historyByEmployeeFn: func(ctx context.Context, employeeID, month string) ([]attendance.AttendanceResponse, error) {
			assert.Equal(t, "e1", employeeID)
			assert.Equal(t, "2025-03", month)
			return []attendance.AttendanceResponse{
				{EmployeeID: "e1", EmployeeName: "Asha", Date: "2025-03-01", Status: attendance.StatusPresent},
				{EmployeeID: "e1", EmployeeName: "Asha", Date: "2025-03-02", Status: attendance.StatusPresent},
				{EmployeeID: "e1", EmployeeName: "Asha", Date: "2025-03-03", Status: attendance.StatusAbsent},
			}, nil
		},
	}
	svc := report.NewService(att, &fakeLeaveService{})

	export, err := svc.EmployeeAttendancePDF(context.Background(), "e1", "2025-03")

	assert.NoError(t, err)
	assert.Equal(t, "attendance-e1-2025-03.pdf", export.Filename)
	assert.Equal(t, "application/pdf", export.ContentType)
	assert.True(t, bytes.HasPrefix(export.Data, []byte("%PDF-")))
	body := string(export.Data)
	assert.Contains(t, body, "Attendance Report")
	assert.Contains(t, body, "Employee: Asha")
	assert.Contains(t, body, "Present 2  Absent 1  Leave 0  Rate 66.7%")
}
