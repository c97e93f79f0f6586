package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/luckycunningwolf/HRMS/internal/attendance"
	"github.com/luckycunningwolf/HRMS/internal/leave"
)

// Export is a rendered file ready to stream back to the client.
type Export struct {
	Filename    string
	ContentType string
	Data        []byte
}

//go:generate mockgen -source=report_service.go -destination=mocks/mock_report_service.go -package=mocks
type Service interface {
	AttendanceCSV(ctx context.Context, month string) (Export, error)
	AttendanceSummaryPDF(ctx context.Context, month string) (Export, error)
	EmployeeAttendancePDF(ctx context.Context, employeeID, month string) (Export, error)
	LeaveCSV(ctx context.Context, f leave.ListFilter) (Export, error)
}

type service struct {
	attendance attendance.Service
	leaves     leave.Service
	logger     *zap.Logger
}

func NewService(attendanceSvc attendance.Service, leaveSvc leave.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{attendance: attendanceSvc, leaves: leaveSvc, logger: l}
}

// AttendanceCSV exports one row per attendance record. csv.Writer takes
// care of quoting, so names with commas or quotes survive a round trip.
func (s *service) AttendanceCSV(ctx context.Context, month string) (Export, error) {
	records, err := s.attendance.History(ctx, month)
	if err != nil {
		return Export{}, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"employee_id", "employee_name", "date", "status", "remarks"}); err != nil {
		return Export{}, err
	}
	for i := range records {
		row := []string{
			records[i].EmployeeID,
			records[i].EmployeeName,
			records[i].Date,
			records[i].Status,
			records[i].Remarks,
		}
		if err := w.Write(row); err != nil {
			return Export{}, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return Export{}, err
	}

	s.logger.Info("attendance csv exported", zap.String("month", month), zap.Int("rows", len(records)))
	return Export{
		Filename:    fmt.Sprintf("attendance-%s.csv", month),
		ContentType: "text/csv",
		Data:        buf.Bytes(),
	}, nil
}

func (s *service) AttendanceSummaryPDF(ctx context.Context, month string) (Export, error) {
	summaries, err := s.attendance.MonthlySummaries(ctx, month)
	if err != nil {
		return Export{}, err
	}

	lines := make([]string, 0, len(summaries)+2)
	lines = append(lines, fmt.Sprintf("Month: %s", month))
	lines = append(lines, "")
	for i := range summaries {
		lines = append(lines, fmt.Sprintf(
			"%-30s present %3d  absent %3d  leave %3d  rate %5.1f%%",
			summaries[i].EmployeeName,
			summaries[i].Present,
			summaries[i].Absent,
			summaries[i].Leave,
			summaries[i].Rate,
		))
	}

	data, err := buildReportPDF("Attendance Summary", lines)
	if err != nil {
		return Export{}, err
	}

	s.logger.Info("attendance pdf exported", zap.String("month", month), zap.Int("employees", len(summaries)))
	return Export{
		Filename:    fmt.Sprintf("attendance-summary-%s.pdf", month),
		ContentType: "application/pdf",
		Data:        data,
	}, nil
}

// EmployeeAttendancePDF renders one employee's month: an info block followed
// by a per-day table and the counts.
func (s *service) EmployeeAttendancePDF(ctx context.Context, employeeID, month string) (Export, error) {
	records, err := s.attendance.HistoryByEmployee(ctx, employeeID, month)
	if err != nil {
		return Export{}, err
	}

	name := ""
	var present, absent, onLeave int
	lines := make([]string, 0, len(records)+8)
	lines = append(lines, fmt.Sprintf("Month: %s", month))

	dayLines := make([]string, 0, len(records))
	for i := range records {
		if name == "" {
			name = records[i].EmployeeName
		}
		switch records[i].Status {
		case attendance.StatusPresent:
			present++
		case attendance.StatusAbsent:
			absent++
		case attendance.StatusLeave:
			onLeave++
		}
		dayLines = append(dayLines, fmt.Sprintf("%-12s %-8s %s", records[i].Date, records[i].Status, records[i].Remarks))
	}

	if name == "" {
		name = "Unknown"
	}
	total := present + absent + onLeave
	lines = append(lines,
		fmt.Sprintf("Employee: %s", name),
		"",
		fmt.Sprintf("Present %d  Absent %d  Leave %d  Rate %.1f%%", present, absent, onLeave, attendance.Rate(present, total)),
		"",
	)
	lines = append(lines, dayLines...)

	data, err := buildReportPDF("Attendance Report", lines)
	if err != nil {
		return Export{}, err
	}

	s.logger.Info("employee attendance pdf exported",
		zap.String("employee_id", employeeID),
		zap.String("month", month),
		zap.Int("days", len(records)),
	)
	return Export{
		Filename:    fmt.Sprintf("attendance-%s-%s.pdf", employeeID, month),
		ContentType: "application/pdf",
		Data:        data,
	}, nil
}

func (s *service) LeaveCSV(ctx context.Context, f leave.ListFilter) (Export, error) {
	items, err := s.leaves.GetAll(ctx, f)
	if err != nil {
		return Export{}, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	header := []string{"employee_id", "employee_name", "leave_type", "start_date", "end_date", "total_days", "status", "reason"}
	if err := w.Write(header); err != nil {
		return Export{}, err
	}
	for i := range items {
		row := []string{
			items[i].EmployeeID,
			items[i].EmployeeName,
			items[i].LeaveType,
			items[i].StartDate,
			items[i].EndDate,
			strconv.Itoa(items[i].TotalDays),
			items[i].Status,
			items[i].Reason,
		}
		if err := w.Write(row); err != nil {
			return Export{}, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return Export{}, err
	}

	s.logger.Info("leave csv exported", zap.Int("rows", len(items)))
	return Export{
		Filename:    "leave-requests.csv",
		ContentType: "text/csv",
		Data:        buf.Bytes(),
	}, nil
}
