package attendance_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/luckycunningwolf/HRMS/internal/attendance"
	attendanceerrors "github.com/luckycunningwolf/HRMS/internal/attendance/errors"
)

type fakeAttendanceRepository struct {
	createFn                func(ctx context.Context, record *attendance.Attendance) error
	findByEmployeeAndDateFn func(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error)
	updateFn                func(ctx context.Context, record *attendance.Attendance) error
	findRangeFn             func(ctx context.Context, from, to time.Time) ([]attendance.Attendance, error)
	findRangeByEmployeeFn   func(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error)
}

func (f *fakeAttendanceRepository) WithTx(tx *sql.Tx) attendance.Repository {
	return f
}

func (f *fakeAttendanceRepository) Create(ctx context.Context, record *attendance.Attendance) error {
	if f.createFn != nil {
		return f.createFn(ctx, record)
	}
	return nil
}

func (f *fakeAttendanceRepository) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	if f.findByEmployeeAndDateFn != nil {
		return f.findByEmployeeAndDateFn(ctx, employeeID, date)
	}
	return nil, sql.ErrNoRows
}

func (f *fakeAttendanceRepository) Update(ctx context.Context, record *attendance.Attendance) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, record)
	}
	return nil
}

func (f *fakeAttendanceRepository) FindRange(ctx context.Context, from, to time.Time) ([]attendance.Attendance, error) {
	if f.findRangeFn != nil {
		return f.findRangeFn(ctx, from, to)
	}
	return nil, nil
}

func (f *fakeAttendanceRepository) FindRangeByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	if f.findRangeByEmployeeFn != nil {
		return f.findRangeByEmployeeFn(ctx, employeeID, from, to)
	}
	return nil, nil
}

func setupAttendanceService(t *testing.T) (attendance.Service, *fakeAttendanceRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := &fakeAttendanceRepository{}
	return attendance.NewService(db, repo), repo, mock
}

func TestBulkMarkInsertsAllEntries(t *testing.T) {
	svc, _, mock := setupAttendanceService(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	result, err := svc.BulkMark(context.Background(), attendance.BulkMarkRequest{
		Date: "2025-03-10",
		Entries: []attendance.MarkEntry{
			{EmployeeID: "11111111-1111-1111-1111-111111111111", Status: attendance.StatusPresent},
			{EmployeeID: "22222222-2222-2222-2222-222222222222", Status: attendance.StatusAbsent},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, result.Inserted)
	assert.Equal(t, 0, result.Updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBulkMarkFallsBackToUpdateOnDuplicate(t *testing.T) {
	svc, repo, mock := setupAttendanceService(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	repo.createFn = func(ctx context.Context, record *attendance.Attendance) error {
		return &pgconn.PgError{Code: "23505", ConstraintName: "uq_attendance_employee_date"}
	}
	repo.findByEmployeeAndDateFn = func(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
		return &attendance.Attendance{Status: attendance.StatusAbsent}, nil
	}
	var updated *attendance.Attendance
	repo.updateFn = func(ctx context.Context, record *attendance.Attendance) error {
		updated = record
		return nil
	}

	result, err := svc.BulkMark(context.Background(), attendance.BulkMarkRequest{
		Date: "2025-03-10",
		Entries: []attendance.MarkEntry{
			{EmployeeID: "11111111-1111-1111-1111-111111111111", Status: attendance.StatusPresent},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, 0, result.Inserted)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, attendance.StatusPresent, updated.Status)
}

func TestBulkMarkRejectsEmptyGrid(t *testing.T) {
	svc, _, _ := setupAttendanceService(t)

	_, err := svc.BulkMark(context.Background(), attendance.BulkMarkRequest{Date: "2025-03-10"})

	assert.ErrorIs(t, err, attendanceerrors.ErrNothingToMark)
}

func TestBulkMarkRejectsBadStatus(t *testing.T) {
	svc, _, _ := setupAttendanceService(t)

	_, err := svc.BulkMark(context.Background(), attendance.BulkMarkRequest{
		Date: "2025-03-10",
		Entries: []attendance.MarkEntry{
			{EmployeeID: "11111111-1111-1111-1111-111111111111", Status: "OnTime"},
		},
	})

	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidStatus)
}

func TestBulkMarkRejectsBadDate(t *testing.T) {
	svc, _, _ := setupAttendanceService(t)

	_, err := svc.BulkMark(context.Background(), attendance.BulkMarkRequest{
		Date: "10-03-2025",
		Entries: []attendance.MarkEntry{
			{EmployeeID: "11111111-1111-1111-1111-111111111111", Status: attendance.StatusPresent},
		},
	})

	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidDateFormat)
}

func TestLogUpsertsExistingRecord(t *testing.T) {
	svc, repo, mock := setupAttendanceService(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	repo.createFn = func(ctx context.Context, record *attendance.Attendance) error {
		return &pgconn.PgError{Code: "23505"}
	}
	repo.findByEmployeeAndDateFn = func(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
		return &attendance.Attendance{Status: attendance.StatusPresent}, nil
	}

	resp, err := svc.Log(context.Background(), attendance.LogRequest{
		EmployeeID: "11111111-1111-1111-1111-111111111111",
		Date:       "2025-03-10",
		Status:     attendance.StatusLeave,
		Remarks:    "half day",
	})

	assert.NoError(t, err)
	assert.Equal(t, attendance.StatusLeave, resp.Status)
	assert.Equal(t, "half day", resp.Remarks)
}

func TestHistoryRejectsBadMonth(t *testing.T) {
	svc, _, _ := setupAttendanceService(t)

	_, err := svc.History(context.Background(), "March")

	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidMonthFormat)
}

func TestMonthlySummariesSortedByName(t *testing.T) {
	svc, repo, _ := setupAttendanceService(t)

	zoe := attendance.EmployeeRef{ID: uuid.New(), Name: "Zoe"}
	adam := attendance.EmployeeRef{ID: uuid.New(), Name: "Adam"}
	repo.findRangeFn = func(ctx context.Context, from, to time.Time) ([]attendance.Attendance, error) {
		return []attendance.Attendance{
			{EmployeeID: zoe.ID, Status: attendance.StatusPresent, Employee: &zoe},
			{EmployeeID: adam.ID, Status: attendance.StatusAbsent, Employee: &adam},
		}, nil
	}

	summaries, err := svc.MonthlySummaries(context.Background(), "2025-03")

	assert.NoError(t, err)
	assert.Len(t, summaries, 2)
	assert.Equal(t, "Adam", summaries[0].EmployeeName)
	assert.Equal(t, "Zoe", summaries[1].EmployeeName)
}
