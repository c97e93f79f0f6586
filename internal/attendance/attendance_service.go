package attendance

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"strings"
	"time"

	attendanceerrors "github.com/luckycunningwolf/HRMS/internal/attendance/errors"
	"github.com/luckycunningwolf/HRMS/internal/shared/istime"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	BulkMark(ctx context.Context, req BulkMarkRequest) (BulkMarkResult, error)
	Log(ctx context.Context, req LogRequest) (AttendanceResponse, error)
	History(ctx context.Context, month string) ([]AttendanceResponse, error)
	HistoryByEmployee(ctx context.Context, employeeID, month string) ([]AttendanceResponse, error)
	MonthlySummaries(ctx context.Context, month string) ([]Summary, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

// BulkMark saves the marking grid for one date. Each entry is inserted; when
// the unique employee/date index rejects the insert the entry switches to an
// update of the existing row, so re-submitting the grid revises statuses
// instead of failing.
func (s *service) BulkMark(ctx context.Context, req BulkMarkRequest) (BulkMarkResult, error) {
	if len(req.Entries) == 0 {
		return BulkMarkResult{}, attendanceerrors.ErrNothingToMark
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return BulkMarkResult{}, attendanceerrors.ErrInvalidDateFormat
	}
	for _, entry := range req.Entries {
		if !validStatus(entry.Status) {
			return BulkMarkResult{}, attendanceerrors.ErrInvalidStatus
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("bulk mark begin tx failed", zap.Error(err))
		return BulkMarkResult{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	var result BulkMarkResult
	for _, entry := range req.Entries {
		employeeUUID, err := uuid.Parse(entry.EmployeeID)
		if err != nil {
			return BulkMarkResult{}, attendanceerrors.ErrInvalidEmployeeID
		}

		record := &Attendance{
			ID:         uuid.New(),
			EmployeeID: employeeUUID,
			Date:       date,
			Status:     entry.Status,
		}

		err = qtx.Create(ctx, record)
		if err == nil {
			result.Inserted++
			continue
		}
		if !isUniqueViolation(err) {
			s.logger.Error("bulk mark insert failed",
				zap.String("employee_id", entry.EmployeeID),
				zap.Error(err),
			)
			return BulkMarkResult{}, err
		}

		existing, findErr := qtx.FindByEmployeeAndDate(ctx, entry.EmployeeID, date)
		if findErr != nil {
			return BulkMarkResult{}, findErr
		}
		existing.Status = entry.Status
		if updateErr := qtx.Update(ctx, existing); updateErr != nil {
			return BulkMarkResult{}, updateErr
		}
		result.Updated++
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("bulk mark commit failed", zap.Error(err))
		return BulkMarkResult{}, err
	}

	s.logger.Info("bulk mark success",
		zap.String("date", req.Date),
		zap.Int("inserted", result.Inserted),
		zap.Int("updated", result.Updated),
	)
	return result, nil
}

func (s *service) Log(ctx context.Context, req LogRequest) (AttendanceResponse, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidDateFormat
	}
	if !validStatus(req.Status) {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidStatus
	}
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	record := &Attendance{
		ID:         uuid.New(),
		EmployeeID: employeeUUID,
		Date:       date,
		Status:     req.Status,
		Remarks:    req.Remarks,
	}

	if err := qtx.Create(ctx, record); err != nil {
		if isUniqueViolation(err) {
			existing, findErr := qtx.FindByEmployeeAndDate(ctx, req.EmployeeID, date)
			if findErr != nil {
				return AttendanceResponse{}, findErr
			}
			existing.Status = req.Status
			existing.Remarks = req.Remarks
			if updateErr := qtx.Update(ctx, existing); updateErr != nil {
				return AttendanceResponse{}, updateErr
			}
			record = existing
		} else {
			return AttendanceResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	return mapToResponse(*record), nil
}

func (s *service) History(ctx context.Context, month string) ([]AttendanceResponse, error) {
	from, to, err := istime.MonthWindow(month)
	if err != nil {
		return nil, attendanceerrors.ErrInvalidMonthFormat
	}

	records, err := s.repo.FindRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(records), nil
}

func (s *service) HistoryByEmployee(ctx context.Context, employeeID, month string) ([]AttendanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, attendanceerrors.ErrInvalidEmployeeID
	}
	from, to, err := istime.MonthWindow(month)
	if err != nil {
		return nil, attendanceerrors.ErrInvalidMonthFormat
	}

	records, err := s.repo.FindRangeByEmployee(ctx, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(records), nil
}

func (s *service) MonthlySummaries(ctx context.Context, month string) ([]Summary, error) {
	from, to, err := istime.MonthWindow(month)
	if err != nil {
		return nil, attendanceerrors.ErrInvalidMonthFormat
	}

	records, err := s.repo.FindRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	summaries := Summarize(records)
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].EmployeeName < summaries[j].EmployeeName
	})
	return summaries, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "duplicate key value")
}

func parseDate(v string) (time.Time, error) {
	return time.Parse("2006-01-02", v)
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:         a.ID.String(),
		EmployeeID: a.EmployeeID.String(),
		Date:       a.Date.Format("2006-01-02"),
		Status:     a.Status,
		Remarks:    a.Remarks,
		CreatedAt:  a.CreatedAt.UTC().Format(time.RFC3339),
	}
	if a.Employee != nil {
		resp.EmployeeName = a.Employee.Name
	}
	return resp
}

func mapToListResponse(records []Attendance) []AttendanceResponse {
	resp := make([]AttendanceResponse, len(records))
	for i, rec := range records {
		resp[i] = mapToResponse(rec)
	}
	return resp
}
