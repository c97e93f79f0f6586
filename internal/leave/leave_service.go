package leave

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	leaveErrors "github.com/luckycunningwolf/HRMS/internal/leave/errors"
	"github.com/luckycunningwolf/HRMS/internal/shared/contextutil"
)

//go:generate mockgen -source=leave_service.go -destination=mocks/mock_leave_service.go -package=mocks
type Service interface {
	Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	GetAll(ctx context.Context, f ListFilter) ([]LeaveResponse, error)
	GetByID(ctx context.Context, id string) (LeaveResponse, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]LeaveResponse, error)
	Approve(ctx context.Context, id string, decidedBy string) (LeaveResponse, error)
	Reject(ctx context.Context, id string, decidedBy string, reason string) (LeaveResponse, error)
	Stats(ctx context.Context) (LeaveStats, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return LeaveResponse{}, leaveErrors.ErrInvalidDateRange
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return LeaveResponse{}, leaveErrors.ErrInvalidDateRange
	}
	if end.Before(start) {
		return LeaveResponse{}, leaveErrors.ErrInvalidDateRange
	}

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return LeaveResponse{}, leaveErrors.ErrEmployeeNotFound
	}
	exists, err := s.repo.EmployeeExists(ctx, employeeID)
	if err != nil {
		s.logger.Error("employee lookup failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveResponse{}, err
	}
	if !exists {
		return LeaveResponse{}, leaveErrors.ErrEmployeeNotFound
	}

	overlapping, err := s.repo.CountOverlapping(ctx, employeeID, start, end)
	if err != nil {
		return LeaveResponse{}, err
	}
	if overlapping > 0 {
		return LeaveResponse{}, leaveErrors.ErrOverlappingLeave
	}

	l := &LeaveRequest{
		EmployeeID: employeeID,
		LeaveType:  req.LeaveType,
		StartDate:  start,
		EndDate:    end,
		TotalDays:  totalDays(start, end),
		Reason:     req.Reason,
		Status:     StatusPending,
	}
	if err := s.repo.Create(ctx, l); err != nil {
		s.logger.Error("create leave failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("leave request created",
		zap.String("request_id", rid),
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_id", l.EmployeeID.String()),
		zap.Int("total_days", l.TotalDays),
	)
	return s.reload(ctx, l.ID)
}

func (s *service) GetAll(ctx context.Context, f ListFilter) ([]LeaveResponse, error) {
	items, err := s.repo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(items), nil
}

func (s *service) GetByID(ctx context.Context, id string) (LeaveResponse, error) {
	lid, err := uuid.Parse(id)
	if err != nil {
		return LeaveResponse{}, leaveErrors.ErrLeaveNotFound
	}
	l, err := s.repo.FindByID(ctx, lid)
	if err != nil {
		return LeaveResponse{}, err
	}
	return mapToResponse(l), nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID string) ([]LeaveResponse, error) {
	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, leaveErrors.ErrEmployeeNotFound
	}
	items, err := s.repo.FindByEmployee(ctx, eid)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(items), nil
}

// Approve and Reject only move pending requests. Re-deciding a decided
// request returns a conflict so two reviewers cannot race each other.
func (s *service) Approve(ctx context.Context, id string, decidedBy string) (LeaveResponse, error) {
	return s.decide(ctx, id, decidedBy, StatusApproved, nil)
}

func (s *service) Reject(ctx context.Context, id string, decidedBy string, reason string) (LeaveResponse, error) {
	return s.decide(ctx, id, decidedBy, StatusRejected, &reason)
}

func (s *service) decide(ctx context.Context, id, decidedBy, status string, reason *string) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	lid, err := uuid.Parse(id)
	if err != nil {
		return LeaveResponse{}, leaveErrors.ErrLeaveNotFound
	}
	l, err := s.repo.FindByID(ctx, lid)
	if err != nil {
		return LeaveResponse{}, err
	}
	if l.Status != StatusPending {
		return LeaveResponse{}, leaveErrors.ErrAlreadyDecided
	}

	now := time.Now().UTC()
	l.Status = status
	l.DecidedAt = &now
	l.RejectionReason = reason
	if deciderID, err := uuid.Parse(decidedBy); err == nil {
		l.DecidedBy = &deciderID
	}

	if err := s.repo.Update(ctx, l); err != nil {
		s.logger.Error("decide leave failed",
			zap.String("request_id", rid),
			zap.String("leave_id", id),
			zap.String("status", status),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	s.logger.Info("leave request decided",
		zap.String("request_id", rid),
		zap.String("leave_id", id),
		zap.String("status", status),
	)
	return mapToResponse(l), nil
}

func (s *service) Stats(ctx context.Context) (LeaveStats, error) {
	items, err := s.repo.FindAll(ctx, ListFilter{})
	if err != nil {
		return LeaveStats{}, err
	}

	stats := LeaveStats{ByType: map[string]int{}}
	for i := range items {
		switch items[i].Status {
		case StatusPending:
			stats.Pending++
		case StatusApproved:
			stats.Approved++
			stats.DaysApproved += items[i].TotalDays
		case StatusRejected:
			stats.Rejected++
		}
		stats.ByType[items[i].LeaveType]++
	}
	return stats, nil
}

func (s *service) reload(ctx context.Context, id uuid.UUID) (LeaveResponse, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return LeaveResponse{}, err
	}
	return mapToResponse(l), nil
}
