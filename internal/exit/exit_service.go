package exit

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	exitErrors "github.com/luckycunningwolf/HRMS/internal/exit/errors"
	"github.com/luckycunningwolf/HRMS/internal/shared/contextutil"
)

//go:generate mockgen -source=exit_service.go -destination=mocks/mock_exit_service.go -package=mocks
type Service interface {
	Create(ctx context.Context, req CreateExitRequest) (ExitResponse, error)
	GetAll(ctx context.Context, f ListFilter) ([]ExitResponse, error)
	GetByID(ctx context.Context, id string) (ExitResponse, error)
	SetClearance(ctx context.Context, id string, req ClearanceRequest) (ExitResponse, error)
	SetSettlement(ctx context.Context, id string, req SettlementRequest) (ExitResponse, error)
	SetStatus(ctx context.Context, id string, status string) (ExitResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("exit.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("exit.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateExitRequest) (ExitResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	resignation, err := time.Parse("2006-01-02", req.ResignationDate)
	if err != nil {
		return ExitResponse{}, exitErrors.ErrInvalidDates
	}
	lastDay, err := time.Parse("2006-01-02", req.LastWorkingDay)
	if err != nil {
		return ExitResponse{}, exitErrors.ErrInvalidDates
	}
	if lastDay.Before(resignation) {
		return ExitResponse{}, exitErrors.ErrInvalidDates
	}

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return ExitResponse{}, exitErrors.ErrEmployeeNotFound
	}
	ref, err := s.repo.EmployeeByID(ctx, employeeID)
	if err != nil {
		return ExitResponse{}, err
	}

	if existing, err := s.repo.FindByEmployee(ctx, employeeID); err == nil && existing != nil {
		return ExitResponse{}, exitErrors.ErrExitAlreadyOpen
	} else if err != nil && !errors.Is(err, exitErrors.ErrExitNotFound) {
		return ExitResponse{}, err
	}

	e := &ExitProcess{
		EmployeeID:      employeeID,
		ResignationDate: resignation,
		LastWorkingDay:  lastDay,
		Reason:          req.Reason,
		Status:          StatusPending,
		Settlement:      Settlement{FinalSalary: ref.Salary},
	}
	if err := s.repo.Create(ctx, e); err != nil {
		s.logger.Error("create exit failed", zap.String("request_id", rid), zap.Error(err))
		return ExitResponse{}, err
	}

	s.logger.Info("exit process opened",
		zap.String("request_id", rid),
		zap.String("exit_id", e.ID.String()),
		zap.String("employee_id", e.EmployeeID.String()),
	)

	out, err := s.repo.FindByID(ctx, e.ID)
	if err != nil {
		return ExitResponse{}, err
	}
	return mapToResponse(out), nil
}

func (s *service) GetAll(ctx context.Context, f ListFilter) ([]ExitResponse, error) {
	items, err := s.repo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(items), nil
}

func (s *service) GetByID(ctx context.Context, id string) (ExitResponse, error) {
	eid, err := uuid.Parse(id)
	if err != nil {
		return ExitResponse{}, exitErrors.ErrExitNotFound
	}
	e, err := s.repo.FindByID(ctx, eid)
	if err != nil {
		return ExitResponse{}, err
	}
	return mapToResponse(e), nil
}

func (s *service) SetClearance(ctx context.Context, id string, req ClearanceRequest) (ExitResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	e, err := s.openProcess(ctx, id)
	if err != nil {
		return ExitResponse{}, err
	}

	if ok := e.Clearances.Set(req.Item, req.Value); !ok {
		return ExitResponse{}, exitErrors.ErrUnknownClearance
	}

	if err := s.repo.Update(ctx, e); err != nil {
		s.logger.Error("set clearance failed", zap.String("request_id", rid), zap.String("exit_id", id), zap.Error(err))
		return ExitResponse{}, err
	}

	s.logger.Info("clearance updated",
		zap.String("request_id", rid),
		zap.String("exit_id", id),
		zap.String("item", req.Item),
		zap.Bool("value", req.Value),
		zap.Int("progress", e.Clearances.Progress()),
	)
	return mapToResponse(e), nil
}

func (s *service) SetSettlement(ctx context.Context, id string, req SettlementRequest) (ExitResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	e, err := s.openProcess(ctx, id)
	if err != nil {
		return ExitResponse{}, err
	}

	e.Settlement = Settlement{
		FinalSalary:     req.FinalSalary,
		Bonus:           req.Bonus,
		LeaveEncashment: req.LeaveEncashment,
		Gratuity:        req.Gratuity,
		Deductions:      req.Deductions,
	}

	if err := s.repo.Update(ctx, e); err != nil {
		s.logger.Error("set settlement failed", zap.String("request_id", rid), zap.String("exit_id", id), zap.Error(err))
		return ExitResponse{}, err
	}
	return mapToResponse(e), nil
}

// SetStatus drives the process machine. Pending moves to in_progress or
// rejected. In progress completes only once every clearance is signed
// off. Completed and rejected are terminal.
func (s *service) SetStatus(ctx context.Context, id string, status string) (ExitResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	eid, err := uuid.Parse(id)
	if err != nil {
		return ExitResponse{}, exitErrors.ErrExitNotFound
	}
	e, err := s.repo.FindByID(ctx, eid)
	if err != nil {
		return ExitResponse{}, err
	}

	switch e.Status {
	case StatusPending:
		if status != StatusInProgress && status != StatusRejected {
			return ExitResponse{}, exitErrors.ErrInvalidTransition
		}
	case StatusInProgress:
		if status != StatusCompleted {
			return ExitResponse{}, exitErrors.ErrInvalidTransition
		}
		if !e.Clearances.AllDone() {
			return ExitResponse{}, exitErrors.ErrClearancesIncomplete
		}
	default:
		return ExitResponse{}, exitErrors.ErrExitClosed
	}

	e.Status = status
	if status == StatusCompleted {
		now := time.Now().UTC()
		e.CompletedAt = &now
	}

	if err := s.repo.Update(ctx, e); err != nil {
		s.logger.Error("set exit status failed", zap.String("request_id", rid), zap.String("exit_id", id), zap.Error(err))
		return ExitResponse{}, err
	}

	s.logger.Info("exit status changed",
		zap.String("request_id", rid),
		zap.String("exit_id", id),
		zap.String("status", status),
	)
	return mapToResponse(e), nil
}

func (s *service) openProcess(ctx context.Context, id string) (*ExitProcess, error) {
	eid, err := uuid.Parse(id)
	if err != nil {
		return nil, exitErrors.ErrExitNotFound
	}
	e, err := s.repo.FindByID(ctx, eid)
	if err != nil {
		return nil, err
	}
	if e.Status == StatusCompleted || e.Status == StatusRejected {
		return nil, exitErrors.ErrExitClosed
	}
	return e, nil
}
