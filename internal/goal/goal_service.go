package goal

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	goalErrors "github.com/luckycunningwolf/HRMS/internal/goal/errors"
	"github.com/luckycunningwolf/HRMS/internal/shared/contextutil"
)

//go:generate mockgen -source=goal_service.go -destination=mocks/mock_goal_service.go -package=mocks
type Service interface {
	Create(ctx context.Context, req CreateGoalRequest) (GoalResponse, error)
	GetAll(ctx context.Context, f ListFilter) ([]GoalResponse, error)
	GetByID(ctx context.Context, kind, id string) (GoalResponse, error)
	UpdateProgress(ctx context.Context, kind, id string, req UpdateProgressRequest) (GoalResponse, error)
	Delete(ctx context.Context, kind, id string) error
	Stats(ctx context.Context, f ListFilter) (GoalStats, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("goal.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("goal.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateGoalRequest) (GoalResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return GoalResponse{}, goalErrors.ErrInvalidGoalDates
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return GoalResponse{}, goalErrors.ErrInvalidGoalDates
	}
	if endDate.Before(startDate) {
		return GoalResponse{}, goalErrors.ErrInvalidGoalDates
	}

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return GoalResponse{}, goalErrors.ErrEmployeeNotFound
	}
	exists, err := s.repo.EmployeeExists(ctx, employeeID)
	if err != nil {
		return GoalResponse{}, err
	}
	if !exists {
		return GoalResponse{}, goalErrors.ErrEmployeeNotFound
	}

	g := Goal{
		EmployeeID:   employeeID,
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		CurrentValue: 0,
		TargetValue:  req.TargetValue,
		Unit:         req.Unit,
		StartDate:    startDate,
		EndDate:      endDate,
		Status:       StatusActive,
	}

	if req.Kind == KindKPI {
		k := KPI(g)
		if err := s.repo.CreateKPI(ctx, &k); err != nil {
			s.logger.Error("create kpi failed", zap.String("request_id", rid), zap.Error(err))
			return GoalResponse{}, err
		}
		g = Goal(k)
	} else {
		if err := s.repo.CreateGoal(ctx, &g); err != nil {
			s.logger.Error("create goal failed", zap.String("request_id", rid), zap.Error(err))
			return GoalResponse{}, err
		}
	}

	s.logger.Info("goal created",
		zap.String("request_id", rid),
		zap.String("goal_id", g.ID.String()),
		zap.String("kind", req.Kind),
		zap.String("employee_id", g.EmployeeID.String()),
	)
	return mapToResponse(&g, req.Kind), nil
}

// GetAll merges both tables into one listing ordered by end date.
func (s *service) GetAll(ctx context.Context, f ListFilter) ([]GoalResponse, error) {
	out := make([]GoalResponse, 0)

	if f.Kind == "" || f.Kind == KindGoal {
		goals, err := s.repo.FindGoals(ctx, f)
		if err != nil {
			return nil, err
		}
		for i := range goals {
			out = append(out, mapToResponse(&goals[i], KindGoal))
		}
	}
	if f.Kind == "" || f.Kind == KindKPI {
		kpis, err := s.repo.FindKPIs(ctx, f)
		if err != nil {
			return nil, err
		}
		for i := range kpis {
			g := Goal(kpis[i])
			out = append(out, mapToResponse(&g, KindKPI))
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].EndDate != out[j].EndDate {
			return out[i].EndDate < out[j].EndDate
		}
		return out[i].Title < out[j].Title
	})
	return out, nil
}

func (s *service) GetByID(ctx context.Context, kind, id string) (GoalResponse, error) {
	gid, err := uuid.Parse(id)
	if err != nil {
		return GoalResponse{}, goalErrors.ErrGoalNotFound
	}

	if kind == KindKPI {
		k, err := s.repo.FindKPI(ctx, gid)
		if err != nil {
			return GoalResponse{}, err
		}
		g := Goal(*k)
		return mapToResponse(&g, KindKPI), nil
	}

	g, err := s.repo.FindGoal(ctx, gid)
	if err != nil {
		return GoalResponse{}, err
	}
	return mapToResponse(g, KindGoal), nil
}

// UpdateProgress records a new current value and, when the caller sends one,
// a new status. Status is a plain field here, not a one-way machine.
func (s *service) UpdateProgress(ctx context.Context, kind, id string, req UpdateProgressRequest) (GoalResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	gid, err := uuid.Parse(id)
	if err != nil {
		return GoalResponse{}, goalErrors.ErrGoalNotFound
	}
	if req.Status != "" && !validStatus(req.Status) {
		return GoalResponse{}, goalErrors.ErrInvalidGoalStatus
	}

	if kind == KindKPI {
		k, err := s.repo.FindKPI(ctx, gid)
		if err != nil {
			return GoalResponse{}, err
		}
		k.CurrentValue = req.CurrentValue
		if req.Status != "" {
			k.Status = req.Status
		}
		if err := s.repo.UpdateKPI(ctx, k); err != nil {
			s.logger.Error("update kpi progress failed", zap.String("request_id", rid), zap.String("kpi_id", id), zap.Error(err))
			return GoalResponse{}, err
		}
		g := Goal(*k)
		return mapToResponse(&g, KindKPI), nil
	}

	g, err := s.repo.FindGoal(ctx, gid)
	if err != nil {
		return GoalResponse{}, err
	}
	g.CurrentValue = req.CurrentValue
	if req.Status != "" {
		g.Status = req.Status
	}
	if err := s.repo.UpdateGoal(ctx, g); err != nil {
		s.logger.Error("update goal progress failed", zap.String("request_id", rid), zap.String("goal_id", id), zap.Error(err))
		return GoalResponse{}, err
	}
	return mapToResponse(g, KindGoal), nil
}

func (s *service) Delete(ctx context.Context, kind, id string) error {
	gid, err := uuid.Parse(id)
	if err != nil {
		return goalErrors.ErrGoalNotFound
	}
	if kind == KindKPI {
		return s.repo.DeleteKPI(ctx, gid)
	}
	return s.repo.DeleteGoal(ctx, gid)
}

func (s *service) Stats(ctx context.Context, f ListFilter) (GoalStats, error) {
	items, err := s.GetAll(ctx, f)
	if err != nil {
		return GoalStats{}, err
	}

	stats := GoalStats{Total: len(items)}
	if len(items) == 0 {
		return stats, nil
	}

	sum := 0
	for i := range items {
		sum += items[i].Progress
		switch items[i].Status {
		case StatusCompleted:
			stats.Completed++
		case StatusPaused:
			stats.Paused++
		case StatusCancelled:
			stats.Cancelled++
		default:
			stats.Active++
		}
	}
	stats.AverageProgress = float64(sum) / float64(len(items))
	return stats, nil
}
