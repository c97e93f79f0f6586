package dashboard

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/luckycunningwolf/HRMS/internal/attendance"
	"github.com/luckycunningwolf/HRMS/internal/shared/istime"
)

const (
	OverviewCacheKey = "dashboard:overview"
	overviewCacheTTL = 60 * time.Second

	recentActivityLimit = 8
	stalePendingDays    = 7
)

//go:generate mockgen -source=dashboard_service.go -destination=mocks/mock_dashboard_service.go -package=mocks
type Service interface {
	Overview(ctx context.Context) (Overview, error)
	Stats(ctx context.Context) (QuickStats, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

// Overview is the heaviest read in the system, so it is cached for a
// minute and singleflighted while the cache is cold.
func (s *service) Overview(ctx context.Context) (Overview, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, OverviewCacheKey).Bytes(); err == nil {
			var ov Overview
			if err := json.Unmarshal(cached, &ov); err == nil {
				return ov, nil
			}
		}
	}

	v, err, _ := s.sf.Do(OverviewCacheKey, func() (any, error) {
		return s.buildOverview(ctx)
	})
	if err != nil {
		return Overview{}, err
	}
	ov := v.(Overview)

	if s.rdb != nil {
		if payload, err := json.Marshal(ov); err == nil {
			if err := s.rdb.Set(ctx, OverviewCacheKey, payload, overviewCacheTTL).Err(); err != nil {
				s.logger.Warn("overview cache write failed", zap.Error(err))
			}
		}
	}
	return ov, nil
}

func (s *service) Stats(ctx context.Context) (QuickStats, error) {
	ov, err := s.Overview(ctx)
	if err != nil {
		return QuickStats{}, err
	}
	return ov.Stats, nil
}

func (s *service) buildOverview(ctx context.Context) (Overview, error) {
	now := time.Now()
	today := istime.Today()

	counts, err := s.repo.Counts(ctx)
	if err != nil {
		return Overview{}, err
	}

	attRows, err := s.repo.AttendanceToday(ctx, today)
	if err != nil {
		return Overview{}, err
	}

	stats := QuickStats{
		TotalEmployees:  counts.TotalEmployees,
		ActiveEmployees: counts.ActiveEmployees,
		PendingLeaves:   counts.PendingLeaves,
		PendingExpenses: counts.PendingExpenses,
		OpenExits:       counts.OpenExits,
	}
	marked := 0
	for _, row := range attRows {
		marked += row.N
		switch row.Status {
		case attendance.StatusPresent:
			stats.PresentToday = row.N
		case attendance.StatusAbsent:
			stats.AbsentToday = row.N
		case attendance.StatusLeave:
			stats.OnLeaveToday = row.N
		}
	}
	stats.AttendanceRate = attendance.Rate(stats.PresentToday, marked)

	activityRows, err := s.repo.RecentActivities(ctx, recentActivityLimit)
	if err != nil {
		return Overview{}, err
	}
	activities := make([]Activity, 0, len(activityRows))
	for _, row := range activityRows {
		activities = append(activities, Activity{
			Kind:       row.Kind,
			Subject:    row.Subject,
			Detail:     row.Detail,
			OccurredAt: istime.FormatDateTime(row.CreatedAt),
			TimeAgo:    istime.TimeAgo(row.CreatedAt, now),
		})
	}

	approvalRows, err := s.repo.PendingApprovals(ctx)
	if err != nil {
		return Overview{}, err
	}
	approvals := make([]PendingApproval, 0, len(approvalRows))
	for _, row := range approvalRows {
		approvals = append(approvals, PendingApproval{
			Kind:         row.Kind,
			ID:           row.ID,
			EmployeeName: row.Name,
			Detail:       row.Detail,
			Amount:       row.Amount,
			WaitingSince: istime.FormatDateTime(row.CreatedAt),
		})
	}

	alerts, err := s.buildAlerts(ctx, now, stats)
	if err != nil {
		return Overview{}, err
	}

	return Overview{
		Stats:            stats,
		RecentActivities: activities,
		PendingApprovals: approvals,
		Alerts:           alerts,
	}, nil
}

func (s *service) buildAlerts(ctx context.Context, now time.Time, stats QuickStats) ([]Alert, error) {
	var alerts []Alert

	stale, err := s.repo.LongPendingLeaves(ctx, now.AddDate(0, 0, -stalePendingDays))
	if err != nil {
		return nil, err
	}
	if stale > 0 {
		alerts = append(alerts, Alert{
			Priority: 1,
			Kind:     "leave_backlog",
			Message:  "leave requests have been waiting over a week",
		})
	}

	overdue, err := s.repo.ExitsMissingClearance(ctx, now.AddDate(0, 0, 7))
	if err != nil {
		return nil, err
	}
	if overdue > 0 {
		alerts = append(alerts, Alert{
			Priority: 1,
			Kind:     "exit_deadline",
			Message:  "exit processes are within a week of the last working day",
		})
	}

	if stats.PendingExpenses > 0 {
		alerts = append(alerts, Alert{
			Priority: 2,
			Kind:     "expense_backlog",
			Message:  "expense claims are awaiting a decision",
		})
	}
	if stats.ActiveEmployees > 0 && stats.AttendanceRate < 50 {
		alerts = append(alerts, Alert{
			Priority: 3,
			Kind:     "low_attendance",
			Message:  "less than half of marked employees are present today",
		})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Priority < alerts[j].Priority
	})
	return alerts, nil
}
