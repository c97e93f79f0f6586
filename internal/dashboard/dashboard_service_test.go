package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"

	"github.com/luckycunningwolf/HRMS/internal/attendance"
)

type fakeDashboardRepository struct {
	countsFn                func(ctx context.Context) (countsRow, error)
	attendanceTodayFn       func(ctx context.Context, day string) ([]attendanceRow, error)
	recentActivitiesFn      func(ctx context.Context, limit int) ([]activityRow, error)
	pendingApprovalsFn      func(ctx context.Context) ([]approvalRow, error)
	longPendingLeavesFn     func(ctx context.Context, olderThan time.Time) (int, error)
	exitsMissingClearanceFn func(ctx context.Context, dueWithin time.Time) (int, error)
}

func (f *fakeDashboardRepository) Counts(ctx context.Context) (countsRow, error) {
	if f.countsFn != nil {
		return f.countsFn(ctx)
	}
	return countsRow{}, nil
}

func (f *fakeDashboardRepository) AttendanceToday(ctx context.Context, day string) ([]attendanceRow, error) {
	if f.attendanceTodayFn != nil {
		return f.attendanceTodayFn(ctx, day)
	}
	return nil, nil
}

func (f *fakeDashboardRepository) RecentActivities(ctx context.Context, limit int) ([]activityRow, error) {
	if f.recentActivitiesFn != nil {
		return f.recentActivitiesFn(ctx, limit)
	}
	return nil, nil
}

func (f *fakeDashboardRepository) PendingApprovals(ctx context.Context) ([]approvalRow, error) {
	if f.pendingApprovalsFn != nil {
		return f.pendingApprovalsFn(ctx)
	}
	return nil, nil
}

func (f *fakeDashboardRepository) LongPendingLeaves(ctx context.Context, olderThan time.Time) (int, error) {
	if f.longPendingLeavesFn != nil {
		return f.longPendingLeavesFn(ctx, olderThan)
	}
	return 0, nil
}

func (f *fakeDashboardRepository) ExitsMissingClearance(ctx context.Context, dueWithin time.Time) (int, error) {
	if f.exitsMissingClearanceFn != nil {
		return f.exitsMissingClearanceFn(ctx, dueWithin)
	}
	return 0, nil
}

func TestOverviewAggregatesStats(t *testing.T) {
	repo := &fakeDashboardRepository{
		countsFn: func(ctx context.Context) (countsRow, error) {
			return countsRow{
				TotalEmployees:  40,
				ActiveEmployees: 38,
				PendingLeaves:   3,
				PendingExpenses: 2,
				OpenExits:       1,
			}, nil
		},
		attendanceTodayFn: func(ctx context.Context, day string) ([]attendanceRow, error) {
			return []attendanceRow{
				{Status: attendance.StatusPresent, N: 30},
				{Status: attendance.StatusAbsent, N: 5},
				{Status: attendance.StatusLeave, N: 3},
			}, nil
		},
		recentActivitiesFn: func(ctx context.Context, limit int) ([]activityRow, error) {
			assert.Equal(t, recentActivityLimit, limit)
			return []activityRow{
				{Kind: "leave", Subject: "Asha", Detail: "sick leave", CreatedAt: time.Now().Add(-2 * time.Hour)},
			}, nil
		},
		pendingApprovalsFn: func(ctx context.Context) ([]approvalRow, error) {
			return []approvalRow{
				{Kind: "expense", ID: "x1", Name: "Ravi", Detail: "travel", Amount: 1200, CreatedAt: time.Now().Add(-24 * time.Hour)},
			}, nil
		},
	}
	svc := NewService(repo, nil)

	ov, err := svc.Overview(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 40, ov.Stats.TotalEmployees)
	assert.Equal(t, 30, ov.Stats.PresentToday)
	assert.Equal(t, 5, ov.Stats.AbsentToday)
	assert.Equal(t, 3, ov.Stats.OnLeaveToday)
	assert.InDelta(t, 78.9, ov.Stats.AttendanceRate, 0.1)

	assert.Len(t, ov.RecentActivities, 1)
	assert.Equal(t, "2h ago", ov.RecentActivities[0].TimeAgo)

	assert.Len(t, ov.PendingApprovals, 1)
	assert.Equal(t, 1200.0, ov.PendingApprovals[0].Amount)

	// Pending expenses trip the backlog alert.
	assert.Len(t, ov.Alerts, 1)
	assert.Equal(t, "expense_backlog", ov.Alerts[0].Kind)
}

func TestOverviewZeroMarkedAttendance(t *testing.T) {
	svc := NewService(&fakeDashboardRepository{}, nil)

	ov, err := svc.Overview(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 0.0, ov.Stats.AttendanceRate)
	assert.Empty(t, ov.Alerts)
}

func TestOverviewAlertOrdering(t *testing.T) {
	repo := &fakeDashboardRepository{
		countsFn: func(ctx context.Context) (countsRow, error) {
			return countsRow{ActiveEmployees: 10, PendingExpenses: 4}, nil
		},
		attendanceTodayFn: func(ctx context.Context, day string) ([]attendanceRow, error) {
			return []attendanceRow{
				{Status: attendance.StatusPresent, N: 2},
				{Status: attendance.StatusAbsent, N: 8},
			}, nil
		},
		longPendingLeavesFn: func(ctx context.Context, olderThan time.Time) (int, error) {
			return 2, nil
		},
		exitsMissingClearanceFn: func(ctx context.Context, dueWithin time.Time) (int, error) {
			return 1, nil
		},
	}
	svc := NewService(repo, nil)

	ov, err := svc.Overview(context.Background())

	assert.NoError(t, err)
	assert.Len(t, ov.Alerts, 4)
	assert.Equal(t, "leave_backlog", ov.Alerts[0].Kind)
	assert.Equal(t, "exit_deadline", ov.Alerts[1].Kind)
	assert.Equal(t, "expense_backlog", ov.Alerts[2].Kind)
	assert.Equal(t, "low_attendance", ov.Alerts[3].Kind)
}

func TestOverviewServesFromCache(t *testing.T) {
	cached := Overview{Stats: QuickStats{TotalEmployees: 99}}
	payload, err := json.Marshal(cached)
	assert.NoError(t, err)

	rdb, mock := redismock.NewClientMock()
	mock.ExpectGet(OverviewCacheKey).SetVal(string(payload))

	repo := &fakeDashboardRepository{
		countsFn: func(ctx context.Context) (countsRow, error) {
			return countsRow{}, errors.New("db should not be hit on a cache hit")
		},
	}
	svc := NewService(repo, rdb)

	ov, err := svc.Overview(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 99, ov.Stats.TotalEmployees)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsDelegatesToOverview(t *testing.T) {
	repo := &fakeDashboardRepository{
		countsFn: func(ctx context.Context) (countsRow, error) {
			return countsRow{PendingLeaves: 7}, nil
		},
	}
	svc := NewService(repo, nil)

	stats, err := svc.Stats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 7, stats.PendingLeaves)
}
