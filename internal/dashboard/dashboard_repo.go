package dashboard

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Row types below scan straight out of aggregate queries; the dashboard
// never loads full domain entities.

type countsRow struct {
	TotalEmployees  int
	ActiveEmployees int
	PendingLeaves   int
	PendingExpenses int
	OpenExits       int
}

type attendanceRow struct {
	Status string
	N      int
}

type activityRow struct {
	Kind      string
	Subject   string
	Detail    string
	CreatedAt time.Time
}

type approvalRow struct {
	Kind      string
	ID        string
	Name      string
	Detail    string
	Amount    float64
	CreatedAt time.Time
}

//go:generate mockgen -source=dashboard_repo.go -destination=mocks/mock_dashboard_repo.go -package=mocks
type Repository interface {
	Counts(ctx context.Context) (countsRow, error)
	AttendanceToday(ctx context.Context, day string) ([]attendanceRow, error)
	RecentActivities(ctx context.Context, limit int) ([]activityRow, error)
	PendingApprovals(ctx context.Context) ([]approvalRow, error)
	LongPendingLeaves(ctx context.Context, olderThan time.Time) (int, error)
	ExitsMissingClearance(ctx context.Context, dueWithin time.Time) (int, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Counts(ctx context.Context) (countsRow, error) {
	var row countsRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM employees WHERE deleted_at IS NULL) AS total_employees,
			(SELECT COUNT(*) FROM employees WHERE deleted_at IS NULL AND is_active) AS active_employees,
			(SELECT COUNT(*) FROM leave_requests WHERE status = 'pending') AS pending_leaves,
			(SELECT COUNT(*) FROM expenses WHERE status = 'pending') AS pending_expenses,
			(SELECT COUNT(*) FROM exit_processes WHERE status IN ('pending','in_progress')) AS open_exits
	`).Scan(&row).Error
	return row, err
}

func (r *repository) AttendanceToday(ctx context.Context, day string) ([]attendanceRow, error) {
	var rows []attendanceRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*) AS n
		FROM attendance
		WHERE date = ?
		GROUP BY status
	`, day).Scan(&rows).Error
	return rows, err
}

func (r *repository) RecentActivities(ctx context.Context, limit int) ([]activityRow, error) {
	var rows []activityRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT * FROM (
			SELECT 'leave' AS kind, e.name AS subject, l.leave_type AS detail, l.created_at
			FROM leave_requests l JOIN employees e ON e.id = l.employee_id
			UNION ALL
			SELECT 'expense' AS kind, e.name AS subject, x.category AS detail, x.created_at
			FROM expenses x JOIN employees e ON e.id = x.employee_id
			UNION ALL
			SELECT 'employee' AS kind, e.name AS subject, e.department AS detail, e.created_at
			FROM employees e WHERE e.deleted_at IS NULL
			UNION ALL
			SELECT 'exit' AS kind, e.name AS subject, p.status AS detail, p.created_at
			FROM exit_processes p JOIN employees e ON e.id = p.employee_id
		) activity
		ORDER BY created_at DESC
		LIMIT ?
	`, limit).Scan(&rows).Error
	return rows, err
}

func (r *repository) PendingApprovals(ctx context.Context) ([]approvalRow, error) {
	var rows []approvalRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT * FROM (
			SELECT 'leave' AS kind, l.id::text AS id, e.name, l.leave_type AS detail, 0::numeric AS amount, l.created_at
			FROM leave_requests l JOIN employees e ON e.id = l.employee_id
			WHERE l.status = 'pending'
			UNION ALL
			SELECT 'expense' AS kind, x.id::text AS id, e.name, x.category AS detail, x.amount, x.created_at
			FROM expenses x JOIN employees e ON e.id = x.employee_id
			WHERE x.status = 'pending'
		) pending
		ORDER BY created_at ASC
	`).Scan(&rows).Error
	return rows, err
}

func (r *repository) LongPendingLeaves(ctx context.Context, olderThan time.Time) (int, error) {
	var n int
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM leave_requests
		WHERE status = 'pending' AND created_at < ?
	`, olderThan).Scan(&n).Error
	return n, err
}

func (r *repository) ExitsMissingClearance(ctx context.Context, dueWithin time.Time) (int, error) {
	var n int
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM exit_processes
		WHERE status IN ('pending','in_progress') AND last_working_day <= ?
	`, dueWithin).Scan(&n).Error
	return n, err
}
