package leave

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	leaveErrors "github.com/luckycunningwolf/HRMS/internal/leave/errors"
)

//go:generate mockgen -source=leave_repo.go -destination=mocks/mock_leave_repo.go -package=mocks
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *LeaveRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*LeaveRequest, error)
	FindAll(ctx context.Context, f ListFilter) ([]LeaveRequest, error)
	FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]LeaveRequest, error)
	Update(ctx context.Context, l *LeaveRequest) error
	CountOverlapping(ctx context.Context, employeeID uuid.UUID, start, end time.Time) (int64, error)
	EmployeeExists(ctx context.Context, employeeID uuid.UUID) (bool, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

// conn returns the tx-bound handle when the repository was derived through
// WithTx, so the statements land inside the caller's transaction.
func (r *repository) conn(ctx context.Context) *gorm.DB {
	if r.tx == nil {
		return r.db.WithContext(ctx)
	}
	db := r.db.Session(&gorm.Session{Context: ctx, NewDB: true})
	db.Statement.ConnPool = r.tx
	return db
}

func (r *repository) Create(ctx context.Context, l *LeaveRequest) error {
	return r.conn(ctx).Create(l).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*LeaveRequest, error) {
	var l LeaveRequest
	err := r.conn(ctx).Preload("Employee").First(&l, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, leaveErrors.ErrLeaveNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) FindAll(ctx context.Context, f ListFilter) ([]LeaveRequest, error) {
	q := r.conn(ctx).Model(&LeaveRequest{}).Preload("Employee")

	if f.EmployeeID != "" {
		q = q.Where("employee_id = ?", f.EmployeeID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.LeaveType != "" {
		q = q.Where("leave_type = ?", f.LeaveType)
	}
	if f.From != "" {
		q = q.Where("end_date >= ?", f.From)
	}
	if f.To != "" {
		q = q.Where("start_date <= ?", f.To)
	}

	var items []LeaveRequest
	if err := q.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]LeaveRequest, error) {
	var items []LeaveRequest
	err := r.conn(ctx).Preload("Employee").
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) Update(ctx context.Context, l *LeaveRequest) error {
	return r.conn(ctx).Save(l).Error
}

func (r *repository) CountOverlapping(ctx context.Context, employeeID uuid.UUID, start, end time.Time) (int64, error) {
	var n int64
	err := r.conn(ctx).Model(&LeaveRequest{}).
		Where("employee_id = ?", employeeID).
		Where("status <> ?", StatusRejected).
		Where("start_date <= ? AND end_date >= ?", end, start).
		Count(&n).Error
	return n, err
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID uuid.UUID) (bool, error) {
	var n int64
	err := r.conn(ctx).Table("employees").
		Where("id = ? AND deleted_at IS NULL", employeeID).
		Count(&n).Error
	return n > 0, err
}
