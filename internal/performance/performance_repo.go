package performance

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	perfErrors "github.com/luckycunningwolf/HRMS/internal/performance/errors"
)

//go:generate mockgen -source=performance_repo.go -destination=mocks/mock_performance_repo.go -package=mocks
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, r *Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*Review, error)
	FindAll(ctx context.Context, f ListFilter) ([]Review, error)
	CountForPeriod(ctx context.Context, employeeID uuid.UUID, period string) (int64, error)
	Update(ctx context.Context, r *Review) error
	Delete(ctx context.Context, id uuid.UUID) error
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

func (r *repository) Create(ctx context.Context, rev *Review) error {
	return r.conn(ctx).Create(rev).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Review, error) {
	var rev Review
	err := r.conn(ctx).Preload("Employee").First(&rev, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, perfErrors.ErrReviewNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rev, nil
}

func (r *repository) FindAll(ctx context.Context, f ListFilter) ([]Review, error) {
	q := r.conn(ctx).Model(&Review{}).Preload("Employee")

	if f.EmployeeID != "" {
		q = q.Where("employee_id = ?", f.EmployeeID)
	}
	if f.ReviewPeriod != "" {
		q = q.Where("review_period = ?", f.ReviewPeriod)
	}
	if f.Department != "" {
		q = q.Joins("JOIN employees ON employees.id = performance_reviews.employee_id").
			Where("employees.department = ?", f.Department)
	}

	var items []Review
	if err := q.Order("review_date DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) CountForPeriod(ctx context.Context, employeeID uuid.UUID, period string) (int64, error) {
	var n int64
	err := r.conn(ctx).Model(&Review{}).
		Where("employee_id = ? AND review_period = ?", employeeID, period).
		Count(&n).Error
	return n, err
}

func (r *repository) Update(ctx context.Context, rev *Review) error {
	return r.conn(ctx).Save(rev).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.conn(ctx).Delete(&Review{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return perfErrors.ErrReviewNotFound
	}
	return nil
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID uuid.UUID) (bool, error) {
	var n int64
	err := r.conn(ctx).Table("employees").
		Where("id = ? AND deleted_at IS NULL", employeeID).
		Count(&n).Error
	return n > 0, err
}
