package goal

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	goalErrors "github.com/luckycunningwolf/HRMS/internal/goal/errors"
)

//go:generate mockgen -source=goal_repo.go -destination=mocks/mock_goal_repo.go -package=mocks
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateGoal(ctx context.Context, g *Goal) error
	CreateKPI(ctx context.Context, k *KPI) error
	FindGoal(ctx context.Context, id uuid.UUID) (*Goal, error)
	FindKPI(ctx context.Context, id uuid.UUID) (*KPI, error)
	FindGoals(ctx context.Context, f ListFilter) ([]Goal, error)
	FindKPIs(ctx context.Context, f ListFilter) ([]KPI, error)
	UpdateGoal(ctx context.Context, g *Goal) error
	UpdateKPI(ctx context.Context, k *KPI) error
	DeleteGoal(ctx context.Context, id uuid.UUID) error
	DeleteKPI(ctx context.Context, id uuid.UUID) error
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

func (r *repository) CreateGoal(ctx context.Context, g *Goal) error {
	return r.conn(ctx).Create(g).Error
}

func (r *repository) CreateKPI(ctx context.Context, k *KPI) error {
	return r.conn(ctx).Create(k).Error
}

func (r *repository) FindGoal(ctx context.Context, id uuid.UUID) (*Goal, error) {
	var g Goal
	err := r.conn(ctx).Preload("Employee").First(&g, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, goalErrors.ErrGoalNotFound
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *repository) FindKPI(ctx context.Context, id uuid.UUID) (*KPI, error) {
	var k KPI
	err := r.conn(ctx).Preload("Employee").First(&k, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, goalErrors.ErrGoalNotFound
	}
	if err != nil {
		return nil, err
	}
	return &k, nil
}

func (r *repository) FindGoals(ctx context.Context, f ListFilter) ([]Goal, error) {
	var items []Goal
	err := r.applyFilter(r.conn(ctx).Model(&Goal{}), f).Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) FindKPIs(ctx context.Context, f ListFilter) ([]KPI, error) {
	var items []KPI
	err := r.applyFilter(r.conn(ctx).Model(&KPI{}), f).Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) applyFilter(q *gorm.DB, f ListFilter) *gorm.DB {
	q = q.Preload("Employee")
	if f.EmployeeID != "" {
		q = q.Where("employee_id = ?", f.EmployeeID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	return q.Order("end_date ASC")
}

func (r *repository) UpdateGoal(ctx context.Context, g *Goal) error {
	return r.conn(ctx).Save(g).Error
}

func (r *repository) UpdateKPI(ctx context.Context, k *KPI) error {
	return r.conn(ctx).Save(k).Error
}

func (r *repository) DeleteGoal(ctx context.Context, id uuid.UUID) error {
	res := r.conn(ctx).Delete(&Goal{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return goalErrors.ErrGoalNotFound
	}
	return nil
}

func (r *repository) DeleteKPI(ctx context.Context, id uuid.UUID) error {
	res := r.conn(ctx).Delete(&KPI{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return goalErrors.ErrGoalNotFound
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
