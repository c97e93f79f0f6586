package exit

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	exitErrors "github.com/luckycunningwolf/HRMS/internal/exit/errors"
)

//go:generate mockgen -source=exit_repo.go -destination=mocks/mock_exit_repo.go -package=mocks
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *ExitProcess) error
	FindByID(ctx context.Context, id uuid.UUID) (*ExitProcess, error)
	FindByEmployee(ctx context.Context, employeeID uuid.UUID) (*ExitProcess, error)
	FindAll(ctx context.Context, f ListFilter) ([]ExitProcess, error)
	Update(ctx context.Context, e *ExitProcess) error
	EmployeeByID(ctx context.Context, employeeID uuid.UUID) (*EmployeeRef, error)
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

func (r *repository) Create(ctx context.Context, e *ExitProcess) error {
	return r.conn(ctx).Create(e).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*ExitProcess, error) {
	var e ExitProcess
	err := r.conn(ctx).Preload("Employee").First(&e, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, exitErrors.ErrExitNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID uuid.UUID) (*ExitProcess, error) {
	var e ExitProcess
	err := r.conn(ctx).Preload("Employee").
		First(&e, "employee_id = ?", employeeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, exitErrors.ErrExitNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindAll(ctx context.Context, f ListFilter) ([]ExitProcess, error) {
	q := r.conn(ctx).Model(&ExitProcess{}).Preload("Employee")

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Department != "" {
		q = q.Joins("JOIN employees ON employees.id = exit_processes.employee_id").
			Where("employees.department = ?", f.Department)
	}

	var items []ExitProcess
	if err := q.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) Update(ctx context.Context, e *ExitProcess) error {
	return r.conn(ctx).Save(e).Error
}

func (r *repository) EmployeeByID(ctx context.Context, employeeID uuid.UUID) (*EmployeeRef, error) {
	var ref EmployeeRef
	err := r.conn(ctx).Table("employees").
		Where("id = ? AND deleted_at IS NULL", employeeID).
		First(&ref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, exitErrors.ErrEmployeeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ref, nil
}
