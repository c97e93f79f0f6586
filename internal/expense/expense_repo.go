package expense

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	expenseErrors "github.com/luckycunningwolf/HRMS/internal/expense/errors"
	"github.com/luckycunningwolf/HRMS/internal/shared/istime"
)

//go:generate mockgen -source=expense_repo.go -destination=mocks/mock_expense_repo.go -package=mocks
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Expense) error
	FindByID(ctx context.Context, id uuid.UUID) (*Expense, error)
	FindAll(ctx context.Context, f ListFilter) ([]Expense, error)
	Update(ctx context.Context, e *Expense) error
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

func (r *repository) Create(ctx context.Context, e *Expense) error {
	return r.conn(ctx).Create(e).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Expense, error) {
	var e Expense
	err := r.conn(ctx).Preload("Employee").First(&e, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, expenseErrors.ErrExpenseNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindAll(ctx context.Context, f ListFilter) ([]Expense, error) {
	// Document bytes are omitted from listings; they are fetched one at a
	// time through the download endpoint.
	q := r.conn(ctx).Model(&Expense{}).
		Omit("reimbursement_doc").
		Preload("Employee")

	if f.EmployeeID != "" {
		q = q.Where("employee_id = ?", f.EmployeeID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Month != "" {
		if from, to, err := istime.MonthWindow(f.Month); err == nil {
			q = q.Where("expense_date >= ? AND expense_date < ?", from, to)
		}
	}

	var items []Expense
	if err := q.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) Update(ctx context.Context, e *Expense) error {
	return r.conn(ctx).Save(e).Error
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID uuid.UUID) (bool, error) {
	var n int64
	err := r.conn(ctx).Table("employees").
		Where("id = ? AND deleted_at IS NULL", employeeID).
		Count(&n).Error
	return n > 0, err
}
