package employee

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context, filter ListFilter) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindOptions(ctx context.Context) ([]Option, error)
	DistinctValues(ctx context.Context, column string) ([]string, error)
	Update(ctx context.Context, empl *Employee) error
	Deactivate(ctx context.Context, id string) error
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

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.conn(ctx).Create(empl).Error
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Employee, error) {
	q := r.conn(ctx).Model(&Employee{})
	if filter.Department != "" {
		q = q.Where("department = ?", filter.Department)
	}
	if filter.Role != "" {
		q = q.Where("role = ?", filter.Role)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("name ILIKE ? OR email ILIKE ?", pattern, pattern)
	}
	if filter.ActiveOnly {
		q = q.Where("is_active = true")
	}

	var employees []Employee
	err := q.Order("name ASC").Find(&employees).Error
	return employees, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.conn(ctx).First(&empl, "id = ?", id).Error
	return &empl, err
}

func (r *repository) FindOptions(ctx context.Context) ([]Option, error) {
	var options []Option
	err := r.conn(ctx).
		Model(&Employee{}).
		Select("id::text AS id, name").
		Where("is_active = true").
		Order("name ASC").
		Scan(&options).Error
	return options, err
}

func (r *repository) DistinctValues(ctx context.Context, column string) ([]string, error) {
	var values []string
	err := r.conn(ctx).
		Model(&Employee{}).
		Distinct(column).
		Where(column+" <> ''").
		Order(column).
		Pluck(column, &values).Error
	return values, err
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.conn(ctx).Save(empl).Error
}

// Deactivate flips the is_active flag; the row itself stays for history.
func (r *repository) Deactivate(ctx context.Context, id string) error {
	return r.conn(ctx).
		Model(&Employee{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}
