package attendance

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, record *Attendance) error
	FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)
	Update(ctx context.Context, record *Attendance) error
	FindRange(ctx context.Context, from, to time.Time) ([]Attendance, error)
	FindRangeByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]Attendance, error)
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

func (r *repository) Create(ctx context.Context, record *Attendance) error {
	return r.conn(ctx).Create(record).Error
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
	var record Attendance
	err := r.conn(ctx).
		Where("employee_id = ?", employeeID).
		Where("date = ?", date).
		First(&record).Error
	return &record, err
}

func (r *repository) Update(ctx context.Context, record *Attendance) error {
	return r.conn(ctx).Save(record).Error
}

// FindRange returns records with date in [from, to), joined with the
// employee name for display.
func (r *repository) FindRange(ctx context.Context, from, to time.Time) ([]Attendance, error) {
	var records []Attendance
	err := r.conn(ctx).
		Preload("Employee").
		Where("date >= ? AND date < ?", from, to).
		Order("date ASC").
		Find(&records).Error
	return records, err
}

func (r *repository) FindRangeByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]Attendance, error) {
	var records []Attendance
	err := r.conn(ctx).
		Preload("Employee").
		Where("employee_id = ?", employeeID).
		Where("date >= ? AND date < ?", from, to).
		Order("date ASC").
		Find(&records).Error
	return records, err
}
