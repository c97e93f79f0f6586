package user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userErrors "github.com/luckycunningwolf/HRMS/internal/user/errors"
)

//go:generate mockgen -source=user_repo.go -destination=mocks/mock_user_repo.go -package=mocks
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, u *UserProfile) error
	FindByID(ctx context.Context, id uuid.UUID) (*UserProfile, error)
	FindByEmail(ctx context.Context, email string) (*UserProfile, error)
	FindByEmployee(ctx context.Context, employeeID uuid.UUID) (*UserProfile, error)
	FindAll(ctx context.Context, f ListFilter) ([]UserProfile, error)
	Update(ctx context.Context, u *UserProfile) error
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

func (r *repository) Create(ctx context.Context, u *UserProfile) error {
	return r.conn(ctx).Create(u).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*UserProfile, error) {
	var u UserProfile
	err := r.conn(ctx).First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, userErrors.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*UserProfile, error) {
	var u UserProfile
	err := r.conn(ctx).First(&u, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, userErrors.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID uuid.UUID) (*UserProfile, error) {
	var u UserProfile
	err := r.conn(ctx).First(&u, "employee_id = ?", employeeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, userErrors.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindAll(ctx context.Context, f ListFilter) ([]UserProfile, error) {
	q := r.conn(ctx).Model(&UserProfile{})

	if f.Role != "" {
		q = q.Where("role = ?", f.Role)
	}
	if f.Active != "" {
		q = q.Where("is_active = ?", f.Active == "true")
	}
	if f.Unlinked {
		q = q.Where("employee_id IS NULL")
	}

	var items []UserProfile
	if err := q.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) Update(ctx context.Context, u *UserProfile) error {
	return r.conn(ctx).Save(u).Error
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID uuid.UUID) (bool, error) {
	var n int64
	err := r.conn(ctx).Table("employees").
		Where("id = ? AND deleted_at IS NULL", employeeID).
		Count(&n).Error
	return n > 0, err
}
