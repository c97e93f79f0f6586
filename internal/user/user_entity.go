package user

import (
	"time"

	"github.com/google/uuid"

	"github.com/luckycunningwolf/HRMS/internal/rbac"
)

type UserProfile struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex:uq_user_email"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null"`
	FullName     string    `gorm:"column:full_name;type:varchar(255);not null"`

	Role       string     `gorm:"column:role;type:varchar(20);not null;default:'employee';index"`
	EmployeeID *uuid.UUID `gorm:"column:employee_id;type:uuid;uniqueIndex:uq_user_employee"`
	IsActive   bool       `gorm:"column:is_active;default:true;index"`

	LastLoginAt *time.Time `gorm:"column:last_login_at"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

func validRole(role string) bool {
	return role == rbac.RoleAdmin || role == rbac.RoleEmployee
}
