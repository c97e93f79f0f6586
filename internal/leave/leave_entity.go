package leave

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

const (
	TypeSick   = "sick"
	TypeCasual = "casual"
	TypeAnnual = "annual"
)

type LeaveRequest struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"column:employee_id;type:uuid;not null;index:idx_leave_employee_dates"`

	LeaveType string    `gorm:"column:leave_type;type:varchar(30);not null;default:'sick'"`
	StartDate time.Time `gorm:"column:start_date;type:date;not null;index:idx_leave_employee_dates"`
	EndDate   time.Time `gorm:"column:end_date;type:date;not null"`
	TotalDays int       `gorm:"column:total_days;type:int;not null;default:1"`
	Reason    string    `gorm:"column:reason;type:text"`

	Status          string     `gorm:"column:status;type:varchar(20);not null;default:'pending';index"`
	DecidedBy       *uuid.UUID `gorm:"column:decided_by;type:uuid"`
	DecidedAt       *time.Time `gorm:"column:decided_at"`
	RejectionReason *string    `gorm:"column:rejection_reason;type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Employee *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

type EmployeeRef struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"column:name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}

func validLeaveType(v string) bool {
	switch v {
	case TypeSick, TypeCasual, TypeAnnual:
		return true
	}
	return false
}
