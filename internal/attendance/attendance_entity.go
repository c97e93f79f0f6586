package attendance

import (
	"time"

	"github.com/google/uuid"
)

// Status values are a closed set; the free-text statuses of the legacy data
// are normalized at the boundary.
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
	StatusLeave   = "Leave"
)

// Attendance holds one record per employee per day, enforced by the unique
// index. The marking flow still tolerates a racing duplicate insert by
// falling back to an update.
type Attendance struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_attendance_employee_date"`
	Date       time.Time `gorm:"column:date;type:date;not null;uniqueIndex:uq_attendance_employee_date;index"`
	Status     string    `gorm:"column:status;type:varchar(20);not null"`
	Remarks    string    `gorm:"column:remarks;type:text"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`

	Employee *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Attendance) TableName() string {
	return "attendance"
}

type EmployeeRef struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"column:name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}

func validStatus(status string) bool {
	switch status {
	case StatusPresent, StatusAbsent, StatusLeave:
		return true
	}
	return false
}
