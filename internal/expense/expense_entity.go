package expense

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
	CategoryTravel        = "travel"
	CategoryFood          = "food"
	CategoryAccommodation = "accommodation"
	CategoryEquipment     = "equipment"
	CategoryOther         = "other"
)

type Expense struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"column:employee_id;type:uuid;not null;index"`

	Category    string    `gorm:"column:category;type:varchar(30);not null;default:'other'"`
	Amount      float64   `gorm:"column:amount;type:numeric(12,2);not null"`
	ExpenseDate time.Time `gorm:"column:expense_date;type:date;not null"`
	Description string    `gorm:"column:description;type:text"`

	Status          string     `gorm:"column:status;type:varchar(20);not null;default:'pending';index"`
	DecidedBy       *uuid.UUID `gorm:"column:decided_by;type:uuid"`
	DecidedAt       *time.Time `gorm:"column:decided_at"`
	RejectionReason *string    `gorm:"column:rejection_reason;type:text"`

	ReimbursementDocName string `gorm:"column:reimbursement_doc_name;type:varchar(255)"`
	ReimbursementDocType string `gorm:"column:reimbursement_doc_type;type:varchar(100)"`
	ReimbursementDoc     []byte `gorm:"column:reimbursement_doc;type:bytea"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Employee *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Expense) TableName() string {
	return "expenses"
}

type EmployeeRef struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"column:name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
