package employee

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BankDetails is stored as a single JSONB column; the recruitment form
// submits it together with the employee row in one insert.
type BankDetails struct {
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	IFSC          string `json:"ifsc"`
}

func (b BankDetails) Value() (driver.Value, error) {
	return json.Marshal(b)
}

func (b *BankDetails) Scan(value any) error {
	if value == nil {
		*b = BankDetails{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, b)
	case string:
		return json.Unmarshal([]byte(v), b)
	default:
		return fmt.Errorf("unsupported bank details type %T", value)
	}
}

type Employee struct {
	ID               uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name             string    `gorm:"column:name;type:varchar(255);not null"`
	Email            string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex:uq_employee_email"`
	Phone            string    `gorm:"column:phone;type:varchar(30)"`
	Role             string    `gorm:"column:role;type:varchar(100);index"`
	Department       string    `gorm:"column:department;type:varchar(100);index"`
	Salary           float64   `gorm:"column:salary;type:numeric(12,2);default:0"`
	JoiningDate      time.Time `gorm:"column:joining_date;type:date;not null"`
	Address          string    `gorm:"column:address;type:text"`
	EmergencyContact string    `gorm:"column:emergency_contact;type:varchar(100)"`
	PAN              string    `gorm:"column:pan;type:varchar(20)"`
	Aadhar           string    `gorm:"column:aadhar;type:varchar(20)"`

	BankDetails BankDetails `gorm:"column:bank_details;type:jsonb"`

	IsActive  bool `gorm:"column:is_active;default:true;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}
