package exit

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusRejected   = "rejected"
)

// Clearances tracks the sign-offs an exit needs before settlement. All
// eight must be true for the process to complete.
type Clearances struct {
	IT                bool `json:"it"`
	HR                bool `json:"hr"`
	Finance           bool `json:"finance"`
	Admin             bool `json:"admin"`
	ProjectHandover   bool `json:"project_handover"`
	AssetReturn       bool `json:"asset_return"`
	KnowledgeTransfer bool `json:"knowledge_transfer"`
	ExitInterview     bool `json:"exit_interview"`
}

const clearanceCount = 8

func (c Clearances) Done() int {
	n := 0
	for _, v := range []bool{c.IT, c.HR, c.Finance, c.Admin, c.ProjectHandover, c.AssetReturn, c.KnowledgeTransfer, c.ExitInterview} {
		if v {
			n++
		}
	}
	return n
}

// Progress is the completed share as a percentage, rounded down.
func (c Clearances) Progress() int {
	return c.Done() * 100 / clearanceCount
}

func (c Clearances) AllDone() bool {
	return c.Done() == clearanceCount
}

func (c *Clearances) Set(name string, value bool) bool {
	switch name {
	case "it":
		c.IT = value
	case "hr":
		c.HR = value
	case "finance":
		c.Finance = value
	case "admin":
		c.Admin = value
	case "project_handover":
		c.ProjectHandover = value
	case "asset_return":
		c.AssetReturn = value
	case "knowledge_transfer":
		c.KnowledgeTransfer = value
	case "exit_interview":
		c.ExitInterview = value
	default:
		return false
	}
	return true
}

func (c Clearances) Value() (driver.Value, error) {
	return json.Marshal(c)
}

func (c *Clearances) Scan(value any) error {
	if value == nil {
		*c = Clearances{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	default:
		return fmt.Errorf("unsupported clearances type %T", value)
	}
}

type Settlement struct {
	FinalSalary     float64 `json:"final_salary"`
	Bonus           float64 `json:"bonus"`
	LeaveEncashment float64 `json:"leave_encashment"`
	Gratuity        float64 `json:"gratuity"`
	Deductions      float64 `json:"deductions"`
}

func (s Settlement) Total() float64 {
	return s.FinalSalary + s.Bonus + s.LeaveEncashment + s.Gratuity - s.Deductions
}

func (s Settlement) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *Settlement) Scan(value any) error {
	if value == nil {
		*s = Settlement{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("unsupported settlement type %T", value)
	}
}

type ExitProcess struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_exit_employee"`

	ResignationDate time.Time `gorm:"column:resignation_date;type:date;not null"`
	LastWorkingDay  time.Time `gorm:"column:last_working_day;type:date;not null"`
	Reason          string    `gorm:"column:reason;type:text"`

	Status     string     `gorm:"column:status;type:varchar(20);not null;default:'pending';index"`
	Clearances Clearances `gorm:"column:clearances;type:jsonb"`
	Settlement Settlement `gorm:"column:settlement;type:jsonb"`

	CompletedAt *time.Time `gorm:"column:completed_at"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Employee *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (ExitProcess) TableName() string {
	return "exit_processes"
}

type EmployeeRef struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"column:name"`
	Department string    `gorm:"column:department"`
	Salary     float64   `gorm:"column:salary"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
