package goal

import (
	"math"
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusPaused    = "paused"
	StatusCancelled = "cancelled"
)

const (
	KindGoal = "goal"
	KindKPI  = "kpi"
)

// Goal rows live in two identically shaped tables. Goals are free-form
// objectives; KPIs are the measurable subset tracked on review dashboards.
type Goal struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"column:employee_id;type:uuid;not null;index"`

	Title        string    `gorm:"column:title;type:varchar(255);not null"`
	Description  string    `gorm:"column:description;type:text"`
	Category     string    `gorm:"column:category;type:varchar(100)"`
	CurrentValue float64   `gorm:"column:current_value;type:numeric(12,2);not null;default:0"`
	TargetValue  float64   `gorm:"column:target_value;type:numeric(12,2);not null"`
	Unit         string    `gorm:"column:unit;type:varchar(30)"`
	StartDate    time.Time `gorm:"column:start_date;type:date;not null"`
	EndDate      time.Time `gorm:"column:end_date;type:date;not null"`
	Status       string    `gorm:"column:status;type:varchar(20);not null;default:'active'"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Employee *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Goal) TableName() string {
	return "goals"
}

type KPI Goal

func (KPI) TableName() string {
	return "kpis"
}

type EmployeeRef struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"column:name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}

func validStatus(v string) bool {
	switch v {
	case StatusActive, StatusCompleted, StatusPaused, StatusCancelled:
		return true
	}
	return false
}

// ProgressPct returns current/target as a whole percentage clamped to
// [0,100]. A non-positive target always reads as 0.
func ProgressPct(current, target float64) int {
	if target <= 0 {
		return 0
	}
	pct := int(math.Round(current / target * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
