package performance

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"column:employee_id;type:uuid;not null;index"`

	ReviewPeriod string     `gorm:"column:review_period;type:varchar(40);not null"`
	ReviewDate   time.Time  `gorm:"column:review_date;type:date;not null"`
	ReviewerID   *uuid.UUID `gorm:"column:reviewer_id;type:uuid"`

	OverallRating         float64 `gorm:"column:overall_rating;type:numeric(3,2);not null"`
	TechnicalSkills       float64 `gorm:"column:technical_skills;type:numeric(3,2);not null"`
	Communication         float64 `gorm:"column:communication;type:numeric(3,2);not null"`
	Teamwork              float64 `gorm:"column:teamwork;type:numeric(3,2);not null"`
	Leadership            float64 `gorm:"column:leadership;type:numeric(3,2);not null"`
	ProblemSolving        float64 `gorm:"column:problem_solving;type:numeric(3,2);not null"`
	AttendancePunctuality float64 `gorm:"column:attendance_punctuality;type:numeric(3,2);not null"`
	GoalsAchievement      int     `gorm:"column:goals_achievement;type:int;not null;default:0"`

	Strengths        string `gorm:"column:strengths;type:text"`
	AreasToImprove   string `gorm:"column:areas_to_improve;type:text"`
	ReviewerComments string `gorm:"column:reviewer_comments;type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Employee *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Review) TableName() string {
	return "performance_reviews"
}

type EmployeeRef struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"column:name"`
	Department string    `gorm:"column:department"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
