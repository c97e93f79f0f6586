package performance

import "github.com/luckycunningwolf/HRMS/internal/shared/istime"

type CreateReviewRequest struct {
	EmployeeID   string `json:"employee_id" binding:"required,uuid"`
	ReviewPeriod string `json:"review_period" binding:"required,max=40"`
	ReviewDate   string `json:"review_date" binding:"required,datetime=2006-01-02"`

	OverallRating         float64 `json:"overall_rating" binding:"required,gte=1,lte=5"`
	TechnicalSkills       float64 `json:"technical_skills" binding:"required,gte=1,lte=5"`
	Communication         float64 `json:"communication" binding:"required,gte=1,lte=5"`
	Teamwork              float64 `json:"teamwork" binding:"required,gte=1,lte=5"`
	Leadership            float64 `json:"leadership" binding:"required,gte=1,lte=5"`
	ProblemSolving        float64 `json:"problem_solving" binding:"required,gte=1,lte=5"`
	AttendancePunctuality float64 `json:"attendance_punctuality" binding:"required,gte=1,lte=5"`
	GoalsAchievement      int     `json:"goals_achievement" binding:"gte=0,lte=100"`

	Strengths        string `json:"strengths" binding:"max=4000"`
	AreasToImprove   string `json:"areas_to_improve" binding:"max=4000"`
	ReviewerComments string `json:"reviewer_comments" binding:"max=4000"`
}

type UpdateReviewRequest struct {
	ReviewPeriod string `json:"review_period" binding:"omitempty,max=40"`
	ReviewDate   string `json:"review_date" binding:"omitempty,datetime=2006-01-02"`

	OverallRating         *float64 `json:"overall_rating" binding:"omitempty,gte=1,lte=5"`
	TechnicalSkills       *float64 `json:"technical_skills" binding:"omitempty,gte=1,lte=5"`
	Communication         *float64 `json:"communication" binding:"omitempty,gte=1,lte=5"`
	Teamwork              *float64 `json:"teamwork" binding:"omitempty,gte=1,lte=5"`
	Leadership            *float64 `json:"leadership" binding:"omitempty,gte=1,lte=5"`
	ProblemSolving        *float64 `json:"problem_solving" binding:"omitempty,gte=1,lte=5"`
	AttendancePunctuality *float64 `json:"attendance_punctuality" binding:"omitempty,gte=1,lte=5"`
	GoalsAchievement      *int     `json:"goals_achievement" binding:"omitempty,gte=0,lte=100"`

	Strengths        *string `json:"strengths" binding:"omitempty,max=4000"`
	AreasToImprove   *string `json:"areas_to_improve" binding:"omitempty,max=4000"`
	ReviewerComments *string `json:"reviewer_comments" binding:"omitempty,max=4000"`
}

type ListFilter struct {
	EmployeeID   string `form:"employee_id" binding:"omitempty,uuid"`
	ReviewPeriod string `form:"review_period"`
	Department   string `form:"department"`
}

type ReviewResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Department   string `json:"department"`
	ReviewPeriod string `json:"review_period"`
	ReviewDate   string `json:"review_date"`

	OverallRating         float64 `json:"overall_rating"`
	TechnicalSkills       float64 `json:"technical_skills"`
	Communication         float64 `json:"communication"`
	Teamwork              float64 `json:"teamwork"`
	Leadership            float64 `json:"leadership"`
	ProblemSolving        float64 `json:"problem_solving"`
	AttendancePunctuality float64 `json:"attendance_punctuality"`
	GoalsAchievement      int     `json:"goals_achievement"`

	Strengths        string `json:"strengths"`
	AreasToImprove   string `json:"areas_to_improve"`
	ReviewerComments string `json:"reviewer_comments"`
	CreatedAt        string `json:"created_at"`
}

type RatingBand struct {
	Excellent int `json:"excellent"`
	Good      int `json:"good"`
	Average   int `json:"average"`
	Poor      int `json:"poor"`
}

type PerformanceStats struct {
	TotalReviews      int        `json:"total_reviews"`
	AverageRating     float64    `json:"average_rating"`
	AverageGoals      float64    `json:"average_goals_achievement"`
	Distribution      RatingBand `json:"distribution"`
	ReviewedEmployees int        `json:"reviewed_employees"`
}

func mapToResponse(r *Review) ReviewResponse {
	resp := ReviewResponse{
		ID:           r.ID.String(),
		EmployeeID:   r.EmployeeID.String(),
		ReviewPeriod: r.ReviewPeriod,
		ReviewDate:   r.ReviewDate.Format("2006-01-02"),

		OverallRating:         r.OverallRating,
		TechnicalSkills:       r.TechnicalSkills,
		Communication:         r.Communication,
		Teamwork:              r.Teamwork,
		Leadership:            r.Leadership,
		ProblemSolving:        r.ProblemSolving,
		AttendancePunctuality: r.AttendancePunctuality,
		GoalsAchievement:      r.GoalsAchievement,

		Strengths:        r.Strengths,
		AreasToImprove:   r.AreasToImprove,
		ReviewerComments: r.ReviewerComments,
		CreatedAt:        istime.FormatDateTime(r.CreatedAt),
	}
	if r.Employee != nil {
		resp.EmployeeName = r.Employee.Name
		resp.Department = r.Employee.Department
	}
	return resp
}

func mapToListResponse(items []Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(items))
	for i := range items {
		out = append(out, mapToResponse(&items[i]))
	}
	return out
}
