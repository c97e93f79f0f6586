package goal

import "github.com/luckycunningwolf/HRMS/internal/shared/istime"

type CreateGoalRequest struct {
	EmployeeID  string  `json:"employee_id" binding:"required,uuid"`
	Kind        string  `json:"kind" binding:"required,oneof=goal kpi"`
	Title       string  `json:"title" binding:"required,max=255"`
	Description string  `json:"description" binding:"max=2000"`
	Category    string  `json:"category" binding:"max=100"`
	TargetValue float64 `json:"target_value" binding:"required"`
	Unit        string  `json:"unit" binding:"max=30"`
	StartDate   string  `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate     string  `json:"end_date" binding:"required,datetime=2006-01-02"`
}

type UpdateProgressRequest struct {
	CurrentValue float64 `json:"current_value" binding:"min=0"`
	Status       string  `json:"status" binding:"omitempty,oneof=active completed paused cancelled"`
}

type ListFilter struct {
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
	Kind       string `form:"kind" binding:"omitempty,oneof=goal kpi"`
	Status     string `form:"status" binding:"omitempty,oneof=active completed paused cancelled"`
	Category   string `form:"category" binding:"omitempty,max=100"`
}

type GoalResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Kind         string  `json:"kind"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	CurrentValue float64 `json:"current_value"`
	TargetValue  float64 `json:"target_value"`
	Unit         string  `json:"unit"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Progress     int     `json:"progress"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
}

type GoalStats struct {
	Total           int     `json:"total"`
	Active          int     `json:"active"`
	Completed       int     `json:"completed"`
	Paused          int     `json:"paused"`
	Cancelled       int     `json:"cancelled"`
	AverageProgress float64 `json:"average_progress"`
}

func mapToResponse(g *Goal, kind string) GoalResponse {
	resp := GoalResponse{
		ID:           g.ID.String(),
		EmployeeID:   g.EmployeeID.String(),
		Kind:         kind,
		Title:        g.Title,
		Description:  g.Description,
		Category:     g.Category,
		CurrentValue: g.CurrentValue,
		TargetValue:  g.TargetValue,
		Unit:         g.Unit,
		StartDate:    g.StartDate.Format("2006-01-02"),
		EndDate:      g.EndDate.Format("2006-01-02"),
		Progress:     ProgressPct(g.CurrentValue, g.TargetValue),
		Status:       g.Status,
		CreatedAt:    istime.FormatDateTime(g.CreatedAt),
	}
	if g.Employee != nil {
		resp.EmployeeName = g.Employee.Name
	}
	return resp
}
