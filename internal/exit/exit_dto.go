package exit

import "github.com/luckycunningwolf/HRMS/internal/shared/istime"

type CreateExitRequest struct {
	EmployeeID      string `json:"employee_id" binding:"required,uuid"`
	ResignationDate string `json:"resignation_date" binding:"required,datetime=2006-01-02"`
	LastWorkingDay  string `json:"last_working_day" binding:"required,datetime=2006-01-02"`
	Reason          string `json:"reason" binding:"max=2000"`
}

type ClearanceRequest struct {
	Item  string `json:"item" binding:"required"`
	Value bool   `json:"value"`
}

type SettlementRequest struct {
	FinalSalary     float64 `json:"final_salary" binding:"gte=0"`
	Bonus           float64 `json:"bonus" binding:"gte=0"`
	LeaveEncashment float64 `json:"leave_encashment" binding:"gte=0"`
	Gratuity        float64 `json:"gratuity" binding:"gte=0"`
	Deductions      float64 `json:"deductions" binding:"gte=0"`
}

type StatusRequest struct {
	Status string `json:"status" binding:"required,oneof=in_progress completed rejected"`
}

type ListFilter struct {
	Status     string `form:"status" binding:"omitempty,oneof=pending in_progress completed rejected"`
	Department string `form:"department"`
}

type SettlementView struct {
	FinalSalary     float64 `json:"final_salary"`
	Bonus           float64 `json:"bonus"`
	LeaveEncashment float64 `json:"leave_encashment"`
	Gratuity        float64 `json:"gratuity"`
	Deductions      float64 `json:"deductions"`
	Total           float64 `json:"total"`
}

type ExitResponse struct {
	ID                string         `json:"id"`
	EmployeeID        string         `json:"employee_id"`
	EmployeeName      string         `json:"employee_name"`
	Department        string         `json:"department"`
	ResignationDate   string         `json:"resignation_date"`
	LastWorkingDay    string         `json:"last_working_day"`
	Reason            string         `json:"reason"`
	Status            string         `json:"status"`
	Clearances        Clearances     `json:"clearances"`
	ClearanceProgress int            `json:"clearance_progress"`
	Settlement        SettlementView `json:"settlement"`
	CompletedAt       *string        `json:"completed_at,omitempty"`
	CreatedAt         string         `json:"created_at"`
}

func mapToResponse(e *ExitProcess) ExitResponse {
	resp := ExitResponse{
		ID:                e.ID.String(),
		EmployeeID:        e.EmployeeID.String(),
		ResignationDate:   e.ResignationDate.Format("2006-01-02"),
		LastWorkingDay:    e.LastWorkingDay.Format("2006-01-02"),
		Reason:            e.Reason,
		Status:            e.Status,
		Clearances:        e.Clearances,
		ClearanceProgress: e.Clearances.Progress(),
		Settlement: SettlementView{
			FinalSalary:     e.Settlement.FinalSalary,
			Bonus:           e.Settlement.Bonus,
			LeaveEncashment: e.Settlement.LeaveEncashment,
			Gratuity:        e.Settlement.Gratuity,
			Deductions:      e.Settlement.Deductions,
			Total:           e.Settlement.Total(),
		},
		CreatedAt: istime.FormatDateTime(e.CreatedAt),
	}
	if e.Employee != nil {
		resp.EmployeeName = e.Employee.Name
		resp.Department = e.Employee.Department
	}
	if e.CompletedAt != nil {
		v := istime.FormatDateTime(*e.CompletedAt)
		resp.CompletedAt = &v
	}
	return resp
}

func mapToListResponse(items []ExitProcess) []ExitResponse {
	out := make([]ExitResponse, 0, len(items))
	for i := range items {
		out = append(out, mapToResponse(&items[i]))
	}
	return out
}
