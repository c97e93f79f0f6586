package leave

import (
	"time"

	"github.com/luckycunningwolf/HRMS/internal/shared/istime"
)

type CreateLeaveRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	LeaveType  string `json:"leave_type" binding:"required,oneof=sick casual annual"`
	StartDate  string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate    string `json:"end_date" binding:"required,datetime=2006-01-02"`
	Reason     string `json:"reason" binding:"max=2000"`
}

type RejectLeaveRequest struct {
	Reason string `json:"reason" binding:"required,min=3,max=2000"`
}

type ListFilter struct {
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
	Status     string `form:"status" binding:"omitempty,oneof=pending approved rejected"`
	LeaveType  string `form:"leave_type" binding:"omitempty,oneof=sick casual annual"`
	From       string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To         string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

type LeaveResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    string  `json:"employee_name"`
	LeaveType       string  `json:"leave_type"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	TotalDays       int     `json:"total_days"`
	Reason          string  `json:"reason"`
	Status          string  `json:"status"`
	DecidedBy       *string `json:"decided_by,omitempty"`
	DecidedAt       *string `json:"decided_at,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	AppliedAt       string  `json:"applied_at"`
}

type LeaveStats struct {
	Pending      int            `json:"pending"`
	Approved     int            `json:"approved"`
	Rejected     int            `json:"rejected"`
	DaysApproved int            `json:"days_approved"`
	ByType       map[string]int `json:"by_type"`
}

func mapToResponse(l *LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:         l.ID.String(),
		EmployeeID: l.EmployeeID.String(),
		LeaveType:  l.LeaveType,
		StartDate:  l.StartDate.Format("2006-01-02"),
		EndDate:    l.EndDate.Format("2006-01-02"),
		TotalDays:  l.TotalDays,
		Reason:     l.Reason,
		Status:     l.Status,
		AppliedAt:  istime.FormatDateTime(l.CreatedAt),
	}
	if l.Employee != nil {
		resp.EmployeeName = l.Employee.Name
	}
	if l.DecidedBy != nil {
		v := l.DecidedBy.String()
		resp.DecidedBy = &v
	}
	if l.DecidedAt != nil {
		v := istime.FormatDateTime(*l.DecidedAt)
		resp.DecidedAt = &v
	}
	resp.RejectionReason = l.RejectionReason
	return resp
}

func mapToListResponse(items []LeaveRequest) []LeaveResponse {
	out := make([]LeaveResponse, 0, len(items))
	for i := range items {
		out = append(out, mapToResponse(&items[i]))
	}
	return out
}

// TotalDays is inclusive of both endpoints.
func totalDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
