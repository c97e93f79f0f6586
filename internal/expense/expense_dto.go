package expense

import "github.com/luckycunningwolf/HRMS/internal/shared/istime"

type CreateExpenseRequest struct {
	EmployeeID  string  `json:"employee_id" binding:"required,uuid"`
	Category    string  `json:"category" binding:"required,oneof=travel food accommodation equipment other"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	ExpenseDate string  `json:"expense_date" binding:"required,datetime=2006-01-02"`
	Description string  `json:"description" binding:"max=2000"`
}

type RejectExpenseRequest struct {
	Reason string `json:"reason" binding:"required,min=3,max=2000"`
}

type ListFilter struct {
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
	Status     string `form:"status" binding:"omitempty,oneof=pending approved rejected"`
	Category   string `form:"category" binding:"omitempty,oneof=travel food accommodation equipment other"`
	Month      string `form:"month" binding:"omitempty,datetime=2006-01"`
}

// ApprovalDoc carries the reimbursement proof uploaded alongside an approval.
type ApprovalDoc struct {
	Name        string
	ContentType string
	Data        []byte
}

type ExpenseResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    string  `json:"employee_name"`
	Category        string  `json:"category"`
	Amount          float64 `json:"amount"`
	ExpenseDate     string  `json:"expense_date"`
	Description     string  `json:"description"`
	Status          string  `json:"status"`
	DecidedBy       *string `json:"decided_by,omitempty"`
	DecidedAt       *string `json:"decided_at,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	HasDocument     bool    `json:"has_document"`
	DocumentName    string  `json:"document_name,omitempty"`
	SubmittedAt     string  `json:"submitted_at"`
}

type ExpenseStats struct {
	Pending        int     `json:"pending"`
	Approved       int     `json:"approved"`
	Rejected       int     `json:"rejected"`
	PendingAmount  float64 `json:"pending_amount"`
	ApprovedAmount float64 `json:"approved_amount"`

	ByCategory map[string]float64 `json:"by_category"`
}

func mapToResponse(e *Expense) ExpenseResponse {
	resp := ExpenseResponse{
		ID:          e.ID.String(),
		EmployeeID:  e.EmployeeID.String(),
		Category:    e.Category,
		Amount:      e.Amount,
		ExpenseDate: e.ExpenseDate.Format("2006-01-02"),
		Description: e.Description,
		Status:      e.Status,
		HasDocument: len(e.ReimbursementDoc) > 0,
		SubmittedAt: istime.FormatDateTime(e.CreatedAt),
	}
	if e.Employee != nil {
		resp.EmployeeName = e.Employee.Name
	}
	if e.DecidedBy != nil {
		v := e.DecidedBy.String()
		resp.DecidedBy = &v
	}
	if e.DecidedAt != nil {
		v := istime.FormatDateTime(*e.DecidedAt)
		resp.DecidedAt = &v
	}
	resp.RejectionReason = e.RejectionReason
	if resp.HasDocument {
		resp.DocumentName = e.ReimbursementDocName
	}
	return resp
}

func mapToListResponse(items []Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(items))
	for i := range items {
		out = append(out, mapToResponse(&items[i]))
	}
	return out
}
