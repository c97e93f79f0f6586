package attendance

// MarkEntry is one row of the bulk marking grid: employee plus the status
// picked for the selected date.
type MarkEntry struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Status     string `json:"status" binding:"required"`
}

type BulkMarkRequest struct {
	Date    string      `json:"date" binding:"required"`
	Entries []MarkEntry `json:"entries" binding:"required,min=1,dive"`
}

type LogRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Date       string `json:"date" binding:"required"`
	Status     string `json:"status" binding:"required"`
	Remarks    string `json:"remarks"`
}

type AttendanceResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	Date         string `json:"date"`
	Status       string `json:"status"`
	Remarks      string `json:"remarks,omitempty"`
	CreatedAt    string `json:"created_at"`
}

// BulkMarkResult reports how each entry landed.
type BulkMarkResult struct {
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
}

// Summary is the per-employee monthly rollup shown next to the marking grid.
type Summary struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Present      int     `json:"present"`
	Absent       int     `json:"absent"`
	Leave        int     `json:"leave"`
	Total        int     `json:"total"`
	Rate         float64 `json:"rate"`
	LastUpdated  string  `json:"last_updated"`
}
