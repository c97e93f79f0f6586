package dashboard

type QuickStats struct {
	TotalEmployees  int     `json:"total_employees"`
	ActiveEmployees int     `json:"active_employees"`
	PresentToday    int     `json:"present_today"`
	AbsentToday     int     `json:"absent_today"`
	OnLeaveToday    int     `json:"on_leave_today"`
	AttendanceRate  float64 `json:"attendance_rate"`

	PendingLeaves   int `json:"pending_leaves"`
	PendingExpenses int `json:"pending_expenses"`
	OpenExits       int `json:"open_exits"`
}

type Activity struct {
	Kind       string `json:"kind"`
	Subject    string `json:"subject"`
	Detail     string `json:"detail"`
	OccurredAt string `json:"occurred_at"`
	TimeAgo    string `json:"time_ago"`
}

type PendingApproval struct {
	Kind         string  `json:"kind"`
	ID           string  `json:"id"`
	EmployeeName string  `json:"employee_name"`
	Detail       string  `json:"detail"`
	Amount       float64 `json:"amount,omitempty"`
	WaitingSince string  `json:"waiting_since"`
}

type Alert struct {
	Priority int    `json:"priority"`
	Kind     string `json:"kind"`
	Message  string `json:"message"`
}

type Overview struct {
	Stats            QuickStats        `json:"stats"`
	RecentActivities []Activity        `json:"recent_activities"`
	PendingApprovals []PendingApproval `json:"pending_approvals"`
	Alerts           []Alert           `json:"alerts"`
}
