package events

import "time"

const EmployeeCreatedTopic = "hr.employee.lifecycle.v1"

// EmployeeCreatedEvent is emitted when the recruitment flow inserts a new
// employee. The consumer uses it to provision a portal account stub.
type EmployeeCreatedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID string    `json:"employee_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}
