package events

import "time"

const (
	RequestDecidedTopic     = "hr.request.decided.v1"
	RequestDecidedEventType = "request.decided"
)

// RequestDecidedEvent is emitted once per terminal transition of a leave or
// attendance-correction request.
type RequestDecidedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id"`
	Kind        string    `json:"kind"`
	AggregateID string    `json:"aggregate_id"`
	EmployeeID  string    `json:"employee_id"`
	Status      string    `json:"status"`
	ActorID     string    `json:"actor_id"`
	OccurredAt  time.Time `json:"occurred_at"`
}
