package events

import "time"

const (
	HolidayChangedTopic     = "hr.holiday.changed.v1"
	HolidayChangedEventType = "holiday.changed"
)

type HolidayChangedEvent struct {
	EventType   string    `json:"event_type"`
	HolidayDate string    `json:"holiday_date"`
	OccurredAt  time.Time `json:"occurred_at"`
}
