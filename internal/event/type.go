package event

import "github.com/google/uuid"

const AdvisoryQueue string = "advisory_events"

type AdvisoryEventType string

const (
	OutcomeRecorded AdvisoryEventType = "outcome_recorded"
	PlanGenerated   AdvisoryEventType = "plan_generated"
)

type AdvisoryEvent struct {
	ID        string            `json:"id"`
	EventType AdvisoryEventType `json:"event_type"`
	Payload   map[string]any    `json:"payload"`
}

func NewAdvisoryEvent(eventType AdvisoryEventType, payload map[string]any) AdvisoryEvent {
	return AdvisoryEvent{
		ID:        uuid.NewString(),
		EventType: eventType,
		Payload:   payload,
	}
}
