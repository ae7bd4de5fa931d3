package approval

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"hr-backoffice/internal/events"
	"hr-backoffice/internal/messaging/kafka"
	"hr-backoffice/internal/shared/contextutil"

	"github.com/google/uuid"
)

// PublishDecision queues a RequestDecidedEvent in the outbox on the decision
// transaction. Register it with OnTerminal.
func PublishDecision[T Subject](outbox kafka.OutboxRepository) Effect[T] {
	return func(ctx context.Context, tx *sql.Tx, _ T, d Decision) error {
		event := events.RequestDecidedEvent{
			EventType:   events.RequestDecidedEventType,
			RequestID:   contextutil.GetRequestID(ctx),
			Kind:        d.Kind.String(),
			AggregateID: d.SubjectID.String(),
			EmployeeID:  d.RequesterID.String(),
			Status:      d.To.String(),
			ActorID:     d.ActorID.String(),
			OccurredAt:  d.DecidedAt,
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return err
		}

		return outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     event.RequestID,
			AggregateType: strings.ToLower(d.Kind.String()) + "_request",
			AggregateID:   event.AggregateID,
			EventType:     event.EventType,
			Topic:         events.RequestDecidedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		})
	}
}
