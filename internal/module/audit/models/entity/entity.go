package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditEvent is one row of the ticket lifecycle trail, written by the
// ticket_events consumer.
type AuditEvent struct {
	ID        uuid.UUID `db:"id"`
	EventType string    `db:"event_type"`
	TicketID  string    `db:"ticket_id"`
	Payload   string    `db:"payload"`
	CreatedAt time.Time `db:"created_at"`
}
