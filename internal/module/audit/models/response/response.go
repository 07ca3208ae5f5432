package response

import "ticketing-service/internal/module/audit/models/entity"

const timeFormat = "2006-01-02 15:04:05"

type AuditEvent struct {
	ID        string `json:"id"`
	EventType string `json:"event_type"`
	TicketID  string `json:"ticket_id"`
	Payload   string `json:"payload"`
	CreatedAt string `json:"created_at"`
}

func FromAuditEvents(events []entity.AuditEvent) []AuditEvent {
	resp := make([]AuditEvent, 0, len(events))
	for _, e := range events {
		resp = append(resp, AuditEvent{
			ID:        e.ID.String(),
			EventType: e.EventType,
			TicketID:  e.TicketID,
			Payload:   e.Payload,
			CreatedAt: e.CreatedAt.Format(timeFormat),
		})
	}
	return resp
}
