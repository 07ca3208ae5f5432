package request

type CreateTicket struct {
	Name           string `json:"name" validate:"required"`
	Phone          string `json:"phone" validate:"required"`
	AmountPaid     int64  `json:"amount_paid" validate:"gte=0"`
	CustomPrice    *int64 `json:"custom_price" validate:"omitempty,gte=0"`
	DiscountAmount *int64 `json:"discount_amount" validate:"omitempty,gte=0"`
	DiscountReason string `json:"discount_reason"`
}

// UpdateTicket carries partial fields; nil means "keep the stored value".
// CheckedIn only overwrites the stored flag when explicitly provided.
type UpdateTicket struct {
	Name           *string `json:"name" validate:"omitempty,min=1"`
	Phone          *string `json:"phone" validate:"omitempty,min=1"`
	AmountPaid     *int64  `json:"amount_paid" validate:"omitempty,gte=0"`
	CustomPrice    *int64  `json:"custom_price" validate:"omitempty,gte=0"`
	DiscountAmount *int64  `json:"discount_amount" validate:"omitempty,gte=0"`
	DiscountReason *string `json:"discount_reason"`
	CheckedIn      *bool   `json:"checked_in"`
}

// TicketEvent is the lifecycle message published to the ticket_events topic
// and consumed by the audit module.
type TicketEvent struct {
	EventType  string `json:"event_type" validate:"required"`
	TicketID   string `json:"ticket_id" validate:"required"`
	Name       string `json:"name"`
	OccurredAt string `json:"occurred_at"`
}

const (
	EventTicketCreated    = "ticket_created"
	EventTicketUpdated    = "ticket_updated"
	EventTicketCheckedIn  = "ticket_checked_in"
	EventTicketCheckedOut = "ticket_checked_out"
	EventTicketDeleted    = "ticket_deleted"
)
