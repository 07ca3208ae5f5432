package response

import (
	"ticketing-service/internal/module/ticket/models/entity"
)

const timeFormat = "2006-01-02 15:04:05"

type Ticket struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	TicketType     string `json:"ticket_type"`
	StandardPrice  int64  `json:"standard_price"`
	CustomPrice    *int64 `json:"custom_price"`
	DiscountAmount int64  `json:"discount_amount"`
	DiscountReason string `json:"discount_reason"`
	AmountPaid     int64  `json:"amount_paid"`
	Balance        int64  `json:"balance"`
	CheckedIn      bool   `json:"checked_in"`
	CheckedInAt    string `json:"checked_in_at,omitempty"`
	QRCode         string `json:"qr_code"`
	CreatedAt      string `json:"created_at"`
}

// GuestTicket is the public-safe projection served to the guest page; it
// omits the phone number and money details beyond the outstanding balance.
type GuestTicket struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	TicketType string `json:"ticket_type"`
	Balance    int64  `json:"balance"`
	CheckedIn  bool   `json:"checked_in"`
}

func FromTicket(t entity.Ticket) Ticket {
	resp := Ticket{
		ID:             t.ID.String(),
		Name:           t.Name,
		Phone:          t.Phone,
		TicketType:     t.TicketType,
		StandardPrice:  t.StandardPrice,
		DiscountAmount: t.DiscountAmount,
		DiscountReason: t.DiscountReason,
		AmountPaid:     t.AmountPaid,
		Balance:        t.Balance,
		CheckedIn:      t.CheckedIn,
		QRCode:         t.QRCode,
		CreatedAt:      t.CreatedAt.Format(timeFormat),
	}
	if t.CustomPrice.Valid {
		price := t.CustomPrice.Int64
		resp.CustomPrice = &price
	}
	if t.CheckedInAt.Valid {
		resp.CheckedInAt = t.CheckedInAt.Time.Format(timeFormat)
	}
	return resp
}

func FromTickets(tickets []entity.Ticket) []Ticket {
	resp := make([]Ticket, 0, len(tickets))
	for _, t := range tickets {
		resp = append(resp, FromTicket(t))
	}
	return resp
}

func GuestFromTicket(t entity.Ticket) GuestTicket {
	return GuestTicket{
		ID:         t.ID.String(),
		Name:       t.Name,
		TicketType: t.TicketType,
		Balance:    t.Balance,
		CheckedIn:  t.CheckedIn,
	}
}
