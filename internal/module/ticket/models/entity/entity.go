package entity

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type Ticket struct {
	ID             uuid.UUID     `db:"id"`
	Name           string        `db:"name"`
	Phone          string        `db:"phone"`
	TicketType     string        `db:"ticket_type"`
	StandardPrice  int64         `db:"standard_price"`
	CustomPrice    sql.NullInt64 `db:"custom_price"`
	DiscountAmount int64         `db:"discount_amount"`
	DiscountReason string        `db:"discount_reason"`
	AmountPaid     int64         `db:"amount_paid"`
	Balance        int64         `db:"balance"`
	CheckedIn      bool          `db:"checked_in"`
	CheckedInAt    sql.NullTime  `db:"checked_in_at"`
	QRCode         string        `db:"qr_code"`
	Version        int64         `db:"version"`
	CreatedAt      time.Time     `db:"created_at"`
	UpdatedAt      sql.NullTime  `db:"updated_at"`
}

// EffectivePrice is the price actually owed for the ticket after any
// discount, i.e. the custom price when one is set.
func (t Ticket) EffectivePrice() int64 {
	if t.CustomPrice.Valid {
		return t.CustomPrice.Int64
	}
	return t.StandardPrice
}
