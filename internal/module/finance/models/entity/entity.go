package entity

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type Expense struct {
	ID          uuid.UUID    `db:"id"`
	Category    string       `db:"category"`
	Description string       `db:"description"`
	Amount      int64        `db:"amount"`
	Date        time.Time    `db:"date"`
	Notes       string       `db:"notes"`
	CreatedAt   time.Time    `db:"created_at"`
	UpdatedAt   sql.NullTime `db:"updated_at"`
}

type Sponsorship struct {
	ID        uuid.UUID    `db:"id"`
	Name      string       `db:"name"`
	Amount    int64        `db:"amount"`
	Contact   string       `db:"contact"`
	Notes     string       `db:"notes"`
	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt sql.NullTime `db:"updated_at"`
}

// Summary is the aggregate financial view. Profit excludes sponsorships;
// money available includes them.
type Summary struct {
	TotalRevenue      int64
	TotalExpenses     int64
	TotalSponsorships int64
	Profit            int64
	MoneyAvailable    int64
	TicketCount       int64
	CheckedInCount    int64
}
