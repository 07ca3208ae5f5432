package response

import (
	"ticketing-service/internal/module/finance/models/entity"
)

const (
	timeFormat = "2006-01-02 15:04:05"
	dateFormat = "2006-01-02"
)

type Expense struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
	Date        string `json:"date"`
	Notes       string `json:"notes"`
	CreatedAt   string `json:"created_at"`
}

type Sponsorship struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Amount    int64  `json:"amount"`
	Contact   string `json:"contact"`
	Notes     string `json:"notes"`
	CreatedAt string `json:"created_at"`
}

type Summary struct {
	TotalRevenue      int64 `json:"total_revenue"`
	TotalExpenses     int64 `json:"total_expenses"`
	TotalSponsorships int64 `json:"total_sponsorships"`
	Profit            int64 `json:"profit"`
	MoneyAvailable    int64 `json:"money_available"`
	TicketCount       int64 `json:"ticket_count"`
	CheckedInCount    int64 `json:"checked_in_count"`
}

func FromExpense(e entity.Expense) Expense {
	return Expense{
		ID:          e.ID.String(),
		Category:    e.Category,
		Description: e.Description,
		Amount:      e.Amount,
		Date:        e.Date.Format(dateFormat),
		Notes:       e.Notes,
		CreatedAt:   e.CreatedAt.Format(timeFormat),
	}
}

func FromExpenses(expenses []entity.Expense) []Expense {
	resp := make([]Expense, 0, len(expenses))
	for _, e := range expenses {
		resp = append(resp, FromExpense(e))
	}
	return resp
}

func FromSponsorship(s entity.Sponsorship) Sponsorship {
	return Sponsorship{
		ID:        s.ID.String(),
		Name:      s.Name,
		Amount:    s.Amount,
		Contact:   s.Contact,
		Notes:     s.Notes,
		CreatedAt: s.CreatedAt.Format(timeFormat),
	}
}

func FromSponsorships(sponsorships []entity.Sponsorship) []Sponsorship {
	resp := make([]Sponsorship, 0, len(sponsorships))
	for _, s := range sponsorships {
		resp = append(resp, FromSponsorship(s))
	}
	return resp
}

func FromSummary(s entity.Summary) Summary {
	return Summary{
		TotalRevenue:      s.TotalRevenue,
		TotalExpenses:     s.TotalExpenses,
		TotalSponsorships: s.TotalSponsorships,
		Profit:            s.Profit,
		MoneyAvailable:    s.MoneyAvailable,
		TicketCount:       s.TicketCount,
		CheckedInCount:    s.CheckedInCount,
	}
}
