package usecases

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"ticketing-service/internal/module/finance/models/entity"
	"ticketing-service/internal/module/finance/models/request"
	"ticketing-service/internal/module/finance/models/response"
	"ticketing-service/internal/module/finance/repositories"
	ticketentity "ticketing-service/internal/module/ticket/models/entity"
	"ticketing-service/internal/pkg/errors"
	"ticketing-service/internal/pkg/log"
	"ticketing-service/internal/pkg/monitoring"
	"time"

	"github.com/google/uuid"
)

const (
	ExportTickets    = "tickets"
	ExportFinancial  = "financial"
	ExportAttendance = "attendance"

	dateFormat = "2006-01-02"
	timeFormat = "2006-01-02 15:04:05"
)

type usecase struct {
	repo repositories.Repositories
	log  log.Logger
}

type Usecase interface {
	// expenses
	CreateExpense(ctx context.Context, payload *request.CreateExpense) (response.Expense, error)
	UpdateExpense(ctx context.Context, id string, payload *request.UpdateExpense) (response.Expense, error)
	DeleteExpense(ctx context.Context, id string) error
	ShowExpenses(ctx context.Context) ([]response.Expense, error)
	// sponsorships
	CreateSponsorship(ctx context.Context, payload *request.CreateSponsorship) (response.Sponsorship, error)
	UpdateSponsorship(ctx context.Context, id string, payload *request.UpdateSponsorship) (response.Sponsorship, error)
	DeleteSponsorship(ctx context.Context, id string) error
	ShowSponsorships(ctx context.Context) ([]response.Sponsorship, error)
	// aggregation and export
	GetSummary(ctx context.Context) (response.Summary, error)
	ExportCSV(ctx context.Context, exportType string) (filename string, payload []byte, err error)
}

func New(repo repositories.Repositories, log log.Logger) Usecase {
	return &usecase{
		repo: repo,
		log:  log,
	}
}

func (u *usecase) CreateExpense(ctx context.Context, payload *request.CreateExpense) (response.Expense, error) {
	date, err := time.Parse(dateFormat, payload.Date)
	if err != nil {
		return response.Expense{}, errors.BadRequest("invalid expense date")
	}

	expense := entity.Expense{
		ID:          uuid.New(),
		Category:    payload.Category,
		Description: payload.Description,
		Amount:      payload.Amount,
		Date:        date,
		Notes:       payload.Notes,
		CreatedAt:   time.Now(),
	}

	if err := u.repo.CreateExpense(ctx, &expense); err != nil {
		return response.Expense{}, err
	}

	return response.FromExpense(expense), nil
}

func (u *usecase) UpdateExpense(ctx context.Context, id string, payload *request.UpdateExpense) (response.Expense, error) {
	date, err := time.Parse(dateFormat, payload.Date)
	if err != nil {
		return response.Expense{}, errors.BadRequest("invalid expense date")
	}

	existing, err := u.repo.FindExpenseByID(ctx, id)
	if err != nil {
		return response.Expense{}, err
	}

	existing.Category = payload.Category
	existing.Description = payload.Description
	existing.Amount = payload.Amount
	existing.Date = date
	existing.Notes = payload.Notes

	if err := u.repo.UpdateExpense(ctx, &existing); err != nil {
		return response.Expense{}, err
	}

	return response.FromExpense(existing), nil
}

func (u *usecase) DeleteExpense(ctx context.Context, id string) error {
	return u.repo.DeleteExpense(ctx, id)
}

func (u *usecase) ShowExpenses(ctx context.Context) ([]response.Expense, error) {
	expenses, err := u.repo.FindAllExpenses(ctx)
	if err != nil {
		return nil, err
	}
	return response.FromExpenses(expenses), nil
}

func (u *usecase) CreateSponsorship(ctx context.Context, payload *request.CreateSponsorship) (response.Sponsorship, error) {
	sponsorship := entity.Sponsorship{
		ID:        uuid.New(),
		Name:      payload.Name,
		Amount:    payload.Amount,
		Contact:   payload.Contact,
		Notes:     payload.Notes,
		CreatedAt: time.Now(),
	}

	if err := u.repo.CreateSponsorship(ctx, &sponsorship); err != nil {
		return response.Sponsorship{}, err
	}

	return response.FromSponsorship(sponsorship), nil
}

func (u *usecase) UpdateSponsorship(ctx context.Context, id string, payload *request.UpdateSponsorship) (response.Sponsorship, error) {
	existing, err := u.repo.FindSponsorshipByID(ctx, id)
	if err != nil {
		return response.Sponsorship{}, err
	}

	existing.Name = payload.Name
	existing.Amount = payload.Amount
	existing.Contact = payload.Contact
	existing.Notes = payload.Notes

	if err := u.repo.UpdateSponsorship(ctx, &existing); err != nil {
		return response.Sponsorship{}, err
	}

	return response.FromSponsorship(existing), nil
}

func (u *usecase) DeleteSponsorship(ctx context.Context, id string) error {
	return u.repo.DeleteSponsorship(ctx, id)
}

func (u *usecase) ShowSponsorships(ctx context.Context) ([]response.Sponsorship, error) {
	sponsorships, err := u.repo.FindAllSponsorships(ctx)
	if err != nil {
		return nil, err
	}
	return response.FromSponsorships(sponsorships), nil
}

// GetSummary computes the aggregate view. Profit deliberately excludes
// sponsorships (profit = revenue - expenses); sponsorships only count
// toward money available.
func (u *usecase) GetSummary(ctx context.Context) (response.Summary, error) {
	revenue, err := u.repo.SumTicketRevenue(ctx)
	if err != nil {
		return response.Summary{}, err
	}
	expenses, err := u.repo.SumExpenses(ctx)
	if err != nil {
		return response.Summary{}, err
	}
	sponsorships, err := u.repo.SumSponsorships(ctx)
	if err != nil {
		return response.Summary{}, err
	}
	total, checkedIn, err := u.repo.CountTickets(ctx)
	if err != nil {
		return response.Summary{}, err
	}

	summary := entity.Summary{
		TotalRevenue:      revenue,
		TotalExpenses:     expenses,
		TotalSponsorships: sponsorships,
		Profit:            revenue - expenses,
		MoneyAvailable:    revenue + sponsorships - expenses,
		TicketCount:       total,
		CheckedInCount:    checkedIn,
	}

	return response.FromSummary(summary), nil
}

// ExportCSV builds the flat tabular projection for offline consumption.
func (u *usecase) ExportCSV(ctx context.Context, exportType string) (string, []byte, error) {
	var (
		filename string
		rows     [][]string
		err      error
	)

	switch exportType {
	case ExportTickets:
		filename = "tickets_export.csv"
		rows, err = u.ticketRows(ctx)
	case ExportFinancial:
		filename = "financial_summary.csv"
		rows, err = u.financialRows(ctx)
	case ExportAttendance:
		filename = "attendance_report.csv"
		rows, err = u.attendanceRows(ctx)
	default:
		return "", nil, errors.BadRequest("invalid export type")
	}
	if err != nil {
		return "", nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		u.log.Error(ctx, "error write csv", err)
		return "", nil, errors.InternalServerError("error write csv")
	}

	monitoring.ObserveExport(exportType)

	return filename, buf.Bytes(), nil
}

func (u *usecase) ticketRows(ctx context.Context) ([][]string, error) {
	tickets, err := u.repo.FindAllTickets(ctx)
	if err != nil {
		return nil, err
	}

	rows := [][]string{{"Name", "Phone", "Ticket Type", "Amount Paid", "Balance", "Checked In", "Created At"}}
	for _, t := range tickets {
		rows = append(rows, []string{
			t.Name,
			t.Phone,
			t.TicketType,
			strconv.FormatInt(t.AmountPaid, 10),
			strconv.FormatInt(t.Balance, 10),
			yesNo(t.CheckedIn),
			t.CreatedAt.Format(timeFormat),
		})
	}
	return rows, nil
}

func (u *usecase) financialRows(ctx context.Context) ([][]string, error) {
	summary, err := u.GetSummary(ctx)
	if err != nil {
		return nil, err
	}

	return [][]string{
		{"Total Ticket Revenue", "Total Sponsorships", "Total Expenses", "Profit", "Money Available"},
		{
			strconv.FormatInt(summary.TotalRevenue, 10),
			strconv.FormatInt(summary.TotalSponsorships, 10),
			strconv.FormatInt(summary.TotalExpenses, 10),
			strconv.FormatInt(summary.Profit, 10),
			strconv.FormatInt(summary.MoneyAvailable, 10),
		},
	}, nil
}

// attendanceRows lists checked-in guests with their arrival time, recorded
// at check-in.
func (u *usecase) attendanceRows(ctx context.Context) ([][]string, error) {
	tickets, err := u.repo.FindAllTickets(ctx)
	if err != nil {
		return nil, err
	}

	rows := [][]string{{"Name", "Phone", "Checked In At"}}
	for _, t := range tickets {
		if !t.CheckedIn {
			continue
		}
		rows = append(rows, []string{t.Name, t.Phone, checkedInAt(t)})
	}
	return rows, nil
}

func checkedInAt(t ticketentity.Ticket) string {
	if t.CheckedInAt.Valid {
		return t.CheckedInAt.Time.Format(timeFormat)
	}
	return ""
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
