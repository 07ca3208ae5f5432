package repositories

import (
	"context"
	"database/sql"
	"ticketing-service/internal/module/finance/models/entity"
	ticketentity "ticketing-service/internal/module/ticket/models/entity"
	"ticketing-service/internal/pkg/database"
	"ticketing-service/internal/pkg/errors"
	"ticketing-service/internal/pkg/log"

	"github.com/jmoiron/sqlx"
)

type repositories struct {
	db  *sqlx.DB
	log log.Logger
}

type Repositories interface {
	// expenses
	CreateExpense(ctx context.Context, expense *entity.Expense) error
	UpdateExpense(ctx context.Context, expense *entity.Expense) error
	DeleteExpense(ctx context.Context, id string) error
	FindExpenseByID(ctx context.Context, id string) (entity.Expense, error)
	FindAllExpenses(ctx context.Context) ([]entity.Expense, error)
	// sponsorships
	CreateSponsorship(ctx context.Context, sponsorship *entity.Sponsorship) error
	UpdateSponsorship(ctx context.Context, sponsorship *entity.Sponsorship) error
	DeleteSponsorship(ctx context.Context, id string) error
	FindSponsorshipByID(ctx context.Context, id string) (entity.Sponsorship, error)
	FindAllSponsorships(ctx context.Context) ([]entity.Sponsorship, error)
	// aggregates
	SumTicketRevenue(ctx context.Context) (int64, error)
	SumExpenses(ctx context.Context) (int64, error)
	SumSponsorships(ctx context.Context) (int64, error)
	CountTickets(ctx context.Context) (total int64, checkedIn int64, err error)
	// export
	FindAllTickets(ctx context.Context) ([]ticketentity.Ticket, error)
}

func New(db *sqlx.DB, log log.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

// CreateExpense implements Repositories.
func (r *repositories) CreateExpense(ctx context.Context, expense *entity.Expense) error {
	query := `
		INSERT INTO expenses (id, category, description, amount, date, notes, created_at)
		VALUES (:id, :category, :description, :amount, :date, :notes, :created_at)`
	err := database.Retry(ctx, func() error {
		_, execErr := r.db.NamedExecContext(ctx, query, expense)
		return execErr
	})
	if err != nil {
		r.log.Error(ctx, "error insert expense", err)
		return errors.InternalServerError("error insert expense")
	}
	return nil
}

// UpdateExpense implements Repositories.
func (r *repositories) UpdateExpense(ctx context.Context, expense *entity.Expense) error {
	query := `
		UPDATE expenses SET
			category = :category,
			description = :description,
			amount = :amount,
			date = :date,
			notes = :notes,
			updated_at = NOW()
		WHERE id = :id`

	var affected int64
	err := database.Retry(ctx, func() error {
		result, execErr := r.db.NamedExecContext(ctx, query, expense)
		if execErr != nil {
			return execErr
		}
		affected, execErr = result.RowsAffected()
		return execErr
	})
	if err != nil {
		r.log.Error(ctx, "error update expense", err)
		return errors.InternalServerError("error update expense")
	}
	if affected == 0 {
		return errors.NotFound("expense not found")
	}
	return nil
}

// DeleteExpense implements Repositories.
func (r *repositories) DeleteExpense(ctx context.Context, id string) error {
	return r.deleteByID(ctx, `DELETE FROM expenses WHERE id = $1`, id, "expense not found")
}

// FindExpenseByID implements Repositories.
func (r *repositories) FindExpenseByID(ctx context.Context, id string) (entity.Expense, error) {
	var expense entity.Expense
	err := r.db.GetContext(ctx, &expense, `SELECT * FROM expenses WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return entity.Expense{}, errors.NotFound("expense not found")
	}
	if err != nil {
		r.log.Error(ctx, "error find expense by id", err)
		return entity.Expense{}, errors.InternalServerError("error find expense by id")
	}
	return expense, nil
}

// FindAllExpenses implements Repositories. Most recent spend first.
func (r *repositories) FindAllExpenses(ctx context.Context) ([]entity.Expense, error) {
	expenses := []entity.Expense{}
	err := r.db.SelectContext(ctx, &expenses, `SELECT * FROM expenses ORDER BY date DESC, created_at DESC`)
	if err != nil {
		r.log.Error(ctx, "error find all expenses", err)
		return nil, errors.InternalServerError("error find all expenses")
	}
	return expenses, nil
}

// CreateSponsorship implements Repositories.
func (r *repositories) CreateSponsorship(ctx context.Context, sponsorship *entity.Sponsorship) error {
	query := `
		INSERT INTO sponsorships (id, name, amount, contact, notes, created_at)
		VALUES (:id, :name, :amount, :contact, :notes, :created_at)`
	err := database.Retry(ctx, func() error {
		_, execErr := r.db.NamedExecContext(ctx, query, sponsorship)
		return execErr
	})
	if err != nil {
		r.log.Error(ctx, "error insert sponsorship", err)
		return errors.InternalServerError("error insert sponsorship")
	}
	return nil
}

// UpdateSponsorship implements Repositories.
func (r *repositories) UpdateSponsorship(ctx context.Context, sponsorship *entity.Sponsorship) error {
	query := `
		UPDATE sponsorships SET
			name = :name,
			amount = :amount,
			contact = :contact,
			notes = :notes,
			updated_at = NOW()
		WHERE id = :id`

	var affected int64
	err := database.Retry(ctx, func() error {
		result, execErr := r.db.NamedExecContext(ctx, query, sponsorship)
		if execErr != nil {
			return execErr
		}
		affected, execErr = result.RowsAffected()
		return execErr
	})
	if err != nil {
		r.log.Error(ctx, "error update sponsorship", err)
		return errors.InternalServerError("error update sponsorship")
	}
	if affected == 0 {
		return errors.NotFound("sponsorship not found")
	}
	return nil
}

// DeleteSponsorship implements Repositories.
func (r *repositories) DeleteSponsorship(ctx context.Context, id string) error {
	return r.deleteByID(ctx, `DELETE FROM sponsorships WHERE id = $1`, id, "sponsorship not found")
}

// FindSponsorshipByID implements Repositories.
func (r *repositories) FindSponsorshipByID(ctx context.Context, id string) (entity.Sponsorship, error) {
	var sponsorship entity.Sponsorship
	err := r.db.GetContext(ctx, &sponsorship, `SELECT * FROM sponsorships WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return entity.Sponsorship{}, errors.NotFound("sponsorship not found")
	}
	if err != nil {
		r.log.Error(ctx, "error find sponsorship by id", err)
		return entity.Sponsorship{}, errors.InternalServerError("error find sponsorship by id")
	}
	return sponsorship, nil
}

// FindAllSponsorships implements Repositories.
func (r *repositories) FindAllSponsorships(ctx context.Context) ([]entity.Sponsorship, error) {
	sponsorships := []entity.Sponsorship{}
	err := r.db.SelectContext(ctx, &sponsorships, `SELECT * FROM sponsorships ORDER BY created_at DESC`)
	if err != nil {
		r.log.Error(ctx, "error find all sponsorships", err)
		return nil, errors.InternalServerError("error find all sponsorships")
	}
	return sponsorships, nil
}

// SumTicketRevenue implements Repositories. COALESCE keeps the empty set at
// zero instead of NULL.
func (r *repositories) SumTicketRevenue(ctx context.Context) (int64, error) {
	return r.sum(ctx, `SELECT COALESCE(SUM(amount_paid), 0) FROM tickets`, "error sum ticket revenue")
}

// SumExpenses implements Repositories.
func (r *repositories) SumExpenses(ctx context.Context) (int64, error) {
	return r.sum(ctx, `SELECT COALESCE(SUM(amount), 0) FROM expenses`, "error sum expenses")
}

// SumSponsorships implements Repositories.
func (r *repositories) SumSponsorships(ctx context.Context) (int64, error) {
	return r.sum(ctx, `SELECT COALESCE(SUM(amount), 0) FROM sponsorships`, "error sum sponsorships")
}

// CountTickets implements Repositories.
func (r *repositories) CountTickets(ctx context.Context) (int64, int64, error) {
	var counts struct {
		Total     int64 `db:"total"`
		CheckedIn int64 `db:"checked_in"`
	}
	query := `
		SELECT COUNT(*) AS total,
		       COUNT(*) FILTER (WHERE checked_in) AS checked_in
		FROM tickets`
	if err := r.db.GetContext(ctx, &counts, query); err != nil {
		r.log.Error(ctx, "error count tickets", err)
		return 0, 0, errors.InternalServerError("error count tickets")
	}
	return counts.Total, counts.CheckedIn, nil
}

// FindAllTickets implements Repositories, feeding the ticket and attendance
// exports.
func (r *repositories) FindAllTickets(ctx context.Context) ([]ticketentity.Ticket, error) {
	tickets := []ticketentity.Ticket{}
	err := r.db.SelectContext(ctx, &tickets, `SELECT * FROM tickets ORDER BY created_at DESC`)
	if err != nil {
		r.log.Error(ctx, "error find all tickets", err)
		return nil, errors.InternalServerError("error find all tickets")
	}
	return tickets, nil
}

func (r *repositories) sum(ctx context.Context, query, errMsg string) (int64, error) {
	var total int64
	if err := r.db.GetContext(ctx, &total, query); err != nil {
		r.log.Error(ctx, errMsg, err)
		return 0, errors.InternalServerError(errMsg)
	}
	return total, nil
}

func (r *repositories) deleteByID(ctx context.Context, query, id, notFoundMsg string) error {
	var affected int64
	err := database.Retry(ctx, func() error {
		result, execErr := r.db.ExecContext(ctx, query, id)
		if execErr != nil {
			return execErr
		}
		affected, execErr = result.RowsAffected()
		return execErr
	})
	if err != nil {
		r.log.Error(ctx, "error delete record", err)
		return errors.InternalServerError("error delete record")
	}
	if affected == 0 {
		return errors.NotFound(notFoundMsg)
	}
	return nil
}
