package repositories

import (
	"context"
	"database/sql"
	"ticketing-service/internal/module/ticket/models/entity"
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
	CreateTicket(ctx context.Context, ticket *entity.Ticket) error
	UpdateTicket(ctx context.Context, ticket *entity.Ticket) error
	SetCheckedIn(ctx context.Context, id string, checkedIn bool) error
	DeleteTicket(ctx context.Context, id string) error
	FindTicketByID(ctx context.Context, id string) (entity.Ticket, error)
	FindAllTickets(ctx context.Context) ([]entity.Ticket, error)
}

func New(db *sqlx.DB, log log.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

// CreateTicket implements Repositories.
func (r *repositories) CreateTicket(ctx context.Context, ticket *entity.Ticket) error {
	query := `
		INSERT INTO tickets (
			id, name, phone, ticket_type, standard_price, custom_price,
			discount_amount, discount_reason, amount_paid, balance,
			checked_in, qr_code, version, created_at
		) VALUES (
			:id, :name, :phone, :ticket_type, :standard_price, :custom_price,
			:discount_amount, :discount_reason, :amount_paid, :balance,
			:checked_in, :qr_code, :version, :created_at
		)`
	err := database.Retry(ctx, func() error {
		_, execErr := r.db.NamedExecContext(ctx, query, ticket)
		return execErr
	})
	if err != nil {
		r.log.Error(ctx, "error insert ticket", err)
		return errors.InternalServerError("error insert ticket")
	}
	return nil
}

// UpdateTicket implements Repositories. The write is a compare-and-swap on
// the version column; losing the race returns a conflict instead of
// silently dropping the other writer's update.
func (r *repositories) UpdateTicket(ctx context.Context, ticket *entity.Ticket) error {
	query := `
		UPDATE tickets SET
			name = :name,
			phone = :phone,
			ticket_type = :ticket_type,
			custom_price = :custom_price,
			discount_amount = :discount_amount,
			discount_reason = :discount_reason,
			amount_paid = :amount_paid,
			balance = :balance,
			checked_in = :checked_in,
			checked_in_at = :checked_in_at,
			version = version + 1,
			updated_at = NOW()
		WHERE id = :id AND version = :version`

	var affected int64
	err := database.Retry(ctx, func() error {
		result, execErr := r.db.NamedExecContext(ctx, query, ticket)
		if execErr != nil {
			return execErr
		}
		affected, execErr = result.RowsAffected()
		return execErr
	})
	if err != nil {
		r.log.Error(ctx, "error update ticket", err)
		return errors.InternalServerError("error update ticket")
	}
	if affected == 0 {
		return errors.Conflict("ticket was modified concurrently")
	}
	return nil
}

// SetCheckedIn implements Repositories. The where clause makes the write a
// no-op when the ticket is already in the requested state, which keeps
// check-in and check-out idempotent at the persistence layer.
func (r *repositories) SetCheckedIn(ctx context.Context, id string, checkedIn bool) error {
	var query string
	if checkedIn {
		query = `
			UPDATE tickets SET checked_in = TRUE, checked_in_at = NOW(), updated_at = NOW()
			WHERE id = $1 AND checked_in = FALSE`
	} else {
		query = `
			UPDATE tickets SET checked_in = FALSE, checked_in_at = NULL, updated_at = NOW()
			WHERE id = $1 AND checked_in = TRUE`
	}

	err := database.Retry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, query, id)
		return execErr
	})
	if err != nil {
		r.log.Error(ctx, "error set checked in", err)
		return errors.InternalServerError("error set checked in")
	}
	return nil
}

// DeleteTicket implements Repositories.
func (r *repositories) DeleteTicket(ctx context.Context, id string) error {
	var affected int64
	err := database.Retry(ctx, func() error {
		result, execErr := r.db.ExecContext(ctx, `DELETE FROM tickets WHERE id = $1`, id)
		if execErr != nil {
			return execErr
		}
		affected, execErr = result.RowsAffected()
		return execErr
	})
	if err != nil {
		r.log.Error(ctx, "error delete ticket", err)
		return errors.InternalServerError("error delete ticket")
	}
	if affected == 0 {
		return errors.NotFound("ticket not found")
	}
	return nil
}

// FindTicketByID implements Repositories.
func (r *repositories) FindTicketByID(ctx context.Context, id string) (entity.Ticket, error) {
	query := `SELECT * FROM tickets WHERE id = $1`
	var ticket entity.Ticket
	err := r.db.GetContext(ctx, &ticket, query, id)
	if err == sql.ErrNoRows {
		return entity.Ticket{}, errors.NotFound("ticket not found")
	}
	if err != nil {
		r.log.Error(ctx, "error find ticket by id", err)
		return entity.Ticket{}, errors.InternalServerError("error find ticket by id")
	}
	return ticket, nil
}

// FindAllTickets implements Repositories. Newest first.
func (r *repositories) FindAllTickets(ctx context.Context) ([]entity.Ticket, error) {
	query := `SELECT * FROM tickets ORDER BY created_at DESC`
	tickets := []entity.Ticket{}
	err := r.db.SelectContext(ctx, &tickets, query)
	if err != nil {
		r.log.Error(ctx, "error find all tickets", err)
		return nil, errors.InternalServerError("error find all tickets")
	}
	return tickets, nil
}
