package repositories_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	log_internal "ticketing-service/internal/pkg/log"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	sqlxmock "github.com/zhashkevych/go-sqlxmock"

	"ticketing-service/internal/module/ticket/models/entity"
	"ticketing-service/internal/module/ticket/repositories"
	"ticketing-service/internal/pkg/errors"
)

var (
	mock    sqlxmock.Sqlmock
	dbx     *sqlx.DB
	logMock = log_internal.Setup()
)

func setup() {
	dbx, mock, _ = sqlxmock.Newx()
}

func ticketColumns() []string {
	return []string{
		"id", "name", "phone", "ticket_type", "standard_price", "custom_price",
		"discount_amount", "discount_reason", "amount_paid", "balance",
		"checked_in", "checked_in_at", "qr_code", "version", "created_at", "updated_at",
	}
}

func TestCreateTicket(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock)

	ticket := entity.Ticket{
		ID:            uuid.New(),
		Name:          "Amina Okello",
		Phone:         "+256700000001",
		TicketType:    "Standard UGX 80,000",
		StandardPrice: 80000,
		AmountPaid:    50000,
		Balance:       30000,
		QRCode:        "data:image/png;base64,stub",
		Version:       1,
		CreatedAt:     time.Now(),
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO tickets").
			WillReturnResult(sqlxmock.NewResult(1, 1))

		err := repo.CreateTicket(context.Background(), &ticket)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO tickets").
			WillReturnError(assert.AnError)

		err := repo.CreateTicket(context.Background(), &ticket)

		assert.Error(t, err)
		assert.Equal(t, 500, errors.GetCode(err))
	})
}

func TestUpdateTicket(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock)

	ticket := entity.Ticket{
		ID:            uuid.New(),
		Name:          "Amina Okello",
		Phone:         "+256700000001",
		TicketType:    "Standard UGX 80,000",
		StandardPrice: 80000,
		AmountPaid:    80000,
		Balance:       0,
		Version:       1,
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("UPDATE tickets SET").
			WillReturnResult(sqlxmock.NewResult(0, 1))

		err := repo.UpdateTicket(context.Background(), &ticket)

		assert.NoError(t, err)
	})

	t.Run("stale version conflicts", func(t *testing.T) {
		mock.ExpectExec("UPDATE tickets SET").
			WillReturnResult(sqlxmock.NewResult(0, 0))

		err := repo.UpdateTicket(context.Background(), &ticket)

		assert.Error(t, err)
		assert.Equal(t, 409, errors.GetCode(err))
	})
}

func TestSetCheckedIn(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock)

	id := uuid.New().String()

	t.Run("check in", func(t *testing.T) {
		mock.ExpectExec("UPDATE tickets SET checked_in = TRUE").
			WithArgs(id).
			WillReturnResult(sqlxmock.NewResult(0, 1))

		err := repo.SetCheckedIn(context.Background(), id, true)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("check out", func(t *testing.T) {
		mock.ExpectExec("UPDATE tickets SET checked_in = FALSE").
			WithArgs(id).
			WillReturnResult(sqlxmock.NewResult(0, 1))

		err := repo.SetCheckedIn(context.Background(), id, false)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteTicket(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock)

	id := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM tickets WHERE id = $1")).
			WithArgs(id).
			WillReturnResult(sqlxmock.NewResult(0, 1))

		err := repo.DeleteTicket(context.Background(), id)

		assert.NoError(t, err)
	})

	t.Run("missing ticket", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM tickets WHERE id = $1")).
			WithArgs(id).
			WillReturnResult(sqlxmock.NewResult(0, 0))

		err := repo.DeleteTicket(context.Background(), id)

		assert.Error(t, err)
		assert.Equal(t, 404, errors.GetCode(err))
	})
}

func TestFindTicketByID(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock)

	id := uuid.New()
	createdAt := time.Now()

	t.Run("success", func(t *testing.T) {
		rows := sqlxmock.NewRows(ticketColumns()).
			AddRow(id, "Amina Okello", "+256700000001", "Standard UGX 80,000", int64(80000), nil,
				int64(0), "", int64(50000), int64(30000),
				false, nil, "data:image/png;base64,stub", int64(1), createdAt, nil)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM tickets WHERE id = $1")).
			WithArgs(id.String()).
			WillReturnRows(rows)

		ticket, err := repo.FindTicketByID(context.Background(), id.String())

		assert.NoError(t, err)
		assert.Equal(t, id, ticket.ID)
		assert.Equal(t, "Amina Okello", ticket.Name)
		assert.Equal(t, int64(30000), ticket.Balance)
	})

	t.Run("missing ticket", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM tickets WHERE id = $1")).
			WithArgs(id.String()).
			WillReturnRows(sqlxmock.NewRows(ticketColumns()))

		_, err := repo.FindTicketByID(context.Background(), id.String())

		assert.Error(t, err)
		assert.Equal(t, 404, errors.GetCode(err))
	})
}

func TestFindAllTickets(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock)

	t.Run("success", func(t *testing.T) {
		rows := sqlxmock.NewRows(ticketColumns()).
			AddRow(uuid.New(), "Amina Okello", "+256700000001", "Standard UGX 80,000", int64(80000), nil,
				int64(0), "", int64(50000), int64(30000),
				false, nil, "data:image/png;base64,stub", int64(1), time.Now(), nil).
			AddRow(uuid.New(), "Brian Ssempa", "+256700000002", "Discounted UGX 60,000", int64(80000), int64(60000),
				int64(20000), "student", int64(60000), int64(0),
				true, time.Now(), "data:image/png;base64,stub", int64(2), time.Now(), nil)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM tickets ORDER BY created_at DESC")).
			WillReturnRows(rows)

		tickets, err := repo.FindAllTickets(context.Background())

		assert.NoError(t, err)
		assert.Len(t, tickets, 2)
	})

	t.Run("empty", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM tickets ORDER BY created_at DESC")).
			WillReturnRows(sqlxmock.NewRows(ticketColumns()))

		tickets, err := repo.FindAllTickets(context.Background())

		assert.NoError(t, err)
		assert.Empty(t, tickets)
	})
}
