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

	"ticketing-service/internal/module/finance/models/entity"
	"ticketing-service/internal/module/finance/repositories"
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

func TestCreateExpense(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock)

	expense := entity.Expense{
		ID:          uuid.New(),
		Category:    "venue",
		Description: "hall rental",
		Amount:      25000,
		Date:        time.Now(),
		CreatedAt:   time.Now(),
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO expenses").
			WillReturnResult(sqlxmock.NewResult(1, 1))

		err := repo.CreateExpense(context.Background(), &expense)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO expenses").
			WillReturnError(assert.AnError)

		err := repo.CreateExpense(context.Background(), &expense)

		assert.Error(t, err)
		assert.Equal(t, 500, errors.GetCode(err))
	})
}

func TestUpdateExpense(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock)

	expense := entity.Expense{
		ID:          uuid.New(),
		Category:    "catering",
		Description: "lunch",
		Amount:      15000,
		Date:        time.Now(),
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("UPDATE expenses SET").
			WillReturnResult(sqlxmock.NewResult(0, 1))

		err := repo.UpdateExpense(context.Background(), &expense)

		assert.NoError(t, err)
	})

	t.Run("missing expense", func(t *testing.T) {
		mock.ExpectExec("UPDATE expenses SET").
			WillReturnResult(sqlxmock.NewResult(0, 0))

		err := repo.UpdateExpense(context.Background(), &expense)

		assert.Error(t, err)
		assert.Equal(t, 404, errors.GetCode(err))
	})
}

func TestDeleteExpense(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock)

	id := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM expenses WHERE id = $1")).
			WithArgs(id).
			WillReturnResult(sqlxmock.NewResult(0, 1))

		err := repo.DeleteExpense(context.Background(), id)

		assert.NoError(t, err)
	})

	t.Run("missing expense", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM expenses WHERE id = $1")).
			WithArgs(id).
			WillReturnResult(sqlxmock.NewResult(0, 0))

		err := repo.DeleteExpense(context.Background(), id)

		assert.Error(t, err)
		assert.Equal(t, 404, errors.GetCode(err))
	})
}

func TestFindExpenseByID(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock)

	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		rows := sqlxmock.NewRows([]string{"id", "category", "description", "amount", "date", "notes", "created_at", "updated_at"}).
			AddRow(id, "venue", "hall rental", int64(25000), time.Now(), "", time.Now(), nil)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM expenses WHERE id = $1")).
			WithArgs(id.String()).
			WillReturnRows(rows)

		expense, err := repo.FindExpenseByID(context.Background(), id.String())

		assert.NoError(t, err)
		assert.Equal(t, id, expense.ID)
		assert.Equal(t, int64(25000), expense.Amount)
	})

	t.Run("missing expense", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM expenses WHERE id = $1")).
			WithArgs(id.String()).
			WillReturnRows(sqlxmock.NewRows([]string{"id"}))

		_, err := repo.FindExpenseByID(context.Background(), id.String())

		assert.Error(t, err)
		assert.Equal(t, 404, errors.GetCode(err))
	})
}

func TestCreateSponsorship(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock)

	sponsorship := entity.Sponsorship{
		ID:        uuid.New(),
		Name:      "Kampala Coffee Co",
		Amount:    5000,
		Contact:   "sponsor@example.com",
		CreatedAt: time.Now(),
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO sponsorships").
			WillReturnResult(sqlxmock.NewResult(1, 1))

		err := repo.CreateSponsorship(context.Background(), &sponsorship)

		assert.NoError(t, err)
	})
}

func TestAggregates(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock)

	t.Run("sum ticket revenue", func(t *testing.T) {
		rows := sqlxmock.NewRows([]string{"coalesce"}).AddRow(int64(110000))
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(amount_paid), 0) FROM tickets")).
			WillReturnRows(rows)

		total, err := repo.SumTicketRevenue(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, int64(110000), total)
	})

	t.Run("sum expenses", func(t *testing.T) {
		rows := sqlxmock.NewRows([]string{"coalesce"}).AddRow(int64(25000))
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(amount), 0) FROM expenses")).
			WillReturnRows(rows)

		total, err := repo.SumExpenses(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, int64(25000), total)
	})

	t.Run("sum sponsorships over empty set is zero", func(t *testing.T) {
		rows := sqlxmock.NewRows([]string{"coalesce"}).AddRow(int64(0))
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(amount), 0) FROM sponsorships")).
			WillReturnRows(rows)

		total, err := repo.SumSponsorships(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, int64(0), total)
	})

	t.Run("count tickets", func(t *testing.T) {
		rows := sqlxmock.NewRows([]string{"total", "checked_in"}).AddRow(int64(3), int64(1))
		mock.ExpectQuery("SELECT COUNT").
			WillReturnRows(rows)

		total, checkedIn, err := repo.CountTickets(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Equal(t, int64(1), checkedIn)
	})
}
