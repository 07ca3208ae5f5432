package handler_test

import (
	"testing"
	"ticketing-service/internal/module/finance/handler"
	"ticketing-service/internal/module/finance/mocks"
	"ticketing-service/internal/module/finance/models/request"
	"ticketing-service/internal/module/finance/models/response"
	"ticketing-service/internal/pkg/errors"
	log_internal "ticketing-service/internal/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/valyala/fasthttp"
)

var (
	h             *handler.FinanceHandler
	ucm           *mocks.Usecase
	app           *fiber.App
	validatorTest *validator.Validate
)

func setup() {
	ucm = &mocks.Usecase{}
	validatorTest = validator.New()
	h = &handler.FinanceHandler{
		Log:       log_internal.Setup(),
		Validator: validatorTest,
		Usecase:   ucm,
	}
	app = fiber.New()
	app.Use(func(c *fiber.Ctx) error { return nil })
	_ = app.Handler()
}

func teardown() {
	ucm = nil
	validatorTest = nil
	h = nil
	app = nil
}

func TestCreateExpense(t *testing.T) {
	setup()
	defer teardown()

	t.Run("success", func(t *testing.T) {
		// mock data
		payload := request.CreateExpense{
			Category:    "venue",
			Description: "hall rental",
			Amount:      25000,
			Date:        "2026-08-10",
		}
		jsonData, _ := json.Marshal(payload)

		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().SetRequestURI("/api/v1/expenses")
		ctx.Request().Header.SetContentType("application/json")
		ctx.Request().Header.SetMethod("POST")
		ctx.Request().SetBody(jsonData)

		// mock usecase
		ucm.On("CreateExpense", ctx.UserContext(), &payload).Return(response.Expense{
			Category: "venue",
			Amount:   25000,
		}, nil)

		// test
		err := h.CreateExpense(ctx)

		// assertion
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, ctx.Response().StatusCode())
	})

	t.Run("zero amount rejected", func(t *testing.T) {
		payload := request.CreateExpense{
			Category:    "venue",
			Description: "hall rental",
			Amount:      0,
			Date:        "2026-08-10",
		}
		jsonData, _ := json.Marshal(payload)

		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().SetRequestURI("/api/v1/expenses")
		ctx.Request().Header.SetContentType("application/json")
		ctx.Request().Header.SetMethod("POST")
		ctx.Request().SetBody(jsonData)

		err := h.CreateExpense(ctx)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, ctx.Response().StatusCode())
	})
}

func TestCreateSponsorship(t *testing.T) {
	setup()
	defer teardown()

	t.Run("success", func(t *testing.T) {
		payload := request.CreateSponsorship{
			Name:   "Kampala Coffee Co",
			Amount: 5000,
		}
		jsonData, _ := json.Marshal(payload)

		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().SetRequestURI("/api/v1/sponsorships")
		ctx.Request().Header.SetContentType("application/json")
		ctx.Request().Header.SetMethod("POST")
		ctx.Request().SetBody(jsonData)

		ucm.On("CreateSponsorship", ctx.UserContext(), &payload).Return(response.Sponsorship{
			Name:   "Kampala Coffee Co",
			Amount: 5000,
		}, nil)

		err := h.CreateSponsorship(ctx)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, ctx.Response().StatusCode())
	})
}

func TestGetSummary(t *testing.T) {
	setup()
	defer teardown()

	t.Run("success", func(t *testing.T) {
		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().SetRequestURI("/api/v1/financial-summary")
		ctx.Request().Header.SetMethod("GET")

		ucm.On("GetSummary", ctx.UserContext()).Return(response.Summary{
			TotalRevenue:   80000,
			TotalExpenses:  25000,
			Profit:         55000,
			MoneyAvailable: 55000,
		}, nil)

		err := h.GetSummary(ctx)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, ctx.Response().StatusCode())
	})
}

func TestExport(t *testing.T) {
	setup()
	defer teardown()

	t.Run("success", func(t *testing.T) {
		fctx := &fasthttp.RequestCtx{}
		fctx.Request.SetRequestURI("/api/v1/export/tickets")
		fctx.Request.Header.SetMethod("GET")
		ctx := app.AcquireCtx(fctx)
		_ = ctx.RestartRouting()

		ucm.On("ExportCSV", ctx.UserContext(), "").Return("tickets_export.csv", []byte("Name,Phone\n"), nil)

		err := h.Export(ctx)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, ctx.Response().StatusCode())
		assert.Contains(t, string(ctx.Response().Header.Peek(fiber.HeaderContentDisposition)), "tickets_export.csv")
	})

	t.Run("invalid type", func(t *testing.T) {
		ucm = &mocks.Usecase{}
		h.Usecase = ucm

		fctx := &fasthttp.RequestCtx{}
		fctx.Request.SetRequestURI("/api/v1/export/pdf")
		fctx.Request.Header.SetMethod("GET")
		ctx := app.AcquireCtx(fctx)
		_ = ctx.RestartRouting()

		ucm.On("ExportCSV", ctx.UserContext(), "").Return("", []byte(nil), errors.BadRequest("invalid export type"))

		err := h.Export(ctx)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, ctx.Response().StatusCode())
	})
}
