package handler_test

import (
	"testing"
	"ticketing-service/internal/module/ticket/handler"
	"ticketing-service/internal/module/ticket/mocks"
	"ticketing-service/internal/module/ticket/models/request"
	"ticketing-service/internal/module/ticket/models/response"
	"ticketing-service/internal/pkg/errors"
	log_internal "ticketing-service/internal/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/valyala/fasthttp"
)

var (
	h             *handler.TicketHandler
	ucm           *mocks.Usecase
	app           *fiber.App
	validatorTest *validator.Validate
)

func setup() {
	ucm = &mocks.Usecase{}
	validatorTest = validator.New()
	h = &handler.TicketHandler{
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

func int64Ptr(v int64) *int64 {
	return &v
}

func TestCreateTicket(t *testing.T) {
	setup()
	defer teardown()

	t.Run("success", func(t *testing.T) {
		// mock data
		payload := request.CreateTicket{
			Name:       "Amina Okello",
			Phone:      "+256700000001",
			AmountPaid: 50000,
		}
		jsonData, _ := json.Marshal(payload)

		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().SetRequestURI("/api/v1/tickets")
		ctx.Request().Header.SetContentType("application/json")
		ctx.Request().Header.SetMethod("POST")
		ctx.Request().SetBody(jsonData)

		// mock usecase
		ucm.On("CreateTicket", ctx.UserContext(), &payload).Return(response.Ticket{
			Name:    "Amina Okello",
			Balance: 30000,
		}, nil)

		// test
		err := h.CreateTicket(ctx)

		// assertion
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, ctx.Response().StatusCode())
	})

	t.Run("invalid body", func(t *testing.T) {
		payload := request.CreateTicket{
			Phone:      "+256700000001",
			AmountPaid: 50000,
		}
		jsonData, _ := json.Marshal(payload)

		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().SetRequestURI("/api/v1/tickets")
		ctx.Request().Header.SetContentType("application/json")
		ctx.Request().Header.SetMethod("POST")
		ctx.Request().SetBody(jsonData)

		err := h.CreateTicket(ctx)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, ctx.Response().StatusCode())
	})
}

func TestUpdateTicket(t *testing.T) {
	setup()
	defer teardown()

	t.Run("success", func(t *testing.T) {
		payload := request.UpdateTicket{
			AmountPaid: int64Ptr(80000),
		}
		jsonData, _ := json.Marshal(payload)

		fctx := &fasthttp.RequestCtx{}
		fctx.Request.SetRequestURI("/api/v1/tickets/123")
		fctx.Request.Header.SetContentType("application/json")
		fctx.Request.Header.SetMethod("PUT")
		fctx.Request.SetBody(jsonData)
		ctx := app.AcquireCtx(fctx)
		_ = ctx.RestartRouting()

		ucm.On("UpdateTicket", ctx.UserContext(), "", &payload).Return(response.Ticket{Balance: 0}, nil)

		err := h.UpdateTicket(ctx)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, ctx.Response().StatusCode())
	})
}

func TestCheckIn(t *testing.T) {
	setup()
	defer teardown()

	t.Run("success", func(t *testing.T) {
		fctx := &fasthttp.RequestCtx{}
		fctx.Request.SetRequestURI("/api/v1/tickets/123/checkin")
		fctx.Request.Header.SetMethod("PUT")
		ctx := app.AcquireCtx(fctx)
		_ = ctx.RestartRouting()

		ucm.On("CheckIn", ctx.UserContext(), "").Return(response.Ticket{CheckedIn: true}, nil)

		err := h.CheckIn(ctx)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, ctx.Response().StatusCode())
	})

	t.Run("missing ticket", func(t *testing.T) {
		ucm = &mocks.Usecase{}
		h.Usecase = ucm

		fctx := &fasthttp.RequestCtx{}
		fctx.Request.SetRequestURI("/api/v1/tickets/999/checkin")
		fctx.Request.Header.SetMethod("PUT")
		ctx := app.AcquireCtx(fctx)
		_ = ctx.RestartRouting()

		ucm.On("CheckIn", ctx.UserContext(), "").Return(response.Ticket{}, errors.NotFound("ticket not found"))

		err := h.CheckIn(ctx)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, ctx.Response().StatusCode())
	})
}

func TestDeleteTicket(t *testing.T) {
	setup()
	defer teardown()

	t.Run("success", func(t *testing.T) {
		fctx := &fasthttp.RequestCtx{}
		fctx.Request.SetRequestURI("/api/v1/tickets/123")
		fctx.Request.Header.SetMethod("DELETE")
		ctx := app.AcquireCtx(fctx)
		_ = ctx.RestartRouting()

		ucm.On("DeleteTicket", ctx.UserContext(), "").Return(nil)

		err := h.DeleteTicket(ctx)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, ctx.Response().StatusCode())
	})
}

func TestShowTickets(t *testing.T) {
	setup()
	defer teardown()

	t.Run("success", func(t *testing.T) {
		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().SetRequestURI("/api/v1/tickets")
		ctx.Request().Header.SetMethod("GET")

		ucm.On("ShowTickets", ctx.UserContext()).Return([]response.Ticket{{Name: "Amina Okello"}}, nil)

		err := h.ShowTickets(ctx)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, ctx.Response().StatusCode())
	})
}

func TestGetGuestTicket(t *testing.T) {
	setup()
	defer teardown()

	t.Run("success", func(t *testing.T) {
		fctx := &fasthttp.RequestCtx{}
		fctx.Request.SetRequestURI("/api/v1/guest/tickets/123")
		fctx.Request.Header.SetMethod("GET")
		ctx := app.AcquireCtx(fctx)
		_ = ctx.RestartRouting()

		ucm.On("GetGuestTicket", ctx.UserContext(), "").Return(response.GuestTicket{Name: "Amina Okello"}, nil)

		err := h.GetGuestTicket(ctx)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, ctx.Response().StatusCode())
	})
}
