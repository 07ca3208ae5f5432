package handler_test

import (
	"testing"
	"ticketing-service/internal/module/audit/handler"
	"ticketing-service/internal/module/audit/mocks"
	"ticketing-service/internal/module/audit/models/response"
	ticketrequest "ticketing-service/internal/module/ticket/models/request"
	log_internal "ticketing-service/internal/pkg/log"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/valyala/fasthttp"
)

var (
	h             *handler.AuditHandler
	ucm           *mocks.Usecase
	app           *fiber.App
	validatorTest *validator.Validate
)

func setup() {
	ucm = &mocks.Usecase{}
	validatorTest = validator.New()
	h = &handler.AuditHandler{
		Log:       log_internal.Setup(),
		Validator: validatorTest,
		Usecase:   ucm,
	}
	app = fiber.New()
}

func teardown() {
	ucm = nil
	validatorTest = nil
	h = nil
	app = nil
}

func TestConsumeTicketEvents(t *testing.T) {
	setup()
	defer teardown()

	t.Run("success", func(t *testing.T) {
		// mock data
		event := ticketrequest.TicketEvent{
			EventType:  ticketrequest.EventTicketCreated,
			TicketID:   uuid.New().String(),
			Name:       "Amina Okello",
			OccurredAt: time.Now().Format(time.RFC3339),
		}
		jsonData, _ := json.Marshal(event)
		msg := message.NewMessage("123", jsonData)

		// mock usecase
		ucm.On("RecordTicketEvent", mock.Anything, &event).Return(nil)

		// test
		err := h.ConsumeTicketEvents(msg)

		// assertion
		assert.NoError(t, err)
	})

	t.Run("malformed payload goes to poison queue", func(t *testing.T) {
		msg := message.NewMessage("124", []byte("not json"))

		err := h.ConsumeTicketEvents(msg)

		assert.Error(t, err)
	})
}

func TestShowEvents(t *testing.T) {
	setup()
	defer teardown()

	t.Run("success", func(t *testing.T) {
		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().SetRequestURI("/api/v1/audit-events")
		ctx.Request().Header.SetMethod("GET")

		ucm.On("ShowEvents", ctx.UserContext()).Return([]response.AuditEvent{
			{EventType: ticketrequest.EventTicketCreated},
		}, nil)

		err := h.ShowEvents(ctx)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, ctx.Response().StatusCode())
	})
}
