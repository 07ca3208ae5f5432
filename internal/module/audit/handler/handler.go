package handler

import (
	"context"
	"fmt"
	"ticketing-service/internal/module/audit/usecases"
	ticketrequest "ticketing-service/internal/module/ticket/models/request"
	"ticketing-service/internal/pkg/helpers"
	"ticketing-service/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
)

type AuditHandler struct {
	Log       log.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

// ConsumeTicketEvents handles messages from the ticket_events topic.
// Returning an error routes the message to the poison queue.
func (h *AuditHandler) ConsumeTicketEvents(msg *message.Message) error {
	var event ticketrequest.TicketEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		h.Log.Error(msg.Context(), fmt.Sprintf("error unmarshal ticket event: %v", err))
		return err
	}

	if err := h.Validator.Struct(event); err != nil {
		h.Log.Error(msg.Context(), fmt.Sprintf("error validate ticket event: %v", err))
		return err
	}

	ctx := context.Background()
	if err := h.Usecase.RecordTicketEvent(ctx, &event); err != nil {
		h.Log.Error(msg.Context(), fmt.Sprintf("error record ticket event: %v", err))
		return err
	}

	return nil
}

func (h *AuditHandler) ShowEvents(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.ShowEvents(ctx.UserContext())
	if err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error show audit events: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show audit events")
}
