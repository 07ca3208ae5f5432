package handler

import (
	"fmt"
	"ticketing-service/internal/module/ticket/models/request"
	"ticketing-service/internal/module/ticket/usecases"
	"ticketing-service/internal/pkg/errors"
	"ticketing-service/internal/pkg/helpers"
	"ticketing-service/internal/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type TicketHandler struct {
	Log       log.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *TicketHandler) CreateTicket(ctx *fiber.Ctx) error {
	var req request.CreateTicket
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.CreateTicket(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error create ticket: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "success create ticket")
}

func (h *TicketHandler) UpdateTicket(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var req request.UpdateTicket
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.UpdateTicket(ctx.UserContext(), id, &req)
	if err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error update ticket: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success update ticket")
}

func (h *TicketHandler) CheckIn(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	resp, err := h.Usecase.CheckIn(ctx.UserContext(), id)
	if err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error check in ticket: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success check in ticket")
}

func (h *TicketHandler) CheckOut(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	resp, err := h.Usecase.CheckOut(ctx.UserContext(), id)
	if err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error check out ticket: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success check out ticket")
}

func (h *TicketHandler) DeleteTicket(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	if err := h.Usecase.DeleteTicket(ctx.UserContext(), id); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error delete ticket: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success delete ticket")
}

func (h *TicketHandler) ShowTickets(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.ShowTickets(ctx.UserContext())
	if err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error show tickets: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show tickets")
}

func (h *TicketHandler) GetTicket(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	resp, err := h.Usecase.GetTicket(ctx.UserContext(), id)
	if err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error get ticket: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get ticket")
}

// GetGuestTicket serves the public guest lookup reached through the QR code.
func (h *TicketHandler) GetGuestTicket(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	resp, err := h.Usecase.GetGuestTicket(ctx.UserContext(), id)
	if err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error get guest ticket: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get guest ticket")
}
