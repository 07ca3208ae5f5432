package handler

import (
	"fmt"
	"ticketing-service/internal/module/finance/models/request"
	"ticketing-service/internal/module/finance/usecases"
	"ticketing-service/internal/pkg/errors"
	"ticketing-service/internal/pkg/helpers"
	"ticketing-service/internal/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type FinanceHandler struct {
	Log       log.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *FinanceHandler) CreateExpense(ctx *fiber.Ctx) error {
	var req request.CreateExpense
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.CreateExpense(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error create expense: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "success create expense")
}

func (h *FinanceHandler) UpdateExpense(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var req request.UpdateExpense
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.UpdateExpense(ctx.UserContext(), id, &req)
	if err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error update expense: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success update expense")
}

func (h *FinanceHandler) DeleteExpense(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	if err := h.Usecase.DeleteExpense(ctx.UserContext(), id); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error delete expense: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success delete expense")
}

func (h *FinanceHandler) ShowExpenses(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.ShowExpenses(ctx.UserContext())
	if err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error show expenses: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show expenses")
}

func (h *FinanceHandler) CreateSponsorship(ctx *fiber.Ctx) error {
	var req request.CreateSponsorship
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.CreateSponsorship(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error create sponsorship: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "success create sponsorship")
}

func (h *FinanceHandler) UpdateSponsorship(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var req request.UpdateSponsorship
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.UpdateSponsorship(ctx.UserContext(), id, &req)
	if err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error update sponsorship: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success update sponsorship")
}

func (h *FinanceHandler) DeleteSponsorship(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	if err := h.Usecase.DeleteSponsorship(ctx.UserContext(), id); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error delete sponsorship: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success delete sponsorship")
}

func (h *FinanceHandler) ShowSponsorships(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.ShowSponsorships(ctx.UserContext())
	if err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error show sponsorships: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show sponsorships")
}

func (h *FinanceHandler) GetSummary(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.GetSummary(ctx.UserContext())
	if err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error get financial summary: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get financial summary")
}

func (h *FinanceHandler) Export(ctx *fiber.Ctx) error {
	exportType := ctx.Params("type")

	filename, payload, err := h.Usecase.ExportCSV(ctx.UserContext(), exportType)
	if err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error export %s: %v", exportType, err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCSV(ctx, filename, payload)
}
