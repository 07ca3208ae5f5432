package helpers

import (
	"fmt"
	"net/http"
	"ticketing-service/internal/pkg/errors"
	"ticketing-service/internal/pkg/log"

	"github.com/gofiber/fiber/v2"
)

type Meta struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Response struct {
	Meta Meta        `json:"meta"`
	Data interface{} `json:"data,omitempty"`
}

func RespSuccess(ctx *fiber.Ctx, logger log.Logger, data interface{}, message string) error {
	return ctx.Status(http.StatusOK).JSON(Response{
		Meta: Meta{Code: http.StatusOK, Message: message},
		Data: data,
	})
}

func RespCreated(ctx *fiber.Ctx, logger log.Logger, data interface{}, message string) error {
	return ctx.Status(http.StatusCreated).JSON(Response{
		Meta: Meta{Code: http.StatusCreated, Message: message},
		Data: data,
	})
}

func RespError(ctx *fiber.Ctx, logger log.Logger, err error) error {
	code := errors.GetCode(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		logger.Error(ctx.UserContext(), "internal error", err)
		message = "internal server error"
	}
	return ctx.Status(code).JSON(Response{
		Meta: Meta{Code: code, Message: message},
	})
}

// RespCSV writes a CSV payload as a file download.
func RespCSV(ctx *fiber.Ctx, filename string, payload []byte) error {
	ctx.Set(fiber.HeaderContentType, "text/csv")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return ctx.Status(http.StatusOK).Send(payload)
}
