package handler

import (
	"context"
	"fmt"
	"ticketing-service/internal/module/auth/models/request"
	"ticketing-service/internal/module/auth/usecases"
	"ticketing-service/internal/pkg/errors"
	"ticketing-service/internal/pkg/helpers"
	"ticketing-service/internal/pkg/log"
	"ticketing-service/internal/pkg/middleware"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
)

type AuthHandler struct {
	Log        log.Logger
	Validator  *validator.Validate
	Usecase    usecases.Usecase
	SessionTTL time.Duration
}

func (h *AuthHandler) Login(ctx *fiber.Ctx) error {
	var req request.Login
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.Login(ctx.UserContext(), &req, ctx.IP())
	if err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error login: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    resp.Token,
		Path:     "/",
		MaxAge:   int(h.SessionTTL.Seconds()),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return helpers.RespSuccess(ctx, h.Log, resp, "success login")
}

func (h *AuthHandler) Logout(ctx *fiber.Ctx) error {
	token, _ := ctx.Locals(middleware.SessionTokenKey).(string)

	if err := h.Usecase.Logout(ctx.UserContext(), token); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error logout: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return helpers.RespSuccess(ctx, h.Log, nil, "success logout")
}

// SetSessionExpired handles the delayed reaping task scheduled at login.
func (h *AuthHandler) SetSessionExpired(ctx context.Context, t *asynq.Task) error {
	var req request.SessionExpiration
	if err := json.Unmarshal(t.Payload(), &req); err != nil {
		h.Log.Error(ctx, fmt.Sprintf("error unmarshal payload: %v", err))
		return err
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Error(ctx, fmt.Sprintf("error validate payload: %v", err))
		return err
	}

	if err := h.Usecase.ExpireSession(ctx, req.Token); err != nil {
		h.Log.Error(ctx, fmt.Sprintf("error expire session: %v", err))
		return err
	}

	return nil
}
