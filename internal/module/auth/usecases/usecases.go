package usecases

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"ticketing-service/config"
	"ticketing-service/internal/module/auth/models/entity"
	"ticketing-service/internal/module/auth/models/request"
	"ticketing-service/internal/module/auth/models/response"
	"ticketing-service/internal/module/auth/repositories"
	"ticketing-service/internal/pkg/errors"
	"ticketing-service/internal/pkg/log"
	"ticketing-service/internal/pkg/monitoring"
	"ticketing-service/internal/pkg/scheduler"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"golang.org/x/crypto/bcrypt"
)

const timeFormat = "2006-01-02 15:04:05"

type usecase struct {
	repo         repositories.Repositories
	log          log.Logger
	enqueuer     scheduler.TaskEnqueuer
	passwordHash []byte
	cfg          *config.AdminConfig
}

type Usecase interface {
	Login(ctx context.Context, payload *request.Login, ip string) (response.Login, error)
	Logout(ctx context.Context, token string) error
	ExpireSession(ctx context.Context, token string) error
}

func New(repo repositories.Repositories, log log.Logger, enqueuer scheduler.TaskEnqueuer, cfg *config.AdminConfig) (Usecase, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &usecase{
		repo:         repo,
		log:          log,
		enqueuer:     enqueuer,
		passwordHash: hash,
		cfg:          cfg,
	}, nil
}

func (u *usecase) Login(ctx context.Context, payload *request.Login, ip string) (response.Login, error) {
	attempts, err := u.repo.IncrementLoginAttempts(ctx, ip)
	if err != nil {
		return response.Login{}, err
	}
	if attempts > u.cfg.MaxLoginAttempts {
		monitoring.ObserveLogin(false)
		return response.Login{}, errors.TooManyRequests("too many login attempts, try again later")
	}

	if err := bcrypt.CompareHashAndPassword(u.passwordHash, []byte(payload.Password)); err != nil {
		monitoring.ObserveLogin(false)
		return response.Login{}, errors.UnauthorizedError("invalid password")
	}

	token, err := generateToken()
	if err != nil {
		u.log.Error(ctx, "error generate session token", err)
		return response.Login{}, errors.InternalServerError("error generate session token")
	}

	session := entity.Session{
		ID:        uuid.New(),
		Token:     token,
		ExpiresAt: time.Now().Add(u.cfg.SessionTTL),
		CreatedAt: time.Now(),
	}

	if err := u.repo.CreateSession(ctx, &session); err != nil {
		return response.Login{}, err
	}

	// Schedule the delayed reaping task so expired rows do not pile up.
	// Failure here is non-fatal: expiry is still enforced on every request.
	u.scheduleExpiry(ctx, token)

	if err := u.repo.ResetLoginAttempts(ctx, ip); err != nil {
		u.log.Warn(ctx, "error reset login attempts", err)
	}

	monitoring.ObserveLogin(true)

	return response.Login{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt.Format(timeFormat),
	}, nil
}

func (u *usecase) Logout(ctx context.Context, token string) error {
	return u.repo.DeleteSession(ctx, token)
}

// ExpireSession deletes a session when its reaping task fires.
func (u *usecase) ExpireSession(ctx context.Context, token string) error {
	return u.repo.DeleteSession(ctx, token)
}

func (u *usecase) scheduleExpiry(ctx context.Context, token string) {
	payload, err := json.Marshal(request.SessionExpiration{Token: token})
	if err != nil {
		u.log.Error(ctx, "error marshal session expiration task", err)
		return
	}

	task := asynq.NewTask(scheduler.TypeSessionExpired, payload)
	if _, err := u.enqueuer.Enqueue(task, asynq.ProcessIn(u.cfg.SessionTTL)); err != nil {
		u.log.Error(ctx, "error enqueue session expiration task", err)
	}
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
