package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"ticketing-service/internal/module/auth/models/entity"
	"ticketing-service/internal/pkg/database"
	"ticketing-service/internal/pkg/errors"
	"ticketing-service/internal/pkg/log"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

type repositories struct {
	db          *sqlx.DB
	log         log.Logger
	redisClient *redis.Client
	attemptTTL  time.Duration
}

type Repositories interface {
	// db
	CreateSession(ctx context.Context, session *entity.Session) error
	FindSessionByToken(ctx context.Context, token string) (entity.Session, error)
	DeleteSession(ctx context.Context, token string) error
	// redis
	IncrementLoginAttempts(ctx context.Context, ip string) (int64, error)
	ResetLoginAttempts(ctx context.Context, ip string) error
}

func New(db *sqlx.DB, log log.Logger, redisClient *redis.Client, attemptTTL time.Duration) Repositories {
	return &repositories{
		db:          db,
		log:         log,
		redisClient: redisClient,
		attemptTTL:  attemptTTL,
	}
}

// CreateSession implements Repositories.
func (r *repositories) CreateSession(ctx context.Context, session *entity.Session) error {
	query := `
		INSERT INTO sessions (id, token, expires_at, created_at)
		VALUES (:id, :token, :expires_at, :created_at)`
	err := database.Retry(ctx, func() error {
		_, execErr := r.db.NamedExecContext(ctx, query, session)
		return execErr
	})
	if err != nil {
		r.log.Error(ctx, "error insert session", err)
		return errors.InternalServerError("error insert session")
	}
	return nil
}

// FindSessionByToken implements Repositories.
func (r *repositories) FindSessionByToken(ctx context.Context, token string) (entity.Session, error) {
	var session entity.Session
	err := r.db.GetContext(ctx, &session, `SELECT * FROM sessions WHERE token = $1`, token)
	if err == sql.ErrNoRows {
		return entity.Session{}, errors.UnauthorizedError("invalid session")
	}
	if err != nil {
		r.log.Error(ctx, "error find session by token", err)
		return entity.Session{}, errors.InternalServerError("error find session by token")
	}
	return session, nil
}

// DeleteSession implements Repositories.
func (r *repositories) DeleteSession(ctx context.Context, token string) error {
	err := database.Retry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = $1`, token)
		return execErr
	})
	if err != nil {
		r.log.Error(ctx, "error delete session", err)
		return errors.InternalServerError("error delete session")
	}
	return nil
}

// IncrementLoginAttempts implements Repositories. The counter expires so a
// locked-out operator gets back in after the window passes.
func (r *repositories) IncrementLoginAttempts(ctx context.Context, ip string) (int64, error) {
	key := fmt.Sprintf("login_attempts:%s", ip)
	count, err := r.redisClient.Incr(ctx, key).Result()
	if err != nil {
		r.log.Error(ctx, "error increment login attempts", err)
		return 0, errors.InternalServerError("error increment login attempts")
	}
	if count == 1 {
		r.redisClient.Expire(ctx, key, r.attemptTTL)
	}
	return count, nil
}

// ResetLoginAttempts implements Repositories.
func (r *repositories) ResetLoginAttempts(ctx context.Context, ip string) error {
	key := fmt.Sprintf("login_attempts:%s", ip)
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		r.log.Error(ctx, "error reset login attempts", err)
		return errors.InternalServerError("error reset login attempts")
	}
	return nil
}
