package repositories

import (
	"context"
	"ticketing-service/internal/module/audit/models/entity"
	"ticketing-service/internal/pkg/database"
	"ticketing-service/internal/pkg/errors"
	"ticketing-service/internal/pkg/log"

	"github.com/jmoiron/sqlx"
)

type repositories struct {
	db  *sqlx.DB
	log log.Logger
}

type Repositories interface {
	InsertEvent(ctx context.Context, event *entity.AuditEvent) error
	FindRecentEvents(ctx context.Context, limit int) ([]entity.AuditEvent, error)
}

func New(db *sqlx.DB, log log.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

// InsertEvent implements Repositories.
func (r *repositories) InsertEvent(ctx context.Context, event *entity.AuditEvent) error {
	query := `
		INSERT INTO audit_events (id, event_type, ticket_id, payload, created_at)
		VALUES (:id, :event_type, :ticket_id, :payload, :created_at)`
	err := database.Retry(ctx, func() error {
		_, execErr := r.db.NamedExecContext(ctx, query, event)
		return execErr
	})
	if err != nil {
		r.log.Error(ctx, "error insert audit event", err)
		return errors.InternalServerError("error insert audit event")
	}
	return nil
}

// FindRecentEvents implements Repositories.
func (r *repositories) FindRecentEvents(ctx context.Context, limit int) ([]entity.AuditEvent, error) {
	events := []entity.AuditEvent{}
	query := `SELECT * FROM audit_events ORDER BY created_at DESC LIMIT $1`
	if err := r.db.SelectContext(ctx, &events, query, limit); err != nil {
		r.log.Error(ctx, "error find recent audit events", err)
		return nil, errors.InternalServerError("error find recent audit events")
	}
	return events, nil
}
