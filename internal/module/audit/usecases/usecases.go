package usecases

import (
	"context"
	"ticketing-service/internal/module/audit/models/entity"
	"ticketing-service/internal/module/audit/models/response"
	"ticketing-service/internal/module/audit/repositories"
	ticketrequest "ticketing-service/internal/module/ticket/models/request"
	"ticketing-service/internal/pkg/log"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

const recentEventsLimit = 100

type usecase struct {
	repo repositories.Repositories
	log  log.Logger
}

type Usecase interface {
	RecordTicketEvent(ctx context.Context, event *ticketrequest.TicketEvent) error
	ShowEvents(ctx context.Context) ([]response.AuditEvent, error)
}

func New(repo repositories.Repositories, log log.Logger) Usecase {
	return &usecase{
		repo: repo,
		log:  log,
	}
}

func (u *usecase) RecordTicketEvent(ctx context.Context, event *ticketrequest.TicketEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	record := entity.AuditEvent{
		ID:        uuid.New(),
		EventType: event.EventType,
		TicketID:  event.TicketID,
		Payload:   string(payload),
		CreatedAt: time.Now(),
	}

	return u.repo.InsertEvent(ctx, &record)
}

func (u *usecase) ShowEvents(ctx context.Context) ([]response.AuditEvent, error) {
	events, err := u.repo.FindRecentEvents(ctx, recentEventsLimit)
	if err != nil {
		return nil, err
	}
	return response.FromAuditEvents(events), nil
}
