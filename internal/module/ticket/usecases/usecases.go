package usecases

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"ticketing-service/config"
	"ticketing-service/internal/module/ticket/models/entity"
	"ticketing-service/internal/module/ticket/models/request"
	"ticketing-service/internal/module/ticket/models/response"
	"ticketing-service/internal/module/ticket/repositories"
	"ticketing-service/internal/pkg/errors"
	"ticketing-service/internal/pkg/log"
	"ticketing-service/internal/pkg/monitoring"
	"ticketing-service/internal/pkg/qr"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

const eventsTopic = "ticket_events"

type usecase struct {
	repo      repositories.Repositories
	log       log.Logger
	publisher message.Publisher
	qr        qr.Generator
	cfg       *config.TicketingConfig
}

type Usecase interface {
	CreateTicket(ctx context.Context, payload *request.CreateTicket) (response.Ticket, error)
	UpdateTicket(ctx context.Context, id string, payload *request.UpdateTicket) (response.Ticket, error)
	CheckIn(ctx context.Context, id string) (response.Ticket, error)
	CheckOut(ctx context.Context, id string) (response.Ticket, error)
	DeleteTicket(ctx context.Context, id string) error
	ShowTickets(ctx context.Context) ([]response.Ticket, error)
	GetTicket(ctx context.Context, id string) (response.Ticket, error)
	GetGuestTicket(ctx context.Context, id string) (response.GuestTicket, error)
}

func New(repo repositories.Repositories, log log.Logger, publisher message.Publisher, qrGen qr.Generator, cfg *config.TicketingConfig) Usecase {
	return &usecase{
		repo:      repo,
		log:       log,
		publisher: publisher,
		qr:        qrGen,
		cfg:       cfg,
	}
}

func (u *usecase) CreateTicket(ctx context.Context, payload *request.CreateTicket) (resp response.Ticket, err error) {
	defer func() { monitoring.ObserveTicketOperation("create", err) }()

	name := strings.TrimSpace(payload.Name)
	phone := strings.TrimSpace(payload.Phone)
	if name == "" {
		return response.Ticket{}, errors.BadRequest("name is required")
	}
	if phone == "" {
		return response.Ticket{}, errors.BadRequest("phone is required")
	}

	pricing, err := entity.ComputePricing(u.cfg.StandardPrice, payload.AmountPaid, payload.CustomPrice, payload.DiscountAmount)
	if err != nil {
		return response.Ticket{}, err
	}

	id := uuid.New()

	// The QR payload is generated before the insert so that creation is
	// all-or-nothing: an encoder failure aborts with no record written.
	qrCode, err := u.qr.Encode(fmt.Sprintf("%s/guest/%s", u.cfg.GuestBaseURL, id))
	if err != nil {
		u.log.Error(ctx, "error generate qr code", err)
		return response.Ticket{}, err
	}

	ticket := entity.Ticket{
		ID:             id,
		Name:           name,
		Phone:          phone,
		TicketType:     pricing.TypeLabel(u.cfg.Currency),
		StandardPrice:  u.cfg.StandardPrice,
		DiscountAmount: derefOrZero(payload.DiscountAmount),
		DiscountReason: payload.DiscountReason,
		AmountPaid:     payload.AmountPaid,
		Balance:        pricing.Balance,
		CheckedIn:      false,
		QRCode:         qrCode,
		Version:        1,
		CreatedAt:      time.Now(),
	}
	if pricing.CustomPrice != nil {
		ticket.CustomPrice = sql.NullInt64{Int64: *pricing.CustomPrice, Valid: true}
	}

	if err = u.repo.CreateTicket(ctx, &ticket); err != nil {
		return response.Ticket{}, err
	}

	u.publishEvent(ctx, request.EventTicketCreated, ticket)

	return response.FromTicket(ticket), nil
}

// validTicketID rejects ids that can never resolve to a row, before the
// database sees them. Postgres raises a type error on a malformed uuid,
// which would otherwise surface as a 500.
func validTicketID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errors.NotFound("ticket not found")
	}
	return nil
}

func (u *usecase) UpdateTicket(ctx context.Context, id string, payload *request.UpdateTicket) (resp response.Ticket, err error) {
	defer func() { monitoring.ObserveTicketOperation("update", err) }()

	if err = validTicketID(id); err != nil {
		return response.Ticket{}, err
	}

	existing, err := u.repo.FindTicketByID(ctx, id)
	if err != nil {
		return response.Ticket{}, err
	}

	merged := existing

	if payload.Name != nil {
		merged.Name = strings.TrimSpace(*payload.Name)
		if merged.Name == "" {
			return response.Ticket{}, errors.BadRequest("name is required")
		}
	}
	if payload.Phone != nil {
		merged.Phone = strings.TrimSpace(*payload.Phone)
		if merged.Phone == "" {
			return response.Ticket{}, errors.BadRequest("phone is required")
		}
	}
	if payload.AmountPaid != nil {
		merged.AmountPaid = *payload.AmountPaid
	}
	if payload.DiscountReason != nil {
		merged.DiscountReason = *payload.DiscountReason
	}

	// The pricing inputs merge stored and provided fields, then go through
	// the same calculator as create. An explicit zero discount clears a
	// stored one; when the stored custom price was discount-derived it is
	// dropped with it, returning the ticket to the standard price.
	discountAmount := payload.DiscountAmount
	discountCleared := discountAmount != nil && *discountAmount == 0
	if discountAmount == nil && existing.DiscountAmount > 0 {
		stored := existing.DiscountAmount
		discountAmount = &stored
	}
	customPrice := payload.CustomPrice
	if customPrice == nil && existing.CustomPrice.Valid && !(discountCleared && existing.DiscountAmount > 0) {
		stored := existing.CustomPrice.Int64
		customPrice = &stored
	}

	pricing, err := entity.ComputePricing(merged.StandardPrice, merged.AmountPaid, customPrice, discountAmount)
	if err != nil {
		return response.Ticket{}, err
	}

	merged.TicketType = pricing.TypeLabel(u.cfg.Currency)
	merged.Balance = pricing.Balance
	merged.CustomPrice = sql.NullInt64{}
	if pricing.CustomPrice != nil {
		merged.CustomPrice = sql.NullInt64{Int64: *pricing.CustomPrice, Valid: true}
	}
	merged.DiscountAmount = derefOrZero(discountAmount)

	// checked_in only moves when explicitly provided; the arrival timestamp
	// follows the transition.
	if payload.CheckedIn != nil && *payload.CheckedIn != existing.CheckedIn {
		merged.CheckedIn = *payload.CheckedIn
		if merged.CheckedIn {
			merged.CheckedInAt = sql.NullTime{Time: time.Now(), Valid: true}
		} else {
			merged.CheckedInAt = sql.NullTime{}
		}
	}

	if err = u.repo.UpdateTicket(ctx, &merged); err != nil {
		return response.Ticket{}, err
	}

	updated, err := u.repo.FindTicketByID(ctx, id)
	if err != nil {
		return response.Ticket{}, err
	}

	u.publishEvent(ctx, request.EventTicketUpdated, updated)

	return response.FromTicket(updated), nil
}

func (u *usecase) CheckIn(ctx context.Context, id string) (resp response.Ticket, err error) {
	defer func() { monitoring.ObserveTicketOperation("checkin", err) }()
	return u.setCheckedIn(ctx, id, true)
}

func (u *usecase) CheckOut(ctx context.Context, id string) (resp response.Ticket, err error) {
	defer func() { monitoring.ObserveTicketOperation("checkout", err) }()
	return u.setCheckedIn(ctx, id, false)
}

func (u *usecase) setCheckedIn(ctx context.Context, id string, checkedIn bool) (response.Ticket, error) {
	if err := validTicketID(id); err != nil {
		return response.Ticket{}, err
	}

	ticket, err := u.repo.FindTicketByID(ctx, id)
	if err != nil {
		return response.Ticket{}, err
	}

	// Re-applying the current state is a no-op, not an error.
	if ticket.CheckedIn == checkedIn {
		return response.FromTicket(ticket), nil
	}

	if err := u.repo.SetCheckedIn(ctx, id, checkedIn); err != nil {
		return response.Ticket{}, err
	}

	updated, err := u.repo.FindTicketByID(ctx, id)
	if err != nil {
		return response.Ticket{}, err
	}

	eventType := request.EventTicketCheckedIn
	if !checkedIn {
		eventType = request.EventTicketCheckedOut
	}
	u.publishEvent(ctx, eventType, updated)

	return response.FromTicket(updated), nil
}

func (u *usecase) DeleteTicket(ctx context.Context, id string) (err error) {
	defer func() { monitoring.ObserveTicketOperation("delete", err) }()

	if err = validTicketID(id); err != nil {
		return err
	}

	ticket, err := u.repo.FindTicketByID(ctx, id)
	if err != nil {
		return err
	}

	if err = u.repo.DeleteTicket(ctx, id); err != nil {
		return err
	}

	u.publishEvent(ctx, request.EventTicketDeleted, ticket)

	return nil
}

func (u *usecase) ShowTickets(ctx context.Context) ([]response.Ticket, error) {
	tickets, err := u.repo.FindAllTickets(ctx)
	if err != nil {
		return nil, err
	}
	return response.FromTickets(tickets), nil
}

func (u *usecase) GetTicket(ctx context.Context, id string) (response.Ticket, error) {
	if err := validTicketID(id); err != nil {
		return response.Ticket{}, err
	}

	ticket, err := u.repo.FindTicketByID(ctx, id)
	if err != nil {
		return response.Ticket{}, err
	}
	return response.FromTicket(ticket), nil
}

func (u *usecase) GetGuestTicket(ctx context.Context, id string) (response.GuestTicket, error) {
	if err := validTicketID(id); err != nil {
		return response.GuestTicket{}, err
	}

	ticket, err := u.repo.FindTicketByID(ctx, id)
	if err != nil {
		return response.GuestTicket{}, err
	}
	return response.GuestFromTicket(ticket), nil
}

// publishEvent is best-effort: a broker outage must not fail the admin
// operation that already committed.
func (u *usecase) publishEvent(ctx context.Context, eventType string, ticket entity.Ticket) {
	event := request.TicketEvent{
		EventType:  eventType,
		TicketID:   ticket.ID.String(),
		Name:       ticket.Name,
		OccurredAt: time.Now().Format(time.RFC3339),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		u.log.Error(ctx, "error marshal ticket event", err)
		return
	}

	if err := u.publisher.Publish(eventsTopic, message.NewMessage(watermill.NewUUID(), payload)); err != nil {
		u.log.Error(ctx, "error publish ticket event", err)
	}
}

func derefOrZero(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
