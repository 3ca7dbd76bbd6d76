package commands

import (
	"context"
	"encoding/json"

	"boxoffice/internal/domain/booking"
	reqdto "boxoffice/internal/handler/dto/request"
	"boxoffice/internal/pkg/clock"
	"boxoffice/internal/pkg/config"
	"boxoffice/internal/pkg/errs"
	"boxoffice/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingCommands interface {
	UpdateStatus(ctx context.Context, id uuid.UUID, req reqdto.UpdateBookingStatusRequest) (*queries.BookingView, error)
	CreateGroupBooking(ctx context.Context, req reqdto.CreateGroupBookingRequest) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	repo             BookingRepository
	notificationRepo NotificationRepository
	bookingQueries   queries.BookingQueries
	db               *pgxpool.Pool
	clock            clock.Clock
	platform         string
}

func NewBookingCommands(
	repo BookingRepository,
	notificationRepo NotificationRepository,
	bookingQueries queries.BookingQueries,
	db *pgxpool.Pool,
	clk clock.Clock,
	cfg config.SpotConfig,
) BookingCommands {
	return &bookingCommandsImpl{
		repo:             repo,
		notificationRepo: notificationRepo,
		bookingQueries:   bookingQueries,
		db:               db,
		clock:            clk,
		platform:         cfg.Platform,
	}
}

func (c *bookingCommandsImpl) UpdateStatus(ctx context.Context, id uuid.UUID, req reqdto.UpdateBookingStatusRequest) (*queries.BookingView, error) {
	view, err := c.bookingQueries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := booking.NewStatus(req.Status)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	current, err := booking.NewStatus(view.Status)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	entity := booking.ReconstructBooking(
		view.ID, view.CustomerID, view.CustomerName, view.Date, view.Time,
		view.Amount, current, view.Platform, view.TicketCount, view.AddOns,
		view.PrimaryTicketTypeID, view.GroupSize, view.CreatedAt, view.UpdatedAt,
	)
	if err := entity.UpdateStatus(next); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := c.repo.UpdateStatus(ctx, id, entity.Status()); err != nil {
		return nil, markWriteErr(err, errs.ErrBookingNotFound)
	}
	return c.bookingQueries.GetByID(ctx, id)
}

// CreateGroupBooking books a whole party as one record with per-head
// pricing, the bulk path group organizers go through instead of the
// terminal.
func (c *bookingCommandsImpl) CreateGroupBooking(ctx context.Context, req reqdto.CreateGroupBookingRequest) (*queries.BookingView, error) {
	draft := booking.Draft{
		CustomerID:          req.CustomerID,
		CustomerName:        req.CustomerName,
		Date:                req.Date,
		Time:                req.Time,
		Status:              booking.StatusConfirmed,
		Platform:            c.platform,
		AddOns:              []booking.AddOnSelection{},
		PrimaryTicketTypeID: req.PrimaryTicketTypeID,
	}
	entity, err := booking.NewGroupBooking(draft, req.GroupSize, req.PerHead)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	tx, err := c.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	bookingID, err := c.repo.Create(ctx, tx, entity)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	payload, err := json.Marshal(map[string]any{
		"booking_id":    bookingID,
		"customer_name": entity.CustomerName(),
		"group_size":    entity.GroupSize(),
		"amount":        entity.Amount(),
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if err := c.notificationRepo.CreateJob(ctx, tx, "email", "group_booking_created", payload, c.clock.Now()); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return c.bookingQueries.GetByID(ctx, bookingID)
}
