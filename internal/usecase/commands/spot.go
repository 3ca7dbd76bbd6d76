package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"boxoffice/internal/domain/booking"
	"boxoffice/internal/domain/customer"
	"boxoffice/internal/domain/order"
	"boxoffice/internal/domain/promotion"
	reqdto "boxoffice/internal/handler/dto/request"
	"boxoffice/internal/infra"
	"boxoffice/internal/pkg/clock"
	"boxoffice/internal/pkg/config"
	"boxoffice/internal/pkg/errs"
	"boxoffice/internal/usecase/queries"
	"boxoffice/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type SpotResult struct {
	Order  *queries.SpotOrderView
	Notice Notice
}

type CheckoutResult struct {
	Order     *queries.SpotOrderView
	BookingID uuid.UUID
	ChangeDue decimal.Decimal
	Notice    Notice
}

type SpotCommands interface {
	AddLine(ctx context.Context, terminalID string, req reqdto.AddLineRequest) (*SpotResult, error)
	SetQuantity(ctx context.Context, terminalID string, itemID uuid.UUID, req reqdto.SetQuantityRequest) (*SpotResult, error)
	RemoveLine(ctx context.Context, terminalID string, index int) (*SpotResult, error)
	ApplyDiscount(ctx context.Context, terminalID string, req reqdto.ApplyDiscountRequest) (*SpotResult, error)
	SelectCustomer(ctx context.Context, terminalID string, req reqdto.SelectCustomerRequest) (*SpotResult, error)
	Reset(ctx context.Context, terminalID string) (*SpotResult, error)
	Checkout(ctx context.Context, terminalID string, req reqdto.CheckoutRequest) (*CheckoutResult, error)
}

type spotCommandsImpl struct {
	sessions         *shared.SessionStore
	catalogQueries   queries.CatalogQueries
	customerQueries  queries.CustomerQueries
	promotionStore   queries.PromotionReadStore
	fallbackLookup   order.DiscountLookup
	bookingRepo      BookingRepository
	promotionRepo    PromotionRepository
	notificationRepo NotificationRepository
	notifier         Notifier
	db               *pgxpool.Pool
	clock            clock.Clock
	platform         string
}

func NewSpotCommands(
	sessions *shared.SessionStore,
	catalogQueries queries.CatalogQueries,
	customerQueries queries.CustomerQueries,
	promotionStore queries.PromotionReadStore,
	fallbackLookup order.DiscountLookup,
	bookingRepo BookingRepository,
	promotionRepo PromotionRepository,
	notificationRepo NotificationRepository,
	notifier Notifier,
	db *pgxpool.Pool,
	clk clock.Clock,
	cfg config.SpotConfig,
) SpotCommands {
	return &spotCommandsImpl{
		sessions:         sessions,
		catalogQueries:   catalogQueries,
		customerQueries:  customerQueries,
		promotionStore:   promotionStore,
		fallbackLookup:   fallbackLookup,
		bookingRepo:      bookingRepo,
		promotionRepo:    promotionRepo,
		notificationRepo: notificationRepo,
		notifier:         notifier,
		db:               db,
		clock:            clk,
		platform:         cfg.Platform,
	}
}

func (s *spotCommandsImpl) AddLine(ctx context.Context, terminalID string, req reqdto.AddLineRequest) (*SpotResult, error) {
	item, active, err := s.resolveItem(ctx, req.Kind, req.ItemID)
	if err != nil {
		return nil, err
	}

	session := s.sessions.Get(terminalID)
	var result *SpotResult
	err = session.Mutate(func(o *order.Order) error {
		if !active && !hasLine(o, item.ID) {
			return errs.ErrCatalogItemInactive
		}
		change, addErr := o.AddItem(item, req.DeltaOrDefault())
		if addErr != nil {
			return addErr
		}
		result = &SpotResult{
			Order:  queries.NewSpotOrderView(terminalID, o),
			Notice: lineNotice(change, item.Name),
		}
		return nil
	})
	if err != nil {
		s.notifyError(ctx, terminalID, err)
		return nil, err
	}
	s.notifier.Notify(ctx, terminalID, result.Notice)
	return result, nil
}

func (s *spotCommandsImpl) SetQuantity(ctx context.Context, terminalID string, itemID uuid.UUID, req reqdto.SetQuantityRequest) (*SpotResult, error) {
	item, active, err := s.resolveItem(ctx, req.Kind, itemID)
	if err != nil {
		return nil, err
	}

	session := s.sessions.Get(terminalID)
	var result *SpotResult
	err = session.Mutate(func(o *order.Order) error {
		if !active && !hasLine(o, item.ID) {
			return errs.ErrCatalogItemInactive
		}
		change, setErr := o.SetQuantity(item, req.Quantity)
		if setErr != nil {
			return setErr
		}
		result = &SpotResult{
			Order:  queries.NewSpotOrderView(terminalID, o),
			Notice: lineNotice(change, item.Name),
		}
		return nil
	})
	if err != nil {
		s.notifyError(ctx, terminalID, err)
		return nil, err
	}
	s.notifier.Notify(ctx, terminalID, result.Notice)
	return result, nil
}

func (s *spotCommandsImpl) RemoveLine(ctx context.Context, terminalID string, index int) (*SpotResult, error) {
	session := s.sessions.Get(terminalID)
	var result *SpotResult
	err := session.Mutate(func(o *order.Order) error {
		removed, removeErr := o.RemoveLine(index)
		if removeErr != nil {
			return removeErr
		}
		result = &SpotResult{
			Order:  queries.NewSpotOrderView(terminalID, o),
			Notice: Notice{Message: fmt.Sprintf("Removed %s", removed.Name), Severity: SeverityInfo},
		}
		return nil
	})
	if err != nil {
		s.notifyError(ctx, terminalID, err)
		return nil, err
	}
	s.notifier.Notify(ctx, terminalID, result.Notice)
	return result, nil
}

func (s *spotCommandsImpl) ApplyDiscount(ctx context.Context, terminalID string, req reqdto.ApplyDiscountRequest) (*SpotResult, error) {
	code := req.NormalizedCode()
	lookup := boundLookup{ctx: ctx, commands: s}

	session := s.sessions.Get(terminalID)
	var result *SpotResult
	err := session.Mutate(func(o *order.Order) error {
		if applyErr := o.ApplyDiscountCode(code, lookup); applyErr != nil {
			return applyErr
		}
		totals := o.Totals()
		result = &SpotResult{
			Order: queries.NewSpotOrderView(terminalID, o),
			Notice: Notice{
				Message:  fmt.Sprintf("Discount %s applied (-%s)", code, totals.Discount.StringFixed(2)),
				Severity: SeveritySuccess,
			},
		}
		return nil
	})
	if err != nil {
		s.notifyError(ctx, terminalID, err)
		return nil, err
	}
	s.notifier.Notify(ctx, terminalID, result.Notice)
	return result, nil
}

func (s *spotCommandsImpl) SelectCustomer(ctx context.Context, terminalID string, req reqdto.SelectCustomerRequest) (*SpotResult, error) {
	var ref customer.Ref
	if req.CustomerID != nil {
		view, err := s.customerQueries.GetByID(ctx, *req.CustomerID)
		if err != nil {
			return nil, err
		}
		ref = customer.Ref{ID: view.ID.String(), Name: view.Name}
	}

	session := s.sessions.Get(terminalID)
	var result *SpotResult
	err := session.Mutate(func(o *order.Order) error {
		if req.CustomerID == nil {
			named, regErr := o.RegisterWalkInAsNamed(req.Name, req.Email, req.Phone)
			if regErr != nil {
				return regErr
			}
			ref = named
		} else {
			o.SelectCustomer(ref)
		}
		result = &SpotResult{
			Order:  queries.NewSpotOrderView(terminalID, o),
			Notice: Notice{Message: fmt.Sprintf("Customer set to %s", ref.Name), Severity: SeverityInfo},
		}
		return nil
	})
	if err != nil {
		s.notifyError(ctx, terminalID, err)
		return nil, err
	}
	s.notifier.Notify(ctx, terminalID, result.Notice)
	return result, nil
}

func (s *spotCommandsImpl) Reset(ctx context.Context, terminalID string) (*SpotResult, error) {
	session := s.sessions.Get(terminalID)
	var result *SpotResult
	err := session.Mutate(func(o *order.Order) error {
		o.Reset()
		result = &SpotResult{
			Order:  queries.NewSpotOrderView(terminalID, o),
			Notice: Notice{Message: "Order cleared", Severity: SeverityInfo},
		}
		return nil
	})
	if err != nil {
		s.notifyError(ctx, terminalID, err)
		return nil, err
	}
	s.notifier.Notify(ctx, terminalID, result.Notice)
	return result, nil
}

// Checkout persists the booking and its notification job in one transaction,
// then resets the ledger. A failure anywhere leaves the order open and
// unchanged so the cashier can retry or amend it.
func (s *spotCommandsImpl) Checkout(ctx context.Context, terminalID string, req reqdto.CheckoutRequest) (*CheckoutResult, error) {
	session := s.sessions.Get(terminalID)
	tendered := req.Amount()
	var result *CheckoutResult
	err := session.Checkout(func(o *order.Order) error {
		if validateErr := o.ValidateCheckout(tendered); validateErr != nil {
			return validateErr
		}
		changeDue := o.ChangeDue(tendered)
		draft := o.BuildBooking(s.clock.Now(), s.platform)
		record, buildErr := booking.NewBooking(draft)
		if buildErr != nil {
			return errs.Mark(buildErr, errs.ErrDomainValidation)
		}
		discountCode := o.DiscountCode()

		bookingID, persistErr := s.persistCheckout(ctx, record, discountCode)
		if persistErr != nil {
			return persistErr
		}

		o.Reset()
		result = &CheckoutResult{
			Order:     queries.NewSpotOrderView(terminalID, o),
			BookingID: bookingID,
			ChangeDue: changeDue,
			Notice: Notice{
				Message:  fmt.Sprintf("Booking confirmed. Change due %s", changeDue.StringFixed(2)),
				Severity: SeveritySuccess,
			},
		}
		return nil
	})
	if err != nil {
		s.notifyError(ctx, terminalID, err)
		return nil, err
	}
	s.notifier.Notify(ctx, terminalID, result.Notice)
	return result, nil
}

func (s *spotCommandsImpl) persistCheckout(ctx context.Context, record *booking.Booking, discountCode string) (uuid.UUID, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	bookingID, err := s.bookingRepo.Create(ctx, tx, record)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if discountCode != "" {
		if err := s.promotionRepo.IncrementUsage(ctx, tx, discountCode); err != nil {
			return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	payload, err := json.Marshal(map[string]any{
		"booking_id":    bookingID,
		"customer_name": record.CustomerName(),
		"amount":        record.Amount(),
		"platform":      record.Platform(),
	})
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if err := s.notificationRepo.CreateJob(ctx, tx, "email", "booking_confirmed", payload, s.clock.Now()); err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return bookingID, nil
}

// resolveItem snapshots a catalog row into a ledger item. The active flag is
// returned separately; an inactive item may still be decremented if the
// order already holds a line for it.
func (s *spotCommandsImpl) resolveItem(ctx context.Context, kind reqdto.ItemKind, itemID uuid.UUID) (order.Item, bool, error) {
	switch kind {
	case reqdto.ItemKindTicket:
		view, err := s.catalogQueries.GetTicketType(ctx, itemID)
		if err != nil {
			return order.Item{}, false, err
		}
		baseCost := view.BaseCost
		return order.Item{ID: view.ID, Name: view.Name, BaseCost: &baseCost, IsTicket: true}, view.IsActive, nil
	case reqdto.ItemKindAddOn:
		view, err := s.catalogQueries.GetAddOn(ctx, itemID)
		if err != nil {
			return order.Item{}, false, err
		}
		price := view.Price
		return order.Item{ID: view.ID, Name: view.Name, Price: &price, IsTicket: false}, view.IsActive, nil
	default:
		return order.Item{}, false, errs.ErrDomainValidation
	}
}

func (s *spotCommandsImpl) notifyError(ctx context.Context, terminalID string, err error) {
	s.notifier.Notify(ctx, terminalID, Notice{Message: err.Error(), Severity: SeverityError})
}

func hasLine(o *order.Order, itemID uuid.UUID) bool {
	for _, l := range o.Lines() {
		if l.ItemID == itemID {
			return true
		}
	}
	return false
}

func lineNotice(change order.Change, name string) Notice {
	switch change {
	case order.LineAdded:
		return Notice{Message: fmt.Sprintf("Added %s", name), Severity: SeveritySuccess}
	case order.LineUpdated:
		return Notice{Message: fmt.Sprintf("Updated %s", name), Severity: SeverityInfo}
	case order.LineRemoved:
		return Notice{Message: fmt.Sprintf("Removed %s", name), Severity: SeverityInfo}
	default:
		return Notice{Message: "No change", Severity: SeverityInfo}
	}
}

// boundLookup adapts the promotion catalog to the ledger's context-free
// lookup port. Unknown or invalid codes collapse to ErrUnknownDiscountCode;
// codes absent from the catalog fall back to the static table.
type boundLookup struct {
	ctx      context.Context
	commands *spotCommandsImpl
}

func (b boundLookup) Resolve(code string, subtotal decimal.Decimal) (decimal.Decimal, error) {
	view, err := b.commands.promotionStore.FindByCode(b.ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return b.commands.fallbackLookup.Resolve(code, subtotal)
		}
		return decimal.Zero, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	promo := promotion.ReconstructPromotion(
		view.ID, view.Code, promotion.Kind(view.Kind), view.Amount,
		view.ValidFrom, view.ValidTo, view.UsageLimit, view.UsedCount,
		view.IsActive, view.CreatedAt, view.UpdatedAt,
	)
	if err := promo.ValidateUsage(b.commands.clock.Now()); err != nil {
		return decimal.Zero, errs.Mark(err, order.ErrUnknownDiscountCode)
	}
	return promo.FlatAmount(subtotal), nil
}
