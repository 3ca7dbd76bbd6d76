package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Catalog errors
	ErrTicketTypeNotFound  = errors.New("ticket type not found")
	ErrAddOnNotFound       = errors.New("add-on not found")
	ErrTimeSlotNotFound    = errors.New("time slot not found")
	ErrCatalogItemInactive = errors.New("catalog item is inactive")

	// Spot terminal errors
	ErrCheckoutInProgress = errors.New("checkout already in progress")

	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")

	// Promotion errors
	ErrPromotionNotFound = errors.New("promotion not found")
	ErrDuplicateCode     = errors.New("promotion code already exists")

	// Customer errors
	ErrCustomerNotFound = errors.New("customer not found")

	// User errors
	ErrUserNotFound = errors.New("user not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
