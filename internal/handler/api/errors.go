package api

import (
	"errors"
	"net/http"

	"boxoffice/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// respondAdminError maps usecase errors onto the admin CRUD status codes.
func respondAdminError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrTicketTypeNotFound),
		errors.Is(err, errs.ErrAddOnNotFound),
		errors.Is(err, errs.ErrTimeSlotNotFound),
		errors.Is(err, errs.ErrPromotionNotFound),
		errors.Is(err, errs.ErrBookingNotFound),
		errors.Is(err, errs.ErrCustomerNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Record not found",
		})
	case errors.Is(err, errs.ErrDuplicateCode):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Promotion code already exists",
		})
	case errors.Is(err, errs.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Domain validation failed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}
