package api

import (
	"errors"
	"net/http"
	"strconv"

	"boxoffice/internal/domain/order"
	reqdto "boxoffice/internal/handler/dto/request"
	resdto "boxoffice/internal/handler/dto/response"
	"boxoffice/internal/pkg/errs"
	"boxoffice/internal/usecase/commands"
	"boxoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SpotHandler struct {
	spotCommands commands.SpotCommands
	spotQueries  queries.SpotQueries
}

func NewSpotHandler(spotCommands commands.SpotCommands, spotQueries queries.SpotQueries) *SpotHandler {
	return &SpotHandler{
		spotCommands: spotCommands,
		spotQueries:  spotQueries,
	}
}

// @Summary Current order
// @Description Return the terminal's live order; cash_tendered adds a change preview
// @Tags spot
// @Produce json
// @Security BearerAuth
// @Param terminal path string true "Terminal ID"
// @Param cash_tendered query string false "Cash tendered for change preview"
// @Success 200 {object} resdto.SpotOrderResponse
// @Failure 409 {object} map[string]string
// @Router /spot/{terminal} [get]
func (h *SpotHandler) GetOrder(c *gin.Context) {
	terminalID := c.Param("terminal")

	var cashTendered *decimal.Decimal
	if raw := c.Query("cash_tendered"); raw != "" {
		// An unparsable amount previews change for a zero tender rather
		// than failing the read.
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			amount = decimal.Zero
		}
		cashTendered = &amount
	}

	view, err := h.spotQueries.View(terminalID, cashTendered)
	if err != nil {
		h.respondSpotError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.SpotOrderResponse{Order: view})
}

// @Summary Add line
// @Description Add a catalog item to the order or adjust its quantity by a delta
// @Tags spot
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param terminal path string true "Terminal ID"
// @Param request body reqdto.AddLineRequest true "Item and delta"
// @Success 200 {object} resdto.SpotOrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /spot/{terminal}/lines [post]
func (h *SpotHandler) AddLine(c *gin.Context) {
	terminalID := c.Param("terminal")

	var req reqdto.AddLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.spotCommands.AddLine(c.Request.Context(), terminalID, req)
	if err != nil {
		h.respondSpotError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSpotResult(result))
}

// @Summary Set line quantity
// @Description Set the absolute quantity for an item; zero removes the line
// @Tags spot
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param terminal path string true "Terminal ID"
// @Param itemId path string true "Catalog item ID"
// @Param request body reqdto.SetQuantityRequest true "Kind and quantity"
// @Success 200 {object} resdto.SpotOrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /spot/{terminal}/lines/{itemId} [put]
func (h *SpotHandler) SetQuantity(c *gin.Context) {
	terminalID := c.Param("terminal")

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid item ID format",
		})
		return
	}

	var req reqdto.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.spotCommands.SetQuantity(c.Request.Context(), terminalID, itemID, req)
	if err != nil {
		h.respondSpotError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSpotResult(result))
}

// @Summary Remove line
// @Description Remove the line at the given index regardless of quantity
// @Tags spot
// @Produce json
// @Security BearerAuth
// @Param terminal path string true "Terminal ID"
// @Param index path int true "Line index"
// @Success 200 {object} resdto.SpotOrderResponse
// @Failure 400 {object} map[string]string
// @Router /spot/{terminal}/lines/{index} [delete]
func (h *SpotHandler) RemoveLine(c *gin.Context) {
	terminalID := c.Param("terminal")

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid line index",
		})
		return
	}

	result, removeErr := h.spotCommands.RemoveLine(c.Request.Context(), terminalID, index)
	if removeErr != nil {
		h.respondSpotError(c, removeErr)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSpotResult(result))
}

// @Summary Apply discount code
// @Description Apply a discount code to the order, replacing any active discount
// @Tags spot
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param terminal path string true "Terminal ID"
// @Param request body reqdto.ApplyDiscountRequest true "Discount code"
// @Success 200 {object} resdto.SpotOrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /spot/{terminal}/discount [post]
func (h *SpotHandler) ApplyDiscount(c *gin.Context) {
	terminalID := c.Param("terminal")

	var req reqdto.ApplyDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.spotCommands.ApplyDiscount(c.Request.Context(), terminalID, req)
	if err != nil {
		h.respondSpotError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSpotResult(result))
}

// @Summary Select customer
// @Description Attach a cataloged customer or register a walk-in for this order
// @Tags spot
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param terminal path string true "Terminal ID"
// @Param request body reqdto.SelectCustomerRequest true "Customer selection"
// @Success 200 {object} resdto.SpotOrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /spot/{terminal}/customer [post]
func (h *SpotHandler) SelectCustomer(c *gin.Context) {
	terminalID := c.Param("terminal")

	var req reqdto.SelectCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.spotCommands.SelectCustomer(c.Request.Context(), terminalID, req)
	if err != nil {
		h.respondSpotError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSpotResult(result))
}

// @Summary Reset order
// @Description Clear all lines, the discount and the customer selection
// @Tags spot
// @Produce json
// @Security BearerAuth
// @Param terminal path string true "Terminal ID"
// @Success 200 {object} resdto.SpotOrderResponse
// @Failure 409 {object} map[string]string
// @Router /spot/{terminal}/reset [post]
func (h *SpotHandler) Reset(c *gin.Context) {
	terminalID := c.Param("terminal")

	result, err := h.spotCommands.Reset(c.Request.Context(), terminalID)
	if err != nil {
		h.respondSpotError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSpotResult(result))
}

// @Summary Checkout
// @Description Finalize the order into a booking; the order stays open on failure
// @Tags spot
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param terminal path string true "Terminal ID"
// @Param request body reqdto.CheckoutRequest true "Cash tendered"
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 400 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /spot/{terminal}/checkout [post]
func (h *SpotHandler) Checkout(c *gin.Context) {
	terminalID := c.Param("terminal")

	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.spotCommands.Checkout(c.Request.Context(), terminalID, req)
	if err != nil {
		h.respondSpotError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCheckoutResult(result))
}

func (h *SpotHandler) respondSpotError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, order.ErrEmptyOrder):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Order is empty",
		})
	case errors.Is(err, order.ErrInsufficientPayment):
		c.JSON(http.StatusPaymentRequired, gin.H{
			"error": "Cash tendered is less than the total due",
		})
	case errors.Is(err, order.ErrUnknownDiscountCode):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Unknown or invalid discount code",
		})
	case errors.Is(err, order.ErrMalformedItem):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Catalog item is missing a name or price",
		})
	case errors.Is(err, order.ErrLineIndexOutOfRange):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Line index out of range",
		})
	case errors.Is(err, order.ErrValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "At least one customer field is required",
		})
	case errors.Is(err, errs.ErrCheckoutInProgress):
		c.JSON(http.StatusConflict, gin.H{
			"error": "A checkout is already in progress for this terminal",
		})
	case errors.Is(err, errs.ErrCatalogItemInactive):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Catalog item is inactive",
		})
	case errors.Is(err, errs.ErrTicketTypeNotFound),
		errors.Is(err, errs.ErrAddOnNotFound),
		errors.Is(err, errs.ErrCustomerNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Referenced record not found",
		})
	case errors.Is(err, errs.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Domain validation failed",
		})
	case errors.Is(err, errs.ErrDatabaseOperationFailed):
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Persistence failed; the order is unchanged",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
