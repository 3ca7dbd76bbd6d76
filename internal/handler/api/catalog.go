package api

import (
	"net/http"

	reqdto "boxoffice/internal/handler/dto/request"
	"boxoffice/internal/usecase/commands"
	"boxoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogCommands commands.CatalogCommands
	catalogQueries  queries.CatalogQueries
}

func NewCatalogHandler(catalogCommands commands.CatalogCommands, catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		catalogCommands: catalogCommands,
		catalogQueries:  catalogQueries,
	}
}

// @Summary List ticket types
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param active query bool false "Only active rows"
// @Success 200 {array} queries.TicketTypeView
// @Router /ticket-types [get]
func (h *CatalogHandler) ListTicketTypes(c *gin.Context) {
	views, err := h.catalogQueries.ListTicketTypes(c.Request.Context(), c.Query("active") == "true")
	if err != nil {
		respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Get ticket type
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket type ID"
// @Success 200 {object} queries.TicketTypeView
// @Failure 404 {object} map[string]string
// @Router /ticket-types/{id} [get]
func (h *CatalogHandler) GetTicketType(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	view, err := h.catalogQueries.GetTicketType(c.Request.Context(), id)
	if err != nil {
		respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Create ticket type
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateTicketTypeRequest true "Ticket type"
// @Success 201 {object} queries.TicketTypeView
// @Failure 422 {object} map[string]string
// @Router /ticket-types [post]
func (h *CatalogHandler) CreateTicketType(c *gin.Context) {
	var req reqdto.CreateTicketTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	view, err := h.catalogCommands.CreateTicketType(c.Request.Context(), req)
	if err != nil {
		respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Update ticket type
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket type ID"
// @Param request body reqdto.UpdateTicketTypeRequest true "Fields to update"
// @Success 200 {object} queries.TicketTypeView
// @Failure 404 {object} map[string]string
// @Router /ticket-types/{id} [patch]
func (h *CatalogHandler) UpdateTicketType(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateTicketTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	view, err := h.catalogCommands.UpdateTicketType(c.Request.Context(), id, req)
	if err != nil {
		respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Deactivate ticket type
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket type ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /ticket-types/{id} [delete]
func (h *CatalogHandler) DeactivateTicketType(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.catalogCommands.SetTicketTypeActive(c.Request.Context(), id, false); err != nil {
		respondAdminError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List add-ons
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param active query bool false "Only active rows"
// @Success 200 {array} queries.AddOnView
// @Router /addons [get]
func (h *CatalogHandler) ListAddOns(c *gin.Context) {
	views, err := h.catalogQueries.ListAddOns(c.Request.Context(), c.Query("active") == "true")
	if err != nil {
		respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Get add-on
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param id path string true "Add-on ID"
// @Success 200 {object} queries.AddOnView
// @Failure 404 {object} map[string]string
// @Router /addons/{id} [get]
func (h *CatalogHandler) GetAddOn(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	view, err := h.catalogQueries.GetAddOn(c.Request.Context(), id)
	if err != nil {
		respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Create add-on
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAddOnRequest true "Add-on"
// @Success 201 {object} queries.AddOnView
// @Failure 422 {object} map[string]string
// @Router /addons [post]
func (h *CatalogHandler) CreateAddOn(c *gin.Context) {
	var req reqdto.CreateAddOnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	view, err := h.catalogCommands.CreateAddOn(c.Request.Context(), req)
	if err != nil {
		respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Update add-on
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Add-on ID"
// @Param request body reqdto.UpdateAddOnRequest true "Fields to update"
// @Success 200 {object} queries.AddOnView
// @Failure 404 {object} map[string]string
// @Router /addons/{id} [patch]
func (h *CatalogHandler) UpdateAddOn(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateAddOnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	view, err := h.catalogCommands.UpdateAddOn(c.Request.Context(), id, req)
	if err != nil {
		respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Deactivate add-on
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param id path string true "Add-on ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /addons/{id} [delete]
func (h *CatalogHandler) DeactivateAddOn(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.catalogCommands.SetAddOnActive(c.Request.Context(), id, false); err != nil {
		respondAdminError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List time slots
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param active query bool false "Only active rows"
// @Success 200 {array} queries.TimeSlotView
// @Router /time-slots [get]
func (h *CatalogHandler) ListTimeSlots(c *gin.Context) {
	views, err := h.catalogQueries.ListTimeSlots(c.Request.Context(), c.Query("active") == "true")
	if err != nil {
		respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Get time slot
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param id path string true "Time slot ID"
// @Success 200 {object} queries.TimeSlotView
// @Failure 404 {object} map[string]string
// @Router /time-slots/{id} [get]
func (h *CatalogHandler) GetTimeSlot(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	view, err := h.catalogQueries.GetTimeSlot(c.Request.Context(), id)
	if err != nil {
		respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Create time slot
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateTimeSlotRequest true "Time slot"
// @Success 201 {object} queries.TimeSlotView
// @Failure 422 {object} map[string]string
// @Router /time-slots [post]
func (h *CatalogHandler) CreateTimeSlot(c *gin.Context) {
	var req reqdto.CreateTimeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	view, err := h.catalogCommands.CreateTimeSlot(c.Request.Context(), req)
	if err != nil {
		respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Update time slot
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Time slot ID"
// @Param request body reqdto.UpdateTimeSlotRequest true "Fields to update"
// @Success 200 {object} queries.TimeSlotView
// @Failure 404 {object} map[string]string
// @Router /time-slots/{id} [patch]
func (h *CatalogHandler) UpdateTimeSlot(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateTimeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	view, err := h.catalogCommands.UpdateTimeSlot(c.Request.Context(), id, req)
	if err != nil {
		respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Deactivate time slot
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param id path string true "Time slot ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /time-slots/{id} [delete]
func (h *CatalogHandler) DeactivateTimeSlot(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.catalogCommands.SetTimeSlotActive(c.Request.Context(), id, false); err != nil {
		respondAdminError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
