package api

import (
	"net/http"

	reqdto "boxoffice/internal/handler/dto/request"
	"boxoffice/internal/usecase/commands"
	"boxoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	customerCommands commands.CustomerCommands
	customerQueries  queries.CustomerQueries
}

func NewCustomerHandler(customerCommands commands.CustomerCommands, customerQueries queries.CustomerQueries) *CustomerHandler {
	return &CustomerHandler{
		customerCommands: customerCommands,
		customerQueries:  customerQueries,
	}
}

// @Summary List customers
// @Description List customers, or search them with the q parameter
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search term (name, email or phone)"
// @Success 200 {array} queries.CustomerView
// @Router /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if term := c.Query("q"); term != "" {
		views, err := h.customerQueries.Search(ctx, term)
		if err != nil {
			respondAdminError(c, err)
			return
		}
		c.JSON(http.StatusOK, views)
		return
	}

	views, err := h.customerQueries.List(ctx)
	if err != nil {
		respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Get customer
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 200 {object} queries.CustomerView
// @Failure 404 {object} map[string]string
// @Router /customers/{id} [get]
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	view, err := h.customerQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Create customer
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCustomerRequest true "Customer"
// @Success 201 {object} queries.CustomerView
// @Failure 422 {object} map[string]string
// @Router /customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var req reqdto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	view, err := h.customerCommands.Create(c.Request.Context(), req)
	if err != nil {
		respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Update customer
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Param request body reqdto.UpdateCustomerRequest true "Customer"
// @Success 200 {object} queries.CustomerView
// @Failure 404 {object} map[string]string
// @Router /customers/{id} [put]
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	view, err := h.customerCommands.Update(c.Request.Context(), id, req)
	if err != nil {
		respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Delete customer
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /customers/{id} [delete]
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.customerCommands.Delete(c.Request.Context(), id); err != nil {
		respondAdminError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
