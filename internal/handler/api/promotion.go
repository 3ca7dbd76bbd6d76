package api

import (
	"net/http"

	reqdto "boxoffice/internal/handler/dto/request"
	"boxoffice/internal/usecase/commands"
	"boxoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PromotionHandler struct {
	promotionCommands commands.PromotionCommands
	promotionQueries  queries.PromotionQueries
}

func NewPromotionHandler(promotionCommands commands.PromotionCommands, promotionQueries queries.PromotionQueries) *PromotionHandler {
	return &PromotionHandler{
		promotionCommands: promotionCommands,
		promotionQueries:  promotionQueries,
	}
}

// @Summary List promotions
// @Tags promotions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.PromotionView
// @Router /promotions [get]
func (h *PromotionHandler) List(c *gin.Context) {
	views, err := h.promotionQueries.List(c.Request.Context())
	if err != nil {
		respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Get promotion
// @Tags promotions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Promotion ID"
// @Success 200 {object} queries.PromotionView
// @Failure 404 {object} map[string]string
// @Router /promotions/{id} [get]
func (h *PromotionHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	view, err := h.promotionQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Create promotion
// @Tags promotions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePromotionRequest true "Promotion"
// @Success 201 {object} queries.PromotionView
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /promotions [post]
func (h *PromotionHandler) Create(c *gin.Context) {
	var req reqdto.CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	view, err := h.promotionCommands.Create(c.Request.Context(), req)
	if err != nil {
		respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Update promotion
// @Tags promotions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Promotion ID"
// @Param request body reqdto.UpdatePromotionRequest true "Promotion"
// @Success 200 {object} queries.PromotionView
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /promotions/{id} [put]
func (h *PromotionHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	view, err := h.promotionCommands.Update(c.Request.Context(), id, req)
	if err != nil {
		respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Deactivate promotion
// @Tags promotions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Promotion ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /promotions/{id} [delete]
func (h *PromotionHandler) Deactivate(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.promotionCommands.SetActive(c.Request.Context(), id, false); err != nil {
		respondAdminError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
