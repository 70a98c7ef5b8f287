package api

import (
	"net/http"

	reqdto "restaurant-api/internal/handler/dto/request"
	resdto "restaurant-api/internal/handler/dto/response"
	"restaurant-api/internal/handler/httperr"
	"restaurant-api/internal/usecase/commands"
	"restaurant-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	inventoryCommands commands.InventoryCommands
	inventoryQueries  queries.InventoryQueries
}

func NewInventoryHandler(
	inventoryCommands commands.InventoryCommands,
	inventoryQueries queries.InventoryQueries,
) *InventoryHandler {
	return &InventoryHandler{
		inventoryCommands: inventoryCommands,
		inventoryQueries:  inventoryQueries,
	}
}

// @Summary Create inventory item
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateInventoryItemRequest true "Inventory item request"
// @Success 201 {object} resdto.InventoryItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /inventory [post]
func (h *InventoryHandler) Create(c *gin.Context) {
	var req reqdto.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.inventoryCommands.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		handleUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromInventoryItemView(view))
}

// @Summary List inventory items
// @Description List inventory; low_stock=true returns only items at or below their minimum level
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Param low_stock query bool false "Only low stock items"
// @Success 200 {array} resdto.InventoryItemResponse
// @Router /inventory [get]
func (h *InventoryHandler) List(c *gin.Context) {
	var (
		views []*queries.InventoryItemView
		err   error
	)
	if c.Query("low_stock") == "true" {
		views, err = h.inventoryQueries.ListLowStock(c.Request.Context())
	} else {
		views, err = h.inventoryQueries.ListAll(c.Request.Context())
	}
	if err != nil {
		handleUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromInventoryItemViews(views))
}

// @Summary Get inventory item
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Param id path string true "Inventory item ID"
// @Success 200 {object} resdto.InventoryItemResponse
// @Failure 404 {object} httperr.Response
// @Router /inventory/{id} [get]
func (h *InventoryHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.inventoryQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		handleUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromInventoryItemView(view))
}

// @Summary Update inventory item
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Inventory item ID"
// @Param request body reqdto.UpdateInventoryItemRequest true "Update request"
// @Success 200 {object} resdto.InventoryItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /inventory/{id} [put]
func (h *InventoryHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.inventoryCommands.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		handleUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromInventoryItemView(view))
}

// @Summary Delete inventory item
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Param id path string true "Inventory item ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /inventory/{id} [delete]
func (h *InventoryHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.inventoryCommands.Delete(c.Request.Context(), id); err != nil {
		handleUseCaseError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
