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

type MenuHandler struct {
	menuCommands commands.MenuCommands
	menuQueries  queries.MenuQueries
}

func NewMenuHandler(menuCommands commands.MenuCommands, menuQueries queries.MenuQueries) *MenuHandler {
	return &MenuHandler{
		menuCommands: menuCommands,
		menuQueries:  menuQueries,
	}
}

// @Summary Create menu item
// @Tags menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateMenuItemRequest true "Menu item request"
// @Success 201 {object} resdto.MenuItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /menuitems [post]
func (h *MenuHandler) Create(c *gin.Context) {
	var req reqdto.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.menuCommands.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		handleUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromMenuItemView(view))
}

// @Summary List menu items
// @Description List menu items, optionally filtered by category
// @Tags menu
// @Produce json
// @Param category query string false "Category filter"
// @Success 200 {array} resdto.MenuItemResponse
// @Router /menuitems [get]
func (h *MenuHandler) List(c *gin.Context) {
	var category *string
	if v, ok := c.GetQuery("category"); ok && v != "" {
		category = &v
	}

	views, err := h.menuQueries.ListAll(c.Request.Context(), category)
	if err != nil {
		handleUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromMenuItemViews(views))
}

// @Summary Get menu item
// @Tags menu
// @Produce json
// @Param id path string true "Menu item ID"
// @Success 200 {object} resdto.MenuItemResponse
// @Failure 404 {object} httperr.Response
// @Router /menuitems/{id} [get]
func (h *MenuHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.menuQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		handleUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromMenuItemView(view))
}

// @Summary Update menu item
// @Tags menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Menu item ID"
// @Param request body reqdto.UpdateMenuItemRequest true "Update request"
// @Success 200 {object} resdto.MenuItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /menuitems/{id} [put]
func (h *MenuHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.menuCommands.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		handleUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromMenuItemView(view))
}

// @Summary Delete menu item
// @Tags menu
// @Produce json
// @Security BearerAuth
// @Param id path string true "Menu item ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /menuitems/{id} [delete]
func (h *MenuHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.menuCommands.Delete(c.Request.Context(), id); err != nil {
		handleUseCaseError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
