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

type TableHandler struct {
	tableCommands commands.TableCommands
	tableQueries  queries.TableQueries
}

func NewTableHandler(tableCommands commands.TableCommands, tableQueries queries.TableQueries) *TableHandler {
	return &TableHandler{
		tableCommands: tableCommands,
		tableQueries:  tableQueries,
	}
}

// @Summary Create table
// @Tags tables
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateTableRequest true "Table request"
// @Success 201 {object} resdto.TableResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /tables [post]
func (h *TableHandler) Create(c *gin.Context) {
	var req reqdto.CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.tableCommands.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		handleUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromTableView(view))
}

// @Summary List tables
// @Tags tables
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.TableResponse
// @Router /tables [get]
func (h *TableHandler) List(c *gin.Context) {
	views, err := h.tableQueries.ListAll(c.Request.Context())
	if err != nil {
		handleUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromTableViews(views))
}

// @Summary Get table
// @Tags tables
// @Produce json
// @Security BearerAuth
// @Param id path string true "Table ID"
// @Success 200 {object} resdto.TableResponse
// @Failure 404 {object} httperr.Response
// @Router /tables/{id} [get]
func (h *TableHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.tableQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		handleUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromTableView(view))
}

// @Summary Update table
// @Tags tables
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Table ID"
// @Param request body reqdto.UpdateTableRequest true "Update request"
// @Success 200 {object} resdto.TableResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /tables/{id} [put]
func (h *TableHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.tableCommands.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		handleUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromTableView(view))
}

// @Summary Delete table
// @Tags tables
// @Produce json
// @Security BearerAuth
// @Param id path string true "Table ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /tables/{id} [delete]
func (h *TableHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.tableCommands.Delete(c.Request.Context(), id); err != nil {
		handleUseCaseError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
