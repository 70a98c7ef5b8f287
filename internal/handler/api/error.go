package api

import (
	"errors"
	"net/http"

	"restaurant-api/internal/handler/httperr"
	"restaurant-api/internal/usecase/commands"
	"restaurant-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// handleUseCaseError maps usecase sentinel errors onto HTTP statuses. The
// original cause travels with the gin error for logging; clients only see
// the message.
func handleUseCaseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrDomainValidation),
		errors.Is(err, commands.ErrMenuItemUnavailable):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Validation failed", err.Error())
	case errors.Is(err, commands.ErrInvalidCredentials):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
	case errors.Is(err, commands.ErrForbidden),
		errors.Is(err, queries.ErrReservationForbidden),
		errors.Is(err, queries.ErrOrderForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
	case errors.Is(err, commands.ErrTableNotFound),
		errors.Is(err, commands.ErrReservationNotFound),
		errors.Is(err, commands.ErrMenuItemNotFound),
		errors.Is(err, commands.ErrOrderNotFound),
		errors.Is(err, commands.ErrInventoryItemNotFound),
		errors.Is(err, commands.ErrUserNotFound),
		errors.Is(err, queries.ErrTableNotFound),
		errors.Is(err, queries.ErrReservationNotFound),
		errors.Is(err, queries.ErrMenuItemNotFound),
		errors.Is(err, queries.ErrOrderNotFound),
		errors.Is(err, queries.ErrInventoryItemNotFound),
		errors.Is(err, queries.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Resource not found", nil)
	case errors.Is(err, commands.ErrSlotConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Table is already reserved for this time slot", nil)
	case errors.Is(err, commands.ErrDuplicateEmail),
		errors.Is(err, commands.ErrDuplicateTableNumber),
		errors.Is(err, commands.ErrDuplicateMenuName),
		errors.Is(err, commands.ErrDuplicateInventoryName):
		httperr.AbortWithError(c, http.StatusConflict, err, "Resource already exists", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
