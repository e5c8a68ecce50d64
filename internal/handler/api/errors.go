package api

import (
	"errors"
	"log/slog"
	"net/http"

	"perfume-order-api/internal/handler/httperr"
	"perfume-order-api/internal/pkg/errs"
	"perfume-order-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type stockDetail struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Requested   int    `json:"requested"`
	Available   int    `json:"available"`
}

// respondError maps an error category to its status code and aborts the request.
func respondError(c *gin.Context, err error) {
	var stockErr *commands.InsufficientStockError

	switch {
	case errors.As(err, &stockErr):
		httperr.AbortWithError(c, http.StatusConflict, err, stockErr.Error(), stockDetail{
			ProductID:   stockErr.ProductID.String(),
			ProductName: stockErr.ProductName,
			Requested:   stockErr.Requested,
			Available:   stockErr.Available,
		})
	case errors.Is(err, errs.ErrInsufficientStock):
		httperr.AbortWithError(c, http.StatusConflict, err, "Insufficient stock", nil)
	case errors.Is(err, errs.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, errs.PublicMessage(err, "Invalid request"), nil)
	case errors.Is(err, errs.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, errs.PublicMessage(err, "Not found"), nil)
	case errors.Is(err, errs.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Forbidden", nil)
	case errors.Is(err, errs.ErrNothingToUndo):
		httperr.AbortWithError(c, http.StatusConflict, err, "Nothing to undo", nil)
	case errors.Is(err, errs.ErrNothingToRedo):
		httperr.AbortWithError(c, http.StatusConflict, err, "Nothing to redo", nil)
	case errors.Is(err, errs.ErrConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Request conflicts with a concurrent change, retry", nil)
	default:
		slog.Error("Unhandled error in request", "path", c.FullPath(), "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
