package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/valueobject"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// internalError logs err and answers with a generic 500 that leaks no detail.
func internalError(ctx *gin.Context, err error) {
	slog.Error("Request failed",
		"method", ctx.Request.Method,
		"path", ctx.FullPath(),
		"error", err,
	)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// badRequest answers with 400 and the given code.
func badRequest(ctx *gin.Context, message, code string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// pathUUID parses the :name path parameter. Malformed ids are answered with 404 under
// notFoundCode since they cannot name an existing record.
func pathUUID(ctx *gin.Context, name, notFoundMessage, notFoundCode string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: notFoundMessage,
			Code:  notFoundCode,
		})
		return uuid.Nil, false
	}
	return id, true
}

// queryMonth parses the optional month query parameter.
func queryMonth(ctx *gin.Context) (*valueobject.Month, error) {
	value := ctx.Query("month")
	if value == "" {
		return nil, nil
	}
	month, err := valueobject.ParseMonth(value)
	if err != nil {
		return nil, err
	}
	return &month, nil
}
