package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/usecase/paymentmethod"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// PaymentMethodController handles the payment method catalog.
type PaymentMethodController struct {
	listUseCase   *paymentmethod.ListPaymentMethodsUseCase
	createUseCase *paymentmethod.CreatePaymentMethodUseCase
	updateUseCase *paymentmethod.UpdatePaymentMethodUseCase
	deleteUseCase *paymentmethod.DeletePaymentMethodUseCase
}

// NewPaymentMethodController creates a new payment method controller instance.
func NewPaymentMethodController(
	listUseCase *paymentmethod.ListPaymentMethodsUseCase,
	createUseCase *paymentmethod.CreatePaymentMethodUseCase,
	updateUseCase *paymentmethod.UpdatePaymentMethodUseCase,
	deleteUseCase *paymentmethod.DeletePaymentMethodUseCase,
) *PaymentMethodController {
	return &PaymentMethodController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /payment-methods requests.
func (c *PaymentMethodController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handlePaymentMethodError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPaymentMethodListResponse(output.PaymentMethods))
}

// Create handles POST /payment-methods requests.
func (c *PaymentMethodController) Create(ctx *gin.Context) {
	var req dto.CreatePaymentMethodRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodePaymentMethodNameRequired))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), paymentmethod.CreatePaymentMethodInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		c.handlePaymentMethodError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPaymentMethodResponse(output.PaymentMethod))
}

// Update handles PUT /payment-methods/:id requests.
func (c *PaymentMethodController) Update(ctx *gin.Context) {
	id, ok := c.paymentMethodID(ctx)
	if !ok {
		return
	}

	var req dto.UpdatePaymentMethodRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodePaymentMethodNameRequired))
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), paymentmethod.UpdatePaymentMethodInput{
		PaymentMethodID: id,
		Name:            req.Name,
		Description:     req.Description,
	})
	if err != nil {
		c.handlePaymentMethodError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPaymentMethodResponse(output.PaymentMethod))
}

// Delete handles DELETE /payment-methods/:id requests.
func (c *PaymentMethodController) Delete(ctx *gin.Context) {
	id, ok := c.paymentMethodID(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), paymentmethod.DeletePaymentMethodInput{
		PaymentMethodID: id,
	}); err != nil {
		c.handlePaymentMethodError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *PaymentMethodController) paymentMethodID(ctx *gin.Context) (uuid.UUID, bool) {
	return pathUUID(ctx, "id", "Payment method not found", string(domainerror.ErrCodePaymentMethodNotFound))
}

// handlePaymentMethodError handles payment method errors and returns appropriate HTTP responses.
func (c *PaymentMethodController) handlePaymentMethodError(ctx *gin.Context, err error) {
	var pmErr *domainerror.PaymentMethodError
	if errors.As(err, &pmErr) {
		var statusCode int
		switch pmErr.Code {
		case domainerror.ErrCodePaymentMethodNotFound:
			statusCode = http.StatusNotFound
		case domainerror.ErrCodePaymentMethodNameExists, domainerror.ErrCodePaymentMethodInUse:
			statusCode = http.StatusConflict
		default:
			statusCode = http.StatusBadRequest
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: pmErr.Message,
			Code:  string(pmErr.Code),
		})
		return
	}

	internalError(ctx, err)
}
