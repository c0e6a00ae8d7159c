package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/usecase/debt"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/middleware"
)

// DebtController handles debt endpoints.
type DebtController struct {
	listUseCase         *debt.ListDebtsUseCase
	createUseCase       *debt.CreateDebtUseCase
	getUseCase          *debt.GetDebtUseCase
	updateUseCase       *debt.UpdateDebtUseCase
	applyPaymentUseCase *debt.ApplyPaymentUseCase
	deleteUseCase       *debt.DeleteDebtUseCase
	summaryUseCase      *debt.GetSummaryUseCase
}

// NewDebtController creates a new debt controller instance.
func NewDebtController(
	listUseCase *debt.ListDebtsUseCase,
	createUseCase *debt.CreateDebtUseCase,
	getUseCase *debt.GetDebtUseCase,
	updateUseCase *debt.UpdateDebtUseCase,
	applyPaymentUseCase *debt.ApplyPaymentUseCase,
	deleteUseCase *debt.DeleteDebtUseCase,
	summaryUseCase *debt.GetSummaryUseCase,
) *DebtController {
	return &DebtController{
		listUseCase:         listUseCase,
		createUseCase:       createUseCase,
		getUseCase:          getUseCase,
		updateUseCase:       updateUseCase,
		applyPaymentUseCase: applyPaymentUseCase,
		deleteUseCase:       deleteUseCase,
		summaryUseCase:      summaryUseCase,
	}
}

// List handles GET /debts requests.
func (c *DebtController) List(ctx *gin.Context) {
	userID, ok := middleware.MustUserID(ctx)
	if !ok {
		return
	}

	month, err := queryMonth(ctx)
	if err != nil {
		badRequest(ctx, "Invalid month. Use YYYY-MM", string(domainerror.ErrCodeInvalidDebtDate))
		return
	}

	filter := entity.DebtFilter{Month: month}
	if personIDStr := ctx.Query("person_id"); personIDStr != "" {
		personID, err := uuid.Parse(personIDStr)
		if err != nil {
			badRequest(ctx, "Invalid person ID format", string(domainerror.ErrCodeDebtPersonNotFound))
			return
		}
		filter.PersonID = &personID
	}
	if statusStr := ctx.Query("status"); statusStr != "" {
		status := valueobject.PaymentStatus(statusStr)
		filter.Status = &status
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), debt.ListDebtsInput{
		UserID: userID,
		Filter: filter,
	})
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtListResponse(output))
}

// Create handles POST /debts requests.
func (c *DebtController) Create(ctx *gin.Context) {
	userID, ok := middleware.MustUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateDebtRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingDebtFields))
		return
	}

	personID, err := uuid.Parse(req.PersonID)
	if err != nil {
		badRequest(ctx, "Invalid person ID format", string(domainerror.ErrCodeDebtPersonNotFound))
		return
	}
	date, err := dto.ParseDate(req.Date)
	if err != nil {
		badRequest(ctx, "Invalid date format. Use YYYY-MM-DD", string(domainerror.ErrCodeInvalidDebtDate))
		return
	}
	dueDate, err := dto.ParseDatePtr(req.DueDate)
	if err != nil {
		badRequest(ctx, "Invalid due date format. Use YYYY-MM-DD", string(domainerror.ErrCodeInvalidDebtDate))
		return
	}
	paymentMethodID, err := dto.ParseUUIDPtr(req.PaymentMethodID)
	if err != nil {
		badRequest(ctx, "Invalid payment method ID format", string(domainerror.ErrCodeDebtPaymentMethodNotFound))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), debt.CreateDebtInput{
		UserID:            userID,
		PersonID:          personID,
		Description:       req.Description,
		Amount:            *req.Amount,
		Date:              date,
		DueDate:           dueDate,
		Installments:      req.Installments,
		TotalInstallments: req.TotalInstallments,
		PaymentMethodID:   paymentMethodID,
	})
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateDebtResponse{
		Debt:         dto.ToDebtResponse(output.Debt, output.Person),
		Mode:         string(output.Mode),
		CreatedCount: output.CreatedCount,
	})
}

// Get handles GET /debts/:id requests.
func (c *DebtController) Get(ctx *gin.Context) {
	userID, ok := middleware.MustUserID(ctx)
	if !ok {
		return
	}
	id, ok := c.debtID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), debt.GetDebtInput{
		DebtID: id,
		UserID: userID,
	})
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtResponse(output.Debt, output.Person))
}

// Update handles PUT /debts/:id requests. Any status in the body is ignored.
func (c *DebtController) Update(ctx *gin.Context) {
	userID, ok := middleware.MustUserID(ctx)
	if !ok {
		return
	}
	id, ok := c.debtID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateDebtRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingDebtFields))
		return
	}

	personID, err := dto.ParseUUIDPtr(req.PersonID)
	if err != nil {
		badRequest(ctx, "Invalid person ID format", string(domainerror.ErrCodeDebtPersonNotFound))
		return
	}
	date, err := dto.ParseDatePtr(req.Date)
	if err != nil {
		badRequest(ctx, "Invalid date format. Use YYYY-MM-DD", string(domainerror.ErrCodeInvalidDebtDate))
		return
	}
	dueDate, err := dto.ParseDatePtr(req.DueDate)
	if err != nil {
		badRequest(ctx, "Invalid due date format. Use YYYY-MM-DD", string(domainerror.ErrCodeInvalidDebtDate))
		return
	}
	paymentMethodID, err := dto.ParseUUIDPtr(req.PaymentMethodID)
	if err != nil {
		badRequest(ctx, "Invalid payment method ID format", string(domainerror.ErrCodeDebtPaymentMethodNotFound))
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), debt.UpdateDebtInput{
		DebtID:            id,
		UserID:            userID,
		PersonID:          personID,
		Description:       req.Description,
		Amount:            req.Amount,
		PaidAmount:        req.PaidAmount,
		Date:              date,
		DueDate:           dueDate,
		Installments:      req.Installments,
		TotalInstallments: req.TotalInstallments,
		PaymentMethodID:   paymentMethodID,
	})
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtResponse(output.Debt, output.Person))
}

// ApplyPayment handles PATCH /debts/:id/payment requests.
func (c *DebtController) ApplyPayment(ctx *gin.Context) {
	userID, ok := middleware.MustUserID(ctx)
	if !ok {
		return
	}
	id, ok := c.debtID(ctx)
	if !ok {
		return
	}

	var req dto.ApplyPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingDebtFields))
		return
	}

	output, err := c.applyPaymentUseCase.Execute(ctx.Request.Context(), debt.ApplyPaymentInput{
		DebtID:     id,
		UserID:     userID,
		PaidAmount: *req.PaidAmount,
	})
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtResponse(output.Debt, nil))
}

// Delete handles DELETE /debts/:id requests. Sibling installments are kept.
func (c *DebtController) Delete(ctx *gin.Context) {
	userID, ok := middleware.MustUserID(ctx)
	if !ok {
		return
	}
	id, ok := c.debtID(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), debt.DeleteDebtInput{
		DebtID: id,
		UserID: userID,
	}); err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Summary handles GET /debts/summary requests. Without a month every debt is counted.
func (c *DebtController) Summary(ctx *gin.Context) {
	userID, ok := middleware.MustUserID(ctx)
	if !ok {
		return
	}

	month, err := queryMonth(ctx)
	if err != nil {
		badRequest(ctx, "Invalid month. Use YYYY-MM", string(domainerror.ErrCodeInvalidDebtDate))
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), debt.GetSummaryInput{
		UserID: userID,
		Month:  month,
	})
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtSummaryResponse(output))
}

func (c *DebtController) debtID(ctx *gin.Context) (uuid.UUID, bool) {
	return pathUUID(ctx, "id", "Debt not found", string(domainerror.ErrCodeDebtNotFound))
}

// handleDebtError handles debt errors and returns appropriate HTTP responses.
func (c *DebtController) handleDebtError(ctx *gin.Context, err error) {
	var debtErr *domainerror.DebtError
	if errors.As(err, &debtErr) {
		ctx.JSON(c.getStatusCodeForDebtError(debtErr.Code), dto.ErrorResponse{
			Error: debtErr.Message,
			Code:  string(debtErr.Code),
		})
		return
	}

	internalError(ctx, err)
}

// getStatusCodeForDebtError maps debt error codes to HTTP status codes.
func (c *DebtController) getStatusCodeForDebtError(code domainerror.DebtErrorCode) int {
	switch code {
	case domainerror.ErrCodeDebtNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidDebtAmount,
		domainerror.ErrCodeInvalidDebtDate,
		domainerror.ErrCodeDebtDueDateBeforeDate,
		domainerror.ErrCodeDebtInvalidInstallments,
		domainerror.ErrCodeNegativePaidAmount,
		domainerror.ErrCodeDebtDescriptionInvalid,
		domainerror.ErrCodeDebtDateImmutable,
		domainerror.ErrCodeInvalidDebtStatus,
		domainerror.ErrCodeMissingDebtFields,
		domainerror.ErrCodeDebtPersonNotFound,
		domainerror.ErrCodeDebtPaymentMethodNotFound:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
