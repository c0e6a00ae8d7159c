package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/middleware"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	listUseCase    *transaction.ListTransactionsUseCase
	createUseCase  *transaction.CreateTransactionUseCase
	getUseCase     *transaction.GetTransactionUseCase
	updateUseCase  *transaction.UpdateTransactionUseCase
	deleteUseCase  *transaction.DeleteTransactionUseCase
	summaryUseCase *transaction.GetSummaryUseCase
	clock          adapter.Clock
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	getUseCase *transaction.GetTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	summaryUseCase *transaction.GetSummaryUseCase,
	clock adapter.Clock,
) *TransactionController {
	return &TransactionController{
		listUseCase:    listUseCase,
		createUseCase:  createUseCase,
		getUseCase:     getUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		summaryUseCase: summaryUseCase,
		clock:          clock,
	}
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	userID, ok := middleware.MustUserID(ctx)
	if !ok {
		return
	}

	month, err := queryMonth(ctx)
	if err != nil {
		badRequest(ctx, "Invalid month. Use YYYY-MM", string(domainerror.ErrCodeInvalidTransactionDate))
		return
	}

	filter := entity.TransactionFilter{Month: month}
	if typeStr := ctx.Query("type"); typeStr != "" {
		txnType := entity.TransactionType(typeStr)
		filter.Type = &txnType
	}
	if categoryID := ctx.Query("category_id"); categoryID != "" {
		filter.CategoryID = &categoryID
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), transaction.ListTransactionsInput{
		UserID: userID,
		Filter: filter,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	userID, ok := middleware.MustUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingTransactionFields))
		return
	}

	date, err := dto.ParseDate(req.Date)
	if err != nil {
		badRequest(ctx, "Invalid date format. Use YYYY-MM-DD", string(domainerror.ErrCodeInvalidTransactionDate))
		return
	}
	dueDate, err := dto.ParseDatePtr(req.DueDate)
	if err != nil {
		badRequest(ctx, "Invalid due date format. Use YYYY-MM-DD", string(domainerror.ErrCodeInvalidTransactionDate))
		return
	}
	paymentMethodID, err := dto.ParseUUIDPtr(req.PaymentMethodID)
	if err != nil {
		badRequest(ctx, "Invalid payment method ID format", string(domainerror.ErrCodeTxnPaymentMethodNotFound))
		return
	}

	input := transaction.CreateTransactionInput{
		UserID:            userID,
		Description:       req.Description,
		Amount:            *req.Amount,
		Type:              entity.TransactionType(req.Type),
		CategoryID:        req.CategoryID,
		Date:              date,
		IsRecurring:       req.IsRecurring,
		Installments:      req.Installments,
		TotalInstallments: req.TotalInstallments,
		DueDate:           dueDate,
		PaymentMethodID:   paymentMethodID,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateTransactionResponse{
		Transaction:  dto.ToTransactionResponse(output.Transaction),
		Mode:         string(output.Mode),
		CreatedCount: output.CreatedCount,
	})
}

// Get handles GET /transactions/:id requests.
func (c *TransactionController) Get(ctx *gin.Context) {
	userID, ok := middleware.MustUserID(ctx)
	if !ok {
		return
	}
	id, ok := c.transactionID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), transaction.GetTransactionInput{
		TransactionID: id,
		UserID:        userID,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Update handles PUT /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	userID, ok := middleware.MustUserID(ctx)
	if !ok {
		return
	}
	id, ok := c.transactionID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingTransactionFields))
		return
	}

	date, err := dto.ParseDatePtr(req.Date)
	if err != nil {
		badRequest(ctx, "Invalid date format. Use YYYY-MM-DD", string(domainerror.ErrCodeInvalidTransactionDate))
		return
	}
	dueDate, err := dto.ParseDatePtr(req.DueDate)
	if err != nil {
		badRequest(ctx, "Invalid due date format. Use YYYY-MM-DD", string(domainerror.ErrCodeInvalidTransactionDate))
		return
	}
	paymentMethodID, err := dto.ParseUUIDPtr(req.PaymentMethodID)
	if err != nil {
		badRequest(ctx, "Invalid payment method ID format", string(domainerror.ErrCodeTxnPaymentMethodNotFound))
		return
	}

	input := transaction.UpdateTransactionInput{
		TransactionID:     id,
		UserID:            userID,
		Description:       req.Description,
		Amount:            req.Amount,
		CategoryID:        req.CategoryID,
		Date:              date,
		IsRecurring:       req.IsRecurring,
		Installments:      req.Installments,
		TotalInstallments: req.TotalInstallments,
		DueDate:           dueDate,
		PaymentMethodID:   paymentMethodID,
	}
	if req.Type != nil {
		txnType := entity.TransactionType(*req.Type)
		input.Type = &txnType
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /transactions/:id requests. Only the addressed row is removed.
func (c *TransactionController) Delete(ctx *gin.Context) {
	userID, ok := middleware.MustUserID(ctx)
	if !ok {
		return
	}
	id, ok := c.transactionID(ctx)
	if !ok {
		return
	}

	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{
		TransactionID: id,
		UserID:        userID,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Summary handles GET /transactions/summary requests. The month defaults to the current one.
func (c *TransactionController) Summary(ctx *gin.Context) {
	userID, ok := middleware.MustUserID(ctx)
	if !ok {
		return
	}

	month, err := queryMonth(ctx)
	if err != nil {
		badRequest(ctx, "Invalid month. Use YYYY-MM", string(domainerror.ErrCodeInvalidTransactionDate))
		return
	}
	if month == nil {
		current := valueobject.MonthOf(c.clock.Now())
		month = &current
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), transaction.GetSummaryInput{
		UserID: userID,
		Month:  *month,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionSummaryResponse(output))
}

func (c *TransactionController) transactionID(ctx *gin.Context) (uuid.UUID, bool) {
	return pathUUID(ctx, "id", "Transaction not found", string(domainerror.ErrCodeTransactionNotFound))
}

// handleTransactionError handles transaction errors and returns appropriate HTTP responses.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		ctx.JSON(c.getStatusCodeForTransactionError(txnErr.Code), dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		})
		return
	}

	internalError(ctx, err)
}

// getStatusCodeForTransactionError maps transaction error codes to HTTP status codes.
// Dangling references are the caller's input error, so they map to 400.
func (c *TransactionController) getStatusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidTransactionType,
		domainerror.ErrCodeInvalidTransactionDate,
		domainerror.ErrCodeInvalidTransactionAmount,
		domainerror.ErrCodeTxnDueDateBeforeDate,
		domainerror.ErrCodeTxnInvalidInstallments,
		domainerror.ErrCodeTxnPaymentMethodRequired,
		domainerror.ErrCodeTxnDescriptionInvalid,
		domainerror.ErrCodeTxnDateImmutable,
		domainerror.ErrCodeMissingTransactionFields,
		domainerror.ErrCodeTxnCategoryNotFound,
		domainerror.ErrCodeTxnPaymentMethodNotFound:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
