package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Description       string           `json:"description" binding:"required"`
	Amount            *decimal.Decimal `json:"amount" binding:"required"`
	Type              string           `json:"type" binding:"required"`
	CategoryID        string           `json:"category_id" binding:"required"`
	Date              string           `json:"date" binding:"required"`
	IsRecurring       bool             `json:"is_recurring"`
	Installments      *int             `json:"installments,omitempty"`
	TotalInstallments *int             `json:"total_installments,omitempty"`
	DueDate           *string          `json:"due_date,omitempty"`
	PaymentMethodID   *string          `json:"payment_method_id,omitempty"`
}

// UpdateTransactionRequest represents the request body for transaction update.
// Absent fields keep their stored values.
type UpdateTransactionRequest struct {
	Description       *string          `json:"description,omitempty"`
	Amount            *decimal.Decimal `json:"amount,omitempty"`
	Type              *string          `json:"type,omitempty"`
	CategoryID        *string          `json:"category_id,omitempty"`
	Date              *string          `json:"date,omitempty"`
	IsRecurring       *bool            `json:"is_recurring,omitempty"`
	Installments      *int             `json:"installments,omitempty"`
	TotalInstallments *int             `json:"total_installments,omitempty"`
	DueDate           *string          `json:"due_date,omitempty"`
	PaymentMethodID   *string          `json:"payment_method_id,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	SeriesID          *string   `json:"series_id"`
	Description       string    `json:"description"`
	Amount            string    `json:"amount"`
	Type              string    `json:"type"`
	CategoryID        string    `json:"category_id"`
	Date              string    `json:"date"`
	IsRecurring       bool      `json:"is_recurring"`
	Installments      *int      `json:"installments"`
	TotalInstallments *int      `json:"total_installments"`
	DueDate           *string   `json:"due_date"`
	PaymentMethodID   *string   `json:"payment_method_id"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// CreateTransactionResponse wraps the representative row of a submission.
type CreateTransactionResponse struct {
	Transaction  TransactionResponse `json:"transaction"`
	Mode         string              `json:"mode"`
	CreatedCount int                 `json:"created_count"`
}

// TransactionTotalsResponse represents aggregated totals in API responses.
type TransactionTotalsResponse struct {
	IncomeTotal  string `json:"income_total"`
	ExpenseTotal string `json:"expense_total"`
	NetTotal     string `json:"net_total"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse     `json:"transactions"`
	Totals       TransactionTotalsResponse `json:"totals"`
}

// TransactionSummaryTotals holds the headline figures of a monthly summary.
type TransactionSummaryTotals struct {
	TotalIncome         string `json:"totalIncome"`
	TotalExpenses       string `json:"totalExpenses"`
	Balance             string `json:"balance"`
	ProjectedBalance    string `json:"projectedBalance"`
	PendingInstallments string `json:"pendingInstallments"`
	RecurringExpenses   string `json:"recurringExpenses"`
}

// TransactionSummaryInstallment is one installment row of a monthly summary.
type TransactionSummaryInstallment struct {
	ID                 string  `json:"id"`
	Description        string  `json:"description"`
	Amount             string  `json:"amount"`
	TotalAmount        string  `json:"totalAmount"`
	CurrentInstallment *int    `json:"currentInstallment"`
	TotalInstallments  *int    `json:"totalInstallments"`
	DueDate            *string `json:"dueDate"`
	Status             string  `json:"status"`
}

// TransactionSummaryResponse represents the monthly transaction summary.
type TransactionSummaryResponse struct {
	Month              string                          `json:"month"`
	Summary            TransactionSummaryTotals        `json:"summary"`
	ExpensesByCategory map[string]string               `json:"expensesByCategory"`
	Installments       []TransactionSummaryInstallment `json:"installments"`
}

// ToTransactionResponse converts a domain Transaction to a TransactionResponse DTO.
func ToTransactionResponse(txn *entity.Transaction) TransactionResponse {
	response := TransactionResponse{
		ID:                txn.ID.String(),
		UserID:            txn.UserID.String(),
		SeriesID:          uuidPtrString(txn.SeriesID),
		Description:       txn.Description,
		Amount:            FormatAmount(txn.Amount),
		Type:              string(txn.Type),
		CategoryID:        txn.CategoryID,
		Date:              FormatDate(txn.Date),
		IsRecurring:       txn.IsRecurring,
		Installments:      txn.Installment,
		TotalInstallments: txn.TotalInstallments,
		DueDate:           FormatDatePtr(txn.DueDate),
		PaymentMethodID:   uuidPtrString(txn.PaymentMethodID),
		CreatedAt:         txn.CreatedAt,
		UpdatedAt:         txn.UpdatedAt,
	}
	return response
}

// ToTransactionListResponse converts a ListTransactionsOutput to TransactionListResponse.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	transactions := make([]TransactionResponse, len(output.Transactions))
	for i, txn := range output.Transactions {
		transactions[i] = ToTransactionResponse(txn)
	}

	return TransactionListResponse{
		Transactions: transactions,
		Totals: TransactionTotalsResponse{
			IncomeTotal:  FormatAmount(output.Totals.IncomeTotal),
			ExpenseTotal: FormatAmount(output.Totals.ExpenseTotal),
			NetTotal:     FormatAmount(output.Totals.NetTotal),
		},
	}
}

// ToTransactionSummaryResponse converts a GetSummaryOutput to TransactionSummaryResponse.
func ToTransactionSummaryResponse(output *transaction.GetSummaryOutput) TransactionSummaryResponse {
	byCategory := make(map[string]string, len(output.ExpensesByCategory))
	for name, total := range output.ExpensesByCategory {
		byCategory[name] = FormatAmount(total)
	}

	installments := make([]TransactionSummaryInstallment, len(output.Installments))
	for i, inst := range output.Installments {
		installments[i] = TransactionSummaryInstallment{
			ID:                 inst.ID.String(),
			Description:        inst.Description,
			Amount:             FormatAmount(inst.Amount),
			TotalAmount:        FormatAmount(inst.TotalAmount),
			CurrentInstallment: inst.CurrentInstallment,
			TotalInstallments:  inst.TotalInstallments,
			DueDate:            FormatDatePtr(inst.DueDate),
			Status:             string(inst.Status),
		}
	}

	return TransactionSummaryResponse{
		Month: output.Month,
		Summary: TransactionSummaryTotals{
			TotalIncome:         FormatAmount(output.TotalIncome),
			TotalExpenses:       FormatAmount(output.TotalExpenses),
			Balance:             FormatAmount(output.Balance),
			ProjectedBalance:    FormatAmount(output.ProjectedBalance),
			PendingInstallments: FormatAmount(output.PendingInstallments),
			RecurringExpenses:   FormatAmount(output.RecurringExpenses),
		},
		ExpensesByCategory: byCategory,
		Installments:       installments,
	}
}
