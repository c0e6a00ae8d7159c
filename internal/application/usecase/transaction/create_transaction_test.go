package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

type createFixture struct {
	repo     *fakeTransactionRepo
	cache    *fakeCache
	recorder *fakeRecorder
	useCase  *CreateTransactionUseCase
	method   uuid.UUID
	userID   uuid.UUID
}

func newCreateFixture() *createFixture {
	method := uuid.New()
	f := &createFixture{
		repo:     &fakeTransactionRepo{},
		cache:    &fakeCache{},
		recorder: &fakeRecorder{},
		method:   method,
		userID:   uuid.New(),
	}
	f.useCase = NewCreateTransactionUseCase(
		f.repo,
		&fakeCategoryRepo{ids: map[string]bool{"food": true, "salary": true}},
		&fakePaymentMethodRepo{ids: map[uuid.UUID]bool{method: true}},
		f.cache,
		f.recorder,
		fixedClock{now: time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)},
	)
	return f
}

func (f *createFixture) expense(amount string, date time.Time) CreateTransactionInput {
	return CreateTransactionInput{
		UserID:          f.userID,
		Description:     "Streaming",
		Amount:          decimal.RequireFromString(amount),
		Type:            entity.TransactionTypeExpense,
		CategoryID:      "food",
		Date:            date,
		PaymentMethodID: &f.method,
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }

func TestCreateTransaction_RecurringSeries(t *testing.T) {
	f := newCreateFixture()
	input := f.expense("50.00", day(2025, 1, 31))
	input.IsRecurring = true

	out, err := f.useCase.Execute(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, valueobject.SeriesModeRecurring, out.Mode)
	assert.Equal(t, 6, out.CreatedCount)
	require.Len(t, f.repo.rows, 6)

	wantDates := []time.Time{
		day(2025, 1, 31), day(2025, 2, 28), day(2025, 3, 31),
		day(2025, 4, 30), day(2025, 5, 31), day(2025, 6, 30),
	}
	seriesID := f.repo.rows[0].SeriesID
	require.NotNil(t, seriesID)
	for i, row := range f.repo.rows {
		assert.Equal(t, wantDates[i], row.Date)
		assert.True(t, row.IsRecurring)
		assert.Nil(t, row.Installment)
		assert.Nil(t, row.DueDate)
		assert.Equal(t, *seriesID, *row.SeriesID)
	}
	assert.Equal(t, f.repo.rows[0].ID, out.Transaction.ID)
	assert.Equal(t, 1, f.cache.invalidated)
	assert.Equal(t, []recordedSeries{{kind: "transaction", mode: "recurring", rows: 6}}, f.recorder.calls)
}

func TestCreateTransaction_InstallmentsTakePrecedence(t *testing.T) {
	f := newCreateFixture()
	input := f.expense("300.00", day(2025, 3, 10))
	input.IsRecurring = true
	input.TotalInstallments = ptr(3)

	out, err := f.useCase.Execute(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, valueobject.SeriesModeInstallment, out.Mode)
	require.Len(t, f.repo.rows, 3)
	for i, row := range f.repo.rows {
		assert.Equal(t, i+1, *row.Installment)
		assert.Equal(t, 3, *row.TotalInstallments)
		assert.False(t, row.IsRecurring)
		assert.True(t, decimal.RequireFromString("100.00").Equal(row.Amount))
		assert.Equal(t, row.Date, *row.DueDate)
	}
	assert.Equal(t, 1, *out.Transaction.Installment)
}

func TestCreateTransaction_OneOfOneIsPlainRecord(t *testing.T) {
	f := newCreateFixture()
	input := f.expense("80.00", day(2025, 3, 10))
	input.Installments = ptr(1)
	input.TotalInstallments = ptr(1)

	out, err := f.useCase.Execute(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, valueobject.SeriesModeSingle, out.Mode)
	require.Len(t, f.repo.rows, 1)
	assert.Nil(t, f.repo.rows[0].SeriesID)
	assert.Nil(t, f.repo.rows[0].Installment)
	assert.Nil(t, f.repo.rows[0].TotalInstallments)
}

func TestCreateTransaction_IncomeWithoutPaymentMethod(t *testing.T) {
	f := newCreateFixture()
	input := f.expense("5000.00", day(2025, 6, 5))
	input.Type = entity.TransactionTypeIncome
	input.CategoryID = "salary"
	input.PaymentMethodID = nil

	_, err := f.useCase.Execute(context.Background(), input)
	require.NoError(t, err)
	assert.Len(t, f.repo.rows, 1)
}

func TestCreateTransaction_RejectsBeforePersisting(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(f *createFixture, in *CreateTransactionInput)
		wantCode domainerror.TransactionErrorCode
	}{
		{"invalid type", func(_ *createFixture, in *CreateTransactionInput) { in.Type = "transfer" }, domainerror.ErrCodeInvalidTransactionType},
		{"zero amount", func(_ *createFixture, in *CreateTransactionInput) { in.Amount = decimal.Zero }, domainerror.ErrCodeInvalidTransactionAmount},
		{"sub-cent amount", func(_ *createFixture, in *CreateTransactionInput) { in.Amount = decimal.RequireFromString("0.004") }, domainerror.ErrCodeInvalidTransactionAmount},
		{"installment share rounds to zero", func(_ *createFixture, in *CreateTransactionInput) {
			in.Amount = decimal.RequireFromString("0.01")
			in.TotalInstallments = ptr(3)
		}, domainerror.ErrCodeInvalidTransactionAmount},
		{"future date", func(_ *createFixture, in *CreateTransactionInput) { in.Date = day(2025, 7, 2) }, domainerror.ErrCodeInvalidTransactionDate},
		{"due before date", func(_ *createFixture, in *CreateTransactionInput) { in.DueDate = ptr(day(2025, 1, 1)) }, domainerror.ErrCodeTxnDueDateBeforeDate},
		{"installment above total", func(_ *createFixture, in *CreateTransactionInput) {
			in.Installments = ptr(4)
			in.TotalInstallments = ptr(3)
		}, domainerror.ErrCodeTxnInvalidInstallments},
		{"zero total installments", func(_ *createFixture, in *CreateTransactionInput) { in.TotalInstallments = ptr(0) }, domainerror.ErrCodeTxnInvalidInstallments},
		{"expense without payment method", func(_ *createFixture, in *CreateTransactionInput) { in.PaymentMethodID = nil }, domainerror.ErrCodeTxnPaymentMethodRequired},
		{"unknown category", func(_ *createFixture, in *CreateTransactionInput) { in.CategoryID = "unknown" }, domainerror.ErrCodeTxnCategoryNotFound},
		{"unknown payment method", func(_ *createFixture, in *CreateTransactionInput) { in.PaymentMethodID = ptr(uuid.New()) }, domainerror.ErrCodeTxnPaymentMethodNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCreateFixture()
			input := f.expense("100.00", day(2025, 2, 10))
			tt.mutate(f, &input)

			_, err := f.useCase.Execute(context.Background(), input)

			var txnErr *domainerror.TransactionError
			require.ErrorAs(t, err, &txnErr)
			assert.Equal(t, tt.wantCode, txnErr.Code)
			assert.Zero(t, f.repo.batchCalls, "nothing may be written when validation fails")
		})
	}
}

func TestCreateTransaction_PropagatesBatchFailure(t *testing.T) {
	f := newCreateFixture()
	f.repo.batchErr = errors.New("unique constraint violated")
	input := f.expense("600.00", day(2025, 1, 10))
	input.TotalInstallments = ptr(6)

	_, err := f.useCase.Execute(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, f.repo.batchErr)
	assert.Empty(t, f.repo.rows)
	assert.Zero(t, f.cache.invalidated)
	assert.Empty(t, f.recorder.calls)
}

func TestCreateTransaction_TrimsDescription(t *testing.T) {
	f := newCreateFixture()
	input := f.expense("40.00", day(2025, 2, 10))
	input.Description = "  Streaming  "

	_, err := f.useCase.Execute(context.Background(), input)
	require.NoError(t, err)

	require.Len(t, f.repo.rows, 1)
	assert.Equal(t, "Streaming", f.repo.rows[0].Description)
}
