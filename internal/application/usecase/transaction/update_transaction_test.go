package transaction

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

func seedSeries(t *testing.T, f *createFixture) []*entity.Transaction {
	t.Helper()
	input := f.expense("300.00", day(2025, 1, 10))
	input.TotalInstallments = ptr(3)
	_, err := f.useCase.Execute(context.Background(), input)
	require.NoError(t, err)
	return f.repo.rows
}

func newUpdateUseCase(f *createFixture) *UpdateTransactionUseCase {
	return NewUpdateTransactionUseCase(
		f.repo,
		&fakeCategoryRepo{ids: map[string]bool{"food": true}},
		&fakePaymentMethodRepo{ids: map[uuid.UUID]bool{f.method: true}},
		f.cache,
		fixedClock{now: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)},
	)
}

func TestUpdateTransaction_ChangesOnlyAddressedRow(t *testing.T) {
	f := newCreateFixture()
	rows := seedSeries(t, f)
	second := rows[1].ID

	out, err := newUpdateUseCase(f).Execute(context.Background(), UpdateTransactionInput{
		TransactionID: second,
		UserID:        f.userID,
		Amount:        ptr(decimal.RequireFromString("120.00")),
		Date:          ptr(day(2025, 2, 10)),
	})
	require.NoError(t, err)

	assert.True(t, decimal.RequireFromString("120.00").Equal(out.Transaction.Amount))
	assert.True(t, decimal.RequireFromString("100.00").Equal(f.repo.rows[0].Amount))
	assert.True(t, decimal.RequireFromString("100.00").Equal(f.repo.rows[2].Amount))
}

func TestUpdateTransaction_DateIsImmutable(t *testing.T) {
	f := newCreateFixture()
	rows := seedSeries(t, f)

	_, err := newUpdateUseCase(f).Execute(context.Background(), UpdateTransactionInput{
		TransactionID: rows[0].ID,
		UserID:        f.userID,
		Date:          ptr(day(2025, 1, 11)),
	})

	var txnErr *domainerror.TransactionError
	require.ErrorAs(t, err, &txnErr)
	assert.Equal(t, domainerror.ErrCodeTxnDateImmutable, txnErr.Code)
}

func TestUpdateTransaction_DueDateMustFollowDate(t *testing.T) {
	f := newCreateFixture()
	rows := seedSeries(t, f)

	_, err := newUpdateUseCase(f).Execute(context.Background(), UpdateTransactionInput{
		TransactionID: rows[2].ID,
		UserID:        f.userID,
		DueDate:       ptr(day(2025, 3, 9)),
	})

	var txnErr *domainerror.TransactionError
	require.ErrorAs(t, err, &txnErr)
	assert.Equal(t, domainerror.ErrCodeTxnDueDateBeforeDate, txnErr.Code)
}

func TestUpdateTransaction_OtherOwnerIsNotFound(t *testing.T) {
	f := newCreateFixture()
	rows := seedSeries(t, f)

	_, err := newUpdateUseCase(f).Execute(context.Background(), UpdateTransactionInput{
		TransactionID: rows[0].ID,
		UserID:        uuid.New(),
		Description:   ptr("hijack"),
	})

	assert.ErrorIs(t, err, domainerror.ErrTransactionNotFound)
	assert.Equal(t, "Streaming", f.repo.rows[0].Description)
}

func TestDeleteTransaction_KeepsSiblings(t *testing.T) {
	f := newCreateFixture()
	rows := seedSeries(t, f)
	target := rows[1].ID

	out, err := NewDeleteTransactionUseCase(f.repo, f.cache).Execute(context.Background(), DeleteTransactionInput{
		TransactionID: target,
		UserID:        f.userID,
	})
	require.NoError(t, err)
	assert.True(t, out.Success)

	require.Len(t, f.repo.rows, 2)
	assert.Equal(t, 1, *f.repo.rows[0].Installment)
	assert.Equal(t, 3, *f.repo.rows[1].Installment)

	_, err = NewDeleteTransactionUseCase(f.repo, f.cache).Execute(context.Background(), DeleteTransactionInput{
		TransactionID: target,
		UserID:        f.userID,
	})
	assert.ErrorIs(t, err, domainerror.ErrTransactionNotFound)
}
