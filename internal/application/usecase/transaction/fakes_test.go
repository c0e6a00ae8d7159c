package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeTransactionRepo struct {
	rows       []*entity.Transaction
	batchCalls int
	batchErr   error
}

func (r *fakeTransactionRepo) CreateBatch(_ context.Context, transactions []*entity.Transaction) error {
	r.batchCalls++
	if r.batchErr != nil {
		return r.batchErr
	}
	r.rows = append(r.rows, transactions...)
	return nil
}

func (r *fakeTransactionRepo) FindByIDAndUser(_ context.Context, id, userID uuid.UUID) (*entity.Transaction, error) {
	for _, row := range r.rows {
		if row.ID == id && row.UserID == userID {
			copied := *row
			return &copied, nil
		}
	}
	return nil, domainerror.ErrTransactionNotFound
}

func (r *fakeTransactionRepo) FindByUser(_ context.Context, userID uuid.UUID, filter entity.TransactionFilter) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, row := range r.rows {
		if row.UserID != userID {
			continue
		}
		if filter.Month != nil && !filter.Month.Contains(row.Date) {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

func (r *fakeTransactionRepo) FindExpensesDueFrom(_ context.Context, userID uuid.UUID, from time.Time) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, row := range r.rows {
		if row.UserID == userID && row.Type == entity.TransactionTypeExpense &&
			row.DueDate != nil && !valueobject.DateOnly(*row.DueDate).Before(from) {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) Update(_ context.Context, transaction *entity.Transaction) error {
	for i, row := range r.rows {
		if row.ID == transaction.ID {
			r.rows[i] = transaction
			return nil
		}
	}
	return domainerror.ErrTransactionNotFound
}

func (r *fakeTransactionRepo) DeleteByIDAndUser(_ context.Context, id, userID uuid.UUID) error {
	for i, row := range r.rows {
		if row.ID == id && row.UserID == userID {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrTransactionNotFound
}

type fakeCategoryRepo struct {
	ids map[string]bool
}

func (r *fakeCategoryRepo) Create(context.Context, *entity.Category) error { return nil }
func (r *fakeCategoryRepo) FindByID(_ context.Context, id string) (*entity.Category, error) {
	if !r.ids[id] {
		return nil, domainerror.ErrCategoryNotFound
	}
	return &entity.Category{ID: id, Name: id}, nil
}
func (r *fakeCategoryRepo) FindAll(context.Context) ([]*entity.Category, error) { return nil, nil }
func (r *fakeCategoryRepo) Update(context.Context, *entity.Category) error      { return nil }
func (r *fakeCategoryRepo) Delete(context.Context, string) error                { return nil }
func (r *fakeCategoryRepo) ExistsByID(_ context.Context, id string) (bool, error) {
	return r.ids[id], nil
}
func (r *fakeCategoryRepo) IsReferenced(context.Context, string) (bool, error) { return false, nil }

type fakePaymentMethodRepo struct {
	ids map[uuid.UUID]bool
}

func (r *fakePaymentMethodRepo) Create(context.Context, *entity.PaymentMethod) error { return nil }
func (r *fakePaymentMethodRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.PaymentMethod, error) {
	if !r.ids[id] {
		return nil, domainerror.ErrPaymentMethodNotFound
	}
	return &entity.PaymentMethod{ID: id, Name: "PIX"}, nil
}
func (r *fakePaymentMethodRepo) FindAll(context.Context) ([]*entity.PaymentMethod, error) {
	return nil, nil
}
func (r *fakePaymentMethodRepo) ExistsByName(context.Context, string, *uuid.UUID) (bool, error) {
	return false, nil
}
func (r *fakePaymentMethodRepo) Update(context.Context, *entity.PaymentMethod) error { return nil }
func (r *fakePaymentMethodRepo) Delete(context.Context, uuid.UUID) error             { return nil }
func (r *fakePaymentMethodRepo) IsReferenced(context.Context, uuid.UUID) (bool, error) {
	return false, nil
}

type fakeCache struct {
	values      map[string]any
	invalidated int
}

func (c *fakeCache) Get(_ context.Context, userID uuid.UUID, key string, dest any) (bool, error) {
	v, ok := c.values[userID.String()+key]
	if !ok {
		return false, nil
	}
	*dest.(*GetSummaryOutput) = *v.(*GetSummaryOutput)
	return true, nil
}

func (c *fakeCache) Set(_ context.Context, userID uuid.UUID, key string, value any) error {
	if c.values == nil {
		c.values = make(map[string]any)
	}
	c.values[userID.String()+key] = value
	return nil
}

func (c *fakeCache) InvalidateUser(context.Context, uuid.UUID) error {
	c.invalidated++
	c.values = nil
	return nil
}

type recordedSeries struct {
	kind, mode string
	rows       int
}

type fakeRecorder struct{ calls []recordedSeries }

func (r *fakeRecorder) RecordSeries(kind, mode string, rows int) {
	r.calls = append(r.calls, recordedSeries{kind: kind, mode: mode, rows: rows})
}
