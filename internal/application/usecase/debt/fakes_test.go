package debt

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeDebtRepo struct {
	rows     []*entity.Debt
	people   *fakePersonRepo
	batchErr error
	finds    int
}

func (r *fakeDebtRepo) CreateBatch(_ context.Context, debts []*entity.Debt) error {
	if r.batchErr != nil {
		return r.batchErr
	}
	r.rows = append(r.rows, debts...)
	return nil
}

func (r *fakeDebtRepo) FindByIDAndUser(_ context.Context, id, userID uuid.UUID) (*entity.Debt, error) {
	r.finds++
	for _, row := range r.rows {
		if row.ID == id && row.UserID == userID {
			copied := *row
			return &copied, nil
		}
	}
	return nil, domainerror.ErrDebtNotFound
}

func (r *fakeDebtRepo) FindByUser(_ context.Context, userID uuid.UUID, filter entity.DebtFilter) ([]*entity.DebtWithPerson, error) {
	var out []*entity.DebtWithPerson
	for _, row := range r.rows {
		if row.UserID != userID {
			continue
		}
		if filter.Month != nil && !filter.Month.Contains(row.Date) {
			continue
		}
		if filter.Status != nil && row.Status != *filter.Status {
			continue
		}
		var person *entity.Person
		if r.people != nil {
			person = r.people.byID[row.PersonID]
		}
		out = append(out, &entity.DebtWithPerson{Debt: row, Person: person})
	}
	return out, nil
}

func (r *fakeDebtRepo) Update(_ context.Context, debt *entity.Debt) error {
	for i, row := range r.rows {
		if row.ID == debt.ID {
			r.rows[i] = debt
			return nil
		}
	}
	return domainerror.ErrDebtNotFound
}

func (r *fakeDebtRepo) DeleteByIDAndUser(_ context.Context, id, userID uuid.UUID) error {
	for i, row := range r.rows {
		if row.ID == id && row.UserID == userID {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrDebtNotFound
}

type fakePersonRepo struct {
	byID map[uuid.UUID]*entity.Person
}

func (r *fakePersonRepo) add(p *entity.Person) {
	if r.byID == nil {
		r.byID = make(map[uuid.UUID]*entity.Person)
	}
	r.byID[p.ID] = p
}

func (r *fakePersonRepo) Create(_ context.Context, p *entity.Person) error {
	r.add(p)
	return nil
}

func (r *fakePersonRepo) FindByIDAndUser(_ context.Context, id, userID uuid.UUID) (*entity.Person, error) {
	p, ok := r.byID[id]
	if !ok || p.UserID != userID {
		return nil, domainerror.ErrPersonNotFound
	}
	return p, nil
}

func (r *fakePersonRepo) FindByUser(context.Context, uuid.UUID) ([]*entity.Person, error) {
	return nil, nil
}
func (r *fakePersonRepo) Update(context.Context, *entity.Person) error { return nil }
func (r *fakePersonRepo) DeleteWithDebts(context.Context, uuid.UUID, uuid.UUID) error {
	return nil
}

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
	values      map[string]*GetSummaryOutput
	invalidated int
}

func (c *fakeCache) Get(_ context.Context, userID uuid.UUID, key string, dest any) (bool, error) {
	v, ok := c.values[userID.String()+key]
	if !ok {
		return false, nil
	}
	*dest.(*GetSummaryOutput) = *v
	return true, nil
}

func (c *fakeCache) Set(_ context.Context, userID uuid.UUID, key string, value any) error {
	if c.values == nil {
		c.values = make(map[string]*GetSummaryOutput)
	}
	c.values[userID.String()+key] = value.(*GetSummaryOutput)
	return nil
}

func (c *fakeCache) InvalidateUser(context.Context, uuid.UUID) error {
	c.invalidated++
	c.values = nil
	return nil
}

type fakeRecorder struct {
	kind, mode string
	rows       int
}

func (r *fakeRecorder) RecordSeries(kind, mode string, rows int) {
	r.kind, r.mode, r.rows = kind, mode, rows
}
