package debt

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

type fixture struct {
	repo     *fakeDebtRepo
	people   *fakePersonRepo
	methods  *fakePaymentMethodRepo
	cache    *fakeCache
	recorder *fakeRecorder
	clock    fixedClock
	userID   uuid.UUID
	person   *entity.Person
}

func newFixture() *fixture {
	userID := uuid.New()
	people := &fakePersonRepo{}
	person := entity.NewPerson(userID, "Ana", "friend", "", nil, nil, nil)
	people.add(person)

	return &fixture{
		repo:     &fakeDebtRepo{people: people},
		people:   people,
		methods:  &fakePaymentMethodRepo{ids: map[uuid.UUID]bool{}},
		cache:    &fakeCache{},
		recorder: &fakeRecorder{},
		clock:    fixedClock{now: time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)},
		userID:   userID,
		person:   person,
	}
}

func (f *fixture) create() *CreateDebtUseCase {
	return NewCreateDebtUseCase(f.repo, f.people, f.methods, f.cache, f.recorder, f.clock)
}

func (f *fixture) input(amount string, date time.Time) CreateDebtInput {
	return CreateDebtInput{
		UserID:      f.userID,
		PersonID:    f.person.ID,
		Description: "Notebook",
		Amount:      decimal.RequireFromString(amount),
		Date:        date,
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }

func TestCreateDebt_InstallmentPlan(t *testing.T) {
	f := newFixture()
	input := f.input("1200.00", day(2025, 1, 15))
	input.TotalInstallments = ptr(3)

	out, err := f.create().Execute(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, valueobject.SeriesModeInstallment, out.Mode)
	assert.Equal(t, 3, out.CreatedCount)
	assert.Equal(t, "Ana", out.Person.Name)
	require.Len(t, f.repo.rows, 3)

	wantDates := []time.Time{day(2025, 1, 15), day(2025, 2, 15), day(2025, 3, 15)}
	seriesID := f.repo.rows[0].SeriesID
	require.NotNil(t, seriesID)
	for i, row := range f.repo.rows {
		assert.True(t, row.Amount.Equal(decimal.RequireFromString("400.00")), "row %d amount %s", i, row.Amount)
		assert.True(t, row.PaidAmount.IsZero())
		assert.Equal(t, valueobject.PaymentStatusPending, row.Status)
		assert.Equal(t, wantDates[i], row.Date)
		assert.Equal(t, i+1, *row.Installment)
		assert.Equal(t, 3, *row.TotalInstallments)
		assert.Equal(t, *seriesID, *row.SeriesID)
	}

	assert.Equal(t, "debt", f.recorder.kind)
	assert.Equal(t, "installment", f.recorder.mode)
	assert.Equal(t, 3, f.recorder.rows)
	assert.Equal(t, 1, f.cache.invalidated)
}

func TestCreateDebt_SingleInstallmentIsPlainRecord(t *testing.T) {
	f := newFixture()
	input := f.input("80.00", day(2025, 6, 2))
	input.TotalInstallments = ptr(1)

	out, err := f.create().Execute(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, valueobject.SeriesModeSingle, out.Mode)
	require.Len(t, f.repo.rows, 1)
	assert.Nil(t, f.repo.rows[0].SeriesID)
	assert.Nil(t, f.repo.rows[0].Installment)
	assert.Nil(t, f.repo.rows[0].TotalInstallments)
}

func TestCreateDebt_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(f *fixture, in *CreateDebtInput)
		wantCode domainerror.DebtErrorCode
	}{
		{
			name:     "zero amount",
			mutate:   func(_ *fixture, in *CreateDebtInput) { in.Amount = decimal.Zero },
			wantCode: domainerror.ErrCodeInvalidDebtAmount,
		},
		{
			name:     "sub-cent amount",
			mutate:   func(_ *fixture, in *CreateDebtInput) { in.Amount = decimal.RequireFromString("0.004") },
			wantCode: domainerror.ErrCodeInvalidDebtAmount,
		},
		{
			name: "installment share rounds to zero",
			mutate: func(_ *fixture, in *CreateDebtInput) {
				in.Amount = decimal.RequireFromString("0.01")
				in.TotalInstallments = ptr(3)
			},
			wantCode: domainerror.ErrCodeInvalidDebtAmount,
		},
		{
			name:     "future date",
			mutate:   func(_ *fixture, in *CreateDebtInput) { in.Date = day(2025, 7, 2) },
			wantCode: domainerror.ErrCodeInvalidDebtDate,
		},
		{
			name:     "due date before date",
			mutate:   func(_ *fixture, in *CreateDebtInput) { in.DueDate = ptr(day(2025, 5, 1)) },
			wantCode: domainerror.ErrCodeDebtDueDateBeforeDate,
		},
		{
			name:     "installment beyond total",
			mutate:   func(_ *fixture, in *CreateDebtInput) { in.Installments = ptr(4); in.TotalInstallments = ptr(3) },
			wantCode: domainerror.ErrCodeDebtInvalidInstallments,
		},
		{
			name:     "person of another user",
			mutate:   func(f *fixture, in *CreateDebtInput) { in.UserID = uuid.New() },
			wantCode: domainerror.ErrCodeDebtPersonNotFound,
		},
		{
			name:     "unknown payment method",
			mutate:   func(_ *fixture, in *CreateDebtInput) { in.PaymentMethodID = ptr(uuid.New()) },
			wantCode: domainerror.ErrCodeDebtPaymentMethodNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			input := f.input("100.00", day(2025, 6, 10))
			tt.mutate(f, &input)

			_, err := f.create().Execute(context.Background(), input)

			var debtErr *domainerror.DebtError
			require.True(t, errors.As(err, &debtErr), "got %v", err)
			assert.Equal(t, tt.wantCode, debtErr.Code)
			assert.Empty(t, f.repo.rows)
			assert.Zero(t, f.cache.invalidated)
		})
	}
}

func TestCreateDebt_TrimsDescription(t *testing.T) {
	f := newFixture()
	input := f.input("30.00", day(2025, 6, 2))
	input.Description = "  Notebook  "

	out, err := f.create().Execute(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, "Notebook", out.Debt.Description)
	assert.Equal(t, "Notebook", f.repo.rows[0].Description)
}

func TestCreateDebt_BatchFailureLeavesNothing(t *testing.T) {
	f := newFixture()
	f.repo.batchErr = errors.New("insert failed")
	input := f.input("300.00", day(2025, 3, 1))
	input.TotalInstallments = ptr(3)

	_, err := f.create().Execute(context.Background(), input)

	require.Error(t, err)
	assert.Empty(t, f.repo.rows)
	assert.Zero(t, f.recorder.rows)
}

func TestApplyPayment_StatusTransitions(t *testing.T) {
	f := newFixture()
	_, err := f.create().Execute(context.Background(), f.input("400.00", day(2025, 2, 15)))
	require.NoError(t, err)
	debtID := f.repo.rows[0].ID
	pay := NewApplyPaymentUseCase(f.repo, f.cache, f.clock)

	steps := []struct {
		paid string
		want valueobject.PaymentStatus
	}{
		{"150.00", valueobject.PaymentStatusPartial},
		{"400.00", valueobject.PaymentStatusPaid},
		{"0", valueobject.PaymentStatusPending},
		{"500.00", valueobject.PaymentStatusPaid},
	}
	for _, step := range steps {
		out, err := pay.Execute(context.Background(), ApplyPaymentInput{
			DebtID:     debtID,
			UserID:     f.userID,
			PaidAmount: decimal.RequireFromString(step.paid),
		})
		require.NoError(t, err)
		assert.Equal(t, step.want, out.Debt.Status, "paid %s", step.paid)
		assert.Equal(t, step.want, f.repo.rows[0].Status)
	}
}

func TestApplyPayment_NegativeRejectedBeforeLookup(t *testing.T) {
	f := newFixture()
	pay := NewApplyPaymentUseCase(f.repo, f.cache, f.clock)

	_, err := pay.Execute(context.Background(), ApplyPaymentInput{
		DebtID:     uuid.New(),
		UserID:     f.userID,
		PaidAmount: decimal.RequireFromString("-1"),
	})

	var debtErr *domainerror.DebtError
	require.True(t, errors.As(err, &debtErr))
	assert.Equal(t, domainerror.ErrCodeNegativePaidAmount, debtErr.Code)
	assert.Zero(t, f.repo.finds)
}

func TestApplyPayment_OtherOwnerNotFound(t *testing.T) {
	f := newFixture()
	_, err := f.create().Execute(context.Background(), f.input("400.00", day(2025, 2, 15)))
	require.NoError(t, err)
	pay := NewApplyPaymentUseCase(f.repo, f.cache, f.clock)

	_, err = pay.Execute(context.Background(), ApplyPaymentInput{
		DebtID:     f.repo.rows[0].ID,
		UserID:     uuid.New(),
		PaidAmount: decimal.RequireFromString("10"),
	})

	assert.ErrorIs(t, err, domainerror.ErrDebtNotFound)
	assert.True(t, f.repo.rows[0].PaidAmount.IsZero())
}

func TestUpdateDebt(t *testing.T) {
	f := newFixture()
	_, err := f.create().Execute(context.Background(), f.input("400.00", day(2025, 2, 15)))
	require.NoError(t, err)
	debtID := f.repo.rows[0].ID
	update := NewUpdateDebtUseCase(f.repo, f.people, f.methods, f.cache, f.clock)

	t.Run("status follows amounts", func(t *testing.T) {
		out, err := update.Execute(context.Background(), UpdateDebtInput{
			DebtID:     debtID,
			UserID:     f.userID,
			Amount:     ptr(decimal.RequireFromString("500.00")),
			PaidAmount: ptr(decimal.RequireFromString("500.00")),
		})
		require.NoError(t, err)
		assert.Equal(t, valueobject.PaymentStatusPaid, out.Debt.Status)
	})

	t.Run("same date accepted", func(t *testing.T) {
		_, err := update.Execute(context.Background(), UpdateDebtInput{
			DebtID: debtID,
			UserID: f.userID,
			Date:   ptr(day(2025, 2, 15).Add(10 * time.Hour)),
		})
		require.NoError(t, err)
	})

	t.Run("date change rejected", func(t *testing.T) {
		_, err := update.Execute(context.Background(), UpdateDebtInput{
			DebtID: debtID,
			UserID: f.userID,
			Date:   ptr(day(2025, 2, 16)),
		})
		var debtErr *domainerror.DebtError
		require.True(t, errors.As(err, &debtErr))
		assert.Equal(t, domainerror.ErrCodeDebtDateImmutable, debtErr.Code)
	})

	t.Run("unknown person rejected", func(t *testing.T) {
		_, err := update.Execute(context.Background(), UpdateDebtInput{
			DebtID:   debtID,
			UserID:   f.userID,
			PersonID: ptr(uuid.New()),
		})
		assert.ErrorIs(t, err, domainerror.ErrPersonNotFoundForDebt)
	})
}

func TestDeleteDebt_KeepsSiblings(t *testing.T) {
	f := newFixture()
	input := f.input("900.00", day(2025, 1, 10))
	input.TotalInstallments = ptr(3)
	_, err := f.create().Execute(context.Background(), input)
	require.NoError(t, err)

	del := NewDeleteDebtUseCase(f.repo, f.cache)
	require.NoError(t, del.Execute(context.Background(), DeleteDebtInput{DebtID: f.repo.rows[1].ID, UserID: f.userID}))

	assert.Len(t, f.repo.rows, 2)

	err = del.Execute(context.Background(), DeleteDebtInput{DebtID: uuid.New(), UserID: f.userID})
	assert.ErrorIs(t, err, domainerror.ErrDebtNotFound)
}

func TestGetSummary(t *testing.T) {
	f := newFixture()
	installments := f.input("1200.00", day(2025, 1, 15))
	installments.TotalInstallments = ptr(3)
	_, err := f.create().Execute(context.Background(), installments)
	require.NoError(t, err)
	_, err = f.create().Execute(context.Background(), f.input("50.00", day(2025, 1, 20)))
	require.NoError(t, err)

	_, err = NewApplyPaymentUseCase(f.repo, f.cache, f.clock).Execute(context.Background(), ApplyPaymentInput{
		DebtID:     f.repo.rows[0].ID,
		UserID:     f.userID,
		PaidAmount: decimal.RequireFromString("400.00"),
	})
	require.NoError(t, err)

	summary := NewGetSummaryUseCase(f.repo, f.cache)
	january := valueobject.Month{Year: 2025, Month: time.January}
	out, err := summary.Execute(context.Background(), GetSummaryInput{UserID: f.userID, Month: &january})
	require.NoError(t, err)

	assert.True(t, out.TotalDebts.Equal(decimal.RequireFromString("450.00")))
	assert.True(t, out.TotalPaid.Equal(decimal.RequireFromString("400.00")))
	assert.True(t, out.TotalPending.Equal(decimal.RequireFromString("50.00")))
	assert.Equal(t, 1, out.InstallmentsCount)
	require.Contains(t, out.DebtsByPerson, "Ana")
	assert.Equal(t, 2, out.DebtsByPerson["Ana"].Debts)
	require.Len(t, out.Installments, 1)
	assert.True(t, out.Installments[0].TotalAmount.Equal(decimal.RequireFromString("1200.00")))
	assert.Equal(t, valueobject.PaymentStatusPaid, out.Installments[0].Status)

	all, err := summary.Execute(context.Background(), GetSummaryInput{UserID: f.userID})
	require.NoError(t, err)
	assert.Equal(t, 3, all.InstallmentsCount)
	assert.True(t, all.TotalDebts.Equal(decimal.RequireFromString("1250.00")))
}

func TestGetSummary_SingleOfOneIsNotAnInstallment(t *testing.T) {
	f := newFixture()
	_, err := f.create().Execute(context.Background(), f.input("80.00", day(2025, 1, 20)))
	require.NoError(t, err)

	_, err = NewUpdateDebtUseCase(f.repo, f.people, f.methods, f.cache, f.clock).Execute(context.Background(), UpdateDebtInput{
		DebtID:            f.repo.rows[0].ID,
		UserID:            f.userID,
		Installments:      ptr(1),
		TotalInstallments: ptr(1),
	})
	require.NoError(t, err)

	out, err := NewGetSummaryUseCase(f.repo, f.cache).Execute(context.Background(), GetSummaryInput{UserID: f.userID})
	require.NoError(t, err)

	assert.Zero(t, out.InstallmentsCount)
	assert.Empty(t, out.Installments)
	assert.True(t, out.TotalDebts.Equal(decimal.RequireFromString("80.00")))
}

// vanishingDebtRepo removes the target row right before saving it, as a
// concurrent delete would.
type vanishingDebtRepo struct {
	*fakeDebtRepo
}

func (r vanishingDebtRepo) Update(ctx context.Context, debt *entity.Debt) error {
	if err := r.DeleteByIDAndUser(ctx, debt.ID, debt.UserID); err != nil {
		return err
	}
	return r.fakeDebtRepo.Update(ctx, debt)
}

func TestSaveAfterConcurrentDelete_IsNotFound(t *testing.T) {
	tests := []struct {
		name string
		run  func(f *fixture, repo vanishingDebtRepo, debtID uuid.UUID) error
	}{
		{
			name: "apply payment",
			run: func(f *fixture, repo vanishingDebtRepo, debtID uuid.UUID) error {
				_, err := NewApplyPaymentUseCase(repo, f.cache, f.clock).Execute(context.Background(), ApplyPaymentInput{
					DebtID:     debtID,
					UserID:     f.userID,
					PaidAmount: decimal.RequireFromString("10.00"),
				})
				return err
			},
		},
		{
			name: "update",
			run: func(f *fixture, repo vanishingDebtRepo, debtID uuid.UUID) error {
				_, err := NewUpdateDebtUseCase(repo, f.people, f.methods, f.cache, f.clock).Execute(context.Background(), UpdateDebtInput{
					DebtID:      debtID,
					UserID:      f.userID,
					Description: ptr("Tablet"),
				})
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			_, err := f.create().Execute(context.Background(), f.input("100.00", day(2025, 6, 10)))
			require.NoError(t, err)
			debtID := f.repo.rows[0].ID

			err = tt.run(f, vanishingDebtRepo{f.repo}, debtID)

			var debtErr *domainerror.DebtError
			require.True(t, errors.As(err, &debtErr), "got %v", err)
			assert.Equal(t, domainerror.ErrCodeDebtNotFound, debtErr.Code)
			assert.ErrorIs(t, err, domainerror.ErrDebtNotFound)
			assert.Empty(t, f.repo.rows, "a deleted debt must not be recreated")
		})
	}
}
