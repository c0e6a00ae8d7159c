package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.AllModels()...))
	return db
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func installmentTransactions(userID uuid.UUID, total string, count int, start time.Time) ([]*entity.Transaction, uuid.UUID) {
	seriesID := uuid.New()
	methodID := uuid.New()
	slots := valueobject.ExpandInstallments(decimal.RequireFromString(total), count, start, nil)

	rows := make([]*entity.Transaction, 0, len(slots))
	for _, slot := range slots {
		rows = append(rows, entity.NewTransactionFromSlot(
			userID, &seriesID, "Notebook", entity.TransactionTypeExpense, "other", &methodID, slot, time.Now().UTC(),
		))
	}
	return rows, seriesID
}

func TestTransactionRepository_CreateBatch(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionRepository(newTestDB(t))
	userID := uuid.New()

	rows, seriesID := installmentTransactions(userID, "1200", 3, date(2025, time.January, 15))
	require.NoError(t, repo.CreateBatch(ctx, rows))

	stored, err := repo.FindByUser(ctx, userID, entity.TransactionFilter{SeriesID: &seriesID})
	require.NoError(t, err)
	require.Len(t, stored, 3)

	// newest first
	assert.Equal(t, date(2025, time.March, 15), stored[0].Date)
	assert.Equal(t, 3, *stored[0].Installment)
	assert.True(t, decimal.RequireFromString("400").Equal(stored[0].Amount))
	assert.Equal(t, date(2025, time.January, 15), stored[2].Date)
}

func TestTransactionRepository_CreateBatchRollsBackOnFailure(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewTransactionRepository(db)
	userID := uuid.New()

	rows, seriesID := installmentTransactions(userID, "1000", 5, date(2025, time.January, 10))

	// Occupy the primary key of the fourth installment so its insert fails.
	blocker := *rows[3]
	blocker.SeriesID = nil
	require.NoError(t, db.Create(model.TransactionFromEntity(&blocker)).Error)

	err := repo.CreateBatch(ctx, rows)
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&model.TransactionModel{}).Where("series_id = ?", seriesID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestTransactionRepository_Filters(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionRepository(newTestDB(t))
	userID := uuid.New()

	rows, _ := installmentTransactions(userID, "300", 3, date(2025, time.January, 31))
	require.NoError(t, repo.CreateBatch(ctx, rows))

	other, _ := installmentTransactions(uuid.New(), "300", 3, date(2025, time.January, 31))
	require.NoError(t, repo.CreateBatch(ctx, other))

	t.Run("month", func(t *testing.T) {
		month := valueobject.Month{Year: 2025, Month: time.February}
		got, err := repo.FindByUser(ctx, userID, entity.TransactionFilter{Month: &month})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, date(2025, time.February, 28), got[0].Date)
	})

	t.Run("type", func(t *testing.T) {
		income := entity.TransactionTypeIncome
		got, err := repo.FindByUser(ctx, userID, entity.TransactionFilter{Type: &income})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("due from", func(t *testing.T) {
		got, err := repo.FindExpensesDueFrom(ctx, userID, date(2025, time.February, 28))
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, 2, *got[0].Installment)
		assert.Equal(t, 3, *got[1].Installment)
	})

	t.Run("owner scope", func(t *testing.T) {
		_, err := repo.FindByIDAndUser(ctx, other[0].ID, userID)
		assert.ErrorIs(t, err, domainerror.ErrTransactionNotFound)
	})
}

func TestTransactionRepository_DeleteKeepsSiblings(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionRepository(newTestDB(t))
	userID := uuid.New()

	rows, seriesID := installmentTransactions(userID, "900", 3, date(2025, time.April, 1))
	require.NoError(t, repo.CreateBatch(ctx, rows))

	require.NoError(t, repo.DeleteByIDAndUser(ctx, rows[1].ID, userID))
	assert.ErrorIs(t, repo.DeleteByIDAndUser(ctx, rows[1].ID, userID), domainerror.ErrTransactionNotFound)

	left, err := repo.FindByUser(ctx, userID, entity.TransactionFilter{SeriesID: &seriesID})
	require.NoError(t, err)
	assert.Len(t, left, 2)
}

func TestTransactionRepository_UpdateRequiresOwnedRow(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewTransactionRepository(db)
	userID := uuid.New()

	rows, _ := installmentTransactions(userID, "100", 1, date(2025, time.May, 3))
	require.NoError(t, repo.CreateBatch(ctx, rows))
	txn := rows[0]

	foreign := *txn
	foreign.UserID = uuid.New()
	foreign.Description = "hijack"
	assert.ErrorIs(t, repo.Update(ctx, &foreign), domainerror.ErrTransactionNotFound)

	require.NoError(t, repo.DeleteByIDAndUser(ctx, txn.ID, userID))
	txn.Description = "Edited"
	assert.ErrorIs(t, repo.Update(ctx, txn), domainerror.ErrTransactionNotFound)

	var count int64
	require.NoError(t, db.Model(&model.TransactionModel{}).Where("id = ?", txn.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func seedPerson(t *testing.T, repo interface {
	Create(context.Context, *entity.Person) error
}, userID uuid.UUID, name string) *entity.Person {
	t.Helper()
	person := entity.NewPerson(userID, name, "friend", "", nil, nil, nil)
	require.NoError(t, repo.Create(context.Background(), person))
	return person
}

func singleDebt(userID, personID uuid.UUID, amount string, on time.Time) *entity.Debt {
	slot := valueobject.Slot{Date: on, Amount: decimal.RequireFromString(amount)}
	return entity.NewDebtFromSlot(userID, personID, nil, "Dinner", nil, slot, time.Now().UTC())
}

func TestDebtRepository_StatusFollowsPayments(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	debts := NewDebtRepository(db)
	people := NewPersonRepository(db)
	userID := uuid.New()

	ana := seedPerson(t, people, userID, "Ana")
	debt := singleDebt(userID, ana.ID, "100", date(2025, time.January, 5))
	require.NoError(t, debts.CreateBatch(ctx, []*entity.Debt{debt}))

	debt.ApplyPayment(decimal.RequireFromString("100"), time.Now().UTC())
	require.NoError(t, debts.Update(ctx, debt))

	paid := valueobject.PaymentStatusPaid
	got, err := debts.FindByUser(ctx, userID, entity.DebtFilter{Status: &paid})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, valueobject.PaymentStatusPaid, got[0].Debt.Status)
	require.NotNil(t, got[0].Person)
	assert.Equal(t, "Ana", got[0].Person.Name)

	pending := valueobject.PaymentStatusPending
	got, err = debts.FindByUser(ctx, userID, entity.DebtFilter{Status: &pending})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDebtRepository_UpdateRequiresOwnedRow(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	debts := NewDebtRepository(db)
	userID := uuid.New()

	ana := seedPerson(t, NewPersonRepository(db), userID, "Ana")
	debt := singleDebt(userID, ana.ID, "60", date(2025, time.March, 8))
	require.NoError(t, debts.CreateBatch(ctx, []*entity.Debt{debt}))

	foreign := *debt
	foreign.UserID = uuid.New()
	foreign.ApplyPayment(decimal.RequireFromString("60"), time.Now().UTC())
	assert.ErrorIs(t, debts.Update(ctx, &foreign), domainerror.ErrDebtNotFound)

	stored, err := debts.FindByIDAndUser(ctx, debt.ID, userID)
	require.NoError(t, err)
	assert.True(t, stored.PaidAmount.IsZero())

	require.NoError(t, debts.DeleteByIDAndUser(ctx, debt.ID, userID))
	debt.ApplyPayment(decimal.RequireFromString("20"), time.Now().UTC())
	assert.ErrorIs(t, debts.Update(ctx, debt), domainerror.ErrDebtNotFound)

	var count int64
	require.NoError(t, db.Model(&model.DebtModel{}).Where("id = ?", debt.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPersonRepository_DeleteWithDebts(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	debts := NewDebtRepository(db)
	people := NewPersonRepository(db)
	userID := uuid.New()

	ana := seedPerson(t, people, userID, "Ana")
	bruno := seedPerson(t, people, userID, "Bruno")
	require.NoError(t, debts.CreateBatch(ctx, []*entity.Debt{
		singleDebt(userID, ana.ID, "50", date(2025, time.January, 5)),
		singleDebt(userID, ana.ID, "70", date(2025, time.February, 5)),
		singleDebt(userID, bruno.ID, "30", date(2025, time.January, 7)),
	}))

	assert.ErrorIs(t, people.DeleteWithDebts(ctx, ana.ID, uuid.New()), domainerror.ErrPersonNotFound)

	require.NoError(t, people.DeleteWithDebts(ctx, ana.ID, userID))

	_, err := people.FindByIDAndUser(ctx, ana.ID, userID)
	assert.ErrorIs(t, err, domainerror.ErrPersonNotFound)

	left, err := debts.FindByUser(ctx, userID, entity.DebtFilter{})
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, bruno.ID, left[0].Debt.PersonID)
}

func TestSeedDefaults_Idempotent(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	require.NoError(t, SeedDefaults(ctx, db))
	require.NoError(t, SeedDefaults(ctx, db))

	categories, err := NewCategoryRepository(db).FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, len(defaultCategories))

	relationships, err := NewRelationshipRepository(db).FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, relationships, len(defaultRelationships))

	methods, err := NewPaymentMethodRepository(db).FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, methods, len(defaultPaymentMethods))
}

func TestCatalogReferences(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	require.NoError(t, SeedDefaults(ctx, db))

	categories := NewCategoryRepository(db)
	methods := NewPaymentMethodRepository(db)
	transactions := NewTransactionRepository(db)

	rows, _ := installmentTransactions(uuid.New(), "100", 2, date(2025, time.May, 2))
	require.NoError(t, transactions.CreateBatch(ctx, rows))

	referenced, err := categories.IsReferenced(ctx, "other")
	require.NoError(t, err)
	assert.True(t, referenced)

	referenced, err = categories.IsReferenced(ctx, "food")
	require.NoError(t, err)
	assert.False(t, referenced)

	referenced, err = methods.IsReferenced(ctx, *rows[0].PaymentMethodID)
	require.NoError(t, err)
	assert.True(t, referenced)

	exists, err := methods.ExistsByName(ctx, "pix", nil)
	require.NoError(t, err)
	assert.True(t, exists)
}
