package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
)

// debtRepository implements the adapter.DebtRepository interface.
type debtRepository struct {
	db *gorm.DB
}

// NewDebtRepository creates a new debt repository instance.
func NewDebtRepository(db *gorm.DB) adapter.DebtRepository {
	return &debtRepository{
		db: db,
	}
}

// CreateBatch inserts every debt inside one database transaction.
func (r *debtRepository) CreateBatch(ctx context.Context, debts []*entity.Debt) error {
	if len(debts) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, d := range debts {
			if err := tx.Omit("Person").Create(model.DebtFromEntity(d)).Error; err != nil {
				return fmt.Errorf("insert row %d of %d: %w", i+1, len(debts), err)
			}
		}
		return nil
	})
}

// FindByIDAndUser retrieves a debt owned by the given user.
func (r *debtRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Debt, error) {
	var debtModel model.DebtModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&debtModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrDebtNotFound
		}
		return nil, result.Error
	}
	return debtModel.ToEntity(), nil
}

// FindByUser lists a user's debts with their people, newest first.
func (r *debtRepository) FindByUser(ctx context.Context, userID uuid.UUID, filter entity.DebtFilter) ([]*entity.DebtWithPerson, error) {
	query := r.db.WithContext(ctx).
		Preload("Person").
		Where("user_id = ?", userID)

	if filter.Month != nil {
		query = query.Where("date >= ? AND date < ?", filter.Month.Start(), filter.Month.End())
	}
	if filter.PersonID != nil {
		query = query.Where("person_id = ?", *filter.PersonID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.SeriesID != nil {
		query = query.Where("series_id = ?", *filter.SeriesID)
	}

	var debtModels []model.DebtModel
	if err := query.Order("date DESC, created_at DESC").Find(&debtModels).Error; err != nil {
		return nil, err
	}

	debts := make([]*entity.DebtWithPerson, len(debtModels))
	for i := range debtModels {
		debts[i] = debtModels[i].ToEntityWithPerson()
	}
	return debts, nil
}

// Update persists changes to an existing debt owned by debt.UserID. The status column
// is derived from the amounts. A row that no longer exists is not recreated.
func (r *debtRepository) Update(ctx context.Context, debt *entity.Debt) error {
	debtModel := model.DebtFromEntity(debt)
	result := r.db.WithContext(ctx).
		Model(debtModel).
		Where("id = ? AND user_id = ?", debt.ID, debt.UserID).
		Select("*").
		Omit("id", "user_id", "created_at", "Person").
		Updates(debtModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrDebtNotFound
	}
	return nil
}

// DeleteByIDAndUser removes one debt owned by the user.
func (r *debtRepository) DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.DebtModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrDebtNotFound
	}
	return nil
}
