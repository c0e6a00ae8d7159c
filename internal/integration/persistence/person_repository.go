package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
)

// personRepository implements the adapter.PersonRepository interface.
type personRepository struct {
	db *gorm.DB
}

// NewPersonRepository creates a new person repository instance.
func NewPersonRepository(db *gorm.DB) adapter.PersonRepository {
	return &personRepository{
		db: db,
	}
}

// Create creates a new person in the database.
func (r *personRepository) Create(ctx context.Context, person *entity.Person) error {
	return r.db.WithContext(ctx).Create(model.PersonFromEntity(person)).Error
}

// FindByIDAndUser retrieves a person owned by the given user.
func (r *personRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Person, error) {
	var personModel model.PersonModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&personModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPersonNotFound
		}
		return nil, result.Error
	}
	return personModel.ToEntity(), nil
}

// FindByUser lists a user's people ordered by name.
func (r *personRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Person, error) {
	var personModels []model.PersonModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&personModels)
	if result.Error != nil {
		return nil, result.Error
	}

	people := make([]*entity.Person, len(personModels))
	for i := range personModels {
		people[i] = personModels[i].ToEntity()
	}
	return people, nil
}

// Update persists changes to an existing person.
func (r *personRepository) Update(ctx context.Context, person *entity.Person) error {
	return r.db.WithContext(ctx).Save(model.PersonFromEntity(person)).Error
}

// DeleteWithDebts removes the person and every debt that references them in one transaction.
func (r *personRepository) DeleteWithDebts(ctx context.Context, id, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.PersonModel{}).Where("id = ? AND user_id = ?", id, userID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domainerror.ErrPersonNotFound
		}

		if err := tx.Where("person_id = ? AND user_id = ?", id, userID).Delete(&model.DebtModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ? AND user_id = ?", id, userID).Delete(&model.PersonModel{}).Error
	})
}
