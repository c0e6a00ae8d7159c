package persistence

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
)

func strPtr(s string) *string { return &s }

var defaultCategories = []model.CategoryModel{
	{ID: "food", Name: "Alimentação", Icon: strPtr("utensils"), Color: strPtr("bg-orange-500")},
	{ID: "transport", Name: "Transporte", Icon: strPtr("car"), Color: strPtr("bg-blue-500")},
	{ID: "housing", Name: "Moradia", Icon: strPtr("home"), Color: strPtr("bg-amber-600")},
	{ID: "health", Name: "Saúde", Icon: strPtr("heart-pulse"), Color: strPtr("bg-red-500")},
	{ID: "leisure", Name: "Lazer", Icon: strPtr("party-popper"), Color: strPtr("bg-purple-500")},
	{ID: "salary", Name: "Salário", Icon: strPtr("wallet"), Color: strPtr("bg-green-500")},
	{ID: "other", Name: "Outros", Icon: strPtr("tag"), Color: strPtr("bg-gray-500")},
}

var defaultRelationships = []model.RelationshipModel{
	{ID: "family", Name: "Família", Icon: strPtr("users")},
	{ID: "friend", Name: "Amigo", Icon: strPtr("smile")},
	{ID: "coworker", Name: "Colega de trabalho", Icon: strPtr("briefcase")},
	{ID: "other", Name: "Outro", Icon: strPtr("user")},
}

var defaultPaymentMethods = []string{"Dinheiro", "Cartão de Crédito", "Cartão de Débito", "PIX"}

// SeedDefaults inserts the default catalogs. Rows that already exist are left untouched,
// so it is safe to run on every startup.
func SeedDefaults(ctx context.Context, db *gorm.DB) error {
	now := time.Now().UTC()

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, c := range defaultCategories {
			c.CreatedAt, c.UpdatedAt = now, now
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&c).Error; err != nil {
				return fmt.Errorf("failed to seed category %s: %w", c.ID, err)
			}
		}

		for _, r := range defaultRelationships {
			r.CreatedAt = now
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&r).Error; err != nil {
				return fmt.Errorf("failed to seed relationship %s: %w", r.ID, err)
			}
		}

		for _, name := range defaultPaymentMethods {
			var count int64
			if err := tx.Model(&model.PaymentMethodModel{}).Where("name = ?", name).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}
			method := model.PaymentMethodModel{ID: uuid.New(), Name: name, CreatedAt: now, UpdatedAt: now}
			if err := tx.Create(&method).Error; err != nil {
				return fmt.Errorf("failed to seed payment method %s: %w", name, err)
			}
		}

		slog.Debug("Default catalogs seeded")
		return nil
	})
}
