package model

// AllModels lists every model managed by AutoMigrate, in dependency order.
func AllModels() []any {
	return []any{
		&UserModel{},
		&RefreshTokenModel{},
		&CategoryModel{},
		&RelationshipModel{},
		&PaymentMethodModel{},
		&PersonModel{},
		&TransactionModel{},
		&DebtModel{},
		&GoalModel{},
	}
}
