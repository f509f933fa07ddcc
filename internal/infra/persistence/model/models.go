// Package model holds the GORM persistence models of the unified store.
package model

// All returns every model managed by AutoMigrate, in dependency order.
func All() []any {
	return []any{
		&UserModel{},
		&EventModel{},
		&PackageModel{},
		&PaymentModel{},
		&FeedbackModel{},
	}
}
