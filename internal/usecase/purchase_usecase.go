package usecase

import (
	"context"

	"planner/internal/domain/entity"
)

// PurchaseUsecase assembles the denormalized purchase history.
type PurchaseUsecase interface {
	// ListPurchases joins payments with their event, package, customer and
	// feedback, newest payment first. Payments whose references do not
	// resolve are left out.
	ListPurchases(ctx context.Context, actor entity.Actor, customerID string) ([]*entity.PurchaseRecord, error)
}
