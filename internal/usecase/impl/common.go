// Package impl contains the implementation of the application's business logic.
package impl

import (
	"bytes"
	"context"
	"fmt"
	"slices"

	"socialdesk/internal/domain/entity"
	domainerrors "socialdesk/internal/domain/errors"
	"socialdesk/internal/domain/repository"
	"socialdesk/internal/errors"

	"github.com/google/uuid"
)

// stockChange describes one ledger write.
type stockChange struct {
	delta         int
	reason        string
	kind          entity.MovementKind
	orderID       *uuid.UUID
	allowNegative bool
}

// applyStockChange is the only code path that writes stock_quantity. The caller must hold the
// product row lock; product is updated in place. A zero delta writes nothing. Only deductions
// are checked against negative stock, so restocks always apply after a negative correction.
func applyStockChange(
	ctx context.Context,
	repos repository.RepositoryFactory,
	product *entity.Product,
	change stockChange,
) (*entity.StockMovement, error) {
	if change.delta == 0 {
		return nil, nil
	}

	next := product.StockQuantity + change.delta
	if change.delta < 0 && next < 0 && !change.allowNegative {
		return nil, domainerrors.ErrInvalidQuantity.WithDetails(
			fmt.Sprintf("%s: stock %d cannot change by %d", product.Name, product.StockQuantity, change.delta))
	}

	movement := &entity.StockMovement{
		UserID:         product.UserID,
		ProductID:      product.ID,
		ChangeQuantity: change.delta,
		Reason:         change.reason,
		Kind:           change.kind,
		OrderID:        change.orderID,
	}
	if err := repos.StockMovementRepo().Create(ctx, movement); err != nil {
		return nil, errors.Wrap(err, "failed to append stock movement")
	}
	if err := repos.ProductRepo().UpdateStockQuantity(ctx, product.ID, next); err != nil {
		return nil, errors.Wrap(err, "failed to update stock quantity")
	}
	product.StockQuantity = next

	return movement, nil
}

// translateError maps repository sentinels to domain errors and leaves domain errors untouched.
func translateError(err error, message string) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, repository.ErrProductNotFound):
		return domainerrors.ErrNotFound.WithDetails("product not found")
	case errors.Is(err, repository.ErrCustomerNotFound):
		return domainerrors.ErrNotFound.WithDetails("customer not found")
	case errors.Is(err, repository.ErrOrderNotFound):
		return domainerrors.ErrNotFound.WithDetails("order not found")
	case errors.Is(err, repository.ErrConversationNotFound):
		return domainerrors.ErrNotFound.WithDetails("conversation not found")
	case errors.Is(err, repository.ErrUserNotFound):
		return domainerrors.ErrNotFound.WithDetails("user not found")
	case errors.Is(err, repository.ErrDuplicateCustomer):
		return domainerrors.ErrConflict.WithDetails("a customer is already linked to this platform user")
	}

	if _, ok := errors.AsType[domainerrors.AppError](err); ok {
		return err
	}

	return errors.Wrap(err, message)
}

func sortedIDs(ids map[uuid.UUID]int) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	for id := range ids {
		out = append(out, id)
	}
	sortUUIDs(out)

	return out
}

// sortUUIDs orders ids the way PostgreSQL compares uuid values.
func sortUUIDs(ids []uuid.UUID) {
	slices.SortFunc(ids, func(a, b uuid.UUID) int { return bytes.Compare(a[:], b[:]) })
}
