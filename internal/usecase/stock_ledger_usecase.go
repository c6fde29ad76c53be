// Package usecase declares the application operations exposed to the delivery layer.
package usecase

import (
	"context"
	"iter"

	"socialdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// MovementInput is a signed stock change requested by an operator.
type MovementInput struct {
	ProductID uuid.UUID `json:"product_id"`
	Delta     int       `json:"delta" validate:"required"`
	Reason    string    `json:"reason" validate:"required,max=500"`

	// Correction allows the movement to leave stock below zero. Reason must justify it.
	Correction bool `json:"correction"`
}

// ArrivalItem is one line of a goods arrival.
type ArrivalItem struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}

// BalanceReport compares the stored stock level with the ledger.
type BalanceReport struct {
	ProductID     uuid.UUID `json:"product_id"`
	StockQuantity int       `json:"stock_quantity"`
	LedgerSum     int       `json:"ledger_sum"`
	Drift         int       `json:"drift"`
}

// Balanced reports whether the stored quantity equals the ledger sum.
func (r *BalanceReport) Balanced() bool {
	return r.Drift == 0
}

// StockLedgerUsecase owns every change to product stock.
type StockLedgerUsecase interface {
	// RecordMovement applies a signed delta and appends it to the ledger.
	RecordMovement(ctx context.Context, userID uuid.UUID, input MovementInput) (*entity.Product, error)

	// SetAbsoluteQuantity records the delta needed to reach newQuantity.
	SetAbsoluteQuantity(ctx context.Context, userID, productID uuid.UUID, newQuantity int, reason string) (*entity.Product, error)

	// BulkArrival adds stock for every item in one transaction, or for none.
	BulkArrival(ctx context.Context, userID uuid.UUID, items []ArrivalItem, reason string) ([]*entity.Product, error)

	// History yields movements newest first with the balance after each one.
	// The sequence is lazy and can be ranged over more than once.
	History(ctx context.Context, userID, productID uuid.UUID, pageSize int) iter.Seq2[entity.StockHistoryEntry, error]

	// VerifyBalance reports drift between stock_quantity and the ledger sum.
	VerifyBalance(ctx context.Context, userID, productID uuid.UUID) (*BalanceReport, error)
}
