package impl

import (
	"context"
	"iter"
	"log/slog"
	"strings"

	deliverycontext "socialdesk/internal/delivery/context"
	"socialdesk/internal/domain/entity"
	domainerrors "socialdesk/internal/domain/errors"
	"socialdesk/internal/domain/repository"
	"socialdesk/internal/errors"
	"socialdesk/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultHistoryPageSize = 50
	maxHistoryPageSize     = 500

	reasonManualAdjustment = "manual adjustment"
	reasonInventoryCount   = "inventory count"
	reasonArrival          = "goods arrival"
)

type stockLedgerService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// StockLedgerServiceParams holds dependencies for the stock ledger, injected by Fx.
type StockLedgerServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

func NewStockLedgerService(params StockLedgerServiceParams) usecase.StockLedgerUsecase {
	return &stockLedgerService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *stockLedgerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *stockLedgerService) RecordMovement(ctx context.Context, userID uuid.UUID, input usecase.MovementInput) (*entity.Product, error) {
	if input.Delta == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("delta must not be zero")
	}

	reason := strings.TrimSpace(input.Reason)
	kind := entity.MovementKindAdjustment
	if input.Correction {
		if reason == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("a correction requires a justification")
		}
		kind = entity.MovementKindCorrection
	}
	if reason == "" {
		reason = reasonManualAdjustment
	}

	var product *entity.Product
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		var err error
		product, err = repos.ProductRepo().FindByIDForUpdate(ctx, userID, input.ProductID)
		if err != nil {
			return err
		}

		_, err = applyStockChange(ctx, repos, product, stockChange{
			delta:         input.Delta,
			reason:        reason,
			kind:          kind,
			allowNegative: input.Correction,
		})

		return err
	})
	if err != nil {
		return nil, translateError(err, "failed to record stock movement")
	}

	srv.log(ctx).Info("Stock movement recorded",
		slog.Any("productID", product.ID),
		slog.Int("delta", input.Delta),
		slog.String("kind", string(kind)),
		slog.Int("stock", product.StockQuantity),
	)

	return product, nil
}

func (srv *stockLedgerService) SetAbsoluteQuantity(
	ctx context.Context,
	userID, productID uuid.UUID,
	newQuantity int,
	reason string,
) (*entity.Product, error) {
	if newQuantity < 0 {
		return nil, domainerrors.ErrInvalidQuantity.WithDetails("stock quantity cannot be negative")
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = reasonInventoryCount
	}

	var product *entity.Product
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		var err error
		product, err = repos.ProductRepo().FindByIDForUpdate(ctx, userID, productID)
		if err != nil {
			return err
		}

		// The delta is computed under the lock so a concurrent movement cannot be overwritten.
		_, err = applyStockChange(ctx, repos, product, stockChange{
			delta:  newQuantity - product.StockQuantity,
			reason: reason,
			kind:   entity.MovementKindAdjustment,
		})

		return err
	})
	if err != nil {
		return nil, translateError(err, "failed to set stock quantity")
	}

	return product, nil
}

// arrivalLine is an arrival item after merging duplicate products.
type arrivalLine struct {
	index     int // position of the first occurrence in the request
	productID uuid.UUID
	quantity  int
}

func (srv *stockLedgerService) BulkArrival(
	ctx context.Context,
	userID uuid.UUID,
	items []usecase.ArrivalItem,
	reason string,
) ([]*entity.Product, error) {
	if len(items) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("an arrival needs at least one item")
	}

	lines := make([]*arrivalLine, 0, len(items))
	byProduct := make(map[uuid.UUID]*arrivalLine, len(items))
	for i, item := range items {
		if item.Quantity <= 0 {
			return nil, domainerrors.NewAtomicBatchError(i, item.ProductID,
				domainerrors.ErrInvalidQuantity.WithDetails("arrival quantity must be positive"))
		}
		if line, ok := byProduct[item.ProductID]; ok {
			line.quantity += item.Quantity

			continue
		}
		line := &arrivalLine{index: i, productID: item.ProductID, quantity: item.Quantity}
		byProduct[item.ProductID] = line
		lines = append(lines, line)
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = reasonArrival
	}

	// Lock in ascending id order, the same order every other multi-product operation uses.
	lockOrder := make([]uuid.UUID, 0, len(lines))
	for _, line := range lines {
		lockOrder = append(lockOrder, line.productID)
	}
	sortUUIDs(lockOrder)

	products := make(map[uuid.UUID]*entity.Product, len(lines))
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		for _, productID := range lockOrder {
			line := byProduct[productID]

			product, err := repos.ProductRepo().FindByIDForUpdate(ctx, userID, productID)
			if err != nil {
				return domainerrors.NewAtomicBatchError(line.index, productID, translateError(err, "failed to lock product"))
			}

			_, err = applyStockChange(ctx, repos, product, stockChange{
				delta:  line.quantity,
				reason: reason,
				kind:   entity.MovementKindArrival,
			})
			if err != nil {
				return domainerrors.NewAtomicBatchError(line.index, productID, translateError(err, "failed to apply arrival"))
			}
			products[productID] = product
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Bulk arrival rolled back", slog.Int("items", len(items)), slog.Any("error", err))

		if _, ok := errors.AsType[*domainerrors.AtomicBatchError](err); ok {
			return nil, err
		}

		return nil, domainerrors.NewAtomicBatchError(-1, uuid.Nil, errors.Wrap(err, "arrival transaction failed"))
	}

	out := make([]*entity.Product, 0, len(lines))
	for _, line := range lines {
		out = append(out, products[line.productID])
	}

	srv.log(ctx).Info("Bulk arrival applied", slog.Int("products", len(out)))

	return out, nil
}

func (srv *stockLedgerService) History(
	ctx context.Context,
	userID, productID uuid.UUID,
	pageSize int,
) iter.Seq2[entity.StockHistoryEntry, error] {
	switch {
	case pageSize <= 0:
		pageSize = defaultHistoryPageSize
	case pageSize > maxHistoryPageSize:
		pageSize = maxHistoryPageSize
	}

	return func(yield func(entity.StockHistoryEntry, error) bool) {
		balance, cursor, err := srv.historySnapshot(ctx, userID, productID)
		if err != nil {
			yield(entity.StockHistoryEntry{}, err)

			return
		}
		if cursor == nil {
			return
		}

		inclusive := true
		for {
			page, err := srv.historyPage(ctx, productID, *cursor, inclusive, pageSize)
			if err != nil {
				yield(entity.StockHistoryEntry{}, errors.Wrap(err, "failed to read stock history"))

				return
			}

			for _, movement := range page {
				if !yield(entity.StockHistoryEntry{Movement: *movement, BalanceAfter: balance}, nil) {
					return
				}
				balance -= movement.ChangeQuantity
			}

			if len(page) < pageSize {
				return
			}

			last := page[len(page)-1]
			cursor = &entity.MovementCursor{CreatedAt: last.CreatedAt, ID: last.ID}
			inclusive = false
		}
	}
}

// historyPage reads one page on the primary. A replica may not have the movements the snapshot saw yet.
func (srv *stockLedgerService) historyPage(
	ctx context.Context,
	productID uuid.UUID,
	cursor entity.MovementCursor,
	inclusive bool,
	limit int,
) ([]*entity.StockMovement, error) {
	var page []*entity.StockMovement
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		var err error
		page, err = repos.StockMovementRepo().ListBefore(ctx, productID, cursor, inclusive, limit)

		return err
	})

	return page, err
}

// historySnapshot reads the current stock and the newest movement under the product row lock,
// so the pair is consistent and later movements are excluded from this iteration.
func (srv *stockLedgerService) historySnapshot(
	ctx context.Context,
	userID, productID uuid.UUID,
) (int, *entity.MovementCursor, error) {
	var (
		balance int
		cursor  *entity.MovementCursor
	)

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		product, err := repos.ProductRepo().FindByIDForUpdate(ctx, userID, productID)
		if err != nil {
			return err
		}
		balance = product.StockQuantity

		cursor, err = repos.StockMovementRepo().Latest(ctx, productID)

		return err
	})
	if err != nil {
		return 0, nil, translateError(err, "failed to snapshot stock history")
	}

	return balance, cursor, nil
}

func (srv *stockLedgerService) VerifyBalance(ctx context.Context, userID, productID uuid.UUID) (*usecase.BalanceReport, error) {
	report := &usecase.BalanceReport{ProductID: productID}

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		product, err := repos.ProductRepo().FindByIDForUpdate(ctx, userID, productID)
		if err != nil {
			return err
		}

		sum, err := repos.StockMovementRepo().SumByProduct(ctx, productID)
		if err != nil {
			return err
		}

		report.StockQuantity = product.StockQuantity
		report.LedgerSum = sum
		report.Drift = product.StockQuantity - sum

		return nil
	})
	if err != nil {
		return nil, translateError(err, "failed to verify stock balance")
	}

	if !report.Balanced() {
		srv.log(ctx).Error("Stock ledger drift detected",
			slog.Any("productID", productID),
			slog.Int("stock", report.StockQuantity),
			slog.Int("ledgerSum", report.LedgerSum),
		)
	}

	return report, nil
}
