package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "socialdesk/internal/delivery/context"
	"socialdesk/internal/domain/entity"
	domainerrors "socialdesk/internal/domain/errors"
	"socialdesk/internal/domain/repository"
	"socialdesk/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const reasonInitialStock = "initial stock"

type productService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for the catalog, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:   params.TxManager,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *productService) CreateProduct(ctx context.Context, userID uuid.UUID, input usecase.CreateProductInput) (*entity.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	if input.PurchasePrice < 0 || input.SellingPrice < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("prices cannot be negative")
	}
	if input.InitialStock < 0 {
		return nil, domainerrors.ErrInvalidQuantity.WithDetails("initial stock cannot be negative")
	}

	product := &entity.Product{
		UserID:        userID,
		Name:          name,
		Category:      normalizeOptional(input.Category),
		PurchasePrice: input.PurchasePrice,
		SellingPrice:  input.SellingPrice,
	}

	// Stock starts at zero and the initial quantity goes through the ledger, so the ledger baseline is zero.
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.ProductRepo().Create(ctx, product); err != nil {
			return err
		}

		_, err := applyStockChange(ctx, repos, product, stockChange{
			delta:  input.InitialStock,
			reason: reasonInitialStock,
			kind:   entity.MovementKindInitial,
		})

		return err
	})
	if err != nil {
		return nil, translateError(err, "failed to create product")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Product created",
		slog.Any("productID", product.ID),
		slog.Int("stock", product.StockQuantity),
	)

	return product, nil
}

func (srv *productService) UpdateProduct(
	ctx context.Context,
	userID, productID uuid.UUID,
	input usecase.UpdateProductInput,
) (*entity.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	if input.PurchasePrice < 0 || input.SellingPrice < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("prices cannot be negative")
	}

	product, err := srv.productRepo.FindByID(ctx, userID, productID)
	if err != nil {
		return nil, translateError(err, "failed to load product")
	}

	product.Name = name
	product.Category = normalizeOptional(input.Category)
	product.PurchasePrice = input.PurchasePrice
	product.SellingPrice = input.SellingPrice

	if err := srv.productRepo.UpdateDetails(ctx, product); err != nil {
		return nil, translateError(err, "failed to update product")
	}

	return product, nil
}

func (srv *productService) SetArchived(ctx context.Context, userID, productID uuid.UUID, archived bool) (*entity.Product, error) {
	if err := srv.productRepo.SetArchived(ctx, userID, productID, archived); err != nil {
		return nil, translateError(err, "failed to archive product")
	}

	return srv.GetProduct(ctx, userID, productID)
}

func (srv *productService) GetProduct(ctx context.Context, userID, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, userID, productID)
	if err != nil {
		return nil, translateError(err, "failed to get product")
	}

	return product, nil
}

func (srv *productService) ListProducts(ctx context.Context, userID uuid.UUID, filter entity.ProductFilter) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx, userID, filter)
	if err != nil {
		return nil, translateError(err, "failed to list products")
	}

	return products, nil
}

func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
