package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"catalog/config"
	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// productService implements the ProductUsecase interface.
type productService struct {
	txManager    repository.TransactionManager
	productRepo  repository.ProductRepository
	cache        service.Cache
	publisher    service.EventPublisher
	productTTL   time.Duration
	defaultLimit int
	maxLimit     int
	logger       *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	Cache       service.Cache
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	catalogCfg := config.DefaultCatalogConfig()
	if params.Config != nil && params.Config.Catalog != nil {
		catalogCfg = params.Config.Catalog
	}

	return &productService{
		txManager:    params.TxManager,
		productRepo:  params.ProductRepo,
		cache:        params.Cache,
		publisher:    params.Publisher,
		productTTL:   catalogCfg.ProductCacheTTL,
		defaultLimit: catalogCfg.DefaultPageLimit,
		maxLimit:     catalogCfg.MaxPageLimit,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct stores the product, its variants and its images in one transaction.
// BasePrice is fixed to the lowest variant price.
func (srv *productService) CreateProduct(ctx context.Context, vendorID uuid.UUID, input *usecase.CreateProductInput) (*entity.Product, error) {
	if err := validateCreateProduct(input); err != nil {
		return nil, err
	}

	exists, err := srv.productRepo.ExistsBySlug(ctx, input.Slug)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check product slug")
	}
	if exists {
		return nil, domainerrors.ErrSlugConflict.WithDetails("product slug already exists")
	}

	product := buildProduct(vendorID, input)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		if _, err := repoFactory.CategoryRepo().FindCategoryByID(ctx, product.CategoryID); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return domainerrors.ErrCategoryNotFound
			}

			return errors.Wrap(err, "failed to find product category")
		}

		if _, err := repoFactory.VendorRepo().FindVendorByID(ctx, vendorID); err != nil {
			if errors.Is(err, repository.ErrVendorNotFound) {
				return domainerrors.ErrVendorNotFound
			}

			return errors.Wrap(err, "failed to find product vendor")
		}

		if err := productRepo.CreateProduct(ctx, product); err != nil {
			return mapProductRepoError(err)
		}

		for _, variant := range product.Variants {
			variant.ProductID = product.ID
		}
		if err := productRepo.CreateVariants(ctx, product.Variants); err != nil {
			return mapProductRepoError(err)
		}

		for _, image := range product.Images {
			image.ProductID = product.ID
		}
		if err := productRepo.CreateImages(ctx, product.Images); err != nil {
			return mapProductRepoError(err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	invalidateCache(ctx, srv.cache, srv.log(ctx), productCacheKey(product.Slug))

	srv.log(ctx).Info("Product created",
		slog.String("product_id", product.ID.String()),
		slog.String("slug", product.Slug),
		slog.Int("variants", len(product.Variants)),
	)

	srv.publish(ctx, &service.CatalogEvent{
		Type:      service.EventProductCreated,
		ProductID: product.ID.String(),
		Slug:      product.Slug,
		VendorID:  vendorID.String(),
	})

	return product, nil
}

// ListProducts returns one page of published products. The page and the total
// count are queried concurrently.
func (srv *productService) ListProducts(ctx context.Context, filter *usecase.ProductFilter) (*entity.ProductPage, error) {
	if filter == nil {
		filter = &usecase.ProductFilter{}
	}

	page := max(filter.Page, 1)
	limit := filter.Limit
	if limit < 1 {
		limit = srv.defaultLimit
	}
	limit = min(limit, srv.maxLimit)

	query := repository.ProductQuery{
		Search:     filter.Search,
		CategoryID: filter.CategoryID,
		MinPrice:   filter.MinPrice,
		MaxPrice:   filter.MaxPrice,
		Offset:     (page - 1) * limit,
		Limit:      limit,
	}

	var (
		products []*entity.Product
		total    int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = srv.productRepo.FindPublishedProducts(gctx, query)

		return err
	})
	g.Go(func() error {
		var err error
		total, err = srv.productRepo.CountPublishedProducts(gctx, query)

		return err
	})
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return &entity.ProductPage{
		Data: products,
		Meta: entity.NewPageMeta(total, page, limit),
	}, nil
}

// GetProduct returns the full product detail by slug, reading through the product cache.
func (srv *productService) GetProduct(ctx context.Context, slug string) (*entity.Product, error) {
	key := productCacheKey(slug)

	var cached entity.Product
	if readCachedJSON(ctx, srv.cache, srv.log(ctx), key, &cached) {
		return &cached, nil
	}

	product, err := srv.productRepo.FindProductBySlug(ctx, slug)
	if err != nil {
		return nil, mapProductRepoError(err)
	}

	writeCachedJSON(ctx, srv.cache, srv.log(ctx), key, product, srv.productTTL)

	return product, nil
}

// UpdateStock adds delta to the variant's stock with a single arithmetic UPDATE.
// The result may be negative.
func (srv *productService) UpdateStock(ctx context.Context, variantID uuid.UUID, delta int) (*entity.ProductVariant, error) {
	var (
		variant *entity.ProductVariant
		slug    string
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		if err := productRepo.IncrementVariantStock(ctx, variantID, delta); err != nil {
			return mapProductRepoError(err)
		}

		var err error
		variant, err = productRepo.FindVariantByID(ctx, variantID)
		if err != nil {
			return mapProductRepoError(err)
		}

		slug, err = productRepo.FindProductSlugByID(ctx, variant.ProductID)
		if err != nil {
			return mapProductRepoError(err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	invalidateCache(ctx, srv.cache, srv.log(ctx), productCacheKey(slug))

	srv.log(ctx).Info("Variant stock adjusted",
		slog.String("variant_id", variantID.String()),
		slog.Int("delta", delta),
		slog.Int("stock", variant.Stock),
	)

	srv.publish(ctx, &service.CatalogEvent{
		Type:      service.EventStockAdjusted,
		ProductID: variant.ProductID.String(),
		Slug:      slug,
		VariantID: variantID.String(),
		Delta:     delta,
		Stock:     variant.Stock,
	})

	return variant, nil
}

// VariantVendorID returns the vendor that owns a variant's product.
func (srv *productService) VariantVendorID(ctx context.Context, variantID uuid.UUID) (uuid.UUID, error) {
	vendorID, err := srv.productRepo.FindVariantVendorID(ctx, variantID)
	if err != nil {
		return uuid.Nil, mapProductRepoError(err)
	}

	return vendorID, nil
}

// publish sends a catalog event after the mutation committed. Delivery failures are logged only.
func (srv *productService) publish(ctx context.Context, event *service.CatalogEvent) {
	if srv.publisher == nil {
		return
	}

	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	event.OccurredAt = time.Now().UTC()

	if err := srv.publisher.PublishCatalogEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish catalog event",
			slog.String("event_type", event.Type),
			slog.String("product_id", event.ProductID),
			slog.Any("error", err),
		)
	}
}

func buildProduct(vendorID uuid.UUID, input *usecase.CreateProductInput) *entity.Product {
	status := input.Status
	if status == "" {
		status = entity.ProductStatusDraft
	}

	variants := make([]*entity.ProductVariant, 0, len(input.Variants))
	for _, v := range input.Variants {
		attributes := v.Attributes
		if attributes == nil {
			attributes = map[string]string{}
		}
		variants = append(variants, &entity.ProductVariant{
			SKU:        strings.TrimSpace(v.SKU),
			Price:      v.Price,
			Stock:      v.Stock,
			Attributes: attributes,
		})
	}

	images := make([]*entity.ProductImage, 0, len(input.Images))
	for i, img := range input.Images {
		order := i
		if img.Order != nil {
			order = *img.Order
		}
		images = append(images, &entity.ProductImage{
			URL:    img.URL,
			Alt:    img.Alt,
			IsMain: img.IsMain,
			Order:  order,
		})
	}

	basePrice, _ := entity.MinVariantPrice(variants)

	return &entity.Product{
		Name:        strings.TrimSpace(input.Name),
		Slug:        input.Slug,
		Description: input.Description,
		CategoryID:  input.CategoryID,
		VendorID:    vendorID,
		BasePrice:   basePrice,
		Status:      status,
		Variants:    variants,
		Images:      images,
	}
}

func validateCreateProduct(input *usecase.CreateProductInput) error {
	name := strings.TrimSpace(input.Name)
	if name == "" || utf8.RuneCountInString(name) > 200 {
		return domainerrors.ErrValidationFailed.WithDetails("name must be 1 to 200 characters")
	}
	if !entity.IsValidSlug(input.Slug) {
		return domainerrors.ErrValidationFailed.WithDetails("slug must be lowercase words separated by single hyphens")
	}
	if input.CategoryID == uuid.Nil {
		return domainerrors.ErrValidationFailed.WithDetails("category is required")
	}
	if input.Status != "" && !input.Status.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown product status")
	}
	if len(input.Variants) == 0 {
		return domainerrors.ErrValidationFailed.WithDetails("at least one variant is required")
	}
	for _, v := range input.Variants {
		if strings.TrimSpace(v.SKU) == "" {
			return domainerrors.ErrValidationFailed.WithDetails("variant sku is required")
		}
		if v.Price < 0 {
			return domainerrors.ErrValidationFailed.WithDetails("variant price must not be negative")
		}
	}
	for _, img := range input.Images {
		if strings.TrimSpace(img.URL) == "" {
			return domainerrors.ErrValidationFailed.WithDetails("image url is required")
		}
	}

	return nil
}

// mapProductRepoError translates repository sentinels into domain errors.
func mapProductRepoError(err error) error {
	switch {
	case errors.Is(err, repository.ErrProductNotFound):
		return domainerrors.ErrProductNotFound
	case errors.Is(err, repository.ErrVariantNotFound):
		return domainerrors.ErrVariantNotFound
	case errors.Is(err, repository.ErrDuplicateProductSlug):
		return domainerrors.ErrSlugConflict.WithDetails("product slug already exists")
	case errors.Is(err, repository.ErrInvalidProductReference):
		return domainerrors.ErrNotFound.WithDetails("category or vendor not found")
	default:
		return errors.Wrap(err, "product store operation failed")
	}
}
