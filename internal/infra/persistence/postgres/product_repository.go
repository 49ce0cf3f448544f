package postgres

import (
	"context"
	"strings"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// CreateProduct persists the product row only.
func (repo *productRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Omit("Category", "Vendor", "Variants", "Images").Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateProductSlug
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrInvalidProductReference
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// CreateVariants persists the given variants.
func (repo *productRepository) CreateVariants(ctx context.Context, variants []*entity.ProductVariant) error {
	if len(variants) == 0 {
		return nil
	}

	variantModels := make([]*model.ProductVariantModel, 0, len(variants))
	for _, variant := range variants {
		variantModels = append(variantModels, fromVariantDomain(variant))
	}

	if err := repo.db.WithContext(ctx).Create(&variantModels).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product variants")
	}

	for i, variantM := range variantModels {
		variants[i].ID = variantM.ID
		variants[i].CreatedAt = variantM.CreatedAt
		variants[i].UpdatedAt = variantM.UpdatedAt
	}

	return nil
}

// CreateImages persists the given images.
func (repo *productRepository) CreateImages(ctx context.Context, images []*entity.ProductImage) error {
	if len(images) == 0 {
		return nil
	}

	imageModels := make([]*model.ProductImageModel, 0, len(images))
	for _, image := range images {
		imageModels = append(imageModels, fromImageDomain(image))
	}

	if err := repo.db.WithContext(ctx).Create(&imageModels).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product images")
	}

	for i, imageM := range imageModels {
		images[i].ID = imageM.ID
	}

	return nil
}

// ExistsBySlug reports whether a product already uses the slug.
func (repo *productRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("slug = ?", slug).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check product slug")
	}

	return count > 0, nil
}

// FindProductBySlug retrieves a product with its full detail projection.
func (repo *productRepository) FindProductBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Variants", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC").Order("id ASC")
		}).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("Vendor", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "store_name")
		}).
		Preload("Category", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name")
		}).
		Where("slug = ?", slug).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by slug")
	}

	return toProductDomain(&productM), nil
}

// FindPublishedProducts returns one page of published products, newest first.
func (repo *productRepository) FindPublishedProducts(ctx context.Context, query repository.ProductQuery) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.publishedScope(ctx, query).
		Preload("Images", "is_main = ?", true).
		Preload("Vendor", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "store_name")
		}).
		Order("products.created_at DESC").
		Order("products.id DESC").
		Offset(query.Offset).
		Limit(query.Limit).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find published products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// CountPublishedProducts counts published products matching the query.
func (repo *productRepository) CountPublishedProducts(ctx context.Context, query repository.ProductQuery) (int64, error) {
	var count int64

	if err := repo.publishedScope(ctx, query).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count published products")
	}

	return count, nil
}

// publishedScope applies the listing filters shared by the page and the count queries.
func (repo *productRepository) publishedScope(ctx context.Context, query repository.ProductQuery) *gorm.DB {
	tx := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("products.status = ?", entity.ProductStatusPublished.String())

	if search := strings.TrimSpace(query.Search); search != "" {
		tx = tx.Where(`LOWER(products.name) LIKE ? ESCAPE '\'`, "%"+escapeLike(strings.ToLower(search))+"%")
	}

	if query.CategoryID != nil {
		tx = tx.Where("products.category_id = ?", *query.CategoryID)
	}

	// A single variant has to satisfy both bounds.
	if query.MinPrice != nil || query.MaxPrice != nil {
		conds := []string{"pv.product_id = products.id"}
		args := make([]any, 0, 2)
		if query.MinPrice != nil {
			conds = append(conds, "pv.price >= ?")
			args = append(args, *query.MinPrice)
		}
		if query.MaxPrice != nil {
			conds = append(conds, "pv.price <= ?")
			args = append(args, *query.MaxPrice)
		}

		tx = tx.Where("EXISTS (SELECT 1 FROM product_variants pv WHERE "+strings.Join(conds, " AND ")+")", args...)
	}

	return tx
}

// IncrementVariantStock adds delta to the stock in one arithmetic UPDATE.
func (repo *productRepository) IncrementVariantStock(ctx context.Context, variantID uuid.UUID, delta int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductVariantModel{}).
		Where("id = ?", variantID).
		UpdateColumn("stock", gorm.Expr("stock + ?", delta))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment variant stock")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVariantNotFound
	}

	return nil
}

// FindVariantByID retrieves a single variant.
func (repo *productRepository) FindVariantByID(ctx context.Context, id uuid.UUID) (*entity.ProductVariant, error) {
	var variantM model.ProductVariantModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&variantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVariantNotFound
		}

		return nil, errors.Wrap(err, "failed to find product variant by ID")
	}

	return toVariantDomain(&variantM), nil
}

// FindProductSlugByID resolves the slug of a product.
func (repo *productRepository) FindProductSlugByID(ctx context.Context, id uuid.UUID) (string, error) {
	var slugs []string

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Limit(1).
		Pluck("slug", &slugs).Error; err != nil {
		return "", errors.Wrap(err, "failed to find product slug")
	}

	if len(slugs) == 0 {
		return "", repository.ErrProductNotFound
	}

	return slugs[0], nil
}

// FindVariantVendorID resolves the vendor owning the product of a variant.
func (repo *productRepository) FindVariantVendorID(ctx context.Context, variantID uuid.UUID) (uuid.UUID, error) {
	var vendorIDs []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductVariantModel{}).
		Joins("JOIN products ON products.id = product_variants.product_id").
		Where("product_variants.id = ?", variantID).
		Limit(1).
		Pluck("products.vendor_id", &vendorIDs).Error; err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to find variant vendor")
	}

	if len(vendorIDs) == 0 {
		return uuid.Nil, repository.ErrVariantNotFound
	}

	return vendorIDs[0], nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel, with whatever relations were preloaded, to a domain Product.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	product := &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Slug:        data.Slug,
		Description: data.Description,
		CategoryID:  data.CategoryID,
		VendorID:    data.VendorID,
		BasePrice:   data.BasePrice,
		Status:      entity.ProductStatus(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}

	if data.Variants != nil {
		product.Variants = make([]*entity.ProductVariant, 0, len(data.Variants))
		for _, variantM := range data.Variants {
			product.Variants = append(product.Variants, toVariantDomain(variantM))
		}
	}

	if data.Images != nil {
		product.Images = make([]*entity.ProductImage, 0, len(data.Images))
		for _, imageM := range data.Images {
			product.Images = append(product.Images, toImageDomain(imageM))
		}
	}

	if data.Vendor != nil {
		product.Vendor = &entity.VendorSummary{
			ID:        data.Vendor.ID,
			StoreName: data.Vendor.StoreName,
		}
	}

	if data.Category != nil {
		product.Category = &entity.CategorySummary{
			ID:   data.Category.ID,
			Name: data.Category.Name,
		}
	}

	return product
}

// fromProductDomain converts a domain Product to a GORM ProductModel without relations.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:          data.ID,
		Name:        data.Name,
		Slug:        data.Slug,
		Description: data.Description,
		CategoryID:  data.CategoryID,
		VendorID:    data.VendorID,
		BasePrice:   data.BasePrice,
		Status:      data.Status.String(),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toVariantDomain(data *model.ProductVariantModel) *entity.ProductVariant {
	if data == nil {
		return nil
	}

	attributes := make(map[string]string, len(data.Attributes))
	for key, value := range data.Attributes {
		if s, ok := value.(string); ok {
			attributes[key] = s
		}
	}

	return &entity.ProductVariant{
		ID:         data.ID,
		ProductID:  data.ProductID,
		SKU:        data.SKU,
		Price:      data.Price,
		Stock:      data.Stock,
		Attributes: attributes,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromVariantDomain(data *entity.ProductVariant) *model.ProductVariantModel {
	if data == nil {
		return nil
	}

	attributes := make(datatypes.JSONMap, len(data.Attributes))
	for key, value := range data.Attributes {
		attributes[key] = value
	}

	return &model.ProductVariantModel{
		ID:         data.ID,
		ProductID:  data.ProductID,
		SKU:        data.SKU,
		Price:      data.Price,
		Stock:      data.Stock,
		Attributes: attributes,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func toImageDomain(data *model.ProductImageModel) *entity.ProductImage {
	if data == nil {
		return nil
	}

	return &entity.ProductImage{
		ID:        data.ID,
		ProductID: data.ProductID,
		URL:       data.URL,
		Alt:       data.Alt,
		IsMain:    data.IsMain,
		Order:     data.SortOrder,
	}
}

func fromImageDomain(data *entity.ProductImage) *model.ProductImageModel {
	if data == nil {
		return nil
	}

	return &model.ProductImageModel{
		ID:        data.ID,
		ProductID: data.ProductID,
		URL:       data.URL,
		Alt:       data.Alt,
		IsMain:    data.IsMain,
		SortOrder: data.Order,
	}
}
