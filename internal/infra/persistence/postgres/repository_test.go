package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"catalog/internal/domain/entity"
	"catalog/internal/domain/repository"
	"catalog/internal/infra/persistence/memdb"
	"catalog/internal/infra/persistence/postgres"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type repoFixtures struct {
	db           *gorm.DB
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	vendorRepo   repository.VendorRepository
	txManager    repository.TransactionManager
}

func createTestRepositories(t *testing.T) repoFixtures {
	t.Helper()

	db, err := memdb.Open(t.Name())
	require.NoError(t, err)
	t.Cleanup(func() { _ = memdb.Close(db) })

	return repoFixtures{
		db:           db,
		categoryRepo: postgres.NewCategoryRepository(db),
		productRepo:  postgres.NewProductRepository(db),
		vendorRepo:   postgres.NewVendorRepository(db),
		txManager:    postgres.NewTransactionManager(db),
	}
}

func (f repoFixtures) mustCategory(t *testing.T, slug string, parentID *uuid.UUID) *entity.Category {
	t.Helper()

	category := &entity.Category{Name: slug, Slug: slug, ParentID: parentID}
	require.NoError(t, f.categoryRepo.CreateCategory(context.Background(), category))

	return category
}

func (f repoFixtures) mustVendor(t *testing.T) *entity.Vendor {
	t.Helper()

	vendor := &entity.Vendor{UserID: uuid.New(), StoreName: "store", Status: entity.VendorStatusApproved}
	require.NoError(t, f.vendorRepo.CreateVendor(context.Background(), vendor))

	return vendor
}

func (f repoFixtures) mustProduct(t *testing.T, slug string, categoryID, vendorID uuid.UUID, status entity.ProductStatus, prices ...float64) *entity.Product {
	t.Helper()
	ctx := context.Background()

	product := &entity.Product{
		Name:       slug,
		Slug:       slug,
		CategoryID: categoryID,
		VendorID:   vendorID,
		Status:     status,
	}
	require.NoError(t, f.productRepo.CreateProduct(ctx, product))

	variants := make([]*entity.ProductVariant, 0, len(prices))
	for i, price := range prices {
		variants = append(variants, &entity.ProductVariant{
			ProductID:  product.ID,
			SKU:        slug + "-" + string(rune('a'+i)),
			Price:      price,
			Stock:      10,
			Attributes: map[string]string{"size": "M"},
		})
	}
	require.NoError(t, f.productRepo.CreateVariants(ctx, variants))
	product.Variants = variants

	return product
}

func TestCategoryRepository_CreateAndFind(t *testing.T) {
	f := createTestRepositories(t)
	ctx := context.Background()

	root := f.mustCategory(t, "electronics", nil)
	child := f.mustCategory(t, "phones", &root.ID)

	assert.NotEqual(t, uuid.Nil, root.ID)
	assert.False(t, root.CreatedAt.IsZero())

	found, err := f.categoryRepo.FindCategoryBySlug(ctx, "phones")
	require.NoError(t, err)
	assert.Equal(t, child.ID, found.ID)
	require.NotNil(t, found.ParentID)
	assert.Equal(t, root.ID, *found.ParentID)

	children, err := f.categoryRepo.FindChildren(ctx, root.ID)
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, child.ID, children[0].ID)

	_, err = f.categoryRepo.FindCategoryByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
}

func TestCategoryRepository_DuplicateSlug(t *testing.T) {
	f := createTestRepositories(t)

	f.mustCategory(t, "books", nil)

	err := f.categoryRepo.CreateCategory(context.Background(), &entity.Category{Name: "Books", Slug: "books"})
	assert.ErrorIs(t, err, repository.ErrDuplicateCategorySlug)
}

func TestCategoryRepository_MissingParent(t *testing.T) {
	f := createTestRepositories(t)
	missing := uuid.New()

	err := f.categoryRepo.CreateCategory(context.Background(), &entity.Category{Name: "x", Slug: "x", ParentID: &missing})
	assert.ErrorIs(t, err, repository.ErrInvalidCategoryParent)
}

func TestCategoryRepository_FindAllOrderedByName(t *testing.T) {
	f := createTestRepositories(t)

	f.mustCategory(t, "toys", nil)
	f.mustCategory(t, "art", nil)
	f.mustCategory(t, "music", nil)

	categories, err := f.categoryRepo.FindAllCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "art", categories[0].Slug)
	assert.Equal(t, "music", categories[1].Slug)
	assert.Equal(t, "toys", categories[2].Slug)
}

func TestCategoryRepository_UpdateAndDetach(t *testing.T) {
	f := createTestRepositories(t)
	ctx := context.Background()

	root := f.mustCategory(t, "garden", nil)
	child := f.mustCategory(t, "tools", &root.ID)

	child.Name = "Garden tools"
	child.ParentID = nil
	require.NoError(t, f.categoryRepo.UpdateCategory(ctx, child))

	found, err := f.categoryRepo.FindCategoryByID(ctx, child.ID)
	require.NoError(t, err)
	assert.Equal(t, "Garden tools", found.Name)
	assert.Nil(t, found.ParentID)

	err = f.categoryRepo.UpdateCategory(ctx, &entity.Category{ID: uuid.New(), Name: "n", Slug: "n"})
	assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
}

func TestCategoryRepository_DeleteCascadesToSubtree(t *testing.T) {
	f := createTestRepositories(t)
	ctx := context.Background()

	a := f.mustCategory(t, "a", nil)
	b := f.mustCategory(t, "b", &a.ID)
	c := f.mustCategory(t, "c", &b.ID)

	require.NoError(t, f.categoryRepo.DeleteCategory(ctx, a.ID))

	for _, id := range []uuid.UUID{a.ID, b.ID, c.ID} {
		_, err := f.categoryRepo.FindCategoryByID(ctx, id)
		assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
	}

	assert.ErrorIs(t, f.categoryRepo.DeleteCategory(ctx, a.ID), repository.ErrCategoryNotFound)
}

func TestCategoryRepository_DeleteBlockedByDescendantProduct(t *testing.T) {
	f := createTestRepositories(t)
	ctx := context.Background()

	root := f.mustCategory(t, "home", nil)
	leaf := f.mustCategory(t, "kitchen", &root.ID)
	vendor := f.mustVendor(t)
	f.mustProduct(t, "kettle", leaf.ID, vendor.ID, entity.ProductStatusPublished, 25)

	count, err := f.categoryRepo.CountProductsByCategory(ctx, root.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	err = f.categoryRepo.DeleteCategory(ctx, root.ID)
	assert.ErrorIs(t, err, repository.ErrCategoryInUse)

	_, err = f.categoryRepo.FindCategoryByID(ctx, leaf.ID)
	assert.NoError(t, err)
}

func TestProductRepository_FindProductBySlug_FullProjection(t *testing.T) {
	f := createTestRepositories(t)
	ctx := context.Background()

	category := f.mustCategory(t, "shoes", nil)
	vendor := f.mustVendor(t)
	product := f.mustProduct(t, "runner", category.ID, vendor.ID, entity.ProductStatusDraft, 30, 10)

	require.NoError(t, f.productRepo.CreateImages(ctx, []*entity.ProductImage{
		{ProductID: product.ID, URL: "https://img/2.png", Order: 2},
		{ProductID: product.ID, URL: "https://img/1.png", Order: 1, IsMain: true},
	}))

	found, err := f.productRepo.FindProductBySlug(ctx, "runner")
	require.NoError(t, err)
	assert.Equal(t, entity.ProductStatusDraft, found.Status)
	assert.Len(t, found.Variants, 2)
	assert.Equal(t, map[string]string{"size": "M"}, found.Variants[0].Attributes)
	require.Len(t, found.Images, 2)
	assert.Equal(t, 1, found.Images[0].Order)
	assert.True(t, found.Images[0].IsMain)
	require.NotNil(t, found.Vendor)
	assert.Equal(t, vendor.ID, found.Vendor.ID)
	assert.Equal(t, "store", found.Vendor.StoreName)
	require.NotNil(t, found.Category)
	assert.Equal(t, "shoes", found.Category.Name)

	_, err = f.productRepo.FindProductBySlug(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestProductRepository_CreateProduct_Errors(t *testing.T) {
	f := createTestRepositories(t)
	ctx := context.Background()

	category := f.mustCategory(t, "bags", nil)
	vendor := f.mustVendor(t)
	f.mustProduct(t, "tote", category.ID, vendor.ID, entity.ProductStatusDraft, 5)

	err := f.productRepo.CreateProduct(ctx, &entity.Product{
		Name: "tote", Slug: "tote", CategoryID: category.ID, VendorID: vendor.ID, Status: entity.ProductStatusDraft,
	})
	assert.ErrorIs(t, err, repository.ErrDuplicateProductSlug)

	err = f.productRepo.CreateProduct(ctx, &entity.Product{
		Name: "x", Slug: "x", CategoryID: uuid.New(), VendorID: vendor.ID, Status: entity.ProductStatusDraft,
	})
	assert.ErrorIs(t, err, repository.ErrInvalidProductReference)

	exists, err := f.productRepo.ExistsBySlug(ctx, "tote")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestProductRepository_FindPublishedProducts_Filters(t *testing.T) {
	f := createTestRepositories(t)
	ctx := context.Background()

	clothing := f.mustCategory(t, "clothing", nil)
	toys := f.mustCategory(t, "toys", nil)
	vendor := f.mustVendor(t)

	f.mustProduct(t, "red-shirt", clothing.ID, vendor.ID, entity.ProductStatusPublished, 15, 40)
	f.mustProduct(t, "blue-shirt", clothing.ID, vendor.ID, entity.ProductStatusPublished, 60)
	f.mustProduct(t, "draft-shirt", clothing.ID, vendor.ID, entity.ProductStatusDraft, 20)
	f.mustProduct(t, "yo-yo", toys.ID, vendor.ID, entity.ProductStatusPublished, 3)

	tests := []struct {
		name  string
		query repository.ProductQuery
		want  []string
	}{
		{
			name:  "published only",
			query: repository.ProductQuery{Limit: 10},
			want:  []string{"red-shirt", "blue-shirt", "yo-yo"},
		},
		{
			name:  "case insensitive search",
			query: repository.ProductQuery{Search: "SHIRT", Limit: 10},
			want:  []string{"red-shirt", "blue-shirt"},
		},
		{
			name:  "category",
			query: repository.ProductQuery{CategoryID: &toys.ID, Limit: 10},
			want:  []string{"yo-yo"},
		},
		{
			name:  "price range matches a single variant",
			query: repository.ProductQuery{MinPrice: ptr(30.0), MaxPrice: ptr(50.0), Limit: 10},
			want:  []string{"red-shirt"},
		},
		{
			name:  "min price only",
			query: repository.ProductQuery{MinPrice: ptr(50.0), Limit: 10},
			want:  []string{"blue-shirt"},
		},
		{
			name:  "literal percent is not a wildcard",
			query: repository.ProductQuery{Search: "%", Limit: 10},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := f.productRepo.FindPublishedProducts(ctx, tt.query)
			require.NoError(t, err)

			slugs := make([]string, 0, len(products))
			for _, p := range products {
				slugs = append(slugs, p.Slug)
			}
			assert.ElementsMatch(t, tt.want, slugs)

			count, err := f.productRepo.CountPublishedProducts(ctx, tt.query)
			require.NoError(t, err)
			assert.Equal(t, int64(len(tt.want)), count)
		})
	}
}

func TestProductRepository_FindPublishedProducts_NewestFirstWithPaging(t *testing.T) {
	f := createTestRepositories(t)
	ctx := context.Background()

	category := f.mustCategory(t, "misc", nil)
	vendor := f.mustVendor(t)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, slug := range []string{"first", "second", "third"} {
		product := &entity.Product{
			Name: slug, Slug: slug, CategoryID: category.ID, VendorID: vendor.ID,
			Status: entity.ProductStatusPublished, CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, f.productRepo.CreateProduct(ctx, product))
		require.NoError(t, f.productRepo.CreateImages(ctx, []*entity.ProductImage{
			{ProductID: product.ID, URL: "main", IsMain: true},
			{ProductID: product.ID, URL: "other", Order: 1},
		}))
	}

	page, err := f.productRepo.FindPublishedProducts(ctx, repository.ProductQuery{Offset: 0, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "third", page[0].Slug)
	assert.Equal(t, "second", page[1].Slug)
	require.Len(t, page[0].Images, 1)
	assert.Equal(t, "main", page[0].Images[0].URL)
	require.NotNil(t, page[0].Vendor)
	assert.Equal(t, "store", page[0].Vendor.StoreName)

	page, err = f.productRepo.FindPublishedProducts(ctx, repository.ProductQuery{Offset: 2, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "first", page[0].Slug)
}

func TestProductRepository_IncrementVariantStock(t *testing.T) {
	f := createTestRepositories(t)
	ctx := context.Background()

	category := f.mustCategory(t, "food", nil)
	vendor := f.mustVendor(t)
	product := f.mustProduct(t, "apple", category.ID, vendor.ID, entity.ProductStatusPublished, 1)
	variantID := product.Variants[0].ID

	require.NoError(t, f.productRepo.IncrementVariantStock(ctx, variantID, -15))

	variant, err := f.productRepo.FindVariantByID(ctx, variantID)
	require.NoError(t, err)
	assert.Equal(t, -5, variant.Stock)

	err = f.productRepo.IncrementVariantStock(ctx, uuid.New(), 1)
	assert.ErrorIs(t, err, repository.ErrVariantNotFound)

	slug, err := f.productRepo.FindProductSlugByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "apple", slug)
}

func TestProductRepository_IncrementVariantStock_Concurrent(t *testing.T) {
	f := createTestRepositories(t)
	ctx := context.Background()

	category := f.mustCategory(t, "drinks", nil)
	vendor := f.mustVendor(t)
	product := f.mustProduct(t, "water", category.ID, vendor.ID, entity.ProductStatusPublished, 1)
	variantID := product.Variants[0].ID

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NoError(t, f.productRepo.IncrementVariantStock(ctx, variantID, 1))
		}()
		go func() {
			defer wg.Done()
			assert.NoError(t, f.productRepo.IncrementVariantStock(ctx, variantID, -1))
		}()
	}
	wg.Wait()

	variant, err := f.productRepo.FindVariantByID(ctx, variantID)
	require.NoError(t, err)
	assert.Equal(t, 10, variant.Stock)
}

func TestProductRepository_IncrementVariantStock_SingleArithmeticUpdate(t *testing.T) {
	f := createTestRepositories(t)
	ctx := context.Background()

	category := f.mustCategory(t, "tea", nil)
	vendor := f.mustVendor(t)
	product := f.mustProduct(t, "green-tea", category.ID, vendor.ID, entity.ProductStatusPublished, 4)
	variantID := product.Variants[0].ID

	var (
		queries    int
		updateSQLs []string
	)
	require.NoError(t, f.db.Callback().Query().Before("gorm:query").Register("test:count_queries", func(*gorm.DB) {
		queries++
	}))
	require.NoError(t, f.db.Callback().Update().After("gorm:update").Register("test:capture_updates", func(tx *gorm.DB) {
		updateSQLs = append(updateSQLs, tx.Statement.SQL.String())
	}))

	require.NoError(t, f.productRepo.IncrementVariantStock(ctx, variantID, 3))

	assert.Zero(t, queries)
	require.Len(t, updateSQLs, 1)
	assert.Contains(t, updateSQLs[0], "stock + ?")
}

func TestProductRepository_FindVariantVendorID(t *testing.T) {
	f := createTestRepositories(t)
	ctx := context.Background()

	category := f.mustCategory(t, "desk", nil)
	owner := f.mustVendor(t)
	other := f.mustVendor(t)
	product := f.mustProduct(t, "desk-lamp", category.ID, owner.ID, entity.ProductStatusPublished, 30)
	f.mustProduct(t, "desk-mat", category.ID, other.ID, entity.ProductStatusPublished, 12)

	vendorID, err := f.productRepo.FindVariantVendorID(ctx, product.Variants[0].ID)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, vendorID)

	_, err = f.productRepo.FindVariantVendorID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrVariantNotFound)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	f := createTestRepositories(t)
	ctx := context.Background()

	category := f.mustCategory(t, "garden", nil)
	vendor := f.mustVendor(t)
	errBoom := errors.New("boom")

	err := f.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		product := &entity.Product{
			Name: "hose", Slug: "hose", CategoryID: category.ID, VendorID: vendor.ID, Status: entity.ProductStatusDraft,
		}
		if err := factory.ProductRepo().CreateProduct(ctx, product); err != nil {
			return err
		}

		return errBoom
	})
	assert.ErrorIs(t, err, errBoom)

	exists, err := f.productRepo.ExistsBySlug(ctx, "hose")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestVendorRepository_Lifecycle(t *testing.T) {
	f := createTestRepositories(t)
	ctx := context.Background()
	userID := uuid.New()

	vendor := &entity.Vendor{UserID: userID, StoreName: "Acme", Status: entity.VendorStatusPending}
	require.NoError(t, f.vendorRepo.CreateVendor(ctx, vendor))

	err := f.vendorRepo.CreateVendor(ctx, &entity.Vendor{UserID: userID, StoreName: "Acme 2", Status: entity.VendorStatusPending})
	assert.ErrorIs(t, err, repository.ErrDuplicateVendor)

	pending, err := f.vendorRepo.FindVendorsByStatus(ctx, entity.VendorStatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	updated, err := f.vendorRepo.UpdateVendorStatus(ctx, vendor.ID, entity.VendorStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, entity.VendorStatusApproved, updated.Status)

	byUser, err := f.vendorRepo.FindVendorByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, vendor.ID, byUser.ID)

	_, err = f.vendorRepo.UpdateVendorStatus(ctx, uuid.New(), entity.VendorStatusRejected)
	assert.ErrorIs(t, err, repository.ErrVendorNotFound)
}

func ptr[T any](v T) *T {
	return &v
}
