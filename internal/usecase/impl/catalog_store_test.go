package impl

import (
	"context"
	"sync"
	"testing"

	"catalog/config"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/infra/cache"
	logs "catalog/internal/infra/log"
	"catalog/internal/infra/persistence/memdb"
	"catalog/internal/infra/persistence/model"
	"catalog/internal/infra/persistence/postgres"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// storeFixtures wires the services to an in-memory SQLite store and a memory cache.
type storeFixtures struct {
	db         *gorm.DB
	cache      *cache.MemoryCache
	categories usecase.CategoryUsecase
	products   usecase.ProductUsecase
	vendors    usecase.VendorUsecase
}

func createStoreFixtures(t *testing.T, strict bool) storeFixtures {
	t.Helper()

	db, err := memdb.Open(t.Name())
	require.NoError(t, err)
	t.Cleanup(func() { _ = memdb.Close(db) })

	catalogCfg := config.DefaultCatalogConfig()
	catalogCfg.StrictHierarchy = &strict
	cfg := &config.Config{Catalog: catalogCfg}

	memCache := cache.NewMemoryCache()
	logger := logs.Discard()
	categoryRepo := postgres.NewCategoryRepository(db)
	productRepo := postgres.NewProductRepository(db)
	vendorRepo := postgres.NewVendorRepository(db)

	return storeFixtures{
		db:    db,
		cache: memCache,
		categories: NewCategoryService(CategoryServiceParams{
			CategoryRepo: categoryRepo,
			Cache:        memCache,
			Config:       cfg,
			Logger:       logger,
		}),
		products: NewProductService(ProductServiceParams{
			TxManager:   postgres.NewTransactionManager(db),
			ProductRepo: productRepo,
			Cache:       memCache,
			Config:      cfg,
			Logger:      logger,
		}),
		vendors: NewVendorService(VendorServiceParams{
			VendorRepo: vendorRepo,
			Logger:     logger,
		}),
	}
}

func (f storeFixtures) category(t *testing.T, slug string, parentID *uuid.UUID) *entity.Category {
	t.Helper()

	category, err := f.categories.CreateCategory(context.Background(), &usecase.CreateCategoryInput{
		Name:     slug,
		Slug:     slug,
		ParentID: parentID,
	})
	require.NoError(t, err)

	return category
}

func (f storeFixtures) approvedVendor(t *testing.T) *entity.Vendor {
	t.Helper()

	ctx := context.Background()
	vendor, err := f.vendors.Onboard(ctx, uuid.New(), "Acme")
	require.NoError(t, err)
	vendor, err = f.vendors.UpdateStatus(ctx, vendor.ID, entity.VendorStatusApproved)
	require.NoError(t, err)

	return vendor
}

func (f storeFixtures) product(t *testing.T, vendorID, categoryID uuid.UUID, slug string, stock int) *entity.Product {
	t.Helper()

	product, err := f.products.CreateProduct(context.Background(), vendorID, &usecase.CreateProductInput{
		Name:       slug,
		Slug:       slug,
		CategoryID: categoryID,
		Status:     entity.ProductStatusPublished,
		Variants:   []usecase.VariantInput{{SKU: slug + "-1", Price: 10, Stock: stock}},
	})
	require.NoError(t, err)

	return product
}

func (f storeFixtures) countRows(t *testing.T, value any) int64 {
	t.Helper()

	var count int64
	require.NoError(t, f.db.Model(value).Count(&count).Error)

	return count
}

func TestCatalogStore_DepthLimit(t *testing.T) {
	f := createStoreFixtures(t, true)
	ctx := context.Background()

	var parentID *uuid.UUID
	for _, slug := range []string{"l1", "l2", "l3", "l4", "l5"} {
		category := f.category(t, slug, parentID)
		parentID = &category.ID
	}

	_, err := f.categories.CreateCategory(ctx, &usecase.CreateCategoryInput{Name: "l6", Slug: "l6", ParentID: parentID})
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryDepthExceeded))
	assert.Equal(t, int64(5), f.countRows(t, &model.CategoryModel{}))
}

func TestCatalogStore_TreeIsNeverStale(t *testing.T) {
	f := createStoreFixtures(t, true)
	ctx := context.Background()

	tree, err := f.categories.GetTree(ctx)
	require.NoError(t, err)
	assert.Empty(t, tree)

	root := f.category(t, "root", nil)
	tree, err = f.categories.GetTree(ctx)
	require.NoError(t, err)
	require.Len(t, tree, 1)

	child := f.category(t, "child", &root.ID)
	tree, err = f.categories.GetTree(ctx)
	require.NoError(t, err)
	require.Len(t, tree, 1)
	require.Len(t, tree[0].Children, 1)
	assert.Equal(t, child.ID, tree[0].Children[0].ID)

	_, err = f.categories.UpdateCategory(ctx, child.ID, &usecase.UpdateCategoryInput{DetachParent: true})
	require.NoError(t, err)
	tree, err = f.categories.GetTree(ctx)
	require.NoError(t, err)
	assert.Len(t, tree, 2)

	_, err = f.categories.RemoveCategory(ctx, child.ID)
	require.NoError(t, err)
	tree, err = f.categories.GetTree(ctx)
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, root.ID, tree[0].ID)
}

func TestCatalogStore_TreeCountsEveryCategoryOnce(t *testing.T) {
	f := createStoreFixtures(t, true)

	a := f.category(t, "a", nil)
	b := f.category(t, "b", nil)
	a1 := f.category(t, "a-1", &a.ID)
	f.category(t, "a-1-x", &a1.ID)
	f.category(t, "a-2", &a.ID)
	f.category(t, "b-1", &b.ID)

	tree, err := f.categories.GetTree(context.Background())
	require.NoError(t, err)

	var count func(nodes []*entity.CategoryNode) int
	count = func(nodes []*entity.CategoryNode) int {
		total := 0
		for _, n := range nodes {
			total += 1 + count(n.Children)
		}

		return total
	}

	assert.Len(t, tree, 2)
	assert.Equal(t, 6, count(tree))
}

func TestCatalogStore_ReparentChain(t *testing.T) {
	f := createStoreFixtures(t, true)
	ctx := context.Background()

	a := f.category(t, "a", nil)
	b := f.category(t, "b", nil)
	c := f.category(t, "c", nil)

	_, err := f.categories.UpdateCategory(ctx, b.ID, &usecase.UpdateCategoryInput{ParentID: &a.ID})
	require.NoError(t, err)
	_, err = f.categories.UpdateCategory(ctx, c.ID, &usecase.UpdateCategoryInput{ParentID: &b.ID})
	require.NoError(t, err)

	tree, err := f.categories.GetTree(ctx)
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, a.ID, tree[0].ID)
	require.Len(t, tree[0].Children, 1)
	assert.Equal(t, b.ID, tree[0].Children[0].ID)
	require.Len(t, tree[0].Children[0].Children, 1)
	assert.Equal(t, c.ID, tree[0].Children[0].Children[0].ID)

	_, err = f.categories.UpdateCategory(ctx, c.ID, &usecase.UpdateCategoryInput{ParentID: &c.ID})
	assert.True(t, errors.Is(err, domainerrors.ErrCategorySelfParent))
}

func TestCatalogStore_ReparentCountsMovedSubtree(t *testing.T) {
	f := createStoreFixtures(t, true)
	ctx := context.Background()

	a := f.category(t, "a", nil)
	b := f.category(t, "b", &a.ID)
	c := f.category(t, "c", &b.ID)
	d := f.category(t, "d", &c.ID)

	x := f.category(t, "x", nil)
	y := f.category(t, "y", &x.ID)
	f.category(t, "z", &y.ID)

	// d sits at depth 4; x→y→z below it would put z at depth 7.
	_, err := f.categories.UpdateCategory(ctx, x.ID, &usecase.UpdateCategoryInput{ParentID: &d.ID})
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryDepthExceeded))

	_, err = f.categories.UpdateCategory(ctx, x.ID, &usecase.UpdateCategoryInput{ParentID: &c.ID})
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryDepthExceeded))

	stored, err := f.categories.FindByID(ctx, x.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.ParentID)

	// Under b the chain is a→b→x→y→z, exactly the maximum.
	moved, err := f.categories.UpdateCategory(ctx, x.ID, &usecase.UpdateCategoryInput{ParentID: &b.ID})
	require.NoError(t, err)
	require.NotNil(t, moved.ParentID)
	assert.Equal(t, b.ID, *moved.ParentID)
}

func TestCatalogStore_CycleHandlingByMode(t *testing.T) {
	tests := []struct {
		name    string
		strict  bool
		wantErr error
	}{
		{name: "strict rejects", strict: true, wantErr: domainerrors.ErrCategoryCycle},
		{name: "shallow accepts", strict: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createStoreFixtures(t, tt.strict)
			ctx := context.Background()

			a := f.category(t, "a", nil)
			b := f.category(t, "b", &a.ID)

			_, err := f.categories.UpdateCategory(ctx, a.ID, &usecase.UpdateCategoryInput{ParentID: &b.ID})
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))

				return
			}
			require.NoError(t, err)

			// Both nodes now sit on a cycle and are unreachable from any root.
			tree, err := f.categories.GetTree(ctx)
			require.NoError(t, err)
			assert.Empty(t, tree)
		})
	}
}

func TestCatalogStore_RemoveCategoryWithProducts(t *testing.T) {
	f := createStoreFixtures(t, true)
	ctx := context.Background()

	parent := f.category(t, "parent", nil)
	child := f.category(t, "child", &parent.ID)
	vendor := f.approvedVendor(t)
	f.product(t, vendor.ID, child.ID, "widget", 1)

	_, err := f.categories.RemoveCategory(ctx, child.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryHasProducts))

	_, err = f.categories.RemoveCategory(ctx, parent.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryHasProducts))

	assert.Equal(t, int64(2), f.countRows(t, &model.CategoryModel{}))
	assert.Equal(t, int64(1), f.countRows(t, &model.ProductModel{}))
}

func TestCatalogStore_CreateProductWithoutVariantsWritesNothing(t *testing.T) {
	f := createStoreFixtures(t, true)

	category := f.category(t, "shoes", nil)
	vendor := f.approvedVendor(t)

	_, err := f.products.CreateProduct(context.Background(), vendor.ID, &usecase.CreateProductInput{
		Name:       "Runner",
		Slug:       "runner",
		CategoryID: category.ID,
	})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Zero(t, f.countRows(t, &model.ProductModel{}))
	assert.Zero(t, f.countRows(t, &model.ProductVariantModel{}))
}

func TestCatalogStore_CreateProductRollsBackOnMissingCategory(t *testing.T) {
	f := createStoreFixtures(t, true)
	vendor := f.approvedVendor(t)

	_, err := f.products.CreateProduct(context.Background(), vendor.ID, &usecase.CreateProductInput{
		Name:       "Runner",
		Slug:       "runner",
		CategoryID: uuid.New(),
		Variants:   []usecase.VariantInput{{SKU: "r-1", Price: 10}},
	})
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
	assert.Zero(t, f.countRows(t, &model.ProductModel{}))
	assert.Zero(t, f.countRows(t, &model.ProductVariantModel{}))
}

func TestCatalogStore_BasePriceIsLowestVariant(t *testing.T) {
	f := createStoreFixtures(t, true)
	ctx := context.Background()

	category := f.category(t, "shirts", nil)
	vendor := f.approvedVendor(t)

	created, err := f.products.CreateProduct(ctx, vendor.ID, &usecase.CreateProductInput{
		Name:       "Tee",
		Slug:       "tee",
		CategoryID: category.ID,
		Status:     entity.ProductStatusPublished,
		Variants: []usecase.VariantInput{
			{SKU: "tee-l", Price: 30},
			{SKU: "tee-s", Price: 10},
			{SKU: "tee-m", Price: 20},
		},
		Images: []usecase.ImageInput{{URL: "https://img/tee-back.png"}, {URL: "https://img/tee.png", IsMain: true}},
	})
	require.NoError(t, err)
	assert.InDelta(t, 10.0, created.BasePrice, 0.0001)

	product, err := f.products.GetProduct(ctx, "tee")
	require.NoError(t, err)
	assert.InDelta(t, 10.0, product.BasePrice, 0.0001)
	assert.Len(t, product.Variants, 3)
	require.Len(t, product.Images, 2)
	assert.Equal(t, 0, product.Images[0].Order)
	assert.Equal(t, 1, product.Images[1].Order)
	require.NotNil(t, product.Vendor)
	assert.Equal(t, "Acme", product.Vendor.StoreName)
}

func TestCatalogStore_ListOnlyPublished(t *testing.T) {
	f := createStoreFixtures(t, true)
	ctx := context.Background()

	category := f.category(t, "toys", nil)
	vendor := f.approvedVendor(t)
	f.product(t, vendor.ID, category.ID, "yoyo", 1)

	_, err := f.products.CreateProduct(ctx, vendor.ID, &usecase.CreateProductInput{
		Name:       "Kite",
		Slug:       "kite",
		CategoryID: category.ID,
		Variants:   []usecase.VariantInput{{SKU: "kite-1", Price: 5}},
	})
	require.NoError(t, err)

	page, err := f.products.ListProducts(ctx, &usecase.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "yoyo", page.Data[0].Slug)
	assert.Equal(t, int64(1), page.Meta.Total)
	assert.Equal(t, 1, page.Meta.TotalPages)

	// Draft products stay reachable by slug.
	draft, err := f.products.GetProduct(ctx, "kite")
	require.NoError(t, err)
	assert.Equal(t, entity.ProductStatusDraft, draft.Status)
}

func TestCatalogStore_ConcurrentStockUpdates(t *testing.T) {
	f := createStoreFixtures(t, true)
	ctx := context.Background()

	category := f.category(t, "games", nil)
	vendor := f.approvedVendor(t)
	product := f.product(t, vendor.ID, category.ID, "chess", 10)
	variantID := product.Variants[0].ID

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		delta := 1
		if i%2 == 1 {
			delta = -1
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.products.UpdateStock(ctx, variantID, delta)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	variant, err := f.products.UpdateStock(ctx, variantID, 0)
	require.NoError(t, err)
	assert.Equal(t, 10, variant.Stock)
}

func TestCatalogStore_StockUpdateRefreshesCachedProduct(t *testing.T) {
	f := createStoreFixtures(t, true)
	ctx := context.Background()

	category := f.category(t, "books", nil)
	vendor := f.approvedVendor(t)
	product := f.product(t, vendor.ID, category.ID, "novel", 3)

	cached, err := f.products.GetProduct(ctx, "novel")
	require.NoError(t, err)
	assert.Equal(t, 3, cached.Variants[0].Stock)

	_, err = f.products.UpdateStock(ctx, product.Variants[0].ID, -5)
	require.NoError(t, err)

	fresh, err := f.products.GetProduct(ctx, "novel")
	require.NoError(t, err)
	assert.Equal(t, -2, fresh.Variants[0].Stock)
}

func TestCatalogStore_UpdateStockUnknownVariant(t *testing.T) {
	f := createStoreFixtures(t, true)

	_, err := f.products.UpdateStock(context.Background(), uuid.New(), 1)
	assert.True(t, errors.Is(err, domainerrors.ErrVariantNotFound))
}

func TestCatalogStore_VendorOnboardingOncePerUser(t *testing.T) {
	f := createStoreFixtures(t, true)
	ctx := context.Background()
	userID := uuid.New()

	vendor, err := f.vendors.Onboard(ctx, userID, "Corner Shop")
	require.NoError(t, err)
	assert.Equal(t, entity.VendorStatusPending, vendor.Status)

	_, err = f.vendors.Onboard(ctx, userID, "Second Shop")
	assert.True(t, errors.Is(err, domainerrors.ErrVendorAlreadyExists))

	_, err = f.vendors.RequireApproved(ctx, userID)
	assert.True(t, errors.Is(err, domainerrors.ErrVendorNotApproved))

	pending, err := f.vendors.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	_, err = f.vendors.UpdateStatus(ctx, vendor.ID, entity.VendorStatusApproved)
	require.NoError(t, err)

	approved, err := f.vendors.RequireApproved(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, vendor.ID, approved.ID)
}
