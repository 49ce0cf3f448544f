package impl

import (
	"context"
	"encoding/json"
	"testing"

	"catalog/config"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"
	logs "catalog/internal/infra/log"
	mockRepo "catalog/internal/mocks/repository"
	mockService "catalog/internal/mocks/service"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// categoryServiceFixtures holds all test dependencies for category service tests.
type categoryServiceFixtures struct {
	service      usecase.CategoryUsecase
	categoryRepo *mockRepo.MockCategoryRepository
	cache        *mockService.MockCache
}

func createTestCategoryService(t *testing.T) categoryServiceFixtures {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	cache := mockService.NewMockCache(t)

	srv := NewCategoryService(CategoryServiceParams{
		CategoryRepo: categoryRepo,
		Cache:        cache,
		Config:       &config.Config{Catalog: config.DefaultCatalogConfig()},
		Logger:       logs.Discard(),
	})

	return categoryServiceFixtures{
		service:      srv,
		categoryRepo: categoryRepo,
		cache:        cache,
	}
}

func newCategory(slug string, parentID *uuid.UUID) *entity.Category {
	return &entity.Category{ID: uuid.New(), Name: slug, Slug: slug, ParentID: parentID}
}

func TestCategoryService_CreateCategory_Root(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	fx.categoryRepo.EXPECT().FindCategoryBySlug(ctx, "electronics").Return(nil, repository.ErrCategoryNotFound)
	fx.categoryRepo.EXPECT().
		CreateCategory(ctx, mock.AnythingOfType("*entity.Category")).
		Run(func(_ context.Context, category *entity.Category) {
			category.ID = uuid.New()
		}).
		Return(nil)
	fx.cache.EXPECT().Del(ctx, categoryTreeCacheKey).Return(nil)

	category, err := fx.service.CreateCategory(ctx, &usecase.CreateCategoryInput{
		Name: "  Electronics ",
		Slug: "electronics",
	})
	require.NoError(t, err)
	assert.Equal(t, "Electronics", category.Name)
	assert.Nil(t, category.ParentID)
	assert.NotEqual(t, uuid.Nil, category.ID)
}

func TestCategoryService_CreateCategory_InvalidFields(t *testing.T) {
	longDescription := string(make([]byte, entity.MaxDescriptionLength+1))

	tests := []struct {
		name  string
		input *usecase.CreateCategoryInput
	}{
		{name: "empty name", input: &usecase.CreateCategoryInput{Name: " ", Slug: "a"}},
		{name: "uppercase slug", input: &usecase.CreateCategoryInput{Name: "A", Slug: "Bad"}},
		{name: "double hyphen", input: &usecase.CreateCategoryInput{Name: "A", Slug: "a--b"}},
		{name: "long description", input: &usecase.CreateCategoryInput{Name: "A", Slug: "a", Description: &longDescription}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCategoryService(t)

			_, err := fx.service.CreateCategory(context.Background(), tt.input)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestCategoryService_CreateCategory_SlugConflict(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	fx.categoryRepo.EXPECT().FindCategoryBySlug(ctx, "phones").Return(newCategory("phones", nil), nil)

	_, err := fx.service.CreateCategory(ctx, &usecase.CreateCategoryInput{Name: "Phones", Slug: "phones"})
	assert.True(t, errors.Is(err, domainerrors.ErrSlugConflict))
}

func TestCategoryService_CreateCategory_ParentNotFound(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	parentID := uuid.New()

	fx.categoryRepo.EXPECT().FindCategoryBySlug(ctx, "phones").Return(nil, repository.ErrCategoryNotFound)
	fx.categoryRepo.EXPECT().FindCategoryByID(ctx, parentID).Return(nil, repository.ErrCategoryNotFound)

	_, err := fx.service.CreateCategory(ctx, &usecase.CreateCategoryInput{Name: "Phones", Slug: "phones", ParentID: &parentID})
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
}

func TestCategoryService_CreateCategory_DepthExceeded(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	// l1 <- l2 <- l3 <- l4 <- l5; creating under l5 would be the sixth level.
	chain := make([]*entity.Category, 5)
	for i := range chain {
		var parentID *uuid.UUID
		if i > 0 {
			parentID = &chain[i-1].ID
		}
		chain[i] = newCategory("level", parentID)
	}
	for _, c := range chain {
		fx.categoryRepo.EXPECT().FindCategoryByID(ctx, c.ID).Return(c, nil).Maybe()
	}
	fx.categoryRepo.EXPECT().FindCategoryBySlug(ctx, "deep").Return(nil, repository.ErrCategoryNotFound)

	_, err := fx.service.CreateCategory(ctx, &usecase.CreateCategoryInput{Name: "Deep", Slug: "deep", ParentID: &chain[4].ID})
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryDepthExceeded))
	fx.categoryRepo.AssertNotCalled(t, "CreateCategory", mock.Anything, mock.Anything)
}

func TestCategoryService_GetTree_CacheHit(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	cached := []*entity.CategoryNode{{
		Category: entity.Category{ID: uuid.New(), Name: "Root", Slug: "root"},
		Children: []*entity.CategoryNode{},
	}}
	data, err := json.Marshal(cached)
	require.NoError(t, err)

	fx.cache.EXPECT().Get(ctx, categoryTreeCacheKey).Return(data, nil)

	tree, err := fx.service.GetTree(ctx)
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, "root", tree[0].Slug)
	fx.categoryRepo.AssertNotCalled(t, "FindAllCategories", mock.Anything)
}

func TestCategoryService_GetTree_CacheMissBuildsForest(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	a := newCategory("a", nil)
	b := newCategory("b", nil)
	a1 := newCategory("a1", &a.ID)
	a1x := newCategory("a1x", &a1.ID)
	orphanParent := uuid.New()
	orphan := newCategory("orphan", &orphanParent)

	fx.cache.EXPECT().Get(ctx, categoryTreeCacheKey).Return(nil, service.ErrCacheMiss)
	fx.categoryRepo.EXPECT().FindAllCategories(ctx).Return([]*entity.Category{a, a1, a1x, b, orphan}, nil)
	fx.cache.EXPECT().Set(ctx, categoryTreeCacheKey, mock.Anything, config.DefaultCatalogConfig().TreeCacheTTL).Return(nil)

	tree, err := fx.service.GetTree(ctx)
	require.NoError(t, err)
	require.Len(t, tree, 2)
	assert.Equal(t, "a", tree[0].Slug)
	assert.Equal(t, "b", tree[1].Slug)
	require.Len(t, tree[0].Children, 1)
	assert.Equal(t, "a1", tree[0].Children[0].Slug)
	require.Len(t, tree[0].Children[0].Children, 1)
	assert.NotNil(t, tree[1].Children)
	assert.Empty(t, tree[1].Children)
}

func TestCategoryService_GetTree_CacheErrorFallsBackToStore(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	fx.cache.EXPECT().Get(ctx, categoryTreeCacheKey).Return(nil, errors.New("connection refused"))
	fx.categoryRepo.EXPECT().FindAllCategories(ctx).Return([]*entity.Category{}, nil)
	fx.cache.EXPECT().Set(ctx, categoryTreeCacheKey, mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	tree, err := fx.service.GetTree(ctx)
	require.NoError(t, err)
	assert.NotNil(t, tree)
	assert.Empty(t, tree)
}

func TestCategoryService_FindByID_WithParentAndChildren(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	parent := newCategory("parent", nil)
	category := newCategory("child", &parent.ID)
	grandchild := newCategory("grandchild", &category.ID)

	fx.categoryRepo.EXPECT().FindCategoryByID(ctx, category.ID).Return(category, nil)
	fx.categoryRepo.EXPECT().FindChildren(ctx, category.ID).Return([]*entity.Category{grandchild}, nil)
	fx.categoryRepo.EXPECT().FindCategoryByID(ctx, parent.ID).Return(parent, nil)

	detail, err := fx.service.FindByID(ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, category.ID, detail.ID)
	require.NotNil(t, detail.Parent)
	assert.Equal(t, parent.ID, detail.Parent.ID)
	require.Len(t, detail.Children, 1)
}

func TestCategoryService_FindBySlug_NotFound(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	fx.categoryRepo.EXPECT().FindCategoryBySlug(ctx, "missing").Return(nil, repository.ErrCategoryNotFound)

	_, err := fx.service.FindBySlug(ctx, "missing")
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
}

func TestCategoryService_UpdateCategory_SelfParent(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	category := newCategory("self", nil)
	fx.categoryRepo.EXPECT().FindCategoryByID(ctx, category.ID).Return(category, nil)

	_, err := fx.service.UpdateCategory(ctx, category.ID, &usecase.UpdateCategoryInput{ParentID: &category.ID})
	assert.True(t, errors.Is(err, domainerrors.ErrCategorySelfParent))
}

func TestCategoryService_UpdateCategory_CycleRejected(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	a := newCategory("a", nil)
	b := newCategory("b", &a.ID)

	fx.categoryRepo.EXPECT().FindCategoryByID(ctx, a.ID).Return(a, nil)
	fx.categoryRepo.EXPECT().FindCategoryByID(ctx, b.ID).Return(b, nil)

	_, err := fx.service.UpdateCategory(ctx, a.ID, &usecase.UpdateCategoryInput{ParentID: &b.ID})
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryCycle))
	fx.categoryRepo.AssertNotCalled(t, "UpdateCategory", mock.Anything, mock.Anything)
}

func TestCategoryService_UpdateCategory_Detach(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	parentID := uuid.New()
	category := newCategory("leaf", &parentID)
	stored := *category
	stored.ParentID = nil

	fx.categoryRepo.EXPECT().FindCategoryByID(ctx, category.ID).Return(category, nil).Once()
	fx.categoryRepo.EXPECT().
		UpdateCategory(ctx, mock.MatchedBy(func(c *entity.Category) bool { return c.ParentID == nil })).
		Return(nil)
	fx.cache.EXPECT().Del(ctx, categoryTreeCacheKey).Return(nil)
	fx.categoryRepo.EXPECT().FindCategoryByID(ctx, category.ID).Return(&stored, nil).Once()

	updated, err := fx.service.UpdateCategory(ctx, category.ID, &usecase.UpdateCategoryInput{DetachParent: true})
	require.NoError(t, err)
	assert.Nil(t, updated.ParentID)
}

func TestCategoryService_RemoveCategory_HasProducts(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	category := newCategory("busy", nil)
	fx.categoryRepo.EXPECT().FindCategoryByID(ctx, category.ID).Return(category, nil)
	fx.categoryRepo.EXPECT().CountProductsByCategory(ctx, category.ID).Return(int64(2), nil)

	_, err := fx.service.RemoveCategory(ctx, category.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryHasProducts))
	fx.categoryRepo.AssertNotCalled(t, "DeleteCategory", mock.Anything, mock.Anything)
}

func TestCategoryService_RemoveCategory_DescendantInUse(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	category := newCategory("parent", nil)
	fx.categoryRepo.EXPECT().FindCategoryByID(ctx, category.ID).Return(category, nil)
	fx.categoryRepo.EXPECT().CountProductsByCategory(ctx, category.ID).Return(int64(0), nil)
	fx.categoryRepo.EXPECT().DeleteCategory(ctx, category.ID).Return(repository.ErrCategoryInUse)

	_, err := fx.service.RemoveCategory(ctx, category.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryHasProducts))
}

func TestCategoryService_RemoveCategory_Success(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	category := newCategory("empty", nil)
	fx.categoryRepo.EXPECT().FindCategoryByID(ctx, category.ID).Return(category, nil)
	fx.categoryRepo.EXPECT().CountProductsByCategory(ctx, category.ID).Return(int64(0), nil)
	fx.categoryRepo.EXPECT().DeleteCategory(ctx, category.ID).Return(nil)
	fx.cache.EXPECT().Del(ctx, categoryTreeCacheKey).Return(nil)

	out, err := fx.service.RemoveCategory(ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, categoryRemovedMessage, out.Message)
}

func TestBuildCategoryTree_SkipsCycles(t *testing.T) {
	a := newCategory("a", nil)
	b := newCategory("b", nil)
	a.ParentID = &b.ID
	b.ParentID = &a.ID
	root := newCategory("root", nil)

	tree := buildCategoryTree([]*entity.Category{a, b, root})
	require.Len(t, tree, 1)
	assert.Equal(t, "root", tree[0].Slug)
}
