// Package impl contains the implementation of the application's business logic.
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
)

const categoryRemovedMessage = "category and subcategories deleted"

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	categoryRepo    repository.CategoryRepository
	cache           service.Cache
	maxDepth        int
	treeTTL         time.Duration
	strictHierarchy bool
	logger          *slog.Logger
}

// CategoryServiceParams holds dependencies for CategoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	CategoryRepo repository.CategoryRepository
	Cache        service.Cache
	Config       *config.Config
	Logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	catalogCfg := config.DefaultCatalogConfig()
	if params.Config != nil && params.Config.Catalog != nil {
		catalogCfg = params.Config.Catalog
	}

	return &categoryService{
		categoryRepo:    params.CategoryRepo,
		cache:           params.Cache,
		maxDepth:        catalogCfg.MaxCategoryDepth,
		treeTTL:         catalogCfg.TreeCacheTTL,
		strictHierarchy: catalogCfg.IsStrictHierarchy(),
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCategory inserts a category. The parent, when given, must exist and sit
// above the maximum depth.
func (srv *categoryService) CreateCategory(ctx context.Context, input *usecase.CreateCategoryInput) (*entity.Category, error) {
	if err := validateCategoryFields(input.Name, input.Slug, input.Description); err != nil {
		return nil, err
	}

	if err := srv.ensureSlugAvailable(ctx, input.Slug, uuid.Nil); err != nil {
		return nil, err
	}

	if input.ParentID != nil {
		parent, err := srv.categoryRepo.FindCategoryByID(ctx, *input.ParentID)
		if err != nil {
			return nil, mapCategoryRepoError(err, "parent category not found")
		}

		depth, _, err := srv.walkAncestors(ctx, parent, uuid.Nil)
		if err != nil {
			return nil, err
		}
		if depth >= srv.maxDepth {
			return nil, domainerrors.ErrCategoryDepthExceeded.WithDetails("parent is already at the maximum depth")
		}
	}

	category := &entity.Category{
		Name:        strings.TrimSpace(input.Name),
		Slug:        input.Slug,
		Description: input.Description,
		ParentID:    input.ParentID,
	}

	if err := srv.categoryRepo.CreateCategory(ctx, category); err != nil {
		return nil, mapCategoryRepoError(err, "")
	}

	srv.invalidateTree(ctx)

	srv.log(ctx).Info("Category created",
		slog.String("category_id", category.ID.String()),
		slog.String("slug", category.Slug),
	)

	return category, nil
}

// GetTree returns the forest of root categories, reading through the tree cache.
func (srv *categoryService) GetTree(ctx context.Context) ([]*entity.CategoryNode, error) {
	var cached []*entity.CategoryNode
	if readCachedJSON(ctx, srv.cache, srv.log(ctx), categoryTreeCacheKey, &cached) {
		return cached, nil
	}

	categories, err := srv.categoryRepo.FindAllCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load categories")
	}

	tree := buildCategoryTree(categories)
	writeCachedJSON(ctx, srv.cache, srv.log(ctx), categoryTreeCacheKey, tree, srv.treeTTL)

	return tree, nil
}

// FindBySlug returns a category with its immediate children.
func (srv *categoryService) FindBySlug(ctx context.Context, slug string) (*entity.CategoryDetail, error) {
	category, err := srv.categoryRepo.FindCategoryBySlug(ctx, slug)
	if err != nil {
		return nil, mapCategoryRepoError(err, "")
	}

	children, err := srv.categoryRepo.FindChildren(ctx, category.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load child categories")
	}

	return &entity.CategoryDetail{Category: *category, Children: children}, nil
}

// FindByID returns a category with its immediate children and parent.
func (srv *categoryService) FindByID(ctx context.Context, id uuid.UUID) (*entity.CategoryDetail, error) {
	category, err := srv.categoryRepo.FindCategoryByID(ctx, id)
	if err != nil {
		return nil, mapCategoryRepoError(err, "")
	}

	children, err := srv.categoryRepo.FindChildren(ctx, category.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load child categories")
	}

	detail := &entity.CategoryDetail{Category: *category, Children: children}

	if category.ParentID != nil {
		parent, err := srv.categoryRepo.FindCategoryByID(ctx, *category.ParentID)
		switch {
		case err == nil:
			detail.Parent = parent
		case !errors.Is(err, repository.ErrCategoryNotFound):
			return nil, errors.Wrap(err, "failed to load parent category")
		}
	}

	return detail, nil
}

// UpdateCategory applies a partial update and returns the stored result.
func (srv *categoryService) UpdateCategory(ctx context.Context, id uuid.UUID, input *usecase.UpdateCategoryInput) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindCategoryByID(ctx, id)
	if err != nil {
		return nil, mapCategoryRepoError(err, "")
	}

	if input.Slug != nil && *input.Slug != category.Slug {
		if err := srv.ensureSlugAvailable(ctx, *input.Slug, id); err != nil {
			return nil, err
		}
		category.Slug = *input.Slug
	}

	if input.ParentID != nil && *input.ParentID == id {
		return nil, domainerrors.ErrCategorySelfParent
	}

	if input.Name != nil {
		category.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		category.Description = input.Description
	}

	if err := validateCategoryFields(category.Name, category.Slug, category.Description); err != nil {
		return nil, err
	}

	switch {
	case input.DetachParent:
		category.ParentID = nil
	case input.ParentID != nil && !sameParent(category.ParentID, *input.ParentID):
		if srv.strictHierarchy {
			if err := srv.checkReparent(ctx, id, *input.ParentID); err != nil {
				return nil, err
			}
		}
		parentID := *input.ParentID
		category.ParentID = &parentID
	}

	if err := srv.categoryRepo.UpdateCategory(ctx, category); err != nil {
		return nil, mapCategoryRepoError(err, "")
	}

	srv.invalidateTree(ctx)

	updated, err := srv.categoryRepo.FindCategoryByID(ctx, id)
	if err != nil {
		return nil, mapCategoryRepoError(err, "")
	}

	return updated, nil
}

// RemoveCategory deletes a category; the store cascades the delete to its subtree.
func (srv *categoryService) RemoveCategory(ctx context.Context, id uuid.UUID) (*usecase.RemoveCategoryOutput, error) {
	if _, err := srv.categoryRepo.FindCategoryByID(ctx, id); err != nil {
		return nil, mapCategoryRepoError(err, "")
	}

	count, err := srv.categoryRepo.CountProductsByCategory(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count category products")
	}
	if count > 0 {
		return nil, domainerrors.ErrCategoryHasProducts
	}

	if err := srv.categoryRepo.DeleteCategory(ctx, id); err != nil {
		return nil, mapCategoryRepoError(err, "")
	}

	srv.invalidateTree(ctx)

	srv.log(ctx).Info("Category removed", slog.String("category_id", id.String()))

	return &usecase.RemoveCategoryOutput{Message: categoryRemovedMessage}, nil
}

// checkReparent verifies that parentID exists, is not a descendant of id and has room
// below it for the whole subtree rooted at id.
func (srv *categoryService) checkReparent(ctx context.Context, id, parentID uuid.UUID) error {
	parent, err := srv.categoryRepo.FindCategoryByID(ctx, parentID)
	if err != nil {
		return mapCategoryRepoError(err, "parent category not found")
	}

	depth, cycle, err := srv.walkAncestors(ctx, parent, id)
	if err != nil {
		return err
	}
	if cycle {
		return domainerrors.ErrCategoryCycle
	}
	if depth >= srv.maxDepth {
		return domainerrors.ErrCategoryDepthExceeded.WithDetails("new parent is already at the maximum depth")
	}

	height, err := srv.subtreeHeight(ctx, id, srv.maxDepth-depth+1)
	if err != nil {
		return err
	}
	if depth+height > srv.maxDepth {
		return domainerrors.ErrCategoryDepthExceeded.WithDetails("moved subtree would exceed the maximum depth")
	}

	return nil
}

// subtreeHeight counts the levels of the subtree rooted at id, 1 for a leaf,
// one FindChildren call per node. It stops once limit levels are seen.
func (srv *categoryService) subtreeHeight(ctx context.Context, id uuid.UUID, limit int) (int, error) {
	height := 1
	level := []uuid.UUID{id}

	for height < limit {
		var next []uuid.UUID
		for _, nodeID := range level {
			children, err := srv.categoryRepo.FindChildren(ctx, nodeID)
			if err != nil {
				return 0, errors.Wrap(err, "failed to load subtree")
			}
			for _, child := range children {
				next = append(next, child.ID)
			}
		}

		if len(next) == 0 {
			break
		}

		height++
		level = next
	}

	return height, nil
}

// walkAncestors counts the levels from start up to its root, one lookup per step,
// with start itself at depth 1. A missing ancestor ends the walk. It stops early
// when the chain contains target or once the depth reaches the configured maximum,
// which also bounds the walk on corrupt cyclic data.
func (srv *categoryService) walkAncestors(ctx context.Context, start *entity.Category, target uuid.UUID) (int, bool, error) {
	depth := 1
	if start.ID == target {
		return depth, true, nil
	}

	current := start.ParentID
	for current != nil && depth < srv.maxDepth {
		if *current == target {
			return depth, true, nil
		}

		ancestor, err := srv.categoryRepo.FindCategoryByID(ctx, *current)
		if err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				break
			}

			return 0, false, errors.Wrap(err, "failed to walk category ancestors")
		}

		depth++
		current = ancestor.ParentID
	}

	return depth, false, nil
}

func (srv *categoryService) ensureSlugAvailable(ctx context.Context, slug string, selfID uuid.UUID) error {
	existing, err := srv.categoryRepo.FindCategoryBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to check category slug")
	}

	if existing.ID != selfID {
		return domainerrors.ErrSlugConflict.WithDetails("category slug already exists")
	}

	return nil
}

func (srv *categoryService) invalidateTree(ctx context.Context) {
	invalidateCache(ctx, srv.cache, srv.log(ctx), categoryTreeCacheKey)
}

// buildCategoryTree groups categories under their parents in a single pass over a
// parent index, keeping the input order among siblings. Only parentless categories
// become roots; rows whose parent is missing or that sit on a cycle are unreachable
// and left out.
func buildCategoryTree(categories []*entity.Category) []*entity.CategoryNode {
	nodes := make(map[uuid.UUID]*entity.CategoryNode, len(categories))
	for _, category := range categories {
		nodes[category.ID] = &entity.CategoryNode{
			Category: *category,
			Children: []*entity.CategoryNode{},
		}
	}

	roots := make([]*entity.CategoryNode, 0)
	for _, category := range categories {
		node := nodes[category.ID]
		if category.IsRoot() {
			roots = append(roots, node)

			continue
		}

		if parent, ok := nodes[*category.ParentID]; ok {
			parent.Children = append(parent.Children, node)
		}
	}

	return roots
}

func sameParent(current *uuid.UUID, next uuid.UUID) bool {
	return current != nil && *current == next
}

func validateCategoryFields(name, slug string, description *string) error {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > entity.MaxNameLength {
		return domainerrors.ErrValidationFailed.WithDetails("name must be 1 to 100 characters")
	}
	if !entity.IsValidSlug(slug) {
		return domainerrors.ErrValidationFailed.WithDetails("slug must be lowercase words separated by single hyphens")
	}
	if description != nil && utf8.RuneCountInString(*description) > entity.MaxDescriptionLength {
		return domainerrors.ErrValidationFailed.WithDetails("description must be at most 500 characters")
	}

	return nil
}

// mapCategoryRepoError translates repository sentinels into domain errors.
// parentDetails is used when a missing parent reference caused the failure.
func mapCategoryRepoError(err error, parentDetails string) error {
	switch {
	case errors.Is(err, repository.ErrCategoryNotFound):
		if parentDetails != "" {
			return domainerrors.ErrCategoryNotFound.WithDetails(parentDetails)
		}

		return domainerrors.ErrCategoryNotFound
	case errors.Is(err, repository.ErrInvalidCategoryParent):
		return domainerrors.ErrCategoryNotFound.WithDetails("parent category not found")
	case errors.Is(err, repository.ErrDuplicateCategorySlug):
		return domainerrors.ErrSlugConflict.WithDetails("category slug already exists")
	case errors.Is(err, repository.ErrCategoryInUse):
		return domainerrors.ErrCategoryHasProducts.WithDetails("a subcategory still has products")
	default:
		return errors.Wrap(err, "category store operation failed")
	}
}
