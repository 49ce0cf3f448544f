package impl

import (
	"context"
	"testing"

	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/service"
	"catalog/internal/infra/cache"
	logs "catalog/internal/infra/log"
	mockService "catalog/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogEventService_EvictsProduct(t *testing.T) {
	ctx := context.Background()
	memCache := cache.NewMemoryCache()
	srv := NewCatalogEventService(CatalogEventServiceParams{Cache: memCache, Logger: logs.Discard()})

	for _, eventType := range []string{service.EventProductCreated, service.EventStockAdjusted} {
		require.NoError(t, memCache.Set(ctx, productCacheKey("lamp"), []byte(`{}`), 0))

		err := srv.HandleCatalogEvent(ctx, &service.CatalogEvent{Type: eventType, Slug: "lamp"})
		require.NoError(t, err)

		_, err = memCache.Get(ctx, productCacheKey("lamp"))
		assert.True(t, errors.Is(err, service.ErrCacheMiss), eventType)
	}
}

func TestCatalogEventService_IgnoresUnknownType(t *testing.T) {
	cacheMock := mockService.NewMockCache(t)
	srv := NewCatalogEventService(CatalogEventServiceParams{Cache: cacheMock, Logger: logs.Discard()})

	err := srv.HandleCatalogEvent(context.Background(), &service.CatalogEvent{Type: "category.renamed", Slug: "x"})
	assert.NoError(t, err)
}

func TestCatalogEventService_Errors(t *testing.T) {
	ctx := context.Background()
	cacheMock := mockService.NewMockCache(t)
	srv := NewCatalogEventService(CatalogEventServiceParams{Cache: cacheMock, Logger: logs.Discard()})

	err := srv.HandleCatalogEvent(ctx, &service.CatalogEvent{Type: service.EventStockAdjusted})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	cacheDown := errors.New("connection refused")
	cacheMock.EXPECT().Del(ctx, productCacheKey("lamp")).Return(cacheDown)

	err = srv.HandleCatalogEvent(ctx, &service.CatalogEvent{Type: service.EventStockAdjusted, Slug: "lamp"})
	assert.True(t, errors.Is(err, cacheDown))
}
