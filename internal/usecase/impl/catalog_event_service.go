package impl

import (
	"context"
	"log/slog"

	deliverycontext "catalog/internal/delivery/context"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/service"
	"catalog/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogEventService keeps per-instance caches coherent with mutations made on other instances.
type catalogEventService struct {
	cache  service.Cache
	logger *slog.Logger
}

// CatalogEventServiceParams holds dependencies for CatalogEventService, injected by Fx.
type CatalogEventServiceParams struct {
	fx.In

	Cache  service.Cache
	Logger *slog.Logger
}

// NewCatalogEventService is the constructor for catalogEventService.
func NewCatalogEventService(params CatalogEventServiceParams) usecase.CatalogEventUsecase {
	return &catalogEventService{
		cache:  params.Cache,
		logger: params.Logger,
	}
}

func (srv *catalogEventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HandleCatalogEvent drops the product detail entry named by the event.
func (srv *catalogEventService) HandleCatalogEvent(ctx context.Context, event *service.CatalogEvent) error {
	switch event.Type {
	case service.EventProductCreated, service.EventStockAdjusted:
	default:
		srv.log(ctx).Info("Ignoring catalog event", slog.String("event_type", event.Type))

		return nil
	}

	if event.Slug == "" {
		return domainerrors.ErrValidationFailed.WithDetails("event has no product slug")
	}

	// Unlike the request path, a failed eviction is returned so the queue redelivers.
	if err := srv.cache.Del(ctx, productCacheKey(event.Slug)); err != nil {
		return errors.Wrapf(err, "failed to evict product %s", event.Slug)
	}

	srv.log(ctx).Info("Evicted cached product",
		slog.String("event_type", event.Type),
		slog.String("slug", event.Slug),
		slog.String("product_id", event.ProductID),
	)

	return nil
}
