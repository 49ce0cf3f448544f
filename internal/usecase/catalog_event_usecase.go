package usecase

import (
	"context"

	"catalog/internal/domain/service"
)

// CatalogEventUsecase reacts to catalog events delivered by the message queue
type CatalogEventUsecase interface {
	// HandleCatalogEvent evicts the cached state the event made stale.
	// Unknown event types are acknowledged and ignored.
	HandleCatalogEvent(ctx context.Context, event *service.CatalogEvent) error
}
