// Package service declares ports to infrastructure used by the use cases.
package service

import (
	"context"
	"time"
)

// Catalog event types.
const (
	EventProductCreated = "product.created"
	EventStockAdjusted  = "stock.adjusted"
)

// CatalogEvent is a notification about a committed catalog mutation.
type CatalogEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Type       string    `json:"type"`
	ProductID  string    `json:"product_id"`
	Slug       string    `json:"slug"`
	VendorID   string    `json:"vendor_id,omitempty"`
	VariantID  string    `json:"variant_id,omitempty"`
	Delta      int       `json:"delta,omitempty"`
	Stock      int       `json:"stock,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCatalogEvent publishes a catalog event for downstream consumers
	PublishCatalogEvent(ctx context.Context, event *CatalogEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
