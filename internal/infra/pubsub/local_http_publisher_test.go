package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"catalog/internal/domain/service"
	logs "catalog/internal/infra/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_PublishCatalogEvent(t *testing.T) {
	var received PushMessage
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, logs.Discard())
	event := &service.CatalogEvent{
		RequestID:  "req-1",
		Type:       service.EventStockAdjusted,
		ProductID:  "p-1",
		Slug:       "shirt",
		VariantID:  "v-1",
		Delta:      -2,
		Stock:      8,
		OccurredAt: time.Now().UTC(),
	}

	require.NoError(t, publisher.PublishCatalogEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, service.EventStockAdjusted, received.Message.Attributes["event_type"])
	assert.Equal(t, "v-1", received.Message.Attributes["variant_id"])

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.CatalogEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "shirt", decoded.Slug)
	assert.Equal(t, 8, decoded.Stock)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, logs.Discard())

	err := publisher.PublishCatalogEvent(context.Background(), &service.CatalogEvent{Type: service.EventProductCreated})
	assert.Error(t, err)
}
