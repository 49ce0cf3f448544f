package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"catalog/internal/domain/service"
	"catalog/internal/infra/cache"
	logs "catalog/internal/infra/log"
	mockService "catalog/internal/mocks/service"
	"catalog/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(c service.Cache) *PushHandler {
	logger := logs.Discard()

	return &PushHandler{
		validateToken: idtoken.Validate,
		logger:        logger,
		eventUC:       impl.NewCatalogEventService(impl.CatalogEventServiceParams{Cache: c, Logger: logger}),
	}
}

func pushBody(t *testing.T, event any) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "1"
	msg.Message.Attributes = map[string]string{"request_id": "req-1"}

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body, token string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()

	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_EvictsProduct(t *testing.T) {
	ctx := context.Background()
	memCache := cache.NewMemoryCache()
	require.NoError(t, memCache.Set(ctx, "product:lamp", []byte(`{}`), 0))

	rec := servePush(newTestPushHandler(memCache), pushBody(t, service.CatalogEvent{
		Type:      service.EventStockAdjusted,
		ProductID: "p1",
		Slug:      "lamp",
	}), "")
	assert.Equal(t, http.StatusOK, rec.Code)

	_, err := memCache.Get(ctx, "product:lamp")
	assert.True(t, errors.Is(err, service.ErrCacheMiss))
}

func TestPushHandler_MalformedMessages(t *testing.T) {
	h := newTestPushHandler(cache.NewMemoryCache())

	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "{"},
		{name: "not base64", body: `{"message":{"data":"%%%"}}`},
		{name: "not an event", body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("[1]")) + `"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := servePush(h, tt.body, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPushHandler_AcknowledgesEventWithoutSlug(t *testing.T) {
	rec := servePush(newTestPushHandler(cache.NewMemoryCache()),
		pushBody(t, service.CatalogEvent{Type: service.EventProductCreated}), "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_CacheFailureAsksForRedelivery(t *testing.T) {
	cacheMock := mockService.NewMockCache(t)
	cacheMock.EXPECT().Del(mock.Anything, "product:lamp").Return(errors.New("connection refused"))

	rec := servePush(newTestPushHandler(cacheMock),
		pushBody(t, service.CatalogEvent{Type: service.EventProductCreated, Slug: "lamp"}), "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_VerifiesPushToken(t *testing.T) {
	body := pushBody(t, service.CatalogEvent{Type: "noop"})

	tests := []struct {
		name     string
		token    string
		validate tokenValidator
		wantCode int
	}{
		{
			name:     "missing token",
			validate: func(context.Context, string, string) (*idtoken.Payload, error) { return &idtoken.Payload{}, nil },
			wantCode: http.StatusUnauthorized,
		},
		{
			name:  "rejected token",
			token: "bad",
			validate: func(context.Context, string, string) (*idtoken.Payload, error) {
				return nil, errors.New("expired")
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:  "wrong issuer",
			token: "tok",
			validate: func(context.Context, string, string) (*idtoken.Payload, error) {
				return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:  "google token",
			token: "tok",
			validate: func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
				if token != "tok" || audience != "http://example.com/push" {
					return nil, errors.New("unexpected audience")
				}

				return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
			},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestPushHandler(cache.NewMemoryCache())
			h.verifyPushAuth = true
			h.validateToken = tt.validate

			rec := servePush(h, body, tt.token)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
