package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/playtube-app/playtube/internal/domain/entity"
	handler "github.com/playtube-app/playtube/internal/handler/http"
	mocks "github.com/playtube-app/playtube/internal/handler/http/mocks"
	"github.com/playtube-app/playtube/internal/infrastructure/metrics"
	"github.com/playtube-app/playtube/internal/usecase"
)

func setupSubscriptionRouter(h *handler.SubscriptionHandler, authed bool) *gin.Engine {
	r := gin.New()
	g := r.Group("/")
	if authed {
		g.Use(authAs("user-1"))
	}
	g.POST("/toggle/subscription/:id", h.ToggleSubscription)
	g.GET("/subscriptions/:id/subscribers", h.Subscribers)
	g.GET("/subscriptions/:id/channels", h.SubscribedChannels)
	g.GET("/subscriptions/:id/count", h.SubscriberCount)
	return r
}

func TestToggleSubscription_Subscribes(t *testing.T) {
	mockUsecase := mocks.NewMockSubscriptionUsecase()
	h := handler.NewSubscriptionHandler(mockUsecase)
	r := setupSubscriptionRouter(h, true)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/toggle/subscription/channel-1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Subscribed")
	assert.Equal(t, "user-1", mockUsecase.LastSubscriberID)
	assert.Equal(t, "channel-1", mockUsecase.LastChannelID)
}

func TestToggleSubscription_Unsubscribes(t *testing.T) {
	mockUsecase := mocks.NewMockSubscriptionUsecase()
	mockUsecase.MockOutcome = entity.SubscriptionOutcome{Subscribed: false}
	h := handler.NewSubscriptionHandler(mockUsecase)
	r := setupSubscriptionRouter(h, true)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/toggle/subscription/channel-1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Unsubscribed")
}

func TestToggleSubscription_SelfSubscription(t *testing.T) {
	mockUsecase := mocks.NewMockSubscriptionUsecase()
	mockUsecase.FailWith = usecase.ErrSelfSubscription
	h := handler.NewSubscriptionHandler(mockUsecase)
	r := setupSubscriptionRouter(h, true)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/toggle/subscription/user-1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestToggleSubscription_ContentionIncrementsMetric(t *testing.T) {
	mockUsecase := mocks.NewMockSubscriptionUsecase()
	mockUsecase.FailWith = usecase.ErrToggleContention
	h := handler.NewSubscriptionHandler(mockUsecase)
	r := setupSubscriptionRouter(h, true)

	before := testutil.ToFloat64(metrics.ToggleContentionTotal)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/toggle/subscription/channel-1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.ToggleContentionTotal))
}

func TestToggleSubscription_Unauthenticated(t *testing.T) {
	mockUsecase := mocks.NewMockSubscriptionUsecase()
	h := handler.NewSubscriptionHandler(mockUsecase)
	r := setupSubscriptionRouter(h, false)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/toggle/subscription/channel-1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSubscribers_PassesRequester(t *testing.T) {
	mockUsecase := mocks.NewMockSubscriptionUsecase()
	h := handler.NewSubscriptionHandler(mockUsecase)
	r := setupSubscriptionRouter(h, true)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/subscriptions/channel-1/subscribers", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", mockUsecase.LastRequesterID)
	assert.Contains(t, w.Body.String(), "mock-user-id")
}

func TestSubscribers_AnonymousRequesterIsEmpty(t *testing.T) {
	mockUsecase := mocks.NewMockSubscriptionUsecase()
	h := handler.NewSubscriptionHandler(mockUsecase)
	r := setupSubscriptionRouter(h, false)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/subscriptions/channel-1/subscribers", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "", mockUsecase.LastRequesterID)
}

func TestSubscribedChannels(t *testing.T) {
	mockUsecase := mocks.NewMockSubscriptionUsecase()
	h := handler.NewSubscriptionHandler(mockUsecase)
	r := setupSubscriptionRouter(h, false)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/subscriptions/user-1/channels", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mock-channel-id")
}

func TestSubscriberCount(t *testing.T) {
	mockUsecase := mocks.NewMockSubscriptionUsecase()
	h := handler.NewSubscriptionHandler(mockUsecase)
	r := setupSubscriptionRouter(h, false)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/subscriptions/channel-1/count", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":3`)
}
