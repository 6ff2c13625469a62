package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/playtube-app/playtube/internal/infrastructure/metrics"
	"github.com/playtube-app/playtube/internal/usecase"
	usecasecontract "github.com/playtube-app/playtube/internal/usecase/contract"
)

// SubscriptionHandler exposes the subscription toggle and its listings.
type SubscriptionHandler struct {
	subscriptions usecasecontract.ISubscriptionUseCase
}

func NewSubscriptionHandler(subscriptions usecasecontract.ISubscriptionUseCase) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptions: subscriptions}
}

// ToggleSubscription flips the caller's subscription to a channel.
func (h *SubscriptionHandler) ToggleSubscription(c *gin.Context) {
	userID, ok := AuthenticatedUser(c)
	if !ok {
		return
	}
	channelID := c.Param("id")

	outcome, err := h.subscriptions.ToggleSubscription(c.Request.Context(), userID, channelID)
	if err != nil {
		if errors.Is(err, usecase.ErrToggleContention) {
			metrics.ToggleContentionTotal.Inc()
		}
		HandleUsecaseError(c, err)
		return
	}

	state := "unsubscribed"
	message := "Unsubscribed"
	if outcome.Subscribed {
		state = "subscribed"
		message = "Subscribed"
	}
	metrics.ToggleOutcomesTotal.WithLabelValues("subscription", state).Inc()
	SuccessHandler(c, http.StatusOK, outcome, message)
}

// Subscribers lists a channel's subscribers. The listing is public; when the
// caller is authenticated each row reports whether the caller subscribes to
// that subscriber's channel in turn.
func (h *SubscriptionHandler) Subscribers(c *gin.Context) {
	subscribers, err := h.subscriptions.SubscribersOf(c.Request.Context(), c.Param("id"), RequesterID(c))
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, subscribers, "Subscribers fetched")
}

// SubscribedChannels lists the channels a user subscribes to.
func (h *SubscriptionHandler) SubscribedChannels(c *gin.Context) {
	channels, err := h.subscriptions.SubscriptionsOf(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, channels, "Subscribed channels fetched")
}

// SubscriberCount returns the number of subscribers a channel has.
func (h *SubscriptionHandler) SubscriberCount(c *gin.Context) {
	count, err := h.subscriptions.SubscriberCount(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"count": count}, "Subscriber count fetched")
}
