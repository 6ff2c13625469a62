package usecasecontract

import (
	"context"

	"github.com/playtube-app/playtube/internal/domain/entity"
)

// ISubscriptionUseCase toggles and queries channel subscriptions.
type ISubscriptionUseCase interface {
	ToggleSubscription(ctx context.Context, subscriberID, channelID string) (*entity.SubscriptionOutcome, error)
	SubscribersOf(ctx context.Context, channelID, requesterID string) ([]entity.SubscriberEntry, error)
	SubscriptionsOf(ctx context.Context, subscriberID string) ([]entity.ChannelSummary, error)
	SubscriberCount(ctx context.Context, channelID string) (int64, error)
}
