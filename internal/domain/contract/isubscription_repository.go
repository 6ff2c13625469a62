package contract

import (
	"context"
	"errors"

	"github.com/playtube-app/playtube/internal/domain/entity"
)

// ErrSubscriptionNotFound is returned when no subscription exists for a lookup.
var ErrSubscriptionNotFound = errors.New("subscription not found")

// ErrSubscriptionConflict is returned when a write lost a race against a
// concurrent toggle on the same (subscriber_id, channel_id) pair.
var ErrSubscriptionConflict = errors.New("subscription modified concurrently")

// ISubscriptionRepository defines the interface for subscription persistence.
// Uniqueness of the (subscriber, channel) pair is enforced at the storage
// layer through a unique index.
type ISubscriptionRepository interface {
	// GetBySubscriberAndChannel returns the single subscription for the pair,
	// or ErrSubscriptionNotFound.
	GetBySubscriberAndChannel(ctx context.Context, subscriberID, channelID string) (*entity.Subscription, error)
	// Create inserts a new subscription. A concurrent duplicate surfaces as
	// ErrSubscriptionConflict.
	Create(ctx context.Context, sub *entity.Subscription) error
	// Delete removes a subscription by id. A miss surfaces as
	// ErrSubscriptionConflict.
	Delete(ctx context.Context, subscriptionID string) error
	// CountSubscribers counts the subscribers of one channel.
	CountSubscribers(ctx context.Context, channelID string) (int64, error)
	// SubscribersOf lists a channel's subscribers. When requesterID is
	// non-empty, each row reports whether the requester subscribes back to
	// that subscriber's channel.
	SubscribersOf(ctx context.Context, channelID, requesterID string) ([]entity.SubscriberEntry, error)
	// ChannelsOf lists the channels one user subscribes to.
	ChannelsOf(ctx context.Context, subscriberID string) ([]entity.ChannelSummary, error)
}
