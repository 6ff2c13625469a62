package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/playtube-app/playtube/internal/domain/contract"
	"github.com/playtube-app/playtube/internal/domain/entity"
	usecasecontract "github.com/playtube-app/playtube/internal/usecase/contract"
)

// ErrSelfSubscription is returned when a user tries to subscribe to their own
// channel. Rejected before any storage write.
var ErrSelfSubscription = errors.New("cannot subscribe to your own channel")

// SubscriptionUsecase is the two-state specialization of the toggle engine:
// {absent, subscribed} with no polarity dimension.
type SubscriptionUsecase struct {
	subs   contract.ISubscriptionRepository
	users  contract.IUserRepository
	ids    contract.IUUIDGenerator
	logger usecasecontract.IAppLogger
}

// NewSubscriptionUsecase creates and returns a new SubscriptionUsecase
// instance.
func NewSubscriptionUsecase(subs contract.ISubscriptionRepository, users contract.IUserRepository, ids contract.IUUIDGenerator, logger usecasecontract.IAppLogger) *SubscriptionUsecase {
	return &SubscriptionUsecase{subs: subs, users: users, ids: ids, logger: logger}
}

var _ usecasecontract.ISubscriptionUseCase = (*SubscriptionUsecase)(nil)

// ToggleSubscription subscribes when no record exists and unsubscribes when
// one does. Conflicts from concurrent toggles on the same pair are re-applied
// once against fresh state.
func (u *SubscriptionUsecase) ToggleSubscription(ctx context.Context, subscriberID, channelID string) (*entity.SubscriptionOutcome, error) {
	if channelID == "" {
		return nil, ErrInvalidTarget
	}
	if subscriberID == channelID {
		return nil, ErrSelfSubscription
	}
	if _, err := u.users.GetByID(ctx, channelID); err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return nil, ErrTargetNotFound
		}
		return nil, fmt.Errorf("failed to resolve channel: %w", err)
	}

	outcome, err := u.toggleOnce(ctx, subscriberID, channelID)
	if errors.Is(err, contract.ErrSubscriptionConflict) {
		u.logger.Warnf("subscription toggle conflict for %s on channel %s, retrying", subscriberID, channelID)
		outcome, err = u.toggleOnce(ctx, subscriberID, channelID)
		if errors.Is(err, contract.ErrSubscriptionConflict) {
			return nil, ErrToggleContention
		}
	}
	return outcome, err
}

func (u *SubscriptionUsecase) toggleOnce(ctx context.Context, subscriberID, channelID string) (*entity.SubscriptionOutcome, error) {
	existing, err := u.subs.GetBySubscriberAndChannel(ctx, subscriberID, channelID)
	if err != nil && !errors.Is(err, contract.ErrSubscriptionNotFound) {
		return nil, fmt.Errorf("failed to read current subscription: %w", err)
	}

	if existing == nil {
		created := &entity.Subscription{
			ID:           u.ids.NewUUID(),
			SubscriberID: subscriberID,
			ChannelID:    channelID,
		}
		if err := u.subs.Create(ctx, created); err != nil {
			if errors.Is(err, contract.ErrSubscriptionConflict) {
				return nil, err
			}
			return nil, fmt.Errorf("failed to create subscription: %w", err)
		}
		return &entity.SubscriptionOutcome{Subscribed: true, Subscription: created}, nil
	}

	if err := u.subs.Delete(ctx, existing.ID); err != nil {
		if errors.Is(err, contract.ErrSubscriptionConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to remove subscription: %w", err)
	}
	return &entity.SubscriptionOutcome{Subscribed: false}, nil
}

// SubscribersOf lists a channel's subscribers. requesterID may be empty for
// anonymous calls; it only affects the is_subscribed_back flag.
func (u *SubscriptionUsecase) SubscribersOf(ctx context.Context, channelID, requesterID string) ([]entity.SubscriberEntry, error) {
	if channelID == "" {
		return nil, ErrInvalidTarget
	}
	entries, err := u.subs.SubscribersOf(ctx, channelID, requesterID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribers of channel %s: %w", channelID, err)
	}
	if entries == nil {
		entries = []entity.SubscriberEntry{}
	}
	return entries, nil
}

// SubscriptionsOf lists the channels one user subscribes to.
func (u *SubscriptionUsecase) SubscriptionsOf(ctx context.Context, subscriberID string) ([]entity.ChannelSummary, error) {
	if subscriberID == "" {
		return nil, ErrInvalidTarget
	}
	channels, err := u.subs.ChannelsOf(ctx, subscriberID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions of %s: %w", subscriberID, err)
	}
	if channels == nil {
		channels = []entity.ChannelSummary{}
	}
	return channels, nil
}

// SubscriberCount counts a channel's subscribers.
func (u *SubscriptionUsecase) SubscriberCount(ctx context.Context, channelID string) (int64, error) {
	count, err := u.subs.CountSubscribers(ctx, channelID)
	if err != nil {
		return 0, fmt.Errorf("failed to count subscribers of channel %s: %w", channelID, err)
	}
	return count, nil
}
