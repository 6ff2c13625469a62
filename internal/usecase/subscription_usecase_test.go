package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/playtube-app/playtube/internal/domain/contract"
	"github.com/playtube-app/playtube/internal/domain/entity"
	"github.com/playtube-app/playtube/internal/usecase"
)

// fakeSubscriptionRepo is an in-memory ISubscriptionRepository with the same
// conflict countdown knob as the reaction fake.
type fakeSubscriptionRepo struct {
	byPair        map[string]*entity.Subscription
	ConflictsLeft int
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{byPair: make(map[string]*entity.Subscription)}
}

func pairKey(subscriberID, channelID string) string {
	return subscriberID + "|" + channelID
}

func (f *fakeSubscriptionRepo) conflict() bool {
	if f.ConflictsLeft > 0 {
		f.ConflictsLeft--
		return true
	}
	return false
}

func (f *fakeSubscriptionRepo) GetBySubscriberAndChannel(_ context.Context, subscriberID, channelID string) (*entity.Subscription, error) {
	if s, ok := f.byPair[pairKey(subscriberID, channelID)]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, contract.ErrSubscriptionNotFound
}

func (f *fakeSubscriptionRepo) Create(_ context.Context, sub *entity.Subscription) error {
	if f.conflict() {
		return contract.ErrSubscriptionConflict
	}
	key := pairKey(sub.SubscriberID, sub.ChannelID)
	if _, ok := f.byPair[key]; ok {
		return contract.ErrSubscriptionConflict
	}
	cp := *sub
	f.byPair[key] = &cp
	return nil
}

func (f *fakeSubscriptionRepo) Delete(_ context.Context, subscriptionID string) error {
	if f.conflict() {
		return contract.ErrSubscriptionConflict
	}
	for key, s := range f.byPair {
		if s.ID == subscriptionID {
			delete(f.byPair, key)
			return nil
		}
	}
	return contract.ErrSubscriptionConflict
}

func (f *fakeSubscriptionRepo) CountSubscribers(_ context.Context, channelID string) (int64, error) {
	var n int64
	for _, s := range f.byPair {
		if s.ChannelID == channelID {
			n++
		}
	}
	return n, nil
}

func (f *fakeSubscriptionRepo) SubscribersOf(_ context.Context, channelID, requesterID string) ([]entity.SubscriberEntry, error) {
	var entries []entity.SubscriberEntry
	for _, s := range f.byPair {
		if s.ChannelID != channelID {
			continue
		}
		_, back := f.byPair[pairKey(requesterID, s.SubscriberID)]
		entries = append(entries, entity.SubscriberEntry{
			Subscriber:       entity.OwnerSummary{ID: s.SubscriberID},
			IsSubscribedBack: back,
		})
	}
	return entries, nil
}

func (f *fakeSubscriptionRepo) ChannelsOf(_ context.Context, subscriberID string) ([]entity.ChannelSummary, error) {
	var channels []entity.ChannelSummary
	for _, s := range f.byPair {
		if s.SubscriberID == subscriberID {
			channels = append(channels, entity.ChannelSummary{ID: s.ChannelID})
		}
	}
	return channels, nil
}

// fakeUserRepo resolves a fixed set of user ids.
type fakeUserRepo struct{ ids map[string]bool }

func (f *fakeUserRepo) Create(_ context.Context, _ *entity.User) error { return nil }
func (f *fakeUserRepo) GetByID(_ context.Context, userID string) (*entity.User, error) {
	if f.ids[userID] {
		return &entity.User{ID: userID, CreatedAt: time.Now()}, nil
	}
	return nil, contract.ErrUserNotFound
}
func (f *fakeUserRepo) GetByUsernameOrEmail(_ context.Context, _, _ string) (*entity.User, error) {
	return nil, contract.ErrUserNotFound
}
func (f *fakeUserRepo) UpdateRefreshToken(_ context.Context, _, _ string) error { return nil }

func newSubscriptionFixture() (*usecase.SubscriptionUsecase, *fakeSubscriptionRepo) {
	subs := newFakeSubscriptionRepo()
	users := &fakeUserRepo{ids: map[string]bool{"channel-1": true, "user-1": true}}
	uc := usecase.NewSubscriptionUsecase(subs, users, &seqIDs{}, nopLogger{})
	return uc, subs
}

func TestToggleSubscription_SubscribesAndUnsubscribes(t *testing.T) {
	uc, subs := newSubscriptionFixture()
	ctx := context.Background()

	first, err := uc.ToggleSubscription(ctx, "user-1", "channel-1")
	assert.NoError(t, err)
	assert.True(t, first.Subscribed)
	assert.NotNil(t, first.Subscription)
	assert.Len(t, subs.byPair, 1)

	second, err := uc.ToggleSubscription(ctx, "user-1", "channel-1")
	assert.NoError(t, err)
	assert.False(t, second.Subscribed)
	assert.Nil(t, second.Subscription)
	assert.Empty(t, subs.byPair)
}

func TestToggleSubscription_SelfSubscriptionRejected(t *testing.T) {
	uc, subs := newSubscriptionFixture()

	_, err := uc.ToggleSubscription(context.Background(), "channel-1", "channel-1")
	assert.ErrorIs(t, err, usecase.ErrSelfSubscription)
	assert.Empty(t, subs.byPair)
}

func TestToggleSubscription_UnknownChannel(t *testing.T) {
	uc, _ := newSubscriptionFixture()

	_, err := uc.ToggleSubscription(context.Background(), "user-1", "ghost")
	assert.ErrorIs(t, err, usecase.ErrTargetNotFound)
}

func TestToggleSubscription_RetriesOnceAfterConflict(t *testing.T) {
	uc, subs := newSubscriptionFixture()
	subs.ConflictsLeft = 1

	outcome, err := uc.ToggleSubscription(context.Background(), "user-1", "channel-1")
	assert.NoError(t, err)
	assert.True(t, outcome.Subscribed)
}

func TestToggleSubscription_ContentionAfterSecondConflict(t *testing.T) {
	uc, subs := newSubscriptionFixture()
	subs.ConflictsLeft = 2

	_, err := uc.ToggleSubscription(context.Background(), "user-1", "channel-1")
	assert.ErrorIs(t, err, usecase.ErrToggleContention)
}

func TestSubscribersOf_EmptyChannelReturnsEmptySlice(t *testing.T) {
	uc, _ := newSubscriptionFixture()

	entries, err := uc.SubscribersOf(context.Background(), "channel-1", "")
	assert.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestSubscribersOf_ReportsSubscribedBack(t *testing.T) {
	uc, _ := newSubscriptionFixture()
	ctx := context.Background()

	_, err := uc.ToggleSubscription(ctx, "user-1", "channel-1")
	assert.NoError(t, err)
	_, err = uc.ToggleSubscription(ctx, "channel-1", "user-1")
	assert.NoError(t, err)

	entries, err := uc.SubscribersOf(ctx, "channel-1", "channel-1")
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "user-1", entries[0].Subscriber.ID)
	assert.True(t, entries[0].IsSubscribedBack)
}
