package mocks

import (
	"context"

	"github.com/playtube-app/playtube/internal/domain/entity"
	usecasecontract "github.com/playtube-app/playtube/internal/usecase/contract"
)

// MockEngagementUsecase is a mock implementation of IEngagementUseCase and
// IEngagementQueryUseCase.
type MockEngagementUsecase struct {
	// Control mock behavior
	FailWith error

	// Return values
	MockOutcome entity.ReactionOutcome
	MockVideos  []entity.VideoSummary
	MockActors  []entity.OwnerSummary
	MockCount   int64

	// Captured arguments of the last ApplyReaction call
	LastActorID  string
	LastKind     entity.TargetKind
	LastTargetID string
	LastPolarity entity.Polarity
}

var _ usecasecontract.IEngagementUseCase = (*MockEngagementUsecase)(nil)
var _ usecasecontract.IEngagementQueryUseCase = (*MockEngagementUsecase)(nil)

func NewMockEngagementUsecase() *MockEngagementUsecase {
	return &MockEngagementUsecase{
		MockOutcome: entity.ReactionOutcome{
			State: entity.ReactionStateLiked,
			Reaction: &entity.Reaction{
				ID:       "mock-reaction-id",
				Polarity: entity.PolarityLike,
			},
		},
		MockVideos: []entity.VideoSummary{{ID: "mock-video-id", Title: "mock video"}},
		MockActors: []entity.OwnerSummary{{ID: "mock-user-id", Username: "testuser"}},
		MockCount:  7,
	}
}

func (m *MockEngagementUsecase) ApplyReaction(ctx context.Context, actorID string, kind entity.TargetKind, targetID string, polarity entity.Polarity) (*entity.ReactionOutcome, error) {
	m.LastActorID = actorID
	m.LastKind = kind
	m.LastTargetID = targetID
	m.LastPolarity = polarity
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	return &m.MockOutcome, nil
}

func (m *MockEngagementUsecase) VideosReactedBy(ctx context.Context, actorID string, polarity entity.Polarity) ([]entity.VideoSummary, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	return m.MockVideos, nil
}

func (m *MockEngagementUsecase) ReactionCount(ctx context.Context, kind entity.TargetKind, targetID string, polarity entity.Polarity) (int64, error) {
	if m.FailWith != nil {
		return 0, m.FailWith
	}
	return m.MockCount, nil
}

func (m *MockEngagementUsecase) ReactingActors(ctx context.Context, kind entity.TargetKind, targetID string, polarity entity.Polarity) ([]entity.OwnerSummary, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	return m.MockActors, nil
}

// MockSubscriptionUsecase is a mock implementation of ISubscriptionUseCase.
type MockSubscriptionUsecase struct {
	FailWith error

	MockOutcome  entity.SubscriptionOutcome
	MockEntries  []entity.SubscriberEntry
	MockChannels []entity.ChannelSummary
	MockCount    int64

	LastSubscriberID string
	LastChannelID    string
	LastRequesterID  string
}

var _ usecasecontract.ISubscriptionUseCase = (*MockSubscriptionUsecase)(nil)

func NewMockSubscriptionUsecase() *MockSubscriptionUsecase {
	return &MockSubscriptionUsecase{
		MockOutcome: entity.SubscriptionOutcome{
			Subscribed:   true,
			Subscription: &entity.Subscription{ID: "mock-subscription-id"},
		},
		MockEntries:  []entity.SubscriberEntry{{Subscriber: entity.OwnerSummary{ID: "mock-user-id"}}},
		MockChannels: []entity.ChannelSummary{{ID: "mock-channel-id", Username: "channel"}},
		MockCount:    3,
	}
}

func (m *MockSubscriptionUsecase) ToggleSubscription(ctx context.Context, subscriberID, channelID string) (*entity.SubscriptionOutcome, error) {
	m.LastSubscriberID = subscriberID
	m.LastChannelID = channelID
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	return &m.MockOutcome, nil
}

func (m *MockSubscriptionUsecase) SubscribersOf(ctx context.Context, channelID, requesterID string) ([]entity.SubscriberEntry, error) {
	m.LastChannelID = channelID
	m.LastRequesterID = requesterID
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	return m.MockEntries, nil
}

func (m *MockSubscriptionUsecase) SubscriptionsOf(ctx context.Context, subscriberID string) ([]entity.ChannelSummary, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	return m.MockChannels, nil
}

func (m *MockSubscriptionUsecase) SubscriberCount(ctx context.Context, channelID string) (int64, error) {
	if m.FailWith != nil {
		return 0, m.FailWith
	}
	return m.MockCount, nil
}
