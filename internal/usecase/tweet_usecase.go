package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/playtube-app/playtube/internal/domain/contract"
	"github.com/playtube-app/playtube/internal/domain/entity"
	usecasecontract "github.com/playtube-app/playtube/internal/usecase/contract"
)

// TweetUsecase handles tweet CRUD.
type TweetUsecase struct {
	tweets contract.ITweetRepository
	ids    contract.IUUIDGenerator
}

// NewTweetUsecase creates and returns a new TweetUsecase instance.
func NewTweetUsecase(tweets contract.ITweetRepository, ids contract.IUUIDGenerator) *TweetUsecase {
	return &TweetUsecase{tweets: tweets, ids: ids}
}

var _ usecasecontract.ITweetUseCase = (*TweetUsecase)(nil)

// Create publishes a tweet under the owner's channel.
func (u *TweetUsecase) Create(ctx context.Context, ownerID, content string) (*entity.Tweet, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrMissingContent
	}
	tweet := &entity.Tweet{
		ID:      u.ids.NewUUID(),
		OwnerID: ownerID,
		Content: content,
	}
	if err := u.tweets.Create(ctx, tweet); err != nil {
		return nil, fmt.Errorf("failed to create tweet: %w", err)
	}
	return tweet, nil
}

// ListByOwner lists a user's tweets joined to the owner's display fields.
func (u *TweetUsecase) ListByOwner(ctx context.Context, ownerID string) ([]entity.TweetWithOwner, error) {
	if ownerID == "" {
		return nil, ErrInvalidTarget
	}
	tweets, err := u.tweets.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tweets of %s: %w", ownerID, err)
	}
	if tweets == nil {
		tweets = []entity.TweetWithOwner{}
	}
	return tweets, nil
}

// Update rewrites a tweet's content. Only the owner may update.
func (u *TweetUsecase) Update(ctx context.Context, tweetID, ownerID, content string) (*entity.Tweet, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrMissingContent
	}
	if err := u.checkOwner(ctx, tweetID, ownerID); err != nil {
		return nil, err
	}
	updated, err := u.tweets.UpdateContent(ctx, tweetID, content)
	if err != nil {
		return nil, fmt.Errorf("failed to update tweet %s: %w", tweetID, err)
	}
	return updated, nil
}

// Delete removes a tweet. Only the owner may delete.
func (u *TweetUsecase) Delete(ctx context.Context, tweetID, ownerID string) error {
	if err := u.checkOwner(ctx, tweetID, ownerID); err != nil {
		return err
	}
	if err := u.tweets.Delete(ctx, tweetID); err != nil {
		return fmt.Errorf("failed to delete tweet %s: %w", tweetID, err)
	}
	return nil
}

func (u *TweetUsecase) checkOwner(ctx context.Context, tweetID, ownerID string) error {
	if tweetID == "" {
		return ErrInvalidTarget
	}
	tweet, err := u.tweets.GetByID(ctx, tweetID)
	if err != nil {
		if errors.Is(err, contract.ErrTweetNotFound) {
			return ErrTargetNotFound
		}
		return fmt.Errorf("failed to get tweet %s: %w", tweetID, err)
	}
	if tweet.OwnerID != ownerID {
		return ErrNotOwner
	}
	return nil
}
