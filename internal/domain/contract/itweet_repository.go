package contract

import (
	"context"
	"errors"

	"github.com/playtube-app/playtube/internal/domain/entity"
)

// ErrTweetNotFound is returned when a tweet id does not resolve.
var ErrTweetNotFound = errors.New("tweet not found")

// ITweetRepository defines the interface for tweet data persistence.
type ITweetRepository interface {
	Create(ctx context.Context, tweet *entity.Tweet) error
	GetByID(ctx context.Context, tweetID string) (*entity.Tweet, error)
	// ListByOwner returns a user's tweets joined to the owner's display fields.
	ListByOwner(ctx context.Context, ownerID string) ([]entity.TweetWithOwner, error)
	UpdateContent(ctx context.Context, tweetID, content string) (*entity.Tweet, error)
	Delete(ctx context.Context, tweetID string) error
}
