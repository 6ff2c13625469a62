package usecasecontract

import (
	"context"

	"github.com/playtube-app/playtube/internal/domain/entity"
)

// ITweetUseCase covers tweet CRUD.
type ITweetUseCase interface {
	Create(ctx context.Context, ownerID, content string) (*entity.Tweet, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entity.TweetWithOwner, error)
	Update(ctx context.Context, tweetID, ownerID, content string) (*entity.Tweet, error)
	Delete(ctx context.Context, tweetID, ownerID string) error
}
