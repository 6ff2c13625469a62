package usecasecontract

import (
	"context"

	"github.com/playtube-app/playtube/internal/domain/entity"
)

// ICommentUseCase covers comment CRUD scoped to a video.
type ICommentUseCase interface {
	Add(ctx context.Context, videoID, ownerID, content string) (*entity.Comment, error)
	ListByVideo(ctx context.Context, videoID string, page, limit int64) ([]entity.CommentWithOwner, error)
	Update(ctx context.Context, commentID, ownerID, content string) (*entity.Comment, error)
	Delete(ctx context.Context, commentID, ownerID string) error
}
