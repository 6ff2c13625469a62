package contract

import (
	"context"
	"errors"

	"github.com/playtube-app/playtube/internal/domain/entity"
)

// ErrCommentNotFound is returned when a comment id does not resolve.
var ErrCommentNotFound = errors.New("comment not found")

// ICommentRepository defines the interface for comment data persistence.
type ICommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	GetByID(ctx context.Context, commentID string) (*entity.Comment, error)
	// ListByVideo returns a page of a video's comments, newest first, joined
	// to each owner's display fields.
	ListByVideo(ctx context.Context, videoID string, page, limit int64) ([]entity.CommentWithOwner, error)
	UpdateContent(ctx context.Context, commentID, content string) (*entity.Comment, error)
	Delete(ctx context.Context, commentID string) error
}
