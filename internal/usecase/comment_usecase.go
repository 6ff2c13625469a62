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

// ErrMissingContent is returned when a comment or tweet has no content.
var ErrMissingContent = errors.New("content is required")

// CommentUsecase handles comment CRUD scoped to a video.
type CommentUsecase struct {
	comments contract.ICommentRepository
	videos   contract.IVideoRepository
	ids      contract.IUUIDGenerator
}

// NewCommentUsecase creates and returns a new CommentUsecase instance.
func NewCommentUsecase(comments contract.ICommentRepository, videos contract.IVideoRepository, ids contract.IUUIDGenerator) *CommentUsecase {
	return &CommentUsecase{comments: comments, videos: videos, ids: ids}
}

var _ usecasecontract.ICommentUseCase = (*CommentUsecase)(nil)

// Add creates a comment after checking the video exists.
func (u *CommentUsecase) Add(ctx context.Context, videoID, ownerID, content string) (*entity.Comment, error) {
	if videoID == "" {
		return nil, ErrInvalidTarget
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrMissingContent
	}
	if _, err := u.videos.GetByID(ctx, videoID); err != nil {
		if errors.Is(err, contract.ErrVideoNotFound) {
			return nil, ErrTargetNotFound
		}
		return nil, fmt.Errorf("failed to resolve video %s: %w", videoID, err)
	}

	comment := &entity.Comment{
		ID:      u.ids.NewUUID(),
		VideoID: videoID,
		OwnerID: ownerID,
		Content: content,
	}
	if err := u.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return comment, nil
}

// ListByVideo returns a page of a video's comments, newest first.
func (u *CommentUsecase) ListByVideo(ctx context.Context, videoID string, page, limit int64) ([]entity.CommentWithOwner, error) {
	if videoID == "" {
		return nil, ErrInvalidTarget
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	comments, err := u.comments.ListByVideo(ctx, videoID, page, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments of video %s: %w", videoID, err)
	}
	if comments == nil {
		comments = []entity.CommentWithOwner{}
	}
	return comments, nil
}

// Update rewrites a comment's content. Only the owner may update.
func (u *CommentUsecase) Update(ctx context.Context, commentID, ownerID, content string) (*entity.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrMissingContent
	}
	if err := u.checkOwner(ctx, commentID, ownerID); err != nil {
		return nil, err
	}
	updated, err := u.comments.UpdateContent(ctx, commentID, content)
	if err != nil {
		return nil, fmt.Errorf("failed to update comment %s: %w", commentID, err)
	}
	return updated, nil
}

// Delete removes a comment. Only the owner may delete.
func (u *CommentUsecase) Delete(ctx context.Context, commentID, ownerID string) error {
	if err := u.checkOwner(ctx, commentID, ownerID); err != nil {
		return err
	}
	if err := u.comments.Delete(ctx, commentID); err != nil {
		return fmt.Errorf("failed to delete comment %s: %w", commentID, err)
	}
	return nil
}

func (u *CommentUsecase) checkOwner(ctx context.Context, commentID, ownerID string) error {
	if commentID == "" {
		return ErrInvalidTarget
	}
	comment, err := u.comments.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, contract.ErrCommentNotFound) {
			return ErrTargetNotFound
		}
		return fmt.Errorf("failed to get comment %s: %w", commentID, err)
	}
	if comment.OwnerID != ownerID {
		return ErrNotOwner
	}
	return nil
}
