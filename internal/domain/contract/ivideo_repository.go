package contract

import (
	"context"
	"errors"

	"github.com/playtube-app/playtube/internal/domain/entity"
)

// ErrVideoNotFound is returned when a video id does not resolve.
var ErrVideoNotFound = errors.New("video not found")

// VideoFilterOptions holds database-agnostic parameters for filtering,
// sorting, and paginating video listings.
type VideoFilterOptions struct {
	Query     string // full-text search over title/description
	OwnerID   string
	SortBy    string // e.g. "created_at", "views", "duration"
	SortOrder string // "asc" or "desc"
	Page      int64
	Limit     int64
}

// IVideoRepository defines the interface for video data persistence.
type IVideoRepository interface {
	Create(ctx context.Context, video *entity.Video) error
	GetByID(ctx context.Context, videoID string) (*entity.Video, error)
	// GetDetail returns the video joined to its owner's display fields.
	GetDetail(ctx context.Context, videoID string) (*entity.VideoDetail, error)
	List(ctx context.Context, opts *VideoFilterOptions) ([]entity.VideoListItem, error)
	Update(ctx context.Context, videoID string, updates map[string]interface{}) error
	Delete(ctx context.Context, videoID string) error
	// RecordView bumps the view counter once per distinct viewer.
	RecordView(ctx context.Context, videoID, viewerID string) error
}
