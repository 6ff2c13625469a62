package usecasecontract

import (
	"context"
	"io"

	"github.com/playtube-app/playtube/internal/domain/contract"
	"github.com/playtube-app/playtube/internal/domain/entity"
)

// VideoUpload carries the media files accompanying a publish request.
type VideoUpload struct {
	File          io.Reader
	FileSize      int64
	FileType      string
	Thumbnail     io.Reader
	ThumbnailSize int64
	ThumbnailType string
	Duration      float64 // client-reported; kept when storage knows no better
}

// IVideoUseCase covers video publishing and the read/update/delete wrappers
// around it.
type IVideoUseCase interface {
	Publish(ctx context.Context, ownerID, title, description string, upload *VideoUpload) (*entity.Video, error)
	GetByID(ctx context.Context, videoID, viewerID string) (*entity.VideoDetail, error)
	List(ctx context.Context, opts *contract.VideoFilterOptions) ([]entity.VideoListItem, error)
	Update(ctx context.Context, videoID, ownerID, title, description string, thumbnail *VideoUpload) (*entity.Video, error)
	Delete(ctx context.Context, videoID, ownerID string) error
	SetPublishStatus(ctx context.Context, videoID, ownerID string, published bool) (*entity.Video, error)
}
