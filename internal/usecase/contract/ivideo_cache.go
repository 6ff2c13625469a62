package usecasecontract

import (
	"context"

	"github.com/playtube-app/playtube/internal/domain/entity"
)

// IVideoCache is an optional read-through cache for video detail and list
// pages. Implementations must treat a miss as (nil/empty, false, nil).
type IVideoCache interface {
	GetVideoDetail(ctx context.Context, videoID string) (*entity.VideoDetail, bool, error)
	SetVideoDetail(ctx context.Context, videoID string, detail *entity.VideoDetail) error
	InvalidateVideoDetail(ctx context.Context, videoID string) error
	GetVideoList(ctx context.Context, key string) ([]entity.VideoListItem, bool, error)
	SetVideoList(ctx context.Context, key string, items []entity.VideoListItem) error
	InvalidateVideoLists(ctx context.Context) error
}
