package usecase

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/playtube-app/playtube/internal/domain/contract"
	"github.com/playtube-app/playtube/internal/domain/entity"
	usecasecontract "github.com/playtube-app/playtube/internal/usecase/contract"
)

// ErrNotOwner is returned when a mutation is attempted by someone other than
// the resource's owner.
var ErrNotOwner = errors.New("not the owner of this resource")

// ErrMissingTitle is returned when a publish request has no title.
var ErrMissingTitle = errors.New("video title is required")

// ErrMissingFile is returned when a publish request has no video file.
var ErrMissingFile = errors.New("video file is required")

// ErrNothingToUpdate is returned when an update request carries no fields.
var ErrNothingToUpdate = errors.New("need at least one of thumbnail, title or description")

// VideoUsecase handles video publishing and the CRUD wrappers around it.
type VideoUsecase struct {
	videos  contract.IVideoRepository
	storage contract.IMediaStorage
	ids     contract.IUUIDGenerator
	logger  usecasecontract.IAppLogger
	cache   usecasecontract.IVideoCache // optional
}

// NewVideoUsecase creates and returns a new VideoUsecase instance.
func NewVideoUsecase(videos contract.IVideoRepository, storage contract.IMediaStorage, ids contract.IUUIDGenerator, logger usecasecontract.IAppLogger) *VideoUsecase {
	return &VideoUsecase{
		videos:  videos,
		storage: storage,
		ids:     ids,
		logger:  logger,
	}
}

var _ usecasecontract.IVideoUseCase = (*VideoUsecase)(nil)

// SetVideoCache attaches an optional redis-backed cache for detail and list
// reads.
func (u *VideoUsecase) SetVideoCache(cache usecasecontract.IVideoCache) {
	u.cache = cache
}

// extFromContentType maps the upload content type to an object-name suffix.
func extFromContentType(contentType string) string {
	switch contentType {
	case "video/mp4":
		return ".mp4"
	case "video/webm":
		return ".webm"
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	default:
		return ""
	}
}

// Publish stores the media files and creates the video document. The stored
// duration wins over the client-reported one when the store knows it.
func (u *VideoUsecase) Publish(ctx context.Context, ownerID, title, description string, upload *usecasecontract.VideoUpload) (*entity.Video, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrMissingTitle
	}
	if upload == nil || upload.File == nil {
		return nil, ErrMissingFile
	}

	id := u.ids.NewUUID()
	stored, err := u.storage.Store(ctx, path.Join("videos", id+extFromContentType(upload.FileType)), upload.File, upload.FileSize, upload.FileType)
	if err != nil {
		return nil, fmt.Errorf("failed to upload video file: %w", err)
	}

	video := &entity.Video{
		ID:          id,
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		VideoFile:   stored.URL,
		Duration:    stored.Duration,
		IsPublished: true,
	}
	if video.Duration == 0 {
		video.Duration = upload.Duration
	}

	if upload.Thumbnail != nil {
		thumb, err := u.storage.Store(ctx, path.Join("thumbnails", id+extFromContentType(upload.ThumbnailType)), upload.Thumbnail, upload.ThumbnailSize, upload.ThumbnailType)
		if err != nil {
			return nil, fmt.Errorf("failed to upload thumbnail: %w", err)
		}
		video.Thumbnail = thumb.URL
	}

	if err := u.videos.Create(ctx, video); err != nil {
		return nil, fmt.Errorf("failed to create video: %w", err)
	}
	u.invalidateLists(ctx)
	return video, nil
}

// GetByID fetches a video joined to its owner and bumps the view counter once
// per distinct viewer. viewerID may be empty for anonymous reads.
func (u *VideoUsecase) GetByID(ctx context.Context, videoID, viewerID string) (*entity.VideoDetail, error) {
	if videoID == "" {
		return nil, ErrInvalidTarget
	}
	if u.cache != nil && viewerID == "" {
		if detail, hit, err := u.cache.GetVideoDetail(ctx, videoID); err == nil && hit {
			return detail, nil
		}
	}
	detail, err := u.videos.GetDetail(ctx, videoID)
	if err != nil {
		if errors.Is(err, contract.ErrVideoNotFound) {
			return nil, ErrTargetNotFound
		}
		return nil, fmt.Errorf("failed to get video %s: %w", videoID, err)
	}
	if viewerID != "" && viewerID != detail.Owner.ID {
		// Best effort; a lost view count never fails the read.
		if err := u.videos.RecordView(ctx, videoID, viewerID); err != nil {
			u.logger.Warnf("failed to record view of %s by %s: %v", videoID, viewerID, err)
		} else {
			detail.Views++
		}
	}
	if u.cache != nil && viewerID == "" {
		_ = u.cache.SetVideoDetail(ctx, videoID, detail)
	}
	return detail, nil
}

// List returns a page of videos per the filter options.
func (u *VideoUsecase) List(ctx context.Context, opts *contract.VideoFilterOptions) ([]entity.VideoListItem, error) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit < 1 || opts.Limit > 100 {
		opts.Limit = 10
	}
	key := listCacheKey(opts)
	if u.cache != nil {
		if items, hit, err := u.cache.GetVideoList(ctx, key); err == nil && hit {
			return items, nil
		}
	}
	items, err := u.videos.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}
	if items == nil {
		items = []entity.VideoListItem{}
	}
	if u.cache != nil {
		_ = u.cache.SetVideoList(ctx, key, items)
	}
	return items, nil
}

func listCacheKey(opts *contract.VideoFilterOptions) string {
	return fmt.Sprintf("videos:list:q=%s:o=%s:s=%s:%s:p=%d:l=%d",
		opts.Query, opts.OwnerID, opts.SortBy, opts.SortOrder, opts.Page, opts.Limit)
}

// Update changes title, description, and/or thumbnail. Only the owner may
// update.
func (u *VideoUsecase) Update(ctx context.Context, videoID, ownerID, title, description string, thumbnail *usecasecontract.VideoUpload) (*entity.Video, error) {
	if title == "" && description == "" && (thumbnail == nil || thumbnail.Thumbnail == nil) {
		return nil, ErrNothingToUpdate
	}
	video, err := u.ownedVideo(ctx, videoID, ownerID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if title != "" {
		updates["title"] = title
		video.Title = title
	}
	if description != "" {
		updates["description"] = description
		video.Description = description
	}
	if thumbnail != nil && thumbnail.Thumbnail != nil {
		thumb, err := u.storage.Store(ctx, path.Join("thumbnails", videoID+extFromContentType(thumbnail.ThumbnailType)), thumbnail.Thumbnail, thumbnail.ThumbnailSize, thumbnail.ThumbnailType)
		if err != nil {
			return nil, fmt.Errorf("failed to upload thumbnail: %w", err)
		}
		updates["thumbnail"] = thumb.URL
		video.Thumbnail = thumb.URL
	}

	if err := u.videos.Update(ctx, videoID, updates); err != nil {
		return nil, fmt.Errorf("failed to update video %s: %w", videoID, err)
	}
	u.invalidate(ctx, videoID)
	return video, nil
}

// Delete removes the video document. Only the owner may delete.
func (u *VideoUsecase) Delete(ctx context.Context, videoID, ownerID string) error {
	if _, err := u.ownedVideo(ctx, videoID, ownerID); err != nil {
		return err
	}
	if err := u.videos.Delete(ctx, videoID); err != nil {
		return fmt.Errorf("failed to delete video %s: %w", videoID, err)
	}
	u.invalidate(ctx, videoID)
	return nil
}

// SetPublishStatus flips the published flag. Only the owner may change it.
func (u *VideoUsecase) SetPublishStatus(ctx context.Context, videoID, ownerID string, published bool) (*entity.Video, error) {
	video, err := u.ownedVideo(ctx, videoID, ownerID)
	if err != nil {
		return nil, err
	}
	if err := u.videos.Update(ctx, videoID, map[string]interface{}{"is_published": published}); err != nil {
		return nil, fmt.Errorf("failed to update publish status of %s: %w", videoID, err)
	}
	video.IsPublished = published
	u.invalidate(ctx, videoID)
	return video, nil
}

func (u *VideoUsecase) ownedVideo(ctx context.Context, videoID, ownerID string) (*entity.Video, error) {
	if videoID == "" {
		return nil, ErrInvalidTarget
	}
	video, err := u.videos.GetByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, contract.ErrVideoNotFound) {
			return nil, ErrTargetNotFound
		}
		return nil, fmt.Errorf("failed to get video %s: %w", videoID, err)
	}
	if video.OwnerID != ownerID {
		return nil, ErrNotOwner
	}
	return video, nil
}

func (u *VideoUsecase) invalidate(ctx context.Context, videoID string) {
	if u.cache == nil {
		return
	}
	_ = u.cache.InvalidateVideoDetail(ctx, videoID)
	u.invalidateLists(ctx)
}

func (u *VideoUsecase) invalidateLists(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.InvalidateVideoLists(ctx); err != nil {
		u.logger.Warnf("failed to invalidate video list cache: %v", err)
	}
}
