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

// ErrMissingPlaylistFields is returned when a playlist is created without a
// name or description.
var ErrMissingPlaylistFields = errors.New("playlist name and description are required")

// PlaylistUsecase handles playlist CRUD and membership changes.
type PlaylistUsecase struct {
	playlists contract.IPlaylistRepository
	videos    contract.IVideoRepository
	ids       contract.IUUIDGenerator
}

// NewPlaylistUsecase creates and returns a new PlaylistUsecase instance.
func NewPlaylistUsecase(playlists contract.IPlaylistRepository, videos contract.IVideoRepository, ids contract.IUUIDGenerator) *PlaylistUsecase {
	return &PlaylistUsecase{playlists: playlists, videos: videos, ids: ids}
}

var _ usecasecontract.IPlaylistUseCase = (*PlaylistUsecase)(nil)

// Create makes a playlist. Name is unique per owner.
func (u *PlaylistUsecase) Create(ctx context.Context, ownerID, name, description string) (*entity.Playlist, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(description) == "" {
		return nil, ErrMissingPlaylistFields
	}
	existing, err := u.playlists.GetByOwnerAndName(ctx, ownerID, name)
	if err != nil && !errors.Is(err, contract.ErrPlaylistNotFound) {
		return nil, fmt.Errorf("failed to check for existing playlist: %w", err)
	}
	if existing != nil {
		return nil, contract.ErrPlaylistExists
	}

	playlist := &entity.Playlist{
		ID:          u.ids.NewUUID(),
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
		VideoIDs:    []string{},
	}
	if err := u.playlists.Create(ctx, playlist); err != nil {
		return nil, fmt.Errorf("failed to create playlist: %w", err)
	}
	return playlist, nil
}

// ListByOwner lists one user's playlists.
func (u *PlaylistUsecase) ListByOwner(ctx context.Context, ownerID string) ([]entity.Playlist, error) {
	if ownerID == "" {
		return nil, ErrInvalidTarget
	}
	playlists, err := u.playlists.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list playlists of %s: %w", ownerID, err)
	}
	if playlists == nil {
		playlists = []entity.Playlist{}
	}
	return playlists, nil
}

// GetByID fetches one playlist.
func (u *PlaylistUsecase) GetByID(ctx context.Context, playlistID string) (*entity.Playlist, error) {
	if playlistID == "" {
		return nil, ErrInvalidTarget
	}
	playlist, err := u.playlists.GetByID(ctx, playlistID)
	if err != nil {
		if errors.Is(err, contract.ErrPlaylistNotFound) {
			return nil, ErrTargetNotFound
		}
		return nil, fmt.Errorf("failed to get playlist %s: %w", playlistID, err)
	}
	return playlist, nil
}

// AddVideo appends a video to the playlist after checking both exist. Only
// the playlist owner may add.
func (u *PlaylistUsecase) AddVideo(ctx context.Context, playlistID, videoID, ownerID string) (*entity.Playlist, error) {
	playlist, err := u.ownedPlaylist(ctx, playlistID, ownerID)
	if err != nil {
		return nil, err
	}
	if _, err := u.videos.GetByID(ctx, videoID); err != nil {
		if errors.Is(err, contract.ErrVideoNotFound) {
			return nil, ErrTargetNotFound
		}
		return nil, fmt.Errorf("failed to resolve video %s: %w", videoID, err)
	}
	if err := u.playlists.AddVideo(ctx, playlistID, videoID); err != nil {
		return nil, fmt.Errorf("failed to add video to playlist %s: %w", playlistID, err)
	}
	return u.refresh(ctx, playlist.ID)
}

// RemoveVideo removes a video from the playlist. Only the playlist owner may
// remove.
func (u *PlaylistUsecase) RemoveVideo(ctx context.Context, playlistID, videoID, ownerID string) (*entity.Playlist, error) {
	playlist, err := u.ownedPlaylist(ctx, playlistID, ownerID)
	if err != nil {
		return nil, err
	}
	if err := u.playlists.RemoveVideo(ctx, playlistID, videoID); err != nil {
		return nil, fmt.Errorf("failed to remove video from playlist %s: %w", playlistID, err)
	}
	return u.refresh(ctx, playlist.ID)
}

// Update changes the playlist's name and/or description. Only the owner may
// update.
func (u *PlaylistUsecase) Update(ctx context.Context, playlistID, ownerID, name, description string) (*entity.Playlist, error) {
	if name == "" && description == "" {
		return nil, ErrMissingPlaylistFields
	}
	if _, err := u.ownedPlaylist(ctx, playlistID, ownerID); err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if name != "" {
		updates["name"] = name
	}
	if description != "" {
		updates["description"] = description
	}
	if err := u.playlists.Update(ctx, playlistID, updates); err != nil {
		return nil, fmt.Errorf("failed to update playlist %s: %w", playlistID, err)
	}
	return u.refresh(ctx, playlistID)
}

// Delete removes a playlist. Only the owner may delete.
func (u *PlaylistUsecase) Delete(ctx context.Context, playlistID, ownerID string) error {
	if _, err := u.ownedPlaylist(ctx, playlistID, ownerID); err != nil {
		return err
	}
	if err := u.playlists.Delete(ctx, playlistID); err != nil {
		return fmt.Errorf("failed to delete playlist %s: %w", playlistID, err)
	}
	return nil
}

func (u *PlaylistUsecase) ownedPlaylist(ctx context.Context, playlistID, ownerID string) (*entity.Playlist, error) {
	if playlistID == "" {
		return nil, ErrInvalidTarget
	}
	playlist, err := u.playlists.GetByID(ctx, playlistID)
	if err != nil {
		if errors.Is(err, contract.ErrPlaylistNotFound) {
			return nil, ErrTargetNotFound
		}
		return nil, fmt.Errorf("failed to get playlist %s: %w", playlistID, err)
	}
	if playlist.OwnerID != ownerID {
		return nil, ErrNotOwner
	}
	return playlist, nil
}

func (u *PlaylistUsecase) refresh(ctx context.Context, playlistID string) (*entity.Playlist, error) {
	playlist, err := u.playlists.GetByID(ctx, playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload playlist %s: %w", playlistID, err)
	}
	return playlist, nil
}
