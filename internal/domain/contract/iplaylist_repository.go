package contract

import (
	"context"
	"errors"

	"github.com/playtube-app/playtube/internal/domain/entity"
)

// ErrPlaylistNotFound is returned when a playlist id does not resolve.
var ErrPlaylistNotFound = errors.New("playlist not found")

// ErrPlaylistExists is returned when a creation collides with an existing
// playlist of the same name for the same owner.
var ErrPlaylistExists = errors.New("playlist already exists")

// IPlaylistRepository defines the interface for playlist data persistence.
type IPlaylistRepository interface {
	Create(ctx context.Context, playlist *entity.Playlist) error
	GetByID(ctx context.Context, playlistID string) (*entity.Playlist, error)
	GetByOwnerAndName(ctx context.Context, ownerID, name string) (*entity.Playlist, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entity.Playlist, error)
	AddVideo(ctx context.Context, playlistID, videoID string) error
	RemoveVideo(ctx context.Context, playlistID, videoID string) error
	Update(ctx context.Context, playlistID string, updates map[string]interface{}) error
	Delete(ctx context.Context, playlistID string) error
}
