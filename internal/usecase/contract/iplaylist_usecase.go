package usecasecontract

import (
	"context"

	"github.com/playtube-app/playtube/internal/domain/entity"
)

// IPlaylistUseCase covers playlist CRUD and membership changes.
type IPlaylistUseCase interface {
	Create(ctx context.Context, ownerID, name, description string) (*entity.Playlist, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entity.Playlist, error)
	GetByID(ctx context.Context, playlistID string) (*entity.Playlist, error)
	AddVideo(ctx context.Context, playlistID, videoID, ownerID string) (*entity.Playlist, error)
	RemoveVideo(ctx context.Context, playlistID, videoID, ownerID string) (*entity.Playlist, error)
	Update(ctx context.Context, playlistID, ownerID, name, description string) (*entity.Playlist, error)
	Delete(ctx context.Context, playlistID, ownerID string) error
}
