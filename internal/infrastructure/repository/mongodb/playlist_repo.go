package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/playtube-app/playtube/internal/domain/contract"
	"github.com/playtube-app/playtube/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// PlaylistRepository represents the MongoDB implementation of the
// IPlaylistRepository interface.
type PlaylistRepository struct {
	collection *mongo.Collection
}

// NewPlaylistRepository creates and returns a new PlaylistRepository instance.
func NewPlaylistRepository(db *mongo.Database) *PlaylistRepository {
	return &PlaylistRepository{
		collection: db.Collection("playlists"),
	}
}

var _ contract.IPlaylistRepository = (*PlaylistRepository)(nil)

// Create inserts a new playlist record into the database.
func (r *PlaylistRepository) Create(ctx context.Context, playlist *entity.Playlist) error {
	playlist.CreatedAt = time.Now()
	playlist.UpdatedAt = playlist.CreatedAt
	if playlist.VideoIDs == nil {
		playlist.VideoIDs = []string{}
	}
	_, err := r.collection.InsertOne(ctx, playlist)
	if err != nil {
		return fmt.Errorf("failed to create playlist: %w", err)
	}
	return nil
}

// GetByID retrieves a single playlist by its unique id.
func (r *PlaylistRepository) GetByID(ctx context.Context, playlistID string) (*entity.Playlist, error) {
	var playlist entity.Playlist
	err := r.collection.FindOne(ctx, bson.M{"_id": playlistID}).Decode(&playlist)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrPlaylistNotFound
		}
		return nil, fmt.Errorf("failed to retrieve playlist: %w", err)
	}
	return &playlist, nil
}

// GetByOwnerAndName retrieves a playlist by its owner and display name.
func (r *PlaylistRepository) GetByOwnerAndName(ctx context.Context, ownerID, name string) (*entity.Playlist, error) {
	var playlist entity.Playlist
	err := r.collection.FindOne(ctx, bson.M{"owner_id": ownerID, "name": name}).Decode(&playlist)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrPlaylistNotFound
		}
		return nil, fmt.Errorf("failed to retrieve playlist: %w", err)
	}
	return &playlist, nil
}

// ListByOwner returns all playlists belonging to a user, newest first.
func (r *PlaylistRepository) ListByOwner(ctx context.Context, ownerID string) ([]entity.Playlist, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return nil, fmt.Errorf("failed to list playlists: %w", err)
	}
	defer cursor.Close(ctx)

	var playlists []entity.Playlist
	if err := cursor.All(ctx, &playlists); err != nil {
		return nil, fmt.Errorf("failed to decode playlists: %w", err)
	}
	return playlists, nil
}

// AddVideo appends a video to the playlist. Adding a video that is already
// present leaves the playlist unchanged.
func (r *PlaylistRepository) AddVideo(ctx context.Context, playlistID, videoID string) error {
	update := bson.M{
		"$addToSet": bson.M{"video_ids": videoID},
		"$set":      bson.M{"updated_at": time.Now()},
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": playlistID}, update)
	if err != nil {
		return fmt.Errorf("failed to add video to playlist: %w", err)
	}
	if res.MatchedCount == 0 {
		return contract.ErrPlaylistNotFound
	}
	return nil
}

// RemoveVideo removes a video from the playlist if present.
func (r *PlaylistRepository) RemoveVideo(ctx context.Context, playlistID, videoID string) error {
	update := bson.M{
		"$pull": bson.M{"video_ids": videoID},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": playlistID}, update)
	if err != nil {
		return fmt.Errorf("failed to remove video from playlist: %w", err)
	}
	if res.MatchedCount == 0 {
		return contract.ErrPlaylistNotFound
	}
	return nil
}

// Update applies a partial set of field changes to the playlist.
func (r *PlaylistRepository) Update(ctx context.Context, playlistID string, updates map[string]interface{}) error {
	set := bson.M{"updated_at": time.Now()}
	for k, v := range updates {
		set[k] = v
	}
	update := bson.M{"$set": set}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": playlistID}, update)
	if err != nil {
		return fmt.Errorf("failed to update playlist: %w", err)
	}
	if res.MatchedCount == 0 {
		return contract.ErrPlaylistNotFound
	}
	return nil
}

// Delete removes a playlist document.
func (r *PlaylistRepository) Delete(ctx context.Context, playlistID string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": playlistID})
	if err != nil {
		return fmt.Errorf("failed to delete playlist: %w", err)
	}
	if res.DeletedCount == 0 {
		return contract.ErrPlaylistNotFound
	}
	return nil
}
