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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReactionRepository represents the MongoDB implementation of the
// IReactionRepository interface. The uniqueness invariant on
// (actor_id, target_kind, target_id) lives here, in a unique index: a second
// concurrent insert for the same tuple is rejected by the server, and
// conditional updates/deletes that match no document mean another request got
// there first. Both cases surface as contract.ErrReactionConflict.
type ReactionRepository struct {
	collection *mongo.Collection
}

// NewReactionRepository creates and returns a new ReactionRepository instance.
func NewReactionRepository(db *mongo.Database) *ReactionRepository {
	return &ReactionRepository{
		collection: db.Collection("reactions"),
	}
}

var _ contract.IReactionRepository = (*ReactionRepository)(nil)

// EnsureIndexes creates the unique tuple index. Called once at startup.
func (r *ReactionRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "actor_id", Value: 1},
			{Key: "target_kind", Value: 1},
			{Key: "target_id", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create reaction tuple index: %w", err)
	}
	return nil
}

// GetByActorAndTarget retrieves the single reaction for the tuple.
func (r *ReactionRepository) GetByActorAndTarget(ctx context.Context, actorID string, kind entity.TargetKind, targetID string) (*entity.Reaction, error) {
	var reaction entity.Reaction
	filter := bson.M{"actor_id": actorID, "target_kind": kind, "target_id": targetID}

	err := r.collection.FindOne(ctx, filter).Decode(&reaction)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrReactionNotFound
		}
		return nil, fmt.Errorf("failed to retrieve reaction: %w", err)
	}
	return &reaction, nil
}

// Create inserts a new reaction row. A duplicate-key rejection from the
// unique tuple index is reported as a conflict for the caller to retry.
func (r *ReactionRepository) Create(ctx context.Context, reaction *entity.Reaction) error {
	reaction.CreatedAt = time.Now()
	reaction.UpdatedAt = reaction.CreatedAt

	_, err := r.collection.InsertOne(ctx, reaction)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return contract.ErrReactionConflict
		}
		return fmt.Errorf("failed to create reaction: %w", err)
	}
	return nil
}

// UpdatePolarity flips a reaction in place, conditional on its polarity still
// being from. The condition makes the read-decide-write sequence safe: if a
// concurrent toggle already changed or removed the row, no document matches
// and the caller gets a conflict instead of applying a stale decision.
func (r *ReactionRepository) UpdatePolarity(ctx context.Context, reactionID string, from, to entity.Polarity) (*entity.Reaction, error) {
	filter := bson.M{"_id": reactionID, "polarity": from}
	update := bson.M{"$set": bson.M{"polarity": to, "updated_at": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated entity.Reaction
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrReactionConflict
		}
		return nil, fmt.Errorf("failed to update reaction polarity: %w", err)
	}
	return &updated, nil
}

// Delete removes a reaction, conditional on its polarity still being the one
// the caller observed.
func (r *ReactionRepository) Delete(ctx context.Context, reactionID string, polarity entity.Polarity) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": reactionID, "polarity": polarity})
	if err != nil {
		return fmt.Errorf("failed to delete reaction: %w", err)
	}
	if res.DeletedCount == 0 {
		return contract.ErrReactionConflict
	}
	return nil
}

// CountByTarget counts the reactions of one polarity on one target.
func (r *ReactionRepository) CountByTarget(ctx context.Context, kind entity.TargetKind, targetID string, polarity entity.Polarity) (int64, error) {
	filter := bson.M{"target_kind": kind, "target_id": targetID, "polarity": polarity}
	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count reactions: %w", err)
	}
	return count, nil
}

// ActorsByTarget lists the users holding a reaction of one polarity on one
// target.
func (r *ReactionRepository) ActorsByTarget(ctx context.Context, kind entity.TargetKind, targetID string, polarity entity.Polarity) ([]entity.OwnerSummary, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"target_kind": kind,
			"target_id":   targetID,
			"polarity":    polarity,
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "actor_id",
			"foreignField": "_id",
			"as":           "actor",
		}}},
		bson.D{{Key: "$unwind", Value: "$actor"}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":      "$actor._id",
			"username": "$actor.username",
			"fullname": "$actor.fullname",
			"avatar":   "$actor.avatar",
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to list reacting actors: %w", err)
	}
	defer cursor.Close(ctx)

	var actors []entity.OwnerSummary
	if err := cursor.All(ctx, &actors); err != nil {
		return nil, fmt.Errorf("failed to decode reacting actors: %w", err)
	}
	return actors, nil
}

// VideosReactedBy lists video summaries the actor reacted to with the given
// polarity, joined to each video's owner username.
func (r *ReactionRepository) VideosReactedBy(ctx context.Context, actorID string, polarity entity.Polarity) ([]entity.VideoSummary, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"actor_id":    actorID,
			"target_kind": entity.TargetKindVideo,
			"polarity":    polarity,
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "videos",
			"localField":   "target_id",
			"foreignField": "_id",
			"as":           "video",
		}}},
		bson.D{{Key: "$unwind", Value: "$video"}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "video.owner_id",
			"foreignField": "_id",
			"as":           "owner",
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"owner": bson.M{"$arrayElemAt": []interface{}{"$owner", 0}},
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":       "$video._id",
			"title":     "$video.title",
			"thumbnail": "$video.thumbnail",
			"views":     "$video.views",
			"owner":     "$owner.username",
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to list reacted videos: %w", err)
	}
	defer cursor.Close(ctx)

	var videos []entity.VideoSummary
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, fmt.Errorf("failed to decode reacted videos: %w", err)
	}
	return videos, nil
}
