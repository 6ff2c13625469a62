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

// TweetRepository represents the MongoDB implementation of the
// ITweetRepository interface.
type TweetRepository struct {
	collection *mongo.Collection
}

// NewTweetRepository creates and returns a new TweetRepository instance.
func NewTweetRepository(db *mongo.Database) *TweetRepository {
	return &TweetRepository{
		collection: db.Collection("tweets"),
	}
}

var _ contract.ITweetRepository = (*TweetRepository)(nil)

// Create inserts a new tweet record into the database.
func (r *TweetRepository) Create(ctx context.Context, tweet *entity.Tweet) error {
	tweet.CreatedAt = time.Now()
	tweet.UpdatedAt = tweet.CreatedAt
	_, err := r.collection.InsertOne(ctx, tweet)
	if err != nil {
		return fmt.Errorf("failed to create tweet: %w", err)
	}
	return nil
}

// GetByID retrieves a single tweet by its unique id.
func (r *TweetRepository) GetByID(ctx context.Context, tweetID string) (*entity.Tweet, error) {
	var tweet entity.Tweet
	err := r.collection.FindOne(ctx, bson.M{"_id": tweetID}).Decode(&tweet)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrTweetNotFound
		}
		return nil, fmt.Errorf("failed to retrieve tweet: %w", err)
	}
	return &tweet, nil
}

// ListByOwner returns a user's tweets joined to the owner's display fields,
// newest first.
func (r *TweetRepository) ListByOwner(ctx context.Context, ownerID string) ([]entity.TweetWithOwner, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"owner_id": ownerID}}},
		bson.D{{Key: "$sort", Value: bson.M{"created_at": -1}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "owner_id",
			"foreignField": "_id",
			"as":           "owner",
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"owner": bson.M{"$first": "$owner"},
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"content":    1,
			"created_at": 1,
			"updated_at": 1,
			"owner": bson.M{
				"_id":      "$owner._id",
				"username": "$owner.username",
				"fullname": "$owner.fullname",
				"avatar":   "$owner.avatar",
			},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to list tweets: %w", err)
	}
	defer cursor.Close(ctx)

	var tweets []entity.TweetWithOwner
	if err := cursor.All(ctx, &tweets); err != nil {
		return nil, fmt.Errorf("failed to decode tweets: %w", err)
	}
	return tweets, nil
}

// UpdateContent rewrites a tweet's content and returns the updated record.
func (r *TweetRepository) UpdateContent(ctx context.Context, tweetID, content string) (*entity.Tweet, error) {
	filter := bson.M{"_id": tweetID}
	update := bson.M{"$set": bson.M{"content": content, "updated_at": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated entity.Tweet
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrTweetNotFound
		}
		return nil, fmt.Errorf("failed to update tweet: %w", err)
	}
	return &updated, nil
}

// Delete removes a tweet document.
func (r *TweetRepository) Delete(ctx context.Context, tweetID string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": tweetID})
	if err != nil {
		return fmt.Errorf("failed to delete tweet: %w", err)
	}
	if res.DeletedCount == 0 {
		return contract.ErrTweetNotFound
	}
	return nil
}
