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

// SubscriptionRepository represents the MongoDB implementation of the
// ISubscriptionRepository interface, with a unique index on
// (subscriber_id, channel_id) enforcing the pair invariant.
type SubscriptionRepository struct {
	collection *mongo.Collection
}

// NewSubscriptionRepository creates and returns a new SubscriptionRepository
// instance.
func NewSubscriptionRepository(db *mongo.Database) *SubscriptionRepository {
	return &SubscriptionRepository{
		collection: db.Collection("subscriptions"),
	}
}

var _ contract.ISubscriptionRepository = (*SubscriptionRepository)(nil)

// EnsureIndexes creates the unique pair index. Called once at startup.
func (r *SubscriptionRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "subscriber_id", Value: 1},
			{Key: "channel_id", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create subscription pair index: %w", err)
	}
	return nil
}

// GetBySubscriberAndChannel retrieves the single subscription for the pair.
func (r *SubscriptionRepository) GetBySubscriberAndChannel(ctx context.Context, subscriberID, channelID string) (*entity.Subscription, error) {
	var sub entity.Subscription
	filter := bson.M{"subscriber_id": subscriberID, "channel_id": channelID}

	err := r.collection.FindOne(ctx, filter).Decode(&sub)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("failed to retrieve subscription: %w", err)
	}
	return &sub, nil
}

// Create inserts a new subscription row. A duplicate-key rejection from the
// unique pair index is reported as a conflict for the caller to retry.
func (r *SubscriptionRepository) Create(ctx context.Context, sub *entity.Subscription) error {
	sub.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, sub)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return contract.ErrSubscriptionConflict
		}
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	return nil
}

// Delete removes a subscription by id. Deleting a row another request already
// removed is a conflict.
func (r *SubscriptionRepository) Delete(ctx context.Context, subscriptionID string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": subscriptionID})
	if err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}
	if res.DeletedCount == 0 {
		return contract.ErrSubscriptionConflict
	}
	return nil
}

// CountSubscribers counts the subscribers of one channel.
func (r *SubscriptionRepository) CountSubscribers(ctx context.Context, channelID string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"channel_id": channelID})
	if err != nil {
		return 0, fmt.Errorf("failed to count subscribers: %w", err)
	}
	return count, nil
}

// SubscribersOf lists a channel's subscribers joined to their display fields.
// When requesterID is non-empty, each row reports whether the requester in
// turn subscribes to that subscriber's channel.
func (r *SubscriptionRepository) SubscribersOf(ctx context.Context, channelID, requesterID string) ([]entity.SubscriberEntry, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"channel_id": channelID}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "subscriber_id",
			"foreignField": "_id",
			"as":           "subscriber",
		}}},
		bson.D{{Key: "$unwind", Value: "$subscriber"}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from": "subscriptions",
			"let":  bson.M{"sub": "$subscriber_id"},
			"pipeline": mongo.Pipeline{
				bson.D{{Key: "$match", Value: bson.M{
					"$expr": bson.M{"$and": []bson.M{
						{"$eq": []interface{}{"$channel_id", "$$sub"}},
						{"$eq": []interface{}{"$subscriber_id", requesterID}},
					}},
				}}},
			},
			"as": "back",
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"subscriber": bson.M{
				"_id":      "$subscriber._id",
				"username": "$subscriber.username",
				"fullname": "$subscriber.fullname",
				"avatar":   "$subscriber.avatar",
			},
			"is_subscribed_back": bson.M{"$gt": []interface{}{bson.M{"$size": "$back"}, 0}},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []entity.SubscriberEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode subscribers: %w", err)
	}
	return entries, nil
}

// ChannelsOf lists the channels one user subscribes to, joined to each
// channel's display fields.
func (r *SubscriptionRepository) ChannelsOf(ctx context.Context, subscriberID string) ([]entity.ChannelSummary, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"subscriber_id": subscriberID}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "channel_id",
			"foreignField": "_id",
			"as":           "channel",
		}}},
		bson.D{{Key: "$unwind", Value: "$channel"}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":      "$channel._id",
			"username": "$channel.username",
			"email":    "$channel.email",
			"fullname": "$channel.fullname",
			"avatar":   "$channel.avatar",
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribed channels: %w", err)
	}
	defer cursor.Close(ctx)

	var channels []entity.ChannelSummary
	if err := cursor.All(ctx, &channels); err != nil {
		return nil, fmt.Errorf("failed to decode subscribed channels: %w", err)
	}
	return channels, nil
}
