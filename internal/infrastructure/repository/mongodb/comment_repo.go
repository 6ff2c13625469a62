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

// CommentRepository represents the MongoDB implementation of the
// ICommentRepository interface.
type CommentRepository struct {
	collection *mongo.Collection
}

// NewCommentRepository creates and returns a new CommentRepository instance.
func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{
		collection: db.Collection("comments"),
	}
}

var _ contract.ICommentRepository = (*CommentRepository)(nil)

// Create inserts a new comment record into the database.
func (r *CommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	comment.CreatedAt = time.Now()
	comment.UpdatedAt = comment.CreatedAt
	_, err := r.collection.InsertOne(ctx, comment)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// GetByID retrieves a single comment by its unique id.
func (r *CommentRepository) GetByID(ctx context.Context, commentID string) (*entity.Comment, error) {
	var comment entity.Comment
	err := r.collection.FindOne(ctx, bson.M{"_id": commentID}).Decode(&comment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to retrieve comment: %w", err)
	}
	return &comment, nil
}

// ListByVideo returns a page of a video's comments, newest first, joined to
// each owner's display fields.
func (r *CommentRepository) ListByVideo(ctx context.Context, videoID string, page, limit int64) ([]entity.CommentWithOwner, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"video_id": videoID}}},
		bson.D{{Key: "$sort", Value: bson.M{"created_at": -1}}},
		bson.D{{Key: "$skip", Value: (page - 1) * limit}},
		bson.D{{Key: "$limit", Value: limit}},
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
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer cursor.Close(ctx)

	var comments []entity.CommentWithOwner
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, fmt.Errorf("failed to decode comments: %w", err)
	}
	return comments, nil
}

// UpdateContent rewrites a comment's content and returns the updated record.
func (r *CommentRepository) UpdateContent(ctx context.Context, commentID, content string) (*entity.Comment, error) {
	filter := bson.M{"_id": commentID}
	update := bson.M{"$set": bson.M{"content": content, "updated_at": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated entity.Comment
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	return &updated, nil
}

// Delete removes a comment document.
func (r *CommentRepository) Delete(ctx context.Context, commentID string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": commentID})
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if res.DeletedCount == 0 {
		return contract.ErrCommentNotFound
	}
	return nil
}
