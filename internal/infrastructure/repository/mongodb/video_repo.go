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

// VideoRepository represents the MongoDB implementation of the
// IVideoRepository interface.
type VideoRepository struct {
	collection *mongo.Collection
}

// NewVideoRepository creates and returns a new VideoRepository instance.
func NewVideoRepository(db *mongo.Database) *VideoRepository {
	return &VideoRepository{
		collection: db.Collection("videos"),
	}
}

var _ contract.IVideoRepository = (*VideoRepository)(nil)

// EnsureIndexes creates the text index backing the search filter.
func (r *VideoRepository) EnsureIndexes(ctx context.Context) error {
	model := mongo.IndexModel{
		Keys: bson.D{
			{Key: "title", Value: "text"},
			{Key: "description", Value: "text"},
		},
		Options: options.Index().SetName("text_title_description"),
	}
	_, err := r.collection.Indexes().CreateOne(ctx, model)
	if err != nil {
		return fmt.Errorf("failed to create video indexes: %w", err)
	}
	return nil
}

// Create inserts a new video record into the database.
func (r *VideoRepository) Create(ctx context.Context, video *entity.Video) error {
	video.CreatedAt = time.Now()
	video.UpdatedAt = video.CreatedAt
	if video.ViewedBy == nil {
		video.ViewedBy = []string{}
	}
	_, err := r.collection.InsertOne(ctx, video)
	if err != nil {
		return fmt.Errorf("failed to create video: %w", err)
	}
	return nil
}

// GetByID retrieves a single video by its unique id.
func (r *VideoRepository) GetByID(ctx context.Context, videoID string) (*entity.Video, error) {
	var video entity.Video
	err := r.collection.FindOne(ctx, bson.M{"_id": videoID}).Decode(&video)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrVideoNotFound
		}
		return nil, fmt.Errorf("failed to retrieve video: %w", err)
	}
	return &video, nil
}

// GetDetail retrieves a video joined to its owner's display fields.
func (r *VideoRepository) GetDetail(ctx context.Context, videoID string) (*entity.VideoDetail, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"_id": videoID}}},
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
			"title":       1,
			"description": 1,
			"video_file":  1,
			"thumbnail":   1,
			"duration":    1,
			"views":       1,
			"created_at":  1,
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
		return nil, fmt.Errorf("failed to retrieve video detail: %w", err)
	}
	defer cursor.Close(ctx)

	var details []entity.VideoDetail
	if err := cursor.All(ctx, &details); err != nil {
		return nil, fmt.Errorf("failed to decode video detail: %w", err)
	}
	if len(details) == 0 {
		return nil, contract.ErrVideoNotFound
	}
	return &details[0], nil
}

// List retrieves a page of published videos with text search and sorting.
func (r *VideoRepository) List(ctx context.Context, opts *contract.VideoFilterOptions) ([]entity.VideoListItem, error) {
	filter := bson.M{"is_published": true}
	if opts.OwnerID != "" {
		filter["owner_id"] = opts.OwnerID
	}
	if opts.Query != "" {
		filter["$text"] = bson.M{"$search": opts.Query}
	}

	sortKey := "created_at"
	switch opts.SortBy {
	case "views", "duration", "title", "created_at", "":
		if opts.SortBy != "" {
			sortKey = opts.SortBy
		}
	}
	sortOrder := -1
	if opts.SortOrder == "asc" {
		sortOrder = 1
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: filter}},
		bson.D{{Key: "$sort", Value: bson.M{sortKey: sortOrder}}},
		bson.D{{Key: "$skip", Value: (opts.Page - 1) * opts.Limit}},
		bson.D{{Key: "$limit", Value: opts.Limit}},
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
			"title":       1,
			"description": 1,
			"thumbnail":   1,
			"duration":    1,
			"views":       1,
			"created_at":  1,
			"owner": bson.M{
				"_id":      "$owner._id",
				"username": "$owner.username",
				"avatar":   "$owner.avatar",
			},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}
	defer cursor.Close(ctx)

	var items []entity.VideoListItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode video list: %w", err)
	}
	return items, nil
}

// Update applies the provided fields to a video.
func (r *VideoRepository) Update(ctx context.Context, videoID string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": videoID}, bson.M{"$set": updates})
	if err != nil {
		return fmt.Errorf("failed to update video: %w", err)
	}
	if res.MatchedCount == 0 {
		return contract.ErrVideoNotFound
	}
	return nil
}

// Delete removes a video document. Deletion is physical and immediate.
func (r *VideoRepository) Delete(ctx context.Context, videoID string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": videoID})
	if err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}
	if res.DeletedCount == 0 {
		return contract.ErrVideoNotFound
	}
	return nil
}

// RecordView bumps the view counter once per distinct viewer. The viewer set
// and the counter move together in one update, so a repeat view matches no
// document and changes nothing.
func (r *VideoRepository) RecordView(ctx context.Context, videoID, viewerID string) error {
	filter := bson.M{"_id": videoID, "viewed_by": bson.M{"$ne": viewerID}}
	update := bson.M{
		"$inc":      bson.M{"views": 1},
		"$addToSet": bson.M{"viewed_by": viewerID},
	}
	_, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to record view: %w", err)
	}
	return nil
}
