package entity

import (
	"time"
)

// Video represents a published video and its stored media URLs.
type Video struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	OwnerID     string    `bson:"owner_id" json:"owner_id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	VideoFile   string    `bson:"video_file" json:"video_file"`
	Thumbnail   string    `bson:"thumbnail" json:"thumbnail"`
	Duration    float64   `bson:"duration" json:"duration"`
	Views       int64     `bson:"views" json:"views"`
	ViewedBy    []string  `bson:"viewed_by,omitempty" json:"-"`
	IsPublished bool      `bson:"is_published" json:"is_published"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}
