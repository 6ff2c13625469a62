package entity

import (
	"time"
)

// Read-side projections produced by the aggregation pipelines. These never
// round-trip back into storage; they exist so list endpoints can return only
// display fields.

// OwnerSummary is the slice of a user document that list endpoints expose.
type OwnerSummary struct {
	ID       string `bson:"_id" json:"id"`
	Username string `bson:"username" json:"username"`
	Fullname string `bson:"fullname,omitempty" json:"fullname,omitempty"`
	Avatar   string `bson:"avatar,omitempty" json:"avatar,omitempty"`
}

// VideoSummary is one row of a liked/disliked-videos listing: the video's
// display fields joined to its owner's username.
type VideoSummary struct {
	ID        string `bson:"_id" json:"id"`
	Title     string `bson:"title" json:"title"`
	Thumbnail string `bson:"thumbnail" json:"thumbnail"`
	Views     int64  `bson:"views" json:"views"`
	Owner     string `bson:"owner" json:"owner"`
}

// VideoListItem is one row of the public video listing.
type VideoListItem struct {
	ID          string       `bson:"_id" json:"id"`
	Title       string       `bson:"title" json:"title"`
	Description string       `bson:"description,omitempty" json:"description,omitempty"`
	Thumbnail   string       `bson:"thumbnail" json:"thumbnail"`
	Duration    float64      `bson:"duration" json:"duration"`
	Views       int64        `bson:"views" json:"views"`
	CreatedAt   time.Time    `bson:"created_at" json:"created_at"`
	Owner       OwnerSummary `bson:"owner" json:"owner"`
}

// VideoDetail is the single-video view joined to its owner.
type VideoDetail struct {
	ID          string       `bson:"_id" json:"id"`
	Title       string       `bson:"title" json:"title"`
	Description string       `bson:"description,omitempty" json:"description,omitempty"`
	VideoFile   string       `bson:"video_file" json:"video_file"`
	Thumbnail   string       `bson:"thumbnail" json:"thumbnail"`
	Duration    float64      `bson:"duration" json:"duration"`
	Views       int64        `bson:"views" json:"views"`
	CreatedAt   time.Time    `bson:"created_at" json:"created_at"`
	Owner       OwnerSummary `bson:"owner" json:"owner"`
}

// CommentWithOwner is one row of a video's comment listing.
type CommentWithOwner struct {
	ID        string       `bson:"_id" json:"id"`
	Content   string       `bson:"content" json:"content"`
	CreatedAt time.Time    `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time    `bson:"updated_at" json:"updated_at"`
	Owner     OwnerSummary `bson:"owner" json:"owner"`
}

// TweetWithOwner is one row of a user's tweet listing.
type TweetWithOwner struct {
	ID        string       `bson:"_id" json:"id"`
	Content   string       `bson:"content" json:"content"`
	CreatedAt time.Time    `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time    `bson:"updated_at" json:"updated_at"`
	Owner     OwnerSummary `bson:"owner" json:"owner"`
}

// SubscriberEntry is one row of a channel's subscriber listing. IsSubscribedBack
// reports whether the requesting user in turn subscribes to that subscriber's
// channel; it is always false for anonymous requests.
type SubscriberEntry struct {
	Subscriber       OwnerSummary `bson:"subscriber" json:"subscriber"`
	IsSubscribedBack bool         `bson:"is_subscribed_back" json:"is_subscribed_back"`
}

// ChannelSummary is one row of a user's subscribed-channels listing.
type ChannelSummary struct {
	ID       string `bson:"_id" json:"id"`
	Username string `bson:"username" json:"username"`
	Email    string `bson:"email" json:"email"`
	Fullname string `bson:"fullname,omitempty" json:"fullname,omitempty"`
	Avatar   string `bson:"avatar,omitempty" json:"avatar,omitempty"`
}
