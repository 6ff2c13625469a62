package entity

import (
	"time"
)

// Subscription is a stored record of one user following another user's
// channel. At most one subscription exists per (subscriber_id, channel_id)
// pair; the subscriptions collection carries a unique index on that pair.
type Subscription struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	SubscriberID string    `bson:"subscriber_id" json:"subscriber_id"`
	ChannelID    string    `bson:"channel_id" json:"channel_id"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// SubscriptionOutcome reports the result of a subscription toggle.
// Subscription is nil when the toggle removed the record.
type SubscriptionOutcome struct {
	Subscribed   bool          `json:"subscribed"`
	Subscription *Subscription `json:"subscription,omitempty"`
}
