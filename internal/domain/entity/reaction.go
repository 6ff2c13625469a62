package entity

import (
	"time"
)

// TargetKind identifies which kind of entity a reaction is attached to.
type TargetKind string

const (
	TargetKindVideo   TargetKind = "video"
	TargetKindComment TargetKind = "comment"
	TargetKindTweet   TargetKind = "tweet"
)

// Valid reports whether the kind is one of the known reaction targets.
func (k TargetKind) Valid() bool {
	switch k {
	case TargetKindVideo, TargetKindComment, TargetKindTweet:
		return true
	}
	return false
}

// SupportsPolarity reports whether this target kind accepts the given
// polarity. Videos can be liked and disliked; comments and tweets are
// like-only.
func (k TargetKind) SupportsPolarity(p Polarity) bool {
	if p == PolarityLike {
		return k.Valid()
	}
	return k == TargetKindVideo
}

// Polarity is the direction of a reaction.
type Polarity string

const (
	PolarityLike    Polarity = "like"
	PolarityDislike Polarity = "dislike"
)

// Valid reports whether the polarity is a known value.
func (p Polarity) Valid() bool {
	return p == PolarityLike || p == PolarityDislike
}

// ReactionState is the observable state of one actor's relationship to one
// target.
type ReactionState string

const (
	ReactionStateAbsent   ReactionState = "absent"
	ReactionStateLiked    ReactionState = "liked"
	ReactionStateDisliked ReactionState = "disliked"
)

// State maps a stored polarity to the state it represents.
func (p Polarity) State() ReactionState {
	if p == PolarityDislike {
		return ReactionStateDisliked
	}
	return ReactionStateLiked
}

// Reaction is a stored record of one actor's like/dislike relationship to
// exactly one target. At most one reaction exists per
// (actor_id, target_kind, target_id) tuple; the reactions collection carries
// a unique index on that tuple.
type Reaction struct {
	ID         string     `bson:"_id,omitempty" json:"id"`
	ActorID    string     `bson:"actor_id" json:"actor_id"`
	TargetKind TargetKind `bson:"target_kind" json:"target_kind"`
	TargetID   string     `bson:"target_id" json:"target_id"`
	Polarity   Polarity   `bson:"polarity" json:"polarity"`
	CreatedAt  time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `bson:"updated_at" json:"updated_at"`
}

// ReactionOutcome reports the result of a toggle so callers can tell
// "created" and "updated" apart from "removed". Reaction is nil when the
// resulting state is absent.
type ReactionOutcome struct {
	State    ReactionState `json:"state"`
	Reaction *Reaction     `json:"reaction,omitempty"`
}
