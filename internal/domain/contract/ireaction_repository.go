package contract

import (
	"context"
	"errors"

	"github.com/playtube-app/playtube/internal/domain/entity"
)

// ErrReactionNotFound is returned when no reaction exists for a lookup.
var ErrReactionNotFound = errors.New("reaction not found")

// ErrReactionConflict is returned when a write lost a race: a duplicate
// insert hit the unique (actor_id, target_kind, target_id) index, or a
// conditional update/delete matched no row because another request changed it
// first. Callers re-read and decide again.
var ErrReactionConflict = errors.New("reaction modified concurrently")

// IReactionRepository defines the interface for reaction persistence.
// Uniqueness of the (actor, kind, target) tuple is enforced here, at the
// storage layer, not by the caller's prior read.
type IReactionRepository interface {
	// GetByActorAndTarget returns the single reaction for the tuple, or
	// ErrReactionNotFound.
	GetByActorAndTarget(ctx context.Context, actorID string, kind entity.TargetKind, targetID string) (*entity.Reaction, error)
	// Create inserts a new reaction. A concurrent duplicate surfaces as
	// ErrReactionConflict.
	Create(ctx context.Context, reaction *entity.Reaction) error
	// UpdatePolarity flips an existing reaction in place, conditional on its
	// current polarity still being from. A miss surfaces as
	// ErrReactionConflict.
	UpdatePolarity(ctx context.Context, reactionID string, from, to entity.Polarity) (*entity.Reaction, error)
	// Delete removes a reaction, conditional on its polarity still being the
	// one the caller observed. A miss surfaces as ErrReactionConflict.
	Delete(ctx context.Context, reactionID string, polarity entity.Polarity) error
	// CountByTarget counts reactions of one polarity on one target.
	CountByTarget(ctx context.Context, kind entity.TargetKind, targetID string, polarity entity.Polarity) (int64, error)
	// ActorsByTarget lists the actors holding a reaction of one polarity on
	// one target.
	ActorsByTarget(ctx context.Context, kind entity.TargetKind, targetID string, polarity entity.Polarity) ([]entity.OwnerSummary, error)
	// VideosReactedBy lists video summaries the actor reacted to with the
	// given polarity, joined to each video's owner username.
	VideosReactedBy(ctx context.Context, actorID string, polarity entity.Polarity) ([]entity.VideoSummary, error)
}
