package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/playtube-app/playtube/internal/domain/contract"
	"github.com/playtube-app/playtube/internal/domain/entity"
	usecasecontract "github.com/playtube-app/playtube/internal/usecase/contract"
)

// ErrTargetNotFound is returned when a reaction target does not resolve to an
// existing entity.
var ErrTargetNotFound = errors.New("target not found")

// ErrInvalidTarget is returned for structurally invalid requests: missing id,
// unknown target kind, unknown polarity.
var ErrInvalidTarget = errors.New("invalid target")

// ErrUnsupportedPolarity is returned when a dislike is requested on a
// like-only target kind (comments and tweets).
var ErrUnsupportedPolarity = errors.New("dislike is not supported for this target kind")

// ErrToggleContention is returned when a toggle lost a storage race twice in
// a row. The whole request can safely be retried by the caller.
var ErrToggleContention = errors.New("reaction is being modified concurrently, try again")

// TargetResolver validates that a reaction target exists before the toggle
// engine is allowed to touch storage. Side-effect free.
type TargetResolver struct {
	videos   contract.IVideoRepository
	comments contract.ICommentRepository
	tweets   contract.ITweetRepository
}

// NewTargetResolver creates a resolver over the three reaction target stores.
func NewTargetResolver(videos contract.IVideoRepository, comments contract.ICommentRepository, tweets contract.ITweetRepository) *TargetResolver {
	return &TargetResolver{videos: videos, comments: comments, tweets: tweets}
}

// Resolve fails with ErrTargetNotFound when the id does not resolve, and
// ErrInvalidTarget when the request is malformed. Callers must not proceed to
// the toggle engine on failure.
func (r *TargetResolver) Resolve(ctx context.Context, kind entity.TargetKind, targetID string) error {
	if targetID == "" {
		return ErrInvalidTarget
	}
	var err error
	switch kind {
	case entity.TargetKindVideo:
		_, err = r.videos.GetByID(ctx, targetID)
		if errors.Is(err, contract.ErrVideoNotFound) {
			return ErrTargetNotFound
		}
	case entity.TargetKindComment:
		_, err = r.comments.GetByID(ctx, targetID)
		if errors.Is(err, contract.ErrCommentNotFound) {
			return ErrTargetNotFound
		}
	case entity.TargetKindTweet:
		_, err = r.tweets.GetByID(ctx, targetID)
		if errors.Is(err, contract.ErrTweetNotFound) {
			return ErrTargetNotFound
		}
	default:
		return ErrInvalidTarget
	}
	if err != nil {
		return fmt.Errorf("failed to resolve %s target: %w", kind, err)
	}
	return nil
}

// EngagementUsecase is the toggle engine. For each
// (actor, targetKind, targetId) tuple it runs the three-state machine
// {absent, liked, disliked}: requesting the polarity already held removes the
// reaction, requesting the opposite flips it in place, and requesting against
// an absent state creates it. The reaction store enforces tuple uniqueness;
// this engine only recovers from the conflicts the store reports.
type EngagementUsecase struct {
	reactions contract.IReactionRepository
	resolver  *TargetResolver
	ids       contract.IUUIDGenerator
	logger    usecasecontract.IAppLogger
}

// NewEngagementUsecase creates and returns a new EngagementUsecase instance.
func NewEngagementUsecase(reactions contract.IReactionRepository, resolver *TargetResolver, ids contract.IUUIDGenerator, logger usecasecontract.IAppLogger) *EngagementUsecase {
	return &EngagementUsecase{
		reactions: reactions,
		resolver:  resolver,
		ids:       ids,
		logger:    logger,
	}
}

var _ usecasecontract.IEngagementUseCase = (*EngagementUsecase)(nil)

// ApplyReaction validates the request, resolves the target, and applies one
// toggle transition. When the store reports a write conflict the read-decide-
// write sequence is re-run once against fresh state; a second conflict
// surfaces as ErrToggleContention.
func (u *EngagementUsecase) ApplyReaction(ctx context.Context, actorID string, kind entity.TargetKind, targetID string, polarity entity.Polarity) (*entity.ReactionOutcome, error) {
	if !kind.Valid() || !polarity.Valid() {
		return nil, ErrInvalidTarget
	}
	if !kind.SupportsPolarity(polarity) {
		return nil, ErrUnsupportedPolarity
	}
	if err := u.resolver.Resolve(ctx, kind, targetID); err != nil {
		return nil, err
	}

	outcome, err := u.applyOnce(ctx, actorID, kind, targetID, polarity)
	if errors.Is(err, contract.ErrReactionConflict) {
		u.logger.Warnf("reaction toggle conflict for actor %s on %s %s, retrying", actorID, kind, targetID)
		outcome, err = u.applyOnce(ctx, actorID, kind, targetID, polarity)
		if errors.Is(err, contract.ErrReactionConflict) {
			return nil, ErrToggleContention
		}
	}
	return outcome, err
}

// applyOnce runs one read-decide-write pass of the state machine.
func (u *EngagementUsecase) applyOnce(ctx context.Context, actorID string, kind entity.TargetKind, targetID string, polarity entity.Polarity) (*entity.ReactionOutcome, error) {
	current, err := u.reactions.GetByActorAndTarget(ctx, actorID, kind, targetID)
	if err != nil && !errors.Is(err, contract.ErrReactionNotFound) {
		return nil, fmt.Errorf("failed to read current reaction: %w", err)
	}

	if current == nil {
		created := &entity.Reaction{
			ID:         u.ids.NewUUID(),
			ActorID:    actorID,
			TargetKind: kind,
			TargetID:   targetID,
			Polarity:   polarity,
		}
		if err := u.reactions.Create(ctx, created); err != nil {
			if errors.Is(err, contract.ErrReactionConflict) {
				return nil, err
			}
			return nil, fmt.Errorf("failed to create reaction: %w", err)
		}
		return &entity.ReactionOutcome{State: polarity.State(), Reaction: created}, nil
	}

	if current.Polarity == polarity {
		// Same polarity requested again: undo.
		if err := u.reactions.Delete(ctx, current.ID, current.Polarity); err != nil {
			if errors.Is(err, contract.ErrReactionConflict) {
				return nil, err
			}
			return nil, fmt.Errorf("failed to remove reaction: %w", err)
		}
		return &entity.ReactionOutcome{State: entity.ReactionStateAbsent}, nil
	}

	// Opposite polarity requested: flip in place, no delete+create round trip.
	updated, err := u.reactions.UpdatePolarity(ctx, current.ID, current.Polarity, polarity)
	if err != nil {
		if errors.Is(err, contract.ErrReactionConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to flip reaction polarity: %w", err)
	}
	return &entity.ReactionOutcome{State: polarity.State(), Reaction: updated}, nil
}
