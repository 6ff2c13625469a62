package usecase

import (
	"context"
	"fmt"

	"github.com/playtube-app/playtube/internal/domain/contract"
	"github.com/playtube-app/playtube/internal/domain/entity"
	usecasecontract "github.com/playtube-app/playtube/internal/usecase/contract"
)

// EngagementQueryUsecase is the read side of engagement. It bypasses the
// toggle engine entirely: every method is a side-effect-free join between
// reactions and the entities they point at, and zero matching rows come back
// as an empty slice.
type EngagementQueryUsecase struct {
	reactions contract.IReactionRepository
}

// NewEngagementQueryUsecase creates and returns a new EngagementQueryUsecase
// instance.
func NewEngagementQueryUsecase(reactions contract.IReactionRepository) *EngagementQueryUsecase {
	return &EngagementQueryUsecase{reactions: reactions}
}

var _ usecasecontract.IEngagementQueryUseCase = (*EngagementQueryUsecase)(nil)

// VideosReactedBy lists the videos an actor liked or disliked, joined to
// title, thumbnail, view count, and owner username.
func (u *EngagementQueryUsecase) VideosReactedBy(ctx context.Context, actorID string, polarity entity.Polarity) ([]entity.VideoSummary, error) {
	if !polarity.Valid() {
		return nil, ErrInvalidTarget
	}
	videos, err := u.reactions.VideosReactedBy(ctx, actorID, polarity)
	if err != nil {
		return nil, fmt.Errorf("failed to list %sd videos of %s: %w", polarity, actorID, err)
	}
	if videos == nil {
		videos = []entity.VideoSummary{}
	}
	return videos, nil
}

// ReactionCount counts reactions of one polarity on one target.
func (u *EngagementQueryUsecase) ReactionCount(ctx context.Context, kind entity.TargetKind, targetID string, polarity entity.Polarity) (int64, error) {
	if !kind.Valid() || !polarity.Valid() || targetID == "" {
		return 0, ErrInvalidTarget
	}
	count, err := u.reactions.CountByTarget(ctx, kind, targetID, polarity)
	if err != nil {
		return 0, fmt.Errorf("failed to count %ss on %s %s: %w", polarity, kind, targetID, err)
	}
	return count, nil
}

// ReactingActors lists the users holding a reaction of one polarity on one
// target.
func (u *EngagementQueryUsecase) ReactingActors(ctx context.Context, kind entity.TargetKind, targetID string, polarity entity.Polarity) ([]entity.OwnerSummary, error) {
	if !kind.Valid() || !polarity.Valid() || targetID == "" {
		return nil, ErrInvalidTarget
	}
	actors, err := u.reactions.ActorsByTarget(ctx, kind, targetID, polarity)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s actors on %s %s: %w", polarity, kind, targetID, err)
	}
	if actors == nil {
		actors = []entity.OwnerSummary{}
	}
	return actors, nil
}
