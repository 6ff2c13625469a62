package usecasecontract

import (
	"context"

	"github.com/playtube-app/playtube/internal/domain/entity"
)

// IEngagementUseCase is the toggle engine: it decides, from the current
// reaction state and the requested polarity, the next state and the storage
// operation, and recovers once from storage-level write conflicts.
type IEngagementUseCase interface {
	ApplyReaction(ctx context.Context, actorID string, kind entity.TargetKind, targetID string, polarity entity.Polarity) (*entity.ReactionOutcome, error)
}

// IEngagementQueryUseCase is the read side of engagement: joins between
// reactions and the entities they point at. Every method tolerates zero
// matching rows by returning an empty slice.
type IEngagementQueryUseCase interface {
	VideosReactedBy(ctx context.Context, actorID string, polarity entity.Polarity) ([]entity.VideoSummary, error)
	ReactionCount(ctx context.Context, kind entity.TargetKind, targetID string, polarity entity.Polarity) (int64, error)
	ReactingActors(ctx context.Context, kind entity.TargetKind, targetID string, polarity entity.Polarity) ([]entity.OwnerSummary, error)
}
