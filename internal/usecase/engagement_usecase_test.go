package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/playtube-app/playtube/internal/domain/contract"
	"github.com/playtube-app/playtube/internal/domain/entity"
	"github.com/playtube-app/playtube/internal/usecase"
)

// nopLogger satisfies IAppLogger without output.
type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...interface{}) {}
func (nopLogger) Infof(format string, args ...interface{})  {}
func (nopLogger) Warnf(format string, args ...interface{})  {}
func (nopLogger) Errorf(format string, args ...interface{}) {}
func (nopLogger) Fatalf(format string, args ...interface{}) {}

// seqIDs hands out deterministic ids.
type seqIDs struct{ n int }

func (g *seqIDs) NewUUID() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

// fakeReactionRepo is an in-memory IReactionRepository. ConflictsLeft makes
// the next N writes fail with ErrReactionConflict, mimicking lost races.
type fakeReactionRepo struct {
	byTuple       map[string]*entity.Reaction
	ConflictsLeft int
}

func newFakeReactionRepo() *fakeReactionRepo {
	return &fakeReactionRepo{byTuple: make(map[string]*entity.Reaction)}
}

func tupleKey(actorID string, kind entity.TargetKind, targetID string) string {
	return actorID + "|" + string(kind) + "|" + targetID
}

func (f *fakeReactionRepo) conflict() bool {
	if f.ConflictsLeft > 0 {
		f.ConflictsLeft--
		return true
	}
	return false
}

func (f *fakeReactionRepo) GetByActorAndTarget(_ context.Context, actorID string, kind entity.TargetKind, targetID string) (*entity.Reaction, error) {
	if r, ok := f.byTuple[tupleKey(actorID, kind, targetID)]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, contract.ErrReactionNotFound
}

func (f *fakeReactionRepo) Create(_ context.Context, reaction *entity.Reaction) error {
	if f.conflict() {
		return contract.ErrReactionConflict
	}
	key := tupleKey(reaction.ActorID, reaction.TargetKind, reaction.TargetID)
	if _, ok := f.byTuple[key]; ok {
		return contract.ErrReactionConflict
	}
	cp := *reaction
	f.byTuple[key] = &cp
	return nil
}

func (f *fakeReactionRepo) UpdatePolarity(_ context.Context, reactionID string, from, to entity.Polarity) (*entity.Reaction, error) {
	if f.conflict() {
		return nil, contract.ErrReactionConflict
	}
	for _, r := range f.byTuple {
		if r.ID == reactionID {
			if r.Polarity != from {
				return nil, contract.ErrReactionConflict
			}
			r.Polarity = to
			cp := *r
			return &cp, nil
		}
	}
	return nil, contract.ErrReactionConflict
}

func (f *fakeReactionRepo) Delete(_ context.Context, reactionID string, polarity entity.Polarity) error {
	if f.conflict() {
		return contract.ErrReactionConflict
	}
	for key, r := range f.byTuple {
		if r.ID == reactionID && r.Polarity == polarity {
			delete(f.byTuple, key)
			return nil
		}
	}
	return contract.ErrReactionConflict
}

func (f *fakeReactionRepo) CountByTarget(_ context.Context, kind entity.TargetKind, targetID string, polarity entity.Polarity) (int64, error) {
	var n int64
	for _, r := range f.byTuple {
		if r.TargetKind == kind && r.TargetID == targetID && r.Polarity == polarity {
			n++
		}
	}
	return n, nil
}

func (f *fakeReactionRepo) ActorsByTarget(_ context.Context, kind entity.TargetKind, targetID string, polarity entity.Polarity) ([]entity.OwnerSummary, error) {
	var actors []entity.OwnerSummary
	for _, r := range f.byTuple {
		if r.TargetKind == kind && r.TargetID == targetID && r.Polarity == polarity {
			actors = append(actors, entity.OwnerSummary{ID: r.ActorID})
		}
	}
	return actors, nil
}

func (f *fakeReactionRepo) VideosReactedBy(_ context.Context, actorID string, polarity entity.Polarity) ([]entity.VideoSummary, error) {
	var videos []entity.VideoSummary
	for _, r := range f.byTuple {
		if r.ActorID == actorID && r.TargetKind == entity.TargetKindVideo && r.Polarity == polarity {
			videos = append(videos, entity.VideoSummary{ID: r.TargetID})
		}
	}
	return videos, nil
}

// fakeVideoRepo resolves a fixed set of video ids.
type fakeVideoRepo struct{ ids map[string]bool }

func (f *fakeVideoRepo) Create(_ context.Context, _ *entity.Video) error { return nil }
func (f *fakeVideoRepo) GetByID(_ context.Context, videoID string) (*entity.Video, error) {
	if f.ids[videoID] {
		return &entity.Video{ID: videoID}, nil
	}
	return nil, contract.ErrVideoNotFound
}
func (f *fakeVideoRepo) GetDetail(_ context.Context, _ string) (*entity.VideoDetail, error) {
	return nil, contract.ErrVideoNotFound
}
func (f *fakeVideoRepo) List(_ context.Context, _ *contract.VideoFilterOptions) ([]entity.VideoListItem, error) {
	return nil, nil
}
func (f *fakeVideoRepo) Update(_ context.Context, _ string, _ map[string]interface{}) error {
	return nil
}
func (f *fakeVideoRepo) Delete(_ context.Context, _ string) error        { return nil }
func (f *fakeVideoRepo) RecordView(_ context.Context, _, _ string) error { return nil }

// fakeCommentRepo resolves a fixed set of comment ids.
type fakeCommentRepo struct{ ids map[string]bool }

func (f *fakeCommentRepo) Create(_ context.Context, _ *entity.Comment) error { return nil }
func (f *fakeCommentRepo) GetByID(_ context.Context, commentID string) (*entity.Comment, error) {
	if f.ids[commentID] {
		return &entity.Comment{ID: commentID}, nil
	}
	return nil, contract.ErrCommentNotFound
}
func (f *fakeCommentRepo) ListByVideo(_ context.Context, _ string, _, _ int64) ([]entity.CommentWithOwner, error) {
	return nil, nil
}
func (f *fakeCommentRepo) UpdateContent(_ context.Context, _, _ string) (*entity.Comment, error) {
	return nil, contract.ErrCommentNotFound
}
func (f *fakeCommentRepo) Delete(_ context.Context, _ string) error { return nil }

// fakeTweetRepo resolves a fixed set of tweet ids.
type fakeTweetRepo struct{ ids map[string]bool }

func (f *fakeTweetRepo) Create(_ context.Context, _ *entity.Tweet) error { return nil }
func (f *fakeTweetRepo) GetByID(_ context.Context, tweetID string) (*entity.Tweet, error) {
	if f.ids[tweetID] {
		return &entity.Tweet{ID: tweetID}, nil
	}
	return nil, contract.ErrTweetNotFound
}
func (f *fakeTweetRepo) ListByOwner(_ context.Context, _ string) ([]entity.TweetWithOwner, error) {
	return nil, nil
}
func (f *fakeTweetRepo) UpdateContent(_ context.Context, _, _ string) (*entity.Tweet, error) {
	return nil, contract.ErrTweetNotFound
}
func (f *fakeTweetRepo) Delete(_ context.Context, _ string) error { return nil }

func newEngagementFixture() (*usecase.EngagementUsecase, *fakeReactionRepo) {
	reactions := newFakeReactionRepo()
	resolver := usecase.NewTargetResolver(
		&fakeVideoRepo{ids: map[string]bool{"video-1": true}},
		&fakeCommentRepo{ids: map[string]bool{"comment-1": true}},
		&fakeTweetRepo{ids: map[string]bool{"tweet-1": true}},
	)
	engine := usecase.NewEngagementUsecase(reactions, resolver, &seqIDs{}, nopLogger{})
	return engine, reactions
}

func TestApplyReaction_CreatesLike(t *testing.T) {
	engine, reactions := newEngagementFixture()

	outcome, err := engine.ApplyReaction(context.Background(), "actor-1", entity.TargetKindVideo, "video-1", entity.PolarityLike)

	assert.NoError(t, err)
	assert.Equal(t, entity.ReactionStateLiked, outcome.State)
	assert.NotNil(t, outcome.Reaction)
	assert.Len(t, reactions.byTuple, 1)
}

func TestApplyReaction_SamePolarityUndoes(t *testing.T) {
	engine, reactions := newEngagementFixture()
	ctx := context.Background()

	_, err := engine.ApplyReaction(ctx, "actor-1", entity.TargetKindVideo, "video-1", entity.PolarityLike)
	assert.NoError(t, err)

	outcome, err := engine.ApplyReaction(ctx, "actor-1", entity.TargetKindVideo, "video-1", entity.PolarityLike)
	assert.NoError(t, err)
	assert.Equal(t, entity.ReactionStateAbsent, outcome.State)
	assert.Nil(t, outcome.Reaction)
	assert.Empty(t, reactions.byTuple)
}

func TestApplyReaction_OppositePolarityFlipsInPlace(t *testing.T) {
	engine, reactions := newEngagementFixture()
	ctx := context.Background()

	first, err := engine.ApplyReaction(ctx, "actor-1", entity.TargetKindVideo, "video-1", entity.PolarityLike)
	assert.NoError(t, err)

	second, err := engine.ApplyReaction(ctx, "actor-1", entity.TargetKindVideo, "video-1", entity.PolarityDislike)
	assert.NoError(t, err)
	assert.Equal(t, entity.ReactionStateDisliked, second.State)
	// Flip keeps the same stored row rather than deleting and recreating.
	assert.Equal(t, first.Reaction.ID, second.Reaction.ID)
	assert.Len(t, reactions.byTuple, 1)
}

func TestApplyReaction_ToggleCycleReturnsToAbsent(t *testing.T) {
	engine, _ := newEngagementFixture()
	ctx := context.Background()

	states := []entity.ReactionState{}
	for _, p := range []entity.Polarity{entity.PolarityLike, entity.PolarityDislike, entity.PolarityDislike} {
		outcome, err := engine.ApplyReaction(ctx, "actor-1", entity.TargetKindVideo, "video-1", p)
		assert.NoError(t, err)
		states = append(states, outcome.State)
	}
	assert.Equal(t, []entity.ReactionState{
		entity.ReactionStateLiked,
		entity.ReactionStateDisliked,
		entity.ReactionStateAbsent,
	}, states)
}

func TestApplyReaction_DislikeRejectedForLikeOnlyKinds(t *testing.T) {
	engine, _ := newEngagementFixture()
	ctx := context.Background()

	_, err := engine.ApplyReaction(ctx, "actor-1", entity.TargetKindComment, "comment-1", entity.PolarityDislike)
	assert.ErrorIs(t, err, usecase.ErrUnsupportedPolarity)

	_, err = engine.ApplyReaction(ctx, "actor-1", entity.TargetKindTweet, "tweet-1", entity.PolarityDislike)
	assert.ErrorIs(t, err, usecase.ErrUnsupportedPolarity)

	// Likes on the same kinds still work.
	outcome, err := engine.ApplyReaction(ctx, "actor-1", entity.TargetKindComment, "comment-1", entity.PolarityLike)
	assert.NoError(t, err)
	assert.Equal(t, entity.ReactionStateLiked, outcome.State)
}

func TestApplyReaction_InvalidRequests(t *testing.T) {
	engine, _ := newEngagementFixture()
	ctx := context.Background()

	_, err := engine.ApplyReaction(ctx, "actor-1", entity.TargetKind("playlist"), "x", entity.PolarityLike)
	assert.ErrorIs(t, err, usecase.ErrInvalidTarget)

	_, err = engine.ApplyReaction(ctx, "actor-1", entity.TargetKindVideo, "", entity.PolarityLike)
	assert.ErrorIs(t, err, usecase.ErrInvalidTarget)

	_, err = engine.ApplyReaction(ctx, "actor-1", entity.TargetKindVideo, "video-1", entity.Polarity("meh"))
	assert.ErrorIs(t, err, usecase.ErrInvalidTarget)
}

func TestApplyReaction_MissingTarget(t *testing.T) {
	engine, reactions := newEngagementFixture()

	_, err := engine.ApplyReaction(context.Background(), "actor-1", entity.TargetKindVideo, "no-such-video", entity.PolarityLike)
	assert.ErrorIs(t, err, usecase.ErrTargetNotFound)
	assert.Empty(t, reactions.byTuple)
}

func TestApplyReaction_RetriesOnceAfterConflict(t *testing.T) {
	engine, reactions := newEngagementFixture()
	reactions.ConflictsLeft = 1

	outcome, err := engine.ApplyReaction(context.Background(), "actor-1", entity.TargetKindVideo, "video-1", entity.PolarityLike)
	assert.NoError(t, err)
	assert.Equal(t, entity.ReactionStateLiked, outcome.State)
}

func TestApplyReaction_ContentionAfterSecondConflict(t *testing.T) {
	engine, reactions := newEngagementFixture()
	reactions.ConflictsLeft = 2

	_, err := engine.ApplyReaction(context.Background(), "actor-1", entity.TargetKindVideo, "video-1", entity.PolarityLike)
	assert.ErrorIs(t, err, usecase.ErrToggleContention)
}

func TestApplyReaction_TuplesAreIndependent(t *testing.T) {
	engine, reactions := newEngagementFixture()
	ctx := context.Background()

	_, err := engine.ApplyReaction(ctx, "actor-1", entity.TargetKindVideo, "video-1", entity.PolarityLike)
	assert.NoError(t, err)
	_, err = engine.ApplyReaction(ctx, "actor-2", entity.TargetKindVideo, "video-1", entity.PolarityDislike)
	assert.NoError(t, err)
	_, err = engine.ApplyReaction(ctx, "actor-1", entity.TargetKindComment, "comment-1", entity.PolarityLike)
	assert.NoError(t, err)

	assert.Len(t, reactions.byTuple, 3)

	likes, err := reactions.CountByTarget(ctx, entity.TargetKindVideo, "video-1", entity.PolarityLike)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), likes)
}
