package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/playtube-app/playtube/internal/domain/entity"
)

func TestTargetKindSupportsPolarity(t *testing.T) {
	assert.True(t, entity.TargetKindVideo.SupportsPolarity(entity.PolarityLike))
	assert.True(t, entity.TargetKindVideo.SupportsPolarity(entity.PolarityDislike))
	assert.True(t, entity.TargetKindComment.SupportsPolarity(entity.PolarityLike))
	assert.False(t, entity.TargetKindComment.SupportsPolarity(entity.PolarityDislike))
	assert.True(t, entity.TargetKindTweet.SupportsPolarity(entity.PolarityLike))
	assert.False(t, entity.TargetKindTweet.SupportsPolarity(entity.PolarityDislike))
}

func TestPolarityState(t *testing.T) {
	assert.Equal(t, entity.ReactionStateLiked, entity.PolarityLike.State())
	assert.Equal(t, entity.ReactionStateDisliked, entity.PolarityDislike.State())
}

func TestTargetKindValid(t *testing.T) {
	assert.True(t, entity.TargetKindVideo.Valid())
	assert.False(t, entity.TargetKind("playlist").Valid())
	assert.False(t, entity.Polarity("meh").Valid())
}
