package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/playtube-app/playtube/internal/domain/entity"
	"github.com/playtube-app/playtube/internal/infrastructure/metrics"
	"github.com/playtube-app/playtube/internal/usecase"
	usecasecontract "github.com/playtube-app/playtube/internal/usecase/contract"
)

// EngagementHandler exposes the reaction toggle and its read side.
type EngagementHandler struct {
	engagement usecasecontract.IEngagementUseCase
	queries    usecasecontract.IEngagementQueryUseCase
}

func NewEngagementHandler(engagement usecasecontract.IEngagementUseCase, queries usecasecontract.IEngagementQueryUseCase) *EngagementHandler {
	return &EngagementHandler{
		engagement: engagement,
		queries:    queries,
	}
}

func (h *EngagementHandler) toggle(c *gin.Context, kind entity.TargetKind, polarity entity.Polarity) {
	userID, ok := AuthenticatedUser(c)
	if !ok {
		return
	}
	targetID := c.Param("id")

	outcome, err := h.engagement.ApplyReaction(c.Request.Context(), userID, kind, targetID, polarity)
	if err != nil {
		if errors.Is(err, usecase.ErrToggleContention) {
			metrics.ToggleContentionTotal.Inc()
		}
		HandleUsecaseError(c, err)
		return
	}

	metrics.ToggleOutcomesTotal.WithLabelValues(string(kind), string(outcome.State)).Inc()

	message := "Reaction removed"
	if outcome.State != entity.ReactionStateAbsent {
		message = "Reaction recorded"
	}
	SuccessHandler(c, http.StatusOK, outcome, message)
}

// ToggleVideoLike flips the caller's like on a video.
func (h *EngagementHandler) ToggleVideoLike(c *gin.Context) {
	h.toggle(c, entity.TargetKindVideo, entity.PolarityLike)
}

// ToggleVideoDislike flips the caller's dislike on a video.
func (h *EngagementHandler) ToggleVideoDislike(c *gin.Context) {
	h.toggle(c, entity.TargetKindVideo, entity.PolarityDislike)
}

// ToggleCommentLike flips the caller's like on a comment.
func (h *EngagementHandler) ToggleCommentLike(c *gin.Context) {
	h.toggle(c, entity.TargetKindComment, entity.PolarityLike)
}

// ToggleTweetLike flips the caller's like on a tweet.
func (h *EngagementHandler) ToggleTweetLike(c *gin.Context) {
	h.toggle(c, entity.TargetKindTweet, entity.PolarityLike)
}

// LikedVideos returns the videos the caller has liked.
func (h *EngagementHandler) LikedVideos(c *gin.Context) {
	h.reactedVideos(c, entity.PolarityLike, "Liked videos fetched")
}

// DislikedVideos returns the videos the caller has disliked.
func (h *EngagementHandler) DislikedVideos(c *gin.Context) {
	h.reactedVideos(c, entity.PolarityDislike, "Disliked videos fetched")
}

func (h *EngagementHandler) reactedVideos(c *gin.Context, polarity entity.Polarity, message string) {
	userID, ok := AuthenticatedUser(c)
	if !ok {
		return
	}
	videos, err := h.queries.VideosReactedBy(c.Request.Context(), userID, polarity)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, videos, message)
}

// VideoLikeCount returns the number of likes on a video.
func (h *EngagementHandler) VideoLikeCount(c *gin.Context) {
	h.count(c, entity.TargetKindVideo, entity.PolarityLike)
}

// VideoDislikeCount returns the number of dislikes on a video.
func (h *EngagementHandler) VideoDislikeCount(c *gin.Context) {
	h.count(c, entity.TargetKindVideo, entity.PolarityDislike)
}

// CommentLikeCount returns the number of likes on a comment.
func (h *EngagementHandler) CommentLikeCount(c *gin.Context) {
	h.count(c, entity.TargetKindComment, entity.PolarityLike)
}

// TweetLikeCount returns the number of likes on a tweet.
func (h *EngagementHandler) TweetLikeCount(c *gin.Context) {
	h.count(c, entity.TargetKindTweet, entity.PolarityLike)
}

func (h *EngagementHandler) count(c *gin.Context, kind entity.TargetKind, polarity entity.Polarity) {
	count, err := h.queries.ReactionCount(c.Request.Context(), kind, c.Param("id"), polarity)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"count": count}, "Reaction count fetched")
}

// VideoLikers returns the users who liked a video.
func (h *EngagementHandler) VideoLikers(c *gin.Context) {
	actors, err := h.queries.ReactingActors(c.Request.Context(), entity.TargetKindVideo, c.Param("id"), entity.PolarityLike)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, actors, "Reacting users fetched")
}
