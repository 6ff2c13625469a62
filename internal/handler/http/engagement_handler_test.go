package http_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/playtube-app/playtube/internal/domain/entity"
	handler "github.com/playtube-app/playtube/internal/handler/http"
	mocks "github.com/playtube-app/playtube/internal/handler/http/mocks"
	"github.com/playtube-app/playtube/internal/infrastructure/metrics"
	"github.com/playtube-app/playtube/internal/usecase"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func authAs(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

func setupEngagementRouter(h *handler.EngagementHandler, authed bool) *gin.Engine {
	r := gin.New()
	g := r.Group("/")
	if authed {
		g.Use(authAs("actor-1"))
	}
	g.POST("/toggle/video/:id", h.ToggleVideoLike)
	g.POST("/toggle/video/:id/dislike", h.ToggleVideoDislike)
	g.POST("/toggle/comment/:id", h.ToggleCommentLike)
	g.POST("/toggle/tweet/:id", h.ToggleTweetLike)
	g.GET("/engagement/liked-videos", h.LikedVideos)
	g.GET("/engagement/video/:id/likes", h.VideoLikeCount)
	return r
}

func TestToggleVideoLike(t *testing.T) {
	mockUsecase := mocks.NewMockEngagementUsecase()
	h := handler.NewEngagementHandler(mockUsecase, mockUsecase)
	r := setupEngagementRouter(h, true)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/toggle/video/video-1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Reaction recorded")
	assert.Equal(t, "actor-1", mockUsecase.LastActorID)
	assert.Equal(t, entity.TargetKindVideo, mockUsecase.LastKind)
	assert.Equal(t, "video-1", mockUsecase.LastTargetID)
	assert.Equal(t, entity.PolarityLike, mockUsecase.LastPolarity)
}

func TestToggleVideoDislike(t *testing.T) {
	mockUsecase := mocks.NewMockEngagementUsecase()
	mockUsecase.MockOutcome = entity.ReactionOutcome{State: entity.ReactionStateDisliked}
	h := handler.NewEngagementHandler(mockUsecase, mockUsecase)
	r := setupEngagementRouter(h, true)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/toggle/video/video-1/dislike", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, entity.PolarityDislike, mockUsecase.LastPolarity)
	assert.Contains(t, w.Body.String(), "disliked")
}

func TestToggleVideoLike_RemovedOutcome(t *testing.T) {
	mockUsecase := mocks.NewMockEngagementUsecase()
	mockUsecase.MockOutcome = entity.ReactionOutcome{State: entity.ReactionStateAbsent}
	h := handler.NewEngagementHandler(mockUsecase, mockUsecase)
	r := setupEngagementRouter(h, true)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/toggle/video/video-1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Reaction removed")
}

func TestToggleVideoLike_Unauthenticated(t *testing.T) {
	mockUsecase := mocks.NewMockEngagementUsecase()
	h := handler.NewEngagementHandler(mockUsecase, mockUsecase)
	r := setupEngagementRouter(h, false)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/toggle/video/video-1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestToggleCommentLike_UnsupportedPolarity(t *testing.T) {
	mockUsecase := mocks.NewMockEngagementUsecase()
	mockUsecase.FailWith = usecase.ErrUnsupportedPolarity
	h := handler.NewEngagementHandler(mockUsecase, mockUsecase)
	r := setupEngagementRouter(h, true)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/toggle/comment/comment-1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestToggleTweetLike_TargetNotFound(t *testing.T) {
	mockUsecase := mocks.NewMockEngagementUsecase()
	mockUsecase.FailWith = usecase.ErrTargetNotFound
	h := handler.NewEngagementHandler(mockUsecase, mockUsecase)
	r := setupEngagementRouter(h, true)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/toggle/tweet/ghost", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestToggleVideoLike_Contention(t *testing.T) {
	mockUsecase := mocks.NewMockEngagementUsecase()
	mockUsecase.FailWith = usecase.ErrToggleContention
	h := handler.NewEngagementHandler(mockUsecase, mockUsecase)
	r := setupEngagementRouter(h, true)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/toggle/video/video-1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestToggleVideoLike_ContentionIncrementsMetric(t *testing.T) {
	mockUsecase := mocks.NewMockEngagementUsecase()
	mockUsecase.FailWith = usecase.ErrToggleContention
	h := handler.NewEngagementHandler(mockUsecase, mockUsecase)
	r := setupEngagementRouter(h, true)

	before := testutil.ToFloat64(metrics.ToggleContentionTotal)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/toggle/video/video-1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.ToggleContentionTotal))
}

func TestToggleVideoLike_StorageErrorNotExposed(t *testing.T) {
	mockUsecase := mocks.NewMockEngagementUsecase()
	mockUsecase.FailWith = fmt.Errorf("failed to read current reaction: %w",
		errors.New("connection(db-shard-0:27017) socket was unexpectedly closed"))
	h := handler.NewEngagementHandler(mockUsecase, mockUsecase)
	r := setupEngagementRouter(h, true)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/toggle/video/video-1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
	assert.NotContains(t, w.Body.String(), "connection")
	assert.NotContains(t, w.Body.String(), "27017")
	assert.NotContains(t, w.Body.String(), "failed to read current reaction")
}

func TestLikedVideos(t *testing.T) {
	mockUsecase := mocks.NewMockEngagementUsecase()
	h := handler.NewEngagementHandler(mockUsecase, mockUsecase)
	r := setupEngagementRouter(h, true)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/engagement/liked-videos", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mock-video-id")
}

func TestVideoLikeCount(t *testing.T) {
	mockUsecase := mocks.NewMockEngagementUsecase()
	h := handler.NewEngagementHandler(mockUsecase, mockUsecase)
	r := setupEngagementRouter(h, true)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/engagement/video/video-1/likes", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":7`)
}
