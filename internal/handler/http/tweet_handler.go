package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/playtube-app/playtube/internal/handler/http/dto"
	usecasecontract "github.com/playtube-app/playtube/internal/usecase/contract"
)

// TweetHandler exposes tweet CRUD.
type TweetHandler struct {
	tweets usecasecontract.ITweetUseCase
}

func NewTweetHandler(tweets usecasecontract.ITweetUseCase) *TweetHandler {
	return &TweetHandler{tweets: tweets}
}

// Create posts a tweet.
func (h *TweetHandler) Create(c *gin.Context) {
	userID, ok := AuthenticatedUser(c)
	if !ok {
		return
	}
	var req dto.ContentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	tweet, err := h.tweets.Create(c.Request.Context(), userID, req.Content)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, tweet, "Tweet created successfully")
}

// ListByOwner returns a user's tweets, newest first.
func (h *TweetHandler) ListByOwner(c *gin.Context) {
	tweets, err := h.tweets.ListByOwner(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, tweets, "Tweets fetched")
}

// Update edits a tweet owned by the caller.
func (h *TweetHandler) Update(c *gin.Context) {
	userID, ok := AuthenticatedUser(c)
	if !ok {
		return
	}
	var req dto.ContentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	tweet, err := h.tweets.Update(c.Request.Context(), c.Param("id"), userID, req.Content)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, tweet, "Tweet updated successfully")
}

// Delete removes a tweet owned by the caller.
func (h *TweetHandler) Delete(c *gin.Context) {
	userID, ok := AuthenticatedUser(c)
	if !ok {
		return
	}
	if err := h.tweets.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		HandleUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, nil, "Tweet deleted successfully")
}
