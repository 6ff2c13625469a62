package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/playtube-app/playtube/internal/handler/http/dto"
	usecasecontract "github.com/playtube-app/playtube/internal/usecase/contract"
)

// CommentHandler exposes comment CRUD scoped to a video.
type CommentHandler struct {
	comments usecasecontract.ICommentUseCase
}

func NewCommentHandler(comments usecasecontract.ICommentUseCase) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// Add posts a comment on a video.
func (h *CommentHandler) Add(c *gin.Context) {
	userID, ok := AuthenticatedUser(c)
	if !ok {
		return
	}
	var req dto.ContentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	comment, err := h.comments.Add(c.Request.Context(), c.Param("id"), userID, req.Content)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, comment, "Comment added successfully")
}

// ListByVideo returns a video's comments, newest first, paginated.
func (h *CommentHandler) ListByVideo(c *gin.Context) {
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)

	comments, err := h.comments.ListByVideo(c.Request.Context(), c.Param("id"), page, limit)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, comments, "Comments fetched")
}

// Update edits a comment owned by the caller.
func (h *CommentHandler) Update(c *gin.Context) {
	userID, ok := AuthenticatedUser(c)
	if !ok {
		return
	}
	var req dto.ContentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	comment, err := h.comments.Update(c.Request.Context(), c.Param("id"), userID, req.Content)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, comment, "Comment updated successfully")
}

// Delete removes a comment owned by the caller.
func (h *CommentHandler) Delete(c *gin.Context) {
	userID, ok := AuthenticatedUser(c)
	if !ok {
		return
	}
	if err := h.comments.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		HandleUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, nil, "Comment deleted successfully")
}
