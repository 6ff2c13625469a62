package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/playtube-app/playtube/internal/handler/http/dto"
	usecasecontract "github.com/playtube-app/playtube/internal/usecase/contract"
)

// PlaylistHandler exposes playlist CRUD and membership changes.
type PlaylistHandler struct {
	playlists usecasecontract.IPlaylistUseCase
}

func NewPlaylistHandler(playlists usecasecontract.IPlaylistUseCase) *PlaylistHandler {
	return &PlaylistHandler{playlists: playlists}
}

// Create makes a new, empty playlist for the caller.
func (h *PlaylistHandler) Create(c *gin.Context) {
	userID, ok := AuthenticatedUser(c)
	if !ok {
		return
	}
	var req dto.PlaylistRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	playlist, err := h.playlists.Create(c.Request.Context(), userID, req.Name, req.Description)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, playlist, "Playlist created successfully")
}

// Get returns one playlist.
func (h *PlaylistHandler) Get(c *gin.Context) {
	playlist, err := h.playlists.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, playlist, "Playlist fetched")
}

// ListByOwner returns a user's playlists.
func (h *PlaylistHandler) ListByOwner(c *gin.Context) {
	playlists, err := h.playlists.ListByOwner(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, playlists, "Playlists fetched")
}

// AddVideo puts a video in a playlist owned by the caller.
func (h *PlaylistHandler) AddVideo(c *gin.Context) {
	userID, ok := AuthenticatedUser(c)
	if !ok {
		return
	}
	playlist, err := h.playlists.AddVideo(c.Request.Context(), c.Param("id"), c.Param("videoId"), userID)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, playlist, "Video added to playlist")
}

// RemoveVideo takes a video out of a playlist owned by the caller.
func (h *PlaylistHandler) RemoveVideo(c *gin.Context) {
	userID, ok := AuthenticatedUser(c)
	if !ok {
		return
	}
	playlist, err := h.playlists.RemoveVideo(c.Request.Context(), c.Param("id"), c.Param("videoId"), userID)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, playlist, "Video removed from playlist")
}

// Update edits a playlist's name and description.
func (h *PlaylistHandler) Update(c *gin.Context) {
	userID, ok := AuthenticatedUser(c)
	if !ok {
		return
	}
	var req dto.PlaylistRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	playlist, err := h.playlists.Update(c.Request.Context(), c.Param("id"), userID, req.Name, req.Description)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, playlist, "Playlist updated successfully")
}

// Delete removes a playlist owned by the caller.
func (h *PlaylistHandler) Delete(c *gin.Context) {
	userID, ok := AuthenticatedUser(c)
	if !ok {
		return
	}
	if err := h.playlists.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		HandleUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, nil, "Playlist deleted successfully")
}
