package http

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/playtube-app/playtube/internal/domain/contract"
	"github.com/playtube-app/playtube/internal/handler/http/dto"
	usecasecontract "github.com/playtube-app/playtube/internal/usecase/contract"
)

// VideoHandler exposes video publishing and the read/update/delete
// endpoints around it.
type VideoHandler struct {
	videos usecasecontract.IVideoUseCase
}

func NewVideoHandler(videos usecasecontract.IVideoUseCase) *VideoHandler {
	return &VideoHandler{videos: videos}
}

func openFormFile(c *gin.Context, field string) (multipart.File, *multipart.FileHeader, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, nil, err
	}
	f, err := header.Open()
	if err != nil {
		return nil, nil, err
	}
	return f, header, nil
}

// Publish accepts a multipart upload with videoFile and thumbnail parts plus
// title/description/duration form fields.
func (h *VideoHandler) Publish(c *gin.Context) {
	userID, ok := AuthenticatedUser(c)
	if !ok {
		return
	}

	title := c.PostForm("title")
	description := c.PostForm("description")
	duration, _ := strconv.ParseFloat(c.PostForm("duration"), 64)

	videoFile, videoHeader, err := openFormFile(c, "videoFile")
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, "videoFile is required")
		return
	}
	defer videoFile.Close()

	thumbFile, thumbHeader, err := openFormFile(c, "thumbnail")
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, "thumbnail is required")
		return
	}
	defer thumbFile.Close()

	upload := &usecasecontract.VideoUpload{
		File:          videoFile,
		FileSize:      videoHeader.Size,
		FileType:      videoHeader.Header.Get("Content-Type"),
		Thumbnail:     thumbFile,
		ThumbnailSize: thumbHeader.Size,
		ThumbnailType: thumbHeader.Header.Get("Content-Type"),
		Duration:      duration,
	}

	video, err := h.videos.Publish(c.Request.Context(), userID, title, description, upload)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, video, "Video published successfully")
}

// Get returns one video joined to its owner. Public; authenticated viewers
// are counted once toward the view total.
func (h *VideoHandler) Get(c *gin.Context) {
	detail, err := h.videos.GetByID(c.Request.Context(), c.Param("id"), RequesterID(c))
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, detail, "Video fetched")
}

// List returns published videos with search, sort and pagination controls.
func (h *VideoHandler) List(c *gin.Context) {
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)

	opts := &contract.VideoFilterOptions{
		Query:     c.Query("query"),
		OwnerID:   c.Query("userId"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortType"),
		Page:      page,
		Limit:     limit,
	}

	videos, err := h.videos.List(c.Request.Context(), opts)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, videos, "Videos fetched")
}

// Update edits a video's title, description and optionally its thumbnail.
func (h *VideoHandler) Update(c *gin.Context) {
	userID, ok := AuthenticatedUser(c)
	if !ok {
		return
	}

	title := c.PostForm("title")
	description := c.PostForm("description")

	var upload *usecasecontract.VideoUpload
	if thumbFile, thumbHeader, err := openFormFile(c, "thumbnail"); err == nil {
		defer thumbFile.Close()
		upload = &usecasecontract.VideoUpload{
			Thumbnail:     thumbFile,
			ThumbnailSize: thumbHeader.Size,
			ThumbnailType: thumbHeader.Header.Get("Content-Type"),
		}
	}

	video, err := h.videos.Update(c.Request.Context(), c.Param("id"), userID, title, description, upload)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, video, "Video updated successfully")
}

// Delete removes a video owned by the caller.
func (h *VideoHandler) Delete(c *gin.Context) {
	userID, ok := AuthenticatedUser(c)
	if !ok {
		return
	}
	if err := h.videos.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		HandleUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, nil, "Video deleted successfully")
}

// TogglePublishStatus flips or sets a video's visibility.
func (h *VideoHandler) TogglePublishStatus(c *gin.Context) {
	userID, ok := AuthenticatedUser(c)
	if !ok {
		return
	}
	var req dto.PublishStatusRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	video, err := h.videos.SetPublishStatus(c.Request.Context(), c.Param("id"), userID, *req.IsPublished)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, video, "Publish status updated")
}
