package handlers

import (
	"io"

	"inkpress/helper"
	"inkpress/storage"

	"github.com/gin-gonic/gin"
)

// 10 MiB upload cap for cover images.
const maxCoverSize = 10 << 20

type UploadHandler struct {
	covers *storage.CoverStore
}

func NewUploadHandler(covers *storage.CoverStore) *UploadHandler {
	return &UploadHandler{covers: covers}
}

// UploadCover stores a cover image and returns its URL. The URL is later
// passed back verbatim in the article submission.
func (h *UploadHandler) UploadCover(c *gin.Context) {
	fileHeader, err := c.FormFile("cover")
	if err != nil {
		helper.SendBadRequest(c, "cover file required")
		return
	}
	if fileHeader.Size > maxCoverSize {
		helper.SendBadRequest(c, "cover file too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		helper.SendBadRequest(c, err.Error())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		helper.SendBadRequest(c, err.Error())
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := h.covers.Upload(c.Request.Context(), fileHeader.Filename, contentType, data)
	if err != nil {
		helper.SendDomainError(c, err)
		return
	}

	helper.SendCreated(c, "Cover uploaded", gin.H{"url": url})
}
