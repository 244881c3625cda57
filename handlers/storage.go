package handlers

import (
	"net/http"

	"nafis/services/storage"
	"nafis/utils"

	"github.com/gin-gonic/gin"
)

// maxAttachmentSize caps uploads at 10 MB.
const maxAttachmentSize = 10 << 20

// UploadAttachmentHandler stores a client file and returns the attachment
// reference to put on the booking draft.
func UploadAttachmentHandler(svc storage.StorageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if svc == nil {
			utils.JSONError(c, http.StatusServiceUnavailable, "Uploads disabled", "attachment storage is not configured")
			return
		}

		header, err := c.FormFile("file")
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid upload", "multipart field 'file' is required")
			return
		}
		if header.Size > maxAttachmentSize {
			utils.JSONError(c, http.StatusRequestEntityTooLarge, "File too large", "attachments are limited to 10 MB")
			return
		}

		file, err := header.Open()
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Failed to read upload", err.Error())
			return
		}
		defer file.Close()

		attachment, err := svc.UploadAttachment(c.Request.Context(), file, header.Filename, header.Size)
		if err != nil {
			utils.JSONError(c, http.StatusBadGateway, "Upload failed", err.Error())
			return
		}
		c.JSON(http.StatusCreated, attachment)
	}
}

// DeleteAttachmentHandler removes an uploaded file by its public ID.
func DeleteAttachmentHandler(svc storage.StorageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if svc == nil {
			utils.JSONError(c, http.StatusServiceUnavailable, "Uploads disabled", "attachment storage is not configured")
			return
		}
		if err := svc.DeleteAttachment(c.Request.Context(), c.Param("publicID")); err != nil {
			utils.JSONError(c, http.StatusBadGateway, "Delete failed", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "attachment deleted"})
	}
}
