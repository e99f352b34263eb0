package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/odacaict/domee.ro/services/storage"
	"github.com/odacaict/domee.ro/utils"
)

// StorageHandler exposes salon gallery and avatar uploads.
type StorageHandler struct {
	Svc storage.StorageService
}

// UploadImage accepts a multipart image and returns its public ID and URL.
// The folder form field selects gallery, logo or avatar placement.
func (h *StorageHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing image file"})
		return
	}

	folder := storage.FolderGallery
	switch c.PostForm("folder") {
	case "logo":
		folder = storage.FolderLogos
	case "avatar":
		folder = storage.FolderAvatars
	}

	tmpPath := filepath.Join(os.TempDir(), filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to stage upload"})
		return
	}
	defer os.Remove(tmpPath)

	publicID, err := h.Svc.UploadImage(c.Request.Context(), tmpPath, folder)
	if err != nil {
		utils.GetLogger().Error("image upload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
		return
	}

	url, err := h.Svc.GetImageURL(publicID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload stored but URL resolution failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"public_id": publicID, "url": url})
}

func (h *StorageHandler) DeleteImage(c *gin.Context) {
	publicID := c.Query("public_id")
	if publicID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "public_id is required"})
		return
	}

	if err := h.Svc.DeleteImage(c.Request.Context(), publicID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete image"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Image deleted"})
}
