package handlers

import (
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"brandsap_careers/internal/middleware"
	"brandsap_careers/internal/storage"
	"brandsap_careers/pkg/apperrors"
)

// FileHandler streams stored blobs over HTTP. It backs the local storage
// mode, where there is no external object store to hand out URLs.
type FileHandler struct {
	*BaseHandler
	store storage.Storage
}

func NewFileHandler(base *BaseHandler, store storage.Storage) *FileHandler {
	return &FileHandler{
		BaseHandler: base,
		store:       store,
	}
}

func (h *FileHandler) RegisterRoutes(r *gin.RouterGroup) {
	files := r.Group("/files")
	files.Use(middleware.AuthMiddleware())
	{
		// Resumes are PII; only a signed-in session may read them.
		files.GET("/*path", h.ServeFile)
	}
}

func (h *FileHandler) ServeFile(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("path"), "/")
	if path == "" || strings.Contains(path, "..") {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid file path"))
		return
	}

	ctx := c.Request.Context()

	exists, err := h.store.Exists(ctx, path)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if !exists {
		apperrors.HandleError(c, apperrors.ErrNotFound(nil))
		return
	}

	size, err := h.store.GetSize(ctx, path)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	reader, err := h.store.Get(ctx, path)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	defer reader.Close()

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.DataFromReader(http.StatusOK, size, contentType, reader, nil)
}
