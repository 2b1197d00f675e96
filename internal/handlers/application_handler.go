package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brandsap_careers/internal/logger"
	"brandsap_careers/internal/middleware"
	"brandsap_careers/internal/repositories"
	"brandsap_careers/internal/services"
	"brandsap_careers/internal/services/dto"
	"brandsap_careers/internal/storage"
	"brandsap_careers/pkg/apperrors"
)

type ApplicationHandler struct {
	*BaseHandler
	store         storage.Storage
	maxUploadSize int64
	allowedTypes  []string
}

func NewApplicationHandler(base *BaseHandler, store storage.Storage, maxUploadSize int64, allowedTypes []string) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:   base,
		store:         store,
		maxUploadSize: maxUploadSize,
		allowedTypes:  allowedTypes,
	}
}

func (h *ApplicationHandler) RegisterRoutes(r *gin.RouterGroup) {
	app := r.Group("/jobs/:jobId/application")
	app.Use(middleware.AuthMiddleware())
	{
		app.GET("", h.GetApplication)
		app.PUT("/draft", h.SaveDraft)
		app.POST("/submit", h.Submit)
		app.POST("/resume", h.UploadResume)
		app.GET("/resume", h.ResumePreview)
	}

	mine := r.Group("/applications")
	mine.Use(middleware.AuthMiddleware())
	{
		mine.GET("/me", h.ListMine)
	}
}

func (h *ApplicationHandler) svc(c *gin.Context) *services.ApplicationService {
	db := h.GetDB(c)
	return services.NewApplicationService(
		repositories.NewApplicationRepository(db),
		repositories.NewJobRepository(db),
		h.store,
		h.maxUploadSize,
		h.allowedTypes,
	)
}

func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	app, err := h.svc(c).GetApplication(userID, c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}

func (h *ApplicationHandler) SaveDraft(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var snap dto.ApplicationSnapshot
	if !h.BindAndValidateJSON(c, &snap) {
		return
	}

	app, err := h.svc(c).SaveDraft(userID, c.Param("jobId"), &snap)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}

func (h *ApplicationHandler) Submit(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var snap dto.ApplicationSnapshot
	if !h.BindAndValidateJSON(c, &snap) {
		return
	}

	app, err := h.svc(c).Submit(userID, c.Param("jobId"), &snap)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}

func (h *ApplicationHandler) UploadResume(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing resume file in 'file' field"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.CtxWithError(c.Request.Context(), "Failed to open uploaded file", err)
		apperrors.HandleError(c, apperrors.InternalError(err))
		return
	}
	defer file.Close()

	upload := &services.ResumeUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Reader:      file,
	}

	resp, err := h.svc(c).UploadResume(c.Request.Context(), userID, c.Param("jobId"), upload)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *ApplicationHandler) ResumePreview(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.svc(c).ResumePreview(c.Request.Context(), userID, c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ApplicationHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	summaries, err := h.svc(c).ListMine(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, summaries)
}
