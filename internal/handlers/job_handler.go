package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brandsap_careers/internal/repositories"
	"brandsap_careers/internal/services"
)

type JobHandler struct {
	*BaseHandler
}

func NewJobHandler(base *BaseHandler) *JobHandler {
	return &JobHandler{BaseHandler: base}
}

func (h *JobHandler) RegisterRoutes(r *gin.RouterGroup) {
	jobs := r.Group("/jobs")
	{
		jobs.GET("", h.ListJobs)
		jobs.GET("/:jobId", h.GetJob)
	}
}

func (h *JobHandler) svc(c *gin.Context) *services.JobService {
	return services.NewJobService(repositories.NewJobRepository(h.GetDB(c)))
}

func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.svc(c).ListOpenJobs()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.svc(c).GetJob(c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}
