package dto

import (
	"encoding/json"
	"time"

	"brandsap_careers/internal/models"
)

type JobResponse struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Department       string    `json:"department"`
	Level            string    `json:"level"`
	Type             string    `json:"type"`
	Location         string    `json:"location"`
	Description      string    `json:"description"`
	Responsibilities []string  `json:"responsibilities"`
	Requirements     []string  `json:"requirements"`
	CreatedAt        time.Time `json:"created_at"`
}

func NewJobResponse(job *models.Job) JobResponse {
	resp := JobResponse{
		ID:          job.ID,
		Title:       job.Title,
		Department:  job.Department,
		Level:       job.Level,
		Type:        job.Type,
		Location:    job.Location,
		Description: job.Description,
		CreatedAt:   job.CreatedAt,
	}

	// jsonb columns hold string arrays; a malformed value degrades to empty.
	_ = json.Unmarshal(job.Responsibilities, &resp.Responsibilities)
	_ = json.Unmarshal(job.Requirements, &resp.Requirements)
	if resp.Responsibilities == nil {
		resp.Responsibilities = []string{}
	}
	if resp.Requirements == nil {
		resp.Requirements = []string{}
	}

	return resp
}

// JobSummary is the list-view shape. The full body, with description and
// bullet lists, only comes back from the single-job endpoint.
type JobSummary struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Department string `json:"department"`
	Level      string `json:"level"`
	Type       string `json:"type"`
	Location   string `json:"location"`
}

func NewJobSummaryList(jobs []models.Job) []JobSummary {
	summaries := make([]JobSummary, 0, len(jobs))
	for i := range jobs {
		job := &jobs[i]
		summaries = append(summaries, JobSummary{
			ID:         job.ID,
			Title:      job.Title,
			Department: job.Department,
			Level:      job.Level,
			Type:       job.Type,
			Location:   job.Location,
		})
	}
	return summaries
}
