package dto

import (
	"time"

	"brandsap_careers/internal/models"
)

// ApplicationSnapshot is the full draft payload. Every save replaces the
// stored row wholesale, so the client always sends every field. Drafts accept
// incomplete and even invalid values; the strict checks run only on submit.
type ApplicationSnapshot struct {
	FullName    string `json:"full_name" validate:"omitempty,max=200"`
	Email       string `json:"email" validate:"omitempty,max=320"`
	Phone       string `json:"phone" validate:"omitempty,max=50"`
	Linkedin    string `json:"linkedin" validate:"omitempty,max=500"`
	Portfolio   string `json:"portfolio" validate:"omitempty,max=500"`
	CoverLetter string `json:"cover_letter" validate:"omitempty,max=10000"`

	ResumeURL      string `json:"resume_url" validate:"omitempty,max=1000"`
	ResumeFilename string `json:"resume_filename" validate:"omitempty,max=255"`
	ResumeMime     string `json:"resume_mime" validate:"omitempty,max=100"`
	ResumeSize     *int64 `json:"resume_size" validate:"omitempty,min=0"`
	ResumeText     string `json:"resume_text" validate:"omitempty,max=20000"`
}

type ApplicationResponse struct {
	ID     string                   `json:"id"`
	JobID  string                   `json:"job_id"`
	Status models.ApplicationStatus `json:"status"`

	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Linkedin    string `json:"linkedin"`
	Portfolio   string `json:"portfolio"`
	CoverLetter string `json:"cover_letter"`

	ResumeMode     models.ResumeMode `json:"resume_mode"`
	ResumeURL      string            `json:"resume_url"`
	ResumeFilename string            `json:"resume_filename"`
	ResumeMime     string            `json:"resume_mime"`
	ResumeSize     *int64            `json:"resume_size"`
	ResumeText     string            `json:"resume_text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewApplicationResponse(app *models.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:             app.ID,
		JobID:          app.JobID,
		Status:         app.Status,
		FullName:       app.FullName,
		Email:          app.Email,
		Phone:          app.Phone,
		Linkedin:       app.Linkedin,
		Portfolio:      app.Portfolio,
		CoverLetter:    app.CoverLetter,
		ResumeMode:     app.ResumeMode(),
		ResumeURL:      app.ResumeURL,
		ResumeFilename: app.ResumeFilename,
		ResumeMime:     app.ResumeMime,
		ResumeSize:     app.ResumeSize,
		ResumeText:     app.ResumeText,
		CreatedAt:      app.CreatedAt,
		UpdatedAt:      app.UpdatedAt,
	}
}

// ResumeUploadResponse is returned by the eager upload endpoint; the client
// folds these values into its next draft snapshot.
type ResumeUploadResponse struct {
	ResumeURL      string `json:"resume_url"`
	ResumeFilename string `json:"resume_filename"`
	ResumeMime     string `json:"resume_mime"`
	ResumeSize     int64  `json:"resume_size"`
}

// ResumePreviewResponse carries a short-lived signed URL for viewing an
// attached resume.
type ResumePreviewResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}
