package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"brandsap_careers/internal/models"
)

var ErrApplicationNotFound = errors.New("application not found")

// ApplicationSummary is one row of a user's application list, with the job
// title joined in.
type ApplicationSummary struct {
	ID        string                   `json:"id"`
	JobID     string                   `json:"job_id"`
	JobTitle  string                   `json:"job_title"`
	Status    models.ApplicationStatus `json:"status"`
	CreatedAt time.Time                `json:"created_at"`
	UpdatedAt time.Time                `json:"updated_at"`
}

type ApplicationRepository interface {
	Upsert(app *models.Application) error
	FindByUserAndJob(userID, jobID string) (*models.Application, error)
	ListByUser(userID string) ([]ApplicationSummary, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

// Upsert writes the full snapshot keyed by (user_id, job_id). A conflicting
// row is overwritten column for column, so the last save always wins and the
// unique index guarantees at most one row per pair.
func (r *ApplicationRepositoryImpl) Upsert(app *models.Application) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "job_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"status",
			"full_name",
			"email",
			"phone",
			"linkedin",
			"portfolio",
			"cover_letter",
			"resume_url",
			"resume_filename",
			"resume_mime",
			"resume_size",
			"resume_text",
			"updated_at",
		}),
	}).Create(app).Error
}

func (r *ApplicationRepositoryImpl) FindByUserAndJob(userID, jobID string) (*models.Application, error) {
	var app models.Application
	err := r.db.First(&app, "user_id = ? AND job_id = ?", userID, jobID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) ListByUser(userID string) ([]ApplicationSummary, error) {
	var summaries []ApplicationSummary
	err := r.db.Model(&models.Application{}).
		Select("applications.id, applications.job_id, jobs.title AS job_title, applications.status, applications.created_at, applications.updated_at").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("applications.user_id = ?", userID).
		Order("applications.created_at DESC").
		Scan(&summaries).Error
	return summaries, err
}
