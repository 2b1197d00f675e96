package repositories

import (
	"errors"

	"gorm.io/gorm"

	"brandsap_careers/internal/models"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	Create(job *models.Job) error
	FindActiveByID(id string) (*models.Job, error)
	ListActive() ([]models.Job, error)
	CountAll() (int64, error)
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

// FindActiveByID treats deactivated jobs the same as missing ones, so the
// caller never has to distinguish the two.
func (r *JobRepositoryImpl) FindActiveByID(id string) (*models.Job, error) {
	var job models.Job
	err := r.db.First(&job, "id = ? AND is_active = ?", id, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) ListActive() ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Where("is_active = ?", true).Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Job{}).Count(&count).Error
	return count, err
}
