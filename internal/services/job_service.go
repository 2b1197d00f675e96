package services

import (
	"errors"

	"github.com/google/uuid"

	"brandsap_careers/internal/repositories"
	"brandsap_careers/internal/services/dto"
	"brandsap_careers/pkg/apperrors"
)

type JobService struct {
	jobRepo repositories.JobRepository
}

func NewJobService(jobRepo repositories.JobRepository) *JobService {
	return &JobService{jobRepo: jobRepo}
}

// ListOpenJobs returns summary rows only; clients fetch the full posting by
// id when they need the description.
func (s *JobService) ListOpenJobs() ([]dto.JobSummary, error) {
	jobs, err := s.jobRepo.ListActive()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewJobSummaryList(jobs), nil
}

// GetJob rejects malformed identifiers before touching the database, so a
// garbage id is a 400 and never surfaces as a driver error.
func (s *JobService) GetJob(jobID string) (*dto.JobResponse, error) {
	if _, err := uuid.Parse(jobID); err != nil {
		return nil, apperrors.ErrInvalidJobID
	}

	job, err := s.jobRepo.FindActiveByID(jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewJobResponse(job)
	return &resp, nil
}
