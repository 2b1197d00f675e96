package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"brandsap_careers/internal/logger"
	"brandsap_careers/internal/models"
	"brandsap_careers/internal/repositories"
	"brandsap_careers/internal/services/dto"
	"brandsap_careers/internal/storage"
	"brandsap_careers/pkg/apperrors"
)

// resumePreviewTTL is how long a signed preview link stays valid.
const resumePreviewTTL = time.Hour

// ApplicationService owns the draft/submitted lifecycle. Draft saves are
// full-snapshot upserts keyed by (user, job) and serialized per key, so
// concurrent autosaves settle as last-write-wins without interleaving.
type ApplicationService struct {
	appRepo repositories.ApplicationRepository
	jobRepo repositories.JobRepository
	store   storage.Storage

	maxUploadSize int64
	allowedTypes  []string
}

// draftLocks is process-wide so serialization holds even though service
// values are constructed per request.
var draftLocks keyedMutex

func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	store storage.Storage,
	maxUploadSize int64,
	allowedTypes []string,
) *ApplicationService {
	return &ApplicationService{
		appRepo:       appRepo,
		jobRepo:       jobRepo,
		store:         store,
		maxUploadSize: maxUploadSize,
		allowedTypes:  allowedTypes,
	}
}

// ResumeUpload describes an incoming multipart resume file.
type ResumeUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

func (s *ApplicationService) GetApplication(userID, jobID string) (*dto.ApplicationResponse, error) {
	if err := s.checkJob(jobID); err != nil {
		return nil, err
	}

	app, err := s.appRepo.FindByUserAndJob(userID, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewApplicationResponse(app)
	return &resp, nil
}

// SaveDraft replaces the stored draft with the given snapshot. A submitted
// application is immutable; saving against one is rejected.
func (s *ApplicationService) SaveDraft(userID, jobID string, snap *dto.ApplicationSnapshot) (*dto.ApplicationResponse, error) {
	if err := s.checkJob(jobID); err != nil {
		return nil, err
	}

	unlock := draftLocks.Lock(userID + "/" + jobID)
	defer unlock()

	existing, err := s.findExisting(userID, jobID)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.Status == models.ApplicationStatusSubmitted {
		return nil, apperrors.ErrApplicationSubmitted
	}

	app := buildApplication(userID, jobID, NormalizeSnapshot(snap), models.ApplicationStatusDraft)
	if err := s.appRepo.Upsert(app); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.reload(userID, jobID)
}

// Submit validates the snapshot in full and flips the application to
// submitted. All violations come back at once, not just the first.
func (s *ApplicationService) Submit(userID, jobID string, snap *dto.ApplicationSnapshot) (*dto.ApplicationResponse, error) {
	if err := s.checkJob(jobID); err != nil {
		return nil, err
	}

	unlock := draftLocks.Lock(userID + "/" + jobID)
	defer unlock()

	existing, err := s.findExisting(userID, jobID)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.Status == models.ApplicationStatusSubmitted {
		return nil, apperrors.ErrDuplicateApplication
	}

	normalized := NormalizeSnapshot(snap)
	if details := ValidateSubmission(&normalized); len(details) > 0 {
		return nil, apperrors.ValidationError(details)
	}

	app := buildApplication(userID, jobID, normalized, models.ApplicationStatusSubmitted)
	if err := s.appRepo.Upsert(app); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("application submitted", "user_id", userID, "job_id", jobID)

	return s.reload(userID, jobID)
}

// UploadResume stores the file eagerly, before any draft references it. The
// returned metadata goes into the client's next snapshot; a blob the client
// never references stays orphaned in storage.
func (s *ApplicationService) UploadResume(ctx context.Context, userID, jobID string, upload *ResumeUpload) (*dto.ResumeUploadResponse, error) {
	if err := s.checkJob(jobID); err != nil {
		return nil, err
	}

	existing, err := s.findExisting(userID, jobID)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.Status == models.ApplicationStatusSubmitted {
		return nil, apperrors.ErrApplicationSubmitted
	}

	if upload.Size > s.maxUploadSize {
		return nil, apperrors.ErrFileTooLarge
	}
	if !s.isAllowedType(upload.ContentType) {
		return nil, apperrors.ErrInvalidFileType
	}

	path := ResumeStoragePath(userID, jobID, upload.Filename, time.Now())
	if err := s.store.Save(ctx, path, upload.Reader, upload.ContentType); err != nil {
		logger.Error("resume upload failed", "user_id", userID, "job_id", jobID, "error", err)
		return nil, apperrors.ErrUploadFailed
	}

	return &dto.ResumeUploadResponse{
		ResumeURL:      path,
		ResumeFilename: upload.Filename,
		ResumeMime:     upload.ContentType,
		ResumeSize:     upload.Size,
	}, nil
}

// ResumePreview returns a short-lived signed URL for an attached resume.
func (s *ApplicationService) ResumePreview(ctx context.Context, userID, jobID string) (*dto.ResumePreviewResponse, error) {
	if err := s.checkJob(jobID); err != nil {
		return nil, err
	}

	app, err := s.appRepo.FindByUserAndJob(userID, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if app.ResumeMode() != models.ResumeModeAttach || app.ResumeURL == "" {
		return nil, apperrors.NewBadRequestError("Application has no attached resume")
	}

	url, err := s.store.GetSignedURL(ctx, app.ResumeURL, resumePreviewTTL)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.ResumePreviewResponse{
		URL:       url,
		ExpiresAt: time.Now().Add(resumePreviewTTL),
	}, nil
}

func (s *ApplicationService) ListMine(userID string) ([]repositories.ApplicationSummary, error) {
	summaries, err := s.appRepo.ListByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if summaries == nil {
		summaries = []repositories.ApplicationSummary{}
	}
	return summaries, nil
}

// ResumeStoragePath builds the blob key for an uploaded resume. The
// timestamp keeps re-uploads from clobbering each other.
func ResumeStoragePath(userID, jobID, filename string, now time.Time) string {
	return fmt.Sprintf("%s/%s/%d_%s", userID, jobID, now.UnixNano(), SanitizeFilename(filename))
}

func (s *ApplicationService) checkJob(jobID string) error {
	if _, err := uuid.Parse(jobID); err != nil {
		return apperrors.ErrInvalidJobID
	}

	if _, err := s.jobRepo.FindActiveByID(jobID); err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// findExisting returns nil without error when there is no row yet.
func (s *ApplicationService) findExisting(userID, jobID string) (*models.Application, error) {
	app, err := s.appRepo.FindByUserAndJob(userID, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, nil
		}
		return nil, apperrors.InternalError(err)
	}
	return app, nil
}

func (s *ApplicationService) reload(userID, jobID string) (*dto.ApplicationResponse, error) {
	app, err := s.appRepo.FindByUserAndJob(userID, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewApplicationResponse(app)
	return &resp, nil
}

func (s *ApplicationService) isAllowedType(contentType string) bool {
	for _, t := range s.allowedTypes {
		if t == contentType {
			return true
		}
	}
	return false
}

func buildApplication(userID, jobID string, snap dto.ApplicationSnapshot, status models.ApplicationStatus) *models.Application {
	return &models.Application{
		UserID:         userID,
		JobID:          jobID,
		Status:         status,
		FullName:       snap.FullName,
		Email:          snap.Email,
		Phone:          snap.Phone,
		Linkedin:       snap.Linkedin,
		Portfolio:      snap.Portfolio,
		CoverLetter:    snap.CoverLetter,
		ResumeURL:      snap.ResumeURL,
		ResumeFilename: snap.ResumeFilename,
		ResumeMime:     snap.ResumeMime,
		ResumeSize:     snap.ResumeSize,
		ResumeText:     snap.ResumeText,
	}
}

// keyedMutex hands out one mutex per (user, job) key so draft writes for the
// same application never interleave while different applications stay
// independent. Entries are reference-counted and dropped once the last
// holder releases, so the map only holds keys with writes in flight.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*keyedLock
}

type keyedLock struct {
	mu      sync.Mutex
	holders int
}

func (k *keyedMutex) Lock(key string) func() {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*keyedLock)
	}
	l, ok := k.locks[key]
	if !ok {
		l = &keyedLock{}
		k.locks[key] = l
	}
	l.holders++
	k.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()

		k.mu.Lock()
		l.holders--
		if l.holders == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
