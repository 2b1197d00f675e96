package apperrors

import (
	"net/http"
)

// Factories for wrapping repository errors.

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound and
// friends) into a 404 AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a uniqueness violation into a 409 AppError.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict is the general conflict factory.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// --- Jobs ---

// ErrInvalidJobID rejects malformed job identifiers before they ever reach
// the database. Routes like /jobs/<non-uuid> must 400, not 500.
var ErrInvalidJobID = New(
	CodeValidationFailed,
	"request",
	"Invalid job id",
	http.StatusBadRequest,
)

// ErrJobNotFound covers both missing and deactivated jobs.
var ErrJobNotFound = New(
	CodeNotFound,
	"jobs",
	"Job not found",
	http.StatusNotFound,
)

// --- Applications ---

// ErrApplicationSubmitted rejects any mutation of a submitted application.
// Submitted is terminal.
var ErrApplicationSubmitted = New(
	CodeInvalidStatus,
	"applications",
	"Application already submitted",
	http.StatusConflict,
)

// ErrDuplicateApplication surfaces the (user_id, job_id) uniqueness
// constraint when a write bypasses the upsert path.
var ErrDuplicateApplication = New(
	CodeAlreadyExists,
	"applications",
	"You already applied for this job",
	http.StatusConflict,
)

// ErrApplicationNotFound - no application row for this (user, job).
var ErrApplicationNotFound = New(
	CodeNotFound,
	"applications",
	"Application not found",
	http.StatusNotFound,
)

// --- Uploads & files ---

// ErrFileTooLarge - the resume exceeds the per-file limit.
var ErrFileTooLarge = New(
	CodeLimitExceeded,
	"validation",
	"Resume file must be 5MB or smaller",
	http.StatusRequestEntityTooLarge, // 413
)

// ErrInvalidFileType - the resume MIME type is not allowed.
var ErrInvalidFileType = New(
	CodeValidationFailed,
	"validation",
	"Only PDF/DOC/DOCX resumes are allowed",
	http.StatusUnsupportedMediaType, // 415
)

// ErrUploadFailed - the storage write failed. Distinct from validation
// errors so the client can tell the resume, not the form, is the problem.
var ErrUploadFailed = New(
	CodeExternalServiceError,
	"storage",
	"Resume upload failed",
	http.StatusBadGateway, // 502
)

// --- Auth ---

// ErrWeakPassword - the password does not meet the minimum length.
var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 6 characters required.",
	http.StatusBadRequest,
)

// ErrEmailAlreadyExists - the email is already registered.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

// ErrInvalidCredentials - wrong email or password.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrInvalidToken - invalid or expired token (session or reset).
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)
