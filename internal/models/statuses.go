package models

type ApplicationStatus string
type ResumeMode string

const (
	// Draft is the initial state: freely editable, written by autosave.
	ApplicationStatusDraft ApplicationStatus = "draft"
	// Submitted is terminal. No transition leaves it.
	ApplicationStatusSubmitted ApplicationStatus = "submitted"

	// ResumeModeAttach - the applicant uploads a file.
	ResumeModeAttach ResumeMode = "attach"
	// ResumeModeManual - the applicant pastes text or a link.
	ResumeModeManual ResumeMode = "manual"
)
