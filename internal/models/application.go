package models

// Application is one user's application to one job. The composite unique
// index is the backbone of the whole flow: every write is an upsert keyed by
// (user_id, job_id), so re-applying updates in place and can never create a
// duplicate row.
type Application struct {
	BaseModel
	UserID string `gorm:"type:uuid;not null;uniqueIndex:idx_applications_user_job"`
	JobID  string `gorm:"type:uuid;not null;uniqueIndex:idx_applications_user_job"`

	Status ApplicationStatus `gorm:"type:varchar(20);not null;default:'draft'"`

	FullName    string `gorm:"not null;default:''"`
	Email       string `gorm:"not null;default:''"`
	Phone       string `gorm:"not null;default:''"`
	Linkedin    string `gorm:"not null;default:''"`
	Portfolio   string `gorm:"not null;default:''"`
	CoverLetter string `gorm:"type:text;not null;default:''"`

	// ResumeURL holds the storage path in attach mode, the pasted text or
	// link in manual mode, and "" for a draft without a resume yet.
	ResumeURL      string `gorm:"not null;default:''"`
	ResumeFilename string `gorm:"not null;default:''"`
	ResumeMime     string `gorm:"not null;default:''"`
	ResumeSize     *int64
	ResumeText     string `gorm:"type:text;not null;default:''"`
}

// ResumeMode is derived from what is stored, never persisted: manual when
// the row carries pasted text and no filename, attach otherwise.
func (a *Application) ResumeMode() ResumeMode {
	if a.ResumeText != "" && a.ResumeFilename == "" {
		return ResumeModeManual
	}
	return ResumeModeAttach
}
