package services

import (
	"regexp"
	"strings"

	"brandsap_careers/internal/services/dto"
)

var (
	httpURLRe      = regexp.MustCompile(`(?i)^https?://.+`)
	unsafeFileChar = regexp.MustCompile(`[^\w.\-]+`)
)

// NormalizeSnapshot trims every field and enforces resume mode exclusivity:
// an attached file clears pasted text, pasted text clears the file metadata
// and takes over resume_url. The stored row can never be in both modes at
// once, and resume_url never keeps a stale storage path after a mode switch.
func NormalizeSnapshot(snap *dto.ApplicationSnapshot) dto.ApplicationSnapshot {
	out := dto.ApplicationSnapshot{
		FullName:       strings.TrimSpace(snap.FullName),
		Email:          strings.ToLower(strings.TrimSpace(snap.Email)),
		Phone:          strings.TrimSpace(snap.Phone),
		Linkedin:       strings.TrimSpace(snap.Linkedin),
		Portfolio:      strings.TrimSpace(snap.Portfolio),
		CoverLetter:    strings.TrimSpace(snap.CoverLetter),
		ResumeURL:      strings.TrimSpace(snap.ResumeURL),
		ResumeFilename: strings.TrimSpace(snap.ResumeFilename),
		ResumeMime:     strings.TrimSpace(snap.ResumeMime),
		ResumeSize:     snap.ResumeSize,
		ResumeText:     strings.TrimSpace(snap.ResumeText),
	}

	if out.ResumeFilename != "" {
		out.ResumeText = ""
	} else if out.ResumeText != "" {
		out.ResumeURL = out.ResumeText
		out.ResumeMime = ""
		out.ResumeSize = nil
	}

	return out
}

// ValidateSubmission checks a normalized snapshot against the submit rules
// and returns every violation keyed by wire field name. Drafts skip this
// entirely; only the transition to submitted runs it.
func ValidateSubmission(snap *dto.ApplicationSnapshot) map[string]string {
	errs := make(map[string]string)

	if snap.FullName == "" {
		errs["full_name"] = "Full name is required."
	}
	if snap.Email == "" {
		errs["email"] = "Email is required."
	}
	if snap.Phone == "" {
		errs["phone"] = "Phone is required."
	}
	if snap.Linkedin == "" {
		errs["linkedin"] = "LinkedIn is required."
	} else if !httpURLRe.MatchString(snap.Linkedin) {
		errs["linkedin"] = "LinkedIn must start with http:// or https://"
	}
	if snap.Portfolio == "" {
		errs["portfolio"] = "Portfolio is required."
	} else if !httpURLRe.MatchString(snap.Portfolio) {
		errs["portfolio"] = "Portfolio must start with http:// or https://"
	}
	if snap.CoverLetter == "" {
		errs["cover_letter"] = "Cover letter is required."
	}

	if msg := validateResume(snap); msg != "" {
		errs["resume"] = msg
	}

	return errs
}

func validateResume(snap *dto.ApplicationSnapshot) string {
	// Manual mode: pasted text with no attached file.
	if snap.ResumeText != "" && snap.ResumeFilename == "" {
		return ""
	}

	// Attach mode needs a completed upload, not just a picked filename.
	if snap.ResumeURL == "" {
		return "Please attach your resume."
	}
	return ""
}

// SanitizeFilename collapses anything outside [A-Za-z0-9_.-] so the name is
// safe to embed in a storage path.
func SanitizeFilename(name string) string {
	safe := unsafeFileChar.ReplaceAllString(strings.TrimSpace(name), "_")
	if safe == "" || safe == "." || safe == ".." {
		return "resume"
	}
	return safe
}
