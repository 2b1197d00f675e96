package validator

import (
	"log"
	"regexp"

	"github.com/go-playground/validator/v10"

	"brandsap_careers/internal/models"
)

var httpURLRe = regexp.MustCompile(`^https?://`)

// registerCustomRules wires the project's domain rules into the validator
// instance.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Startup-time failure, the app must not run without its rules.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-application-status", validateApplicationStatus)
	mustRegister("is-resume-mode", validateResumeMode)
	mustRegister("http-url", validateHTTPURL)
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // empty is 'required's job
	}
	switch models.ApplicationStatus(value) {
	case models.ApplicationStatusDraft, models.ApplicationStatusSubmitted:
		return true
	default:
		return false
	}
}

func validateResumeMode(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.ResumeMode(value) {
	case models.ResumeModeAttach, models.ResumeModeManual:
		return true
	default:
		return false
	}
}

// http-url is looser than the stock 'url' tag on purpose: it only requires
// an http(s) scheme, matching what the submission form accepts.
func validateHTTPURL(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return httpURLRe.MatchString(value)
}
