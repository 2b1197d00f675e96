package integration_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brandsap_careers/internal/models"
	"brandsap_careers/test/helpers"
)

type applicationBody struct {
	ID             string `json:"id"`
	JobID          string `json:"job_id"`
	Status         string `json:"status"`
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	CoverLetter    string `json:"cover_letter"`
	ResumeMode     string `json:"resume_mode"`
	ResumeURL      string `json:"resume_url"`
	ResumeFilename string `json:"resume_filename"`
	ResumeMime     string `json:"resume_mime"`
	ResumeText     string `json:"resume_text"`
}

type errorBody struct {
	Error struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func draftPath(jobID string) string  { return "/api/v1/jobs/" + jobID + "/application/draft" }
func submitPath(jobID string) string { return "/api/v1/jobs/" + jobID + "/application/submit" }
func appPath(jobID string) string    { return "/api/v1/jobs/" + jobID + "/application" }
func resumePath(jobID string) string { return "/api/v1/jobs/" + jobID + "/application/resume" }

func TestDraftSaveAndReload(t *testing.T) {
	ts := GetTestServer(t)
	token, _ := helpers.CreateAndLoginUser(t, ts)
	job := helpers.CreateTestJob(t, ts.DB, "Draft Role")

	// A draft can be saved with almost nothing filled in.
	res, body := ts.SendRequest(t, http.MethodPut, draftPath(job.ID), token, map[string]interface{}{
		"full_name": "Jane",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var saved applicationBody
	require.NoError(t, json.Unmarshal([]byte(body), &saved))
	assert.Equal(t, "draft", saved.Status)
	assert.Equal(t, "Jane", saved.FullName)

	res, body = ts.SendRequest(t, http.MethodGet, appPath(job.ID), token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var loaded applicationBody
	require.NoError(t, json.Unmarshal([]byte(body), &loaded))
	assert.Equal(t, saved.ID, loaded.ID)
	assert.Equal(t, "Jane", loaded.FullName)
}

func TestDraftUpsertKeepsSingleRow(t *testing.T) {
	ts := GetTestServer(t)
	token, user := helpers.CreateAndLoginUser(t, ts)
	job := helpers.CreateTestJob(t, ts.DB, "Upsert Role")

	res, _ := ts.SendRequest(t, http.MethodPut, draftPath(job.ID), token, map[string]interface{}{
		"full_name": "First Save",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodPut, draftPath(job.ID), token, map[string]interface{}{
		"full_name": "Second Save",
		"phone":     "+1 555 0100",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var count int64
	require.NoError(t, ts.DB.Model(&models.Application{}).
		Where("user_id = ? AND job_id = ?", user.ID, job.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// Last write wins, wholesale.
	var row models.Application
	require.NoError(t, ts.DB.First(&row, "user_id = ? AND job_id = ?", user.ID, job.ID).Error)
	assert.Equal(t, "Second Save", row.FullName)
	assert.Equal(t, "+1 555 0100", row.Phone)
}

func TestGetApplicationBeforeAnySaveIs404(t *testing.T) {
	ts := GetTestServer(t)
	token, _ := helpers.CreateAndLoginUser(t, ts)
	job := helpers.CreateTestJob(t, ts.DB, "Empty Role")

	res, _ := ts.SendRequest(t, http.MethodGet, appPath(job.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestApplicationEndpointsRequireAuth(t *testing.T) {
	ts := GetTestServer(t)
	job := helpers.CreateTestJob(t, ts.DB, "Locked Role")

	res, _ := ts.SendRequest(t, http.MethodGet, appPath(job.ID), "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPut, draftPath(job.ID), "", helpers.ValidSnapshot())
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestDraftMalformedJobIDIs400(t *testing.T) {
	ts := GetTestServer(t)
	token, _ := helpers.CreateAndLoginUser(t, ts)

	res, body := ts.SendRequest(t, http.MethodPut, draftPath("not-a-uuid"), token, map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	assert.Contains(t, body, "Invalid job id")
}

func TestDraftUnknownJobIs404(t *testing.T) {
	ts := GetTestServer(t)
	token, _ := helpers.CreateAndLoginUser(t, ts)

	res, _ := ts.SendRequest(t, http.MethodPut, draftPath(uuid.NewString()), token, map[string]interface{}{})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestSubmitCollectsEveryViolation(t *testing.T) {
	ts := GetTestServer(t)
	token, _ := helpers.CreateAndLoginUser(t, ts)
	job := helpers.CreateTestJob(t, ts.DB, "Strict Role")

	res, body := ts.SendRequest(t, http.MethodPost, submitPath(job.ID), token, map[string]interface{}{})
	require.Equal(t, http.StatusBadRequest, res.StatusCode, body)

	var errResp errorBody
	require.NoError(t, json.Unmarshal([]byte(body), &errResp))
	assert.Len(t, errResp.Error.Details, 7)
	assert.Equal(t, "Full name is required.", errResp.Error.Details["full_name"])
	assert.Equal(t, "Please attach your resume.", errResp.Error.Details["resume"])

	// A failed submit never creates a submitted row.
	res, body = ts.SendRequest(t, http.MethodGet, appPath(job.ID), token, nil)
	if res.StatusCode == http.StatusOK {
		var app applicationBody
		require.NoError(t, json.Unmarshal([]byte(body), &app))
		assert.Equal(t, "draft", app.Status)
	}
}

func TestSubmitRejectsBadLinks(t *testing.T) {
	ts := GetTestServer(t)
	token, _ := helpers.CreateAndLoginUser(t, ts)
	job := helpers.CreateTestJob(t, ts.DB, "Linky Role")

	snap := helpers.ValidSnapshot()
	snap["linkedin"] = "linkedin.com/in/janedoe"

	res, body := ts.SendRequest(t, http.MethodPost, submitPath(job.ID), token, snap)
	require.Equal(t, http.StatusBadRequest, res.StatusCode, body)

	var errResp errorBody
	require.NoError(t, json.Unmarshal([]byte(body), &errResp))
	assert.Equal(t, "LinkedIn must start with http:// or https://", errResp.Error.Details["linkedin"])
	assert.Len(t, errResp.Error.Details, 1)
}

func TestSubmitThenImmutable(t *testing.T) {
	ts := GetTestServer(t)
	token, _ := helpers.CreateAndLoginUser(t, ts)
	job := helpers.CreateTestJob(t, ts.DB, "Final Role")

	res, body := ts.SendRequest(t, http.MethodPost, submitPath(job.ID), token, helpers.ValidSnapshot())
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var app applicationBody
	require.NoError(t, json.Unmarshal([]byte(body), &app))
	assert.Equal(t, "submitted", app.Status)
	assert.Equal(t, "manual", app.ResumeMode)

	// Draft saves bounce off a submitted application.
	res, body = ts.SendRequest(t, http.MethodPut, draftPath(job.ID), token, map[string]interface{}{
		"full_name": "Changed Mind",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode, body)
	assert.Contains(t, body, "Application already submitted")

	// So do resubmits.
	res, body = ts.SendRequest(t, http.MethodPost, submitPath(job.ID), token, helpers.ValidSnapshot())
	assert.Equal(t, http.StatusConflict, res.StatusCode, body)
	assert.Contains(t, body, "You already applied for this job")

	// The stored row is untouched.
	res, body = ts.SendRequest(t, http.MethodGet, appPath(job.ID), token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(body), &app))
	assert.Equal(t, "Jane Doe", app.FullName)
}

func TestResumeModeExclusivity(t *testing.T) {
	ts := GetTestServer(t)
	token, _ := helpers.CreateAndLoginUser(t, ts)
	job := helpers.CreateTestJob(t, ts.DB, "Resume Role")

	// Both an attached file and pasted text: the file wins.
	res, body := ts.SendRequest(t, http.MethodPut, draftPath(job.ID), token, map[string]interface{}{
		"resume_url":      "u/j/1_cv.pdf",
		"resume_filename": "cv.pdf",
		"resume_mime":     "application/pdf",
		"resume_size":     1024,
		"resume_text":     "also pasted text",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var app applicationBody
	require.NoError(t, json.Unmarshal([]byte(body), &app))
	assert.Equal(t, "attach", app.ResumeMode)
	assert.Empty(t, app.ResumeText)

	// Pasted text only: file metadata is cleared and the text takes over
	// resume_url, so the stale storage path from the first save is gone.
	res, body = ts.SendRequest(t, http.MethodPut, draftPath(job.ID), token, map[string]interface{}{
		"resume_text": "https://drive.example.com/cv",
		"resume_mime": "application/pdf",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	require.NoError(t, json.Unmarshal([]byte(body), &app))
	assert.Equal(t, "manual", app.ResumeMode)
	assert.Equal(t, "https://drive.example.com/cv", app.ResumeURL)
	assert.Empty(t, app.ResumeMime)
}

func TestResumeUploadLimits(t *testing.T) {
	ts := GetTestServer(t)
	token, _ := helpers.CreateAndLoginUser(t, ts)
	job := helpers.CreateTestJob(t, ts.DB, "Upload Role")

	// 6 MiB is over the limit.
	big := bytes.Repeat([]byte("a"), 6*1024*1024)
	res, body := ts.SendMultipart(t, resumePath(job.ID), token, "file", "big.pdf", "application/pdf", big)
	assert.Equal(t, http.StatusRequestEntityTooLarge, res.StatusCode, body)
	assert.Contains(t, body, "Resume file must be 5MB or smaller")

	// Wrong MIME type.
	res, body = ts.SendMultipart(t, resumePath(job.ID), token, "file", "cv.png", "image/png", []byte("png"))
	assert.Equal(t, http.StatusUnsupportedMediaType, res.StatusCode, body)
	assert.Contains(t, body, "Only PDF/DOC/DOCX resumes are allowed")
}

func TestResumeUploadAndPreview(t *testing.T) {
	ts := GetTestServer(t)
	token, user := helpers.CreateAndLoginUser(t, ts)
	job := helpers.CreateTestJob(t, ts.DB, "Preview Role")

	res, body := ts.SendMultipart(t, resumePath(job.ID), token, "file", "my cv.pdf", "application/pdf", []byte("%PDF-1.4 test"))
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var upload struct {
		ResumeURL      string `json:"resume_url"`
		ResumeFilename string `json:"resume_filename"`
		ResumeMime     string `json:"resume_mime"`
		ResumeSize     int64  `json:"resume_size"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &upload))
	assert.Contains(t, upload.ResumeURL, user.ID+"/"+job.ID+"/")
	assert.Contains(t, upload.ResumeURL, "my_cv.pdf")
	assert.Equal(t, "my cv.pdf", upload.ResumeFilename)
	assert.Equal(t, int64(len("%PDF-1.4 test")), upload.ResumeSize)

	// Fold the upload into the draft, then ask for a preview URL.
	res, body = ts.SendRequest(t, http.MethodPut, draftPath(job.ID), token, map[string]interface{}{
		"resume_url":      upload.ResumeURL,
		"resume_filename": upload.ResumeFilename,
		"resume_mime":     upload.ResumeMime,
		"resume_size":     upload.ResumeSize,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodGet, resumePath(job.ID), token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var preview struct {
		URL string `json:"url"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &preview))
	assert.NotEmpty(t, preview.URL)
}

func TestResumePreviewWithoutAttachmentIs400(t *testing.T) {
	ts := GetTestServer(t)
	token, _ := helpers.CreateAndLoginUser(t, ts)
	job := helpers.CreateTestJob(t, ts.DB, "No Attachment Role")

	_, _ = ts.SendRequest(t, http.MethodPut, draftPath(job.ID), token, map[string]interface{}{
		"resume_text": "plain text resume",
	})

	res, _ := ts.SendRequest(t, http.MethodGet, resumePath(job.ID), token, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestListMyApplications(t *testing.T) {
	ts := GetTestServer(t)
	token, _ := helpers.CreateAndLoginUser(t, ts)

	first := helpers.CreateTestJob(t, ts.DB, "Listed Role One")
	second := helpers.CreateTestJob(t, ts.DB, "Listed Role Two")

	res, body := ts.SendRequest(t, http.MethodPost, submitPath(first.ID), token, helpers.ValidSnapshot())
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	res, body = ts.SendRequest(t, http.MethodPut, draftPath(second.ID), token, map[string]interface{}{
		"full_name": "Jane",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/applications/me", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var list []struct {
		JobID    string `json:"job_id"`
		JobTitle string `json:"job_title"`
		Status   string `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &list))
	require.Len(t, list, 2)

	byJob := make(map[string]string)
	titles := make(map[string]string)
	for _, item := range list {
		byJob[item.JobID] = item.Status
		titles[item.JobID] = item.JobTitle
	}
	assert.Equal(t, "submitted", byJob[first.ID])
	assert.Equal(t, "draft", byJob[second.ID])
	assert.Equal(t, "Listed Role One", titles[first.ID])
}
