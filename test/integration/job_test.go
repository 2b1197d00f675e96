package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brandsap_careers/test/helpers"
)

func TestListJobsReturnsOnlyActiveOnes(t *testing.T) {
	ts := GetTestServer(t)

	active := helpers.CreateTestJob(t, ts.DB, "Visible Role")
	hidden := helpers.CreateTestJob(t, ts.DB, "Hidden Role")
	require.NoError(t, ts.DB.Model(&hidden).Update("is_active", false).Error)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/jobs", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var jobs []struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &jobs))

	ids := make([]string, 0, len(jobs))
	for _, j := range jobs {
		ids = append(ids, j.ID)
	}
	assert.Contains(t, ids, active.ID)
	assert.NotContains(t, ids, hidden.ID)
}

func TestListJobsReturnsSummariesOnly(t *testing.T) {
	ts := GetTestServer(t)

	job := helpers.CreateTestJob(t, ts.DB, "Summary Role")

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/jobs", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var raw []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &raw))

	var found map[string]interface{}
	for _, item := range raw {
		if item["id"] == job.ID {
			found = item
		}
	}
	require.NotNil(t, found)

	assert.Equal(t, "Summary Role", found["title"])
	assert.Contains(t, found, "department")
	assert.Contains(t, found, "location")

	// Full bodies stay on the detail endpoint.
	assert.NotContains(t, found, "description")
	assert.NotContains(t, found, "responsibilities")
	assert.NotContains(t, found, "requirements")
}

func TestGetJobByID(t *testing.T) {
	ts := GetTestServer(t)

	job := helpers.CreateTestJob(t, ts.DB, "Readable Role")

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/"+job.ID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var got struct {
		ID               string   `json:"id"`
		Title            string   `json:"title"`
		Responsibilities []string `json:"responsibilities"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	assert.Equal(t, job.ID, got.ID)
	assert.Equal(t, "Readable Role", got.Title)
	assert.Equal(t, []string{"Do things"}, got.Responsibilities)
}

func TestGetJobMalformedIDIs400(t *testing.T) {
	ts := GetTestServer(t)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	assert.Contains(t, body, "Invalid job id")
}

func TestGetJobUnknownIDIs404(t *testing.T) {
	ts := GetTestServer(t)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/"+uuid.NewString(), "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, body)
	assert.Contains(t, body, "Job not found")
}

func TestGetDeactivatedJobIs404(t *testing.T) {
	ts := GetTestServer(t)

	job := helpers.CreateTestJob(t, ts.DB, "Gone Role")
	require.NoError(t, ts.DB.Model(&job).Update("is_active", false).Error)

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/"+job.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
