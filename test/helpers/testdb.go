package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"brandsap_careers/internal/models"
)

// CreateUser inserts a user, hashing the password if it is still raw.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) error {
	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2a$") {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
		if err != nil {
			t.Fatalf("failed to hash password: %v", err)
		}
		user.PasswordHash = string(hashedPassword)
	}

	result := db.Create(user)
	if result.Error != nil {
		t.Logf("failed to create user %s: %v", user.Email, result.Error)
		return result.Error
	}

	return nil
}

// CreateAndLoginUser creates a user with a unique email and logs in through
// the API, returning the session token.
func CreateAndLoginUser(t *testing.T, ts *TestServer) (string, *models.User) {
	email := fmt.Sprintf("applicant_%d@test.com", time.Now().UnixNano())
	password := "password123"

	user := &models.User{
		Name:         "Test Applicant",
		Email:        email,
		PasswordHash: password,
	}
	err := CreateUser(t, ts.DB, user)
	assert.NoError(t, err)

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, res.StatusCode, "login should succeed, got: "+bodyStr)

	var loginResponse struct {
		Token string `json:"token"`
	}
	err = json.Unmarshal([]byte(bodyStr), &loginResponse)
	assert.NoError(t, err)
	assert.NotEmpty(t, loginResponse.Token)

	return loginResponse.Token, user
}

// CreateTestJob inserts an active job posting.
func CreateTestJob(t *testing.T, db *gorm.DB, title string) models.Job {
	job := models.Job{
		Title:            title,
		Department:       "Engineering",
		Level:            "Mid",
		Type:             "Full-time",
		Location:         "Remote",
		Description:      "Test description",
		Responsibilities: datatypes.JSON(`["Do things"]`),
		Requirements:     datatypes.JSON(`["Know things"]`),
		IsActive:         true,
	}
	if err := db.Create(&job).Error; err != nil {
		t.Fatalf("failed to create test job: %v", err)
	}
	return job
}

// ValidSnapshot is a complete application payload that passes submit
// validation in manual resume mode.
func ValidSnapshot() map[string]interface{} {
	return map[string]interface{}{
		"full_name":    "Jane Doe",
		"email":        "jane@example.com",
		"phone":        "+1 555 0100",
		"linkedin":     "https://linkedin.com/in/janedoe",
		"portfolio":    "https://janedoe.dev",
		"cover_letter": "I am a great fit.",
		"resume_text":  "https://drive.example.com/my-resume",
	}
}
