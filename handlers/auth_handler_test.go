package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tutorgalaxy/study_platform/models"
)

func TestIssueToken(t *testing.T) {
	app, db := setupApp(t)
	tutor := createUser(t, db, "tutor@x.com", models.RoleTutor)

	resp := doRequest(t, app, http.MethodPost, "/jwt", "", map[string]interface{}{
		"email": tutor.Email,
		"role":  tutor.Role,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	require.NotEmpty(t, body["token"])

	resp = doRequest(t, app, http.MethodGet, "/study-sessions/tutor/tutor@x.com", body["token"], nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestTokenExpiryWindow(t *testing.T) {
	app, db := setupApp(t)
	createUser(t, db, "tutor@x.com", models.RoleTutor)

	// still inside the 1-hour validity
	fresh := issueToken(t, "tutor@x.com", models.RoleTutor, 59*time.Minute)
	resp := doRequest(t, app, http.MethodGet, "/study-sessions/tutor/tutor@x.com", fresh, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// one minute past expiry
	stale := issueToken(t, "tutor@x.com", models.RoleTutor, -time.Minute)
	resp = doRequest(t, app, http.MethodGet, "/study-sessions/tutor/tutor@x.com", stale, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMissingTokenIsUnauthorized(t *testing.T) {
	app, _ := setupApp(t)

	resp := doRequest(t, app, http.MethodPost, "/study-sessions", "", map[string]interface{}{"title": "x"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// The gate authorizes against the stored role: demoting a user flips the
// outcome of the very next request even though the old token is still
// cryptographically valid.
func TestRoleIsReadLiveFromStorage(t *testing.T) {
	app, db := setupApp(t)
	tutor := createUser(t, db, "tutor@x.com", models.RoleTutor)
	token := issueToken(t, tutor.Email, models.RoleTutor, time.Hour)

	resp := doRequest(t, app, http.MethodGet, "/study-sessions/tutor/tutor@x.com", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, db.Model(&models.User{}).
		Where("email = ?", tutor.Email).
		Update("role", models.RoleStudent).Error)

	resp = doRequest(t, app, http.MethodGet, "/study-sessions/tutor/tutor@x.com", token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
