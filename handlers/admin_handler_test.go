package handlers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tutorgalaxy/study_platform/models"
)

func TestListUsersPaginated(t *testing.T) {
	app, db := setupApp(t)
	admin := createUser(t, db, "admin@x.com", models.RoleAdmin)
	token := issueToken(t, admin.Email, admin.Role, time.Hour)

	for i := 0; i < 12; i++ {
		createUser(t, db, fmt.Sprintf("u%02d@x.com", i), models.RoleStudent)
	}

	resp := doRequest(t, app, http.MethodGet, "/api/admin/users?page=1&limit=10", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Users      []models.User `json:"users"`
		Count      int64         `json:"count"`
		TotalPages int           `json:"total_pages"`
	}
	decodeBody(t, resp, &body)
	assert.EqualValues(t, 13, body.Count) // 12 students + the admin
	assert.Equal(t, 2, body.TotalPages)
	assert.Len(t, body.Users, 3)
}

func TestSearchUsersByNameOrEmail(t *testing.T) {
	app, db := setupApp(t)
	admin := createUser(t, db, "admin@x.com", models.RoleAdmin)
	token := issueToken(t, admin.Email, admin.Role, time.Hour)

	alice := models.User{FullName: "Alice Wanjiru", Email: "alice@x.com", Role: models.RoleStudent}
	bob := models.User{FullName: "Bob Ouma", Email: "bob@x.com", Role: models.RoleTutor}
	require.NoError(t, db.Create(&alice).Error)
	require.NoError(t, db.Create(&bob).Error)

	resp := doRequest(t, app, http.MethodGet, "/api/admin/search-user?q=WANJIRU", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var users []models.User
	decodeBody(t, resp, &users)
	require.Len(t, users, 1)
	assert.Equal(t, "alice@x.com", users[0].Email)

	resp = doRequest(t, app, http.MethodGet, "/api/admin/search-user?q=bob@", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &users)
	require.Len(t, users, 1)
	assert.Equal(t, "Bob Ouma", users[0].FullName)
}

func TestAdminRoutesRejectNonAdmins(t *testing.T) {
	app, db := setupApp(t)
	tutor := createUser(t, db, "tutor@x.com", models.RoleTutor)
	token := issueToken(t, tutor.Email, tutor.Role, time.Hour)

	resp := doRequest(t, app, http.MethodGet, "/api/admin/users", token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
