package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tutorgalaxy/study_platform/models"
)

func TestCreateUserFirstAndRepeat(t *testing.T) {
	app, db := setupApp(t)

	body := map[string]interface{}{"name": "Ayesha Khan", "email": "a@x.com", "role": "student"}

	resp := doRequest(t, app, http.MethodPost, "/users", "", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var first map[string]interface{}
	decodeBody(t, resp, &first)
	assert.Equal(t, false, first["exist"])
	assert.NotNil(t, first["user"])

	resp = doRequest(t, app, http.MethodPost, "/users", "", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var second map[string]interface{}
	decodeBody(t, resp, &second)
	assert.Equal(t, true, second["exist"])

	var count int64
	db.Model(&models.User{}).Where("email = ?", "a@x.com").Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestCreateUserRejectsAdminRole(t *testing.T) {
	app, _ := setupApp(t)

	body := map[string]interface{}{"name": "Sneaky", "email": "s@x.com", "role": "admin"}
	resp := doRequest(t, app, http.MethodPost, "/users", "", body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetUserByEmail(t *testing.T) {
	app, db := setupApp(t)
	createUser(t, db, "tutor@x.com", models.RoleTutor)

	resp := doRequest(t, app, http.MethodGet, "/users/role/tutor@x.com", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var user map[string]interface{}
	decodeBody(t, resp, &user)
	assert.Equal(t, "tutor", user["role"])
}

func TestGetUserByEmailUnknownAnswersNull(t *testing.T) {
	app, _ := setupApp(t)

	resp := doRequest(t, app, http.MethodGet, "/users/role/ghost@x.com", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var user *map[string]interface{}
	decodeBody(t, resp, &user)
	assert.Nil(t, user)
}

func TestUpdateProfileLeavesRoleAlone(t *testing.T) {
	app, db := setupApp(t)
	createUser(t, db, "stu@x.com", models.RoleStudent)

	body := map[string]interface{}{"name": "New Name", "phone": "0700000000"}
	resp := doRequest(t, app, http.MethodPatch, "/api/user/update-profile/stu@x.com", "", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var user models.User
	require.NoError(t, db.Where("email = ?", "stu@x.com").First(&user).Error)
	assert.Equal(t, "New Name", user.FullName)
	assert.Equal(t, models.RoleStudent, user.Role)
	require.NotNil(t, user.Phone)
	assert.Equal(t, "0700000000", *user.Phone)
}
