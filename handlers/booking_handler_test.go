package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tutorgalaxy/study_platform/models"
)

func TestCreateBooking(t *testing.T) {
	app, db := setupApp(t)
	student := createUser(t, db, "stu@x.com", models.RoleStudent)
	token := issueToken(t, student.Email, student.Role, time.Hour)
	session := createSession(t, db, "tutor@x.com", models.SessionApproved)

	resp := doRequest(t, app, http.MethodPost, "/bookings", token, map[string]interface{}{
		"session_id":        session.ID.String(),
		"amount":            20.0,
		"payment_intent_id": "pi_123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var booking models.Booking
	require.NoError(t, db.First(&booking).Error)
	assert.Equal(t, session.ID, booking.SessionID)
	assert.Equal(t, student.Email, booking.StudentEmail)
	assert.Equal(t, "tutor@x.com", booking.TutorEmail)
	assert.EqualValues(t, 20, booking.Amount)
}

// Re-booking the same session is allowed by default; the uniqueness
// constraint only kicks in when the policy switch disables duplicates.
func TestDuplicateBookingPolicy(t *testing.T) {
	app, db := setupApp(t)
	student := createUser(t, db, "stu@x.com", models.RoleStudent)
	token := issueToken(t, student.Email, student.Role, time.Hour)
	session := createSession(t, db, "tutor@x.com", models.SessionApproved)

	body := map[string]interface{}{"session_id": session.ID.String(), "amount": 10.0}

	resp := doRequest(t, app, http.MethodPost, "/bookings", token, body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp = doRequest(t, app, http.MethodPost, "/bookings", token, body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	t.Setenv("ALLOW_DUPLICATE_BOOKINGS", "false")
	resp = doRequest(t, app, http.MethodPost, "/bookings", token, body)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var count int64
	db.Model(&models.Booking{}).Count(&count)
	assert.EqualValues(t, 2, count)
}

func TestBookingUnknownSession(t *testing.T) {
	app, db := setupApp(t)
	student := createUser(t, db, "stu@x.com", models.RoleStudent)
	token := issueToken(t, student.Email, student.Role, time.Hour)

	resp := doRequest(t, app, http.MethodPost, "/bookings", token, map[string]interface{}{
		"session_id": "6a9f3cde-0000-4000-8000-000000000000",
		"amount":     10.0,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListBookedSessionIDs(t *testing.T) {
	app, db := setupApp(t)
	student := createUser(t, db, "stu@x.com", models.RoleStudent)
	token := issueToken(t, student.Email, student.Role, time.Hour)

	first := createSession(t, db, "tutor@x.com", models.SessionApproved)
	second := createSession(t, db, "tutor@x.com", models.SessionApproved)
	require.NoError(t, db.Create(&models.Booking{SessionID: first.ID, StudentEmail: student.Email}).Error)
	require.NoError(t, db.Create(&models.Booking{SessionID: second.ID, StudentEmail: student.Email}).Error)

	resp := doRequest(t, app, http.MethodGet, "/bookings/session-ids/stu@x.com", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var ids []string
	decodeBody(t, resp, &ids)
	assert.ElementsMatch(t, []string{first.ID.String(), second.ID.String()}, ids)
}

func TestBookingsOfAnotherStudentAreForbidden(t *testing.T) {
	app, db := setupApp(t)
	student := createUser(t, db, "stu@x.com", models.RoleStudent)
	token := issueToken(t, student.Email, student.Role, time.Hour)

	resp := doRequest(t, app, http.MethodGet, "/bookings/other@x.com", token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
