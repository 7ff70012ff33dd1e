package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/tutorgalaxy/study_platform/models"
	"github.com/tutorgalaxy/study_platform/notifications"
	"gorm.io/gorm"
)

// Sessions waiting this long in the review queue trigger an admin nudge.
const pendingReviewAge = 48 * time.Hour

// RemindPendingSessions emails every admin when tutor submissions have
// been sitting in pending for too long. Scheduled hourly from main.
func RemindPendingSessions(db *gorm.DB) {
	log.Println("Running job: RemindPendingSessions...")

	cutoff := time.Now().Add(-pendingReviewAge)

	var count int64
	err := db.Model(&models.StudySession{}).
		Where("status = ? AND created_at < ?", models.SessionPending, cutoff).
		Count(&count).Error
	if err != nil {
		log.Printf("Error counting pending sessions: %v", err)
		return
	}
	if count == 0 {
		return
	}

	var admins []models.User
	if err := db.Where("role = ?", models.RoleAdmin).Find(&admins).Error; err != nil {
		log.Printf("Error loading admins: %v", err)
		return
	}

	subject := "Study Sessions Awaiting Review"
	body := fmt.Sprintf(
		"<h1>Review Queue Reminder</h1><p>There are <b>%d</b> study sessions that have been pending review for more than 48 hours.</p>",
		count,
	)
	for _, admin := range admins {
		go notifications.SendEmail(admin.FullName, admin.Email, subject, body)
	}
}
