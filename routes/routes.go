package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tutorgalaxy/study_platform/handlers"
	"github.com/tutorgalaxy/study_platform/payments"
	"github.com/tutorgalaxy/study_platform/websocket"
	"gorm.io/gorm"
)

// Register wires every route group onto the app. The same wiring serves
// main and the handler tests.
func Register(app *fiber.App, db *gorm.DB, hub *websocket.Hub, stripe *payments.StripeService) {
	UserRoutes(app, handlers.NewUserHandler(db))
	AuthRoutes(app, handlers.NewAuthHandler())
	SessionRoutes(app, handlers.NewSessionHandler(db), db)
	BookingRoutes(app, handlers.NewBookingHandler(db), db)
	ReviewRoutes(app, handlers.NewReviewHandler(db), db)
	NoteRoutes(app, handlers.NewNoteHandler(db), db)
	MaterialRoutes(app, handlers.NewMaterialHandler(db), db)
	AnnouncementRoutes(app, handlers.NewAnnouncementHandler(db, hub), db, hub)
	TutorRoutes(app, handlers.NewTutorHandler(db), db)
	AdminRoutes(app, handlers.NewAdminHandler(db), db)
	PaymentRoutes(app, handlers.NewPaymentHandler(stripe))
}
