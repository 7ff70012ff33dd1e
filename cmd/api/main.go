package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
	config "github.com/tutorgalaxy/study_platform/configs"
	"github.com/tutorgalaxy/study_platform/database"
	"github.com/tutorgalaxy/study_platform/jobs"
	"github.com/tutorgalaxy/study_platform/notifications"
	"github.com/tutorgalaxy/study_platform/payments"
	"github.com/tutorgalaxy/study_platform/routes"
	"github.com/tutorgalaxy/study_platform/websocket"
)

func main() {
	db, err := database.Connect(config.Config("DATABASE_URL"))
	if err != nil {
		log.Fatalf("🔥 %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("🔥 %v", err)
	}
	database.SeedAdmin(db)
	notifications.InitEmailService()

	stripe := payments.NewStripeService()

	hub := websocket.NewHub()
	go hub.Run()

	c := cron.New()
	c.AddFunc("0 * * * *", func() { jobs.RemindPendingSessions(db) })
	c.Start()
	log.Println("✅ Pending-review reminder job scheduled.")

	app := fiber.New(fiber.Config{
		AppName:       "TutorGalaxy",
		CaseSensitive: true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := err.Error()
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())

			// Storage and gateway failures surface here; the caller gets a
			// generic 5xx, the detail stays in the log.
			if code >= fiber.StatusInternalServerError {
				message = "Internal Server Error"
			}
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": message,
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, Sec-WebSocket-Key, Sec-WebSocket-Version",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization",
		MaxAge:        86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Welcome to the TutorGalaxy API",
		})
	})

	routes.Register(app, db, hub, stripe)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	port := config.ConfigOr("PORT", "5000")
	log.Printf("✅ TutorGalaxy is listening on PORT: %s", port)
	if err := app.Listen(fmt.Sprintf(":%s", port)); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
