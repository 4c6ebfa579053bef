package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"candidate-tracker/internal/config"
	"candidate-tracker/internal/gateway"
	"candidate-tracker/internal/handler"
	"candidate-tracker/internal/mailer"
	"candidate-tracker/internal/media"
	"candidate-tracker/internal/middleware"
	"candidate-tracker/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	rdb, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer rdb.Close()

	var uploader *media.Uploader
	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to MinIO: %v (import files will not be archived)", err)
	} else {
		uploader = media.NewUploader(minioClient, cfg.MinIOBucket)
	}

	gateways := gateway.NewGateways(db)
	sessions := store.NewRedisSessions(rdb, cfg.SessionTTL, cfg.RememberTTL)
	mail := mailer.NewService(cfg)

	st := store.New(gateways, sessions, mail, cfg)
	if err := st.Load(context.Background()); err != nil {
		log.Fatalf("Failed to load data: %v", err)
	}
	if user, err := st.Restore(context.Background()); err == nil && user != nil {
		log.Printf("Restored session for %s", user.Email)
	}

	handlers := handler.NewHandlers(st, uploader)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	setupRoutes(app, handlers, st)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, st *store.Store) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.Post("/login", h.Auth.Login)
	auth.Post("/login/remembered", h.Auth.LoginRemembered)

	protected := v1.Group("", middleware.AuthRequired(st))

	protected.Post("/auth/logout", h.Auth.Logout)
	protected.Get("/auth/me", h.Auth.Me)

	candidates := protected.Group("/candidates")
	candidates.Get("/", h.Candidate.List)
	candidates.Post("/", h.Candidate.Create)
	candidates.Patch("/:id/status", h.Candidate.UpdateStatus)
	candidates.Post("/:id/decision", h.Candidate.SaveDecision)
	candidates.Delete("/:id", h.Candidate.Delete)

	saved := protected.Group("/saved-candidates")
	saved.Get("/", h.SavedCandidate.List)
	saved.Get("/rejection-check", h.SavedCandidate.CheckRejection)
	saved.Post("/deduplicate", h.SavedCandidate.Deduplicate)
	saved.Post("/bulk-delete", h.SavedCandidate.BulkDelete)
	saved.Post("/:id/exclude", h.SavedCandidate.Exclude)
	saved.Post("/:id/resign", h.SavedCandidate.Resign)
	saved.Delete("/:id", h.SavedCandidate.Delete)

	interviews := protected.Group("/interviews")
	interviews.Get("/", h.Interview.List)
	interviews.Post("/", h.Interview.Create)
	interviews.Put("/:id", h.Interview.Update)
	interviews.Delete("/:id", h.Interview.Delete)

	notifications := protected.Group("/notifications")
	notifications.Get("/", h.Notification.List)
	notifications.Post("/:id/read", h.Notification.MarkRead)

	users := protected.Group("/users")
	users.Get("/", h.User.List)
	users.Post("/", h.User.Create)
	users.Patch("/:id/role", h.User.UpdateRole)

	imports := protected.Group("/import")
	imports.Post("/candidates", h.Import.ImportCandidates)
	imports.Post("/saved-candidates", h.Import.ImportSavedCandidates)

	protected.Get("/dashboard/stats", h.Dashboard.Stats)
}
