package api

import (
	"os"

	"college-hub/internal/api/handlers"
	"college-hub/pkg/auth"
	"college-hub/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func SetupRouter(
	authHandler *handlers.AuthHandler,
	chatHandler *handlers.ChatHandler,
	contentHandler *handlers.ContentHandler,
	formHandler *handlers.FormHandler,
	jwtManager *auth.JWTManager,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Static site assets, when deployed alongside the binary. Page
	// templates themselves are rendered elsewhere.
	if staticPath := findStaticPath(); staticPath != "" {
		appLogger.Info("Serving static files", zap.String("path", staticPath))
		app.Static("/", staticPath)
	}

	app.Post("/chat", chatHandler.Chat)
	app.Post("/admin/login", authHandler.Login)

	authRequired := middleware.AuthMiddleware(jwtManager, appLogger)

	api := app.Group("/api")
	api.Get("/content", contentHandler.GetContent)
	api.Post("/content", authRequired, contentHandler.UpdateContent)

	// Public form intake
	api.Post("/submit-form", formHandler.SubmitForm)
	api.Post("/register-event", formHandler.RegisterEvent)

	// Admin dashboard API
	api.Get("/submissions", authRequired, formHandler.ListSubmissions)
	api.Post("/submissions", authRequired, formHandler.DeleteSubmission)
	api.Post("/submissions/status", authRequired, formHandler.UpdateStatus)
	api.Get("/export/:category", authRequired, formHandler.ExportCSV)
	api.Get("/export/:category/xlsx", authRequired, formHandler.ExportXLSX)

	return app
}

// findStaticPath locates the web/static directory relative to the working
// directory.
func findStaticPath() string {
	paths := []string{
		"./web/static",
		"../web/static",
		"../../web/static",
	}
	for _, path := range paths {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return path
		}
	}
	return ""
}
