package routes

import (
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	tokens *services.TokenService,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	jobHandler *handlers.JobHandler,
	applicationHandler *handlers.ApplicationHandler,
	notificationHandler *handlers.NotificationHandler,
	postHandler *handlers.PostHandler,
	healthHandler *handlers.HealthHandler,
) {
	protected := middleware.Protected(cfg, tokens)
	adminOnly := middleware.RequireRoles(models.RoleAdmin)

	app.Get("/health", healthHandler.Check)

	// Public
	app.Post("/auth/login", authHandler.Login)
	app.Post("/users/register", userHandler.Register)

	// Self-service profile. Registered before /users/:id so "me" is not
	// taken for an id.
	app.Get("/users/me", protected, userHandler.MyProfile)
	app.Put("/users/me", protected, userHandler.UpdateMyProfile)

	// Admin user management
	users := app.Group("/users", protected, adminOnly)
	users.Post("/", userHandler.AdminCreate)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.Get)
	users.Put("/:id", userHandler.AdminUpdate)
	users.Delete("/:id", userHandler.Delete)

	// Jobs. Ownership (owner-or-Admin on mutation) is enforced inside the
	// service through the policy evaluator.
	jobs := app.Group("/jobs", protected)
	jobs.Post("/", middleware.RequireRoles(models.RoleManager), jobHandler.Create)
	jobs.Get("/mine", middleware.RequireRoles(models.RoleManager), jobHandler.ListMine)
	jobs.Get("/", middleware.RequireRoles(models.RoleManager, models.RoleApplicant), jobHandler.List)
	jobs.Get("/:id", middleware.RequireRoles(models.RoleManager, models.RoleApplicant), jobHandler.Get)
	jobs.Put("/:id", middleware.RequireRoles(models.RoleManager, models.RoleAdmin), jobHandler.Update)
	jobs.Delete("/:id", middleware.RequireRoles(models.RoleManager, models.RoleAdmin), jobHandler.Delete)

	// Applications. The applicant-only rule lives in the workflow itself
	// so managers and admins get a 403 even past the route gate.
	applications := app.Group("/jobapplications", protected)
	applications.Post("/apply/:jobId", applicationHandler.Apply)
	applications.Get("/mine", applicationHandler.ListMine)

	// Notifications: strictly owner-scoped.
	notifications := app.Group("/notifications", protected)
	notifications.Get("/mine", notificationHandler.ListMine)
	notifications.Put("/:id/read", notificationHandler.MarkRead)

	// Posts
	posts := app.Group("/posts", protected)
	posts.Post("/", postHandler.Create)
	posts.Get("/", postHandler.List)
	posts.Get("/:id", postHandler.Get)
	posts.Put("/:id", postHandler.Update)
	posts.Delete("/:id", postHandler.Delete)
}
