// Package httpapi serves the tracker's JSON API under /api.
package httpapi

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alexanderramin/iamonit/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// Services are the use cases the API exposes.
type Services struct {
	Programs service.ProgramService
	Courses  service.CourseService
	Tasks    service.TaskService
	Stats    service.StatsService
}

type Options struct {
	// CORSOrigins is a comma-separated origin list, "*" for any.
	CORSOrigins string
	// Logger receives startup, shutdown and 500 errors.
	Logger *slog.Logger
	// AccessLog receives one line per request. Nil means stdout; io.Discard
	// silences it.
	AccessLog io.Writer
	// Today samples the reference day once per request. Nil means time.Now.
	Today func() time.Time
}

// New builds the fiber app with middleware and every route registered.
func New(svc Services, opts Options) *fiber.App {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	if opts.AccessLog == nil {
		opts.AccessLog = os.Stdout
	}
	if opts.Today == nil {
		opts.Today = time.Now
	}
	if opts.CORSOrigins == "" {
		opts.CORSOrigins = "*"
	}

	app := fiber.New(fiber.Config{
		AppName:               "iamonit",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(opts.Logger),
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		Output: opts.AccessLog,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: opts.CORSOrigins,
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	}))

	h := &handlers{svc: svc, today: opts.Today}
	registerRoutes(app, h)
	return app
}

func registerRoutes(app *fiber.App, h *handlers) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	api.Get("/programs", h.listPrograms)
	api.Get("/programs/:id", h.getProgram)
	api.Post("/programs", h.createProgram)
	api.Put("/programs/:id", h.updateProgram)
	api.Delete("/programs/:id", h.deleteProgram)

	api.Get("/courses", h.listCourses)
	api.Get("/courses/:id", h.getCourse)
	api.Post("/courses", h.createCourse)
	api.Put("/courses/:id", h.updateCourse)
	api.Delete("/courses/:id", h.deleteCourse)

	api.Get("/tasks", h.listTasks)
	api.Get("/tasks/:id", h.getTask)
	api.Post("/tasks", h.createTask)
	api.Put("/tasks/:id", h.updateTask)
	api.Patch("/tasks/:id", h.patchTask)
	api.Delete("/tasks/:id", h.deleteTask)

	api.Get("/stats", h.stats)
}

// Serve listens on addr until ctx is cancelled, then shuts down gracefully.
func Serve(ctx context.Context, app *fiber.App, addr string, log *slog.Logger) error {
	errc := make(chan error, 1)
	go func() {
		log.Info("http server listening", "addr", addr)
		errc <- app.Listen(addr)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		log.Info("http server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	}
}
