package cli

import (
	"log/slog"
	"time"

	"github.com/alexanderramin/iamonit/internal/config"
	"github.com/alexanderramin/iamonit/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Programs service.ProgramService
	Courses  service.CourseService
	Tasks    service.TaskService
	Stats    service.StatsService
	Import   service.ImportService

	// Config supplies serve defaults (address, CORS origins).
	Config config.Config
	Logger *slog.Logger

	// Today samples the reference day for urgency labels. Nil means time.Now.
	Today func() time.Time

	// IsInteractive reports whether stdin is a terminal. Commands only
	// prompt when it returns true; nil means never.
	IsInteractive func() bool
}

func (a *App) today() time.Time {
	if a.Today == nil {
		return time.Now()
	}
	return a.Today()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.Default()
	}
	return a.Logger
}

// NewRootCmd creates the top-level "iamonit" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "iamonit",
		Short:         "Track programs, courses and their deadlines",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCmd(app),
		newProgramCmd(app),
		newCourseCmd(app),
		newTaskCmd(app),
		newStatsCmd(app),
		newImportCmd(app),
		newBoardCmd(app),
	)

	return root
}
