package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/iamonit/internal/cli"
	"github.com/alexanderramin/iamonit/internal/config"
	"github.com/alexanderramin/iamonit/internal/db"
	"github.com/alexanderramin/iamonit/internal/repository"
	"github.com/alexanderramin/iamonit/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := cfg.NewLogger(os.Stderr)

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	programRepo := repository.NewSQLiteProgramRepo(database)
	courseRepo := repository.NewSQLiteCourseRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewSlogUseCaseObserver(logger))
	}

	app := &cli.App{
		Programs: service.NewProgramService(programRepo, uow, observers...),
		Courses:  service.NewCourseService(courseRepo, uow, observers...),
		Tasks:    service.NewTaskService(taskRepo, uow, observers...),
		Stats:    service.NewStatsService(taskRepo),
		Import:   service.NewImportService(uow, observers...),
		Config:   cfg,
		Logger:   logger,
		Today:    cfg.Today,
	}

	// Forms and confirmations only prompt on an interactive terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
