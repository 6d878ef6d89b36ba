package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/iamonit/internal/app"
	"github.com/alexanderramin/iamonit/internal/db"
	"github.com/alexanderramin/iamonit/internal/domain"
	"github.com/alexanderramin/iamonit/internal/importer"
	"github.com/alexanderramin/iamonit/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *importService) ImportProgram(ctx context.Context, filePath string) (*app.ImportResult, error) {
	schema, err := importer.LoadImportSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.importSchema(ctx, schema)
}

func (s *importService) ImportProgramFromSchema(ctx context.Context, schema *importer.ImportSchema) (*app.ImportResult, error) {
	return s.importSchema(ctx, schema)
}

func (s *importService) importSchema(ctx context.Context, schema *importer.ImportSchema) (result *app.ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"program": schema.Program.Name}
	defer observe(ctx, s.observer, "import-program", startedAt, fields, &err)

	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	generated, err := importer.Convert(schema, startedAt)
	if err != nil {
		return nil, fmt.Errorf("converting import schema: %w", err)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		programs := repository.NewSQLiteProgramRepo(tx)
		courses := repository.NewSQLiteCourseRepo(tx)
		tasks := repository.NewSQLiteTaskRepo(tx)

		if err := programs.Create(ctx, generated.Program); err != nil {
			return fmt.Errorf("creating program: %w", err)
		}
		for _, gc := range generated.Courses {
			gc.Course.ProgramID = generated.Program.ID
			if err := courses.Create(ctx, gc.Course); err != nil {
				return fmt.Errorf("creating course %q: %w", gc.Course.Code, err)
			}
			for _, t := range gc.Tasks {
				t.CourseID = gc.Course.ID
				if err := t.ValidateImported(); err != nil {
					return fmt.Errorf("task %q: %w", t.Title, err)
				}
				if err := tasks.Create(ctx, t); err != nil {
					return fmt.Errorf("creating task %q: %w", t.Title, err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result = &app.ImportResult{
		Program:     generated.Program,
		CourseCount: len(generated.Courses),
		TaskCount:   generated.TaskCount(),
	}
	fields["course_count"] = result.CourseCount
	fields["task_count"] = result.TaskCount
	return result, nil
}

// formatValidationErrors folds every schema problem into one ValidationError
// so callers can tell a bad file from a storage failure.
func formatValidationErrors(errs []error) error {
	reason := fmt.Sprintf("validation failed (%d errors):", len(errs))
	for _, e := range errs {
		reason += "\n  - " + e.Error()
	}
	return &domain.ValidationError{Field: "import", Reason: reason}
}
