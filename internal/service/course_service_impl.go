package service

import (
	"context"
	"time"

	"github.com/alexanderramin/iamonit/internal/app"
	"github.com/alexanderramin/iamonit/internal/db"
	"github.com/alexanderramin/iamonit/internal/domain"
	"github.com/alexanderramin/iamonit/internal/repository"
)

type courseService struct {
	courses repository.CourseRepo
	uow     db.UnitOfWork
	cascade cascader
}

func NewCourseService(courses repository.CourseRepo, uow db.UnitOfWork, observers ...UseCaseObserver) CourseService {
	return &courseService{
		courses: courses,
		uow:     uow,
		cascade: cascader{uow: uow, observer: useCaseObserverOrNoop(observers)},
	}
}

func (s *courseService) Create(ctx context.Context, c *domain.Course) error {
	c.Normalize()
	if err := c.Validate(); err != nil {
		return err
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := requireProgram(ctx, tx, c.ProgramID); err != nil {
			return err
		}
		return repository.NewSQLiteCourseRepo(tx).Create(ctx, c)
	})
}

func (s *courseService) GetByID(ctx context.Context, id int64) (*domain.Course, error) {
	return s.courses.GetByID(ctx, id)
}

func (s *courseService) List(ctx context.Context, programID *int64) ([]app.CourseView, error) {
	listings, err := s.courses.List(ctx, programID)
	if err != nil {
		return nil, err
	}
	views := make([]app.CourseView, 0, len(listings))
	for _, l := range listings {
		views = append(views, app.CourseView{Course: l.Course, ProgramName: l.ProgramName})
	}
	return views, nil
}

// Update replaces every field. Moving a course to another program requires
// that program to exist.
func (s *courseService) Update(ctx context.Context, c *domain.Course) (n int64, err error) {
	c.Normalize()
	if err := c.Validate(); err != nil {
		return 0, err
	}
	c.UpdatedAt = time.Now().UTC()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := requireProgram(ctx, tx, c.ProgramID); err != nil {
			return err
		}
		var err error
		n, err = repository.NewSQLiteCourseRepo(tx).Update(ctx, c)
		return err
	})
	return n, err
}

// Delete removes the course and its tasks.
func (s *courseService) Delete(ctx context.Context, id int64) (*app.DeleteResult, error) {
	return s.cascade.deleteCourse(ctx, id)
}

func requireProgram(ctx context.Context, tx db.DBTX, id int64) error {
	ok, err := repository.NewSQLiteProgramRepo(tx).Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return &domain.ReferenceError{Entity: "program", ID: id}
	}
	return nil
}

func requireCourse(ctx context.Context, tx db.DBTX, id int64) error {
	ok, err := repository.NewSQLiteCourseRepo(tx).Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return &domain.ReferenceError{Entity: "course", ID: id}
	}
	return nil
}
