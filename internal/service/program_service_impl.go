package service

import (
	"context"
	"time"

	"github.com/alexanderramin/iamonit/internal/app"
	"github.com/alexanderramin/iamonit/internal/db"
	"github.com/alexanderramin/iamonit/internal/domain"
	"github.com/alexanderramin/iamonit/internal/repository"
)

type programService struct {
	programs repository.ProgramRepo
	cascade  cascader
}

func NewProgramService(programs repository.ProgramRepo, uow db.UnitOfWork, observers ...UseCaseObserver) ProgramService {
	return &programService{
		programs: programs,
		cascade:  cascader{uow: uow, observer: useCaseObserverOrNoop(observers)},
	}
}

func (s *programService) Create(ctx context.Context, p *domain.Program) error {
	p.Normalize()
	if err := p.Validate(); err != nil {
		return err
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.programs.Create(ctx, p)
}

func (s *programService) GetByID(ctx context.Context, id int64) (*domain.Program, error) {
	return s.programs.GetByID(ctx, id)
}

func (s *programService) List(ctx context.Context) ([]*domain.Program, error) {
	return s.programs.List(ctx)
}

// Update replaces name, college and semester; omitted optionals are cleared.
func (s *programService) Update(ctx context.Context, p *domain.Program) (int64, error) {
	p.Normalize()
	if err := p.Validate(); err != nil {
		return 0, err
	}
	p.UpdatedAt = time.Now().UTC()
	return s.programs.Update(ctx, p)
}

// Delete removes the program with all of its courses and their tasks.
func (s *programService) Delete(ctx context.Context, id int64) (*app.DeleteResult, error) {
	return s.cascade.deleteProgram(ctx, id)
}
