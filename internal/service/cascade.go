package service

import (
	"context"
	"time"

	"github.com/alexanderramin/iamonit/internal/app"
	"github.com/alexanderramin/iamonit/internal/db"
	"github.com/alexanderramin/iamonit/internal/repository"
)

// cascader removes an entity together with everything beneath it. Each
// delete is one transaction: children go first, and any failing step rolls
// the whole cascade back.
type cascader struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func (c cascader) deleteProgram(ctx context.Context, id int64) (res *app.DeleteResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"program_id": id}
	defer observe(ctx, c.observer, "delete-program", startedAt, fields, &err)

	res = &app.DeleteResult{}
	err = c.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		var err error
		if res.TasksDeleted, err = repository.NewSQLiteTaskRepo(tx).DeleteByProgram(ctx, id); err != nil {
			return err
		}
		if res.CoursesDeleted, err = repository.NewSQLiteCourseRepo(tx).DeleteByProgram(ctx, id); err != nil {
			return err
		}
		res.Deleted, err = repository.NewSQLiteProgramRepo(tx).Delete(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	fields["deleted"] = res.Deleted
	fields["courses_deleted"] = res.CoursesDeleted
	fields["tasks_deleted"] = res.TasksDeleted
	return res, nil
}

func (c cascader) deleteCourse(ctx context.Context, id int64) (res *app.DeleteResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"course_id": id}
	defer observe(ctx, c.observer, "delete-course", startedAt, fields, &err)

	res = &app.DeleteResult{}
	err = c.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		var err error
		if res.TasksDeleted, err = repository.NewSQLiteTaskRepo(tx).DeleteByCourse(ctx, id); err != nil {
			return err
		}
		res.Deleted, err = repository.NewSQLiteCourseRepo(tx).Delete(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	fields["deleted"] = res.Deleted
	fields["tasks_deleted"] = res.TasksDeleted
	return res, nil
}

func (c cascader) deleteTask(ctx context.Context, id int64) (res *app.DeleteResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"task_id": id}
	defer observe(ctx, c.observer, "delete-task", startedAt, fields, &err)

	res = &app.DeleteResult{}
	err = c.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		var err error
		res.Deleted, err = repository.NewSQLiteTaskRepo(tx).Delete(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	fields["deleted"] = res.Deleted
	return res, nil
}
