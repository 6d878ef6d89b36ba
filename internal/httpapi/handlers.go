package httpapi

import (
	"strconv"
	"time"

	"github.com/alexanderramin/iamonit/internal/app"
	"github.com/alexanderramin/iamonit/internal/domain"
	"github.com/gofiber/fiber/v2"
)

type handlers struct {
	svc   Services
	today func() time.Time
}

func pathID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, badRequest("invalid id %q", c.Params("id"))
	}
	return id, nil
}

// queryID reads an optional positive integer query parameter.
func queryID(c *fiber.Ctx, key string) (*int64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, badRequest("invalid %s %q", key, raw)
	}
	return &id, nil
}

func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		if domain.IsValidation(err) {
			return err
		}
		return badRequest("invalid request body: %v", err)
	}
	return nil
}

// Programs

func (h *handlers) listPrograms(c *fiber.Ctx) error {
	programs, err := h.svc.Programs.List(c.UserContext())
	if err != nil {
		return err
	}
	out := make([]programJSON, 0, len(programs))
	for _, p := range programs {
		out = append(out, toProgramJSON(p))
	}
	return c.JSON(out)
}

func (h *handlers) getProgram(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	p, err := h.svc.Programs.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(toProgramJSON(p))
}

func (h *handlers) createProgram(c *fiber.Ctx) error {
	var req programRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	p := req.toDomain(0)
	if err := h.svc.Programs.Create(c.UserContext(), p); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(toProgramJSON(p))
}

func (h *handlers) updateProgram(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req programRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	n, err := h.svc.Programs.Update(c.UserContext(), req.toDomain(id))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"updated": n})
}

func (h *handlers) deleteProgram(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	res, err := h.svc.Programs.Delete(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"deleted":         res.Deleted,
		"courses_deleted": res.CoursesDeleted,
		"tasks_deleted":   res.TasksDeleted,
	})
}

// Courses

func (h *handlers) listCourses(c *fiber.Ctx) error {
	programID, err := queryID(c, "program_id")
	if err != nil {
		return err
	}
	courses, err := h.svc.Courses.List(c.UserContext(), programID)
	if err != nil {
		return err
	}
	out := make([]courseJSON, 0, len(courses))
	for i := range courses {
		out = append(out, toCourseJSON(&courses[i].Course, courses[i].ProgramName))
	}
	return c.JSON(out)
}

func (h *handlers) getCourse(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	course, err := h.svc.Courses.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(toCourseJSON(course, ""))
}

func (h *handlers) createCourse(c *fiber.Ctx) error {
	var req courseRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	course := req.toDomain(0)
	if err := h.svc.Courses.Create(c.UserContext(), course); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(toCourseJSON(course, ""))
}

func (h *handlers) updateCourse(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req courseRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	n, err := h.svc.Courses.Update(c.UserContext(), req.toDomain(id))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"updated": n})
}

func (h *handlers) deleteCourse(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	res, err := h.svc.Courses.Delete(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"deleted": res.Deleted, "tasks_deleted": res.TasksDeleted})
}

// Tasks

func (h *handlers) listTasks(c *fiber.Ctx) error {
	q := app.TaskQuery{Status: domain.TaskStatus(c.Query("status")), Today: h.today()}
	var err error
	if q.CourseID, err = queryID(c, "course_id"); err != nil {
		return err
	}
	if q.ProgramID, err = queryID(c, "program_id"); err != nil {
		return err
	}
	views, err := h.svc.Tasks.List(c.UserContext(), q)
	if err != nil {
		return err
	}
	out := make([]taskJSON, 0, len(views))
	for i := range views {
		out = append(out, toTaskViewJSON(&views[i]))
	}
	return c.JSON(out)
}

func (h *handlers) getTask(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	t, err := h.svc.Tasks.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(toTaskJSON(t))
}

func (h *handlers) createTask(c *fiber.Ctx) error {
	var req taskRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	t, err := req.toDomain(0)
	if err != nil {
		return err
	}
	if err := h.svc.Tasks.Create(c.UserContext(), t); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(toTaskJSON(t))
}

func (h *handlers) updateTask(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req taskRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	t, err := req.toDomain(id)
	if err != nil {
		return err
	}
	n, err := h.svc.Tasks.Update(c.UserContext(), t)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"updated": n})
}

func (h *handlers) patchTask(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req taskPatchRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	n, err := h.svc.Tasks.Patch(c.UserContext(), id, req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"updated": n})
}

func (h *handlers) deleteTask(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	res, err := h.svc.Tasks.Delete(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"deleted": res.Deleted})
}

// Stats

func (h *handlers) stats(c *fiber.Ctx) error {
	req := app.StatsRequest{Today: h.today()}
	var err error
	if req.CourseID, err = queryID(c, "course_id"); err != nil {
		return err
	}
	if req.ProgramID, err = queryID(c, "program_id"); err != nil {
		return err
	}
	summary, err := h.svc.Stats.Summary(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(summary)
}
