package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/iamonit/internal/app"
	"github.com/alexanderramin/iamonit/internal/domain"
	"github.com/spf13/pflag"
)

// scopeFlags are the --course/--program filters shared by task list, stats
// and board.
type scopeFlags struct {
	courseID  int64
	programID int64
}

func (f *scopeFlags) register(fs *pflag.FlagSet) {
	fs.Int64Var(&f.courseID, "course", 0, "Only tasks in this course ID")
	fs.Int64Var(&f.programID, "program", 0, "Only tasks in this program ID")
}

// ids returns the filters the user actually set, nil otherwise.
func (f *scopeFlags) ids(fs *pflag.FlagSet) (courseID, programID *int64) {
	if fs.Changed("course") {
		courseID = &f.courseID
	}
	if fs.Changed("program") {
		programID = &f.programID
	}
	return courseID, programID
}

func (f *scopeFlags) statsRequest(fs *pflag.FlagSet, today time.Time) app.StatsRequest {
	req := app.StatsRequest{Today: today}
	req.CourseID, req.ProgramID = f.ids(fs)
	return req
}

// taskFilterFlags extends scopeFlags with a status filter.
type taskFilterFlags struct {
	scopeFlags
	status string
}

func (f *taskFilterFlags) register(fs *pflag.FlagSet) {
	f.scopeFlags.register(fs)
	fs.StringVar(&f.status, "status", "", "Only tasks with this status (not-completed|in-progress|completed)")
}

func (f *taskFilterFlags) query(fs *pflag.FlagSet) (app.TaskQuery, error) {
	var q app.TaskQuery
	q.CourseID, q.ProgramID = f.ids(fs)
	if f.status != "" {
		st, err := parseStatus(f.status)
		if err != nil {
			return app.TaskQuery{}, err
		}
		q.Status = st
	}
	return q, nil
}

// flagKey folds case and separators so "in-progress", "In progress" and
// "IN_PROGRESS" compare equal.
func flagKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", " ", "_", " ").Replace(s)
}

func parseStatus(s string) (domain.TaskStatus, error) {
	for _, st := range domain.TaskStatuses {
		if flagKey(string(st)) == flagKey(s) {
			return st, nil
		}
	}
	return "", fmt.Errorf("invalid status %q (want not-completed, in-progress or completed)", s)
}

func parseTaskType(s string) (domain.TaskType, error) {
	for _, tt := range domain.TaskTypes {
		if flagKey(string(tt)) == flagKey(s) {
			return tt, nil
		}
	}
	return "", fmt.Errorf("invalid type %q (want quiz, assignment, exam or group-project)", s)
}

// parsePriority accepts "" and "none" as no priority.
func parsePriority(s string) (domain.Priority, error) {
	if k := flagKey(s); k == "" || k == "none" {
		return domain.PriorityNone, nil
	}
	for _, p := range domain.Priorities {
		if flagKey(string(p)) == flagKey(s) {
			return p, nil
		}
	}
	return "", fmt.Errorf("invalid priority %q (want high, medium, low or none)", s)
}

func parseWeight(s string) (*float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid weight %q: %w", s, err)
	}
	return &w, nil
}

func parseID(kind, s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s ID %q", kind, s)
	}
	return id, nil
}
