package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/iamonit/internal/cli/formatter"
	"github.com/alexanderramin/iamonit/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskUpdateCmd(app),
		newTaskStatusCmd(app),
		newTaskSubmitCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var in taskInput
	var status string
	var submitted bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task to a course",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if in.taskType != "" {
				tt, err := parseTaskType(in.taskType)
				if err != nil {
					return err
				}
				in.taskType = string(tt)
			}

			if in.courseID == 0 || in.title == "" || in.taskType == "" || in.due == "" {
				if !app.interactive() {
					return errors.New("--course, --title, --type and --due are required")
				}
				courses, err := app.Courses.List(ctx, nil)
				if err != nil {
					return err
				}
				form, err := taskForm(courses, &in)
				if err != nil {
					return err
				}
				if err := form.Run(); err != nil {
					return err
				}
			}

			t, err := in.task()
			if err != nil {
				return err
			}
			if status != "" {
				if t.Status, err = parseStatus(status); err != nil {
					return err
				}
			}
			if submitted {
				t.Submission = domain.Submitted
			}

			if err := app.Tasks.Create(ctx, t); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created task #%d %s (due %s)\n",
				t.ID, t.Title, formatter.DueDate(t.DueDate))
			return nil
		},
	}

	cmd.Flags().Int64Var(&in.courseID, "course", 0, "Course ID")
	cmd.Flags().StringVar(&in.title, "title", "", "Task title")
	cmd.Flags().StringVar(&in.taskType, "type", "", "quiz|assignment|exam|group-project")
	cmd.Flags().StringVar(&in.due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&status, "status", "", "not-completed|in-progress|completed (default not-completed)")
	cmd.Flags().StringVar(&in.priority, "priority", "", "high|medium|low")
	cmd.Flags().StringVar(&in.weight, "weight", "", "Share of the final grade, 0-100")
	cmd.Flags().StringVar(&in.notes, "notes", "", "Free-form notes")
	cmd.Flags().BoolVar(&submitted, "submitted", false, "Mark as already submitted")

	return cmd
}

// task converts the collected input into a domain task. Status is left for
// the caller and the service defaults it.
func (in *taskInput) task() (*domain.Task, error) {
	tt, err := parseTaskType(in.taskType)
	if err != nil {
		return nil, err
	}
	due, err := domain.ParseDate(in.due)
	if err != nil {
		return nil, err
	}
	priority, err := parsePriority(in.priority)
	if err != nil {
		return nil, err
	}
	weight, err := parseWeight(in.weight)
	if err != nil {
		return nil, err
	}
	return &domain.Task{
		CourseID: in.courseID,
		Title:    in.title,
		Type:     tt,
		DueDate:  &due,
		Priority: priority,
		Weight:   weight,
		Notes:    domain.OptionalString(&in.notes),
	}, nil
}

func newTaskListCmd(app *App) *cobra.Command {
	var filter taskFilterFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks, soonest due first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := filter.query(cmd.Flags())
			if err != nil {
				return err
			}
			q.Today = app.today()

			tasks, err := app.Tasks.List(cmd.Context(), q)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTasks(tasks))
			return nil
		},
	}

	filter.register(cmd.Flags())

	return cmd
}

func newTaskUpdateCmd(app *App) *cobra.Command {
	var in taskInput
	var status string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a task",
		Long: `Update a task. Only the flags given are changed.

An undated task (from an import) can have its status, priority and notes
changed as is. Changing its course, title, type or weight also needs --due.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := parseID("task", args[0])
			if err != nil {
				return err
			}
			t, err := app.Tasks.GetByID(ctx, id)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if t.DueDate == nil && !flags.Changed("due") {
				for _, name := range []string{"course", "title", "type", "weight"} {
					if flags.Changed(name) {
						return fmt.Errorf("task #%d has no due date: pass --due to change --%s", id, name)
					}
				}
				patch, err := undatedPatch(flags, status, in)
				if err != nil {
					return err
				}
				n, err := app.Tasks.Patch(ctx, id, patch)
				if err != nil {
					return err
				}
				printUpdated(cmd, "task", id, n)
				return nil
			}

			if flags.Changed("course") {
				t.CourseID = in.courseID
			}
			if flags.Changed("title") {
				t.Title = in.title
			}
			if flags.Changed("type") {
				if t.Type, err = parseTaskType(in.taskType); err != nil {
					return err
				}
			}
			if flags.Changed("due") {
				due, err := domain.ParseDate(in.due)
				if err != nil {
					return err
				}
				t.DueDate = &due
			}
			if flags.Changed("status") {
				if t.Status, err = parseStatus(status); err != nil {
					return err
				}
			}
			if flags.Changed("priority") {
				if t.Priority, err = parsePriority(in.priority); err != nil {
					return err
				}
			}
			if flags.Changed("weight") {
				if t.Weight, err = parseWeight(in.weight); err != nil {
					return err
				}
			}
			if flags.Changed("notes") {
				t.Notes = domain.OptionalString(&in.notes)
			}

			n, err := app.Tasks.Update(ctx, t)
			if err != nil {
				return err
			}
			printUpdated(cmd, "task", id, n)
			return nil
		},
	}

	cmd.Flags().Int64Var(&in.courseID, "course", 0, "Move the task to this course ID")
	cmd.Flags().StringVar(&in.title, "title", "", "Task title")
	cmd.Flags().StringVar(&in.taskType, "type", "", "quiz|assignment|exam|group-project")
	cmd.Flags().StringVar(&in.due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&status, "status", "", "not-completed|in-progress|completed")
	cmd.Flags().StringVar(&in.priority, "priority", "", "high|medium|low|none")
	cmd.Flags().StringVar(&in.weight, "weight", "", "Share of the final grade, 0-100 (empty to clear)")
	cmd.Flags().StringVar(&in.notes, "notes", "", "Free-form notes (empty to clear)")

	return cmd
}

// undatedPatch builds the partial update for a task without a due date,
// which a full replace would reject.
func undatedPatch(flags *pflag.FlagSet, status string, in taskInput) (domain.TaskPatch, error) {
	var patch domain.TaskPatch
	if flags.Changed("status") {
		st, err := parseStatus(status)
		if err != nil {
			return patch, err
		}
		patch.Status = &st
	}
	if flags.Changed("priority") {
		pr, err := parsePriority(in.priority)
		if err != nil {
			return patch, err
		}
		if pr == domain.PriorityNone {
			patch.ClearPriority = true
		} else {
			patch.Priority = &pr
		}
	}
	if flags.Changed("notes") {
		if strings.TrimSpace(in.notes) == "" {
			patch.ClearNotes = true
		} else {
			notes := in.notes
			patch.Notes = &notes
		}
	}
	return patch, nil
}

func newTaskStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status ID [STATUS]",
		Short: "Set a task's status, or advance it to the next one",
		Long: "Set a task's status. Without STATUS the task moves to the next status\n" +
			"in the cycle Not Completed → In progress → Completed → Not Completed.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := parseID("task", args[0])
			if err != nil {
				return err
			}

			var next domain.TaskStatus
			if len(args) == 2 {
				if next, err = parseStatus(args[1]); err != nil {
					return err
				}
			} else {
				t, err := app.Tasks.GetByID(ctx, id)
				if err != nil {
					return err
				}
				next = t.Status.Next()
			}

			n, err := app.Tasks.Patch(ctx, id, domain.TaskPatch{Status: &next})
			if err != nil {
				return err
			}
			if n == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No task #%d\n", id)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Task #%d is now %s\n", id, next)
			return nil
		},
	}
}

func newTaskSubmitCmd(app *App) *cobra.Command {
	var undo bool

	cmd := &cobra.Command{
		Use:   "submit ID",
		Short: "Mark a task as submitted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("task", args[0])
			if err != nil {
				return err
			}

			marker := domain.Submitted
			if undo {
				marker = domain.NotSubmitted
			}
			n, err := app.Tasks.Patch(cmd.Context(), id, domain.TaskPatch{Submission: &marker})
			if err != nil {
				return err
			}
			if n == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No task #%d\n", id)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Task #%d marked %s\n", id, marker)
			return nil
		},
	}

	cmd.Flags().BoolVar(&undo, "undo", false, "Mark as not submitted instead")

	return cmd
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"remove"},
		Short:   "Remove a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("task", args[0])
			if err != nil {
				return err
			}

			ok, err := confirmDelete(app, yes, fmt.Sprintf("Delete task #%d?", id), "")
			if err != nil || !ok {
				return err
			}

			res, err := app.Tasks.Delete(cmd.Context(), id)
			if err != nil {
				return err
			}
			if res.Deleted == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No task #%d\n", id)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed task #%d\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
