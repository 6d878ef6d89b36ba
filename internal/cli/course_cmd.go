package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/iamonit/internal/cli/formatter"
	"github.com/alexanderramin/iamonit/internal/domain"
	"github.com/spf13/cobra"
)

func newCourseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "course",
		Short: "Manage courses",
	}

	cmd.AddCommand(
		newCourseAddCmd(app),
		newCourseListCmd(app),
		newCourseUpdateCmd(app),
		newCourseRemoveCmd(app),
	)

	return cmd
}

func newCourseAddCmd(app *App) *cobra.Command {
	var in courseInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a course to a program",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if in.programID == 0 || in.code == "" || in.name == "" {
				if !app.interactive() {
					return errors.New("--program, --code and --name are required")
				}
				programs, err := app.Programs.List(ctx)
				if err != nil {
					return err
				}
				form, err := courseForm(programs, &in)
				if err != nil {
					return err
				}
				if err := form.Run(); err != nil {
					return err
				}
			}

			c := &domain.Course{ProgramID: in.programID, Code: in.code, Name: in.name}
			if err := app.Courses.Create(ctx, c); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created course #%d %s\n", c.ID, c.Label())
			return nil
		},
	}

	cmd.Flags().Int64Var(&in.programID, "program", 0, "Program ID")
	cmd.Flags().StringVar(&in.code, "code", "", "Course code, e.g. CS101")
	cmd.Flags().StringVar(&in.name, "name", "", "Course name")

	return cmd
}

func newCourseListCmd(app *App) *cobra.Command {
	var programID int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List courses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter *int64
			if cmd.Flags().Changed("program") {
				filter = &programID
			}
			courses, err := app.Courses.List(cmd.Context(), filter)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCourses(courses))
			return nil
		},
	}

	cmd.Flags().Int64Var(&programID, "program", 0, "Only courses in this program ID")

	return cmd
}

func newCourseUpdateCmd(app *App) *cobra.Command {
	var in courseInput

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := parseID("course", args[0])
			if err != nil {
				return err
			}
			c, err := app.Courses.GetByID(ctx, id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("program") {
				c.ProgramID = in.programID
			}
			if cmd.Flags().Changed("code") {
				c.Code = in.code
			}
			if cmd.Flags().Changed("name") {
				c.Name = in.name
			}

			n, err := app.Courses.Update(ctx, c)
			if err != nil {
				return err
			}
			printUpdated(cmd, "course", id, n)
			return nil
		},
	}

	cmd.Flags().Int64Var(&in.programID, "program", 0, "Move the course to this program ID")
	cmd.Flags().StringVar(&in.code, "code", "", "Course code")
	cmd.Flags().StringVar(&in.name, "name", "", "Course name")

	return cmd
}

func newCourseRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"remove"},
		Short:   "Remove a course with all its tasks",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := parseID("course", args[0])
			if err != nil {
				return err
			}

			ok, err := confirmDelete(app, yes,
				fmt.Sprintf("Delete course #%d?", id),
				"This will remove all its tasks.")
			if err != nil || !ok {
				return err
			}

			res, err := app.Courses.Delete(ctx, id)
			if err != nil {
				return err
			}
			if res.Deleted == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No course #%d\n", id)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed course #%d (%d tasks)\n", id, res.TasksDeleted)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
