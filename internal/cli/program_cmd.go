package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/iamonit/internal/cli/formatter"
	"github.com/alexanderramin/iamonit/internal/domain"
	"github.com/spf13/cobra"
)

func newProgramCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "program",
		Short: "Manage programs",
	}

	cmd.AddCommand(
		newProgramAddCmd(app),
		newProgramListCmd(app),
		newProgramUpdateCmd(app),
		newProgramRemoveCmd(app),
	)

	return cmd
}

func newProgramAddCmd(app *App) *cobra.Command {
	var in programInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new program",
		RunE: func(cmd *cobra.Command, args []string) error {
			if in.name == "" {
				if !app.interactive() {
					return errors.New("--name is required")
				}
				if err := programForm(&in).Run(); err != nil {
					return err
				}
			}

			p := &domain.Program{
				Name:     in.name,
				College:  domain.OptionalString(&in.college),
				Semester: domain.OptionalString(&in.semester),
			}
			if err := app.Programs.Create(cmd.Context(), p); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created program #%d %s\n", p.ID, p.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.name, "name", "", "Program name")
	cmd.Flags().StringVar(&in.college, "college", "", "College or faculty")
	cmd.Flags().StringVar(&in.semester, "semester", "", "Semester, e.g. \"Fall 2025\"")

	return cmd
}

func newProgramListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List programs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			programs, err := app.Programs.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPrograms(programs))
			return nil
		},
	}
}

func newProgramUpdateCmd(app *App) *cobra.Command {
	var in programInput

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := parseID("program", args[0])
			if err != nil {
				return err
			}
			p, err := app.Programs.GetByID(ctx, id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				p.Name = in.name
			}
			if cmd.Flags().Changed("college") {
				p.College = domain.OptionalString(&in.college)
			}
			if cmd.Flags().Changed("semester") {
				p.Semester = domain.OptionalString(&in.semester)
			}

			n, err := app.Programs.Update(ctx, p)
			if err != nil {
				return err
			}
			printUpdated(cmd, "program", id, n)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.name, "name", "", "Program name")
	cmd.Flags().StringVar(&in.college, "college", "", "College or faculty (empty to clear)")
	cmd.Flags().StringVar(&in.semester, "semester", "", "Semester (empty to clear)")

	return cmd
}

func newProgramRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"remove"},
		Short:   "Remove a program with all its courses and tasks",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := parseID("program", args[0])
			if err != nil {
				return err
			}

			ok, err := confirmDelete(app, yes,
				fmt.Sprintf("Delete program #%d?", id),
				"This will remove all its courses and all their tasks.")
			if err != nil || !ok {
				return err
			}

			res, err := app.Programs.Delete(ctx, id)
			if err != nil {
				return err
			}
			if res.Deleted == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No program #%d\n", id)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed program #%d (%d courses, %d tasks)\n",
				id, res.CoursesDeleted, res.TasksDeleted)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

// confirmDelete returns true when the delete should go ahead. Without --yes
// it asks on a terminal and refuses elsewhere.
func confirmDelete(app *App, yes bool, title, description string) (bool, error) {
	if yes {
		return true, nil
	}
	if !app.interactive() {
		return false, errors.New("refusing to delete without --yes outside a terminal")
	}
	var ok bool
	if err := confirmForm(title, description, &ok).Run(); err != nil {
		return false, err
	}
	return ok, nil
}

func printUpdated(cmd *cobra.Command, kind string, id, n int64) {
	if n == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No %s #%d\n", kind, id)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Updated %s #%d\n", kind, id)
}
