package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import a program with its courses and tasks from JSON or YAML",
		Long: "Import a program with nested courses and tasks from a .json, .yaml or .yml\n" +
			"file. The whole file is validated first and written in one transaction.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Import.ImportProgram(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported program #%d %s: %d courses, %d tasks\n",
				res.Program.ID, res.Program.Name, res.CourseCount, res.TaskCount)
			return nil
		},
	}
}
