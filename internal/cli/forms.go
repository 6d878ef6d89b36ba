package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/iamonit/internal/app"
	"github.com/alexanderramin/iamonit/internal/cli/formatter"
	"github.com/alexanderramin/iamonit/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func iamonitHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func newForm(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).WithTheme(iamonitHuhTheme()).WithShowHelp(false)
}

// programInput holds the raw values collected by the program form.
type programInput struct {
	name, college, semester string
}

func programForm(in *programInput) *huh.Form {
	return newForm(huh.NewGroup(
		huh.NewInput().
			Title("Program Name").
			Placeholder("BSc Computer Science").
			Value(&in.name).
			Validate(validateRequired("name")),
		huh.NewInput().
			Title("College (optional)").
			Value(&in.college),
		huh.NewInput().
			Title("Semester (optional)").
			Placeholder("Fall 2025").
			Value(&in.semester),
	))
}

type courseInput struct {
	programID  int64
	code, name string
}

// courseForm asks for the missing course fields. The program picker is
// shown only when no program was given on the command line.
func courseForm(programs []*domain.Program, in *courseInput) (*huh.Form, error) {
	var fields []huh.Field
	if in.programID == 0 {
		if len(programs) == 0 {
			return nil, errors.New("no programs yet: create one with `iamonit program add`")
		}
		options := make([]huh.Option[int64], 0, len(programs))
		for _, p := range programs {
			options = append(options, huh.NewOption(p.Name, p.ID))
		}
		fields = append(fields, huh.NewSelect[int64]().
			Title("Which Program?").
			Options(options...).
			Value(&in.programID))
	}
	fields = append(fields,
		huh.NewInput().
			Title("Course Code").
			Placeholder("CS101").
			Value(&in.code).
			Validate(validateRequired("code")),
		huh.NewInput().
			Title("Course Name").
			Value(&in.name).
			Validate(validateRequired("name")),
	)
	return newForm(huh.NewGroup(fields...)), nil
}

type taskInput struct {
	courseID int64
	title    string
	taskType string
	due      string
	priority string
	weight   string
	notes    string
}

func taskForm(courses []app.CourseView, in *taskInput) (*huh.Form, error) {
	var first []huh.Field
	if in.courseID == 0 {
		if len(courses) == 0 {
			return nil, errors.New("no courses yet: create one with `iamonit course add`")
		}
		options := make([]huh.Option[int64], 0, len(courses))
		for _, c := range courses {
			options = append(options, huh.NewOption(fmt.Sprintf("%s (%s)", c.Label(), c.ProgramName), c.ID))
		}
		first = append(first, huh.NewSelect[int64]().
			Title("Which Course?").
			Options(options...).
			Value(&in.courseID))
	}

	if in.taskType == "" {
		in.taskType = string(domain.TaskAssignment)
	}
	typeOptions := make([]huh.Option[string], 0, len(domain.TaskTypes))
	for _, tt := range domain.TaskTypes {
		typeOptions = append(typeOptions, huh.NewOption(string(tt), string(tt)))
	}
	priorityOptions := []huh.Option[string]{huh.NewOption("None", "")}
	for _, p := range domain.Priorities {
		priorityOptions = append(priorityOptions, huh.NewOption(string(p), string(p)))
	}

	first = append(first,
		huh.NewInput().
			Title("Title").
			Value(&in.title).
			Validate(validateRequired("title")),
		huh.NewSelect[string]().
			Title("Type").
			Options(typeOptions...).
			Value(&in.taskType),
		huh.NewInput().
			Title("Due Date (YYYY-MM-DD)").
			Placeholder("2025-06-30").
			Value(&in.due).
			Validate(validateDate),
	)

	return newForm(
		huh.NewGroup(first...),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Priority").
				Options(priorityOptions...).
				Value(&in.priority),
			huh.NewInput().
				Title("Weight % (optional)").
				Placeholder("15").
				Value(&in.weight).
				Validate(validateWeight),
			huh.NewText().
				Title("Notes (optional)").
				Value(&in.notes),
		),
	), nil
}

// confirmForm asks a yes/no question; the default answer is no.
func confirmForm(title, description string, result *bool) *huh.Form {
	return newForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Description(description).
			Affirmative("Delete").
			Negative("Cancel").
			Value(result),
	))
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func validateDate(s string) error {
	if _, err := domain.ParseDate(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// validateWeight accepts empty or a number between 0 and 100.
func validateWeight(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !(w >= 0 && w <= 100) {
		return fmt.Errorf("enter a number between 0 and 100")
	}
	return nil
}
