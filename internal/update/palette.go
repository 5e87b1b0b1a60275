package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"squeaky/internal/commands"
	"squeaky/internal/model"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.Quitting = true
		return m, tea.Quit
	case "esc":
		m.Palette = CommandPaletteState{}
		m.commandInput.Blur()
		m.Status = StatusBar{}
		return m, nil
	case "enter":
		input := m.commandInput.Value()
		m.Palette = CommandPaletteState{}
		m.commandInput.Blur()
		m.commandInput.SetValue("")
		return m.runPaletteCommand(input)
	}

	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	m.Palette.Input = m.commandInput.Value()
	return m, cmd
}

func (m Model) runPaletteCommand(input string) (tea.Model, tea.Cmd) {
	cmd, err := commands.Parse(input)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	var teaCmd tea.Cmd
	next := m
	result, err := commands.Execute(cmd, commands.Handlers{
		Add: func(args commands.AddArgs) (commands.Result, error) {
			draft, err := m.draftFromAddArgs(args)
			if err != nil {
				return commands.Result{}, err
			}
			teaCmd = tea.Sequence(m.addTaskCmd(draft), m.loadDashboardCmd())
			return commands.Result{Message: "adding: " + draft.Title}, nil
		},
		Go: func(args commands.GoArgs) (commands.Result, error) {
			tab, ok := tabByName(args.View)
			if !ok {
				return commands.Result{}, &commands.CommandError{
					Code:    commands.ErrCodeInvalidArgument,
					Message: fmt.Sprintf("unknown view: %s", args.View),
				}
			}
			var switched tea.Model
			switched, teaCmd = next.switchTab(tab)
			next = switched.(Model)
			return commands.Result{Message: "view: " + string(tab)}, nil
		},
		Theme: func(args commands.ThemeArgs) (commands.Result, error) {
			theme := model.Theme(args.Name)
			if !theme.IsValid() {
				return commands.Result{}, &commands.CommandError{
					Code:    commands.ErrCodeInvalidArgument,
					Message: fmt.Sprintf("unknown theme: %s", args.Name),
				}
			}
			next.Theme = theme
			teaCmd = next.setThemeCmd(theme)
			return commands.Result{Message: "theme: " + args.Name}, nil
		},
		Export: func(args commands.ExportArgs) (commands.Result, error) {
			path := args.Path
			if path == "" {
				path = fmt.Sprintf("squeaky-backup-%s.json", m.Today)
			}
			teaCmd = next.exportCmd(path)
			return commands.Result{Message: "exporting to " + path}, nil
		},
		Import: func(args commands.ImportArgs) (commands.Result, error) {
			teaCmd = tea.Sequence(next.importCmd(args.Path), next.loadDashboardCmd())
			return commands.Result{Message: "importing from " + args.Path}, nil
		},
	})
	if err != nil {
		next.Status = StatusBar{Text: err.Error(), IsError: true}
		return next, nil
	}
	next.Status = StatusBar{Text: result.Message}
	return next, teaCmd
}

func (m Model) draftFromAddArgs(args commands.AddArgs) (model.Task, error) {
	due := m.Today
	if args.Due != "" {
		parsed, err := model.ParseDate(args.Due)
		if err != nil {
			return model.Task{}, &commands.CommandError{
				Code:    commands.ErrCodeInvalidArgument,
				Message: fmt.Sprintf("bad due date: %s", args.Due),
			}
		}
		due = parsed
	}
	priority := model.PriorityMedium
	if args.Priority != "" {
		priority = model.Priority(args.Priority)
		if !priority.IsValid() {
			return model.Task{}, &commands.CommandError{
				Code:    commands.ErrCodeInvalidArgument,
				Message: fmt.Sprintf("bad priority: %s", args.Priority),
			}
		}
	}
	category := args.Category
	if category == "" {
		category = "General"
	}
	recurrence := model.RecurrenceNone
	if args.Every != "" {
		recurrence = model.MapFrequency(args.Every)
	}
	return model.Task{
		Title:      args.Title,
		Category:   category,
		DueDate:    due,
		Priority:   priority,
		Recurrence: recurrence,
	}, nil
}

func tabByName(name string) (Tab, bool) {
	switch strings.ToLower(name) {
	case "dashboard", "home", "today":
		return TabDashboard, true
	case "calendar", "week":
		return TabCalendar, true
	case "add", "new":
		return TabAdd, true
	case "helper", "ai", "suggest":
		return TabHelper, true
	case "settings":
		return TabSettings, true
	default:
		return "", false
	}
}
