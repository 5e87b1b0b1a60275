package update

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"squeaky/internal/model"
	"squeaky/internal/service"
)

// The data commands run against a background context: the program's
// lifetime is the only cancellation boundary a local sqlite call needs.

func (m Model) loadDashboardCmd() tea.Cmd {
	svc := m.services
	today := m.Today
	return func() tea.Msg {
		ctx := context.Background()
		overdue, err := svc.Views.OverdueTasks(ctx, today)
		if err != nil {
			return AppErrorMsg{Err: err}
		}
		tasks, err := svc.Views.TasksForDate(ctx, today)
		if err != nil {
			return AppErrorMsg{Err: err}
		}
		service.SortForDisplay(tasks)
		upcoming, err := svc.Views.UpcomingTasks(ctx, today)
		if err != nil {
			return AppErrorMsg{Err: err}
		}
		streak, err := svc.Streaks.ComputeStreak(ctx, today)
		if err != nil {
			return AppErrorMsg{Err: err}
		}
		total, err := svc.Settings.TotalCompleted(ctx)
		if err != nil {
			return AppErrorMsg{Err: err}
		}
		return dashboardLoadedMsg{overdue: overdue, tasks: tasks, upcoming: upcoming, streak: streak, total: total}
	}
}

func (m Model) loadCalendarCmd() tea.Cmd {
	svc := m.services
	start := m.Calendar.WeekStart
	return func() tea.Msg {
		tasks, err := svc.Views.TasksInRange(context.Background(), start, start.AddDays(6))
		if err != nil {
			return AppErrorMsg{Err: err}
		}
		service.SortByDueDate(tasks)
		return calendarLoadedMsg{tasks: tasks}
	}
}

func (m Model) toggleTaskCmd(task model.Task) tea.Cmd {
	svc := m.services
	return func() tea.Msg {
		ctx := context.Background()
		if task.Completed {
			if err := svc.Tasks.UncompleteTask(ctx, task.ID); err != nil {
				return AppErrorMsg{Err: err}
			}
			total, err := svc.Settings.TotalCompleted(ctx)
			if err != nil {
				return AppErrorMsg{Err: err}
			}
			return taskToggledMsg{total: total}
		}
		total, err := svc.Tasks.CompleteTask(ctx, task.ID)
		if err != nil {
			return AppErrorMsg{Err: err}
		}
		msg := taskToggledMsg{total: total}
		if milestone, ok := svc.Achievements.CheckMilestone(total); ok {
			created, err := svc.Achievements.Unlock(ctx, milestone.Badge)
			if err != nil {
				return AppErrorMsg{Err: err}
			}
			msg.milestone = milestone
			msg.unlocked = created
		}
		return msg
	}
}

func (m Model) deleteTaskCmd(id int64) tea.Cmd {
	svc := m.services
	return func() tea.Msg {
		if err := svc.Tasks.DeleteTask(context.Background(), id); err != nil {
			return AppErrorMsg{Err: err}
		}
		return SetStatusMsg{Text: "task deleted"}
	}
}

func (m Model) deleteSeriesCmd(task model.Task) tea.Cmd {
	svc := m.services
	return func() tea.Msg {
		if err := svc.Tasks.DeleteSeries(context.Background(), task.SeriesKey()); err != nil {
			return AppErrorMsg{Err: err}
		}
		return SetStatusMsg{Text: "series deleted"}
	}
}

func (m Model) addTaskCmd(draft model.Task) tea.Cmd {
	svc := m.services
	return func() tea.Msg {
		if _, err := svc.Tasks.AddTask(context.Background(), draft); err != nil {
			return AppErrorMsg{Err: err}
		}
		return SetStatusMsg{Text: "task added: " + draft.Title}
	}
}

func (m Model) updateTaskCmd(id int64, draft model.Task) tea.Cmd {
	svc := m.services
	return func() tea.Msg {
		changes := service.TaskChanges{
			Title:          &draft.Title,
			Notes:          &draft.Notes,
			Category:       &draft.Category,
			DueDate:        &draft.DueDate,
			Priority:       &draft.Priority,
			Recurrence:     &draft.Recurrence,
			CustomInterval: &draft.CustomInterval,
		}
		if err := svc.Tasks.UpdateTask(context.Background(), id, changes); err != nil {
			return AppErrorMsg{Err: err}
		}
		return SetStatusMsg{Text: "task updated: " + draft.Title}
	}
}

func (m Model) generateCmd(prompt string) tea.Cmd {
	client := m.services.Suggest
	return func() tea.Msg {
		suggestions, err := client.GenerateSchedule(context.Background(), prompt)
		return suggestionsMsg{suggestions: suggestions, err: err}
	}
}

func (m Model) addPickedCmd(drafts []model.Task) tea.Cmd {
	svc := m.services
	return func() tea.Msg {
		ctx := context.Background()
		for _, draft := range drafts {
			if _, err := svc.Tasks.AddTask(ctx, draft); err != nil {
				return AppErrorMsg{Err: err}
			}
		}
		return SetStatusMsg{Text: "suggestions added to your schedule"}
	}
}

func (m Model) loadSettingsCmd() tea.Cmd {
	svc := m.services
	return func() tea.Msg {
		ctx := context.Background()
		theme, err := svc.Settings.Theme(ctx)
		if err != nil {
			return AppErrorMsg{Err: err}
		}
		haptics, err := svc.Settings.HapticFeedback(ctx)
		if err != nil {
			return AppErrorMsg{Err: err}
		}
		total, err := svc.Settings.TotalCompleted(ctx)
		if err != nil {
			return AppErrorMsg{Err: err}
		}
		categories, err := svc.Categories.List(ctx)
		if err != nil {
			return AppErrorMsg{Err: err}
		}
		achievements, err := svc.Achievements.List(ctx)
		if err != nil {
			return AppErrorMsg{Err: err}
		}
		return settingsLoadedMsg{
			theme:        theme,
			haptics:      haptics,
			total:        total,
			categories:   categories,
			achievements: achievements,
		}
	}
}

func (m Model) setThemeCmd(theme model.Theme) tea.Cmd {
	svc := m.services
	return func() tea.Msg {
		if err := svc.Settings.SetTheme(context.Background(), theme); err != nil {
			return AppErrorMsg{Err: err}
		}
		return SetStatusMsg{Text: "theme: " + string(theme)}
	}
}

func (m Model) setHapticsCmd(enabled bool) tea.Cmd {
	svc := m.services
	return func() tea.Msg {
		if err := svc.Settings.SetHapticFeedback(context.Background(), enabled); err != nil {
			return AppErrorMsg{Err: err}
		}
		return SetStatusMsg{Text: "haptic feedback updated"}
	}
}

func (m Model) exportCmd(path string) tea.Cmd {
	svc := m.services
	return func() tea.Msg {
		data, err := svc.Backup.Export(context.Background())
		if err != nil {
			return backupDoneMsg{path: path, err: err}
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return backupDoneMsg{path: path, err: err}
		}
		return backupDoneMsg{path: path}
	}
}

func (m Model) importCmd(path string) tea.Cmd {
	svc := m.services
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return backupDoneMsg{path: path, err: err}
		}
		if err := svc.Backup.Import(context.Background(), data); err != nil {
			return backupDoneMsg{path: path, err: err}
		}
		return SetStatusMsg{Text: "backup imported from " + path}
	}
}
