package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"squeaky/internal/model"
	"squeaky/internal/views"
)

func (m Model) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.Dashboard.rows()
	switch msg.String() {
	case "up", "k":
		if m.Dashboard.Cursor > 0 {
			m.Dashboard.Cursor--
		}
	case "down", "j":
		if m.Dashboard.Cursor < len(rows)-1 {
			m.Dashboard.Cursor++
		}
	case " ", "enter":
		if task, ok := m.currentDashboardTask(); ok {
			return m, m.toggleTaskCmd(task)
		}
	case "d":
		if task, ok := m.currentDashboardTask(); ok {
			return m, tea.Sequence(m.deleteTaskCmd(task.ID), m.loadDashboardCmd())
		}
	case "D":
		if task, ok := m.currentDashboardTask(); ok && task.Recurrence != model.RecurrenceNone {
			return m, tea.Sequence(m.deleteSeriesCmd(task), m.loadDashboardCmd())
		}
	case "e":
		if task, ok := m.currentDashboardTask(); ok {
			m.startEditing(task)
			return m.switchTab(TabAdd)
		}
	case "c":
		m.Celebration = CelebrationState{}
	case "r":
		return m, m.loadDashboardCmd()
	}
	return m, nil
}

func (m Model) currentDashboardTask() (model.Task, bool) {
	rows := m.Dashboard.rows()
	if len(rows) == 0 || m.Dashboard.Cursor < 0 || m.Dashboard.Cursor >= len(rows) {
		return model.Task{}, false
	}
	return rows[m.Dashboard.Cursor], true
}

func (m *Model) startEditing(task model.Task) {
	m.resetForm()
	m.Form.EditingID = task.ID
	m.Form.DueDate = task.DueDate
	m.Form.Interval = task.CustomInterval
	if m.Form.Interval <= 0 {
		m.Form.Interval = 7
	}
	for i, p := range formPriorities {
		if p == task.Priority {
			m.Form.PriIndex = i
		}
	}
	for i, r := range formRecurrences {
		if r == task.Recurrence {
			m.Form.RecIndex = i
		}
	}
	for i, c := range m.Form.Categories {
		if c.Name == task.Category {
			m.Form.CatIndex = i
		}
	}
	m.titleInput.SetValue(task.Title)
	m.notesArea.SetValue(task.Notes)
}

func (m Model) renderDashboard() string {
	var selected int64
	if task, ok := m.currentDashboardTask(); ok {
		selected = task.ID
	}
	return views.RenderDashboardPanel(views.DashboardPanelData{
		Date:         string(m.Today),
		Streak:       m.Dashboard.Streak,
		Total:        m.Dashboard.Total,
		Overdue:      m.taskItems(m.Dashboard.Overdue),
		Tasks:        m.taskItems(m.Dashboard.Tasks),
		Upcoming:     m.taskItems(m.Dashboard.Upcoming),
		SelectedID:   selected,
		EmptyMessage: m.Dashboard.EmptyMessage,
	})
}

func (m Model) renderCelebration() string {
	return views.RenderCelebration(m.Celebration.Badge, m.Celebration.Message)
}

func (m Model) taskItems(tasks []model.Task) []views.TaskItemData {
	items := make([]views.TaskItemData, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, views.TaskItemData{
			ID:        t.ID,
			Title:     t.Title,
			Category:  t.Category,
			Icon:      m.categoryIcon(t.Category),
			Priority:  string(t.Priority),
			DueDate:   string(t.DueDate),
			Completed: t.Completed,
			Recurring: t.Recurrence != model.RecurrenceNone,
			Notes:     t.Notes,
		})
	}
	return items
}

func (m Model) categoryIcon(name string) string {
	for _, c := range m.Settings.Categories {
		if c.Name == name {
			return c.Icon
		}
	}
	return "🧹"
}
