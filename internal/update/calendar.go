package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"squeaky/internal/model"
	"squeaky/internal/views"
)

func (m Model) handleCalendarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.Calendar.Cursor > 0 {
			m.Calendar.Cursor--
		}
	case "down", "j":
		if m.Calendar.Cursor < len(m.Calendar.Tasks)-1 {
			m.Calendar.Cursor++
		}
	case "left", "h":
		m.Calendar.WeekStart = m.Calendar.WeekStart.AddDays(-7)
		m.Calendar.Cursor = 0
		return m, m.loadCalendarCmd()
	case "right", "l":
		m.Calendar.WeekStart = m.Calendar.WeekStart.AddDays(7)
		m.Calendar.Cursor = 0
		return m, m.loadCalendarCmd()
	case "t":
		m.Calendar.WeekStart = m.Today
		m.Calendar.Cursor = 0
		return m, m.loadCalendarCmd()
	case " ", "enter":
		if task, ok := m.currentCalendarTask(); ok {
			return m, m.toggleTaskCmd(task)
		}
	}
	return m, nil
}

func (m Model) currentCalendarTask() (model.Task, bool) {
	if len(m.Calendar.Tasks) == 0 || m.Calendar.Cursor < 0 || m.Calendar.Cursor >= len(m.Calendar.Tasks) {
		return model.Task{}, false
	}
	return m.Calendar.Tasks[m.Calendar.Cursor], true
}

func (m Model) renderCalendar() string {
	var selected *views.TaskItemData
	if task, ok := m.currentCalendarTask(); ok {
		items := m.taskItems([]model.Task{task})
		selected = &items[0]
	}
	return views.RenderCalendarPanel(views.CalendarPanelData{
		FocusDate: string(m.Calendar.WeekStart),
		Items:     m.taskItems(m.Calendar.Tasks),
		Selected:  selected,
	})
}
