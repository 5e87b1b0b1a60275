package update

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"squeaky/internal/model"
	"squeaky/internal/views"
)

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.Quitting = true
		return m, tea.Quit
	case "esc":
		m.resetForm()
		m.titleInput.SetValue("")
		m.notesArea.SetValue("")
		return m.switchTab(TabDashboard)
	case "tab":
		m.moveFormField(1)
		return m, nil
	case "shift+tab":
		m.moveFormField(-1)
		return m, nil
	case "enter":
		if m.Form.Field != fieldNotes {
			return m.submitForm()
		}
	}

	switch m.Form.Field {
	case fieldTitle:
		var cmd tea.Cmd
		m.titleInput, cmd = m.titleInput.Update(msg)
		return m, cmd
	case fieldNotes:
		var cmd tea.Cmd
		m.notesArea, cmd = m.notesArea.Update(msg)
		return m, cmd
	case fieldDue:
		switch msg.String() {
		case "left", "h", "-":
			m.Form.DueDate = m.Form.DueDate.AddDays(-1)
		case "right", "l", "+":
			m.Form.DueDate = m.Form.DueDate.AddDays(1)
		}
	case fieldCategory:
		m.Form.CatIndex = cycle(m.Form.CatIndex, len(m.Form.Categories), msg.String())
	case fieldPriority:
		m.Form.PriIndex = cycle(m.Form.PriIndex, len(formPriorities), msg.String())
	case fieldRecurrence:
		m.Form.RecIndex = cycle(m.Form.RecIndex, len(formRecurrences), msg.String())
	case fieldInterval:
		switch msg.String() {
		case "left", "h", "-":
			if m.Form.Interval > 1 {
				m.Form.Interval--
			}
		case "right", "l", "+":
			m.Form.Interval++
		}
	}
	return m, nil
}

func cycle(index, size int, key string) int {
	if size == 0 {
		return 0
	}
	switch key {
	case "left", "h", "-":
		return (index - 1 + size) % size
	case "right", "l", "+":
		return (index + 1) % size
	}
	return index
}

func (m *Model) moveFormField(delta int) {
	m.Form.Field = formField((int(m.Form.Field) + delta + int(fieldCount)) % int(fieldCount))
	// Skip the interval field unless a custom interval applies.
	if m.Form.Field == fieldInterval && m.formRecurrence() != model.RecurrenceCustom {
		m.Form.Field = formField((int(m.Form.Field) + delta + int(fieldCount)) % int(fieldCount))
	}
	m.titleInput.Blur()
	m.notesArea.Blur()
	switch m.Form.Field {
	case fieldTitle:
		m.titleInput.Focus()
	case fieldNotes:
		m.notesArea.Focus()
	}
}

func (m Model) formRecurrence() model.Recurrence {
	return formRecurrences[m.Form.RecIndex]
}

func (m Model) formCategory() string {
	if len(m.Form.Categories) == 0 {
		return "General"
	}
	return m.Form.Categories[m.Form.CatIndex].Name
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	title := strings.TrimSpace(m.titleInput.Value())
	draft := model.Task{
		Title:          title,
		Notes:          strings.TrimSpace(m.notesArea.Value()),
		Category:       m.formCategory(),
		DueDate:        m.Form.DueDate,
		Priority:       formPriorities[m.Form.PriIndex],
		Recurrence:     m.formRecurrence(),
		CustomInterval: 0,
	}
	if draft.Recurrence == model.RecurrenceCustom {
		draft.CustomInterval = m.Form.Interval
	}
	if err := draft.Validate(); err != nil {
		m.Form.Err = err.Error()
		return m, nil
	}
	m.Form.Err = ""

	var cmd tea.Cmd
	if m.Form.EditingID != 0 {
		cmd = m.updateTaskCmd(m.Form.EditingID, draft)
	} else {
		cmd = m.addTaskCmd(draft)
	}
	m.resetForm()
	m.titleInput.SetValue("")
	m.notesArea.SetValue("")
	next, switchCmd := m.switchTab(TabDashboard)
	return next, tea.Sequence(cmd, switchCmd)
}

func (m Model) renderForm() string {
	interval := "-"
	if m.formRecurrence() == model.RecurrenceCustom {
		interval = strconv.Itoa(m.Form.Interval) + " day(s)"
	}
	return views.RenderAddFormPanel(views.AddFormPanelData{
		TitleView:    m.titleInput.View(),
		NotesView:    m.notesArea.View(),
		Category:     m.formCategory(),
		Priority:     string(formPriorities[m.Form.PriIndex]),
		Recurrence:   string(m.formRecurrence()),
		IntervalText: interval,
		DueDate:      string(m.Form.DueDate),
		FieldIndex:   int(m.Form.Field),
		ErrorText:    m.Form.Err,
	})
}
