package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"squeaky/internal/model"
	"squeaky/internal/views"
)

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadDashboardCmd(), m.loadSettingsCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.Palette.Active {
			return m.handlePaletteKey(typed)
		}
		if m.CurrentTab == TabAdd && m.formEditingText() {
			return m.handleFormKey(typed)
		}
		if m.CurrentTab == TabHelper && m.promptInput.Focused() {
			return m.handleHelperKey(typed)
		}

		switch typed.String() {
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.SetValue("")
			m.commandInput.Focus()
			m.Status = StatusBar{Text: "command palette active"}
			return m, nil
		case m.Keys.Dashboard:
			return m.switchTab(TabDashboard)
		case m.Keys.Calendar:
			return m.switchTab(TabCalendar)
		case m.Keys.Add:
			return m.switchTab(TabAdd)
		case m.Keys.Helper:
			return m.switchTab(TabHelper)
		case m.Keys.Settings:
			return m.switchTab(TabSettings)
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}

		switch m.CurrentTab {
		case TabDashboard:
			return m.handleDashboardKey(typed)
		case TabCalendar:
			return m.handleCalendarKey(typed)
		case TabAdd:
			return m.handleFormKey(typed)
		case TabHelper:
			return m.handleHelperKey(typed)
		case TabSettings:
			return m.handleSettingsKey(typed)
		}

	case spinner.TickMsg:
		if m.Helper.Loading {
			var cmd tea.Cmd
			m.helperSpinner, cmd = m.helperSpinner.Update(typed)
			return m, cmd
		}

	case SwitchTabMsg:
		if isKnownTab(typed.Tab) {
			return m.switchTab(typed.Tab)
		}
		return m, nil

	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil

	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil

	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil

	case dashboardLoadedMsg:
		m.Dashboard.Overdue = typed.overdue
		m.Dashboard.Tasks = typed.tasks
		m.Dashboard.Upcoming = typed.upcoming
		m.Dashboard.Streak = typed.streak
		m.Dashboard.Total = typed.total
		m.Dashboard.EmptyMessage = ""
		if len(typed.tasks) == 0 && len(typed.overdue) == 0 {
			if m.Today.IsWeekend() {
				m.Dashboard.EmptyMessage = model.RandomMessage(model.WeekendMessages)
			} else {
				m.Dashboard.EmptyMessage = model.RandomMessage(model.EmptyStateMessages)
			}
		}
		m.clampDashboardCursor()
		return m, nil

	case calendarLoadedMsg:
		m.Calendar.Tasks = typed.tasks
		if m.Calendar.Cursor >= len(typed.tasks) {
			m.Calendar.Cursor = 0
		}
		return m, nil

	case taskToggledMsg:
		m.Dashboard.Total = typed.total
		m.Status = StatusBar{Text: model.RandomMessage(model.CompletionMessages)}
		if typed.unlocked {
			m.Celebration = CelebrationState{Badge: typed.milestone.Badge, Message: typed.milestone.Message}
		}
		return m, tea.Batch(m.loadDashboardCmd(), m.loadCalendarCmd())

	case suggestionsMsg:
		m.Helper.Loading = false
		if typed.err != nil {
			m.Helper.Err = typed.err.Error()
			return m, nil
		}
		m.Helper.Err = ""
		m.Helper.Suggestions = typed.suggestions
		m.Helper.Picked = make(map[int]bool)
		for i := range typed.suggestions {
			m.Helper.Picked[i] = true
		}
		m.Helper.Cursor = 0
		return m, nil

	case settingsLoadedMsg:
		m.Theme = typed.theme
		m.Settings.Haptics = typed.haptics
		m.Dashboard.Total = typed.total
		m.Settings.Categories = typed.categories
		m.Settings.Achievements = typed.achievements
		m.Form.Categories = typed.categories
		return m, nil

	case backupDoneMsg:
		if typed.err != nil {
			m.Status = StatusBar{Text: "backup failed: " + typed.err.Error(), IsError: true}
			return m, nil
		}
		m.Status = StatusBar{Text: "backup written to " + typed.path}
		return m, nil
	}

	return m, nil
}

func (m Model) switchTab(tab Tab) (tea.Model, tea.Cmd) {
	m.CurrentTab = tab
	m.titleInput.Blur()
	m.notesArea.Blur()
	m.promptInput.Blur()
	switch tab {
	case TabDashboard:
		return m, m.loadDashboardCmd()
	case TabCalendar:
		return m, m.loadCalendarCmd()
	case TabAdd:
		if m.Form.EditingID == 0 {
			m.resetForm()
		}
		m.titleInput.Focus()
		return m, m.loadSettingsCmd()
	case TabHelper:
		m.promptInput.Focus()
		return m, nil
	case TabSettings:
		return m, m.loadSettingsCmd()
	}
	return m, nil
}

func (m Model) formEditingText() bool {
	return m.Form.Field == fieldTitle || m.Form.Field == fieldNotes
}

func (m Model) View() string {
	styles := views.StylesForTheme(string(m.Theme))

	body := ""
	side := ""
	switch m.CurrentTab {
	case TabDashboard:
		body = m.renderDashboard()
		side = m.renderCelebration()
	case TabCalendar:
		body = m.renderCalendar()
	case TabAdd:
		body = m.renderForm()
	case TabHelper:
		body = m.renderHelper()
	case TabSettings:
		body = m.renderSettings()
	}
	if m.Palette.Active {
		side = views.RenderCommandPalette(true, m.Palette.Input)
	}

	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	tabs := make([]string, len(tabOrder))
	for i, tab := range tabOrder {
		tabs[i] = fmt.Sprintf("%d:%s", i+1, tab)
	}

	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("squeaky clean | %s", m.Today),
		Tabs:       tabs,
		ActiveTab:  tabIndex(m.CurrentTab),
		Body:       body,
		SidePane:   side,
		StatusLine: status,
		Footer:     fmt.Sprintf("keys: 1-5 tabs | / command | %s quit", m.Keys.Quit),
	}, styles)
}

func (m *Model) clampDashboardCursor() {
	rows := len(m.Dashboard.rows())
	if rows == 0 {
		m.Dashboard.Cursor = 0
		return
	}
	if m.Dashboard.Cursor >= rows {
		m.Dashboard.Cursor = rows - 1
	}
	if m.Dashboard.Cursor < 0 {
		m.Dashboard.Cursor = 0
	}
}
