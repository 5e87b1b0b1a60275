package update

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"squeaky/internal/model"
	"squeaky/internal/suggest"
	"squeaky/internal/views"
)

const helperIntro = `**Describe your home** and squeaky drafts a cleaning
schedule: rooms, floors, pets, how much time you have. Pick the
suggestions you like and add them in one go.`

func (m Model) handleHelperKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.Quitting = true
		return m, tea.Quit
	case "esc":
		m.Helper = HelperState{Picked: make(map[int]bool)}
		m.promptInput.SetValue("")
		m.promptInput.Focus()
		return m, nil
	case "enter":
		if m.promptInput.Focused() {
			return m.startGeneration()
		}
	case "tab":
		// Move between the prompt and the suggestion list.
		if m.promptInput.Focused() {
			if len(m.Helper.Suggestions) > 0 {
				m.promptInput.Blur()
			}
		} else {
			m.promptInput.Focus()
		}
		return m, nil
	}

	if m.promptInput.Focused() {
		var cmd tea.Cmd
		m.promptInput, cmd = m.promptInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "up", "k":
		if m.Helper.Cursor > 0 {
			m.Helper.Cursor--
		}
	case "down", "j":
		if m.Helper.Cursor < len(m.Helper.Suggestions)-1 {
			m.Helper.Cursor++
		}
	case " ":
		m.Helper.Picked[m.Helper.Cursor] = !m.Helper.Picked[m.Helper.Cursor]
	case "a":
		return m.addPickedSuggestions()
	}
	return m, nil
}

func (m Model) startGeneration() (tea.Model, tea.Cmd) {
	if m.services.Suggest == nil {
		m.Helper.Err = "no suggestion proxy configured, set proxy_url in config.toml"
		return m, nil
	}
	prompt := strings.TrimSpace(m.promptInput.Value())
	if err := suggest.ValidatePrompt(prompt); err != nil {
		m.Helper.Err = err.Error()
		return m, nil
	}
	m.Helper.Loading = true
	m.Helper.Err = ""
	return m, tea.Batch(m.helperSpinner.Tick, m.generateCmd(prompt))
}

func (m Model) addPickedSuggestions() (tea.Model, tea.Cmd) {
	picked := make([]suggest.Suggestion, 0, len(m.Helper.Suggestions))
	for i, s := range m.Helper.Suggestions {
		if m.Helper.Picked[i] {
			picked = append(picked, s)
		}
	}
	if len(picked) == 0 {
		m.Status = StatusBar{Text: "nothing picked"}
		return m, nil
	}
	drafts := suggest.DraftTasks(picked, m.Today)
	m.Helper = HelperState{Picked: make(map[int]bool)}
	m.promptInput.SetValue("")
	next, switchCmd := m.switchTab(TabDashboard)
	return next, tea.Sequence(m.addPickedCmd(drafts), switchCmd)
}

func (m Model) renderHelper() string {
	items := make([]views.SuggestionItemData, 0, len(m.Helper.Suggestions))
	for i, s := range m.Helper.Suggestions {
		items = append(items, views.SuggestionItemData{
			Title:     s.Title,
			Frequency: string(model.MapFrequency(s.Frequency)),
			Category:  s.Category,
			Priority:  s.Priority,
			Notes:     s.Notes,
			Selected:  m.Helper.Picked[i],
		})
	}
	intro := views.RenderMarkdown(helperIntro)
	if m.services.Suggest == nil {
		intro = "suggestion proxy not configured"
	}
	return views.RenderHelperPanel(views.HelperPanelData{
		PromptView:  m.promptInput.View(),
		Loading:     m.Helper.Loading,
		SpinnerView: m.helperSpinner.View(),
		Suggestions: items,
		ErrorText:   m.Helper.Err,
		Intro:       intro,
	})
}
