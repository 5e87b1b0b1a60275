package views

import (
	"fmt"
	"sort"
	"strings"
)

type TaskItemData struct {
	ID        int64
	Title     string
	Category  string
	Icon      string
	Priority  string
	DueDate   string
	Completed bool
	Recurring bool
	Notes     string
}

type DashboardPanelData struct {
	Date         string
	Streak       int
	Total        int
	Overdue      []TaskItemData
	Tasks        []TaskItemData
	Upcoming     []TaskItemData
	SelectedID   int64
	EmptyMessage string
}

func RenderDashboardPanel(data DashboardPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("today: %s\n", data.Date))
	b.WriteString(fmt.Sprintf("streak: %d day(s) | lifetime done: %d\n", data.Streak, data.Total))
	b.WriteString("actions: [j/k]move [space]toggle [d]delete [D]delete-series [e]edit\n")

	if len(data.Overdue) > 0 {
		b.WriteString("\noverdue:\n")
		for _, item := range data.Overdue {
			b.WriteString(renderTaskLine(item, data.SelectedID))
		}
	}

	b.WriteString("\ntasks:\n")
	if len(data.Tasks) == 0 {
		if data.EmptyMessage != "" {
			b.WriteString("  " + data.EmptyMessage + "\n")
		} else {
			b.WriteString("  (nothing due)\n")
		}
	}
	for _, item := range data.Tasks {
		b.WriteString(renderTaskLine(item, data.SelectedID))
	}

	if len(data.Upcoming) > 0 {
		b.WriteString("\nupcoming this week:\n")
		for _, item := range data.Upcoming {
			b.WriteString(fmt.Sprintf("  %s %s (%s)\n", item.Icon, item.Title, item.DueDate))
		}
	}
	return strings.TrimSpace(b.String())
}

func renderTaskLine(item TaskItemData, selectedID int64) string {
	cursor := " "
	if item.ID == selectedID {
		cursor = ">"
	}
	box := "[ ]"
	if item.Completed {
		box = "[x]"
	}
	line := fmt.Sprintf("%s %s %s %s %s", cursor, box, priorityBadge(item.Priority), item.Icon, item.Title)
	if item.Recurring {
		line += " ↻"
	}
	if item.Category != "" {
		line += fmt.Sprintf(" (%s)", item.Category)
	}
	return line + "\n"
}

func priorityBadge(priority string) string {
	switch priority {
	case "high":
		return "[RED]"
	case "medium":
		return "[YELLOW]"
	default:
		return "[GREEN]"
	}
}

type CalendarPanelData struct {
	FocusDate string
	Items     []TaskItemData
	Selected  *TaskItemData
}

func RenderCalendarPanel(data CalendarPanelData) string {
	var b strings.Builder
	b.WriteString("calendar:\n")
	b.WriteString(fmt.Sprintf("week of: %s\n", data.FocusDate))
	b.WriteString("actions: [h/l]week [j/k]move [space]toggle [t]today\n")

	grouped := make(map[string][]TaskItemData)
	days := make([]string, 0)
	for _, item := range data.Items {
		if _, ok := grouped[item.DueDate]; !ok {
			days = append(days, item.DueDate)
		}
		grouped[item.DueDate] = append(grouped[item.DueDate], item)
	}
	sort.Strings(days)
	if len(days) == 0 {
		b.WriteString("(week empty)")
		return b.String()
	}

	for _, day := range days {
		b.WriteString(fmt.Sprintf("\n%s:\n", day))
		for _, item := range grouped[day] {
			var selected int64
			if data.Selected != nil {
				selected = data.Selected.ID
			}
			b.WriteString(renderTaskLine(item, selected))
		}
	}

	if data.Selected != nil {
		b.WriteString("\ntask-detail:\n")
		b.WriteString(fmt.Sprintf("title: %s\n", data.Selected.Title))
		b.WriteString(fmt.Sprintf("due: %s | priority: %s | category: %s\n", data.Selected.DueDate, data.Selected.Priority, data.Selected.Category))
		if data.Selected.Notes != "" {
			b.WriteString("notes: " + data.Selected.Notes + "\n")
		}
	}
	return strings.TrimSpace(b.String())
}

type AddFormPanelData struct {
	TitleView    string
	NotesView    string
	Category     string
	Priority     string
	Recurrence   string
	IntervalText string
	DueDate      string
	FieldIndex   int
	ErrorText    string
}

func RenderAddFormPanel(data AddFormPanelData) string {
	var b strings.Builder
	b.WriteString("add task:\n")
	b.WriteString("keys: [tab]next field [shift+tab]prev [enter]save [esc]cancel\n\n")
	fields := []struct {
		label string
		value string
	}{
		{"title", data.TitleView},
		{"due", data.DueDate},
		{"category", data.Category},
		{"priority", data.Priority},
		{"repeats", data.Recurrence},
		{"interval", data.IntervalText},
		{"notes", data.NotesView},
	}
	for i, f := range fields {
		marker := " "
		if i == data.FieldIndex {
			marker = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s: %s\n", marker, f.label, f.value))
	}
	if data.ErrorText != "" {
		b.WriteString("\nerror: " + data.ErrorText)
	}
	return strings.TrimSpace(b.String())
}

type SuggestionItemData struct {
	Title     string
	Frequency string
	Category  string
	Priority  string
	Notes     string
	Selected  bool
}

type HelperPanelData struct {
	PromptView  string
	Loading     bool
	SpinnerView string
	Suggestions []SuggestionItemData
	ErrorText   string
	Intro       string
}

func RenderHelperPanel(data HelperPanelData) string {
	var b strings.Builder
	b.WriteString("schedule helper:\n")
	if data.Intro != "" {
		b.WriteString(data.Intro + "\n")
	}
	b.WriteString("describe your home: " + data.PromptView + "\n")
	b.WriteString("keys: [enter]generate [space]toggle pick [a]add picked [esc]clear\n")
	if data.Loading {
		b.WriteString("\ngenerating " + data.SpinnerView + "\n")
	}
	if data.ErrorText != "" {
		b.WriteString("\nerror: " + data.ErrorText + "\n")
	}
	if len(data.Suggestions) > 0 {
		b.WriteString("\nsuggestions:\n")
		for _, s := range data.Suggestions {
			pick := "[ ]"
			if s.Selected {
				pick = "[x]"
			}
			b.WriteString(fmt.Sprintf("%s %s (%s, %s, %s)\n", pick, s.Title, s.Frequency, s.Category, s.Priority))
			if s.Notes != "" {
				b.WriteString("    " + s.Notes + "\n")
			}
		}
	}
	return strings.TrimSpace(b.String())
}

type CategoryItemData struct {
	Name  string
	Icon  string
	Color string
}

type SettingsPanelData struct {
	Theme        string
	Haptics      bool
	Total        int
	Categories   []CategoryItemData
	Achievements []string
	DBPath       string
}

func RenderSettingsPanel(data SettingsPanelData) string {
	var b strings.Builder
	b.WriteString("settings:\n")
	b.WriteString(fmt.Sprintf("theme: %s (press [t] to cycle)\n", data.Theme))
	haptics := "off"
	if data.Haptics {
		haptics = "on"
	}
	b.WriteString(fmt.Sprintf("haptic feedback: %s (press [f] to toggle)\n", haptics))
	b.WriteString(fmt.Sprintf("lifetime completions: %d\n", data.Total))
	if data.DBPath != "" {
		b.WriteString("database: " + data.DBPath + "\n")
	}
	b.WriteString("actions: [x]export backup | /import <path> from the palette\n")

	b.WriteString("\ncategories:\n")
	for _, c := range data.Categories {
		b.WriteString(fmt.Sprintf("  %s %s %s\n", c.Icon, c.Name, c.Color))
	}

	b.WriteString("\nachievements:\n")
	if len(data.Achievements) == 0 {
		b.WriteString("  (none yet, keep cleaning)\n")
	}
	for _, a := range data.Achievements {
		b.WriteString("  " + a + "\n")
	}
	return strings.TrimSpace(b.String())
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderCelebration(badge, message string) string {
	if badge == "" {
		return ""
	}
	return fmt.Sprintf("milestone unlocked: %s\n%s", badge, message)
}
