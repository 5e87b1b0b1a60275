package update

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"

	"squeaky/internal/model"
	"squeaky/internal/service"
	"squeaky/internal/suggest"
)

type Tab string

const (
	TabDashboard Tab = "Dashboard"
	TabCalendar  Tab = "Calendar"
	TabAdd       Tab = "Add"
	TabHelper    Tab = "Helper"
	TabSettings  Tab = "Settings"
)

var tabOrder = []Tab{TabDashboard, TabCalendar, TabAdd, TabHelper, TabSettings}

// SuggestClient is the slice of the proxy client the helper tab needs.
type SuggestClient interface {
	GenerateSchedule(ctx context.Context, prompt string) ([]suggest.Suggestion, error)
}

// Services bundles everything the TUI talks to. Suggest may be nil when
// no proxy is configured; the helper tab then shows a hint instead.
type Services struct {
	Tasks        *service.TaskService
	Views        *service.ViewService
	Streaks      *service.StreakService
	Achievements *service.AchievementService
	Settings     *service.SettingsService
	Categories   *service.CategoryService
	Backup       *service.BackupService
	Suggest      SuggestClient
}

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Dashboard string
	Calendar  string
	Add       string
	Helper    string
	Settings  string
	Quit      string
}

type DashboardState struct {
	Overdue      []model.Task
	Tasks        []model.Task
	Upcoming     []model.Task
	Cursor       int
	Streak       int
	Total        int
	EmptyMessage string
}

// rows returns overdue tasks first, then today's, matching the render
// order so the cursor maps onto what is on screen.
func (s DashboardState) rows() []model.Task {
	rows := make([]model.Task, 0, len(s.Overdue)+len(s.Tasks))
	rows = append(rows, s.Overdue...)
	rows = append(rows, s.Tasks...)
	return rows
}

type CalendarState struct {
	WeekStart model.Date
	Tasks     []model.Task
	Cursor    int
}

type formField int

const (
	fieldTitle formField = iota
	fieldDue
	fieldCategory
	fieldPriority
	fieldRecurrence
	fieldInterval
	fieldNotes
	fieldCount
)

type AddFormState struct {
	Field      formField
	DueDate    model.Date
	Categories []model.Category
	CatIndex   int
	PriIndex   int
	RecIndex   int
	Interval   int
	Err        string
	EditingID  int64
}

var formPriorities = []model.Priority{model.PriorityLow, model.PriorityMedium, model.PriorityHigh}

var formRecurrences = []model.Recurrence{
	model.RecurrenceNone,
	model.RecurrenceDaily,
	model.RecurrenceWeekly,
	model.RecurrenceBiweekly,
	model.RecurrenceMonthly,
	model.RecurrenceQuarterly,
	model.RecurrenceAnnually,
	model.RecurrenceCustom,
}

type HelperState struct {
	Suggestions []suggest.Suggestion
	Picked      map[int]bool
	Cursor      int
	Loading     bool
	Err         string
}

type SettingsState struct {
	Haptics      bool
	Categories   []model.Category
	Achievements []model.Achievement
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type CelebrationState struct {
	Badge   string
	Message string
}

type Model struct {
	CurrentTab  Tab
	Today       model.Date
	Theme       model.Theme
	Dashboard   DashboardState
	Calendar    CalendarState
	Form        AddFormState
	Helper      HelperState
	Settings    SettingsState
	Palette     CommandPaletteState
	Celebration CelebrationState
	Status      StatusBar
	Keys        GlobalKeyMap
	Quitting    bool
	LastError   error
	DBPath      string

	services Services
	now      func() time.Time

	titleInput    textinput.Model
	notesArea     textarea.Model
	promptInput   textinput.Model
	commandInput  textinput.Model
	helperSpinner spinner.Model
}

type SwitchTabMsg struct {
	Tab Tab
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type dashboardLoadedMsg struct {
	overdue  []model.Task
	tasks    []model.Task
	upcoming []model.Task
	streak   int
	total    int
}

type calendarLoadedMsg struct {
	tasks []model.Task
}

type taskToggledMsg struct {
	total     int
	milestone model.Milestone
	unlocked  bool
}

type suggestionsMsg struct {
	suggestions []suggest.Suggestion
	err         error
}

type settingsLoadedMsg struct {
	theme        model.Theme
	haptics      bool
	total        int
	categories   []model.Category
	achievements []model.Achievement
}

type backupDoneMsg struct {
	path string
	err  error
}

func NewModel(services Services, now func() time.Time) Model {
	if now == nil {
		now = time.Now
	}
	m := Model{
		CurrentTab: TabDashboard,
		Today:      model.Today(now()),
		Theme:      model.ThemeLight,
		Helper: HelperState{
			Picked: make(map[int]bool),
		},
		Keys: GlobalKeyMap{
			Dashboard: "1",
			Calendar:  "2",
			Add:       "3",
			Helper:    "4",
			Settings:  "5",
			Quit:      "q",
		},
		services: services,
		now:      now,
	}
	m.Calendar.WeekStart = m.Today
	m.resetForm()

	m.titleInput = textinput.New()
	m.titleInput.Placeholder = "task title"
	m.titleInput.CharLimit = 120
	m.notesArea = textarea.New()
	m.notesArea.Placeholder = "notes"
	m.notesArea.SetHeight(3)
	m.promptInput = textinput.New()
	m.promptInput.Placeholder = "e.g. two bed flat, one dog, hardwood floors"
	m.promptInput.CharLimit = suggest.MaxPromptLen
	m.commandInput = textinput.New()
	m.helperSpinner = spinner.New()
	m.helperSpinner.Spinner = spinner.Dot
	return m
}

func (m *Model) resetForm() {
	categories := m.Form.Categories
	m.Form = AddFormState{
		Field:      fieldTitle,
		DueDate:    m.Today,
		Categories: categories,
		PriIndex:   1,
		Interval:   7,
	}
}

func tabIndex(tab Tab) int {
	for i, t := range tabOrder {
		if t == tab {
			return i
		}
	}
	return 0
}

func isKnownTab(tab Tab) bool {
	for _, t := range tabOrder {
		if t == tab {
			return true
		}
	}
	return false
}
