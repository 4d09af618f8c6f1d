package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	contentdto "rightsdaily/internal/modules/content/dto"
	progressdto "rightsdaily/internal/modules/progress/dto"
	apperrors "rightsdaily/internal/platform/errors"
	"rightsdaily/internal/ui/theme"
	calendarview "rightsdaily/internal/ui/views/calendar"
	dashboardview "rightsdaily/internal/ui/views/dashboard"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type progressPort interface {
	Open(ctx context.Context) (progressdto.StatsOutput, error)
	CompleteLesson(ctx context.Context, date string) (progressdto.CompleteLessonOutput, error)
	IsLessonCompleted(ctx context.Context, date string) (bool, error)
	ResolveDate(ctx context.Context, date string) (progressdto.LessonDateOutput, error)
	MonthStatus(ctx context.Context, month, year int) (progressdto.MonthStatusOutput, error)
	Calendar(ctx context.Context, month, year int) (progressdto.CalendarOutput, error)
	Stats(ctx context.Context) (progressdto.StatsOutput, error)
}

type contentPort interface {
	ArticleFor(ctx context.Context, month, day int) (contentdto.ArticleOutput, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabDashboard tabID = iota
	tabCalendar
	tabCount
)

var tabLabels = [tabCount]string{"Today", "Calendar"}

// ─── async messages ───────────────────────────────────────────────────────────

type openedMsg struct {
	stats progressdto.StatsOutput
	err   error
}

type lessonLoadedMsg struct {
	lesson dashboardview.Lesson
	err    error
}

type completedMsg struct {
	out progressdto.CompleteLessonOutput
	err error
}

type calendarLoadedMsg struct {
	cal    progressdto.CalendarOutput
	status progressdto.MonthStatusOutput
	err    error
}

// tickMsg drives the periodic check for a day rollover while the TUI is open.
type tickMsg struct{}

type dayCheckedMsg struct {
	date string
	err  error
}

type statsLoadedMsg struct {
	stats progressdto.StatsOutput
	err   error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab      key.Binding
	Help     key.Binding
	Quit     key.Binding
	Complete key.Binding
	Prev     key.Binding
	Next     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Complete: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "complete today")),
		Prev:     key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "previous month")),
		Next:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next month")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Complete, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Complete},
		{k.Prev, k.Next},
		{k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. Opening the dashboard counts as an app
// open for the streak.
type Model struct {
	progress progressPort
	content  contentPort

	stats     progressdto.StatsOutput
	lesson    dashboardview.Lesson
	cal       progressdto.CalendarOutput
	calStatus progressdto.MonthStatusOutput
	month     int
	year      int
	today     string

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	status    string
	failed    bool
	width     int
	height    int
}

func NewModel(progress progressPort, content contentPort) Model {
	return Model{
		progress:  progress,
		content:   content,
		activeTab: tabDashboard,
		keys:      defaultKeys(),
		help:      help.New(),
		status:    "loading",
	}
}

const dayCheckInterval = time.Minute

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.openCmd(), tickCmd())
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = m.width

	case openedMsg:
		if msg.err != nil {
			m.setStatus("open: "+msg.err.Error(), true)
			return m, nil
		}
		m.stats = msg.stats
		m.setStatus(fmt.Sprintf("welcome back, streak %d", msg.stats.Streak), false)
		if today, err := time.Parse("2006-01-02", msg.stats.LastActiveDate); err == nil {
			m.today = msg.stats.LastActiveDate
			m.month, m.year = int(today.Month()), today.Year()
			return m, tea.Batch(m.loadLessonCmd(today), m.loadCalendarCmd(m.month, m.year))
		}

	case tickMsg:
		return m, tea.Batch(m.checkDayCmd(), tickCmd())

	case dayCheckedMsg:
		// Past midnight the dashboard counts as a fresh open of the new day.
		if msg.err == nil && m.today != "" && msg.date != m.today {
			return m, m.openCmd()
		}

	case lessonLoadedMsg:
		if msg.err != nil {
			m.setStatus("lesson: "+msg.err.Error(), true)
			return m, nil
		}
		m.lesson = msg.lesson

	case completedMsg:
		if msg.err != nil {
			m.setStatus("complete: "+msg.err.Error(), true)
			return m, nil
		}
		m.lesson.Done = true
		switch {
		case msg.out.AlreadyDone:
			m.setStatus("lesson already completed", false)
		case msg.out.LevelAfter > msg.out.LevelBefore:
			m.setStatus(fmt.Sprintf("level up! now level %d", msg.out.LevelAfter), false)
		case msg.out.RewardEarned:
			m.setStatus("reward earned", false)
		default:
			m.setStatus("lesson completed", false)
		}
		return m, tea.Batch(m.loadStatsCmd(), m.loadCalendarCmd(m.month, m.year))

	case statsLoadedMsg:
		if msg.err == nil {
			m.stats = msg.stats
		}

	case calendarLoadedMsg:
		if msg.err != nil {
			m.setStatus("calendar: "+msg.err.Error(), true)
			return m, nil
		}
		m.cal = msg.cal
		m.calStatus = msg.status

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.activeTab = (m.activeTab + 1) % tabCount
		case msg.String() == "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
		case key.Matches(msg, m.keys.Complete):
			return m, m.completeCmd()
		case key.Matches(msg, m.keys.Prev) && m.activeTab == tabCalendar:
			m.month, m.year = shiftMonth(m.month, m.year, -1)
			return m, m.loadCalendarCmd(m.month, m.year)
		case key.Matches(msg, m.keys.Next) && m.activeTab == tabCalendar:
			m.month, m.year = shiftMonth(m.month, m.year, 1)
			return m, m.loadCalendarCmd(m.month, m.year)
		}
	}
	return m, nil
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()

	var content string
	switch {
	case m.showHelp:
		content = m.help.View(m.keys)
	case m.activeTab == tabCalendar:
		content = calendarview.Render(m.cal, m.calStatus)
	default:
		content = dashboardview.Render(m.stats, m.lesson, m.width)
	}
	card := theme.Card
	if m.width > 4 {
		card = card.Width(m.width - 2)
	}
	return lipgloss.JoinVertical(lipgloss.Left, tabBar, card.Render(content), statusBar)
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.TabActive.Render(label)
		} else {
			parts[i] = theme.TabIdle.Render(label)
		}
	}
	bar := theme.Title.Render("rightsdaily") + "  " + strings.Join(parts, theme.Muted.Render(" │ "))
	return theme.Bar.Width(m.width).Render(bar)
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.failed {
		left = theme.Error.Render(left)
	}
	right := theme.Muted.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return theme.Bar.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) openCmd() tea.Cmd {
	return func() tea.Msg {
		stats, err := m.progress.Open(context.Background())
		return openedMsg{stats: stats, err: err}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(dayCheckInterval, func(time.Time) tea.Msg { return tickMsg{} })
}

func (m Model) checkDayCmd() tea.Cmd {
	return func() tea.Msg {
		day, err := m.progress.ResolveDate(context.Background(), "")
		return dayCheckedMsg{date: day.Date, err: err}
	}
}

func (m Model) loadLessonCmd(today time.Time) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		done, err := m.progress.IsLessonCompleted(ctx, today.Format("2006-01-02"))
		if err != nil {
			return lessonLoadedMsg{err: err}
		}
		article, err := m.content.ArticleFor(ctx, int(today.Month()), today.Day())
		if errors.Is(err, apperrors.ErrNotFound) {
			return lessonLoadedMsg{lesson: dashboardview.Lesson{Done: done}}
		}
		if err != nil {
			return lessonLoadedMsg{err: err}
		}
		return lessonLoadedMsg{lesson: dashboardview.Lesson{Article: article, Scheduled: true, Done: done}}
	}
}

func (m Model) completeCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.progress.CompleteLesson(context.Background(), "")
		return completedMsg{out: out, err: err}
	}
}

func (m Model) loadStatsCmd() tea.Cmd {
	return func() tea.Msg {
		stats, err := m.progress.Stats(context.Background())
		return statsLoadedMsg{stats: stats, err: err}
	}
}

func (m Model) loadCalendarCmd(month, year int) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		cal, err := m.progress.Calendar(ctx, month, year)
		if err != nil {
			return calendarLoadedMsg{err: err}
		}
		status, err := m.progress.MonthStatus(ctx, month, year)
		return calendarLoadedMsg{cal: cal, status: status, err: err}
	}
}

func (m *Model) setStatus(text string, failed bool) {
	m.status = text
	m.failed = failed
}

func shiftMonth(month, year, delta int) (int, int) {
	t := time.Date(year, time.Month(month)+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	return int(t.Month()), t.Year()
}
