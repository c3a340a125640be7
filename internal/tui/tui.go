// Package tui provides a Bubble Tea terminal user interface for playlist-generator.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/playlist-generator/internal/config"
	"github.com/handiism/playlist-generator/internal/model"
	"github.com/handiism/playlist-generator/internal/pipeline"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	labelStyle = lipgloss.NewStyle().
			Width(10).
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateRunning
	StateComplete
	StateError
)

// Form fields, in focus order.
const (
	fieldLink = iota
	fieldStart
	fieldEnd
	fieldPlaylist
	fieldCount
)

var fieldLabels = [fieldCount]string{"Link", "Start", "End", "Playlist"}

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   pipeline.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state    State
	inputs   []textinput.Model
	focus    int
	spinner  spinner.Model
	progress progress.Model
	settings *config.Settings
	logs     []LogEntry
	err      error

	// Run context
	ctx    context.Context
	cancel context.CancelFunc

	manager *pipeline.Manager
	events  chan pipeline.ProgressEvent
	result  *pipeline.Result

	// Verification progress
	checked int
	total   int

	// Options
	format  model.PlaylistFormat
	verify  bool
	verbose bool

	width  int
	height int
}

// NewModel creates a new TUI model seeded from settings.
func NewModel(settings *config.Settings) Model {
	if settings == nil {
		settings = config.DefaultSettings()
	}

	placeholders := [fieldCount]string{
		"http://example.com/episode_*.mp3",
		"1",
		"10",
		"playlist.m3u",
	}

	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 500
		ti.Width = 60
		inputs[i] = ti
	}
	inputs[fieldLink].Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	format, err := model.ParseFormat(settings.Format)
	if err != nil {
		format = model.PlaylistFormatPlain
	}

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:    StateInput,
		inputs:   inputs,
		spinner:  sp,
		progress: prog,
		settings: settings,
		logs:     make([]LogEntry, 0),
		ctx:      ctx,
		cancel:   cancel,
		format:   format,
		verify:   settings.Verify,
		verbose:  settings.Verbose,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// ProgressMsg is sent for every pipeline progress event.
	ProgressMsg struct {
		Event pipeline.ProgressEvent
	}

	// RunDoneMsg is sent when the pipeline finishes.
	RunDoneMsg struct {
		Result *pipeline.Result
		Err    error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}

	// eventsClosedMsg is sent once a run's event channel is drained.
	eventsClosedMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}
			if m.state == StateRunning {
				m.cancel()
			}
			return m, nil

		case "tab", "down":
			if m.state == StateInput {
				m.setFocus((m.focus + 1) % fieldCount)
				return m, nil
			}

		case "shift+tab", "up":
			if m.state == StateInput {
				m.setFocus((m.focus + fieldCount - 1) % fieldCount)
				return m, nil
			}

		case "enter":
			if m.state == StateInput {
				return m.startRun()
			}

		case "ctrl+f":
			if m.state == StateInput {
				m.format = m.format.Next()
				return m, nil
			}

		case "ctrl+t":
			if m.state == StateInput {
				m.verify = !m.verify
				return m, nil
			}

		case "ctrl+o":
			if m.state == StateInput {
				m.verbose = !m.verbose
				return m, nil
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				// Back to the form, keeping the entered values
				m.state = StateInput
				m.logs = nil
				m.err = nil
				m.result = nil
				m.manager = nil
				m.events = nil
				m.checked, m.total = 0, 0
				m.ctx, m.cancel = context.WithCancel(context.Background())
				m.setFocus(fieldLink)
				return m, nil
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		cmds = append(cmds, waitForEvent(m.events))
		// Filter verbose messages if not in verbose mode
		if msg.Event.Level == pipeline.LevelVerbose && !m.verbose {
			break
		}
		m.logs = append(m.logs, LogEntry{
			Message: msg.Event.Message,
			Level:   msg.Event.Level,
		})
		// Keep only last 10 logs
		if len(m.logs) > 10 {
			m.logs = m.logs[len(m.logs)-10:]
		}

	case eventsClosedMsg:

	case RunDoneMsg:
		if m.manager != nil {
			m.checked, m.total = m.manager.GetProgress()
		}
		switch {
		case msg.Err != nil && m.ctx.Err() != nil:
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		case msg.Err != nil:
			m.state = StateError
			m.err = msg.Err
		default:
			m.state = StateComplete
			m.result = msg.Result
		}

	case TickMsg:
		if m.manager != nil && m.state == StateRunning {
			m.checked, m.total = m.manager.GetProgress()

			var percent float64
			if m.total > 0 {
				percent = float64(m.checked) / float64(m.total)
			}
			cmds = append(cmds, m.progress.SetPercent(percent), m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	// Update the focused text input
	if m.state == StateInput {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

// options builds run options from the settings and the form.
func (m Model) options() (*config.Options, error) {
	opts := m.settings.ToOptions()
	opts.Link = strings.TrimSpace(m.inputs[fieldLink].Value())
	opts.Playlist = strings.TrimSpace(m.inputs[fieldPlaylist].Value())
	opts.Format = m.format.String()
	opts.Verify = m.verify
	opts.Verbose = m.verbose

	var err error
	if opts.Start, err = parseBound(m.inputs[fieldStart].Value(), config.ErrMissingStart); err != nil {
		return nil, err
	}
	if opts.End, err = parseBound(m.inputs[fieldEnd].Value(), config.ErrMissingEnd); err != nil {
		return nil, err
	}

	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

func parseBound(value string, missing error) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, config.NewUsageError(missing)
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, config.NewUsageError(fmt.Errorf("%q is not a number", value))
	}
	return n, nil
}

// startRun validates the form and launches the pipeline in the background.
// Invalid input keeps the form open with the error shown.
func (m Model) startRun() (tea.Model, tea.Cmd) {
	opts, err := m.options()
	if err != nil {
		m.err = err
		return m, nil
	}

	m.err = nil
	m.logs = nil
	m.state = StateRunning
	m.events = make(chan pipeline.ProgressEvent, 64)

	events := m.events
	m.manager = pipeline.NewManager(opts, nil, func(event pipeline.ProgressEvent) {
		events <- event
	})

	return m, tea.Batch(
		runPipeline(m.ctx, m.manager, events),
		waitForEvent(events),
		m.spinner.Tick,
		m.tickProgress(),
	)
}

// runPipeline runs the manager and closes events once no more can be sent.
func runPipeline(ctx context.Context, manager *pipeline.Manager, events chan pipeline.ProgressEvent) tea.Cmd {
	return func() tea.Msg {
		result, err := manager.Run(ctx)
		close(events)
		return RunDoneMsg{Result: result, Err: err}
	}
}

// waitForEvent forwards the next progress event into the Bubble Tea loop.
func waitForEvent(events <-chan pipeline.ProgressEvent) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}
		return ProgressMsg{Event: event}
	}
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("Playlist Generator"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Build playlists from numbered URLs"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateRunning:
		b.WriteString(m.viewRunning())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Enter a URL template with a * wildcard:"))
	b.WriteString("\n\n")
	for i, input := range m.inputs {
		b.WriteString(labelStyle.Render(fieldLabels[i]))
		b.WriteString(input.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	verifyCheck := "[ ]"
	if m.verify {
		verifyCheck = "[×]"
	}
	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[×]"
	}

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Format: %s (ctrl+f)\n", m.format))
	b.WriteString(fmt.Sprintf("  %s Verify URLs (ctrl+t)\n", verifyCheck))
	b.WriteString(fmt.Sprintf("  %s Verbose output (ctrl+o)\n", verboseCheck))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Threads: %d | Timeout: %s", m.settings.Threads, m.settings.Timeout())))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("✗ " + m.err.Error()))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewRunning() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	if m.manager != nil && m.manager.Verifying() {
		b.WriteString(subtitleStyle.Render("Verifying URLs..."))
		b.WriteString("\n\n")

		var percent float64
		if m.total > 0 {
			percent = float64(m.checked) / float64(m.total)
		}
		b.WriteString(m.progress.ViewAs(percent))
		b.WriteString("\n")
		b.WriteString(infoStyle.Render(fmt.Sprintf("Checked: %d/%d", m.checked, m.total)))
	} else {
		b.WriteString(subtitleStyle.Render("Generating playlist..."))
	}
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	if m.result == nil {
		return ""
	}

	box := boxStyle.Render(fmt.Sprintf(
		"Playlist saved!\n\n"+
			"File: %s\n"+
			"Format: %s\n"+
			"Entries: %d/%d",
		m.result.Path,
		m.format,
		m.result.Valid,
		m.result.Total,
	))
	b.WriteString(box)
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("✗ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case pipeline.LevelError:
			style = errorStyle
			prefix = "✗"
		case pipeline.LevelWarning:
			style = warningStyle
			prefix = "!"
		case pipeline.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case pipeline.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: generate • tab: next field • ctrl+f: format • ctrl+t: verify • ctrl+o: verbose • esc: quit"
	case StateRunning:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: new playlist • q: quit"
	}
	return ""
}

// Run starts the TUI application.
func Run(settings *config.Settings) error {
	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
