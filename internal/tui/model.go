package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	mdwlog "github.com/msto63/semshell/foundation/core/log"
	"github.com/msto63/semshell/foundation/shell"
	"github.com/msto63/semshell/internal/cmdline"
	"github.com/msto63/semshell/internal/history"
)

// recallSize is the number of history lines loaded for Up/Down recall
const recallSize = 200

// Config wires the shell model to its collaborators. Transcript must be
// the messenger the engine's commands report to.
type Config struct {
	Engine     *shell.Engine
	Transcript *shell.Transcript
	History    history.Store
	Prompt     string
	Logger     *mdwlog.Logger
}

// line is one rendered transcript line
type line struct {
	prompt  string
	content string
}

// Model is the interactive shell model
type Model struct {
	// State
	width   int
	height  int
	ready   bool
	running bool
	cancel  context.CancelFunc

	// Components
	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model

	// Transcript
	lines []line

	// History recall; recallPos == len(recall) means editing a new line
	recall    []string
	recallPos int

	engine     *shell.Engine
	transcript *shell.Transcript
	history    history.Store
	prompt     string
	logger     *mdwlog.Logger
}

// NewModel creates a new shell model
func NewModel(cfg Config) Model {
	if cfg.Logger == nil {
		cfg.Logger = mdwlog.GetDefault()
	}
	if cfg.Prompt == "" {
		cfg.Prompt = "> "
	}

	ti := textinput.New()
	ti.Prompt = cfg.Prompt
	ti.PromptStyle = PromptStyle
	ti.Placeholder = "help"
	ti.CharLimit = 4096
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	return Model{
		input:      ti,
		spinner:    sp,
		engine:     cfg.Engine,
		transcript: cfg.Transcript,
		history:    cfg.History,
		prompt:     cfg.Prompt,
		logger:     cfg.Logger.WithField("component", "shell-tui"),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.loadHistory(),
	)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			if m.running && m.cancel != nil {
				m.cancel()
				return m, nil
			}
			return m, tea.Quit

		case tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			return m.submit()

		case tea.KeyUp:
			m.recallStep(-1)
			return m, nil

		case tea.KeyDown:
			m.recallStep(1)
			return m, nil

		case tea.KeyCtrlL:
			m.lines = nil
			m.updateContent()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		if !m.ready {
			m.viewport = viewport.New(msg.Width, max(1, msg.Height-6))
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = max(1, msg.Height-6)
		}
		m.input.Width = max(10, msg.Width-len(m.prompt)-6)
		m.updateContent()

	case historyLoadedMsg:
		if msg.err != nil {
			m.logger.WarnWithErr("Failed to load history", msg.err)
		}
		m.recall = append(msg.lines, m.recall...)
		m.recallPos = len(m.recall)

	case dispatchResultMsg:
		m.running = false
		m.cancel = nil
		for _, message := range msg.messages {
			m.lines = append(m.lines, line{content: message})
		}
		m.updateContent()

	case spinner.TickMsg:
		if m.running {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	// Update components
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.running {
		return m, nil
	}

	input := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	if input == "" {
		return m, nil
	}

	if input == "exit" || input == "quit" {
		return m, tea.Quit
	}

	m.lines = append(m.lines, line{prompt: m.prompt, content: input})
	m.recall = append(m.recall, input)
	m.recallPos = len(m.recall)
	m.updateContent()

	ctx, cancel := context.WithCancel(context.Background())
	m.running = true
	m.cancel = cancel

	return m, tea.Batch(m.spinner.Tick, m.dispatch(ctx, cancel, input))
}

func (m *Model) recallStep(delta int) {
	if len(m.recall) == 0 {
		return
	}

	pos := m.recallPos + delta
	if pos < 0 {
		pos = 0
	}
	if pos > len(m.recall) {
		pos = len(m.recall)
	}
	m.recallPos = pos

	if pos == len(m.recall) {
		m.input.SetValue("")
	} else {
		m.input.SetValue(m.recall[pos])
	}
	m.input.CursorEnd()
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var s strings.Builder

	s.WriteString(m.renderHeader())
	s.WriteString("\n")
	s.WriteString(m.viewport.View())
	s.WriteString("\n")

	if m.running {
		s.WriteString(m.spinner.View())
		s.WriteString(" running... (Ctrl+C cancels)\n")
	}

	s.WriteString(FocusedInputStyle.Render(m.input.View()))
	s.WriteString("\n")
	s.WriteString(m.renderFooter())

	return s.String()
}

func (m *Model) renderHeader() string {
	title := TitleStyle.Render("semshell")
	subtitle := SubtitleStyle.Render("type 'help' to list commands")
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", subtitle)
}

func (m *Model) renderFooter() string {
	help := "Enter: run • ↑/↓: history • Ctrl+L: clear • Ctrl+C: quit"
	return StatusBarStyle.Width(m.width).Render(help)
}

func (m *Model) updateContent() {
	var content strings.Builder

	for _, l := range m.lines {
		if l.prompt != "" {
			content.WriteString(PromptStyle.Render(l.prompt))
			content.WriteString(l.content)
		} else {
			content.WriteString(RenderMessage(l.content))
		}
		content.WriteString("\n")
	}

	m.viewport.SetContent(content.String())
	m.viewport.GotoBottom()
}

// Message types for async operations
type dispatchResultMsg struct {
	messages []string
	err      error
}

type historyLoadedMsg struct {
	lines []string
	err   error
}

// dispatch tokenizes and runs input, then records it in history
func (m *Model) dispatch(ctx context.Context, cancel context.CancelFunc, input string) tea.Cmd {
	engine := m.engine
	transcript := m.transcript
	store := m.history
	logger := m.logger

	return func() tea.Msg {
		defer cancel()

		name, options, err := cmdline.Parse(input)
		if err == nil {
			err = engine.Handle(ctx, name, options)
		}

		messages := transcript.Drain()
		if err != nil && name == "" {
			messages = append(messages, err.Error())
		}

		if store != nil {
			entry := &history.Entry{Line: input, Command: name, OK: err == nil}
			if herr := store.Append(context.Background(), entry); herr != nil {
				logger.WarnWithErr("Failed to record history", herr)
			}
		}

		return dispatchResultMsg{messages: messages, err: err}
	}
}

func (m *Model) loadHistory() tea.Cmd {
	store := m.history
	return func() tea.Msg {
		if store == nil {
			return historyLoadedMsg{}
		}
		entries, err := store.Recent(context.Background(), recallSize)
		if err != nil {
			return historyLoadedMsg{err: err}
		}
		lines := make([]string, 0, len(entries))
		for _, e := range entries {
			lines = append(lines, e.Line)
		}
		return historyLoadedMsg{lines: lines}
	}
}
