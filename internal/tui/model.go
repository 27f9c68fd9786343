package tui

import (
	"context"

	"listfmt/internal/columns"
	"listfmt/internal/form"
	"listfmt/internal/logger"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// UI States
type state int

const (
	stateForm state = iota
	stateDialog
	stateNotice
)

// Dialog fields
type field int

const (
	fieldName field = iota
	fieldType
	fieldOptions
)

// GenerateFunc runs one generation request and returns where the file went.
type GenerateFunc func(ctx context.Context, req form.Request) (string, error)

type generateDoneMsg struct {
	path string
	err  error
}

// UIConfig represents UI configuration settings
type UIConfig struct {
	ShowHelp bool
}

type model struct {
	form form.State

	// UI state
	state     state
	returnTo  state
	notice    form.Notice
	cursor    int
	focus     field
	nameInput textinput.Model
	optsInput textinput.Model
	spinner   spinner.Model
	keys      keyMap
	help      help.Model
	showHelp  bool

	ctx      context.Context
	generate GenerateFunc

	// Screen dimensions
	width  int
	height int

	// Styling
	titleStyle    lipgloss.Style
	sectionStyle  lipgloss.Style
	selectedStyle lipgloss.Style
	normalStyle   lipgloss.Style
	requiredStyle lipgloss.Style
	badgeStyle    lipgloss.Style
	mutedStyle    lipgloss.Style
	buttonStyle   lipgloss.Style
	busyStyle     lipgloss.Style
	dialogStyle   lipgloss.Style
	errorStyle    lipgloss.Style
	infoStyle     lipgloss.Style
}

func initialModel(ctx context.Context, generate GenerateFunc, uiConfig UIConfig) model {
	name := textinput.New()
	name.Placeholder = "e.g. 備考"

	opts := textinput.New()
	opts.Placeholder = "comma separated, e.g. A,B,C"

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return model{
		form:      form.New(),
		state:     stateForm,
		nameInput: name,
		optsInput: opts,
		spinner:   sp,
		keys:      defaultKeyMap(),
		help:      help.New(),
		showHelp:  uiConfig.ShowHelp,
		ctx:       ctx,
		generate:  generate,

		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Align(lipgloss.Center),
		sectionStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252")).
			Underline(true),
		selectedStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			Background(lipgloss.Color("235")).
			Padding(0, 1),
		normalStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 1),
		requiredStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("40")).
			Padding(0, 1),
		badgeStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("240")).
			Padding(0, 1),
		mutedStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		buttonStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("28")).
			Padding(0, 2),
		busyStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Background(lipgloss.Color("237")).
			Padding(0, 2),
		dialogStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2),
		errorStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")),
		infoStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("40")),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case generateDoneMsg:
		var notice form.Notice
		m.form, notice = m.form.FinishGenerate(msg.path, msg.err)
		if msg.err != nil {
			logger.Error("Generation failed", "error", msg.err)
		} else {
			logger.Info("Generation finished", "path", msg.path)
		}
		return m.showNotice(notice), nil

	case spinner.TickMsg:
		if !m.form.Busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch m.state {
		case stateForm:
			return m.updateForm(msg)
		case stateDialog:
			return m.updateDialog(msg)
		case stateNotice:
			return m.updateNotice(msg)
		}
	}

	if m.state == stateDialog {
		return m.updateInputs(msg)
	}
	return m, nil
}

func (m model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.itemCount()-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Toggle):
		if m.cursor < len(columns.DynamicCatalog) {
			m.form = m.form.Toggle(columns.DynamicCatalog[m.cursor].Key)
		}

	case key.Matches(msg, m.keys.Remove):
		if idx := m.cursor - len(columns.DynamicCatalog); idx >= 0 {
			m.form = m.form.Remove(idx)
			if m.cursor >= m.itemCount() {
				m.cursor = m.itemCount() - 1
			}
		}

	case key.Matches(msg, m.keys.Add):
		return m.openDialog()

	case key.Matches(msg, m.keys.Generate):
		return m.startGenerate()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m model) updateDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.form = m.form.CancelDialog()
		m.nameInput.SetValue("")
		m.optsInput.SetValue("")
		m.nameInput.Blur()
		m.optsInput.Blur()
		m.state = stateForm
		return m, nil

	case "enter":
		next, err := m.form.Commit()
		if err != nil {
			return m.showNotice(form.CommitNotice(err)), nil
		}
		m.form = next
		m.nameInput.SetValue("")
		m.optsInput.SetValue("")
		m.nameInput.Blur()
		m.optsInput.Blur()
		m.state = stateForm
		m.cursor = m.itemCount() - 1
		return m, nil

	case "tab", "down":
		return m.setFocus(m.nextField(1))

	case "shift+tab", "up":
		return m.setFocus(m.nextField(-1))
	}

	if m.focus == fieldType {
		switch msg.String() {
		case "left", "right", " ", "h", "l":
			if m.form.Draft.Type == columns.TypeDropdown {
				m.form = m.form.SetDraftType(columns.TypeFree)
			} else {
				m.form = m.form.SetDraftType(columns.TypeDropdown)
			}
		}
		return m, nil
	}

	return m.updateInputs(msg)
}

// updateInputs feeds msg to the focused text input and copies its value
// into the draft.
func (m model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case fieldName:
		m.nameInput, cmd = m.nameInput.Update(msg)
		if m.nameInput.Value() != m.form.Draft.Name {
			m.form = m.form.SetDraftName(m.nameInput.Value())
		}
	case fieldOptions:
		m.optsInput, cmd = m.optsInput.Update(msg)
		if m.optsInput.Value() != m.form.Draft.OptionsText() {
			m.form = m.form.SetDraftOptionsText(m.optsInput.Value())
		}
	}
	return m, cmd
}

func (m model) updateNotice(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter", "esc", " ", "q":
		m.state = m.returnTo
		if m.state == stateDialog {
			return m.setFocus(m.focus)
		}
	}
	return m, nil
}

func (m model) openDialog() (tea.Model, tea.Cmd) {
	m.form = m.form.OpenDialog()
	m.state = stateDialog
	m.nameInput.SetValue(m.form.Draft.Name)
	m.optsInput.SetValue(m.form.Draft.OptionsText())
	return m.setFocus(fieldName)
}

func (m model) setFocus(f field) (tea.Model, tea.Cmd) {
	m.focus = f
	m.nameInput.Blur()
	m.optsInput.Blur()
	switch f {
	case fieldName:
		return m, m.nameInput.Focus()
	case fieldOptions:
		return m, m.optsInput.Focus()
	}
	return m, nil
}

// nextField moves focus by step, skipping options for free columns.
func (m model) nextField(step int) field {
	fields := []field{fieldName, fieldType}
	if m.form.Draft.Type == columns.TypeDropdown {
		fields = append(fields, fieldOptions)
	}
	pos := 0
	for i, f := range fields {
		if f == m.focus {
			pos = i
		}
	}
	pos = (pos + step + len(fields)) % len(fields)
	return fields[pos]
}

func (m model) startGenerate() (tea.Model, tea.Cmd) {
	next, req, ok := m.form.BeginGenerate()
	if !ok {
		return m, nil
	}
	m.form = next

	generate, ctx := m.generate, m.ctx
	run := func() tea.Msg {
		path, err := generate(ctx, req)
		return generateDoneMsg{path: path, err: err}
	}
	return m, tea.Batch(m.spinner.Tick, run)
}

func (m model) showNotice(n form.Notice) model {
	if m.state != stateNotice {
		m.returnTo = m.state
	}
	m.notice = n
	m.state = stateNotice
	m.nameInput.Blur()
	m.optsInput.Blur()
	return m
}

func (m model) itemCount() int {
	return len(columns.DynamicCatalog) + len(m.form.CustomColumns)
}
