package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/agent-portal/internal/app"
	"github.com/MKhiriev/agent-portal/internal/service"
	"github.com/MKhiriev/agent-portal/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type consoleMode int

const (
	modeBrowse consoleMode = iota
	modePrompt
	modeConfirm
	modeError
	modeInfo
)

const (
	minTableHeight   = 5
	descriptionWidth = 40
	pictureWidth     = 48
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

type consoleModel struct {
	ctx       context.Context
	service   service.ClientCharacterService
	buildInfo models.AppBuildInfo

	characters []models.Character
	table      table.Model
	spinner    spinner.Model
	input      textinput.Model

	mode      consoleMode
	loading   bool
	busy      bool
	status    string
	errMsg    string
	portal    *models.VersionResponse
	portalErr string
}

func newConsoleModel(ctx context.Context, svc service.ClientCharacterService, buildInfo models.AppBuildInfo) consoleModel {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 9},
			{Title: "Name", Width: 28},
			{Title: "Description", Width: descriptionWidth},
			{Title: "Picture", Width: pictureWidth},
		}),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	in := textinput.New()
	in.Placeholder = "character name (empty: portal default)"
	in.CharLimit = 128

	return consoleModel{
		ctx:       ctx,
		service:   svc,
		buildInfo: buildInfo,
		table:     t,
		spinner:   s,
		input:     in,
		loading:   true,
	}
}

func (m consoleModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoad(), m.spinner.Tick)
}

func (m consoleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetWidth(msg.Width - 4)
		m.table.SetHeight(max(msg.Height-12, minTableHeight))
		return m, nil

	case charactersLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m.showError(msg.err), nil
		}
		m.characters = msg.characters
		m.table.SetRows(characterRows(msg.characters))
		if m.table.Cursor() >= len(msg.characters) {
			m.table.SetCursor(max(len(msg.characters)-1, 0))
		}
		return m, nil

	case retrieveDoneMsg:
		m.busy = false
		if msg.err != nil {
			return m.showError(msg.err), nil
		}
		m.status = fmt.Sprintf("%s %s: %d works, %d skipped, %d associates",
			app.MsgDataRetrieved, msg.report.Target.Name,
			msg.report.WorksTotal, msg.report.WorksSkipped, msg.report.AssociatesSeen)
		m.loading = true
		return m, m.cmdLoad()

	case purgeDoneMsg:
		m.busy = false
		if msg.err != nil {
			return m.showError(msg.err), nil
		}
		m.status = app.MsgDataPurged
		m.loading = true
		return m, m.cmdLoad()

	case copiedMsg:
		if msg.err != nil {
			return m.showError(msg.err), nil
		}
		m.status = "Copied " + msg.url
		return m, nil

	case versionLoadedMsg:
		if msg.err != nil {
			m.portalErr = humanizeError(msg.err)
			return m, nil
		}
		version := msg.version
		m.portal = &version
		m.portalErr = ""
		return m, nil

	case spinner.TickMsg:
		if !m.loading && !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m consoleModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeError:
		if key.Matches(msg, keys.enter, keys.esc) {
			m.mode = modeBrowse
			m.errMsg = ""
		}
		return m, nil

	case modeInfo:
		if key.Matches(msg, keys.esc, keys.version) {
			m.mode = modeBrowse
		}
		return m, nil

	case modeConfirm:
		switch {
		case key.Matches(msg, keys.yes):
			m.mode = modeBrowse
			m.busy = true
			m.status = "Purging..."
			return m, m.cmdPurge()
		case key.Matches(msg, keys.no):
			m.mode = modeBrowse
		}
		return m, nil

	case modePrompt:
		switch {
		case key.Matches(msg, keys.enter):
			name := strings.TrimSpace(m.input.Value())
			m.input.Blur()
			m.mode = modeBrowse
			m.busy = true
			m.status = "Retrieving " + valueOrDefault(name) + "..."
			return m, m.cmdRetrieve(name)
		case key.Matches(msg, keys.esc):
			m.input.Blur()
			m.mode = modeBrowse
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.version):
		m.mode = modeInfo
		return m, m.cmdVersion()
	case key.Matches(msg, keys.copy):
		c, ok := m.selected()
		if !ok {
			return m, nil
		}
		return m, cmdCopy(c.PictureURL)
	}

	if m.busy {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.retrieve):
		m.mode = modePrompt
		m.input.Reset()
		return m, m.input.Focus()
	case key.Matches(msg, keys.purge):
		m.mode = modeConfirm
		return m, nil
	case key.Matches(msg, keys.reload):
		m.loading = true
		m.status = ""
		return m, tea.Batch(m.cmdLoad(), m.spinner.Tick)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m consoleModel) showError(err error) consoleModel {
	m.mode = modeError
	m.errMsg = humanizeError(err)
	m.status = ""
	return m
}

func (m consoleModel) selected() (models.Character, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.characters) {
		return models.Character{}, false
	}
	return m.characters[idx], true
}

func (m consoleModel) View() string {
	if m.mode == modeInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo, m.portal, m.portalErr))
	}

	var b strings.Builder

	header := titleStyle.Render("Agent Portal")
	if m.loading || m.busy {
		header += "  " + m.spinner.View()
	}
	b.WriteString(header + "\n\n")

	switch {
	case m.loading && len(m.characters) == 0:
		b.WriteString("Loading...\n")
	case len(m.characters) == 0:
		b.WriteString("No characters stored. Press r to retrieve.\n")
	default:
		b.WriteString(m.table.View() + "\n")
		b.WriteString(helpStyle.Render(fmt.Sprintf("%d characters", len(m.characters))) + "\n")
	}

	switch m.mode {
	case modePrompt:
		b.WriteString("\n" + overlayBoxStyle.Render("Retrieve character\n\n"+m.input.View()+"\n\nenter retrieve    esc cancel") + "\n")
	case modeConfirm:
		b.WriteString("\n" + confirmModel{count: len(m.characters)}.View() + "\n")
	case modeError:
		b.WriteString("\n" + errorOverlayModel{message: m.errMsg}.View() + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("r retrieve  p purge  c copy picture  g reload  v about  q quit"))
	return appStyle.Render(b.String())
}

func (m consoleModel) cmdLoad() tea.Cmd {
	return func() tea.Msg {
		characters, err := m.service.List(m.ctx)
		return charactersLoadedMsg{characters: characters, err: err}
	}
}

func (m consoleModel) cmdRetrieve(name string) tea.Cmd {
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		report, err := m.service.Retrieve(m.ctx, name)
		return retrieveDoneMsg{report: report, err: err}
	})
}

func (m consoleModel) cmdPurge() tea.Cmd {
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		return purgeDoneMsg{err: m.service.Purge(m.ctx)}
	})
}

func (m consoleModel) cmdVersion() tea.Cmd {
	return func() tea.Msg {
		version, err := m.service.PortalVersion(m.ctx)
		return versionLoadedMsg{version: version, err: err}
	}
}

func cmdCopy(url string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(url); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{url: url}
	}
}

func characterRows(characters []models.Character) []table.Row {
	rows := make([]table.Row, 0, len(characters))
	for _, c := range characters {
		rows = append(rows, table.Row{
			strconv.FormatInt(c.ID, 10),
			c.Name,
			fitText(strings.Join(strings.Fields(c.Description), " "), descriptionWidth),
			fitText(c.PictureURL, pictureWidth),
		})
	}
	return rows
}

func valueOrDefault(name string) string {
	if name == "" {
		return "default target"
	}
	return name
}
