package interactive

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rail44/drills/internal/checksum"
	"github.com/rail44/drills/internal/log"
	"github.com/rail44/drills/internal/report"
	"github.com/rail44/drills/internal/shapefile"
)

type status int

const (
	statusWatching status = iota
	statusLoading
	statusError
	statusReady
)

// Model is the bubbletea model behind `drills watch`
type Model struct {
	filePath   string
	renderer   report.Renderer
	logger     log.Logger
	status     status
	err        error
	digest     string
	results    []report.PerimeterResult
	lastUpdate time.Time
	reloads    int

	width  int
	height int
}

type fileChangedMsg struct{}

type loadedMsg struct {
	digest  string
	results []report.PerimeterResult
	err     error
}

// FileChanged is sent by the file watcher to trigger a reload
func FileChanged() tea.Msg {
	return fileChangedMsg{}
}

// NewModel creates a model for filePath. Output is always styled.
func NewModel(filePath string, precision int, logger log.Logger) Model {
	return Model{
		filePath: filePath,
		renderer: report.Renderer{Styled: true, Precision: precision},
		logger:   logger,
		status:   statusWatching,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case fileChangedMsg:
		if m.status != statusReady && m.status != statusError {
			m.status = statusLoading
		}
		return m, m.reload()

	case loadedMsg:
		if msg.err != nil {
			m.status = statusError
			m.err = msg.err
			m.digest = ""
			m.logger.Debug("reload failed", "file", m.filePath, "error", msg.err)
			return m, nil
		}
		if msg.digest == m.digest && m.status == statusReady {
			m.logger.Debug("content unchanged", "file", m.filePath, "digest", msg.digest)
			return m, nil
		}
		m.status = statusReady
		m.err = nil
		m.digest = msg.digest
		m.results = msg.results
		m.lastUpdate = time.Now()
		m.reloads++
		m.logger.Debug("reloaded", "file", m.filePath, "digest", msg.digest, "shapes", len(msg.results))
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	var s strings.Builder

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		MarginBottom(1)

	s.WriteString(headerStyle.Render("drills - perimeter watch"))
	s.WriteString("\n\n")

	fileStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	s.WriteString(fileStyle.Render(fmt.Sprintf("Watching: %s", m.filePath)))
	s.WriteString("\n\n")

	statusStyle := lipgloss.NewStyle().Bold(true)
	switch m.status {
	case statusWatching:
		s.WriteString(statusStyle.Foreground(lipgloss.Color("10")).Render("✓ Watching for changes..."))
	case statusLoading:
		s.WriteString(statusStyle.Foreground(lipgloss.Color("11")).Render("Loading shapes..."))
	case statusReady:
		s.WriteString(statusStyle.Foreground(lipgloss.Color("10")).Render(
			fmt.Sprintf("✓ %d shapes", len(m.results))))
		s.WriteString(fileStyle.Render(fmt.Sprintf(" (digest %s, %s)", m.digest, m.lastUpdate.Format(time.TimeOnly))))
		s.WriteString("\n\n")
		s.WriteString(m.renderer.Perimeters(m.results))
	case statusError:
		s.WriteString(statusStyle.Foreground(lipgloss.Color("9")).Render("✗ Error: "))
		if m.err != nil {
			s.WriteString(m.err.Error())
		}
	}
	s.WriteString("\n\n")

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	s.WriteString(helpStyle.Render("Press 'q' to quit"))

	return s.String()
}

func (m Model) reload() tea.Cmd {
	path := m.filePath
	return func() tea.Msg {
		return load(path)
	}
}

func load(path string) loadedMsg {
	data, err := os.ReadFile(path)
	if err != nil {
		return loadedMsg{err: fmt.Errorf("read error: %w", err)}
	}

	doc, err := shapefile.Parse(data)
	if err != nil {
		return loadedMsg{err: fmt.Errorf("parse error: %w", err)}
	}

	return loadedMsg{
		digest:  checksum.Content(data),
		results: report.Measure(path, doc),
	}
}
