package viz

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/san-kum/streamplot/internal/anim"
	"github.com/san-kum/streamplot/internal/plot"
)

const (
	defaultWidth  = 100
	defaultHeight = 30
	statsWidth    = 34
	minChartRows  = 3
)

type TickMsg time.Time

// Model hosts an animation in the terminal: it owns the tick, asks the
// animation for a frame and composites the figure.
type Model struct {
	fig      *plot.Figure
	anim     *anim.Animation
	theme    Theme
	help     help.Model
	log      logrus.FieldLogger
	width    int
	height   int
	paused   bool
	showHelp bool
	drawn    int
	err      error
}

func NewModel(fig *plot.Figure, a *anim.Animation, theme Theme, log logrus.FieldLogger) Model {
	return Model{
		fig:    fig,
		anim:   a,
		theme:  theme,
		help:   help.New(),
		log:    log,
		width:  defaultWidth,
		height: defaultHeight,
	}
}

// Err is the frame error that stopped the dashboard, if any.
func (m Model) Err() error { return m.err }

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.anim.Interval(), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input and draws a frame on every tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Pause):
			m.paused = !m.paused
			m.log.WithField("paused", m.paused).Info("pause toggled")
		case key.Matches(msg, keys.Theme):
			m.theme = NextTheme(m.theme)
		case key.Matches(msg, keys.Help):
			m.showHelp = !m.showHelp
			m.help.ShowAll = m.showHelp
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	case TickMsg:
		if !m.paused {
			lines, err := m.anim.DrawFrame()
			if err != nil {
				m.err = err
				return m, tea.Quit
			}
			m.drawn = len(lines)
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) chartSize() (int, int) {
	axes := len(m.fig.Axes())
	if axes == 0 {
		axes = 1
	}
	w := m.width - statsWidth - 12
	if w < 20 {
		w = 20
	}
	// caption and legend take three rows per axes
	h := (m.height-4)/axes - 4
	if h < minChartRows {
		h = minChartRows
	}
	return w, h
}

// View renders the figure, the stats panel and the key help.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().Foreground(m.theme.Primary).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(m.theme.Muted)
	statsStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(m.theme.Muted).
		Padding(0, 2).
		Width(statsWidth)

	status := lipgloss.NewStyle().Foreground(m.theme.Accent).Render("RUNNING")
	if m.paused {
		status = lipgloss.NewStyle().Foreground(m.theme.Error).Render("PAUSED")
	}
	header := titleStyle.Render(strings.ToUpper(m.fig.Title)) + "  " + status + "  " +
		mutedStyle.Render(fmt.Sprintf("frame %d  %d lines  %s  theme %s",
			m.anim.Frames(), m.drawn, m.anim.Interval(), m.theme.Name))

	w, h := m.chartSize()
	charts := make([]string, 0, len(m.fig.Axes()))
	for _, ax := range m.fig.Axes() {
		charts = append(charts, RenderAxes(ax, w, h, m.theme))
	}
	left := lipgloss.JoinVertical(lipgloss.Left, charts...)
	right := statsStyle.Render(RenderStats(m.fig, m.theme))
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	return header + "\n\n" + body + "\n" + m.help.View(keys)
}

type Options struct {
	Theme  Theme
	Logger logrus.FieldLogger
}

// Run starts the animation and blocks until the user quits or a frame
// fails; a frame error is returned.
func Run(fig *plot.Figure, a *anim.Animation, opts Options) error {
	if err := a.Start(); err != nil {
		return err
	}
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	p := tea.NewProgram(NewModel(fig, a, opts.Theme, log), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}
