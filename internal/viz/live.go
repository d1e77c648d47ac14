package viz

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/pulse/internal/config"
)

const historyCapacity = 120

type TickMsg time.Time

// Model alternates between the two fixed heart frames on a timer. The
// pulse phase lives here and nowhere else.
type Model struct {
	frames    [2]Frame
	phase     int // index of the frame on screen
	ticks     int
	running   bool
	showWave  bool
	theme     Theme
	themeIdx  int
	scaleHist []float64
	interval  time.Duration

	width, height int
}

// NewModel builds the terminal animation from config. The tick
// interval is half the pulse period: one beat is small then large.
func NewModel(cfg *config.Config) Model {
	period := cfg.Period
	if period <= 0 {
		period = config.DefaultPeriod
	}
	interval := time.Duration(period / 2 * float64(time.Second))
	idx := ThemeIndex(cfg.Theme)

	return Model{
		frames:    Frames(),
		running:   true,
		theme:     Themes[idx],
		themeIdx:  idx,
		scaleHist: make([]float64, 0, historyCapacity),
		interval:  interval,
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input and advances the animation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "t":
			m.themeIdx = (m.themeIdx + 1) % len(Themes)
			m.theme = Themes[m.themeIdx]
		case "w":
			m.showWave = !m.showWave
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case TickMsg:
		if m.running {
			m.phase = (m.phase + 1) % len(m.frames)
			m.ticks++
			m.scaleHist = append(m.scaleHist, m.frames[m.phase].Scale)
			if len(m.scaleHist) > historyCapacity {
				m.scaleHist = m.scaleHist[1:]
			}
		}
		return m, m.tick()
	}

	return m, nil
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	art := lipgloss.NewStyle().Foreground(m.theme.Primary).Render(m.frames[m.phase].Art)

	status := statusBeating.Render("beating")
	if !m.running {
		status = statusPaused.Render("paused")
	}

	parts := []string{titleStyle.Render("pulse"), art, status}

	if m.showWave && len(m.scaleHist) >= 2 {
		plot := asciigraph.Plot(m.scaleHist,
			asciigraph.Height(4),
			asciigraph.Width(frameWidth))
		parts = append(parts, waveStyle.Render(plot))
	}

	parts = append(parts, helpStyle.Render("Space: Pause | T: Theme | W: Wave | Q: Quit"))

	content := lipgloss.JoinVertical(lipgloss.Center, parts...)
	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
}
