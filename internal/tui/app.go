// Package tui renders the automaton lab in the terminal. It is the input
// producer and render consumer for the engine: keys and mouse clicks are
// forwarded as discrete events, and every frame tick drives one engine
// step before the history window is redrawn.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/anku308/wolfca/internal/config"
	"github.com/anku308/wolfca/internal/engine"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	liveStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	deadStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	editStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("220"))
	dim         = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green       = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow      = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// Grid placement inside the frame, used to map mouse clicks to cells.
const (
	gridTop  = 2
	gridLeft = 3
)

// errFlash is how long the rule-entry error indicator stays on screen.
const errFlash = 1500 * time.Millisecond

type tickMsg time.Time

type model struct {
	eng *engine.Engine
	cfg *config.Config

	cursor    int
	showFPS   bool
	fps       float64
	lastFrame time.Time
	errUntil  time.Time
}

func newModel(cfg *config.Config, eng *engine.Engine) model {
	return model{eng: eng, cfg: cfg}
}

func (m model) framePeriod() time.Duration {
	return time.Second / time.Duration(m.cfg.FPS)
}

func (m model) tick() tea.Cmd {
	return tea.Tick(m.framePeriod(), func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle("Cellular Automata: "+m.eng.Rule().String()), m.tick())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tickMsg:
		return m.frame(time.Time(msg))
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ":
		m.eng.TogglePause()
	case "f":
		m.showFPS = !m.showFPS
	case "left", "h":
		m.cursor = (m.cursor + m.eng.History().Width() - 1) % m.eng.History().Width()
	case "right", "l":
		m.cursor = (m.cursor + 1) % m.eng.History().Width()
	case "enter", "x":
		m.eng.ToggleCell(m.cursor)
	default:
		if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
			m.eng.PushDigit(key[0])
		}
	}
	return m, nil
}

// handleMouse toggles the clicked cell of the newest generation. Clicks
// anywhere else, or while evolution is running, are ignored.
func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	col := msg.X - gridLeft
	row := msg.Y - gridTop
	if row == m.eng.History().Depth()-1 && col >= 0 && col < m.eng.History().Width() {
		if m.eng.ToggleCell(col) {
			m.cursor = col
		}
	}
	return m, nil
}

// frame advances the engine by the measured wall time since the previous
// frame and schedules the next tick.
func (m model) frame(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := m.framePeriod()
	if !m.lastFrame.IsZero() {
		elapsed = now.Sub(m.lastFrame)
		if sec := elapsed.Seconds(); sec > 0 {
			m.fps = 1.0 / sec
		}
	}
	m.lastFrame = now

	res := m.eng.Step(elapsed)
	if res.RuleFailed {
		m.errUntil = now.Add(errFlash)
	}
	if res.RuleChanged {
		return m, tea.Batch(
			tea.SetWindowTitle("Cellular Automata: "+m.eng.Rule().String()),
			m.tick(),
		)
	}
	return m, m.tick()
}

func (m model) View() string {
	var b strings.Builder

	status := green.Render("● running")
	if !m.eng.Running() {
		status = yellow.Render("○ paused")
	}
	fmt.Fprintf(&b, "\n   %s  %s  %s\n",
		titleStyle.Render("wolfca"),
		titleStyle.Render(m.eng.Rule().String()),
		status)

	m.renderGrid(&b)

	fmt.Fprintf(&b, "\n   %s%d   %s%d\n",
		dim.Render("gen "), m.eng.Generation(),
		dim.Render("pop "), m.eng.Population())

	if buf, ok := m.eng.Buffered(); ok {
		entry := editStyle.Render(buf + "▋")
		if !m.eng.BufferValid() {
			entry = errStyle.Render(buf + " ?")
		}
		fmt.Fprintf(&b, "   %s%s\n", dim.Render("next up: "), entry)
	} else if time.Now().Before(m.errUntil) {
		fmt.Fprintf(&b, "   %s\n", errStyle.Render("rule rejected: codes run 0-255"))
	}

	if m.showFPS {
		fmt.Fprintf(&b, "   %s%.1f\n", dim.Render("fps "), m.fps)
	}

	if m.eng.Running() {
		b.WriteString("\n" + dim.Render("   space pause   0-9 new rule   f fps   q quit") + "\n")
	} else {
		b.WriteString("\n" + dim.Render("   space resume   ←→ cursor   x/click toggle cell   0-9 new rule   q quit") + "\n")
	}
	return b.String()
}

// renderGrid draws the history window oldest to newest, top to bottom. The
// newest row is the editable generation and carries the cell cursor while
// evolution is paused.
func (m model) renderGrid(b *strings.Builder) {
	hist := m.eng.History()
	depth := hist.Depth()
	paused := !m.eng.Running()

	rows := hist.Rows()
	for row, gen := range rows {
		b.WriteString("   ")
		newest := row == depth-1
		for i := 0; i < gen.Len(); i++ {
			ch := "·"
			style := deadStyle
			if gen.Cell(i) {
				ch = "█"
				style = liveStyle
			}
			if newest && paused && i == m.cursor {
				style = cursorStyle
			} else if newest && gen.Cell(i) {
				style = editStyle
			}
			b.WriteString(style.Render(ch))
		}
		b.WriteString("\n")
	}
}

// Run launches the interactive lab and blocks until the user quits.
func Run(cfg *config.Config, eng *engine.Engine) error {
	p := tea.NewProgram(newModel(cfg, eng), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
