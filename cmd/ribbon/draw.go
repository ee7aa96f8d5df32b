package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/ungerik/go3d/float64/vec3"

	"honnef.co/go/ribbon"
	"honnef.co/go/ribbon/internal/canvas"
)

const frameRate = 30

// Lines taken by the header and footer.
const (
	headerHeight = 1
	footerHeight = 2
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"})
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))
)

type keyMap struct {
	Up, Down, Left, Right key.Binding
	Clear                 key.Binding
	Tracking              key.Binding
	Help                  key.Binding
	Quit                  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Clear, k.Tracking, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Clear, k.Tracking, k.Help, k.Quit},
	}
}

var keys = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "move up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "move down")),
	Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "move left")),
	Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "move right")),
	Clear:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
	Tracking: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle tracking")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

type frameMsg time.Time

func nextFrame() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// drawModel is a terminal stand-in for an AR drawing app. Holding the left
// mouse button is a touch, and the cell under the cursor plays the part of
// the screen center of a moving device.
type drawModel struct {
	session *ribbon.Session
	cam     canvas.Camera
	ink     lipgloss.Style
	help    help.Model

	width, height    int
	cursorX, cursorY int
	touching         bool
	status           string
}

func newDrawModel(s *ribbon.Session, color string, scale float64) drawModel {
	s.SetTracking(ribbon.TrackingNormal)
	return drawModel{
		session: s,
		cam:     canvas.Camera{Scale: scale, Depth: 0.99},
		ink:     lipgloss.NewStyle().Foreground(lipgloss.Color(color)),
		help:    help.New(),
		status:  "Press the mouse button to draw.",
	}
}

func (m drawModel) Init() tea.Cmd { return nextFrame() }

func (m drawModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.cam.Width = m.width * 2
		m.cam.Height = max(1, m.height-headerHeight-footerHeight) * 4
	case tea.KeyMsg:
		step := 4 / m.cam.Scale
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Clear):
			m.session.Clear()
			m.touching = false
			m.status = "Cleared."
		case key.Matches(msg, keys.Tracking):
			if m.session.Tracking() == ribbon.TrackingNormal {
				m.session.SetTracking(ribbon.TrackingLimited)
			} else {
				m.session.SetTracking(ribbon.TrackingNormal)
			}
			m.status = fmt.Sprintf("Tracking %s.", m.session.Tracking())
		case key.Matches(msg, keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, keys.Up):
			m.cam.Move(vec3.T{0, step, 0})
		case key.Matches(msg, keys.Down):
			m.cam.Move(vec3.T{0, -step, 0})
		case key.Matches(msg, keys.Left):
			m.cam.Move(vec3.T{-step, 0, 0})
		case key.Matches(msg, keys.Right):
			m.cam.Move(vec3.T{step, 0, 0})
		}
	case tea.MouseMsg:
		m.cursorX, m.cursorY = msg.X, msg.Y
		switch {
		case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
			if _, err := m.session.Begin(); err != nil {
				m.status = "Wait: " + err.Error()
				break
			}
			m.touching = true
			m.status = "Move the mouse!"
		case msg.Action == tea.MouseActionRelease:
			if m.touching {
				m.session.End()
				m.touching = false
				m.status = "Press the mouse button to draw."
			}
		}
	case frameMsg:
		if m.touching {
			if err := m.session.Sample(ribbon.SampleAt(m.sample())); err != nil && !errors.Is(err, ribbon.ErrNotDrawing) {
				m.session.Abort()
				m.touching = false
				m.status = err.Error()
			}
		}
		return m, nextFrame()
	}
	return m, nil
}

// sample returns the world position under the cursor.
func (m drawModel) sample() ribbon.Point3 {
	return m.cam.Unproject(float64(m.cursorX*2)+1, float64((m.cursorY-headerHeight)*4)+2)
}

func (m drawModel) View() string {
	if m.width == 0 {
		return ""
	}
	rows := m.cam.Height / 4
	b := canvas.NewBraille(m.width, rows)
	for _, mesh := range m.session.Meshes() {
		canvas.DrawMesh(b, &m.cam, mesh)
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("ribbon"))
	sb.WriteString(dimStyle.Render(fmt.Sprintf("  strokes: %d  tracking: %s  %s",
		len(m.session.Strokes()), m.session.Tracking(), m.session.Phase())))
	sb.WriteByte('\n')
	for _, line := range b.Lines() {
		sb.WriteString(m.ink.Render(line))
		sb.WriteByte('\n')
	}
	sb.WriteString(statusStyle.Render(m.status))
	sb.WriteByte('\n')
	sb.WriteString(m.help.View(keys))
	return sb.String()
}

func newDrawCmd() *cobra.Command {
	var (
		style styleFlags
		scale float64
	)
	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Draw ribbons in the terminal with the mouse",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := style.session()
			if err != nil {
				return err
			}
			p := tea.NewProgram(newDrawModel(s, style.color, scale),
				tea.WithAltScreen(),
				tea.WithMouseAllMotion(),
				tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}
	style.register(cmd, 0.5, "#7C3AED")
	cmd.Flags().Float64Var(&scale, "scale", 4, "screen pixels per world unit")
	return cmd
}
