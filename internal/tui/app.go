// Package tui is the terminal front-end: a bubbletea program that polls
// input, advances the simulation controller once per frame and renders
// the world onto a braille canvas.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jakecoffman/cp"

	"github.com/san-kum/gravbox/internal/input"
	"github.com/san-kum/gravbox/internal/loop"
)

const framePeriod = 16 * time.Millisecond

// Frames can stall (terminal resize, suspended process); elapsed time
// beyond this is ignored rather than fed into catch-up.
const maxFrameElapsed = 0.25

type frameMsg time.Time

func frame() tea.Cmd {
	return tea.Tick(framePeriod, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// Model is the single bubbletea model. All world mutation happens inside
// Update, so the cooperative single-thread contract holds.
type Model struct {
	ctrl    *loop.Controller
	handler *input.Handler
	scene   string

	cam       Camera
	mouseCol  int
	mouseRow  int
	hasMouse  bool
	lastFrame time.Time

	width  int
	height int

	showGrid bool
	showHelp bool
	err      error
}

func NewModel(ctrl *loop.Controller, handler *input.Handler, sceneName string) *Model {
	return &Model{
		ctrl:    ctrl,
		handler: handler,
		scene:   sceneName,
		cam:     NewCamera(),
		width:   80,
		height:  24,
	}
}

// Err reports the fatal error that terminated the run loop, if any.
func (m *Model) Err() error { return m.err }

func (m *Model) Init() tea.Cmd { return frame() }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.MouseMsg:
		m.mouseCol = msg.X
		m.mouseRow = msg.Y
		m.hasMouse = true
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if _, err := m.handler.SpawnBodyAt(m.cursorWorld()); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case frameMsg:
		now := time.Time(msg)
		if !m.lastFrame.IsZero() {
			elapsed := now.Sub(m.lastFrame).Seconds()
			if elapsed > maxFrameElapsed {
				elapsed = maxFrameElapsed
			}
			if _, err := m.ctrl.Advance(elapsed); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
		m.lastFrame = now
		return m, frame()
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "left":
		m.cam.Pan(-1, 0)
	case "right":
		m.cam.Pan(1, 0)
	case "up":
		m.cam.Pan(0, 1)
	case "down":
		m.cam.Pan(0, -1)
	case "+", "=":
		m.cam.ZoomIn()
	case "-", "_":
		m.cam.ZoomOut()
	case "r":
		m.cam.Reset()
	case "g":
		m.showGrid = !m.showGrid
	case "?":
		m.showHelp = !m.showHelp
	default:
		if _, err := m.handler.HandleKey(msg.String(), m.cursorWorld()); err != nil {
			m.err = err
			return m, tea.Quit
		}
	}
	return m, nil
}

// cursorWorld converts the last seen mouse cell into world space. Before
// any mouse event arrives, the view center stands in for the cursor.
func (m *Model) cursorWorld() cp.Vector {
	cw, ch := m.canvasSize()
	if !m.hasMouse {
		return m.cam.Center
	}
	return m.cam.CellToWorld(m.mouseCol, m.mouseRow, cw, ch)
}
