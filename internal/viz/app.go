package viz

import (
	"log"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/teardown/internal/parts"
	"github.com/san-kum/teardown/internal/scene"
)

const (
	panelWidth     = 46
	canvasPadX     = 2
	canvasPadY     = 1
	minCanvasW     = 20
	minCanvasH     = 8
	orbitStep      = math.Pi / 16
	historyCap     = 120
	defaultCanvasW = 60
	defaultCanvasH = 22
)

type TickMsg time.Time

// Options configures a viewer session.
type Options struct {
	Pacing         scene.Pacing
	FPS            int
	Theme          string
	MinPolar       float64
	MaxPolar       float64
	OrbitFrequency float64
	OrbitDamping   float64
}

// Model is the Bubble Tea model for the teardown viewer. It is the display
// layer: it turns key and mouse events into controller calls and draws the
// scene once per tick.
type Model struct {
	sc          *scene.Scene
	cam         *Camera
	orbit       *Orbit
	canvas      *Canvas
	theme       Theme
	styles      styles
	fps         int
	width       int
	height      int
	showHelp    bool
	specsOpen   bool
	connOpen    bool
	distHistory []float64
	lastFrame   time.Time
	measuredFPS float64
}

func NewModel(opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	theme := GetTheme(opts.Theme)
	m := Model{
		sc:          scene.New(opts.Pacing),
		cam:         NewCamera(),
		orbit:       NewOrbit(opts.FPS, opts.OrbitFrequency, opts.OrbitDamping, opts.MinPolar, opts.MaxPolar),
		canvas:      NewCanvas(defaultCanvasW, defaultCanvasH),
		theme:       theme,
		styles:      newStyles(theme, panelWidth),
		fps:         opts.FPS,
		specsOpen:   true,
		connOpen:    true,
		distHistory: make([]float64, 0, historyCap),
	}
	m.cam.Distance = m.sc.Camera().Distance
	return m
}

// Scene exposes the mounted scene, mainly for tests.
func (m Model) Scene() *scene.Scene { return m.sc }

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil
	case TickMsg:
		m.step(time.Time(msg))
		return m, m.tick()
	}
	return m, nil
}

// step advances one frame: scene, orbit springs, then redraw.
func (m *Model) step(now time.Time) {
	if !m.lastFrame.IsZero() {
		if dt := now.Sub(m.lastFrame).Seconds(); dt > 0 {
			m.measuredFPS = 0.9*m.measuredFPS + 0.1/dt
		}
	}
	m.lastFrame = now

	m.sc.Tick()
	m.orbit.Update(m.cam)

	m.distHistory = append(m.distHistory, m.sc.Camera().Distance)
	if len(m.distHistory) > historyCap {
		m.distHistory = m.distHistory[1:]
	}
	RenderScene(m.canvas, m.sc.Snapshot(), m.cam)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctrl := m.sc.Controller()
	switch key := msg.String(); key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "e", " ":
		ctrl.ToggleExplode()
		log.Printf("explode: %v", ctrl.State().Exploded)
	case "tab":
		m.cycleHover(1)
	case "shift+tab":
		m.cycleHover(-1)
	case "enter":
		m.selectPart(ctrl.State().Hovered)
	case "1", "2", "3", "4", "5", "6":
		m.selectPart(parts.ID(key[0] - '0'))
	case "esc":
		if m.showHelp {
			m.showHelp = false
		} else {
			ctrl.ClearHover()
		}
	case "s":
		m.specsOpen = !m.specsOpen
	case "c":
		m.connOpen = !m.connOpen
	case "left", "h":
		m.orbit.Nudge(-orbitStep, 0)
	case "right", "l":
		m.orbit.Nudge(orbitStep, 0)
	case "up", "k":
		m.orbit.Nudge(0, -orbitStep)
	case "down", "j":
		m.orbit.Nudge(0, orbitStep)
	case "+", "=":
		m.cam.ZoomIn()
	case "-", "_":
		m.cam.ZoomOut()
	case "r":
		m.orbit.Reset()
		m.cam.Zoom = 1
	case "t":
		m.theme = NextTheme(m.theme)
		m.styles = newStyles(m.theme, panelWidth)
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if m.showHelp {
		return
	}
	col, row := msg.X-canvasPadX, msg.Y-canvasPadY
	switch msg.Action {
	case tea.MouseActionMotion:
		id := Pick(m.sc.Snapshot(), m.cam, m.canvas, col, row)
		m.sc.Controller().SetHovered(id)
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.selectPart(Pick(m.sc.Snapshot(), m.cam, m.canvas, col, row))
		case tea.MouseButtonWheelUp:
			m.cam.ZoomIn()
		case tea.MouseButtonWheelDown:
			m.cam.ZoomOut()
		}
	}
}

func (m *Model) selectPart(id parts.ID) {
	if !id.Valid() {
		return
	}
	m.sc.Controller().SelectPart(id)
	log.Printf("selected: %s", id)
}

// cycleHover moves the hover through the registry order, wrapping around.
func (m *Model) cycleHover(dir int) {
	all := m.sc.Animator().Parts()
	if len(all) == 0 {
		return
	}
	cur := -1
	hovered := m.sc.Controller().State().Hovered
	for i, p := range all {
		if p.ID == hovered {
			cur = i
		}
	}
	next := cur + dir
	if cur < 0 && dir < 0 {
		next = len(all) - 1
	}
	next = (next%len(all) + len(all)) % len(all)
	m.sc.Controller().SetHovered(all[next].ID)
}

func (m *Model) resize() {
	w := max(minCanvasW, m.width-panelWidth-1-2*canvasPadX)
	h := max(minCanvasH, m.height-2*canvasPadY)
	m.canvas = NewCanvas(w, h)
	RenderScene(m.canvas, m.sc.Snapshot(), m.cam)
}

func (m Model) View() string {
	canvasView := m.styles.canvas.Render(m.canvas.Render(m.theme.Style))
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, m.renderPanel())
	if m.showHelp {
		return helpText + "\n\n" + mainView
	}
	return mainView
}

const helpText = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  E/Space  - Explode / collapse       ║
║  Tab      - Hover next part          ║
║  Enter    - Select hovered part      ║
║  1-6      - Select part by number    ║
║  Mouse    - Hover / click to select  ║
║  S / C    - Fold specs / connections ║
║  Arrows   - Orbit camera             ║
║  +/-      - Zoom                     ║
║  R        - Reset view               ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝`

// Run starts the viewer in the alternate screen with mouse tracking.
func Run(opts Options) error {
	_, err := tea.NewProgram(NewModel(opts), tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}
