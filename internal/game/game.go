package game

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"gridlight/internal/audio"
	"gridlight/internal/fov"
	"gridlight/internal/gamemap"
	"gridlight/internal/render"
)

// Mode selects which illumination engine shades the view.
type Mode uint8

const (
	ModeShadow Mode = iota
	ModeSymmetric
	ModeCone
	ModeDirectional
	ModeRipple
	ModeBounce
	modeCount
)

func (m Mode) String() string {
	switch m {
	case ModeShadow:
		return "shadow"
	case ModeSymmetric:
		return "symmetric"
	case ModeCone:
		return "cone"
	case ModeDirectional:
		return "directional"
	case ModeRipple:
		return "ripple"
	default:
		return "bounce"
	}
}

// coneSpan is the arc width of the cone engine, in degrees.
const coneSpan = 110

// mapOrder fixes the cycling order of the sample maps.
var mapOrder = []string{"outpost", "thin", "arena"}

var helpLines = []string{
	"hjklyubn / arrows move   Tab mode   c metric   +/- radius   1-6 looseness",
	"e drop/clear noise source   x forget map   M next map   q quit",
}

// Options configure a demo instance.
type Options struct {
	MapName string
	Radius  float64
	Mute    bool
}

// Game is the interactive lighting demo: a light source walks a sample map
// while the engines, metrics, and parameters are switched live.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer

	tmap  *gamemap.TileMap
	res   fov.Grid // sight resistance
	sound fov.Grid // sound resistance

	light   fov.Grid   // player's light, whichever engine is active
	glow    fov.Grid   // light spread from the noise source
	noise   fov.Grid   // sound spread from the noise source
	vis     fov.Bitmap // player line of sight, gates the glow
	view    fov.Grid   // what the renderer draws
	scratch *fov.RippleScratch

	px, py    int
	facing    float64 // degrees, follows the last move
	mode      Mode
	metric    fov.Metric
	radius    float64
	looseness int
	emitter   *fov.Point
	tone      *audio.Tone

	mapName string
	mapIdx  int
}

// New creates a Game with its own initialized terminal screen.
func New(opts Options) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return NewWithScreen(screen, opts)
}

// NewWithScreen creates a Game on an already initialized screen. The SSH
// server uses this to run one demo per session.
func NewWithScreen(screen tcell.Screen, opts Options) (*Game, error) {
	g := &Game{
		screen:    screen,
		renderer:  render.NewRenderer(screen),
		scratch:   fov.NewRippleScratch(),
		metric:    fov.Circle,
		radius:    opts.Radius,
		looseness: 2,
	}
	if g.radius <= 0 {
		g.radius = 8
	}
	if !opts.Mute {
		// Audio is best effort: a headless host just runs silent.
		if tone, err := audio.NewTone(220); err == nil {
			g.tone = tone
		}
	}
	name := opts.MapName
	if _, ok := gamemap.Samples[name]; !ok {
		name = mapOrder[0]
	}
	for i, n := range mapOrder {
		if n == name {
			g.mapIdx = i
		}
	}
	g.loadMap(name)
	return g, nil
}

// loadMap parses the named sample map, rebuilds both resistance grids, and
// drops the light source on the walkable cell nearest the map center.
func (g *Game) loadMap(name string) {
	g.mapName = name
	g.tmap = gamemap.Parse(gamemap.Samples[name])
	runes := g.tmap.Runes()
	g.res = fov.BuildResistance(runes)
	g.sound = fov.BuildSoundResistance(runes)
	g.light = fov.NewGrid(g.tmap.Width, g.tmap.Height)
	g.glow = fov.NewGrid(g.tmap.Width, g.tmap.Height)
	g.noise = fov.NewGrid(g.tmap.Width, g.tmap.Height)
	g.vis = fov.NewBitmap(g.tmap.Width, g.tmap.Height)
	g.emitter = nil

	cx, cy := g.tmap.Width/2, g.tmap.Height/2
	g.px, g.py = cx, cy
	best := math.MaxInt
	for y := 0; y < g.tmap.Height; y++ {
		for x := 0; x < g.tmap.Width; x++ {
			if !g.tmap.IsWalkable(x, y) {
				continue
			}
			d := max(abs(x-cx), abs(y-cy))
			if d < best {
				best = d
				g.px, g.py = x, y
			}
		}
	}
	g.recompute()
}

// recompute refreshes every derived map after any state change: the active
// engine's light, and when a noise source is placed, the player's line of
// sight, the source's glow and sound spread, and the audio level.
func (g *Game) recompute() {
	switch g.mode {
	case ModeShadow:
		fov.ComputeLight(g.res, g.light, g.px, g.py, g.radius, g.metric)
	case ModeSymmetric:
		fov.ComputeLightSymmetric(g.res, g.light, g.px, g.py, g.radius, g.metric)
	case ModeCone:
		fov.ComputeLightAngled(g.res, g.light, g.px, g.py, g.radius, g.metric, g.facing, coneSpan)
	case ModeDirectional:
		r := g.radius
		fov.ComputeLightDirectional(g.res, g.light, g.px, g.py, g.metric, g.facing,
			r, r*0.8, r*0.6, r*0.4, r*0.25)
	case ModeRipple:
		g.scratch.ComputeRipple(g.res, g.light, g.looseness, g.px, g.py, g.radius, g.metric)
	case ModeBounce:
		fov.TraceBouncingRay(g.res, g.light, g.px, g.py, g.radius*3, g.facing)
	}

	if g.emitter == nil {
		g.view = g.light
		if g.tone != nil {
			g.tone.SetLevel(0)
		}
		return
	}

	e := *g.emitter
	fov.ComputeLOS(g.res, g.vis, g.px, g.py)
	g.scratch.ComputeRipple(g.res, g.glow, g.looseness, e.X, e.Y, g.radius, g.metric)
	g.scratch.ComputeRipple(g.sound, g.noise, 6, e.X, e.Y, g.radius*1.5, g.metric)
	// The source's glow only shows where the player can actually see.
	g.view = fov.ComposeGated(g.vis, g.light, g.glow)
	if g.tone != nil {
		g.tone.SetLevel(g.noise[g.py][g.px])
	}
}

// Run is the demo loop. It owns the screen and restores the terminal on
// return.
func (g *Game) Run() {
	defer g.screen.Fini()
	if g.tone != nil {
		defer g.tone.Close()
	}

	for {
		g.renderer.CenterOn(g.px, g.py)
		g.renderer.DrawFrame(g.tmap, g.view, g.px, g.py)
		g.renderer.DrawHUD(g.statusLine(), helpLines)
		g.renderer.Show()

		ev := g.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			// Screen torn down under us (SSH session closed).
			return
		case *tcell.EventResize:
			g.screen.Sync()
		case *tcell.EventKey:
			action, n := keyToAction(ev)
			if action == ActionQuit {
				return
			}
			g.processAction(action, n)
		}
	}
}

// processAction applies one keypress. n carries the looseness digit.
func (g *Game) processAction(action Action, n int) {
	switch action {
	case ActionCycleMode:
		g.mode = (g.mode + 1) % modeCount
	case ActionCycleMetric:
		switch g.metric {
		case fov.Square:
			g.metric = fov.Diamond
		case fov.Diamond:
			g.metric = fov.Circle
		default:
			g.metric = fov.Square
		}
	case ActionCycleMap:
		g.mapIdx = (g.mapIdx + 1) % len(mapOrder)
		g.loadMap(mapOrder[g.mapIdx])
		return
	case ActionRadiusUp:
		g.radius = min(g.radius+1, 30)
	case ActionRadiusDown:
		g.radius = max(g.radius-1, 1)
	case ActionLooseness:
		g.looseness = n
	case ActionForgetMap:
		g.tmap.ClearExplored()
	case ActionToggleEmitter:
		if g.emitter != nil {
			g.emitter = nil
		} else {
			g.emitter = &fov.Point{X: g.px, Y: g.py}
		}
	default:
		dx, dy := actionToDelta(action)
		if dx == 0 && dy == 0 {
			return
		}
		g.facing = math.Atan2(float64(dy), float64(dx)) * 180 / math.Pi
		if g.facing < 0 {
			g.facing += 360
		}
		if g.tmap.IsWalkable(g.px+dx, g.py+dy) {
			g.px += dx
			g.py += dy
		}
	}
	g.recompute()
}

func (g *Game) statusLine() string {
	s := fmt.Sprintf("engine %s   metric %s   radius %.0f   looseness %d   map %s",
		g.mode, g.metric, g.radius, g.looseness, g.mapName)
	if g.emitter != nil {
		s += fmt.Sprintf("   noise@(%d,%d) heard %.2f", g.emitter.X, g.emitter.Y, g.noise[g.py][g.px])
	}
	return s
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
