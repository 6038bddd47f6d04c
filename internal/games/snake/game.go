// Package snake adapts the snake simulation to the arcade platform:
// it maps input actions to simulation calls, applies the move cadence,
// and renders the board into a screen buffer.
package snake

import (
	"fmt"

	"github.com/akarpov/snaketui/internal/config"
	"github.com/akarpov/snaketui/internal/core"
	"github.com/akarpov/snaketui/internal/registry"
	"github.com/akarpov/snaketui/internal/sim"
)

// Package-level knobs set by the CLI before a game is created.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the config file path for the next game.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset for the next game.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// Game implements registry.Game over the snake simulation.
type Game struct {
	mode sim.BoundaryMode
	cfg  config.SnakeConfig
	sim  *sim.Simulation
	tick uint64

	moveTicker int // ticks since the last simulation step

	// Layout
	hudHeight int
	offsetX   int
	offsetY   int
	screenW   int
	screenH   int
	tooSmall  bool
}

// New creates a walled-boundary snake game.
func New() *Game {
	return &Game{mode: sim.Walled}
}

// NewWrap creates a wrap-around snake game.
func NewWrap() *Game {
	return &Game{mode: sim.Wrap}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
	registry.Register("snake_wrap", func() registry.Game {
		return NewWrap()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == sim.Wrap {
		return "snake_wrap"
	}
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == sim.Wrap {
		return "Snake (Wrap-Around)"
	}
	return "Snake"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	loaded, err := config.LoadSnake(configPath)
	if err != nil {
		loaded = config.DefaultSnakeConfig()
	}
	if difficultyPreset != "" {
		config.ApplySnakePreset(&loaded, config.DifficultyPreset(difficultyPreset))
	}
	g.cfg = loaded

	g.tick = 0
	g.moveTicker = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.hudHeight = 2

	// Board with border plus the HUD must fit on screen.
	requiredW := sim.GridSize + 2
	requiredH := sim.GridSize + 2 + g.hudHeight
	g.tooSmall = g.screenW < requiredW || g.screenH < requiredH
	g.offsetX = (g.screenW - (sim.GridSize + 2)) / 2
	g.offsetY = g.hudHeight

	g.sim = sim.New(cfg.Seed)
	g.sim.Reset(g.mode)
}

// Step advances the game by one platform tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && g.sim != nil && g.sim.State() == sim.GameOver {
		g.sim.Reset(g.mode)
		g.moveTicker = 0
		return core.StepResult{State: g.State()}
	}

	if g.sim == nil || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.sim.TogglePause()
	}

	// The simulation buffers the direction; requests between moves are
	// coalesced to the most recently accepted one.
	switch {
	case input.Has(core.ActionUp):
		g.sim.SetDirection(sim.Up)
	case input.Has(core.ActionDown):
		g.sim.SetDirection(sim.Down)
	case input.Has(core.ActionLeft):
		g.sim.SetDirection(sim.Left)
	case input.Has(core.ActionRight):
		g.sim.SetDirection(sim.Right)
	}

	g.moveTicker++
	if g.moveTicker >= g.moveInterval() {
		g.moveTicker = 0
		g.sim.Step()
	}

	return core.StepResult{State: g.State()}
}

// moveInterval returns the current ticks-per-move, shrinking as food
// accumulates when the speed-up progression is enabled.
func (g *Game) moveInterval() int {
	interval := g.cfg.Gameplay.MoveEveryTicks
	if g.cfg.Gameplay.SpeedUpEveryFood > 0 && g.sim != nil {
		eaten := g.sim.Score() / sim.FoodScore
		interval -= eaten / g.cfg.Gameplay.SpeedUpEveryFood
	}
	return max(interval, g.cfg.Gameplay.MinMoveTicks)
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}
	if g.sim == nil {
		return
	}

	snap := g.sim.Snapshot()

	g.renderBorder(dst, snap.Mode)

	// Food
	if snap.Food.X >= 0 && snap.Food.Y >= 0 {
		g.setCell(dst, snap.Food, '*', core.ColorBrightRed)
	}

	// Snake, head first
	for i, seg := range snap.Snake {
		if i == 0 {
			g.setCell(dst, seg, 'O', core.ColorBrightGreen)
		} else {
			g.setCell(dst, seg, 'o', core.ColorGreen)
		}
	}

	switch snap.State {
	case sim.GameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case sim.Paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// setCell draws a rune at a grid position, offset to the board area.
func (g *Game) setCell(dst *core.Screen, p sim.Position, r rune, c core.Color) {
	dst.SetColor(g.offsetX+1+p.X, g.offsetY+1+p.Y, r, c)
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	score := 0
	if g.sim != nil {
		score = g.sim.Score()
	}
	hud := fmt.Sprintf(" %s | Score: %d", g.Title(), score)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBorder frames the board: solid walls in walled mode, a dotted
// outline in wrap mode where the edge is traversable.
func (g *Game) renderBorder(dst *core.Screen, mode sim.BoundaryMode) {
	if mode == sim.Wrap {
		for i := 0; i < sim.GridSize+2; i++ {
			dst.SetColor(g.offsetX+i, g.offsetY, '·', core.ColorGray)
			dst.SetColor(g.offsetX+i, g.offsetY+sim.GridSize+1, '·', core.ColorGray)
			dst.SetColor(g.offsetX, g.offsetY+i, '·', core.ColorGray)
			dst.SetColor(g.offsetX+sim.GridSize+1, g.offsetY+i, '·', core.ColorGray)
		}
		return
	}
	for i := 0; i < sim.GridSize+2; i++ {
		dst.SetColor(g.offsetX+i, g.offsetY, '#', core.ColorGray)
		dst.SetColor(g.offsetX+i, g.offsetY+sim.GridSize+1, '#', core.ColorGray)
		dst.SetColor(g.offsetX, g.offsetY+i, '#', core.ColorGray)
		dst.SetColor(g.offsetX+sim.GridSize+1, g.offsetY+i, '#', core.ColorGray)
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(line1), len(line2)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(boxX, boxY, boxW, boxH)
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.sim.Score(),
		GameOver: g.sim.State() == sim.GameOver,
		Paused:   g.sim.State() == sim.Paused,
	}
}

// Snapshot exposes the underlying simulation snapshot.
func (g *Game) Snapshot() sim.Snapshot {
	if g.sim == nil {
		return sim.Snapshot{}
	}
	return g.sim.Snapshot()
}
