package game

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/bubble-dodge/internal/assets"
	"github.com/vovakirdan/bubble-dodge/internal/config"
	"github.com/vovakirdan/bubble-dodge/internal/core"
	"github.com/vovakirdan/bubble-dodge/internal/logging"
	"github.com/vovakirdan/bubble-dodge/internal/render"
	"github.com/vovakirdan/bubble-dodge/internal/sim"
)

const frame = time.Second / 60

func newGame(t *testing.T, profile string) *Game {
	t.Helper()
	p, name, err := config.DefaultConfig().Select(profile)
	if err != nil {
		t.Fatal(err)
	}
	g := New(name, p, nil)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	return g
}

func pressPlay(g *Game) core.InputFrame {
	in := core.NewInputFrame()
	c := g.PlayButtonCenter()
	in.Press(c.X, c.Y)
	return in
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and inputs must give the same game
	inputs := make([]core.InputFrame, 1500)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch (i / 90) % 4 {
		case 0:
			inputs[i].Set(core.ActionLeft)
		case 1:
			inputs[i].Set(core.ActionUp)
		case 2:
			inputs[i].Set(core.ActionRight)
		case 3:
			inputs[i].Set(core.ActionDown)
		}
	}

	run := func() core.GameState {
		g := newGame(t, config.ProfileClassic)
		g.Step(pressPlay(g), frame)
		var state core.GameState
		for _, in := range inputs {
			state = g.Step(in, frame).State
			if state.GameOver {
				break
			}
		}
		return state
	}

	s1, s2 := run(), run()
	if s1 != s2 {
		t.Errorf("determinism failed: %+v vs %+v", s1, s2)
	}
}

func TestGameStateFlags(t *testing.T) {
	g := newGame(t, config.ProfileClassic)
	if s := g.State(); !s.Menu || s.GameOver || s.Score != 0 {
		t.Errorf("initial state = %+v", s)
	}

	g.Step(pressPlay(g), frame)
	if s := g.State(); s.Menu || s.GameOver {
		t.Errorf("state after play = %+v", s)
	}

	w := g.Machine().World()
	w.Hazards = append(w.Hazards, sim.Hazard{ID: 500, Pos: w.Avatar.Pos, Radius: 20, Lethal: true})
	if s := g.Step(core.NewInputFrame(), frame).State; !s.GameOver {
		t.Errorf("state after hit = %+v", s)
	}
}

func TestGameReset(t *testing.T) {
	g := newGame(t, config.ProfileEndless)
	for i := 0; i < 200; i++ {
		g.Step(core.NewInputFrame(), frame)
	}
	if g.Machine().Ticks() != 200 {
		t.Fatalf("ticks = %d", g.Machine().Ticks())
	}

	g.Reset(core.RuntimeConfig{Seed: 1})
	if g.Machine().Ticks() != 0 || g.State().Score != 0 {
		t.Error("Reset should start a fresh game")
	}
	if g.ID() != config.ProfileEndless || g.Title() != "Endless" {
		t.Errorf("ID/Title = %q/%q", g.ID(), g.Title())
	}
}

func TestGameLogsLifecycle(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(&buf, "debug")
	if err != nil {
		t.Fatal(err)
	}

	p, _, _ := config.DefaultConfig().Select(config.ProfileClassic)
	g := New(config.ProfileClassic, p, logger)
	g.Reset(core.RuntimeConfig{Seed: 3})
	g.Step(pressPlay(g), frame)

	w := g.Machine().World()
	w.Edibles = append(w.Edibles, sim.Edible{ID: 900, Pos: w.Avatar.Pos, Radius: 10})
	g.Step(core.NewInputFrame(), frame)
	w.Hazards = append(w.Hazards, sim.Hazard{ID: 901, Pos: w.Avatar.Pos, Radius: 20, Lethal: true})
	g.Step(core.NewInputFrame(), frame)

	out := buf.String()
	for _, want := range []string{"game reset", "to=playing", "edible collected", "to=ended", "game over", "score=10"} {
		if !strings.Contains(out, want) {
			t.Errorf("log is missing %q:\n%s", want, out)
		}
	}
}

func canvasFor(g *Game, art map[string]assets.Art) *render.CellCanvas {
	w := g.Machine().World()
	return render.NewCellCanvas(core.NewScreen(80, 24), w.Width, w.Height, art)
}

func TestDrawMenu(t *testing.T) {
	g := newGame(t, config.ProfileClassic)
	c := canvasFor(g, nil)
	g.Draw(c)

	out := c.Screen().String()
	for _, want := range []string{"Classic", "Play", "press Enter"} {
		if !strings.Contains(out, want) {
			t.Errorf("menu frame is missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Score:") {
		t.Error("menu frame should not show the score")
	}
}

func TestDrawPlayingAndEnded(t *testing.T) {
	bundle, err := assets.Load(config.DefaultConfig().Assets)
	if err != nil {
		t.Fatal(err)
	}

	g := newGame(t, config.ProfileClassic)
	g.Step(pressPlay(g), frame)
	w := g.Machine().World()
	w.Hazards = append(w.Hazards, sim.Hazard{ID: 1, Pos: core.Vec2{X: 200, Y: 200}, Radius: 20, Lethal: true})
	w.Edibles = append(w.Edibles, sim.Edible{ID: 2, Pos: core.Vec2{X: 400, Y: 800}, Radius: 10})

	c := canvasFor(g, bundle.Art)
	g.Draw(c)
	out := c.Screen().String()
	if !strings.Contains(out, "Score: 0") {
		t.Errorf("HUD missing:\n%s", out)
	}
	if !strings.Contains(out, "<°))><") {
		t.Errorf("avatar sprite missing:\n%s", out)
	}
	if !strings.ContainsRune(out, HazardChar) || !strings.ContainsRune(out, EdibleChar) {
		t.Errorf("hazards or edibles missing:\n%s", out)
	}

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	g.Step(in, frame)
	g.Draw(c)
	if out := c.Screen().String(); !strings.Contains(out, "><((°>") {
		t.Errorf("avatar should face right:\n%s", out)
	}

	w.Hazards = append(w.Hazards, sim.Hazard{ID: 3, Pos: w.Avatar.Pos, Radius: 20, Lethal: true})
	g.Step(core.NewInputFrame(), frame)
	g.Draw(c)
	out = c.Screen().String()
	if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "hit by a bubble") {
		t.Errorf("game over overlay missing:\n%s", out)
	}
}

func TestDrawAvatarFallback(t *testing.T) {
	g := newGame(t, config.ProfileEndless)
	c := canvasFor(g, nil)
	g.Draw(c)
	if !strings.ContainsRune(c.Screen().String(), AvatarChar) {
		t.Error("avatar should fall back to a shape without art")
	}
}
