package goomba

import (
	"fmt"
	"strings"
	"testing"

	"github.com/vovakirdan/goomba-arcade/internal/config"
	"github.com/vovakirdan/goomba-arcade/internal/core"
	"github.com/vovakirdan/goomba-arcade/internal/registry"
	"github.com/vovakirdan/goomba-arcade/internal/world"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.UseConfig(config.DefaultGoombaConfig(), "")
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestRegistered(t *testing.T) {
	if !registry.Exists(ID) {
		t.Fatalf("game %q not registered", ID)
	}
	g, err := registry.Create(ID)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != ID || g.Title() == "" {
		t.Errorf("ID()=%q Title()=%q", g.ID(), g.Title())
	}
}

func TestMenuStartsRound(t *testing.T) {
	g := newTestGame(t)
	if g.Screen() != world.ScreenMenu {
		t.Fatalf("Screen() = %v, want menu", g.Screen())
	}

	g.Step(frame())
	if g.Screen() != world.ScreenMenu {
		t.Fatal("menu should wait for confirm")
	}

	res := g.Step(frame(core.ActionConfirm))
	if g.Screen() != world.ScreenPlaying || !res.State.Playing {
		t.Fatalf("Screen() = %v, want playing", g.Screen())
	}
	if res.State.Lives != 3 || res.State.Score != 0 {
		t.Errorf("fresh round state = %+v", res.State)
	}
}

func TestPauseFreezesWorld(t *testing.T) {
	g := newTestGame(t)
	g.Step(frame(core.ActionConfirm))

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("pause did not engage")
	}
	before := g.World().Snapshot().Frame
	for range 10 {
		g.Step(frame(core.ActionRight))
	}
	if g.World().Snapshot().Frame != before {
		t.Error("world advanced while paused")
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Fatal("pause did not release")
	}
	if g.World().Snapshot().Frame == before {
		t.Error("world should advance after unpausing")
	}
}

func TestRestartResetsRound(t *testing.T) {
	g := newTestGame(t)
	g.Step(frame(core.ActionConfirm))
	for range 30 {
		g.Step(frame(core.ActionRight))
	}
	old := g.World()

	g.Step(frame(core.ActionRestart))
	if g.World() == old {
		t.Fatal("restart should build a new world")
	}
	st := g.State()
	if st.Score != 0 || st.Lives != 3 || st.Shield || st.Bosses != 0 || !st.Playing {
		t.Errorf("state after restart = %+v", st)
	}
}

// layout describes the generated terrain and enemies of the current world.
func layout(g *Game) string {
	var b strings.Builder
	snap := g.World().Snapshot()
	for _, p := range snap.Platforms {
		fmt.Fprintf(&b, "p%.1f,%.1f,%.1f;", p.X, p.Y, p.W)
	}
	for _, e := range snap.Enemies {
		fmt.Fprintf(&b, "e%d,%.1f,%.1f;", e.Kind, e.X, e.Y)
	}
	for _, pu := range snap.PowerUps {
		fmt.Fprintf(&b, "u%d,%.1f;", pu.Kind, pu.X)
	}
	for _, d := range snap.Decorations {
		fmt.Fprintf(&b, "d%d,%.1f,%.1f;", d.Kind, d.X, d.W)
	}
	return b.String()
}

func TestRoundsGetFreshLayouts(t *testing.T) {
	g := newTestGame(t)
	g.Step(frame(core.ActionConfirm))

	seen := map[string]int{layout(g): 1}
	for round := 2; round <= 4; round++ {
		g.Step(frame(core.ActionRestart))
		l := layout(g)
		if prev, ok := seen[l]; ok {
			t.Fatalf("round %d generated the same world as round %d", round, prev)
		}
		seen[l] = round
	}
}

func TestSessionSeedIsReproducible(t *testing.T) {
	a, b := newTestGame(t), newTestGame(t)
	for range 3 {
		a.Step(frame(core.ActionRestart, core.ActionConfirm))
		b.Step(frame(core.ActionRestart, core.ActionConfirm))
		if layout(a) != layout(b) {
			t.Fatal("same session seed produced different rounds")
		}
	}
}

func TestResultScreens(t *testing.T) {
	g := newTestGame(t)
	g.Step(frame(core.ActionConfirm))

	// Nothing in the result screen moves the player.
	g.screen = world.ScreenGameOver
	st := g.Step(frame(core.ActionRight))
	if !st.State.GameOver || st.State.Playing {
		t.Errorf("game over state = %+v", st.State)
	}

	g.Step(frame(core.ActionBack))
	if g.Screen() != world.ScreenMenu {
		t.Errorf("Back should return to the menu, got %v", g.Screen())
	}

	g.Step(frame(core.ActionConfirm))
	g.screen = world.ScreenVictory
	g.SetCaption("well stomped")
	if !g.State().Victory {
		t.Error("State().Victory should be set on the victory screen")
	}
	g.Step(frame(core.ActionRestart))
	if g.Screen() != world.ScreenPlaying || g.caption != "" {
		t.Errorf("restart from victory: screen=%v caption=%q", g.Screen(), g.caption)
	}
}

func TestUseConfigAppliesOnRestart(t *testing.T) {
	g := newTestGame(t)
	g.Step(frame(core.ActionConfirm))

	cfg := config.DefaultGoombaConfig()
	cfg.Player.Lives = 7
	g.UseConfig(cfg, "test.yaml")
	if g.State().Lives != 3 {
		t.Fatal("a running round must keep its rules")
	}
	g.Step(frame(core.ActionRestart))
	if g.State().Lives != 7 {
		t.Errorf("Lives = %d, want 7 after restart", g.State().Lives)
	}
	if g.ConfigSource() != "test.yaml" {
		t.Errorf("ConfigSource() = %q", g.ConfigSource())
	}
}

func TestSinkReceivesEvents(t *testing.T) {
	var sounds []world.Sound
	g := New()
	g.UseConfig(config.DefaultGoombaConfig(), "")
	g.SetSink(world.SinkFunc(func(s world.Sound) { sounds = append(sounds, s) }))
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})
	g.Step(frame(core.ActionConfirm))
	g.Step(frame(core.ActionJump))

	found := false
	for _, s := range sounds {
		if s == world.SoundJump {
			found = true
		}
	}
	if !found {
		t.Errorf("sounds = %v, want a jump", sounds)
	}
}

func TestRenderScreens(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !strings.Contains(screen.String(), "REVENGE OF THE GOOMBA") {
		t.Error("menu should show the title")
	}

	g.Step(frame(core.ActionConfirm))
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "SCORE 000000") {
		t.Error("HUD should show the score")
	}
	if !strings.ContainsRune(out, PlayerChar) {
		t.Error("player should be visible")
	}
	if !strings.ContainsRune(out, GroundTopChar) {
		t.Error("ground should be visible")
	}

	g.Step(frame(core.ActionPause))
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("pause panel missing")
	}
}

func TestRenderGameOverCaption(t *testing.T) {
	g := newTestGame(t)
	g.Step(frame(core.ActionConfirm))
	g.screen = world.ScreenGameOver
	g.SetCaption("The pipes remember.")

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "The pipes remember.") {
		t.Errorf("game over panel missing content:\n%s", out)
	}
}

func TestRenderHighScore(t *testing.T) {
	tests := []struct {
		name   string
		screen world.ScreenMode
		best   int
		want   string
		absent string
	}{
		{"title with record", world.ScreenMenu, 1200, "High score: 1200", ""},
		{"title without record", world.ScreenMenu, 0, "", "High score"},
		{"game over below record", world.ScreenGameOver, 1200, "Best: 1200", "NEW HIGH SCORE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			if tt.screen != world.ScreenMenu {
				g.Step(frame(core.ActionConfirm))
				g.screen = tt.screen
			}
			g.SetHighScore(tt.best)

			screen := core.NewScreen(80, 24)
			g.Render(screen)
			out := screen.String()
			if tt.want != "" && !strings.Contains(out, tt.want) {
				t.Errorf("missing %q:\n%s", tt.want, out)
			}
			if tt.absent != "" && strings.Contains(out, tt.absent) {
				t.Errorf("unexpected %q:\n%s", tt.absent, out)
			}
		})
	}

	g := newTestGame(t)
	g.SetHighScore(1200)
	if got := g.bestLine(1500); len(got) != 1 || got[0] != "NEW HIGH SCORE!" {
		t.Errorf("bestLine(1500) = %q, want a new record", got)
	}
}

func TestTooSmall(t *testing.T) {
	g := New()
	g.UseConfig(config.DefaultGoombaConfig(), "")
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 8})
	g.Step(frame(core.ActionConfirm))
	if g.Screen() != world.ScreenMenu {
		t.Error("a too small screen must not start a round")
	}
	screen := core.NewScreen(20, 8)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Error("expected the size warning")
	}
}

func TestSetDifficultyPreset(t *testing.T) {
	t.Cleanup(func() { SetDifficultyPreset("") })

	SetDifficultyPreset("easy")
	g := newTestGame(t)
	if g.State().Lives != 5 {
		t.Errorf("easy lives = %d, want 5", g.State().Lives)
	}

	SetDifficultyPreset("bogus")
	if difficultyPreset != "" {
		t.Errorf("unknown preset should clear, got %q", difficultyPreset)
	}
}
