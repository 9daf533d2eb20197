package world

import (
	"math"
	"testing"
)

func TestCameraEasesTowardLead(t *testing.T) {
	w := newTestWorld(t)
	w.player.X = 1000

	target := 1000 - testWidth/3.0
	want := 0.0
	for i := range 3 {
		w.followCamera()
		want += (target - want) * 0.1
		if math.Abs(w.camX-want) > 1e-9 {
			t.Fatalf("tick %d: camX = %v, want %v", i, w.camX, want)
		}
	}
}

func TestCameraOnlyMovesForward(t *testing.T) {
	tests := []struct {
		name    string
		playerX float64
	}{
		{"walking back", 100},
		{"inside lead zone", 700},
		{"behind the camera", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			w.camX = 500
			w.player.X = tt.playerX
			w.followCamera()
			if w.camX != 500 {
				t.Errorf("camX = %v, want 500", w.camX)
			}
		})
	}
}

func TestCameraFrozen(t *testing.T) {
	tests := []struct {
		name    string
		boss    bool
		mode    Mode
		playerX float64
		wantX   func(w *World) float64
	}{
		{"boss, player far ahead", true, ModeOverworld, 5000,
			func(w *World) float64 { return 500 + testWidth - w.player.W }},
		{"boss, player behind", true, ModeOverworld, 100,
			func(*World) float64 { return 500 }},
		{"boss, player inside", true, ModeOverworld, 800,
			func(*World) float64 { return 800 }},
		{"dungeon, player far ahead", false, ModeDungeon, 5000,
			func(w *World) float64 { return 500 + testWidth - w.player.W }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			w.camX = 500
			w.bossActive = tt.boss
			w.mode = tt.mode
			w.player.X = tt.playerX

			w.followCamera()
			if w.camX != 500 {
				t.Errorf("camX = %v, want frozen at 500", w.camX)
			}
			if want := tt.wantX(w); w.player.X != want {
				t.Errorf("player x = %v, want %v", w.player.X, want)
			}
		})
	}
}

func TestFrontierAdvances(t *testing.T) {
	tests := []struct {
		name         string
		camX         float64
		wantFrontier float64
	}{
		{"short of lookahead", 900, 2000},
		{"exactly at lookahead", 1000, 2000},
		{"past lookahead", 1100, 2000 + testWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			// lookahead is 200: the chunk is due once camX+800+200 > 2000.
			w.frontier = 2000
			w.camX = tt.camX

			w.extendFrontier()
			if w.frontier != tt.wantFrontier {
				t.Errorf("frontier = %v, want %v", w.frontier, tt.wantFrontier)
			}
		})
	}
}

func TestCleanupBehindCamera(t *testing.T) {
	w := newTestWorld(t)
	w.enemies.Clear()
	w.platforms.Clear()
	w.powerUps.Clear()
	w.decorations.Clear()
	w.frontier = math.Inf(1)
	w.camX = 1000

	// cleanup_margin is 200, so x=750 is dropped and x=850 survives.
	for _, x := range []float64{750, 850} {
		w.enemies.Add(Enemy{Body: Body{X: x, W: 10, H: 10}, Kind: KindWalker})
		w.platforms.Add(Platform{X: x, W: 10, H: 10})
		w.powerUps.Add(PowerUp{X: x, W: 10, H: 10})
		w.decorations.Add(Decoration{X: x, W: 10, H: 10})
	}

	w.extendFrontier()

	checks := []struct {
		name string
		xs   []float64
	}{
		{"enemies", xsOf(&w.enemies, func(e *Enemy) float64 { return e.X })},
		{"platforms", xsOf(&w.platforms, func(p *Platform) float64 { return p.X })},
		{"powerups", xsOf(&w.powerUps, func(p *PowerUp) float64 { return p.X })},
		{"decorations", xsOf(&w.decorations, func(d *Decoration) float64 { return d.X })},
	}
	for _, c := range checks {
		if len(c.xs) != 1 || c.xs[0] != 850 {
			t.Errorf("%s left = %v, want only x=850", c.name, c.xs)
		}
	}
}

func xsOf[T any](p *Pool[T], x func(*T) float64) []float64 {
	var out []float64
	for _, e := range p.All() {
		out = append(out, x(e))
	}
	return out
}
