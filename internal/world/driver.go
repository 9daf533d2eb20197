package world

// Input is the held-key state for one tick.
type Input struct {
	Left  bool
	Right bool
	Jump  bool
	Down  bool
}

// Transition is a screen change requested by the simulation.
type Transition int

const (
	TransitionNone Transition = iota
	TransitionGameOver
	TransitionVictory
)

func (t Transition) String() string {
	switch t {
	case TransitionNone:
		return "none"
	case TransitionGameOver:
		return "game-over"
	case TransitionVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// ScreenMode is the outer screen the host is showing.
type ScreenMode int

const (
	ScreenMenu ScreenMode = iota
	ScreenPlaying
	ScreenGameOver
	ScreenVictory
)

func (s ScreenMode) String() string {
	switch s {
	case ScreenMenu:
		return "menu"
	case ScreenPlaying:
		return "playing"
	case ScreenGameOver:
		return "game-over"
	case ScreenVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Advance runs one tick for the given screen. The simulation only moves
// while playing; the ending cutscene keeps running on the victory screen.
// The returned Transition tells the host which screen to show next.
func (w *World) Advance(mode ScreenMode, in Input) Transition {
	switch mode {
	case ScreenPlaying:
		if w.mode == ModeEnding {
			w.stepCutscene()
			return TransitionNone
		}
		return w.step(in)
	case ScreenVictory:
		if w.mode == ModeEnding {
			w.stepCutscene()
		}
	}
	return TransitionNone
}

// step is one simulation tick outside the cutscene.
func (w *World) step(in Input) Transition {
	if w.over {
		return TransitionNone
	}
	w.pending = TransitionNone
	defer w.compact()

	w.frame++
	if w.player.X > w.distance {
		w.distance = w.player.X
	}
	w.mult = w.diff.Multiplier(w.score)

	if w.mode == ModeOverworld {
		if w.rng.Float64() < w.cfg.Enemies.HazardChance*w.mult {
			w.spawnHazard()
		}
		w.extendFrontier()
	}

	w.updatePlatforms()
	w.movePlayer(in)
	w.tickTimers()
	w.collectPowerUps()
	w.updateEnemies()
	w.updateParticles()

	return w.pending
}

// extendFrontier generates the next chunk once the camera nears the
// frontier and drops entities left behind the camera.
func (w *World) extendFrontier() {
	g := w.cfg.Generation
	if w.camX+w.width+g.Lookahead > w.frontier {
		w.generateChunk(w.frontier, w.frontier+w.width)
		w.frontier += w.width
	}

	limit := w.camX - g.CleanupMargin
	w.enemies.Retain(func(e *Enemy) bool { return e.X > limit })
	w.platforms.Retain(func(p *Platform) bool { return p.X+p.W > limit })
	w.powerUps.Retain(func(p *PowerUp) bool { return p.X > limit })
	w.decorations.Retain(func(d *Decoration) bool { return d.X+d.W > limit })
}
