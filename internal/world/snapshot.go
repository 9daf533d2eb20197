package world

// Snapshot is a read-only copy of the world for rendering. It shares no
// memory with the live world.
type Snapshot struct {
	CameraX    float64
	Width      float64
	Height     float64
	GroundY    float64
	Mode       Mode
	Frame      int
	Score      int
	Lives      int
	Shield     bool
	Bosses     int
	BossActive bool
	Distance   float64
	Multiplier float64

	Player      Player
	Enemies     []Enemy
	Platforms   []Platform
	PowerUps    []PowerUp
	Decorations []Decoration
	Particles   []Particle
	Actors      []Actor
}

// Snapshot copies the current state.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		CameraX:    w.camX,
		Width:      w.width,
		Height:     w.height,
		GroundY:    w.groundY,
		Mode:       w.mode,
		Frame:      w.frame,
		Score:      w.score,
		Lives:      w.lives,
		Shield:     w.player.Shield,
		Bosses:     w.bosses,
		BossActive: w.bossActive,
		Distance:   w.distance,
		Multiplier: w.mult,

		Player:      w.player,
		Enemies:     w.enemies.Values(),
		Platforms:   w.platforms.Values(),
		PowerUps:    w.powerUps.Values(),
		Decorations: w.decorations.Values(),
		Particles:   w.particles.Values(),
		Actors:      w.actors.Values(),
	}
	if w.player.Pose != nil {
		pose := *w.player.Pose
		s.Player.Pose = &pose
	}
	for i := range s.Enemies {
		if b := s.Enemies[i].Boss; b != nil {
			cp := *b
			s.Enemies[i].Boss = &cp
		}
	}
	for i := range s.Platforms {
		p := &s.Platforms[i]
		if p.Motion != nil {
			m := *p.Motion
			p.Motion = &m
		}
		if p.Ghost != nil {
			g := *p.Ghost
			p.Ghost = &g
		}
	}
	return s
}
