package world

import (
	"math"

	"github.com/vovakirdan/goomba-arcade/internal/core"
)

// updatePlatforms advances oscillating pipes and ghost timers.
func (w *World) updatePlatforms() {
	for _, p := range w.platforms.All() {
		if m := p.Motion; m != nil {
			p.Y += m.Speed * m.Dir * w.mult
			if p.Y > m.MaxY {
				m.Dir = -1
			}
			if p.Y < m.MinY {
				m.Dir = 1
			}
		}
		if p.Ghost != nil {
			p.Ghost.Timer += w.mult
		}
	}
}

// movePlayer applies one tick of input, camera, jumping, gravity, landing
// and integration to the player.
func (w *World) movePlayer(in Input) {
	p := &w.player
	pc := w.cfg.Player
	phys := w.cfg.Physics

	if in.Left {
		p.VX -= phys.RunAccel * w.mult
		p.FacingRight = false
		p.HasMoved = true
	}
	if in.Right {
		p.VX += phys.RunAccel * w.mult
		p.FacingRight = true
		p.HasMoved = true
	}

	if in.Down && p.Grounded && w.mode == ModeOverworld && !w.bossActive && w.onGoldPipe() {
		w.enterDungeon()
	}

	w.followCamera()

	if w.coyote > 0 {
		w.coyote--
	}
	// Past the grace window a body that walked off a ledge has only its
	// air charges left.
	if !p.Grounded && w.coyote == 0 && p.Jumps == pc.JumpCharges {
		p.Jumps--
	}

	if in.Jump {
		p.HasMoved = true
		if !w.jumpLatched {
			switch {
			case p.Flight > 0:
				w.launch(core.ColorCyan)
			case p.Jumps > 0:
				w.launch(core.ColorWhite)
				p.Jumps--
				w.coyote = 0
			}
			w.jumpLatched = true
		}
	} else {
		w.jumpLatched = false
	}

	p.VY += phys.Gravity
	p.Grounded = false
	w.onIce = false

	for _, plat := range w.platforms.All() {
		if !plat.Solid() || !w.playerLandsOn(plat) {
			continue
		}
		w.landPlayer(plat.Y)
		switch plat.Surface {
		case SurfaceIce:
			w.onIce = true
		case SurfaceBouncy:
			p.VY = phys.JumpImpulse * phys.BounceFactor
			p.Grounded = false
			w.sink.Play(SoundJump)
		}
	}

	if p.Bottom() > w.groundY {
		w.landPlayer(w.groundY)
	}

	friction := phys.Friction
	if w.onIce {
		friction = phys.IceFriction
	}
	p.VX *= friction
	p.X += p.VX
	p.Y += p.VY

	if w.mode == ModeDungeon {
		lo, hi := w.dungeonBounds()
		p.X = core.ClampF(p.X, lo, hi-p.W)
	} else if p.X < 0 {
		p.X = 0
	}
}

func (w *World) launch(dust core.Color) {
	p := &w.player
	p.VY = w.cfg.Physics.JumpImpulse
	p.Grounded = false
	w.sink.Play(SoundJump)
	w.spawnParticles(p.X+p.W/2, p.Bottom(), dust, 2)
}

// playerLandsOn is the forgiving downward-only landing test: falling, feet
// within the tolerance band of the top, and overlapping with an inset.
func (w *World) playerLandsOn(plat *Platform) bool {
	p := &w.player
	pc := w.cfg.Player
	feet := p.Bottom()
	return p.VY > 0 &&
		feet > plat.Y-pc.LandTolerance &&
		feet < plat.Y+p.H+pc.LandReach &&
		p.X+p.W > plat.X+pc.LandInset &&
		p.X < plat.X+plat.W-pc.LandInset
}

func (w *World) landPlayer(top float64) {
	p := &w.player
	p.Y = top - p.H
	p.VY = 0
	p.Grounded = true
	p.Jumps = w.cfg.Player.JumpCharges
	w.coyote = w.cfg.Player.CoyoteTicks
}

// onGoldPipe reports whether the player stands centered on a golden pipe.
func (w *World) onGoldPipe() bool {
	p := &w.player
	cx := p.X + p.W/2
	for _, plat := range w.platforms.All() {
		if plat.Surface != SurfaceGoldPipe {
			continue
		}
		if cx > plat.X && cx < plat.X+plat.W && math.Abs(p.Bottom()-plat.Y) < w.cfg.Dungeon.PipeSnap {
			return true
		}
	}
	return false
}

// followCamera eases the camera toward the player, forward only. While a
// boss or the dungeon is active the camera is frozen and the player is
// kept inside the viewport instead.
func (w *World) followCamera() {
	p := &w.player
	if w.bossActive || w.mode == ModeDungeon {
		p.X = core.ClampF(p.X, w.camX, w.camX+w.width-p.W)
		return
	}
	target := p.X - w.width*w.cfg.Physics.CameraLead
	if target > w.camX {
		w.camX += (target - w.camX) * w.cfg.Physics.CameraEase
	}
}

// dungeonBounds returns the inner faces of the dungeon walls.
func (w *World) dungeonBounds() (float64, float64) {
	d := w.cfg.Dungeon
	return d.RoomX + d.WallWidth, d.RoomX + d.RoomWidth - d.WallWidth
}

// enemyBounds returns the horizontal range bosses patrol.
func (w *World) enemyBounds() (float64, float64) {
	if w.mode == ModeDungeon {
		return w.dungeonBounds()
	}
	return w.camX, w.camX + w.width
}

// tickTimers counts down player effects. A shield whose timer runs out is
// dropped on the same tick.
func (w *World) tickTimers() {
	p := &w.player
	if p.Invincible > 0 {
		p.Invincible--
	}
	if p.Flight > 0 {
		p.Flight--
	}
	if p.Shield {
		p.ShieldTimer--
		if p.ShieldTimer <= 0 {
			w.breakShield()
		}
	}
}

func (w *World) breakShield() {
	p := &w.player
	p.Shield = false
	p.ShieldTimer = 0
	w.spawnParticles(p.X+p.W/2, p.Y+p.H/2, core.ColorBrightCyan, 10)
	w.sink.Play(SoundShieldBreak)
}

// moveHazard drops a falling hazard. It reports false once the hazard
// hits the ground and has been removed.
func (w *World) moveHazard(i int, e *Enemy) bool {
	ec := w.cfg.Enemies
	e.VY += w.cfg.Physics.Gravity * ec.HazardGravityMult * w.mult
	e.Y += e.VY
	if e.Bottom() > w.groundY {
		e.Y = w.groundY - e.H
		w.sink.Play(SoundCrash)
		w.spawnParticles(e.X+e.W/2, e.Bottom(), core.ColorGray, 10)
		w.enemies.Remove(i)
		return false
	}
	return true
}

func (w *World) moveFlyer(e *Enemy) {
	ec := w.cfg.Enemies
	e.X += e.VX * w.mult
	e.Y += math.Sin(float64(w.frame)*ec.FlyerBobRate) * ec.FlyerBob
	e.FacingRight = e.VX > 0
}

// moveWalker applies gravity, patrol rules and landing to ground kinds.
func (w *World) moveWalker(e *Enemy) {
	ec := w.cfg.Enemies
	phys := w.cfg.Physics

	e.VY += phys.Gravity
	e.X += e.VX * w.mult
	e.Y += e.VY

	if e.Kind.IsBoss() {
		if e.Grounded && w.rng.Float64() < ec.BossHopChance*w.mult {
			e.VY = phys.JumpImpulse * ec.BossHopFactor
		}
		lo, hi := w.enemyBounds()
		if e.X < lo && e.VX < 0 {
			e.VX = -e.VX
		}
		if e.X+e.W > hi && e.VX > 0 {
			e.VX = -e.VX
		}
	} else if w.rng.Float64() < ec.WanderChance {
		dir := -1.0
		if w.rng.Float64() < 0.5 {
			dir = 1
		}
		e.VX = dir * ec.BaseSpeed * ec.WanderFactor
	}

	e.Grounded = false
	if e.Bottom() > w.groundY {
		e.Y = w.groundY - e.H
		e.VY = 0
		e.Grounded = true
	}

	for _, plat := range w.platforms.All() {
		if !plat.Solid() {
			continue
		}
		feet := e.Bottom()
		if e.VY > 0 && feet > plat.Y && feet < plat.Y+e.H+w.cfg.Player.LandReach &&
			e.X+e.W > plat.X && e.X < plat.X+plat.W {
			e.Y = plat.Y - e.H
			e.VY = 0
			e.Grounded = true
			if plat.Surface == SurfaceBouncy {
				e.VY = phys.JumpImpulse
				e.Grounded = false
			}
			// Turn back at platform edges.
			if e.X < plat.X {
				e.VX = math.Abs(e.VX)
			}
			if e.X+e.W > plat.X+plat.W {
				e.VX = -math.Abs(e.VX)
			}
		}
	}
	e.FacingRight = e.VX > 0
}

func (w *World) updateParticles() {
	decay := w.cfg.Physics.ParticleDecay
	for i, pt := range w.particles.All() {
		pt.X += pt.VX * w.mult
		pt.Y += pt.VY * w.mult
		pt.Life -= decay * w.mult
		if pt.Life <= 0 {
			w.particles.Remove(i)
		}
	}
}
