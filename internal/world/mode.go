package world

import "github.com/vovakirdan/goomba-arcade/internal/core"

// enterDungeon saves the overworld position and builds the walled boss room.
func (w *World) enterDungeon() {
	d := w.cfg.Dungeon
	p := &w.player

	w.saved = savedCoords{camX: w.camX, playerX: p.X, frontier: w.frontier}
	w.mode = ModeDungeon
	w.camX = d.RoomX

	p.X = d.RoomX + d.EntryX
	p.Y = w.groundY - d.EntryRise - p.H
	p.VX, p.VY = 0, 0
	p.Grounded = false
	p.HasMoved = true

	w.enemies.Clear()
	w.platforms.Clear()
	w.platforms.Add(Platform{X: d.RoomX, Y: w.groundY, W: d.RoomWidth, H: d.FloorDepth, Surface: SurfaceBrick})
	w.platforms.Add(Platform{X: d.RoomX, Y: 0, W: d.WallWidth, H: w.groundY, Surface: SurfaceBlock})
	w.platforms.Add(Platform{X: d.RoomX + d.RoomWidth - d.WallWidth, Y: 0, W: d.WallWidth, H: w.groundY, Surface: SurfaceBlock})

	kind := KindGorilla
	if w.rng.Float64() < 0.5 {
		kind = KindDragon
	}
	ec := w.cfg.Enemies
	w.dungeonBoss = kind
	w.enemies.Add(newBoss(kind, d.RoomX+d.BossX, w.groundY-ec.BossSize, ec.BossSize, -ec.BossSpeed, d.BossHP, 0))
	w.sink.Play(SoundBossThemeStart)
	w.log.Info("entered dungeon", "boss", kind, "hp", d.BossHP)
}

// exitDungeon returns to the saved overworld position and regenerates the
// visible span around it.
func (w *World) exitDungeon() {
	p := &w.player
	w.mode = ModeOverworld
	w.camX = w.saved.camX
	w.frontier = w.saved.frontier
	p.X = w.saved.playerX
	p.Y = 0
	p.VY = 0

	w.enemies.Clear()
	w.platforms.Clear()
	w.generateChunk(w.camX, w.camX+w.width+w.cfg.Generation.Lookahead)
	w.sink.Play(SoundBossThemeStop)
	w.log.Info("left dungeon", "x", p.X)
}

// triggerEnding clears the field and stages the cutscene around the
// middle of the viewport.
func (w *World) triggerEnding() {
	ec := w.cfg.Ending
	p := &w.player

	w.mode = ModeEnding
	w.bossActive = false
	w.sink.Play(SoundBossThemeStop)
	w.enemies.Clear()

	center := w.camX + w.width/2
	p.X = center + ec.PlayerOffsetX
	p.Y = w.groundY - p.H
	p.VX, p.VY = 0, 0
	p.Grounded = true
	p.FacingRight = true
	p.HasMoved = true
	p.Pose = &Pose{Scale: 1}

	w.actors.Clear()
	w.actors.Add(Actor{
		Body: Body{
			X: center + ec.ActorStartX, Y: w.groundY - ec.ActorSize,
			W: ec.ActorSize, H: ec.ActorSize,
			VX: -ec.ActorSpeed,
		},
		Kind: ActorWolf,
	})

	w.pending = TransitionVictory
	w.log.Info("ending", "score", w.score, "bosses", w.bosses)
}

// stepCutscene advances the scripted ending. It takes no input.
func (w *World) stepCutscene() {
	ec := w.cfg.Ending
	w.frame++

	center := w.camX + w.width/2
	var wolf *Actor
	for _, a := range w.actors.All() {
		if a.Kind == ActorWolf {
			wolf = a
			break
		}
	}

	if wolf != nil {
		if wolf.X > center+ec.ActorStopX {
			wolf.X += wolf.VX
		} else {
			wolf.VX = 0
			if ec.FlipEvery > 0 && w.frame%ec.FlipEvery == 0 && w.rng.Float64() < 0.5 {
				wolf.FacingRight = !wolf.FacingRight
			}
			w.growPlayer(wolf)
		}
	}

	for i, a := range w.actors.All() {
		if a.Kind != ActorDebris {
			continue
		}
		a.VY += w.cfg.Physics.Gravity
		a.X += a.VX
		a.Y += a.VY
		if wolf != nil && a.Box().Overlaps(wolf.Box()) {
			w.spawnParticles(a.X, a.Y, core.ColorGold, 4)
			w.sink.Play(SoundCoin)
			w.actors.Remove(i)
			continue
		}
		if a.Y >= w.height {
			w.actors.Remove(i)
		}
	}

	w.updateParticles()
	w.compact()
}

// growPlayer inflates the player until it bursts into debris aimed at the wolf.
func (w *World) growPlayer(wolf *Actor) {
	ec := w.cfg.Ending
	p := &w.player
	if p.Pose == nil || p.Pose.Dead {
		return
	}
	p.Pose.Scale += ec.GrowRate
	if p.Pose.Scale > ec.MaxScale {
		p.Pose.Scale = ec.MaxScale
	}
	p.Y = w.groundY - p.H*p.Pose.Scale
	if p.Pose.Scale < ec.MaxScale {
		return
	}

	p.Pose.Dead = true
	w.sink.Play(SoundCrash)
	ox := p.X + p.W*1.5
	oy := p.Y - 50
	for range ec.DebrisCount {
		w.actors.Add(Actor{
			Body: Body{
				X: ox, Y: oy,
				W: ec.DebrisSize, H: ec.DebrisSize,
				VX: (w.rng.Float64() - 0.5) * ec.DebrisSpread,
				VY: -w.rng.Float64()*ec.DebrisLift - ec.DebrisMinLift,
			},
			Kind: ActorDebris,
		})
	}
	w.log.Debug("player burst", "debris", ec.DebrisCount, "wolf", wolf.X)
}
