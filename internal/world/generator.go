package world

import "math"

// Scenery dimensions.
const (
	hillMinW, hillVarW = 100.0, 100.0
	hillMinH, hillVarH = 80.0, 50.0
	bushW, bushH       = 60.0, 30.0
	cloudW, cloudH     = 80.0, 40.0

	hillMinStep, hillVarStep   = 100.0, 200.0
	cloudMinStep, cloudVarStep = 100.0, 300.0

	platformCoinCount   = 3
	platformCoinInset   = 20.0
	platformCoinSpacing = 40.0
	powerUpLift         = 10.0
	groundCoinOffsetA   = 50.0
	groundCoinOffsetB   = 90.0
)

// generateChunk populates [startX, endX) of the overworld. The dungeon and
// the ending have fixed layouts, so it does nothing outside the overworld.
func (w *World) generateChunk(startX, endX float64) {
	if w.mode != ModeOverworld {
		return
	}

	if w.bossDue(startX, endX) {
		g := w.cfg.Generation
		w.spawnBoss(startX+g.BossOffset, w.groundY-w.cfg.Enemies.BossSize, w.bosses+1)
		return
	}

	w.scatterScenery(startX, endX)
	w.layGroundRow(startX, endX)
	w.layUpperRow(startX, endX)
	w.layGroundEnemies(startX, endX)
}

// bossDue reports whether this span crosses a boss boundary while no boss
// is active and the tally allows another.
func (w *World) bossDue(startX, endX float64) bool {
	g := w.cfg.Generation
	if startX <= g.BossMinDistance || w.bossActive || w.bosses >= g.MaxBosses {
		return false
	}
	span := endX - startX
	return math.Floor(startX/g.BossInterval) > math.Floor((startX-span)/g.BossInterval)
}

func (w *World) scatterScenery(startX, endX float64) {
	g := w.cfg.Generation
	for x := startX; x < endX; x += w.rng.Float64()*hillVarStep + hillMinStep {
		if w.rng.Float64() >= g.HillChance {
			continue
		}
		d := Decoration{X: x, Kind: DecorBush, W: bushW, H: bushH}
		if w.rng.Float64() < 0.5 {
			d.Kind = DecorHill
			d.W = hillMinW + w.rng.Float64()*hillVarW
			d.H = hillMinH + w.rng.Float64()*hillVarH
		}
		d.Y = w.groundY - d.H
		w.decorations.Add(d)
	}

	for x := startX; x < endX; x += w.rng.Float64()*cloudVarStep + cloudMinStep {
		if w.rng.Float64() >= g.CloudChance {
			continue
		}
		w.decorations.Add(Decoration{
			X: x, Y: w.rng.Float64() * (w.height / 2),
			W: cloudW, H: cloudH,
			Kind: DecorCloud,
		})
	}
}

// layGroundRow sweeps a cursor across the span placing pipes and floating
// platforms, the latter optionally hosting an enemy, a power-up and coins.
func (w *World) layGroundRow(startX, endX float64) {
	g := w.cfg.Generation
	x := startX
	for x < endX {
		if w.rng.Float64() < g.GapChance {
			x += g.GapWidth
		}

		switch r := w.rng.Float64(); {
		case r < g.PipeChance:
			w.layPipe(x)
			x += g.PipeStride
		case r < g.PlatformChance:
			x += w.layFloatingPlatform(x) + g.PlatformGap
		default:
			x += g.EmptyStride
		}
	}
}

func (w *World) layPipe(x float64) {
	g := w.cfg.Generation
	h := g.PipeMinHeight + w.rng.Float64()*(g.PipeMaxHeight-g.PipeMinHeight)
	moving := w.rng.Float64() < g.MovingChance
	gold := w.rng.Float64() < g.GoldChance

	p := Platform{
		X: x, Y: w.groundY - h, W: g.PipeWidth, H: h,
		Surface: SurfacePipe,
	}
	switch {
	case gold:
		// Golden pipes are dungeon entrances and never move.
		p.Surface = SurfaceGoldPipe
	case moving:
		p.Motion = &Oscillation{
			MinY:  w.groundY - h,
			MaxY:  w.groundY - g.PipeTravelFloor,
			Dir:   1,
			Speed: g.PipeMinSpeed + w.rng.Float64()*g.PipeSpeedRange,
		}
	}
	w.platforms.Add(p)
}

// layFloatingPlatform places one platform at x and returns its width.
func (w *World) layFloatingPlatform(x float64) float64 {
	g := w.cfg.Generation
	y := w.groundY - (g.PlatformMinRise + w.rng.Float64()*(g.PlatformMaxRise-g.PlatformMinRise))
	width := g.PlatformMinWidth + w.rng.Float64()*(g.PlatformMaxWidth-g.PlatformMinWidth)

	p := Platform{X: x, Y: y, W: width, H: g.PlatformHeight, Surface: SurfaceBrick}
	if w.rng.Float64() < g.GhostChance {
		p.Ghost = &Ghost{
			Timer:    w.rng.Float64() * g.GhostPhaseMax,
			Period:   g.GhostPeriod,
			BlinkAt:  g.GhostBlinkAt,
			VanishAt: g.GhostVanishAt,
		}
	}
	if w.rng.Float64() < g.IceChance {
		p.Surface = SurfaceIce
	} else if w.rng.Float64() < g.BouncyChance {
		p.Surface = SurfaceBouncy
	}
	w.platforms.Add(p)

	ps := w.cfg.PowerUps.Size
	if w.rng.Float64() < g.HostEnemyChance {
		w.spawnEnemy(x+width/2, y-w.cfg.Enemies.Size, KindWalker)
	}
	if w.rng.Float64() < g.HostPowerChance {
		w.spawnPowerUp(x+width/2, y-ps-powerUpLift, w.randomPowerUpKind())
	}
	if w.rng.Float64() < g.HostCoinChance {
		for i := range platformCoinCount {
			w.spawnPowerUp(x+platformCoinInset+float64(i)*platformCoinSpacing, y-ps-powerUpLift, PowerCoin)
		}
	}
	return width
}

// layUpperRow lays a sparse row of elevated blocks, some guarded by flyers.
func (w *World) layUpperRow(startX, endX float64) {
	g := w.cfg.Generation
	if w.rng.Float64() >= g.UpperChance {
		return
	}
	for x := startX; x < endX; x += g.UpperStride {
		if w.rng.Float64() >= g.BlockChance {
			continue
		}
		w.platforms.Add(Platform{
			X: x, Y: w.groundY - g.UpperRise,
			W: g.BlockWidth, H: g.PlatformHeight,
			Surface: SurfaceBlock,
		})
		if w.rng.Float64() < g.FlyerChance {
			kind := KindStork
			if w.rng.Float64() < 0.5 {
				kind = KindEagle
			}
			w.spawnEnemy(x, w.groundY-g.FlyerRise, kind)
		}
	}
}

func (w *World) layGroundEnemies(startX, endX float64) {
	g := w.cfg.Generation
	for x := startX; x < endX; x += g.GroundStride {
		if w.rng.Float64() < g.GroundEnemyGate {
			w.spawnEnemy(x, w.groundY-w.cfg.Enemies.Size, KindWalker)
		}
		if w.rng.Float64() < g.GroundCoinChance {
			y := w.groundY - g.GroundCoinRise
			w.spawnPowerUp(x+groundCoinOffsetA, y, PowerCoin)
			w.spawnPowerUp(x+groundCoinOffsetB, y, PowerCoin)
		}
	}
}
