package world

import (
	"math"

	"github.com/vovakirdan/goomba-arcade/internal/core"
)

// collectPowerUps floats pickups and applies the ones the player touches.
// Timed effects refresh rather than stack.
func (w *World) collectPowerUps() {
	pc := w.cfg.PowerUps
	p := &w.player
	box := p.Box()
	for i, pu := range w.powerUps.All() {
		pu.Phase += pc.FloatRate * w.mult
		pu.Y = pu.BaseY + math.Sin(pu.Phase)*pc.FloatAmp
		if !box.Overlaps(pu.Box()) {
			continue
		}
		switch pu.Kind {
		case PowerCoin:
			w.addScore(pc.CoinScore)
			w.sink.Play(SoundCoin)
		case PowerStar:
			p.Invincible = pc.StarTicks
			w.addScore(pc.PowerScore)
			w.sink.Play(SoundPowerUp)
		case PowerWings:
			p.Flight = pc.WingsTicks
			w.addScore(pc.PowerScore)
			w.sink.Play(SoundPowerUp)
		case PowerShield:
			p.Shield = true
			p.ShieldTimer = pc.ShieldTicks
			w.addScore(pc.PowerScore)
			w.sink.Play(SoundPowerUp)
		}
		w.powerUps.Remove(i)
	}
}

// updateEnemies moves every enemy and resolves contact with the player.
// It stops early when a contact ends the life, the round or the overworld.
func (w *World) updateEnemies() {
	for i, e := range w.enemies.All() {
		switch {
		case e.Kind == KindHazard:
			if !w.moveHazard(i, e) {
				continue
			}
			if w.crushEnemies(i, e) {
				return
			}
		case e.Kind.IsFlyer():
			w.moveFlyer(e)
		default:
			w.moveWalker(e)
		}

		if w.resolveContact(i, e) {
			return
		}
	}
}

// crushEnemies lets a falling hazard destroy whatever it lands on. A crushed
// overworld boss counts toward the tally. It reports true if that triggered
// the ending.
func (w *World) crushEnemies(hi int, hazard *Enemy) bool {
	box := hazard.Box()
	for j, o := range w.enemies.All() {
		if j == hi || o.Kind == KindHazard || !box.Overlaps(o.Box()) {
			continue
		}
		w.spawnParticles(o.X+o.W/2, o.Y+o.H/2, core.ColorGray, 8)
		w.enemies.Remove(j)
		if o.Kind == KindBoss {
			if w.defeatBoss() {
				return true
			}
		}
	}
	return false
}

// defeatBoss records an overworld boss kill and reports whether the tally
// reached victory.
func (w *World) defeatBoss() bool {
	w.bossActive = false
	w.sink.Play(SoundBossThemeStop)
	w.bosses++
	w.log.Info("boss defeated", "tally", w.bosses)
	if w.bosses >= w.cfg.Combat.BossesToVictory {
		w.triggerEnding()
		return true
	}
	return false
}

// resolveContact handles a player overlap with enemy i. It reports true
// when the scan must stop because the world was reset or changed mode.
func (w *World) resolveContact(i int, e *Enemy) bool {
	p := &w.player
	if !p.HasMoved || !p.Box().Overlaps(e.Box()) {
		return false
	}
	cc := w.cfg.Combat

	if e.Kind == KindHazard {
		if p.Shield {
			w.breakShield()
			p.Invincible = cc.HitInvincible
			w.enemies.Remove(i)
			return false
		}
		if w.damagePlayer(CauseHazard) {
			return true
		}
		w.enemies.Remove(i)
		return false
	}

	stomp := (p.Bottom()-e.Y < cc.StompThreshold && p.VY > 0) || p.Invincible > 0
	if stomp {
		p.VY = cc.StompRebound
		w.sink.Play(SoundStomp)
		return w.stomp(i, e)
	}

	if p.Shield {
		w.breakShield()
		p.Invincible = cc.HitInvincible
		p.VY = cc.ShieldKnockY
		if p.X < e.X {
			p.VX = -cc.ShieldKnockX
		} else {
			p.VX = cc.ShieldKnockX
		}
		return false
	}

	cause := CauseEnemy
	if e.Kind.IsBoss() {
		cause = CauseBoss
	}
	return w.damagePlayer(cause)
}

// stomp applies a successful stomp to enemy i.
func (w *World) stomp(i int, e *Enemy) bool {
	cc := w.cfg.Combat
	if e.Boss == nil {
		w.spawnParticles(e.X+e.W/2, e.Y+e.H/2, core.ColorBrown, 6)
		w.enemies.Remove(i)
		w.addScore(cc.EnemyScore)
		return false
	}

	if e.Boss.HP > 1 {
		e.Boss.HP--
		e.VX *= w.cfg.Enemies.BossKnockback
		w.spawnParticles(e.X+e.W/2, e.Y, core.ColorRed, 6)
		return false
	}

	w.spawnParticles(e.X+e.W/2, e.Y+e.H/2, core.ColorRed, 20)
	w.enemies.Remove(i)

	switch {
	case e.Kind == KindBoss:
		if w.defeatBoss() {
			w.addScore(cc.BossScore)
			return true
		}
		for range cc.RewardPowerUps {
			x := e.X + w.rng.Float64()*cc.RewardSpread
			w.spawnPowerUp(x, e.Y-cc.RewardRise, w.randomPowerUpKind())
		}
	case w.mode == ModeDungeon && e.Kind == w.dungeonBoss:
		w.addScore(cc.BossScore)
		w.addScore(cc.DungeonBonus)
		w.exitDungeon()
		return true
	}
	w.addScore(cc.BossScore)
	return false
}

// damagePlayer costs a life unless the player is invincible. It reports
// true when the world was reset or the round ended.
func (w *World) damagePlayer(cause string) bool {
	p := &w.player
	if p.Invincible > 0 {
		return false
	}
	w.sink.Play(SoundDie)
	if w.lives > 1 {
		w.lives--
		w.log.Info("life lost", "cause", cause, "lives", w.lives)
		w.reset(false)
		return true
	}
	w.lives = 0
	w.deathCause = cause
	w.over = true
	w.pending = TransitionGameOver
	w.sink.Play(SoundBossThemeStop)
	w.log.Info("game over", "cause", cause, "score", w.score)
	return true
}
