package goomba

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/goomba-arcade/internal/core"
	"github.com/vovakirdan/goomba-arcade/internal/world"
)

// Glyphs
const (
	GroundTopChar  = '▀'
	GroundFillChar = '█'
	HillChar       = '▲'
	BushChar       = '♣'
	CloudChar      = '~'
	PipeChar       = '█'
	BrickChar      = '▓'
	BlockChar      = '▒'
	IceChar        = '░'
	BouncyChar     = '≈'
	GhostFadeChar  = '·'
	PlayerChar     = '@'
	WalkerChar     = 'm'
	BossChar       = 'M'
	HazardChar     = '♫'
	EagleChar      = 'v'
	StorkChar      = 'Y'
	DragonChar     = 'D'
	GorillaChar    = 'G'
	WolfChar       = 'W'
	DebrisChar     = '*'
	ParticleChar   = '.'
	LifeChar       = '♥'
)

// blinkEvery is the frame period of flashing sprites.
const blinkEvery = 8

// Render draws the current screen into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH), core.ColorGray)
		return
	}
	if g.world == nil {
		return
	}

	snap := g.world.Snapshot()
	v := newView(snap, g.cfg.Render.CellWidth, g.cfg.Render.CellHeight, g.cfg.Render.HUDRows)

	v.drawScenery(dst)
	v.drawGround(dst)
	v.drawPlatforms(dst)
	v.drawPowerUps(dst)
	v.drawEnemies(dst)
	v.drawActors(dst)
	v.drawPlayer(dst)
	v.drawParticles(dst)

	g.renderHUD(dst, snap)
	g.renderOverlay(dst, snap)
}

// view maps world units onto terminal cells below the HUD.
type view struct {
	snap   world.Snapshot
	cw, ch float64
	top    int
}

func newView(snap world.Snapshot, cw, ch float64, hudRows int) view {
	return view{snap: snap, cw: cw, ch: ch, top: hudRows}
}

func (v view) col(x float64) int {
	return int(math.Floor((x - v.snap.CameraX) / v.cw))
}

func (v view) row(y float64) int {
	return v.top + int(math.Floor(y/v.ch))
}

// cells converts a world box to the cell rectangle it covers, at least one
// cell in each direction.
func (v view) cells(x, y, w, h float64) core.Rect {
	x0, y0 := v.col(x), v.row(y)
	x1 := int(math.Ceil((x+w-v.snap.CameraX)/v.cw)) - 1
	y1 := v.top + int(math.Ceil((y+h)/v.ch)) - 1
	return core.NewRect(x0, y0, max(x1-x0+1, 1), max(y1-y0+1, 1))
}

// fill draws a box clipped to the playfield.
func (v view) fill(dst *core.Screen, r core.Rect, glyph rune, c core.Color) {
	field := core.NewRect(0, v.top, dst.Width(), dst.Height()-v.top)
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			if field.Contains(x, y) {
				dst.SetColored(x, y, glyph, c)
			}
		}
	}
}

func (v view) point(dst *core.Screen, x, y float64, glyph rune, c core.Color) {
	v.fill(dst, core.NewRect(v.col(x), v.row(y), 1, 1), glyph, c)
}

func (v view) blinkOn() bool {
	return (v.snap.Frame/blinkEvery)%2 == 0
}

func (v view) drawScenery(dst *core.Screen) {
	for _, d := range v.snap.Decorations {
		r := v.cells(d.X, d.Y, d.W, d.H)
		switch d.Kind {
		case world.DecorHill:
			v.fill(dst, r, HillChar, core.ColorGreen)
		case world.DecorBush:
			v.fill(dst, r, BushChar, core.ColorBrightGreen)
		case world.DecorCloud:
			v.fill(dst, r, CloudChar, core.ColorWhite)
		}
	}
}

// drawGround fills everything below the ground line outside the dungeon,
// which brings its own floor.
func (v view) drawGround(dst *core.Screen) {
	if v.snap.Mode == world.ModeDungeon {
		return
	}
	y := v.row(v.snap.GroundY)
	v.fill(dst, core.NewRect(0, y, dst.Width(), 1), GroundTopChar, core.ColorGreen)
	v.fill(dst, core.NewRect(0, y+1, dst.Width(), dst.Height()), GroundFillChar, core.ColorBrown)
}

func (v view) drawPlatforms(dst *core.Screen) {
	for _, p := range v.snap.Platforms {
		glyph, color := platformStyle(p.Surface)
		if p.Ghost != nil {
			switch p.Ghost.Phase() {
			case world.PhaseBlinking:
				if !v.blinkOn() {
					glyph, color = GhostFadeChar, core.ColorGray
				}
			case world.PhasePassable:
				glyph, color = GhostFadeChar, core.ColorGray
			}
		}
		v.fill(dst, v.cells(p.X, p.Y, p.W, p.H), glyph, color)
	}
}

func platformStyle(s world.Surface) (rune, core.Color) {
	switch s {
	case world.SurfacePipe:
		return PipeChar, core.ColorGreen
	case world.SurfaceGoldPipe:
		return PipeChar, core.ColorGold
	case world.SurfaceBlock:
		return BlockChar, core.ColorYellow
	case world.SurfaceIce:
		return IceChar, core.ColorIce
	case world.SurfaceBouncy:
		return BouncyChar, core.ColorPink
	default:
		return BrickChar, core.ColorOrange
	}
}

func (v view) drawPowerUps(dst *core.Screen) {
	for _, pu := range v.snap.PowerUps {
		glyph, color := powerUpStyle(pu.Kind)
		v.point(dst, pu.X+pu.W/2, pu.Y+pu.H/2, glyph, color)
	}
}

func powerUpStyle(k world.PowerUpKind) (rune, core.Color) {
	switch k {
	case world.PowerStar:
		return '*', core.ColorBrightYellow
	case world.PowerWings:
		return 'w', core.ColorBrightCyan
	case world.PowerShield:
		return 'O', core.ColorCyan
	default:
		return 'o', core.ColorGold
	}
}

func (v view) drawEnemies(dst *core.Screen) {
	for _, e := range v.snap.Enemies {
		glyph, color := enemyStyle(e.Kind)
		r := v.cells(e.X, e.Y, e.W, e.H)
		v.fill(dst, r, glyph, color)
		if e.Boss != nil && e.Boss.MaxHP > 0 {
			v.drawHealth(dst, r, e.Boss.HP, e.Boss.MaxHP)
		}
	}
}

func enemyStyle(k world.EnemyKind) (rune, core.Color) {
	switch k {
	case world.KindBoss:
		return BossChar, core.ColorRed
	case world.KindHazard:
		return HazardChar, core.ColorBrightWhite
	case world.KindEagle:
		return EagleChar, core.ColorGray
	case world.KindStork:
		return StorkChar, core.ColorWhite
	case world.KindDragon:
		return DragonChar, core.ColorBrightRed
	case world.KindGorilla:
		return GorillaChar, core.ColorGray
	default:
		return WalkerChar, core.ColorBrown
	}
}

// drawHealth draws a bar one row above the boss, filled in proportion to
// the remaining hit points.
func (v view) drawHealth(dst *core.Screen, r core.Rect, hp, maxHP int) {
	width := r.W
	filled := max(width*hp/maxHP, 1)
	for i := range width {
		glyph, color := '▬', core.ColorRed
		if i >= filled {
			glyph, color = '─', core.ColorGray
		}
		v.fill(dst, core.NewRect(r.X+i, r.Y-1, 1, 1), glyph, color)
	}
}

func (v view) drawActors(dst *core.Screen) {
	for _, a := range v.snap.Actors {
		switch a.Kind {
		case world.ActorWolf:
			v.fill(dst, v.cells(a.X, a.Y, a.W, a.H), WolfChar, core.ColorGray)
		case world.ActorDebris:
			v.point(dst, a.X, a.Y, DebrisChar, core.ColorGold)
		}
	}
}

func (v view) drawPlayer(dst *core.Screen) {
	p := v.snap.Player
	w, h := p.W, p.H
	if p.Pose != nil {
		if p.Pose.Dead {
			return
		}
		w, h = p.W*p.Pose.Scale, p.H*p.Pose.Scale
	}

	color := core.ColorBrown
	switch {
	case p.Invincible > 0 && v.blinkOn():
		color = core.ColorBrightYellow
	case p.Flight > 0:
		color = core.ColorBrightCyan
	}
	r := v.cells(p.X, p.Y, w, h)
	v.fill(dst, r, PlayerChar, color)

	if p.Shield {
		v.fill(dst, core.NewRect(r.X-1, r.Y, 1, r.H), '(', core.ColorCyan)
		v.fill(dst, core.NewRect(r.Right(), r.Y, 1, r.H), ')', core.ColorCyan)
	}
}

func (v view) drawParticles(dst *core.Screen) {
	for _, pt := range v.snap.Particles {
		v.point(dst, pt.X, pt.Y, ParticleChar, pt.Color)
	}
}

// renderHUD draws score, lives, shield, boss tally, distance and pace.
func (g *Game) renderHUD(dst *core.Screen, snap world.Snapshot) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("SCORE %06d", snap.Score), core.ColorBrightWhite)

	lives := strings.Repeat(string(LifeChar), max(snap.Lives, 0))
	dst.DrawTextColored(16, 0, lives, core.ColorRed)
	x := 16 + snap.Lives + 1
	if snap.Shield {
		dst.DrawTextColored(x, 0, "SHIELD", core.ColorCyan)
	}

	right := fmt.Sprintf("BOSS %d/%d  %dm  x%.1f",
		snap.Bosses, g.cfg.Combat.BossesToVictory,
		int(snap.Distance/g.cfg.Render.CellWidth), snap.Multiplier)
	if snap.Mode == world.ModeDungeon {
		right = "DUNGEON  " + right
	}
	dst.DrawTextColored(dst.Width()-len([]rune(right))-1, 0, right, core.ColorYellow)
}

// renderOverlay draws the title, pause and result panels.
func (g *Game) renderOverlay(dst *core.Screen, snap world.Snapshot) {
	switch g.screen {
	case world.ScreenMenu:
		lines := []string{
			"REVENGE OF THE GOOMBA",
			"",
			"Stomp three bosses to win",
			"Arrows/WASD move  Space jump",
			"Down on a golden pipe: dungeon",
			"",
		}
		if g.best > 0 {
			lines = append(lines, fmt.Sprintf("High score: %d", g.best), "")
		}
		lines = append(lines, "Press ENTER to start")
		g.drawPanel(dst, core.ColorBrightYellow, lines)
	case world.ScreenPlaying:
		if g.paused {
			g.drawPanel(dst, core.ColorWhite, []string{"PAUSED", "", "P to resume"})
		}
	case world.ScreenGameOver:
		lines := []string{
			"GAME OVER",
			"",
			g.world.DeathCause(),
			fmt.Sprintf("Score: %d", snap.Score),
		}
		lines = append(lines, g.bestLine(snap.Score)...)
		if g.caption != "" {
			lines = append(lines, "", g.caption)
		}
		lines = append(lines, "", "R restart  ESC menu")
		g.drawPanel(dst, core.ColorBrightRed, lines)
	case world.ScreenVictory:
		// The cutscene plays first; the panel follows once the wolf has eaten.
		if snap.Player.Pose != nil && !snap.Player.Pose.Dead {
			return
		}
		lines := []string{
			"VICTORY",
			"",
			fmt.Sprintf("Score: %d", snap.Score),
		}
		lines = append(lines, g.bestLine(snap.Score)...)
		if g.caption != "" {
			lines = append(lines, "", g.caption)
		}
		lines = append(lines, "", "R play again  ESC menu")
		g.drawPanel(dst, core.ColorBrightGreen, lines)
	}
}

// bestLine reports the stored best under a result. A score that matches
// or beats it is announced as a new record.
func (g *Game) bestLine(score int) []string {
	switch {
	case g.best <= 0:
		return nil
	case score >= g.best:
		return []string{"NEW HIGH SCORE!"}
	default:
		return []string{fmt.Sprintf("Best: %d", g.best)}
	}
}

// drawPanel draws a bordered box of centered lines in the middle of dst.
func (g *Game) drawPanel(dst *core.Screen, c core.Color, lines []string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	width = min(width+4, dst.Width())
	height := min(len(lines)+2, dst.Height())
	r := core.NewRect((dst.Width()-width)/2, (dst.Height()-height)/2, width, height)

	dst.FillRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, c)
	for i, l := range lines {
		if i+1 >= height-1 {
			break
		}
		color := core.ColorWhite
		if i == 0 {
			color = c
		}
		dst.DrawTextCentered(r.Y+1+i, l, color)
	}
}
