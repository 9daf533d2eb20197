package world

import (
	"math"

	"github.com/vovakirdan/goomba-arcade/internal/core"
)

// Body is the state every moving entity shares.
type Body struct {
	X, Y        float64
	W, H        float64
	VX, VY      float64
	Grounded    bool
	FacingRight bool
}

// Box returns the collision box.
func (b *Body) Box() core.Box {
	return core.Box{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Bottom returns the y-coordinate of the feet.
func (b *Body) Bottom() float64 {
	return b.Y + b.H
}

// Player is the single controllable entity.
type Player struct {
	Body
	Invincible  int // ticks of damage immunity left
	Flight      int // ticks of unlimited jumping left
	ShieldTimer int
	Shield      bool
	Jumps       int  // charges left until the next landing
	HasMoved    bool // contact with enemies is ignored until the first intentional move

	// Pose is non-nil only while the ending cutscene plays.
	Pose *Pose
}

// Pose is the player's cutscene-only presentation state.
type Pose struct {
	Scale float64
	Dead  bool
}

// EnemyKind discriminates the enemy variants.
type EnemyKind int

const (
	KindWalker EnemyKind = iota
	KindBoss
	KindHazard
	KindEagle
	KindStork
	KindDragon
	KindGorilla
)

func (k EnemyKind) String() string {
	switch k {
	case KindWalker:
		return "walker"
	case KindBoss:
		return "boss"
	case KindHazard:
		return "piano"
	case KindEagle:
		return "eagle"
	case KindStork:
		return "stork"
	case KindDragon:
		return "dragon"
	case KindGorilla:
		return "gorilla"
	default:
		return "unknown"
	}
}

// IsBoss reports whether the kind carries hit points.
func (k EnemyKind) IsBoss() bool {
	return k == KindBoss || k == KindDragon || k == KindGorilla
}

// IsFlyer reports whether the kind ignores gravity and platforms.
func (k EnemyKind) IsFlyer() bool {
	return k == KindEagle || k == KindStork
}

// Enemy is any hostile entity. Boss is non-nil exactly when Kind.IsBoss().
type Enemy struct {
	Body
	Kind EnemyKind
	Boss *BossState
}

// BossState holds the hit points of a boss kind.
type BossState struct {
	HP      int
	MaxHP   int
	Variant int
}

func newEnemy(kind EnemyKind, x, y, size, vx float64) Enemy {
	return Enemy{
		Body: Body{X: x, Y: y, W: size, H: size, VX: vx},
		Kind: kind,
	}
}

func newBoss(kind EnemyKind, x, y, size, vx float64, hp, variant int) Enemy {
	e := newEnemy(kind, x, y, size, vx)
	e.Boss = &BossState{HP: hp, MaxHP: hp, Variant: variant}
	return e
}

// ActorKind discriminates cutscene actors.
type ActorKind int

const (
	ActorWolf ActorKind = iota
	ActorDebris
)

// Actor is a scripted cutscene entity; it never takes part in combat.
type Actor struct {
	Body
	Kind ActorKind
}

// Surface is the type of a platform's top.
type Surface int

const (
	SurfaceBrick Surface = iota
	SurfacePipe
	SurfaceGoldPipe
	SurfaceBlock
	SurfaceIce
	SurfaceBouncy
)

func (s Surface) String() string {
	switch s {
	case SurfaceBrick:
		return "brick"
	case SurfacePipe:
		return "pipe"
	case SurfaceGoldPipe:
		return "gold-pipe"
	case SurfaceBlock:
		return "block"
	case SurfaceIce:
		return "ice"
	case SurfaceBouncy:
		return "bouncy"
	default:
		return "unknown"
	}
}

// Oscillation moves a platform vertically between MinY and MaxY.
type Oscillation struct {
	MinY, MaxY float64
	Dir        float64 // +1 down, -1 up
	Speed      float64
}

// GhostPhase is where a ghost platform is in its solidity cycle.
type GhostPhase int

const (
	PhaseSolid GhostPhase = iota
	PhaseBlinking
	PhasePassable
)

// Ghost is the intermittent-solidity timer of a ghost platform.
type Ghost struct {
	Timer    float64
	Period   float64
	BlinkAt  float64
	VanishAt float64
}

// Phase derives the cycle phase from the accumulated timer.
func (g *Ghost) Phase() GhostPhase {
	c := math.Mod(g.Timer, g.Period)
	switch {
	case c < g.BlinkAt:
		return PhaseSolid
	case c < g.VanishAt:
		return PhaseBlinking
	default:
		return PhasePassable
	}
}

// Platform is static or oscillating terrain the player can land on.
type Platform struct {
	X, Y, W, H float64
	Surface    Surface
	Motion     *Oscillation // nil for fixed platforms
	Ghost      *Ghost       // nil for always-solid platforms
}

// Box returns the collision box.
func (p *Platform) Box() core.Box {
	return core.Box{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// Solid reports whether bodies can land on the platform this tick.
// Blinking ghosts are still solid.
func (p *Platform) Solid() bool {
	return p.Ghost == nil || p.Ghost.Phase() != PhasePassable
}

// PowerUpKind discriminates pickups.
type PowerUpKind int

const (
	PowerCoin PowerUpKind = iota
	PowerStar
	PowerWings
	PowerShield
)

func (k PowerUpKind) String() string {
	switch k {
	case PowerCoin:
		return "coin"
	case PowerStar:
		return "star"
	case PowerWings:
		return "wings"
	case PowerShield:
		return "shield"
	default:
		return "unknown"
	}
}

// PowerUp floats around BaseY and is consumed on first overlap.
type PowerUp struct {
	X, Y, W, H float64
	Kind       PowerUpKind
	BaseY      float64
	Phase      float64
}

// Box returns the collision box.
func (p *PowerUp) Box() core.Box {
	return core.Box{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// DecorationKind discriminates scenery.
type DecorationKind int

const (
	DecorHill DecorationKind = iota
	DecorBush
	DecorCloud
)

// Decoration is scenery; it never collides.
type Decoration struct {
	X, Y, W, H float64
	Kind       DecorationKind
}

// Particle is a short-lived visual effect.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // 1 at spawn, removed at 0
	Size   float64
	Color  core.Color
}
