package world

// Sound is a discrete audio cue emitted by the simulation.
type Sound int

const (
	SoundJump Sound = iota
	SoundStomp
	SoundCoin
	SoundPowerUp
	SoundShieldBreak
	SoundCrash
	SoundDie
	SoundBossThemeStart
	SoundBossThemeStop
)

func (s Sound) String() string {
	switch s {
	case SoundJump:
		return "jump"
	case SoundStomp:
		return "stomp"
	case SoundCoin:
		return "coin"
	case SoundPowerUp:
		return "powerup"
	case SoundShieldBreak:
		return "shield-break"
	case SoundCrash:
		return "crash"
	case SoundDie:
		return "die"
	case SoundBossThemeStart:
		return "boss-theme-start"
	case SoundBossThemeStop:
		return "boss-theme-stop"
	default:
		return "unknown"
	}
}

// Sink receives sound events. Play is called synchronously inside a tick
// and must not block.
type Sink interface {
	Play(Sound)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Sound)

// Play calls f(s).
func (f SinkFunc) Play(s Sound) { f(s) }

type nopSink struct{}

func (nopSink) Play(Sound) {}
