// Package sound turns world sound events into something a terminal can
// express: log lines, the bell character, or both.
package sound

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/goomba-arcade/internal/world"
)

// LogSink writes every event to a logger at debug level.
type LogSink struct {
	Logger *log.Logger
}

// Play logs s.
func (l LogSink) Play(s world.Sound) {
	if l.Logger != nil {
		l.Logger.Debug("sound", "event", s.String())
	}
}

// DefaultBellSounds ring the bell. Frequent cues such as jumps and coins
// are left out.
var DefaultBellSounds = []world.Sound{
	world.SoundStomp,
	world.SoundShieldBreak,
	world.SoundCrash,
	world.SoundDie,
	world.SoundBossThemeStart,
}

// BellSink writes the terminal bell for a chosen set of events. At most one
// bell is written every minGap calls to Play, so bursts collapse.
type BellSink struct {
	mu     sync.Mutex
	w      io.Writer
	ring   map[world.Sound]bool
	minGap int
	since  int
}

// NewBellSink rings on w for the given sounds, or DefaultBellSounds when
// none are given.
func NewBellSink(w io.Writer, sounds ...world.Sound) *BellSink {
	if len(sounds) == 0 {
		sounds = DefaultBellSounds
	}
	ring := make(map[world.Sound]bool, len(sounds))
	for _, s := range sounds {
		ring[s] = true
	}
	return &BellSink{w: w, ring: ring, minGap: 4, since: 4}
}

// Play rings the bell when s is selected and the previous bell is far
// enough back.
func (b *BellSink) Play(s world.Sound) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.since++
	if !b.ring[s] || b.since < b.minGap {
		return
	}
	b.since = 0
	// Best effort; a closed terminal just loses the bell.
	_, _ = b.w.Write([]byte{'\a'})
}

// Multi fans events out to several sinks in order.
type Multi []world.Sink

// Play forwards s to every non-nil sink.
func (m Multi) Play(s world.Sound) {
	for _, sink := range m {
		if sink != nil {
			sink.Play(s)
		}
	}
}

// Counter tallies events by kind. It is safe for concurrent use.
type Counter struct {
	mu     sync.Mutex
	counts map[world.Sound]int
}

// Play records s.
func (c *Counter) Play(s world.Sound) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.counts == nil {
		c.counts = make(map[world.Sound]int)
	}
	c.counts[s]++
}

// Count returns how many times s was played.
func (c *Counter) Count(s world.Sound) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[s]
}
