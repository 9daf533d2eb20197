// Package flavor produces the one-line quip shown on the result screens.
// Generators may be slow or remote; Quip never fails and never blocks past
// its context.
package flavor

import (
	"context"
	"hash/fnv"
	"strconv"
	"strings"

	"github.com/vovakirdan/goomba-arcade/internal/config"
)

// Fallback is shown when a generator fails or times out.
const Fallback = "Game Over. Connection to the Mushroom Kingdom lost."

// EmptyFallback is shown when a generator succeeds with nothing to say.
const EmptyFallback = "Game Over. The plumber always wins..."

// DefaultMaxWords caps a quip when the config leaves it unset.
const DefaultMaxWords = 20

// Generator turns a finished round into a short line of text.
type Generator interface {
	Generate(ctx context.Context, score int, cause string) (string, error)
}

// Quip asks gen for a line and cleans it up. Errors degrade to Fallback.
func Quip(ctx context.Context, gen Generator, score int, cause string, maxWords int) string {
	if gen == nil {
		return Fallback
	}
	text, err := gen.Generate(ctx, score, cause)
	if err != nil {
		return Fallback
	}
	text = clean(text, maxWords)
	if text == "" {
		return EmptyFallback
	}
	return text
}

// clean strips wrapping quotes and whitespace and truncates to maxWords.
func clean(text string, maxWords int) string {
	text = strings.TrimSpace(text)
	text = strings.Trim(text, "\"'“”")
	words := strings.Fields(text)
	if maxWords <= 0 {
		maxWords = DefaultMaxWords
	}
	if len(words) > maxWords {
		words = words[:maxWords]
	}
	return strings.Join(words, " ")
}

// FromConfig returns an HTTP generator when an endpoint is configured and
// the static phrase bank otherwise.
func FromConfig(cfg config.Flavor) Generator {
	if cfg.Endpoint == "" {
		return Static{}
	}
	return NewHTTP(cfg.Endpoint, cfg.Timeout())
}

// Static picks from a built-in phrase bank. The choice is stable for a
// given score and cause.
type Static struct{}

var phrases = map[string][]string{
	"": {
		"You came, you jumped, you were stomped. Classic.",
		"Every pipe leads somewhere. Yours led nowhere.",
		"The mushrooms will sing of this. Briefly. Off key.",
	},
	"Crushed by Piano": {
		"Music lessons are mandatory now. Especially for you.",
		"That was a grand piano. You were not grand.",
		"Look up next time. Pianos are notoriously quiet until they aren't.",
	},
	"Defeated by Boss": {
		"The boss sends regards. And a bill for the dents.",
		"Big enemy, small Goomba, predictable ending.",
		"You brought feet to a boss fight.",
	},
	"Killed by Enemy": {
		"Bested by a rank and file minion. Embarrassing for us all.",
		"Even the turtles are laughing. Turtles never laugh.",
		"Walk softly and stomp harder next time.",
	},
}

// Generate returns a phrase for the cause, seasoned with the score.
func (Static) Generate(_ context.Context, score int, cause string) (string, error) {
	bank, ok := phrases[cause]
	if !ok {
		bank = phrases[""]
	}
	h := fnv.New32a()
	h.Write([]byte(cause))
	h.Write([]byte(strconv.Itoa(score)))
	return bank[int(h.Sum32()%uint32(len(bank)))], nil
}
