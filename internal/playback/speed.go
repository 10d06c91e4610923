package playback

import (
	"errors"
	"fmt"
	"time"
)

var ErrUnknownSpeed = errors.New("playback: unknown speed")

// Speed is a named tick interval tier.
type Speed string

const (
	SpeedSlow   Speed = "slow"
	SpeedNormal Speed = "normal"
	SpeedFast   Speed = "fast"
)

// DefaultInterval is the interval of a fresh player.
const DefaultInterval = time.Second

// The tier to interval mapping is fixed; external tools rely on it to
// reproduce identical timing.
var speedIntervals = map[Speed]time.Duration{
	SpeedSlow:   2000 * time.Millisecond,
	SpeedNormal: 1000 * time.Millisecond,
	SpeedFast:   500 * time.Millisecond,
}

// Speeds lists the tiers from slowest to fastest.
func Speeds() []Speed {
	return []Speed{SpeedSlow, SpeedNormal, SpeedFast}
}

func ParseSpeed(s string) (Speed, error) {
	sp := Speed(s)
	if _, ok := speedIntervals[sp]; !ok {
		return "", fmt.Errorf("%w: %q (want slow, normal or fast)", ErrUnknownSpeed, s)
	}
	return sp, nil
}

// Interval returns the tier's tick interval. Unknown tiers map to normal.
func (s Speed) Interval() time.Duration {
	if d, ok := speedIntervals[s]; ok {
		return d
	}
	return speedIntervals[SpeedNormal]
}

// SpeedOf labels an interval: exact slow and fast intervals get their tier,
// anything else reads as normal.
func SpeedOf(d time.Duration) Speed {
	switch d {
	case speedIntervals[SpeedSlow]:
		return SpeedSlow
	case speedIntervals[SpeedFast]:
		return SpeedFast
	default:
		return SpeedNormal
	}
}
