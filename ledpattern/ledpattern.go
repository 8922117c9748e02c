// ledpattern drives a single led through four fixed blink patterns, one after the other,
// forever. Each pattern runs to completion before the next one starts.
//
// The patterns
// ************
//
//	Fast		3 x (on 100, off 100), pause 1000
//	Slow		2 x (on 500, off 500), pause 1000
//	SOS		3 short, 3 long, 3 short - see sosShort / sosLong - pause 2000
//	Breathing	10 pulses getting longer, 10 getting shorter, pause 500
//
// All times are milliseconds. Breathing is 'simulated with PWM-like blinking': every pulse
// is 100ms long and only the on part changes, so the led visibly blinks rather than fades.
//
// The led and the delay are supplied by the caller (see Output and Delayer) so the
// same sequencer runs on the board and in tests. Nothing here touches machine.
package ledpattern

import (
	"fmt"
	"strings"
)

// Kind is the index of a pattern. The sequencer moves through them in order and
// wraps back to Fast after Breathing.
type Kind uint8

// Patterns in the order they are played
const (
	Fast Kind = iota
	Slow
	SOS
	Breathing

	// NumKinds is the length of one full cycle
	NumKinds = 4
)

const (
	fastOn, fastOff, fastRepeat, fastPause = 100, 100, 3, 1000
	slowOn, slowOff, slowRepeat, slowPause = 500, 500, 2, 1000

	sosShort  = 200 // S
	sosLong   = 600 // O
	sosGap    = 200 // off time after every pulse
	sosLetter = 200 // extra pause between letters
	sosRepeat = 3
	sosPause  = 2000

	breathSteps  = 10
	breathStep   = 10  // on time grows by this much per pulse
	breathPeriod = 100 // on + off for every pulse
	breathPause  = 500
)

var kindNames = [NumKinds]string{"fast", "slow", "sos", "breathing"}

func (k Kind) String() string {
	if k < NumKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Next returns the pattern that follows k.
func (k Kind) Next() Kind {
	return (k + 1) % NumKinds
}

// ParseKind looks up a pattern by name, ignoring case. A bare index 0-3 is also accepted.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range kindNames {
		if name == n {
			return Kind(i), nil
		}
	}
	if len(name) == 1 && name[0] >= '0' && name[0] < '0'+NumKinds {
		return Kind(name[0] - '0'), nil
	}
	return 0, fmt.Errorf("unknown pattern %q (want one of %s)", s, strings.Join(kindNames[:], ", "))
}

// Pulse is one flash: the led is lit for On milliseconds then dark for Off.
type Pulse struct {
	On  uint32
	Off uint32
}

// Period is the length of the pulse in milliseconds.
func (p Pulse) Period() uint32 {
	return p.On + p.Off
}

// Step is either a pulse or a pause. A pause has a zero Pulse and keeps the led off
// for Pause milliseconds.
type Step struct {
	Pulse
	Pause uint32
}

// IsPause reports whether the step leaves the led alone.
func (s Step) IsPause() bool {
	return s.Pulse == (Pulse{})
}

// Duration of the step in milliseconds
func (s Step) Duration() uint32 {
	if s.IsPause() {
		return s.Pause
	}
	return s.Period()
}

func (s Step) String() string {
	if s.IsPause() {
		return fmt.Sprintf("pause %dms", s.Pause)
	}
	return fmt.Sprintf("on %dms off %dms", s.On, s.Off)
}

// Pattern is the full timeline for one Kind, including the pause at the end.
type Pattern struct {
	Kind  Kind
	Steps []Step
}

// Pulses returns the flashes in the pattern, without the pauses.
func (p Pattern) Pulses() []Pulse {
	pulses := make([]Pulse, 0, len(p.Steps))
	for _, s := range p.Steps {
		if !s.IsPause() {
			pulses = append(pulses, s.Pulse)
		}
	}
	return pulses
}

// Duration is the time taken to play the pattern in milliseconds.
func (p Pattern) Duration() uint32 {
	var total uint32
	for _, s := range p.Steps {
		total += s.Duration()
	}
	return total
}

// TrailingPause is the pause that ends the pattern, or 0 if it does not end with one.
func (p Pattern) TrailingPause() uint32 {
	if len(p.Steps) == 0 {
		return 0
	}
	last := p.Steps[len(p.Steps)-1]
	if !last.IsPause() {
		return 0
	}
	return last.Pause
}

// PatternFor builds the timeline for k. Values past Breathing wrap round.
func PatternFor(k Kind) Pattern {
	k %= NumKinds
	var steps []Step

	switch k {
	case Fast:
		steps = repeat(steps, Pulse{fastOn, fastOff}, fastRepeat)
		steps = pause(steps, fastPause)

	case Slow:
		steps = repeat(steps, Pulse{slowOn, slowOff}, slowRepeat)
		steps = pause(steps, slowPause)

	case SOS:
		steps = repeat(steps, Pulse{sosShort, sosGap}, sosRepeat)
		steps = pause(steps, sosLetter)
		steps = repeat(steps, Pulse{sosLong, sosGap}, sosRepeat)
		steps = pause(steps, sosLetter)
		steps = repeat(steps, Pulse{sosShort, sosGap}, sosRepeat)
		steps = pause(steps, sosPause)

	case Breathing:
		// fade in then fade out - i runs 1..10 and back 10..1
		for i := uint32(1); i <= breathSteps; i++ {
			steps = append(steps, Step{Pulse: breath(i)})
		}
		for i := uint32(breathSteps); i >= 1; i-- {
			steps = append(steps, Step{Pulse: breath(i)})
		}
		steps = pause(steps, breathPause)
	}

	return Pattern{Kind: k, Steps: steps}
}

// Patterns returns one full cycle, Fast first.
func Patterns() []Pattern {
	all := make([]Pattern, NumKinds)
	for k := Kind(0); k < NumKinds; k++ {
		all[k] = PatternFor(k)
	}
	return all
}

func breath(i uint32) Pulse {
	return Pulse{On: breathStep * i, Off: breathPeriod - breathStep*i}
}

func repeat(steps []Step, p Pulse, n int) []Step {
	for i := 0; i < n; i++ {
		steps = append(steps, Step{Pulse: p})
	}
	return steps
}

func pause(steps []Step, ms uint32) []Step {
	return append(steps, Step{Pause: ms})
}
