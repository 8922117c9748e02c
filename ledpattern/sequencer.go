package ledpattern

import (
	"io"
	"log/slog"
)

// Output is a led that can be switched on and off. Activate must light the led whatever
// the electrical polarity of the pin - see board.LED.
type Output interface {
	Activate()
	Deactivate()
}

// Delayer blocks the caller for at least ms milliseconds.
type Delayer interface {
	DelayMs(ms uint32)
}

// Sequencer plays the patterns in order, forever. It is not safe for concurrent use -
// there is one led and one caller.
type Sequencer struct {
	led     Output
	delay   Delayer
	current Kind
	logger  *slog.Logger
	cycle   [NumKinds]Pattern
}

// Option configures a Sequencer
type Option func(*Sequencer)

// WithStart sets the first pattern played. The default is Fast.
func WithStart(k Kind) Option {
	return func(s *Sequencer) {
		s.current = k % NumKinds
	}
}

// WithLogger logs each pattern as it starts, at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(s *Sequencer) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSequencer returns a sequencer positioned at Fast. The pattern timelines are built
// once here and never change.
func NewSequencer(led Output, delay Delayer, opts ...Option) *Sequencer {
	s := &Sequencer{
		led:    led,
		delay:  delay,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for k := Kind(0); k < NumKinds; k++ {
		s.cycle[k] = PatternFor(k)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Current is the pattern the next call to Step will play.
func (s *Sequencer) Current() Kind {
	return s.current
}

// Step plays the current pattern to the end, trailing pause included, then moves on
// to the next one.
func (s *Sequencer) Step() {
	p := s.cycle[s.current]
	s.logger.Debug("pattern", "kind", p.Kind.String(), "ms", p.Duration())
	Play(p, s.led, s.delay)
	s.current = s.current.Next()
}

// Run never returns. There is nothing to return to.
func (s *Sequencer) Run() {
	for {
		s.Step()
	}
}

// Play drives led through one pattern. The led is always off when a pulse
// finishes, so it is off for every pause and when Play returns.
func Play(p Pattern, led Output, delay Delayer) {
	for _, st := range p.Steps {
		if st.IsPause() {
			delay.DelayMs(st.Pause)
			continue
		}
		led.Activate()
		delay.DelayMs(st.On)
		led.Deactivate()
		delay.DelayMs(st.Off)
	}
}
