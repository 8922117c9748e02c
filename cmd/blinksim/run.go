package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/whoateallthepi/ledsequencer/board"
	"github.com/whoateallthepi/ledsequencer/ledpattern"
)

func newRunCmd() *cobra.Command {
	var (
		cycles int
		speed  float64
		start  = kindValue(ledpattern.Fast)
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Play the patterns in real time",
		Long:  `Runs the sequencer against a terminal led using the same busy-wait delay as the board. Ctrl-C stops it between patterns.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cycles < 1 {
				return errors.New("--cycles must be at least 1")
			}
			if speed <= 0 {
				return errors.New("--speed must be positive")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			p, err := board.Take()
			if err != nil {
				return fmt.Errorf("take peripherals: %w", err)
			}
			defer p.Release()
			clocks, err := p.FreezeClocks(board.DefaultClockConfig)
			if err != nil {
				return fmt.Errorf("freeze clocks: %w", err)
			}
			delay, err := board.NewDelay(clocks)
			if err != nil {
				return fmt.Errorf("delay: %w", err)
			}

			logger := slog.Default()
			led := newTermLED(cmd.OutOrStdout())
			seq := ledpattern.NewSequencer(led, scaledDelay{delay, speed},
				ledpattern.WithStart(ledpattern.Kind(start)),
				ledpattern.WithLogger(logger))

			logger.Info("running", "clocks", clocks.String(), "cycles", cycles, "speed", speed)
			for i := 0; i < cycles*ledpattern.NumKinds; i++ {
				if ctx.Err() != nil {
					logger.Info("interrupted", "next", seq.Current().String())
					return nil
				}
				led.mark(seq.Current())
				seq.Step()
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&cycles, "cycles", "n", 1, "full cycles of all four patterns to play")
	cmd.Flags().Float64Var(&speed, "speed", 1, "play this many times faster than real time")
	cmd.Flags().VarP(&start, "start", "s", "first pattern (fast, slow, sos, breathing)")
	return cmd
}

// scaledDelay divides every delay by speed.
type scaledDelay struct {
	d     *board.Delay
	speed float64
}

func (s scaledDelay) DelayMs(ms uint32) {
	s.d.Wait(time.Duration(float64(ms) * float64(time.Millisecond) / s.speed))
}

// termLED prints each change of the led with the time since the run started.
type termLED struct {
	w     io.Writer
	start time.Time
}

func newTermLED(w io.Writer) *termLED {
	return &termLED{w: w, start: time.Now()}
}

func (t *termLED) Activate() {
	fmt.Fprintf(t.w, "%9.3fs  on\n", time.Since(t.start).Seconds())
}

func (t *termLED) Deactivate() {
	fmt.Fprintf(t.w, "%9.3fs  off\n", time.Since(t.start).Seconds())
}

func (t *termLED) mark(k ledpattern.Kind) {
	fmt.Fprintf(t.w, "%9.3fs  -- %s\n", time.Since(t.start).Seconds(), k)
}
