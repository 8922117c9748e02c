//go:build stm32f4

// Blinks the Black Pill's PC13 led through the fast, slow, SOS and breathing
// patterns, forever.
//
//	tinygo flash -target=<stm32f411 target> ./cmd/blackpill
package main

import (
	"log/slog"
	"machine"

	"github.com/whoateallthepi/ledsequencer/board"
	"github.com/whoateallthepi/ledsequencer/ledpattern"
)

func main() {
	p, err := board.Take()
	if err != nil {
		board.Halt()
	}

	clocks, err := p.FreezeClocks(board.DefaultClockConfig)
	if err != nil {
		board.Halt()
	}

	delay, err := board.NewDelay(clocks)
	if err != nil {
		board.Halt()
	}

	led := p.ConfigureLED()

	logger := slog.New(slog.NewTextHandler(machine.Serial, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	logger.Info("starting", slog.String("clocks", clocks.String()))

	seq := ledpattern.NewSequencer(led, delay, ledpattern.WithLogger(logger))
	seq.Run()
}
