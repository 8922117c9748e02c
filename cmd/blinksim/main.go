// blinksim plays the led patterns on the host so their timing can be checked without
// a board attached.
//
//	blinksim timeline sos
//	blinksim run --cycles 2 --speed 4
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/whoateallthepi/ledsequencer/ledpattern"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	level := levelValue(slog.LevelInfo)

	root := &cobra.Command{
		Use:          "blinksim",
		Short:        "Simulate the led pattern sequencer",
		Long:         `blinksim prints and plays the fast, slow, SOS and breathing patterns exactly as the firmware runs them.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: slog.Level(level),
			})))
		},
	}
	root.PersistentFlags().Var(&level, "log-level", "logging level (debug, info, warn, error)")

	root.AddCommand(newTimelineCmd(), newRunCmd())
	return root
}

// levelValue is a slog.Level usable as a flag.
type levelValue slog.Level

var _ pflag.Value = (*levelValue)(nil)

func (l *levelValue) String() string {
	return strings.ToLower(slog.Level(*l).String())
}

func (l *levelValue) Set(s string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return fmt.Errorf("bad log level %q: %w", s, err)
	}
	*l = levelValue(lvl)
	return nil
}

func (l *levelValue) Type() string { return "level" }

// kindValue is a pattern name usable as a flag.
type kindValue ledpattern.Kind

var _ pflag.Value = (*kindValue)(nil)

func (k *kindValue) String() string {
	return ledpattern.Kind(*k).String()
}

func (k *kindValue) Set(s string) error {
	kind, err := ledpattern.ParseKind(s)
	if err != nil {
		return err
	}
	*k = kindValue(kind)
	return nil
}

func (k *kindValue) Type() string { return "pattern" }
