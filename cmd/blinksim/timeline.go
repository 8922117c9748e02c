package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/whoateallthepi/ledsequencer/ledpattern"
)

func newTimelineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timeline [pattern...]",
		Short: "Print the steps of each pattern",
		Long:  `Prints every pulse and pause of the named patterns, or of the whole cycle when none are named.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			patterns := ledpattern.Patterns()
			if len(args) > 0 {
				patterns = nil
				for _, a := range args {
					k, err := ledpattern.ParseKind(a)
					if err != nil {
						return err
					}
					patterns = append(patterns, ledpattern.PatternFor(k))
				}
			}

			var total uint32
			for _, p := range patterns {
				writeTimeline(cmd.OutOrStdout(), p)
				total += p.Duration()
			}
			if len(args) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "cycle %dms\n", total)
			}
			return nil
		},
	}
	return cmd
}

func writeTimeline(w io.Writer, p ledpattern.Pattern) {
	fmt.Fprintf(w, "%s (%d pulses, %dms)\n", p.Kind, len(p.Pulses()), p.Duration())

	var at uint32
	for i, st := range p.Steps {
		fmt.Fprintf(w, "  %2d %6dms  %s\n", i+1, at, st)
		at += st.Duration()
	}
}
