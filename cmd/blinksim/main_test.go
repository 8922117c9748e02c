package main

import (
	"bytes"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestTimeline_All(t *testing.T) {
	out, err := execute(t, "timeline")
	if err != nil {
		t.Fatalf("timeline error = %v", err)
	}

	for _, want := range []string{
		"fast (3 pulses, 1600ms)",
		"slow (2 pulses, 3000ms)",
		"sos (9 pulses, 7200ms)",
		"breathing (20 pulses, 2500ms)",
		"cycle 14300ms",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestTimeline_Named(t *testing.T) {
	out, err := execute(t, "timeline", "SOS")
	if err != nil {
		t.Fatalf("timeline error = %v", err)
	}
	if strings.Contains(out, "fast") || strings.Contains(out, "cycle") {
		t.Errorf("unexpected output for single pattern:\n%s", out)
	}
	if !strings.Contains(out, "on 600ms off 200ms") {
		t.Errorf("output missing long pulse:\n%s", out)
	}
	if !strings.Contains(out, "12   5200ms  pause 2000ms") {
		t.Errorf("output missing trailing pause:\n%s", out)
	}
}

func TestTimeline_BadPattern(t *testing.T) {
	if _, err := execute(t, "timeline", "strobe"); err == nil {
		t.Error("timeline strobe should fail")
	}
}

func TestRun(t *testing.T) {
	out, err := execute(t, "run", "--speed", "1000", "--start", "breathing", "--log-level", "warn")
	if err != nil {
		t.Fatalf("run error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	var on, off, marks []string
	for _, l := range lines {
		switch {
		case strings.HasSuffix(l, " on"):
			on = append(on, l)
		case strings.HasSuffix(l, " off"):
			off = append(off, l)
		case strings.Contains(l, "-- "):
			marks = append(marks, strings.TrimSpace(l[strings.Index(l, "--")+3:]))
		}
	}

	// 3 + 2 + 9 + 20 pulses in one cycle
	if len(on) != 34 || len(off) != 34 {
		t.Errorf("on/off lines = %d/%d, want 34/34", len(on), len(off))
	}
	want := []string{"breathing", "fast", "slow", "sos"}
	if strings.Join(marks, ",") != strings.Join(want, ",") {
		t.Errorf("patterns = %v, want %v", marks, want)
	}
	if !strings.HasSuffix(lines[len(lines)-1], " off") {
		t.Errorf("last line = %q, want led off", lines[len(lines)-1])
	}
}

func TestRun_Twice(t *testing.T) {
	for i := 0; i < 2; i++ {
		if _, err := execute(t, "run", "--speed", "1000", "--log-level", "warn"); err != nil {
			t.Fatalf("run %d error = %v", i+1, err)
		}
	}
}

func TestRun_BadFlags(t *testing.T) {
	tests := [][]string{
		{"run", "--cycles", "0"},
		{"run", "--speed", "0"},
		{"run", "--start", "strobe"},
		{"run", "--log-level", "loud"},
	}
	for _, args := range tests {
		if _, err := execute(t, args...); err == nil {
			t.Errorf("%v should fail", args)
		}
	}
}

func TestLevelValue(t *testing.T) {
	var l levelValue
	if err := l.Set("DEBUG"); err != nil {
		t.Fatal(err)
	}
	if l.String() != "debug" {
		t.Errorf("String() = %q, want debug", l.String())
	}
}
