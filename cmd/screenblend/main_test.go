package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-blend/blend"
	"github.com/cwbudde/algo-blend/buffer"
	"github.com/cwbudde/algo-blend/internal/imageio"
	"github.com/cwbudde/algo-blend/internal/testutil"
)

func writeImage(t *testing.T, dir, name string, l buffer.Layout, seed int64) string {
	t.Helper()
	buf, err := buffer.FromImage(l, testutil.DeterministicBytes(seed, l.Len()))
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, name)
	if err := imageio.Save(path, buf); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseConfig(t *testing.T) {
	var stderr bytes.Buffer
	cfg, err := parseConfig([]string{"-strategy", "simd", "-lanes", "4", "-align", "copy", "a", "b", "c"}, &stderr)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.strategy != blend.StrategyVectorized {
		t.Fatalf("strategy = %v, want vectorized", cfg.strategy)
	}
	if cfg.inputs != [2]string{"a", "b"} || cfg.output != "c" {
		t.Fatalf("paths = %v -> %q", cfg.inputs, cfg.output)
	}
	got := blend.ApplyOptions(cfg.opts...)
	if got.LaneWidth != 4 || got.Alignment != blend.AlignCopy {
		t.Fatalf("config = %+v", got)
	}
}

func TestParseConfigErrors(t *testing.T) {
	for _, args := range [][]string{
		{"a", "b"},
		{"-strategy", "gpu", "a", "b", "c"},
		{"-align", "loose", "a", "b", "c"},
		{"-nosuchflag"},
	} {
		var stderr bytes.Buffer
		if _, err := parseConfig(args, &stderr); err == nil {
			t.Fatalf("parseConfig(%q) succeeded", args)
		}
	}
}

func TestRunComposite(t *testing.T) {
	dir := t.TempDir()
	l := buffer.Layout{Width: 9, Height: 4, Channels: 3}
	a := writeImage(t, dir, "a.bmp", l, 1)
	b := writeImage(t, dir, "b.bmp", l, 2)

	for _, strategy := range []string{"scalar", "threaded", "vectorized"} {
		out := filepath.Join(dir, strategy+".bmp")
		var stdout, stderr bytes.Buffer
		if code := run([]string{"-strategy", strategy, a, b, out}, &stdout, &stderr); code != 0 {
			t.Fatalf("%s: exit %d: %s", strategy, code, stderr.String())
		}
		if !strings.HasPrefix(stdout.String(), strategy+": ") {
			t.Fatalf("%s: stdout = %q", strategy, stdout.String())
		}

		got, err := imageio.Load(out)
		if err != nil {
			t.Fatal(err)
		}
		src1, _ := imageio.Load(a)
		src2, _ := imageio.Load(b)
		for i, v := range got.Samples() {
			want := float64(uint8(blend.Screen(src1.Samples()[i], src2.Samples()[i])))
			if v != want {
				t.Fatalf("%s: sample %d = %v, want %v", strategy, i, v, want)
			}
		}
	}
}

func TestRunDimensionMismatch(t *testing.T) {
	dir := t.TempDir()
	a := writeImage(t, dir, "a.bmp", buffer.Layout{Width: 4, Height: 3, Channels: 3}, 1)
	b := writeImage(t, dir, "b.bmp", buffer.Layout{Width: 3, Height: 4, Channels: 3}, 2)

	var stdout, stderr bytes.Buffer
	if code := run([]string{a, b, filepath.Join(dir, "out.bmp")}, &stdout, &stderr); code != 1 {
		t.Fatalf("exit = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "dimensions differ") {
		t.Fatalf("stderr = %q", stderr.String())
	}
}

func TestRunBackends(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-backends"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit = %d: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "generic") {
		t.Fatalf("stdout = %q, want generic backend listed", stdout.String())
	}
}
