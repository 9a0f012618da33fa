package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-montecarlo-tracer/pkg/output"
	"github.com/df07/go-montecarlo-tracer/pkg/scene"
)

func TestRenderCommand(t *testing.T) {
	tests := []struct {
		name      string
		sceneName string
		file      string
	}{
		{"ppm output", "two-spheres", "frame.ppm"},
		{"png output", "cornell-box", "frame.png"},
		{"nested directory", "two-perlin-spheres", filepath.Join("renders", "perlin.bmp")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), tt.file)
			args := []string{"tracer", "render",
				"--scene", tt.sceneName,
				"--width", "8",
				"--spp", "2",
				"--depth", "3",
				"--workers", "2",
				"--seed", "7",
				"--out", out,
			}

			if err := newApp().Run(args); err != nil {
				t.Fatalf("render failed: %v", err)
			}

			info, err := os.Stat(out)
			if err != nil {
				t.Fatalf("expected output file: %v", err)
			}
			if info.Size() == 0 {
				t.Error("output file is empty")
			}
		})
	}
}

func TestRenderCommand_PPMHeader(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.ppm")
	args := []string{"tracer", "render", "--width", "16", "--spp", "1", "--depth", "2", "--seed", "1", "--out", out, "two-spheres"}
	if err := newApp().Run(args); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	// 16 / (16/9) = 9 rows, one "r g b" line per pixel after a three-line header
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if lines[0] != "P3" || lines[1] != "16 9" || lines[2] != "255" {
		t.Fatalf("unexpected header %q", lines[:3])
	}
	if len(lines) != 3+16*9 {
		t.Errorf("expected %d lines, got %d", 3+16*9, len(lines))
	}
}

func TestRenderCommand_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		args     []string
		expected error
	}{
		{"unknown scene", []string{"--scene", "teapot", "--out", filepath.Join(dir, "a.png")}, scene.ErrUnknownScene},
		{"unsupported format", []string{"--scene", "two-spheres", "--out", filepath.Join(dir, "a.exr")}, output.ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"tracer", "render", "--width", "4", "--spp", "1"}, tt.args...)
			err := newApp().Run(args)
			if !errors.Is(err, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestListScenesCommand(t *testing.T) {
	var buf bytes.Buffer
	app := newApp()
	app.Writer = &buf

	if err := app.Run([]string{"tracer", "list-scenes"}); err != nil {
		t.Fatalf("list-scenes failed: %v", err)
	}

	for _, name := range scene.Names() {
		if !strings.Contains(buf.String(), name) {
			t.Errorf("expected %q in listing:\n%s", name, buf.String())
		}
	}
}

func TestGlobalFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"verbose", []string{"tracer", "-v", "list-scenes"}},
		{"very verbose", []string{"tracer", "-vv", "list-scenes"}},
		{"version", []string{"tracer", "--version"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			app := newApp()
			app.Writer = &buf

			if err := app.Run(tt.args); err != nil {
				t.Fatalf("run failed: %v", err)
			}
			if buf.Len() == 0 {
				t.Error("expected output")
			}
		})
	}
}
