package prefabs

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

func useDiskDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	prev := DiskDir
	DiskDir = dir
	t.Cleanup(func() { DiskDir = prev })
	return dir
}

func TestLoadEmbeddedBallSpec(t *testing.T) {
	useDiskDir(t)

	spec, err := LoadBallSpec("ball")
	if err != nil {
		t.Fatalf("load ball: %v", err)
	}
	if spec.Circle.Radius != 25 {
		t.Fatalf("expected radius 25, got %v", spec.Circle.Radius)
	}
	if spec.Window.Width != 800 || spec.Window.Height != 500 {
		t.Fatalf("expected 800x500 window, got %dx%d", spec.Window.Width, spec.Window.Height)
	}
	if spec.GravityValue() != 9.8 || spec.RestitutionValue() != 0.6 {
		t.Fatalf("unexpected physics %v %v", spec.GravityValue(), spec.RestitutionValue())
	}
	r, g, b, a := spec.Circle.Color.RGBA()
	if r != 0 || g != 0 || b != 0 || a != 0xffff {
		t.Fatalf("expected opaque black, got %v %v %v %v", r, g, b, a)
	}
}

func TestDiskOverridesEmbedded(t *testing.T) {
	dir := useDiskDir(t)
	data := []byte("circle:\n  radius: 40\nphysics:\n  gravity: 0\n")
	if err := os.WriteFile(filepath.Join(dir, "ball.yaml"), data, 0o644); err != nil {
		t.Fatal(err)
	}

	spec, err := LoadBallSpec("prefabs/ball.yaml")
	if err != nil {
		t.Fatalf("load ball: %v", err)
	}
	if spec.Circle.Radius != 40 {
		t.Fatalf("expected disk radius 40, got %v", spec.Circle.Radius)
	}
	if spec.GravityValue() != 0 {
		t.Fatalf("explicit zero gravity must survive defaults, got %v", spec.GravityValue())
	}
	if spec.RestitutionValue() != 0.6 {
		t.Fatalf("expected default restitution, got %v", spec.RestitutionValue())
	}
	if spec.Window.Title != "dragball" {
		t.Fatalf("expected default title, got %q", spec.Window.Title)
	}
}

func TestLoadBallSpecErrors(t *testing.T) {
	dir := useDiskDir(t)

	cases := []struct {
		name    string
		body    string
		wantErr error
	}{
		{"negative_radius", "circle:\n  radius: -1\n", ErrInvalidSpec},
		{"restitution_too_high", "physics:\n  restitution: 1.5\n", ErrInvalidSpec},
		{"negative_window", "window:\n  width: -10\n", ErrInvalidSpec},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			file := c.name + ".yaml"
			if err := os.WriteFile(filepath.Join(dir, file), []byte(c.body), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadBallSpec(file); !errors.Is(err, c.wantErr) {
				t.Fatalf("expected %v, got %v", c.wantErr, err)
			}
		})
	}

	if _, err := LoadBallSpec("missing"); err == nil {
		t.Fatalf("expected error for missing prefab")
	}

	if err := os.WriteFile(filepath.Join(dir, "badcolor.yaml"), []byte("circle:\n  color: \"#12\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBallSpec("badcolor"); err == nil {
		t.Fatalf("expected error for malformed color")
	}
}

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#ff8000", color.NRGBA{R: 0xff, G: 0x80, B: 0x00, A: 0xff}, false},
		{"00ff0080", color.NRGBA{G: 0xff, A: 0x80}, false},
		{"#fff", color.NRGBA{}, true},
		{"#zzzzzz", color.NRGBA{}, true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseHexColor(c.in)
			if (err != nil) != c.wantErr {
				t.Fatalf("ParseHexColor(%q) err = %v, wantErr %v", c.in, err, c.wantErr)
			}
			if !c.wantErr && got != c.want {
				t.Fatalf("ParseHexColor(%q) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestYAMLColorRejectsNonScalar(t *testing.T) {
	var out struct {
		Color YAMLColor `yaml:"color"`
	}
	if err := yaml.Unmarshal([]byte("color: [1, 2]\n"), &out); err == nil {
		t.Fatalf("expected error for sequence color")
	}
}

func TestLoadScript(t *testing.T) {
	useDiskDir(t)
	for _, name := range []string{"wind", "scripts/drag.tengo", "prefabs/scripts/wind.tengo"} {
		data, err := LoadScript(name)
		if err != nil || len(data) == 0 {
			t.Fatalf("LoadScript(%q): %v", name, err)
		}
	}
}

func TestRelevantEvents(t *testing.T) {
	cases := []struct {
		event fsnotify.Event
		want  bool
	}{
		{fsnotify.Event{Name: "prefabs/ball.yaml", Op: fsnotify.Write}, true},
		{fsnotify.Event{Name: "prefabs/ball.YML", Op: fsnotify.Create}, true},
		{fsnotify.Event{Name: "prefabs/scripts/wind.tengo", Op: fsnotify.Rename}, true},
		{fsnotify.Event{Name: "prefabs/ball.yaml", Op: fsnotify.Chmod}, false},
		{fsnotify.Event{Name: "prefabs/notes.txt", Op: fsnotify.Write}, false},
	}
	for _, c := range cases {
		if got := relevant(c.event); got != c.want {
			t.Fatalf("relevant(%v) = %v, want %v", c.event, got, c.want)
		}
	}
}
