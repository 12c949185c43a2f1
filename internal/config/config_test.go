package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"beautty"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv(ConfigEnvVar, "")
	t.Setenv(LogLevelEnvVar, "")
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Terminal.Width != 80 || cfg.Terminal.Height != 24 {
		t.Errorf("terminal = %+v, want 80x24", cfg.Terminal)
	}
	if cfg.Path != "" {
		t.Errorf("Path = %q, want empty", cfg.Path)
	}
	if cfg.Engine().Remainder != beautty.RemainderLast {
		t.Error("default remainder should be last")
	}
}

func TestLoad_TOML(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")
	path := writeFile(t, "beautty.toml", `
[log]
level = "debug"

[terminal]
width = 100
height = 30

[layout]
remainder = "drop"

[styles.card]
fg = "bright_cyan"
border = true
border_variant = "double"
padding = [1, 2]
width = "50%"

[unknown]
x = 1
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
	if cfg.Terminal.Width != 100 || cfg.Terminal.Height != 30 {
		t.Errorf("terminal = %+v", cfg.Terminal)
	}
	if cfg.Engine().Remainder != beautty.RemainderDrop {
		t.Error("remainder should be drop")
	}
	if len(cfg.Warnings) == 0 {
		t.Error("expected a warning for the unknown table")
	}

	s, ok := cfg.Lookup("card")
	if !ok {
		t.Fatal("style card not found")
	}
	c := s.Resolve()
	if c.FG != beautty.BrightCyan {
		t.Errorf("FG = %v, want bright_cyan", c.FG)
	}
	if !c.Border || c.BorderVariant != beautty.VariantDouble {
		t.Errorf("border = %v/%v", c.Border, c.BorderVariant)
	}
	if c.Padding != (beautty.Edges{Top: 1, Right: 2, Bottom: 1, Left: 2}) {
		t.Errorf("Padding = %+v", c.Padding)
	}
	if c.Width != beautty.Percent(50) {
		t.Errorf("Width = %v", c.Width)
	}
}

func TestLoad_YAML(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")
	path := writeFile(t, "beautty.yaml", `
log:
  level: warn
styles:
  title:
    emphasis: [bold, underline]
    justify: space-between
    grow: 2
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
	s, ok := cfg.Lookup("title")
	if !ok {
		t.Fatal("style title not found")
	}
	c := s.Resolve()
	if !c.Emphasis.Has(beautty.AttrBold) || !c.Emphasis.Has(beautty.AttrUnderline) {
		t.Errorf("Emphasis = %v", c.Emphasis)
	}
	if c.Justify != beautty.JustifySpaceBetween {
		t.Errorf("Justify = %v", c.Justify)
	}
	if c.Grow != 2 {
		t.Errorf("Grow = %v", c.Grow)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeFile(t, "env.toml", "[log]\nlevel = \"info\"\n")
	t.Setenv(ConfigEnvVar, path)
	t.Setenv(LogLevelEnvVar, "error")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Path != path {
		t.Errorf("Path = %q, want %q", cfg.Path, path)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("Log.Level = %q, want env override", cfg.Log.Level)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Run("unsupported extension", func(t *testing.T) {
		_, err := Load(writeFile(t, "beautty.ini", "x=1"))
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("err = %v, want ErrUnsupportedFormat", err)
		}
	})
	t.Run("bad toml", func(t *testing.T) {
		if _, err := Load(writeFile(t, "bad.toml", "[log\n")); err == nil {
			t.Error("expected parse error")
		}
	})
	t.Run("unknown remainder falls back", func(t *testing.T) {
		cfg, err := Load(writeFile(t, "r.toml", "[layout]\nremainder = \"spread\"\n"))
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Layout.Remainder != "last" || len(cfg.Warnings) != 1 {
			t.Errorf("remainder = %q warnings = %v", cfg.Layout.Remainder, cfg.Warnings)
		}
	})
}

func strp(s string) *string { return &s }

func TestStyleSpec_Warnings(t *testing.T) {
	spec := StyleSpec{
		Foreground: strp("mauve"),
		Display:    strp("grid"),
		Direction:  strp("column"),
		Emphasis:   []string{"bold", "sparkle"},
	}
	s, warnings := spec.Style()
	if len(warnings) != 3 {
		t.Fatalf("warnings = %v, want 3", warnings)
	}
	if s.Has(beautty.PropFG) || s.Has(beautty.PropDisplay) {
		t.Error("invalid values must stay unset")
	}
	if !s.Has(beautty.PropDirection) {
		t.Error("valid direction should be set")
	}

	cfg := Default()
	cfg.Styles["x"] = spec
	got := cfg.StyleWarnings()
	if len(got) != 3 || !strings.HasPrefix(got[0], "styles.x: ") {
		t.Errorf("StyleWarnings() = %v", got)
	}
}

func TestStyleSpec_ExplicitFalse(t *testing.T) {
	off := false
	s, _ := StyleSpec{Border: &off}.Style()
	if !s.Has(beautty.PropBorder) {
		t.Fatal("border=false should be set, not unset")
	}
	parent := beautty.Style{}.Border(true)
	if beautty.Merge(parent, s).Resolve().Border {
		t.Error("explicit border=false should override the parent")
	}
}

func TestWatch(t *testing.T) {
	path := writeFile(t, "watch.toml", "[log]\n")
	changed := make(chan struct{}, 8)
	w, err := Watch(path, func() { changed <- struct{}{} }, nil)
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	defer w.Close()

	// Unrelated files in the same directory are ignored.
	if err := os.WriteFile(filepath.Join(filepath.Dir(path), "other.toml"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("[log]\nlevel = \"debug\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification")
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
