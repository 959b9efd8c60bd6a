package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"go-sphere-pop/internal/defs"
)

var popEnv = []string{
	"POP_VARIANT", "POP_WIDTH", "POP_HEIGHT", "POP_TARGET_DELAY", "POP_TARGET_MAX",
	"POP_BOUNCINESS", "POP_GRAVITY", "POP_HIT_RADIUS", "POP_TARGET_SIZE", "POP_DUST",
	"POP_SEED", "POP_SOUND",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range popEnv {
		t.Setenv(key, "")
	}
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.SpawnDelayTicks != 60 || cfg.MaxTargets != 10 {
		t.Errorf("spawn = %d/%d, want 60/10", cfg.SpawnDelayTicks, cfg.MaxTargets)
	}
	if cfg.Bounciness != 1.0 || cfg.Gravity != 0.15 || cfg.HitRadius != 32 {
		t.Errorf("physics = %v/%v/%v, want 1/0.15/32", cfg.Bounciness, cfg.Gravity, cfg.HitRadius)
	}
}

func TestValidateRejectsOutOfRange(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"bounciness above one", func(c *Config) { c.Bounciness = 1.01 }, ErrBounciness},
		{"negative bounciness", func(c *Config) { c.Bounciness = -0.5 }, ErrBounciness},
		{"nan bounciness", func(c *Config) { c.Bounciness = math.NaN() }, ErrBounciness},
		{"zero spawn delay", func(c *Config) { c.SpawnDelayTicks = 0 }, ErrSpawnDelay},
		{"zero max targets", func(c *Config) { c.MaxTargets = 0 }, ErrMaxTargets},
		{"negative gravity", func(c *Config) { c.Gravity = -1 }, ErrGravity},
		{"infinite gravity", func(c *Config) { c.Gravity = math.Inf(1) }, ErrGravity},
		{"zero hit radius", func(c *Config) { c.HitRadius = 0 }, ErrHitRadius},
		{"zero target size", func(c *Config) { c.TargetSize = 0 }, ErrTargetSize},
		{"empty viewport", func(c *Config) { c.ViewportHeight = 0 }, ErrViewport},
		{"negative dust", func(c *Config) { c.DustParticles = -1 }, ErrDust},
		{"unknown variant", func(c *Config) { c.Variant = "cubes" }, ErrVariant},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, tc.want) {
				t.Fatalf("Validate() = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestValidateBoundaries(t *testing.T) {
	cfg := Default()
	cfg.Bounciness = 0
	cfg.Gravity = 0
	cfg.SpawnDelayTicks = 1
	cfg.MaxTargets = 1
	cfg.DustParticles = 0
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() at lower bounds = %v", err)
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Bounciness = 2
	cfg.SpawnDelayTicks = 0
	err := cfg.Validate()
	if !errors.Is(err, ErrBounciness) || !errors.Is(err, ErrSpawnDelay) {
		t.Fatalf("Validate() = %v, want both bounciness and spawn delay errors", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(\"\") = %+v, want %+v", cfg, Default())
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "pop.json")
	body := `{"variant":"circles","max_targets":5,"bounciness":0.8}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("POP_TARGET_DELAY", "30")
	t.Setenv("POP_GRAVITY", "0.3")
	t.Setenv("POP_SOUND", "false")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Variant != defs.VariantCircles {
		t.Errorf("Variant = %q, want %q", cfg.Variant, defs.VariantCircles)
	}
	if cfg.MaxTargets != 5 {
		t.Errorf("MaxTargets = %d, want 5", cfg.MaxTargets)
	}
	if cfg.Bounciness != 0.8 {
		t.Errorf("Bounciness = %v, want 0.8", cfg.Bounciness)
	}
	if cfg.SpawnDelayTicks != 30 {
		t.Errorf("SpawnDelayTicks = %d, want 30", cfg.SpawnDelayTicks)
	}
	if cfg.Gravity != 0.3 {
		t.Errorf("Gravity = %v, want 0.3", cfg.Gravity)
	}
	if cfg.Sound {
		t.Error("Sound = true, want false")
	}
	if cfg.HitRadius != HitRadius {
		t.Errorf("HitRadius = %v, want default %v", cfg.HitRadius, HitRadius)
	}
}

func TestLoad_InvalidEnvFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("POP_TARGET_MAX", "abc")
	t.Setenv("POP_BOUNCINESS", "bouncy")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxTargets != TargetMax {
		t.Errorf("MaxTargets = %d, want %d (fallback)", cfg.MaxTargets, TargetMax)
	}
	if cfg.Bounciness != Bounciness {
		t.Errorf("Bounciness = %v, want %v (fallback)", cfg.Bounciness, Bounciness)
	}
}

func TestLoad_RejectsInvalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("POP_BOUNCINESS", "1.5")
	if _, err := Load(""); !errors.Is(err, ErrBounciness) {
		t.Fatalf("Load() = %v, want %v", err, ErrBounciness)
	}
}

func TestLoad_FileErrors(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("missing file: want error")
	}
	broken := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(broken, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(broken); err == nil {
		t.Error("broken file: want error")
	}
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("POP_TARGET_MAX")
	t.Cleanup(func() { os.Unsetenv("POP_TARGET_MAX") })

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, EnvFile), []byte("POP_TARGET_MAX=3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxTargets != 3 {
		t.Errorf("MaxTargets = %d, want 3 from %s", cfg.MaxTargets, EnvFile)
	}
}
