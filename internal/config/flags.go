// internal/config/flags.go
package config

import (
	"flag"
	"fmt"
	"log"

	"go-sphere-pop/internal/defs"
)

// Flags — параметры командной строки, общие для обоих фронтендов.
type Flags struct {
	ConfigPath   string
	VariantsPath string
	Variant      string
	Seed         int64
	DebugAddr    string
	Mute         bool
}

// RegisterFlags объявляет флаги в fs. Значения читаются после fs.Parse.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.ConfigPath, "config", "", "path to a JSON config file")
	fs.StringVar(&f.VariantsPath, "variants", "", "path to a JSON file with extra variant definitions")
	fs.StringVar(&f.Variant, "variant", "", "game variant (sprites, circles or a loaded one); overrides config and POP_VARIANT")
	fs.Int64Var(&f.Seed, "seed", 0, "PRNG seed, 0 picks one from the clock")
	fs.StringVar(&f.DebugAddr, "debug-addr", "", "serve pprof and /metrics on this address, e.g. localhost:6060")
	fs.BoolVar(&f.Mute, "mute", false, "disable sound")
	return f
}

// Resolve загружает варианты и конфиг, затем накладывает флаги поверх файла и окружения.
func (f *Flags) Resolve() (Config, error) {
	if f.VariantsPath != "" {
		if err := defs.LoadVariantDefinitions(f.VariantsPath); err != nil {
			return Config{}, err
		}
	}
	cfg, err := Load(f.ConfigPath)
	if err != nil {
		return Config{}, err
	}
	if f.Variant != "" {
		cfg.Variant = f.Variant
	}
	if f.Seed != 0 {
		cfg.Seed = f.Seed
	}
	if f.Mute {
		cfg.Sound = false
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid flags: %w", err)
	}
	log.Printf("config: variant=%s delay=%d max=%d bounce=%.2f gravity=%.2f",
		cfg.Variant, cfg.SpawnDelayTicks, cfg.MaxTargets, cfg.Bounciness, cfg.Gravity)
	return cfg, nil
}
