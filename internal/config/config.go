// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"go-sphere-pop/internal/defs"
)

const (
	ScreenWidth    = 960
	ScreenHeight   = 512
	TicksPerSecond = 60

	TargetDelay   = 60   // тиков между попытками спавна
	TargetMax     = 10   // предел живых целей
	Bounciness    = 1.0  // 1.0 — абсолютно упругий отскок
	Gravity       = 0.15 // пикселей/тик²
	HitRadius     = 32.0 // не зависит от размера цели
	TargetSize    = 64.0
	DustParticles = 30

	ReticuleSize      = 64
	ReticuleThickness = 4

	TextOffsetX = 4
	TextOffsetY = 16

	// Мир терминала: одна клетка — 8×16 пикселей мира, чтобы физика совпадала.
	CellWidth  = 8
	CellHeight = 16
)

var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	ReticuleColor   = color.RGBA{0xa3, 0x0c, 0x00, 255}
	TextLightColor  = color.RGBA{255, 255, 255, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 128}
)

var (
	ErrVariant    = errors.New("unknown variant")
	ErrBounciness = errors.New("bounciness must be within [0, 1]")
	ErrSpawnDelay = errors.New("spawn delay must be at least 1 tick")
	ErrMaxTargets = errors.New("max targets must be at least 1")
	ErrGravity    = errors.New("gravity must be finite and non-negative")
	ErrHitRadius  = errors.New("hit radius must be positive")
	ErrTargetSize = errors.New("target size must be positive")
	ErrViewport   = errors.New("viewport must be positive")
	ErrDust       = errors.New("dust particle count must be non-negative")
)

// Config — параметры одной игровой сессии. Все значения проверяются в Validate.
type Config struct {
	Variant         string  `json:"variant"`
	ViewportWidth   int     `json:"viewport_width"`
	ViewportHeight  int     `json:"viewport_height"`
	SpawnDelayTicks int     `json:"spawn_delay_ticks"`
	MaxTargets      int     `json:"max_targets"`
	Bounciness      float64 `json:"bounciness"`
	Gravity         float64 `json:"gravity"`
	HitRadius       float64 `json:"hit_radius"`
	TargetSize      float64 `json:"target_size"`
	DustParticles   int     `json:"dust_particles"`
	Seed            int64   `json:"seed"` // 0 — сид от текущего времени
	Sound           bool    `json:"sound"`
}

// Default возвращает конфигурацию оригинальной игры.
func Default() Config {
	return Config{
		Variant:         defs.VariantSprites,
		ViewportWidth:   ScreenWidth,
		ViewportHeight:  ScreenHeight,
		SpawnDelayTicks: TargetDelay,
		MaxTargets:      TargetMax,
		Bounciness:      Bounciness,
		Gravity:         Gravity,
		HitRadius:       HitRadius,
		TargetSize:      TargetSize,
		DustParticles:   DustParticles,
		Sound:           true,
	}
}

// Validate проверяет диапазоны. Возвращает все найденные ошибки сразу.
func (c Config) Validate() error {
	var errs []error
	if _, ok := defs.Lookup(c.Variant); !ok {
		errs = append(errs, fmt.Errorf("%w: %q", ErrVariant, c.Variant))
	}
	if !finite(c.Bounciness) || c.Bounciness < 0 || c.Bounciness > 1 {
		errs = append(errs, fmt.Errorf("%w: got %v", ErrBounciness, c.Bounciness))
	}
	if c.SpawnDelayTicks < 1 {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrSpawnDelay, c.SpawnDelayTicks))
	}
	if c.MaxTargets < 1 {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrMaxTargets, c.MaxTargets))
	}
	if !finite(c.Gravity) || c.Gravity < 0 {
		errs = append(errs, fmt.Errorf("%w: got %v", ErrGravity, c.Gravity))
	}
	if !finite(c.HitRadius) || c.HitRadius <= 0 {
		errs = append(errs, fmt.Errorf("%w: got %v", ErrHitRadius, c.HitRadius))
	}
	if !finite(c.TargetSize) || c.TargetSize <= 0 {
		errs = append(errs, fmt.Errorf("%w: got %v", ErrTargetSize, c.TargetSize))
	}
	if c.ViewportWidth <= 0 || c.ViewportHeight <= 0 {
		errs = append(errs, fmt.Errorf("%w: got %dx%d", ErrViewport, c.ViewportWidth, c.ViewportHeight))
	}
	if c.DustParticles < 0 {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrDust, c.DustParticles))
	}
	return errors.Join(errs...)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
