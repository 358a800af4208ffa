package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/automoto/starfx/gamemath"
	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// TuningFile is the YAML shape of a burst tuning override. Absent keys keep
// the value they override.
//
//	emitCount: 9
//	up: {min: 300, max: 500}
//	easeDown: outBounce
type TuningFile struct {
	EmitCount     *int        `yaml:"emitCount"`
	PoolSize      *int        `yaml:"poolSize"`
	X             *RangeValue `yaml:"x"`
	Up            *RangeValue `yaml:"up"`
	Fall          *RangeValue `yaml:"fall"`
	StartScale    *RangeValue `yaml:"startScale"`
	Spin          *RangeValue `yaml:"spin"`
	TotalDuration *float64    `yaml:"totalDuration"`
	ApexRatio     *float64    `yaml:"apexRatio"`

	EaseUp   string `yaml:"easeUp"`
	EaseDown string `yaml:"easeDown"`
	EaseSpin string `yaml:"easeSpin"`
	EaseFade string `yaml:"easeFade"`
}

// RangeValue is a closed interval in a tuning file.
type RangeValue struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

func (r *RangeValue) apply(dst *gamemath.Range) {
	if r != nil {
		*dst = gamemath.Range{Min: r.Min, Max: r.Max}
	}
}

var easings = map[string]ease.TweenFunc{
	"linear":    ease.Linear,
	"inQuad":    ease.InQuad,
	"outQuad":   ease.OutQuad,
	"inOutQuad": ease.InOutQuad,
	"inCubic":   ease.InCubic,
	"outCubic":  ease.OutCubic,
	"inSine":    ease.InSine,
	"outSine":   ease.OutSine,
	"inBack":    ease.InBack,
	"outBack":   ease.OutBack,
	"outBounce": ease.OutBounce,
}

// EasingNames lists the easing names a tuning file may use.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupEasing resolves an easing name. The empty name resolves to nil, which
// leaves the emitter's default in place.
func LookupEasing(name string) (ease.TweenFunc, error) {
	if name == "" {
		return nil, nil
	}
	fn, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("unknown easing %q", name)
	}
	return fn, nil
}

// ParseTuning applies YAML overrides on top of base and validates the result.
func ParseTuning(base StarFXConfig, data []byte) (StarFXConfig, error) {
	var f TuningFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return base, fmt.Errorf("failed to parse tuning: %w", err)
	}

	c := base
	if f.EmitCount != nil {
		c.EmitCount = *f.EmitCount
	}
	if f.PoolSize != nil {
		c.PoolSize = *f.PoolSize
	}
	f.X.apply(&c.XRange)
	f.Up.apply(&c.UpRange)
	f.Fall.apply(&c.FallRange)
	f.StartScale.apply(&c.StartScaleRange)
	f.Spin.apply(&c.SpinRange)
	if f.TotalDuration != nil {
		c.TotalDuration = *f.TotalDuration
	}
	if f.ApexRatio != nil {
		c.ApexRatio = *f.ApexRatio
	}

	for _, e := range []struct {
		name string
		dst  *ease.TweenFunc
	}{
		{f.EaseUp, &c.EaseUp},
		{f.EaseDown, &c.EaseDown},
		{f.EaseSpin, &c.EaseSpin},
		{f.EaseFade, &c.EaseFade},
	} {
		fn, err := LookupEasing(e.name)
		if err != nil {
			return base, fmt.Errorf("invalid tuning: %w", err)
		}
		if fn != nil {
			*e.dst = fn
		}
	}

	if c.PoolSize < 0 {
		return base, fmt.Errorf("invalid tuning: negative pool size %d", c.PoolSize)
	}
	if err := c.Validate(); err != nil {
		return base, fmt.Errorf("invalid tuning: %w", err)
	}
	return c, nil
}

// LoadTuning reads a tuning file and applies it to StarFX.
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tuning %s: %w", path, err)
	}
	c, err := ParseTuning(StarFX, data)
	if err != nil {
		return err
	}
	StarFX = c
	return nil
}
