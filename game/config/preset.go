package config

import (
	"fmt"

	"go.uber.org/multierr"
)

// Kind names the game a preset configures.
type Kind string

const (
	Kind2048    Kind = "2048"
	KindFifteen Kind = "fifteen"
)

const (
	MinWidth = 2
	MaxWidth = 16

	DefaultWidth           = 4
	DefaultTarget          = 2048
	DefaultFourProbability = 0.1
)

// Preset configures one game.
type Preset struct {
	Name            string   `json:"name" yaml:"name"`
	Description     string   `json:"description" yaml:"description"`
	Game            Kind     `json:"game" yaml:"game"`
	Width           int      `json:"width,omitempty" yaml:"width,omitempty"`
	Target          int      `json:"target,omitempty" yaml:"target,omitempty"`
	FourProbability *float64 `json:"four_probability,omitempty" yaml:"four_probability,omitempty"`
	Seed            *uint64  `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// ConfigInfo is a listing entry for a preset file.
type ConfigInfo struct {
	Filename    string `json:"filename"`
	ConfigID    string `json:"config_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Game        Kind   `json:"game"`
	Width       int    `json:"width"`
}

// DefaultPreset returns the built-in preset for kind.
func DefaultPreset(kind Kind) *Preset {
	switch kind {
	case Kind2048:
		p := &Preset{
			Name:        "2048",
			Description: "Standard 4x4 board played to the 2048 tile",
			Game:        Kind2048,
		}
		p.ApplyDefaults()
		return p
	case KindFifteen:
		p := &Preset{
			Name:        "fifteen",
			Description: "Standard 4x4 Game of Fifteen",
			Game:        KindFifteen,
		}
		p.ApplyDefaults()
		return p
	}
	return nil
}

// ApplyDefaults fills the fields left at their zero value.
func (p *Preset) ApplyDefaults() {
	if p.Width == 0 {
		p.Width = DefaultWidth
	}
	if p.Game == Kind2048 {
		if p.Target == 0 {
			p.Target = DefaultTarget
		}
		if p.FourProbability == nil {
			prob := DefaultFourProbability
			p.FourProbability = &prob
		}
	}
}

// Probability returns the chance of spawning a 4.
func (p *Preset) Probability() float64 {
	if p.FourProbability == nil {
		return DefaultFourProbability
	}
	return *p.FourProbability
}

// Validate checks p and returns every problem found, combined.
func Validate(p *Preset) error {
	if p == nil {
		return fmt.Errorf("preset cannot be nil")
	}

	var err error
	if p.Name == "" {
		err = multierr.Append(err, fmt.Errorf("name is required"))
	}

	switch p.Game {
	case Kind2048, KindFifteen:
	case "":
		err = multierr.Append(err, fmt.Errorf("game is required (%q or %q)", Kind2048, KindFifteen))
	default:
		err = multierr.Append(err, fmt.Errorf("unknown game %q", p.Game))
	}

	if p.Width < MinWidth || p.Width > MaxWidth {
		err = multierr.Append(err, fmt.Errorf("width must be between %d and %d, got %d", MinWidth, MaxWidth, p.Width))
	}

	if p.Game == Kind2048 {
		if p.Target < 4 || p.Target&(p.Target-1) != 0 {
			err = multierr.Append(err, fmt.Errorf("target must be a power of two of at least 4, got %d", p.Target))
		}
		if prob := p.Probability(); prob < 0 || prob > 1 {
			err = multierr.Append(err, fmt.Errorf("four_probability must be between 0 and 1, got %g", prob))
		}
	}

	if p.Game == KindFifteen {
		if p.Target != 0 {
			err = multierr.Append(err, fmt.Errorf("target is not used by %q presets", KindFifteen))
		}
		if p.FourProbability != nil {
			err = multierr.Append(err, fmt.Errorf("four_probability is not used by %q presets", KindFifteen))
		}
	}

	return err
}

// Kind reports which game p configures.
func (p *Preset) Kind() Kind {
	return p.Game
}
