package config

import (
	"testing"

	"go.uber.org/multierr"
)

func ptr[T any](v T) *T { return &v }

func TestDefaultPreset(t *testing.T) {
	p := DefaultPreset(Kind2048)
	if err := Validate(p); err != nil {
		t.Errorf("Expected built-in 2048 preset to be valid, got %v", err)
	}

	f := DefaultPreset(KindFifteen)
	if err := Validate(f); err != nil {
		t.Errorf("Expected built-in fifteen preset to be valid, got %v", err)
	}
	if f.Target != 0 || f.FourProbability != nil {
		t.Errorf("Expected fifteen preset without 2048 fields, got %+v", f)
	}

	if DefaultPreset("chess") != nil {
		t.Error("Expected nil preset for unknown game")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		preset Preset
		errors int
	}{
		{"valid 2048", Preset{Name: "a", Game: Kind2048, Width: 4, Target: 2048, FourProbability: ptr(0.1)}, 0},
		{"valid fifteen", Preset{Name: "b", Game: KindFifteen, Width: 2}, 0},
		{"missing name", Preset{Game: KindFifteen, Width: 4}, 1},
		{"unknown game", Preset{Name: "c", Game: "chess", Width: 4}, 1},
		{"missing game", Preset{Name: "c", Width: 4}, 1},
		{"width too small", Preset{Name: "d", Game: KindFifteen, Width: 1}, 1},
		{"width too large", Preset{Name: "d", Game: KindFifteen, Width: 17}, 1},
		{"target not power of two", Preset{Name: "e", Game: Kind2048, Width: 4, Target: 1000}, 1},
		{"target too small", Preset{Name: "e", Game: Kind2048, Width: 4, Target: 2}, 1},
		{"probability out of range", Preset{Name: "f", Game: Kind2048, Width: 4, Target: 64, FourProbability: ptr(1.5)}, 1},
		{"fifteen with 2048 fields", Preset{Name: "g", Game: KindFifteen, Width: 4, Target: 64, FourProbability: ptr(0.2)}, 2},
		{"everything wrong", Preset{Game: Kind2048, Width: 0, Target: 3, FourProbability: ptr(-1.0)}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.preset)
			if got := len(multierr.Errors(err)); got != tt.errors {
				t.Errorf("Expected %d errors, got %d: %v", tt.errors, got, err)
			}
		})
	}

	if Validate(nil) == nil {
		t.Error("Expected error for nil preset")
	}
}

func TestApplyDefaults(t *testing.T) {
	p := &Preset{Name: "x", Game: Kind2048}
	p.ApplyDefaults()
	if p.Width != DefaultWidth || p.Target != DefaultTarget || p.Probability() != DefaultFourProbability {
		t.Errorf("Unexpected defaults: %+v", p)
	}

	zero := &Preset{Name: "y", Game: Kind2048, FourProbability: ptr(0.0)}
	zero.ApplyDefaults()
	if zero.Probability() != 0 {
		t.Errorf("Expected explicit zero probability to survive, got %g", zero.Probability())
	}
}
