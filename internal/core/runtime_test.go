package core

import "testing"

func TestRuntimeConfigNormalized(t *testing.T) {
	tests := []struct {
		name string
		in   RuntimeConfig
		want RuntimeConfig
	}{
		{"zero", RuntimeConfig{}, RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}},
		{"negative", RuntimeConfig{ScreenW: -1, ScreenH: -5, TickRate: -30, Seed: 7}, RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}},
		{"kept", RuntimeConfig{ScreenW: 120, ScreenH: 40, TickRate: 30, Seed: 1}, RuntimeConfig{ScreenW: 120, ScreenH: 40, TickRate: 30, Seed: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Normalized(); got != tt.want {
				t.Errorf("Normalized() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestGameStateRunning(t *testing.T) {
	tests := []struct {
		state GameState
		want  bool
	}{
		{GameState{Menu: true}, false},
		{GameState{}, true},
		{GameState{GameOver: true}, false},
	}
	for _, tt := range tests {
		if got := tt.state.Running(); got != tt.want {
			t.Errorf("%+v.Running() = %v, want %v", tt.state, got, tt.want)
		}
	}
}

func TestColorString(t *testing.T) {
	names := make(map[string]bool)
	for c := ColorDefault; c <= ColorAlert; c++ {
		name := c.String()
		if name == "unknown" {
			t.Errorf("color %d has no name", c)
		}
		if names[name] {
			t.Errorf("duplicate color name %q", name)
		}
		names[name] = true
	}
	if got := Color(200).String(); got != "unknown" {
		t.Errorf("Color(200).String() = %q", got)
	}
}
