package config

import (
	"testing"
	"time"
)

func TestSpeedCurveInterval(t *testing.T) {
	cfg := SpeedUpConfig{Enabled: true, Factor: 0.5, MinIntervalMS: 20, EveryPoints: 10}
	curve := NewSpeedCurve(cfg)
	base := 160 * time.Millisecond

	tests := []struct {
		score int
		want  time.Duration
	}{
		{0, 160 * time.Millisecond},
		{9, 160 * time.Millisecond},
		{10, 80 * time.Millisecond},
		{25, 40 * time.Millisecond},
		{30, 20 * time.Millisecond},
		{100, 20 * time.Millisecond},
	}

	for _, tt := range tests {
		if got := curve.Interval(base, tt.score); got != tt.want {
			t.Errorf("Interval(%v, %d) = %v, want %v", base, tt.score, got, tt.want)
		}
	}
}

func TestSpeedCurveDisabled(t *testing.T) {
	tests := []struct {
		name string
		cfg  SpeedUpConfig
	}{
		{"disabled", SpeedUpConfig{Enabled: false, Factor: 0.5, MinIntervalMS: 10, EveryPoints: 1}},
		{"unit factor", SpeedUpConfig{Enabled: true, Factor: 1, MinIntervalMS: 10, EveryPoints: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			curve := NewSpeedCurve(tt.cfg)
			if curve.IsEnabled() {
				t.Error("IsEnabled() = true")
			}
			if got := curve.Interval(time.Second, 500); got != time.Second {
				t.Errorf("Interval = %v, want base", got)
			}
		})
	}
}

func TestSpeedCurveFloorNeverRaisesBase(t *testing.T) {
	curve := NewSpeedCurve(SpeedUpConfig{Enabled: true, Factor: 0.9, MinIntervalMS: 500, EveryPoints: 1})
	if got := curve.Interval(100*time.Millisecond, 50); got != 100*time.Millisecond {
		t.Errorf("Interval = %v, want 100ms", got)
	}
}

func TestSpeedCurveZeroEveryPoints(t *testing.T) {
	curve := NewSpeedCurve(SpeedUpConfig{Enabled: true, Factor: 0.97, MinIntervalMS: 50, EveryPoints: 0})
	if got := curve.Steps(3); got != 3 {
		t.Errorf("Steps(3) = %d, want 3", got)
	}
}
