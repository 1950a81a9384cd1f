package config

import (
	"math"
	"time"
)

// SpeedCurve shortens the tick interval as the score grows.
// Each EveryPoints of score is one step; every step multiplies the base
// interval by Factor, never going below MinIntervalMS.
type SpeedCurve struct {
	cfg SpeedUpConfig
}

// NewSpeedCurve creates a speed curve.
func NewSpeedCurve(cfg SpeedUpConfig) *SpeedCurve {
	return &SpeedCurve{cfg: cfg}
}

// IsEnabled returns whether the interval changes with score.
func (s *SpeedCurve) IsEnabled() bool {
	return s.cfg.Enabled && s.cfg.Factor > 0 && s.cfg.Factor < 1
}

// Steps returns how many speed-ups have been earned at score.
func (s *SpeedCurve) Steps(score int) int {
	if !s.IsEnabled() || score <= 0 {
		return 0
	}
	every := s.cfg.EveryPoints
	if every <= 0 {
		every = 1 // Prevent division by zero
	}
	return score / every
}

// Interval returns the tick interval for score. It satisfies snake.PaceFunc.
func (s *SpeedCurve) Interval(base time.Duration, score int) time.Duration {
	steps := s.Steps(score)
	if steps == 0 {
		return base
	}

	scaled := time.Duration(float64(base) * math.Pow(s.cfg.Factor, float64(steps)))
	floor := time.Duration(s.cfg.MinIntervalMS) * time.Millisecond
	if floor > base {
		floor = base
	}
	return max(scaled, floor)
}
