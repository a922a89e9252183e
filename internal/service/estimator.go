package service

import (
	"math/rand"
	"time"
)

// Severity levels accepted by the estimator. The intake form enforces the
// enum before the estimator ever runs.
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// Estimator computes a predicted hospital-stay length from intake
// attributes. The computation is a deterministic base plus a bounded random
// jitter; the jitter source is injected so tests can pin it.
type Estimator struct {
	jitter func() int
}

// NewEstimator creates an Estimator. A nil jitter falls back to a uniform
// draw over {-1, 0, 1, 2}.
func NewEstimator(jitter func() int) *Estimator {
	if jitter == nil {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		jitter = func() int { return rng.Intn(4) - 1 }
	}
	return &Estimator{jitter: jitter}
}

// EstimateStay returns the predicted stay length in days, always >= 1.
// Inputs are pre-validated at the binding layer.
func (e *Estimator) EstimateStay(age int, severity string, comorbidities int) int {
	base := 3
	if age > 65 {
		base += 2
	}
	switch severity {
	case SeverityHigh:
		base += 3
	case SeverityMedium:
		base++
	}
	if comorbidities > 2 {
		base += 2
	}

	days := base + e.jitter()
	if days < 1 {
		days = 1
	}
	return days
}
