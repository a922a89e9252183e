package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hospistay/backend/internal/models"
	"github.com/hospistay/backend/internal/types"
)

// ErrIntakeRequired signals that no intake is pending for the user. The
// caller re-collects intake instead of treating this as a failure.
var ErrIntakeRequired = errors.New("intake required")

const (
	maxPrecautions = 5
	advisoryCount  = 5
)

// PredictionService runs the prediction workflow: pull the pending intake,
// estimate the stay length, persist the record, and attach precautions and
// advisories for display.
type PredictionService struct {
	db         *gorm.DB
	estimator  *Estimator
	advisories AdvisoryProvider
	intake     IntakeStore
	rng        *rand.Rand
}

// NewPredictionService wires the workflow. A nil rng gets a time-seeded
// source; tests pass a fixed seed to make precaution sampling deterministic.
func NewPredictionService(db *gorm.DB, estimator *Estimator, advisories AdvisoryProvider, intake IntakeStore, rng *rand.Rand) *PredictionService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &PredictionService{
		db:         db,
		estimator:  estimator,
		advisories: advisories,
		intake:     intake,
		rng:        rng,
	}
}

// SubmitIntake stashes a validated intake for the user's next workflow run
func (s *PredictionService) SubmitIntake(ctx context.Context, userID uuid.UUID, intake *types.Intake) error {
	return s.intake.Put(ctx, userID, intake)
}

// PendingIntake returns the user's stashed intake, or nil when none exists
func (s *PredictionService) PendingIntake(ctx context.Context, userID uuid.UUID) (*types.Intake, error) {
	return s.intake.Get(ctx, userID)
}

// Run executes one prediction workflow for the user. The prediction record
// must persist before a result is returned; advisory failures never surface.
func (s *PredictionService) Run(ctx context.Context, userID uuid.UUID) (*types.PredictionResult, error) {
	intake, err := s.intake.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if intake == nil {
		return nil, ErrIntakeRequired
	}

	days := s.estimator.EstimateStay(intake.Age, intake.Severity, intake.Comorbidities)

	record := models.Prediction{
		UserID:           userID,
		Age:              intake.Age,
		Severity:         intake.Severity,
		Comorbidities:    intake.Comorbidities,
		Temperature:      intake.Temperature,
		BloodPressure:    intake.BloodPressure,
		OxygenSaturation: intake.OxygenSaturation,
		PredictedDays:    days,
	}
	if err := s.db.WithContext(ctx).Omit("User").Create(&record).Error; err != nil {
		return nil, fmt.Errorf("failed to persist prediction: %w", err)
	}

	precautions, err := s.samplePrecautions(ctx)
	if err != nil {
		return nil, err
	}

	advisories := s.advisories.GenerateAdvisories(ctx, advisoryCount)

	// Consume the session so stale intake cannot re-render on navigation.
	// A failed clear is logged, not fatal; the record is already durable.
	if err := s.intake.Clear(ctx, userID); err != nil {
		log.Printf("failed to clear intake session for %s: %v", userID, err)
	}

	return &types.PredictionResult{
		ID:            record.ID,
		PredictedDays: days,
		Precautions:   precautions,
		Advisories:    advisories,
		Intake:        *intake,
		CreatedAt:     record.CreatedAt,
	}, nil
}

// samplePrecautions picks up to maxPrecautions stored precautions uniformly
// without replacement. A short supply returns everything available.
func (s *PredictionService) samplePrecautions(ctx context.Context) ([]string, error) {
	var all []models.Precaution
	if err := s.db.WithContext(ctx).Find(&all).Error; err != nil {
		return nil, fmt.Errorf("failed to load precautions: %w", err)
	}

	s.rng.Shuffle(len(all), func(i, j int) {
		all[i], all[j] = all[j], all[i]
	})

	n := len(all)
	if n > maxPrecautions {
		n = maxPrecautions
	}
	texts := make([]string, n)
	for i := 0; i < n; i++ {
		texts[i] = all[i].Text
	}
	return texts, nil
}

// RecentByUser returns the user's predictions ordered most-recent-first
func (s *PredictionService) RecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.Prediction, error) {
	var records []models.Prediction
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
