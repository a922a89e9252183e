package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/hospistay/backend/internal/models"
	"github.com/hospistay/backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	GenerateToken(userID uuid.UUID) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IPredictionService defines the interface for the prediction workflow
type IPredictionService interface {
	SubmitIntake(ctx context.Context, userID uuid.UUID, intake *types.Intake) error
	PendingIntake(ctx context.Context, userID uuid.UUID) (*types.Intake, error)
	Run(ctx context.Context, userID uuid.UUID) (*types.PredictionResult, error)
	RecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.Prediction, error)
}

// AdvisoryProvider generates free-text suggestions for a prediction result.
// Implementations must never fail: degraded providers return static texts.
type AdvisoryProvider interface {
	Available() bool
	GenerateAdvisories(ctx context.Context, count int) []string
}

// IntakeStore holds a user's pending intake between the intake step and the
// result step
type IntakeStore interface {
	Put(ctx context.Context, userID uuid.UUID, intake *types.Intake) error
	Get(ctx context.Context, userID uuid.UUID) (*types.Intake, error)
	Clear(ctx context.Context, userID uuid.UUID) error
}
