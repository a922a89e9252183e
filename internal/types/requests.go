package types

import (
	"time"

	"github.com/google/uuid"
)

// RegisterRequest represents the request body for account registration
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Age      int    `json:"age" binding:"required,min=1,max=120"`
	Contact  string `json:"contact" binding:"required,e164"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by both register and login
type AuthResponse struct {
	UserID uuid.UUID `json:"user_id"`
	Token  string    `json:"token"`
}

// Intake holds the six clinical fields submitted for one prediction
// attempt. Validation happens at the binding layer so the estimator only
// ever sees in-range values.
type Intake struct {
	Age              int    `json:"age" binding:"required,min=1,max=120"`
	Severity         string `json:"severity" binding:"required,oneof=low medium high"`
	Comorbidities    int    `json:"comorbidities" binding:"min=0,max=10"`
	Temperature      string `json:"temperature" binding:"required,numeric"`
	BloodPressure    string `json:"blood_pressure" binding:"required"`
	OxygenSaturation string `json:"oxygen_saturation" binding:"required,numeric"`
}

// PredictionResult is the combined output of one workflow run
type PredictionResult struct {
	ID            uuid.UUID `json:"id"`
	PredictedDays int       `json:"predicted_days"`
	Precautions   []string  `json:"precautions"`
	Advisories    []string  `json:"advisories"`
	Intake        Intake    `json:"intake"`
	CreatedAt     time.Time `json:"created_at"`
}
