package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Precaution is a static advisory string seeded at first startup and
// read-only afterwards.
type Precaution struct {
	ID   uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	Text string    `gorm:"type:text;not null" json:"text"`
}

func (p *Precaution) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Prediction records one completed stay-length estimation for a user.
// Records are immutable once written and never deleted.
type Prediction struct {
	ID               uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt        time.Time `json:"created_at"`
	UserID           uuid.UUID `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Age              int       `gorm:"not null" json:"age"`
	Severity         string    `gorm:"size:20;not null" json:"severity"`
	Comorbidities    int       `gorm:"not null" json:"comorbidities"`
	Temperature      string    `gorm:"size:10;not null" json:"temperature"`
	BloodPressure    string    `gorm:"size:20;not null" json:"blood_pressure"`
	OxygenSaturation string    `gorm:"size:10;not null" json:"oxygen_saturation"`
	PredictedDays    int       `gorm:"not null" json:"predicted_days"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (p *Prediction) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
