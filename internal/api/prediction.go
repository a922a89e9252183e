package api

import (
	"errors"
	"net/http"
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hospistay/backend/internal/service"
	"github.com/hospistay/backend/internal/types"
)

// defaultHistoryLimit is how many records the dashboard history view shows
const defaultHistoryLimit = 5

var bloodPressureRe = regexp.MustCompile(`^\d+/\d+$`)

// PredictionHandler handles intake submission, workflow runs and history
type PredictionHandler struct {
	predictions service.IPredictionService
}

// NewPredictionHandler creates a new PredictionHandler instance
func NewPredictionHandler(predictions service.IPredictionService) *PredictionHandler {
	return &PredictionHandler{predictions: predictions}
}

// SubmitIntake validates the six clinical fields and stashes them for the
// user's next prediction run
func (h *PredictionHandler) SubmitIntake(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var intake types.Intake
	if err := c.ShouldBindJSON(&intake); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !bloodPressureRe.MatchString(intake.BloodPressure) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "blood_pressure must be systolic/diastolic, e.g. 120/80"})
		return
	}

	if err := h.predictions.SubmitIntake(c.Request.Context(), userID, &intake); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save intake"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "intake recorded"})
}

// GetIntake returns the pending intake, or 404 when none is stashed
func (h *PredictionHandler) GetIntake(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	intake, err := h.predictions.PendingIntake(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read intake"})
		return
	}
	if intake == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no pending intake"})
		return
	}

	c.JSON(http.StatusOK, intake)
}

// RunPrediction executes the workflow against the pending intake. Without
// one it answers 409 so the client re-collects intake first.
func (h *PredictionHandler) RunPrediction(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := h.predictions.Run(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrIntakeRequired) {
			c.JSON(http.StatusConflict, gin.H{"error": service.ErrIntakeRequired.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to run prediction"})
		return
	}

	c.JSON(http.StatusCreated, result)
}

// History returns the user's predictions, most recent first
func (h *PredictionHandler) History(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	records, err := h.predictions.RecentByUser(c.Request.Context(), userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"predictions": records})
}

// currentUserID pulls the authenticated user id set by the auth middleware
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	val, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return uuid.Nil, false
	}
	userID, ok := val.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return uuid.Nil, false
	}
	return userID, true
}
