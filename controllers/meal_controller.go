package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ghdehrl12345/foodLens/models"
	"github.com/ghdehrl12345/foodLens/services"
)

type MealController struct {
	ledger *services.LedgerService
	log    *zap.Logger
}

func NewMealController(ledger *services.LedgerService, log *zap.Logger) *MealController {
	return &MealController{ledger: ledger, log: log}
}

type logMealRequest struct {
	Type      models.MealType   `json:"type" binding:"required"`
	Timestamp int64             `json:"timestamp"` // epoch millis; defaults to now
	ImageURL  string            `json:"imageUrl"`
	Foods     []models.FoodItem `json:"foods" binding:"required"`
}

// LogMeal builds the Meal record from an analysis result the user
// confirmed and appends it to the ledger.
func (ct *MealController) LogMeal(c *gin.Context) {
	var body logMealRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !body.Type.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown meal type"})
		return
	}
	if len(body.Foods) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a meal needs at least one food item"})
		return
	}
	for _, f := range body.Foods {
		if f.Calories < 0 || f.Carbs < 0 || f.Protein < 0 || f.Fat < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "negative macro values"})
			return
		}
	}
	if body.Timestamp == 0 {
		body.Timestamp = time.Now().UnixMilli()
	}

	meal := models.NewMeal(body.Type, body.Timestamp, body.ImageURL, body.Foods)
	if err := ct.ledger.Append(meal); err != nil {
		ct.log.Error("meal append failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save meal"})
		return
	}
	c.JSON(http.StatusCreated, meal)
}

// ListMeals returns the ordered meals of one day, today by default.
func (ct *MealController) ListMeals(c *gin.Context) {
	dateKey := c.DefaultQuery("date", services.DateKey(time.Now().UnixMilli()))
	meals, err := ct.ledger.MealsFor(dateKey)
	if err != nil {
		ct.log.Error("meal list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read meals"})
		return
	}
	c.JSON(http.StatusOK, meals)
}
