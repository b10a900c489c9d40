package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ghdehrl12345/foodLens/services"
)

type SummaryController struct {
	ledger  *services.LedgerService
	profile *services.ProfileService
	log     *zap.Logger
}

func NewSummaryController(ledger *services.LedgerService, profile *services.ProfileService, log *zap.Logger) *SummaryController {
	return &SummaryController{ledger: ledger, profile: profile, log: log}
}

// GetSummary aggregates one day of the ledger and pairs it with the daily
// target so the dashboard can show consumed vs. remaining calories.
func (ct *SummaryController) GetSummary(c *gin.Context) {
	dateKey := c.DefaultQuery("date", services.DateKey(time.Now().UnixMilli()))

	summary, err := ct.ledger.Aggregate(dateKey)
	if err != nil {
		ct.log.Error("aggregate failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read daily log"})
		return
	}

	stats, target, err := ct.profile.Load()
	if err != nil {
		ct.log.Error("profile load failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read profile"})
		return
	}

	name := ""
	if stats != nil {
		name = stats.Name
	}
	c.JSON(http.StatusOK, gin.H{
		"date":              dateKey,
		"name":              name,
		"meals":             summary.Meals,
		"totalCalories":     summary.TotalCalories,
		"totalCarbs":        summary.TotalCarbs,
		"totalProtein":      summary.TotalProtein,
		"totalFat":          summary.TotalFat,
		"targetCalories":    target,
		"remainingCalories": float64(target) - summary.TotalCalories,
	})
}
