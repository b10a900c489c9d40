package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ghdehrl12345/foodLens/models"
	"github.com/ghdehrl12345/foodLens/services"
	"github.com/ghdehrl12345/foodLens/utils"
)

type ProfileController struct {
	profile *services.ProfileService
	log     *zap.Logger
}

func NewProfileController(profile *services.ProfileService, log *zap.Logger) *ProfileController {
	return &ProfileController{profile: profile, log: log}
}

func (ct *ProfileController) GetProfile(c *gin.Context) {
	stats, target, err := ct.profile.Load()
	if err != nil {
		ct.log.Error("profile load failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read profile"})
		return
	}
	if stats == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not set"})
		return
	}

	resp := gin.H{"stats": stats, "targetCalories": target}
	if bmi, err := utils.CalculateBMI(stats.Height, stats.Weight); err == nil {
		resp["bmi"] = bmi
		resp["bmiCategory"] = utils.BMICategory(bmi)
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateProfile replaces the profile wholesale and returns the recomputed
// daily calorie target.
func (ct *ProfileController) UpdateProfile(c *gin.Context) {
	var stats models.UserStats
	if err := c.ShouldBindJSON(&stats); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	target, err := ct.profile.Save(stats)
	if err != nil {
		ct.log.Error("profile save failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats, "targetCalories": target})
}
