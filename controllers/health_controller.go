package controllers

import (
	"net/http"

	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

// GetHealthReport recomputes the health analysis from the stored profile on
// every request; nothing is cached or persisted.
func GetHealthReport(c *gin.Context) {
	userID := c.GetUint("userID")
	profile, err := services.ProfileSnapshot(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	analysis := utils.ComputeHealthAnalysis(profile)
	c.JSON(http.StatusOK, analysis)
}

// GetBMIScale returns the gauge rendering data for the profile's BMI.
func GetBMIScale(c *gin.Context) {
	userID := c.GetUint("userID")
	profile, err := services.ProfileSnapshot(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	const trackWidth = 300.0
	c.JSON(http.StatusOK, gin.H{
		"bmi":         profile.BMI,
		"category":    utils.BMICategory(profile.BMI),
		"color":       utils.BMIColor(profile.BMI),
		"description": utils.BMIDescription(profile.BMI),
		"offset":      utils.BMIScaleOffset(profile.BMI, trackWidth),
	})
}
