package controllers

import (
	"net/http"

	"backend/config"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type registerWatchInput struct {
	Token string `json:"token" binding:"required"`
}

func RegisterWatch(c *gin.Context) {
	userID := c.GetUint("userID")
	var input registerWatchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc, err := services.NewWatchService(config.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	dev, err := svc.RegisterDevice(userID, input.Token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deviceId": dev.ID})
}

// SyncWatch fires the emergency payload at the registered devices and
// returns immediately; delivery is best effort.
func SyncWatch(c *gin.Context) {
	userID := c.GetUint("userID")

	user, err := services.FindUserByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	svc, err := services.NewWatchService(config.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	go svc.SyncEmergencyInfo(userID, user.FullName, user.Profile())

	c.JSON(http.StatusAccepted, gin.H{"message": "sync started"})
}
