package controllers

import (
	"errors"
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type askInput struct {
	Question string `json:"question" binding:"required"`
}

// AskAssistant forwards a question to the nutrition assistant with the
// user's dietary context attached. Works with an incomplete profile.
func AskAssistant(c *gin.Context) {
	userID := c.GetUint("userID")
	var input askInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := services.ProfileSnapshot(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewAssistantService()
	reply, err := svc.Ask(profile, input.Question)
	if err != nil {
		var srvErr *services.ServerError
		if errors.As(err, &srvErr) {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "statusCode": srvErr.StatusCode})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": reply})
}
