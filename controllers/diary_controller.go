package controllers

import (
	"net/http"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

func ListSavedProducts(c *gin.Context) {
	userID := c.GetUint("userID")
	products, err := services.ListSavedProducts(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, products)
}

type saveProductInput struct {
	Barcode string                `json:"barcode" binding:"required"`
	Details models.ProductDetails `json:"details" binding:"required"`
}

func SaveProduct(c *gin.Context) {
	userID := c.GetUint("userID")
	var input saveProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saved, err := services.SaveProduct(userID, input.Details, input.Barcode)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, saved)
}

func RemoveSavedProduct(c *gin.Context) {
	userID := c.GetUint("userID")
	if err := services.RemoveProduct(userID, c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "removed"})
}
