package controllers

import (
	"errors"
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

// AnalyzeBarcode runs the analysis round trip for a scanned barcode and
// returns the normalized record with its derived suitability verdict.
func AnalyzeBarcode(c *gin.Context) {
	userID := c.GetUint("userID")
	barcode := c.Param("barcode")
	if barcode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "barcode is required"})
		return
	}

	profile, err := services.ProfileSnapshot(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewAnalysisService()
	details, err := svc.FetchProductDetails(barcode, profile)
	if err != nil {
		var missing *services.MissingProfileFieldError
		var srvErr *services.ServerError
		var badFmt *services.InvalidResponseFormatError
		switch {
		case errors.As(err, &missing):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "profile incomplete",
				"field": missing.Field,
			})
		case errors.As(err, &srvErr):
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "statusCode": srvErr.StatusCode})
		case errors.As(err, &badFmt):
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		}
		return
	}

	status := details.SuitabilityStatus()

	saved, _ := services.IsProductSaved(userID, barcode)

	Hub.BroadcastVerdict(userID, gin.H{
		"kind":        "scan.verdict",
		"barcode":     barcode,
		"product":     details.Name,
		"suitability": status,
	})

	c.JSON(http.StatusOK, gin.H{
		"details":           details,
		"suitabilityStatus": status,
		"statusColor":       status.Color(),
		"statusIcon":        status.Icon(),
		"alreadySaved":      saved,
	})
}
