package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetHome reports that the service is up.
func GetHome(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "Currency Equivalences API v1"})
}
