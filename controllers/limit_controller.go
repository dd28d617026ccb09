package controllers

import (
	"net/http"

	"github.com/Nyuneihlaing/water-project/config"
	"github.com/Nyuneihlaing/water-project/services"

	"github.com/gin-gonic/gin"
)

func GetWaterLimit(c *gin.Context) {
	svc := services.NewLimitService(config.DB)
	limit, err := svc.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load water limit"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"limit": limit})
}

func SetWaterLimit(c *gin.Context) {
	var req struct {
		Limit *float64 `json:"limit"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Limit == nil || *req.Limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a positive limit is required"})
		return
	}

	svc := services.NewLimitService(config.DB)
	limit, err := svc.Set(c.Request.Context(), *req.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to set water limit"})
		return
	}

	services.EmitUpdate("limit.changed", gin.H{"limit": limit})
	c.JSON(http.StatusOK, gin.H{"limit": limit})
}
