package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Nyuneihlaing/water-project/config"
	"github.com/Nyuneihlaing/water-project/services"

	"github.com/gin-gonic/gin"
)

func ListActivities(c *gin.Context) {
	svc := services.NewCatalogService(config.DB)
	activities, err := svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load activities"})
		return
	}
	c.JSON(http.StatusOK, activities)
}

func AddActivity(c *gin.Context) {
	var req struct {
		Activity           string   `json:"activity"`
		UsageRatePerMinute *float64 `json:"usageRatePerMinute"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Activity == "" || req.UsageRatePerMinute == nil || *req.UsageRatePerMinute <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "activity and a positive usageRatePerMinute are required"})
		return
	}

	svc := services.NewCatalogService(config.DB)
	activity, err := svc.Add(c.Request.Context(), req.Activity, *req.UsageRatePerMinute)
	if errors.Is(err, services.ErrDuplicateActivity) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add activity"})
		return
	}

	services.EmitUpdate("catalog.changed", activity)
	c.JSON(http.StatusCreated, activity)
}

func UpdateActivity(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid activity id"})
		return
	}

	var req struct {
		Activity           string   `json:"activity"`
		UsageRatePerMinute *float64 `json:"usageRatePerMinute"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Activity == "" || req.UsageRatePerMinute == nil || *req.UsageRatePerMinute <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "activity and a positive usageRatePerMinute are required"})
		return
	}

	svc := services.NewCatalogService(config.DB)
	activity, err := svc.Update(c.Request.Context(), uint(id), req.Activity, *req.UsageRatePerMinute)
	switch {
	case errors.Is(err, services.ErrActivityNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	case errors.Is(err, services.ErrDuplicateActivity):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update activity"})
		return
	}

	services.EmitUpdate("catalog.changed", activity)
	c.JSON(http.StatusOK, activity)
}

func DeleteActivityPermanently(c *gin.Context) {
	var req struct {
		ActivityID *uint `json:"activityId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ActivityID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "activityId is required"})
		return
	}

	svc := services.NewCatalogService(config.DB)
	err := svc.DeletePermanently(c.Request.Context(), *req.ActivityID)
	if errors.Is(err, services.ErrActivityNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete activity"})
		return
	}

	services.EmitUpdate("catalog.changed", gin.H{"deletedId": *req.ActivityID})
	c.JSON(http.StatusOK, gin.H{"message": "Activity and its usage history deleted"})
}
