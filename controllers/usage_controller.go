package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Nyuneihlaing/water-project/config"
	"github.com/Nyuneihlaing/water-project/services"

	"github.com/gin-gonic/gin"
)

// CalculateUsage multiplies an activity's rate by the given minutes.
// Nothing is persisted; the client saves separately.
func CalculateUsage(c *gin.Context) {
	var req struct {
		Activity string   `json:"activity"`
		Minutes  *float64 `json:"minutes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Activity == "" || req.Minutes == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "activity and minutes are required"})
		return
	}

	svc := services.NewUsageService(config.DB)
	total, err := svc.Calculate(c.Request.Context(), req.Activity, *req.Minutes)
	switch {
	case errors.Is(err, services.ErrNegativeMinutes):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, services.ErrActivityNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to calculate usage"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"totalUsage": total})
}

func SaveUsage(c *gin.Context) {
	var req struct {
		Usage []services.EntryInput `json:"usage"`
		Date  string                `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date := time.Now()
	if req.Date != "" {
		var err error
		date, err = services.ParseDate(req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
			return
		}
	}

	svc := services.NewUsageService(config.DB)
	day, err := svc.SaveDay(c.Request.Context(), date, req.Usage)
	switch {
	case errors.Is(err, services.ErrNoEntries),
		errors.Is(err, services.ErrMissingActivity),
		errors.Is(err, services.ErrMissingMinutes),
		errors.Is(err, services.ErrNegativeMinutes):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save usage"})
		return
	}

	services.EmitUpdate("usage.changed", gin.H{"date": day.Date.Format("2006-01-02")})
	c.JSON(http.StatusCreated, day)
}

func GetUsageHistory(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'date' query param"})
		return
	}
	date, err := services.ParseDate(dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	svc := services.NewAggregationService(config.DB)
	entries, err := svc.HistoryForDay(c.Request.Context(), date)
	if errors.Is(err, services.ErrDayNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load usage history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"usage": entries})
}

func GetTotalUsage(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'date' query param"})
		return
	}
	date, err := services.ParseDate(dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	svc := services.NewAggregationService(config.DB)
	total, err := svc.TotalForDay(c.Request.Context(), date)
	if errors.Is(err, services.ErrDayNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute total usage"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"totalUsage": total})
}

// UpdateUsageEntry edits the minutes of a single ledger entry.
func UpdateUsageEntry(c *gin.Context) {
	var req struct {
		EntryID    string   `json:"entryId"`
		NewMinutes *float64 `json:"newMinutes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.EntryID == "" || req.NewMinutes == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "entryId and newMinutes are required"})
		return
	}

	svc := services.NewUsageService(config.DB)
	day, err := svc.UpdateEntryMinutes(c.Request.Context(), req.EntryID, *req.NewMinutes)
	switch {
	case errors.Is(err, services.ErrNegativeMinutes):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, services.ErrEntryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update entry"})
		return
	}

	services.EmitUpdate("usage.changed", gin.H{"date": day.Date.Format("2006-01-02")})
	c.JSON(http.StatusOK, day)
}

func DeleteUsageEntry(c *gin.Context) {
	var req struct {
		EntryID string `json:"entryId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.EntryID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "entryId is required"})
		return
	}

	svc := services.NewUsageService(config.DB)
	err := svc.DeleteEntry(c.Request.Context(), req.EntryID)
	if errors.Is(err, services.ErrEntryNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete entry"})
		return
	}

	services.EmitUpdate("usage.changed", gin.H{"deletedEntryId": req.EntryID})
	c.JSON(http.StatusOK, gin.H{"message": "Entry deleted"})
}

func GetPastUsage(c *gin.Context) {
	svc := services.NewAggregationService(config.DB)
	summaries, err := svc.AggregateAllTime(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to aggregate usage"})
		return
	}
	if summaries == nil {
		summaries = []services.ActivitySummary{}
	}
	c.JSON(http.StatusOK, summaries)
}

func GetAvailableDates(c *gin.Context) {
	svc := services.NewAggregationService(config.DB)
	dates, err := svc.AvailableDates(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load dates"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"dates": dates})
}
