package routes

import (
	"net/http"

	"github.com/Nyuneihlaing/water-project/config"
	"github.com/Nyuneihlaing/water-project/controllers"
	"github.com/Nyuneihlaing/water-project/middlewares"
	"github.com/Nyuneihlaing/water-project/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Paths mirror the original client verbatim; note that /update-activity
// and /delete-activity operate on ledger entries, not on the catalog.
func SetupRouter(hub *services.RealtimeHub) *gin.Engine {
	r := gin.Default()

	r.Use(cors.Default()) // the form client runs on its own dev server
	r.Use(middlewares.Metrics())

	// Activity catalog
	r.GET("/activities", controllers.ListActivities)
	r.POST("/activities", controllers.AddActivity)
	r.PUT("/activities/:id", controllers.UpdateActivity)
	r.DELETE("/delete-activity-permanently", controllers.DeleteActivityPermanently)

	// Usage ledger
	r.POST("/calculate-usage", controllers.CalculateUsage)
	r.POST("/save-usage", controllers.SaveUsage)
	r.GET("/water-usage-history", controllers.GetUsageHistory)
	r.GET("/calculate-total-usage", controllers.GetTotalUsage)
	r.PUT("/update-activity", controllers.UpdateUsageEntry)
	r.DELETE("/delete-activity", controllers.DeleteUsageEntry)
	r.GET("/past-usage", controllers.GetPastUsage)
	r.GET("/available-dates", controllers.GetAvailableDates)

	// Water limit
	r.GET("/water-limit", controllers.GetWaterLimit)
	r.POST("/set-water-limit", controllers.SetWaterLimit)

	// Realtime updates
	rt := controllers.NewRealtimeController(hub)
	r.GET("/ws/updates", rt.UpdatesWS)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/healthz", healthz)

	return r
}

func healthz(c *gin.Context) {
	sqlDB, err := config.DB.DB()
	if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
