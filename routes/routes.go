package routes

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/zohaibkhan/booking-calendar-backend/config"
	"github.com/zohaibkhan/booking-calendar-backend/internal/event"
	"github.com/zohaibkhan/booking-calendar-backend/internal/reports"
	"github.com/zohaibkhan/booking-calendar-backend/middleware"

	_ "github.com/zohaibkhan/booking-calendar-backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Pages served by exact path match; anything else under the page surface
// is a 404.
var staticPages = map[string]struct {
	file        string
	contentType string
}{
	"/":                          {"index.html", "text/html; charset=utf-8"},
	"/login":                     {"login.html", "text/html; charset=utf-8"},
	"/assets/styles.css":         {"styles.css", "text/css"},
	"/assets/script.js":          {"script.js", "application/javascript"},
	"/assets/firebase-config.js": {"firebase-config.js", "application/javascript"},
}

func Setup(r *gin.Engine, cfg *config.Config, repo event.Repository, rdb *redis.Client) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	for route, page := range staticPages {
		path := filepath.Join("./public", page.file)
		contentType := page.contentType
		r.GET(route, func(c *gin.Context) {
			c.Header("Content-Type", contentType)
			c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
			c.File(path)
		})
	}

	// Preflight must answer before auth; browsers send OPTIONS bare
	r.OPTIONS("/api/events", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.OPTIONS("/api/events/*path", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	api := r.Group("/api")
	api.Use(middleware.RateLimiter(rdb))
	api.Use(middleware.AuthMiddleware(cfg))

	// ========== Events ==========
	eventSvc := event.NewService(repo)
	eventHandler := event.NewHandler(eventSvc)

	eventsGroup := api.Group("/events")
	{
		eventsGroup.GET("", eventHandler.ListEvents)
		eventsGroup.POST("", eventHandler.CreateEvent)
		eventsGroup.PUT("/:dateKey/:eventId", eventHandler.UpdateEvent)
		eventsGroup.DELETE("/:dateKey/:eventId", eventHandler.DeleteEvent)
	}

	// ========== Reports ==========
	reportSvc := reports.NewService(eventSvc)
	reportHandler := reports.NewHandler(reportSvc, reports.NewBookingExporter())

	reportsGroup := api.Group("/reports")
	{
		reportsGroup.GET("/bookings", reportHandler.ExportBookings)
		reportsGroup.GET("/runsheet/:dateKey", reportHandler.ExportRunSheet)
	}
}
