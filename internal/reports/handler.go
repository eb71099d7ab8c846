package reports

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Service  *Service
	Exporter BookingExporter
}

func NewHandler(s *Service, e BookingExporter) *Handler {
	return &Handler{Service: s, Exporter: e}
}

// ===========================
// Month summary - GET /api/reports/bookings?month=YYYY-M&format=csv|excel|pdf
func (h *Handler) ExportBookings(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter: month"})
		return
	}
	format := c.DefaultQuery("format", FormatExcel)
	if format != FormatCSV && format != FormatExcel && format != FormatPDF {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported format: " + format})
		return
	}

	rows, err := h.Service.MonthBookings(c.Request.Context(), month)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data, filename, contentType, err := h.Exporter.ExportMonth(format, month, rows)
	if err != nil {
		log.Printf("Failed to export bookings: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export bookings"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}

// ===========================
// Kitchen run sheet - GET /api/reports/runsheet/:dateKey
func (h *Handler) ExportRunSheet(c *gin.Context) {
	dateKey := c.Param("dateKey")

	rows, err := h.Service.DayBookings(c.Request.Context(), dateKey)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data, filename, contentType, err := h.Exporter.ExportRunSheet(dateKey, rows)
	if err != nil {
		log.Printf("Failed to export run sheet: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export run sheet"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}
