package event

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// ===========================
// List all events - GET /api/events
// @Summary List all events grouped by date key
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/events [get]
func (h *Handler) ListEvents(c *gin.Context) {
	events, err := h.Service.ListEvents(c.Request.Context())
	if err != nil {
		log.Printf("Failed to load events: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load events"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": events})
}

// ===========================
// Create event - POST /api/events
// @Summary Create a booking under a date key
// @Accept json
// @Produce json
// @Param payload body CreateEventRequest true "date key and event"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/events [post]
func (h *Handler) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.DateKey == "" || req.Event == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Missing required fields: dateKey and event",
		})
		return
	}

	created, err := h.Service.CreateEvent(c.Request.Context(), req.DateKey, *req.Event)
	if err != nil {
		if errors.Is(err, ErrInvalidEvent) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		log.Printf("Failed to create event: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": created})
}

// ===========================
// Update event - PUT /api/events/:dateKey/:eventId
// @Summary Replace every field of an event except its id
// @Accept json
// @Produce json
// @Param dateKey path string true "date key"
// @Param eventId path string true "event id"
// @Param event body Event true "full event payload"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/events/{dateKey}/{eventId} [put]
func (h *Handler) UpdateEvent(c *gin.Context) {
	dateKey := c.Param("dateKey")
	eventID := c.Param("eventId")

	var payload Event
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid event payload"})
		return
	}

	updated, err := h.Service.UpdateEvent(c.Request.Context(), dateKey, eventID, payload)
	if err != nil {
		if errors.Is(err, ErrInvalidEvent) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		log.Printf("Failed to update event: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update event"})
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Event not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": updated})
}

// ===========================
// Delete event - DELETE /api/events/:dateKey/:eventId
// @Summary Delete an event, pruning the date key when it empties
// @Produce json
// @Param dateKey path string true "date key"
// @Param eventId path string true "event id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/events/{dateKey}/{eventId} [delete]
func (h *Handler) DeleteEvent(c *gin.Context) {
	dateKey := c.Param("dateKey")
	eventID := c.Param("eventId")

	deleted, err := h.Service.DeleteEvent(c.Request.Context(), dateKey, eventID)
	if err != nil {
		log.Printf("Failed to delete event: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete event"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Event not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
