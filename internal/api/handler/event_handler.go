package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ieee-kiit/events-api/internal/api/metrics"
	"github.com/ieee-kiit/events-api/internal/core/domain"
	"github.com/ieee-kiit/events-api/internal/core/ports"
)

// EventHandler handles HTTP requests for event operations.
type EventHandler struct {
	service ports.EventService
}

func NewEventHandler(service ports.EventService) *EventHandler {
	return &EventHandler{service: service}
}

// List handles GET /api/events.
//
// @Summary      List events ordered LIVE, UPCOMING, PAST
// @Tags         events
// @Produce      json
// @Param        status  query     string  false  "Filter by derived status (UPCOMING, LIVE, PAST)"
// @Param        limit   query     int     false  "Page size, 1-1000 (default 100)"
// @Param        offset  query     int     false  "Page offset (default 0)"
// @Success      200     {object}  apiResponse
// @Failure      400     {object}  apiResponse
// @Router       /api/events [get]
func (h *EventHandler) List(c echo.Context) error {
	var status *domain.EventStatus
	if raw := c.QueryParam("status"); raw != "" {
		s := domain.EventStatus(raw)
		if !domain.ValidEventStatus(s) {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid status parameter. Must be UPCOMING, LIVE, or PAST")
		}
		status = &s
	}

	limit, err := queryInt(c, "limit", 100)
	if err != nil || limit < 1 || limit > 1000 {
		return echo.NewHTTPError(http.StatusBadRequest, "Limit must be between 1 and 1000")
	}
	offset, err := queryInt(c, "offset", 0)
	if err != nil || offset < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Offset must be non-negative")
	}

	events, err := h.service.List(c.Request().Context(), status, limit, offset)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, apiResponse{
		Success:    true,
		Data:       events,
		Pagination: &paginationResponse{Limit: limit, Offset: offset, Count: len(events)},
	})
}

// Stats handles GET /api/events/stats.
//
// @Summary      Event counts per derived status
// @Tags         events
// @Produce      json
// @Success      200  {object}  apiResponse
// @Router       /api/events/stats [get]
func (h *EventHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, apiResponse{Success: true, Data: stats})
}

// Get handles GET /api/events/:id.
//
// @Summary      Get an event by id
// @Tags         events
// @Produce      json
// @Param        id   path      int  true  "Event id"
// @Success      200  {object}  apiResponse
// @Failure      404  {object}  apiResponse
// @Router       /api/events/{id} [get]
func (h *EventHandler) Get(c echo.Context) error {
	id, err := pathID(c, "Invalid event ID")
	if err != nil {
		return err
	}

	event, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, apiResponse{Success: true, Data: event})
}

// Create handles POST /api/events.
//
// @Summary      Create an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEventRequest  true  "Event fields"
// @Success      201   {object}  apiResponse
// @Failure      400   {object}  apiResponse
// @Failure      401   {object}  apiResponse
// @Router       /api/events [post]
func (h *EventHandler) Create(c echo.Context) error {
	var req createEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, err := h.service.Create(c.Request().Context(), ports.CreateEventInput{
		Title:       req.Title,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	})
	if err != nil {
		return err
	}

	metrics.EventWritesTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, apiResponse{
		Success: true,
		Data:    createdIDResponse{ID: id},
		Message: "Event created successfully",
	})
}

// Update handles PUT /api/events/:id.
//
// @Summary      Partially update an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                 true  "Event id"
// @Param        body  body      updateEventRequest  true  "Fields to change"
// @Success      200   {object}  apiResponse
// @Failure      400   {object}  apiResponse
// @Failure      404   {object}  apiResponse
// @Router       /api/events/{id} [put]
func (h *EventHandler) Update(c echo.Context) error {
	id, err := pathID(c, "Invalid event ID")
	if err != nil {
		return err
	}

	var req updateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err = h.service.Update(c.Request().Context(), id, ports.UpdateEventInput{
		Title:       req.Title,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	})
	if err != nil {
		return err
	}

	metrics.EventWritesTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, apiResponse{Success: true, Message: "Event updated successfully"})
}

// Delete handles DELETE /api/events/:id.
//
// @Summary      Delete an event
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Event id"
// @Success      200  {object}  apiResponse
// @Failure      404  {object}  apiResponse
// @Router       /api/events/{id} [delete]
func (h *EventHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "Invalid event ID")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.EventWritesTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, apiResponse{Success: true, Message: "Event deleted successfully"})
}

// queryInt parses an optional integer query parameter.
func queryInt(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

// pathID parses the numeric :id path parameter.
func pathID(c echo.Context, badIDMsg string) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, badIDMsg)
	}
	return id, nil
}
