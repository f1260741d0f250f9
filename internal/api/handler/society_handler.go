package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ieee-kiit/events-api/internal/api/metrics"
	"github.com/ieee-kiit/events-api/internal/core/ports"
)

// SocietyHandler handles HTTP requests for society operations.
type SocietyHandler struct {
	service ports.SocietyService
}

func NewSocietyHandler(service ports.SocietyService) *SocietyHandler {
	return &SocietyHandler{service: service}
}

// List handles GET /api/societies.
//
// @Summary      List societies
// @Tags         societies
// @Produce      json
// @Param        limit   query     int  false  "Page size, 1-1000 (default 100)"
// @Param        offset  query     int  false  "Page offset (default 0)"
// @Success      200     {object}  apiResponse
// @Failure      400     {object}  apiResponse
// @Router       /api/societies [get]
func (h *SocietyHandler) List(c echo.Context) error {
	limit, err := queryInt(c, "limit", 100)
	if err != nil || limit < 1 || limit > 1000 {
		return echo.NewHTTPError(http.StatusBadRequest, "Limit must be between 1 and 1000")
	}
	offset, err := queryInt(c, "offset", 0)
	if err != nil || offset < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Offset must be non-negative")
	}

	societies, total, err := h.service.List(c.Request().Context(), limit, offset)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, apiResponse{
		Success:    true,
		Data:       societies,
		Pagination: &paginationResponse{Limit: limit, Offset: offset, Count: total},
	})
}

// Get handles GET /api/societies/:id.
//
// @Summary      Get a society by id
// @Tags         societies
// @Produce      json
// @Param        id   path      int  true  "Society id"
// @Success      200  {object}  apiResponse
// @Failure      404  {object}  apiResponse
// @Router       /api/societies/{id} [get]
func (h *SocietyHandler) Get(c echo.Context) error {
	id, err := pathID(c, "Invalid society ID")
	if err != nil {
		return err
	}

	society, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, apiResponse{Success: true, Data: society})
}

// Create handles POST /api/societies.
//
// @Summary      Create a society
// @Tags         societies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createSocietyRequest  true  "Society fields"
// @Success      201   {object}  apiResponse
// @Failure      400   {object}  apiResponse
// @Failure      401   {object}  apiResponse
// @Router       /api/societies [post]
func (h *SocietyHandler) Create(c echo.Context) error {
	var req createSocietyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	society, err := h.service.Create(c.Request().Context(), ports.CreateSocietyInput{
		Name:        req.Name,
		LogoURL:     req.LogoURL,
		ChairName:   req.ChairName,
		Description: req.Description,
		FacultyName: req.FacultyName,
	})
	if err != nil {
		return err
	}

	metrics.SocietyWritesTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, apiResponse{
		Success: true,
		Data:    society,
		Message: "Society created successfully",
	})
}

// Update handles PUT /api/societies/:id.
//
// @Summary      Partially update a society
// @Tags         societies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                   true  "Society id"
// @Param        body  body      updateSocietyRequest  true  "Fields to change"
// @Success      200   {object}  apiResponse
// @Failure      400   {object}  apiResponse
// @Failure      404   {object}  apiResponse
// @Router       /api/societies/{id} [put]
func (h *SocietyHandler) Update(c echo.Context) error {
	id, err := pathID(c, "Invalid society ID")
	if err != nil {
		return err
	}

	var req updateSocietyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err = h.service.Update(c.Request().Context(), id, ports.UpdateSocietyInput{
		Name:        req.Name,
		LogoURL:     req.LogoURL,
		ChairName:   req.ChairName,
		Description: req.Description,
		FacultyName: req.FacultyName,
	})
	if err != nil {
		return err
	}

	metrics.SocietyWritesTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, apiResponse{Success: true, Message: "Society updated successfully"})
}

// Delete handles DELETE /api/societies/:id.
//
// @Summary      Delete a society
// @Tags         societies
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Society id"
// @Success      200  {object}  apiResponse
// @Failure      404  {object}  apiResponse
// @Router       /api/societies/{id} [delete]
func (h *SocietyHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "Invalid society ID")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.SocietyWritesTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, apiResponse{Success: true, Message: "Society deleted successfully"})
}
