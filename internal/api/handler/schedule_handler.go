package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/peopleops/employee-system/internal/core/domain"
	"github.com/peopleops/employee-system/internal/core/ports"
)

// ScheduleHandler handles HTTP requests for work schedule assignment.
type ScheduleHandler struct {
	service ports.ScheduleService
}

func NewScheduleHandler(service ports.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

// Assign handles PUT /v1/users/:id/schedule — replaces the user's weekly schedule.
//
// @Summary      Assign a weekly work schedule
// @Tags         schedules
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "User id"
// @Param        body  body      assignScheduleRequest  true  "Weekly shifts"
// @Success      200   {object}  domain.WorkSchedule
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/users/{id}/schedule [put]
func (h *ScheduleHandler) Assign(c echo.Context) error {
	var req assignScheduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	shifts := make([]domain.ShiftWindow, 0, len(req.Shifts))
	for _, s := range req.Shifts {
		shifts = append(shifts, domain.ShiftWindow{
			Weekday: time.Weekday(s.Weekday),
			Start:   s.Start,
			End:     s.End,
		})
	}

	schedule, err := h.service.Assign(c.Request().Context(), c.Param("id"), shifts)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, schedule)
}

// GetByUser handles GET /v1/users/:id/schedule.
//
// @Summary      Get a user's weekly schedule
// @Tags         schedules
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "User id"
// @Success      200 {object}  domain.WorkSchedule
// @Failure      404 {object}  errorResponse
// @Router       /v1/users/{id}/schedule [get]
func (h *ScheduleHandler) GetByUser(c echo.Context) error {
	schedule, err := h.service.GetByUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, schedule)
}
