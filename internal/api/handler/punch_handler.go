package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/peopleops/employee-system/internal/api/metrics"
	"github.com/peopleops/employee-system/internal/core/domain"
	"github.com/peopleops/employee-system/internal/core/ports"
)

// PunchHandler handles HTTP requests for time-clock punches.
type PunchHandler struct {
	service ports.PunchService
}

func NewPunchHandler(service ports.PunchService) *PunchHandler {
	return &PunchHandler{service: service}
}

// Punch handles POST /v1/punches — records a clock-in/out for the caller.
//
// @Summary      Record a time-clock punch
// @Tags         punches
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      punchRequest  true  "Punch details"
// @Success      201   {object}  domain.PunchRecord
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/punches [post]
func (h *PunchHandler) Punch(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req punchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	punch, err := h.service.Punch(c.Request().Context(), claims.Subject, domain.PunchKind(req.Kind), req.Notes)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicatePunch) {
			metrics.PunchesDedupTotal.Inc()
		}
		return err
	}

	metrics.PunchesTotal.WithLabelValues(string(punch.Kind)).Inc()
	return c.JSON(http.StatusCreated, punch)
}

// ListMine handles GET /v1/punches — lists the caller's punches in a window.
//
// @Summary      List own punches
// @Tags         punches
// @Produce      json
// @Security     BearerAuth
// @Param        from  query     string  false  "Start date (YYYY-MM-DD, default today)"
// @Param        to    query     string  false  "End date exclusive (YYYY-MM-DD, default tomorrow)"
// @Success      200   {array}   domain.PunchRecord
// @Failure      401   {object}  errorResponse
// @Router       /v1/punches [get]
func (h *PunchHandler) ListMine(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	if v := c.QueryParam("from"); v != "" {
		parsed, perr := time.ParseInLocation(dateLayout, v, time.UTC)
		if perr != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid from date")
		}
		from = parsed
	}
	if v := c.QueryParam("to"); v != "" {
		parsed, perr := time.ParseInLocation(dateLayout, v, time.UTC)
		if perr != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid to date")
		}
		to = parsed
	}

	punches, err := h.service.ListByUser(c.Request().Context(), claims.Subject, from, to)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, punches)
}
