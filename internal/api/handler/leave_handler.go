package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/peopleops/employee-system/internal/core/domain"
	"github.com/peopleops/employee-system/internal/core/ports"
)

const dateLayout = "2006-01-02"

// LeaveHandler handles HTTP requests for leave request flows.
type LeaveHandler struct {
	service ports.LeaveService
}

func NewLeaveHandler(service ports.LeaveService) *LeaveHandler {
	return &LeaveHandler{service: service}
}

// Create handles POST /v1/leave — files a leave request for the caller.
//
// @Summary      File a leave request
// @Tags         leave
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createLeaveRequest  true  "Leave request details"
// @Success      201   {object}  leaveResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/leave [post]
func (h *LeaveHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createLeaveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	start, _ := time.ParseInLocation(dateLayout, req.StartDate, time.UTC)
	end, _ := time.ParseInLocation(dateLayout, req.EndDate, time.UTC)

	created, err := h.service.Create(c.Request().Context(), ports.CreateLeaveInput{
		UserID:    claims.Subject,
		Reason:    req.Reason,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toLeaveResponse(created))
}

// Approve handles POST /v1/leave/:id/approve.
//
// @Summary      Approve a pending leave request
// @Tags         leave
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Leave request id"
// @Success      200 {object}  leaveResponse
// @Failure      401 {object}  errorResponse
// @Failure      404 {object}  errorResponse
// @Failure      422 {object}  errorResponse
// @Router       /v1/leave/{id}/approve [post]
func (h *LeaveHandler) Approve(c echo.Context) error {
	return h.decide(c, h.service.Approve)
}

// Reject handles POST /v1/leave/:id/reject.
//
// @Summary      Reject a pending leave request
// @Tags         leave
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Leave request id"
// @Success      200 {object}  leaveResponse
// @Failure      401 {object}  errorResponse
// @Failure      404 {object}  errorResponse
// @Failure      422 {object}  errorResponse
// @Router       /v1/leave/{id}/reject [post]
func (h *LeaveHandler) Reject(c echo.Context) error {
	return h.decide(c, h.service.Reject)
}

func (h *LeaveHandler) decide(c echo.Context, fn func(ctx context.Context, id, managerID string) (*domain.LeaveRequest, error)) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	updated, err := fn(c.Request().Context(), c.Param("id"), claims.Subject)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toLeaveResponse(updated))
}

// ListMine handles GET /v1/leave — lists the caller's leave requests.
//
// @Summary      List own leave requests
// @Tags         leave
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array}   leaveResponse
// @Failure      401 {object}  errorResponse
// @Router       /v1/leave [get]
func (h *LeaveHandler) ListMine(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	requests, err := h.service.ListByUser(c.Request().Context(), claims.Subject)
	if err != nil {
		return err
	}

	out := make([]leaveResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, toLeaveResponse(r))
	}
	return c.JSON(http.StatusOK, out)
}

func toLeaveResponse(r *domain.LeaveRequest) leaveResponse {
	return leaveResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		ManagerID:   r.ManagerID,
		Reason:      r.Reason,
		StartDate:   r.StartDate.Format(dateLayout),
		EndDate:     r.EndDate.Format(dateLayout),
		Status:      string(r.Status),
		RequestedAt: r.RequestedAt,
		DecisionAt:  r.DecisionAt,
		CompletedAt: r.CompletedAt,
	}
}
