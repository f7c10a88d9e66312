package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peopleops/employee-system/internal/core/domain"
	"github.com/peopleops/employee-system/internal/core/ports"
)

// DepartmentHandler handles HTTP requests for department CRUD.
type DepartmentHandler struct {
	service ports.DepartmentService
}

func NewDepartmentHandler(service ports.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{service: service}
}

// Create handles POST /v1/departments.
//
// @Summary      Create a department
// @Tags         departments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      departmentRequest  true  "Department details"
// @Success      201   {object}  domain.Department
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/departments [post]
func (h *DepartmentHandler) Create(c echo.Context) error {
	var req departmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	dept, err := h.service.Create(c.Request().Context(), req.Name, req.Description, req.ManagerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dept)
}

// Get handles GET /v1/departments/:id.
//
// @Summary      Get a department
// @Tags         departments
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Department id"
// @Success      200 {object}  domain.Department
// @Failure      404 {object}  errorResponse
// @Router       /v1/departments/{id} [get]
func (h *DepartmentHandler) Get(c echo.Context) error {
	dept, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dept)
}

// List handles GET /v1/departments.
//
// @Summary      List departments
// @Tags         departments
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array}  domain.Department
// @Router       /v1/departments [get]
func (h *DepartmentHandler) List(c echo.Context) error {
	depts, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, depts)
}

// Update handles PUT /v1/departments/:id.
//
// @Summary      Update a department
// @Tags         departments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Department id"
// @Param        body  body      departmentRequest  true  "Department details"
// @Success      200   {object}  domain.Department
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/departments/{id} [put]
func (h *DepartmentHandler) Update(c echo.Context) error {
	var req departmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	dept, err := h.service.Update(c.Request().Context(), &domain.Department{
		ID:          c.Param("id"),
		Name:        req.Name,
		Description: req.Description,
		ManagerID:   req.ManagerID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dept)
}

// Delete handles DELETE /v1/departments/:id.
//
// @Summary      Delete a department
// @Tags         departments
// @Security     BearerAuth
// @Param        id  path  string  true  "Department id"
// @Success      204
// @Failure      404 {object}  errorResponse
// @Router       /v1/departments/{id} [delete]
func (h *DepartmentHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
