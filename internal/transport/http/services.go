package http

import (
	"log/slog"
	"net/http"
	"strings"

	"art_studio/internal/domain/models"
	"art_studio/internal/transport/http/dto"
	"art_studio/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

// GetServices godoc
// @Summary List services
// @Tags services
// @Produce json
// @Param id query string false "Service UUID"
// @Param search query string false "Matches title and description"
// @Param limit query int false "1..100, default 50"
// @Param all query bool false "Include inactive (admin only)"
// @Success 200 {object} response.Response{data=[]models.Service}
// @Failure 404 {object} response.Response
// @Router /api/services [get]
func (r *Routers) GetServices(c echo.Context) error {
	const op = "http.routers.GetServices"

	log := r.log.With(
		slog.String("op", op),
	)

	var (
		id, search string
		limit      int
		all        bool
	)
	err := echo.QueryParamsBinder(c).
		String("id", &id).
		String("search", &search).
		Int("limit", &limit).
		Bool("all", &all).
		BindError()
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if strings.TrimSpace(id) != "" {
		sid, err := queryID(c)
		if err != nil {
			return r.fail(c, log, err)
		}

		service, err := r.Studio.GetService(c.Request().Context(), sid, isAdmin(c))
		if err != nil {
			return r.fail(c, log, err)
		}

		return c.JSON(http.StatusOK, response.SuccessResponse(service))
	}

	services, err := r.Studio.ListServices(c.Request().Context(), models.ServiceFilter{
		Search:          search,
		IncludeInactive: all && isAdmin(c),
		Limit:           limit,
	})
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(services))
}

// CreateService godoc
// @Summary Create service
// @Tags services
// @Accept json
// @Produce json
// @Param request body dto.ServiceInput true "Service"
// @Success 201 {object} response.Response{data=models.Service}
// @Failure 400 {object} response.Response
// @Security ApiKeyAuth
// @Router /api/services [post]
func (r *Routers) CreateService(c echo.Context) error {
	const op = "http.routers.CreateService"

	log := r.log.With(
		slog.String("op", op),
	)

	var in dto.ServiceInput
	if err := r.bindAndValidate(c, &in); err != nil {
		return r.badRequestOr(c, log, err)
	}

	service, err := r.Studio.CreateService(c.Request().Context(), in)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(service))
}

// UpdateService godoc
// @Summary Update service
// @Tags services
// @Accept json
// @Produce json
// @Param id query string true "Service UUID"
// @Param request body dto.ServiceInput true "Changed fields"
// @Success 200 {object} response.Response{data=models.Service}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Security ApiKeyAuth
// @Router /api/services [put]
func (r *Routers) UpdateService(c echo.Context) error {
	const op = "http.routers.UpdateService"

	log := r.log.With(
		slog.String("op", op),
	)

	id, err := queryID(c)
	if err != nil {
		return r.fail(c, log, err)
	}

	var in dto.ServiceInput
	if err := r.bindAndValidate(c, &in); err != nil {
		return r.badRequestOr(c, log, err)
	}

	service, err := r.Studio.UpdateService(c.Request().Context(), id, in)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(service))
}

// DeleteService godoc
// @Summary Delete service
// @Tags services
// @Produce json
// @Param id query string true "Service UUID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security ApiKeyAuth
// @Router /api/services [delete]
func (r *Routers) DeleteService(c echo.Context) error {
	const op = "http.routers.DeleteService"

	log := r.log.With(
		slog.String("op", op),
	)

	id, err := queryID(c)
	if err != nil {
		return r.fail(c, log, err)
	}

	if err := r.Studio.DeleteService(c.Request().Context(), id); err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessMessage("Service deleted"))
}

// ReorderServices godoc
// @Summary Reorder services
// @Tags services
// @Accept json
// @Produce json
// @Param request body dto.ReorderRequest true "New positions"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Security ApiKeyAuth
// @Router /api/services/order [patch]
func (r *Routers) ReorderServices(c echo.Context) error {
	const op = "http.routers.ReorderServices"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.ReorderRequest
	if err := r.bindAndValidate(c, &req); err != nil {
		return r.badRequestOr(c, log, err)
	}

	if err := r.Studio.ReorderServices(c.Request().Context(), req.Items); err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessMessage("Order updated"))
}
