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

// GetAwards godoc
// @Summary List awards
// @Description Sorted by year then newest first.
// @Tags awards
// @Produce json
// @Param id query string false "Award UUID"
// @Param search query string false "Matches title, organization and description"
// @Param year query int false "Exact year"
// @Param limit query int false "1..100, default 50"
// @Success 200 {object} response.Response{data=[]models.Award}
// @Router /api/awards [get]
func (r *Routers) GetAwards(c echo.Context) error {
	const op = "http.routers.GetAwards"

	log := r.log.With(
		slog.String("op", op),
	)

	var (
		id     string
		filter models.AwardFilter
	)
	err := echo.QueryParamsBinder(c).
		String("id", &id).
		String("search", &filter.Search).
		Int("year", &filter.Year).
		Int("limit", &filter.Limit).
		BindError()
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if strings.TrimSpace(id) != "" {
		aid, err := queryID(c)
		if err != nil {
			return r.fail(c, log, err)
		}

		award, err := r.Awards.GetAward(c.Request().Context(), aid)
		if err != nil {
			return r.fail(c, log, err)
		}

		return c.JSON(http.StatusOK, response.SuccessResponse(award))
	}

	awards, err := r.Awards.ListAwards(c.Request().Context(), filter)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(awards))
}

// CreateAward godoc
// @Summary Create award
// @Tags awards
// @Accept json
// @Produce json
// @Param request body dto.AwardInput true "Award"
// @Success 201 {object} response.Response{data=models.Award}
// @Failure 400 {object} response.Response
// @Security ApiKeyAuth
// @Router /api/awards [post]
func (r *Routers) CreateAward(c echo.Context) error {
	const op = "http.routers.CreateAward"

	log := r.log.With(
		slog.String("op", op),
	)

	var in dto.AwardInput
	if err := r.bindAndValidate(c, &in); err != nil {
		return r.badRequestOr(c, log, err)
	}

	award, err := r.Awards.CreateAward(c.Request().Context(), in)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(award))
}

// UpdateAward godoc
// @Summary Update award
// @Tags awards
// @Accept json
// @Produce json
// @Param id query string true "Award UUID"
// @Param request body dto.AwardInput true "Changed fields"
// @Success 200 {object} response.Response{data=models.Award}
// @Failure 404 {object} response.Response
// @Security ApiKeyAuth
// @Router /api/awards [put]
func (r *Routers) UpdateAward(c echo.Context) error {
	const op = "http.routers.UpdateAward"

	log := r.log.With(
		slog.String("op", op),
	)

	id, err := queryID(c)
	if err != nil {
		return r.fail(c, log, err)
	}

	var in dto.AwardInput
	if err := r.bindAndValidate(c, &in); err != nil {
		return r.badRequestOr(c, log, err)
	}

	award, err := r.Awards.UpdateAward(c.Request().Context(), id, in)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(award))
}

// DeleteAward godoc
// @Summary Delete award
// @Tags awards
// @Produce json
// @Param id query string true "Award UUID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security ApiKeyAuth
// @Router /api/awards [delete]
func (r *Routers) DeleteAward(c echo.Context) error {
	const op = "http.routers.DeleteAward"

	log := r.log.With(
		slog.String("op", op),
	)

	id, err := queryID(c)
	if err != nil {
		return r.fail(c, log, err)
	}

	if err := r.Awards.DeleteAward(c.Request().Context(), id); err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessMessage("Award deleted"))
}
