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

// GetTestimonials godoc
// @Summary List testimonials
// @Tags testimonials
// @Produce json
// @Param id query string false "Testimonial UUID"
// @Param search query string false "Matches client name, role and content"
// @Param limit query int false "1..100, default 50"
// @Success 200 {object} response.Response{data=[]models.Testimonial}
// @Router /api/testimonials [get]
func (r *Routers) GetTestimonials(c echo.Context) error {
	const op = "http.routers.GetTestimonials"

	log := r.log.With(
		slog.String("op", op),
	)

	var (
		id, search string
		limit      int
	)
	err := echo.QueryParamsBinder(c).
		String("id", &id).
		String("search", &search).
		Int("limit", &limit).
		BindError()
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if strings.TrimSpace(id) != "" {
		tid, err := queryID(c)
		if err != nil {
			return r.fail(c, log, err)
		}

		t, err := r.Testimonials.GetTestimonial(c.Request().Context(), tid)
		if err != nil {
			return r.fail(c, log, err)
		}

		return c.JSON(http.StatusOK, response.SuccessResponse(t))
	}

	list, err := r.Testimonials.ListTestimonials(c.Request().Context(), models.TestimonialFilter{
		Search: search,
		Limit:  limit,
	})
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(list))
}

// CreateTestimonial godoc
// @Summary Create testimonial
// @Tags testimonials
// @Accept json
// @Produce json
// @Param request body dto.TestimonialInput true "Testimonial"
// @Success 201 {object} response.Response{data=models.Testimonial}
// @Failure 400 {object} response.Response
// @Security ApiKeyAuth
// @Router /api/testimonials [post]
func (r *Routers) CreateTestimonial(c echo.Context) error {
	const op = "http.routers.CreateTestimonial"

	log := r.log.With(
		slog.String("op", op),
	)

	var in dto.TestimonialInput
	if err := r.bindAndValidate(c, &in); err != nil {
		return r.badRequestOr(c, log, err)
	}

	t, err := r.Testimonials.CreateTestimonial(c.Request().Context(), in)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(t))
}

// UpdateTestimonial godoc
// @Summary Update testimonial
// @Tags testimonials
// @Accept json
// @Produce json
// @Param id query string true "Testimonial UUID"
// @Param request body dto.TestimonialInput true "Changed fields"
// @Success 200 {object} response.Response{data=models.Testimonial}
// @Failure 404 {object} response.Response
// @Security ApiKeyAuth
// @Router /api/testimonials [put]
func (r *Routers) UpdateTestimonial(c echo.Context) error {
	const op = "http.routers.UpdateTestimonial"

	log := r.log.With(
		slog.String("op", op),
	)

	id, err := queryID(c)
	if err != nil {
		return r.fail(c, log, err)
	}

	var in dto.TestimonialInput
	if err := r.bindAndValidate(c, &in); err != nil {
		return r.badRequestOr(c, log, err)
	}

	t, err := r.Testimonials.UpdateTestimonial(c.Request().Context(), id, in)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(t))
}

// DeleteTestimonial godoc
// @Summary Delete testimonial
// @Tags testimonials
// @Produce json
// @Param id query string true "Testimonial UUID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security ApiKeyAuth
// @Router /api/testimonials [delete]
func (r *Routers) DeleteTestimonial(c echo.Context) error {
	const op = "http.routers.DeleteTestimonial"

	log := r.log.With(
		slog.String("op", op),
	)

	id, err := queryID(c)
	if err != nil {
		return r.fail(c, log, err)
	}

	if err := r.Testimonials.DeleteTestimonial(c.Request().Context(), id); err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessMessage("Testimonial deleted"))
}
