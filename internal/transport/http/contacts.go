package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"art_studio/internal/domain/models"
	"art_studio/internal/transport/http/dto"
	"art_studio/internal/transport/http/dto/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SubmitContact godoc
// @Summary Submit contact form
// @Description Public endpoint. Every field is required; the request is stored with status new.
// @Tags contacts
// @Accept json
// @Produce json
// @Param request body dto.ContactInput true "Enquiry"
// @Success 201 {object} response.Response{data=models.ContactRequest}
// @Failure 400 {object} response.Response
// @Router /api/contacts [post]
func (r *Routers) SubmitContact(c echo.Context) error {
	const op = "http.routers.SubmitContact"

	log := r.log.With(
		slog.String("op", op),
		slog.String("client_ip", c.RealIP()),
	)

	var in dto.ContactInput
	if err := r.bindAndValidate(c, &in); err != nil {
		return r.badRequestOr(c, log, err)
	}

	contact, err := r.Contacts.SubmitContact(c.Request().Context(), in.ToModel())
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(contact))
}

// GetContacts godoc
// @Summary List contact requests
// @Tags contacts
// @Produce json
// @Param id query string false "Contact UUID"
// @Param status query string false "new, read or archived"
// @Param search query string false "Matches name, email and message"
// @Param limit query int false "1..100, default 50"
// @Success 200 {object} response.Response{data=[]models.ContactRequest}
// @Failure 401 {object} response.Response
// @Security ApiKeyAuth
// @Router /api/contacts [get]
func (r *Routers) GetContacts(c echo.Context) error {
	const op = "http.routers.GetContacts"

	log := r.log.With(
		slog.String("op", op),
	)

	var (
		id, status string
		filter     models.ContactFilter
	)
	err := echo.QueryParamsBinder(c).
		String("id", &id).
		String("status", &status).
		String("search", &filter.Search).
		Int("limit", &filter.Limit).
		BindError()
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if strings.TrimSpace(id) != "" {
		cid, err := queryID(c)
		if err != nil {
			return r.fail(c, log, err)
		}

		contact, err := r.Contacts.GetContact(c.Request().Context(), cid)
		if err != nil {
			return r.fail(c, log, err)
		}

		return c.JSON(http.StatusOK, response.SuccessResponse(contact))
	}

	filter.Status = models.ContactStatus(strings.TrimSpace(status))

	contacts, err := r.Contacts.ListContacts(c.Request().Context(), filter)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(contacts))
}

// UpdateContactStatus godoc
// @Summary Change contact status
// @Tags contacts
// @Accept json
// @Produce json
// @Param request body dto.ContactStatusInput true "Id and new status"
// @Success 200 {object} response.Response{data=models.ContactRequest}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Security ApiKeyAuth
// @Router /api/contacts [patch]
func (r *Routers) UpdateContactStatus(c echo.Context) error {
	const op = "http.routers.UpdateContactStatus"

	log := r.log.With(
		slog.String("op", op),
	)

	var in dto.ContactStatusInput
	if err := r.bindAndValidate(c, &in); err != nil {
		return r.badRequestOr(c, log, err)
	}

	id, err := uuid.Parse(in.ID)
	if err != nil {
		return r.fail(c, log, fmt.Errorf("%w: id must be a UUID", models.ErrValidation))
	}

	contact, err := r.Contacts.SetStatus(c.Request().Context(), id, models.ContactStatus(in.Status))
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(contact))
}

// DeleteContact godoc
// @Summary Delete contact request
// @Tags contacts
// @Produce json
// @Param id query string true "Contact UUID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security ApiKeyAuth
// @Router /api/contacts [delete]
func (r *Routers) DeleteContact(c echo.Context) error {
	const op = "http.routers.DeleteContact"

	log := r.log.With(
		slog.String("op", op),
	)

	id, err := queryID(c)
	if err != nil {
		return r.fail(c, log, err)
	}

	if err := r.Contacts.DeleteContact(c.Request().Context(), id); err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessMessage("Contact request deleted"))
}
