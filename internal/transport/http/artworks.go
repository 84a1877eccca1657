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

// GetArtworks godoc
// @Summary List artworks
// @Description Returns one artwork when id is set, otherwise a filtered list sorted by order then newest. Inactive artworks are only listed for admins asking all=true.
// @Tags artworks
// @Produce json
// @Param id query string false "Artwork UUID"
// @Param search query string false "Matches title, description and medium"
// @Param category query string false "Exact category, case-insensitive"
// @Param featured query bool false "Only featured / non-featured"
// @Param limit query int false "1..100, default 50"
// @Param all query bool false "Include inactive (admin only)"
// @Success 200 {object} response.Response{data=[]models.Artwork}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/artworks [get]
func (r *Routers) GetArtworks(c echo.Context) error {
	const op = "http.routers.GetArtworks"

	log := r.log.With(
		slog.String("op", op),
	)

	var q dto.ArtworkQuery
	err := echo.QueryParamsBinder(c).
		String("id", &q.ID).
		String("search", &q.Search).
		String("category", &q.Category).
		Int("limit", &q.Limit).
		Bool("all", &q.All).
		BindError()
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if q.Featured, err = optionalBool(c, "featured"); err != nil {
		return r.fail(c, log, err)
	}

	admin := q.All && isAdmin(c)

	if strings.TrimSpace(q.ID) != "" {
		id, err := queryID(c)
		if err != nil {
			return r.fail(c, log, err)
		}

		artwork, err := r.Artworks.GetArtwork(c.Request().Context(), id, isAdmin(c))
		if err != nil {
			return r.fail(c, log, err)
		}

		return c.JSON(http.StatusOK, response.SuccessResponse(artwork))
	}

	artworks, err := r.Artworks.ListArtworks(c.Request().Context(), models.ArtworkFilter{
		Search:          q.Search,
		Category:        q.Category,
		Featured:        q.Featured,
		IncludeInactive: admin,
		Limit:           q.Limit,
	})
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(artworks))
}

// CreateArtwork godoc
// @Summary Create artwork
// @Description Images may be URLs or base64 data URIs, which are uploaded first.
// @Tags artworks
// @Accept json
// @Produce json
// @Param request body dto.ArtworkInput true "Artwork"
// @Success 201 {object} response.Response{data=models.Artwork}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Security ApiKeyAuth
// @Router /api/artworks [post]
func (r *Routers) CreateArtwork(c echo.Context) error {
	const op = "http.routers.CreateArtwork"

	log := r.log.With(
		slog.String("op", op),
	)

	var in dto.ArtworkInput
	if err := r.bindAndValidate(c, &in); err != nil {
		return r.badRequestOr(c, log, err)
	}

	artwork, err := r.Artworks.CreateArtwork(c.Request().Context(), in)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(artwork))
}

// UpdateArtwork godoc
// @Summary Update artwork
// @Description Fields left out of the body keep their stored value.
// @Tags artworks
// @Accept json
// @Produce json
// @Param id query string true "Artwork UUID"
// @Param request body dto.ArtworkInput true "Changed fields"
// @Success 200 {object} response.Response{data=models.Artwork}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Security ApiKeyAuth
// @Router /api/artworks [put]
func (r *Routers) UpdateArtwork(c echo.Context) error {
	const op = "http.routers.UpdateArtwork"

	log := r.log.With(
		slog.String("op", op),
	)

	id, err := queryID(c)
	if err != nil {
		return r.fail(c, log, err)
	}

	var in dto.ArtworkInput
	if err := r.bindAndValidate(c, &in); err != nil {
		return r.badRequestOr(c, log, err)
	}

	artwork, err := r.Artworks.UpdateArtwork(c.Request().Context(), id, in)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(artwork))
}

// DeleteArtwork godoc
// @Summary Delete artwork
// @Tags artworks
// @Produce json
// @Param id query string true "Artwork UUID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security ApiKeyAuth
// @Router /api/artworks [delete]
func (r *Routers) DeleteArtwork(c echo.Context) error {
	const op = "http.routers.DeleteArtwork"

	log := r.log.With(
		slog.String("op", op),
	)

	id, err := queryID(c)
	if err != nil {
		return r.fail(c, log, err)
	}

	if err := r.Artworks.DeleteArtwork(c.Request().Context(), id); err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessMessage("Artwork deleted"))
}

// ReorderArtworks godoc
// @Summary Reorder artworks
// @Description Applies every position in one transaction. An unknown id rolls the batch back.
// @Tags artworks
// @Accept json
// @Produce json
// @Param request body dto.ReorderRequest true "New positions"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Security ApiKeyAuth
// @Router /api/artworks/order [patch]
func (r *Routers) ReorderArtworks(c echo.Context) error {
	const op = "http.routers.ReorderArtworks"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.ReorderRequest
	if err := r.bindAndValidate(c, &req); err != nil {
		return r.badRequestOr(c, log, err)
	}

	if err := r.Artworks.ReorderArtworks(c.Request().Context(), req.Items); err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessMessage("Order updated"))
}
