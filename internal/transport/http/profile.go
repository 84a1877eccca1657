package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"art_studio/internal/domain/models"
	"art_studio/internal/transport/http/dto"
	"art_studio/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

// GetProfile godoc
// @Summary Active profile
// @Tags profile
// @Produce json
// @Success 200 {object} response.Response{data=models.Profile}
// @Failure 404 {object} response.Response
// @Router /api/profile [get]
func (r *Routers) GetProfile(c echo.Context) error {
	const op = "http.routers.GetProfile"

	log := r.log.With(
		slog.String("op", op),
	)

	profile, err := r.Profile.ActiveProfile(c.Request().Context())
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(profile))
}

// UpdateProfile godoc
// @Summary Update profile
// @Description Accepts JSON, or multipart form data with homeImage and aboutImage files. socialLinks is a JSON object in both cases.
// @Tags profile
// @Accept json,mpfd
// @Produce json
// @Param request body dto.ProfileInput false "Changed fields"
// @Param homeImage formData file false "Home page image"
// @Param aboutImage formData file false "About page image"
// @Success 200 {object} response.Response{data=models.Profile}
// @Failure 400 {object} response.Response
// @Security ApiKeyAuth
// @Router /api/profile [put]
func (r *Routers) UpdateProfile(c echo.Context) error {
	const op = "http.routers.UpdateProfile"

	log := r.log.With(
		slog.String("op", op),
	)

	var (
		in  dto.ProfileInput
		err error
	)
	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		in, err = r.parseProfileForm(c)
		if err == nil {
			err = c.Validate(in)
		}
		if err != nil {
			return r.fail(c, log, err)
		}
	} else if err := r.bindAndValidate(c, &in); err != nil {
		return r.badRequestOr(c, log, err)
	}

	profile, err := r.Profile.UpdateProfile(c.Request().Context(), in)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(profile))
}

// parseProfileForm reads a multipart profile update. Uploaded image files
// are stored first and replaced by their URLs.
func (r *Routers) parseProfileForm(c echo.Context) (dto.ProfileInput, error) {
	var in dto.ProfileInput

	form, err := c.MultipartForm()
	if err != nil {
		return in, fmt.Errorf("%w: %v", models.ErrValidation, err)
	}

	text := func(name string) *string {
		if vs, ok := form.Value[name]; ok && len(vs) > 0 {
			v := vs[0]
			return &v
		}
		return nil
	}

	in.Name = text("name")
	in.Title = text("title")
	in.Bio = text("bio")
	in.Email = text("email")
	in.Phone = text("phone")
	in.Location = text("location")
	in.HomeImage = text("homeImage")
	in.AboutImage = text("aboutImage")

	if raw := text("socialLinks"); raw != nil && strings.TrimSpace(*raw) != "" {
		var links models.SocialLinks
		if err := json.Unmarshal([]byte(*raw), &links); err != nil {
			return in, fmt.Errorf("%w: socialLinks must be a JSON object", models.ErrValidation)
		}
		in.SocialLinks = &links
	}

	images := []struct {
		field string
		dst   **string
	}{
		{"homeImage", &in.HomeImage},
		{"aboutImage", &in.AboutImage},
	}
	for _, img := range images {
		field, dst := img.field, img.dst

		files := form.File[field]
		if len(files) == 0 {
			continue
		}

		fh := files[0]
		f, err := fh.Open()
		if err != nil {
			return in, fmt.Errorf("%w: cannot read %s", models.ErrValidation, field)
		}

		url, err := r.Media.UploadImage(c.Request().Context(), dto.ImageUpload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get(echo.HeaderContentType),
			Body:        f,
		})
		f.Close()
		if err != nil {
			return in, err
		}

		*dst = &url
	}

	return in, nil
}
