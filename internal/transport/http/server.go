package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"art_studio/internal/domain/models"
	jwtlib "art_studio/internal/lib/jwt"
	"art_studio/internal/lib/logger/sl"
	"art_studio/internal/storage"
	"art_studio/internal/transport/http/dto"
	"art_studio/internal/transport/http/dto/request"
	"art_studio/internal/transport/http/dto/response"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	_ "art_studio/docs"
)

// ContextKeyToken is where the JWT middleware stores the parsed token.
const ContextKeyToken = "user"

type ArtworkService interface {
	CreateArtwork(ctx context.Context, in dto.ArtworkInput) (models.Artwork, error)
	UpdateArtwork(ctx context.Context, id uuid.UUID, in dto.ArtworkInput) (models.Artwork, error)
	DeleteArtwork(ctx context.Context, id uuid.UUID) error
	GetArtwork(ctx context.Context, id uuid.UUID, includeInactive bool) (models.Artwork, error)
	ListArtworks(ctx context.Context, filter models.ArtworkFilter) ([]models.Artwork, error)
	ReorderArtworks(ctx context.Context, updates []models.OrderUpdate) error
}

type StudioService interface {
	CreateService(ctx context.Context, in dto.ServiceInput) (models.Service, error)
	UpdateService(ctx context.Context, id uuid.UUID, in dto.ServiceInput) (models.Service, error)
	DeleteService(ctx context.Context, id uuid.UUID) error
	GetService(ctx context.Context, id uuid.UUID, includeInactive bool) (models.Service, error)
	ListServices(ctx context.Context, filter models.ServiceFilter) ([]models.Service, error)
	ReorderServices(ctx context.Context, updates []models.OrderUpdate) error
}

type TestimonialService interface {
	CreateTestimonial(ctx context.Context, in dto.TestimonialInput) (models.Testimonial, error)
	UpdateTestimonial(ctx context.Context, id uuid.UUID, in dto.TestimonialInput) (models.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id uuid.UUID) error
	GetTestimonial(ctx context.Context, id uuid.UUID) (models.Testimonial, error)
	ListTestimonials(ctx context.Context, filter models.TestimonialFilter) ([]models.Testimonial, error)
}

type AwardService interface {
	CreateAward(ctx context.Context, in dto.AwardInput) (models.Award, error)
	UpdateAward(ctx context.Context, id uuid.UUID, in dto.AwardInput) (models.Award, error)
	DeleteAward(ctx context.Context, id uuid.UUID) error
	GetAward(ctx context.Context, id uuid.UUID) (models.Award, error)
	ListAwards(ctx context.Context, filter models.AwardFilter) ([]models.Award, error)
}

type ProfileService interface {
	ActiveProfile(ctx context.Context) (models.Profile, error)
	UpdateProfile(ctx context.Context, in dto.ProfileInput) (models.Profile, error)
}

type ContactService interface {
	SubmitContact(ctx context.Context, contact models.ContactRequest) (models.ContactRequest, error)
	GetContact(ctx context.Context, id uuid.UUID) (models.ContactRequest, error)
	ListContacts(ctx context.Context, filter models.ContactFilter) ([]models.ContactRequest, error)
	SetStatus(ctx context.Context, id uuid.UUID, status models.ContactStatus) (models.ContactRequest, error)
	DeleteContact(ctx context.Context, id uuid.UUID) error
}

type MediaService interface {
	UploadImage(ctx context.Context, img dto.ImageUpload) (string, error)
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (models.AdminSession, error)
}

type TokenService interface {
	RevokeToken(ctx context.Context, claims *jwtlib.Claims) error
}

// Services groups everything the handlers depend on.
type Services struct {
	Artworks     ArtworkService
	Studio       StudioService
	Testimonials TestimonialService
	Awards       AwardService
	Profile      ProfileService
	Contacts     ContactService
	Media        MediaService
	Auth         AuthService
	Tokens       TokenService
}

type Routers struct {
	log *slog.Logger
	Services
}

func NewRouter(log *slog.Logger, services Services) *Routers {
	return &Routers{
		log:      log,
		Services: services,
	}
}

// Login godoc
// @Summary Admin login
// @Description Checks admin credentials and returns a bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Credentials"
// @Success 200 {object} response.Response{data=models.AdminSession}
// @Failure 400 {object} response.Response "Invalid request"
// @Failure 401 {object} response.Response "Invalid email or password"
// @Router /api/auth/admin/login [post]
func (r *Routers) Login(c echo.Context) error {
	const op = "http.routers.Login"

	log := r.log.With(
		slog.String("op", op),
	)

	var req request.LoginRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("invalid login request", slog.String("email", req.Email))
		return r.fail(c, log, err)
	}

	session, err := r.Auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(session))
}

// Logout godoc
// @Summary Admin logout
// @Description Revokes the bearer token until it expires.
// @Tags auth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Security ApiKeyAuth
// @Router /api/auth/admin/logout [post]
func (r *Routers) Logout(c echo.Context) error {
	const op = "http.routers.Logout"

	log := r.log.With(
		slog.String("op", op),
	)

	claims, ok := ClaimsFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, response.ErrorResponseWithDetails(response.CodeTokenMissing, "Authentication required"))
	}

	if err := r.Tokens.RevokeToken(c.Request().Context(), claims); err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessMessage("Logged out"))
}

// Verify godoc
// @Summary Verify token
// @Description Returns the claims of a valid bearer token.
// @Tags auth
// @Produce json
// @Success 200 {object} response.Response{data=models.TokenClaims}
// @Failure 401 {object} response.Response
// @Security ApiKeyAuth
// @Router /api/auth/verify [get]
func (r *Routers) Verify(c echo.Context) error {
	claims, ok := ClaimsFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, response.ErrorResponseWithDetails(response.CodeTokenMissing, "Authentication required"))
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(claims.ToModel()))
}

// ClaimsFromContext returns the admin claims the JWT middleware attached, if any.
func ClaimsFromContext(c echo.Context) (*jwtlib.Claims, bool) {
	token, ok := c.Get(ContextKeyToken).(*jwt.Token)
	if !ok || token == nil {
		return nil, false
	}

	claims, ok := token.Claims.(*jwtlib.Claims)
	return claims, ok
}

// isAdmin reports whether the request carries a verified admin token.
func isAdmin(c echo.Context) bool {
	claims, ok := ClaimsFromContext(c)
	return ok && claims.Role == models.RoleAdmin
}

// fail maps a service error onto the response envelope.
func (r *Routers) fail(c echo.Context, log *slog.Logger, err error) error {
	var verrs validator.ValidationErrors

	switch {
	case errors.As(err, &verrs):
		log.Warn("validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails(response.CodeValidation, validationMessage(verrs)))
	case errors.Is(err, models.ErrValidation), errors.Is(err, storage.ErrInvalidFileType):
		log.Warn("validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails(response.CodeValidation, trimOp(err)))
	case errors.Is(err, storage.ErrFileTooLarge):
		log.Warn("upload too large", sl.Err(err))
		return c.JSON(http.StatusRequestEntityTooLarge, response.ErrorResponseWithDetails(response.CodeValidation, "File is too large"))
	case errors.Is(err, storage.ErrNotFound):
		log.Info("record not found", sl.Err(err))
		return c.JSON(http.StatusNotFound, response.ErrorResponseWithDetails(response.CodeNotFound, "Record not found"))
	case errors.Is(err, models.ErrInvalidCredentials):
		log.Warn("authentication failed", sl.Err(err))
		return c.JSON(http.StatusUnauthorized, response.ErrAuthenticationFailed)
	case errors.Is(err, jwtlib.ErrTokenExpired):
		return c.JSON(http.StatusUnauthorized, response.ErrorResponseWithDetails(response.CodeTokenExpired, "Token expired"))
	case errors.Is(err, jwtlib.ErrTokenInvalid), errors.Is(err, models.ErrTokenRevoked):
		return c.JSON(http.StatusUnauthorized, response.ErrorResponseWithDetails(response.CodeTokenInvalid, "Token invalid"))
	}

	log.Error("request failed", sl.Err(err))
	return c.JSON(http.StatusInternalServerError, response.ErrInternal)
}

// trimOp drops the "op: " prefixes wrapped errors accumulate so clients see
// only the validation reason.
func trimOp(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, models.ErrValidation.Error()); i >= 0 {
		return msg[i:]
	}
	if i := strings.LastIndex(msg, ": "); i >= 0 {
		return msg[i+2:]
	}
	return msg
}

func validationMessage(verrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fe.Field()+" failed on "+fe.Tag())
	}
	return models.ErrValidation.Error() + ": " + strings.Join(parts, ", ")
}

// bindAndValidate decodes the JSON body into dst and runs the validator.
func (r *Routers) bindAndValidate(c echo.Context, dst interface{}) error {
	if err := c.Bind(dst); err != nil {
		return errBadRequest
	}
	if err := c.Validate(dst); err != nil {
		return err
	}
	return nil
}

var errBadRequest = errors.New("invalid request body")

// badRequestOr answers 400 invalid_request for malformed bodies and defers
// everything else to fail.
func (r *Routers) badRequestOr(c echo.Context, log *slog.Logger, err error) error {
	if errors.Is(err, errBadRequest) {
		log.Warn("failed to bind request")
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}
	return r.fail(c, log, err)
}

// queryID reads the required ?id= parameter.
func queryID(c echo.Context) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.QueryParam("id"))
	if raw == "" {
		return uuid.Nil, fmt.Errorf("%w: id is required", models.ErrValidation)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: id must be a UUID", models.ErrValidation)
	}
	return id, nil
}

// optionalBool parses a tri-state query flag: absent means no filter.
func optionalBool(c echo.Context, name string) (*bool, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be true or false", models.ErrValidation, name)
	}
	return &v, nil
}
