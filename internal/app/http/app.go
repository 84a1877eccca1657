package httpapp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"art_studio/internal/config"
	"art_studio/internal/domain/models"
	jwtlib "art_studio/internal/lib/jwt"
	"art_studio/internal/lib/logger/sl"
	"art_studio/internal/metrics"
	appmiddleware "art_studio/internal/middleware"
	httprouters "art_studio/internal/transport/http"
	"art_studio/internal/transport/http/dto/response"

	"github.com/arl/statsviz"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo-contrib/echoprometheus"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// RevocationChecker rejects tokens revoked by logout.
type RevocationChecker interface {
	CheckRevoked(ctx context.Context, claims *jwtlib.Claims) error
}

type Server struct {
	m          *http.ServeMux
	log        *slog.Logger
	e          *echo.Echo
	routers    *httprouters.Routers
	tokens     RevocationChecker
	cfg        config.HTTPConfig
	secret     string
	uploadsDir string
}

func New(log *slog.Logger, cfg config.HTTPConfig, secret string, tokens RevocationChecker, uploadsDir string, routers *httprouters.Routers) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	validate := validator.New()
	e.Validator = &CustomValidator{validator: validate}

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	if cfg.BodyLimit != "" {
		e.Use(middleware.BodyLimit(cfg.BodyLimit))
	}
	e.Use(appmiddleware.PrometheusMetrics)

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogMethod:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		HandleError: true,
		LogError:    true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				slog.String("method", v.Method),
				slog.String("URI", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("remote ip", v.RemoteIP),
			}
			if v.Error != nil {
				log.Error("request", append(attrs, sl.Err(v.Error))...)
				return nil
			}
			log.Info("request", attrs...)

			return nil
		},
	}))

	mux := http.NewServeMux()
	err := statsviz.Register(mux)
	if err != nil {
		log.Info("Statsviz start with error", slog.Any("error:", err.Error()))
	}

	return &Server{
		m:          mux,
		log:        log,
		e:          e,
		routers:    routers,
		tokens:     tokens,
		cfg:        cfg,
		secret:     secret,
		uploadsDir: uploadsDir,
	}
}

// Echo exposes the router so tests can drive it with httptest.
func (s *Server) Echo() *echo.Echo {
	return s.e
}

func (s *Server) MustRun() {
	const op = "http.Server.MustRun"

	s.log.Info(op, slog.String("Start", "server"), slog.String("addr", s.addr()))

	if err := s.Start(); err != nil {
		panic(err)
	}
}

func (s *Server) Start() error {
	const op = "http.Server.Start"

	s.e.Server.ReadTimeout = s.cfg.Timeout
	s.e.Server.WriteTimeout = s.cfg.Timeout

	if err := s.e.Start(s.addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s server stopped: %w", op, err)
	}

	return nil
}

func (s *Server) Stop() error {
	const op = "http.Server.Stop"

	optCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	s.log.Info("stopping", slog.String("op", op))

	if err := s.e.Shutdown(optCtx); err != nil {
		return fmt.Errorf("%s could not shutdown server gracefuly: %w", op, err)
	}

	return nil
}

func (s *Server) addr() string {
	return net.JoinHostPort(s.cfg.Host, s.cfg.Port)
}

// jwtConfig verifies admin bearer tokens. With optional set a request
// without a usable token continues anonymously instead of failing.
func (s *Server) jwtConfig(optional bool) echojwt.Config {
	return echojwt.Config{
		SigningKey:    []byte(s.secret),
		SigningMethod: echojwt.AlgorithmHS256,
		ContextKey:    httprouters.ContextKeyToken,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(jwtlib.Claims)
		},
		ContinueOnIgnoredError: optional,
		ErrorHandler: func(c echo.Context, err error) error {
			if optional {
				return nil
			}
			return s.rejectToken(c, err)
		},
	}
}

func (s *Server) rejectToken(c echo.Context, err error) error {
	code, message := response.CodeTokenInvalid, "Token invalid"
	switch {
	case errors.Is(err, echojwt.ErrJWTMissing):
		code, message = response.CodeTokenMissing, "Authentication required"
	case errors.Is(err, jwt.ErrTokenExpired), errors.Is(err, jwtlib.ErrTokenExpired):
		code, message = response.CodeTokenExpired, "Token expired"
	}

	metrics.AuthFailuresTotal.WithLabelValues(code).Inc()
	s.log.Warn("rejected bearer token",
		slog.String("reason", code),
		slog.String("path", c.Path()),
		sl.Err(err),
	)

	return c.JSON(http.StatusUnauthorized, response.ErrorResponseWithDetails(code, message))
}

// notRevoked turns away tokens that were logged out before they expired.
func (s *Server) notRevoked(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := httprouters.ClaimsFromContext(c)
		if !ok {
			return next(c)
		}

		if err := s.tokens.CheckRevoked(c.Request().Context(), claims); err != nil {
			if errors.Is(err, models.ErrTokenRevoked) {
				return s.rejectToken(c, err)
			}
			s.log.Error("revocation check failed", sl.Err(err))
			return c.JSON(http.StatusInternalServerError, response.ErrInternal)
		}

		return next(c)
	}
}

// optionalRevoked drops a revoked token from a public request so it is
// served anonymously.
func (s *Server) optionalRevoked(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := httprouters.ClaimsFromContext(c)
		if ok && s.tokens.CheckRevoked(c.Request().Context(), claims) != nil {
			c.Set(httprouters.ContextKeyToken, nil)
		}
		return next(c)
	}
}

func (s *Server) adminOnlyMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := httprouters.ClaimsFromContext(c)
		if !ok {
			return s.rejectToken(c, echojwt.ErrJWTMissing)
		}

		if claims.Role != models.RoleAdmin {
			metrics.AuthFailuresTotal.WithLabelValues(response.CodeForbidden).Inc()
			return c.JSON(http.StatusForbidden, response.ErrForbidden)
		}

		return next(c)
	}
}

func (s *Server) BuildRouters() {
	s.e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, response.SuccessMessage("ok"))
	})
	s.e.GET("/metrics", echoprometheus.NewHandler())

	debug := s.e.Group("/debug")
	{
		debug.GET("/statsviz/", echo.WrapHandler(s.m))
		debug.GET("/statsviz/*", echo.WrapHandler(s.m))
	}

	swagger := s.e.Group("/swag")
	{
		swagger.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	if s.uploadsDir != "" {
		s.e.Static("/uploads", s.uploadsDir)
	}

	protected := []echo.MiddlewareFunc{
		echojwt.WithConfig(s.jwtConfig(false)),
		s.notRevoked,
		s.adminOnlyMiddleware,
	}
	public := []echo.MiddlewareFunc{
		echojwt.WithConfig(s.jwtConfig(true)),
		s.optionalRevoked,
	}

	api := s.e.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/admin/login", s.routers.Login)
			auth.POST("/admin/logout", s.routers.Logout, protected...)
			auth.GET("/verify", s.routers.Verify, protected...)
		}

		artworks := api.Group("/artworks")
		{
			artworks.GET("", s.routers.GetArtworks, public...)
			artworks.POST("", s.routers.CreateArtwork, protected...)
			artworks.PUT("", s.routers.UpdateArtwork, protected...)
			artworks.DELETE("", s.routers.DeleteArtwork, protected...)
			artworks.PATCH("/order", s.routers.ReorderArtworks, protected...)
		}

		services := api.Group("/services")
		{
			services.GET("", s.routers.GetServices, public...)
			services.POST("", s.routers.CreateService, protected...)
			services.PUT("", s.routers.UpdateService, protected...)
			services.DELETE("", s.routers.DeleteService, protected...)
			services.PATCH("/order", s.routers.ReorderServices, protected...)
		}

		testimonials := api.Group("/testimonials")
		{
			testimonials.GET("", s.routers.GetTestimonials)
			testimonials.POST("", s.routers.CreateTestimonial, protected...)
			testimonials.PUT("", s.routers.UpdateTestimonial, protected...)
			testimonials.DELETE("", s.routers.DeleteTestimonial, protected...)
		}

		awards := api.Group("/awards")
		{
			awards.GET("", s.routers.GetAwards)
			awards.POST("", s.routers.CreateAward, protected...)
			awards.PUT("", s.routers.UpdateAward, protected...)
			awards.DELETE("", s.routers.DeleteAward, protected...)
		}

		contacts := api.Group("/contacts")
		{
			contacts.POST("", s.routers.SubmitContact)
			contacts.GET("", s.routers.GetContacts, protected...)
			contacts.PATCH("", s.routers.UpdateContactStatus, protected...)
			contacts.DELETE("", s.routers.DeleteContact, protected...)
		}

		profile := api.Group("/profile")
		{
			profile.GET("", s.routers.GetProfile)
			profile.PUT("", s.routers.UpdateProfile, protected...)
		}
	}
}
