package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	httpapp "art_studio/internal/app/http"
	"art_studio/internal/config"
	"art_studio/internal/domain/models"
	jwtlib "art_studio/internal/lib/jwt"
	"art_studio/internal/storage"
	httprouters "art_studio/internal/transport/http"
	"art_studio/internal/transport/http/dto"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const testSecret = "test-secret"

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

type HandlersSuite struct {
	suite.Suite

	e        *echo.Echo
	artworks *MockArtworkService
	studio   *MockStudioService
	contacts *MockContactService
	profile  *MockProfileService
	media    *MockMediaService
	auth     *MockAuthService
	tokens   *MockTokenService
	revoked  revocations
	admin    string
}

func TestHandlersSuite(t *testing.T) {
	suite.Run(t, new(HandlersSuite))
}

func (s *HandlersSuite) SetupTest() {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	s.artworks = new(MockArtworkService)
	s.studio = new(MockStudioService)
	s.contacts = new(MockContactService)
	s.profile = new(MockProfileService)
	s.media = new(MockMediaService)
	s.auth = new(MockAuthService)
	s.tokens = new(MockTokenService)
	s.revoked = revocations{}

	routers := httprouters.NewRouter(log, httprouters.Services{
		Artworks: s.artworks,
		Studio:   s.studio,
		Contacts: s.contacts,
		Profile:  s.profile,
		Media:    s.media,
		Auth:     s.auth,
		Tokens:   s.tokens,
	})

	server := httpapp.New(log, config.HTTPConfig{AllowOrigins: []string{"*"}}, testSecret, s.revoked, "", routers)
	server.BuildRouters()
	s.e = server.Echo()

	s.admin = s.issue(models.RoleAdmin, time.Hour)
}

func (s *HandlersSuite) TearDownTest() {
	s.artworks.AssertExpectations(s.T())
	s.studio.AssertExpectations(s.T())
	s.contacts.AssertExpectations(s.T())
	s.profile.AssertExpectations(s.T())
	s.media.AssertExpectations(s.T())
	s.auth.AssertExpectations(s.T())
	s.tokens.AssertExpectations(s.T())
}

func (s *HandlersSuite) issue(role string, ttl time.Duration) string {
	token, _, err := jwtlib.NewToken(models.Admin{
		ID:    uuid.New(),
		Email: "admin@studio.local",
		Role:  role,
	}, testSecret, ttl)
	s.Require().NoError(err)
	return token
}

func (s *HandlersSuite) do(method, target, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	return s.send(req, token)
}

func (s *HandlersSuite) send(req *http.Request, token string) (*httptest.ResponseRecorder, envelope) {
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}
	return rec, env
}

func validContact() map[string]string {
	return map[string]string{
		"name":      "A",
		"email":     "a@b.com",
		"phone":     "1234567890",
		"service":   "Bridal Mehndi",
		"eventDate": "2025-01-01",
		"message":   "hello",
	}
}

func (s *HandlersSuite) TestSubmitContact_Created() {
	in := validContact()
	want := models.ContactRequest{
		Name:      in["name"],
		Email:     in["email"],
		Phone:     in["phone"],
		Service:   in["service"],
		EventDate: in["eventDate"],
		Message:   in["message"],
	}
	stored := want
	stored.ID = uuid.New()
	stored.Status = models.ContactStatusNew
	stored.CreatedAt = time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC)

	s.contacts.On("SubmitContact", mock.Anything, want).Return(stored, nil).Once()

	rec, env := s.do(http.MethodPost, "/api/contacts", "", in)

	s.Equal(http.StatusCreated, rec.Code)
	s.True(env.Success)

	var got map[string]interface{}
	s.Require().NoError(json.Unmarshal(env.Data, &got))
	s.Equal("new", got["status"])
	s.Equal(stored.ID.String(), got["id"])
	s.NotEmpty(got["timestamp"])
	for k, v := range in {
		s.Equal(v, got[k], k)
	}
}

func (s *HandlersSuite) TestSubmitContact_EmptyFieldRejected() {
	for _, field := range []string{"name", "email", "phone", "service", "eventDate", "message"} {
		s.Run(field, func() {
			in := validContact()
			in[field] = ""

			rec, env := s.do(http.MethodPost, "/api/contacts", "", in)

			s.Equal(http.StatusBadRequest, rec.Code)
			s.False(env.Success)
			s.Equal("validation_error", env.Error)
		})
	}
	s.contacts.AssertNotCalled(s.T(), "SubmitContact", mock.Anything, mock.Anything)
}

func (s *HandlersSuite) TestSubmitContact_MalformedBody() {
	req := httptest.NewRequest(http.MethodPost, "/api/contacts", strings.NewReader("{not json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec, env := s.send(req, "")

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("invalid_request", env.Error)
}

func (s *HandlersSuite) TestContactStatus_ArchivedThenRead() {
	id := uuid.New()
	archived := models.ContactRequest{ID: id, Name: "A", Status: models.ContactStatusArchived}

	s.contacts.On("SetStatus", mock.Anything, id, models.ContactStatusArchived).Return(archived, nil).Once()
	s.contacts.On("GetContact", mock.Anything, id).Return(archived, nil).Once()

	rec, env := s.do(http.MethodPatch, "/api/contacts", s.admin, map[string]string{
		"id":     id.String(),
		"status": "archived",
	})
	s.Equal(http.StatusOK, rec.Code)
	s.True(env.Success)

	rec, env = s.do(http.MethodGet, "/api/contacts?id="+id.String(), s.admin, nil)
	s.Equal(http.StatusOK, rec.Code)

	var got models.ContactRequest
	s.Require().NoError(json.Unmarshal(env.Data, &got))
	s.Equal(models.ContactStatusArchived, got.Status)
}

func (s *HandlersSuite) TestContactStatus_UnknownStatusRejected() {
	rec, env := s.do(http.MethodPatch, "/api/contacts", s.admin, map[string]string{
		"id":     uuid.NewString(),
		"status": "spam",
	})

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("validation_error", env.Error)
}

func (s *HandlersSuite) TestContacts_ListRequiresToken() {
	rec, env := s.do(http.MethodGet, "/api/contacts", "", nil)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("token_missing", env.Error)
}

func (s *HandlersSuite) TestContacts_ListFiltersByStatus() {
	s.contacts.On("ListContacts", mock.Anything, models.ContactFilter{Status: models.ContactStatusNew, Limit: 10}).
		Return([]models.ContactRequest{{ID: uuid.New()}}, nil).Once()

	rec, env := s.do(http.MethodGet, "/api/contacts?status=new&limit=10", s.admin, nil)

	s.Equal(http.StatusOK, rec.Code)
	var got []models.ContactRequest
	s.Require().NoError(json.Unmarshal(env.Data, &got))
	s.Len(got, 1)
}

func (s *HandlersSuite) TestGetArtworks_CategoryAndLimit() {
	list := []models.Artwork{
		{ID: uuid.New(), Title: "One", Category: "Mehndi", Active: true, Order: 0},
		{ID: uuid.New(), Title: "Two", Category: "mehndi", Active: true, Order: 1},
	}
	s.artworks.On("ListArtworks", mock.Anything, models.ArtworkFilter{Category: "Mehndi", Limit: 2}).
		Return(list, nil).Once()

	rec, env := s.do(http.MethodGet, "/api/artworks?category=Mehndi&limit=2", "", nil)

	s.Equal(http.StatusOK, rec.Code)
	var got []models.Artwork
	s.Require().NoError(json.Unmarshal(env.Data, &got))
	s.Len(got, 2)
	s.Equal("One", got[0].Title)
}

func (s *HandlersSuite) TestGetArtworks_AllOnlyForAdmin() {
	s.artworks.On("ListArtworks", mock.Anything, models.ArtworkFilter{}).Return([]models.Artwork{}, nil).Once()
	s.artworks.On("ListArtworks", mock.Anything, models.ArtworkFilter{IncludeInactive: true}).Return([]models.Artwork{}, nil).Once()

	rec, _ := s.do(http.MethodGet, "/api/artworks?all=true", "", nil)
	s.Equal(http.StatusOK, rec.Code)

	rec, _ = s.do(http.MethodGet, "/api/artworks?all=true", s.admin, nil)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlersSuite) TestGetArtworks_InvalidTokenServedAnonymously() {
	s.artworks.On("ListArtworks", mock.Anything, models.ArtworkFilter{}).Return([]models.Artwork{}, nil).Once()

	rec, _ := s.do(http.MethodGet, "/api/artworks?all=true", "garbage", nil)

	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlersSuite) TestGetArtworks_ByID() {
	id := uuid.New()
	s.artworks.On("GetArtwork", mock.Anything, id, false).
		Return(models.Artwork{}, fmt.Errorf("service: %w", storage.ErrNotFound)).Once()

	rec, env := s.do(http.MethodGet, "/api/artworks?id="+id.String(), "", nil)

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("not_found", env.Error)
}

func (s *HandlersSuite) TestGetArtworks_BadFeaturedFlag() {
	rec, env := s.do(http.MethodGet, "/api/artworks?featured=maybe", "", nil)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("validation_error", env.Error)
}

func (s *HandlersSuite) TestCreateArtwork() {
	title := "Henna hands"
	images := []string{"https://img/1.jpg"}
	in := dto.ArtworkInput{Title: &title, Images: &images}
	created := models.Artwork{ID: uuid.New(), Title: title, Images: images, Active: true}

	s.artworks.On("CreateArtwork", mock.Anything, in).Return(created, nil).Once()

	rec, env := s.do(http.MethodPost, "/api/artworks", s.admin, in)

	s.Equal(http.StatusCreated, rec.Code)
	var got models.Artwork
	s.Require().NoError(json.Unmarshal(env.Data, &got))
	s.Equal(created.ID, got.ID)
}

func (s *HandlersSuite) TestCreateArtwork_RequiresToken() {
	rec, env := s.do(http.MethodPost, "/api/artworks", "", map[string]string{"title": "x"})

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("token_missing", env.Error)
}

func (s *HandlersSuite) TestCreateArtwork_ServiceValidation() {
	s.artworks.On("CreateArtwork", mock.Anything, mock.AnythingOfType("dto.ArtworkInput")).
		Return(models.Artwork{}, fmt.Errorf("service.ArtworkService.CreateArtwork: %w: title is required", models.ErrValidation)).Once()

	rec, env := s.do(http.MethodPost, "/api/artworks", s.admin, map[string]string{})

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("validation_error", env.Error)
	s.Equal("validation failed: title is required", env.Message)
}

func (s *HandlersSuite) TestReorderArtworks() {
	items := []models.OrderUpdate{
		{ID: uuid.NewString(), Order: 1},
		{ID: uuid.NewString(), Order: 0},
	}
	s.artworks.On("ReorderArtworks", mock.Anything, items).Return(nil).Once()

	rec, env := s.do(http.MethodPatch, "/api/artworks/order", s.admin, dto.ReorderRequest{Items: items})

	s.Equal(http.StatusOK, rec.Code)
	s.True(env.Success)
}

func (s *HandlersSuite) TestReorderArtworks_UnknownIDRollsBack() {
	items := []models.OrderUpdate{{ID: uuid.NewString(), Order: 3}}
	s.artworks.On("ReorderArtworks", mock.Anything, items).
		Return(fmt.Errorf("repo: %w", storage.ErrNotFound)).Once()

	rec, env := s.do(http.MethodPatch, "/api/artworks/order", s.admin, dto.ReorderRequest{Items: items})

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("not_found", env.Error)
}

func (s *HandlersSuite) TestReorderServices_EmptyBatch() {
	rec, env := s.do(http.MethodPatch, "/api/services/order", s.admin, dto.ReorderRequest{})

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("validation_error", env.Error)
}

func (s *HandlersSuite) TestUpdateService_Missing() {
	id := uuid.New()
	s.studio.On("UpdateService", mock.Anything, id, mock.AnythingOfType("dto.ServiceInput")).
		Return(models.Service{}, fmt.Errorf("service: %w", storage.ErrNotFound)).Once()

	rec, env := s.do(http.MethodPut, "/api/services?id="+id.String(), s.admin, map[string]string{"title": "Workshop"})

	s.Equal(http.StatusNotFound, rec.Code)
	s.False(env.Success)
	s.Equal("not_found", env.Error)
}

func (s *HandlersSuite) TestUpdateService_IDRequired() {
	rec, env := s.do(http.MethodPut, "/api/services", s.admin, map[string]string{"title": "Workshop"})

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("validation_error", env.Error)
	s.studio.AssertNotCalled(s.T(), "UpdateService", mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlersSuite) TestDeleteService_InternalError() {
	id := uuid.New()
	s.studio.On("DeleteService", mock.Anything, id).Return(assert.AnError).Once()

	rec, env := s.do(http.MethodDelete, "/api/services?id="+id.String(), s.admin, nil)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("internal_error", env.Error)
}

func (s *HandlersSuite) TestLogin() {
	session := models.AdminSession{
		Token:     "tok",
		ExpiresAt: time.Now().Add(time.Hour).UTC(),
		User:      models.AdminUser{Email: "admin@studio.local", Role: models.RoleAdmin},
	}
	s.auth.On("Login", mock.Anything, "admin@studio.local", "secret").Return(session, nil).Once()
	s.auth.On("Login", mock.Anything, "admin@studio.local", "wrong").
		Return(models.AdminSession{}, fmt.Errorf("auth.Login: %w", models.ErrInvalidCredentials)).Once()

	rec, env := s.do(http.MethodPost, "/api/auth/admin/login", "", map[string]string{
		"email":    "admin@studio.local",
		"password": "secret",
	})
	s.Equal(http.StatusOK, rec.Code)
	var got models.AdminSession
	s.Require().NoError(json.Unmarshal(env.Data, &got))
	s.Equal("tok", got.Token)

	rec, env = s.do(http.MethodPost, "/api/auth/admin/login", "", map[string]string{
		"email":    "admin@studio.local",
		"password": "wrong",
	})
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("authentication_failed", env.Error)
}

func (s *HandlersSuite) TestVerify() {
	rec, env := s.do(http.MethodGet, "/api/auth/verify", s.admin, nil)

	s.Equal(http.StatusOK, rec.Code)
	var claims models.TokenClaims
	s.Require().NoError(json.Unmarshal(env.Data, &claims))
	s.Equal("admin@studio.local", claims.Email)
	s.Equal(models.RoleAdmin, claims.Role)
	s.NotEmpty(claims.TokenID)
}

func (s *HandlersSuite) TestVerify_TokenErrors() {
	cases := []struct {
		name  string
		token string
		code  string
	}{
		{"missing", "", "token_missing"},
		{"malformed", "not-a-jwt", "token_invalid"},
		{"expired", s.issue(models.RoleAdmin, -time.Minute), "token_expired"},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			rec, env := s.do(http.MethodGet, "/api/auth/verify", tc.token, nil)

			s.Equal(http.StatusUnauthorized, rec.Code)
			s.Equal(tc.code, env.Error)
		})
	}
}

func (s *HandlersSuite) TestVerify_WrongRoleForbidden() {
	rec, env := s.do(http.MethodGet, "/api/auth/verify", s.issue("viewer", time.Hour), nil)

	s.Equal(http.StatusForbidden, rec.Code)
	s.Equal("forbidden", env.Error)
}

func (s *HandlersSuite) TestLogout_RevokedTokenRejected() {
	claims, err := jwtlib.Parse(s.admin, testSecret)
	s.Require().NoError(err)

	s.tokens.On("RevokeToken", mock.Anything, claims.ID).Run(func(mock.Arguments) {
		s.revoked[claims.ID] = true
	}).Return(nil).Once()

	rec, _ := s.do(http.MethodPost, "/api/auth/admin/logout", s.admin, nil)
	s.Equal(http.StatusOK, rec.Code)

	rec, env := s.do(http.MethodGet, "/api/auth/verify", s.admin, nil)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("token_invalid", env.Error)
}

func (s *HandlersSuite) TestGetProfile_NoneYet() {
	s.profile.On("ActiveProfile", mock.Anything).
		Return(models.Profile{}, fmt.Errorf("repo: %w", storage.ErrNotFound)).Once()

	rec, env := s.do(http.MethodGet, "/api/profile", "", nil)

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("not_found", env.Error)
}

func (s *HandlersSuite) TestUpdateProfile_Multipart() {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	s.Require().NoError(w.WriteField("name", "Aisha"))
	s.Require().NoError(w.WriteField("socialLinks", `{"instagram":"https://instagram.com/studio"}`))

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="homeImage"; filename="home.png"`)
	h.Set("Content-Type", "image/png")
	part, err := w.CreatePart(h)
	s.Require().NoError(err)
	_, err = part.Write([]byte("png"))
	s.Require().NoError(err)
	s.Require().NoError(w.Close())

	s.media.On("UploadImage", mock.Anything, "home.png", "image/png").Return("https://cdn/home.png", nil).Once()
	s.profile.On("UpdateProfile", mock.Anything, mock.MatchedBy(func(in dto.ProfileInput) bool {
		return in.Name != nil && *in.Name == "Aisha" &&
			in.HomeImage != nil && *in.HomeImage == "https://cdn/home.png" &&
			in.AboutImage == nil &&
			in.SocialLinks != nil && in.SocialLinks.Instagram == "https://instagram.com/studio"
	})).Return(models.Profile{Name: "Aisha", HomeImage: "https://cdn/home.png", IsActive: true}, nil).Once()

	req := httptest.NewRequest(http.MethodPut, "/api/profile", &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())

	rec, env := s.send(req, s.admin)

	s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	var got models.Profile
	s.Require().NoError(json.Unmarshal(env.Data, &got))
	s.True(got.IsActive)
}

func (s *HandlersSuite) TestUpdateProfile_JSON() {
	s.profile.On("UpdateProfile", mock.Anything, mock.MatchedBy(func(in dto.ProfileInput) bool {
		return in.Bio != nil && *in.Bio == "Henna artist" && in.Name == nil
	})).Return(models.Profile{Bio: "Henna artist", IsActive: true}, nil).Once()

	rec, _ := s.do(http.MethodPut, "/api/profile", s.admin, map[string]string{"bio": "Henna artist"})

	s.Equal(http.StatusOK, rec.Code)
}

func TestHealth(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := httpapp.New(log, config.HTTPConfig{}, testSecret, revocations{}, "", httprouters.NewRouter(log, httprouters.Services{}))
	server.BuildRouters()

	rec := httptest.NewRecorder()
	server.Echo().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}
