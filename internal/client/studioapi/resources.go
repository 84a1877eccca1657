package studioapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"art_studio/internal/client/querycache"
	"art_studio/internal/domain/models"
	"art_studio/internal/transport/http/dto"
)

// ListParams are the filters shared by every collection.
type ListParams struct {
	Search string
	Limit  int
}

func (p ListParams) values() url.Values {
	v := url.Values{}
	if p.Search != "" {
		v.Set("search", p.Search)
	}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	return v
}

type ArtworkParams struct {
	ListParams
	Category string
	Featured *bool
	// All includes inactive artworks. The server honours it for admins only.
	All bool
}

func (p ArtworkParams) values() url.Values {
	v := p.ListParams.values()
	if p.Category != "" {
		v.Set("category", p.Category)
	}
	if p.Featured != nil {
		v.Set("featured", strconv.FormatBool(*p.Featured))
	}
	if p.All {
		v.Set("all", "true")
	}
	return v
}

type ServiceParams struct {
	ListParams
	All bool
}

func (p ServiceParams) values() url.Values {
	v := p.ListParams.values()
	if p.All {
		v.Set("all", "true")
	}
	return v
}

type AwardParams struct {
	ListParams
	Year int
}

func (p AwardParams) values() url.Values {
	v := p.ListParams.values()
	if p.Year > 0 {
		v.Set("year", strconv.Itoa(p.Year))
	}
	return v
}

type ContactParams struct {
	ListParams
	Status models.ContactStatus
}

func (p ContactParams) values() url.Values {
	v := p.ListParams.values()
	if p.Status != "" {
		v.Set("status", string(p.Status))
	}
	return v
}

// Artworks

func (c *Client) Artworks(ctx context.Context, p ArtworkParams) ([]models.Artwork, error) {
	return read[[]models.Artwork](ctx, c, TagArtwork, pathArtworks, p.values())
}

func (c *Client) Artwork(ctx context.Context, id string) (models.Artwork, error) {
	return read[models.Artwork](ctx, c, TagArtwork, pathArtworks, idParam(id))
}

func (c *Client) WatchArtworks(p ArtworkParams, fn func(artworks []models.Artwork, err error, loading bool)) *querycache.Subscription {
	return watch(c, TagArtwork, pathArtworks, p.values(), fn)
}

func (c *Client) CreateArtwork(ctx context.Context, in dto.ArtworkInput) (models.Artwork, error) {
	return write[models.Artwork](ctx, c, []string{TagArtwork}, http.MethodPost, pathArtworks, nil, in)
}

func (c *Client) UpdateArtwork(ctx context.Context, id string, in dto.ArtworkInput) (models.Artwork, error) {
	return write[models.Artwork](ctx, c, []string{TagArtwork}, http.MethodPut, pathArtworks, idParam(id), in)
}

func (c *Client) DeleteArtwork(ctx context.Context, id string) error {
	_, err := write[struct{}](ctx, c, []string{TagArtwork}, http.MethodDelete, pathArtworks, idParam(id), nil)
	return err
}

// ReorderArtworks applies all positions in one server-side transaction.
func (c *Client) ReorderArtworks(ctx context.Context, items []models.OrderUpdate) error {
	return c.reorder(ctx, TagArtwork, pathArtworks, items)
}

// Services

func (c *Client) Services(ctx context.Context, p ServiceParams) ([]models.Service, error) {
	return read[[]models.Service](ctx, c, TagService, pathServices, p.values())
}

func (c *Client) Service(ctx context.Context, id string) (models.Service, error) {
	return read[models.Service](ctx, c, TagService, pathServices, idParam(id))
}

func (c *Client) WatchServices(p ServiceParams, fn func(services []models.Service, err error, loading bool)) *querycache.Subscription {
	return watch(c, TagService, pathServices, p.values(), fn)
}

func (c *Client) CreateService(ctx context.Context, in dto.ServiceInput) (models.Service, error) {
	return write[models.Service](ctx, c, []string{TagService}, http.MethodPost, pathServices, nil, in)
}

func (c *Client) UpdateService(ctx context.Context, id string, in dto.ServiceInput) (models.Service, error) {
	return write[models.Service](ctx, c, []string{TagService}, http.MethodPut, pathServices, idParam(id), in)
}

func (c *Client) DeleteService(ctx context.Context, id string) error {
	_, err := write[struct{}](ctx, c, []string{TagService}, http.MethodDelete, pathServices, idParam(id), nil)
	return err
}

func (c *Client) ReorderServices(ctx context.Context, items []models.OrderUpdate) error {
	return c.reorder(ctx, TagService, pathServices, items)
}

// Testimonials

func (c *Client) Testimonials(ctx context.Context, p ListParams) ([]models.Testimonial, error) {
	return read[[]models.Testimonial](ctx, c, TagTestimonial, pathTestimonials, p.values())
}

func (c *Client) Testimonial(ctx context.Context, id string) (models.Testimonial, error) {
	return read[models.Testimonial](ctx, c, TagTestimonial, pathTestimonials, idParam(id))
}

func (c *Client) CreateTestimonial(ctx context.Context, in dto.TestimonialInput) (models.Testimonial, error) {
	return write[models.Testimonial](ctx, c, []string{TagTestimonial}, http.MethodPost, pathTestimonials, nil, in)
}

func (c *Client) UpdateTestimonial(ctx context.Context, id string, in dto.TestimonialInput) (models.Testimonial, error) {
	return write[models.Testimonial](ctx, c, []string{TagTestimonial}, http.MethodPut, pathTestimonials, idParam(id), in)
}

func (c *Client) DeleteTestimonial(ctx context.Context, id string) error {
	_, err := write[struct{}](ctx, c, []string{TagTestimonial}, http.MethodDelete, pathTestimonials, idParam(id), nil)
	return err
}

// Awards

func (c *Client) Awards(ctx context.Context, p AwardParams) ([]models.Award, error) {
	return read[[]models.Award](ctx, c, TagAward, pathAwards, p.values())
}

func (c *Client) Award(ctx context.Context, id string) (models.Award, error) {
	return read[models.Award](ctx, c, TagAward, pathAwards, idParam(id))
}

func (c *Client) CreateAward(ctx context.Context, in dto.AwardInput) (models.Award, error) {
	return write[models.Award](ctx, c, []string{TagAward}, http.MethodPost, pathAwards, nil, in)
}

func (c *Client) UpdateAward(ctx context.Context, id string, in dto.AwardInput) (models.Award, error) {
	return write[models.Award](ctx, c, []string{TagAward}, http.MethodPut, pathAwards, idParam(id), in)
}

func (c *Client) DeleteAward(ctx context.Context, id string) error {
	_, err := write[struct{}](ctx, c, []string{TagAward}, http.MethodDelete, pathAwards, idParam(id), nil)
	return err
}

// Profile

func (c *Client) Profile(ctx context.Context) (models.Profile, error) {
	return read[models.Profile](ctx, c, TagProfile, pathProfile, nil)
}

func (c *Client) UpdateProfile(ctx context.Context, in dto.ProfileInput) (models.Profile, error) {
	return write[models.Profile](ctx, c, []string{TagProfile}, http.MethodPut, pathProfile, nil, in)
}

// Contacts

// SubmitContact sends the public contact form.
func (c *Client) SubmitContact(ctx context.Context, in dto.ContactInput) (models.ContactRequest, error) {
	return write[models.ContactRequest](ctx, c, []string{TagContact}, http.MethodPost, pathContacts, nil, in)
}

func (c *Client) Contacts(ctx context.Context, p ContactParams) ([]models.ContactRequest, error) {
	return read[[]models.ContactRequest](ctx, c, TagContact, pathContacts, p.values())
}

func (c *Client) Contact(ctx context.Context, id string) (models.ContactRequest, error) {
	return read[models.ContactRequest](ctx, c, TagContact, pathContacts, idParam(id))
}

func (c *Client) WatchContacts(p ContactParams, fn func(contacts []models.ContactRequest, err error, loading bool)) *querycache.Subscription {
	return watch(c, TagContact, pathContacts, p.values(), fn)
}

func (c *Client) SetContactStatus(ctx context.Context, id string, status models.ContactStatus) (models.ContactRequest, error) {
	in := dto.ContactStatusInput{ID: id, Status: string(status)}
	return write[models.ContactRequest](ctx, c, []string{TagContact}, http.MethodPatch, pathContacts, nil, in)
}

func (c *Client) DeleteContact(ctx context.Context, id string) error {
	_, err := write[struct{}](ctx, c, []string{TagContact}, http.MethodDelete, pathContacts, idParam(id), nil)
	return err
}
