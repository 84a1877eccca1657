package imagehost

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"
)

var ErrUpload = errors.New("image host upload failed")

// Client uploads images to a Cloudinary-style host: a multipart POST to
// {baseURL}/image/upload answered with the hosted secure_url.
type Client struct {
	baseURL      string
	uploadPreset string
	apiKey       string
	folder       string
	http         *http.Client
}

func New(baseURL, uploadPreset, apiKey, folder string, timeout time.Duration) *Client {
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		uploadPreset: uploadPreset,
		apiKey:       apiKey,
		folder:       folder,
		http:         &http.Client{Timeout: timeout},
	}
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (c *Client) Upload(ctx context.Context, filename, contentType string, src io.Reader) (string, error) {
	const op = "imagehost.Upload"

	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	for name, value := range map[string]string{
		"upload_preset": c.uploadPreset,
		"folder":        c.folder,
		"api_key":       c.apiKey,
	} {
		if value == "" {
			continue
		}
		if err := w.WriteField(name, value); err != nil {
			return "", fmt.Errorf("%s: %w", op, err)
		}
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if _, err := io.Copy(part, src); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/image/upload", &body)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	var out uploadResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&out); err != nil && resp.StatusCode < 300 {
		return "", fmt.Errorf("%s: decode response: %w", op, err)
	}

	if resp.StatusCode >= 300 {
		msg := resp.Status
		if out.Error != nil && out.Error.Message != "" {
			msg = out.Error.Message
		}
		return "", fmt.Errorf("%s: %w: %s", op, ErrUpload, msg)
	}

	if out.SecureURL != "" {
		return out.SecureURL, nil
	}
	if out.URL != "" {
		return out.URL, nil
	}

	return "", fmt.Errorf("%s: %w: empty url in response", op, ErrUpload)
}
