package imagehost_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"art_studio/internal/lib/imagehost"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Upload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/image/upload", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "preset", r.FormValue("upload_preset"))
		assert.Equal(t, "studio", r.FormValue("folder"))

		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		data, _ := io.ReadAll(f)
		assert.Equal(t, "henna.png", hdr.Filename)
		assert.Equal(t, "pngdata", string(data))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"secure_url":"https://cdn.example.com/studio/henna.png"}`))
	}))
	defer srv.Close()

	c := imagehost.New(srv.URL+"/", "preset", "", "studio", time.Second)

	url, err := c.Upload(context.Background(), "henna.png", "image/png", strings.NewReader("pngdata"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/studio/henna.png", url)
}

func TestClient_UploadError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"Upload preset not found"}}`))
	}))
	defer srv.Close()

	c := imagehost.New(srv.URL, "missing", "", "", time.Second)

	_, err := c.Upload(context.Background(), "a.png", "image/png", strings.NewReader("x"))
	require.ErrorIs(t, err, imagehost.ErrUpload)
	assert.Contains(t, err.Error(), "Upload preset not found")
}

func TestClient_UploadEmptyURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := imagehost.New(srv.URL, "p", "", "", time.Second).
		Upload(context.Background(), "a.png", "image/png", strings.NewReader("x"))
	assert.ErrorIs(t, err, imagehost.ErrUpload)
}
