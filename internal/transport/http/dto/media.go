package dto

import "io"

// ImageUpload is one image file received from a client.
type ImageUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}
