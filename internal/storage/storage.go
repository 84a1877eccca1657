package storage

import "errors"

var (
	ErrNotFound      = errors.New("record not found")
	ErrAdminExists   = errors.New("admin already exists")
	ErrAdminNotFound = errors.New("admin not found")
)

var (
	ErrFileTooLarge    = errors.New("file size exceeds limit")
	ErrInvalidFileType = errors.New("invalid file type")
)
