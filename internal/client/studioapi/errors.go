package studioapi

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind groups API failures by how a user interface reacts to them.
type Kind int

const (
	KindServer Kind = iota
	KindValidation
	KindNotFound
	KindAuth
	KindNetwork
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not found"
	case KindAuth:
		return "auth"
	case KindNetwork:
		return "network"
	}
	return "server"
}

// Error is every failure the client returns. Code and Message come from the
// response envelope when the server sent one.
type Error struct {
	Kind    Kind
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "":
		return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s error: status %d", e.Kind, e.Status)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of err, KindServer when err is not an *Error.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindServer
}

func kindForStatus(status int) Kind {
	switch status {
	case http.StatusBadRequest, http.StatusRequestEntityTooLarge, http.StatusUnprocessableEntity:
		return KindValidation
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return KindAuth
	}
	return KindServer
}
