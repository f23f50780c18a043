package server

import (
	"fmt"
	"net/http"
)

// ErrMissingInput indicates a required request input was absent
type ErrMissingInput struct {
	Field string
}

func (e *ErrMissingInput) Error() string {
	return fmt.Sprintf("missing required input: %s", e.Field)
}

// ErrBadUpload indicates the resume upload could not be processed
type ErrBadUpload struct {
	Message string
}

func (e *ErrBadUpload) Error() string {
	return "bad resume upload: " + e.Message
}

// ErrUnsupportedMedia indicates a request content type the API does not accept
type ErrUnsupportedMedia struct {
	ContentType string
}

func (e *ErrUnsupportedMedia) Error() string {
	return "unsupported content type: " + e.ContentType
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrMissingInput, *ErrBadUpload:
		return http.StatusBadRequest
	case *ErrUnsupportedMedia:
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusInternalServerError
	}
}
