// Package server provides the HTTP REST API for the resume checker.
package server

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/Apshaya/RES-Checker/internal/fetch"
	"github.com/Apshaya/RES-Checker/internal/ingestion"
)

// HTTPStatus maps boundary errors to response status codes.
func HTTPStatus(err error) int {
	var (
		tooShort    *ingestion.InputTooShortError
		unsupported *ingestion.UnsupportedFormatError
		decodeErr   *ingestion.DecodeError
		fetchErr    *fetch.Error
		validation  validator.ValidationErrors
	)

	switch {
	case errors.As(err, &tooShort), errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &unsupported):
		return http.StatusUnsupportedMediaType
	case errors.As(err, &decodeErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &fetchErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
