// Package server exposes the tailoring pipeline over HTTP for the wizard UI.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-tailor/internal/pipeline"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrBusy indicates every run slot is taken
type ErrBusy struct{}

func (e *ErrBusy) Error() string {
	return "server is busy, please retry shortly"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var validationErr *ErrValidation
	var busyErr *ErrBusy
	var userErr *pipeline.UserError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &busyErr):
		return http.StatusServiceUnavailable
	case errors.As(err, &userErr):
		return categoryStatus(userErr.Category)
	default:
		return http.StatusInternalServerError
	}
}

func categoryStatus(category pipeline.Category) int {
	switch category {
	case pipeline.CategoryInvalidInput:
		return http.StatusBadRequest
	case pipeline.CategoryLinkedInAccess, pipeline.CategoryJobPostingAccess:
		return http.StatusUnprocessableEntity
	case pipeline.CategoryNetwork:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// validationError converts the first validator failure into an ErrValidation
func validationError(err error) *ErrValidation {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		ve := validationErrors[0]
		return &ErrValidation{Field: ve.Field(), Message: ve.Tag()}
	}
	return &ErrValidation{Field: "request", Message: "invalid request"}
}

// userError returns the body sent for err
func userError(err error) *pipeline.UserError {
	var userErr *pipeline.UserError
	if errors.As(err, &userErr) {
		return userErr
	}

	var validationErr *ErrValidation
	if errors.As(err, &validationErr) {
		return &pipeline.UserError{
			Category:    pipeline.CategoryInvalidInput,
			Message:     validationErr.Error(),
			Remediation: []string{"Check the request body and try again"},
			Cause:       err,
		}
	}

	var busyErr *ErrBusy
	if errors.As(err, &busyErr) {
		return &pipeline.UserError{
			Category:    pipeline.CategoryGeneric,
			Message:     busyErr.Error(),
			Remediation: []string{"Wait a moment and submit the request again"},
			Cause:       err,
		}
	}

	return pipeline.Describe(err)
}
