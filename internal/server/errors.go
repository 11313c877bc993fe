// Package server provides the HTTP REST API for the placement agent.
package server

import (
	"fmt"
	"net/http"
)

// ErrEntryNotFound indicates no analysis entry exists with the given id
type ErrEntryNotFound struct {
	ID string
}

func (e *ErrEntryNotFound) Error() string {
	return fmt.Sprintf("analysis entry not found: %s", e.ID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrIngestion indicates the job description could not be fetched or read
type ErrIngestion struct {
	Source string
	Err    error
}

func (e *ErrIngestion) Error() string {
	return fmt.Sprintf("failed to ingest job description from %s: %v", e.Source, e.Err)
}

func (e *ErrIngestion) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrEntryNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrIngestion:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
