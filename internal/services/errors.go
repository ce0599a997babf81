package services

import "errors"

type ErrorCode string

const (
	ErrorInvalid           ErrorCode = "invalid"
	ErrorNotFound          ErrorCode = "not_found"
	ErrorConflict          ErrorCode = "conflict"
	ErrorNoResults         ErrorCode = "no_results"
	ErrorNoAPIKey          ErrorCode = "no_api_key"
	ErrorBadGateway        ErrorCode = "bad_gateway"
	ErrorMalformedResponse ErrorCode = "malformed_response"
)

type ServiceError struct {
	Code    ErrorCode
	Message string
}

func (e *ServiceError) Error() string { return e.Message }

func NewInvalidError(msg string) error  { return &ServiceError{Code: ErrorInvalid, Message: msg} }
func NewNotFoundError(msg string) error { return &ServiceError{Code: ErrorNotFound, Message: msg} }
func NewConflictError(msg string) error { return &ServiceError{Code: ErrorConflict, Message: msg} }

func NewNoResultsError(msg string) error { return &ServiceError{Code: ErrorNoResults, Message: msg} }
func NewNoAPIKeyError(msg string) error  { return &ServiceError{Code: ErrorNoAPIKey, Message: msg} }

func NewBadGatewayError(msg string) error {
	return &ServiceError{Code: ErrorBadGateway, Message: msg}
}

func NewMalformedResponseError(msg string) error {
	return &ServiceError{Code: ErrorMalformedResponse, Message: msg}
}

func AsServiceError(err error) (*ServiceError, bool) {
	var se *ServiceError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
