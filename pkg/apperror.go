package pkg

import "fmt"

// AppError is the error shape handlers return to HTTP clients: a stable
// machine-readable code, a human-readable message and the status to respond
// with. The wrapped cause is kept for logging and never serialized.

type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// HTTPError is the serialized body for an AppError response.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message}
}

// FieldError is the serialized body for a validation failure: the offending
// fields mapped to their messages. It satisfies error so usecases can return
// it and handlers can pick it out with errors.As.
type FieldError struct {
	Code   string            `json:"code"`
	Fields map[string]string `json:"fields"`
}

func NewFieldError(fields map[string]string) *FieldError {
	return &FieldError{Code: "VALIDATION_FAILED", Fields: fields}
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}
