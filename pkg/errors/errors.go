package errors

import (
	"fmt"
	"net/http"
)

var (
	// JWT
	ErrInvalidSigningMethod = fmt.Errorf("método de firma del token no válido")
	ErrInvalidToken         = fmt.Errorf("token no válido")
	ErrTokenExpired         = fmt.Errorf("el token ha expirado")
	ErrTokenNotYetValid     = fmt.Errorf("el token aún no es válido")
	ErrTokenIsNotRefresh    = fmt.Errorf("el token no es un token de refresco")
	ErrTokenIsNotAccess     = fmt.Errorf("el token no es un token de acceso")

	// Auth
	ErrEmptyAuthHeader    = fmt.Errorf("falta el encabezado Authorization")
	ErrInvalidAuthHeader  = fmt.Errorf("formato del encabezado Authorization no válido")
	ErrInvalidCredentials = fmt.Errorf("credenciales incorrectas")
	ErrUnauthorized       = fmt.Errorf("no autorizado")
	ErrForbidden          = fmt.Errorf("acceso denegado")

	ErrUserIDNotFoundInContext = fmt.Errorf("UserID no encontrado en el contexto")

	// General
	ErrNotFound   = fmt.Errorf("registro no encontrado")
	ErrBadRequest = fmt.Errorf("solicitud incorrecta")
	ErrConflict   = fmt.Errorf("Ya existe un registro con el mismo valor")
	ErrInternal   = fmt.Errorf("error interno del servidor")
)

type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}

// HttpError carries the status code and client message; Err is only logged.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, ctx map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Context: ctx}
}

func NewNotFoundError(message string) *HttpError {
	return NewHttpError(http.StatusNotFound, message, ErrNotFound, nil)
}

func NewBadRequestError(message string) *HttpError {
	return NewHttpError(http.StatusBadRequest, message, nil, nil)
}

func NewConflictError(message string) *HttpError {
	return NewHttpError(http.StatusConflict, message, nil, nil)
}

func NewInternalError(message string, err error) *HttpError {
	return NewHttpError(http.StatusInternalServerError, message, err, nil)
}
