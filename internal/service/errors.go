package service

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package that the caller may
// report to a client wraps exactly one of these.
var (
	ErrValidation      = errors.New("validation error")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
)

// Error carries a client-safe message together with its kind.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Validation builds an ErrValidation error.
func Validation(message string) error { return newError(ErrValidation, message) }

// Unauthenticated builds an ErrUnauthenticated error.
func Unauthenticated(message string) error { return newError(ErrUnauthenticated, message) }

// Forbidden builds an ErrForbidden error.
func Forbidden(message string) error { return newError(ErrForbidden, message) }

// NotFound builds an ErrNotFound error.
func NotFound(message string) error { return newError(ErrNotFound, message) }

// Conflict builds an ErrConflict error.
func Conflict(message string) error { return newError(ErrConflict, message) }

// ClientMessage returns the message suitable for a response body, or "" if
// err is not a classified service error.
func ClientMessage(err error) string {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Message
	}
	return ""
}

const (
	msgInvalidCredentials = "E-mail ou senha inválidos."
	msgInvalidToken       = "Token inválido ou expirado."
	msgEmailTaken         = "Já existe um usuário com este e-mail."
	msgUserNotFound       = "Usuário não encontrado."
	msgLinkNotFound       = "Link afiliado não encontrado."
	msgPlatformNotFound   = "Plataforma de compra não encontrada."
	msgNoFields           = "Informe ao menos um campo para atualização."
	msgPasswordTooShort   = "A senha deve ter no mínimo 6 caracteres."
	msgPasswordTooLong    = "A senha deve ter no máximo 72 bytes."
	msgPasswordBlank      = "A senha não pode conter apenas espaços."
	msgInvalidID          = "ID inválido."
)
