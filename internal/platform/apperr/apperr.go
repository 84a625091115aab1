// Package apperr define la taxonomía de errores compartida por los módulos de dominio.
//
// Cada módulo sigue exponiendo sus propios sentinels (pets.ErrInvalidInput, chat.ErrNotFound, ...)
// pero los construye sobre estos para que httpx.WriteError pueda mapearlos sin conocer cada paquete.
package apperr

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

var (
	ErrValidation   = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrAlreadyRated = errors.New("already rated")
	ErrConflict     = errors.New("conflict")
)

// ValidationError detalla qué campos fallaron. errors.Is(err, ErrValidation) == true.
type ValidationError struct {
	Fields []string
	Reason string
}

func (e *ValidationError) Error() string {
	switch {
	case len(e.Fields) > 0 && e.Reason != "":
		return fmt.Sprintf("invalid input: %s (%s)", e.Reason, strings.Join(e.Fields, ", "))
	case len(e.Fields) > 0:
		return "invalid input: " + strings.Join(e.Fields, ", ")
	case e.Reason != "":
		return "invalid input: " + e.Reason
	default:
		return ErrValidation.Error()
	}
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func Invalid(reason string, fields ...string) error {
	return &ValidationError{Fields: fields, Reason: reason}
}

// StoreError envuelve fallas del store externo (red, timeout, permisos).
type StoreError struct {
	Op        string
	Err       error
	Retryable bool
}

func (e *StoreError) Error() string {
	if e.Retryable {
		return fmt.Sprintf("store %s: %v (retryable)", e.Op, e.Err)
	}
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// IsDomain indica si err ya pertenece a la taxonomía de dominio y no debe envolverse.
func IsDomain(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrForbidden) ||
		errors.Is(err, ErrAlreadyRated) ||
		errors.Is(err, ErrConflict)
}

// IsRetryable: solo StoreError marcados como reintentables.
func IsRetryable(err error) bool {
	var se *StoreError
	if errors.As(err, &se) {
		return se.Retryable
	}
	return false
}

// Classify convierte un error crudo de adapter en StoreError, salvo que ya sea de dominio.
func Classify(op string, err error) error {
	if err == nil || IsDomain(err) {
		return err
	}
	var se *StoreError
	if errors.As(err, &se) {
		return err
	}
	return &StoreError{Op: op, Err: err, Retryable: transient(err)}
}

func transient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	var oe *net.OpError
	return errors.As(err, &oe)
}
