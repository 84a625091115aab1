// Package storecall aplica timeout y política de reintento a las llamadas contra el store externo.
//
// Lecturas: un reintento con backoff si el error es reintentable.
// Escrituras: sin reintento (evita duplicados silenciosos); el error sube tal cual al usuario.
package storecall

import (
	"context"
	"time"

	"pet-adoption/internal/platform/apperr"
)

const (
	DefaultTimeout = 5 * time.Second
	DefaultBackoff = 200 * time.Millisecond
)

type Policy struct {
	Timeout time.Duration
	Backoff time.Duration
}

func DefaultPolicy() Policy {
	return Policy{Timeout: DefaultTimeout, Backoff: DefaultBackoff}
}

func (p Policy) normalized() Policy {
	if p.Timeout <= 0 {
		p.Timeout = DefaultTimeout
	}
	if p.Backoff < 0 {
		p.Backoff = 0
	}
	return p
}

// Read ejecuta fn con timeout y, si falla de forma reintentable, reintenta una vez tras Backoff.
func Read[T any](ctx context.Context, p Policy, op string, fn func(ctx context.Context) (T, error)) (T, error) {
	p = p.normalized()

	v, err := once(ctx, p, op, fn)
	if err == nil || !apperr.IsRetryable(err) {
		return v, err
	}

	select {
	case <-ctx.Done():
		var zero T
		return zero, apperr.Classify(op, ctx.Err())
	case <-time.After(p.Backoff):
	}

	return once(ctx, p, op, fn)
}

// Write ejecuta fn con timeout, sin reintentos.
func Write(ctx context.Context, p Policy, op string, fn func(ctx context.Context) error) error {
	p = p.normalized()
	_, err := once(ctx, p, op, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}

// WriteValue es Write para operaciones que devuelven un valor (p.ej. create-if-absent).
func WriteValue[T any](ctx context.Context, p Policy, op string, fn func(ctx context.Context) (T, error)) (T, error) {
	return once(ctx, p.normalized(), op, fn)
}

func once[T any](ctx context.Context, p Policy, op string, fn func(ctx context.Context) (T, error)) (T, error) {
	cctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	v, err := fn(cctx)
	if err != nil {
		return v, apperr.Classify(op, err)
	}
	return v, nil
}
