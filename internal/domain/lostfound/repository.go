package lostfound

import "context"

type Repository interface {
	Create(ctx context.Context, p Post) error
	// List devuelve los posts, el más nuevo primero.
	List(ctx context.Context) ([]Post, error)
}
