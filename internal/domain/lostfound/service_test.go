package lostfound

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-adoption/internal/domain/identity"
	"pet-adoption/internal/platform/storecall"
)

type testRepo struct {
	items []Post
}

func (r *testRepo) Create(ctx context.Context, p Post) error {
	r.items = append(r.items, p)
	return nil
}

func (r *testRepo) List(ctx context.Context) ([]Post, error) {
	out := make([]Post, len(r.items))
	copy(out, r.items)
	return out, nil
}

func TestCreateAndListNewestFirst(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo, storecall.DefaultPolicy())

	base := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	n := 0
	svc.now = func() time.Time { n++; return base.Add(time.Duration(n) * time.Minute) }

	author := identity.Identity{ID: "Ana@x.com"}
	ctx := context.Background()

	first, err := svc.Create(ctx, author, CreateInput{Title: "Perro perdido", Description: "Collar rojo", Location: "Plaza"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.Kind != KindLost || first.AuthorID != "ana@x.com" {
		t.Fatalf("unexpected defaults: %+v", first)
	}

	second, err := svc.Create(ctx, author, CreateInput{Kind: "Found", Title: "Gato", Description: "Encontrado", Location: "Centro"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	items, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 || items[0].ID != second.ID || items[1].ID != first.ID {
		t.Fatalf("expected newest first, got %+v", items)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(&testRepo{}, storecall.DefaultPolicy())
	ctx := context.Background()
	author := identity.Identity{ID: "ana@x.com"}

	cases := []CreateInput{
		{Title: "", Description: "x", Location: "y"},
		{Title: "x", Description: "x", Location: "  "},
		{Kind: "stolen", Title: "x", Description: "x", Location: "y"},
		{Title: "x", Description: "x", Location: "y", ImageRef: "javascript:alert(1)"},
	}
	for i, in := range cases {
		if _, err := svc.Create(ctx, author, in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}

	if _, err := svc.Create(ctx, identity.Identity{}, CreateInput{Title: "x", Description: "x", Location: "y"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput without author, got %v", err)
	}
}
