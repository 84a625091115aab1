package lostfound

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"pet-adoption/internal/domain/identity"
	"pet-adoption/internal/platform/apperr"
	"pet-adoption/internal/platform/imageref"
	"pet-adoption/internal/platform/storecall"
	"pet-adoption/internal/platform/validation"
)

var ErrInvalidInput = apperr.ErrValidation

type Service struct {
	repo   Repository
	policy storecall.Policy
	now    func() time.Time
}

func NewService(repo Repository, policy storecall.Policy) *Service {
	return &Service{repo: repo, policy: policy, now: time.Now}
}

type CreateInput struct {
	Kind        string
	Title       string `validate:"required,max=120"`
	Description string `validate:"required,max=2000"`
	Location    string `validate:"required,max=200"`
	ImageRef    string
}

func (s *Service) Create(ctx context.Context, author identity.Identity, in CreateInput) (Post, error) {
	authorID := identity.NormalizeID(author.ID)
	if authorID == "" {
		return Post{}, ErrInvalidInput
	}

	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Location = strings.TrimSpace(in.Location)
	if err := validation.Struct(in); err != nil {
		return Post{}, err
	}

	kind, ok := ParseKind(in.Kind)
	if !ok {
		return Post{}, apperr.Invalid("kind must be lost or found", "kind")
	}

	img := strings.TrimSpace(in.ImageRef)
	if img != "" {
		ref, err := imageref.Validate(img)
		if err != nil {
			return Post{}, err
		}
		img = ref
	}

	p := Post{
		ID:          uuid.NewString(),
		Kind:        kind,
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		ImageRef:    img,
		AuthorID:    authorID,
		CreatedAt:   s.now(),
	}
	if err := storecall.Write(ctx, s.policy, "lostfound.create", func(ctx context.Context) error {
		return s.repo.Create(ctx, p)
	}); err != nil {
		return Post{}, err
	}
	return p, nil
}

func (s *Service) List(ctx context.Context) ([]Post, error) {
	items, err := storecall.Read(ctx, s.policy, "lostfound.list", s.repo.List)
	if err != nil {
		return nil, err
	}
	// Los adapters ya ordenan; acá se garantiza para todos.
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}
