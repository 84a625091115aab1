package pets

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"pet-adoption/internal/domain/identity"
	"pet-adoption/internal/platform/apperr"
	"pet-adoption/internal/platform/imageref"
	"pet-adoption/internal/platform/storecall"
	"pet-adoption/internal/platform/validation"
)

var (
	ErrInvalidInput = apperr.ErrValidation
	ErrNotFound     = apperr.ErrNotFound
	ErrForbidden    = apperr.ErrForbidden
)

type Service struct {
	repo   Repository
	policy storecall.Policy
	now    func() time.Time

	// onChange se llama tras cada mutación (invalida el cache del catálogo).
	onChange func(ctx context.Context)
}

func NewService(repo Repository, policy storecall.Policy) *Service {
	return &Service{
		repo:     repo,
		policy:   policy,
		now:      time.Now,
		onChange: func(context.Context) {},
	}
}

// OnChange registra el hook de invalidación. nil lo desactiva.
func (s *Service) OnChange(fn func(ctx context.Context)) {
	if fn == nil {
		fn = func(context.Context) {}
	}
	s.onChange = fn
}

type CreateInput struct {
	Name     string   `validate:"required,max=80"`
	Category string   `validate:"required,max=40"`
	Breed    string   `validate:"required,max=80"`
	Age      *float64 `validate:"required,gte=0,lte=100"`
	Sex      string   `validate:"required"`
	Weight   *float64 `validate:"required,gt=0,lte=500"`
	Address  string   `validate:"required,max=200"`
	About    string   `validate:"required,max=2000"`

	Images          []string `validate:"min=1,max=3"`
	CoverImageIndex int
}

func (s *Service) Create(ctx context.Context, owner identity.Identity, in CreateInput) (Pet, error) {
	owner = owner.Normalized()
	if owner.IsZero() {
		return Pet{}, ErrInvalidInput
	}

	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	in.Breed = strings.TrimSpace(in.Breed)
	in.Sex = strings.TrimSpace(in.Sex)
	in.Address = strings.TrimSpace(in.Address)
	in.About = strings.TrimSpace(in.About)

	if err := validation.Struct(in); err != nil {
		return Pet{}, err
	}
	sex, ok := ParseSex(in.Sex)
	if !ok {
		return Pet{}, apperr.Invalid("sex must be male, female or unknown", "sex")
	}
	images, cover, err := normalizeImages(in.Images, in.CoverImageIndex)
	if err != nil {
		return Pet{}, err
	}

	now := s.now()
	p := Pet{
		ID:               uuid.NewString(),
		Name:             in.Name,
		Category:         in.Category,
		Breed:            in.Breed,
		Age:              *in.Age,
		Sex:              sex,
		Weight:           *in.Weight,
		Address:          in.Address,
		About:            in.About,
		Images:           images,
		CoverImageIndex:  cover,
		OwnerID:          owner.ID,
		OwnerDisplayName: owner.DisplayName,
		OwnerImageRef:    owner.ImageRef,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := storecall.Write(ctx, s.policy, "pets.create", func(ctx context.Context) error {
		return s.repo.Create(ctx, p)
	}); err != nil {
		return Pet{}, err
	}
	s.onChange(ctx)
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrNotFound
	}
	return storecall.Read(ctx, s.policy, "pets.get", func(ctx context.Context) (Pet, error) {
		return s.repo.GetByID(ctx, id)
	})
}

func (s *Service) ListAll(ctx context.Context) ([]Pet, error) {
	return storecall.Read(ctx, s.policy, "pets.list_all", s.repo.ListAll)
}

func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]Pet, error) {
	ownerID = identity.NormalizeID(ownerID)
	if ownerID == "" {
		return nil, ErrInvalidInput
	}
	return storecall.Read(ctx, s.policy, "pets.list_by_owner", func(ctx context.Context) ([]Pet, error) {
		return s.repo.ListByOwner(ctx, ownerID)
	})
}

type UpdateInput struct {
	// Punteros para PATCH real: nil = no tocar.
	Name     *string  `validate:"omitempty,min=1,max=80"`
	Category *string  `validate:"omitempty,min=1,max=40"`
	Breed    *string  `validate:"omitempty,min=1,max=80"`
	Age      *float64 `validate:"omitempty,gte=0,lte=100"`
	Sex      *string
	Weight   *float64 `validate:"omitempty,gt=0,lte=500"`
	Address  *string  `validate:"omitempty,min=1,max=200"`
	About    *string  `validate:"omitempty,min=1,max=2000"`

	// Si viene Images se reemplaza la lista completa (CoverImageIndex aplica sobre la nueva lista).
	Images          []string
	CoverImageIndex *int
}

// Update aplica un PATCH. Solo el dueño puede editar su publicación.
func (s *Service) Update(ctx context.Context, petID string, actor identity.Identity, in UpdateInput) (Pet, error) {
	p, err := s.ownedPet(ctx, petID, actor)
	if err != nil {
		return Pet{}, err
	}

	trimPtr(in.Name)
	trimPtr(in.Category)
	trimPtr(in.Breed)
	trimPtr(in.Address)
	trimPtr(in.About)
	if err := validation.Struct(in); err != nil {
		return Pet{}, err
	}

	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Breed != nil {
		p.Breed = *in.Breed
	}
	if in.Age != nil {
		p.Age = *in.Age
	}
	if in.Sex != nil {
		sex, ok := ParseSex(*in.Sex)
		if !ok {
			return Pet{}, apperr.Invalid("sex must be male, female or unknown", "sex")
		}
		p.Sex = sex
	}
	if in.Weight != nil {
		p.Weight = *in.Weight
	}
	if in.Address != nil {
		p.Address = *in.Address
	}
	if in.About != nil {
		p.About = *in.About
	}

	switch {
	case in.Images != nil:
		cover := 0
		if in.CoverImageIndex != nil {
			cover = *in.CoverImageIndex
		}
		images, idx, err := normalizeImages(in.Images, cover)
		if err != nil {
			return Pet{}, err
		}
		p.Images, p.CoverImageIndex = images, idx
	case in.CoverImageIndex != nil:
		if err := checkCover(len(p.Images), *in.CoverImageIndex); err != nil {
			return Pet{}, err
		}
		p.CoverImageIndex = *in.CoverImageIndex
	}

	p.UpdatedAt = s.now()
	if err := storecall.Write(ctx, s.policy, "pets.update", func(ctx context.Context) error {
		return s.repo.Update(ctx, p)
	}); err != nil {
		return Pet{}, err
	}
	s.onChange(ctx)
	return p, nil
}

// SetCover cambia la portada sin tocar el resto.
func (s *Service) SetCover(ctx context.Context, petID string, actor identity.Identity, index int) (Pet, error) {
	return s.Update(ctx, petID, actor, UpdateInput{CoverImageIndex: &index})
}

func (s *Service) Delete(ctx context.Context, petID string, actor identity.Identity) error {
	p, err := s.ownedPet(ctx, petID, actor)
	if err != nil {
		return err
	}
	if err := storecall.Write(ctx, s.policy, "pets.delete", func(ctx context.Context) error {
		return s.repo.Delete(ctx, p.ID)
	}); err != nil {
		return err
	}
	s.onChange(ctx)
	return nil
}

func (s *Service) ownedPet(ctx context.Context, petID string, actor identity.Identity) (Pet, error) {
	actor = actor.Normalized()
	if actor.IsZero() {
		return Pet{}, ErrInvalidInput
	}
	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return Pet{}, err
	}
	if p.OwnerID != actor.ID {
		return Pet{}, ErrForbidden
	}
	return p, nil
}

func normalizeImages(in []string, cover int) ([]string, int, error) {
	if len(in) == 0 {
		return nil, 0, apperr.Invalid("at least one image is required", "images")
	}
	if len(in) > MaxImages {
		return nil, 0, apperr.Invalid("too many images (max 3)", "images")
	}
	out := make([]string, 0, len(in))
	for _, raw := range in {
		ref, err := imageref.Validate(raw)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, ref)
	}
	if err := checkCover(len(out), cover); err != nil {
		return nil, 0, err
	}
	return out, cover, nil
}

func checkCover(n, idx int) error {
	if n == 0 {
		if idx != 0 {
			return apperr.Invalid("cover image index out of range", "cover_image_index")
		}
		return nil
	}
	if idx < 0 || idx >= n {
		return apperr.Invalid("cover image index out of range", "cover_image_index")
	}
	return nil
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}
