package profiles

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"pet-adoption/internal/domain/identity"
	"pet-adoption/internal/platform/apperr"
	"pet-adoption/internal/platform/imageref"
	"pet-adoption/internal/platform/storecall"
)

var (
	ErrInvalidInput = apperr.ErrValidation
	ErrNotFound     = apperr.ErrNotFound
)

const maxDisplayName = 80

type Service struct {
	repo       Repository
	reconciler *Reconciler
	policy     storecall.Policy
	now        func() time.Time
}

func NewService(repo Repository, reconciler *Reconciler, policy storecall.Policy) *Service {
	return &Service{
		repo:       repo,
		reconciler: reconciler,
		policy:     policy,
		now:        time.Now,
	}
}

// Load devuelve el perfil; en el primer acceso lo crea con los datos de la identidad.
func (s *Service) Load(ctx context.Context, who identity.Identity) (Profile, error) {
	who = who.Normalized()
	if who.IsZero() {
		return Profile{}, ErrInvalidInput
	}

	p, err := storecall.Read(ctx, s.policy, "profiles.get", func(ctx context.Context) (Profile, error) {
		return s.repo.Get(ctx, who.ID)
	})
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return Profile{}, err
	}

	now := s.now()
	return storecall.WriteValue(ctx, s.policy, "profiles.create", func(ctx context.Context) (Profile, error) {
		created, _, err := s.repo.CreateIfAbsent(ctx, Profile{
			UserID:      who.ID,
			DisplayName: who.DisplayName,
			ImageRef:    who.ImageRef,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		return created, err
	})
}

type UpdateInput struct {
	DisplayName *string
	ImageRef    *string // "" borra la imagen
}

// Update guarda el perfil y propaga los cambios a publicaciones y threads.
// El reporte de la propagación siempre se devuelve, aunque tenga fallas.
func (s *Service) Update(ctx context.Context, who identity.Identity, in UpdateInput) (Profile, Report, error) {
	p, err := s.Load(ctx, who)
	if err != nil {
		return Profile{}, Report{}, err
	}

	if in.DisplayName != nil {
		name := strings.TrimSpace(*in.DisplayName)
		if name == "" || utf8.RuneCountInString(name) > maxDisplayName {
			return Profile{}, Report{}, apperr.Invalid("display name must be 1-80 characters", "display_name")
		}
		p.DisplayName = name
	}
	if in.ImageRef != nil {
		ref := strings.TrimSpace(*in.ImageRef)
		if ref != "" {
			if ref, err = imageref.Validate(ref); err != nil {
				return Profile{}, Report{}, err
			}
		}
		p.ImageRef = ref
	}

	p.UpdatedAt = s.now()
	if err := storecall.Write(ctx, s.policy, "profiles.save", func(ctx context.Context) error {
		return s.repo.Save(ctx, p)
	}); err != nil {
		return Profile{}, Report{}, err
	}

	if s.reconciler == nil {
		return p, Report{}, nil
	}
	return p, s.reconciler.Run(ctx, p), nil
}

// Reconcile corre la propagación sin cambiar el perfil (CLI / jobs programados).
func (s *Service) Reconcile(ctx context.Context, userID string) (Profile, Report, error) {
	userID = identity.NormalizeID(userID)
	if userID == "" {
		return Profile{}, Report{}, ErrInvalidInput
	}
	p, err := storecall.Read(ctx, s.policy, "profiles.get", func(ctx context.Context) (Profile, error) {
		return s.repo.Get(ctx, userID)
	})
	if err != nil {
		return Profile{}, Report{}, err
	}
	if s.reconciler == nil {
		return p, Report{}, nil
	}
	return p, s.reconciler.Run(ctx, p), nil
}
