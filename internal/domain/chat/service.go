package chat

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"pet-adoption/internal/domain/identity"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/platform/apperr"
	"pet-adoption/internal/platform/imageref"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/platform/metrics"
	"pet-adoption/internal/platform/storecall"
	"pet-adoption/internal/platform/validation"
)

var (
	ErrInvalidInput = apperr.ErrValidation
	ErrNotFound     = apperr.ErrNotFound
	ErrForbidden    = apperr.ErrForbidden
)

// PetLookup: ContactOwner necesita el dueño de la mascota.
type PetLookup interface {
	GetByID(ctx context.Context, id string) (pets.Pet, error)
}

type Service struct {
	threads  ThreadRepository
	messages MessageRepository
	pets     PetLookup

	policy  storecall.Policy
	log     logger.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

type Options struct {
	Policy  storecall.Policy
	Logger  logger.Logger
	Metrics *metrics.Metrics
}

func NewService(threads ThreadRepository, messages MessageRepository, petLookup PetLookup, opts Options) *Service {
	if opts.Logger == nil {
		opts.Logger = logger.NewNop()
	}
	return &Service{
		threads:  threads,
		messages: messages,
		pets:     petLookup,
		policy:   opts.Policy,
		log:      opts.Logger,
		metrics:  opts.Metrics,
		now:      time.Now,
	}
}

// ResolveThread devuelve el thread entre a y b, creándolo si no existe.
// La creación es condicional sobre el id derivado: llamadas concurrentes para el mismo par
// terminan en un único thread.
func (s *Service) ResolveThread(ctx context.Context, a, b identity.Identity) (Thread, bool, error) {
	a, b = a.Normalized(), b.Normalized()

	id, err := ThreadID(a.ID, b.ID)
	if err != nil {
		return Thread{}, false, err
	}

	// Camino rápido: la mayoría de las veces el thread ya existe.
	existing, err := storecall.Read(ctx, s.policy, "chat.get_thread", func(ctx context.Context) (Thread, error) {
		return s.threads.GetByID(ctx, id)
	})
	switch {
	case err == nil:
		s.metrics.ThreadResolved(false)
		return existing, false, nil
	case !errors.Is(err, ErrNotFound):
		return Thread{}, false, err
	}

	first, second := a, b
	if first.ID > second.ID {
		first, second = second, first
	}
	now := s.now()
	candidate := Thread{
		ID: id,
		Participants: [2]Participant{
			{ID: first.ID, DisplayName: first.DisplayName, ImageRef: first.ImageRef},
			{ID: second.ID, DisplayName: second.DisplayName, ImageRef: second.ImageRef},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	type result struct {
		thread  Thread
		created bool
	}
	res, err := storecall.WriteValue(ctx, s.policy, "chat.create_thread", func(ctx context.Context) (result, error) {
		t, created, err := s.threads.CreateIfAbsent(ctx, candidate)
		return result{thread: t, created: created}, err
	})
	if err != nil {
		return Thread{}, false, err
	}

	s.metrics.ThreadResolved(res.created)
	if res.created {
		s.log.Info("thread created", map[string]any{"thread_id": id})
	}
	return res.thread, res.created, nil
}

// ContactOwner abre (o recupera) la conversación entre actor y el dueño de la mascota.
func (s *Service) ContactOwner(ctx context.Context, actor identity.Identity, petID string) (Thread, bool, error) {
	p, err := s.pets.GetByID(ctx, strings.TrimSpace(petID))
	if err != nil {
		return Thread{}, false, err
	}
	owner := identity.Identity{ID: p.OwnerID, DisplayName: p.OwnerDisplayName, ImageRef: p.OwnerImageRef}
	return s.ResolveThread(ctx, actor, owner)
}

// InboxEntry es un thread visto desde uno de sus participantes.
type InboxEntry struct {
	Thread Thread
	Other  Participant
}

// Inbox lista los threads del actor, el más reciente primero.
func (s *Service) Inbox(ctx context.Context, actor identity.Identity) ([]InboxEntry, error) {
	actorID := identity.NormalizeID(actor.ID)
	if actorID == "" {
		return nil, ErrInvalidInput
	}

	threads, err := storecall.Read(ctx, s.policy, "chat.list_threads", func(ctx context.Context) ([]Thread, error) {
		return s.threads.ListByParticipant(ctx, actorID)
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(threads, func(i, j int) bool {
		if threads[i].UpdatedAt.Equal(threads[j].UpdatedAt) {
			return threads[i].ID < threads[j].ID
		}
		return threads[i].UpdatedAt.After(threads[j].UpdatedAt)
	})

	return lo.Map(threads, func(t Thread, _ int) InboxEntry {
		return InboxEntry{Thread: t, Other: t.Other(actorID)}
	}), nil
}

// GetThread solo para participantes.
func (s *Service) GetThread(ctx context.Context, actor identity.Identity, threadID string) (Thread, error) {
	actorID := identity.NormalizeID(actor.ID)
	if actorID == "" {
		return Thread{}, ErrInvalidInput
	}
	threadID = strings.TrimSpace(threadID)
	if threadID == "" {
		return Thread{}, ErrNotFound
	}

	t, err := storecall.Read(ctx, s.policy, "chat.get_thread", func(ctx context.Context) (Thread, error) {
		return s.threads.GetByID(ctx, threadID)
	})
	if err != nil {
		return Thread{}, err
	}
	if !t.Has(actorID) {
		return Thread{}, ErrForbidden
	}
	return t, nil
}

type SendInput struct {
	Kind    string
	Payload string `validate:"required,max=4000"`
}

// SendMessage agrega un mensaje al thread. Solo los participantes pueden escribir.
func (s *Service) SendMessage(ctx context.Context, actor identity.Identity, threadID string, in SendInput) (Message, error) {
	t, err := s.GetThread(ctx, actor, threadID)
	if err != nil {
		return Message{}, err
	}

	in.Payload = strings.TrimSpace(in.Payload)
	kind := MessageKind(strings.ToLower(strings.TrimSpace(in.Kind)))
	if kind == "" {
		kind = KindText
	}

	switch kind {
	case KindText:
		if err := validation.Struct(in); err != nil {
			return Message{}, err
		}
	case KindImage:
		ref, err := imageref.Validate(in.Payload)
		if err != nil {
			return Message{}, err
		}
		in.Payload = ref
	default:
		return Message{}, apperr.Invalid("kind must be text or image", "kind")
	}

	m := Message{
		ID:        uuid.NewString(),
		ThreadID:  t.ID,
		SenderID:  identity.NormalizeID(actor.ID),
		Kind:      kind,
		Payload:   in.Payload,
		Status:    StatusSent,
		CreatedAt: s.now(),
	}

	if err := storecall.Write(ctx, s.policy, "chat.append_message", func(ctx context.Context) error {
		return s.messages.Append(ctx, m)
	}); err != nil {
		return Message{}, err
	}

	// El mensaje ya está guardado; si falla el touch solo se desordena el inbox.
	if err := storecall.Write(ctx, s.policy, "chat.touch_thread", func(ctx context.Context) error {
		return s.threads.Touch(ctx, t.ID, m.CreatedAt)
	}); err != nil {
		s.log.Warn("thread touch failed", map[string]any{"thread_id": t.ID, "err": err})
	}
	return m, nil
}

// Messages devuelve el historial ascendente por CreatedAt.
func (s *Service) Messages(ctx context.Context, actor identity.Identity, threadID string) ([]Message, error) {
	t, err := s.GetThread(ctx, actor, threadID)
	if err != nil {
		return nil, err
	}

	items, err := storecall.Read(ctx, s.policy, "chat.list_messages", func(ctx context.Context) ([]Message, error) {
		return s.messages.ListByThread(ctx, t.ID)
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}
