package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"pet-adoption/internal/domain/chat"
)

type threadRepo struct {
	mu   sync.RWMutex
	byID map[string]chat.Thread
}

func NewThreadRepo() chat.ThreadRepository {
	return &threadRepo{byID: make(map[string]chat.Thread)}
}

// CreateIfAbsent: check + insert bajo el mismo lock.
func (r *threadRepo) CreateIfAbsent(ctx context.Context, t chat.Thread) (chat.Thread, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byID[t.ID]; ok {
		return existing, false, nil
	}
	r.byID[t.ID] = t
	return t, true, nil
}

func (r *threadRepo) GetByID(ctx context.Context, id string) (chat.Thread, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.byID[id]
	if !ok {
		return chat.Thread{}, ErrNotFound
	}
	return t, nil
}

func (r *threadRepo) ListByParticipant(ctx context.Context, participantID string) ([]chat.Thread, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]chat.Thread, 0)
	for _, t := range r.byID {
		if t.Has(participantID) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *threadRepo) Touch(ctx context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	if at.After(t.UpdatedAt) {
		t.UpdatedAt = at
		r.byID[id] = t
	}
	return nil
}

func (r *threadRepo) ListIDsByParticipant(ctx context.Context, participantID string) ([]string, error) {
	items, _ := r.ListByParticipant(ctx, participantID)
	out := make([]string, 0, len(items))
	for _, t := range items {
		out = append(out, t.ID)
	}
	return out, nil
}

func (r *threadRepo) UpdateParticipantInfo(ctx context.Context, threadID, participantID, displayName, imageRef string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.byID[threadID]
	if !ok {
		return ErrNotFound
	}
	found := false
	for i := range t.Participants {
		if t.Participants[i].ID == participantID {
			t.Participants[i].DisplayName = displayName
			t.Participants[i].ImageRef = imageRef
			found = true
		}
	}
	if !found {
		return ErrNotFound
	}
	r.byID[threadID] = t
	return nil
}

type messageRepo struct {
	mu       sync.RWMutex
	byThread map[string][]chat.Message
}

func NewMessageRepo() chat.MessageRepository {
	return &messageRepo{byThread: make(map[string][]chat.Message)}
}

func (r *messageRepo) Append(ctx context.Context, m chat.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byThread[m.ThreadID] = append(r.byThread[m.ThreadID], m)
	return nil
}

func (r *messageRepo) ListByThread(ctx context.Context, threadID string) ([]chat.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := append([]chat.Message(nil), r.byThread[threadID]...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	if out == nil {
		out = []chat.Message{}
	}
	return out, nil
}
