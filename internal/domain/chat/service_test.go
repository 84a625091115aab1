package chat

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"pet-adoption/internal/domain/identity"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/platform/metrics"
	"pet-adoption/internal/platform/storecall"
)

// -------------------------
// Test repos (in-memory)
// -------------------------

type testThreads struct {
	mu   sync.Mutex
	byID map[string]Thread
}

func (r *testThreads) CreateIfAbsent(ctx context.Context, t Thread) (Thread, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.byID[t.ID]; ok {
		return existing, false, nil
	}
	r.byID[t.ID] = t
	return t, true, nil
}

func (r *testThreads) GetByID(ctx context.Context, id string) (Thread, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.byID[id]
	if !ok {
		return Thread{}, ErrNotFound
	}
	return t, nil
}

func (r *testThreads) ListByParticipant(ctx context.Context, participantID string) ([]Thread, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Thread, 0)
	for _, t := range r.byID {
		if t.Has(participantID) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *testThreads) Touch(ctx context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	t.UpdatedAt = at
	r.byID[id] = t
	return nil
}

func (r *testThreads) ListIDsByParticipant(ctx context.Context, participantID string) ([]string, error) {
	items, _ := r.ListByParticipant(ctx, participantID)
	out := make([]string, 0, len(items))
	for _, t := range items {
		out = append(out, t.ID)
	}
	sort.Strings(out)
	return out, nil
}

func (r *testThreads) UpdateParticipantInfo(ctx context.Context, threadID, participantID, displayName, imageRef string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.byID[threadID]
	if !ok {
		return ErrNotFound
	}
	for i := range t.Participants {
		if t.Participants[i].ID == participantID {
			t.Participants[i].DisplayName = displayName
			t.Participants[i].ImageRef = imageRef
		}
	}
	r.byID[threadID] = t
	return nil
}

type testMessages struct {
	mu    sync.Mutex
	items []Message
}

func (r *testMessages) Append(ctx context.Context, m Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, m)
	return nil
}

func (r *testMessages) ListByThread(ctx context.Context, threadID string) ([]Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Message, 0)
	for _, m := range r.items {
		if m.ThreadID == threadID {
			out = append(out, m)
		}
	}
	return out, nil
}

type petLookup map[string]pets.Pet

func (l petLookup) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	p, ok := l[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

var (
	alice = identity.Identity{ID: "a@x.com", DisplayName: "Alice", ImageRef: "https://img/a.png"}
	bob   = identity.Identity{ID: "b@x.com", DisplayName: "Bob"}
	carol = identity.Identity{ID: "c@x.com", DisplayName: "Carol"}
)

func newTestService(lookup petLookup) (*Service, *testThreads, *metrics.Metrics) {
	threads := &testThreads{byID: map[string]Thread{}}
	m := metrics.New()
	svc := NewService(threads, &testMessages{}, lookup, Options{Policy: storecall.DefaultPolicy(), Metrics: m})

	var tick atomic.Int64
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base.Add(time.Duration(tick.Add(1)) * time.Second) }
	return svc, threads, m
}

func TestResolveThread_SymmetricAndIdempotent(t *testing.T) {
	svc, threads, m := newTestService(nil)
	ctx := context.Background()

	first, created, err := svc.ResolveThread(ctx, bob, alice)
	require.NoError(t, err)
	require.True(t, created)
	require.Equal(t, "a@x.com_b@x.com", first.ID)

	again, created, err := svc.ResolveThread(ctx, alice, bob)
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, first, again)
	require.Len(t, threads.byID, 1)

	require.Equal(t, 1.0, testutil.ToFloat64(m.ThreadsResolved.WithLabelValues("created")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.ThreadsResolved.WithLabelValues("existing")))
}

func TestResolveThread_SnapshotsParticipants(t *testing.T) {
	svc, _, _ := newTestService(nil)

	th, _, err := svc.ResolveThread(context.Background(), bob, alice)
	require.NoError(t, err)

	require.Equal(t, "a@x.com", th.Participants[0].ID)
	require.Equal(t, "Alice", th.Participants[0].DisplayName)
	require.Equal(t, "Bob", th.Other("a@x.com").DisplayName)
}

func TestResolveThread_ConcurrentCallsCreateOnce(t *testing.T) {
	svc, threads, _ := newTestService(nil)
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		created atomic.Int32
	)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			a, b := alice, bob
			if i%2 == 0 {
				a, b = b, a
			}
			_, c, err := svc.ResolveThread(ctx, a, b)
			if err == nil && c {
				created.Add(1)
			}
		}(i)
	}
	wg.Wait()

	require.Equal(t, int32(1), created.Load())
	require.Len(t, threads.byID, 1)
}

func TestResolveThread_RejectsSelf(t *testing.T) {
	svc, _, _ := newTestService(nil)
	_, _, err := svc.ResolveThread(context.Background(), alice, identity.Identity{ID: "A@x.com"})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestContactOwner(t *testing.T) {
	svc, _, _ := newTestService(petLookup{
		"p1": {ID: "p1", OwnerID: "b@x.com", OwnerDisplayName: "Bob"},
	})
	ctx := context.Background()

	th, created, err := svc.ContactOwner(ctx, alice, "p1")
	require.NoError(t, err)
	require.True(t, created)
	require.Equal(t, "a@x.com_b@x.com", th.ID)

	_, _, err = svc.ContactOwner(ctx, alice, "missing")
	require.ErrorIs(t, err, ErrNotFound)

	_, _, err = svc.ContactOwner(ctx, bob, "p1")
	require.ErrorIs(t, err, ErrInvalidInput, "owners cannot contact themselves")
}

func TestMessages_OrderAndAccess(t *testing.T) {
	svc, _, _ := newTestService(nil)
	ctx := context.Background()

	th, _, err := svc.ResolveThread(ctx, alice, bob)
	require.NoError(t, err)

	_, err = svc.SendMessage(ctx, alice, th.ID, SendInput{Payload: "Hola, ¿sigue disponible?"})
	require.NoError(t, err)
	_, err = svc.SendMessage(ctx, bob, th.ID, SendInput{Kind: "image", Payload: "https://img/milo.jpg"})
	require.NoError(t, err)

	items, err := svc.Messages(ctx, bob, th.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "a@x.com", items[0].SenderID)
	require.Equal(t, KindImage, items[1].Kind)
	require.Equal(t, StatusSent, items[1].Status)
	require.True(t, items[0].CreatedAt.Before(items[1].CreatedAt))

	_, err = svc.Messages(ctx, carol, th.ID)
	require.ErrorIs(t, err, ErrForbidden)

	_, err = svc.SendMessage(ctx, carol, th.ID, SendInput{Payload: "hola"})
	require.ErrorIs(t, err, ErrForbidden)
}

func TestSendMessage_Validation(t *testing.T) {
	svc, _, _ := newTestService(nil)
	ctx := context.Background()

	th, _, _ := svc.ResolveThread(ctx, alice, bob)

	_, err := svc.SendMessage(ctx, alice, th.ID, SendInput{Payload: "   "})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.SendMessage(ctx, alice, th.ID, SendInput{Kind: "video", Payload: "x"})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.SendMessage(ctx, alice, th.ID, SendInput{Kind: "image", Payload: "not-a-url"})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestInbox_NewestFirstWithOtherParticipant(t *testing.T) {
	svc, _, _ := newTestService(nil)
	ctx := context.Background()

	withBob, _, _ := svc.ResolveThread(ctx, alice, bob)
	withCarol, _, _ := svc.ResolveThread(ctx, alice, carol)

	// Un mensaje nuevo en el thread con Bob lo sube al principio.
	_, err := svc.SendMessage(ctx, bob, withBob.ID, SendInput{Payload: "hola"})
	require.NoError(t, err)

	entries, err := svc.Inbox(ctx, alice)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, withBob.ID, entries[0].Thread.ID)
	require.Equal(t, "Bob", entries[0].Other.DisplayName)
	require.Equal(t, withCarol.ID, entries[1].Thread.ID)

	entries, err = svc.Inbox(ctx, carol)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "a@x.com", entries[0].Other.ID)
}
