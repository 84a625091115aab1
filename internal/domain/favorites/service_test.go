package favorites

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"pet-adoption/internal/domain/identity"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/platform/storecall"
)

type testRepo struct {
	mu    sync.Mutex
	byID  map[string]Record
	saves int
}

func newTestRepo() *testRepo { return &testRepo{byID: map[string]Record{}} }

func (r *testRepo) Get(ctx context.Context, userID string) (Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.byID[userID]
	if !ok {
		return Record{}, ErrNotFound
	}
	rec.PetIDs = rec.PetIDs.Clone()
	return rec, nil
}

func (r *testRepo) CreateIfAbsent(ctx context.Context, rec Record) (Record, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.byID[rec.UserID]; ok {
		return existing, false, nil
	}
	r.byID[rec.UserID] = rec
	return rec, true, nil
}

func (r *testRepo) Save(ctx context.Context, rec Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[rec.UserID] = rec
	r.saves++
	return nil
}

type petLookup map[string]pets.Pet

func (l petLookup) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	p, ok := l[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

var ana = identity.Identity{ID: "Ana@Example.com"}

func newTestService(lookup petLookup) (*Service, *testRepo) {
	repo := newTestRepo()
	return NewService(repo, lookup, storecall.DefaultPolicy(), nil), repo
}

func TestLoad_FirstAccessCreatesEmptyRecord(t *testing.T) {
	svc, repo := newTestService(nil)

	set, err := svc.Load(context.Background(), ana)
	require.NoError(t, err)
	require.Empty(t, set)

	_, ok := repo.byID["ana@example.com"]
	require.True(t, ok, "record should be created under the normalized id")
}

func TestAdd_Idempotent(t *testing.T) {
	svc, repo := newTestService(nil)
	ctx := context.Background()

	once, err := svc.Add(ctx, ana, "p1")
	require.NoError(t, err)
	twice, err := svc.Add(ctx, ana, "p1")
	require.NoError(t, err)

	require.Equal(t, once, twice)
	require.Equal(t, []string{"p1"}, twice.Slice())
	require.Equal(t, 1, repo.saves, "a no-op add must not write")
}

func TestRemove_NonMemberIsNoop(t *testing.T) {
	svc, _ := newTestService(nil)
	ctx := context.Background()

	_, err := svc.Add(ctx, ana, "p1")
	require.NoError(t, err)

	set, err := svc.Remove(ctx, ana, "nope")
	require.NoError(t, err)
	require.Equal(t, []string{"p1"}, set.Slice())

	set, err = svc.Remove(ctx, ana, "p1")
	require.NoError(t, err)
	require.Empty(t, set)
}

func TestIsFavorite(t *testing.T) {
	svc, _ := newTestService(nil)
	ctx := context.Background()

	_, _ = svc.Add(ctx, ana, "p2")

	fav, err := svc.IsFavorite(ctx, identity.Identity{ID: " ana@example.com"}, "p2")
	require.NoError(t, err)
	require.True(t, fav)

	fav, err = svc.IsFavorite(ctx, ana, "p3")
	require.NoError(t, err)
	require.False(t, fav)
}

func TestListPets_SkipsDeleted(t *testing.T) {
	svc, _ := newTestService(petLookup{"p1": {ID: "p1", Name: "Rex"}})
	ctx := context.Background()

	_, _ = svc.Add(ctx, ana, "p1")
	_, _ = svc.Add(ctx, ana, "gone")

	items, err := svc.ListPets(ctx, ana)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "Rex", items[0].Name)
}

func TestValidation(t *testing.T) {
	svc, _ := newTestService(nil)
	ctx := context.Background()

	_, err := svc.Load(ctx, identity.Identity{})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Add(ctx, ana, "  ")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestSet_JSONIsSortedAndDeduped(t *testing.T) {
	raw, err := json.Marshal(NewSet("b", "a"))
	require.NoError(t, err)
	require.JSONEq(t, `["a","b"]`, string(raw))

	var s Set
	require.NoError(t, json.Unmarshal([]byte(`["x","x","y"]`), &s))
	require.Len(t, s, 2)
}
