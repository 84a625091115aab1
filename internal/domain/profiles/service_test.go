package profiles

import (
	"context"
	"errors"
	"strings"
	"testing"

	"pet-adoption/internal/domain/identity"
	"pet-adoption/internal/platform/storecall"
)

type testRepo struct {
	byID map[string]Profile
}

func (r *testRepo) Get(ctx context.Context, userID string) (Profile, error) {
	p, ok := r.byID[userID]
	if !ok {
		return Profile{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) CreateIfAbsent(ctx context.Context, p Profile) (Profile, bool, error) {
	if existing, ok := r.byID[p.UserID]; ok {
		return existing, false, nil
	}
	r.byID[p.UserID] = p
	return p, true, nil
}

func (r *testRepo) Save(ctx context.Context, p Profile) error {
	r.byID[p.UserID] = p
	return nil
}

// stores fake mínimo para usar el Reconciler real sin mocks.
type fakeStores struct {
	petOwner   map[string]string // petID -> ownerID
	petNames   map[string]string
	threadUser map[string]string // threadID -> participantID
	threadName map[string]string
}

func (f *fakeStores) ListIDsByOwner(ctx context.Context, ownerID string) ([]string, error) {
	out := []string{}
	for id, o := range f.petOwner {
		if o == ownerID {
			out = append(out, id)
		}
	}
	return out, nil
}

func (f *fakeStores) UpdateOwnerInfo(ctx context.Context, petID, displayName, imageRef string) error {
	f.petNames[petID] = displayName
	return nil
}

func (f *fakeStores) ListIDsByParticipant(ctx context.Context, participantID string) ([]string, error) {
	out := []string{}
	for id, u := range f.threadUser {
		if u == participantID {
			out = append(out, id)
		}
	}
	return out, nil
}

func (f *fakeStores) UpdateParticipantInfo(ctx context.Context, threadID, participantID, displayName, imageRef string) error {
	f.threadName[threadID] = displayName
	return nil
}

func newTestService() (*Service, *testRepo, *fakeStores) {
	repo := &testRepo{byID: map[string]Profile{}}
	stores := &fakeStores{
		petOwner:   map[string]string{"p1": "ana@x.com", "p2": "otro@x.com"},
		petNames:   map[string]string{},
		threadUser: map[string]string{"t1": "ana@x.com"},
		threadName: map[string]string{},
	}
	rec := NewReconciler(stores, stores, ReconcilerOptions{Concurrency: 1, Policy: storecall.DefaultPolicy()})
	return NewService(repo, rec, storecall.DefaultPolicy()), repo, stores
}

func TestLoad_CreatesFromIdentity(t *testing.T) {
	svc, repo, _ := newTestService()

	p, err := svc.Load(context.Background(), identity.Identity{ID: "Ana@X.com", DisplayName: "Ana"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.UserID != "ana@x.com" || p.DisplayName != "Ana" {
		t.Fatalf("unexpected profile: %+v", p)
	}
	if _, ok := repo.byID["ana@x.com"]; !ok {
		t.Fatalf("expected profile persisted on first access")
	}

	// El segundo acceso no pisa lo guardado con los datos del token.
	again, _ := svc.Load(context.Background(), identity.Identity{ID: "ana@x.com", DisplayName: "Otro nombre"})
	if again.DisplayName != "Ana" {
		t.Fatalf("expected stored display name, got %q", again.DisplayName)
	}
}

func TestUpdate_PropagatesAndReports(t *testing.T) {
	svc, _, stores := newTestService()
	ctx := context.Background()
	who := identity.Identity{ID: "ana@x.com", DisplayName: "Ana"}

	name := "Ana Belén"
	p, report, err := svc.Update(ctx, who, UpdateInput{DisplayName: &name})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if p.DisplayName != "Ana Belén" {
		t.Fatalf("unexpected name %q", p.DisplayName)
	}
	if report.Succeeded != 2 || !report.OK() {
		t.Fatalf("unexpected report: %+v", report)
	}
	if stores.petNames["p1"] != "Ana Belén" || stores.threadName["t1"] != "Ana Belén" {
		t.Fatalf("expected denormalized copies updated: %+v %+v", stores.petNames, stores.threadName)
	}
	if _, touched := stores.petNames["p2"]; touched {
		t.Fatalf("pets of other owners must not be touched")
	}
}

func TestUpdate_Validation(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	who := identity.Identity{ID: "ana@x.com"}

	empty := "  "
	if _, _, err := svc.Update(ctx, who, UpdateInput{DisplayName: &empty}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	bad := "file:///etc/passwd"
	if _, _, err := svc.Update(ctx, who, UpdateInput{ImageRef: &bad}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestReconcile_UnknownUser(t *testing.T) {
	svc, _, _ := newTestService()
	if _, _, err := svc.Reconcile(context.Background(), "nadie@x.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdate_DisplayNameLimitCountsCharacters(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	who := identity.Identity{ID: "ana@x.com"}

	// 80 caracteres de dos bytes cada uno
	fits := strings.Repeat("ñ", maxDisplayName)
	p, _, err := svc.Update(ctx, who, UpdateInput{DisplayName: &fits})
	if err != nil {
		t.Fatalf("expected 80 multibyte characters accepted, got %v", err)
	}
	if p.DisplayName != fits {
		t.Fatalf("unexpected name %q", p.DisplayName)
	}

	tooLong := strings.Repeat("ñ", maxDisplayName+1)
	if _, _, err := svc.Update(ctx, who, UpdateInput{DisplayName: &tooLong}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for 81 characters, got %v", err)
	}
}
