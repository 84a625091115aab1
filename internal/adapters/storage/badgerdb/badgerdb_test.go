package badgerdb

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"

	"pet-adoption/internal/domain/chat"
	"pet-adoption/internal/domain/favorites"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/domain/ratings"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestPetsRepo_CRUDAndOwnerInfo(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo := NewPetsRepo(openTestDB(t))

	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	p := pets.Pet{ID: "p1", Name: "Rex", OwnerID: "ana@x.com", Images: []string{"https://a/1.jpg"}, CreatedAt: at}
	req.NoError(repo.Create(ctx, p))
	req.Error(repo.Create(ctx, p), "duplicate id")
	req.NoError(repo.Create(ctx, pets.Pet{ID: "p2", Name: "Milo", OwnerID: "bob@x.com", CreatedAt: at.Add(time.Hour)}))

	got, err := repo.GetByID(ctx, "p1")
	req.NoError(err)
	req.Equal(p.Images, got.Images)

	all, err := repo.ListAll(ctx)
	req.NoError(err)
	req.Len(all, 2)

	ids, err := repo.ListIDsByOwner(ctx, "ana@x.com")
	req.NoError(err)
	req.Equal([]string{"p1"}, ids)

	req.NoError(repo.UpdateOwnerInfo(ctx, "p1", "Ana B", "https://a/ana.png"))
	got, _ = repo.GetByID(ctx, "p1")
	req.Equal("Ana B", got.OwnerDisplayName)

	req.NoError(repo.Delete(ctx, "p1"))
	_, err = repo.GetByID(ctx, "p1")
	req.ErrorIs(err, ErrNotFound)
	req.ErrorIs(repo.Delete(ctx, "p1"), ErrNotFound)
}

func TestThreadsRepo_ConcurrentCreateIfAbsent(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo := NewThreadsRepo(openTestDB(t))

	th := chat.Thread{
		ID:           "a@x.com_b@x.com",
		Participants: [2]chat.Participant{{ID: "a@x.com"}, {ID: "b@x.com"}},
	}

	var (
		wg      sync.WaitGroup
		created atomic.Int32
		failed  atomic.Int32
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, c, err := repo.CreateIfAbsent(ctx, th)
			if err != nil {
				failed.Add(1)
				return
			}
			if c {
				created.Add(1)
			}
		}()
	}
	wg.Wait()

	req.Equal(int32(0), failed.Load())
	req.Equal(int32(1), created.Load())

	list, err := repo.ListByParticipant(ctx, "b@x.com")
	req.NoError(err)
	req.Len(list, 1)
}

func TestThreadsRepo_UpdateParticipantInfo(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo := NewThreadsRepo(openTestDB(t))

	_, _, err := repo.CreateIfAbsent(ctx, chat.Thread{
		ID:           "a_b",
		Participants: [2]chat.Participant{{ID: "a", DisplayName: "A"}, {ID: "b", DisplayName: "B"}},
	})
	req.NoError(err)

	req.NoError(repo.UpdateParticipantInfo(ctx, "a_b", "b", "Bea", "https://img/b.png"))
	req.ErrorIs(repo.UpdateParticipantInfo(ctx, "a_b", "zz", "x", ""), ErrNotFound)

	th, err := repo.GetByID(ctx, "a_b")
	req.NoError(err)
	req.Equal("A", th.Participants[0].DisplayName)
	req.Equal("Bea", th.Participants[1].DisplayName)
}

func TestMessagesRepo_AscendingByCreatedAt(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo := NewMessagesRepo(openTestDB(t))

	base := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	// Se insertan desordenados; la clave los ordena.
	for _, m := range []chat.Message{
		{ID: "m3", ThreadID: "t1", Payload: "tres", CreatedAt: base.Add(3 * time.Second)},
		{ID: "m1", ThreadID: "t1", Payload: "uno", CreatedAt: base.Add(1 * time.Second)},
		{ID: "x1", ThreadID: "t10", Payload: "otro thread", CreatedAt: base},
		{ID: "m2", ThreadID: "t1", Payload: "dos", CreatedAt: base.Add(2 * time.Second)},
	} {
		req.NoError(repo.Append(ctx, m))
	}

	items, err := repo.ListByThread(ctx, "t1")
	req.NoError(err)
	req.Len(items, 3)
	req.Equal("uno", items[0].Payload)
	req.Equal("tres", items[2].Payload)
}

func TestRatingsRepo_OncePerPair(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo := NewRatingsRepo(openTestDB(t))

	ok, err := repo.CreateIfAbsent(ctx, ratings.Rating{OwnerID: "o@x.com", RaterID: "r@x.com", Value: 4})
	req.NoError(err)
	req.True(ok)

	ok, err = repo.CreateIfAbsent(ctx, ratings.Rating{OwnerID: "o@x.com", RaterID: "r@x.com", Value: 1})
	req.NoError(err)
	req.False(ok)

	// Un owner cuyo id es prefijo de otro no mezcla calificaciones.
	_, err = repo.CreateIfAbsent(ctx, ratings.Rating{OwnerID: "o@x.com.ar", RaterID: "r@x.com", Value: 2})
	req.NoError(err)

	items, err := repo.ListByOwner(ctx, "o@x.com")
	req.NoError(err)
	req.Len(items, 1)
	req.Equal(4, items[0].Value)
}

func TestFavoritesRepo_CreateIfAbsentKeepsExisting(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo := NewFavoritesRepo(openTestDB(t))

	_, created, err := repo.CreateIfAbsent(ctx, favorites.Record{UserID: "u", PetIDs: favorites.NewSet()})
	req.NoError(err)
	req.True(created)

	req.NoError(repo.Save(ctx, favorites.Record{UserID: "u", PetIDs: favorites.NewSet("p1", "p2")}))

	rec, created, err := repo.CreateIfAbsent(ctx, favorites.Record{UserID: "u", PetIDs: favorites.NewSet()})
	req.NoError(err)
	req.False(created)
	req.Equal([]string{"p1", "p2"}, rec.PetIDs.Slice())
}
