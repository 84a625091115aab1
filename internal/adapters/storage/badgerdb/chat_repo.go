package badgerdb

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"

	"pet-adoption/internal/domain/chat"
)

type ThreadsRepo struct {
	db *badger.DB
}

func NewThreadsRepo(db *badger.DB) *ThreadsRepo {
	return &ThreadsRepo{db: db}
}

func threadKey(id string) string { return "thread:" + id }

// CreateIfAbsent: Get + Set en la misma txn; si otra txn escribió la clave, Badger
// devuelve ErrConflict y update reintenta, ahora viendo el thread existente.
func (r *ThreadsRepo) CreateIfAbsent(ctx context.Context, t chat.Thread) (chat.Thread, bool, error) {
	var (
		out     chat.Thread
		created bool
	)
	err := update(r.db, func(txn *badger.Txn) error {
		existing, err := getJSON[chat.Thread](txn, threadKey(t.ID))
		if err == nil {
			out, created = existing, false
			return nil
		}
		if !errors.Is(err, ErrNotFound) {
			return err
		}
		out, created = t, true
		return setJSON(txn, threadKey(t.ID), t)
	})
	return out, created, err
}

func (r *ThreadsRepo) GetByID(ctx context.Context, id string) (chat.Thread, error) {
	var t chat.Thread
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		t, err = getJSON[chat.Thread](txn, threadKey(id))
		return err
	})
	return t, err
}

func (r *ThreadsRepo) ListByParticipant(ctx context.Context, participantID string) ([]chat.Thread, error) {
	var all []chat.Thread
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		all, err = scanJSON[chat.Thread](txn, "thread:")
		return err
	})
	if err != nil {
		return nil, err
	}

	out := make([]chat.Thread, 0)
	for _, t := range all {
		if t.Has(participantID) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *ThreadsRepo) Touch(ctx context.Context, id string, at time.Time) error {
	return r.modify(id, func(t *chat.Thread) error {
		if at.After(t.UpdatedAt) {
			t.UpdatedAt = at
		}
		return nil
	})
}

func (r *ThreadsRepo) ListIDsByParticipant(ctx context.Context, participantID string) ([]string, error) {
	items, err := r.ListByParticipant(ctx, participantID)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(items))
	for _, t := range items {
		out = append(out, t.ID)
	}
	sort.Strings(out)
	return out, nil
}

func (r *ThreadsRepo) UpdateParticipantInfo(ctx context.Context, threadID, participantID, displayName, imageRef string) error {
	return r.modify(threadID, func(t *chat.Thread) error {
		for i := range t.Participants {
			if t.Participants[i].ID == participantID {
				t.Participants[i].DisplayName = displayName
				t.Participants[i].ImageRef = imageRef
				return nil
			}
		}
		return ErrNotFound
	})
}

func (r *ThreadsRepo) modify(id string, fn func(t *chat.Thread) error) error {
	return update(r.db, func(txn *badger.Txn) error {
		t, err := getJSON[chat.Thread](txn, threadKey(id))
		if err != nil {
			return err
		}
		if err := fn(&t); err != nil {
			return err
		}
		return setJSON(txn, threadKey(id), t)
	})
}

type MessagesRepo struct {
	db *badger.DB
}

func NewMessagesRepo(db *badger.DB) *MessagesRepo {
	return &MessagesRepo{db: db}
}

// El timestamp con padding fijo hace que el orden de claves sea el orden cronológico.
func messageKey(m chat.Message) string {
	return fmt.Sprintf("msg:%s:%019d:%s", m.ThreadID, m.CreatedAt.UnixNano(), m.ID)
}

func (r *MessagesRepo) Append(ctx context.Context, m chat.Message) error {
	return update(r.db, func(txn *badger.Txn) error {
		return setJSON(txn, messageKey(m), m)
	})
}

func (r *MessagesRepo) ListByThread(ctx context.Context, threadID string) ([]chat.Message, error) {
	var out []chat.Message
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		out, err = scanJSON[chat.Message](txn, "msg:"+threadID+":")
		return err
	})
	return out, err
}
