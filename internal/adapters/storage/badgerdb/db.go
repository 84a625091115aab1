// Package badgerdb guarda los documentos de dominio como JSON en Badger (KV embebido).
//
// Claves:
//
//	pet:{id}
//	fav:{userID}
//	thread:{threadID}
//	msg:{threadID}:{unixnano %019d}:{messageID}
//	rating:{owner}:{rater}      (segmentos con url.QueryEscape)
//	profile:{userID}
//	lostfound:{id}
package badgerdb

import (
	"encoding/json"
	"errors"
	"net/url"

	"github.com/dgraph-io/badger/v4"

	"pet-adoption/internal/platform/apperr"
)

var ErrNotFound = apperr.ErrNotFound

// maxConflictRetries acota los reintentos de una transacción que chocó con otra.
const maxConflictRetries = 5

func Open(path string) (*badger.DB, error) {
	return badger.Open(badger.DefaultOptions(path).WithLogger(nil))
}

// OpenInMemory para tests y modo dev sin disco.
func OpenInMemory() (*badger.DB, error) {
	return badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
}

// update corre fn en una transacción read-write y la reintenta si Badger detecta conflicto.
// Es lo que da atomicidad a los create-if-absent: el Get y el Set quedan en la misma txn.
func update(db *badger.DB, fn func(txn *badger.Txn) error) error {
	var err error
	for range maxConflictRetries {
		err = db.Update(fn)
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
	}
	return err
}

func getJSON[T any](txn *badger.Txn, key string) (T, error) {
	var out T
	item, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return out, ErrNotFound
	}
	if err != nil {
		return out, err
	}
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &out)
	})
	return out, err
}

func setJSON(txn *badger.Txn, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return txn.Set([]byte(key), data)
}

func exists(txn *badger.Txn, key string) (bool, error) {
	_, err := txn.Get([]byte(key))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, badger.ErrKeyNotFound):
		return false, nil
	default:
		return false, err
	}
}

// scanJSON decodifica todos los valores bajo prefix, en orden de clave.
func scanJSON[T any](txn *badger.Txn, prefix string) ([]T, error) {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = []byte(prefix)
	it := txn.NewIterator(opts)
	defer it.Close()

	out := make([]T, 0)
	for it.Rewind(); it.Valid(); it.Next() {
		var v T
		if err := it.Item().Value(func(val []byte) error {
			return json.Unmarshal(val, &v)
		}); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func seg(s string) string {
	return url.QueryEscape(s)
}
