package store

import (
	"context"
	"time"

	"github.com/MixinNetwork/mixin/logger"
	"github.com/MixinNetwork/uniques/uniques"
	"github.com/dgraph-io/badger/v4"
)

type BadgerStore struct {
	db *badger.DB
}

// OpenBadger opens the ledger database. An empty path opens an in-memory
// database, which the tests rely on.
func OpenBadger(ctx context.Context, path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	opts = opts.WithLoggingLevel(badger.WARNING)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	go func() {
		for {
			lsm, vlog := db.Size()
			logger.Verbosef("Badger LSM %d VLOG %d\n", lsm, vlog)
			if lsm > 1024*1024*8 || vlog > 1024*1024*32 {
				err := db.RunValueLogGC(0.5)
				logger.Printf("Badger RunValueLogGC %v\n", err)
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(5 * time.Minute):
			}
		}
	}()

	return &BadgerStore{
		db: db,
	}, nil
}

func (bs *BadgerStore) Close() error {
	return bs.db.Close()
}

func (bs *BadgerStore) Badger() *badger.DB {
	return bs.db
}

// Update runs fn against one transactional state view. The view commits
// only when fn returns nil, any error discards every write and reservation
// made inside it.
func (bs *BadgerStore) Update(fn func(uniques.State) error) error {
	return bs.db.Update(func(txn *badger.Txn) error {
		return fn(&StateTxn{txn: txn})
	})
}

// View runs fn against a read-only state view.
func (bs *BadgerStore) View(fn func(uniques.State) error) error {
	return bs.db.View(func(txn *badger.Txn) error {
		return fn(&StateTxn{txn: txn})
	})
}

func (bs *BadgerStore) WriteProperty(key, val []byte) error {
	return bs.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, val)
	})
}

func (bs *BadgerStore) ReadProperty(key []byte) ([]byte, error) {
	txn := bs.db.NewTransaction(false)
	defer txn.Discard()

	item, err := txn.Get(key)
	if err == badger.ErrKeyNotFound {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return item.ValueCopy(nil)
}
