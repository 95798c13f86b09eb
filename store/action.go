package store

import (
	"encoding/binary"
	"time"

	"github.com/MixinNetwork/mixin/common"
	"github.com/MixinNetwork/uniques/engine"
	"github.com/dgraph-io/badger/v4"
)

func (bs *BadgerStore) WriteAction(act *engine.Action) error {
	return bs.db.Update(func(txn *badger.Txn) error {
		old, err := bs.resetOldAction(txn, act)
		if err != nil {
			return err
		}
		if old != nil && old.State >= act.State {
			return nil
		}
		key := []byte(prefixActionPayload + act.TraceID)
		val := common.MsgpackMarshalPanic(act)
		err = txn.Set(key, val)
		if err != nil {
			return err
		}
		return txn.Set(buildActionTimedKey(act), []byte{1})
	})
}

func (bs *BadgerStore) ReadAction(traceId string) (*engine.Action, error) {
	txn := bs.db.NewTransaction(false)
	defer txn.Discard()

	return bs.readAction(txn, traceId)
}

func (bs *BadgerStore) ListActions(state int, limit int) ([]*engine.Action, error) {
	txn := bs.db.NewTransaction(false)
	defer txn.Discard()

	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = false
	opts.Prefix = []byte(actionStatePrefix(state))
	it := txn.NewIterator(opts)
	defer it.Close()

	var acts []*engine.Action
	for it.Seek(opts.Prefix); it.Valid(); it.Next() {
		key := it.Item().Key()
		id := string(key[len(opts.Prefix)+8:])
		act, err := bs.readAction(txn, id)
		if err != nil {
			return nil, err
		}
		acts = append(acts, act)
		if len(acts) == limit {
			break
		}
	}
	return acts, nil
}

func (bs *BadgerStore) readAction(txn *badger.Txn, traceId string) (*engine.Action, error) {
	key := []byte(prefixActionPayload + traceId)
	item, err := txn.Get(key)
	if err == badger.ErrKeyNotFound {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	val, err := item.ValueCopy(nil)
	if err != nil {
		return nil, err
	}
	var act engine.Action
	err = common.MsgpackUnmarshal(val, &act)
	return &act, err
}

func (bs *BadgerStore) resetOldAction(txn *badger.Txn, act *engine.Action) (*engine.Action, error) {
	old, err := bs.readAction(txn, act.TraceID)
	if err != nil || old == nil {
		return old, err
	}
	if old.State >= act.State {
		return old, nil
	}
	return old, txn.Delete(buildActionTimedKey(old))
}

func buildActionTimedKey(act *engine.Action) []byte {
	prefix := actionStatePrefix(act.State)
	key := append([]byte(prefix), tsToBytes(act.CreatedAt)...)
	return append(key, []byte(act.TraceID)...)
}

func actionStatePrefix(state int) string {
	prefix := prefixActionState
	switch state {
	case engine.ActionStateInitial:
		return prefix + "initiall"
	case engine.ActionStateDone:
		return prefix + "finished"
	}
	panic(state)
}

func tsToBytes(ts time.Time) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(ts.UnixNano()))
	return buf
}
