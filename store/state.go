package store

import (
	"github.com/MixinNetwork/mixin/common"
	"github.com/MixinNetwork/uniques/uniques"
	"github.com/dgraph-io/badger/v4"
)

// StateTxn is one badger transaction exposed as a uniques.State. All
// records are msgpack payloads behind the key prefixes in keys.go.
type StateTxn struct {
	txn *badger.Txn
}

func (s *StateTxn) get(key []byte) ([]byte, error) {
	item, err := s.txn.Get(key)
	if err == badger.ErrKeyNotFound {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return item.ValueCopy(nil)
}

func (s *StateTxn) Height() (uint64, error) {
	val, err := s.get([]byte(keyHeight))
	if err != nil || val == nil {
		return 0, err
	}
	return bytesToID(val), nil
}

func (s *StateTxn) IncrementHeight() (uint64, error) {
	height, err := s.Height()
	if err != nil {
		return 0, err
	}
	height++
	return height, s.txn.Set([]byte(keyHeight), idToBytes(height))
}

func (s *StateTxn) NextCollectionID() (uniques.CollectionID, error) {
	val, err := s.get([]byte(prefixCollectionCounter))
	if err != nil {
		return 0, err
	}
	var last uint64
	if val != nil {
		last = bytesToID(val)
	}
	next := last + 1
	if next == 0 {
		return 0, uniques.ErrNoFreeCollectionID
	}
	err = s.txn.Set([]byte(prefixCollectionCounter), idToBytes(next))
	if err != nil {
		return 0, err
	}
	return uniques.CollectionID(next), nil
}

func (s *StateTxn) ReadCollection(id uniques.CollectionID) (*uniques.Collection, error) {
	val, err := s.get(collectionKey(id))
	if err != nil || val == nil {
		return nil, err
	}
	var col uniques.Collection
	err = common.MsgpackUnmarshal(val, &col)
	return &col, err
}

func (s *StateTxn) WriteCollection(col *uniques.Collection) error {
	return s.txn.Set(collectionKey(col.ID), common.MsgpackMarshalPanic(col))
}

func (s *StateTxn) DeleteCollection(id uniques.CollectionID) error {
	return s.txn.Delete(collectionKey(id))
}

func (s *StateTxn) ReadItem(c uniques.CollectionID, i uniques.ItemID) (*uniques.Item, error) {
	val, err := s.get(itemKey(c, i))
	if err != nil || val == nil {
		return nil, err
	}
	var item uniques.Item
	err = common.MsgpackUnmarshal(val, &item)
	return &item, err
}

func (s *StateTxn) WriteItem(item *uniques.Item) error {
	return s.txn.Set(itemKey(item.Collection, item.ID), common.MsgpackMarshalPanic(item))
}

func (s *StateTxn) DeleteItem(c uniques.CollectionID, i uniques.ItemID) error {
	return s.txn.Delete(itemKey(c, i))
}

func (s *StateTxn) ReadAttribute(c uniques.CollectionID, item *uniques.ItemID, ns uniques.Namespace, key []byte) (*uniques.Attribute, error) {
	val, err := s.get(attributeKey(c, item, ns, key))
	if err != nil || val == nil {
		return nil, err
	}
	var attr uniques.Attribute
	err = common.MsgpackUnmarshal(val, &attr)
	return &attr, err
}

func (s *StateTxn) WriteAttribute(attr *uniques.Attribute) error {
	key := attributeKey(attr.Collection, attr.Item, attr.Namespace, attr.Key)
	return s.txn.Set(key, common.MsgpackMarshalPanic(attr))
}

func (s *StateTxn) DeleteAttribute(c uniques.CollectionID, item *uniques.ItemID, ns uniques.Namespace, key []byte) error {
	return s.txn.Delete(attributeKey(c, item, ns, key))
}

func (s *StateTxn) ListCollectionAttributes(c uniques.CollectionID) ([]*uniques.Attribute, error) {
	prefix := append([]byte(prefixAttributePayload), idToBytes(uint64(c))...)
	return s.listAttributes(prefix)
}

func (s *StateTxn) ListItemAttributes(c uniques.CollectionID, i uniques.ItemID) ([]*uniques.Attribute, error) {
	return s.listAttributes(attributeScope(c, &i))
}

func (s *StateTxn) listAttributes(prefix []byte) ([]*uniques.Attribute, error) {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = prefix
	it := s.txn.NewIterator(opts)
	defer it.Close()

	var attrs []*uniques.Attribute
	for it.Seek(prefix); it.Valid(); it.Next() {
		val, err := it.Item().ValueCopy(nil)
		if err != nil {
			return nil, err
		}
		var attr uniques.Attribute
		err = common.MsgpackUnmarshal(val, &attr)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, &attr)
	}
	return attrs, nil
}

func (s *StateTxn) ReadCollectionMetadata(c uniques.CollectionID) (*uniques.CollectionMetadata, error) {
	val, err := s.get(collectionMetaKey(c))
	if err != nil || val == nil {
		return nil, err
	}
	var meta uniques.CollectionMetadata
	err = common.MsgpackUnmarshal(val, &meta)
	return &meta, err
}

func (s *StateTxn) WriteCollectionMetadata(m *uniques.CollectionMetadata) error {
	return s.txn.Set(collectionMetaKey(m.Collection), common.MsgpackMarshalPanic(m))
}

func (s *StateTxn) DeleteCollectionMetadata(c uniques.CollectionID) error {
	return s.txn.Delete(collectionMetaKey(c))
}

func (s *StateTxn) ReadItemMetadata(c uniques.CollectionID, i uniques.ItemID) (*uniques.ItemMetadata, error) {
	val, err := s.get(itemMetaKey(c, i))
	if err != nil || val == nil {
		return nil, err
	}
	var meta uniques.ItemMetadata
	err = common.MsgpackUnmarshal(val, &meta)
	return &meta, err
}

func (s *StateTxn) WriteItemMetadata(m *uniques.ItemMetadata) error {
	return s.txn.Set(itemMetaKey(m.Collection, m.Item), common.MsgpackMarshalPanic(m))
}

func (s *StateTxn) DeleteItemMetadata(c uniques.CollectionID, i uniques.ItemID) error {
	return s.txn.Delete(itemMetaKey(c, i))
}

func (s *StateTxn) ReadPrice(c uniques.CollectionID, i uniques.ItemID) (*uniques.PriceListing, error) {
	val, err := s.get(priceKey(c, i))
	if err != nil || val == nil {
		return nil, err
	}
	var listing uniques.PriceListing
	err = common.MsgpackUnmarshal(val, &listing)
	return &listing, err
}

func (s *StateTxn) WritePrice(p *uniques.PriceListing) error {
	return s.txn.Set(priceKey(p.Collection, p.Item), common.MsgpackMarshalPanic(p))
}

func (s *StateTxn) DeletePrice(c uniques.CollectionID, i uniques.ItemID) error {
	key := priceKey(c, i)
	_, err := s.txn.Get(key)
	if err == badger.ErrKeyNotFound {
		return nil
	} else if err != nil {
		return err
	}
	return s.txn.Delete(key)
}
