package store

import (
	"encoding/binary"

	"github.com/MixinNetwork/uniques/uniques"
)

const (
	prefixCollectionPayload = "UNIQUES:COLLECTION:PAYLOAD:"
	prefixCollectionCounter = "UNIQUES:COLLECTION:COUNTER"
	prefixItemPayload       = "UNIQUES:ITEM:PAYLOAD:"
	prefixAttributePayload  = "UNIQUES:ATTRIBUTE:PAYLOAD:"
	prefixCollectionMeta    = "UNIQUES:METADATA:COLLECTION:"
	prefixItemMeta          = "UNIQUES:METADATA:ITEM:"
	prefixPricePayload      = "UNIQUES:PRICE:PAYLOAD:"
	prefixBalanceFree       = "UNIQUES:BALANCE:FREE:"
	prefixBalanceReserved   = "UNIQUES:BALANCE:RESERVED:"
	prefixActionPayload     = "UNIQUES:ACTION:PAYLOAD:"
	prefixActionState       = "UNIQUES:ACTION:STATE:"
	keyHeight               = "UNIQUES:HEIGHT"
)

func idToBytes(id uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, id)
	return buf
}

func bytesToID(buf []byte) uint64 {
	return binary.BigEndian.Uint64(buf)
}

func collectionKey(c uniques.CollectionID) []byte {
	return append([]byte(prefixCollectionPayload), idToBytes(uint64(c))...)
}

func itemKey(c uniques.CollectionID, i uniques.ItemID) []byte {
	key := append([]byte(prefixItemPayload), idToBytes(uint64(c))...)
	return append(key, idToBytes(uint64(i))...)
}

// Attribute keys nest collection, item scope, namespace and the raw key so
// one prefix scan lists a collection's attributes and a longer one lists a
// single item's.
func attributeScope(c uniques.CollectionID, item *uniques.ItemID) []byte {
	key := append([]byte(prefixAttributePayload), idToBytes(uint64(c))...)
	if item == nil {
		return append(key, 0)
	}
	key = append(key, 1)
	return append(key, idToBytes(uint64(*item))...)
}

func attributeKey(c uniques.CollectionID, item *uniques.ItemID, ns uniques.Namespace, key []byte) []byte {
	buf := attributeScope(c, item)
	buf = append(buf, byte(ns.Kind))
	buf = append(buf, idToBytes(uint64(len(ns.Account)))...)
	buf = append(buf, []byte(ns.Account)...)
	return append(buf, key...)
}

func collectionMetaKey(c uniques.CollectionID) []byte {
	return append([]byte(prefixCollectionMeta), idToBytes(uint64(c))...)
}

func itemMetaKey(c uniques.CollectionID, i uniques.ItemID) []byte {
	key := append([]byte(prefixItemMeta), idToBytes(uint64(c))...)
	return append(key, idToBytes(uint64(i))...)
}

func priceKey(c uniques.CollectionID, i uniques.ItemID) []byte {
	key := append([]byte(prefixPricePayload), idToBytes(uint64(c))...)
	return append(key, idToBytes(uint64(i))...)
}
