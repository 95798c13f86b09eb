package uniques

import "github.com/shopspring/decimal"

// State is one transactional view of the ledger. Every command executes
// against a single State and either commits in full or leaves nothing
// behind, the store decides how. Read methods return nil without an error
// when the record is absent.
type State interface {
	Height() (uint64, error)
	IncrementHeight() (uint64, error)

	NextCollectionID() (CollectionID, error)
	ReadCollection(id CollectionID) (*Collection, error)
	WriteCollection(col *Collection) error
	DeleteCollection(id CollectionID) error

	ReadItem(c CollectionID, i ItemID) (*Item, error)
	WriteItem(item *Item) error
	DeleteItem(c CollectionID, i ItemID) error

	ReadAttribute(c CollectionID, item *ItemID, ns Namespace, key []byte) (*Attribute, error)
	WriteAttribute(attr *Attribute) error
	DeleteAttribute(c CollectionID, item *ItemID, ns Namespace, key []byte) error
	ListCollectionAttributes(c CollectionID) ([]*Attribute, error)
	ListItemAttributes(c CollectionID, i ItemID) ([]*Attribute, error)

	ReadCollectionMetadata(c CollectionID) (*CollectionMetadata, error)
	WriteCollectionMetadata(m *CollectionMetadata) error
	DeleteCollectionMetadata(c CollectionID) error
	ReadItemMetadata(c CollectionID, i ItemID) (*ItemMetadata, error)
	WriteItemMetadata(m *ItemMetadata) error
	DeleteItemMetadata(c CollectionID, i ItemID) error

	ReadPrice(c CollectionID, i ItemID) (*PriceListing, error)
	WritePrice(p *PriceListing) error
	DeletePrice(c CollectionID, i ItemID) error

	Currency
}

// Currency is the balance ledger contract. Reserve and Unreserve are called
// only through the deposit helpers, nothing else touches reserved balances.
// Credit funds free balances and exists for genesis allocations.
type Currency interface {
	FreeBalance(account string) (decimal.Decimal, error)
	ReservedBalance(account string) (decimal.Decimal, error)
	Reserve(account string, amount decimal.Decimal) error
	Unreserve(account string, amount decimal.Decimal) (decimal.Decimal, error)
	Transfer(from, to string, amount decimal.Decimal) error
	Credit(account string, amount decimal.Decimal) error
}
