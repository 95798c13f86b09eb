package uniques

import (
	"github.com/shopspring/decimal"
)

type CollectionID uint64

type ItemID uint64

// Collection settings are one-way locks, a set bit is never cleared.
type CollectionSettings uint64

const (
	SettingLockedTransfers CollectionSettings = 1 << iota
	SettingLockedMetadata
	SettingLockedAttributes
	SettingLockedMaxSupply
)

func (cs CollectionSettings) Has(bits CollectionSettings) bool {
	return cs&bits == bits
}

func (cs CollectionSettings) Union(bits CollectionSettings) CollectionSettings {
	return cs | bits
}

// Item settings cover the two one-way per-item locks. The transfer lock is
// the freezer's and may be cleared, so it lives on the item as a plain flag.
type ItemSettings uint64

const (
	SettingLockedItemMetadata ItemSettings = 1 << iota
	SettingLockedItemAttributes
)

func (is ItemSettings) Has(bits ItemSettings) bool {
	return is&bits == bits
}

func (is ItemSettings) Union(bits ItemSettings) ItemSettings {
	return is | bits
}

const (
	MintTypePublic    = 10
	MintTypeIssuer    = 11
	MintTypeHolderOf  = 12
	MintTypeAllowList = 13
)

// MintSettings controls who may mint into a collection, at what price, and
// inside which command-height window. Zero bounds mean unbounded.
type MintSettings struct {
	Type      int
	HolderOf  CollectionID
	AllowList []string
	Price     *decimal.Decimal
	StartAt   uint64
	EndAt     uint64
}

// A Deposit is currency reserved against Account until the record carrying
// it is cleared.
type Deposit struct {
	Account string
	Amount  decimal.Decimal
}

type Collection struct {
	ID            CollectionID
	Owner         string
	Issuer        string
	Admin         string
	Freezer       string
	PendingOwner  string
	TotalDeposit  decimal.Decimal
	Items         uint32
	ItemMetadatas uint32
	Attributes    uint32
	MaxSupply     *uint32
	Settings      CollectionSettings
	Mint          MintSettings
}

type CollectionConfig struct {
	Settings  CollectionSettings
	MaxSupply *uint32
	Mint      MintSettings
}

type Item struct {
	Collection     CollectionID
	ID             ItemID
	Owner          string
	Deposit        Deposit
	TransferLocked bool
	Settings       ItemSettings
	// delegate id -> approval deadline in command height, zero for none
	Approvals map[string]uint64
}

const (
	NamespaceKindCollectionOwner = 10
	NamespaceKindItemOwner       = 11
	NamespaceKindAccount         = 12
)

// Namespace scopes who may write an attribute and who pays its deposit.
type Namespace struct {
	Kind    int
	Account string
}

func CollectionOwnerNamespace() Namespace {
	return Namespace{Kind: NamespaceKindCollectionOwner}
}

func ItemOwnerNamespace() Namespace {
	return Namespace{Kind: NamespaceKindItemOwner}
}

func AccountNamespace(id string) Namespace {
	return Namespace{Kind: NamespaceKindAccount, Account: id}
}

type Attribute struct {
	Collection CollectionID
	Item       *ItemID
	Namespace  Namespace
	Key        []byte
	Value      []byte
	Deposit    Deposit
}

type CollectionMetadata struct {
	Collection CollectionID
	Data       []byte
	Deposit    Deposit
}

type ItemMetadata struct {
	Collection CollectionID
	Item       ItemID
	Data       []byte
	Deposit    Deposit
}

type PriceListing struct {
	Collection CollectionID
	Item       ItemID
	Price      decimal.Decimal
	Buyer      string
}

// DestroyWitness must match the registry's own counters exactly, so a
// caller cannot destroy a collection without accounting for every deposit
// that has to be released first.
type DestroyWitness struct {
	ItemMetadatas uint32
	ItemConfigs   uint32
	Attributes    uint32
}

// MintWitness proves mint eligibility: the owned item for holder-of
// collections, the offered price for priced mints.
type MintWitness struct {
	OwnedItem *ItemID
	MintPrice *decimal.Decimal
}
