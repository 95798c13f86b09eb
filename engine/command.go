package engine

import (
	"github.com/MixinNetwork/mixin/common"
	"github.com/MixinNetwork/uniques/uniques"
)

const (
	OpCreateCollection = 10 + iota
	OpDestroyCollection
	OpSetTeam
	OpSetAcceptOwnership
	OpTransferOwnership
	OpLockCollection
	OpSetCollectionMaxSupply
	OpUpdateMintSettings
	OpMint
	OpBurn
	OpTransfer
	OpRedeposit
	OpLockItemTransfer
	OpUnlockItemTransfer
	OpLockItemProperties
	OpApproveTransfer
	OpCancelApproval
	OpSetAttribute
	OpClearAttribute
	OpSetCollectionMetadata
	OpClearCollectionMetadata
	OpSetItemMetadata
	OpClearItemMetadata
	OpSetPrice
	OpBuyItem
)

// Command is the wire form of one ledger command. Fields are a superset,
// each op reads the ones it needs.
type Command struct {
	Op         int
	Collection uint64
	Item       uint64
	HasItem    bool

	Account string
	Issuer  string
	Admin   string
	Freezer string

	Amount    string
	HasAmount bool
	Settings  uint64
	MaxSupply uint32

	Deadline       uint64
	HasDeadline    bool
	Withdraw       bool
	LockMetadata   bool
	LockAttributes bool

	NamespaceKind    int
	NamespaceAccount string

	Key   []byte
	Value []byte
	Items []uint64

	Config  *uniques.CollectionConfig
	Mint    *uniques.MintSettings
	Destroy *uniques.DestroyWitness
	Witness *uniques.MintWitness
}

func EncodeCommand(cmd *Command) []byte {
	return common.MsgpackMarshalPanic(cmd)
}

func DecodeCommand(raw []byte) (*Command, error) {
	var cmd Command
	err := common.MsgpackUnmarshal(raw, &cmd)
	if err != nil {
		return nil, err
	}
	return &cmd, nil
}

func (cmd *Command) collection() uniques.CollectionID {
	return uniques.CollectionID(cmd.Collection)
}

func (cmd *Command) item() uniques.ItemID {
	return uniques.ItemID(cmd.Item)
}

func (cmd *Command) maybeItem() *uniques.ItemID {
	if !cmd.HasItem {
		return nil
	}
	i := uniques.ItemID(cmd.Item)
	return &i
}

func (cmd *Command) namespace() uniques.Namespace {
	return uniques.Namespace{Kind: cmd.NamespaceKind, Account: cmd.NamespaceAccount}
}

func (cmd *Command) itemIDs() []uniques.ItemID {
	ids := make([]uniques.ItemID, len(cmd.Items))
	for n, i := range cmd.Items {
		ids[n] = uniques.ItemID(i)
	}
	return ids
}
