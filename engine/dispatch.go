package engine

import (
	"fmt"

	"github.com/MixinNetwork/uniques/uniques"
	"github.com/shopspring/decimal"
)

func (e *Engine) apply(s uniques.State, o uniques.Origin, cmd *Command) ([]uniques.Event, error) {
	switch cmd.Op {
	case OpCreateCollection:
		cfg := uniques.CollectionConfig{Mint: uniques.MintSettings{Type: uniques.MintTypePublic}}
		if cmd.Config != nil {
			cfg = *cmd.Config
		}
		_, evs, err := e.pallet.Create(s, o, cmd.Account, cfg)
		return evs, err
	case OpDestroyCollection:
		var w uniques.DestroyWitness
		if cmd.Destroy != nil {
			w = *cmd.Destroy
		}
		return e.pallet.Destroy(s, o, cmd.collection(), w)
	case OpSetTeam:
		return e.pallet.SetTeam(s, o, cmd.collection(), cmd.Issuer, cmd.Admin, cmd.Freezer)
	case OpSetAcceptOwnership:
		return e.pallet.SetAcceptOwnership(s, o, cmd.collection(), cmd.Withdraw)
	case OpTransferOwnership:
		return e.pallet.TransferOwnership(s, o, cmd.collection(), cmd.Account)
	case OpLockCollection:
		return e.pallet.LockCollection(s, o, cmd.collection(), uniques.CollectionSettings(cmd.Settings))
	case OpSetCollectionMaxSupply:
		return e.pallet.SetCollectionMaxSupply(s, o, cmd.collection(), cmd.MaxSupply)
	case OpUpdateMintSettings:
		if cmd.Mint == nil {
			return nil, fmt.Errorf("missing mint settings")
		}
		return e.pallet.UpdateMintSettings(s, o, cmd.collection(), *cmd.Mint)
	case OpMint:
		return e.pallet.Mint(s, o, cmd.collection(), cmd.item(), cmd.Account, cmd.Witness)
	case OpBurn:
		return e.pallet.Burn(s, o, cmd.collection(), cmd.item())
	case OpTransfer:
		return e.pallet.Transfer(s, o, cmd.collection(), cmd.item(), cmd.Account)
	case OpRedeposit:
		return e.pallet.Redeposit(s, o, cmd.collection(), cmd.itemIDs())
	case OpLockItemTransfer:
		return e.pallet.LockItemTransfer(s, o, cmd.collection(), cmd.item())
	case OpUnlockItemTransfer:
		return e.pallet.UnlockItemTransfer(s, o, cmd.collection(), cmd.item())
	case OpLockItemProperties:
		return e.pallet.LockItemProperties(s, o, cmd.collection(), cmd.item(), cmd.LockMetadata, cmd.LockAttributes)
	case OpApproveTransfer:
		var deadline *uint64
		if cmd.HasDeadline {
			deadline = &cmd.Deadline
		}
		return e.pallet.ApproveTransfer(s, o, cmd.collection(), cmd.item(), cmd.Account, deadline)
	case OpCancelApproval:
		return e.pallet.CancelApproval(s, o, cmd.collection(), cmd.item(), cmd.Account)
	case OpSetAttribute:
		return e.pallet.SetAttribute(s, o, cmd.collection(), cmd.maybeItem(), cmd.namespace(), cmd.Key, cmd.Value)
	case OpClearAttribute:
		return e.pallet.ClearAttribute(s, o, cmd.collection(), cmd.maybeItem(), cmd.namespace(), cmd.Key)
	case OpSetCollectionMetadata:
		return e.pallet.SetCollectionMetadata(s, o, cmd.collection(), cmd.Value)
	case OpClearCollectionMetadata:
		return e.pallet.ClearCollectionMetadata(s, o, cmd.collection())
	case OpSetItemMetadata:
		return e.pallet.SetItemMetadata(s, o, cmd.collection(), cmd.item(), cmd.Value)
	case OpClearItemMetadata:
		return e.pallet.ClearItemMetadata(s, o, cmd.collection(), cmd.item())
	case OpSetPrice:
		if !cmd.HasAmount {
			return e.pallet.SetPrice(s, o, cmd.collection(), cmd.item(), nil, "")
		}
		price, err := decimal.NewFromString(cmd.Amount)
		if err != nil {
			return nil, fmt.Errorf("invalid price %s", cmd.Amount)
		}
		return e.pallet.SetPrice(s, o, cmd.collection(), cmd.item(), &price, cmd.Account)
	case OpBuyItem:
		bid, err := decimal.NewFromString(cmd.Amount)
		if err != nil {
			return nil, fmt.Errorf("invalid bid %s", cmd.Amount)
		}
		return e.pallet.BuyItem(s, o, cmd.collection(), cmd.item(), bid)
	}
	return nil, fmt.Errorf("unknown op %d", cmd.Op)
}
