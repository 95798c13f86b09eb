package uniques

import "github.com/shopspring/decimal"

// Mint issues a new item into a collection. The collection's mint settings
// decide who may call it, what it costs and inside which height window.
// The item deposit is reserved from the caller, not the receiver.
func (p *Pallet) Mint(s State, o Origin, c CollectionID, i ItemID, mintTo string, w *MintWitness) ([]Event, error) {
	if !o.valid() {
		return nil, ErrBadOrigin
	}
	if mintTo == "" {
		return nil, ErrBadOrigin
	}
	col, err := readCollection(s, c)
	if err != nil {
		return nil, err
	}
	existing, err := s.ReadItem(c, i)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyExists
	}
	if col.MaxSupply != nil && col.Items >= *col.MaxSupply {
		return nil, ErrMaxSupplyReached
	}
	height, err := s.Height()
	if err != nil {
		return nil, err
	}
	if col.Mint.StartAt != 0 && height < col.Mint.StartAt {
		return nil, ErrMintNotStarted
	}
	if col.Mint.EndAt != 0 && height > col.Mint.EndAt {
		return nil, ErrMintEnded
	}

	if !o.Force {
		err = p.checkMintType(s, o.Account, col, mintTo, w)
		if err != nil {
			return nil, err
		}
	}

	payer := o.Account
	if o.Force {
		payer = col.Owner
	}
	deposit, err := holdDeposit(s, payer, p.params.ItemDeposit)
	if err != nil {
		return nil, err
	}
	if col.Mint.Price != nil && !o.Force {
		if w == nil || w.MintPrice == nil {
			return nil, ErrBadWitness
		}
		if w.MintPrice.Cmp(*col.Mint.Price) < 0 {
			return nil, ErrBadWitness
		}
		err = s.Transfer(o.Account, col.Owner, *col.Mint.Price)
		if err != nil {
			return nil, err
		}
	}

	item := &Item{
		Collection: c,
		ID:         i,
		Owner:      mintTo,
		Deposit:    deposit,
	}
	err = s.WriteItem(item)
	if err != nil {
		return nil, err
	}
	col.Items++
	err = s.WriteCollection(col)
	if err != nil {
		return nil, err
	}
	evs := []Event{{Kind: EventIssued, Collection: c, Item: &i, Account: mintTo}}
	return evs, nil
}

func (p *Pallet) checkMintType(s State, caller string, col *Collection, mintTo string, w *MintWitness) error {
	switch col.Mint.Type {
	case MintTypePublic:
		return nil
	case MintTypeIssuer:
		if caller != col.Issuer || col.Issuer == "" {
			return ErrNoPermission
		}
		return nil
	case MintTypeHolderOf:
		if w == nil || w.OwnedItem == nil {
			return ErrBadWitness
		}
		owned, err := s.ReadItem(col.Mint.HolderOf, *w.OwnedItem)
		if err != nil {
			return err
		}
		if owned == nil || owned.Owner != mintTo {
			return ErrBadWitness
		}
		return nil
	case MintTypeAllowList:
		for _, a := range col.Mint.AllowList {
			if a == caller {
				return nil
			}
		}
		return ErrNoPermission
	}
	return ErrNoPermission
}

// Burn removes an item and releases its deposit together with the deposits
// of its metadata and attributes.
func (p *Pallet) Burn(s State, o Origin, c CollectionID, i ItemID) ([]Event, error) {
	col, err := readCollection(s, c)
	if err != nil {
		return nil, err
	}
	item, err := readItem(s, c, i)
	if err != nil {
		return nil, err
	}
	if !o.Force {
		if !o.valid() {
			return nil, ErrBadOrigin
		}
		if o.Account != item.Owner {
			return nil, ErrNoPermission
		}
	}

	attrs, err := s.ListItemAttributes(c, i)
	if err != nil {
		return nil, err
	}
	for _, attr := range attrs {
		err = releaseDeposit(s, attr.Deposit)
		if err != nil {
			return nil, err
		}
		err = s.DeleteAttribute(c, attr.Item, attr.Namespace, attr.Key)
		if err != nil {
			return nil, err
		}
		col.Attributes--
	}
	meta, err := s.ReadItemMetadata(c, i)
	if err != nil {
		return nil, err
	}
	if meta != nil {
		err = releaseDeposit(s, meta.Deposit)
		if err != nil {
			return nil, err
		}
		err = s.DeleteItemMetadata(c, i)
		if err != nil {
			return nil, err
		}
		col.ItemMetadatas--
	}
	err = releaseDeposit(s, item.Deposit)
	if err != nil {
		return nil, err
	}
	err = s.DeletePrice(c, i)
	if err != nil {
		return nil, err
	}
	err = s.DeleteItem(c, i)
	if err != nil {
		return nil, err
	}
	col.Items--
	err = s.WriteCollection(col)
	if err != nil {
		return nil, err
	}
	evs := []Event{{Kind: EventBurned, Collection: c, Item: &i, Account: item.Owner}}
	return evs, nil
}

// Transfer moves an item to dest. The caller must be the owner, a delegate
// with a live approval, or a force origin. All approvals and any price
// listing are cleared, and item-owner namespaced attribute deposits follow
// the new owner.
func (p *Pallet) Transfer(s State, o Origin, c CollectionID, i ItemID, dest string) ([]Event, error) {
	if dest == "" {
		return nil, ErrBadOrigin
	}
	col, err := readCollection(s, c)
	if err != nil {
		return nil, err
	}
	item, err := readItem(s, c, i)
	if err != nil {
		return nil, err
	}
	if col.Settings.Has(SettingLockedTransfers) {
		return nil, ErrItemsNonTransferable
	}
	if item.TransferLocked {
		return nil, ErrItemLocked
	}
	if !o.Force {
		if !o.valid() {
			return nil, ErrBadOrigin
		}
		if o.Account != item.Owner {
			ok, err := p.approvedDelegate(s, item, o.Account)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, ErrNoPermission
			}
		}
	}
	prev := item.Owner
	err = p.moveItem(s, col, item, dest)
	if err != nil {
		return nil, err
	}
	evs := []Event{{Kind: EventTransferred, Collection: c, Item: &i, Account: dest, Peer: prev}}
	return evs, nil
}

func (p *Pallet) approvedDelegate(s State, item *Item, account string) (bool, error) {
	deadline, ok := item.Approvals[account]
	if !ok {
		return false, nil
	}
	if deadline == 0 {
		return true, nil
	}
	height, err := s.Height()
	if err != nil {
		return false, err
	}
	return height <= deadline, nil
}

// moveItem rewrites ownership, clears approvals and the price listing, and
// re-homes item-owner namespaced attribute deposits onto the new owner so
// a later clear refunds the account that actually holds the item.
func (p *Pallet) moveItem(s State, col *Collection, item *Item, dest string) error {
	attrs, err := s.ListItemAttributes(col.ID, item.ID)
	if err != nil {
		return err
	}
	for _, attr := range attrs {
		if attr.Namespace.Kind != NamespaceKindItemOwner {
			continue
		}
		attr.Deposit, err = moveDeposit(s, attr.Deposit, dest, attr.Deposit.Amount)
		if err != nil {
			return err
		}
		err = s.WriteAttribute(attr)
		if err != nil {
			return err
		}
	}
	err = s.DeletePrice(col.ID, item.ID)
	if err != nil {
		return err
	}
	item.Owner = dest
	item.Approvals = nil
	return s.WriteItem(item)
}

// LockItemTransfer freezes an item. Freezer role only.
func (p *Pallet) LockItemTransfer(s State, o Origin, c CollectionID, i ItemID) ([]Event, error) {
	return p.setItemTransferLock(s, o, c, i, true)
}

// UnlockItemTransfer thaws an item. Freezer role only.
func (p *Pallet) UnlockItemTransfer(s State, o Origin, c CollectionID, i ItemID) ([]Event, error) {
	return p.setItemTransferLock(s, o, c, i, false)
}

func (p *Pallet) setItemTransferLock(s State, o Origin, c CollectionID, i ItemID, locked bool) ([]Event, error) {
	col, err := readCollection(s, c)
	if err != nil {
		return nil, err
	}
	err = ensureRole(o, col, RoleFreezer)
	if err != nil {
		return nil, err
	}
	item, err := readItem(s, c, i)
	if err != nil {
		return nil, err
	}
	item.TransferLocked = locked
	err = s.WriteItem(item)
	if err != nil {
		return nil, err
	}
	kind := EventItemTransferLocked
	if !locked {
		kind = EventItemTransferUnlocked
	}
	evs := []Event{{Kind: kind, Collection: c, Item: &i}}
	return evs, nil
}

// LockItemProperties sets the one-way metadata and attribute locks on an
// item. Passing false for a flag never clears an already set lock.
func (p *Pallet) LockItemProperties(s State, o Origin, c CollectionID, i ItemID, lockMetadata, lockAttributes bool) ([]Event, error) {
	col, err := readCollection(s, c)
	if err != nil {
		return nil, err
	}
	err = ensureRole(o, col, RoleAdmin)
	if err != nil {
		return nil, err
	}
	item, err := readItem(s, c, i)
	if err != nil {
		return nil, err
	}
	if lockMetadata {
		item.Settings = item.Settings.Union(SettingLockedItemMetadata)
	}
	if lockAttributes {
		item.Settings = item.Settings.Union(SettingLockedItemAttributes)
	}
	err = s.WriteItem(item)
	if err != nil {
		return nil, err
	}
	evs := []Event{{Kind: EventItemPropertiesLocked, Collection: c, Item: &i}}
	return evs, nil
}

// ApproveTransfer lets delegate transfer the item on the owner's behalf,
// optionally until a command-height deadline.
func (p *Pallet) ApproveTransfer(s State, o Origin, c CollectionID, i ItemID, delegate string, deadline *uint64) ([]Event, error) {
	if delegate == "" {
		return nil, ErrBadOrigin
	}
	col, err := readCollection(s, c)
	if err != nil {
		return nil, err
	}
	item, err := readItem(s, c, i)
	if err != nil {
		return nil, err
	}
	if col.Settings.Has(SettingLockedTransfers) {
		return nil, ErrItemsNonTransferable
	}
	if item.TransferLocked {
		return nil, ErrItemLocked
	}
	if !o.Force {
		if !o.valid() {
			return nil, ErrBadOrigin
		}
		if o.Account != item.Owner {
			return nil, ErrNoPermission
		}
	}
	if item.Approvals == nil {
		item.Approvals = make(map[string]uint64)
	}
	var dl uint64
	if deadline != nil {
		dl = *deadline
	}
	item.Approvals[delegate] = dl
	err = s.WriteItem(item)
	if err != nil {
		return nil, err
	}
	evs := []Event{{Kind: EventTransferApproved, Collection: c, Item: &i, Account: item.Owner, Peer: delegate}}
	return evs, nil
}

// CancelApproval removes a delegate's approval. The owner, the delegate and
// a force origin may always cancel, anyone may cancel once the deadline has
// passed.
func (p *Pallet) CancelApproval(s State, o Origin, c CollectionID, i ItemID, delegate string) ([]Event, error) {
	_, err := readCollection(s, c)
	if err != nil {
		return nil, err
	}
	item, err := readItem(s, c, i)
	if err != nil {
		return nil, err
	}
	deadline, ok := item.Approvals[delegate]
	if !ok {
		return nil, ErrNoPermission
	}
	if !o.Force {
		if !o.valid() {
			return nil, ErrBadOrigin
		}
		if o.Account != item.Owner && o.Account != delegate {
			height, err := s.Height()
			if err != nil {
				return nil, err
			}
			if deadline == 0 || height <= deadline {
				return nil, ErrNoPermission
			}
		}
	}
	delete(item.Approvals, delegate)
	err = s.WriteItem(item)
	if err != nil {
		return nil, err
	}
	evs := []Event{{Kind: EventApprovalCancelled, Collection: c, Item: &i, Account: item.Owner, Peer: delegate}}
	return evs, nil
}

// Redeposit recomputes item deposits against the current schedule and
// re-homes them onto the collection owner. Items that are missing or whose
// new reservation cannot be funded are skipped, only collection level
// failures abort the call.
func (p *Pallet) Redeposit(s State, o Origin, c CollectionID, items []ItemID) ([]Event, error) {
	col, err := readCollection(s, c)
	if err != nil {
		return nil, err
	}
	err = ensureRole(o, col, RoleOwner)
	if err != nil {
		return nil, err
	}
	var updated []ItemID
	for _, i := range items {
		item, err := s.ReadItem(c, i)
		if err != nil {
			return nil, err
		}
		if item == nil {
			continue
		}
		required := p.params.ItemDeposit
		if item.Deposit.Account == col.Owner && item.Deposit.Amount.Equal(required) {
			continue
		}
		nd, err := moveDeposit(s, item.Deposit, col.Owner, required)
		if err == ErrInsufficientBalance {
			continue
		}
		if err != nil {
			return nil, err
		}
		item.Deposit = nd
		err = s.WriteItem(item)
		if err != nil {
			return nil, err
		}
		updated = append(updated, i)
	}
	evs := []Event{{Kind: EventRedeposited, Collection: c, Items: updated}}
	return evs, nil
}

// ItemPrice is a read helper for the marketplace tests and RPC surfaces.
func ItemPrice(s State, c CollectionID, i ItemID) (*decimal.Decimal, error) {
	listing, err := s.ReadPrice(c, i)
	if err != nil || listing == nil {
		return nil, err
	}
	return &listing.Price, nil
}
