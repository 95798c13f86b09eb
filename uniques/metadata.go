package uniques

// SetCollectionMetadata stores the collection's metadata blob, charging the
// deposit to the collection owner. Admin or force.
func (p *Pallet) SetCollectionMetadata(s State, o Origin, c CollectionID, data []byte) ([]Event, error) {
	col, err := readCollection(s, c)
	if err != nil {
		return nil, err
	}
	err = ensureRole(o, col, RoleAdmin)
	if err != nil {
		return nil, err
	}
	if !o.Force && col.Settings.Has(SettingLockedMetadata) {
		return nil, ErrMetadataLocked
	}
	old, err := s.ReadCollectionMetadata(c)
	if err != nil {
		return nil, err
	}
	required := p.bytesDeposit(p.params.MetadataDepositBase, len(data))
	meta := &CollectionMetadata{Collection: c, Data: data}
	if old != nil {
		meta.Deposit, err = moveDeposit(s, old.Deposit, col.Owner, required)
	} else {
		meta.Deposit, err = holdDeposit(s, col.Owner, required)
	}
	if err != nil {
		return nil, err
	}
	err = s.WriteCollectionMetadata(meta)
	if err != nil {
		return nil, err
	}
	evs := []Event{{Kind: EventCollectionMetadataSet, Collection: c}}
	return evs, nil
}

// ClearCollectionMetadata removes the blob and releases its deposit.
func (p *Pallet) ClearCollectionMetadata(s State, o Origin, c CollectionID) ([]Event, error) {
	col, err := readCollection(s, c)
	if err != nil {
		return nil, err
	}
	err = ensureRole(o, col, RoleAdmin)
	if err != nil {
		return nil, err
	}
	if !o.Force && col.Settings.Has(SettingLockedMetadata) {
		return nil, ErrMetadataLocked
	}
	meta, err := s.ReadCollectionMetadata(c)
	if err != nil {
		return nil, err
	}
	if meta == nil {
		return nil, ErrMetadataNotFound
	}
	err = releaseDeposit(s, meta.Deposit)
	if err != nil {
		return nil, err
	}
	err = s.DeleteCollectionMetadata(c)
	if err != nil {
		return nil, err
	}
	evs := []Event{{Kind: EventCollectionMetadataCleared, Collection: c}}
	return evs, nil
}

// SetItemMetadata stores an item's metadata blob, counted by the destroy
// witness and charged to the collection owner. Admin or force.
func (p *Pallet) SetItemMetadata(s State, o Origin, c CollectionID, i ItemID, data []byte) ([]Event, error) {
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
	if !o.Force {
		if col.Settings.Has(SettingLockedMetadata) || item.Settings.Has(SettingLockedItemMetadata) {
			return nil, ErrMetadataLocked
		}
	}
	old, err := s.ReadItemMetadata(c, i)
	if err != nil {
		return nil, err
	}
	required := p.bytesDeposit(p.params.MetadataDepositBase, len(data))
	meta := &ItemMetadata{Collection: c, Item: i, Data: data}
	if old != nil {
		meta.Deposit, err = moveDeposit(s, old.Deposit, col.Owner, required)
	} else {
		meta.Deposit, err = holdDeposit(s, col.Owner, required)
	}
	if err != nil {
		return nil, err
	}
	err = s.WriteItemMetadata(meta)
	if err != nil {
		return nil, err
	}
	if old == nil {
		col.ItemMetadatas++
		err = s.WriteCollection(col)
		if err != nil {
			return nil, err
		}
	}
	evs := []Event{{Kind: EventItemMetadataSet, Collection: c, Item: &i}}
	return evs, nil
}

// ClearItemMetadata removes an item's blob and releases its deposit.
func (p *Pallet) ClearItemMetadata(s State, o Origin, c CollectionID, i ItemID) ([]Event, error) {
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
	if !o.Force {
		if col.Settings.Has(SettingLockedMetadata) || item.Settings.Has(SettingLockedItemMetadata) {
			return nil, ErrMetadataLocked
		}
	}
	meta, err := s.ReadItemMetadata(c, i)
	if err != nil {
		return nil, err
	}
	if meta == nil {
		return nil, ErrMetadataNotFound
	}
	err = releaseDeposit(s, meta.Deposit)
	if err != nil {
		return nil, err
	}
	err = s.DeleteItemMetadata(c, i)
	if err != nil {
		return nil, err
	}
	col.ItemMetadatas--
	err = s.WriteCollection(col)
	if err != nil {
		return nil, err
	}
	evs := []Event{{Kind: EventItemMetadataCleared, Collection: c, Item: &i}}
	return evs, nil
}
