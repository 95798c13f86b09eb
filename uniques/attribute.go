package uniques

// SetAttribute writes a namespaced key-value pair on a collection or on a
// single item. The namespace decides who may write and who pays, and the
// deposit tracks the byte length of key plus value, so resizing a value
// adjusts the reservation by exactly the delta.
func (p *Pallet) SetAttribute(s State, o Origin, c CollectionID, maybeItem *ItemID, ns Namespace, key, value []byte) ([]Event, error) {
	if len(key) == 0 {
		return nil, ErrWrongNamespace
	}
	col, err := readCollection(s, c)
	if err != nil {
		return nil, err
	}
	var item *Item
	if maybeItem != nil {
		item, err = readItem(s, c, *maybeItem)
		if err != nil {
			return nil, err
		}
	}
	authorized, payer, err := attributeAuthority(ns, col, item)
	if err != nil {
		return nil, err
	}
	if !o.Force {
		if !o.valid() {
			return nil, ErrBadOrigin
		}
		if o.Account != authorized || authorized == "" {
			return nil, ErrNoPermission
		}
	}
	if ns.Kind == NamespaceKindCollectionOwner {
		if col.Settings.Has(SettingLockedAttributes) {
			return nil, ErrAttributesLocked
		}
		if item != nil && item.Settings.Has(SettingLockedItemAttributes) {
			return nil, ErrAttributesLocked
		}
	}

	old, err := s.ReadAttribute(c, maybeItem, ns, key)
	if err != nil {
		return nil, err
	}
	required := p.bytesDeposit(p.params.AttributeDepositBase, len(key)+len(value))
	attr := &Attribute{
		Collection: c,
		Item:       maybeItem,
		Namespace:  ns,
		Key:        key,
		Value:      value,
	}
	if old != nil {
		attr.Deposit, err = moveDeposit(s, old.Deposit, payer, required)
	} else {
		attr.Deposit, err = holdDeposit(s, payer, required)
	}
	if err != nil {
		return nil, err
	}
	err = s.WriteAttribute(attr)
	if err != nil {
		return nil, err
	}
	if old == nil {
		col.Attributes++
		err = s.WriteCollection(col)
		if err != nil {
			return nil, err
		}
	}
	evs := []Event{{Kind: EventAttributeSet, Collection: c, Item: maybeItem, Key: key}}
	return evs, nil
}

// ClearAttribute removes an attribute and releases its full deposit to the
// account it is held against.
func (p *Pallet) ClearAttribute(s State, o Origin, c CollectionID, maybeItem *ItemID, ns Namespace, key []byte) ([]Event, error) {
	col, err := readCollection(s, c)
	if err != nil {
		return nil, err
	}
	var item *Item
	if maybeItem != nil {
		item, err = readItem(s, c, *maybeItem)
		if err != nil {
			return nil, err
		}
	}
	authorized, _, err := attributeAuthority(ns, col, item)
	if err != nil {
		return nil, err
	}
	if !o.Force {
		if !o.valid() {
			return nil, ErrBadOrigin
		}
		if o.Account != authorized || authorized == "" {
			return nil, ErrNoPermission
		}
	}
	attr, err := s.ReadAttribute(c, maybeItem, ns, key)
	if err != nil {
		return nil, err
	}
	if attr == nil {
		return nil, ErrAttributeNotFound
	}
	err = releaseDeposit(s, attr.Deposit)
	if err != nil {
		return nil, err
	}
	err = s.DeleteAttribute(c, maybeItem, ns, key)
	if err != nil {
		return nil, err
	}
	col.Attributes--
	err = s.WriteCollection(col)
	if err != nil {
		return nil, err
	}
	evs := []Event{{Kind: EventAttributeCleared, Collection: c, Item: maybeItem, Key: key}}
	return evs, nil
}
